package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/wagedesk/internal/domain/wage"
	"github.com/cmlabs-hris/wagedesk/internal/handler/http/response"
	"github.com/cmlabs-hris/wagedesk/internal/slip"
	"github.com/go-chi/chi/v5"
)

type WageHandler interface {
	ListTemplates(w http.ResponseWriter, r *http.Request)
	CalculateMonthly(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Slip(w http.ResponseWriter, r *http.Request)
	SlipCSV(w http.ResponseWriter, r *http.Request)
	SlipPDF(w http.ResponseWriter, r *http.Request)
}

type wageHandlerImpl struct {
	wageService wage.Service
	templates   *slip.Registry
}

func NewWageHandler(wageService wage.Service, templates *slip.Registry) WageHandler {
	return &wageHandlerImpl{wageService: wageService, templates: templates}
}

func (h *wageHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	result, err := h.wageService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wageHandlerImpl) CalculateMonthly(w http.ResponseWriter, r *http.Request) {
	var req wage.CalculateMonthlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.wageService.CalculateMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Monthly wages calculated", result)
}

func (h *wageHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Calculation ID is required", nil)
		return
	}

	result, err := h.wageService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wageHandlerImpl) Slip(w http.ResponseWriter, r *http.Request) {
	view, ok := h.slipView(w, r)
	if !ok {
		return
	}

	response.Success(w, view)
}

func (h *wageHandlerImpl) SlipCSV(w http.ResponseWriter, r *http.Request) {
	view, ok := h.slipView(w, r)
	if !ok {
		return
	}

	template := h.templates.Default()
	body := slip.RenderCSV(template, view)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", slip.CSVFilename(view)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *wageHandlerImpl) SlipPDF(w http.ResponseWriter, r *http.Request) {
	view, ok := h.slipView(w, r)
	if !ok {
		return
	}

	template := h.templates.Default()
	body := slip.RenderPDF(template.PDFLines(view))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", slip.PDFFilename(view)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *wageHandlerImpl) slipView(w http.ResponseWriter, r *http.Request) (wage.SlipView, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Calculation ID is required", nil)
		return wage.SlipView{}, false
	}

	view, err := h.wageService.BuildSlipView(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return wage.SlipView{}, false
	}

	return view, true
}
