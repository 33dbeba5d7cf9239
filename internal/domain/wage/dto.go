package wage

import (
	"github.com/cmlabs-hris/wagedesk/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateMonthlyRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *CalculateMonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2020 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2020 and 2100"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	WorkerID       string          `json:"worker_id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	GrossAmount    int64           `json:"gross_amount"`
	Deductions     int64           `json:"deductions"`
	NetAmount      int64           `json:"net_amount"`
	Status         string          `json:"status"`
	ApprovedBy     *string         `json:"approved_by,omitempty"`
}

func NewCalculationResponse(c Calculation) CalculationResponse {
	return CalculationResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		WorkerID:       c.WorkerID,
		Year:           c.Year,
		Month:          c.Month,
		TotalHours:     c.TotalHours,
		HourlyRate:     c.HourlyRate,
		GrossAmount:    c.GrossAmount,
		Deductions:     c.Deductions,
		NetAmount:      c.NetAmount,
		Status:         string(c.Status),
		ApprovedBy:     c.ApprovedBy,
	}
}

type TemplateInfo struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type TemplatesResponse struct {
	Current   TemplateInfo   `json:"current"`
	Available []TemplateInfo `json:"available"`
}

type CalculateMonthlyResponse struct {
	Count int                   `json:"count"`
	Items []CalculationResponse `json:"items"`
}

// SlipView - denormalized read model for one rendered wage slip.
// Never persisted; issued_at is captured at render time.
type SlipView struct {
	SlipID           string          `json:"slip_id"`
	OrganizationID   string          `json:"organization_id"`
	OrganizationName string          `json:"organization_name"`
	WorkerID         string          `json:"worker_id"`
	WorkerName       string          `json:"worker_name"`
	Month            string          `json:"month"`
	ClosingDate      string          `json:"closing_date"`
	TotalHours       decimal.Decimal `json:"total_hours"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	GrossAmount      int64           `json:"gross_amount"`
	Deductions       int64           `json:"deductions"`
	NetAmount        int64           `json:"net_amount"`
	Status           string          `json:"status"`
	StatusLabel      string          `json:"status_label"`
	Remarks          string          `json:"remarks"`
	ApproverID       string          `json:"approver_id"`
	IssuedAt         string          `json:"issued_at"`
}
