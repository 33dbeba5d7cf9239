package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/wagedesk/internal/domain/wage"
	"github.com/cmlabs-hris/wagedesk/internal/domain/worker"
	"github.com/cmlabs-hris/wagedesk/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. NotFound and
// Forbidden are expected control flow; anything unrecognized is treated
// as the storage collaborator being unreachable.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, wage.ErrCalculationNotFound):
		NotFound(w, "Wage calculation not found")
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, wage.ErrOrganizationForbidden):
		Forbidden(w, "Wage calculation belongs to another organization")
	case errors.Is(err, wage.ErrSlipForbidden):
		Forbidden(w, "Not allowed to access this wage slip")
	case errors.Is(err, wage.ErrMissingIdentity):
		Unauthorized(w, "Caller identity missing")

	default:
		ServiceUnavailable(w, "Storage unavailable")
	}
}
