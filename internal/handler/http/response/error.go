package response

import (
	"errors"
	"net/http"

	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Badge domain errors
	case errors.Is(err, badge.ErrEventNotFound):
		NotFound(w, "Badge event not found")
	case errors.Is(err, badge.ErrInvalidTimestamp):
		BadRequest(w, "Badge timestamp could not be parsed", nil)
	case errors.Is(err, badge.ErrInvalidPayload):
		BadRequest(w, "Badge payload could not be decoded", nil)
	case errors.Is(err, badge.ErrUnauthorized):
		Unauthorized(w, "Unauthorized to access these badge events")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Unknown reporting period", nil)
	case errors.Is(err, timesheet.ErrInvalidDate):
		BadRequest(w, "Reference date must be in YYYY-MM-DD format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
