package badge

import (
	"time"

	"github.com/timeboard/timeboard-backend-go/internal/pkg/validator"
)

// ========================================
// BADGE EVENT DTOs
// ========================================

type RecordPunchRequest struct {
	// BadgedAt is optional; when omitted the server clock is used.
	BadgedAt *string `json:"badged_at,omitempty"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BadgedAt != nil && *r.BadgedAt != "" {
		if _, valid := validator.IsValidDateTime(*r.BadgedAt); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "badged_at",
				Message: "badged_at must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	BadgedAt  string `json:"badged_at"`
	CreatedAt string `json:"created_at"`
}

func NewEventResponse(ev Event) EventResponse {
	return EventResponse{
		ID:        ev.ID,
		UserID:    ev.UserID,
		BadgedAt:  ev.BadgedAt.Format(time.RFC3339),
		CreatedAt: ev.CreatedAt.Format(time.RFC3339),
	}
}

type HistoryFilter struct {
	// Page is zero-based.
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must not be negative",
		})
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HistoryResponse struct {
	Events      []EventResponse `json:"events"`
	TotalCount  int             `json:"total_count"`
	Page        int             `json:"page"`
	PageCount   int             `json:"page_count"`
	HasPrevious bool            `json:"has_previous"`
	HasNext     bool            `json:"has_next"`
}

// ImportResponse reports how many records of a raw reader payload were
// stored. Records skipped for unparsable timestamps are not counted.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// RecordPunchResponse returns the stored event together with the first
// history page, since a fresh punch always lands on page zero of the
// newest-first history.
type RecordPunchResponse struct {
	Event   EventResponse   `json:"event"`
	History HistoryResponse `json:"history"`
}
