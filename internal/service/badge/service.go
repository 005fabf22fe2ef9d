package badge

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/database"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/validator"
	timesheetEngine "github.com/timeboard/timeboard-backend-go/internal/service/timesheet"
)

type BadgeServiceImpl struct {
	db *database.DB
	badge.EventRepository
	loc *time.Location
}

func NewBadgeService(db *database.DB, eventRepo badge.EventRepository, loc *time.Location) badge.Service {
	return &BadgeServiceImpl{
		db:              db,
		EventRepository: eventRepo,
		loc:             loc,
	}
}

// RecordPunch implements badge.Service.
func (s *BadgeServiceImpl) RecordPunch(ctx context.Context, req badge.RecordPunchRequest) (badge.RecordPunchResponse, error) {
	if err := req.Validate(); err != nil {
		return badge.RecordPunchResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return badge.RecordPunchResponse{}, err
	}

	badgedAt := time.Now().UTC()
	if req.BadgedAt != nil && *req.BadgedAt != "" {
		parsed, valid := validator.IsValidDateTime(*req.BadgedAt)
		if !valid {
			return badge.RecordPunchResponse{}, badge.ErrInvalidTimestamp
		}
		badgedAt = parsed.UTC()
	}

	created, err := s.EventRepository.Insert(ctx, badge.Event{
		UserID:   userID,
		BadgedAt: badgedAt,
	})
	if err != nil {
		return badge.RecordPunchResponse{}, fmt.Errorf("failed to insert badge event: %w", err)
	}

	// A new punch belongs on page zero of the newest-first history, so
	// the response carries the refreshed first page.
	events, err := s.EventRepository.ListByUser(ctx, userID)
	if err != nil {
		return badge.RecordPunchResponse{}, fmt.Errorf("failed to list badge events: %w", err)
	}

	page := timesheetEngine.Paginate(events, timesheetEngine.DefaultPageSize, 0)
	return badge.RecordPunchResponse{
		Event:   badge.NewEventResponse(created),
		History: timesheet.NewHistoryResponse(page),
	}, nil
}

// GetHistory implements badge.Service.
func (s *BadgeServiceImpl) GetHistory(ctx context.Context, filter badge.HistoryFilter) (badge.HistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return badge.HistoryResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return badge.HistoryResponse{}, err
	}

	events, err := s.EventRepository.ListByUser(ctx, userID)
	if err != nil {
		return badge.HistoryResponse{}, fmt.Errorf("failed to list badge events: %w", err)
	}

	page := timesheetEngine.Paginate(events, filter.Limit, filter.Page)
	return timesheet.NewHistoryResponse(page), nil
}

// ImportEvents implements badge.Service.
func (s *BadgeServiceImpl) ImportEvents(ctx context.Context, payload []byte) (badge.ImportResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return badge.ImportResponse{}, err
	}

	// Reader payloads arrive in two casing conventions depending on the
	// firmware revision; DecodeEvents tolerates both and drops records
	// whose timestamps do not parse.
	decoded, err := timesheetEngine.DecodeEvents(payload)
	if err != nil {
		return badge.ImportResponse{}, badge.ErrInvalidPayload
	}

	// Readers only know their configured badge stream, so the
	// authenticated user owns every record of the batch.
	batch := make([]badge.Event, 0, len(decoded))
	for _, ev := range decoded {
		batch = append(batch, badge.Event{
			UserID:   userID,
			BadgedAt: ev.BadgedAt.UTC(),
		})
	}

	imported, err := s.EventRepository.InsertBatch(ctx, batch)
	if err != nil {
		return badge.ImportResponse{}, fmt.Errorf("failed to insert imported badge events: %w", err)
	}

	return badge.ImportResponse{Imported: imported}, nil
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}
