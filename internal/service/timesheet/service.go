package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/database"
	"golang.org/x/sync/errgroup"
)

type TimesheetServiceImpl struct {
	db *database.DB
	badge.EventRepository
	timesheet.AggregateRepository
	loc *time.Location
}

func NewTimesheetService(
	db *database.DB,
	eventRepo badge.EventRepository,
	aggregateRepo timesheet.AggregateRepository,
	loc *time.Location,
) timesheet.Service {
	return &TimesheetServiceImpl{
		db:                  db,
		EventRepository:     eventRepo,
		AggregateRepository: aggregateRepo,
		loc:                 loc,
	}
}

// GetDaySummary implements timesheet.Service.
func (s *TimesheetServiceImpl) GetDaySummary(ctx context.Context, query timesheet.SummaryQuery) (timesheet.DaySummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return timesheet.DaySummaryResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return timesheet.DaySummaryResponse{}, err
	}

	ref, err := s.referenceDate(query.Date)
	if err != nil {
		return timesheet.DaySummaryResponse{}, err
	}

	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)

	events, err := s.EventRepository.ListByUserBetween(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return timesheet.DaySummaryResponse{}, fmt.Errorf("failed to list badge events: %w", err)
	}

	key := dayStart.Format("2006-01-02")
	summary := SummarizeDay(key, GroupByDay(events, s.loc)[key])
	return timesheet.NewDaySummaryResponse(summary), nil
}

// GetWeekSummary implements timesheet.Service.
func (s *TimesheetServiceImpl) GetWeekSummary(ctx context.Context, query timesheet.SummaryQuery) (timesheet.WeekSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return timesheet.WeekSummaryResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return timesheet.WeekSummaryResponse{}, err
	}

	ref, err := s.referenceDate(query.Date)
	if err != nil {
		return timesheet.WeekSummaryResponse{}, err
	}

	weekStart, weekEnd := WeekBounds(ref, s.loc)
	events, err := s.EventRepository.ListByUserBetween(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return timesheet.WeekSummaryResponse{}, fmt.Errorf("failed to list badge events: %w", err)
	}

	return timesheet.NewWeekSummaryResponse(SummarizeWeek(events, ref, s.loc)), nil
}

// GetKPIs implements timesheet.Service.
//
// Events and the stored aggregate are fetched concurrently; they have no
// ordering dependency. An aggregate that is missing or unreadable is
// treated as not found and the local computation takes over; only the
// events fetch can fail the request.
func (s *TimesheetServiceImpl) GetKPIs(ctx context.Context, query timesheet.KPIQuery) (timesheet.KPIResponse, error) {
	if err := query.Validate(); err != nil {
		return timesheet.KPIResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return timesheet.KPIResponse{}, err
	}

	ref, err := s.referenceDate(query.Date)
	if err != nil {
		return timesheet.KPIResponse{}, err
	}

	periodType := timesheet.PeriodType(query.Period)
	if periodType != timesheet.PeriodWeek && periodType != timesheet.PeriodMonth {
		return timesheet.KPIResponse{}, timesheet.ErrInvalidPeriod
	}

	periodStart, periodEnd := WeekBounds(ref, s.loc)
	if periodType == timesheet.PeriodMonth {
		periodStart, periodEnd = MonthBounds(ref, s.loc)
	}

	// The ISO week containing ref can extend past the month window, and
	// the hours-per-week fallback needs it in full.
	weekStart, weekEnd := WeekBounds(ref, s.loc)
	fetchFrom, fetchTo := periodStart, periodEnd
	if weekStart.Before(fetchFrom) {
		fetchFrom = weekStart
	}
	if weekEnd.After(fetchTo) {
		fetchTo = weekEnd
	}

	var events []badge.Event
	var aggregate *timesheet.KPIAggregate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.EventRepository.ListByUserBetween(gctx, userID, fetchFrom, fetchTo)
		if err != nil {
			return fmt.Errorf("failed to list badge events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		agg, err := s.AggregateRepository.Get(gctx, userID, periodType, periodStart)
		if err != nil {
			slog.Warn("KPI aggregate unavailable, falling back to local computation",
				"user_id", userID, "period", query.Period, "error", err)
			return nil
		}
		aggregate = agg
		return nil
	})
	if err := g.Wait(); err != nil {
		return timesheet.KPIResponse{}, err
	}

	period := SummarizePeriod(events, periodType, ref, s.loc)
	kpis := ReconcileKPIs(aggregate, period)
	return timesheet.NewKPIResponse(period, kpis), nil
}

func (s *TimesheetServiceImpl) referenceDate(date string) (time.Time, error) {
	if date == "" {
		return time.Now().In(s.loc), nil
	}
	ref, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return time.Time{}, timesheet.ErrInvalidDate
	}
	return ref, nil
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
