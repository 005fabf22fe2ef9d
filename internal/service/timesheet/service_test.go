package timesheet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
)

type stubEventRepo struct {
	events []badge.Event
	err    error
}

func (s *stubEventRepo) Insert(ctx context.Context, event badge.Event) (badge.Event, error) {
	return event, nil
}

func (s *stubEventRepo) InsertBatch(ctx context.Context, events []badge.Event) (int, error) {
	return len(events), nil
}

func (s *stubEventRepo) ListByUser(ctx context.Context, userID string) ([]badge.Event, error) {
	return s.events, s.err
}

func (s *stubEventRepo) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]badge.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	var filtered []badge.Event
	for _, ev := range s.events {
		if !ev.BadgedAt.Before(from) && !ev.BadgedAt.After(to) {
			filtered = append(filtered, ev)
		}
	}
	return filtered, nil
}

func (s *stubEventRepo) ListUserIDs(ctx context.Context) ([]string, error) {
	return []string{"user-1"}, nil
}

type stubAggregateRepo struct {
	aggregate *timesheet.KPIAggregate
	err       error
}

func (s *stubAggregateRepo) Get(ctx context.Context, userID string, periodType timesheet.PeriodType, periodStart time.Time) (*timesheet.KPIAggregate, error) {
	return s.aggregate, s.err
}

func (s *stubAggregateRepo) Upsert(ctx context.Context, aggregate timesheet.KPIAggregate) error {
	return nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestTimesheetService_GetWeekSummary(t *testing.T) {
	t.Parallel()

	events := eventsOn("2025-06-03", "08:00", "12:00", "13:00", "17:00")
	svc := NewTimesheetService(nil, &stubEventRepo{events: events}, &stubAggregateRepo{}, time.UTC)
	ctx := authedContext(t, "user-1")

	resp, err := svc.GetWeekSummary(ctx, timesheet.SummaryQuery{Date: "2025-06-05"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", resp.WeekStart)
	assert.Equal(t, "2025-06-08", resp.WeekEnd)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, int64(8*60*60*1000), resp.TotalMs)
	assert.Equal(t, 1, resp.FullDays)
	assert.Equal(t, 6, resp.Absences)
}

func TestTimesheetService_GetDaySummary(t *testing.T) {
	t.Parallel()

	events := eventsOn("2025-06-03", "08:00", "12:00")
	svc := NewTimesheetService(nil, &stubEventRepo{events: events}, &stubAggregateRepo{}, time.UTC)
	ctx := authedContext(t, "user-1")

	resp, err := svc.GetDaySummary(ctx, timesheet.SummaryQuery{Date: "2025-06-03"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-03", resp.Date)
	assert.Equal(t, int64(4*60*60*1000), resp.DurationMs)
	assert.Equal(t, string(timesheet.LastActionAtLunch), resp.LastAction)
}

func TestTimesheetService_GetKPIs_AggregateFailureFallsBackToLocal(t *testing.T) {
	t.Parallel()

	events := eventsOn("2025-06-03", "08:00", "12:00", "13:00", "17:00")
	svc := NewTimesheetService(nil,
		&stubEventRepo{events: events},
		&stubAggregateRepo{err: errors.New("connection refused")},
		time.UTC,
	)
	ctx := authedContext(t, "user-1")

	resp, err := svc.GetKPIs(ctx, timesheet.KPIQuery{Period: "week", Date: "2025-06-05"})
	require.NoError(t, err, "aggregate failure must not surface to the caller")

	assert.Equal(t, string(timesheet.SourceComputed), resp.HoursPerWeek.Source)
	assert.InDelta(t, 8.0, resp.HoursPerWeek.Value, 1e-9)
}

func TestTimesheetService_GetKPIs_BackendAggregatePreferred(t *testing.T) {
	t.Parallel()

	hoursPerWeek := 39.0
	events := eventsOn("2025-06-03", "08:00", "12:00", "13:00", "17:00")
	svc := NewTimesheetService(nil,
		&stubEventRepo{events: events},
		&stubAggregateRepo{aggregate: &timesheet.KPIAggregate{HoursPerWeek: &hoursPerWeek}},
		time.UTC,
	)
	ctx := authedContext(t, "user-1")

	resp, err := svc.GetKPIs(ctx, timesheet.KPIQuery{Period: "week", Date: "2025-06-05"})
	require.NoError(t, err)

	assert.Equal(t, string(timesheet.SourceBackend), resp.HoursPerWeek.Source)
	assert.Equal(t, 39.0, resp.HoursPerWeek.Value)
	// Metrics the aggregate does not carry stay wholly local.
	assert.Equal(t, string(timesheet.SourceComputed), resp.HoursPerDay.Source)
}

func TestTimesheetService_GetKPIs_EventsFailurePropagates(t *testing.T) {
	t.Parallel()

	svc := NewTimesheetService(nil,
		&stubEventRepo{err: errors.New("network down")},
		&stubAggregateRepo{},
		time.UTC,
	)
	ctx := authedContext(t, "user-1")

	_, err := svc.GetKPIs(ctx, timesheet.KPIQuery{Period: "week", Date: "2025-06-05"})
	assert.Error(t, err)
}

func TestTimesheetService_GetKPIs_InvalidPeriod(t *testing.T) {
	t.Parallel()

	svc := NewTimesheetService(nil, &stubEventRepo{}, &stubAggregateRepo{}, time.UTC)
	ctx := authedContext(t, "user-1")

	_, err := svc.GetKPIs(ctx, timesheet.KPIQuery{Period: "quarter"})
	assert.Error(t, err)
}
