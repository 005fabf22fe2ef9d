package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
	timesheetEngine "github.com/timeboard/timeboard-backend-go/internal/service/timesheet"
)

// KPIJobs precomputes per-user KPI aggregates so display requests can
// read an authoritative figure instead of recomputing from raw events.
type KPIJobs struct {
	eventRepo     badge.EventRepository
	aggregateRepo timesheet.AggregateRepository
	loc           *time.Location
}

func NewKPIJobs(
	eventRepo badge.EventRepository,
	aggregateRepo timesheet.AggregateRepository,
	loc *time.Location,
) *KPIJobs {
	return &KPIJobs{
		eventRepo:     eventRepo,
		aggregateRepo: aggregateRepo,
		loc:           loc,
	}
}

func (j *KPIJobs) RegisterJobs(scheduler *Scheduler, spec string) error {
	return scheduler.AddJob("refresh_kpi_aggregates", spec, j.RefreshAggregates)
}

// RefreshAggregates recomputes and stores the current week and month
// aggregates for every user with badge events. Per-user failures are
// logged and skipped so one bad user never blocks the rest.
func (j *KPIJobs) RefreshAggregates(ctx context.Context) error {
	userIDs, err := j.eventRepo.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list badge users: %w", err)
	}

	now := time.Now().In(j.loc)
	var failed int
	for _, userID := range userIDs {
		for _, periodType := range []timesheet.PeriodType{timesheet.PeriodWeek, timesheet.PeriodMonth} {
			if err := j.refreshUserPeriod(ctx, userID, periodType, now); err != nil {
				slog.Error("Failed to refresh KPI aggregate",
					"user_id", userID, "period", periodType, "error", err)
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to refresh %d aggregate(s)", failed)
	}
	return nil
}

func (j *KPIJobs) refreshUserPeriod(ctx context.Context, userID string, periodType timesheet.PeriodType, ref time.Time) error {
	periodStart, periodEnd := timesheetEngine.WeekBounds(ref, j.loc)
	if periodType == timesheet.PeriodMonth {
		periodStart, periodEnd = timesheetEngine.MonthBounds(ref, j.loc)
	}

	weekStart, weekEnd := timesheetEngine.WeekBounds(ref, j.loc)
	from, to := periodStart, periodEnd
	if weekStart.Before(from) {
		from = weekStart
	}
	if weekEnd.After(to) {
		to = weekEnd
	}

	events, err := j.eventRepo.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return fmt.Errorf("failed to list badge events: %w", err)
	}

	period := timesheetEngine.SummarizePeriod(events, periodType, ref, j.loc)
	kpis := timesheetEngine.ReconcileKPIs(nil, period)

	return j.aggregateRepo.Upsert(ctx, timesheet.KPIAggregate{
		UserID:       userID,
		PeriodType:   periodType,
		PeriodStart:  periodStart,
		HoursPerDay:  &kpis.HoursPerDay,
		HoursPerWeek: &kpis.HoursPerWeek,
		WorkingDays:  &kpis.WorkingDays,
		PresenceRate: &kpis.PresenceRate,
	})
}
