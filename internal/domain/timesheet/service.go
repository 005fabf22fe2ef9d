package timesheet

import (
	"context"
)

// Service defines the timesheet summary operations exposed over HTTP.
// The reference date always travels as an explicit parameter; there is
// no process-wide "current period".
type Service interface {
	// GetDaySummary computes the worked duration and last-action state
	// for the authenticated user on one local calendar day.
	GetDaySummary(ctx context.Context, query SummaryQuery) (DaySummaryResponse, error)

	// GetWeekSummary computes the full ISO-week summary containing the
	// reference date.
	GetWeekSummary(ctx context.Context, query SummaryQuery) (WeekSummaryResponse, error)

	// GetKPIs reconciles stored backend aggregates with locally derived
	// figures for the selected period. A missing or unreadable aggregate
	// silently falls back to the local computation.
	GetKPIs(ctx context.Context, query KPIQuery) (KPIResponse, error)
}
