package timesheet

import (
	"context"
	"time"
)

// AggregateRepository defines data access for stored KPI aggregates.
type AggregateRepository interface {
	// Get retrieves the stored aggregate for a user and period window.
	// A missing aggregate returns (nil, nil), not an error.
	Get(ctx context.Context, userID string, periodType PeriodType, periodStart time.Time) (*KPIAggregate, error)

	// Upsert stores or replaces the aggregate for its user and period.
	Upsert(ctx context.Context, aggregate KPIAggregate) error
}
