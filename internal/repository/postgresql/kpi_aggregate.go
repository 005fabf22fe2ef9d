package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/database"
)

type kpiAggregateRepository struct {
	db *database.DB
}

func NewKPIAggregateRepository(db *database.DB) timesheet.AggregateRepository {
	return &kpiAggregateRepository{db: db}
}

// Get implements timesheet.AggregateRepository. A missing aggregate is
// reported as (nil, nil) so callers fall back to local computation.
func (r *kpiAggregateRepository) Get(ctx context.Context, userID string, periodType timesheet.PeriodType, periodStart time.Time) (*timesheet.KPIAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, period_type, period_start,
			   hours_per_day, hours_per_week, working_days, presence_rate,
			   computed_at
		FROM kpi_aggregates
		WHERE user_id = $1
		  AND period_type = $2
		  AND period_start = $3
	`

	var agg timesheet.KPIAggregate
	var storedPeriodType string
	err := q.QueryRow(ctx, query, userID, string(periodType), periodStart).Scan(
		&agg.UserID, &storedPeriodType, &agg.PeriodStart,
		&agg.HoursPerDay, &agg.HoursPerWeek, &agg.WorkingDays, &agg.PresenceRate,
		&agg.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get kpi aggregate: %w", err)
	}

	agg.PeriodType = timesheet.PeriodType(storedPeriodType)
	return &agg, nil
}

// Upsert implements timesheet.AggregateRepository.
func (r *kpiAggregateRepository) Upsert(ctx context.Context, aggregate timesheet.KPIAggregate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO kpi_aggregates (
			user_id, period_type, period_start,
			hours_per_day, hours_per_week, working_days, presence_rate,
			computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (user_id, period_type, period_start) DO UPDATE SET
			hours_per_day = EXCLUDED.hours_per_day,
			hours_per_week = EXCLUDED.hours_per_week,
			working_days = EXCLUDED.working_days,
			presence_rate = EXCLUDED.presence_rate,
			computed_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		aggregate.UserID,
		string(aggregate.PeriodType),
		aggregate.PeriodStart,
		aggregate.HoursPerDay,
		aggregate.HoursPerWeek,
		aggregate.WorkingDays,
		aggregate.PresenceRate,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert kpi aggregate: %w", err)
	}

	return nil
}
