package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/database"
)

type badgeEventRepository struct {
	db *database.DB
}

func NewBadgeEventRepository(db *database.DB) badge.EventRepository {
	return &badgeEventRepository{db: db}
}

// Insert implements badge.EventRepository.
func (r *badgeEventRepository) Insert(ctx context.Context, event badge.Event) (badge.Event, error) {
	q := GetQuerier(ctx, r.db)

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	query := `
		INSERT INTO badge_events (id, user_id, badged_at)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, event.ID, event.UserID, event.BadgedAt).Scan(&event.CreatedAt)
	if err != nil {
		return badge.Event{}, fmt.Errorf("failed to insert badge event: %w", err)
	}

	return event, nil
}

// InsertBatch implements badge.EventRepository.
func (r *badgeEventRepository) InsertBatch(ctx context.Context, events []badge.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, event := range events {
			if _, err := r.Insert(txCtx, event); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(events), nil
}

// ListByUser implements badge.EventRepository.
func (r *badgeEventRepository) ListByUser(ctx context.Context, userID string) ([]badge.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, badged_at, created_at
		FROM badge_events
		WHERE user_id = $1
		ORDER BY badged_at DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list badge events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByUserBetween implements badge.EventRepository.
func (r *badgeEventRepository) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]badge.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, badged_at, created_at
		FROM badge_events
		WHERE user_id = $1
		  AND badged_at >= $2
		  AND badged_at <= $3
		ORDER BY badged_at ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list badge events in range: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListUserIDs implements badge.EventRepository.
func (r *badgeEventRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT user_id FROM badge_events`)
	if err != nil {
		return nil, fmt.Errorf("failed to list badge users: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate badge users: %w", err)
	}
	return userIDs, nil
}

func scanEvents(rows pgx.Rows) ([]badge.Event, error) {
	events := make([]badge.Event, 0)
	for rows.Next() {
		var ev badge.Event
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.BadgedAt, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan badge event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate badge events: %w", err)
	}
	return events, nil
}
