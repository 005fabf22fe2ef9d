package badge

import (
	"context"
	"time"
)

// EventRepository defines data access methods for badge events.
type EventRepository interface {
	// Insert stores a new badge event and returns it with generated fields.
	Insert(ctx context.Context, event Event) (Event, error)

	// InsertBatch stores a batch of events atomically and returns the
	// number stored. Either the whole batch lands or none of it does.
	InsertBatch(ctx context.Context, events []Event) (int, error)

	// ListByUser retrieves all events for a user, newest first.
	// A user with no events yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]Event, error)

	// ListByUserBetween retrieves events whose instant falls within
	// [from, to] inclusive, oldest first.
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Event, error)

	// ListUserIDs returns the distinct users that have badge events.
	ListUserIDs(ctx context.Context) ([]string, error)
}
