package badge

import (
	"time"
)

// Event is a single badge punch by one user. Events are immutable once
// recorded; all worked-time figures are derived from them on demand.
type Event struct {
	ID        string
	UserID    string
	BadgedAt  time.Time
	CreatedAt time.Time
}
