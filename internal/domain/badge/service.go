package badge

import (
	"context"
)

// Service defines business logic for badge punch operations
type Service interface {
	// RecordPunch stores a clock punch for the authenticated user and
	// returns the refreshed first page of their history.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (RecordPunchResponse, error)

	// GetHistory retrieves a fixed-size page of the authenticated user's
	// punch history, newest first.
	GetHistory(ctx context.Context, filter HistoryFilter) (HistoryResponse, error)

	// ImportEvents ingests a raw badge-reader payload for the
	// authenticated user. Records with unparsable timestamps are
	// skipped rather than failing the batch.
	ImportEvents(ctx context.Context, payload []byte) (ImportResponse, error)
}
