package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AddJob_RejectsBadSpec(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.UTC)
	err := s.AddJob("bad", "not a cron spec", func(ctx context.Context) error { return nil })
	assert.Error(t, err)
}

func TestScheduler_RunOnce_RunsAllJobs(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.UTC)

	var first, second int
	require.NoError(t, s.AddJob("first", "0 2 * * *", func(ctx context.Context) error {
		first++
		return errors.New("boom")
	}))
	require.NoError(t, s.AddJob("second", "30 3 * * *", func(ctx context.Context) error {
		second++
		return nil
	}))

	// A failing job must not stop the remaining ones.
	s.RunOnce(context.Background())

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
