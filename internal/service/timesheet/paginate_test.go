package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
)

func newestFirstEvents(n int) []badge.Event {
	events := make([]badge.Event, 0, n)
	latest := time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		events = append(events, badge.Event{
			UserID:   "user-1",
			BadgedAt: latest.Add(-time.Duration(i) * time.Hour),
		})
	}
	return events
}

func TestPaginate_PageCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		total    int
		pageSize int
		want     int
	}{
		{12, 5, 3},
		{10, 5, 2},
		{1, 5, 1},
		{0, 5, 1}, // empty list still reports one page
		{5, 5, 1},
		{6, 5, 2},
	}

	for _, c := range cases {
		got := Paginate(newestFirstEvents(c.total), c.pageSize, 0)
		assert.Equalf(t, c.want, got.PageCount, "total=%d pageSize=%d", c.total, c.pageSize)
		assert.Equal(t, c.total, got.TotalCount)
	}
}

func TestPaginate_Slicing(t *testing.T) {
	t.Parallel()

	events := newestFirstEvents(12)

	first := Paginate(events, 5, 0)
	require.Len(t, first.Items, 5)
	assert.Equal(t, events[0], first.Items[0])
	assert.False(t, first.HasPrevious)
	assert.True(t, first.HasNext)

	middle := Paginate(events, 5, 1)
	require.Len(t, middle.Items, 5)
	assert.Equal(t, events[5], middle.Items[0])
	assert.True(t, middle.HasPrevious)
	assert.True(t, middle.HasNext)

	last := Paginate(events, 5, 2)
	require.Len(t, last.Items, 2)
	assert.True(t, last.HasPrevious)
	assert.False(t, last.HasNext)
}

func TestPaginate_OutOfRangePageClamps(t *testing.T) {
	t.Parallel()

	events := newestFirstEvents(12)

	clamped := Paginate(events, 5, 5)
	last := Paginate(events, 5, 2)
	assert.Equal(t, last, clamped)

	negative := Paginate(events, 5, -3)
	first := Paginate(events, 5, 0)
	assert.Equal(t, first, negative)
}

func TestPaginate_EmptyList(t *testing.T) {
	t.Parallel()

	got := Paginate(nil, 5, 0)
	assert.Empty(t, got.Items)
	assert.Equal(t, 1, got.PageCount)
	assert.Equal(t, 0, got.Page)
	assert.False(t, got.HasPrevious)
	assert.False(t, got.HasNext)
}

func TestPaginate_DefaultPageSize(t *testing.T) {
	t.Parallel()

	got := Paginate(newestFirstEvents(25), 0, 0)
	assert.Len(t, got.Items, DefaultPageSize)
	assert.Equal(t, 3, got.PageCount)
}
