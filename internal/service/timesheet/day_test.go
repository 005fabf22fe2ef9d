package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
)

func punchesAt(clock ...string) []badge.Event {
	events := make([]badge.Event, 0, len(clock))
	for _, c := range clock {
		at, err := time.Parse(time.RFC3339, "2025-06-02T"+c+":00Z")
		if err != nil {
			panic(err)
		}
		events = append(events, badge.Event{UserID: "user-1", BadgedAt: at})
	}
	return events
}

func TestSummarizeDay_Duration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		punches []badge.Event
		want    time.Duration
	}{
		{"no punches", nil, 0},
		{"single punch", punchesAt("08:00"), 0},
		{"morning pair", punchesAt("08:00", "12:00"), 4 * time.Hour},
		{"third punch opens nothing", punchesAt("08:00", "12:00", "13:00"), 4 * time.Hour},
		{"full day", punchesAt("08:00", "12:00", "13:00", "17:00"), 8 * time.Hour},
		{"punches beyond four ignored", punchesAt("08:00", "12:00", "13:00", "17:00", "18:00", "19:00"), 8 * time.Hour},
		{"reversed morning pair clamps to zero", punchesAt("12:00", "08:00"), 0},
		{"reversed afternoon pair clamps independently", punchesAt("08:00", "12:00", "14:00", "13:00"), 4 * time.Hour},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := SummarizeDay("2025-06-02", c.punches)
			assert.Equal(t, c.want, got.Duration)
			assert.Equal(t, "2025-06-02", got.DayKey)
			assert.Equal(t, len(c.punches), got.PunchCount())
		})
	}
}

func TestSummarizeDay_OverlappingPairsCountIndependently(t *testing.T) {
	t.Parallel()

	// Bad data where the afternoon starts before the morning ended:
	// each pair still contributes its own clamped interval.
	punches := punchesAt("08:00", "12:00", "11:00", "15:00")
	got := SummarizeDay("2025-06-02", punches)
	assert.Equal(t, 8*time.Hour, got.Duration)
}

func TestSummarizeDay_LastAction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		punchCount int
		want       timesheet.LastAction
	}{
		{0, timesheet.LastActionNone},
		{1, timesheet.LastActionArrived},
		{2, timesheet.LastActionAtLunch},
		{3, timesheet.LastActionBackFromLunch},
		{4, timesheet.LastActionDeparted},
		// Beyond four the label alternates by parity.
		{5, timesheet.LastActionBackFromLunch},
		{6, timesheet.LastActionDeparted},
		{7, timesheet.LastActionBackFromLunch},
		{8, timesheet.LastActionDeparted},
	}

	for _, c := range cases {
		punches := make([]badge.Event, c.punchCount)
		base := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
		for i := range punches {
			punches[i] = badge.Event{UserID: "user-1", BadgedAt: base.Add(time.Duration(i) * time.Hour)}
		}
		got := SummarizeDay("2025-06-02", punches)
		assert.Equalf(t, c.want, got.LastAction, "punch count %d", c.punchCount)
	}
}

func TestSummarizeDay_EndToEndScenarios(t *testing.T) {
	t.Parallel()

	fullDay := SummarizeDay("2025-06-02", punchesAt("08:00", "12:00", "13:00", "17:00"))
	assert.Equal(t, int64(8*60*60*1000), fullDay.Duration.Milliseconds())
	assert.Equal(t, timesheet.LastActionDeparted, fullDay.LastAction)

	halfDay := SummarizeDay("2025-06-02", punchesAt("08:00", "12:00"))
	assert.Equal(t, int64(4*60*60*1000), halfDay.Duration.Milliseconds())
	assert.Equal(t, timesheet.LastActionAtLunch, halfDay.LastAction)
}
