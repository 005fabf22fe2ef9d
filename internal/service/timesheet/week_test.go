package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
)

func eventsOn(day string, clock ...string) []badge.Event {
	events := make([]badge.Event, 0, len(clock))
	for _, c := range clock {
		at, err := time.Parse(time.RFC3339, day+"T"+c+":00Z")
		if err != nil {
			panic(err)
		}
		events = append(events, badge.Event{UserID: "user-1", BadgedAt: at})
	}
	return events
}

func TestWeekBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		ref       string
		wantStart string
	}{
		{"monday maps to itself", "2025-06-02", "2025-06-02"},
		{"midweek maps back to monday", "2025-06-04", "2025-06-02"},
		{"saturday maps back to monday", "2025-06-07", "2025-06-02"},
		{"sunday belongs to the week it ends", "2025-06-08", "2025-06-02"},
		{"next monday starts a new week", "2025-06-09", "2025-06-09"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			ref, err := time.Parse("2006-01-02", c.ref)
			require.NoError(t, err)

			start, end := WeekBounds(ref, time.UTC)
			assert.Equal(t, c.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, time.Monday, start.Weekday())
			assert.Equal(t, time.Sunday, end.Weekday())
			assert.Equal(t, start.AddDate(0, 0, 7).Add(-time.Millisecond), end)
		})
	}
}

func TestSummarizeWeek_AlwaysSevenDaysAscending(t *testing.T) {
	t.Parallel()

	// Any reference weekday, even with zero events.
	for offset := 0; offset < 7; offset++ {
		ref := time.Date(2025, 6, 2+offset, 15, 0, 0, 0, time.UTC)
		summary := SummarizeWeek(nil, ref, time.UTC)

		require.Len(t, summary.Days, 7)
		for i, day := range summary.Days {
			assert.Equal(t, summary.WeekStart.AddDate(0, 0, i).Format("2006-01-02"), day.DayKey)
		}
	}
}

func TestSummarizeWeek_SingleFullDay(t *testing.T) {
	t.Parallel()

	events := eventsOn("2025-06-03", "08:00", "12:00", "13:00", "17:00")
	ref := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	summary := SummarizeWeek(events, ref, time.UTC)

	assert.Equal(t, 1, summary.FullDays)
	assert.Equal(t, 6, summary.Absences)
	assert.Equal(t, 8*time.Hour, summary.Total)
	assert.InDelta(t, 8.0/35.0, summary.Progress, 1e-9)
}

func TestSummarizeWeek_ProgressClampedToOne(t *testing.T) {
	t.Parallel()

	// Five 9-hour days: 45h worked against a 35h target.
	var events []badge.Event
	for day := 2; day <= 6; day++ {
		date := time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		events = append(events, eventsOn(date, "08:00", "12:00", "13:00", "18:00")...)
	}
	ref := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	summary := SummarizeWeek(events, ref, time.UTC)

	assert.Equal(t, 45*time.Hour, summary.Total)
	assert.Equal(t, 1.0, summary.Progress)
	assert.Equal(t, 5, summary.FullDays)
	assert.Equal(t, 2, summary.Absences)
}

func TestSummarizeWeek_BoundariesInclusive(t *testing.T) {
	t.Parallel()

	ref := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	start, end := WeekBounds(ref, time.UTC)

	events := []badge.Event{
		{UserID: "user-1", BadgedAt: start},                        // Monday 00:00:00.000
		{UserID: "user-1", BadgedAt: end},                          // Sunday 23:59:59.999
		{UserID: "user-1", BadgedAt: start.AddDate(0, 0, 7)},       // next Monday, excluded
		{UserID: "user-1", BadgedAt: start.Add(-time.Millisecond)}, // previous Sunday, excluded
	}

	summary := SummarizeWeek(events, ref, time.UTC)

	assert.Equal(t, 1, summary.Days[0].PunchCount())
	assert.Equal(t, 1, summary.Days[6].PunchCount())
	assert.Equal(t, 5, summary.Absences)
}

func TestProgress_ZeroTargetGuarded(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, progress(8*time.Hour, 0))
	assert.Equal(t, 0.0, progress(0, WeeklyTarget))
}

func TestSummarizePeriod_Month(t *testing.T) {
	t.Parallel()

	// June 2025: 30 days, 21 business days.
	events := append(
		eventsOn("2025-06-03", "08:00", "12:00", "13:00", "17:00"),
		eventsOn("2025-06-10", "08:00", "12:00")...,
	)
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	period := SummarizePeriod(events, "month", ref, time.UTC)

	require.Len(t, period.Days, 30)
	assert.Equal(t, "2025-06-01", period.PeriodStart.Format("2006-01-02"))
	assert.Equal(t, "2025-06-30", period.PeriodEnd.Format("2006-01-02"))
	assert.Equal(t, 2, period.WorkingDays)
	assert.Equal(t, 21, period.BusinessDays)
	assert.Equal(t, 12*time.Hour, period.Total)
}

func TestSummarizePeriod_WeekTotalTracksReferenceWeek(t *testing.T) {
	t.Parallel()

	// The punch on June 10 falls in the ISO week containing the
	// reference date; the June 3 punch does not.
	events := append(
		eventsOn("2025-06-03", "08:00", "12:00", "13:00", "17:00"),
		eventsOn("2025-06-10", "08:00", "12:00")...,
	)
	ref := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	period := SummarizePeriod(events, "month", ref, time.UTC)
	assert.Equal(t, 4*time.Hour, period.WeekTotal)
	assert.Equal(t, 12*time.Hour, period.Total)
}
