package timesheet

import (
	"time"

	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
)

// SummarizeDay computes the worked duration and last-action state for one
// day's punches. Punches are expected ascending by instant; the result is
// a pure function of the input and never fails.
//
// The pairing rule counts the first punch pair as the morning interval and
// the third/fourth punches as the afternoon interval. Punches past the
// fourth never add duration, but the last-action label keeps cycling
// through the afternoon in/out states so the UI can show ongoing activity.
func SummarizeDay(dayKey string, punches []badge.Event) timesheet.DaySummary {
	summary := timesheet.DaySummary{
		DayKey:  dayKey,
		Punches: punches,
	}

	if len(punches) >= 2 {
		summary.Duration += clampedInterval(punches[0].BadgedAt, punches[1].BadgedAt)
	}
	if len(punches) >= 4 {
		summary.Duration += clampedInterval(punches[2].BadgedAt, punches[3].BadgedAt)
	}
	summary.LastAction = lastAction(len(punches))

	return summary
}

// clampedInterval returns to−from, floored at zero so an out-of-order pair
// contributes nothing rather than negative time.
func clampedInterval(from, to time.Time) time.Duration {
	interval := to.Sub(from)
	if interval < 0 {
		return 0
	}
	return interval
}

func lastAction(punchCount int) timesheet.LastAction {
	switch punchCount {
	case 0:
		return timesheet.LastActionNone
	case 1:
		return timesheet.LastActionArrived
	case 2:
		return timesheet.LastActionAtLunch
	case 3:
		return timesheet.LastActionBackFromLunch
	case 4:
		return timesheet.LastActionDeparted
	}

	// Beyond four punches the label alternates by parity, treating each
	// extra pair as another afternoon out/in cycle.
	if punchCount%2 == 1 {
		return timesheet.LastActionBackFromLunch
	}
	return timesheet.LastActionDeparted
}
