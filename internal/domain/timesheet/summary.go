package timesheet

import (
	"time"

	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
)

// LastAction classifies the state implied by a day's final punch.
type LastAction string

const (
	LastActionNone          LastAction = "none"
	LastActionArrived       LastAction = "arrived"
	LastActionAtLunch       LastAction = "at_lunch"
	LastActionBackFromLunch LastAction = "back_from_lunch"
	LastActionDeparted      LastAction = "departed"
)

// PeriodType selects the reporting window for KPI requests.
type PeriodType string

const (
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
)

// DaySummary is the derived accounting result for one calendar day.
// Punches holds exactly the user's events on DayKey, ascending by instant;
// Duration is a pure function of Punches.
type DaySummary struct {
	DayKey     string
	Punches    []badge.Event
	Duration   time.Duration
	LastAction LastAction
}

// PunchCount returns the number of punches on the day.
func (s DaySummary) PunchCount() int {
	return len(s.Punches)
}

// WeekSummary is the derived accounting result for one ISO week
// (Monday through Sunday). Days always has exactly 7 entries, one per
// calendar day in [WeekStart, WeekEnd], ascending by day key.
type WeekSummary struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Days      []DaySummary
	Total     time.Duration
	Target    time.Duration
	// Progress is Total/Target clamped into [0, 1].
	Progress float64
	// FullDays counts days with exactly four punches.
	FullDays int
	// Absences counts days with no punches.
	Absences int
}

// PeriodSummary extends the weekly figures to an arbitrary reporting
// window (the ISO week or calendar month containing a reference date).
type PeriodSummary struct {
	PeriodType  PeriodType
	PeriodStart time.Time
	PeriodEnd   time.Time
	Days        []DaySummary
	Total       time.Duration
	// WeekTotal is the worked total of the ISO week containing the
	// reference date, used as the local hours-per-week figure.
	WeekTotal time.Duration
	// WorkingDays counts days in the period with at least one punch.
	WorkingDays int
	// BusinessDays counts Monday through Friday dates in the period.
	BusinessDays int
}

// KPIAggregate is a backend-precomputed set of summary statistics for a
// user and period. Metric fields are optional; a nil field means the
// backend has no figure for that metric.
type KPIAggregate struct {
	UserID       string
	PeriodType   PeriodType
	PeriodStart  time.Time
	HoursPerDay  *float64
	HoursPerWeek *float64
	WorkingDays  *int
	PresenceRate *float64
	ComputedAt   time.Time
}

// KPISource records where a reconciled metric came from.
type KPISource string

const (
	SourceBackend  KPISource = "backend"
	SourceComputed KPISource = "computed"
)

// ReconciledKPISet holds the per-metric resolution of backend-supplied
// aggregates against locally computed summaries. Each metric is wholly
// backend-sourced or wholly computed, never a blend.
type ReconciledKPISet struct {
	HoursPerDay        float64
	HoursPerDaySource  KPISource
	HoursPerWeek       float64
	HoursPerWeekSource KPISource
	WorkingDays        int
	WorkingDaysSource  KPISource
	PresenceRate       float64
	PresenceRateSource KPISource
}

// PageResult is one fixed-size page of a newest-first event history.
type PageResult struct {
	Items       []badge.Event
	TotalCount  int
	Page        int
	PageCount   int
	HasPrevious bool
	HasNext     bool
}
