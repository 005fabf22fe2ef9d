package timesheet

import (
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
)

// ReconcileKPIs resolves each metric independently: a backend-supplied
// figure is authoritative and used verbatim; a missing aggregate (or a
// missing individual field) falls back to the value derived from local
// day summaries. A single metric never mixes the two sources.
func ReconcileKPIs(aggregate *timesheet.KPIAggregate, local timesheet.PeriodSummary) timesheet.ReconciledKPISet {
	kpis := timesheet.ReconciledKPISet{
		HoursPerDay:        localHoursPerDay(local),
		HoursPerDaySource:  timesheet.SourceComputed,
		HoursPerWeek:       local.WeekTotal.Hours(),
		HoursPerWeekSource: timesheet.SourceComputed,
		WorkingDays:        local.WorkingDays,
		WorkingDaysSource:  timesheet.SourceComputed,
		PresenceRate:       localPresenceRate(local),
		PresenceRateSource: timesheet.SourceComputed,
	}

	if aggregate == nil {
		return kpis
	}

	if aggregate.HoursPerDay != nil {
		kpis.HoursPerDay = *aggregate.HoursPerDay
		kpis.HoursPerDaySource = timesheet.SourceBackend
	}
	if aggregate.HoursPerWeek != nil {
		kpis.HoursPerWeek = *aggregate.HoursPerWeek
		kpis.HoursPerWeekSource = timesheet.SourceBackend
	}
	if aggregate.WorkingDays != nil {
		kpis.WorkingDays = *aggregate.WorkingDays
		kpis.WorkingDaysSource = timesheet.SourceBackend
	}
	if aggregate.PresenceRate != nil {
		kpis.PresenceRate = *aggregate.PresenceRate
		kpis.PresenceRateSource = timesheet.SourceBackend
	}
	return kpis
}

// localHoursPerDay averages worked hours over days with at least one
// punch; a period without punches yields 0.
func localHoursPerDay(local timesheet.PeriodSummary) float64 {
	var workedDays int
	var totalHours float64
	for _, day := range local.Days {
		if day.PunchCount() == 0 {
			continue
		}
		workedDays++
		totalHours += day.Duration.Hours()
	}
	if workedDays == 0 {
		return 0
	}
	return totalHours / float64(workedDays)
}

// localPresenceRate is working days over business days in the period,
// guarded to 0 when the period has no business days.
func localPresenceRate(local timesheet.PeriodSummary) float64 {
	if local.BusinessDays == 0 {
		return 0
	}
	return float64(local.WorkingDays) / float64(local.BusinessDays)
}
