package timesheet

import (
	"time"

	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
)

// WeeklyTarget is the fixed contractual weekly working time.
const WeeklyTarget = 35 * time.Hour

// WeekBounds returns Monday 00:00:00.000 and Sunday 23:59:59.999 local
// time of the ISO week containing ref. A Sunday reference belongs to the
// week ending on that Sunday.
func WeekBounds(ref time.Time, loc *time.Location) (time.Time, time.Time) {
	local := ref.In(loc)
	weekday := int(local.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := time.Date(local.Year(), local.Month(), local.Day()-(weekday-1), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

// MonthBounds returns the first instant and last millisecond of the
// calendar month containing ref, in local time.
func MonthBounds(ref time.Time, loc *time.Location) (time.Time, time.Time) {
	local := ref.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// SummarizeWeek computes the full ISO-week summary containing ref. The
// seven-day skeleton is built unconditionally, so the result always has
// exactly seven day summaries ascending by day key, however few events
// fall inside the week.
func SummarizeWeek(events []badge.Event, ref time.Time, loc *time.Location) timesheet.WeekSummary {
	start, end := WeekBounds(ref, loc)
	byDay := GroupByDay(filterBetween(events, start, end), loc)

	summary := timesheet.WeekSummary{
		WeekStart: start,
		WeekEnd:   end,
		Target:    WeeklyTarget,
		Days:      make([]timesheet.DaySummary, 0, 7),
	}

	for i := 0; i < 7; i++ {
		key := start.AddDate(0, 0, i).Format("2006-01-02")
		day := SummarizeDay(key, byDay[key])
		summary.Days = append(summary.Days, day)
		summary.Total += day.Duration
	}

	summary.Progress = progress(summary.Total, summary.Target)
	for _, day := range summary.Days {
		switch day.PunchCount() {
		case 4:
			summary.FullDays++
		case 0:
			summary.Absences++
		}
	}
	return summary
}

// SummarizePeriod computes day summaries over the week or month window
// containing ref, plus the working-day and business-day counts the KPI
// fallback path needs. WeekTotal always reflects the ISO week containing
// ref, even when the period is a month.
func SummarizePeriod(events []badge.Event, periodType timesheet.PeriodType, ref time.Time, loc *time.Location) timesheet.PeriodSummary {
	var start, end time.Time
	switch periodType {
	case timesheet.PeriodMonth:
		start, end = MonthBounds(ref, loc)
	default:
		start, end = WeekBounds(ref, loc)
	}

	byDay := GroupByDay(filterBetween(events, start, end), loc)

	summary := timesheet.PeriodSummary{
		PeriodType:  periodType,
		PeriodStart: start,
		PeriodEnd:   end,
		WeekTotal:   SummarizeWeek(events, ref, loc).Total,
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		daySummary := SummarizeDay(key, byDay[key])
		summary.Days = append(summary.Days, daySummary)
		summary.Total += daySummary.Duration

		if daySummary.PunchCount() > 0 {
			summary.WorkingDays++
		}
		if weekday := day.Weekday(); weekday != time.Saturday && weekday != time.Sunday {
			summary.BusinessDays++
		}
	}
	return summary
}

// progress clamps total/target into [0, 1]; a zero target yields 0.
func progress(total, target time.Duration) float64 {
	if target <= 0 {
		return 0
	}
	ratio := float64(total) / float64(target)
	if ratio > 1 {
		return 1
	}
	return ratio
}

func filterBetween(events []badge.Event, start, end time.Time) []badge.Event {
	filtered := make([]badge.Event, 0, len(events))
	for _, ev := range events {
		if !ev.BadgedAt.Before(start) && !ev.BadgedAt.After(end) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}
