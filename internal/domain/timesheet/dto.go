package timesheet

import (
	"fmt"
	"time"

	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type SummaryQuery struct {
	// Date is the reference date, YYYY-MM-DD. Empty means today.
	Date string `json:"date"`
}

func (q *SummaryQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Date != "" {
		if _, valid := validator.IsValidDate(q.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type KPIQuery struct {
	Period string `json:"period"`
	Date   string `json:"date"`
}

func (q *KPIQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Period == "" {
		q.Period = string(PeriodWeek)
	}
	if !validator.IsInSlice(q.Period, []string{string(PeriodWeek), string(PeriodMonth)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of: week, month",
		})
	}

	if q.Date != "" {
		if _, valid := validator.IsValidDate(q.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DaySummaryResponse struct {
	Date       string   `json:"date"`
	Punches    []string `json:"punches"`
	PunchCount int      `json:"punch_count"`
	DurationMs int64    `json:"duration_ms"`
	WorkHours  string   `json:"work_hours"`
	LastAction string   `json:"last_action"`
}

func NewDaySummaryResponse(s DaySummary) DaySummaryResponse {
	punches := make([]string, 0, len(s.Punches))
	for _, p := range s.Punches {
		punches = append(punches, p.BadgedAt.Format(time.RFC3339))
	}
	return DaySummaryResponse{
		Date:       s.DayKey,
		Punches:    punches,
		PunchCount: s.PunchCount(),
		DurationMs: s.Duration.Milliseconds(),
		WorkHours:  FormatWorkHours(s.Duration),
		LastAction: string(s.LastAction),
	}
}

type WeekSummaryResponse struct {
	WeekStart  string               `json:"week_start"`
	WeekEnd    string               `json:"week_end"`
	Days       []DaySummaryResponse `json:"days"`
	TotalMs    int64                `json:"total_ms"`
	TotalHours string               `json:"total_hours"`
	TargetMs   int64                `json:"target_ms"`
	Progress   float64              `json:"progress"`
	FullDays   int                  `json:"full_days"`
	Absences   int                  `json:"absences"`
}

func NewWeekSummaryResponse(s WeekSummary) WeekSummaryResponse {
	days := make([]DaySummaryResponse, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, NewDaySummaryResponse(d))
	}
	return WeekSummaryResponse{
		WeekStart:  s.WeekStart.Format("2006-01-02"),
		WeekEnd:    s.WeekEnd.Format("2006-01-02"),
		Days:       days,
		TotalMs:    s.Total.Milliseconds(),
		TotalHours: FormatWorkHours(s.Total),
		TargetMs:   s.Target.Milliseconds(),
		Progress:   s.Progress,
		FullDays:   s.FullDays,
		Absences:   s.Absences,
	}
}

type KPIMetricResponse struct {
	Value  float64 `json:"value"`
	Source string  `json:"source"`
}

type KPIResponse struct {
	Period       string            `json:"period"`
	PeriodStart  string            `json:"period_start"`
	PeriodEnd    string            `json:"period_end"`
	HoursPerDay  KPIMetricResponse `json:"hours_per_day"`
	HoursPerWeek KPIMetricResponse `json:"hours_per_week"`
	WorkingDays  KPIMetricResponse `json:"working_days"`
	PresenceRate KPIMetricResponse `json:"presence_rate"`
}

func NewKPIResponse(period PeriodSummary, kpis ReconciledKPISet) KPIResponse {
	return KPIResponse{
		Period:       string(period.PeriodType),
		PeriodStart:  period.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    period.PeriodEnd.Format("2006-01-02"),
		HoursPerDay:  KPIMetricResponse{Value: kpis.HoursPerDay, Source: string(kpis.HoursPerDaySource)},
		HoursPerWeek: KPIMetricResponse{Value: kpis.HoursPerWeek, Source: string(kpis.HoursPerWeekSource)},
		WorkingDays:  KPIMetricResponse{Value: float64(kpis.WorkingDays), Source: string(kpis.WorkingDaysSource)},
		PresenceRate: KPIMetricResponse{Value: kpis.PresenceRate, Source: string(kpis.PresenceRateSource)},
	}
}

// NewHistoryResponse maps a page of events into the badge history DTO.
func NewHistoryResponse(page PageResult) badge.HistoryResponse {
	events := make([]badge.EventResponse, 0, len(page.Items))
	for _, ev := range page.Items {
		events = append(events, badge.NewEventResponse(ev))
	}
	return badge.HistoryResponse{
		Events:      events,
		TotalCount:  page.TotalCount,
		Page:        page.Page,
		PageCount:   page.PageCount,
		HasPrevious: page.HasPrevious,
		HasNext:     page.HasNext,
	}
}

// FormatWorkHours renders a duration as "8h 30m" for display.
func FormatWorkHours(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
