package http

import (
	"net/http"

	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
	"github.com/timeboard/timeboard-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetDaySummary(w http.ResponseWriter, r *http.Request)
	GetWeekSummary(w http.ResponseWriter, r *http.Request)
	GetKPIs(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// GetDaySummary implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetDaySummary(w http.ResponseWriter, r *http.Request) {
	query := timesheet.SummaryQuery{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.timesheetService.GetDaySummary(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWeekSummary implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetWeekSummary(w http.ResponseWriter, r *http.Request) {
	query := timesheet.SummaryQuery{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.timesheetService.GetWeekSummary(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetKPIs implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetKPIs(w http.ResponseWriter, r *http.Request) {
	query := timesheet.KPIQuery{
		Period: r.URL.Query().Get("period"),
		Date:   r.URL.Query().Get("date"),
	}

	result, err := h.timesheetService.GetKPIs(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
