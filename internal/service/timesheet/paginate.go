package timesheet

import (
	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/domain/timesheet"
)

// DefaultPageSize is the fixed history page size used by the UI.
const DefaultPageSize = 10

// Paginate slices a newest-first event list into one fixed-size page.
// Out-of-range page requests clamp to the nearest valid page; an empty
// list still reports one (empty) page.
func Paginate(sorted []badge.Event, pageSize, page int) timesheet.PageResult {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(sorted)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	if page < 0 {
		page = 0
	}
	if page > pageCount-1 {
		page = pageCount - 1
	}

	start := page * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return timesheet.PageResult{
		Items:       sorted[start:end],
		TotalCount:  total,
		Page:        page,
		PageCount:   pageCount,
		HasPrevious: page > 0,
		HasNext:     page < pageCount-1,
	}
}
