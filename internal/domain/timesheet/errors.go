package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidPeriod = errors.New("unknown reporting period")
	ErrInvalidDate   = errors.New("reference date could not be parsed")
)
