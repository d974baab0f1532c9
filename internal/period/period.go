// Package period builds inclusive calendar-date ranges for month filters.
package period

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format used for range bounds.
const DateLayout = "2006-01-02"

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be positive")
)

// MonthRange is an inclusive [Start, End] range of calendar dates in UTC.
type MonthRange struct {
	Start time.Time
	End   time.Time
}

// Month returns the range covering month of year. When either value is zero
// it returns a nil range and no error, meaning "do not filter by date".
func Month(month, year int) (*MonthRange, error) {
	if month == 0 || year == 0 {
		return nil, nil
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	if year < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// day 0 of the next month normalizes to the last day of this one
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return &MonthRange{Start: start, End: end}, nil
}

// StartDate is the first day formatted as YYYY-MM-DD.
func (r MonthRange) StartDate() string {
	return r.Start.Format(DateLayout)
}

// EndDate is the last day formatted as YYYY-MM-DD.
func (r MonthRange) EndDate() string {
	return r.End.Format(DateLayout)
}
