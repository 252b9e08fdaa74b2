package domain

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date layout used across the API, the table and
// the persisted file.
const DateFormat = "2006-01-02"

// DateWindow defines the fetch window as day offsets counted back from "now".
// DaysToStart must be >= DaysToEnd for a non-empty forward window.
// It is a plain value object; components that need the window receive it by
// value instead of sharing a fetcher instance.
type DateWindow struct {
	DaysToStart int `json:"daysToStart"`
	DaysToEnd   int `json:"daysToEnd"`
}

// Validate reports whether the window describes a non-empty forward range.
func (w DateWindow) Validate() error {
	if w.DaysToStart < w.DaysToEnd {
		return fmt.Errorf("days to start (%d) must not be before days to end (%d)", w.DaysToStart, w.DaysToEnd)
	}
	if w.DaysToEnd < 0 {
		return fmt.Errorf("days to end (%d) must not be negative", w.DaysToEnd)
	}
	return nil
}

// StartDate returns the first day of the requested window, formatted.
func (w DateWindow) StartDate(now time.Time) string {
	return now.AddDate(0, 0, -w.DaysToStart).Format(DateFormat)
}

// EndDate returns the last day of the requested window, formatted.
func (w DateWindow) EndDate(now time.Time) string {
	return now.AddDate(0, 0, -w.DaysToEnd).Format(DateFormat)
}

// Days returns the number of rows the date axis spans.
func (w DateWindow) Days() int {
	return w.DaysToStart - w.DaysToEnd
}

// Axis returns the full calendar-date axis for the window, ascending, one
// entry per day: now-(DaysToStart-1) through now-DaysToEnd inclusive.
// The axis starts one day after StartDate: the upstream request window is one
// day wider than the table rows it fills.
func (w DateWindow) Axis(now time.Time) []string {
	days := w.Days()
	if days <= 0 {
		return nil
	}
	dates := make([]string, 0, days)
	for i := w.DaysToStart - 1; i >= w.DaysToEnd; i-- {
		dates = append(dates, now.AddDate(0, 0, -i).Format(DateFormat))
	}
	return dates
}
