package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by ParseDate, tried in order
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Layouts accepted by ParseClock
var clockLayouts = []string{
	"15:04:05",
	"15:04",
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysInMonth returns the number of days in the given month, honouring leap years
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInPreviousMonth returns the length of the month immediately before
// the month of date, in date's year context (January looks at December of
// the previous year).
func DaysInPreviousMonth(date time.Time) int {
	return DaysInMonth(date.Year(), date.Month()-1)
}

// ParseDate parses a date or local datetime string in various formats.
// The result is in time.Local.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, format := range dateLayouts {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into its components
func ParseClock(s string) (hour, minute, second int, err error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t.Hour(), t.Minute(), t.Second(), nil
		}
	}
	return 0, 0, 0, fmt.Errorf("unrecognized time of day %q", s)
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
