package engine

import (
	"time"

	"github.com/username/date-price-time-calculator/internal/calendar"
)

// Option tunes the range reports
type Option func(*options)

type options struct {
	calendar calendar.Calendar
}

// WithCalendar replaces the Monday-Friday rule used for business days
func WithCalendar(cal calendar.Calendar) Option {
	return func(o *options) {
		if cal != nil {
			o.calendar = cal
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{calendar: calendar.Weekdays{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CountBusinessDays counts working days from start to end, both inclusive.
// It steps one calendar day at a time from start, keeping start's clock
// time, so an end earlier in the day than start excludes end's date.
func CountBusinessDays(start, end time.Time, opts ...Option) int {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}

	o := buildOptions(opts)

	count := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if o.calendar.IsWorkday(current) {
			count++
		}
	}
	return count
}
