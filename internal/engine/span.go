// Package engine implements calendar and clock arithmetic: calendar-unit
// differences between instants, business-day counts, time-of-day sums and
// spans, duration reports and rate pricing. Every function is pure and
// degrades to a zero result instead of failing.
package engine

import (
	"time"

	"github.com/username/date-price-time-calculator/pkg/dateutil"
)

// CalendarSpan is a difference in human calendar units
type CalendarSpan struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// IsZero reports whether all components are zero
func (s CalendarSpan) IsZero() bool {
	return s == CalendarSpan{}
}

// Decompose splits the distance between earlier and later into years,
// months and days, borrowing the length of the month before later's month
// when the day-of-month goes negative. Only the date part of each instant is used.
// An inverted pair yields the zero span.
func Decompose(earlier, later time.Time) CalendarSpan {
	if earlier.IsZero() || later.IsZero() || later.Before(earlier) {
		return CalendarSpan{}
	}

	years := later.Year() - earlier.Year()
	months := int(later.Month()) - int(earlier.Month())
	days := later.Day() - earlier.Day()

	if days < 0 {
		months--
		prev := dateutil.DaysInPreviousMonth(later)
		days += prev
		if days < 0 {
			// Jan 31 to Mar 1: the anchor day does not exist in the
			// borrowed month, so count from that month's last day
			days = later.Day()
		}
	}

	if months < 0 {
		years--
		months += 12
	}

	return CalendarSpan{Years: years, Months: months, Days: days}
}
