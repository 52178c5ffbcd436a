package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

var (
	daysPerYear   = decimal.RequireFromString("365.25")
	daysPerDecade = decimal.RequireFromString("3652.5")
	hundred       = decimal.NewFromInt(100)
)

// DurationReport describes the distance between two instants in several
// independent ways. Calendar fields come from Decompose; totals and the
// sub-day remainder come from the raw millisecond difference. The two views
// are allowed to disagree across months of different length.
type DurationReport struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Weeks  int `json:"weeks"`
	Days   int `json:"days"`

	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`

	TotalMilliseconds int64 `json:"total_milliseconds"`
	TotalSeconds      int64 `json:"total_seconds"`
	TotalMinutes      int64 `json:"total_minutes"`
	TotalHours        int64 `json:"total_hours"`
	TotalDays         int64 `json:"total_days"`

	BusinessDays int `json:"business_days"`

	PercentOfYear   decimal.Decimal `json:"percent_of_year"`
	PercentOfDecade decimal.Decimal `json:"percent_of_decade"`
}

// ComputeDuration builds the report for start < end. Equal or inverted
// inputs return the zero report.
func ComputeDuration(start, end time.Time, opts ...Option) DurationReport {
	if CheckRange(start, end, true) != nil {
		return DurationReport{}
	}

	span := Decompose(start, end)
	totalMs := end.Sub(start).Milliseconds()
	totalDays := totalMs / msPerDay

	return DurationReport{
		Years:  span.Years,
		Months: span.Months,
		Weeks:  span.Days / 7,
		Days:   span.Days % 7,

		Hours:   int((totalMs % msPerDay) / msPerHour),
		Minutes: int((totalMs % msPerHour) / msPerMinute),
		Seconds: int((totalMs % msPerMinute) / msPerSecond),

		TotalMilliseconds: totalMs,
		TotalSeconds:      totalMs / msPerSecond,
		TotalMinutes:      totalMs / msPerMinute,
		TotalHours:        totalMs / msPerHour,
		TotalDays:         totalDays,

		BusinessDays: CountBusinessDays(start, end, opts...),

		PercentOfYear:   percentOf(totalDays, daysPerYear),
		PercentOfDecade: percentOf(totalDays, daysPerDecade),
	}
}

// percentOf returns days/period*100 rounded to two places
func percentOf(days int64, period decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(days).Div(period).Mul(hundred).Round(2)
}
