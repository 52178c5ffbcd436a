package engine

import "time"

// DateDiffReport compares two calendar dates
type DateDiffReport struct {
	Span         CalendarSpan `json:"span"`
	TotalDays    int64        `json:"total_days"`
	BusinessDays int          `json:"business_days"`
	Weeks        int64        `json:"weeks"`
}

// DateDifference reports the distance from start to end. Equal dates are
// valid; start after end yields the zero report.
func DateDifference(start, end time.Time, opts ...Option) DateDiffReport {
	if CheckRange(start, end, false) != nil {
		return DateDiffReport{}
	}

	totalDays := end.Sub(start).Milliseconds() / msPerDay

	return DateDiffReport{
		Span:         Decompose(start, end),
		TotalDays:    totalDays,
		BusinessDays: CountBusinessDays(start, end, opts...),
		Weeks:        totalDays / 7,
	}
}

// AddDays moves base by n calendar days; n may be negative.
// A zero base stays zero.
func AddDays(base time.Time, n int) time.Time {
	if base.IsZero() {
		return time.Time{}
	}
	return base.AddDate(0, 0, n)
}
