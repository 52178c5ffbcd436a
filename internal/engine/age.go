package engine

import "time"

// AgeReport describes elapsed life from a birth date to now
type AgeReport struct {
	Span CalendarSpan `json:"span"`

	TotalDays    int64 `json:"total_days"`
	TotalHours   int64 `json:"total_hours"`
	TotalMinutes int64 `json:"total_minutes"`
	TotalSeconds int64 `json:"total_seconds"`

	BirthWeekday      time.Weekday `json:"birth_weekday"`
	NextBirthday      time.Time    `json:"next_birthday"`
	DaysUntilBirthday int          `json:"days_until_birthday"`
}

// IsZero reports whether the report was rejected
func (r AgeReport) IsZero() bool {
	return r.NextBirthday.IsZero()
}

// Age reports the age at now of someone born at birth. A birth after now
// yields the zero report.
func Age(birth, now time.Time) AgeReport {
	if CheckRange(birth, now, false) != nil {
		return AgeReport{}
	}

	elapsed := now.Sub(birth).Milliseconds()

	next := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(now) {
		next = time.Date(now.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, now.Location())
	}

	until := next.Sub(now).Milliseconds()
	daysUntil := until / msPerDay
	if until%msPerDay != 0 {
		daysUntil++
	}

	return AgeReport{
		Span:              Decompose(birth, now),
		TotalDays:         elapsed / msPerDay,
		TotalHours:        elapsed / msPerHour,
		TotalMinutes:      elapsed / msPerMinute,
		TotalSeconds:      elapsed / msPerSecond,
		BirthWeekday:      birth.Weekday(),
		NextBirthday:      next,
		DaysUntilBirthday: int(daysUntil),
	}
}
