package calendar

import (
	"time"

	"github.com/username/date-price-time-calculator/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      time.Time
	Type      DayType
	IsWorkday bool
	Note      string
}

// Calendar decides which days count as business days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) bool

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) DayInfo
}

// Weekdays treats Monday through Friday as working days and nothing else
type Weekdays struct{}

// IsWorkday checks if the given date is a working day
func (Weekdays) IsWorkday(date time.Time) bool {
	return dateutil.IsWeekday(date)
}

// GetDayInfo returns detailed info for a specific day
func (w Weekdays) GetDayInfo(date time.Time) DayInfo {
	info := DayInfo{Date: dateutil.StartOfDay(date), Type: DayTypeWeekend}
	if w.IsWorkday(date) {
		info.Type = DayTypeWorkday
		info.IsWorkday = true
	}
	return info
}
