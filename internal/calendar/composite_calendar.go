package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with an override strategy
// Overrides: FileCalendar (local file)
// Base: any Calendar, usually Weekdays
type CompositeCalendar struct {
	base      Calendar
	overrides *FileCalendar
	logger    *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(base Calendar, overrides *FileCalendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		base:      base,
		overrides: overrides,
		logger:    logger,
	}
}

// IsWorkday checks if the given date is a working day
func (cc *CompositeCalendar) IsWorkday(date time.Time) bool {
	return cc.GetDayInfo(date).IsWorkday
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(date time.Time) DayInfo {
	if cc.overrides != nil {
		if info, ok := cc.overrides.Lookup(date); ok {
			return info
		}
	}
	return cc.base.GetDayInfo(date)
}

// LoadOverrides loads the override file
func (cc *CompositeCalendar) LoadOverrides() error {
	if cc.overrides == nil {
		return nil
	}
	if err := cc.overrides.Load(); err != nil {
		return fmt.Errorf("failed to load calendar overrides: %w", err)
	}
	cc.logger.Info("Calendar overrides loaded successfully",
		zap.Int("days", cc.overrides.Len()))
	return nil
}

// New builds the business-day calendar. An empty holidaysFile yields plain
// Weekdays; otherwise the file is loaded and layered over Weekdays.
func New(holidaysFile string, logger *zap.Logger) (Calendar, error) {
	if holidaysFile == "" {
		return Weekdays{}, nil
	}

	cc := NewCompositeCalendar(Weekdays{}, NewFileCalendar(holidaysFile, logger), logger)
	if err := cc.LoadOverrides(); err != nil {
		return nil, err
	}
	return cc, nil
}
