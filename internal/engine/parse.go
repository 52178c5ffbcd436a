package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/date-price-time-calculator/pkg/dateutil"
)

// ParseIntOrZero reads a form integer, returning 0 for blank or malformed text
func ParseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseDecimalOrZero reads a form decimal, returning zero for blank or
// malformed text
func ParseDecimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseInstant reads a local date or datetime
func ParseInstant(s string) (time.Time, error) {
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}
	return t, nil
}

// ParseTimeOfDay reads "HH:MM" or "HH:MM:SS"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	h, m, sec, err := dateutil.ParseClock(s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}
	return TimeOfDay{Hour: h, Minute: m, Second: sec}, nil
}

// ParseClockDuration builds a duration from three form fields, each
// defaulting to zero
func ParseClockDuration(hours, minutes, seconds string) ClockDuration {
	return ClockDuration{
		Hours:   ParseIntOrZero(hours),
		Minutes: ParseIntOrZero(minutes),
		Seconds: ParseIntOrZero(seconds),
	}
}

// ParseOp reads "add" or "subtract" (also "+", "-", "sub")
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "add", "+", "plus":
		return Add, nil
	case "subtract", "sub", "-", "minus":
		return Subtract, nil
	default:
		return Add, fmt.Errorf("unknown operation %q: %w", s, ErrInvalidInput)
	}
}
