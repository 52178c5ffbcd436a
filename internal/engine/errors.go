package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidInput is returned by boundary parsers for values that
	// cannot be read as a date, time or number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUndefined is returned when a range is inverted (or empty where a
	// strictly increasing range is required).
	ErrUndefined = errors.New("undefined result")
)

// CheckRange explains why an operation over [start, end] would produce a
// zeroed result. With strict set, start must be strictly before end.
func CheckRange(start, end time.Time, strict bool) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("missing range endpoint: %w", ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("end %s is before start %s: %w",
			end.Format(time.RFC3339), start.Format(time.RFC3339), ErrUndefined)
	}
	if strict && end.Equal(start) {
		return fmt.Errorf("empty range at %s: %w", start.Format(time.RFC3339), ErrUndefined)
	}
	return nil
}

// IsInvalidInput reports whether err stems from unreadable input
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUndefined reports whether err stems from an inverted or empty range
func IsUndefined(err error) bool {
	return errors.Is(err, ErrUndefined)
}
