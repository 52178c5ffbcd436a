package engine

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400

	// maxClockSeconds bounds every flattened duration so that sums of
	// two operands cannot overflow int
	maxClockSeconds = math.MaxInt / 4
)

// ClockDuration is a non-negative elapsed time. Hours are unbounded.
type ClockDuration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// ClockFromSeconds expands a second count, clamping negatives to zero
func ClockFromSeconds(total int) ClockDuration {
	if total < 0 {
		total = 0
	}
	return ClockDuration{
		Hours:   total / secondsPerHour,
		Minutes: (total % secondsPerHour) / secondsPerMinute,
		Seconds: total % secondsPerMinute,
	}
}

// TotalSeconds flattens the duration. Components are not required to be
// normalized. The result saturates at maxClockSeconds in either direction.
func (c ClockDuration) TotalSeconds() int {
	return saturate(scaleSeconds(c.Hours, secondsPerHour) +
		scaleSeconds(c.Minutes, secondsPerMinute) +
		saturate(c.Seconds))
}

func scaleSeconds(v, unit int) int {
	if v > maxClockSeconds/unit {
		return maxClockSeconds
	}
	if v < -maxClockSeconds/unit {
		return -maxClockSeconds
	}
	return v * unit
}

func saturate(v int) int {
	if v > maxClockSeconds {
		return maxClockSeconds
	}
	if v < -maxClockSeconds {
		return -maxClockSeconds
	}
	return v
}

// String renders HH:MM:SS, with hours widening past two digits as needed
func (c ClockDuration) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// Op selects the clock operation
type Op int

const (
	Add Op = iota
	Subtract
)

func (op Op) String() string {
	if op == Subtract {
		return "subtract"
	}
	return "add"
}

// CombineTimes adds or subtracts two durations. A result below zero
// clamps to 00:00:00.
func CombineTimes(a, b ClockDuration, op Op) ClockDuration {
	total := a.TotalSeconds()
	if op == Subtract {
		total -= b.TotalSeconds()
	} else {
		total += b.TotalSeconds()
	}
	return ClockFromSeconds(total)
}

// TimeOfDay is a wall-clock time without a date
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// Valid reports whether the components fit within a day
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60
}

// SecondOfDay returns seconds since midnight
func (t TimeOfDay) SecondOfDay() int {
	return t.Hour*secondsPerHour + t.Minute*secondsPerMinute + t.Second
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// TimeOfDayDuration measures from start to end. An end earlier than start
// falls on the following day; the span never wraps more than once.
// Invalid times yield zero.
func TimeOfDayDuration(start, end TimeOfDay) ClockDuration {
	if !start.Valid() || !end.Valid() {
		return ClockDuration{}
	}

	s, e := start.SecondOfDay(), end.SecondOfDay()
	if e < s {
		e += secondsPerDay
	}
	return ClockFromSeconds(e - s)
}
