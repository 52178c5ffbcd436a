package engine

import (
	"math"
	"testing"
)

func TestCombineTimes(t *testing.T) {
	tests := []struct {
		name string
		a, b ClockDuration
		op   Op
		want ClockDuration
	}{
		{
			name: "subtract within the hour",
			a:    ClockDuration{Hours: 1, Minutes: 30},
			b:    ClockDuration{Minutes: 45},
			op:   Subtract,
			want: ClockDuration{Minutes: 45},
		},
		{
			name: "negative result clamps to zero",
			a:    ClockDuration{},
			b:    ClockDuration{Hours: 1},
			op:   Subtract,
			want: ClockDuration{},
		},
		{
			name: "hours are not wrapped at 24",
			a:    ClockDuration{Hours: 23, Minutes: 59, Seconds: 59},
			b:    ClockDuration{Seconds: 1},
			op:   Add,
			want: ClockDuration{Hours: 24},
		},
		{
			name: "unnormalized operands",
			a:    ClockDuration{Minutes: 90},
			b:    ClockDuration{Seconds: 75},
			op:   Add,
			want: ClockDuration{Hours: 1, Minutes: 31, Seconds: 15},
		},
		{
			name: "exact cancellation",
			a:    ClockDuration{Hours: 2, Minutes: 5, Seconds: 5},
			b:    ClockDuration{Hours: 2, Minutes: 5, Seconds: 5},
			op:   Subtract,
			want: ClockDuration{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CombineTimes(tt.a, tt.b, tt.op)
			if got != tt.want {
				t.Errorf("CombineTimes(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.op, got, tt.want)
			}
			if got.Minutes >= 60 || got.Seconds >= 60 {
				t.Errorf("CombineTimes result %+v is not normalized", got)
			}
		})
	}
}

func TestCombineTimes_HugeOperandsSaturate(t *testing.T) {
	huge := ClockDuration{Hours: math.MaxInt / 3000}
	ceiling := ClockFromSeconds(maxClockSeconds)

	if got := CombineTimes(huge, ClockDuration{}, Add); got != ceiling {
		t.Errorf("CombineTimes(huge, 0, add) = %+v, want %+v", got, ceiling)
	}
	if got := CombineTimes(huge, huge, Add); got.Hours < ceiling.Hours {
		t.Errorf("CombineTimes(huge, huge, add) = %+v, want at least %+v", got, ceiling)
	}
	if got := CombineTimes(huge, huge, Subtract); got != (ClockDuration{}) {
		t.Errorf("CombineTimes(huge, huge, subtract) = %+v, want zero", got)
	}
	if got := CombineTimes(ClockDuration{Hours: 1}, ClockDuration{Minutes: math.MinInt}, Add); got != (ClockDuration{}) {
		t.Errorf("CombineTimes(1h, -huge min, add) = %+v, want zero", got)
	}
}

func TestClockDuration_String(t *testing.T) {
	tests := []struct {
		in   ClockDuration
		want string
	}{
		{ClockDuration{}, "00:00:00"},
		{ClockDuration{Hours: 2, Minutes: 5, Seconds: 9}, "02:05:09"},
		{ClockDuration{Hours: 123, Minutes: 45}, "123:45:00"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimeOfDayDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end TimeOfDay
		want       ClockDuration
	}{
		{
			name:  "wraps past midnight",
			start: TimeOfDay{Hour: 23},
			end:   TimeOfDay{Hour: 1},
			want:  ClockDuration{Hours: 2},
		},
		{
			name:  "same day",
			start: TimeOfDay{Hour: 9, Minute: 15},
			end:   TimeOfDay{Hour: 17, Minute: 45, Second: 30},
			want:  ClockDuration{Hours: 8, Minutes: 30, Seconds: 30},
		},
		{
			name:  "equal times",
			start: TimeOfDay{Hour: 12},
			end:   TimeOfDay{Hour: 12},
			want:  ClockDuration{},
		},
		{
			name:  "one second back wraps almost a full day",
			start: TimeOfDay{Second: 1},
			end:   TimeOfDay{},
			want:  ClockDuration{Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name:  "invalid hour yields zero",
			start: TimeOfDay{Hour: 25},
			end:   TimeOfDay{Hour: 1},
			want:  ClockDuration{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeOfDayDuration(tt.start, tt.end)
			if got != tt.want {
				t.Errorf("TimeOfDayDuration(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
			if got.Hours >= 24 {
				t.Errorf("TimeOfDayDuration wrapped more than once: %v", got)
			}
		})
	}
}
