package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/date-price-time-calculator/internal/engine"
)

func TestFormatter_Money(t *testing.T) {
	tests := []struct {
		currency string
		amount   string
		want     string
	}{
		{"", "150", "Rs 150.00"},
		{"$", "23.625", "$ 23.63"},
		{"EUR", "0", "EUR 0.00"},
	}

	for _, tt := range tests {
		f := NewFormatter(tt.currency)
		if got := f.Money(decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("Money(%s) with %q = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestFormatter_Price(t *testing.T) {
	f := NewFormatter("")
	q := engine.Price(decimal.NewFromInt(100), 1, 30)

	want := "Rate: Rs 100/hour\nTime: 1 hours, 30 minutes\nTotal Price: Rs 150.00"
	if got := f.Price(q); got != want {
		t.Errorf("Price() = %q, want %q", got, want)
	}
}

func TestFormatter_Age(t *testing.T) {
	f := NewFormatter("")
	birth := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	got := f.Age(engine.Age(birth, now))
	if !strings.HasPrefix(got, "Age: 33 years, 8 months, 24 days\n") {
		t.Errorf("Age() = %q", got)
	}
	if !strings.HasSuffix(got, "Next Birthday: 2024-06-15") {
		t.Errorf("Age() = %q, want next birthday line", got)
	}

	detail := f.AgeDetail(engine.Age(birth, now))
	if !strings.Contains(detail, "Born On: Friday") || !strings.Contains(detail, "Days Until Birthday: 97") {
		t.Errorf("AgeDetail() = %q", detail)
	}
}

func TestFormatter_EmptyAge(t *testing.T) {
	f := NewFormatter("")
	got := f.AgeDetail(engine.AgeReport{})

	want := "Age: 0 years, 0 months, 0 days\nTotal Days: 0\nNext Birthday: -\n" +
		"Total Hours: 0\nTotal Minutes: 0\nTotal Seconds: 0\nBorn On: -\nDays Until Birthday: -"
	if got != want {
		t.Errorf("AgeDetail(empty) = %q, want %q", got, want)
	}
}

func TestFormatter_Time(t *testing.T) {
	f := NewFormatter("")
	op := engine.CombineTimes(engine.ClockDuration{Hours: 1, Minutes: 30}, engine.ClockDuration{Minutes: 45}, engine.Subtract)
	span := engine.TimeOfDayDuration(engine.TimeOfDay{Hour: 23}, engine.TimeOfDay{Hour: 1})

	want := "Time Operation Result: 00:45:00\nTime Duration: 02:00:00"
	if got := f.Time(op, span); got != want {
		t.Errorf("Time() = %q, want %q", got, want)
	}
}

func TestFormatter_Duration(t *testing.T) {
	f := NewFormatter("")
	r := engine.ComputeDuration(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC),
	)

	want := "Duration: 0 years, 2 months, 2 weeks, 0 days\nTotal Days: 74\nBusiness Days: 55"
	if got := f.Duration(r); got != want {
		t.Errorf("Duration() = %q, want %q", got, want)
	}

	detail := f.DurationDetail(r)
	for _, line := range []string{"Time: 12:30:45", "Of a Year: 20.26%", "Of a Decade: 2.03%"} {
		if !strings.Contains(detail, line) {
			t.Errorf("DurationDetail() missing %q in %q", line, detail)
		}
	}

	if got := Percent(engine.DurationReport{}.PercentOfYear); got != "0.00%" {
		t.Errorf("Percent(zero) = %q, want 0.00%%", got)
	}
}

func TestFormatter_DateDiff(t *testing.T) {
	f := NewFormatter("")
	r := engine.DateDifference(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	want := "Date Difference: 0 years, 0 months, 30 days\nTotal Days: 30\nBusiness Days: 23"
	if got := f.DateDiff(r); got != want {
		t.Errorf("DateDiff() = %q, want %q", got, want)
	}
}

func TestLongDate(t *testing.T) {
	if got := LongDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)); got != "Friday, March 1, 2024" {
		t.Errorf("LongDate() = %q", got)
	}
	if got := LongDate(time.Time{}); got != "-" {
		t.Errorf("LongDate(zero) = %q, want -", got)
	}
}
