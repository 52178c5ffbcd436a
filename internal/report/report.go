// Package report renders engine results as the plain text blocks the
// calculators copy to the clipboard.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/date-price-time-calculator/internal/engine"
	"github.com/username/date-price-time-calculator/pkg/dateutil"
)

// DefaultCurrency is used when no symbol is configured
const DefaultCurrency = "Rs"

// Formatter holds display preferences
type Formatter struct {
	Currency string
}

// NewFormatter creates a formatter; an empty symbol falls back to DefaultCurrency
func NewFormatter(currency string) Formatter {
	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}
	return Formatter{Currency: currency}
}

// Money renders "Rs 150.00"
func (f Formatter) Money(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", f.Currency, amount.StringFixed(2))
}

// Percent renders "20.26%"
func Percent(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}

// Date renders a date, or "-" when unset
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return dateutil.FormatDate(t)
}

// LongDate renders "Friday, March 1, 2024", or "-" when unset
func LongDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Monday, January 2, 2006")
}

// Age is the copy text for the age calculator
func (f Formatter) Age(r engine.AgeReport) string {
	return fmt.Sprintf("Age: %d years, %d months, %d days\nTotal Days: %d\nNext Birthday: %s",
		r.Span.Years, r.Span.Months, r.Span.Days, r.TotalDays, Date(r.NextBirthday))
}

// AgeDetail extends Age with the remaining totals
func (f Formatter) AgeDetail(r engine.AgeReport) string {
	var b strings.Builder
	b.WriteString(f.Age(r))
	fmt.Fprintf(&b, "\nTotal Hours: %d\nTotal Minutes: %d\nTotal Seconds: %d", r.TotalHours, r.TotalMinutes, r.TotalSeconds)
	if r.IsZero() {
		b.WriteString("\nBorn On: -\nDays Until Birthday: -")
	} else {
		fmt.Fprintf(&b, "\nBorn On: %s\nDays Until Birthday: %d", r.BirthWeekday, r.DaysUntilBirthday)
	}
	return b.String()
}

// DateDiff is the copy text for the date difference calculator
func (f Formatter) DateDiff(r engine.DateDiffReport) string {
	return fmt.Sprintf("Date Difference: %d years, %d months, %d days\nTotal Days: %d\nBusiness Days: %d",
		r.Span.Years, r.Span.Months, r.Span.Days, r.TotalDays, r.BusinessDays)
}

// Time is the copy text for the time calculator
func (f Formatter) Time(operation, duration engine.ClockDuration) string {
	return fmt.Sprintf("Time Operation Result: %s\nTime Duration: %s", operation, duration)
}

// Duration is the copy text for the duration calculator
func (f Formatter) Duration(r engine.DurationReport) string {
	return fmt.Sprintf("Duration: %d years, %d months, %d weeks, %d days\nTotal Days: %d\nBusiness Days: %d",
		r.Years, r.Months, r.Weeks, r.Days, r.TotalDays, r.BusinessDays)
}

// DurationDetail extends Duration with the clock remainder, totals and percentages
func (f Formatter) DurationDetail(r engine.DurationReport) string {
	var b strings.Builder
	b.WriteString(f.Duration(r))
	fmt.Fprintf(&b, "\nTime: %s", engine.ClockDuration{Hours: r.Hours, Minutes: r.Minutes, Seconds: r.Seconds})
	fmt.Fprintf(&b, "\nTotal Hours: %d\nTotal Minutes: %d", r.TotalHours, r.TotalMinutes)
	fmt.Fprintf(&b, "\nOf a Year: %s\nOf a Decade: %s", Percent(r.PercentOfYear), Percent(r.PercentOfDecade))
	return b.String()
}

// Price is the copy text for the price calculator
func (f Formatter) Price(q engine.PriceQuote) string {
	return fmt.Sprintf("Rate: %s %s/hour\nTime: %d hours, %d minutes\nTotal Price: %s",
		f.Currency, q.Rate.String(), q.Hours, q.Minutes, f.Money(q.Amount))
}
