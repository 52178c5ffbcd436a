package engine

import "github.com/shopspring/decimal"

var minutesPerHour = decimal.NewFromInt(60)

// PriceQuote is an hourly rate applied to a duration
type PriceQuote struct {
	Rate          decimal.Decimal `json:"rate"`
	Hours         int             `json:"hours"`
	Minutes       int             `json:"minutes"`
	DurationHours decimal.Decimal `json:"duration_hours"`
	Amount        decimal.Decimal `json:"amount"`
}

// Price charges rate per hour for hours plus minutes. Negative inputs are
// treated as zero. Amount is rounded to two decimal places.
func Price(rate decimal.Decimal, hours, minutes int) PriceQuote {
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	if hours < 0 {
		hours = 0
	}
	if minutes < 0 {
		minutes = 0
	}

	totalMinutes := decimal.NewFromInt(int64(hours)*60 + int64(minutes))

	return PriceQuote{
		Rate:          rate,
		Hours:         hours,
		Minutes:       minutes,
		DurationHours: totalMinutes.Div(minutesPerHour),
		// Multiply before dividing so 20 minutes does not lose a third
		Amount: rate.Mul(totalMinutes).Div(minutesPerHour).Round(2),
	}
}
