package api

import (
	"encoding/json"

	"github.com/username/date-price-time-calculator/internal/engine"
)

// Request bodies carry raw form text. Field values that cannot be read are
// treated as missing and produce a zeroed result rather than an error.

// FormValue is a numeric form field. It accepts a JSON string or number;
// null, booleans, objects and arrays read as blank.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler
func (v *FormValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*v = FormValue(n.String())
		return nil
	}

	*v = ""
	return nil
}

func (v FormValue) String() string { return string(v) }

// AgeRequest asks for an age as of now
type AgeRequest struct {
	BirthDate string `json:"birth_date"`
}

// AgeResponse is returned by POST /api/age
type AgeResponse struct {
	Report engine.AgeReport `json:"report"`
	Text   string           `json:"text"`
}

// DateRangeRequest names two instants
type DateRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DateDiffResponse is returned by POST /api/date-diff
type DateDiffResponse struct {
	Report engine.DateDiffReport `json:"report"`
	Text   string                `json:"text"`
}

// DateAddRequest moves a date by a number of days
type DateAddRequest struct {
	Date string    `json:"date"`
	Days FormValue `json:"days"`
}

// DateAddResponse is returned by POST /api/date-add. Date is empty when
// the base date could not be read.
type DateAddResponse struct {
	Date     string `json:"date"`
	LongDate string `json:"long_date"`
}

// ClockFields is an hours/minutes/seconds triple as typed into a form
type ClockFields struct {
	Hours   FormValue `json:"hours"`
	Minutes FormValue `json:"minutes"`
	Seconds FormValue `json:"seconds"`
}

// TimeCombineRequest adds or subtracts two durations
type TimeCombineRequest struct {
	A  ClockFields `json:"a"`
	B  ClockFields `json:"b"`
	Op string      `json:"op"`
}

// TimeSpanRequest measures between two times of day
type TimeSpanRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ClockResponse is returned by the time endpoints
type ClockResponse struct {
	Duration engine.ClockDuration `json:"duration"`
	Display  string               `json:"display"`
}

// DurationResponse is returned by POST /api/duration
type DurationResponse struct {
	Report engine.DurationReport `json:"report"`
	Text   string                `json:"text"`
}

// PriceRequest charges an hourly rate for a duration
type PriceRequest struct {
	Rate    FormValue `json:"rate"`
	Hours   FormValue `json:"hours"`
	Minutes FormValue `json:"minutes"`
}

// PriceResponse is returned by POST /api/price
type PriceResponse struct {
	Quote  engine.PriceQuote `json:"quote"`
	Amount string            `json:"amount"`
	Text   string            `json:"text"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
