// Package api exposes the calculators as JSON endpoints.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/username/date-price-time-calculator/internal/calendar"
	"github.com/username/date-price-time-calculator/internal/engine"
	"github.com/username/date-price-time-calculator/internal/report"
	"github.com/username/date-price-time-calculator/pkg/dateutil"
	"go.uber.org/zap"
)

// Clock supplies the current instant for age calculations
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	logger    *zap.Logger
	calendar  calendar.Calendar
	formatter report.Formatter
	clock     Clock
}

// NewHandler creates a handler. A nil calendar means Monday-Friday and a
// nil clock means the system clock.
func NewHandler(cal calendar.Calendar, formatter report.Formatter, clock Clock, logger *zap.Logger) *Handler {
	if cal == nil {
		cal = calendar.Weekdays{}
	}
	if clock == nil {
		clock = systemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:    logger,
		calendar:  cal,
		formatter: formatter,
		clock:     clock,
	}
}

// Age reports the age of a birth date as of now.
func (h *Handler) Age(w http.ResponseWriter, r *http.Request) {
	var req AgeRequest
	if !decode(w, r, &req) {
		return
	}

	now := h.clock.Now()
	birth := h.instant("birth_date", req.BirthDate)
	if err := engine.CheckRange(birth, now, false); err != nil {
		h.logger.Debug("Age degraded to empty report", zap.Error(err))
	}

	rep := engine.Age(birth, now)
	writeJSON(w, http.StatusOK, AgeResponse{Report: rep, Text: h.formatter.AgeDetail(rep)})
}

// DateDiff compares two dates.
func (h *Handler) DateDiff(w http.ResponseWriter, r *http.Request) {
	var req DateRangeRequest
	if !decode(w, r, &req) {
		return
	}

	start, end := h.instant("start", req.Start), h.instant("end", req.End)
	if err := engine.CheckRange(start, end, false); err != nil {
		h.logger.Debug("Date difference degraded to empty report", zap.Error(err))
	}

	rep := engine.DateDifference(start, end, engine.WithCalendar(h.calendar))
	writeJSON(w, http.StatusOK, DateDiffResponse{Report: rep, Text: h.formatter.DateDiff(rep)})
}

// DateAdd moves a date by a signed number of days.
func (h *Handler) DateAdd(w http.ResponseWriter, r *http.Request) {
	var req DateAddRequest
	if !decode(w, r, &req) {
		return
	}

	result := engine.AddDays(h.instant("date", req.Date), engine.ParseIntOrZero(req.Days.String()))

	resp := DateAddResponse{LongDate: report.LongDate(result)}
	if !result.IsZero() {
		resp.Date = dateutil.FormatDate(result)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CombineTimes adds or subtracts two clock durations.
func (h *Handler) CombineTimes(w http.ResponseWriter, r *http.Request) {
	var req TimeCombineRequest
	if !decode(w, r, &req) {
		return
	}

	op, err := engine.ParseOp(req.Op)
	if err != nil {
		h.logger.Debug("Unknown time operation, adding", zap.Error(err))
	}

	a := req.A.duration()
	b := req.B.duration()
	d := engine.CombineTimes(a, b, op)

	writeJSON(w, http.StatusOK, ClockResponse{Duration: d, Display: d.String()})
}

// TimeSpan measures from one time of day to another, wrapping midnight.
func (h *Handler) TimeSpan(w http.ResponseWriter, r *http.Request) {
	var req TimeSpanRequest
	if !decode(w, r, &req) {
		return
	}

	var d engine.ClockDuration
	start, startErr := engine.ParseTimeOfDay(req.Start)
	end, endErr := engine.ParseTimeOfDay(req.End)
	if startErr != nil || endErr != nil {
		h.logger.Debug("Unreadable time of day",
			zap.String("start", req.Start), zap.String("end", req.End),
			zap.NamedError("start_error", startErr), zap.NamedError("end_error", endErr))
	} else {
		d = engine.TimeOfDayDuration(start, end)
	}

	writeJSON(w, http.StatusOK, ClockResponse{Duration: d, Display: d.String()})
}

// Duration builds the full duration report between two instants.
func (h *Handler) Duration(w http.ResponseWriter, r *http.Request) {
	var req DateRangeRequest
	if !decode(w, r, &req) {
		return
	}

	start, end := h.instant("start", req.Start), h.instant("end", req.End)
	if err := engine.CheckRange(start, end, true); err != nil {
		h.logger.Debug("Duration degraded to empty report", zap.Error(err))
	}

	rep := engine.ComputeDuration(start, end, engine.WithCalendar(h.calendar))
	writeJSON(w, http.StatusOK, DurationResponse{Report: rep, Text: h.formatter.DurationDetail(rep)})
}

// Price charges an hourly rate for hours and minutes.
func (h *Handler) Price(w http.ResponseWriter, r *http.Request) {
	var req PriceRequest
	if !decode(w, r, &req) {
		return
	}

	q := engine.Price(
		engine.ParseDecimalOrZero(req.Rate.String()),
		engine.ParseIntOrZero(req.Hours.String()),
		engine.ParseIntOrZero(req.Minutes.String()),
	)
	writeJSON(w, http.StatusOK, PriceResponse{
		Quote:  q,
		Amount: h.formatter.Money(q.Amount),
		Text:   h.formatter.Price(q),
	})
}

// instant parses a form date, returning the zero time when it is blank or
// unreadable
func (h *Handler) instant(field, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := engine.ParseInstant(value)
	if err != nil {
		h.logger.Debug("Unreadable date", zap.String("field", field), zap.String("value", value), zap.Error(err))
		return time.Time{}
	}
	return t
}

func (f ClockFields) duration() engine.ClockDuration {
	return engine.ParseClockDuration(f.Hours.String(), f.Minutes.String(), f.Seconds.String())
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
