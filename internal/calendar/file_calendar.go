package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileCalendar holds per-date overrides read from a local text file.
// Dates not listed in the file are unknown to it.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[string]DayInfo // key: "YYYY-MM-DD"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	if err := fc.read(file); err != nil {
		return err
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.data)))

	return nil
}

func (fc *FileCalendar) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD type [note]
		// Example: 2025-12-25 holiday Christmas Day
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := time.ParseInLocation("2006-01-02", parts[0], time.Local)
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		info := DayInfo{Date: date}
		if len(parts) == 3 {
			info.Note = strings.TrimSpace(parts[2])
		}

		switch parts[1] {
		case "workday":
			info.Type = DayTypeWorkday
			info.IsWorkday = true
		case "weekend":
			info.Type = DayTypeWeekend
		case "holiday":
			info.Type = DayTypeHoliday
		default:
			fc.logger.Warn("Unknown day type", zap.String("type", parts[1]))
			continue
		}

		fc.data[parts[0]] = info
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}
	return nil
}

// Lookup returns the override for date, if the file lists one
func (fc *FileCalendar) Lookup(date time.Time) (DayInfo, bool) {
	info, ok := fc.data[date.Format("2006-01-02")]
	return info, ok
}

// IsWorkday checks if the given date is a working day.
// Unlisted dates are not working days.
func (fc *FileCalendar) IsWorkday(date time.Time) bool {
	info, ok := fc.Lookup(date)
	return ok && info.IsWorkday
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date time.Time) DayInfo {
	if info, ok := fc.Lookup(date); ok {
		return info
	}
	return DayInfo{Date: date, Type: DayTypeWeekend}
}

// Len returns the number of dates the file overrides
func (fc *FileCalendar) Len() int {
	return len(fc.data)
}
