package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWeekdays_GetDayInfo(t *testing.T) {
	var cal Weekdays

	tests := []struct {
		name     string
		date     time.Time
		wantType DayType
		wantWork bool
	}{
		{"Monday", day(2024, time.January, 1), DayTypeWorkday, true},
		{"Friday", day(2024, time.January, 5), DayTypeWorkday, true},
		{"Saturday", day(2024, time.January, 6), DayTypeWeekend, false},
		{"Sunday", day(2024, time.January, 7), DayTypeWeekend, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := cal.GetDayInfo(tt.date)
			if info.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", info.Type, tt.wantType)
			}
			if info.IsWorkday != tt.wantWork || cal.IsWorkday(tt.date) != tt.wantWork {
				t.Errorf("IsWorkday = %v, want %v", info.IsWorkday, tt.wantWork)
			}
		})
	}
}

func TestFileCalendar_Read(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	fc := NewFileCalendar("", logger)

	data := `# company calendar
2024-01-01 holiday New Year's Day
2024-01-06 workday Make-up Saturday
not-a-date holiday
2024-01-08 vacation
2024-01-09
`
	if err := fc.read(strings.NewReader(data)); err != nil {
		t.Fatalf("read() error = %v", err)
	}

	if fc.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", fc.Len())
	}

	info, ok := fc.Lookup(day(2024, time.January, 1))
	if !ok {
		t.Fatal("expected override for 2024-01-01")
	}
	if info.Type != DayTypeHoliday || info.IsWorkday {
		t.Errorf("2024-01-01 = %+v, want non-working holiday", info)
	}
	if info.Note != "New Year's Day" {
		t.Errorf("Note = %q, want %q", info.Note, "New Year's Day")
	}

	if !fc.IsWorkday(day(2024, time.January, 6)) {
		t.Error("2024-01-06 should be a working day")
	}
	if fc.IsWorkday(day(2024, time.January, 2)) {
		t.Error("unlisted day should not be a working day for the file calendar alone")
	}
}

func TestCompositeCalendar(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	dir := t.TempDir()
	path := filepath.Join(dir, "holidays.txt")
	content := "2024-01-01 holiday New Year's Day\n2024-01-06 workday\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cal, err := New(path, logger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"holiday Monday is off", day(2024, time.January, 1), false},
		{"ordinary Tuesday works", day(2024, time.January, 2), true},
		{"make-up Saturday works", day(2024, time.January, 6), true},
		{"ordinary Sunday is off", day(2024, time.January, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.IsWorkday(tt.date); got != tt.want {
				t.Errorf("IsWorkday(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestNew_WithoutFile(t *testing.T) {
	cal, err := New("", zap.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := cal.(Weekdays); !ok {
		t.Errorf("New(\"\") = %T, want Weekdays", cal)
	}
}

func TestNew_MissingFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop()); err == nil {
		t.Error("expected error for missing holidays file")
	}
}
