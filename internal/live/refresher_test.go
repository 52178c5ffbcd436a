package live

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewRefresher_DefaultInterval(t *testing.T) {
	r := NewRefresher(0, func(time.Time) error { return nil }, nil)
	if r.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", r.interval, DefaultInterval)
	}
}

func TestRun_RendersImmediatelyAndStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen []time.Time
	fixed := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	r := NewRefresher(time.Hour, func(now time.Time) error {
		seen = append(seen, now)
		return nil
	}, zap.NewNop())
	r.now = func() time.Time { return fixed }

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(seen) != 1 || !seen[0].Equal(fixed) {
		t.Errorf("renders = %v, want one render at %v", seen, fixed)
	}
}

func TestRunWithTimeout_Ticks(t *testing.T) {
	r := NewRefresher(5*time.Millisecond, func(time.Time) error { return nil }, zap.NewNop())

	if err := r.RunWithTimeout(60 * time.Millisecond); err != nil {
		t.Fatalf("RunWithTimeout() error = %v", err)
	}
	if got := r.Renders(); got < 2 {
		t.Errorf("Renders() = %d, want at least 2", got)
	}
}

func TestRefreshNow_CountsFailures(t *testing.T) {
	calls := 0
	r := NewRefresher(time.Second, func(time.Time) error {
		calls++
		if calls%2 == 0 {
			return errors.New("stdout closed")
		}
		return nil
	}, zap.NewNop())

	for i := 0; i < 4; i++ {
		r.RefreshNow()
	}

	if r.Renders() != 4 {
		t.Errorf("Renders() = %d, want 4", r.Renders())
	}
	if r.Failures() != 2 {
		t.Errorf("Failures() = %d, want 2", r.Failures())
	}
}
