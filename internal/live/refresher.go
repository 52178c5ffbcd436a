// Package live re-runs a calculation on a fixed interval so a display
// tracking "now" stays current.
package live

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// DefaultInterval matches the once-per-second refresh of the calculators
const DefaultInterval = time.Second

// RenderFunc recomputes and displays a result for the given instant
type RenderFunc func(now time.Time) error

// Refresher represents a periodic re-render loop
type Refresher struct {
	interval time.Duration
	render   RenderFunc
	logger   *zap.Logger
	now      func() time.Time

	mu       sync.Mutex // Serializes renders so the latest tick always wins
	renders  int
	failures int
}

// NewRefresher creates a refresher. A non-positive interval falls back to
// DefaultInterval.
func NewRefresher(interval time.Duration, render RenderFunc, logger *zap.Logger) *Refresher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{
		interval: interval,
		render:   render,
		logger:   logger,
		now:      time.Now,
	}
}

// Run renders once immediately and then on every tick until ctx is done or
// SIGINT/SIGTERM arrives
func (r *Refresher) Run(ctx context.Context) error {
	r.logger.Debug("Live refresh started", zap.Duration("interval", r.interval))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	r.RefreshNow()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("Live refresh stopped", zap.Int("renders", r.Renders()))
			return nil

		case sig := <-sigChan:
			r.logger.Info("Received signal, stopping live refresh",
				zap.String("signal", sig.String()))
			return nil

		case <-ticker.C:
			r.RefreshNow()
		}
	}
}

// RunWithTimeout runs the refresher for at most timeout
func (r *Refresher) RunWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Run(ctx)
}

// RefreshNow renders immediately. Render errors are logged, never fatal.
func (r *Refresher) RefreshNow() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.renders++
	if err := r.render(r.now()); err != nil {
		r.failures++
		r.logger.Warn("Live render failed", zap.Error(err))
	}
}

// Renders returns how many renders have run
func (r *Refresher) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

// Failures returns how many renders returned an error
func (r *Refresher) Failures() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures
}
