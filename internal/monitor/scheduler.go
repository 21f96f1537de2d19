package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CycleRunner runs one polling cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) (*CycleSummary, error)
}

// Scheduler runs cycles back to back at a fixed interval inside one process.
// Cycles run sequentially and never overlap.
type Scheduler struct {
	runner   CycleRunner
	interval time.Duration
	logger   zerolog.Logger
}

// NewScheduler creates a scheduler. Non-positive intervals default to one hour.
func NewScheduler(runner CycleRunner, interval time.Duration, logger zerolog.Logger) *Scheduler {
	schedLogger := logger.With().Str("component", "MonitorScheduler").Logger()
	if interval <= 0 {
		schedLogger.Warn().Dur("configured_interval", interval).Msg("Check interval is not configured or invalid, defaulting to 1 hour.")
		interval = time.Hour
	}
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   schedLogger,
	}
}

// Run performs a cycle immediately and then one per interval until ctx is done.
// Failed cycles are logged and the loop continues. It returns the number of cycles run.
func (s *Scheduler) Run(ctx context.Context) int {
	s.logger.Info().Dur("interval", s.interval).Msg("Starting MonitorScheduler")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	cycles := 0
	for ctx.Err() == nil {
		cycles++
		s.runOnce(ctx)

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}

	s.logger.Info().Int("cycles", cycles).Msg("MonitorScheduler context cancelled, main loop stopped.")
	return cycles
}

func (s *Scheduler) runOnce(ctx context.Context) {
	summary, err := s.runner.RunCycle(ctx)
	if err == nil {
		return
	}
	event := s.logger.Warn().Err(err)
	if summary != nil {
		event = event.Str("cycle_id", summary.CycleID).Str("state", string(summary.State))
	}
	event.Msg("Cycle failed, waiting for next tick")
}
