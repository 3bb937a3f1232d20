package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Starter begins a new sync run.
type Starter interface {
	Start(ctx context.Context) error
}

// Scheduler kicks off a run immediately and then once per interval.
// Each kick only seeds the run; the engine's continuation chain does the
// actual work, so a tick never blocks on the full queue.
type Scheduler struct {
	starter  Starter
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(starter Starter, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		starter:  starter,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if err := s.starter.Start(syncCtx); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("scheduled sync failed to start", "error", err)
	}
}
