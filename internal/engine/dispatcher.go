package engine

import (
	"context"
	"log/slog"
)

// Advancer is the per-step entrypoint the dispatcher drives.
type Advancer interface {
	Advance(ctx context.Context, epoch uint64)
}

// Dispatcher is the continuation trigger: a buffered channel plus one
// worker goroutine. Schedule never blocks the caller; at most one
// continuation is ever pending, and a newer signal always wins over a
// pending stale one so a run started while an old run's continuation
// is still queued cannot be stranded.
type Dispatcher struct {
	ch     chan uint64
	logger *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		ch:     make(chan uint64, 1),
		logger: logger.With("component", "dispatcher"),
	}
}

// Schedule fires one continuation for the given epoch. A pending signal
// that has not been consumed yet is replaced, never the other way
// around: the replaced epoch is at most as new as this one, and a stale
// epoch would be discarded by Advance without rescheduling.
func (d *Dispatcher) Schedule(epoch uint64) {
	for {
		select {
		case d.ch <- epoch:
			return
		default:
		}
		select {
		case stale := <-d.ch:
			d.logger.Debug("replacing pending continuation", "stale_epoch", stale, "epoch", epoch)
		default:
		}
	}
}

// Run consumes continuation signals until ctx is cancelled. Each signal
// invokes exactly one step.
func (d *Dispatcher) Run(ctx context.Context, advancer Advancer) {
	d.logger.Info("dispatcher started")
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher stopped")
			return
		case epoch := <-d.ch:
			advancer.Advance(ctx, epoch)
		}
	}
}
