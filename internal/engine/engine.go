package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ratesync/internal/domain"
	"ratesync/internal/source/ratesapi"
)

// ErrNoLicense means a run could not start because no license key is
// configured.
var ErrNoLicense = errors.New("a valid license key is required")

// Config holds engine policy knobs.
type Config struct {
	// SkipFailedRegions continues the run past a region whose fetch or
	// import failed. The default aborts the whole run on the first
	// failure.
	SkipFailedRegions bool
}

// Engine owns the sync state machine. A run is a chain of Advance
// invocations, each processing exactly one region and scheduling the
// next through the trigger. All state transitions happen under one
// mutex; the network fetch itself runs outside it so a fresh Start is
// never blocked behind a slow download.
type Engine struct {
	settings  SettingsStore
	fetcher   TableFetcher
	tables    TableStore
	importer  Importer
	rates     RateStore
	txManager TransactionManager
	publisher Publisher
	trigger   Trigger
	logger    *slog.Logger
	config    Config

	mu        sync.Mutex
	stats     domain.RunStats
	startedAt time.Time
}

func New(
	settings SettingsStore,
	fetcher TableFetcher,
	tables TableStore,
	importer Importer,
	rates RateStore,
	txManager TransactionManager,
	publisher Publisher,
	trigger Trigger,
	logger *slog.Logger,
	cfg Config,
) *Engine {
	return &Engine{
		settings:  settings,
		fetcher:   fetcher,
		tables:    tables,
		importer:  importer,
		rates:     rates,
		txManager: txManager,
		publisher: publisher,
		trigger:   trigger,
		logger:    logger.With("component", "engine"),
		config:    cfg,
	}
}

// Start begins a new run. An unfinished run (crash, or genuinely still
// going) is superseded, never merged: its state is forced to aborted and
// the new run takes over with a higher epoch. Without a license key the
// run is recorded as aborted and nothing is queued.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, err := e.settings.SyncState(ctx)
	if err != nil {
		return fmt.Errorf("load sync state: %w", err)
	}

	if state.Active() {
		e.logger.Warn("superseding unfinished run", "run_id", state.RunID, "queued", len(state.Queue))
		e.publish(ctx, domain.SyncEvent{
			Type:    domain.EventRunAborted,
			RunID:   state.RunID,
			Message: "superseded by a new sync run",
		})
	}

	epoch := state.Epoch + 1
	runID := uuid.NewString()
	now := time.Now()

	license, err := e.settings.License(ctx)
	if err != nil {
		return fmt.Errorf("load license: %w", err)
	}
	if strings.TrimSpace(license) == "" {
		aborted := &domain.SyncState{
			Status:   domain.StatusAborted,
			Epoch:    epoch,
			RunID:    runID,
			LastSync: now,
			Message:  "Tax rate sync failed: a valid license key is required.",
		}
		if err := e.settings.SaveSyncState(ctx, aborted); err != nil {
			return fmt.Errorf("save sync state: %w", err)
		}
		e.logger.Error("sync not started", "error", ErrNoLicense)
		return ErrNoLicense
	}

	regions, err := e.settings.Regions(ctx)
	if err != nil {
		return fmt.Errorf("load regions: %w", err)
	}

	next := &domain.SyncState{
		Status:   domain.StatusInProgress,
		Queue:    regions,
		Epoch:    epoch,
		RunID:    runID,
		LastSync: now,
		Message:  "Tax rate sync in progress.",
	}
	if err := e.settings.SaveSyncState(ctx, next); err != nil {
		return fmt.Errorf("save sync state: %w", err)
	}

	e.stats = domain.RunStats{RunID: runID, Total: len(regions)}
	e.startedAt = now

	e.logger.Info("sync started", "run_id", runID, "epoch", epoch, "regions", len(regions))
	e.publish(ctx, domain.SyncEvent{
		Type:    domain.EventRunStarted,
		RunID:   runID,
		Regions: len(regions),
	})

	e.trigger.Schedule(epoch)
	return nil
}

// Advance processes one queued region and schedules the next step. It
// no-ops when its epoch is stale (a newer run has since begun) or when
// no run is in progress, so a continuation dispatched for a superseded
// run can fire harmlessly. An empty queue finalizes the run.
func (e *Engine) Advance(ctx context.Context, epoch uint64) {
	e.mu.Lock()

	state, err := e.settings.SyncState(ctx)
	if err != nil {
		e.mu.Unlock()
		e.logger.Error("load sync state", "error", err)
		return
	}
	if state.Epoch != epoch || !state.Active() {
		e.mu.Unlock()
		return
	}

	if len(state.Queue) == 0 {
		e.finalize(ctx, state)
		e.mu.Unlock()
		return
	}

	region := state.Queue[len(state.Queue)-1]
	license, err := e.settings.License(ctx)
	if err != nil {
		e.abort(ctx, state, fmt.Errorf("load license: %w", err))
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	// Network and import happen outside the lock. The run may be
	// superseded meanwhile, so the outcome is only applied if the epoch
	// still matches afterwards.
	updated, count, syncErr := e.syncRegion(ctx, region, license)

	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.settings.SyncState(ctx)
	if err != nil {
		e.logger.Error("load sync state", "error", err)
		return
	}
	if current.Epoch != epoch || !current.Active() {
		e.logger.Debug("discarding step of superseded run", "region", region.ID, "epoch", epoch)
		return
	}

	if syncErr != nil {
		if e.config.SkipFailedRegions && !errors.Is(syncErr, ratesapi.ErrUnauthorized) {
			e.logger.Warn("skipping failed region", "region", region.ID, "error", syncErr)
			e.stats.Failed++
			e.advanceQueue(ctx, current, epoch)
			return
		}
		e.abort(ctx, current, syncErr)
		return
	}

	if updated {
		e.stats.Updated++
	} else {
		e.stats.Unchanged++
	}
	e.stats.Imported += count

	e.logger.Info("region synced",
		"region", region.ID,
		"updated", updated,
		"rows", count,
		"remaining", len(current.Queue)-1,
	)
	e.publish(ctx, domain.SyncEvent{
		Type:   domain.EventRegionSynced,
		RunID:  current.RunID,
		Region: region.ID,
		Count:  count,
	})

	e.advanceQueue(ctx, current, epoch)
}

// State returns the current persisted run state.
func (e *Engine) State(ctx context.Context) (*domain.SyncState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.SyncState(ctx)
}

// syncRegion fetches one region's table (conditionally), stores it, and
// runs the import step. The import runs even when the table is
// unchanged: region policy such as shipping taxability may have changed
// since the last run.
func (e *Engine) syncRegion(ctx context.Context, region domain.Region, license string) (updated bool, count int, err error) {
	fingerprint, err := e.tables.Fingerprint(region.ID)
	if err != nil {
		return false, 0, fmt.Errorf("fingerprint table: %w", err)
	}

	result, err := e.fetcher.FetchTable(ctx, region.ID, fingerprint, license)
	if err != nil {
		return false, 0, err
	}

	if !result.Unchanged {
		if err := e.tables.WriteAtomic(region.ID, bytes.NewReader(result.Body)); err != nil {
			return false, 0, fmt.Errorf("store table: %w", err)
		}
		updated = true
	}

	path := e.tables.PathFor(region.ID)
	err = e.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := e.rates.DeleteByRegion(txCtx, region.ID); err != nil {
			return fmt.Errorf("delete existing rates: %w", err)
		}

		n, err := e.importer.Import(txCtx, path, region.ID)
		if err != nil {
			return fmt.Errorf("import table: %w", err)
		}
		count = n

		if !region.ShippingTaxable {
			if err := e.rates.ClearShippingFlag(txCtx, region.ID); err != nil {
				return fmt.Errorf("clear shipping flag: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return updated, 0, err
	}

	return updated, count, nil
}

// advanceQueue persists the queue minus its processed tail element and
// schedules the next continuation. Caller holds the mutex.
func (e *Engine) advanceQueue(ctx context.Context, state *domain.SyncState, epoch uint64) {
	state.Queue = state.Queue[:len(state.Queue)-1]
	if err := e.settings.SaveSyncState(ctx, state); err != nil {
		e.abort(ctx, state, fmt.Errorf("save sync state: %w", err))
		return
	}
	e.trigger.Schedule(epoch)
}

// finalize completes a drained run: terminal status, orphaned-location
// cleanup, no further continuation. Caller holds the mutex.
func (e *Engine) finalize(ctx context.Context, state *domain.SyncState) {
	state.Status = domain.StatusComplete
	state.Message = "Tax rates synced successfully."
	if err := e.settings.SaveSyncState(ctx, state); err != nil {
		// Never leave the run in_progress with nothing scheduled.
		e.abort(ctx, state, fmt.Errorf("save sync state: %w", err))
		return
	}

	removed, err := e.rates.DeleteOrphanedLocations(ctx)
	if err != nil {
		e.logger.Warn("orphaned location cleanup failed", "error", err)
	} else if removed > 0 {
		e.logger.Debug("removed orphaned locations", "count", removed)
	}

	e.stats.Duration = time.Since(e.startedAt)
	e.logger.Info("sync completed",
		"run_id", state.RunID,
		"updated", e.stats.Updated,
		"unchanged", e.stats.Unchanged,
		"imported", e.stats.Imported,
		"failed", e.stats.Failed,
		"duration", e.stats.Duration,
	)
	e.publish(ctx, domain.SyncEvent{
		Type:    domain.EventRunCompleted,
		RunID:   state.RunID,
		Regions: e.stats.Total,
		Count:   e.stats.Imported,
	})
}

// abort records a fatal run error: aborted status, cleared queue, the
// surfaced message, no further continuation. Caller holds the mutex.
func (e *Engine) abort(ctx context.Context, state *domain.SyncState, cause error) {
	state.Status = domain.StatusAborted
	state.Queue = nil
	state.Message = "Tax rate sync failed: " + cause.Error()

	if err := e.settings.SaveSyncState(ctx, state); err != nil {
		e.logger.Error("save sync state", "error", err)
	}

	e.logger.Error("sync aborted", "run_id", state.RunID, "error", cause)
	e.publish(ctx, domain.SyncEvent{
		Type:    domain.EventRunAborted,
		RunID:   state.RunID,
		Message: cause.Error(),
	})
}

func (e *Engine) publish(ctx context.Context, event domain.SyncEvent) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishSyncEvent(ctx, event); err != nil {
		e.logger.Warn("publish sync event", "type", event.Type, "error", err)
	}
}
