package engine

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"ratesync/internal/domain"
	"ratesync/internal/source/ratesapi"
)

// SettingsStore is the persisted key/value settings and run-state store.
type SettingsStore interface {
	License(ctx context.Context) (string, error)
	Regions(ctx context.Context) ([]domain.Region, error)
	SyncState(ctx context.Context) (*domain.SyncState, error)
	SaveSyncState(ctx context.Context, state *domain.SyncState) error
}

// TableFetcher conditionally downloads a region's rate table.
type TableFetcher interface {
	FetchTable(ctx context.Context, regionID, fingerprint, license string) (*ratesapi.TableResult, error)
}

// TableStore holds the last successfully stored raw table per region.
type TableStore interface {
	PathFor(regionID string) string
	Fingerprint(regionID string) (string, error)
	WriteAtomic(regionID string, r io.Reader) error
}

// Importer replaces a region's rate rows from its table file.
type Importer interface {
	Import(ctx context.Context, path, regionID string) (int, error)
}

// RateStore is the destination rate table.
type RateStore interface {
	DeleteByRegion(ctx context.Context, regionID string) error
	ClearShippingFlag(ctx context.Context, regionID string) error
	DeleteOrphanedLocations(ctx context.Context) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishSyncEvent(ctx context.Context, event domain.SyncEvent) error
	Close() error
}

// Trigger schedules one continuation of the run without blocking the
// caller.
type Trigger interface {
	Schedule(epoch uint64)
}
