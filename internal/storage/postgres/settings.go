package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"ratesync/internal/domain"
)

// Persisted setting keys. Each key is written atomically on its own;
// there is no cross-key transaction guarantee unless the caller wraps
// the calls in one.
const (
	KeyLicense    = "license_key"
	KeyRegions    = "region_list"
	KeySyncStatus = "sync_status"
	KeySyncQueue  = "sync_queue"
	KeySyncEpoch  = "sync_epoch"
	KeySyncRunID  = "sync_run_id"
	KeySyncMsg    = "sync_message"
	KeyLastSync   = "last_sync_timestamp"
)

// SettingsStore is a durable key/value settings store with typed
// accessors for the sync state layered on top.
type SettingsStore struct {
	db *sqlx.DB
}

func NewSettingsStore(db *sqlx.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the value stored under key, or def when the key is absent.
func (s *SettingsStore) Get(ctx context.Context, key, def string) (string, error) {
	var value string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &value,
		"SELECT value FROM ratesync_settings WHERE key = $1",
		key,
	)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO ratesync_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	return err
}

func (s *SettingsStore) License(ctx context.Context) (string, error) {
	return s.Get(ctx, KeyLicense, "")
}

func (s *SettingsStore) SetLicense(ctx context.Context, license string) error {
	return s.Set(ctx, KeyLicense, license)
}

func (s *SettingsStore) Regions(ctx context.Context) ([]domain.Region, error) {
	raw, err := s.Get(ctx, KeyRegions, "[]")
	if err != nil {
		return nil, err
	}

	var regions []domain.Region
	if err := json.Unmarshal([]byte(raw), &regions); err != nil {
		return nil, fmt.Errorf("decode region list: %w", err)
	}
	return regions, nil
}

func (s *SettingsStore) SetRegions(ctx context.Context, regions []domain.Region) error {
	raw, err := json.Marshal(regions)
	if err != nil {
		return fmt.Errorf("encode region list: %w", err)
	}
	return s.Set(ctx, KeyRegions, string(raw))
}

// SyncState assembles the persisted run metadata. Absent keys yield the
// zero state with status idle.
func (s *SettingsStore) SyncState(ctx context.Context) (*domain.SyncState, error) {
	state := &domain.SyncState{Status: domain.StatusIdle}

	status, err := s.Get(ctx, KeySyncStatus, string(domain.StatusIdle))
	if err != nil {
		return nil, err
	}
	state.Status = domain.SyncStatus(status)

	rawQueue, err := s.Get(ctx, KeySyncQueue, "[]")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(rawQueue), &state.Queue); err != nil {
		return nil, fmt.Errorf("decode sync queue: %w", err)
	}

	rawEpoch, err := s.Get(ctx, KeySyncEpoch, "0")
	if err != nil {
		return nil, err
	}
	if state.Epoch, err = strconv.ParseUint(rawEpoch, 10, 64); err != nil {
		return nil, fmt.Errorf("decode sync epoch: %w", err)
	}

	if state.RunID, err = s.Get(ctx, KeySyncRunID, ""); err != nil {
		return nil, err
	}
	if state.Message, err = s.Get(ctx, KeySyncMsg, ""); err != nil {
		return nil, err
	}

	rawTS, err := s.Get(ctx, KeyLastSync, "0")
	if err != nil {
		return nil, err
	}
	ts, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode last sync timestamp: %w", err)
	}
	if ts > 0 {
		state.LastSync = time.Unix(ts, 0)
	}

	return state, nil
}

func (s *SettingsStore) SaveSyncState(ctx context.Context, state *domain.SyncState) error {
	rawQueue, err := json.Marshal(state.Queue)
	if err != nil {
		return fmt.Errorf("encode sync queue: %w", err)
	}

	var ts int64
	if !state.LastSync.IsZero() {
		ts = state.LastSync.Unix()
	}

	pairs := [][2]string{
		{KeySyncStatus, string(state.Status)},
		{KeySyncQueue, string(rawQueue)},
		{KeySyncEpoch, strconv.FormatUint(state.Epoch, 10)},
		{KeySyncRunID, state.RunID},
		{KeySyncMsg, state.Message},
		{KeyLastSync, strconv.FormatInt(ts, 10)},
	}
	for _, kv := range pairs {
		if err := s.Set(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("save %s: %w", kv[0], err)
		}
	}
	return nil
}
