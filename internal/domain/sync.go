package domain

import "time"

// SyncStatus is the sole source of truth for whether a run is active.
type SyncStatus string

const (
	StatusIdle       SyncStatus = "idle"
	StatusInProgress SyncStatus = "in_progress"
	StatusComplete   SyncStatus = "complete"
	StatusAborted    SyncStatus = "aborted"
)

// Display returns the operator-facing form of the status.
func (s SyncStatus) Display() string {
	switch s {
	case StatusInProgress:
		return "In progress"
	case StatusComplete:
		return "Completed successfully"
	case StatusAborted:
		return "Failed"
	default:
		return "Not synced yet"
	}
}

// SyncState is the persisted run metadata. Queue holds the regions still
// to process, popped one per step. Epoch increases monotonically with
// each start so a continuation dispatched for a superseded run can be
// told apart from the current one.
type SyncState struct {
	Status   SyncStatus `json:"status"`
	Queue    []Region   `json:"queue"`
	Epoch    uint64     `json:"epoch"`
	RunID    string     `json:"run_id"`
	LastSync time.Time  `json:"last_sync"`
	Message  string     `json:"message,omitempty"`
}

// Active reports whether a run owns the queue.
func (s *SyncState) Active() bool {
	return s.Status == StatusInProgress
}

// RunStats holds per-run counters, reported on completion or abort.
type RunStats struct {
	RunID     string
	Total     int
	Updated   int
	Unchanged int
	Imported  int
	Failed    int
	Duration  time.Duration
}
