package domain

// Sync lifecycle event types published to the broker.
const (
	EventRunStarted   = "run_started"
	EventRegionSynced = "region_synced"
	EventRunCompleted = "run_completed"
	EventRunAborted   = "run_aborted"
)

// SyncEvent describes one step of a run for downstream consumers.
type SyncEvent struct {
	Type    string `json:"type"`
	RunID   string `json:"run_id"`
	Region  string `json:"region,omitempty"`
	Regions int    `json:"regions,omitempty"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}
