// Package dispatch runs the durable execution ledger: claiming queued run
// dispatches under timed leases, driving agent runs, and writing fenced
// terminal transitions.
package dispatch

import (
	"context"
	"errors"
	"time"
)

// Claim loop sentinels.
var (
	// ErrNoDispatchAvailable means the claim query found no due row.
	ErrNoDispatchAvailable = errors.New("no dispatches available")

	// ErrAtCapacity means the global running count reached the
	// runtime-control ceiling.
	ErrAtCapacity = errors.New("at maximum concurrent dispatches")

	// ErrProcessingPaused means runtime control has processing disabled.
	ErrProcessingPaused = errors.New("processing is paused")

	// errLeaseLost means a fenced write matched zero rows: another actor
	// owns the dispatch now.
	errLeaseLost = errors.New("dispatch lease lost")
)

// RunCompleteNotifier is told when a dispatch reaches a terminal state so
// the session queue can drain pending messages or go idle. Implemented by
// sessionqueue.Manager.
type RunCompleteNotifier interface {
	OnRunComplete(ctx context.Context, queueKey, dispatchID string, status string)
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is a point-in-time snapshot of one worker.
type WorkerHealth struct {
	ID                  string       `json:"id"`
	Status              WorkerStatus `json:"status"`
	CurrentDispatchID   string       `json:"current_dispatch_id,omitempty"`
	DispatchesProcessed int          `json:"dispatches_processed"`
	LastActivity        time.Time    `json:"last_activity"`
}

// PoolHealth is the dispatcher pool's health report.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveDispatches int            `json:"active_dispatches"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
