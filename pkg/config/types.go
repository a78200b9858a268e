// Package config loads and validates hookline configuration: built-in
// defaults, overlaid by hookline.yaml, overlaid by environment variables.
package config

import "time"

// TrustMode controls whether third-party plugin handlers may register.
type TrustMode string

// Trust modes.
const (
	TrustSelfHostOpen    TrustMode = "self_host_open"
	TrustSelfHostGuarded TrustMode = "self_host_guarded"
	TrustSaaSLocked      TrustMode = "saas_locked"
)

// Valid reports whether m is a known trust mode.
func (m TrustMode) Valid() bool {
	switch m {
	case TrustSelfHostOpen, TrustSelfHostGuarded, TrustSaaSLocked:
		return true
	}
	return false
}

// Config is the umbrella configuration object returned by Initialize().
type Config struct {
	configDir string

	Dispatch  *DispatchConfig  `yaml:"dispatch"`
	Outbox    *OutboxConfig    `yaml:"outbox"`
	Queue     *SessionConfig   `yaml:"queue"`
	Hooks     *HookConfig      `yaml:"hooks"`
	Guard     *GuardConfig     `yaml:"crash_guard"`
	Routines  *RoutineConfig   `yaml:"routines"`
	TrustMode TrustMode        `yaml:"trust_mode"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// DispatchConfig controls the run dispatcher worker pool.
type DispatchConfig struct {
	// WorkerCount is the number of dispatcher goroutines per replica.
	// The effective concurrency cap is the runtime-control row's
	// max_concurrent_dispatches, enforced across all replicas.
	WorkerCount int `yaml:"worker_count"`

	// Lease is how long a claim on a dispatch row stays exclusive without
	// a heartbeat. Heartbeats extend it at Lease/3.
	Lease time.Duration `yaml:"lease"`

	// MaxAttempts bounds retries of a failing dispatch.
	MaxAttempts int `yaml:"max_attempts"`

	// BackoffBase and BackoffCap bound the retry backoff curve.
	BackoffBase time.Duration `yaml:"backoff_base"`
	BackoffCap  time.Duration `yaml:"backoff_cap"`

	// PollInterval is the base interval between claim attempts, with
	// ±PollIntervalJitter of random spread to avoid thundering herds.
	PollInterval       time.Duration `yaml:"poll_interval"`
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// RunTimeout is the maximum wall time for one agent run.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// ControlPollInterval is how often a running worker re-reads the
	// dispatch row's control state and the runtime-control epoch.
	ControlPollInterval time.Duration `yaml:"control_poll_interval"`

	// OrphanSweepInterval is how often expired-lease rows are reclaimed.
	OrphanSweepInterval time.Duration `yaml:"orphan_sweep_interval"`

	// GracefulShutdownTimeout is the max wait for active runs on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// OutboxConfig controls effect delivery workers.
type OutboxConfig struct {
	// WorkersPerChannel is the pool size for each delivery channel.
	WorkersPerChannel int `yaml:"workers_per_channel"`

	// BatchSize is how many due rows one worker leases per cycle.
	BatchSize int `yaml:"batch_size"`

	Lease        time.Duration `yaml:"lease"`
	PollInterval time.Duration `yaml:"poll_interval"`
	SendTimeout  time.Duration `yaml:"send_timeout"`
	BackoffBase  time.Duration `yaml:"backoff_base"`
	BackoffCap   time.Duration `yaml:"backoff_cap"`
	MaxAttempts  int           `yaml:"max_attempts"`

	// ReconcileInterval is how often unknown-state rows are re-examined.
	ReconcileInterval time.Duration `yaml:"reconcile_interval"`
}

// SessionConfig controls per-session queue lanes.
type SessionConfig struct {
	// Debounce is the coalescing window armed when a lane leaves idle.
	Debounce time.Duration `yaml:"debounce"`

	// MaxQueuedPerLane caps pending messages collected during a run.
	MaxQueuedPerLane int `yaml:"max_queued_per_lane"`
}

// HookConfig controls the plugin hook pipeline.
type HookConfig struct {
	// EventBudget is the cumulative handler budget per hook dispatch.
	EventBudget time.Duration `yaml:"event_budget"`

	// DefaultTimeout applies to registrations that do not set one.
	DefaultTimeout time.Duration `yaml:"default_timeout"`
}

// GuardConfig controls the crash guard.
type GuardConfig struct {
	// Threshold failures within Window auto-disable a plugin.
	Threshold int           `yaml:"threshold"`
	Window    time.Duration `yaml:"window"`
}

// RoutineConfig controls the routine evaluator.
type RoutineConfig struct {
	// EventDrainWorkers is the pool size draining the routine event inbox.
	EventDrainWorkers int `yaml:"event_drain_workers"`

	// EventLease is the lease on a claimed inbox row.
	EventLease time.Duration `yaml:"event_lease"`

	PollInterval time.Duration `yaml:"poll_interval"`

	// ScheduledScanInterval is how often due scheduled items are fired.
	ScheduledScanInterval time.Duration `yaml:"scheduled_scan_interval"`
}
