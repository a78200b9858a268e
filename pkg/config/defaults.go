package config

import "time"

// DefaultConfig returns the built-in defaults. User YAML and environment
// variables overlay these.
func DefaultConfig() *Config {
	return &Config{
		Dispatch: &DispatchConfig{
			WorkerCount:             20,
			Lease:                   30 * time.Second,
			MaxAttempts:             3,
			BackoffBase:             1 * time.Second,
			BackoffCap:              60 * time.Second,
			PollInterval:            1 * time.Second,
			PollIntervalJitter:      500 * time.Millisecond,
			RunTimeout:              15 * time.Minute,
			ControlPollInterval:     2 * time.Second,
			OrphanSweepInterval:     time.Minute,
			GracefulShutdownTimeout: 15 * time.Minute,
		},
		Outbox: &OutboxConfig{
			WorkersPerChannel: 4,
			BatchSize:         16,
			Lease:             30 * time.Second,
			PollInterval:      1 * time.Second,
			SendTimeout:       15 * time.Second,
			BackoffBase:       1 * time.Second,
			BackoffCap:        60 * time.Second,
			MaxAttempts:       5,
			ReconcileInterval: time.Minute,
		},
		Queue: &SessionConfig{
			Debounce:         300 * time.Millisecond,
			MaxQueuedPerLane: 20,
		},
		Hooks: &HookConfig{
			EventBudget:    8 * time.Second,
			DefaultTimeout: 2 * time.Second,
		},
		Guard: &GuardConfig{
			Threshold: 5,
			Window:    5 * time.Minute,
		},
		Routines: &RoutineConfig{
			EventDrainWorkers:     2,
			EventLease:            time.Minute,
			PollInterval:          time.Second,
			ScheduledScanInterval: 15 * time.Second,
		},
		TrustMode: TrustSelfHostGuarded,
	}
}
