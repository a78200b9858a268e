package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Precedence, lowest to highest: built-in defaults, hookline.yaml,
// environment variables.
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := DefaultConfig()
	cfg.configDir = configDir

	if err := overlayYAML(cfg, filepath.Join(configDir, "hookline.yaml")); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	overlayEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"trust_mode", cfg.TrustMode,
		"dispatch_workers", cfg.Dispatch.WorkerCount,
		"debounce", cfg.Queue.Debounce)

	return cfg, nil
}

// overlayYAML merges hookline.yaml over cfg. A missing file is not an error;
// the built-in defaults carry a usable system.
func overlayYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file found, using defaults", "path", path)
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	// User values override defaults; zero values in the file are ignored.
	if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging %s: %w", path, err)
	}
	return nil
}

// overlayEnv applies the environment variable overrides. Millisecond-valued
// variables carry the _MS suffix.
func overlayEnv(cfg *Config) {
	if v, ok := envMillis("DISPATCH_LEASE_MS"); ok {
		cfg.Dispatch.Lease = v
	}
	if v, ok := envInt("DISPATCH_MAX_ATTEMPTS"); ok {
		cfg.Dispatch.MaxAttempts = v
	}
	if v, ok := envMillis("DEBOUNCE_MS"); ok {
		cfg.Queue.Debounce = v
	}
	if v, ok := envInt("MAX_QUEUED_PER_LANE"); ok {
		cfg.Queue.MaxQueuedPerLane = v
	}
	if v, ok := envMillis("HOOK_EVENT_BUDGET_MS"); ok {
		cfg.Hooks.EventBudget = v
	}
	if v, ok := envInt("PLUGIN_CRASH_THRESHOLD"); ok {
		cfg.Guard.Threshold = v
	}
	if v, ok := envMillis("PLUGIN_CRASH_WINDOW_MS"); ok {
		cfg.Guard.Window = v
	}
	if v := os.Getenv("PLUGIN_TRUST_MODE"); v != "" {
		cfg.TrustMode = TrustMode(v)
	}
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Ignoring non-integer environment override", "key", key, "value", raw)
		return 0, false
	}
	return n, true
}

func envMillis(key string) (time.Duration, bool) {
	n, ok := envInt(key)
	if !ok {
		return 0, false
	}
	return time.Duration(n) * time.Millisecond, true
}

// validate rejects configurations no worker loop could run with.
func validate(cfg *Config) error {
	if !cfg.TrustMode.Valid() {
		return fmt.Errorf("unknown trust mode %q", cfg.TrustMode)
	}
	if cfg.Dispatch.WorkerCount < 1 {
		return fmt.Errorf("dispatch.worker_count must be >= 1, got %d", cfg.Dispatch.WorkerCount)
	}
	if cfg.Dispatch.Lease < time.Second {
		return fmt.Errorf("dispatch.lease must be >= 1s, got %v", cfg.Dispatch.Lease)
	}
	if cfg.Dispatch.MaxAttempts < 1 {
		return fmt.Errorf("dispatch.max_attempts must be >= 1, got %d", cfg.Dispatch.MaxAttempts)
	}
	if cfg.Queue.Debounce <= 0 {
		return fmt.Errorf("queue.debounce must be positive, got %v", cfg.Queue.Debounce)
	}
	if cfg.Queue.MaxQueuedPerLane < 1 {
		return fmt.Errorf("queue.max_queued_per_lane must be >= 1, got %d", cfg.Queue.MaxQueuedPerLane)
	}
	if cfg.Hooks.EventBudget <= 0 {
		return fmt.Errorf("hooks.event_budget must be positive, got %v", cfg.Hooks.EventBudget)
	}
	if cfg.Guard.Threshold < 1 {
		return fmt.Errorf("crash_guard.threshold must be >= 1, got %d", cfg.Guard.Threshold)
	}
	if cfg.Guard.Window <= 0 {
		return fmt.Errorf("crash_guard.window must be positive, got %v", cfg.Guard.Window)
	}
	if cfg.Outbox.WorkersPerChannel < 1 {
		return fmt.Errorf("outbox.workers_per_channel must be >= 1, got %d", cfg.Outbox.WorkersPerChannel)
	}
	return nil
}
