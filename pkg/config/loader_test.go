package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Dispatch.WorkerCount)
	assert.Equal(t, 30*time.Second, cfg.Dispatch.Lease)
	assert.Equal(t, 300*time.Millisecond, cfg.Queue.Debounce)
	assert.Equal(t, 20, cfg.Queue.MaxQueuedPerLane)
	assert.Equal(t, 8*time.Second, cfg.Hooks.EventBudget)
	assert.Equal(t, 5, cfg.Guard.Threshold)
	assert.Equal(t, TrustSelfHostGuarded, cfg.TrustMode)
}

func TestInitializeYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	yaml := `
dispatch:
  worker_count: 8
  lease: 45s
queue:
  debounce: 500ms
  max_queued_per_lane: 50
trust_mode: self_host_open
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hookline.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Dispatch.WorkerCount)
	assert.Equal(t, 45*time.Second, cfg.Dispatch.Lease)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.Debounce)
	assert.Equal(t, 50, cfg.Queue.MaxQueuedPerLane)
	assert.Equal(t, TrustSelfHostOpen, cfg.TrustMode)

	// Untouched sections keep defaults
	assert.Equal(t, 3, cfg.Dispatch.MaxAttempts)
	assert.Equal(t, 5, cfg.Guard.Threshold)
}

func TestInitializeEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := "queue:\n  debounce: 500ms\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hookline.yaml"), []byte(yaml), 0o644))

	t.Setenv("DEBOUNCE_MS", "750")
	t.Setenv("MAX_QUEUED_PER_LANE", "7")
	t.Setenv("PLUGIN_CRASH_THRESHOLD", "2")
	t.Setenv("PLUGIN_TRUST_MODE", "saas_locked")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.Queue.Debounce)
	assert.Equal(t, 7, cfg.Queue.MaxQueuedPerLane)
	assert.Equal(t, 2, cfg.Guard.Threshold)
	assert.Equal(t, TrustSaaSLocked, cfg.TrustMode)
}

func TestInitializeIgnoresMalformedEnvInt(t *testing.T) {
	t.Setenv("DISPATCH_MAX_ATTEMPTS", "not-a-number")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Dispatch.MaxAttempts)
}

func TestInitializeRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hookline.yaml"), []byte("dispatch: ["), 0o644))

	_, err := Initialize(context.Background(), dir)
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad trust mode", func(c *Config) { c.TrustMode = "nope" }},
		{"zero workers", func(c *Config) { c.Dispatch.WorkerCount = 0 }},
		{"sub-second lease", func(c *Config) { c.Dispatch.Lease = 100 * time.Millisecond }},
		{"zero attempts", func(c *Config) { c.Dispatch.MaxAttempts = 0 }},
		{"zero debounce", func(c *Config) { c.Queue.Debounce = 0 }},
		{"zero lane cap", func(c *Config) { c.Queue.MaxQueuedPerLane = 0 }},
		{"zero hook budget", func(c *Config) { c.Hooks.EventBudget = 0 }},
		{"zero guard threshold", func(c *Config) { c.Guard.Threshold = 0 }},
		{"zero guard window", func(c *Config) { c.Guard.Window = 0 }},
		{"zero outbox workers", func(c *Config) { c.Outbox.WorkersPerChannel = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, validate(cfg))
		})
	}
}

func TestTrustModeValid(t *testing.T) {
	assert.True(t, TrustSelfHostOpen.Valid())
	assert.True(t, TrustSelfHostGuarded.Valid())
	assert.True(t, TrustSaaSLocked.Valid())
	assert.False(t, TrustMode("other").Valid())
}
