// Package crashguard auto-disables plugins that fail repeatedly within a
// sliding window, so one broken integration cannot degrade the pipeline.
package crashguard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hooklinehq/hookline/pkg/events"
)

// Disabler flips a plugin instance's enabled flag in durable storage.
// Implemented by services.PluginInstanceService.
type Disabler interface {
	SetEnabled(ctx context.Context, pluginID string, enabled bool) error
}

// Guard tracks per-plugin failure timestamps and trips when a plugin
// accumulates threshold failures inside the window.
type Guard struct {
	mu        sync.Mutex
	failures  map[string][]time.Time
	disabled  map[string]bool
	threshold int
	window    time.Duration

	disabler Disabler
	recorder *events.Recorder
	logger   *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// New creates a Guard. threshold <= 0 defaults to 5, window <= 0 to 5m.
func New(threshold int, window time.Duration, disabler Disabler, recorder *events.Recorder) *Guard {
	if threshold <= 0 {
		threshold = 5
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &Guard{
		failures:  make(map[string][]time.Time),
		disabled:  make(map[string]bool),
		threshold: threshold,
		window:    window,
		disabler:  disabler,
		recorder:  recorder,
		logger:    slog.With("component", "crash_guard"),
		now:       time.Now,
	}
}

// RecordFailure appends a failure and trips the guard when the pruned
// window count reaches the threshold.
func (g *Guard) RecordFailure(pluginID string) {
	g.mu.Lock()

	if g.disabled[pluginID] {
		g.mu.Unlock()
		return
	}

	now := g.now()
	cutoff := now.Add(-g.window)

	buf := append(g.failures[pluginID], now)
	kept := buf[:0]
	for _, t := range buf {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) < g.threshold {
		g.failures[pluginID] = kept
		g.mu.Unlock()
		return
	}

	// Tripped: clear the buffer and latch the in-memory flag before any IO.
	delete(g.failures, pluginID)
	g.disabled[pluginID] = true
	g.mu.Unlock()

	g.logger.Error("Plugin auto-disabled after repeated failures",
		"plugin_id", pluginID, "threshold", g.threshold, "window", g.window)

	if g.disabler != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := g.disabler.SetEnabled(ctx, pluginID, false); err != nil {
			g.logger.Error("Failed to persist auto-disable",
				"plugin_id", pluginID, "error", err)
		}
	}

	if g.recorder != nil {
		g.recorder.RecordAsync(events.Entry{
			PluginID: pluginID,
			Kind:     "auto_disable",
			Status:   "error",
			Detail: map[string]interface{}{
				"reason":    events.AutoDisableReason,
				"threshold": g.threshold,
				"window_ms": g.window.Milliseconds(),
			},
		})
	}
}

// RecordSuccess clears the plugin's failure buffer.
func (g *Guard) RecordSuccess(pluginID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.failures, pluginID)
}

// Disabled reports whether the guard has tripped for the plugin.
func (g *Guard) Disabled(pluginID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.disabled[pluginID]
}

// Reenable clears the disabled latch and failure buffer. Called when an
// operator re-enables the instance.
func (g *Guard) Reenable(pluginID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.disabled, pluginID)
	delete(g.failures, pluginID)
}
