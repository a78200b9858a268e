package routine

import (
	"context"
	"fmt"
	"sync"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/ent/workitem"
)

// Probe answers whether a condition routine should fire right now.
// detail is a short human-readable account recorded on the receipt.
type Probe func(ctx context.Context, cfg map[string]interface{}) (fire bool, detail string, err error)

// ProbeRegistry maps condition_probe names to implementations.
type ProbeRegistry struct {
	mu     sync.RWMutex
	probes map[string]Probe
}

// NewProbeRegistry creates a registry with the builtin probes.
func NewProbeRegistry(client *ent.Client) *ProbeRegistry {
	r := &ProbeRegistry{probes: make(map[string]Probe)}
	r.Register("queue_depth_above", queueDepthAbove(client))
	r.Register("stale_work_items", staleWorkItems(client))
	return r
}

// Register adds a probe under a name.
func (r *ProbeRegistry) Register(name string, p Probe) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[name] = p
}

// Get returns the named probe.
func (r *ProbeRegistry) Get(name string) (Probe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.probes[name]
	if !ok {
		return nil, fmt.Errorf("unknown condition probe %q", name)
	}
	return p, nil
}

// queueDepthAbove fires when more than cfg.threshold dispatches are queued.
func queueDepthAbove(client *ent.Client) Probe {
	return func(ctx context.Context, cfg map[string]interface{}) (bool, string, error) {
		threshold := intConfig(cfg, "threshold", 10)
		n, err := client.RunDispatch.Query().
			Where(rundispatch.StatusEQ(rundispatch.StatusQueued)).
			Count(ctx)
		if err != nil {
			return false, "", fmt.Errorf("failed to count queued dispatches: %w", err)
		}
		return n > threshold, fmt.Sprintf("queued=%d threshold=%d", n, threshold), nil
	}
}

// staleWorkItems fires when more than cfg.threshold work items sit in
// in_progress.
func staleWorkItems(client *ent.Client) Probe {
	return func(ctx context.Context, cfg map[string]interface{}) (bool, string, error) {
		threshold := intConfig(cfg, "threshold", 5)
		n, err := client.WorkItem.Query().
			Where(workitem.StatusEQ(workitem.StatusInProgress)).
			Count(ctx)
		if err != nil {
			return false, "", fmt.Errorf("failed to count in-progress work items: %w", err)
		}
		return n > threshold, fmt.Sprintf("in_progress=%d threshold=%d", n, threshold), nil
	}
}

func intConfig(cfg map[string]interface{}, key string, fallback int) int {
	if cfg == nil {
		return fallback
	}
	switch v := cfg[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}
