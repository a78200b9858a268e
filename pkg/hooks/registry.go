package hooks

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds hook registrations ordered for dispatch.
type Registry struct {
	mu   sync.RWMutex
	byHk map[string][]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byHk: make(map[string][]Registration)}
}

// Register adds a registration. The hook name must belong to the closed set
// and the handler must be non-nil.
func (r *Registry) Register(reg Registration) error {
	if !KnownHook(reg.Hook) {
		return fmt.Errorf("unknown hook name %q", reg.Hook)
	}
	if reg.Handler == nil {
		return fmt.Errorf("hook %q: nil handler", reg.Hook)
	}
	if reg.PluginID == "" {
		return fmt.Errorf("hook %q: empty plugin id", reg.Hook)
	}
	if reg.FailPolicy == "" {
		reg.FailPolicy = FailOpen
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	regs := append(r.byHk[reg.Hook], reg)
	// Stable sort keeps registration order as the final tiebreak.
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].Priority != regs[j].Priority {
			return regs[i].Priority > regs[j].Priority
		}
		return regs[i].PluginID < regs[j].PluginID
	})
	r.byHk[reg.Hook] = regs
	return nil
}

// Handlers returns the ordered registrations for a hook.
func (r *Registry) Handlers(hook string) []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := r.byHk[hook]
	out := make([]Registration, len(regs))
	copy(out, regs)
	return out
}

// Unregister removes all registrations for a plugin (on unload).
func (r *Registry) Unregister(pluginID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for hook, regs := range r.byHk {
		kept := regs[:0]
		for _, reg := range regs {
			if reg.PluginID != pluginID {
				kept = append(kept, reg)
			}
		}
		r.byHk[hook] = kept
	}
}
