package plugin

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/hooklinehq/hookline/pkg/config"
)

// Registry errors.
var (
	ErrUnknownType = errors.New("unknown plugin type")
	ErrNoEffects   = errors.New("handler does not deliver effects")
)

// Registry holds the loaded plugin handlers keyed by type. Registration
// is gated by the trust mode; builtin handlers always load.
type Registry struct {
	mu        sync.RWMutex
	handlers  map[string]Handler
	trustMode config.TrustMode
}

// NewRegistry creates a registry for the given trust mode.
func NewRegistry(mode config.TrustMode) *Registry {
	return &Registry{
		handlers:  make(map[string]Handler),
		trustMode: mode,
	}
}

// Register adds a handler. Under saas_locked, only builtin handlers load;
// third-party registration is refused.
func (r *Registry) Register(h Handler) error {
	if h == nil {
		return fmt.Errorf("nil handler")
	}
	typ := h.Type()
	if typ == "" {
		return fmt.Errorf("handler has empty type")
	}

	builtin := false
	if b, ok := h.(Builtin); ok {
		builtin = b.Builtin()
	}
	if r.trustMode == config.TrustSaaSLocked && !builtin {
		return fmt.Errorf("trust mode %s refuses third-party handler %q", r.trustMode, typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[typ]; exists {
		return fmt.Errorf("handler %q already registered", typ)
	}
	r.handlers[typ] = h

	slog.Info("Plugin handler registered", "type", typ, "builtin", builtin)
	return nil
}

// Get returns the handler for a type.
func (r *Registry) Get(typ string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	return h, nil
}

// Types returns the registered handler types, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
