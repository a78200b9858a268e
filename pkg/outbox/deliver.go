package outbox

import (
	"context"
	"fmt"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/pkg/plugin"
)

// Deliverer resolves an outbox entry's plugin instance and hands the
// payload to the handler.
type Deliverer struct {
	client   *ent.Client
	registry *plugin.Registry
	decoder  plugin.SecretDecoder
}

// NewDeliverer creates a Deliverer.
func NewDeliverer(client *ent.Client, registry *plugin.Registry, decoder plugin.SecretDecoder) *Deliverer {
	return &Deliverer{client: client, registry: registry, decoder: decoder}
}

// Deliver posts one effect through its plugin handler and returns the
// provider-side result. payload may differ from the stored one when a
// pre-deliver hook mutated it; nil falls back to the entry's payload.
func (d *Deliverer) Deliver(ctx context.Context, entry *ent.OutboxEntry, payload map[string]interface{}) (*plugin.PostResult, error) {
	if payload == nil {
		payload = entry.Payload
	}
	row, err := d.client.PluginInstance.Get(ctx, entry.PluginInstanceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("plugin instance %s not found", entry.PluginInstanceID)
		}
		return nil, fmt.Errorf("failed to load plugin instance: %w", err)
	}
	if !row.Enabled {
		return nil, fmt.Errorf("plugin instance %s is disabled", entry.PluginInstanceID)
	}

	handler, err := d.registry.Get(row.Type)
	if err != nil {
		return nil, err
	}

	inst, err := plugin.DecodeInstance(row.ID, row.Type, row.Name, row.Enabled, row.Config, handler, d.decoder)
	if err != nil {
		return nil, err
	}

	result, err := handler.PostResponse(ctx, inst, entry.Channel, payload)
	if err != nil {
		return nil, err
	}
	if result == nil || result.ProviderRef == "" {
		return nil, fmt.Errorf("handler returned no provider ref for effect %s", entry.EffectKey)
	}
	return result, nil
}

// EffectReconciler is implemented by handlers that can answer whether an
// unacknowledged effect actually landed on the provider side.
type EffectReconciler interface {
	ReconcileEffect(ctx context.Context, inst *plugin.Instance, channel string, payload map[string]interface{}) (providerRef string, delivered bool, err error)
}

// Reconcile asks the handler whether an unknown-state effect was in fact
// delivered. ok is false when the handler cannot answer.
func (d *Deliverer) Reconcile(ctx context.Context, entry *ent.OutboxEntry) (providerRef string, delivered, ok bool, err error) {
	row, err := d.client.PluginInstance.Get(ctx, entry.PluginInstanceID)
	if err != nil {
		return "", false, false, fmt.Errorf("failed to load plugin instance: %w", err)
	}
	handler, err := d.registry.Get(row.Type)
	if err != nil {
		return "", false, false, err
	}
	rec, canReconcile := handler.(EffectReconciler)
	if !canReconcile {
		return "", false, false, nil
	}

	inst, err := plugin.DecodeInstance(row.ID, row.Type, row.Name, row.Enabled, row.Config, handler, d.decoder)
	if err != nil {
		return "", false, false, err
	}
	ref, delivered, err := rec.ReconcileEffect(ctx, inst, entry.Channel, entry.Payload)
	if err != nil {
		return "", false, true, err
	}
	return ref, delivered, true, nil
}
