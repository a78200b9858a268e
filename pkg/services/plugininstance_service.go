package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/plugininstance"
	"github.com/hooklinehq/hookline/pkg/events"
	"github.com/hooklinehq/hookline/pkg/plugin"
)

// PluginInstanceService manages configured plugin instances.
type PluginInstanceService struct {
	client   *ent.Client
	registry *plugin.Registry
	recorder *events.Recorder
}

// NewPluginInstanceService creates a new PluginInstanceService.
func NewPluginInstanceService(client *ent.Client, registry *plugin.Registry, recorder *events.Recorder) *PluginInstanceService {
	if client == nil {
		panic("NewPluginInstanceService: client must not be nil")
	}
	if registry == nil {
		panic("NewPluginInstanceService: registry must not be nil")
	}
	return &PluginInstanceService{client: client, registry: registry, recorder: recorder}
}

// CreateInstanceInput is the admin-facing creation payload.
type CreateInstanceInput struct {
	Type   string
	Name   string
	Config map[string]interface{}
}

// Create validates the config against the handler and persists the instance.
func (s *PluginInstanceService) Create(ctx context.Context, input CreateInstanceInput) (*ent.PluginInstance, error) {
	if input.Type == "" {
		return nil, NewValidationError("type", "plugin type is required")
	}
	if input.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}

	handler, err := s.registry.Get(input.Type)
	if err != nil {
		return nil, NewValidationError("type", fmt.Sprintf("unknown plugin type '%s'", input.Type))
	}
	if err := handler.ValidateConfig(input.Config); err != nil {
		return nil, NewValidationError("config", err.Error())
	}

	inst, err := s.client.PluginInstance.Create().
		SetID(uuid.New().String()).
		SetType(input.Type).
		SetName(input.Name).
		SetConfig(input.Config).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create plugin instance: %w", err)
	}

	if s.recorder != nil {
		s.recorder.RecordAsync(events.Entry{
			PluginID: inst.ID,
			Kind:     "load",
			Status:   "ok",
			Detail:   map[string]interface{}{"type": inst.Type, "name": inst.Name},
		})
	}
	return inst, nil
}

// Get fetches one instance by id.
func (s *PluginInstanceService) Get(ctx context.Context, id string) (*ent.PluginInstance, error) {
	inst, err := s.client.PluginInstance.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plugin instance: %w", err)
	}
	return inst, nil
}

// List returns all instances, optionally filtered by type.
func (s *PluginInstanceService) List(ctx context.Context, pluginType string) ([]*ent.PluginInstance, error) {
	q := s.client.PluginInstance.Query()
	if pluginType != "" {
		q = q.Where(plugininstance.TypeEQ(pluginType))
	}
	rows, err := q.Order(ent.Asc(plugininstance.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plugin instances: %w", err)
	}
	return rows, nil
}

// SetEnabled flips the enabled flag. Re-enabling an auto-disabled instance
// is the operator's acknowledgment that the underlying defect was addressed;
// the crash guard's failure window is reset by the caller.
func (s *PluginInstanceService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	err := s.client.PluginInstance.UpdateOneID(id).SetEnabled(enabled).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update plugin instance: %w", err)
	}
	return nil
}
