// Package services holds the domain service layer between HTTP handlers,
// workers and the Ent persistence model.
package services

import (
	"context"
	"fmt"

	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/pluginevent"
	"github.com/hooklinehq/hookline/ent/workitem"
)

// WorkItemService exposes read and status-transition operations on work
// items. Creation happens inside the ingress router's transaction, not here.
type WorkItemService struct {
	client *ent.Client
}

// NewWorkItemService creates a new WorkItemService.
func NewWorkItemService(client *ent.Client) *WorkItemService {
	if client == nil {
		panic("NewWorkItemService: client must not be nil")
	}
	return &WorkItemService{client: client}
}

// Get fetches one work item by id.
func (s *WorkItemService) Get(ctx context.Context, id string) (*ent.WorkItem, error) {
	item, err := s.client.WorkItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get work item: %w", err)
	}
	return item, nil
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Status     string
	SessionKey string
	Limit      int
}

// List returns work items newest-first.
func (s *WorkItemService) List(ctx context.Context, f ListFilter) ([]*ent.WorkItem, error) {
	q := s.client.WorkItem.Query()
	if f.Status != "" {
		q = q.Where(workitem.StatusEQ(workitem.Status(f.Status)))
	}
	if f.SessionKey != "" {
		q = q.Where(workitem.SessionKeyEQ(f.SessionKey))
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	items, err := q.Order(ent.Desc(workitem.FieldCreatedAt)).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}
	return items, nil
}

// SetStatus transitions a work item's status. Work items are never deleted;
// terminal statuses simply stop further transitions at the dispatch layer.
func (s *WorkItemService) SetStatus(ctx context.Context, id string, status workitem.Status) error {
	err := s.client.WorkItem.UpdateOneID(id).SetStatus(status).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update work item status: %w", err)
	}
	return nil
}

// Events returns the plugin events referencing a work item, oldest first.
// Used by operators to trace one event's path through the pipeline.
func (s *WorkItemService) Events(ctx context.Context, workItemID string) ([]*ent.PluginEvent, error) {
	rows, err := s.client.PluginEvent.Query().
		Where(pluginevent.WorkItemIDEQ(workItemID)).
		Order(ent.Asc(pluginevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work item events: %w", err)
	}
	return rows, nil
}
