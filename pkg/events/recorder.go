package events

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hooklinehq/hookline/ent"
	"github.com/hooklinehq/hookline/ent/pluginevent"
)

// Entry is one plugin event to record. Kind and Status use the closed
// vocabularies from types.go and the pluginevent schema.
type Entry struct {
	PluginID      string
	PluginVersion string
	Kind          string
	Status        string
	WorkItemID    string
	Detail        map[string]interface{}
}

// Recorder persists plugin events and broadcasts them via NOTIFY.
// The NOTIFY is best-effort: a failed broadcast never fails the caller,
// only the row insert does.
type Recorder struct {
	client *ent.Client
	db     *stdsql.DB
}

// NewRecorder creates a Recorder. db should be database.Client.DB().
func NewRecorder(client *ent.Client, db *stdsql.DB) *Recorder {
	return &Recorder{client: client, db: db}
}

// Record inserts the event row and broadcasts it.
func (r *Recorder) Record(ctx context.Context, e Entry) (*ent.PluginEvent, error) {
	builder := r.client.PluginEvent.Create().
		SetID(uuid.New().String()).
		SetPluginID(e.PluginID).
		SetKind(pluginevent.Kind(e.Kind)).
		SetStatus(e.Status)

	if e.PluginVersion != "" {
		builder.SetPluginVersion(e.PluginVersion)
	}
	if e.WorkItemID != "" {
		builder.SetWorkItemID(e.WorkItemID)
	}
	if e.Detail != nil {
		builder.SetDetail(e.Detail)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record plugin event: %w", err)
	}

	r.notify(ctx, row)
	return row, nil
}

// RecordAsync records in the background with its own timeout. Used for
// fire-and-forget receipts where the caller must not block; errors are
// swallowed after logging.
func (r *Recorder) RecordAsync(e Entry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := r.Record(ctx, e); err != nil {
			slog.Warn("Failed to record plugin event",
				"plugin_id", e.PluginID, "kind", e.Kind, "status", e.Status, "error", err)
		}
	}()
}

// notify broadcasts the event over the plugin events channel.
func (r *Recorder) notify(ctx context.Context, row *ent.PluginEvent) {
	payload, err := json.Marshal(map[string]interface{}{
		"id":           row.ID,
		"plugin_id":    row.PluginID,
		"kind":         row.Kind,
		"status":       row.Status,
		"work_item_id": row.WorkItemID,
		"created_at":   row.CreatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to marshal plugin event notification", "error", err)
		return
	}
	if _, err := r.db.ExecContext(ctx,
		"SELECT pg_notify($1, $2)", PluginEventsChannel, string(payload)); err != nil {
		slog.Warn("Failed to NOTIFY plugin event", "event_id", row.ID, "error", err)
	}
}
