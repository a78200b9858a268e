package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledItem holds the schema definition for the ScheduledItem entity.
// A future timed invocation produced by a routine or by an agent deferring
// work for itself.
type ScheduledItem struct {
	ent.Schema
}

// Fields of the ScheduledItem.
func (ScheduledItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scheduled_item_id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.String("session_key").
			Optional(),
		field.Enum("type").
			Values("deferred", "heartbeat", "cron"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Time("run_at"),
		field.String("recurrence").
			Optional().
			Comment("Cron expression for recurring items; empty for one-shots"),
		field.Enum("status").
			Values("pending", "firing", "fired", "cancelled").
			Default("pending"),
		field.String("routine_id").
			Optional(),
		field.String("routine_run_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScheduledItem.
func (ScheduledItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "run_at"),
		index.Fields("routine_id"),
	}
}
