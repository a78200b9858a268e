package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueLane holds the schema definition for the QueueLane entity.
// Durable mirror of the in-memory per-session queue state, used by the
// startup recovery sweep and for multi-writer coordination.
type QueueLane struct {
	ent.Schema
}

// Fields of the QueueLane.
func (QueueLane) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("queue_key").
			Unique().
			Immutable().
			Comment("session_key + ':' + agent_id"),
		field.String("session_key"),
		field.String("agent_id"),
		field.Enum("state").
			Values("idle", "queued", "running").
			Default("idle").
			Comment("'queued' covers the in-memory debouncing state"),
		field.Enum("mode").
			Values("collect", "followup", "steer").
			Default("collect"),
		field.Bool("is_paused").
			Default(false),
		field.Time("debounce_until").
			Optional().
			Nillable(),
		field.Int("debounce_ms").
			Default(300),
		field.Int("max_queued").
			Default(20),
		field.String("active_dispatch_id").
			Optional().
			Nillable().
			Comment("Non-nil only while a matching dispatch is running"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the QueueLane.
func (QueueLane) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("session_key"),
	}
}
