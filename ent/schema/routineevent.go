package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoutineEvent holds the schema definition for the RoutineEvent entity.
// Inbox row: one ingress envelope awaiting routine evaluation, leased by
// the evaluator's drain workers.
type RoutineEvent struct {
	ent.Schema
}

// Annotations of the RoutineEvent.
func (RoutineEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "routine_event_queue"},
	}
}

// Fields of the RoutineEvent.
func (RoutineEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("routine_event_id").
			Unique().
			Immutable(),
		field.String("work_item_id").
			Optional(),
		field.JSON("envelope", map[string]interface{}{}).
			StorageKey("envelope_json"),
		field.Enum("status").
			Values("pending", "processing", "done", "failed").
			Default("pending"),
		field.String("claimed_by").
			Optional().
			Nillable(),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.Int("attempt_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RoutineEvent.
func (RoutineEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
