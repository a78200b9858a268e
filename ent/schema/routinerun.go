package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoutineRun holds the schema definition for the RoutineRun entity.
// Receipt of one routine evaluation, whatever the decision.
type RoutineRun struct {
	ent.Schema
}

// Fields of the RoutineRun.
func (RoutineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("routine_run_id").
			Unique().
			Immutable(),
		field.String("routine_id"),
		field.Enum("decision").
			Values("enqueued", "skipped", "throttled", "error"),
		field.String("decision_reason").
			Optional(),
		field.JSON("envelope", map[string]interface{}{}).
			Optional().
			StorageKey("envelope_json"),
		field.String("scheduled_item_id").
			Optional(),
		field.String("work_item_id").
			Optional(),
		field.String("dispatch_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RoutineRun.
func (RoutineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("routine_id", "created_at"),
		index.Fields("decision"),
	}
}
