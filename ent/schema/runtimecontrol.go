package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// RuntimeControl holds the schema definition for the RuntimeControl entity.
// Singleton row (id = "runtime") gating all worker loops. control_epoch
// increments on every pause/emergency; workers holding an older epoch must
// cede their leases.
type RuntimeControl struct {
	ent.Schema
}

// Annotations of the RuntimeControl.
func (RuntimeControl) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "runtime_control"},
	}
}

// Fields of the RuntimeControl.
func (RuntimeControl) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("control_id").
			Unique().
			Immutable(),
		field.Bool("processing_enabled").
			Default(true),
		field.Enum("pause_mode").
			Values("soft", "hard").
			Default("soft"),
		field.String("pause_reason").
			Optional(),
		field.Int64("control_epoch").
			Default(0),
		field.Int("max_concurrent_dispatches").
			Default(20),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Annotations(entsql.Annotation{Default: "CURRENT_TIMESTAMP"}),
	}
}
