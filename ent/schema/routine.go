package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Routine holds the schema definition for the Routine entity.
// A declarative trigger: cron/oneshot (time-based), event (rule over the
// ingress envelope) or condition (probe evaluated on cron tick).
type Routine struct {
	ent.Schema
}

// Fields of the Routine.
func (Routine) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("routine_id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.String("name").
			Optional(),
		field.Enum("trigger_kind").
			Values("cron", "event", "condition", "oneshot"),
		field.String("cron_expr").
			Optional(),
		field.String("timezone").
			Optional(),
		field.Text("rule_json").
			Optional().
			Comment("Predicate tree for event triggers; validated at save time"),
		field.String("condition_probe").
			Optional(),
		field.JSON("condition_config", map[string]interface{}{}).
			Optional(),
		field.String("target_plugin_instance_id").
			Optional(),
		field.String("target_session_key").
			Optional(),
		field.Text("action_prompt"),
		field.Bool("enabled").
			Default(true),
		field.Int64("min_interval_ms").
			Default(0).
			Comment("Minimum gap between fires for event triggers; 0 = no throttle"),
		field.Time("next_run_at").
			Optional().
			Nillable(),
		field.Time("last_fired_at").
			Optional().
			Nillable(),
		field.String("last_status").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Routine.
func (Routine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "trigger_kind"),
		index.Fields("enabled"),
		index.Fields("next_run_at"),
	}
}
