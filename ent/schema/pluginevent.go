package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PluginEvent holds the schema definition for the PluginEvent entity.
// Append-only audit stream: webhook ingress outcomes, hook receipts,
// load/unload and auto-disable events.
type PluginEvent struct {
	ent.Schema
}

// Fields of the PluginEvent.
func (PluginEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("plugin_event_id").
			Unique().
			Immutable(),
		field.String("plugin_id"),
		field.String("plugin_version").
			Optional(),
		field.Enum("kind").
			Values("webhook_ingress", "hook", "load", "unload", "auto_disable"),
		field.String("status").
			Comment("Outcome code, e.g. 'accepted', 'duplicate', 'timeout'"),
		field.String("work_item_id").
			Optional(),
		field.JSON("detail", map[string]interface{}{}).
			Optional().
			StorageKey("detail_json"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PluginEvent.
func (PluginEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plugin_id"),
		index.Fields("kind"),
		index.Fields("work_item_id"),
		index.Fields("kind", "created_at"),
	}
}
