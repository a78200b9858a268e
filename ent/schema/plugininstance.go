package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PluginInstance holds the schema definition for the PluginInstance entity.
// An instance is a configured binding to one external system (a chat
// workspace, a repository, ...). Config values for fields the handler
// declares sensitive are stored encrypted and decoded just-in-time.
type PluginInstance struct {
	ent.Schema
}

// Fields of the PluginInstance.
func (PluginInstance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("plugin_instance_id").
			Unique().
			Immutable(),
		field.String("type").
			Comment("Handler type, e.g. 'chatsvc'"),
		field.String("name"),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.Bool("enabled").
			Default(true).
			Comment("Cleared by the crash guard on auto-disable"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PluginInstance.
func (PluginInstance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("enabled"),
	}
}
