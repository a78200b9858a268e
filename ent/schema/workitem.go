package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkItem holds the schema definition for the WorkItem entity.
// A work item is the durable record of one actionable inbound event.
// Rows are never deleted; they form the audit history of the pipeline.
type WorkItem struct {
	ent.Schema
}

// Fields of the WorkItem.
func (WorkItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("work_item_id").
			Unique().
			Immutable(),
		field.String("plugin_instance_id"),
		field.String("session_key").
			Optional().
			Comment("Conversation shard key, e.g. 'chatsvc:C012345'"),
		field.String("source").
			Comment("Originating system, e.g. 'chatsvc', 'repohook'"),
		field.String("source_ref").
			Optional().
			Comment("Provider-side reference (message ts, delivery id, ...)"),
		field.Enum("status").
			Values("new", "in_progress", "completed", "failed", "cancelled").
			Default("new"),
		field.String("title").
			Optional(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Opaque structured event payload as parsed by the plugin"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the WorkItem.
func (WorkItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("session_key"),
		index.Fields("plugin_instance_id"),
		index.Fields("status", "created_at"),
	}
}
