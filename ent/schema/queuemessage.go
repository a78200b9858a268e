package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueMessage holds the schema definition for the QueueMessage entity.
// One message buffered on a lane, either in the debounce window or in the
// pending queue of an active run.
type QueueMessage struct {
	ent.Schema
}

// Fields of the QueueMessage.
func (QueueMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("queue_message_id").
			Unique().
			Immutable(),
		field.String("queue_key"),
		field.String("work_item_id").
			Optional(),
		field.Text("text"),
		field.String("sender_name").
			Optional(),
		field.Time("arrived_at").
			Default(time.Now).
			Immutable(),
		field.Enum("status").
			Values("pending", "included", "dropped", "cancelled").
			Default("pending"),
		field.String("dispatch_id").
			Optional().
			Nillable().
			Comment("Set once the message is coalesced into a dispatch"),
	}
}

// Indexes of the QueueMessage.
func (QueueMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue_key", "status"),
		index.Fields("dispatch_id"),
	}
}
