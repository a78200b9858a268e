package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxEntry holds the schema definition for the OutboxEntry entity.
// One pending external side effect, delivered at-least-once. effect_key is
// the idempotency handle consumers and providers dedup on.
type OutboxEntry struct {
	ent.Schema
}

// Annotations of the OutboxEntry.
func (OutboxEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "effect_outbox"},
	}
}

// Fields of the OutboxEntry.
func (OutboxEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("outbox_entry_id").
			Unique().
			Immutable(),
		field.String("effect_key").
			Unique().
			Immutable(),
		field.String("dispatch_id"),
		field.String("plugin_instance_id"),
		field.String("channel"),
		field.String("kind").
			Comment("Effect kind, e.g. 'message', 'media_post', 'api_call'"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "sending", "sent", "failed", "unknown", "cancelled").
			Default("pending"),
		field.Bool("retryable").
			Default(true),
		field.Int("attempt_count").
			Default(0),
		field.Time("next_attempt_at").
			Default(time.Now),
		field.String("claimed_by").
			Optional().
			Nillable(),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.Int64("claimed_epoch").
			Default(0),
		field.String("provider_ref").
			Optional().
			Nillable().
			Comment("Provider-side id of the delivered effect; exactly one per sent row"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("unknown_reason").
			Optional().
			Nillable().
			Comment("Why the delivery outcome is unknown (send attempted, ack lost)"),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OutboxEntry.
func (OutboxEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_attempt_at"),
		index.Fields("dispatch_id", "channel"),
		index.Fields("channel", "status"),
		index.Fields("provider_ref"),
	}
}
