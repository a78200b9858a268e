package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunDispatch holds the schema definition for the RunDispatch entity.
// The durable execution ledger: one row per scheduled agent run. Workers
// claim rows under a timed lease; writes are fenced on claimed_epoch.
type RunDispatch struct {
	ent.Schema
}

// Fields of the RunDispatch.
func (RunDispatch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dispatch_id").
			Unique().
			Immutable(),
		field.String("run_key").
			Optional(),
		field.String("queue_key"),
		field.String("work_item_id").
			Optional(),
		field.String("agent_id"),
		field.String("session_key"),
		field.Enum("status").
			Values("queued", "running", "paused", "completed", "failed",
				"abandoned", "cancelled", "merged").
			Default("queued"),
		field.Enum("control_state").
			Values("normal", "pause_requested", "paused", "cancel_requested", "cancelled").
			Default("normal"),
		field.Text("input_text").
			Optional(),
		field.Text("coalesced_text").
			Optional(),
		field.JSON("response_context", map[string]interface{}{}).
			Optional(),
		field.Text("output_text").
			Optional(),
		field.Int("attempt_count").
			Default(0),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("worker id of the current lease holder"),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.Int64("claimed_epoch").
			Default(0).
			Comment("Control epoch at claim time; never decreases within a row"),
		field.String("replay_of_dispatch_id").
			Optional().
			Nillable().
			Comment("Follow-up lineage: the active dispatch this row may merge into"),
		field.String("merged_into_dispatch_id").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("scheduled_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RunDispatch.
func (RunDispatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "scheduled_at"),
		index.Fields("queue_key", "status"),
		index.Fields("session_key"),
		index.Fields("replay_of_dispatch_id"),
		// Lease-expiry scans only ever look at running rows.
		index.Fields("lease_expires_at").
			Annotations(entsql.IndexWhere("status = 'running'")),
	}
}
