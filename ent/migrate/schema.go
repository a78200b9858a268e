// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IdempotencyKeysColumns holds the columns for the "idempotency_keys" table.
	IdempotencyKeysColumns = []*schema.Column{
		{Name: "idempotency_key_id", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "work_item_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IdempotencyKeysTable holds the schema information for the "idempotency_keys" table.
	IdempotencyKeysTable = &schema.Table{
		Name:       "idempotency_keys",
		Columns:    IdempotencyKeysColumns,
		PrimaryKey: []*schema.Column{IdempotencyKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idempotencykey_work_item_id",
				Unique:  false,
				Columns: []*schema.Column{IdempotencyKeysColumns[2]},
			},
		},
	}
	// EffectOutboxColumns holds the columns for the "effect_outbox" table.
	EffectOutboxColumns = []*schema.Column{
		{Name: "outbox_entry_id", Type: field.TypeString, Unique: true},
		{Name: "effect_key", Type: field.TypeString, Unique: true},
		{Name: "dispatch_id", Type: field.TypeString},
		{Name: "plugin_instance_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sending", "sent", "failed", "unknown", "cancelled"}, Default: "pending"},
		{Name: "retryable", Type: field.TypeBool, Default: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_epoch", Type: field.TypeInt64, Default: 0},
		{Name: "provider_ref", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "unknown_reason", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EffectOutboxTable holds the schema information for the "effect_outbox" table.
	EffectOutboxTable = &schema.Table{
		Name:       "effect_outbox",
		Columns:    EffectOutboxColumns,
		PrimaryKey: []*schema.Column{EffectOutboxColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxentry_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{EffectOutboxColumns[7], EffectOutboxColumns[10]},
			},
			{
				Name:    "outboxentry_dispatch_id_channel",
				Unique:  false,
				Columns: []*schema.Column{EffectOutboxColumns[2], EffectOutboxColumns[4]},
			},
			{
				Name:    "outboxentry_channel_status",
				Unique:  false,
				Columns: []*schema.Column{EffectOutboxColumns[4], EffectOutboxColumns[7]},
			},
			{
				Name:    "outboxentry_provider_ref",
				Unique:  false,
				Columns: []*schema.Column{EffectOutboxColumns[14]},
			},
		},
	}
	// PluginEventsColumns holds the columns for the "plugin_events" table.
	PluginEventsColumns = []*schema.Column{
		{Name: "plugin_event_id", Type: field.TypeString, Unique: true},
		{Name: "plugin_id", Type: field.TypeString},
		{Name: "plugin_version", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"webhook_ingress", "hook", "load", "unload", "auto_disable"}},
		{Name: "status", Type: field.TypeString},
		{Name: "work_item_id", Type: field.TypeString, Nullable: true},
		{Name: "detail_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PluginEventsTable holds the schema information for the "plugin_events" table.
	PluginEventsTable = &schema.Table{
		Name:       "plugin_events",
		Columns:    PluginEventsColumns,
		PrimaryKey: []*schema.Column{PluginEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pluginevent_plugin_id",
				Unique:  false,
				Columns: []*schema.Column{PluginEventsColumns[1]},
			},
			{
				Name:    "pluginevent_kind",
				Unique:  false,
				Columns: []*schema.Column{PluginEventsColumns[3]},
			},
			{
				Name:    "pluginevent_work_item_id",
				Unique:  false,
				Columns: []*schema.Column{PluginEventsColumns[5]},
			},
			{
				Name:    "pluginevent_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{PluginEventsColumns[3], PluginEventsColumns[7]},
			},
		},
	}
	// PluginInstancesColumns holds the columns for the "plugin_instances" table.
	PluginInstancesColumns = []*schema.Column{
		{Name: "plugin_instance_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PluginInstancesTable holds the schema information for the "plugin_instances" table.
	PluginInstancesTable = &schema.Table{
		Name:       "plugin_instances",
		Columns:    PluginInstancesColumns,
		PrimaryKey: []*schema.Column{PluginInstancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plugininstance_type",
				Unique:  false,
				Columns: []*schema.Column{PluginInstancesColumns[1]},
			},
			{
				Name:    "plugininstance_enabled",
				Unique:  false,
				Columns: []*schema.Column{PluginInstancesColumns[4]},
			},
		},
	}
	// QueueLanesColumns holds the columns for the "queue_lanes" table.
	QueueLanesColumns = []*schema.Column{
		{Name: "queue_key", Type: field.TypeString, Unique: true},
		{Name: "session_key", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"idle", "queued", "running"}, Default: "idle"},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"collect", "followup", "steer"}, Default: "collect"},
		{Name: "is_paused", Type: field.TypeBool, Default: false},
		{Name: "debounce_until", Type: field.TypeTime, Nullable: true},
		{Name: "debounce_ms", Type: field.TypeInt, Default: 300},
		{Name: "max_queued", Type: field.TypeInt, Default: 20},
		{Name: "active_dispatch_id", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QueueLanesTable holds the schema information for the "queue_lanes" table.
	QueueLanesTable = &schema.Table{
		Name:       "queue_lanes",
		Columns:    QueueLanesColumns,
		PrimaryKey: []*schema.Column{QueueLanesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuelane_state",
				Unique:  false,
				Columns: []*schema.Column{QueueLanesColumns[3]},
			},
			{
				Name:    "queuelane_session_key",
				Unique:  false,
				Columns: []*schema.Column{QueueLanesColumns[1]},
			},
		},
	}
	// QueueMessagesColumns holds the columns for the "queue_messages" table.
	QueueMessagesColumns = []*schema.Column{
		{Name: "queue_message_id", Type: field.TypeString, Unique: true},
		{Name: "queue_key", Type: field.TypeString},
		{Name: "work_item_id", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "sender_name", Type: field.TypeString, Nullable: true},
		{Name: "arrived_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "included", "dropped", "cancelled"}, Default: "pending"},
		{Name: "dispatch_id", Type: field.TypeString, Nullable: true},
	}
	// QueueMessagesTable holds the schema information for the "queue_messages" table.
	QueueMessagesTable = &schema.Table{
		Name:       "queue_messages",
		Columns:    QueueMessagesColumns,
		PrimaryKey: []*schema.Column{QueueMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuemessage_queue_key_status",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[1], QueueMessagesColumns[6]},
			},
			{
				Name:    "queuemessage_dispatch_id",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[7]},
			},
		},
	}
	// RoutinesColumns holds the columns for the "routines" table.
	RoutinesColumns = []*schema.Column{
		{Name: "routine_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "trigger_kind", Type: field.TypeEnum, Enums: []string{"cron", "event", "condition", "oneshot"}},
		{Name: "cron_expr", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Nullable: true},
		{Name: "rule_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "condition_probe", Type: field.TypeString, Nullable: true},
		{Name: "condition_config", Type: field.TypeJSON, Nullable: true},
		{Name: "target_plugin_instance_id", Type: field.TypeString, Nullable: true},
		{Name: "target_session_key", Type: field.TypeString, Nullable: true},
		{Name: "action_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "min_interval_ms", Type: field.TypeInt64, Default: 0},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_fired_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_status", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RoutinesTable holds the schema information for the "routines" table.
	RoutinesTable = &schema.Table{
		Name:       "routines",
		Columns:    RoutinesColumns,
		PrimaryKey: []*schema.Column{RoutinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "routine_agent_id_trigger_kind",
				Unique:  false,
				Columns: []*schema.Column{RoutinesColumns[1], RoutinesColumns[3]},
			},
			{
				Name:    "routine_enabled",
				Unique:  false,
				Columns: []*schema.Column{RoutinesColumns[12]},
			},
			{
				Name:    "routine_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{RoutinesColumns[14]},
			},
		},
	}
	// RoutineEventQueueColumns holds the columns for the "routine_event_queue" table.
	RoutineEventQueueColumns = []*schema.Column{
		{Name: "routine_event_id", Type: field.TypeString, Unique: true},
		{Name: "work_item_id", Type: field.TypeString, Nullable: true},
		{Name: "envelope_json", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "done", "failed"}, Default: "pending"},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RoutineEventQueueTable holds the schema information for the "routine_event_queue" table.
	RoutineEventQueueTable = &schema.Table{
		Name:       "routine_event_queue",
		Columns:    RoutineEventQueueColumns,
		PrimaryKey: []*schema.Column{RoutineEventQueueColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "routineevent_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RoutineEventQueueColumns[3], RoutineEventQueueColumns[7]},
			},
		},
	}
	// RoutineRunsColumns holds the columns for the "routine_runs" table.
	RoutineRunsColumns = []*schema.Column{
		{Name: "routine_run_id", Type: field.TypeString, Unique: true},
		{Name: "routine_id", Type: field.TypeString},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"enqueued", "skipped", "throttled", "error"}},
		{Name: "decision_reason", Type: field.TypeString, Nullable: true},
		{Name: "envelope_json", Type: field.TypeJSON, Nullable: true},
		{Name: "scheduled_item_id", Type: field.TypeString, Nullable: true},
		{Name: "work_item_id", Type: field.TypeString, Nullable: true},
		{Name: "dispatch_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RoutineRunsTable holds the schema information for the "routine_runs" table.
	RoutineRunsTable = &schema.Table{
		Name:       "routine_runs",
		Columns:    RoutineRunsColumns,
		PrimaryKey: []*schema.Column{RoutineRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "routinerun_routine_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RoutineRunsColumns[1], RoutineRunsColumns[8]},
			},
			{
				Name:    "routinerun_decision",
				Unique:  false,
				Columns: []*schema.Column{RoutineRunsColumns[2]},
			},
		},
	}
	// RunDispatchesColumns holds the columns for the "run_dispatches" table.
	RunDispatchesColumns = []*schema.Column{
		{Name: "dispatch_id", Type: field.TypeString, Unique: true},
		{Name: "run_key", Type: field.TypeString, Nullable: true},
		{Name: "queue_key", Type: field.TypeString},
		{Name: "work_item_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "session_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "paused", "completed", "failed", "abandoned", "cancelled", "merged"}, Default: "queued"},
		{Name: "control_state", Type: field.TypeEnum, Enums: []string{"normal", "pause_requested", "paused", "cancel_requested", "cancelled"}, Default: "normal"},
		{Name: "input_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "coalesced_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_context", Type: field.TypeJSON, Nullable: true},
		{Name: "output_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_epoch", Type: field.TypeInt64, Default: 0},
		{Name: "replay_of_dispatch_id", Type: field.TypeString, Nullable: true},
		{Name: "merged_into_dispatch_id", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RunDispatchesTable holds the schema information for the "run_dispatches" table.
	RunDispatchesTable = &schema.Table{
		Name:       "run_dispatches",
		Columns:    RunDispatchesColumns,
		PrimaryKey: []*schema.Column{RunDispatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rundispatch_status_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{RunDispatchesColumns[6], RunDispatchesColumns[19]},
			},
			{
				Name:    "rundispatch_queue_key_status",
				Unique:  false,
				Columns: []*schema.Column{RunDispatchesColumns[2], RunDispatchesColumns[6]},
			},
			{
				Name:    "rundispatch_session_key",
				Unique:  false,
				Columns: []*schema.Column{RunDispatchesColumns[5]},
			},
			{
				Name:    "rundispatch_replay_of_dispatch_id",
				Unique:  false,
				Columns: []*schema.Column{RunDispatchesColumns[16]},
			},
			{
				Name:    "rundispatch_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{RunDispatchesColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'running'",
				},
			},
		},
	}
	// RuntimeControlColumns holds the columns for the "runtime_control" table.
	RuntimeControlColumns = []*schema.Column{
		{Name: "control_id", Type: field.TypeString, Unique: true},
		{Name: "processing_enabled", Type: field.TypeBool, Default: true},
		{Name: "pause_mode", Type: field.TypeEnum, Enums: []string{"soft", "hard"}, Default: "soft"},
		{Name: "pause_reason", Type: field.TypeString, Nullable: true},
		{Name: "control_epoch", Type: field.TypeInt64, Default: 0},
		{Name: "max_concurrent_dispatches", Type: field.TypeInt, Default: 20},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// RuntimeControlTable holds the schema information for the "runtime_control" table.
	RuntimeControlTable = &schema.Table{
		Name:       "runtime_control",
		Columns:    RuntimeControlColumns,
		PrimaryKey: []*schema.Column{RuntimeControlColumns[0]},
	}
	// ScheduledItemsColumns holds the columns for the "scheduled_items" table.
	ScheduledItemsColumns = []*schema.Column{
		{Name: "scheduled_item_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "session_key", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"deferred", "heartbeat", "cron"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "recurrence", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "firing", "fired", "cancelled"}, Default: "pending"},
		{Name: "routine_id", Type: field.TypeString, Nullable: true},
		{Name: "routine_run_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScheduledItemsTable holds the schema information for the "scheduled_items" table.
	ScheduledItemsTable = &schema.Table{
		Name:       "scheduled_items",
		Columns:    ScheduledItemsColumns,
		PrimaryKey: []*schema.Column{ScheduledItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduleditem_status_run_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledItemsColumns[7], ScheduledItemsColumns[5]},
			},
			{
				Name:    "scheduleditem_routine_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledItemsColumns[8]},
			},
		},
	}
	// WorkItemsColumns holds the columns for the "work_items" table.
	WorkItemsColumns = []*schema.Column{
		{Name: "work_item_id", Type: field.TypeString, Unique: true},
		{Name: "plugin_instance_id", Type: field.TypeString},
		{Name: "session_key", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString},
		{Name: "source_ref", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "in_progress", "completed", "failed", "cancelled"}, Default: "new"},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkItemsTable holds the schema information for the "work_items" table.
	WorkItemsTable = &schema.Table{
		Name:       "work_items",
		Columns:    WorkItemsColumns,
		PrimaryKey: []*schema.Column{WorkItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workitem_status",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[5]},
			},
			{
				Name:    "workitem_session_key",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[2]},
			},
			{
				Name:    "workitem_plugin_instance_id",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[1]},
			},
			{
				Name:    "workitem_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[5], WorkItemsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IdempotencyKeysTable,
		EffectOutboxTable,
		PluginEventsTable,
		PluginInstancesTable,
		QueueLanesTable,
		QueueMessagesTable,
		RoutinesTable,
		RoutineEventQueueTable,
		RoutineRunsTable,
		RunDispatchesTable,
		RuntimeControlTable,
		ScheduledItemsTable,
		WorkItemsTable,
	}
)

func init() {
	EffectOutboxTable.Annotation = &entsql.Annotation{
		Table: "effect_outbox",
	}
	RoutineEventQueueTable.Annotation = &entsql.Annotation{
		Table: "routine_event_queue",
	}
	RuntimeControlTable.Annotation = &entsql.Annotation{
		Table: "runtime_control",
	}
}
