// Package events records the plugin_events audit stream and broadcasts it
// over PostgreSQL NOTIFY for live tailing across replicas.
package events

// PluginEventsChannel is the NOTIFY channel carrying every plugin event.
const PluginEventsChannel = "hookline_plugin_events"

// Ingress outcome statuses (plugin_events.status for kind=webhook_ingress).
const (
	IngressAccepted  = "accepted"
	IngressDuplicate = "duplicate"
	IngressSkipped   = "skipped"
	IngressRejected  = "rejected"
)

// Skip reasons (detail_json.reason for status=skipped).
const (
	SkipShouldProcessFalse    = "should_process_false"
	SkipNoWorkItem            = "no_work_item"
	SkipInboundPolicyFiltered = "inbound_policy_filtered"
	SkipBlockedByPluginHook   = "blocked_by_plugin_hook"
)

// Reject reasons (detail_json.reason for status=rejected).
const (
	RejectPluginTypeMismatch = "plugin_type_mismatch"
	RejectUnknownPluginType  = "unknown_plugin_type"
	RejectParseError         = "parse_error"
)

// Hook receipt statuses (plugin_events.status for kind=hook).
const (
	HookOK             = "ok"
	HookError          = "error"
	HookTimeout        = "timeout"
	HookBudgetExceeded = "budget_exceeded"
	HookBlocked        = "blocked"
)

// AutoDisableReason is recorded when the crash guard trips.
const AutoDisableReason = "crash_loop"
