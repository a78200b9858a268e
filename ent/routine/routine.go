// Code generated by ent, DO NOT EDIT.

package routine

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the routine type in the database.
	Label = "routine"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "routine_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTriggerKind holds the string denoting the trigger_kind field in the database.
	FieldTriggerKind = "trigger_kind"
	// FieldCronExpr holds the string denoting the cron_expr field in the database.
	FieldCronExpr = "cron_expr"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldRuleJSON holds the string denoting the rule_json field in the database.
	FieldRuleJSON = "rule_json"
	// FieldConditionProbe holds the string denoting the condition_probe field in the database.
	FieldConditionProbe = "condition_probe"
	// FieldConditionConfig holds the string denoting the condition_config field in the database.
	FieldConditionConfig = "condition_config"
	// FieldTargetPluginInstanceID holds the string denoting the target_plugin_instance_id field in the database.
	FieldTargetPluginInstanceID = "target_plugin_instance_id"
	// FieldTargetSessionKey holds the string denoting the target_session_key field in the database.
	FieldTargetSessionKey = "target_session_key"
	// FieldActionPrompt holds the string denoting the action_prompt field in the database.
	FieldActionPrompt = "action_prompt"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldMinIntervalMs holds the string denoting the min_interval_ms field in the database.
	FieldMinIntervalMs = "min_interval_ms"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// FieldLastFiredAt holds the string denoting the last_fired_at field in the database.
	FieldLastFiredAt = "last_fired_at"
	// FieldLastStatus holds the string denoting the last_status field in the database.
	FieldLastStatus = "last_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the routine in the database.
	Table = "routines"
)

// Columns holds all SQL columns for routine fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldName,
	FieldTriggerKind,
	FieldCronExpr,
	FieldTimezone,
	FieldRuleJSON,
	FieldConditionProbe,
	FieldConditionConfig,
	FieldTargetPluginInstanceID,
	FieldTargetSessionKey,
	FieldActionPrompt,
	FieldEnabled,
	FieldMinIntervalMs,
	FieldNextRunAt,
	FieldLastFiredAt,
	FieldLastStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultMinIntervalMs holds the default value on creation for the "min_interval_ms" field.
	DefaultMinIntervalMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TriggerKind defines the type for the "trigger_kind" enum field.
type TriggerKind string

// TriggerKind values.
const (
	TriggerKindCron      TriggerKind = "cron"
	TriggerKindEvent     TriggerKind = "event"
	TriggerKindCondition TriggerKind = "condition"
	TriggerKindOneshot   TriggerKind = "oneshot"
)

func (tk TriggerKind) String() string {
	return string(tk)
}

// TriggerKindValidator is a validator for the "trigger_kind" field enum values. It is called by the builders before save.
func TriggerKindValidator(tk TriggerKind) error {
	switch tk {
	case TriggerKindCron, TriggerKindEvent, TriggerKindCondition, TriggerKindOneshot:
		return nil
	default:
		return fmt.Errorf("routine: invalid enum value for trigger_kind field: %q", tk)
	}
}

// OrderOption defines the ordering options for the Routine queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTriggerKind orders the results by the trigger_kind field.
func ByTriggerKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerKind, opts...).ToFunc()
}

// ByCronExpr orders the results by the cron_expr field.
func ByCronExpr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronExpr, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByRuleJSON orders the results by the rule_json field.
func ByRuleJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleJSON, opts...).ToFunc()
}

// ByConditionProbe orders the results by the condition_probe field.
func ByConditionProbe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConditionProbe, opts...).ToFunc()
}

// ByTargetPluginInstanceID orders the results by the target_plugin_instance_id field.
func ByTargetPluginInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetPluginInstanceID, opts...).ToFunc()
}

// ByTargetSessionKey orders the results by the target_session_key field.
func ByTargetSessionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetSessionKey, opts...).ToFunc()
}

// ByActionPrompt orders the results by the action_prompt field.
func ByActionPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionPrompt, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByMinIntervalMs orders the results by the min_interval_ms field.
func ByMinIntervalMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinIntervalMs, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}

// ByLastFiredAt orders the results by the last_fired_at field.
func ByLastFiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFiredAt, opts...).ToFunc()
}

// ByLastStatus orders the results by the last_status field.
func ByLastStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
