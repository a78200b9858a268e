// Code generated by ent, DO NOT EDIT.

package routine

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldAgentID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldName, v))
}

// CronExpr applies equality check predicate on the "cron_expr" field. It's identical to CronExprEQ.
func CronExpr(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldCronExpr, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldTimezone, v))
}

// RuleJSON applies equality check predicate on the "rule_json" field. It's identical to RuleJSONEQ.
func RuleJSON(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldRuleJSON, v))
}

// ConditionProbe applies equality check predicate on the "condition_probe" field. It's identical to ConditionProbeEQ.
func ConditionProbe(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldConditionProbe, v))
}

// TargetPluginInstanceID applies equality check predicate on the "target_plugin_instance_id" field. It's identical to TargetPluginInstanceIDEQ.
func TargetPluginInstanceID(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldTargetPluginInstanceID, v))
}

// TargetSessionKey applies equality check predicate on the "target_session_key" field. It's identical to TargetSessionKeyEQ.
func TargetSessionKey(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldTargetSessionKey, v))
}

// ActionPrompt applies equality check predicate on the "action_prompt" field. It's identical to ActionPromptEQ.
func ActionPrompt(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldActionPrompt, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldEnabled, v))
}

// MinIntervalMs applies equality check predicate on the "min_interval_ms" field. It's identical to MinIntervalMsEQ.
func MinIntervalMs(v int64) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldMinIntervalMs, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldNextRunAt, v))
}

// LastFiredAt applies equality check predicate on the "last_fired_at" field. It's identical to LastFiredAtEQ.
func LastFiredAt(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldLastFiredAt, v))
}

// LastStatus applies equality check predicate on the "last_status" field. It's identical to LastStatusEQ.
func LastStatus(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldLastStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldAgentID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldName, v))
}

// TriggerKindEQ applies the EQ predicate on the "trigger_kind" field.
func TriggerKindEQ(v TriggerKind) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldTriggerKind, v))
}

// TriggerKindNEQ applies the NEQ predicate on the "trigger_kind" field.
func TriggerKindNEQ(v TriggerKind) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldTriggerKind, v))
}

// TriggerKindIn applies the In predicate on the "trigger_kind" field.
func TriggerKindIn(vs ...TriggerKind) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldTriggerKind, vs...))
}

// TriggerKindNotIn applies the NotIn predicate on the "trigger_kind" field.
func TriggerKindNotIn(vs ...TriggerKind) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldTriggerKind, vs...))
}

// CronExprEQ applies the EQ predicate on the "cron_expr" field.
func CronExprEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldCronExpr, v))
}

// CronExprNEQ applies the NEQ predicate on the "cron_expr" field.
func CronExprNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldCronExpr, v))
}

// CronExprIn applies the In predicate on the "cron_expr" field.
func CronExprIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldCronExpr, vs...))
}

// CronExprNotIn applies the NotIn predicate on the "cron_expr" field.
func CronExprNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldCronExpr, vs...))
}

// CronExprGT applies the GT predicate on the "cron_expr" field.
func CronExprGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldCronExpr, v))
}

// CronExprGTE applies the GTE predicate on the "cron_expr" field.
func CronExprGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldCronExpr, v))
}

// CronExprLT applies the LT predicate on the "cron_expr" field.
func CronExprLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldCronExpr, v))
}

// CronExprLTE applies the LTE predicate on the "cron_expr" field.
func CronExprLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldCronExpr, v))
}

// CronExprContains applies the Contains predicate on the "cron_expr" field.
func CronExprContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldCronExpr, v))
}

// CronExprHasPrefix applies the HasPrefix predicate on the "cron_expr" field.
func CronExprHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldCronExpr, v))
}

// CronExprHasSuffix applies the HasSuffix predicate on the "cron_expr" field.
func CronExprHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldCronExpr, v))
}

// CronExprIsNil applies the IsNil predicate on the "cron_expr" field.
func CronExprIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldCronExpr))
}

// CronExprNotNil applies the NotNil predicate on the "cron_expr" field.
func CronExprNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldCronExpr))
}

// CronExprEqualFold applies the EqualFold predicate on the "cron_expr" field.
func CronExprEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldCronExpr, v))
}

// CronExprContainsFold applies the ContainsFold predicate on the "cron_expr" field.
func CronExprContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldCronExpr, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneIsNil applies the IsNil predicate on the "timezone" field.
func TimezoneIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldTimezone))
}

// TimezoneNotNil applies the NotNil predicate on the "timezone" field.
func TimezoneNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldTimezone))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldTimezone, v))
}

// RuleJSONEQ applies the EQ predicate on the "rule_json" field.
func RuleJSONEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldRuleJSON, v))
}

// RuleJSONNEQ applies the NEQ predicate on the "rule_json" field.
func RuleJSONNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldRuleJSON, v))
}

// RuleJSONIn applies the In predicate on the "rule_json" field.
func RuleJSONIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldRuleJSON, vs...))
}

// RuleJSONNotIn applies the NotIn predicate on the "rule_json" field.
func RuleJSONNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldRuleJSON, vs...))
}

// RuleJSONGT applies the GT predicate on the "rule_json" field.
func RuleJSONGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldRuleJSON, v))
}

// RuleJSONGTE applies the GTE predicate on the "rule_json" field.
func RuleJSONGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldRuleJSON, v))
}

// RuleJSONLT applies the LT predicate on the "rule_json" field.
func RuleJSONLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldRuleJSON, v))
}

// RuleJSONLTE applies the LTE predicate on the "rule_json" field.
func RuleJSONLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldRuleJSON, v))
}

// RuleJSONContains applies the Contains predicate on the "rule_json" field.
func RuleJSONContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldRuleJSON, v))
}

// RuleJSONHasPrefix applies the HasPrefix predicate on the "rule_json" field.
func RuleJSONHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldRuleJSON, v))
}

// RuleJSONHasSuffix applies the HasSuffix predicate on the "rule_json" field.
func RuleJSONHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldRuleJSON, v))
}

// RuleJSONIsNil applies the IsNil predicate on the "rule_json" field.
func RuleJSONIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldRuleJSON))
}

// RuleJSONNotNil applies the NotNil predicate on the "rule_json" field.
func RuleJSONNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldRuleJSON))
}

// RuleJSONEqualFold applies the EqualFold predicate on the "rule_json" field.
func RuleJSONEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldRuleJSON, v))
}

// RuleJSONContainsFold applies the ContainsFold predicate on the "rule_json" field.
func RuleJSONContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldRuleJSON, v))
}

// ConditionProbeEQ applies the EQ predicate on the "condition_probe" field.
func ConditionProbeEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldConditionProbe, v))
}

// ConditionProbeNEQ applies the NEQ predicate on the "condition_probe" field.
func ConditionProbeNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldConditionProbe, v))
}

// ConditionProbeIn applies the In predicate on the "condition_probe" field.
func ConditionProbeIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldConditionProbe, vs...))
}

// ConditionProbeNotIn applies the NotIn predicate on the "condition_probe" field.
func ConditionProbeNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldConditionProbe, vs...))
}

// ConditionProbeGT applies the GT predicate on the "condition_probe" field.
func ConditionProbeGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldConditionProbe, v))
}

// ConditionProbeGTE applies the GTE predicate on the "condition_probe" field.
func ConditionProbeGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldConditionProbe, v))
}

// ConditionProbeLT applies the LT predicate on the "condition_probe" field.
func ConditionProbeLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldConditionProbe, v))
}

// ConditionProbeLTE applies the LTE predicate on the "condition_probe" field.
func ConditionProbeLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldConditionProbe, v))
}

// ConditionProbeContains applies the Contains predicate on the "condition_probe" field.
func ConditionProbeContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldConditionProbe, v))
}

// ConditionProbeHasPrefix applies the HasPrefix predicate on the "condition_probe" field.
func ConditionProbeHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldConditionProbe, v))
}

// ConditionProbeHasSuffix applies the HasSuffix predicate on the "condition_probe" field.
func ConditionProbeHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldConditionProbe, v))
}

// ConditionProbeIsNil applies the IsNil predicate on the "condition_probe" field.
func ConditionProbeIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldConditionProbe))
}

// ConditionProbeNotNil applies the NotNil predicate on the "condition_probe" field.
func ConditionProbeNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldConditionProbe))
}

// ConditionProbeEqualFold applies the EqualFold predicate on the "condition_probe" field.
func ConditionProbeEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldConditionProbe, v))
}

// ConditionProbeContainsFold applies the ContainsFold predicate on the "condition_probe" field.
func ConditionProbeContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldConditionProbe, v))
}

// ConditionConfigIsNil applies the IsNil predicate on the "condition_config" field.
func ConditionConfigIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldConditionConfig))
}

// ConditionConfigNotNil applies the NotNil predicate on the "condition_config" field.
func ConditionConfigNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldConditionConfig))
}

// TargetPluginInstanceIDEQ applies the EQ predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDNEQ applies the NEQ predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDIn applies the In predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldTargetPluginInstanceID, vs...))
}

// TargetPluginInstanceIDNotIn applies the NotIn predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldTargetPluginInstanceID, vs...))
}

// TargetPluginInstanceIDGT applies the GT predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDGTE applies the GTE predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDLT applies the LT predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDLTE applies the LTE predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDContains applies the Contains predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDHasPrefix applies the HasPrefix predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDHasSuffix applies the HasSuffix predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDIsNil applies the IsNil predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldTargetPluginInstanceID))
}

// TargetPluginInstanceIDNotNil applies the NotNil predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldTargetPluginInstanceID))
}

// TargetPluginInstanceIDEqualFold applies the EqualFold predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldTargetPluginInstanceID, v))
}

// TargetPluginInstanceIDContainsFold applies the ContainsFold predicate on the "target_plugin_instance_id" field.
func TargetPluginInstanceIDContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldTargetPluginInstanceID, v))
}

// TargetSessionKeyEQ applies the EQ predicate on the "target_session_key" field.
func TargetSessionKeyEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldTargetSessionKey, v))
}

// TargetSessionKeyNEQ applies the NEQ predicate on the "target_session_key" field.
func TargetSessionKeyNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldTargetSessionKey, v))
}

// TargetSessionKeyIn applies the In predicate on the "target_session_key" field.
func TargetSessionKeyIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldTargetSessionKey, vs...))
}

// TargetSessionKeyNotIn applies the NotIn predicate on the "target_session_key" field.
func TargetSessionKeyNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldTargetSessionKey, vs...))
}

// TargetSessionKeyGT applies the GT predicate on the "target_session_key" field.
func TargetSessionKeyGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldTargetSessionKey, v))
}

// TargetSessionKeyGTE applies the GTE predicate on the "target_session_key" field.
func TargetSessionKeyGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldTargetSessionKey, v))
}

// TargetSessionKeyLT applies the LT predicate on the "target_session_key" field.
func TargetSessionKeyLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldTargetSessionKey, v))
}

// TargetSessionKeyLTE applies the LTE predicate on the "target_session_key" field.
func TargetSessionKeyLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldTargetSessionKey, v))
}

// TargetSessionKeyContains applies the Contains predicate on the "target_session_key" field.
func TargetSessionKeyContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldTargetSessionKey, v))
}

// TargetSessionKeyHasPrefix applies the HasPrefix predicate on the "target_session_key" field.
func TargetSessionKeyHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldTargetSessionKey, v))
}

// TargetSessionKeyHasSuffix applies the HasSuffix predicate on the "target_session_key" field.
func TargetSessionKeyHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldTargetSessionKey, v))
}

// TargetSessionKeyIsNil applies the IsNil predicate on the "target_session_key" field.
func TargetSessionKeyIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldTargetSessionKey))
}

// TargetSessionKeyNotNil applies the NotNil predicate on the "target_session_key" field.
func TargetSessionKeyNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldTargetSessionKey))
}

// TargetSessionKeyEqualFold applies the EqualFold predicate on the "target_session_key" field.
func TargetSessionKeyEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldTargetSessionKey, v))
}

// TargetSessionKeyContainsFold applies the ContainsFold predicate on the "target_session_key" field.
func TargetSessionKeyContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldTargetSessionKey, v))
}

// ActionPromptEQ applies the EQ predicate on the "action_prompt" field.
func ActionPromptEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldActionPrompt, v))
}

// ActionPromptNEQ applies the NEQ predicate on the "action_prompt" field.
func ActionPromptNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldActionPrompt, v))
}

// ActionPromptIn applies the In predicate on the "action_prompt" field.
func ActionPromptIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldActionPrompt, vs...))
}

// ActionPromptNotIn applies the NotIn predicate on the "action_prompt" field.
func ActionPromptNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldActionPrompt, vs...))
}

// ActionPromptGT applies the GT predicate on the "action_prompt" field.
func ActionPromptGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldActionPrompt, v))
}

// ActionPromptGTE applies the GTE predicate on the "action_prompt" field.
func ActionPromptGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldActionPrompt, v))
}

// ActionPromptLT applies the LT predicate on the "action_prompt" field.
func ActionPromptLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldActionPrompt, v))
}

// ActionPromptLTE applies the LTE predicate on the "action_prompt" field.
func ActionPromptLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldActionPrompt, v))
}

// ActionPromptContains applies the Contains predicate on the "action_prompt" field.
func ActionPromptContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldActionPrompt, v))
}

// ActionPromptHasPrefix applies the HasPrefix predicate on the "action_prompt" field.
func ActionPromptHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldActionPrompt, v))
}

// ActionPromptHasSuffix applies the HasSuffix predicate on the "action_prompt" field.
func ActionPromptHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldActionPrompt, v))
}

// ActionPromptEqualFold applies the EqualFold predicate on the "action_prompt" field.
func ActionPromptEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldActionPrompt, v))
}

// ActionPromptContainsFold applies the ContainsFold predicate on the "action_prompt" field.
func ActionPromptContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldActionPrompt, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldEnabled, v))
}

// MinIntervalMsEQ applies the EQ predicate on the "min_interval_ms" field.
func MinIntervalMsEQ(v int64) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldMinIntervalMs, v))
}

// MinIntervalMsNEQ applies the NEQ predicate on the "min_interval_ms" field.
func MinIntervalMsNEQ(v int64) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldMinIntervalMs, v))
}

// MinIntervalMsIn applies the In predicate on the "min_interval_ms" field.
func MinIntervalMsIn(vs ...int64) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldMinIntervalMs, vs...))
}

// MinIntervalMsNotIn applies the NotIn predicate on the "min_interval_ms" field.
func MinIntervalMsNotIn(vs ...int64) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldMinIntervalMs, vs...))
}

// MinIntervalMsGT applies the GT predicate on the "min_interval_ms" field.
func MinIntervalMsGT(v int64) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldMinIntervalMs, v))
}

// MinIntervalMsGTE applies the GTE predicate on the "min_interval_ms" field.
func MinIntervalMsGTE(v int64) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldMinIntervalMs, v))
}

// MinIntervalMsLT applies the LT predicate on the "min_interval_ms" field.
func MinIntervalMsLT(v int64) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldMinIntervalMs, v))
}

// MinIntervalMsLTE applies the LTE predicate on the "min_interval_ms" field.
func MinIntervalMsLTE(v int64) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldMinIntervalMs, v))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldNextRunAt))
}

// LastFiredAtEQ applies the EQ predicate on the "last_fired_at" field.
func LastFiredAtEQ(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldLastFiredAt, v))
}

// LastFiredAtNEQ applies the NEQ predicate on the "last_fired_at" field.
func LastFiredAtNEQ(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldLastFiredAt, v))
}

// LastFiredAtIn applies the In predicate on the "last_fired_at" field.
func LastFiredAtIn(vs ...time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldLastFiredAt, vs...))
}

// LastFiredAtNotIn applies the NotIn predicate on the "last_fired_at" field.
func LastFiredAtNotIn(vs ...time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldLastFiredAt, vs...))
}

// LastFiredAtGT applies the GT predicate on the "last_fired_at" field.
func LastFiredAtGT(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldLastFiredAt, v))
}

// LastFiredAtGTE applies the GTE predicate on the "last_fired_at" field.
func LastFiredAtGTE(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldLastFiredAt, v))
}

// LastFiredAtLT applies the LT predicate on the "last_fired_at" field.
func LastFiredAtLT(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldLastFiredAt, v))
}

// LastFiredAtLTE applies the LTE predicate on the "last_fired_at" field.
func LastFiredAtLTE(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldLastFiredAt, v))
}

// LastFiredAtIsNil applies the IsNil predicate on the "last_fired_at" field.
func LastFiredAtIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldLastFiredAt))
}

// LastFiredAtNotNil applies the NotNil predicate on the "last_fired_at" field.
func LastFiredAtNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldLastFiredAt))
}

// LastStatusEQ applies the EQ predicate on the "last_status" field.
func LastStatusEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldLastStatus, v))
}

// LastStatusNEQ applies the NEQ predicate on the "last_status" field.
func LastStatusNEQ(v string) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldLastStatus, v))
}

// LastStatusIn applies the In predicate on the "last_status" field.
func LastStatusIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldLastStatus, vs...))
}

// LastStatusNotIn applies the NotIn predicate on the "last_status" field.
func LastStatusNotIn(vs ...string) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldLastStatus, vs...))
}

// LastStatusGT applies the GT predicate on the "last_status" field.
func LastStatusGT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldLastStatus, v))
}

// LastStatusGTE applies the GTE predicate on the "last_status" field.
func LastStatusGTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldLastStatus, v))
}

// LastStatusLT applies the LT predicate on the "last_status" field.
func LastStatusLT(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldLastStatus, v))
}

// LastStatusLTE applies the LTE predicate on the "last_status" field.
func LastStatusLTE(v string) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldLastStatus, v))
}

// LastStatusContains applies the Contains predicate on the "last_status" field.
func LastStatusContains(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContains(FieldLastStatus, v))
}

// LastStatusHasPrefix applies the HasPrefix predicate on the "last_status" field.
func LastStatusHasPrefix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasPrefix(FieldLastStatus, v))
}

// LastStatusHasSuffix applies the HasSuffix predicate on the "last_status" field.
func LastStatusHasSuffix(v string) predicate.Routine {
	return predicate.Routine(sql.FieldHasSuffix(FieldLastStatus, v))
}

// LastStatusIsNil applies the IsNil predicate on the "last_status" field.
func LastStatusIsNil() predicate.Routine {
	return predicate.Routine(sql.FieldIsNull(FieldLastStatus))
}

// LastStatusNotNil applies the NotNil predicate on the "last_status" field.
func LastStatusNotNil() predicate.Routine {
	return predicate.Routine(sql.FieldNotNull(FieldLastStatus))
}

// LastStatusEqualFold applies the EqualFold predicate on the "last_status" field.
func LastStatusEqualFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldEqualFold(FieldLastStatus, v))
}

// LastStatusContainsFold applies the ContainsFold predicate on the "last_status" field.
func LastStatusContainsFold(v string) predicate.Routine {
	return predicate.Routine(sql.FieldContainsFold(FieldLastStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Routine {
	return predicate.Routine(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Routine) predicate.Routine {
	return predicate.Routine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Routine) predicate.Routine {
	return predicate.Routine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Routine) predicate.Routine {
	return predicate.Routine(sql.NotPredicates(p))
}
