// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hooklinehq/hookline/ent/predicate"
	"github.com/hooklinehq/hookline/ent/routine"
)

// RoutineUpdate is the builder for updating Routine entities.
type RoutineUpdate struct {
	config
	hooks    []Hook
	mutation *RoutineMutation
}

// Where appends a list predicates to the RoutineUpdate builder.
func (_u *RoutineUpdate) Where(ps ...predicate.Routine) *RoutineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *RoutineUpdate) SetAgentID(v string) *RoutineUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableAgentID(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RoutineUpdate) SetName(v string) *RoutineUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableName(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *RoutineUpdate) ClearName() *RoutineUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetTriggerKind sets the "trigger_kind" field.
func (_u *RoutineUpdate) SetTriggerKind(v routine.TriggerKind) *RoutineUpdate {
	_u.mutation.SetTriggerKind(v)
	return _u
}

// SetNillableTriggerKind sets the "trigger_kind" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableTriggerKind(v *routine.TriggerKind) *RoutineUpdate {
	if v != nil {
		_u.SetTriggerKind(*v)
	}
	return _u
}

// SetCronExpr sets the "cron_expr" field.
func (_u *RoutineUpdate) SetCronExpr(v string) *RoutineUpdate {
	_u.mutation.SetCronExpr(v)
	return _u
}

// SetNillableCronExpr sets the "cron_expr" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableCronExpr(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetCronExpr(*v)
	}
	return _u
}

// ClearCronExpr clears the value of the "cron_expr" field.
func (_u *RoutineUpdate) ClearCronExpr() *RoutineUpdate {
	_u.mutation.ClearCronExpr()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *RoutineUpdate) SetTimezone(v string) *RoutineUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableTimezone(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *RoutineUpdate) ClearTimezone() *RoutineUpdate {
	_u.mutation.ClearTimezone()
	return _u
}

// SetRuleJSON sets the "rule_json" field.
func (_u *RoutineUpdate) SetRuleJSON(v string) *RoutineUpdate {
	_u.mutation.SetRuleJSON(v)
	return _u
}

// SetNillableRuleJSON sets the "rule_json" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableRuleJSON(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetRuleJSON(*v)
	}
	return _u
}

// ClearRuleJSON clears the value of the "rule_json" field.
func (_u *RoutineUpdate) ClearRuleJSON() *RoutineUpdate {
	_u.mutation.ClearRuleJSON()
	return _u
}

// SetConditionProbe sets the "condition_probe" field.
func (_u *RoutineUpdate) SetConditionProbe(v string) *RoutineUpdate {
	_u.mutation.SetConditionProbe(v)
	return _u
}

// SetNillableConditionProbe sets the "condition_probe" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableConditionProbe(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetConditionProbe(*v)
	}
	return _u
}

// ClearConditionProbe clears the value of the "condition_probe" field.
func (_u *RoutineUpdate) ClearConditionProbe() *RoutineUpdate {
	_u.mutation.ClearConditionProbe()
	return _u
}

// SetConditionConfig sets the "condition_config" field.
func (_u *RoutineUpdate) SetConditionConfig(v map[string]interface{}) *RoutineUpdate {
	_u.mutation.SetConditionConfig(v)
	return _u
}

// ClearConditionConfig clears the value of the "condition_config" field.
func (_u *RoutineUpdate) ClearConditionConfig() *RoutineUpdate {
	_u.mutation.ClearConditionConfig()
	return _u
}

// SetTargetPluginInstanceID sets the "target_plugin_instance_id" field.
func (_u *RoutineUpdate) SetTargetPluginInstanceID(v string) *RoutineUpdate {
	_u.mutation.SetTargetPluginInstanceID(v)
	return _u
}

// SetNillableTargetPluginInstanceID sets the "target_plugin_instance_id" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableTargetPluginInstanceID(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetTargetPluginInstanceID(*v)
	}
	return _u
}

// ClearTargetPluginInstanceID clears the value of the "target_plugin_instance_id" field.
func (_u *RoutineUpdate) ClearTargetPluginInstanceID() *RoutineUpdate {
	_u.mutation.ClearTargetPluginInstanceID()
	return _u
}

// SetTargetSessionKey sets the "target_session_key" field.
func (_u *RoutineUpdate) SetTargetSessionKey(v string) *RoutineUpdate {
	_u.mutation.SetTargetSessionKey(v)
	return _u
}

// SetNillableTargetSessionKey sets the "target_session_key" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableTargetSessionKey(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetTargetSessionKey(*v)
	}
	return _u
}

// ClearTargetSessionKey clears the value of the "target_session_key" field.
func (_u *RoutineUpdate) ClearTargetSessionKey() *RoutineUpdate {
	_u.mutation.ClearTargetSessionKey()
	return _u
}

// SetActionPrompt sets the "action_prompt" field.
func (_u *RoutineUpdate) SetActionPrompt(v string) *RoutineUpdate {
	_u.mutation.SetActionPrompt(v)
	return _u
}

// SetNillableActionPrompt sets the "action_prompt" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableActionPrompt(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetActionPrompt(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *RoutineUpdate) SetEnabled(v bool) *RoutineUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableEnabled(v *bool) *RoutineUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetMinIntervalMs sets the "min_interval_ms" field.
func (_u *RoutineUpdate) SetMinIntervalMs(v int64) *RoutineUpdate {
	_u.mutation.ResetMinIntervalMs()
	_u.mutation.SetMinIntervalMs(v)
	return _u
}

// SetNillableMinIntervalMs sets the "min_interval_ms" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableMinIntervalMs(v *int64) *RoutineUpdate {
	if v != nil {
		_u.SetMinIntervalMs(*v)
	}
	return _u
}

// AddMinIntervalMs adds value to the "min_interval_ms" field.
func (_u *RoutineUpdate) AddMinIntervalMs(v int64) *RoutineUpdate {
	_u.mutation.AddMinIntervalMs(v)
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *RoutineUpdate) SetNextRunAt(v time.Time) *RoutineUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableNextRunAt(v *time.Time) *RoutineUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *RoutineUpdate) ClearNextRunAt() *RoutineUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *RoutineUpdate) SetLastFiredAt(v time.Time) *RoutineUpdate {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableLastFiredAt(v *time.Time) *RoutineUpdate {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *RoutineUpdate) ClearLastFiredAt() *RoutineUpdate {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetLastStatus sets the "last_status" field.
func (_u *RoutineUpdate) SetLastStatus(v string) *RoutineUpdate {
	_u.mutation.SetLastStatus(v)
	return _u
}

// SetNillableLastStatus sets the "last_status" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableLastStatus(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetLastStatus(*v)
	}
	return _u
}

// ClearLastStatus clears the value of the "last_status" field.
func (_u *RoutineUpdate) ClearLastStatus() *RoutineUpdate {
	_u.mutation.ClearLastStatus()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoutineUpdate) SetUpdatedAt(v time.Time) *RoutineUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RoutineMutation object of the builder.
func (_u *RoutineUpdate) Mutation() *RoutineMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutineUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoutineUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := routine.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutineUpdate) check() error {
	if v, ok := _u.mutation.TriggerKind(); ok {
		if err := routine.TriggerKindValidator(v); err != nil {
			return &ValidationError{Name: "trigger_kind", err: fmt.Errorf(`ent: validator failed for field "Routine.trigger_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *RoutineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routine.Table, routine.Columns, sqlgraph.NewFieldSpec(routine.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(routine.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(routine.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(routine.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerKind(); ok {
		_spec.SetField(routine.FieldTriggerKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronExpr(); ok {
		_spec.SetField(routine.FieldCronExpr, field.TypeString, value)
	}
	if _u.mutation.CronExprCleared() {
		_spec.ClearField(routine.FieldCronExpr, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(routine.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(routine.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.RuleJSON(); ok {
		_spec.SetField(routine.FieldRuleJSON, field.TypeString, value)
	}
	if _u.mutation.RuleJSONCleared() {
		_spec.ClearField(routine.FieldRuleJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionProbe(); ok {
		_spec.SetField(routine.FieldConditionProbe, field.TypeString, value)
	}
	if _u.mutation.ConditionProbeCleared() {
		_spec.ClearField(routine.FieldConditionProbe, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionConfig(); ok {
		_spec.SetField(routine.FieldConditionConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConditionConfigCleared() {
		_spec.ClearField(routine.FieldConditionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetPluginInstanceID(); ok {
		_spec.SetField(routine.FieldTargetPluginInstanceID, field.TypeString, value)
	}
	if _u.mutation.TargetPluginInstanceIDCleared() {
		_spec.ClearField(routine.FieldTargetPluginInstanceID, field.TypeString)
	}
	if value, ok := _u.mutation.TargetSessionKey(); ok {
		_spec.SetField(routine.FieldTargetSessionKey, field.TypeString, value)
	}
	if _u.mutation.TargetSessionKeyCleared() {
		_spec.ClearField(routine.FieldTargetSessionKey, field.TypeString)
	}
	if value, ok := _u.mutation.ActionPrompt(); ok {
		_spec.SetField(routine.FieldActionPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(routine.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MinIntervalMs(); ok {
		_spec.SetField(routine.FieldMinIntervalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMinIntervalMs(); ok {
		_spec.AddField(routine.FieldMinIntervalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(routine.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(routine.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(routine.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(routine.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastStatus(); ok {
		_spec.SetField(routine.FieldLastStatus, field.TypeString, value)
	}
	if _u.mutation.LastStatusCleared() {
		_spec.ClearField(routine.FieldLastStatus, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(routine.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutineUpdateOne is the builder for updating a single Routine entity.
type RoutineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutineMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *RoutineUpdateOne) SetAgentID(v string) *RoutineUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableAgentID(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RoutineUpdateOne) SetName(v string) *RoutineUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableName(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *RoutineUpdateOne) ClearName() *RoutineUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetTriggerKind sets the "trigger_kind" field.
func (_u *RoutineUpdateOne) SetTriggerKind(v routine.TriggerKind) *RoutineUpdateOne {
	_u.mutation.SetTriggerKind(v)
	return _u
}

// SetNillableTriggerKind sets the "trigger_kind" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableTriggerKind(v *routine.TriggerKind) *RoutineUpdateOne {
	if v != nil {
		_u.SetTriggerKind(*v)
	}
	return _u
}

// SetCronExpr sets the "cron_expr" field.
func (_u *RoutineUpdateOne) SetCronExpr(v string) *RoutineUpdateOne {
	_u.mutation.SetCronExpr(v)
	return _u
}

// SetNillableCronExpr sets the "cron_expr" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableCronExpr(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetCronExpr(*v)
	}
	return _u
}

// ClearCronExpr clears the value of the "cron_expr" field.
func (_u *RoutineUpdateOne) ClearCronExpr() *RoutineUpdateOne {
	_u.mutation.ClearCronExpr()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *RoutineUpdateOne) SetTimezone(v string) *RoutineUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableTimezone(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *RoutineUpdateOne) ClearTimezone() *RoutineUpdateOne {
	_u.mutation.ClearTimezone()
	return _u
}

// SetRuleJSON sets the "rule_json" field.
func (_u *RoutineUpdateOne) SetRuleJSON(v string) *RoutineUpdateOne {
	_u.mutation.SetRuleJSON(v)
	return _u
}

// SetNillableRuleJSON sets the "rule_json" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableRuleJSON(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetRuleJSON(*v)
	}
	return _u
}

// ClearRuleJSON clears the value of the "rule_json" field.
func (_u *RoutineUpdateOne) ClearRuleJSON() *RoutineUpdateOne {
	_u.mutation.ClearRuleJSON()
	return _u
}

// SetConditionProbe sets the "condition_probe" field.
func (_u *RoutineUpdateOne) SetConditionProbe(v string) *RoutineUpdateOne {
	_u.mutation.SetConditionProbe(v)
	return _u
}

// SetNillableConditionProbe sets the "condition_probe" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableConditionProbe(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetConditionProbe(*v)
	}
	return _u
}

// ClearConditionProbe clears the value of the "condition_probe" field.
func (_u *RoutineUpdateOne) ClearConditionProbe() *RoutineUpdateOne {
	_u.mutation.ClearConditionProbe()
	return _u
}

// SetConditionConfig sets the "condition_config" field.
func (_u *RoutineUpdateOne) SetConditionConfig(v map[string]interface{}) *RoutineUpdateOne {
	_u.mutation.SetConditionConfig(v)
	return _u
}

// ClearConditionConfig clears the value of the "condition_config" field.
func (_u *RoutineUpdateOne) ClearConditionConfig() *RoutineUpdateOne {
	_u.mutation.ClearConditionConfig()
	return _u
}

// SetTargetPluginInstanceID sets the "target_plugin_instance_id" field.
func (_u *RoutineUpdateOne) SetTargetPluginInstanceID(v string) *RoutineUpdateOne {
	_u.mutation.SetTargetPluginInstanceID(v)
	return _u
}

// SetNillableTargetPluginInstanceID sets the "target_plugin_instance_id" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableTargetPluginInstanceID(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetTargetPluginInstanceID(*v)
	}
	return _u
}

// ClearTargetPluginInstanceID clears the value of the "target_plugin_instance_id" field.
func (_u *RoutineUpdateOne) ClearTargetPluginInstanceID() *RoutineUpdateOne {
	_u.mutation.ClearTargetPluginInstanceID()
	return _u
}

// SetTargetSessionKey sets the "target_session_key" field.
func (_u *RoutineUpdateOne) SetTargetSessionKey(v string) *RoutineUpdateOne {
	_u.mutation.SetTargetSessionKey(v)
	return _u
}

// SetNillableTargetSessionKey sets the "target_session_key" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableTargetSessionKey(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetTargetSessionKey(*v)
	}
	return _u
}

// ClearTargetSessionKey clears the value of the "target_session_key" field.
func (_u *RoutineUpdateOne) ClearTargetSessionKey() *RoutineUpdateOne {
	_u.mutation.ClearTargetSessionKey()
	return _u
}

// SetActionPrompt sets the "action_prompt" field.
func (_u *RoutineUpdateOne) SetActionPrompt(v string) *RoutineUpdateOne {
	_u.mutation.SetActionPrompt(v)
	return _u
}

// SetNillableActionPrompt sets the "action_prompt" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableActionPrompt(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetActionPrompt(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *RoutineUpdateOne) SetEnabled(v bool) *RoutineUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableEnabled(v *bool) *RoutineUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetMinIntervalMs sets the "min_interval_ms" field.
func (_u *RoutineUpdateOne) SetMinIntervalMs(v int64) *RoutineUpdateOne {
	_u.mutation.ResetMinIntervalMs()
	_u.mutation.SetMinIntervalMs(v)
	return _u
}

// SetNillableMinIntervalMs sets the "min_interval_ms" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableMinIntervalMs(v *int64) *RoutineUpdateOne {
	if v != nil {
		_u.SetMinIntervalMs(*v)
	}
	return _u
}

// AddMinIntervalMs adds value to the "min_interval_ms" field.
func (_u *RoutineUpdateOne) AddMinIntervalMs(v int64) *RoutineUpdateOne {
	_u.mutation.AddMinIntervalMs(v)
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *RoutineUpdateOne) SetNextRunAt(v time.Time) *RoutineUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableNextRunAt(v *time.Time) *RoutineUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *RoutineUpdateOne) ClearNextRunAt() *RoutineUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *RoutineUpdateOne) SetLastFiredAt(v time.Time) *RoutineUpdateOne {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableLastFiredAt(v *time.Time) *RoutineUpdateOne {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *RoutineUpdateOne) ClearLastFiredAt() *RoutineUpdateOne {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetLastStatus sets the "last_status" field.
func (_u *RoutineUpdateOne) SetLastStatus(v string) *RoutineUpdateOne {
	_u.mutation.SetLastStatus(v)
	return _u
}

// SetNillableLastStatus sets the "last_status" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableLastStatus(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetLastStatus(*v)
	}
	return _u
}

// ClearLastStatus clears the value of the "last_status" field.
func (_u *RoutineUpdateOne) ClearLastStatus() *RoutineUpdateOne {
	_u.mutation.ClearLastStatus()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoutineUpdateOne) SetUpdatedAt(v time.Time) *RoutineUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RoutineMutation object of the builder.
func (_u *RoutineUpdateOne) Mutation() *RoutineMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoutineUpdate builder.
func (_u *RoutineUpdateOne) Where(ps ...predicate.Routine) *RoutineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutineUpdateOne) Select(field string, fields ...string) *RoutineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Routine entity.
func (_u *RoutineUpdateOne) Save(ctx context.Context) (*Routine, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutineUpdateOne) SaveX(ctx context.Context) *Routine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoutineUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := routine.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutineUpdateOne) check() error {
	if v, ok := _u.mutation.TriggerKind(); ok {
		if err := routine.TriggerKindValidator(v); err != nil {
			return &ValidationError{Name: "trigger_kind", err: fmt.Errorf(`ent: validator failed for field "Routine.trigger_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *RoutineUpdateOne) sqlSave(ctx context.Context) (_node *Routine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routine.Table, routine.Columns, sqlgraph.NewFieldSpec(routine.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Routine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routine.FieldID)
		for _, f := range fields {
			if !routine.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routine.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(routine.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(routine.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(routine.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerKind(); ok {
		_spec.SetField(routine.FieldTriggerKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronExpr(); ok {
		_spec.SetField(routine.FieldCronExpr, field.TypeString, value)
	}
	if _u.mutation.CronExprCleared() {
		_spec.ClearField(routine.FieldCronExpr, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(routine.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(routine.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.RuleJSON(); ok {
		_spec.SetField(routine.FieldRuleJSON, field.TypeString, value)
	}
	if _u.mutation.RuleJSONCleared() {
		_spec.ClearField(routine.FieldRuleJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionProbe(); ok {
		_spec.SetField(routine.FieldConditionProbe, field.TypeString, value)
	}
	if _u.mutation.ConditionProbeCleared() {
		_spec.ClearField(routine.FieldConditionProbe, field.TypeString)
	}
	if value, ok := _u.mutation.ConditionConfig(); ok {
		_spec.SetField(routine.FieldConditionConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConditionConfigCleared() {
		_spec.ClearField(routine.FieldConditionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetPluginInstanceID(); ok {
		_spec.SetField(routine.FieldTargetPluginInstanceID, field.TypeString, value)
	}
	if _u.mutation.TargetPluginInstanceIDCleared() {
		_spec.ClearField(routine.FieldTargetPluginInstanceID, field.TypeString)
	}
	if value, ok := _u.mutation.TargetSessionKey(); ok {
		_spec.SetField(routine.FieldTargetSessionKey, field.TypeString, value)
	}
	if _u.mutation.TargetSessionKeyCleared() {
		_spec.ClearField(routine.FieldTargetSessionKey, field.TypeString)
	}
	if value, ok := _u.mutation.ActionPrompt(); ok {
		_spec.SetField(routine.FieldActionPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(routine.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MinIntervalMs(); ok {
		_spec.SetField(routine.FieldMinIntervalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMinIntervalMs(); ok {
		_spec.AddField(routine.FieldMinIntervalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(routine.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(routine.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(routine.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(routine.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastStatus(); ok {
		_spec.SetField(routine.FieldLastStatus, field.TypeString, value)
	}
	if _u.mutation.LastStatusCleared() {
		_spec.ClearField(routine.FieldLastStatus, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(routine.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Routine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
