// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hooklinehq/hookline/ent/routine"
)

// RoutineCreate is the builder for creating a Routine entity.
type RoutineCreate struct {
	config
	mutation *RoutineMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *RoutineCreate) SetAgentID(v string) *RoutineCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RoutineCreate) SetName(v string) *RoutineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableName(v *string) *RoutineCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetTriggerKind sets the "trigger_kind" field.
func (_c *RoutineCreate) SetTriggerKind(v routine.TriggerKind) *RoutineCreate {
	_c.mutation.SetTriggerKind(v)
	return _c
}

// SetCronExpr sets the "cron_expr" field.
func (_c *RoutineCreate) SetCronExpr(v string) *RoutineCreate {
	_c.mutation.SetCronExpr(v)
	return _c
}

// SetNillableCronExpr sets the "cron_expr" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableCronExpr(v *string) *RoutineCreate {
	if v != nil {
		_c.SetCronExpr(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *RoutineCreate) SetTimezone(v string) *RoutineCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableTimezone(v *string) *RoutineCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetRuleJSON sets the "rule_json" field.
func (_c *RoutineCreate) SetRuleJSON(v string) *RoutineCreate {
	_c.mutation.SetRuleJSON(v)
	return _c
}

// SetNillableRuleJSON sets the "rule_json" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableRuleJSON(v *string) *RoutineCreate {
	if v != nil {
		_c.SetRuleJSON(*v)
	}
	return _c
}

// SetConditionProbe sets the "condition_probe" field.
func (_c *RoutineCreate) SetConditionProbe(v string) *RoutineCreate {
	_c.mutation.SetConditionProbe(v)
	return _c
}

// SetNillableConditionProbe sets the "condition_probe" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableConditionProbe(v *string) *RoutineCreate {
	if v != nil {
		_c.SetConditionProbe(*v)
	}
	return _c
}

// SetConditionConfig sets the "condition_config" field.
func (_c *RoutineCreate) SetConditionConfig(v map[string]interface{}) *RoutineCreate {
	_c.mutation.SetConditionConfig(v)
	return _c
}

// SetTargetPluginInstanceID sets the "target_plugin_instance_id" field.
func (_c *RoutineCreate) SetTargetPluginInstanceID(v string) *RoutineCreate {
	_c.mutation.SetTargetPluginInstanceID(v)
	return _c
}

// SetNillableTargetPluginInstanceID sets the "target_plugin_instance_id" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableTargetPluginInstanceID(v *string) *RoutineCreate {
	if v != nil {
		_c.SetTargetPluginInstanceID(*v)
	}
	return _c
}

// SetTargetSessionKey sets the "target_session_key" field.
func (_c *RoutineCreate) SetTargetSessionKey(v string) *RoutineCreate {
	_c.mutation.SetTargetSessionKey(v)
	return _c
}

// SetNillableTargetSessionKey sets the "target_session_key" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableTargetSessionKey(v *string) *RoutineCreate {
	if v != nil {
		_c.SetTargetSessionKey(*v)
	}
	return _c
}

// SetActionPrompt sets the "action_prompt" field.
func (_c *RoutineCreate) SetActionPrompt(v string) *RoutineCreate {
	_c.mutation.SetActionPrompt(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *RoutineCreate) SetEnabled(v bool) *RoutineCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableEnabled(v *bool) *RoutineCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetMinIntervalMs sets the "min_interval_ms" field.
func (_c *RoutineCreate) SetMinIntervalMs(v int64) *RoutineCreate {
	_c.mutation.SetMinIntervalMs(v)
	return _c
}

// SetNillableMinIntervalMs sets the "min_interval_ms" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableMinIntervalMs(v *int64) *RoutineCreate {
	if v != nil {
		_c.SetMinIntervalMs(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *RoutineCreate) SetNextRunAt(v time.Time) *RoutineCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableNextRunAt(v *time.Time) *RoutineCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_c *RoutineCreate) SetLastFiredAt(v time.Time) *RoutineCreate {
	_c.mutation.SetLastFiredAt(v)
	return _c
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableLastFiredAt(v *time.Time) *RoutineCreate {
	if v != nil {
		_c.SetLastFiredAt(*v)
	}
	return _c
}

// SetLastStatus sets the "last_status" field.
func (_c *RoutineCreate) SetLastStatus(v string) *RoutineCreate {
	_c.mutation.SetLastStatus(v)
	return _c
}

// SetNillableLastStatus sets the "last_status" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableLastStatus(v *string) *RoutineCreate {
	if v != nil {
		_c.SetLastStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoutineCreate) SetCreatedAt(v time.Time) *RoutineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableCreatedAt(v *time.Time) *RoutineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoutineCreate) SetUpdatedAt(v time.Time) *RoutineCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableUpdatedAt(v *time.Time) *RoutineCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoutineCreate) SetID(v string) *RoutineCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RoutineMutation object of the builder.
func (_c *RoutineCreate) Mutation() *RoutineMutation {
	return _c.mutation
}

// Save creates the Routine in the database.
func (_c *RoutineCreate) Save(ctx context.Context) (*Routine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutineCreate) SaveX(ctx context.Context) *Routine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutineCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := routine.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.MinIntervalMs(); !ok {
		v := routine.DefaultMinIntervalMs
		_c.mutation.SetMinIntervalMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := routine.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := routine.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutineCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Routine.agent_id"`)}
	}
	if _, ok := _c.mutation.TriggerKind(); !ok {
		return &ValidationError{Name: "trigger_kind", err: errors.New(`ent: missing required field "Routine.trigger_kind"`)}
	}
	if v, ok := _c.mutation.TriggerKind(); ok {
		if err := routine.TriggerKindValidator(v); err != nil {
			return &ValidationError{Name: "trigger_kind", err: fmt.Errorf(`ent: validator failed for field "Routine.trigger_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActionPrompt(); !ok {
		return &ValidationError{Name: "action_prompt", err: errors.New(`ent: missing required field "Routine.action_prompt"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Routine.enabled"`)}
	}
	if _, ok := _c.mutation.MinIntervalMs(); !ok {
		return &ValidationError{Name: "min_interval_ms", err: errors.New(`ent: missing required field "Routine.min_interval_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Routine.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Routine.updated_at"`)}
	}
	return nil
}

func (_c *RoutineCreate) sqlSave(ctx context.Context) (*Routine, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Routine.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoutineCreate) createSpec() (*Routine, *sqlgraph.CreateSpec) {
	var (
		_node = &Routine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routine.Table, sqlgraph.NewFieldSpec(routine.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(routine.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(routine.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TriggerKind(); ok {
		_spec.SetField(routine.FieldTriggerKind, field.TypeEnum, value)
		_node.TriggerKind = value
	}
	if value, ok := _c.mutation.CronExpr(); ok {
		_spec.SetField(routine.FieldCronExpr, field.TypeString, value)
		_node.CronExpr = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(routine.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.RuleJSON(); ok {
		_spec.SetField(routine.FieldRuleJSON, field.TypeString, value)
		_node.RuleJSON = value
	}
	if value, ok := _c.mutation.ConditionProbe(); ok {
		_spec.SetField(routine.FieldConditionProbe, field.TypeString, value)
		_node.ConditionProbe = value
	}
	if value, ok := _c.mutation.ConditionConfig(); ok {
		_spec.SetField(routine.FieldConditionConfig, field.TypeJSON, value)
		_node.ConditionConfig = value
	}
	if value, ok := _c.mutation.TargetPluginInstanceID(); ok {
		_spec.SetField(routine.FieldTargetPluginInstanceID, field.TypeString, value)
		_node.TargetPluginInstanceID = value
	}
	if value, ok := _c.mutation.TargetSessionKey(); ok {
		_spec.SetField(routine.FieldTargetSessionKey, field.TypeString, value)
		_node.TargetSessionKey = value
	}
	if value, ok := _c.mutation.ActionPrompt(); ok {
		_spec.SetField(routine.FieldActionPrompt, field.TypeString, value)
		_node.ActionPrompt = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(routine.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.MinIntervalMs(); ok {
		_spec.SetField(routine.FieldMinIntervalMs, field.TypeInt64, value)
		_node.MinIntervalMs = value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(routine.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.LastFiredAt(); ok {
		_spec.SetField(routine.FieldLastFiredAt, field.TypeTime, value)
		_node.LastFiredAt = &value
	}
	if value, ok := _c.mutation.LastStatus(); ok {
		_spec.SetField(routine.FieldLastStatus, field.TypeString, value)
		_node.LastStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(routine.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(routine.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Routine.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineCreate) OnConflict(opts ...sql.ConflictOption) *RoutineUpsertOne {
	_c.conflict = opts
	return &RoutineUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineCreate) OnConflictColumns(columns ...string) *RoutineUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineUpsertOne{
		create: _c,
	}
}

type (
	// RoutineUpsertOne is the builder for "upsert"-ing
	//  one Routine node.
	RoutineUpsertOne struct {
		create *RoutineCreate
	}

	// RoutineUpsert is the "OnConflict" setter.
	RoutineUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *RoutineUpsert) SetAgentID(v string) *RoutineUpsert {
	u.Set(routine.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateAgentID() *RoutineUpsert {
	u.SetExcluded(routine.FieldAgentID)
	return u
}

// SetName sets the "name" field.
func (u *RoutineUpsert) SetName(v string) *RoutineUpsert {
	u.Set(routine.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateName() *RoutineUpsert {
	u.SetExcluded(routine.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *RoutineUpsert) ClearName() *RoutineUpsert {
	u.SetNull(routine.FieldName)
	return u
}

// SetTriggerKind sets the "trigger_kind" field.
func (u *RoutineUpsert) SetTriggerKind(v routine.TriggerKind) *RoutineUpsert {
	u.Set(routine.FieldTriggerKind, v)
	return u
}

// UpdateTriggerKind sets the "trigger_kind" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateTriggerKind() *RoutineUpsert {
	u.SetExcluded(routine.FieldTriggerKind)
	return u
}

// SetCronExpr sets the "cron_expr" field.
func (u *RoutineUpsert) SetCronExpr(v string) *RoutineUpsert {
	u.Set(routine.FieldCronExpr, v)
	return u
}

// UpdateCronExpr sets the "cron_expr" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateCronExpr() *RoutineUpsert {
	u.SetExcluded(routine.FieldCronExpr)
	return u
}

// ClearCronExpr clears the value of the "cron_expr" field.
func (u *RoutineUpsert) ClearCronExpr() *RoutineUpsert {
	u.SetNull(routine.FieldCronExpr)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *RoutineUpsert) SetTimezone(v string) *RoutineUpsert {
	u.Set(routine.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateTimezone() *RoutineUpsert {
	u.SetExcluded(routine.FieldTimezone)
	return u
}

// ClearTimezone clears the value of the "timezone" field.
func (u *RoutineUpsert) ClearTimezone() *RoutineUpsert {
	u.SetNull(routine.FieldTimezone)
	return u
}

// SetRuleJSON sets the "rule_json" field.
func (u *RoutineUpsert) SetRuleJSON(v string) *RoutineUpsert {
	u.Set(routine.FieldRuleJSON, v)
	return u
}

// UpdateRuleJSON sets the "rule_json" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateRuleJSON() *RoutineUpsert {
	u.SetExcluded(routine.FieldRuleJSON)
	return u
}

// ClearRuleJSON clears the value of the "rule_json" field.
func (u *RoutineUpsert) ClearRuleJSON() *RoutineUpsert {
	u.SetNull(routine.FieldRuleJSON)
	return u
}

// SetConditionProbe sets the "condition_probe" field.
func (u *RoutineUpsert) SetConditionProbe(v string) *RoutineUpsert {
	u.Set(routine.FieldConditionProbe, v)
	return u
}

// UpdateConditionProbe sets the "condition_probe" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateConditionProbe() *RoutineUpsert {
	u.SetExcluded(routine.FieldConditionProbe)
	return u
}

// ClearConditionProbe clears the value of the "condition_probe" field.
func (u *RoutineUpsert) ClearConditionProbe() *RoutineUpsert {
	u.SetNull(routine.FieldConditionProbe)
	return u
}

// SetConditionConfig sets the "condition_config" field.
func (u *RoutineUpsert) SetConditionConfig(v map[string]interface{}) *RoutineUpsert {
	u.Set(routine.FieldConditionConfig, v)
	return u
}

// UpdateConditionConfig sets the "condition_config" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateConditionConfig() *RoutineUpsert {
	u.SetExcluded(routine.FieldConditionConfig)
	return u
}

// ClearConditionConfig clears the value of the "condition_config" field.
func (u *RoutineUpsert) ClearConditionConfig() *RoutineUpsert {
	u.SetNull(routine.FieldConditionConfig)
	return u
}

// SetTargetPluginInstanceID sets the "target_plugin_instance_id" field.
func (u *RoutineUpsert) SetTargetPluginInstanceID(v string) *RoutineUpsert {
	u.Set(routine.FieldTargetPluginInstanceID, v)
	return u
}

// UpdateTargetPluginInstanceID sets the "target_plugin_instance_id" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateTargetPluginInstanceID() *RoutineUpsert {
	u.SetExcluded(routine.FieldTargetPluginInstanceID)
	return u
}

// ClearTargetPluginInstanceID clears the value of the "target_plugin_instance_id" field.
func (u *RoutineUpsert) ClearTargetPluginInstanceID() *RoutineUpsert {
	u.SetNull(routine.FieldTargetPluginInstanceID)
	return u
}

// SetTargetSessionKey sets the "target_session_key" field.
func (u *RoutineUpsert) SetTargetSessionKey(v string) *RoutineUpsert {
	u.Set(routine.FieldTargetSessionKey, v)
	return u
}

// UpdateTargetSessionKey sets the "target_session_key" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateTargetSessionKey() *RoutineUpsert {
	u.SetExcluded(routine.FieldTargetSessionKey)
	return u
}

// ClearTargetSessionKey clears the value of the "target_session_key" field.
func (u *RoutineUpsert) ClearTargetSessionKey() *RoutineUpsert {
	u.SetNull(routine.FieldTargetSessionKey)
	return u
}

// SetActionPrompt sets the "action_prompt" field.
func (u *RoutineUpsert) SetActionPrompt(v string) *RoutineUpsert {
	u.Set(routine.FieldActionPrompt, v)
	return u
}

// UpdateActionPrompt sets the "action_prompt" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateActionPrompt() *RoutineUpsert {
	u.SetExcluded(routine.FieldActionPrompt)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *RoutineUpsert) SetEnabled(v bool) *RoutineUpsert {
	u.Set(routine.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateEnabled() *RoutineUpsert {
	u.SetExcluded(routine.FieldEnabled)
	return u
}

// SetMinIntervalMs sets the "min_interval_ms" field.
func (u *RoutineUpsert) SetMinIntervalMs(v int64) *RoutineUpsert {
	u.Set(routine.FieldMinIntervalMs, v)
	return u
}

// UpdateMinIntervalMs sets the "min_interval_ms" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateMinIntervalMs() *RoutineUpsert {
	u.SetExcluded(routine.FieldMinIntervalMs)
	return u
}

// AddMinIntervalMs adds v to the "min_interval_ms" field.
func (u *RoutineUpsert) AddMinIntervalMs(v int64) *RoutineUpsert {
	u.Add(routine.FieldMinIntervalMs, v)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *RoutineUpsert) SetNextRunAt(v time.Time) *RoutineUpsert {
	u.Set(routine.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateNextRunAt() *RoutineUpsert {
	u.SetExcluded(routine.FieldNextRunAt)
	return u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *RoutineUpsert) ClearNextRunAt() *RoutineUpsert {
	u.SetNull(routine.FieldNextRunAt)
	return u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (u *RoutineUpsert) SetLastFiredAt(v time.Time) *RoutineUpsert {
	u.Set(routine.FieldLastFiredAt, v)
	return u
}

// UpdateLastFiredAt sets the "last_fired_at" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateLastFiredAt() *RoutineUpsert {
	u.SetExcluded(routine.FieldLastFiredAt)
	return u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (u *RoutineUpsert) ClearLastFiredAt() *RoutineUpsert {
	u.SetNull(routine.FieldLastFiredAt)
	return u
}

// SetLastStatus sets the "last_status" field.
func (u *RoutineUpsert) SetLastStatus(v string) *RoutineUpsert {
	u.Set(routine.FieldLastStatus, v)
	return u
}

// UpdateLastStatus sets the "last_status" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateLastStatus() *RoutineUpsert {
	u.SetExcluded(routine.FieldLastStatus)
	return u
}

// ClearLastStatus clears the value of the "last_status" field.
func (u *RoutineUpsert) ClearLastStatus() *RoutineUpsert {
	u.SetNull(routine.FieldLastStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoutineUpsert) SetUpdatedAt(v time.Time) *RoutineUpsert {
	u.Set(routine.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateUpdatedAt() *RoutineUpsert {
	u.SetExcluded(routine.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routine.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineUpsertOne) UpdateNewValues() *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(routine.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(routine.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Routine.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoutineUpsertOne) Ignore() *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineUpsertOne) DoNothing() *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineCreate.OnConflict
// documentation for more info.
func (u *RoutineUpsertOne) Update(set func(*RoutineUpsert)) *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *RoutineUpsertOne) SetAgentID(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateAgentID() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateAgentID()
	})
}

// SetName sets the "name" field.
func (u *RoutineUpsertOne) SetName(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateName() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *RoutineUpsertOne) ClearName() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearName()
	})
}

// SetTriggerKind sets the "trigger_kind" field.
func (u *RoutineUpsertOne) SetTriggerKind(v routine.TriggerKind) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTriggerKind(v)
	})
}

// UpdateTriggerKind sets the "trigger_kind" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateTriggerKind() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTriggerKind()
	})
}

// SetCronExpr sets the "cron_expr" field.
func (u *RoutineUpsertOne) SetCronExpr(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetCronExpr(v)
	})
}

// UpdateCronExpr sets the "cron_expr" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateCronExpr() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateCronExpr()
	})
}

// ClearCronExpr clears the value of the "cron_expr" field.
func (u *RoutineUpsertOne) ClearCronExpr() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearCronExpr()
	})
}

// SetTimezone sets the "timezone" field.
func (u *RoutineUpsertOne) SetTimezone(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateTimezone() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTimezone()
	})
}

// ClearTimezone clears the value of the "timezone" field.
func (u *RoutineUpsertOne) ClearTimezone() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearTimezone()
	})
}

// SetRuleJSON sets the "rule_json" field.
func (u *RoutineUpsertOne) SetRuleJSON(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetRuleJSON(v)
	})
}

// UpdateRuleJSON sets the "rule_json" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateRuleJSON() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateRuleJSON()
	})
}

// ClearRuleJSON clears the value of the "rule_json" field.
func (u *RoutineUpsertOne) ClearRuleJSON() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearRuleJSON()
	})
}

// SetConditionProbe sets the "condition_probe" field.
func (u *RoutineUpsertOne) SetConditionProbe(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetConditionProbe(v)
	})
}

// UpdateConditionProbe sets the "condition_probe" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateConditionProbe() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateConditionProbe()
	})
}

// ClearConditionProbe clears the value of the "condition_probe" field.
func (u *RoutineUpsertOne) ClearConditionProbe() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearConditionProbe()
	})
}

// SetConditionConfig sets the "condition_config" field.
func (u *RoutineUpsertOne) SetConditionConfig(v map[string]interface{}) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetConditionConfig(v)
	})
}

// UpdateConditionConfig sets the "condition_config" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateConditionConfig() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateConditionConfig()
	})
}

// ClearConditionConfig clears the value of the "condition_config" field.
func (u *RoutineUpsertOne) ClearConditionConfig() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearConditionConfig()
	})
}

// SetTargetPluginInstanceID sets the "target_plugin_instance_id" field.
func (u *RoutineUpsertOne) SetTargetPluginInstanceID(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTargetPluginInstanceID(v)
	})
}

// UpdateTargetPluginInstanceID sets the "target_plugin_instance_id" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateTargetPluginInstanceID() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTargetPluginInstanceID()
	})
}

// ClearTargetPluginInstanceID clears the value of the "target_plugin_instance_id" field.
func (u *RoutineUpsertOne) ClearTargetPluginInstanceID() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearTargetPluginInstanceID()
	})
}

// SetTargetSessionKey sets the "target_session_key" field.
func (u *RoutineUpsertOne) SetTargetSessionKey(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTargetSessionKey(v)
	})
}

// UpdateTargetSessionKey sets the "target_session_key" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateTargetSessionKey() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTargetSessionKey()
	})
}

// ClearTargetSessionKey clears the value of the "target_session_key" field.
func (u *RoutineUpsertOne) ClearTargetSessionKey() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearTargetSessionKey()
	})
}

// SetActionPrompt sets the "action_prompt" field.
func (u *RoutineUpsertOne) SetActionPrompt(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetActionPrompt(v)
	})
}

// UpdateActionPrompt sets the "action_prompt" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateActionPrompt() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateActionPrompt()
	})
}

// SetEnabled sets the "enabled" field.
func (u *RoutineUpsertOne) SetEnabled(v bool) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateEnabled() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateEnabled()
	})
}

// SetMinIntervalMs sets the "min_interval_ms" field.
func (u *RoutineUpsertOne) SetMinIntervalMs(v int64) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetMinIntervalMs(v)
	})
}

// AddMinIntervalMs adds v to the "min_interval_ms" field.
func (u *RoutineUpsertOne) AddMinIntervalMs(v int64) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.AddMinIntervalMs(v)
	})
}

// UpdateMinIntervalMs sets the "min_interval_ms" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateMinIntervalMs() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateMinIntervalMs()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *RoutineUpsertOne) SetNextRunAt(v time.Time) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateNextRunAt() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *RoutineUpsertOne) ClearNextRunAt() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastFiredAt sets the "last_fired_at" field.
func (u *RoutineUpsertOne) SetLastFiredAt(v time.Time) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetLastFiredAt(v)
	})
}

// UpdateLastFiredAt sets the "last_fired_at" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateLastFiredAt() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateLastFiredAt()
	})
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (u *RoutineUpsertOne) ClearLastFiredAt() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearLastFiredAt()
	})
}

// SetLastStatus sets the "last_status" field.
func (u *RoutineUpsertOne) SetLastStatus(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetLastStatus(v)
	})
}

// UpdateLastStatus sets the "last_status" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateLastStatus() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateLastStatus()
	})
}

// ClearLastStatus clears the value of the "last_status" field.
func (u *RoutineUpsertOne) ClearLastStatus() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearLastStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoutineUpsertOne) SetUpdatedAt(v time.Time) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateUpdatedAt() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RoutineUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutineCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoutineUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RoutineUpsertOne.ID is not supported by MySQL driver. Use RoutineUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoutineUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoutineCreateBulk is the builder for creating many Routine entities in bulk.
type RoutineCreateBulk struct {
	config
	err      error
	builders []*RoutineCreate
	conflict []sql.ConflictOption
}

// Save creates the Routine entities in the database.
func (_c *RoutineCreateBulk) Save(ctx context.Context) ([]*Routine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Routine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutineMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RoutineCreateBulk) SaveX(ctx context.Context) []*Routine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Routine.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoutineUpsertBulk {
	_c.conflict = opts
	return &RoutineUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineCreateBulk) OnConflictColumns(columns ...string) *RoutineUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineUpsertBulk{
		create: _c,
	}
}

// RoutineUpsertBulk is the builder for "upsert"-ing
// a bulk of Routine nodes.
type RoutineUpsertBulk struct {
	create *RoutineCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routine.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineUpsertBulk) UpdateNewValues() *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(routine.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(routine.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoutineUpsertBulk) Ignore() *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineUpsertBulk) DoNothing() *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineCreateBulk.OnConflict
// documentation for more info.
func (u *RoutineUpsertBulk) Update(set func(*RoutineUpsert)) *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *RoutineUpsertBulk) SetAgentID(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateAgentID() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateAgentID()
	})
}

// SetName sets the "name" field.
func (u *RoutineUpsertBulk) SetName(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateName() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *RoutineUpsertBulk) ClearName() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearName()
	})
}

// SetTriggerKind sets the "trigger_kind" field.
func (u *RoutineUpsertBulk) SetTriggerKind(v routine.TriggerKind) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTriggerKind(v)
	})
}

// UpdateTriggerKind sets the "trigger_kind" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateTriggerKind() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTriggerKind()
	})
}

// SetCronExpr sets the "cron_expr" field.
func (u *RoutineUpsertBulk) SetCronExpr(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetCronExpr(v)
	})
}

// UpdateCronExpr sets the "cron_expr" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateCronExpr() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateCronExpr()
	})
}

// ClearCronExpr clears the value of the "cron_expr" field.
func (u *RoutineUpsertBulk) ClearCronExpr() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearCronExpr()
	})
}

// SetTimezone sets the "timezone" field.
func (u *RoutineUpsertBulk) SetTimezone(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateTimezone() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTimezone()
	})
}

// ClearTimezone clears the value of the "timezone" field.
func (u *RoutineUpsertBulk) ClearTimezone() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearTimezone()
	})
}

// SetRuleJSON sets the "rule_json" field.
func (u *RoutineUpsertBulk) SetRuleJSON(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetRuleJSON(v)
	})
}

// UpdateRuleJSON sets the "rule_json" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateRuleJSON() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateRuleJSON()
	})
}

// ClearRuleJSON clears the value of the "rule_json" field.
func (u *RoutineUpsertBulk) ClearRuleJSON() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearRuleJSON()
	})
}

// SetConditionProbe sets the "condition_probe" field.
func (u *RoutineUpsertBulk) SetConditionProbe(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetConditionProbe(v)
	})
}

// UpdateConditionProbe sets the "condition_probe" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateConditionProbe() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateConditionProbe()
	})
}

// ClearConditionProbe clears the value of the "condition_probe" field.
func (u *RoutineUpsertBulk) ClearConditionProbe() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearConditionProbe()
	})
}

// SetConditionConfig sets the "condition_config" field.
func (u *RoutineUpsertBulk) SetConditionConfig(v map[string]interface{}) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetConditionConfig(v)
	})
}

// UpdateConditionConfig sets the "condition_config" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateConditionConfig() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateConditionConfig()
	})
}

// ClearConditionConfig clears the value of the "condition_config" field.
func (u *RoutineUpsertBulk) ClearConditionConfig() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearConditionConfig()
	})
}

// SetTargetPluginInstanceID sets the "target_plugin_instance_id" field.
func (u *RoutineUpsertBulk) SetTargetPluginInstanceID(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTargetPluginInstanceID(v)
	})
}

// UpdateTargetPluginInstanceID sets the "target_plugin_instance_id" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateTargetPluginInstanceID() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTargetPluginInstanceID()
	})
}

// ClearTargetPluginInstanceID clears the value of the "target_plugin_instance_id" field.
func (u *RoutineUpsertBulk) ClearTargetPluginInstanceID() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearTargetPluginInstanceID()
	})
}

// SetTargetSessionKey sets the "target_session_key" field.
func (u *RoutineUpsertBulk) SetTargetSessionKey(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTargetSessionKey(v)
	})
}

// UpdateTargetSessionKey sets the "target_session_key" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateTargetSessionKey() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTargetSessionKey()
	})
}

// ClearTargetSessionKey clears the value of the "target_session_key" field.
func (u *RoutineUpsertBulk) ClearTargetSessionKey() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearTargetSessionKey()
	})
}

// SetActionPrompt sets the "action_prompt" field.
func (u *RoutineUpsertBulk) SetActionPrompt(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetActionPrompt(v)
	})
}

// UpdateActionPrompt sets the "action_prompt" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateActionPrompt() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateActionPrompt()
	})
}

// SetEnabled sets the "enabled" field.
func (u *RoutineUpsertBulk) SetEnabled(v bool) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateEnabled() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateEnabled()
	})
}

// SetMinIntervalMs sets the "min_interval_ms" field.
func (u *RoutineUpsertBulk) SetMinIntervalMs(v int64) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetMinIntervalMs(v)
	})
}

// AddMinIntervalMs adds v to the "min_interval_ms" field.
func (u *RoutineUpsertBulk) AddMinIntervalMs(v int64) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.AddMinIntervalMs(v)
	})
}

// UpdateMinIntervalMs sets the "min_interval_ms" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateMinIntervalMs() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateMinIntervalMs()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *RoutineUpsertBulk) SetNextRunAt(v time.Time) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateNextRunAt() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *RoutineUpsertBulk) ClearNextRunAt() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastFiredAt sets the "last_fired_at" field.
func (u *RoutineUpsertBulk) SetLastFiredAt(v time.Time) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetLastFiredAt(v)
	})
}

// UpdateLastFiredAt sets the "last_fired_at" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateLastFiredAt() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateLastFiredAt()
	})
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (u *RoutineUpsertBulk) ClearLastFiredAt() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearLastFiredAt()
	})
}

// SetLastStatus sets the "last_status" field.
func (u *RoutineUpsertBulk) SetLastStatus(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetLastStatus(v)
	})
}

// UpdateLastStatus sets the "last_status" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateLastStatus() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateLastStatus()
	})
}

// ClearLastStatus clears the value of the "last_status" field.
func (u *RoutineUpsertBulk) ClearLastStatus() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearLastStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoutineUpsertBulk) SetUpdatedAt(v time.Time) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateUpdatedAt() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RoutineUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoutineCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutineCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
