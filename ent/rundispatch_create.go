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
	"github.com/hooklinehq/hookline/ent/rundispatch"
)

// RunDispatchCreate is the builder for creating a RunDispatch entity.
type RunDispatchCreate struct {
	config
	mutation *RunDispatchMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunKey sets the "run_key" field.
func (_c *RunDispatchCreate) SetRunKey(v string) *RunDispatchCreate {
	_c.mutation.SetRunKey(v)
	return _c
}

// SetNillableRunKey sets the "run_key" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableRunKey(v *string) *RunDispatchCreate {
	if v != nil {
		_c.SetRunKey(*v)
	}
	return _c
}

// SetQueueKey sets the "queue_key" field.
func (_c *RunDispatchCreate) SetQueueKey(v string) *RunDispatchCreate {
	_c.mutation.SetQueueKey(v)
	return _c
}

// SetWorkItemID sets the "work_item_id" field.
func (_c *RunDispatchCreate) SetWorkItemID(v string) *RunDispatchCreate {
	_c.mutation.SetWorkItemID(v)
	return _c
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableWorkItemID(v *string) *RunDispatchCreate {
	if v != nil {
		_c.SetWorkItemID(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *RunDispatchCreate) SetAgentID(v string) *RunDispatchCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetSessionKey sets the "session_key" field.
func (_c *RunDispatchCreate) SetSessionKey(v string) *RunDispatchCreate {
	_c.mutation.SetSessionKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunDispatchCreate) SetStatus(v rundispatch.Status) *RunDispatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableStatus(v *rundispatch.Status) *RunDispatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetControlState sets the "control_state" field.
func (_c *RunDispatchCreate) SetControlState(v rundispatch.ControlState) *RunDispatchCreate {
	_c.mutation.SetControlState(v)
	return _c
}

// SetNillableControlState sets the "control_state" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableControlState(v *rundispatch.ControlState) *RunDispatchCreate {
	if v != nil {
		_c.SetControlState(*v)
	}
	return _c
}

// SetInputText sets the "input_text" field.
func (_c *RunDispatchCreate) SetInputText(v string) *RunDispatchCreate {
	_c.mutation.SetInputText(v)
	return _c
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableInputText(v *string) *RunDispatchCreate {
	if v != nil {
		_c.SetInputText(*v)
	}
	return _c
}

// SetCoalescedText sets the "coalesced_text" field.
func (_c *RunDispatchCreate) SetCoalescedText(v string) *RunDispatchCreate {
	_c.mutation.SetCoalescedText(v)
	return _c
}

// SetNillableCoalescedText sets the "coalesced_text" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableCoalescedText(v *string) *RunDispatchCreate {
	if v != nil {
		_c.SetCoalescedText(*v)
	}
	return _c
}

// SetResponseContext sets the "response_context" field.
func (_c *RunDispatchCreate) SetResponseContext(v map[string]interface{}) *RunDispatchCreate {
	_c.mutation.SetResponseContext(v)
	return _c
}

// SetOutputText sets the "output_text" field.
func (_c *RunDispatchCreate) SetOutputText(v string) *RunDispatchCreate {
	_c.mutation.SetOutputText(v)
	return _c
}

// SetNillableOutputText sets the "output_text" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableOutputText(v *string) *RunDispatchCreate {
	if v != nil {
		_c.SetOutputText(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *RunDispatchCreate) SetAttemptCount(v int) *RunDispatchCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableAttemptCount(v *int) *RunDispatchCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *RunDispatchCreate) SetClaimedBy(v string) *RunDispatchCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableClaimedBy(v *string) *RunDispatchCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *RunDispatchCreate) SetLeaseExpiresAt(v time.Time) *RunDispatchCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableLeaseExpiresAt(v *time.Time) *RunDispatchCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (_c *RunDispatchCreate) SetClaimedEpoch(v int64) *RunDispatchCreate {
	_c.mutation.SetClaimedEpoch(v)
	return _c
}

// SetNillableClaimedEpoch sets the "claimed_epoch" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableClaimedEpoch(v *int64) *RunDispatchCreate {
	if v != nil {
		_c.SetClaimedEpoch(*v)
	}
	return _c
}

// SetReplayOfDispatchID sets the "replay_of_dispatch_id" field.
func (_c *RunDispatchCreate) SetReplayOfDispatchID(v string) *RunDispatchCreate {
	_c.mutation.SetReplayOfDispatchID(v)
	return _c
}

// SetNillableReplayOfDispatchID sets the "replay_of_dispatch_id" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableReplayOfDispatchID(v *string) *RunDispatchCreate {
	if v != nil {
		_c.SetReplayOfDispatchID(*v)
	}
	return _c
}

// SetMergedIntoDispatchID sets the "merged_into_dispatch_id" field.
func (_c *RunDispatchCreate) SetMergedIntoDispatchID(v string) *RunDispatchCreate {
	_c.mutation.SetMergedIntoDispatchID(v)
	return _c
}

// SetNillableMergedIntoDispatchID sets the "merged_into_dispatch_id" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableMergedIntoDispatchID(v *string) *RunDispatchCreate {
	if v != nil {
		_c.SetMergedIntoDispatchID(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *RunDispatchCreate) SetLastError(v string) *RunDispatchCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableLastError(v *string) *RunDispatchCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *RunDispatchCreate) SetScheduledAt(v time.Time) *RunDispatchCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableScheduledAt(v *time.Time) *RunDispatchCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunDispatchCreate) SetStartedAt(v time.Time) *RunDispatchCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableStartedAt(v *time.Time) *RunDispatchCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RunDispatchCreate) SetFinishedAt(v time.Time) *RunDispatchCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableFinishedAt(v *time.Time) *RunDispatchCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunDispatchCreate) SetCreatedAt(v time.Time) *RunDispatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunDispatchCreate) SetNillableCreatedAt(v *time.Time) *RunDispatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunDispatchCreate) SetID(v string) *RunDispatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RunDispatchMutation object of the builder.
func (_c *RunDispatchCreate) Mutation() *RunDispatchMutation {
	return _c.mutation
}

// Save creates the RunDispatch in the database.
func (_c *RunDispatchCreate) Save(ctx context.Context) (*RunDispatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunDispatchCreate) SaveX(ctx context.Context) *RunDispatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunDispatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunDispatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunDispatchCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := rundispatch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ControlState(); !ok {
		v := rundispatch.DefaultControlState
		_c.mutation.SetControlState(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := rundispatch.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.ClaimedEpoch(); !ok {
		v := rundispatch.DefaultClaimedEpoch
		_c.mutation.SetClaimedEpoch(v)
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		v := rundispatch.DefaultScheduledAt()
		_c.mutation.SetScheduledAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rundispatch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunDispatchCreate) check() error {
	if _, ok := _c.mutation.QueueKey(); !ok {
		return &ValidationError{Name: "queue_key", err: errors.New(`ent: missing required field "RunDispatch.queue_key"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "RunDispatch.agent_id"`)}
	}
	if _, ok := _c.mutation.SessionKey(); !ok {
		return &ValidationError{Name: "session_key", err: errors.New(`ent: missing required field "RunDispatch.session_key"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RunDispatch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := rundispatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunDispatch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ControlState(); !ok {
		return &ValidationError{Name: "control_state", err: errors.New(`ent: missing required field "RunDispatch.control_state"`)}
	}
	if v, ok := _c.mutation.ControlState(); ok {
		if err := rundispatch.ControlStateValidator(v); err != nil {
			return &ValidationError{Name: "control_state", err: fmt.Errorf(`ent: validator failed for field "RunDispatch.control_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "RunDispatch.attempt_count"`)}
	}
	if _, ok := _c.mutation.ClaimedEpoch(); !ok {
		return &ValidationError{Name: "claimed_epoch", err: errors.New(`ent: missing required field "RunDispatch.claimed_epoch"`)}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "RunDispatch.scheduled_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunDispatch.created_at"`)}
	}
	return nil
}

func (_c *RunDispatchCreate) sqlSave(ctx context.Context) (*RunDispatch, error) {
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
			return nil, fmt.Errorf("unexpected RunDispatch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunDispatchCreate) createSpec() (*RunDispatch, *sqlgraph.CreateSpec) {
	var (
		_node = &RunDispatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rundispatch.Table, sqlgraph.NewFieldSpec(rundispatch.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunKey(); ok {
		_spec.SetField(rundispatch.FieldRunKey, field.TypeString, value)
		_node.RunKey = value
	}
	if value, ok := _c.mutation.QueueKey(); ok {
		_spec.SetField(rundispatch.FieldQueueKey, field.TypeString, value)
		_node.QueueKey = value
	}
	if value, ok := _c.mutation.WorkItemID(); ok {
		_spec.SetField(rundispatch.FieldWorkItemID, field.TypeString, value)
		_node.WorkItemID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(rundispatch.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.SessionKey(); ok {
		_spec.SetField(rundispatch.FieldSessionKey, field.TypeString, value)
		_node.SessionKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(rundispatch.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ControlState(); ok {
		_spec.SetField(rundispatch.FieldControlState, field.TypeEnum, value)
		_node.ControlState = value
	}
	if value, ok := _c.mutation.InputText(); ok {
		_spec.SetField(rundispatch.FieldInputText, field.TypeString, value)
		_node.InputText = value
	}
	if value, ok := _c.mutation.CoalescedText(); ok {
		_spec.SetField(rundispatch.FieldCoalescedText, field.TypeString, value)
		_node.CoalescedText = value
	}
	if value, ok := _c.mutation.ResponseContext(); ok {
		_spec.SetField(rundispatch.FieldResponseContext, field.TypeJSON, value)
		_node.ResponseContext = value
	}
	if value, ok := _c.mutation.OutputText(); ok {
		_spec.SetField(rundispatch.FieldOutputText, field.TypeString, value)
		_node.OutputText = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(rundispatch.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(rundispatch.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(rundispatch.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.ClaimedEpoch(); ok {
		_spec.SetField(rundispatch.FieldClaimedEpoch, field.TypeInt64, value)
		_node.ClaimedEpoch = value
	}
	if value, ok := _c.mutation.ReplayOfDispatchID(); ok {
		_spec.SetField(rundispatch.FieldReplayOfDispatchID, field.TypeString, value)
		_node.ReplayOfDispatchID = &value
	}
	if value, ok := _c.mutation.MergedIntoDispatchID(); ok {
		_spec.SetField(rundispatch.FieldMergedIntoDispatchID, field.TypeString, value)
		_node.MergedIntoDispatchID = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(rundispatch.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(rundispatch.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(rundispatch.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(rundispatch.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rundispatch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunDispatch.Create().
//		SetRunKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunDispatchUpsert) {
//			SetRunKey(v+v).
//		}).
//		Exec(ctx)
func (_c *RunDispatchCreate) OnConflict(opts ...sql.ConflictOption) *RunDispatchUpsertOne {
	_c.conflict = opts
	return &RunDispatchUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunDispatch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunDispatchCreate) OnConflictColumns(columns ...string) *RunDispatchUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunDispatchUpsertOne{
		create: _c,
	}
}

type (
	// RunDispatchUpsertOne is the builder for "upsert"-ing
	//  one RunDispatch node.
	RunDispatchUpsertOne struct {
		create *RunDispatchCreate
	}

	// RunDispatchUpsert is the "OnConflict" setter.
	RunDispatchUpsert struct {
		*sql.UpdateSet
	}
)

// SetRunKey sets the "run_key" field.
func (u *RunDispatchUpsert) SetRunKey(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldRunKey, v)
	return u
}

// UpdateRunKey sets the "run_key" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateRunKey() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldRunKey)
	return u
}

// ClearRunKey clears the value of the "run_key" field.
func (u *RunDispatchUpsert) ClearRunKey() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldRunKey)
	return u
}

// SetQueueKey sets the "queue_key" field.
func (u *RunDispatchUpsert) SetQueueKey(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldQueueKey, v)
	return u
}

// UpdateQueueKey sets the "queue_key" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateQueueKey() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldQueueKey)
	return u
}

// SetWorkItemID sets the "work_item_id" field.
func (u *RunDispatchUpsert) SetWorkItemID(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldWorkItemID, v)
	return u
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateWorkItemID() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldWorkItemID)
	return u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *RunDispatchUpsert) ClearWorkItemID() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldWorkItemID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *RunDispatchUpsert) SetAgentID(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateAgentID() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldAgentID)
	return u
}

// SetSessionKey sets the "session_key" field.
func (u *RunDispatchUpsert) SetSessionKey(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldSessionKey, v)
	return u
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateSessionKey() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldSessionKey)
	return u
}

// SetStatus sets the "status" field.
func (u *RunDispatchUpsert) SetStatus(v rundispatch.Status) *RunDispatchUpsert {
	u.Set(rundispatch.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateStatus() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldStatus)
	return u
}

// SetControlState sets the "control_state" field.
func (u *RunDispatchUpsert) SetControlState(v rundispatch.ControlState) *RunDispatchUpsert {
	u.Set(rundispatch.FieldControlState, v)
	return u
}

// UpdateControlState sets the "control_state" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateControlState() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldControlState)
	return u
}

// SetInputText sets the "input_text" field.
func (u *RunDispatchUpsert) SetInputText(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldInputText, v)
	return u
}

// UpdateInputText sets the "input_text" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateInputText() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldInputText)
	return u
}

// ClearInputText clears the value of the "input_text" field.
func (u *RunDispatchUpsert) ClearInputText() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldInputText)
	return u
}

// SetCoalescedText sets the "coalesced_text" field.
func (u *RunDispatchUpsert) SetCoalescedText(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldCoalescedText, v)
	return u
}

// UpdateCoalescedText sets the "coalesced_text" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateCoalescedText() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldCoalescedText)
	return u
}

// ClearCoalescedText clears the value of the "coalesced_text" field.
func (u *RunDispatchUpsert) ClearCoalescedText() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldCoalescedText)
	return u
}

// SetResponseContext sets the "response_context" field.
func (u *RunDispatchUpsert) SetResponseContext(v map[string]interface{}) *RunDispatchUpsert {
	u.Set(rundispatch.FieldResponseContext, v)
	return u
}

// UpdateResponseContext sets the "response_context" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateResponseContext() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldResponseContext)
	return u
}

// ClearResponseContext clears the value of the "response_context" field.
func (u *RunDispatchUpsert) ClearResponseContext() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldResponseContext)
	return u
}

// SetOutputText sets the "output_text" field.
func (u *RunDispatchUpsert) SetOutputText(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldOutputText, v)
	return u
}

// UpdateOutputText sets the "output_text" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateOutputText() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldOutputText)
	return u
}

// ClearOutputText clears the value of the "output_text" field.
func (u *RunDispatchUpsert) ClearOutputText() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldOutputText)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *RunDispatchUpsert) SetAttemptCount(v int) *RunDispatchUpsert {
	u.Set(rundispatch.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateAttemptCount() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *RunDispatchUpsert) AddAttemptCount(v int) *RunDispatchUpsert {
	u.Add(rundispatch.FieldAttemptCount, v)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *RunDispatchUpsert) SetClaimedBy(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateClaimedBy() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *RunDispatchUpsert) ClearClaimedBy() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldClaimedBy)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *RunDispatchUpsert) SetLeaseExpiresAt(v time.Time) *RunDispatchUpsert {
	u.Set(rundispatch.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateLeaseExpiresAt() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *RunDispatchUpsert) ClearLeaseExpiresAt() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldLeaseExpiresAt)
	return u
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (u *RunDispatchUpsert) SetClaimedEpoch(v int64) *RunDispatchUpsert {
	u.Set(rundispatch.FieldClaimedEpoch, v)
	return u
}

// UpdateClaimedEpoch sets the "claimed_epoch" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateClaimedEpoch() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldClaimedEpoch)
	return u
}

// AddClaimedEpoch adds v to the "claimed_epoch" field.
func (u *RunDispatchUpsert) AddClaimedEpoch(v int64) *RunDispatchUpsert {
	u.Add(rundispatch.FieldClaimedEpoch, v)
	return u
}

// SetReplayOfDispatchID sets the "replay_of_dispatch_id" field.
func (u *RunDispatchUpsert) SetReplayOfDispatchID(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldReplayOfDispatchID, v)
	return u
}

// UpdateReplayOfDispatchID sets the "replay_of_dispatch_id" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateReplayOfDispatchID() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldReplayOfDispatchID)
	return u
}

// ClearReplayOfDispatchID clears the value of the "replay_of_dispatch_id" field.
func (u *RunDispatchUpsert) ClearReplayOfDispatchID() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldReplayOfDispatchID)
	return u
}

// SetMergedIntoDispatchID sets the "merged_into_dispatch_id" field.
func (u *RunDispatchUpsert) SetMergedIntoDispatchID(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldMergedIntoDispatchID, v)
	return u
}

// UpdateMergedIntoDispatchID sets the "merged_into_dispatch_id" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateMergedIntoDispatchID() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldMergedIntoDispatchID)
	return u
}

// ClearMergedIntoDispatchID clears the value of the "merged_into_dispatch_id" field.
func (u *RunDispatchUpsert) ClearMergedIntoDispatchID() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldMergedIntoDispatchID)
	return u
}

// SetLastError sets the "last_error" field.
func (u *RunDispatchUpsert) SetLastError(v string) *RunDispatchUpsert {
	u.Set(rundispatch.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateLastError() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *RunDispatchUpsert) ClearLastError() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldLastError)
	return u
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *RunDispatchUpsert) SetScheduledAt(v time.Time) *RunDispatchUpsert {
	u.Set(rundispatch.FieldScheduledAt, v)
	return u
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateScheduledAt() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldScheduledAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *RunDispatchUpsert) SetStartedAt(v time.Time) *RunDispatchUpsert {
	u.Set(rundispatch.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateStartedAt() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunDispatchUpsert) ClearStartedAt() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *RunDispatchUpsert) SetFinishedAt(v time.Time) *RunDispatchUpsert {
	u.Set(rundispatch.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RunDispatchUpsert) UpdateFinishedAt() *RunDispatchUpsert {
	u.SetExcluded(rundispatch.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RunDispatchUpsert) ClearFinishedAt() *RunDispatchUpsert {
	u.SetNull(rundispatch.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RunDispatch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rundispatch.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunDispatchUpsertOne) UpdateNewValues() *RunDispatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rundispatch.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(rundispatch.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunDispatch.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunDispatchUpsertOne) Ignore() *RunDispatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunDispatchUpsertOne) DoNothing() *RunDispatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunDispatchCreate.OnConflict
// documentation for more info.
func (u *RunDispatchUpsertOne) Update(set func(*RunDispatchUpsert)) *RunDispatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunDispatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetRunKey sets the "run_key" field.
func (u *RunDispatchUpsertOne) SetRunKey(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetRunKey(v)
	})
}

// UpdateRunKey sets the "run_key" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateRunKey() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateRunKey()
	})
}

// ClearRunKey clears the value of the "run_key" field.
func (u *RunDispatchUpsertOne) ClearRunKey() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearRunKey()
	})
}

// SetQueueKey sets the "queue_key" field.
func (u *RunDispatchUpsertOne) SetQueueKey(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetQueueKey(v)
	})
}

// UpdateQueueKey sets the "queue_key" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateQueueKey() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateQueueKey()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *RunDispatchUpsertOne) SetWorkItemID(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateWorkItemID() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *RunDispatchUpsertOne) ClearWorkItemID() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearWorkItemID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *RunDispatchUpsertOne) SetAgentID(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateAgentID() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateAgentID()
	})
}

// SetSessionKey sets the "session_key" field.
func (u *RunDispatchUpsertOne) SetSessionKey(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetSessionKey(v)
	})
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateSessionKey() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateSessionKey()
	})
}

// SetStatus sets the "status" field.
func (u *RunDispatchUpsertOne) SetStatus(v rundispatch.Status) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateStatus() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateStatus()
	})
}

// SetControlState sets the "control_state" field.
func (u *RunDispatchUpsertOne) SetControlState(v rundispatch.ControlState) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetControlState(v)
	})
}

// UpdateControlState sets the "control_state" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateControlState() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateControlState()
	})
}

// SetInputText sets the "input_text" field.
func (u *RunDispatchUpsertOne) SetInputText(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetInputText(v)
	})
}

// UpdateInputText sets the "input_text" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateInputText() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateInputText()
	})
}

// ClearInputText clears the value of the "input_text" field.
func (u *RunDispatchUpsertOne) ClearInputText() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearInputText()
	})
}

// SetCoalescedText sets the "coalesced_text" field.
func (u *RunDispatchUpsertOne) SetCoalescedText(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetCoalescedText(v)
	})
}

// UpdateCoalescedText sets the "coalesced_text" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateCoalescedText() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateCoalescedText()
	})
}

// ClearCoalescedText clears the value of the "coalesced_text" field.
func (u *RunDispatchUpsertOne) ClearCoalescedText() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearCoalescedText()
	})
}

// SetResponseContext sets the "response_context" field.
func (u *RunDispatchUpsertOne) SetResponseContext(v map[string]interface{}) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetResponseContext(v)
	})
}

// UpdateResponseContext sets the "response_context" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateResponseContext() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateResponseContext()
	})
}

// ClearResponseContext clears the value of the "response_context" field.
func (u *RunDispatchUpsertOne) ClearResponseContext() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearResponseContext()
	})
}

// SetOutputText sets the "output_text" field.
func (u *RunDispatchUpsertOne) SetOutputText(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetOutputText(v)
	})
}

// UpdateOutputText sets the "output_text" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateOutputText() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateOutputText()
	})
}

// ClearOutputText clears the value of the "output_text" field.
func (u *RunDispatchUpsertOne) ClearOutputText() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearOutputText()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *RunDispatchUpsertOne) SetAttemptCount(v int) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *RunDispatchUpsertOne) AddAttemptCount(v int) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateAttemptCount() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *RunDispatchUpsertOne) SetClaimedBy(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateClaimedBy() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *RunDispatchUpsertOne) ClearClaimedBy() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *RunDispatchUpsertOne) SetLeaseExpiresAt(v time.Time) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateLeaseExpiresAt() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *RunDispatchUpsertOne) ClearLeaseExpiresAt() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (u *RunDispatchUpsertOne) SetClaimedEpoch(v int64) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetClaimedEpoch(v)
	})
}

// AddClaimedEpoch adds v to the "claimed_epoch" field.
func (u *RunDispatchUpsertOne) AddClaimedEpoch(v int64) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.AddClaimedEpoch(v)
	})
}

// UpdateClaimedEpoch sets the "claimed_epoch" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateClaimedEpoch() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateClaimedEpoch()
	})
}

// SetReplayOfDispatchID sets the "replay_of_dispatch_id" field.
func (u *RunDispatchUpsertOne) SetReplayOfDispatchID(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetReplayOfDispatchID(v)
	})
}

// UpdateReplayOfDispatchID sets the "replay_of_dispatch_id" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateReplayOfDispatchID() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateReplayOfDispatchID()
	})
}

// ClearReplayOfDispatchID clears the value of the "replay_of_dispatch_id" field.
func (u *RunDispatchUpsertOne) ClearReplayOfDispatchID() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearReplayOfDispatchID()
	})
}

// SetMergedIntoDispatchID sets the "merged_into_dispatch_id" field.
func (u *RunDispatchUpsertOne) SetMergedIntoDispatchID(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetMergedIntoDispatchID(v)
	})
}

// UpdateMergedIntoDispatchID sets the "merged_into_dispatch_id" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateMergedIntoDispatchID() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateMergedIntoDispatchID()
	})
}

// ClearMergedIntoDispatchID clears the value of the "merged_into_dispatch_id" field.
func (u *RunDispatchUpsertOne) ClearMergedIntoDispatchID() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearMergedIntoDispatchID()
	})
}

// SetLastError sets the "last_error" field.
func (u *RunDispatchUpsertOne) SetLastError(v string) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateLastError() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *RunDispatchUpsertOne) ClearLastError() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearLastError()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *RunDispatchUpsertOne) SetScheduledAt(v time.Time) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateScheduledAt() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunDispatchUpsertOne) SetStartedAt(v time.Time) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateStartedAt() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunDispatchUpsertOne) ClearStartedAt() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *RunDispatchUpsertOne) SetFinishedAt(v time.Time) *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RunDispatchUpsertOne) UpdateFinishedAt() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RunDispatchUpsertOne) ClearFinishedAt() *RunDispatchUpsertOne {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *RunDispatchUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunDispatchCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunDispatchUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunDispatchUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunDispatchUpsertOne.ID is not supported by MySQL driver. Use RunDispatchUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunDispatchUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunDispatchCreateBulk is the builder for creating many RunDispatch entities in bulk.
type RunDispatchCreateBulk struct {
	config
	err      error
	builders []*RunDispatchCreate
	conflict []sql.ConflictOption
}

// Save creates the RunDispatch entities in the database.
func (_c *RunDispatchCreateBulk) Save(ctx context.Context) ([]*RunDispatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunDispatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunDispatchMutation)
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
func (_c *RunDispatchCreateBulk) SaveX(ctx context.Context) []*RunDispatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunDispatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunDispatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunDispatch.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunDispatchUpsert) {
//			SetRunKey(v+v).
//		}).
//		Exec(ctx)
func (_c *RunDispatchCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunDispatchUpsertBulk {
	_c.conflict = opts
	return &RunDispatchUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunDispatch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunDispatchCreateBulk) OnConflictColumns(columns ...string) *RunDispatchUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunDispatchUpsertBulk{
		create: _c,
	}
}

// RunDispatchUpsertBulk is the builder for "upsert"-ing
// a bulk of RunDispatch nodes.
type RunDispatchUpsertBulk struct {
	create *RunDispatchCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunDispatch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rundispatch.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunDispatchUpsertBulk) UpdateNewValues() *RunDispatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rundispatch.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(rundispatch.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunDispatch.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunDispatchUpsertBulk) Ignore() *RunDispatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunDispatchUpsertBulk) DoNothing() *RunDispatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunDispatchCreateBulk.OnConflict
// documentation for more info.
func (u *RunDispatchUpsertBulk) Update(set func(*RunDispatchUpsert)) *RunDispatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunDispatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetRunKey sets the "run_key" field.
func (u *RunDispatchUpsertBulk) SetRunKey(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetRunKey(v)
	})
}

// UpdateRunKey sets the "run_key" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateRunKey() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateRunKey()
	})
}

// ClearRunKey clears the value of the "run_key" field.
func (u *RunDispatchUpsertBulk) ClearRunKey() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearRunKey()
	})
}

// SetQueueKey sets the "queue_key" field.
func (u *RunDispatchUpsertBulk) SetQueueKey(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetQueueKey(v)
	})
}

// UpdateQueueKey sets the "queue_key" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateQueueKey() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateQueueKey()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *RunDispatchUpsertBulk) SetWorkItemID(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateWorkItemID() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *RunDispatchUpsertBulk) ClearWorkItemID() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearWorkItemID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *RunDispatchUpsertBulk) SetAgentID(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateAgentID() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateAgentID()
	})
}

// SetSessionKey sets the "session_key" field.
func (u *RunDispatchUpsertBulk) SetSessionKey(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetSessionKey(v)
	})
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateSessionKey() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateSessionKey()
	})
}

// SetStatus sets the "status" field.
func (u *RunDispatchUpsertBulk) SetStatus(v rundispatch.Status) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateStatus() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateStatus()
	})
}

// SetControlState sets the "control_state" field.
func (u *RunDispatchUpsertBulk) SetControlState(v rundispatch.ControlState) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetControlState(v)
	})
}

// UpdateControlState sets the "control_state" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateControlState() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateControlState()
	})
}

// SetInputText sets the "input_text" field.
func (u *RunDispatchUpsertBulk) SetInputText(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetInputText(v)
	})
}

// UpdateInputText sets the "input_text" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateInputText() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateInputText()
	})
}

// ClearInputText clears the value of the "input_text" field.
func (u *RunDispatchUpsertBulk) ClearInputText() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearInputText()
	})
}

// SetCoalescedText sets the "coalesced_text" field.
func (u *RunDispatchUpsertBulk) SetCoalescedText(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetCoalescedText(v)
	})
}

// UpdateCoalescedText sets the "coalesced_text" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateCoalescedText() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateCoalescedText()
	})
}

// ClearCoalescedText clears the value of the "coalesced_text" field.
func (u *RunDispatchUpsertBulk) ClearCoalescedText() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearCoalescedText()
	})
}

// SetResponseContext sets the "response_context" field.
func (u *RunDispatchUpsertBulk) SetResponseContext(v map[string]interface{}) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetResponseContext(v)
	})
}

// UpdateResponseContext sets the "response_context" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateResponseContext() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateResponseContext()
	})
}

// ClearResponseContext clears the value of the "response_context" field.
func (u *RunDispatchUpsertBulk) ClearResponseContext() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearResponseContext()
	})
}

// SetOutputText sets the "output_text" field.
func (u *RunDispatchUpsertBulk) SetOutputText(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetOutputText(v)
	})
}

// UpdateOutputText sets the "output_text" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateOutputText() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateOutputText()
	})
}

// ClearOutputText clears the value of the "output_text" field.
func (u *RunDispatchUpsertBulk) ClearOutputText() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearOutputText()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *RunDispatchUpsertBulk) SetAttemptCount(v int) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *RunDispatchUpsertBulk) AddAttemptCount(v int) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateAttemptCount() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *RunDispatchUpsertBulk) SetClaimedBy(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateClaimedBy() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *RunDispatchUpsertBulk) ClearClaimedBy() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *RunDispatchUpsertBulk) SetLeaseExpiresAt(v time.Time) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateLeaseExpiresAt() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *RunDispatchUpsertBulk) ClearLeaseExpiresAt() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (u *RunDispatchUpsertBulk) SetClaimedEpoch(v int64) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetClaimedEpoch(v)
	})
}

// AddClaimedEpoch adds v to the "claimed_epoch" field.
func (u *RunDispatchUpsertBulk) AddClaimedEpoch(v int64) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.AddClaimedEpoch(v)
	})
}

// UpdateClaimedEpoch sets the "claimed_epoch" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateClaimedEpoch() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateClaimedEpoch()
	})
}

// SetReplayOfDispatchID sets the "replay_of_dispatch_id" field.
func (u *RunDispatchUpsertBulk) SetReplayOfDispatchID(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetReplayOfDispatchID(v)
	})
}

// UpdateReplayOfDispatchID sets the "replay_of_dispatch_id" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateReplayOfDispatchID() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateReplayOfDispatchID()
	})
}

// ClearReplayOfDispatchID clears the value of the "replay_of_dispatch_id" field.
func (u *RunDispatchUpsertBulk) ClearReplayOfDispatchID() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearReplayOfDispatchID()
	})
}

// SetMergedIntoDispatchID sets the "merged_into_dispatch_id" field.
func (u *RunDispatchUpsertBulk) SetMergedIntoDispatchID(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetMergedIntoDispatchID(v)
	})
}

// UpdateMergedIntoDispatchID sets the "merged_into_dispatch_id" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateMergedIntoDispatchID() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateMergedIntoDispatchID()
	})
}

// ClearMergedIntoDispatchID clears the value of the "merged_into_dispatch_id" field.
func (u *RunDispatchUpsertBulk) ClearMergedIntoDispatchID() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearMergedIntoDispatchID()
	})
}

// SetLastError sets the "last_error" field.
func (u *RunDispatchUpsertBulk) SetLastError(v string) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateLastError() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *RunDispatchUpsertBulk) ClearLastError() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearLastError()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *RunDispatchUpsertBulk) SetScheduledAt(v time.Time) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateScheduledAt() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunDispatchUpsertBulk) SetStartedAt(v time.Time) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateStartedAt() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunDispatchUpsertBulk) ClearStartedAt() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *RunDispatchUpsertBulk) SetFinishedAt(v time.Time) *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RunDispatchUpsertBulk) UpdateFinishedAt() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RunDispatchUpsertBulk) ClearFinishedAt() *RunDispatchUpsertBulk {
	return u.Update(func(s *RunDispatchUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *RunDispatchUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunDispatchCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunDispatchCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunDispatchUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
