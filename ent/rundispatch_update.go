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
	"github.com/hooklinehq/hookline/ent/rundispatch"
)

// RunDispatchUpdate is the builder for updating RunDispatch entities.
type RunDispatchUpdate struct {
	config
	hooks    []Hook
	mutation *RunDispatchMutation
}

// Where appends a list predicates to the RunDispatchUpdate builder.
func (_u *RunDispatchUpdate) Where(ps ...predicate.RunDispatch) *RunDispatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunKey sets the "run_key" field.
func (_u *RunDispatchUpdate) SetRunKey(v string) *RunDispatchUpdate {
	_u.mutation.SetRunKey(v)
	return _u
}

// SetNillableRunKey sets the "run_key" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableRunKey(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetRunKey(*v)
	}
	return _u
}

// ClearRunKey clears the value of the "run_key" field.
func (_u *RunDispatchUpdate) ClearRunKey() *RunDispatchUpdate {
	_u.mutation.ClearRunKey()
	return _u
}

// SetQueueKey sets the "queue_key" field.
func (_u *RunDispatchUpdate) SetQueueKey(v string) *RunDispatchUpdate {
	_u.mutation.SetQueueKey(v)
	return _u
}

// SetNillableQueueKey sets the "queue_key" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableQueueKey(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetQueueKey(*v)
	}
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *RunDispatchUpdate) SetWorkItemID(v string) *RunDispatchUpdate {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableWorkItemID(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *RunDispatchUpdate) ClearWorkItemID() *RunDispatchUpdate {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *RunDispatchUpdate) SetAgentID(v string) *RunDispatchUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableAgentID(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *RunDispatchUpdate) SetSessionKey(v string) *RunDispatchUpdate {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableSessionKey(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunDispatchUpdate) SetStatus(v rundispatch.Status) *RunDispatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableStatus(v *rundispatch.Status) *RunDispatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetControlState sets the "control_state" field.
func (_u *RunDispatchUpdate) SetControlState(v rundispatch.ControlState) *RunDispatchUpdate {
	_u.mutation.SetControlState(v)
	return _u
}

// SetNillableControlState sets the "control_state" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableControlState(v *rundispatch.ControlState) *RunDispatchUpdate {
	if v != nil {
		_u.SetControlState(*v)
	}
	return _u
}

// SetInputText sets the "input_text" field.
func (_u *RunDispatchUpdate) SetInputText(v string) *RunDispatchUpdate {
	_u.mutation.SetInputText(v)
	return _u
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableInputText(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetInputText(*v)
	}
	return _u
}

// ClearInputText clears the value of the "input_text" field.
func (_u *RunDispatchUpdate) ClearInputText() *RunDispatchUpdate {
	_u.mutation.ClearInputText()
	return _u
}

// SetCoalescedText sets the "coalesced_text" field.
func (_u *RunDispatchUpdate) SetCoalescedText(v string) *RunDispatchUpdate {
	_u.mutation.SetCoalescedText(v)
	return _u
}

// SetNillableCoalescedText sets the "coalesced_text" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableCoalescedText(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetCoalescedText(*v)
	}
	return _u
}

// ClearCoalescedText clears the value of the "coalesced_text" field.
func (_u *RunDispatchUpdate) ClearCoalescedText() *RunDispatchUpdate {
	_u.mutation.ClearCoalescedText()
	return _u
}

// SetResponseContext sets the "response_context" field.
func (_u *RunDispatchUpdate) SetResponseContext(v map[string]interface{}) *RunDispatchUpdate {
	_u.mutation.SetResponseContext(v)
	return _u
}

// ClearResponseContext clears the value of the "response_context" field.
func (_u *RunDispatchUpdate) ClearResponseContext() *RunDispatchUpdate {
	_u.mutation.ClearResponseContext()
	return _u
}

// SetOutputText sets the "output_text" field.
func (_u *RunDispatchUpdate) SetOutputText(v string) *RunDispatchUpdate {
	_u.mutation.SetOutputText(v)
	return _u
}

// SetNillableOutputText sets the "output_text" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableOutputText(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetOutputText(*v)
	}
	return _u
}

// ClearOutputText clears the value of the "output_text" field.
func (_u *RunDispatchUpdate) ClearOutputText() *RunDispatchUpdate {
	_u.mutation.ClearOutputText()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *RunDispatchUpdate) SetAttemptCount(v int) *RunDispatchUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableAttemptCount(v *int) *RunDispatchUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *RunDispatchUpdate) AddAttemptCount(v int) *RunDispatchUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *RunDispatchUpdate) SetClaimedBy(v string) *RunDispatchUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableClaimedBy(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *RunDispatchUpdate) ClearClaimedBy() *RunDispatchUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *RunDispatchUpdate) SetLeaseExpiresAt(v time.Time) *RunDispatchUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableLeaseExpiresAt(v *time.Time) *RunDispatchUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *RunDispatchUpdate) ClearLeaseExpiresAt() *RunDispatchUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (_u *RunDispatchUpdate) SetClaimedEpoch(v int64) *RunDispatchUpdate {
	_u.mutation.ResetClaimedEpoch()
	_u.mutation.SetClaimedEpoch(v)
	return _u
}

// SetNillableClaimedEpoch sets the "claimed_epoch" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableClaimedEpoch(v *int64) *RunDispatchUpdate {
	if v != nil {
		_u.SetClaimedEpoch(*v)
	}
	return _u
}

// AddClaimedEpoch adds value to the "claimed_epoch" field.
func (_u *RunDispatchUpdate) AddClaimedEpoch(v int64) *RunDispatchUpdate {
	_u.mutation.AddClaimedEpoch(v)
	return _u
}

// SetReplayOfDispatchID sets the "replay_of_dispatch_id" field.
func (_u *RunDispatchUpdate) SetReplayOfDispatchID(v string) *RunDispatchUpdate {
	_u.mutation.SetReplayOfDispatchID(v)
	return _u
}

// SetNillableReplayOfDispatchID sets the "replay_of_dispatch_id" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableReplayOfDispatchID(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetReplayOfDispatchID(*v)
	}
	return _u
}

// ClearReplayOfDispatchID clears the value of the "replay_of_dispatch_id" field.
func (_u *RunDispatchUpdate) ClearReplayOfDispatchID() *RunDispatchUpdate {
	_u.mutation.ClearReplayOfDispatchID()
	return _u
}

// SetMergedIntoDispatchID sets the "merged_into_dispatch_id" field.
func (_u *RunDispatchUpdate) SetMergedIntoDispatchID(v string) *RunDispatchUpdate {
	_u.mutation.SetMergedIntoDispatchID(v)
	return _u
}

// SetNillableMergedIntoDispatchID sets the "merged_into_dispatch_id" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableMergedIntoDispatchID(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetMergedIntoDispatchID(*v)
	}
	return _u
}

// ClearMergedIntoDispatchID clears the value of the "merged_into_dispatch_id" field.
func (_u *RunDispatchUpdate) ClearMergedIntoDispatchID() *RunDispatchUpdate {
	_u.mutation.ClearMergedIntoDispatchID()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *RunDispatchUpdate) SetLastError(v string) *RunDispatchUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableLastError(v *string) *RunDispatchUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *RunDispatchUpdate) ClearLastError() *RunDispatchUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *RunDispatchUpdate) SetScheduledAt(v time.Time) *RunDispatchUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableScheduledAt(v *time.Time) *RunDispatchUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunDispatchUpdate) SetStartedAt(v time.Time) *RunDispatchUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableStartedAt(v *time.Time) *RunDispatchUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunDispatchUpdate) ClearStartedAt() *RunDispatchUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunDispatchUpdate) SetFinishedAt(v time.Time) *RunDispatchUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunDispatchUpdate) SetNillableFinishedAt(v *time.Time) *RunDispatchUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunDispatchUpdate) ClearFinishedAt() *RunDispatchUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the RunDispatchMutation object of the builder.
func (_u *RunDispatchUpdate) Mutation() *RunDispatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunDispatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunDispatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunDispatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunDispatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunDispatchUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := rundispatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunDispatch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ControlState(); ok {
		if err := rundispatch.ControlStateValidator(v); err != nil {
			return &ValidationError{Name: "control_state", err: fmt.Errorf(`ent: validator failed for field "RunDispatch.control_state": %w`, err)}
		}
	}
	return nil
}

func (_u *RunDispatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rundispatch.Table, rundispatch.Columns, sqlgraph.NewFieldSpec(rundispatch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunKey(); ok {
		_spec.SetField(rundispatch.FieldRunKey, field.TypeString, value)
	}
	if _u.mutation.RunKeyCleared() {
		_spec.ClearField(rundispatch.FieldRunKey, field.TypeString)
	}
	if value, ok := _u.mutation.QueueKey(); ok {
		_spec.SetField(rundispatch.FieldQueueKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(rundispatch.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(rundispatch.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(rundispatch.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(rundispatch.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rundispatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ControlState(); ok {
		_spec.SetField(rundispatch.FieldControlState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(rundispatch.FieldInputText, field.TypeString, value)
	}
	if _u.mutation.InputTextCleared() {
		_spec.ClearField(rundispatch.FieldInputText, field.TypeString)
	}
	if value, ok := _u.mutation.CoalescedText(); ok {
		_spec.SetField(rundispatch.FieldCoalescedText, field.TypeString, value)
	}
	if _u.mutation.CoalescedTextCleared() {
		_spec.ClearField(rundispatch.FieldCoalescedText, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseContext(); ok {
		_spec.SetField(rundispatch.FieldResponseContext, field.TypeJSON, value)
	}
	if _u.mutation.ResponseContextCleared() {
		_spec.ClearField(rundispatch.FieldResponseContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputText(); ok {
		_spec.SetField(rundispatch.FieldOutputText, field.TypeString, value)
	}
	if _u.mutation.OutputTextCleared() {
		_spec.ClearField(rundispatch.FieldOutputText, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(rundispatch.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(rundispatch.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(rundispatch.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(rundispatch.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(rundispatch.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(rundispatch.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedEpoch(); ok {
		_spec.SetField(rundispatch.FieldClaimedEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClaimedEpoch(); ok {
		_spec.AddField(rundispatch.FieldClaimedEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ReplayOfDispatchID(); ok {
		_spec.SetField(rundispatch.FieldReplayOfDispatchID, field.TypeString, value)
	}
	if _u.mutation.ReplayOfDispatchIDCleared() {
		_spec.ClearField(rundispatch.FieldReplayOfDispatchID, field.TypeString)
	}
	if value, ok := _u.mutation.MergedIntoDispatchID(); ok {
		_spec.SetField(rundispatch.FieldMergedIntoDispatchID, field.TypeString, value)
	}
	if _u.mutation.MergedIntoDispatchIDCleared() {
		_spec.ClearField(rundispatch.FieldMergedIntoDispatchID, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(rundispatch.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(rundispatch.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(rundispatch.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(rundispatch.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(rundispatch.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(rundispatch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(rundispatch.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rundispatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunDispatchUpdateOne is the builder for updating a single RunDispatch entity.
type RunDispatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunDispatchMutation
}

// SetRunKey sets the "run_key" field.
func (_u *RunDispatchUpdateOne) SetRunKey(v string) *RunDispatchUpdateOne {
	_u.mutation.SetRunKey(v)
	return _u
}

// SetNillableRunKey sets the "run_key" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableRunKey(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetRunKey(*v)
	}
	return _u
}

// ClearRunKey clears the value of the "run_key" field.
func (_u *RunDispatchUpdateOne) ClearRunKey() *RunDispatchUpdateOne {
	_u.mutation.ClearRunKey()
	return _u
}

// SetQueueKey sets the "queue_key" field.
func (_u *RunDispatchUpdateOne) SetQueueKey(v string) *RunDispatchUpdateOne {
	_u.mutation.SetQueueKey(v)
	return _u
}

// SetNillableQueueKey sets the "queue_key" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableQueueKey(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetQueueKey(*v)
	}
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *RunDispatchUpdateOne) SetWorkItemID(v string) *RunDispatchUpdateOne {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableWorkItemID(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *RunDispatchUpdateOne) ClearWorkItemID() *RunDispatchUpdateOne {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *RunDispatchUpdateOne) SetAgentID(v string) *RunDispatchUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableAgentID(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *RunDispatchUpdateOne) SetSessionKey(v string) *RunDispatchUpdateOne {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableSessionKey(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunDispatchUpdateOne) SetStatus(v rundispatch.Status) *RunDispatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableStatus(v *rundispatch.Status) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetControlState sets the "control_state" field.
func (_u *RunDispatchUpdateOne) SetControlState(v rundispatch.ControlState) *RunDispatchUpdateOne {
	_u.mutation.SetControlState(v)
	return _u
}

// SetNillableControlState sets the "control_state" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableControlState(v *rundispatch.ControlState) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetControlState(*v)
	}
	return _u
}

// SetInputText sets the "input_text" field.
func (_u *RunDispatchUpdateOne) SetInputText(v string) *RunDispatchUpdateOne {
	_u.mutation.SetInputText(v)
	return _u
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableInputText(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetInputText(*v)
	}
	return _u
}

// ClearInputText clears the value of the "input_text" field.
func (_u *RunDispatchUpdateOne) ClearInputText() *RunDispatchUpdateOne {
	_u.mutation.ClearInputText()
	return _u
}

// SetCoalescedText sets the "coalesced_text" field.
func (_u *RunDispatchUpdateOne) SetCoalescedText(v string) *RunDispatchUpdateOne {
	_u.mutation.SetCoalescedText(v)
	return _u
}

// SetNillableCoalescedText sets the "coalesced_text" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableCoalescedText(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetCoalescedText(*v)
	}
	return _u
}

// ClearCoalescedText clears the value of the "coalesced_text" field.
func (_u *RunDispatchUpdateOne) ClearCoalescedText() *RunDispatchUpdateOne {
	_u.mutation.ClearCoalescedText()
	return _u
}

// SetResponseContext sets the "response_context" field.
func (_u *RunDispatchUpdateOne) SetResponseContext(v map[string]interface{}) *RunDispatchUpdateOne {
	_u.mutation.SetResponseContext(v)
	return _u
}

// ClearResponseContext clears the value of the "response_context" field.
func (_u *RunDispatchUpdateOne) ClearResponseContext() *RunDispatchUpdateOne {
	_u.mutation.ClearResponseContext()
	return _u
}

// SetOutputText sets the "output_text" field.
func (_u *RunDispatchUpdateOne) SetOutputText(v string) *RunDispatchUpdateOne {
	_u.mutation.SetOutputText(v)
	return _u
}

// SetNillableOutputText sets the "output_text" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableOutputText(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetOutputText(*v)
	}
	return _u
}

// ClearOutputText clears the value of the "output_text" field.
func (_u *RunDispatchUpdateOne) ClearOutputText() *RunDispatchUpdateOne {
	_u.mutation.ClearOutputText()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *RunDispatchUpdateOne) SetAttemptCount(v int) *RunDispatchUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableAttemptCount(v *int) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *RunDispatchUpdateOne) AddAttemptCount(v int) *RunDispatchUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *RunDispatchUpdateOne) SetClaimedBy(v string) *RunDispatchUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableClaimedBy(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *RunDispatchUpdateOne) ClearClaimedBy() *RunDispatchUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *RunDispatchUpdateOne) SetLeaseExpiresAt(v time.Time) *RunDispatchUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *RunDispatchUpdateOne) ClearLeaseExpiresAt() *RunDispatchUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (_u *RunDispatchUpdateOne) SetClaimedEpoch(v int64) *RunDispatchUpdateOne {
	_u.mutation.ResetClaimedEpoch()
	_u.mutation.SetClaimedEpoch(v)
	return _u
}

// SetNillableClaimedEpoch sets the "claimed_epoch" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableClaimedEpoch(v *int64) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetClaimedEpoch(*v)
	}
	return _u
}

// AddClaimedEpoch adds value to the "claimed_epoch" field.
func (_u *RunDispatchUpdateOne) AddClaimedEpoch(v int64) *RunDispatchUpdateOne {
	_u.mutation.AddClaimedEpoch(v)
	return _u
}

// SetReplayOfDispatchID sets the "replay_of_dispatch_id" field.
func (_u *RunDispatchUpdateOne) SetReplayOfDispatchID(v string) *RunDispatchUpdateOne {
	_u.mutation.SetReplayOfDispatchID(v)
	return _u
}

// SetNillableReplayOfDispatchID sets the "replay_of_dispatch_id" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableReplayOfDispatchID(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetReplayOfDispatchID(*v)
	}
	return _u
}

// ClearReplayOfDispatchID clears the value of the "replay_of_dispatch_id" field.
func (_u *RunDispatchUpdateOne) ClearReplayOfDispatchID() *RunDispatchUpdateOne {
	_u.mutation.ClearReplayOfDispatchID()
	return _u
}

// SetMergedIntoDispatchID sets the "merged_into_dispatch_id" field.
func (_u *RunDispatchUpdateOne) SetMergedIntoDispatchID(v string) *RunDispatchUpdateOne {
	_u.mutation.SetMergedIntoDispatchID(v)
	return _u
}

// SetNillableMergedIntoDispatchID sets the "merged_into_dispatch_id" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableMergedIntoDispatchID(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetMergedIntoDispatchID(*v)
	}
	return _u
}

// ClearMergedIntoDispatchID clears the value of the "merged_into_dispatch_id" field.
func (_u *RunDispatchUpdateOne) ClearMergedIntoDispatchID() *RunDispatchUpdateOne {
	_u.mutation.ClearMergedIntoDispatchID()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *RunDispatchUpdateOne) SetLastError(v string) *RunDispatchUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableLastError(v *string) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *RunDispatchUpdateOne) ClearLastError() *RunDispatchUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *RunDispatchUpdateOne) SetScheduledAt(v time.Time) *RunDispatchUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableScheduledAt(v *time.Time) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunDispatchUpdateOne) SetStartedAt(v time.Time) *RunDispatchUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableStartedAt(v *time.Time) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunDispatchUpdateOne) ClearStartedAt() *RunDispatchUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunDispatchUpdateOne) SetFinishedAt(v time.Time) *RunDispatchUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunDispatchUpdateOne) SetNillableFinishedAt(v *time.Time) *RunDispatchUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunDispatchUpdateOne) ClearFinishedAt() *RunDispatchUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the RunDispatchMutation object of the builder.
func (_u *RunDispatchUpdateOne) Mutation() *RunDispatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunDispatchUpdate builder.
func (_u *RunDispatchUpdateOne) Where(ps ...predicate.RunDispatch) *RunDispatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunDispatchUpdateOne) Select(field string, fields ...string) *RunDispatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunDispatch entity.
func (_u *RunDispatchUpdateOne) Save(ctx context.Context) (*RunDispatch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunDispatchUpdateOne) SaveX(ctx context.Context) *RunDispatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunDispatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunDispatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunDispatchUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := rundispatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunDispatch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ControlState(); ok {
		if err := rundispatch.ControlStateValidator(v); err != nil {
			return &ValidationError{Name: "control_state", err: fmt.Errorf(`ent: validator failed for field "RunDispatch.control_state": %w`, err)}
		}
	}
	return nil
}

func (_u *RunDispatchUpdateOne) sqlSave(ctx context.Context) (_node *RunDispatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rundispatch.Table, rundispatch.Columns, sqlgraph.NewFieldSpec(rundispatch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunDispatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rundispatch.FieldID)
		for _, f := range fields {
			if !rundispatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rundispatch.FieldID {
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
	if value, ok := _u.mutation.RunKey(); ok {
		_spec.SetField(rundispatch.FieldRunKey, field.TypeString, value)
	}
	if _u.mutation.RunKeyCleared() {
		_spec.ClearField(rundispatch.FieldRunKey, field.TypeString)
	}
	if value, ok := _u.mutation.QueueKey(); ok {
		_spec.SetField(rundispatch.FieldQueueKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(rundispatch.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(rundispatch.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(rundispatch.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(rundispatch.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rundispatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ControlState(); ok {
		_spec.SetField(rundispatch.FieldControlState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(rundispatch.FieldInputText, field.TypeString, value)
	}
	if _u.mutation.InputTextCleared() {
		_spec.ClearField(rundispatch.FieldInputText, field.TypeString)
	}
	if value, ok := _u.mutation.CoalescedText(); ok {
		_spec.SetField(rundispatch.FieldCoalescedText, field.TypeString, value)
	}
	if _u.mutation.CoalescedTextCleared() {
		_spec.ClearField(rundispatch.FieldCoalescedText, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseContext(); ok {
		_spec.SetField(rundispatch.FieldResponseContext, field.TypeJSON, value)
	}
	if _u.mutation.ResponseContextCleared() {
		_spec.ClearField(rundispatch.FieldResponseContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputText(); ok {
		_spec.SetField(rundispatch.FieldOutputText, field.TypeString, value)
	}
	if _u.mutation.OutputTextCleared() {
		_spec.ClearField(rundispatch.FieldOutputText, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(rundispatch.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(rundispatch.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(rundispatch.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(rundispatch.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(rundispatch.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(rundispatch.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedEpoch(); ok {
		_spec.SetField(rundispatch.FieldClaimedEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClaimedEpoch(); ok {
		_spec.AddField(rundispatch.FieldClaimedEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ReplayOfDispatchID(); ok {
		_spec.SetField(rundispatch.FieldReplayOfDispatchID, field.TypeString, value)
	}
	if _u.mutation.ReplayOfDispatchIDCleared() {
		_spec.ClearField(rundispatch.FieldReplayOfDispatchID, field.TypeString)
	}
	if value, ok := _u.mutation.MergedIntoDispatchID(); ok {
		_spec.SetField(rundispatch.FieldMergedIntoDispatchID, field.TypeString, value)
	}
	if _u.mutation.MergedIntoDispatchIDCleared() {
		_spec.ClearField(rundispatch.FieldMergedIntoDispatchID, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(rundispatch.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(rundispatch.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(rundispatch.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(rundispatch.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(rundispatch.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(rundispatch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(rundispatch.FieldFinishedAt, field.TypeTime)
	}
	_node = &RunDispatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rundispatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
