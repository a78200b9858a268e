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
	"github.com/hooklinehq/hookline/ent/queuelane"
)

// QueueLaneUpdate is the builder for updating QueueLane entities.
type QueueLaneUpdate struct {
	config
	hooks    []Hook
	mutation *QueueLaneMutation
}

// Where appends a list predicates to the QueueLaneUpdate builder.
func (_u *QueueLaneUpdate) Where(ps ...predicate.QueueLane) *QueueLaneUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *QueueLaneUpdate) SetSessionKey(v string) *QueueLaneUpdate {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *QueueLaneUpdate) SetNillableSessionKey(v *string) *QueueLaneUpdate {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *QueueLaneUpdate) SetAgentID(v string) *QueueLaneUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *QueueLaneUpdate) SetNillableAgentID(v *string) *QueueLaneUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *QueueLaneUpdate) SetState(v queuelane.State) *QueueLaneUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *QueueLaneUpdate) SetNillableState(v *queuelane.State) *QueueLaneUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *QueueLaneUpdate) SetMode(v queuelane.Mode) *QueueLaneUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *QueueLaneUpdate) SetNillableMode(v *queuelane.Mode) *QueueLaneUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetIsPaused sets the "is_paused" field.
func (_u *QueueLaneUpdate) SetIsPaused(v bool) *QueueLaneUpdate {
	_u.mutation.SetIsPaused(v)
	return _u
}

// SetNillableIsPaused sets the "is_paused" field if the given value is not nil.
func (_u *QueueLaneUpdate) SetNillableIsPaused(v *bool) *QueueLaneUpdate {
	if v != nil {
		_u.SetIsPaused(*v)
	}
	return _u
}

// SetDebounceUntil sets the "debounce_until" field.
func (_u *QueueLaneUpdate) SetDebounceUntil(v time.Time) *QueueLaneUpdate {
	_u.mutation.SetDebounceUntil(v)
	return _u
}

// SetNillableDebounceUntil sets the "debounce_until" field if the given value is not nil.
func (_u *QueueLaneUpdate) SetNillableDebounceUntil(v *time.Time) *QueueLaneUpdate {
	if v != nil {
		_u.SetDebounceUntil(*v)
	}
	return _u
}

// ClearDebounceUntil clears the value of the "debounce_until" field.
func (_u *QueueLaneUpdate) ClearDebounceUntil() *QueueLaneUpdate {
	_u.mutation.ClearDebounceUntil()
	return _u
}

// SetDebounceMs sets the "debounce_ms" field.
func (_u *QueueLaneUpdate) SetDebounceMs(v int) *QueueLaneUpdate {
	_u.mutation.ResetDebounceMs()
	_u.mutation.SetDebounceMs(v)
	return _u
}

// SetNillableDebounceMs sets the "debounce_ms" field if the given value is not nil.
func (_u *QueueLaneUpdate) SetNillableDebounceMs(v *int) *QueueLaneUpdate {
	if v != nil {
		_u.SetDebounceMs(*v)
	}
	return _u
}

// AddDebounceMs adds value to the "debounce_ms" field.
func (_u *QueueLaneUpdate) AddDebounceMs(v int) *QueueLaneUpdate {
	_u.mutation.AddDebounceMs(v)
	return _u
}

// SetMaxQueued sets the "max_queued" field.
func (_u *QueueLaneUpdate) SetMaxQueued(v int) *QueueLaneUpdate {
	_u.mutation.ResetMaxQueued()
	_u.mutation.SetMaxQueued(v)
	return _u
}

// SetNillableMaxQueued sets the "max_queued" field if the given value is not nil.
func (_u *QueueLaneUpdate) SetNillableMaxQueued(v *int) *QueueLaneUpdate {
	if v != nil {
		_u.SetMaxQueued(*v)
	}
	return _u
}

// AddMaxQueued adds value to the "max_queued" field.
func (_u *QueueLaneUpdate) AddMaxQueued(v int) *QueueLaneUpdate {
	_u.mutation.AddMaxQueued(v)
	return _u
}

// SetActiveDispatchID sets the "active_dispatch_id" field.
func (_u *QueueLaneUpdate) SetActiveDispatchID(v string) *QueueLaneUpdate {
	_u.mutation.SetActiveDispatchID(v)
	return _u
}

// SetNillableActiveDispatchID sets the "active_dispatch_id" field if the given value is not nil.
func (_u *QueueLaneUpdate) SetNillableActiveDispatchID(v *string) *QueueLaneUpdate {
	if v != nil {
		_u.SetActiveDispatchID(*v)
	}
	return _u
}

// ClearActiveDispatchID clears the value of the "active_dispatch_id" field.
func (_u *QueueLaneUpdate) ClearActiveDispatchID() *QueueLaneUpdate {
	_u.mutation.ClearActiveDispatchID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueLaneUpdate) SetUpdatedAt(v time.Time) *QueueLaneUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueLaneMutation object of the builder.
func (_u *QueueLaneUpdate) Mutation() *QueueLaneMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueLaneUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueLaneUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueLaneUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueLaneUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueLaneUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuelane.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueLaneUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := queuelane.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "QueueLane.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := queuelane.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "QueueLane.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueLaneUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuelane.Table, queuelane.Columns, sqlgraph.NewFieldSpec(queuelane.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(queuelane.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(queuelane.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(queuelane.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(queuelane.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPaused(); ok {
		_spec.SetField(queuelane.FieldIsPaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DebounceUntil(); ok {
		_spec.SetField(queuelane.FieldDebounceUntil, field.TypeTime, value)
	}
	if _u.mutation.DebounceUntilCleared() {
		_spec.ClearField(queuelane.FieldDebounceUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.DebounceMs(); ok {
		_spec.SetField(queuelane.FieldDebounceMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDebounceMs(); ok {
		_spec.AddField(queuelane.FieldDebounceMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxQueued(); ok {
		_spec.SetField(queuelane.FieldMaxQueued, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxQueued(); ok {
		_spec.AddField(queuelane.FieldMaxQueued, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveDispatchID(); ok {
		_spec.SetField(queuelane.FieldActiveDispatchID, field.TypeString, value)
	}
	if _u.mutation.ActiveDispatchIDCleared() {
		_spec.ClearField(queuelane.FieldActiveDispatchID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuelane.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuelane.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueLaneUpdateOne is the builder for updating a single QueueLane entity.
type QueueLaneUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueLaneMutation
}

// SetSessionKey sets the "session_key" field.
func (_u *QueueLaneUpdateOne) SetSessionKey(v string) *QueueLaneUpdateOne {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *QueueLaneUpdateOne) SetNillableSessionKey(v *string) *QueueLaneUpdateOne {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *QueueLaneUpdateOne) SetAgentID(v string) *QueueLaneUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *QueueLaneUpdateOne) SetNillableAgentID(v *string) *QueueLaneUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *QueueLaneUpdateOne) SetState(v queuelane.State) *QueueLaneUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *QueueLaneUpdateOne) SetNillableState(v *queuelane.State) *QueueLaneUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *QueueLaneUpdateOne) SetMode(v queuelane.Mode) *QueueLaneUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *QueueLaneUpdateOne) SetNillableMode(v *queuelane.Mode) *QueueLaneUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetIsPaused sets the "is_paused" field.
func (_u *QueueLaneUpdateOne) SetIsPaused(v bool) *QueueLaneUpdateOne {
	_u.mutation.SetIsPaused(v)
	return _u
}

// SetNillableIsPaused sets the "is_paused" field if the given value is not nil.
func (_u *QueueLaneUpdateOne) SetNillableIsPaused(v *bool) *QueueLaneUpdateOne {
	if v != nil {
		_u.SetIsPaused(*v)
	}
	return _u
}

// SetDebounceUntil sets the "debounce_until" field.
func (_u *QueueLaneUpdateOne) SetDebounceUntil(v time.Time) *QueueLaneUpdateOne {
	_u.mutation.SetDebounceUntil(v)
	return _u
}

// SetNillableDebounceUntil sets the "debounce_until" field if the given value is not nil.
func (_u *QueueLaneUpdateOne) SetNillableDebounceUntil(v *time.Time) *QueueLaneUpdateOne {
	if v != nil {
		_u.SetDebounceUntil(*v)
	}
	return _u
}

// ClearDebounceUntil clears the value of the "debounce_until" field.
func (_u *QueueLaneUpdateOne) ClearDebounceUntil() *QueueLaneUpdateOne {
	_u.mutation.ClearDebounceUntil()
	return _u
}

// SetDebounceMs sets the "debounce_ms" field.
func (_u *QueueLaneUpdateOne) SetDebounceMs(v int) *QueueLaneUpdateOne {
	_u.mutation.ResetDebounceMs()
	_u.mutation.SetDebounceMs(v)
	return _u
}

// SetNillableDebounceMs sets the "debounce_ms" field if the given value is not nil.
func (_u *QueueLaneUpdateOne) SetNillableDebounceMs(v *int) *QueueLaneUpdateOne {
	if v != nil {
		_u.SetDebounceMs(*v)
	}
	return _u
}

// AddDebounceMs adds value to the "debounce_ms" field.
func (_u *QueueLaneUpdateOne) AddDebounceMs(v int) *QueueLaneUpdateOne {
	_u.mutation.AddDebounceMs(v)
	return _u
}

// SetMaxQueued sets the "max_queued" field.
func (_u *QueueLaneUpdateOne) SetMaxQueued(v int) *QueueLaneUpdateOne {
	_u.mutation.ResetMaxQueued()
	_u.mutation.SetMaxQueued(v)
	return _u
}

// SetNillableMaxQueued sets the "max_queued" field if the given value is not nil.
func (_u *QueueLaneUpdateOne) SetNillableMaxQueued(v *int) *QueueLaneUpdateOne {
	if v != nil {
		_u.SetMaxQueued(*v)
	}
	return _u
}

// AddMaxQueued adds value to the "max_queued" field.
func (_u *QueueLaneUpdateOne) AddMaxQueued(v int) *QueueLaneUpdateOne {
	_u.mutation.AddMaxQueued(v)
	return _u
}

// SetActiveDispatchID sets the "active_dispatch_id" field.
func (_u *QueueLaneUpdateOne) SetActiveDispatchID(v string) *QueueLaneUpdateOne {
	_u.mutation.SetActiveDispatchID(v)
	return _u
}

// SetNillableActiveDispatchID sets the "active_dispatch_id" field if the given value is not nil.
func (_u *QueueLaneUpdateOne) SetNillableActiveDispatchID(v *string) *QueueLaneUpdateOne {
	if v != nil {
		_u.SetActiveDispatchID(*v)
	}
	return _u
}

// ClearActiveDispatchID clears the value of the "active_dispatch_id" field.
func (_u *QueueLaneUpdateOne) ClearActiveDispatchID() *QueueLaneUpdateOne {
	_u.mutation.ClearActiveDispatchID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueLaneUpdateOne) SetUpdatedAt(v time.Time) *QueueLaneUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueLaneMutation object of the builder.
func (_u *QueueLaneUpdateOne) Mutation() *QueueLaneMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueLaneUpdate builder.
func (_u *QueueLaneUpdateOne) Where(ps ...predicate.QueueLane) *QueueLaneUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueLaneUpdateOne) Select(field string, fields ...string) *QueueLaneUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueLane entity.
func (_u *QueueLaneUpdateOne) Save(ctx context.Context) (*QueueLane, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueLaneUpdateOne) SaveX(ctx context.Context) *QueueLane {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueLaneUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueLaneUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueLaneUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuelane.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueLaneUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := queuelane.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "QueueLane.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := queuelane.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "QueueLane.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueLaneUpdateOne) sqlSave(ctx context.Context) (_node *QueueLane, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuelane.Table, queuelane.Columns, sqlgraph.NewFieldSpec(queuelane.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueLane.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuelane.FieldID)
		for _, f := range fields {
			if !queuelane.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuelane.FieldID {
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
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(queuelane.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(queuelane.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(queuelane.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(queuelane.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPaused(); ok {
		_spec.SetField(queuelane.FieldIsPaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DebounceUntil(); ok {
		_spec.SetField(queuelane.FieldDebounceUntil, field.TypeTime, value)
	}
	if _u.mutation.DebounceUntilCleared() {
		_spec.ClearField(queuelane.FieldDebounceUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.DebounceMs(); ok {
		_spec.SetField(queuelane.FieldDebounceMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDebounceMs(); ok {
		_spec.AddField(queuelane.FieldDebounceMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxQueued(); ok {
		_spec.SetField(queuelane.FieldMaxQueued, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxQueued(); ok {
		_spec.AddField(queuelane.FieldMaxQueued, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveDispatchID(); ok {
		_spec.SetField(queuelane.FieldActiveDispatchID, field.TypeString, value)
	}
	if _u.mutation.ActiveDispatchIDCleared() {
		_spec.ClearField(queuelane.FieldActiveDispatchID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuelane.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QueueLane{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuelane.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
