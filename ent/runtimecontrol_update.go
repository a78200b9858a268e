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
	"github.com/hooklinehq/hookline/ent/runtimecontrol"
)

// RuntimeControlUpdate is the builder for updating RuntimeControl entities.
type RuntimeControlUpdate struct {
	config
	hooks    []Hook
	mutation *RuntimeControlMutation
}

// Where appends a list predicates to the RuntimeControlUpdate builder.
func (_u *RuntimeControlUpdate) Where(ps ...predicate.RuntimeControl) *RuntimeControlUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProcessingEnabled sets the "processing_enabled" field.
func (_u *RuntimeControlUpdate) SetProcessingEnabled(v bool) *RuntimeControlUpdate {
	_u.mutation.SetProcessingEnabled(v)
	return _u
}

// SetNillableProcessingEnabled sets the "processing_enabled" field if the given value is not nil.
func (_u *RuntimeControlUpdate) SetNillableProcessingEnabled(v *bool) *RuntimeControlUpdate {
	if v != nil {
		_u.SetProcessingEnabled(*v)
	}
	return _u
}

// SetPauseMode sets the "pause_mode" field.
func (_u *RuntimeControlUpdate) SetPauseMode(v runtimecontrol.PauseMode) *RuntimeControlUpdate {
	_u.mutation.SetPauseMode(v)
	return _u
}

// SetNillablePauseMode sets the "pause_mode" field if the given value is not nil.
func (_u *RuntimeControlUpdate) SetNillablePauseMode(v *runtimecontrol.PauseMode) *RuntimeControlUpdate {
	if v != nil {
		_u.SetPauseMode(*v)
	}
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *RuntimeControlUpdate) SetPauseReason(v string) *RuntimeControlUpdate {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *RuntimeControlUpdate) SetNillablePauseReason(v *string) *RuntimeControlUpdate {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *RuntimeControlUpdate) ClearPauseReason() *RuntimeControlUpdate {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetControlEpoch sets the "control_epoch" field.
func (_u *RuntimeControlUpdate) SetControlEpoch(v int64) *RuntimeControlUpdate {
	_u.mutation.ResetControlEpoch()
	_u.mutation.SetControlEpoch(v)
	return _u
}

// SetNillableControlEpoch sets the "control_epoch" field if the given value is not nil.
func (_u *RuntimeControlUpdate) SetNillableControlEpoch(v *int64) *RuntimeControlUpdate {
	if v != nil {
		_u.SetControlEpoch(*v)
	}
	return _u
}

// AddControlEpoch adds value to the "control_epoch" field.
func (_u *RuntimeControlUpdate) AddControlEpoch(v int64) *RuntimeControlUpdate {
	_u.mutation.AddControlEpoch(v)
	return _u
}

// SetMaxConcurrentDispatches sets the "max_concurrent_dispatches" field.
func (_u *RuntimeControlUpdate) SetMaxConcurrentDispatches(v int) *RuntimeControlUpdate {
	_u.mutation.ResetMaxConcurrentDispatches()
	_u.mutation.SetMaxConcurrentDispatches(v)
	return _u
}

// SetNillableMaxConcurrentDispatches sets the "max_concurrent_dispatches" field if the given value is not nil.
func (_u *RuntimeControlUpdate) SetNillableMaxConcurrentDispatches(v *int) *RuntimeControlUpdate {
	if v != nil {
		_u.SetMaxConcurrentDispatches(*v)
	}
	return _u
}

// AddMaxConcurrentDispatches adds value to the "max_concurrent_dispatches" field.
func (_u *RuntimeControlUpdate) AddMaxConcurrentDispatches(v int) *RuntimeControlUpdate {
	_u.mutation.AddMaxConcurrentDispatches(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RuntimeControlUpdate) SetUpdatedAt(v time.Time) *RuntimeControlUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RuntimeControlMutation object of the builder.
func (_u *RuntimeControlUpdate) Mutation() *RuntimeControlMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RuntimeControlUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuntimeControlUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RuntimeControlUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuntimeControlUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RuntimeControlUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := runtimecontrol.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuntimeControlUpdate) check() error {
	if v, ok := _u.mutation.PauseMode(); ok {
		if err := runtimecontrol.PauseModeValidator(v); err != nil {
			return &ValidationError{Name: "pause_mode", err: fmt.Errorf(`ent: validator failed for field "RuntimeControl.pause_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *RuntimeControlUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runtimecontrol.Table, runtimecontrol.Columns, sqlgraph.NewFieldSpec(runtimecontrol.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProcessingEnabled(); ok {
		_spec.SetField(runtimecontrol.FieldProcessingEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PauseMode(); ok {
		_spec.SetField(runtimecontrol.FieldPauseMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(runtimecontrol.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(runtimecontrol.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.ControlEpoch(); ok {
		_spec.SetField(runtimecontrol.FieldControlEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedControlEpoch(); ok {
		_spec.AddField(runtimecontrol.FieldControlEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MaxConcurrentDispatches(); ok {
		_spec.SetField(runtimecontrol.FieldMaxConcurrentDispatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrentDispatches(); ok {
		_spec.AddField(runtimecontrol.FieldMaxConcurrentDispatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(runtimecontrol.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runtimecontrol.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RuntimeControlUpdateOne is the builder for updating a single RuntimeControl entity.
type RuntimeControlUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RuntimeControlMutation
}

// SetProcessingEnabled sets the "processing_enabled" field.
func (_u *RuntimeControlUpdateOne) SetProcessingEnabled(v bool) *RuntimeControlUpdateOne {
	_u.mutation.SetProcessingEnabled(v)
	return _u
}

// SetNillableProcessingEnabled sets the "processing_enabled" field if the given value is not nil.
func (_u *RuntimeControlUpdateOne) SetNillableProcessingEnabled(v *bool) *RuntimeControlUpdateOne {
	if v != nil {
		_u.SetProcessingEnabled(*v)
	}
	return _u
}

// SetPauseMode sets the "pause_mode" field.
func (_u *RuntimeControlUpdateOne) SetPauseMode(v runtimecontrol.PauseMode) *RuntimeControlUpdateOne {
	_u.mutation.SetPauseMode(v)
	return _u
}

// SetNillablePauseMode sets the "pause_mode" field if the given value is not nil.
func (_u *RuntimeControlUpdateOne) SetNillablePauseMode(v *runtimecontrol.PauseMode) *RuntimeControlUpdateOne {
	if v != nil {
		_u.SetPauseMode(*v)
	}
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *RuntimeControlUpdateOne) SetPauseReason(v string) *RuntimeControlUpdateOne {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *RuntimeControlUpdateOne) SetNillablePauseReason(v *string) *RuntimeControlUpdateOne {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *RuntimeControlUpdateOne) ClearPauseReason() *RuntimeControlUpdateOne {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetControlEpoch sets the "control_epoch" field.
func (_u *RuntimeControlUpdateOne) SetControlEpoch(v int64) *RuntimeControlUpdateOne {
	_u.mutation.ResetControlEpoch()
	_u.mutation.SetControlEpoch(v)
	return _u
}

// SetNillableControlEpoch sets the "control_epoch" field if the given value is not nil.
func (_u *RuntimeControlUpdateOne) SetNillableControlEpoch(v *int64) *RuntimeControlUpdateOne {
	if v != nil {
		_u.SetControlEpoch(*v)
	}
	return _u
}

// AddControlEpoch adds value to the "control_epoch" field.
func (_u *RuntimeControlUpdateOne) AddControlEpoch(v int64) *RuntimeControlUpdateOne {
	_u.mutation.AddControlEpoch(v)
	return _u
}

// SetMaxConcurrentDispatches sets the "max_concurrent_dispatches" field.
func (_u *RuntimeControlUpdateOne) SetMaxConcurrentDispatches(v int) *RuntimeControlUpdateOne {
	_u.mutation.ResetMaxConcurrentDispatches()
	_u.mutation.SetMaxConcurrentDispatches(v)
	return _u
}

// SetNillableMaxConcurrentDispatches sets the "max_concurrent_dispatches" field if the given value is not nil.
func (_u *RuntimeControlUpdateOne) SetNillableMaxConcurrentDispatches(v *int) *RuntimeControlUpdateOne {
	if v != nil {
		_u.SetMaxConcurrentDispatches(*v)
	}
	return _u
}

// AddMaxConcurrentDispatches adds value to the "max_concurrent_dispatches" field.
func (_u *RuntimeControlUpdateOne) AddMaxConcurrentDispatches(v int) *RuntimeControlUpdateOne {
	_u.mutation.AddMaxConcurrentDispatches(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RuntimeControlUpdateOne) SetUpdatedAt(v time.Time) *RuntimeControlUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RuntimeControlMutation object of the builder.
func (_u *RuntimeControlUpdateOne) Mutation() *RuntimeControlMutation {
	return _u.mutation
}

// Where appends a list predicates to the RuntimeControlUpdate builder.
func (_u *RuntimeControlUpdateOne) Where(ps ...predicate.RuntimeControl) *RuntimeControlUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RuntimeControlUpdateOne) Select(field string, fields ...string) *RuntimeControlUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RuntimeControl entity.
func (_u *RuntimeControlUpdateOne) Save(ctx context.Context) (*RuntimeControl, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuntimeControlUpdateOne) SaveX(ctx context.Context) *RuntimeControl {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RuntimeControlUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuntimeControlUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RuntimeControlUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := runtimecontrol.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuntimeControlUpdateOne) check() error {
	if v, ok := _u.mutation.PauseMode(); ok {
		if err := runtimecontrol.PauseModeValidator(v); err != nil {
			return &ValidationError{Name: "pause_mode", err: fmt.Errorf(`ent: validator failed for field "RuntimeControl.pause_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *RuntimeControlUpdateOne) sqlSave(ctx context.Context) (_node *RuntimeControl, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runtimecontrol.Table, runtimecontrol.Columns, sqlgraph.NewFieldSpec(runtimecontrol.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RuntimeControl.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runtimecontrol.FieldID)
		for _, f := range fields {
			if !runtimecontrol.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runtimecontrol.FieldID {
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
	if value, ok := _u.mutation.ProcessingEnabled(); ok {
		_spec.SetField(runtimecontrol.FieldProcessingEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PauseMode(); ok {
		_spec.SetField(runtimecontrol.FieldPauseMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(runtimecontrol.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(runtimecontrol.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.ControlEpoch(); ok {
		_spec.SetField(runtimecontrol.FieldControlEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedControlEpoch(); ok {
		_spec.AddField(runtimecontrol.FieldControlEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MaxConcurrentDispatches(); ok {
		_spec.SetField(runtimecontrol.FieldMaxConcurrentDispatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrentDispatches(); ok {
		_spec.AddField(runtimecontrol.FieldMaxConcurrentDispatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(runtimecontrol.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RuntimeControl{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runtimecontrol.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
