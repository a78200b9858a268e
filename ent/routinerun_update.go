// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hooklinehq/hookline/ent/predicate"
	"github.com/hooklinehq/hookline/ent/routinerun"
)

// RoutineRunUpdate is the builder for updating RoutineRun entities.
type RoutineRunUpdate struct {
	config
	hooks    []Hook
	mutation *RoutineRunMutation
}

// Where appends a list predicates to the RoutineRunUpdate builder.
func (_u *RoutineRunUpdate) Where(ps ...predicate.RoutineRun) *RoutineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoutineID sets the "routine_id" field.
func (_u *RoutineRunUpdate) SetRoutineID(v string) *RoutineRunUpdate {
	_u.mutation.SetRoutineID(v)
	return _u
}

// SetNillableRoutineID sets the "routine_id" field if the given value is not nil.
func (_u *RoutineRunUpdate) SetNillableRoutineID(v *string) *RoutineRunUpdate {
	if v != nil {
		_u.SetRoutineID(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *RoutineRunUpdate) SetDecision(v routinerun.Decision) *RoutineRunUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *RoutineRunUpdate) SetNillableDecision(v *routinerun.Decision) *RoutineRunUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecisionReason sets the "decision_reason" field.
func (_u *RoutineRunUpdate) SetDecisionReason(v string) *RoutineRunUpdate {
	_u.mutation.SetDecisionReason(v)
	return _u
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_u *RoutineRunUpdate) SetNillableDecisionReason(v *string) *RoutineRunUpdate {
	if v != nil {
		_u.SetDecisionReason(*v)
	}
	return _u
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (_u *RoutineRunUpdate) ClearDecisionReason() *RoutineRunUpdate {
	_u.mutation.ClearDecisionReason()
	return _u
}

// SetEnvelope sets the "envelope" field.
func (_u *RoutineRunUpdate) SetEnvelope(v map[string]interface{}) *RoutineRunUpdate {
	_u.mutation.SetEnvelope(v)
	return _u
}

// ClearEnvelope clears the value of the "envelope" field.
func (_u *RoutineRunUpdate) ClearEnvelope() *RoutineRunUpdate {
	_u.mutation.ClearEnvelope()
	return _u
}

// SetScheduledItemID sets the "scheduled_item_id" field.
func (_u *RoutineRunUpdate) SetScheduledItemID(v string) *RoutineRunUpdate {
	_u.mutation.SetScheduledItemID(v)
	return _u
}

// SetNillableScheduledItemID sets the "scheduled_item_id" field if the given value is not nil.
func (_u *RoutineRunUpdate) SetNillableScheduledItemID(v *string) *RoutineRunUpdate {
	if v != nil {
		_u.SetScheduledItemID(*v)
	}
	return _u
}

// ClearScheduledItemID clears the value of the "scheduled_item_id" field.
func (_u *RoutineRunUpdate) ClearScheduledItemID() *RoutineRunUpdate {
	_u.mutation.ClearScheduledItemID()
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *RoutineRunUpdate) SetWorkItemID(v string) *RoutineRunUpdate {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *RoutineRunUpdate) SetNillableWorkItemID(v *string) *RoutineRunUpdate {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *RoutineRunUpdate) ClearWorkItemID() *RoutineRunUpdate {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetDispatchID sets the "dispatch_id" field.
func (_u *RoutineRunUpdate) SetDispatchID(v string) *RoutineRunUpdate {
	_u.mutation.SetDispatchID(v)
	return _u
}

// SetNillableDispatchID sets the "dispatch_id" field if the given value is not nil.
func (_u *RoutineRunUpdate) SetNillableDispatchID(v *string) *RoutineRunUpdate {
	if v != nil {
		_u.SetDispatchID(*v)
	}
	return _u
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (_u *RoutineRunUpdate) ClearDispatchID() *RoutineRunUpdate {
	_u.mutation.ClearDispatchID()
	return _u
}

// Mutation returns the RoutineRunMutation object of the builder.
func (_u *RoutineRunUpdate) Mutation() *RoutineRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutineRunUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := routinerun.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "RoutineRun.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *RoutineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routinerun.Table, routinerun.Columns, sqlgraph.NewFieldSpec(routinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoutineID(); ok {
		_spec.SetField(routinerun.FieldRoutineID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(routinerun.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionReason(); ok {
		_spec.SetField(routinerun.FieldDecisionReason, field.TypeString, value)
	}
	if _u.mutation.DecisionReasonCleared() {
		_spec.ClearField(routinerun.FieldDecisionReason, field.TypeString)
	}
	if value, ok := _u.mutation.Envelope(); ok {
		_spec.SetField(routinerun.FieldEnvelope, field.TypeJSON, value)
	}
	if _u.mutation.EnvelopeCleared() {
		_spec.ClearField(routinerun.FieldEnvelope, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledItemID(); ok {
		_spec.SetField(routinerun.FieldScheduledItemID, field.TypeString, value)
	}
	if _u.mutation.ScheduledItemIDCleared() {
		_spec.ClearField(routinerun.FieldScheduledItemID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(routinerun.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(routinerun.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.DispatchID(); ok {
		_spec.SetField(routinerun.FieldDispatchID, field.TypeString, value)
	}
	if _u.mutation.DispatchIDCleared() {
		_spec.ClearField(routinerun.FieldDispatchID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutineRunUpdateOne is the builder for updating a single RoutineRun entity.
type RoutineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutineRunMutation
}

// SetRoutineID sets the "routine_id" field.
func (_u *RoutineRunUpdateOne) SetRoutineID(v string) *RoutineRunUpdateOne {
	_u.mutation.SetRoutineID(v)
	return _u
}

// SetNillableRoutineID sets the "routine_id" field if the given value is not nil.
func (_u *RoutineRunUpdateOne) SetNillableRoutineID(v *string) *RoutineRunUpdateOne {
	if v != nil {
		_u.SetRoutineID(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *RoutineRunUpdateOne) SetDecision(v routinerun.Decision) *RoutineRunUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *RoutineRunUpdateOne) SetNillableDecision(v *routinerun.Decision) *RoutineRunUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecisionReason sets the "decision_reason" field.
func (_u *RoutineRunUpdateOne) SetDecisionReason(v string) *RoutineRunUpdateOne {
	_u.mutation.SetDecisionReason(v)
	return _u
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_u *RoutineRunUpdateOne) SetNillableDecisionReason(v *string) *RoutineRunUpdateOne {
	if v != nil {
		_u.SetDecisionReason(*v)
	}
	return _u
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (_u *RoutineRunUpdateOne) ClearDecisionReason() *RoutineRunUpdateOne {
	_u.mutation.ClearDecisionReason()
	return _u
}

// SetEnvelope sets the "envelope" field.
func (_u *RoutineRunUpdateOne) SetEnvelope(v map[string]interface{}) *RoutineRunUpdateOne {
	_u.mutation.SetEnvelope(v)
	return _u
}

// ClearEnvelope clears the value of the "envelope" field.
func (_u *RoutineRunUpdateOne) ClearEnvelope() *RoutineRunUpdateOne {
	_u.mutation.ClearEnvelope()
	return _u
}

// SetScheduledItemID sets the "scheduled_item_id" field.
func (_u *RoutineRunUpdateOne) SetScheduledItemID(v string) *RoutineRunUpdateOne {
	_u.mutation.SetScheduledItemID(v)
	return _u
}

// SetNillableScheduledItemID sets the "scheduled_item_id" field if the given value is not nil.
func (_u *RoutineRunUpdateOne) SetNillableScheduledItemID(v *string) *RoutineRunUpdateOne {
	if v != nil {
		_u.SetScheduledItemID(*v)
	}
	return _u
}

// ClearScheduledItemID clears the value of the "scheduled_item_id" field.
func (_u *RoutineRunUpdateOne) ClearScheduledItemID() *RoutineRunUpdateOne {
	_u.mutation.ClearScheduledItemID()
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *RoutineRunUpdateOne) SetWorkItemID(v string) *RoutineRunUpdateOne {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *RoutineRunUpdateOne) SetNillableWorkItemID(v *string) *RoutineRunUpdateOne {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *RoutineRunUpdateOne) ClearWorkItemID() *RoutineRunUpdateOne {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetDispatchID sets the "dispatch_id" field.
func (_u *RoutineRunUpdateOne) SetDispatchID(v string) *RoutineRunUpdateOne {
	_u.mutation.SetDispatchID(v)
	return _u
}

// SetNillableDispatchID sets the "dispatch_id" field if the given value is not nil.
func (_u *RoutineRunUpdateOne) SetNillableDispatchID(v *string) *RoutineRunUpdateOne {
	if v != nil {
		_u.SetDispatchID(*v)
	}
	return _u
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (_u *RoutineRunUpdateOne) ClearDispatchID() *RoutineRunUpdateOne {
	_u.mutation.ClearDispatchID()
	return _u
}

// Mutation returns the RoutineRunMutation object of the builder.
func (_u *RoutineRunUpdateOne) Mutation() *RoutineRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoutineRunUpdate builder.
func (_u *RoutineRunUpdateOne) Where(ps ...predicate.RoutineRun) *RoutineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutineRunUpdateOne) Select(field string, fields ...string) *RoutineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoutineRun entity.
func (_u *RoutineRunUpdateOne) Save(ctx context.Context) (*RoutineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutineRunUpdateOne) SaveX(ctx context.Context) *RoutineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := routinerun.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "RoutineRun.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *RoutineRunUpdateOne) sqlSave(ctx context.Context) (_node *RoutineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routinerun.Table, routinerun.Columns, sqlgraph.NewFieldSpec(routinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoutineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routinerun.FieldID)
		for _, f := range fields {
			if !routinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routinerun.FieldID {
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
	if value, ok := _u.mutation.RoutineID(); ok {
		_spec.SetField(routinerun.FieldRoutineID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(routinerun.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionReason(); ok {
		_spec.SetField(routinerun.FieldDecisionReason, field.TypeString, value)
	}
	if _u.mutation.DecisionReasonCleared() {
		_spec.ClearField(routinerun.FieldDecisionReason, field.TypeString)
	}
	if value, ok := _u.mutation.Envelope(); ok {
		_spec.SetField(routinerun.FieldEnvelope, field.TypeJSON, value)
	}
	if _u.mutation.EnvelopeCleared() {
		_spec.ClearField(routinerun.FieldEnvelope, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledItemID(); ok {
		_spec.SetField(routinerun.FieldScheduledItemID, field.TypeString, value)
	}
	if _u.mutation.ScheduledItemIDCleared() {
		_spec.ClearField(routinerun.FieldScheduledItemID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(routinerun.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(routinerun.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.DispatchID(); ok {
		_spec.SetField(routinerun.FieldDispatchID, field.TypeString, value)
	}
	if _u.mutation.DispatchIDCleared() {
		_spec.ClearField(routinerun.FieldDispatchID, field.TypeString)
	}
	_node = &RoutineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
