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
	"github.com/hooklinehq/hookline/ent/scheduleditem"
)

// ScheduledItemUpdate is the builder for updating ScheduledItem entities.
type ScheduledItemUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledItemMutation
}

// Where appends a list predicates to the ScheduledItemUpdate builder.
func (_u *ScheduledItemUpdate) Where(ps ...predicate.ScheduledItem) *ScheduledItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ScheduledItemUpdate) SetAgentID(v string) *ScheduledItemUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ScheduledItemUpdate) SetNillableAgentID(v *string) *ScheduledItemUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *ScheduledItemUpdate) SetSessionKey(v string) *ScheduledItemUpdate {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *ScheduledItemUpdate) SetNillableSessionKey(v *string) *ScheduledItemUpdate {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// ClearSessionKey clears the value of the "session_key" field.
func (_u *ScheduledItemUpdate) ClearSessionKey() *ScheduledItemUpdate {
	_u.mutation.ClearSessionKey()
	return _u
}

// SetType sets the "type" field.
func (_u *ScheduledItemUpdate) SetType(v scheduleditem.Type) *ScheduledItemUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ScheduledItemUpdate) SetNillableType(v *scheduleditem.Type) *ScheduledItemUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ScheduledItemUpdate) SetPayload(v map[string]interface{}) *ScheduledItemUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ScheduledItemUpdate) ClearPayload() *ScheduledItemUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *ScheduledItemUpdate) SetRunAt(v time.Time) *ScheduledItemUpdate {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *ScheduledItemUpdate) SetNillableRunAt(v *time.Time) *ScheduledItemUpdate {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *ScheduledItemUpdate) SetRecurrence(v string) *ScheduledItemUpdate {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *ScheduledItemUpdate) SetNillableRecurrence(v *string) *ScheduledItemUpdate {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *ScheduledItemUpdate) ClearRecurrence() *ScheduledItemUpdate {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledItemUpdate) SetStatus(v scheduleditem.Status) *ScheduledItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledItemUpdate) SetNillableStatus(v *scheduleditem.Status) *ScheduledItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRoutineID sets the "routine_id" field.
func (_u *ScheduledItemUpdate) SetRoutineID(v string) *ScheduledItemUpdate {
	_u.mutation.SetRoutineID(v)
	return _u
}

// SetNillableRoutineID sets the "routine_id" field if the given value is not nil.
func (_u *ScheduledItemUpdate) SetNillableRoutineID(v *string) *ScheduledItemUpdate {
	if v != nil {
		_u.SetRoutineID(*v)
	}
	return _u
}

// ClearRoutineID clears the value of the "routine_id" field.
func (_u *ScheduledItemUpdate) ClearRoutineID() *ScheduledItemUpdate {
	_u.mutation.ClearRoutineID()
	return _u
}

// SetRoutineRunID sets the "routine_run_id" field.
func (_u *ScheduledItemUpdate) SetRoutineRunID(v string) *ScheduledItemUpdate {
	_u.mutation.SetRoutineRunID(v)
	return _u
}

// SetNillableRoutineRunID sets the "routine_run_id" field if the given value is not nil.
func (_u *ScheduledItemUpdate) SetNillableRoutineRunID(v *string) *ScheduledItemUpdate {
	if v != nil {
		_u.SetRoutineRunID(*v)
	}
	return _u
}

// ClearRoutineRunID clears the value of the "routine_run_id" field.
func (_u *ScheduledItemUpdate) ClearRoutineRunID() *ScheduledItemUpdate {
	_u.mutation.ClearRoutineRunID()
	return _u
}

// Mutation returns the ScheduledItemMutation object of the builder.
func (_u *ScheduledItemUpdate) Mutation() *ScheduledItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledItemUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := scheduleditem.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ScheduledItem.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduleditem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleditem.Table, scheduleditem.Columns, sqlgraph.NewFieldSpec(scheduleditem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(scheduleditem.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(scheduleditem.FieldSessionKey, field.TypeString, value)
	}
	if _u.mutation.SessionKeyCleared() {
		_spec.ClearField(scheduleditem.FieldSessionKey, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(scheduleditem.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(scheduleditem.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(scheduleditem.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(scheduleditem.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(scheduleditem.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(scheduleditem.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduleditem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RoutineID(); ok {
		_spec.SetField(scheduleditem.FieldRoutineID, field.TypeString, value)
	}
	if _u.mutation.RoutineIDCleared() {
		_spec.ClearField(scheduleditem.FieldRoutineID, field.TypeString)
	}
	if value, ok := _u.mutation.RoutineRunID(); ok {
		_spec.SetField(scheduleditem.FieldRoutineRunID, field.TypeString, value)
	}
	if _u.mutation.RoutineRunIDCleared() {
		_spec.ClearField(scheduleditem.FieldRoutineRunID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledItemUpdateOne is the builder for updating a single ScheduledItem entity.
type ScheduledItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledItemMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *ScheduledItemUpdateOne) SetAgentID(v string) *ScheduledItemUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ScheduledItemUpdateOne) SetNillableAgentID(v *string) *ScheduledItemUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *ScheduledItemUpdateOne) SetSessionKey(v string) *ScheduledItemUpdateOne {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *ScheduledItemUpdateOne) SetNillableSessionKey(v *string) *ScheduledItemUpdateOne {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// ClearSessionKey clears the value of the "session_key" field.
func (_u *ScheduledItemUpdateOne) ClearSessionKey() *ScheduledItemUpdateOne {
	_u.mutation.ClearSessionKey()
	return _u
}

// SetType sets the "type" field.
func (_u *ScheduledItemUpdateOne) SetType(v scheduleditem.Type) *ScheduledItemUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ScheduledItemUpdateOne) SetNillableType(v *scheduleditem.Type) *ScheduledItemUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ScheduledItemUpdateOne) SetPayload(v map[string]interface{}) *ScheduledItemUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ScheduledItemUpdateOne) ClearPayload() *ScheduledItemUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *ScheduledItemUpdateOne) SetRunAt(v time.Time) *ScheduledItemUpdateOne {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *ScheduledItemUpdateOne) SetNillableRunAt(v *time.Time) *ScheduledItemUpdateOne {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *ScheduledItemUpdateOne) SetRecurrence(v string) *ScheduledItemUpdateOne {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *ScheduledItemUpdateOne) SetNillableRecurrence(v *string) *ScheduledItemUpdateOne {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *ScheduledItemUpdateOne) ClearRecurrence() *ScheduledItemUpdateOne {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledItemUpdateOne) SetStatus(v scheduleditem.Status) *ScheduledItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledItemUpdateOne) SetNillableStatus(v *scheduleditem.Status) *ScheduledItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRoutineID sets the "routine_id" field.
func (_u *ScheduledItemUpdateOne) SetRoutineID(v string) *ScheduledItemUpdateOne {
	_u.mutation.SetRoutineID(v)
	return _u
}

// SetNillableRoutineID sets the "routine_id" field if the given value is not nil.
func (_u *ScheduledItemUpdateOne) SetNillableRoutineID(v *string) *ScheduledItemUpdateOne {
	if v != nil {
		_u.SetRoutineID(*v)
	}
	return _u
}

// ClearRoutineID clears the value of the "routine_id" field.
func (_u *ScheduledItemUpdateOne) ClearRoutineID() *ScheduledItemUpdateOne {
	_u.mutation.ClearRoutineID()
	return _u
}

// SetRoutineRunID sets the "routine_run_id" field.
func (_u *ScheduledItemUpdateOne) SetRoutineRunID(v string) *ScheduledItemUpdateOne {
	_u.mutation.SetRoutineRunID(v)
	return _u
}

// SetNillableRoutineRunID sets the "routine_run_id" field if the given value is not nil.
func (_u *ScheduledItemUpdateOne) SetNillableRoutineRunID(v *string) *ScheduledItemUpdateOne {
	if v != nil {
		_u.SetRoutineRunID(*v)
	}
	return _u
}

// ClearRoutineRunID clears the value of the "routine_run_id" field.
func (_u *ScheduledItemUpdateOne) ClearRoutineRunID() *ScheduledItemUpdateOne {
	_u.mutation.ClearRoutineRunID()
	return _u
}

// Mutation returns the ScheduledItemMutation object of the builder.
func (_u *ScheduledItemUpdateOne) Mutation() *ScheduledItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledItemUpdate builder.
func (_u *ScheduledItemUpdateOne) Where(ps ...predicate.ScheduledItem) *ScheduledItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledItemUpdateOne) Select(field string, fields ...string) *ScheduledItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledItem entity.
func (_u *ScheduledItemUpdateOne) Save(ctx context.Context) (*ScheduledItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledItemUpdateOne) SaveX(ctx context.Context) *ScheduledItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledItemUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := scheduleditem.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ScheduledItem.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduleditem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledItemUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleditem.Table, scheduleditem.Columns, sqlgraph.NewFieldSpec(scheduleditem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduleditem.FieldID)
		for _, f := range fields {
			if !scheduleditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduleditem.FieldID {
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
		_spec.SetField(scheduleditem.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(scheduleditem.FieldSessionKey, field.TypeString, value)
	}
	if _u.mutation.SessionKeyCleared() {
		_spec.ClearField(scheduleditem.FieldSessionKey, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(scheduleditem.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(scheduleditem.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(scheduleditem.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(scheduleditem.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(scheduleditem.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(scheduleditem.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduleditem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RoutineID(); ok {
		_spec.SetField(scheduleditem.FieldRoutineID, field.TypeString, value)
	}
	if _u.mutation.RoutineIDCleared() {
		_spec.ClearField(scheduleditem.FieldRoutineID, field.TypeString)
	}
	if value, ok := _u.mutation.RoutineRunID(); ok {
		_spec.SetField(scheduleditem.FieldRoutineRunID, field.TypeString, value)
	}
	if _u.mutation.RoutineRunIDCleared() {
		_spec.ClearField(scheduleditem.FieldRoutineRunID, field.TypeString)
	}
	_node = &ScheduledItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
