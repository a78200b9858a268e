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
	"github.com/hooklinehq/hookline/ent/routineevent"
)

// RoutineEventUpdate is the builder for updating RoutineEvent entities.
type RoutineEventUpdate struct {
	config
	hooks    []Hook
	mutation *RoutineEventMutation
}

// Where appends a list predicates to the RoutineEventUpdate builder.
func (_u *RoutineEventUpdate) Where(ps ...predicate.RoutineEvent) *RoutineEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *RoutineEventUpdate) SetWorkItemID(v string) *RoutineEventUpdate {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *RoutineEventUpdate) SetNillableWorkItemID(v *string) *RoutineEventUpdate {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *RoutineEventUpdate) ClearWorkItemID() *RoutineEventUpdate {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetEnvelope sets the "envelope" field.
func (_u *RoutineEventUpdate) SetEnvelope(v map[string]interface{}) *RoutineEventUpdate {
	_u.mutation.SetEnvelope(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoutineEventUpdate) SetStatus(v routineevent.Status) *RoutineEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoutineEventUpdate) SetNillableStatus(v *routineevent.Status) *RoutineEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *RoutineEventUpdate) SetClaimedBy(v string) *RoutineEventUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *RoutineEventUpdate) SetNillableClaimedBy(v *string) *RoutineEventUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *RoutineEventUpdate) ClearClaimedBy() *RoutineEventUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *RoutineEventUpdate) SetLeaseExpiresAt(v time.Time) *RoutineEventUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *RoutineEventUpdate) SetNillableLeaseExpiresAt(v *time.Time) *RoutineEventUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *RoutineEventUpdate) ClearLeaseExpiresAt() *RoutineEventUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *RoutineEventUpdate) SetAttemptCount(v int) *RoutineEventUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *RoutineEventUpdate) SetNillableAttemptCount(v *int) *RoutineEventUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *RoutineEventUpdate) AddAttemptCount(v int) *RoutineEventUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// Mutation returns the RoutineEventMutation object of the builder.
func (_u *RoutineEventUpdate) Mutation() *RoutineEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutineEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutineEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutineEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutineEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutineEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := routineevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RoutineEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RoutineEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routineevent.Table, routineevent.Columns, sqlgraph.NewFieldSpec(routineevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(routineevent.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(routineevent.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Envelope(); ok {
		_spec.SetField(routineevent.FieldEnvelope, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(routineevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(routineevent.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(routineevent.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(routineevent.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(routineevent.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(routineevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(routineevent.FieldAttemptCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routineevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutineEventUpdateOne is the builder for updating a single RoutineEvent entity.
type RoutineEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutineEventMutation
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *RoutineEventUpdateOne) SetWorkItemID(v string) *RoutineEventUpdateOne {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *RoutineEventUpdateOne) SetNillableWorkItemID(v *string) *RoutineEventUpdateOne {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *RoutineEventUpdateOne) ClearWorkItemID() *RoutineEventUpdateOne {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetEnvelope sets the "envelope" field.
func (_u *RoutineEventUpdateOne) SetEnvelope(v map[string]interface{}) *RoutineEventUpdateOne {
	_u.mutation.SetEnvelope(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoutineEventUpdateOne) SetStatus(v routineevent.Status) *RoutineEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoutineEventUpdateOne) SetNillableStatus(v *routineevent.Status) *RoutineEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *RoutineEventUpdateOne) SetClaimedBy(v string) *RoutineEventUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *RoutineEventUpdateOne) SetNillableClaimedBy(v *string) *RoutineEventUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *RoutineEventUpdateOne) ClearClaimedBy() *RoutineEventUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *RoutineEventUpdateOne) SetLeaseExpiresAt(v time.Time) *RoutineEventUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *RoutineEventUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *RoutineEventUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *RoutineEventUpdateOne) ClearLeaseExpiresAt() *RoutineEventUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *RoutineEventUpdateOne) SetAttemptCount(v int) *RoutineEventUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *RoutineEventUpdateOne) SetNillableAttemptCount(v *int) *RoutineEventUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *RoutineEventUpdateOne) AddAttemptCount(v int) *RoutineEventUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// Mutation returns the RoutineEventMutation object of the builder.
func (_u *RoutineEventUpdateOne) Mutation() *RoutineEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoutineEventUpdate builder.
func (_u *RoutineEventUpdateOne) Where(ps ...predicate.RoutineEvent) *RoutineEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutineEventUpdateOne) Select(field string, fields ...string) *RoutineEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoutineEvent entity.
func (_u *RoutineEventUpdateOne) Save(ctx context.Context) (*RoutineEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutineEventUpdateOne) SaveX(ctx context.Context) *RoutineEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutineEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutineEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutineEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := routineevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RoutineEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RoutineEventUpdateOne) sqlSave(ctx context.Context) (_node *RoutineEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routineevent.Table, routineevent.Columns, sqlgraph.NewFieldSpec(routineevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoutineEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routineevent.FieldID)
		for _, f := range fields {
			if !routineevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routineevent.FieldID {
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
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(routineevent.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(routineevent.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Envelope(); ok {
		_spec.SetField(routineevent.FieldEnvelope, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(routineevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(routineevent.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(routineevent.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(routineevent.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(routineevent.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(routineevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(routineevent.FieldAttemptCount, field.TypeInt, value)
	}
	_node = &RoutineEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routineevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
