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
	"github.com/hooklinehq/hookline/ent/queuemessage"
)

// QueueMessageUpdate is the builder for updating QueueMessage entities.
type QueueMessageUpdate struct {
	config
	hooks    []Hook
	mutation *QueueMessageMutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdate) Where(ps ...predicate.QueueMessage) *QueueMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQueueKey sets the "queue_key" field.
func (_u *QueueMessageUpdate) SetQueueKey(v string) *QueueMessageUpdate {
	_u.mutation.SetQueueKey(v)
	return _u
}

// SetNillableQueueKey sets the "queue_key" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableQueueKey(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetQueueKey(*v)
	}
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *QueueMessageUpdate) SetWorkItemID(v string) *QueueMessageUpdate {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableWorkItemID(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *QueueMessageUpdate) ClearWorkItemID() *QueueMessageUpdate {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetText sets the "text" field.
func (_u *QueueMessageUpdate) SetText(v string) *QueueMessageUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableText(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSenderName sets the "sender_name" field.
func (_u *QueueMessageUpdate) SetSenderName(v string) *QueueMessageUpdate {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableSenderName(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// ClearSenderName clears the value of the "sender_name" field.
func (_u *QueueMessageUpdate) ClearSenderName() *QueueMessageUpdate {
	_u.mutation.ClearSenderName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueMessageUpdate) SetStatus(v queuemessage.Status) *QueueMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableStatus(v *queuemessage.Status) *QueueMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDispatchID sets the "dispatch_id" field.
func (_u *QueueMessageUpdate) SetDispatchID(v string) *QueueMessageUpdate {
	_u.mutation.SetDispatchID(v)
	return _u
}

// SetNillableDispatchID sets the "dispatch_id" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableDispatchID(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetDispatchID(*v)
	}
	return _u
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (_u *QueueMessageUpdate) ClearDispatchID() *QueueMessageUpdate {
	_u.mutation.ClearDispatchID()
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdate) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueMessageUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QueueKey(); ok {
		_spec.SetField(queuemessage.FieldQueueKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(queuemessage.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(queuemessage.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(queuemessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(queuemessage.FieldSenderName, field.TypeString, value)
	}
	if _u.mutation.SenderNameCleared() {
		_spec.ClearField(queuemessage.FieldSenderName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DispatchID(); ok {
		_spec.SetField(queuemessage.FieldDispatchID, field.TypeString, value)
	}
	if _u.mutation.DispatchIDCleared() {
		_spec.ClearField(queuemessage.FieldDispatchID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueMessageUpdateOne is the builder for updating a single QueueMessage entity.
type QueueMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueMessageMutation
}

// SetQueueKey sets the "queue_key" field.
func (_u *QueueMessageUpdateOne) SetQueueKey(v string) *QueueMessageUpdateOne {
	_u.mutation.SetQueueKey(v)
	return _u
}

// SetNillableQueueKey sets the "queue_key" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableQueueKey(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetQueueKey(*v)
	}
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *QueueMessageUpdateOne) SetWorkItemID(v string) *QueueMessageUpdateOne {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableWorkItemID(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *QueueMessageUpdateOne) ClearWorkItemID() *QueueMessageUpdateOne {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetText sets the "text" field.
func (_u *QueueMessageUpdateOne) SetText(v string) *QueueMessageUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableText(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSenderName sets the "sender_name" field.
func (_u *QueueMessageUpdateOne) SetSenderName(v string) *QueueMessageUpdateOne {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableSenderName(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// ClearSenderName clears the value of the "sender_name" field.
func (_u *QueueMessageUpdateOne) ClearSenderName() *QueueMessageUpdateOne {
	_u.mutation.ClearSenderName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueMessageUpdateOne) SetStatus(v queuemessage.Status) *QueueMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableStatus(v *queuemessage.Status) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDispatchID sets the "dispatch_id" field.
func (_u *QueueMessageUpdateOne) SetDispatchID(v string) *QueueMessageUpdateOne {
	_u.mutation.SetDispatchID(v)
	return _u
}

// SetNillableDispatchID sets the "dispatch_id" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableDispatchID(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetDispatchID(*v)
	}
	return _u
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (_u *QueueMessageUpdateOne) ClearDispatchID() *QueueMessageUpdateOne {
	_u.mutation.ClearDispatchID()
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdateOne) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdateOne) Where(ps ...predicate.QueueMessage) *QueueMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueMessageUpdateOne) Select(field string, fields ...string) *QueueMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueMessage entity.
func (_u *QueueMessageUpdateOne) Save(ctx context.Context) (*QueueMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) SaveX(ctx context.Context) *QueueMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueMessageUpdateOne) sqlSave(ctx context.Context) (_node *QueueMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuemessage.FieldID)
		for _, f := range fields {
			if !queuemessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuemessage.FieldID {
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
	if value, ok := _u.mutation.QueueKey(); ok {
		_spec.SetField(queuemessage.FieldQueueKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(queuemessage.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(queuemessage.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(queuemessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(queuemessage.FieldSenderName, field.TypeString, value)
	}
	if _u.mutation.SenderNameCleared() {
		_spec.ClearField(queuemessage.FieldSenderName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DispatchID(); ok {
		_spec.SetField(queuemessage.FieldDispatchID, field.TypeString, value)
	}
	if _u.mutation.DispatchIDCleared() {
		_spec.ClearField(queuemessage.FieldDispatchID, field.TypeString)
	}
	_node = &QueueMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
