// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hooklinehq/hookline/ent/pluginevent"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// PluginEventUpdate is the builder for updating PluginEvent entities.
type PluginEventUpdate struct {
	config
	hooks    []Hook
	mutation *PluginEventMutation
}

// Where appends a list predicates to the PluginEventUpdate builder.
func (_u *PluginEventUpdate) Where(ps ...predicate.PluginEvent) *PluginEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPluginID sets the "plugin_id" field.
func (_u *PluginEventUpdate) SetPluginID(v string) *PluginEventUpdate {
	_u.mutation.SetPluginID(v)
	return _u
}

// SetNillablePluginID sets the "plugin_id" field if the given value is not nil.
func (_u *PluginEventUpdate) SetNillablePluginID(v *string) *PluginEventUpdate {
	if v != nil {
		_u.SetPluginID(*v)
	}
	return _u
}

// SetPluginVersion sets the "plugin_version" field.
func (_u *PluginEventUpdate) SetPluginVersion(v string) *PluginEventUpdate {
	_u.mutation.SetPluginVersion(v)
	return _u
}

// SetNillablePluginVersion sets the "plugin_version" field if the given value is not nil.
func (_u *PluginEventUpdate) SetNillablePluginVersion(v *string) *PluginEventUpdate {
	if v != nil {
		_u.SetPluginVersion(*v)
	}
	return _u
}

// ClearPluginVersion clears the value of the "plugin_version" field.
func (_u *PluginEventUpdate) ClearPluginVersion() *PluginEventUpdate {
	_u.mutation.ClearPluginVersion()
	return _u
}

// SetKind sets the "kind" field.
func (_u *PluginEventUpdate) SetKind(v pluginevent.Kind) *PluginEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PluginEventUpdate) SetNillableKind(v *pluginevent.Kind) *PluginEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PluginEventUpdate) SetStatus(v string) *PluginEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PluginEventUpdate) SetNillableStatus(v *string) *PluginEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *PluginEventUpdate) SetWorkItemID(v string) *PluginEventUpdate {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *PluginEventUpdate) SetNillableWorkItemID(v *string) *PluginEventUpdate {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *PluginEventUpdate) ClearWorkItemID() *PluginEventUpdate {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *PluginEventUpdate) SetDetail(v map[string]interface{}) *PluginEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *PluginEventUpdate) ClearDetail() *PluginEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the PluginEventMutation object of the builder.
func (_u *PluginEventUpdate) Mutation() *PluginEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PluginEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PluginEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PluginEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := pluginevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PluginEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PluginEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pluginevent.Table, pluginevent.Columns, sqlgraph.NewFieldSpec(pluginevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PluginID(); ok {
		_spec.SetField(pluginevent.FieldPluginID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PluginVersion(); ok {
		_spec.SetField(pluginevent.FieldPluginVersion, field.TypeString, value)
	}
	if _u.mutation.PluginVersionCleared() {
		_spec.ClearField(pluginevent.FieldPluginVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(pluginevent.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pluginevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(pluginevent.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(pluginevent.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(pluginevent.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(pluginevent.FieldDetail, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pluginevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PluginEventUpdateOne is the builder for updating a single PluginEvent entity.
type PluginEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PluginEventMutation
}

// SetPluginID sets the "plugin_id" field.
func (_u *PluginEventUpdateOne) SetPluginID(v string) *PluginEventUpdateOne {
	_u.mutation.SetPluginID(v)
	return _u
}

// SetNillablePluginID sets the "plugin_id" field if the given value is not nil.
func (_u *PluginEventUpdateOne) SetNillablePluginID(v *string) *PluginEventUpdateOne {
	if v != nil {
		_u.SetPluginID(*v)
	}
	return _u
}

// SetPluginVersion sets the "plugin_version" field.
func (_u *PluginEventUpdateOne) SetPluginVersion(v string) *PluginEventUpdateOne {
	_u.mutation.SetPluginVersion(v)
	return _u
}

// SetNillablePluginVersion sets the "plugin_version" field if the given value is not nil.
func (_u *PluginEventUpdateOne) SetNillablePluginVersion(v *string) *PluginEventUpdateOne {
	if v != nil {
		_u.SetPluginVersion(*v)
	}
	return _u
}

// ClearPluginVersion clears the value of the "plugin_version" field.
func (_u *PluginEventUpdateOne) ClearPluginVersion() *PluginEventUpdateOne {
	_u.mutation.ClearPluginVersion()
	return _u
}

// SetKind sets the "kind" field.
func (_u *PluginEventUpdateOne) SetKind(v pluginevent.Kind) *PluginEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PluginEventUpdateOne) SetNillableKind(v *pluginevent.Kind) *PluginEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PluginEventUpdateOne) SetStatus(v string) *PluginEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PluginEventUpdateOne) SetNillableStatus(v *string) *PluginEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWorkItemID sets the "work_item_id" field.
func (_u *PluginEventUpdateOne) SetWorkItemID(v string) *PluginEventUpdateOne {
	_u.mutation.SetWorkItemID(v)
	return _u
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_u *PluginEventUpdateOne) SetNillableWorkItemID(v *string) *PluginEventUpdateOne {
	if v != nil {
		_u.SetWorkItemID(*v)
	}
	return _u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (_u *PluginEventUpdateOne) ClearWorkItemID() *PluginEventUpdateOne {
	_u.mutation.ClearWorkItemID()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *PluginEventUpdateOne) SetDetail(v map[string]interface{}) *PluginEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *PluginEventUpdateOne) ClearDetail() *PluginEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the PluginEventMutation object of the builder.
func (_u *PluginEventUpdateOne) Mutation() *PluginEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PluginEventUpdate builder.
func (_u *PluginEventUpdateOne) Where(ps ...predicate.PluginEvent) *PluginEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PluginEventUpdateOne) Select(field string, fields ...string) *PluginEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PluginEvent entity.
func (_u *PluginEventUpdateOne) Save(ctx context.Context) (*PluginEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginEventUpdateOne) SaveX(ctx context.Context) *PluginEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PluginEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PluginEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := pluginevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PluginEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PluginEventUpdateOne) sqlSave(ctx context.Context) (_node *PluginEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pluginevent.Table, pluginevent.Columns, sqlgraph.NewFieldSpec(pluginevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PluginEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pluginevent.FieldID)
		for _, f := range fields {
			if !pluginevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pluginevent.FieldID {
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
	if value, ok := _u.mutation.PluginID(); ok {
		_spec.SetField(pluginevent.FieldPluginID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PluginVersion(); ok {
		_spec.SetField(pluginevent.FieldPluginVersion, field.TypeString, value)
	}
	if _u.mutation.PluginVersionCleared() {
		_spec.ClearField(pluginevent.FieldPluginVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(pluginevent.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pluginevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkItemID(); ok {
		_spec.SetField(pluginevent.FieldWorkItemID, field.TypeString, value)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(pluginevent.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(pluginevent.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(pluginevent.FieldDetail, field.TypeJSON)
	}
	_node = &PluginEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pluginevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
