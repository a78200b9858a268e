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
	"github.com/hooklinehq/hookline/ent/plugininstance"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// PluginInstanceUpdate is the builder for updating PluginInstance entities.
type PluginInstanceUpdate struct {
	config
	hooks    []Hook
	mutation *PluginInstanceMutation
}

// Where appends a list predicates to the PluginInstanceUpdate builder.
func (_u *PluginInstanceUpdate) Where(ps ...predicate.PluginInstance) *PluginInstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *PluginInstanceUpdate) SetType(v string) *PluginInstanceUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PluginInstanceUpdate) SetNillableType(v *string) *PluginInstanceUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PluginInstanceUpdate) SetName(v string) *PluginInstanceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PluginInstanceUpdate) SetNillableName(v *string) *PluginInstanceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *PluginInstanceUpdate) SetConfig(v map[string]interface{}) *PluginInstanceUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *PluginInstanceUpdate) ClearConfig() *PluginInstanceUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PluginInstanceUpdate) SetEnabled(v bool) *PluginInstanceUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PluginInstanceUpdate) SetNillableEnabled(v *bool) *PluginInstanceUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PluginInstanceUpdate) SetUpdatedAt(v time.Time) *PluginInstanceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PluginInstanceMutation object of the builder.
func (_u *PluginInstanceUpdate) Mutation() *PluginInstanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PluginInstanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginInstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PluginInstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginInstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PluginInstanceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plugininstance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PluginInstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(plugininstance.Table, plugininstance.Columns, sqlgraph.NewFieldSpec(plugininstance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(plugininstance.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plugininstance.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(plugininstance.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(plugininstance.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(plugininstance.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plugininstance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plugininstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PluginInstanceUpdateOne is the builder for updating a single PluginInstance entity.
type PluginInstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PluginInstanceMutation
}

// SetType sets the "type" field.
func (_u *PluginInstanceUpdateOne) SetType(v string) *PluginInstanceUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PluginInstanceUpdateOne) SetNillableType(v *string) *PluginInstanceUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PluginInstanceUpdateOne) SetName(v string) *PluginInstanceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PluginInstanceUpdateOne) SetNillableName(v *string) *PluginInstanceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *PluginInstanceUpdateOne) SetConfig(v map[string]interface{}) *PluginInstanceUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *PluginInstanceUpdateOne) ClearConfig() *PluginInstanceUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PluginInstanceUpdateOne) SetEnabled(v bool) *PluginInstanceUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PluginInstanceUpdateOne) SetNillableEnabled(v *bool) *PluginInstanceUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PluginInstanceUpdateOne) SetUpdatedAt(v time.Time) *PluginInstanceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PluginInstanceMutation object of the builder.
func (_u *PluginInstanceUpdateOne) Mutation() *PluginInstanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the PluginInstanceUpdate builder.
func (_u *PluginInstanceUpdateOne) Where(ps ...predicate.PluginInstance) *PluginInstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PluginInstanceUpdateOne) Select(field string, fields ...string) *PluginInstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PluginInstance entity.
func (_u *PluginInstanceUpdateOne) Save(ctx context.Context) (*PluginInstance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginInstanceUpdateOne) SaveX(ctx context.Context) *PluginInstance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PluginInstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginInstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PluginInstanceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plugininstance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PluginInstanceUpdateOne) sqlSave(ctx context.Context) (_node *PluginInstance, err error) {
	_spec := sqlgraph.NewUpdateSpec(plugininstance.Table, plugininstance.Columns, sqlgraph.NewFieldSpec(plugininstance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PluginInstance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plugininstance.FieldID)
		for _, f := range fields {
			if !plugininstance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plugininstance.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(plugininstance.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plugininstance.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(plugininstance.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(plugininstance.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(plugininstance.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plugininstance.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PluginInstance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plugininstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
