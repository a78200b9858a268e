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
	"github.com/hooklinehq/hookline/ent/workitem"
)

// WorkItemUpdate is the builder for updating WorkItem entities.
type WorkItemUpdate struct {
	config
	hooks    []Hook
	mutation *WorkItemMutation
}

// Where appends a list predicates to the WorkItemUpdate builder.
func (_u *WorkItemUpdate) Where(ps ...predicate.WorkItem) *WorkItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (_u *WorkItemUpdate) SetPluginInstanceID(v string) *WorkItemUpdate {
	_u.mutation.SetPluginInstanceID(v)
	return _u
}

// SetNillablePluginInstanceID sets the "plugin_instance_id" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillablePluginInstanceID(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetPluginInstanceID(*v)
	}
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *WorkItemUpdate) SetSessionKey(v string) *WorkItemUpdate {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableSessionKey(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// ClearSessionKey clears the value of the "session_key" field.
func (_u *WorkItemUpdate) ClearSessionKey() *WorkItemUpdate {
	_u.mutation.ClearSessionKey()
	return _u
}

// SetSource sets the "source" field.
func (_u *WorkItemUpdate) SetSource(v string) *WorkItemUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableSource(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceRef sets the "source_ref" field.
func (_u *WorkItemUpdate) SetSourceRef(v string) *WorkItemUpdate {
	_u.mutation.SetSourceRef(v)
	return _u
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableSourceRef(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetSourceRef(*v)
	}
	return _u
}

// ClearSourceRef clears the value of the "source_ref" field.
func (_u *WorkItemUpdate) ClearSourceRef() *WorkItemUpdate {
	_u.mutation.ClearSourceRef()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkItemUpdate) SetStatus(v workitem.Status) *WorkItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableStatus(v *workitem.Status) *WorkItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorkItemUpdate) SetTitle(v string) *WorkItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableTitle(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *WorkItemUpdate) ClearTitle() *WorkItemUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WorkItemUpdate) SetPayload(v map[string]interface{}) *WorkItemUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WorkItemUpdate) ClearPayload() *WorkItemUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkItemUpdate) SetUpdatedAt(v time.Time) *WorkItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkItemMutation object of the builder.
func (_u *WorkItemUpdate) Mutation() *WorkItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitem.Table, workitem.Columns, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PluginInstanceID(); ok {
		_spec.SetField(workitem.FieldPluginInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(workitem.FieldSessionKey, field.TypeString, value)
	}
	if _u.mutation.SessionKeyCleared() {
		_spec.ClearField(workitem.FieldSessionKey, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(workitem.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceRef(); ok {
		_spec.SetField(workitem.FieldSourceRef, field.TypeString, value)
	}
	if _u.mutation.SourceRefCleared() {
		_spec.ClearField(workitem.FieldSourceRef, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(workitem.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(workitem.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(workitem.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(workitem.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkItemUpdateOne is the builder for updating a single WorkItem entity.
type WorkItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkItemMutation
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (_u *WorkItemUpdateOne) SetPluginInstanceID(v string) *WorkItemUpdateOne {
	_u.mutation.SetPluginInstanceID(v)
	return _u
}

// SetNillablePluginInstanceID sets the "plugin_instance_id" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillablePluginInstanceID(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetPluginInstanceID(*v)
	}
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *WorkItemUpdateOne) SetSessionKey(v string) *WorkItemUpdateOne {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableSessionKey(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// ClearSessionKey clears the value of the "session_key" field.
func (_u *WorkItemUpdateOne) ClearSessionKey() *WorkItemUpdateOne {
	_u.mutation.ClearSessionKey()
	return _u
}

// SetSource sets the "source" field.
func (_u *WorkItemUpdateOne) SetSource(v string) *WorkItemUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableSource(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceRef sets the "source_ref" field.
func (_u *WorkItemUpdateOne) SetSourceRef(v string) *WorkItemUpdateOne {
	_u.mutation.SetSourceRef(v)
	return _u
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableSourceRef(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetSourceRef(*v)
	}
	return _u
}

// ClearSourceRef clears the value of the "source_ref" field.
func (_u *WorkItemUpdateOne) ClearSourceRef() *WorkItemUpdateOne {
	_u.mutation.ClearSourceRef()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkItemUpdateOne) SetStatus(v workitem.Status) *WorkItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableStatus(v *workitem.Status) *WorkItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorkItemUpdateOne) SetTitle(v string) *WorkItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableTitle(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *WorkItemUpdateOne) ClearTitle() *WorkItemUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WorkItemUpdateOne) SetPayload(v map[string]interface{}) *WorkItemUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WorkItemUpdateOne) ClearPayload() *WorkItemUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkItemUpdateOne) SetUpdatedAt(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkItemMutation object of the builder.
func (_u *WorkItemUpdateOne) Mutation() *WorkItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkItemUpdate builder.
func (_u *WorkItemUpdateOne) Where(ps ...predicate.WorkItem) *WorkItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkItemUpdateOne) Select(field string, fields ...string) *WorkItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkItem entity.
func (_u *WorkItemUpdateOne) Save(ctx context.Context) (*WorkItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemUpdateOne) SaveX(ctx context.Context) *WorkItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkItemUpdateOne) sqlSave(ctx context.Context) (_node *WorkItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitem.Table, workitem.Columns, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workitem.FieldID)
		for _, f := range fields {
			if !workitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workitem.FieldID {
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
	if value, ok := _u.mutation.PluginInstanceID(); ok {
		_spec.SetField(workitem.FieldPluginInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(workitem.FieldSessionKey, field.TypeString, value)
	}
	if _u.mutation.SessionKeyCleared() {
		_spec.ClearField(workitem.FieldSessionKey, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(workitem.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceRef(); ok {
		_spec.SetField(workitem.FieldSourceRef, field.TypeString, value)
	}
	if _u.mutation.SourceRefCleared() {
		_spec.ClearField(workitem.FieldSourceRef, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(workitem.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(workitem.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(workitem.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(workitem.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
