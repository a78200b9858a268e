// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hooklinehq/hookline/ent/pluginevent"
)

// PluginEventCreate is the builder for creating a PluginEvent entity.
type PluginEventCreate struct {
	config
	mutation *PluginEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPluginID sets the "plugin_id" field.
func (_c *PluginEventCreate) SetPluginID(v string) *PluginEventCreate {
	_c.mutation.SetPluginID(v)
	return _c
}

// SetPluginVersion sets the "plugin_version" field.
func (_c *PluginEventCreate) SetPluginVersion(v string) *PluginEventCreate {
	_c.mutation.SetPluginVersion(v)
	return _c
}

// SetNillablePluginVersion sets the "plugin_version" field if the given value is not nil.
func (_c *PluginEventCreate) SetNillablePluginVersion(v *string) *PluginEventCreate {
	if v != nil {
		_c.SetPluginVersion(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *PluginEventCreate) SetKind(v pluginevent.Kind) *PluginEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PluginEventCreate) SetStatus(v string) *PluginEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetWorkItemID sets the "work_item_id" field.
func (_c *PluginEventCreate) SetWorkItemID(v string) *PluginEventCreate {
	_c.mutation.SetWorkItemID(v)
	return _c
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_c *PluginEventCreate) SetNillableWorkItemID(v *string) *PluginEventCreate {
	if v != nil {
		_c.SetWorkItemID(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *PluginEventCreate) SetDetail(v map[string]interface{}) *PluginEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PluginEventCreate) SetCreatedAt(v time.Time) *PluginEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PluginEventCreate) SetNillableCreatedAt(v *time.Time) *PluginEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PluginEventCreate) SetID(v string) *PluginEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PluginEventMutation object of the builder.
func (_c *PluginEventCreate) Mutation() *PluginEventMutation {
	return _c.mutation
}

// Save creates the PluginEvent in the database.
func (_c *PluginEventCreate) Save(ctx context.Context) (*PluginEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PluginEventCreate) SaveX(ctx context.Context) *PluginEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PluginEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pluginevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PluginEventCreate) check() error {
	if _, ok := _c.mutation.PluginID(); !ok {
		return &ValidationError{Name: "plugin_id", err: errors.New(`ent: missing required field "PluginEvent.plugin_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PluginEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := pluginevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PluginEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PluginEvent.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PluginEvent.created_at"`)}
	}
	return nil
}

func (_c *PluginEventCreate) sqlSave(ctx context.Context) (*PluginEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PluginEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PluginEventCreate) createSpec() (*PluginEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PluginEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pluginevent.Table, sqlgraph.NewFieldSpec(pluginevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PluginID(); ok {
		_spec.SetField(pluginevent.FieldPluginID, field.TypeString, value)
		_node.PluginID = value
	}
	if value, ok := _c.mutation.PluginVersion(); ok {
		_spec.SetField(pluginevent.FieldPluginVersion, field.TypeString, value)
		_node.PluginVersion = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(pluginevent.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pluginevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.WorkItemID(); ok {
		_spec.SetField(pluginevent.FieldWorkItemID, field.TypeString, value)
		_node.WorkItemID = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(pluginevent.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pluginevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PluginEvent.Create().
//		SetPluginID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PluginEventUpsert) {
//			SetPluginID(v+v).
//		}).
//		Exec(ctx)
func (_c *PluginEventCreate) OnConflict(opts ...sql.ConflictOption) *PluginEventUpsertOne {
	_c.conflict = opts
	return &PluginEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PluginEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PluginEventCreate) OnConflictColumns(columns ...string) *PluginEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PluginEventUpsertOne{
		create: _c,
	}
}

type (
	// PluginEventUpsertOne is the builder for "upsert"-ing
	//  one PluginEvent node.
	PluginEventUpsertOne struct {
		create *PluginEventCreate
	}

	// PluginEventUpsert is the "OnConflict" setter.
	PluginEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetPluginID sets the "plugin_id" field.
func (u *PluginEventUpsert) SetPluginID(v string) *PluginEventUpsert {
	u.Set(pluginevent.FieldPluginID, v)
	return u
}

// UpdatePluginID sets the "plugin_id" field to the value that was provided on create.
func (u *PluginEventUpsert) UpdatePluginID() *PluginEventUpsert {
	u.SetExcluded(pluginevent.FieldPluginID)
	return u
}

// SetPluginVersion sets the "plugin_version" field.
func (u *PluginEventUpsert) SetPluginVersion(v string) *PluginEventUpsert {
	u.Set(pluginevent.FieldPluginVersion, v)
	return u
}

// UpdatePluginVersion sets the "plugin_version" field to the value that was provided on create.
func (u *PluginEventUpsert) UpdatePluginVersion() *PluginEventUpsert {
	u.SetExcluded(pluginevent.FieldPluginVersion)
	return u
}

// ClearPluginVersion clears the value of the "plugin_version" field.
func (u *PluginEventUpsert) ClearPluginVersion() *PluginEventUpsert {
	u.SetNull(pluginevent.FieldPluginVersion)
	return u
}

// SetKind sets the "kind" field.
func (u *PluginEventUpsert) SetKind(v pluginevent.Kind) *PluginEventUpsert {
	u.Set(pluginevent.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *PluginEventUpsert) UpdateKind() *PluginEventUpsert {
	u.SetExcluded(pluginevent.FieldKind)
	return u
}

// SetStatus sets the "status" field.
func (u *PluginEventUpsert) SetStatus(v string) *PluginEventUpsert {
	u.Set(pluginevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PluginEventUpsert) UpdateStatus() *PluginEventUpsert {
	u.SetExcluded(pluginevent.FieldStatus)
	return u
}

// SetWorkItemID sets the "work_item_id" field.
func (u *PluginEventUpsert) SetWorkItemID(v string) *PluginEventUpsert {
	u.Set(pluginevent.FieldWorkItemID, v)
	return u
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *PluginEventUpsert) UpdateWorkItemID() *PluginEventUpsert {
	u.SetExcluded(pluginevent.FieldWorkItemID)
	return u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *PluginEventUpsert) ClearWorkItemID() *PluginEventUpsert {
	u.SetNull(pluginevent.FieldWorkItemID)
	return u
}

// SetDetail sets the "detail" field.
func (u *PluginEventUpsert) SetDetail(v map[string]interface{}) *PluginEventUpsert {
	u.Set(pluginevent.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *PluginEventUpsert) UpdateDetail() *PluginEventUpsert {
	u.SetExcluded(pluginevent.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *PluginEventUpsert) ClearDetail() *PluginEventUpsert {
	u.SetNull(pluginevent.FieldDetail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PluginEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pluginevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PluginEventUpsertOne) UpdateNewValues() *PluginEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pluginevent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pluginevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PluginEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PluginEventUpsertOne) Ignore() *PluginEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PluginEventUpsertOne) DoNothing() *PluginEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PluginEventCreate.OnConflict
// documentation for more info.
func (u *PluginEventUpsertOne) Update(set func(*PluginEventUpsert)) *PluginEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PluginEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPluginID sets the "plugin_id" field.
func (u *PluginEventUpsertOne) SetPluginID(v string) *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetPluginID(v)
	})
}

// UpdatePluginID sets the "plugin_id" field to the value that was provided on create.
func (u *PluginEventUpsertOne) UpdatePluginID() *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdatePluginID()
	})
}

// SetPluginVersion sets the "plugin_version" field.
func (u *PluginEventUpsertOne) SetPluginVersion(v string) *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetPluginVersion(v)
	})
}

// UpdatePluginVersion sets the "plugin_version" field to the value that was provided on create.
func (u *PluginEventUpsertOne) UpdatePluginVersion() *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdatePluginVersion()
	})
}

// ClearPluginVersion clears the value of the "plugin_version" field.
func (u *PluginEventUpsertOne) ClearPluginVersion() *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.ClearPluginVersion()
	})
}

// SetKind sets the "kind" field.
func (u *PluginEventUpsertOne) SetKind(v pluginevent.Kind) *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *PluginEventUpsertOne) UpdateKind() *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdateKind()
	})
}

// SetStatus sets the "status" field.
func (u *PluginEventUpsertOne) SetStatus(v string) *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PluginEventUpsertOne) UpdateStatus() *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdateStatus()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *PluginEventUpsertOne) SetWorkItemID(v string) *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *PluginEventUpsertOne) UpdateWorkItemID() *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *PluginEventUpsertOne) ClearWorkItemID() *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.ClearWorkItemID()
	})
}

// SetDetail sets the "detail" field.
func (u *PluginEventUpsertOne) SetDetail(v map[string]interface{}) *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *PluginEventUpsertOne) UpdateDetail() *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *PluginEventUpsertOne) ClearDetail() *PluginEventUpsertOne {
	return u.Update(func(s *PluginEventUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *PluginEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PluginEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PluginEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PluginEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PluginEventUpsertOne.ID is not supported by MySQL driver. Use PluginEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PluginEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PluginEventCreateBulk is the builder for creating many PluginEvent entities in bulk.
type PluginEventCreateBulk struct {
	config
	err      error
	builders []*PluginEventCreate
	conflict []sql.ConflictOption
}

// Save creates the PluginEvent entities in the database.
func (_c *PluginEventCreateBulk) Save(ctx context.Context) ([]*PluginEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PluginEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PluginEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PluginEventCreateBulk) SaveX(ctx context.Context) []*PluginEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PluginEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PluginEventUpsert) {
//			SetPluginID(v+v).
//		}).
//		Exec(ctx)
func (_c *PluginEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *PluginEventUpsertBulk {
	_c.conflict = opts
	return &PluginEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PluginEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PluginEventCreateBulk) OnConflictColumns(columns ...string) *PluginEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PluginEventUpsertBulk{
		create: _c,
	}
}

// PluginEventUpsertBulk is the builder for "upsert"-ing
// a bulk of PluginEvent nodes.
type PluginEventUpsertBulk struct {
	create *PluginEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PluginEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pluginevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PluginEventUpsertBulk) UpdateNewValues() *PluginEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pluginevent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pluginevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PluginEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PluginEventUpsertBulk) Ignore() *PluginEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PluginEventUpsertBulk) DoNothing() *PluginEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PluginEventCreateBulk.OnConflict
// documentation for more info.
func (u *PluginEventUpsertBulk) Update(set func(*PluginEventUpsert)) *PluginEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PluginEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPluginID sets the "plugin_id" field.
func (u *PluginEventUpsertBulk) SetPluginID(v string) *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetPluginID(v)
	})
}

// UpdatePluginID sets the "plugin_id" field to the value that was provided on create.
func (u *PluginEventUpsertBulk) UpdatePluginID() *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdatePluginID()
	})
}

// SetPluginVersion sets the "plugin_version" field.
func (u *PluginEventUpsertBulk) SetPluginVersion(v string) *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetPluginVersion(v)
	})
}

// UpdatePluginVersion sets the "plugin_version" field to the value that was provided on create.
func (u *PluginEventUpsertBulk) UpdatePluginVersion() *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdatePluginVersion()
	})
}

// ClearPluginVersion clears the value of the "plugin_version" field.
func (u *PluginEventUpsertBulk) ClearPluginVersion() *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.ClearPluginVersion()
	})
}

// SetKind sets the "kind" field.
func (u *PluginEventUpsertBulk) SetKind(v pluginevent.Kind) *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *PluginEventUpsertBulk) UpdateKind() *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdateKind()
	})
}

// SetStatus sets the "status" field.
func (u *PluginEventUpsertBulk) SetStatus(v string) *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PluginEventUpsertBulk) UpdateStatus() *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdateStatus()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *PluginEventUpsertBulk) SetWorkItemID(v string) *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *PluginEventUpsertBulk) UpdateWorkItemID() *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *PluginEventUpsertBulk) ClearWorkItemID() *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.ClearWorkItemID()
	})
}

// SetDetail sets the "detail" field.
func (u *PluginEventUpsertBulk) SetDetail(v map[string]interface{}) *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *PluginEventUpsertBulk) UpdateDetail() *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *PluginEventUpsertBulk) ClearDetail() *PluginEventUpsertBulk {
	return u.Update(func(s *PluginEventUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *PluginEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PluginEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PluginEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PluginEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
