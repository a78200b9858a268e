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
	"github.com/hooklinehq/hookline/ent/plugininstance"
)

// PluginInstanceCreate is the builder for creating a PluginInstance entity.
type PluginInstanceCreate struct {
	config
	mutation *PluginInstanceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetType sets the "type" field.
func (_c *PluginInstanceCreate) SetType(v string) *PluginInstanceCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PluginInstanceCreate) SetName(v string) *PluginInstanceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *PluginInstanceCreate) SetConfig(v map[string]interface{}) *PluginInstanceCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *PluginInstanceCreate) SetEnabled(v bool) *PluginInstanceCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *PluginInstanceCreate) SetNillableEnabled(v *bool) *PluginInstanceCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PluginInstanceCreate) SetCreatedAt(v time.Time) *PluginInstanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PluginInstanceCreate) SetNillableCreatedAt(v *time.Time) *PluginInstanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PluginInstanceCreate) SetUpdatedAt(v time.Time) *PluginInstanceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PluginInstanceCreate) SetNillableUpdatedAt(v *time.Time) *PluginInstanceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PluginInstanceCreate) SetID(v string) *PluginInstanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PluginInstanceMutation object of the builder.
func (_c *PluginInstanceCreate) Mutation() *PluginInstanceMutation {
	return _c.mutation
}

// Save creates the PluginInstance in the database.
func (_c *PluginInstanceCreate) Save(ctx context.Context) (*PluginInstance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PluginInstanceCreate) SaveX(ctx context.Context) *PluginInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginInstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginInstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PluginInstanceCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := plugininstance.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plugininstance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := plugininstance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PluginInstanceCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "PluginInstance.type"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PluginInstance.name"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "PluginInstance.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PluginInstance.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PluginInstance.updated_at"`)}
	}
	return nil
}

func (_c *PluginInstanceCreate) sqlSave(ctx context.Context) (*PluginInstance, error) {
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
			return nil, fmt.Errorf("unexpected PluginInstance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PluginInstanceCreate) createSpec() (*PluginInstance, *sqlgraph.CreateSpec) {
	var (
		_node = &PluginInstance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plugininstance.Table, sqlgraph.NewFieldSpec(plugininstance.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(plugininstance.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(plugininstance.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(plugininstance.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(plugininstance.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plugininstance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(plugininstance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PluginInstance.Create().
//		SetType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PluginInstanceUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *PluginInstanceCreate) OnConflict(opts ...sql.ConflictOption) *PluginInstanceUpsertOne {
	_c.conflict = opts
	return &PluginInstanceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PluginInstance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PluginInstanceCreate) OnConflictColumns(columns ...string) *PluginInstanceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PluginInstanceUpsertOne{
		create: _c,
	}
}

type (
	// PluginInstanceUpsertOne is the builder for "upsert"-ing
	//  one PluginInstance node.
	PluginInstanceUpsertOne struct {
		create *PluginInstanceCreate
	}

	// PluginInstanceUpsert is the "OnConflict" setter.
	PluginInstanceUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *PluginInstanceUpsert) SetType(v string) *PluginInstanceUpsert {
	u.Set(plugininstance.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *PluginInstanceUpsert) UpdateType() *PluginInstanceUpsert {
	u.SetExcluded(plugininstance.FieldType)
	return u
}

// SetName sets the "name" field.
func (u *PluginInstanceUpsert) SetName(v string) *PluginInstanceUpsert {
	u.Set(plugininstance.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PluginInstanceUpsert) UpdateName() *PluginInstanceUpsert {
	u.SetExcluded(plugininstance.FieldName)
	return u
}

// SetConfig sets the "config" field.
func (u *PluginInstanceUpsert) SetConfig(v map[string]interface{}) *PluginInstanceUpsert {
	u.Set(plugininstance.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *PluginInstanceUpsert) UpdateConfig() *PluginInstanceUpsert {
	u.SetExcluded(plugininstance.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *PluginInstanceUpsert) ClearConfig() *PluginInstanceUpsert {
	u.SetNull(plugininstance.FieldConfig)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *PluginInstanceUpsert) SetEnabled(v bool) *PluginInstanceUpsert {
	u.Set(plugininstance.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *PluginInstanceUpsert) UpdateEnabled() *PluginInstanceUpsert {
	u.SetExcluded(plugininstance.FieldEnabled)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PluginInstanceUpsert) SetUpdatedAt(v time.Time) *PluginInstanceUpsert {
	u.Set(plugininstance.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PluginInstanceUpsert) UpdateUpdatedAt() *PluginInstanceUpsert {
	u.SetExcluded(plugininstance.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PluginInstance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plugininstance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PluginInstanceUpsertOne) UpdateNewValues() *PluginInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(plugininstance.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(plugininstance.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PluginInstance.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PluginInstanceUpsertOne) Ignore() *PluginInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PluginInstanceUpsertOne) DoNothing() *PluginInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PluginInstanceCreate.OnConflict
// documentation for more info.
func (u *PluginInstanceUpsertOne) Update(set func(*PluginInstanceUpsert)) *PluginInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PluginInstanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *PluginInstanceUpsertOne) SetType(v string) *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *PluginInstanceUpsertOne) UpdateType() *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateType()
	})
}

// SetName sets the "name" field.
func (u *PluginInstanceUpsertOne) SetName(v string) *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PluginInstanceUpsertOne) UpdateName() *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateName()
	})
}

// SetConfig sets the "config" field.
func (u *PluginInstanceUpsertOne) SetConfig(v map[string]interface{}) *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *PluginInstanceUpsertOne) UpdateConfig() *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *PluginInstanceUpsertOne) ClearConfig() *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.ClearConfig()
	})
}

// SetEnabled sets the "enabled" field.
func (u *PluginInstanceUpsertOne) SetEnabled(v bool) *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *PluginInstanceUpsertOne) UpdateEnabled() *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PluginInstanceUpsertOne) SetUpdatedAt(v time.Time) *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PluginInstanceUpsertOne) UpdateUpdatedAt() *PluginInstanceUpsertOne {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PluginInstanceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PluginInstanceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PluginInstanceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PluginInstanceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PluginInstanceUpsertOne.ID is not supported by MySQL driver. Use PluginInstanceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PluginInstanceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PluginInstanceCreateBulk is the builder for creating many PluginInstance entities in bulk.
type PluginInstanceCreateBulk struct {
	config
	err      error
	builders []*PluginInstanceCreate
	conflict []sql.ConflictOption
}

// Save creates the PluginInstance entities in the database.
func (_c *PluginInstanceCreateBulk) Save(ctx context.Context) ([]*PluginInstance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PluginInstance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PluginInstanceMutation)
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
func (_c *PluginInstanceCreateBulk) SaveX(ctx context.Context) []*PluginInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginInstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginInstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PluginInstance.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PluginInstanceUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *PluginInstanceCreateBulk) OnConflict(opts ...sql.ConflictOption) *PluginInstanceUpsertBulk {
	_c.conflict = opts
	return &PluginInstanceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PluginInstance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PluginInstanceCreateBulk) OnConflictColumns(columns ...string) *PluginInstanceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PluginInstanceUpsertBulk{
		create: _c,
	}
}

// PluginInstanceUpsertBulk is the builder for "upsert"-ing
// a bulk of PluginInstance nodes.
type PluginInstanceUpsertBulk struct {
	create *PluginInstanceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PluginInstance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plugininstance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PluginInstanceUpsertBulk) UpdateNewValues() *PluginInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(plugininstance.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(plugininstance.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PluginInstance.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PluginInstanceUpsertBulk) Ignore() *PluginInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PluginInstanceUpsertBulk) DoNothing() *PluginInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PluginInstanceCreateBulk.OnConflict
// documentation for more info.
func (u *PluginInstanceUpsertBulk) Update(set func(*PluginInstanceUpsert)) *PluginInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PluginInstanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *PluginInstanceUpsertBulk) SetType(v string) *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *PluginInstanceUpsertBulk) UpdateType() *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateType()
	})
}

// SetName sets the "name" field.
func (u *PluginInstanceUpsertBulk) SetName(v string) *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PluginInstanceUpsertBulk) UpdateName() *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateName()
	})
}

// SetConfig sets the "config" field.
func (u *PluginInstanceUpsertBulk) SetConfig(v map[string]interface{}) *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *PluginInstanceUpsertBulk) UpdateConfig() *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *PluginInstanceUpsertBulk) ClearConfig() *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.ClearConfig()
	})
}

// SetEnabled sets the "enabled" field.
func (u *PluginInstanceUpsertBulk) SetEnabled(v bool) *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *PluginInstanceUpsertBulk) UpdateEnabled() *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PluginInstanceUpsertBulk) SetUpdatedAt(v time.Time) *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PluginInstanceUpsertBulk) UpdateUpdatedAt() *PluginInstanceUpsertBulk {
	return u.Update(func(s *PluginInstanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PluginInstanceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PluginInstanceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PluginInstanceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PluginInstanceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
