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
	"github.com/hooklinehq/hookline/ent/workitem"
)

// WorkItemCreate is the builder for creating a WorkItem entity.
type WorkItemCreate struct {
	config
	mutation *WorkItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (_c *WorkItemCreate) SetPluginInstanceID(v string) *WorkItemCreate {
	_c.mutation.SetPluginInstanceID(v)
	return _c
}

// SetSessionKey sets the "session_key" field.
func (_c *WorkItemCreate) SetSessionKey(v string) *WorkItemCreate {
	_c.mutation.SetSessionKey(v)
	return _c
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableSessionKey(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetSessionKey(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *WorkItemCreate) SetSource(v string) *WorkItemCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSourceRef sets the "source_ref" field.
func (_c *WorkItemCreate) SetSourceRef(v string) *WorkItemCreate {
	_c.mutation.SetSourceRef(v)
	return _c
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableSourceRef(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetSourceRef(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkItemCreate) SetStatus(v workitem.Status) *WorkItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableStatus(v *workitem.Status) *WorkItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *WorkItemCreate) SetTitle(v string) *WorkItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableTitle(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WorkItemCreate) SetPayload(v map[string]interface{}) *WorkItemCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkItemCreate) SetCreatedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableCreatedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkItemCreate) SetUpdatedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableUpdatedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkItemCreate) SetID(v string) *WorkItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkItemMutation object of the builder.
func (_c *WorkItemCreate) Mutation() *WorkItemMutation {
	return _c.mutation
}

// Save creates the WorkItem in the database.
func (_c *WorkItemCreate) Save(ctx context.Context) (*WorkItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkItemCreate) SaveX(ctx context.Context) *WorkItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkItemCreate) check() error {
	if _, ok := _c.mutation.PluginInstanceID(); !ok {
		return &ValidationError{Name: "plugin_instance_id", err: errors.New(`ent: missing required field "WorkItem.plugin_instance_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "WorkItem.source"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkItem.updated_at"`)}
	}
	return nil
}

func (_c *WorkItemCreate) sqlSave(ctx context.Context) (*WorkItem, error) {
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
			return nil, fmt.Errorf("unexpected WorkItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkItemCreate) createSpec() (*WorkItem, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workitem.Table, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PluginInstanceID(); ok {
		_spec.SetField(workitem.FieldPluginInstanceID, field.TypeString, value)
		_node.PluginInstanceID = value
	}
	if value, ok := _c.mutation.SessionKey(); ok {
		_spec.SetField(workitem.FieldSessionKey, field.TypeString, value)
		_node.SessionKey = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(workitem.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceRef(); ok {
		_spec.SetField(workitem.FieldSourceRef, field.TypeString, value)
		_node.SourceRef = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(workitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(workitem.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkItem.Create().
//		SetPluginInstanceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkItemUpsert) {
//			SetPluginInstanceID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkItemCreate) OnConflict(opts ...sql.ConflictOption) *WorkItemUpsertOne {
	_c.conflict = opts
	return &WorkItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkItemCreate) OnConflictColumns(columns ...string) *WorkItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkItemUpsertOne{
		create: _c,
	}
}

type (
	// WorkItemUpsertOne is the builder for "upsert"-ing
	//  one WorkItem node.
	WorkItemUpsertOne struct {
		create *WorkItemCreate
	}

	// WorkItemUpsert is the "OnConflict" setter.
	WorkItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (u *WorkItemUpsert) SetPluginInstanceID(v string) *WorkItemUpsert {
	u.Set(workitem.FieldPluginInstanceID, v)
	return u
}

// UpdatePluginInstanceID sets the "plugin_instance_id" field to the value that was provided on create.
func (u *WorkItemUpsert) UpdatePluginInstanceID() *WorkItemUpsert {
	u.SetExcluded(workitem.FieldPluginInstanceID)
	return u
}

// SetSessionKey sets the "session_key" field.
func (u *WorkItemUpsert) SetSessionKey(v string) *WorkItemUpsert {
	u.Set(workitem.FieldSessionKey, v)
	return u
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *WorkItemUpsert) UpdateSessionKey() *WorkItemUpsert {
	u.SetExcluded(workitem.FieldSessionKey)
	return u
}

// ClearSessionKey clears the value of the "session_key" field.
func (u *WorkItemUpsert) ClearSessionKey() *WorkItemUpsert {
	u.SetNull(workitem.FieldSessionKey)
	return u
}

// SetSource sets the "source" field.
func (u *WorkItemUpsert) SetSource(v string) *WorkItemUpsert {
	u.Set(workitem.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *WorkItemUpsert) UpdateSource() *WorkItemUpsert {
	u.SetExcluded(workitem.FieldSource)
	return u
}

// SetSourceRef sets the "source_ref" field.
func (u *WorkItemUpsert) SetSourceRef(v string) *WorkItemUpsert {
	u.Set(workitem.FieldSourceRef, v)
	return u
}

// UpdateSourceRef sets the "source_ref" field to the value that was provided on create.
func (u *WorkItemUpsert) UpdateSourceRef() *WorkItemUpsert {
	u.SetExcluded(workitem.FieldSourceRef)
	return u
}

// ClearSourceRef clears the value of the "source_ref" field.
func (u *WorkItemUpsert) ClearSourceRef() *WorkItemUpsert {
	u.SetNull(workitem.FieldSourceRef)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkItemUpsert) SetStatus(v workitem.Status) *WorkItemUpsert {
	u.Set(workitem.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkItemUpsert) UpdateStatus() *WorkItemUpsert {
	u.SetExcluded(workitem.FieldStatus)
	return u
}

// SetTitle sets the "title" field.
func (u *WorkItemUpsert) SetTitle(v string) *WorkItemUpsert {
	u.Set(workitem.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *WorkItemUpsert) UpdateTitle() *WorkItemUpsert {
	u.SetExcluded(workitem.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *WorkItemUpsert) ClearTitle() *WorkItemUpsert {
	u.SetNull(workitem.FieldTitle)
	return u
}

// SetPayload sets the "payload" field.
func (u *WorkItemUpsert) SetPayload(v map[string]interface{}) *WorkItemUpsert {
	u.Set(workitem.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WorkItemUpsert) UpdatePayload() *WorkItemUpsert {
	u.SetExcluded(workitem.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *WorkItemUpsert) ClearPayload() *WorkItemUpsert {
	u.SetNull(workitem.FieldPayload)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkItemUpsert) SetUpdatedAt(v time.Time) *WorkItemUpsert {
	u.Set(workitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkItemUpsert) UpdateUpdatedAt() *WorkItemUpsert {
	u.SetExcluded(workitem.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkItemUpsertOne) UpdateNewValues() *WorkItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkItemUpsertOne) Ignore() *WorkItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkItemUpsertOne) DoNothing() *WorkItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkItemCreate.OnConflict
// documentation for more info.
func (u *WorkItemUpsertOne) Update(set func(*WorkItemUpsert)) *WorkItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (u *WorkItemUpsertOne) SetPluginInstanceID(v string) *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetPluginInstanceID(v)
	})
}

// UpdatePluginInstanceID sets the "plugin_instance_id" field to the value that was provided on create.
func (u *WorkItemUpsertOne) UpdatePluginInstanceID() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdatePluginInstanceID()
	})
}

// SetSessionKey sets the "session_key" field.
func (u *WorkItemUpsertOne) SetSessionKey(v string) *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetSessionKey(v)
	})
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *WorkItemUpsertOne) UpdateSessionKey() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateSessionKey()
	})
}

// ClearSessionKey clears the value of the "session_key" field.
func (u *WorkItemUpsertOne) ClearSessionKey() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.ClearSessionKey()
	})
}

// SetSource sets the "source" field.
func (u *WorkItemUpsertOne) SetSource(v string) *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *WorkItemUpsertOne) UpdateSource() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateSource()
	})
}

// SetSourceRef sets the "source_ref" field.
func (u *WorkItemUpsertOne) SetSourceRef(v string) *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetSourceRef(v)
	})
}

// UpdateSourceRef sets the "source_ref" field to the value that was provided on create.
func (u *WorkItemUpsertOne) UpdateSourceRef() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateSourceRef()
	})
}

// ClearSourceRef clears the value of the "source_ref" field.
func (u *WorkItemUpsertOne) ClearSourceRef() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.ClearSourceRef()
	})
}

// SetStatus sets the "status" field.
func (u *WorkItemUpsertOne) SetStatus(v workitem.Status) *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkItemUpsertOne) UpdateStatus() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateStatus()
	})
}

// SetTitle sets the "title" field.
func (u *WorkItemUpsertOne) SetTitle(v string) *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *WorkItemUpsertOne) UpdateTitle() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *WorkItemUpsertOne) ClearTitle() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.ClearTitle()
	})
}

// SetPayload sets the "payload" field.
func (u *WorkItemUpsertOne) SetPayload(v map[string]interface{}) *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WorkItemUpsertOne) UpdatePayload() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *WorkItemUpsertOne) ClearPayload() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.ClearPayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkItemUpsertOne) SetUpdatedAt(v time.Time) *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkItemUpsertOne) UpdateUpdatedAt() *WorkItemUpsertOne {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkItemUpsertOne.ID is not supported by MySQL driver. Use WorkItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkItemCreateBulk is the builder for creating many WorkItem entities in bulk.
type WorkItemCreateBulk struct {
	config
	err      error
	builders []*WorkItemCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkItem entities in the database.
func (_c *WorkItemCreateBulk) Save(ctx context.Context) ([]*WorkItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkItemMutation)
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
func (_c *WorkItemCreateBulk) SaveX(ctx context.Context) []*WorkItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkItemUpsert) {
//			SetPluginInstanceID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkItemUpsertBulk {
	_c.conflict = opts
	return &WorkItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkItemCreateBulk) OnConflictColumns(columns ...string) *WorkItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkItemUpsertBulk{
		create: _c,
	}
}

// WorkItemUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkItem nodes.
type WorkItemUpsertBulk struct {
	create *WorkItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkItemUpsertBulk) UpdateNewValues() *WorkItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkItemUpsertBulk) Ignore() *WorkItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkItemUpsertBulk) DoNothing() *WorkItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkItemCreateBulk.OnConflict
// documentation for more info.
func (u *WorkItemUpsertBulk) Update(set func(*WorkItemUpsert)) *WorkItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (u *WorkItemUpsertBulk) SetPluginInstanceID(v string) *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetPluginInstanceID(v)
	})
}

// UpdatePluginInstanceID sets the "plugin_instance_id" field to the value that was provided on create.
func (u *WorkItemUpsertBulk) UpdatePluginInstanceID() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdatePluginInstanceID()
	})
}

// SetSessionKey sets the "session_key" field.
func (u *WorkItemUpsertBulk) SetSessionKey(v string) *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetSessionKey(v)
	})
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *WorkItemUpsertBulk) UpdateSessionKey() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateSessionKey()
	})
}

// ClearSessionKey clears the value of the "session_key" field.
func (u *WorkItemUpsertBulk) ClearSessionKey() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.ClearSessionKey()
	})
}

// SetSource sets the "source" field.
func (u *WorkItemUpsertBulk) SetSource(v string) *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *WorkItemUpsertBulk) UpdateSource() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateSource()
	})
}

// SetSourceRef sets the "source_ref" field.
func (u *WorkItemUpsertBulk) SetSourceRef(v string) *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetSourceRef(v)
	})
}

// UpdateSourceRef sets the "source_ref" field to the value that was provided on create.
func (u *WorkItemUpsertBulk) UpdateSourceRef() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateSourceRef()
	})
}

// ClearSourceRef clears the value of the "source_ref" field.
func (u *WorkItemUpsertBulk) ClearSourceRef() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.ClearSourceRef()
	})
}

// SetStatus sets the "status" field.
func (u *WorkItemUpsertBulk) SetStatus(v workitem.Status) *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkItemUpsertBulk) UpdateStatus() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateStatus()
	})
}

// SetTitle sets the "title" field.
func (u *WorkItemUpsertBulk) SetTitle(v string) *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *WorkItemUpsertBulk) UpdateTitle() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *WorkItemUpsertBulk) ClearTitle() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.ClearTitle()
	})
}

// SetPayload sets the "payload" field.
func (u *WorkItemUpsertBulk) SetPayload(v map[string]interface{}) *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WorkItemUpsertBulk) UpdatePayload() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *WorkItemUpsertBulk) ClearPayload() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.ClearPayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkItemUpsertBulk) SetUpdatedAt(v time.Time) *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkItemUpsertBulk) UpdateUpdatedAt() *WorkItemUpsertBulk {
	return u.Update(func(s *WorkItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
