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
	"github.com/hooklinehq/hookline/ent/runtimecontrol"
)

// RuntimeControlCreate is the builder for creating a RuntimeControl entity.
type RuntimeControlCreate struct {
	config
	mutation *RuntimeControlMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProcessingEnabled sets the "processing_enabled" field.
func (_c *RuntimeControlCreate) SetProcessingEnabled(v bool) *RuntimeControlCreate {
	_c.mutation.SetProcessingEnabled(v)
	return _c
}

// SetNillableProcessingEnabled sets the "processing_enabled" field if the given value is not nil.
func (_c *RuntimeControlCreate) SetNillableProcessingEnabled(v *bool) *RuntimeControlCreate {
	if v != nil {
		_c.SetProcessingEnabled(*v)
	}
	return _c
}

// SetPauseMode sets the "pause_mode" field.
func (_c *RuntimeControlCreate) SetPauseMode(v runtimecontrol.PauseMode) *RuntimeControlCreate {
	_c.mutation.SetPauseMode(v)
	return _c
}

// SetNillablePauseMode sets the "pause_mode" field if the given value is not nil.
func (_c *RuntimeControlCreate) SetNillablePauseMode(v *runtimecontrol.PauseMode) *RuntimeControlCreate {
	if v != nil {
		_c.SetPauseMode(*v)
	}
	return _c
}

// SetPauseReason sets the "pause_reason" field.
func (_c *RuntimeControlCreate) SetPauseReason(v string) *RuntimeControlCreate {
	_c.mutation.SetPauseReason(v)
	return _c
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_c *RuntimeControlCreate) SetNillablePauseReason(v *string) *RuntimeControlCreate {
	if v != nil {
		_c.SetPauseReason(*v)
	}
	return _c
}

// SetControlEpoch sets the "control_epoch" field.
func (_c *RuntimeControlCreate) SetControlEpoch(v int64) *RuntimeControlCreate {
	_c.mutation.SetControlEpoch(v)
	return _c
}

// SetNillableControlEpoch sets the "control_epoch" field if the given value is not nil.
func (_c *RuntimeControlCreate) SetNillableControlEpoch(v *int64) *RuntimeControlCreate {
	if v != nil {
		_c.SetControlEpoch(*v)
	}
	return _c
}

// SetMaxConcurrentDispatches sets the "max_concurrent_dispatches" field.
func (_c *RuntimeControlCreate) SetMaxConcurrentDispatches(v int) *RuntimeControlCreate {
	_c.mutation.SetMaxConcurrentDispatches(v)
	return _c
}

// SetNillableMaxConcurrentDispatches sets the "max_concurrent_dispatches" field if the given value is not nil.
func (_c *RuntimeControlCreate) SetNillableMaxConcurrentDispatches(v *int) *RuntimeControlCreate {
	if v != nil {
		_c.SetMaxConcurrentDispatches(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RuntimeControlCreate) SetUpdatedAt(v time.Time) *RuntimeControlCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RuntimeControlCreate) SetNillableUpdatedAt(v *time.Time) *RuntimeControlCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RuntimeControlCreate) SetID(v string) *RuntimeControlCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RuntimeControlMutation object of the builder.
func (_c *RuntimeControlCreate) Mutation() *RuntimeControlMutation {
	return _c.mutation
}

// Save creates the RuntimeControl in the database.
func (_c *RuntimeControlCreate) Save(ctx context.Context) (*RuntimeControl, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuntimeControlCreate) SaveX(ctx context.Context) *RuntimeControl {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuntimeControlCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuntimeControlCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuntimeControlCreate) defaults() {
	if _, ok := _c.mutation.ProcessingEnabled(); !ok {
		v := runtimecontrol.DefaultProcessingEnabled
		_c.mutation.SetProcessingEnabled(v)
	}
	if _, ok := _c.mutation.PauseMode(); !ok {
		v := runtimecontrol.DefaultPauseMode
		_c.mutation.SetPauseMode(v)
	}
	if _, ok := _c.mutation.ControlEpoch(); !ok {
		v := runtimecontrol.DefaultControlEpoch
		_c.mutation.SetControlEpoch(v)
	}
	if _, ok := _c.mutation.MaxConcurrentDispatches(); !ok {
		v := runtimecontrol.DefaultMaxConcurrentDispatches
		_c.mutation.SetMaxConcurrentDispatches(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := runtimecontrol.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuntimeControlCreate) check() error {
	if _, ok := _c.mutation.ProcessingEnabled(); !ok {
		return &ValidationError{Name: "processing_enabled", err: errors.New(`ent: missing required field "RuntimeControl.processing_enabled"`)}
	}
	if _, ok := _c.mutation.PauseMode(); !ok {
		return &ValidationError{Name: "pause_mode", err: errors.New(`ent: missing required field "RuntimeControl.pause_mode"`)}
	}
	if v, ok := _c.mutation.PauseMode(); ok {
		if err := runtimecontrol.PauseModeValidator(v); err != nil {
			return &ValidationError{Name: "pause_mode", err: fmt.Errorf(`ent: validator failed for field "RuntimeControl.pause_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ControlEpoch(); !ok {
		return &ValidationError{Name: "control_epoch", err: errors.New(`ent: missing required field "RuntimeControl.control_epoch"`)}
	}
	if _, ok := _c.mutation.MaxConcurrentDispatches(); !ok {
		return &ValidationError{Name: "max_concurrent_dispatches", err: errors.New(`ent: missing required field "RuntimeControl.max_concurrent_dispatches"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RuntimeControl.updated_at"`)}
	}
	return nil
}

func (_c *RuntimeControlCreate) sqlSave(ctx context.Context) (*RuntimeControl, error) {
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
			return nil, fmt.Errorf("unexpected RuntimeControl.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RuntimeControlCreate) createSpec() (*RuntimeControl, *sqlgraph.CreateSpec) {
	var (
		_node = &RuntimeControl{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runtimecontrol.Table, sqlgraph.NewFieldSpec(runtimecontrol.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProcessingEnabled(); ok {
		_spec.SetField(runtimecontrol.FieldProcessingEnabled, field.TypeBool, value)
		_node.ProcessingEnabled = value
	}
	if value, ok := _c.mutation.PauseMode(); ok {
		_spec.SetField(runtimecontrol.FieldPauseMode, field.TypeEnum, value)
		_node.PauseMode = value
	}
	if value, ok := _c.mutation.PauseReason(); ok {
		_spec.SetField(runtimecontrol.FieldPauseReason, field.TypeString, value)
		_node.PauseReason = value
	}
	if value, ok := _c.mutation.ControlEpoch(); ok {
		_spec.SetField(runtimecontrol.FieldControlEpoch, field.TypeInt64, value)
		_node.ControlEpoch = value
	}
	if value, ok := _c.mutation.MaxConcurrentDispatches(); ok {
		_spec.SetField(runtimecontrol.FieldMaxConcurrentDispatches, field.TypeInt, value)
		_node.MaxConcurrentDispatches = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(runtimecontrol.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuntimeControl.Create().
//		SetProcessingEnabled(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuntimeControlUpsert) {
//			SetProcessingEnabled(v+v).
//		}).
//		Exec(ctx)
func (_c *RuntimeControlCreate) OnConflict(opts ...sql.ConflictOption) *RuntimeControlUpsertOne {
	_c.conflict = opts
	return &RuntimeControlUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuntimeControl.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuntimeControlCreate) OnConflictColumns(columns ...string) *RuntimeControlUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuntimeControlUpsertOne{
		create: _c,
	}
}

type (
	// RuntimeControlUpsertOne is the builder for "upsert"-ing
	//  one RuntimeControl node.
	RuntimeControlUpsertOne struct {
		create *RuntimeControlCreate
	}

	// RuntimeControlUpsert is the "OnConflict" setter.
	RuntimeControlUpsert struct {
		*sql.UpdateSet
	}
)

// SetProcessingEnabled sets the "processing_enabled" field.
func (u *RuntimeControlUpsert) SetProcessingEnabled(v bool) *RuntimeControlUpsert {
	u.Set(runtimecontrol.FieldProcessingEnabled, v)
	return u
}

// UpdateProcessingEnabled sets the "processing_enabled" field to the value that was provided on create.
func (u *RuntimeControlUpsert) UpdateProcessingEnabled() *RuntimeControlUpsert {
	u.SetExcluded(runtimecontrol.FieldProcessingEnabled)
	return u
}

// SetPauseMode sets the "pause_mode" field.
func (u *RuntimeControlUpsert) SetPauseMode(v runtimecontrol.PauseMode) *RuntimeControlUpsert {
	u.Set(runtimecontrol.FieldPauseMode, v)
	return u
}

// UpdatePauseMode sets the "pause_mode" field to the value that was provided on create.
func (u *RuntimeControlUpsert) UpdatePauseMode() *RuntimeControlUpsert {
	u.SetExcluded(runtimecontrol.FieldPauseMode)
	return u
}

// SetPauseReason sets the "pause_reason" field.
func (u *RuntimeControlUpsert) SetPauseReason(v string) *RuntimeControlUpsert {
	u.Set(runtimecontrol.FieldPauseReason, v)
	return u
}

// UpdatePauseReason sets the "pause_reason" field to the value that was provided on create.
func (u *RuntimeControlUpsert) UpdatePauseReason() *RuntimeControlUpsert {
	u.SetExcluded(runtimecontrol.FieldPauseReason)
	return u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (u *RuntimeControlUpsert) ClearPauseReason() *RuntimeControlUpsert {
	u.SetNull(runtimecontrol.FieldPauseReason)
	return u
}

// SetControlEpoch sets the "control_epoch" field.
func (u *RuntimeControlUpsert) SetControlEpoch(v int64) *RuntimeControlUpsert {
	u.Set(runtimecontrol.FieldControlEpoch, v)
	return u
}

// UpdateControlEpoch sets the "control_epoch" field to the value that was provided on create.
func (u *RuntimeControlUpsert) UpdateControlEpoch() *RuntimeControlUpsert {
	u.SetExcluded(runtimecontrol.FieldControlEpoch)
	return u
}

// AddControlEpoch adds v to the "control_epoch" field.
func (u *RuntimeControlUpsert) AddControlEpoch(v int64) *RuntimeControlUpsert {
	u.Add(runtimecontrol.FieldControlEpoch, v)
	return u
}

// SetMaxConcurrentDispatches sets the "max_concurrent_dispatches" field.
func (u *RuntimeControlUpsert) SetMaxConcurrentDispatches(v int) *RuntimeControlUpsert {
	u.Set(runtimecontrol.FieldMaxConcurrentDispatches, v)
	return u
}

// UpdateMaxConcurrentDispatches sets the "max_concurrent_dispatches" field to the value that was provided on create.
func (u *RuntimeControlUpsert) UpdateMaxConcurrentDispatches() *RuntimeControlUpsert {
	u.SetExcluded(runtimecontrol.FieldMaxConcurrentDispatches)
	return u
}

// AddMaxConcurrentDispatches adds v to the "max_concurrent_dispatches" field.
func (u *RuntimeControlUpsert) AddMaxConcurrentDispatches(v int) *RuntimeControlUpsert {
	u.Add(runtimecontrol.FieldMaxConcurrentDispatches, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RuntimeControlUpsert) SetUpdatedAt(v time.Time) *RuntimeControlUpsert {
	u.Set(runtimecontrol.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RuntimeControlUpsert) UpdateUpdatedAt() *RuntimeControlUpsert {
	u.SetExcluded(runtimecontrol.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RuntimeControl.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runtimecontrol.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuntimeControlUpsertOne) UpdateNewValues() *RuntimeControlUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(runtimecontrol.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuntimeControl.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RuntimeControlUpsertOne) Ignore() *RuntimeControlUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuntimeControlUpsertOne) DoNothing() *RuntimeControlUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuntimeControlCreate.OnConflict
// documentation for more info.
func (u *RuntimeControlUpsertOne) Update(set func(*RuntimeControlUpsert)) *RuntimeControlUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuntimeControlUpsert{UpdateSet: update})
	}))
	return u
}

// SetProcessingEnabled sets the "processing_enabled" field.
func (u *RuntimeControlUpsertOne) SetProcessingEnabled(v bool) *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetProcessingEnabled(v)
	})
}

// UpdateProcessingEnabled sets the "processing_enabled" field to the value that was provided on create.
func (u *RuntimeControlUpsertOne) UpdateProcessingEnabled() *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdateProcessingEnabled()
	})
}

// SetPauseMode sets the "pause_mode" field.
func (u *RuntimeControlUpsertOne) SetPauseMode(v runtimecontrol.PauseMode) *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetPauseMode(v)
	})
}

// UpdatePauseMode sets the "pause_mode" field to the value that was provided on create.
func (u *RuntimeControlUpsertOne) UpdatePauseMode() *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdatePauseMode()
	})
}

// SetPauseReason sets the "pause_reason" field.
func (u *RuntimeControlUpsertOne) SetPauseReason(v string) *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetPauseReason(v)
	})
}

// UpdatePauseReason sets the "pause_reason" field to the value that was provided on create.
func (u *RuntimeControlUpsertOne) UpdatePauseReason() *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdatePauseReason()
	})
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (u *RuntimeControlUpsertOne) ClearPauseReason() *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.ClearPauseReason()
	})
}

// SetControlEpoch sets the "control_epoch" field.
func (u *RuntimeControlUpsertOne) SetControlEpoch(v int64) *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetControlEpoch(v)
	})
}

// AddControlEpoch adds v to the "control_epoch" field.
func (u *RuntimeControlUpsertOne) AddControlEpoch(v int64) *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.AddControlEpoch(v)
	})
}

// UpdateControlEpoch sets the "control_epoch" field to the value that was provided on create.
func (u *RuntimeControlUpsertOne) UpdateControlEpoch() *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdateControlEpoch()
	})
}

// SetMaxConcurrentDispatches sets the "max_concurrent_dispatches" field.
func (u *RuntimeControlUpsertOne) SetMaxConcurrentDispatches(v int) *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetMaxConcurrentDispatches(v)
	})
}

// AddMaxConcurrentDispatches adds v to the "max_concurrent_dispatches" field.
func (u *RuntimeControlUpsertOne) AddMaxConcurrentDispatches(v int) *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.AddMaxConcurrentDispatches(v)
	})
}

// UpdateMaxConcurrentDispatches sets the "max_concurrent_dispatches" field to the value that was provided on create.
func (u *RuntimeControlUpsertOne) UpdateMaxConcurrentDispatches() *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdateMaxConcurrentDispatches()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RuntimeControlUpsertOne) SetUpdatedAt(v time.Time) *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RuntimeControlUpsertOne) UpdateUpdatedAt() *RuntimeControlUpsertOne {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RuntimeControlUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuntimeControlCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuntimeControlUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RuntimeControlUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RuntimeControlUpsertOne.ID is not supported by MySQL driver. Use RuntimeControlUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RuntimeControlUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RuntimeControlCreateBulk is the builder for creating many RuntimeControl entities in bulk.
type RuntimeControlCreateBulk struct {
	config
	err      error
	builders []*RuntimeControlCreate
	conflict []sql.ConflictOption
}

// Save creates the RuntimeControl entities in the database.
func (_c *RuntimeControlCreateBulk) Save(ctx context.Context) ([]*RuntimeControl, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RuntimeControl, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuntimeControlMutation)
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
func (_c *RuntimeControlCreateBulk) SaveX(ctx context.Context) []*RuntimeControl {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuntimeControlCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuntimeControlCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuntimeControl.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuntimeControlUpsert) {
//			SetProcessingEnabled(v+v).
//		}).
//		Exec(ctx)
func (_c *RuntimeControlCreateBulk) OnConflict(opts ...sql.ConflictOption) *RuntimeControlUpsertBulk {
	_c.conflict = opts
	return &RuntimeControlUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuntimeControl.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuntimeControlCreateBulk) OnConflictColumns(columns ...string) *RuntimeControlUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuntimeControlUpsertBulk{
		create: _c,
	}
}

// RuntimeControlUpsertBulk is the builder for "upsert"-ing
// a bulk of RuntimeControl nodes.
type RuntimeControlUpsertBulk struct {
	create *RuntimeControlCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RuntimeControl.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runtimecontrol.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuntimeControlUpsertBulk) UpdateNewValues() *RuntimeControlUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(runtimecontrol.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuntimeControl.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RuntimeControlUpsertBulk) Ignore() *RuntimeControlUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuntimeControlUpsertBulk) DoNothing() *RuntimeControlUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuntimeControlCreateBulk.OnConflict
// documentation for more info.
func (u *RuntimeControlUpsertBulk) Update(set func(*RuntimeControlUpsert)) *RuntimeControlUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuntimeControlUpsert{UpdateSet: update})
	}))
	return u
}

// SetProcessingEnabled sets the "processing_enabled" field.
func (u *RuntimeControlUpsertBulk) SetProcessingEnabled(v bool) *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetProcessingEnabled(v)
	})
}

// UpdateProcessingEnabled sets the "processing_enabled" field to the value that was provided on create.
func (u *RuntimeControlUpsertBulk) UpdateProcessingEnabled() *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdateProcessingEnabled()
	})
}

// SetPauseMode sets the "pause_mode" field.
func (u *RuntimeControlUpsertBulk) SetPauseMode(v runtimecontrol.PauseMode) *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetPauseMode(v)
	})
}

// UpdatePauseMode sets the "pause_mode" field to the value that was provided on create.
func (u *RuntimeControlUpsertBulk) UpdatePauseMode() *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdatePauseMode()
	})
}

// SetPauseReason sets the "pause_reason" field.
func (u *RuntimeControlUpsertBulk) SetPauseReason(v string) *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetPauseReason(v)
	})
}

// UpdatePauseReason sets the "pause_reason" field to the value that was provided on create.
func (u *RuntimeControlUpsertBulk) UpdatePauseReason() *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdatePauseReason()
	})
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (u *RuntimeControlUpsertBulk) ClearPauseReason() *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.ClearPauseReason()
	})
}

// SetControlEpoch sets the "control_epoch" field.
func (u *RuntimeControlUpsertBulk) SetControlEpoch(v int64) *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetControlEpoch(v)
	})
}

// AddControlEpoch adds v to the "control_epoch" field.
func (u *RuntimeControlUpsertBulk) AddControlEpoch(v int64) *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.AddControlEpoch(v)
	})
}

// UpdateControlEpoch sets the "control_epoch" field to the value that was provided on create.
func (u *RuntimeControlUpsertBulk) UpdateControlEpoch() *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdateControlEpoch()
	})
}

// SetMaxConcurrentDispatches sets the "max_concurrent_dispatches" field.
func (u *RuntimeControlUpsertBulk) SetMaxConcurrentDispatches(v int) *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetMaxConcurrentDispatches(v)
	})
}

// AddMaxConcurrentDispatches adds v to the "max_concurrent_dispatches" field.
func (u *RuntimeControlUpsertBulk) AddMaxConcurrentDispatches(v int) *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.AddMaxConcurrentDispatches(v)
	})
}

// UpdateMaxConcurrentDispatches sets the "max_concurrent_dispatches" field to the value that was provided on create.
func (u *RuntimeControlUpsertBulk) UpdateMaxConcurrentDispatches() *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdateMaxConcurrentDispatches()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RuntimeControlUpsertBulk) SetUpdatedAt(v time.Time) *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RuntimeControlUpsertBulk) UpdateUpdatedAt() *RuntimeControlUpsertBulk {
	return u.Update(func(s *RuntimeControlUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RuntimeControlUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RuntimeControlCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuntimeControlCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuntimeControlUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
