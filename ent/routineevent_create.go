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
	"github.com/hooklinehq/hookline/ent/routineevent"
)

// RoutineEventCreate is the builder for creating a RoutineEvent entity.
type RoutineEventCreate struct {
	config
	mutation *RoutineEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkItemID sets the "work_item_id" field.
func (_c *RoutineEventCreate) SetWorkItemID(v string) *RoutineEventCreate {
	_c.mutation.SetWorkItemID(v)
	return _c
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_c *RoutineEventCreate) SetNillableWorkItemID(v *string) *RoutineEventCreate {
	if v != nil {
		_c.SetWorkItemID(*v)
	}
	return _c
}

// SetEnvelope sets the "envelope" field.
func (_c *RoutineEventCreate) SetEnvelope(v map[string]interface{}) *RoutineEventCreate {
	_c.mutation.SetEnvelope(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RoutineEventCreate) SetStatus(v routineevent.Status) *RoutineEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RoutineEventCreate) SetNillableStatus(v *routineevent.Status) *RoutineEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *RoutineEventCreate) SetClaimedBy(v string) *RoutineEventCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *RoutineEventCreate) SetNillableClaimedBy(v *string) *RoutineEventCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *RoutineEventCreate) SetLeaseExpiresAt(v time.Time) *RoutineEventCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *RoutineEventCreate) SetNillableLeaseExpiresAt(v *time.Time) *RoutineEventCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *RoutineEventCreate) SetAttemptCount(v int) *RoutineEventCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *RoutineEventCreate) SetNillableAttemptCount(v *int) *RoutineEventCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoutineEventCreate) SetCreatedAt(v time.Time) *RoutineEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoutineEventCreate) SetNillableCreatedAt(v *time.Time) *RoutineEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoutineEventCreate) SetID(v string) *RoutineEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RoutineEventMutation object of the builder.
func (_c *RoutineEventCreate) Mutation() *RoutineEventMutation {
	return _c.mutation
}

// Save creates the RoutineEvent in the database.
func (_c *RoutineEventCreate) Save(ctx context.Context) (*RoutineEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutineEventCreate) SaveX(ctx context.Context) *RoutineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutineEventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := routineevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := routineevent.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := routineevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutineEventCreate) check() error {
	if _, ok := _c.mutation.Envelope(); !ok {
		return &ValidationError{Name: "envelope", err: errors.New(`ent: missing required field "RoutineEvent.envelope"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RoutineEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := routineevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RoutineEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "RoutineEvent.attempt_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoutineEvent.created_at"`)}
	}
	return nil
}

func (_c *RoutineEventCreate) sqlSave(ctx context.Context) (*RoutineEvent, error) {
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
			return nil, fmt.Errorf("unexpected RoutineEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoutineEventCreate) createSpec() (*RoutineEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RoutineEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routineevent.Table, sqlgraph.NewFieldSpec(routineevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkItemID(); ok {
		_spec.SetField(routineevent.FieldWorkItemID, field.TypeString, value)
		_node.WorkItemID = value
	}
	if value, ok := _c.mutation.Envelope(); ok {
		_spec.SetField(routineevent.FieldEnvelope, field.TypeJSON, value)
		_node.Envelope = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(routineevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(routineevent.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(routineevent.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(routineevent.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(routineevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoutineEvent.Create().
//		SetWorkItemID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineEventUpsert) {
//			SetWorkItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineEventCreate) OnConflict(opts ...sql.ConflictOption) *RoutineEventUpsertOne {
	_c.conflict = opts
	return &RoutineEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoutineEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineEventCreate) OnConflictColumns(columns ...string) *RoutineEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineEventUpsertOne{
		create: _c,
	}
}

type (
	// RoutineEventUpsertOne is the builder for "upsert"-ing
	//  one RoutineEvent node.
	RoutineEventUpsertOne struct {
		create *RoutineEventCreate
	}

	// RoutineEventUpsert is the "OnConflict" setter.
	RoutineEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkItemID sets the "work_item_id" field.
func (u *RoutineEventUpsert) SetWorkItemID(v string) *RoutineEventUpsert {
	u.Set(routineevent.FieldWorkItemID, v)
	return u
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *RoutineEventUpsert) UpdateWorkItemID() *RoutineEventUpsert {
	u.SetExcluded(routineevent.FieldWorkItemID)
	return u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *RoutineEventUpsert) ClearWorkItemID() *RoutineEventUpsert {
	u.SetNull(routineevent.FieldWorkItemID)
	return u
}

// SetEnvelope sets the "envelope" field.
func (u *RoutineEventUpsert) SetEnvelope(v map[string]interface{}) *RoutineEventUpsert {
	u.Set(routineevent.FieldEnvelope, v)
	return u
}

// UpdateEnvelope sets the "envelope" field to the value that was provided on create.
func (u *RoutineEventUpsert) UpdateEnvelope() *RoutineEventUpsert {
	u.SetExcluded(routineevent.FieldEnvelope)
	return u
}

// SetStatus sets the "status" field.
func (u *RoutineEventUpsert) SetStatus(v routineevent.Status) *RoutineEventUpsert {
	u.Set(routineevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RoutineEventUpsert) UpdateStatus() *RoutineEventUpsert {
	u.SetExcluded(routineevent.FieldStatus)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *RoutineEventUpsert) SetClaimedBy(v string) *RoutineEventUpsert {
	u.Set(routineevent.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *RoutineEventUpsert) UpdateClaimedBy() *RoutineEventUpsert {
	u.SetExcluded(routineevent.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *RoutineEventUpsert) ClearClaimedBy() *RoutineEventUpsert {
	u.SetNull(routineevent.FieldClaimedBy)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *RoutineEventUpsert) SetLeaseExpiresAt(v time.Time) *RoutineEventUpsert {
	u.Set(routineevent.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *RoutineEventUpsert) UpdateLeaseExpiresAt() *RoutineEventUpsert {
	u.SetExcluded(routineevent.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *RoutineEventUpsert) ClearLeaseExpiresAt() *RoutineEventUpsert {
	u.SetNull(routineevent.FieldLeaseExpiresAt)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *RoutineEventUpsert) SetAttemptCount(v int) *RoutineEventUpsert {
	u.Set(routineevent.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *RoutineEventUpsert) UpdateAttemptCount() *RoutineEventUpsert {
	u.SetExcluded(routineevent.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *RoutineEventUpsert) AddAttemptCount(v int) *RoutineEventUpsert {
	u.Add(routineevent.FieldAttemptCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RoutineEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routineevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineEventUpsertOne) UpdateNewValues() *RoutineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(routineevent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(routineevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoutineEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoutineEventUpsertOne) Ignore() *RoutineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineEventUpsertOne) DoNothing() *RoutineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineEventCreate.OnConflict
// documentation for more info.
func (u *RoutineEventUpsertOne) Update(set func(*RoutineEventUpsert)) *RoutineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkItemID sets the "work_item_id" field.
func (u *RoutineEventUpsertOne) SetWorkItemID(v string) *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *RoutineEventUpsertOne) UpdateWorkItemID() *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *RoutineEventUpsertOne) ClearWorkItemID() *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.ClearWorkItemID()
	})
}

// SetEnvelope sets the "envelope" field.
func (u *RoutineEventUpsertOne) SetEnvelope(v map[string]interface{}) *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetEnvelope(v)
	})
}

// UpdateEnvelope sets the "envelope" field to the value that was provided on create.
func (u *RoutineEventUpsertOne) UpdateEnvelope() *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateEnvelope()
	})
}

// SetStatus sets the "status" field.
func (u *RoutineEventUpsertOne) SetStatus(v routineevent.Status) *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RoutineEventUpsertOne) UpdateStatus() *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateStatus()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *RoutineEventUpsertOne) SetClaimedBy(v string) *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *RoutineEventUpsertOne) UpdateClaimedBy() *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *RoutineEventUpsertOne) ClearClaimedBy() *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *RoutineEventUpsertOne) SetLeaseExpiresAt(v time.Time) *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *RoutineEventUpsertOne) UpdateLeaseExpiresAt() *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *RoutineEventUpsertOne) ClearLeaseExpiresAt() *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *RoutineEventUpsertOne) SetAttemptCount(v int) *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *RoutineEventUpsertOne) AddAttemptCount(v int) *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *RoutineEventUpsertOne) UpdateAttemptCount() *RoutineEventUpsertOne {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateAttemptCount()
	})
}

// Exec executes the query.
func (u *RoutineEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutineEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoutineEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RoutineEventUpsertOne.ID is not supported by MySQL driver. Use RoutineEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoutineEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoutineEventCreateBulk is the builder for creating many RoutineEvent entities in bulk.
type RoutineEventCreateBulk struct {
	config
	err      error
	builders []*RoutineEventCreate
	conflict []sql.ConflictOption
}

// Save creates the RoutineEvent entities in the database.
func (_c *RoutineEventCreateBulk) Save(ctx context.Context) ([]*RoutineEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoutineEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutineEventMutation)
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
func (_c *RoutineEventCreateBulk) SaveX(ctx context.Context) []*RoutineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoutineEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineEventUpsert) {
//			SetWorkItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoutineEventUpsertBulk {
	_c.conflict = opts
	return &RoutineEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoutineEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineEventCreateBulk) OnConflictColumns(columns ...string) *RoutineEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineEventUpsertBulk{
		create: _c,
	}
}

// RoutineEventUpsertBulk is the builder for "upsert"-ing
// a bulk of RoutineEvent nodes.
type RoutineEventUpsertBulk struct {
	create *RoutineEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RoutineEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routineevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineEventUpsertBulk) UpdateNewValues() *RoutineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(routineevent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(routineevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoutineEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoutineEventUpsertBulk) Ignore() *RoutineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineEventUpsertBulk) DoNothing() *RoutineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineEventCreateBulk.OnConflict
// documentation for more info.
func (u *RoutineEventUpsertBulk) Update(set func(*RoutineEventUpsert)) *RoutineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkItemID sets the "work_item_id" field.
func (u *RoutineEventUpsertBulk) SetWorkItemID(v string) *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *RoutineEventUpsertBulk) UpdateWorkItemID() *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *RoutineEventUpsertBulk) ClearWorkItemID() *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.ClearWorkItemID()
	})
}

// SetEnvelope sets the "envelope" field.
func (u *RoutineEventUpsertBulk) SetEnvelope(v map[string]interface{}) *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetEnvelope(v)
	})
}

// UpdateEnvelope sets the "envelope" field to the value that was provided on create.
func (u *RoutineEventUpsertBulk) UpdateEnvelope() *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateEnvelope()
	})
}

// SetStatus sets the "status" field.
func (u *RoutineEventUpsertBulk) SetStatus(v routineevent.Status) *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RoutineEventUpsertBulk) UpdateStatus() *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateStatus()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *RoutineEventUpsertBulk) SetClaimedBy(v string) *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *RoutineEventUpsertBulk) UpdateClaimedBy() *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *RoutineEventUpsertBulk) ClearClaimedBy() *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *RoutineEventUpsertBulk) SetLeaseExpiresAt(v time.Time) *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *RoutineEventUpsertBulk) UpdateLeaseExpiresAt() *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *RoutineEventUpsertBulk) ClearLeaseExpiresAt() *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *RoutineEventUpsertBulk) SetAttemptCount(v int) *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *RoutineEventUpsertBulk) AddAttemptCount(v int) *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *RoutineEventUpsertBulk) UpdateAttemptCount() *RoutineEventUpsertBulk {
	return u.Update(func(s *RoutineEventUpsert) {
		s.UpdateAttemptCount()
	})
}

// Exec executes the query.
func (u *RoutineEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoutineEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutineEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
