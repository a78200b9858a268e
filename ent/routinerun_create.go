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
	"github.com/hooklinehq/hookline/ent/routinerun"
)

// RoutineRunCreate is the builder for creating a RoutineRun entity.
type RoutineRunCreate struct {
	config
	mutation *RoutineRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRoutineID sets the "routine_id" field.
func (_c *RoutineRunCreate) SetRoutineID(v string) *RoutineRunCreate {
	_c.mutation.SetRoutineID(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *RoutineRunCreate) SetDecision(v routinerun.Decision) *RoutineRunCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetDecisionReason sets the "decision_reason" field.
func (_c *RoutineRunCreate) SetDecisionReason(v string) *RoutineRunCreate {
	_c.mutation.SetDecisionReason(v)
	return _c
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_c *RoutineRunCreate) SetNillableDecisionReason(v *string) *RoutineRunCreate {
	if v != nil {
		_c.SetDecisionReason(*v)
	}
	return _c
}

// SetEnvelope sets the "envelope" field.
func (_c *RoutineRunCreate) SetEnvelope(v map[string]interface{}) *RoutineRunCreate {
	_c.mutation.SetEnvelope(v)
	return _c
}

// SetScheduledItemID sets the "scheduled_item_id" field.
func (_c *RoutineRunCreate) SetScheduledItemID(v string) *RoutineRunCreate {
	_c.mutation.SetScheduledItemID(v)
	return _c
}

// SetNillableScheduledItemID sets the "scheduled_item_id" field if the given value is not nil.
func (_c *RoutineRunCreate) SetNillableScheduledItemID(v *string) *RoutineRunCreate {
	if v != nil {
		_c.SetScheduledItemID(*v)
	}
	return _c
}

// SetWorkItemID sets the "work_item_id" field.
func (_c *RoutineRunCreate) SetWorkItemID(v string) *RoutineRunCreate {
	_c.mutation.SetWorkItemID(v)
	return _c
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_c *RoutineRunCreate) SetNillableWorkItemID(v *string) *RoutineRunCreate {
	if v != nil {
		_c.SetWorkItemID(*v)
	}
	return _c
}

// SetDispatchID sets the "dispatch_id" field.
func (_c *RoutineRunCreate) SetDispatchID(v string) *RoutineRunCreate {
	_c.mutation.SetDispatchID(v)
	return _c
}

// SetNillableDispatchID sets the "dispatch_id" field if the given value is not nil.
func (_c *RoutineRunCreate) SetNillableDispatchID(v *string) *RoutineRunCreate {
	if v != nil {
		_c.SetDispatchID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoutineRunCreate) SetCreatedAt(v time.Time) *RoutineRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoutineRunCreate) SetNillableCreatedAt(v *time.Time) *RoutineRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoutineRunCreate) SetID(v string) *RoutineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RoutineRunMutation object of the builder.
func (_c *RoutineRunCreate) Mutation() *RoutineRunMutation {
	return _c.mutation
}

// Save creates the RoutineRun in the database.
func (_c *RoutineRunCreate) Save(ctx context.Context) (*RoutineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutineRunCreate) SaveX(ctx context.Context) *RoutineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutineRunCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := routinerun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutineRunCreate) check() error {
	if _, ok := _c.mutation.RoutineID(); !ok {
		return &ValidationError{Name: "routine_id", err: errors.New(`ent: missing required field "RoutineRun.routine_id"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "RoutineRun.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := routinerun.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "RoutineRun.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoutineRun.created_at"`)}
	}
	return nil
}

func (_c *RoutineRunCreate) sqlSave(ctx context.Context) (*RoutineRun, error) {
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
			return nil, fmt.Errorf("unexpected RoutineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoutineRunCreate) createSpec() (*RoutineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &RoutineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routinerun.Table, sqlgraph.NewFieldSpec(routinerun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoutineID(); ok {
		_spec.SetField(routinerun.FieldRoutineID, field.TypeString, value)
		_node.RoutineID = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(routinerun.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.DecisionReason(); ok {
		_spec.SetField(routinerun.FieldDecisionReason, field.TypeString, value)
		_node.DecisionReason = value
	}
	if value, ok := _c.mutation.Envelope(); ok {
		_spec.SetField(routinerun.FieldEnvelope, field.TypeJSON, value)
		_node.Envelope = value
	}
	if value, ok := _c.mutation.ScheduledItemID(); ok {
		_spec.SetField(routinerun.FieldScheduledItemID, field.TypeString, value)
		_node.ScheduledItemID = value
	}
	if value, ok := _c.mutation.WorkItemID(); ok {
		_spec.SetField(routinerun.FieldWorkItemID, field.TypeString, value)
		_node.WorkItemID = value
	}
	if value, ok := _c.mutation.DispatchID(); ok {
		_spec.SetField(routinerun.FieldDispatchID, field.TypeString, value)
		_node.DispatchID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(routinerun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoutineRun.Create().
//		SetRoutineID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineRunUpsert) {
//			SetRoutineID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineRunCreate) OnConflict(opts ...sql.ConflictOption) *RoutineRunUpsertOne {
	_c.conflict = opts
	return &RoutineRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoutineRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineRunCreate) OnConflictColumns(columns ...string) *RoutineRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineRunUpsertOne{
		create: _c,
	}
}

type (
	// RoutineRunUpsertOne is the builder for "upsert"-ing
	//  one RoutineRun node.
	RoutineRunUpsertOne struct {
		create *RoutineRunCreate
	}

	// RoutineRunUpsert is the "OnConflict" setter.
	RoutineRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetRoutineID sets the "routine_id" field.
func (u *RoutineRunUpsert) SetRoutineID(v string) *RoutineRunUpsert {
	u.Set(routinerun.FieldRoutineID, v)
	return u
}

// UpdateRoutineID sets the "routine_id" field to the value that was provided on create.
func (u *RoutineRunUpsert) UpdateRoutineID() *RoutineRunUpsert {
	u.SetExcluded(routinerun.FieldRoutineID)
	return u
}

// SetDecision sets the "decision" field.
func (u *RoutineRunUpsert) SetDecision(v routinerun.Decision) *RoutineRunUpsert {
	u.Set(routinerun.FieldDecision, v)
	return u
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *RoutineRunUpsert) UpdateDecision() *RoutineRunUpsert {
	u.SetExcluded(routinerun.FieldDecision)
	return u
}

// SetDecisionReason sets the "decision_reason" field.
func (u *RoutineRunUpsert) SetDecisionReason(v string) *RoutineRunUpsert {
	u.Set(routinerun.FieldDecisionReason, v)
	return u
}

// UpdateDecisionReason sets the "decision_reason" field to the value that was provided on create.
func (u *RoutineRunUpsert) UpdateDecisionReason() *RoutineRunUpsert {
	u.SetExcluded(routinerun.FieldDecisionReason)
	return u
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (u *RoutineRunUpsert) ClearDecisionReason() *RoutineRunUpsert {
	u.SetNull(routinerun.FieldDecisionReason)
	return u
}

// SetEnvelope sets the "envelope" field.
func (u *RoutineRunUpsert) SetEnvelope(v map[string]interface{}) *RoutineRunUpsert {
	u.Set(routinerun.FieldEnvelope, v)
	return u
}

// UpdateEnvelope sets the "envelope" field to the value that was provided on create.
func (u *RoutineRunUpsert) UpdateEnvelope() *RoutineRunUpsert {
	u.SetExcluded(routinerun.FieldEnvelope)
	return u
}

// ClearEnvelope clears the value of the "envelope" field.
func (u *RoutineRunUpsert) ClearEnvelope() *RoutineRunUpsert {
	u.SetNull(routinerun.FieldEnvelope)
	return u
}

// SetScheduledItemID sets the "scheduled_item_id" field.
func (u *RoutineRunUpsert) SetScheduledItemID(v string) *RoutineRunUpsert {
	u.Set(routinerun.FieldScheduledItemID, v)
	return u
}

// UpdateScheduledItemID sets the "scheduled_item_id" field to the value that was provided on create.
func (u *RoutineRunUpsert) UpdateScheduledItemID() *RoutineRunUpsert {
	u.SetExcluded(routinerun.FieldScheduledItemID)
	return u
}

// ClearScheduledItemID clears the value of the "scheduled_item_id" field.
func (u *RoutineRunUpsert) ClearScheduledItemID() *RoutineRunUpsert {
	u.SetNull(routinerun.FieldScheduledItemID)
	return u
}

// SetWorkItemID sets the "work_item_id" field.
func (u *RoutineRunUpsert) SetWorkItemID(v string) *RoutineRunUpsert {
	u.Set(routinerun.FieldWorkItemID, v)
	return u
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *RoutineRunUpsert) UpdateWorkItemID() *RoutineRunUpsert {
	u.SetExcluded(routinerun.FieldWorkItemID)
	return u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *RoutineRunUpsert) ClearWorkItemID() *RoutineRunUpsert {
	u.SetNull(routinerun.FieldWorkItemID)
	return u
}

// SetDispatchID sets the "dispatch_id" field.
func (u *RoutineRunUpsert) SetDispatchID(v string) *RoutineRunUpsert {
	u.Set(routinerun.FieldDispatchID, v)
	return u
}

// UpdateDispatchID sets the "dispatch_id" field to the value that was provided on create.
func (u *RoutineRunUpsert) UpdateDispatchID() *RoutineRunUpsert {
	u.SetExcluded(routinerun.FieldDispatchID)
	return u
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (u *RoutineRunUpsert) ClearDispatchID() *RoutineRunUpsert {
	u.SetNull(routinerun.FieldDispatchID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RoutineRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routinerun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineRunUpsertOne) UpdateNewValues() *RoutineRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(routinerun.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(routinerun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoutineRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoutineRunUpsertOne) Ignore() *RoutineRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineRunUpsertOne) DoNothing() *RoutineRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineRunCreate.OnConflict
// documentation for more info.
func (u *RoutineRunUpsertOne) Update(set func(*RoutineRunUpsert)) *RoutineRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoutineID sets the "routine_id" field.
func (u *RoutineRunUpsertOne) SetRoutineID(v string) *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetRoutineID(v)
	})
}

// UpdateRoutineID sets the "routine_id" field to the value that was provided on create.
func (u *RoutineRunUpsertOne) UpdateRoutineID() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateRoutineID()
	})
}

// SetDecision sets the "decision" field.
func (u *RoutineRunUpsertOne) SetDecision(v routinerun.Decision) *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *RoutineRunUpsertOne) UpdateDecision() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateDecision()
	})
}

// SetDecisionReason sets the "decision_reason" field.
func (u *RoutineRunUpsertOne) SetDecisionReason(v string) *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetDecisionReason(v)
	})
}

// UpdateDecisionReason sets the "decision_reason" field to the value that was provided on create.
func (u *RoutineRunUpsertOne) UpdateDecisionReason() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateDecisionReason()
	})
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (u *RoutineRunUpsertOne) ClearDecisionReason() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearDecisionReason()
	})
}

// SetEnvelope sets the "envelope" field.
func (u *RoutineRunUpsertOne) SetEnvelope(v map[string]interface{}) *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetEnvelope(v)
	})
}

// UpdateEnvelope sets the "envelope" field to the value that was provided on create.
func (u *RoutineRunUpsertOne) UpdateEnvelope() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateEnvelope()
	})
}

// ClearEnvelope clears the value of the "envelope" field.
func (u *RoutineRunUpsertOne) ClearEnvelope() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearEnvelope()
	})
}

// SetScheduledItemID sets the "scheduled_item_id" field.
func (u *RoutineRunUpsertOne) SetScheduledItemID(v string) *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetScheduledItemID(v)
	})
}

// UpdateScheduledItemID sets the "scheduled_item_id" field to the value that was provided on create.
func (u *RoutineRunUpsertOne) UpdateScheduledItemID() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateScheduledItemID()
	})
}

// ClearScheduledItemID clears the value of the "scheduled_item_id" field.
func (u *RoutineRunUpsertOne) ClearScheduledItemID() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearScheduledItemID()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *RoutineRunUpsertOne) SetWorkItemID(v string) *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *RoutineRunUpsertOne) UpdateWorkItemID() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *RoutineRunUpsertOne) ClearWorkItemID() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearWorkItemID()
	})
}

// SetDispatchID sets the "dispatch_id" field.
func (u *RoutineRunUpsertOne) SetDispatchID(v string) *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetDispatchID(v)
	})
}

// UpdateDispatchID sets the "dispatch_id" field to the value that was provided on create.
func (u *RoutineRunUpsertOne) UpdateDispatchID() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateDispatchID()
	})
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (u *RoutineRunUpsertOne) ClearDispatchID() *RoutineRunUpsertOne {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearDispatchID()
	})
}

// Exec executes the query.
func (u *RoutineRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutineRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoutineRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RoutineRunUpsertOne.ID is not supported by MySQL driver. Use RoutineRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoutineRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoutineRunCreateBulk is the builder for creating many RoutineRun entities in bulk.
type RoutineRunCreateBulk struct {
	config
	err      error
	builders []*RoutineRunCreate
	conflict []sql.ConflictOption
}

// Save creates the RoutineRun entities in the database.
func (_c *RoutineRunCreateBulk) Save(ctx context.Context) ([]*RoutineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoutineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutineRunMutation)
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
func (_c *RoutineRunCreateBulk) SaveX(ctx context.Context) []*RoutineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoutineRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineRunUpsert) {
//			SetRoutineID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoutineRunUpsertBulk {
	_c.conflict = opts
	return &RoutineRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoutineRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineRunCreateBulk) OnConflictColumns(columns ...string) *RoutineRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineRunUpsertBulk{
		create: _c,
	}
}

// RoutineRunUpsertBulk is the builder for "upsert"-ing
// a bulk of RoutineRun nodes.
type RoutineRunUpsertBulk struct {
	create *RoutineRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RoutineRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routinerun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineRunUpsertBulk) UpdateNewValues() *RoutineRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(routinerun.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(routinerun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoutineRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoutineRunUpsertBulk) Ignore() *RoutineRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineRunUpsertBulk) DoNothing() *RoutineRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineRunCreateBulk.OnConflict
// documentation for more info.
func (u *RoutineRunUpsertBulk) Update(set func(*RoutineRunUpsert)) *RoutineRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoutineID sets the "routine_id" field.
func (u *RoutineRunUpsertBulk) SetRoutineID(v string) *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetRoutineID(v)
	})
}

// UpdateRoutineID sets the "routine_id" field to the value that was provided on create.
func (u *RoutineRunUpsertBulk) UpdateRoutineID() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateRoutineID()
	})
}

// SetDecision sets the "decision" field.
func (u *RoutineRunUpsertBulk) SetDecision(v routinerun.Decision) *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *RoutineRunUpsertBulk) UpdateDecision() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateDecision()
	})
}

// SetDecisionReason sets the "decision_reason" field.
func (u *RoutineRunUpsertBulk) SetDecisionReason(v string) *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetDecisionReason(v)
	})
}

// UpdateDecisionReason sets the "decision_reason" field to the value that was provided on create.
func (u *RoutineRunUpsertBulk) UpdateDecisionReason() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateDecisionReason()
	})
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (u *RoutineRunUpsertBulk) ClearDecisionReason() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearDecisionReason()
	})
}

// SetEnvelope sets the "envelope" field.
func (u *RoutineRunUpsertBulk) SetEnvelope(v map[string]interface{}) *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetEnvelope(v)
	})
}

// UpdateEnvelope sets the "envelope" field to the value that was provided on create.
func (u *RoutineRunUpsertBulk) UpdateEnvelope() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateEnvelope()
	})
}

// ClearEnvelope clears the value of the "envelope" field.
func (u *RoutineRunUpsertBulk) ClearEnvelope() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearEnvelope()
	})
}

// SetScheduledItemID sets the "scheduled_item_id" field.
func (u *RoutineRunUpsertBulk) SetScheduledItemID(v string) *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetScheduledItemID(v)
	})
}

// UpdateScheduledItemID sets the "scheduled_item_id" field to the value that was provided on create.
func (u *RoutineRunUpsertBulk) UpdateScheduledItemID() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateScheduledItemID()
	})
}

// ClearScheduledItemID clears the value of the "scheduled_item_id" field.
func (u *RoutineRunUpsertBulk) ClearScheduledItemID() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearScheduledItemID()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *RoutineRunUpsertBulk) SetWorkItemID(v string) *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *RoutineRunUpsertBulk) UpdateWorkItemID() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *RoutineRunUpsertBulk) ClearWorkItemID() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearWorkItemID()
	})
}

// SetDispatchID sets the "dispatch_id" field.
func (u *RoutineRunUpsertBulk) SetDispatchID(v string) *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.SetDispatchID(v)
	})
}

// UpdateDispatchID sets the "dispatch_id" field to the value that was provided on create.
func (u *RoutineRunUpsertBulk) UpdateDispatchID() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.UpdateDispatchID()
	})
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (u *RoutineRunUpsertBulk) ClearDispatchID() *RoutineRunUpsertBulk {
	return u.Update(func(s *RoutineRunUpsert) {
		s.ClearDispatchID()
	})
}

// Exec executes the query.
func (u *RoutineRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoutineRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutineRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
