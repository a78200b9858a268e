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
	"github.com/hooklinehq/hookline/ent/scheduleditem"
)

// ScheduledItemCreate is the builder for creating a ScheduledItem entity.
type ScheduledItemCreate struct {
	config
	mutation *ScheduledItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *ScheduledItemCreate) SetAgentID(v string) *ScheduledItemCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetSessionKey sets the "session_key" field.
func (_c *ScheduledItemCreate) SetSessionKey(v string) *ScheduledItemCreate {
	_c.mutation.SetSessionKey(v)
	return _c
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_c *ScheduledItemCreate) SetNillableSessionKey(v *string) *ScheduledItemCreate {
	if v != nil {
		_c.SetSessionKey(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ScheduledItemCreate) SetType(v scheduleditem.Type) *ScheduledItemCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ScheduledItemCreate) SetPayload(v map[string]interface{}) *ScheduledItemCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetRunAt sets the "run_at" field.
func (_c *ScheduledItemCreate) SetRunAt(v time.Time) *ScheduledItemCreate {
	_c.mutation.SetRunAt(v)
	return _c
}

// SetRecurrence sets the "recurrence" field.
func (_c *ScheduledItemCreate) SetRecurrence(v string) *ScheduledItemCreate {
	_c.mutation.SetRecurrence(v)
	return _c
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_c *ScheduledItemCreate) SetNillableRecurrence(v *string) *ScheduledItemCreate {
	if v != nil {
		_c.SetRecurrence(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledItemCreate) SetStatus(v scheduleditem.Status) *ScheduledItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledItemCreate) SetNillableStatus(v *scheduleditem.Status) *ScheduledItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRoutineID sets the "routine_id" field.
func (_c *ScheduledItemCreate) SetRoutineID(v string) *ScheduledItemCreate {
	_c.mutation.SetRoutineID(v)
	return _c
}

// SetNillableRoutineID sets the "routine_id" field if the given value is not nil.
func (_c *ScheduledItemCreate) SetNillableRoutineID(v *string) *ScheduledItemCreate {
	if v != nil {
		_c.SetRoutineID(*v)
	}
	return _c
}

// SetRoutineRunID sets the "routine_run_id" field.
func (_c *ScheduledItemCreate) SetRoutineRunID(v string) *ScheduledItemCreate {
	_c.mutation.SetRoutineRunID(v)
	return _c
}

// SetNillableRoutineRunID sets the "routine_run_id" field if the given value is not nil.
func (_c *ScheduledItemCreate) SetNillableRoutineRunID(v *string) *ScheduledItemCreate {
	if v != nil {
		_c.SetRoutineRunID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledItemCreate) SetCreatedAt(v time.Time) *ScheduledItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledItemCreate) SetNillableCreatedAt(v *time.Time) *ScheduledItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledItemCreate) SetID(v string) *ScheduledItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledItemMutation object of the builder.
func (_c *ScheduledItemCreate) Mutation() *ScheduledItemMutation {
	return _c.mutation
}

// Save creates the ScheduledItem in the database.
func (_c *ScheduledItemCreate) Save(ctx context.Context) (*ScheduledItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledItemCreate) SaveX(ctx context.Context) *ScheduledItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduleditem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduleditem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledItemCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ScheduledItem.agent_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "ScheduledItem.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := scheduleditem.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ScheduledItem.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		return &ValidationError{Name: "run_at", err: errors.New(`ent: missing required field "ScheduledItem.run_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduleditem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledItem.created_at"`)}
	}
	return nil
}

func (_c *ScheduledItemCreate) sqlSave(ctx context.Context) (*ScheduledItem, error) {
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
			return nil, fmt.Errorf("unexpected ScheduledItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledItemCreate) createSpec() (*ScheduledItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduleditem.Table, sqlgraph.NewFieldSpec(scheduleditem.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(scheduleditem.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.SessionKey(); ok {
		_spec.SetField(scheduleditem.FieldSessionKey, field.TypeString, value)
		_node.SessionKey = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(scheduleditem.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(scheduleditem.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.RunAt(); ok {
		_spec.SetField(scheduleditem.FieldRunAt, field.TypeTime, value)
		_node.RunAt = value
	}
	if value, ok := _c.mutation.Recurrence(); ok {
		_spec.SetField(scheduleditem.FieldRecurrence, field.TypeString, value)
		_node.Recurrence = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduleditem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RoutineID(); ok {
		_spec.SetField(scheduleditem.FieldRoutineID, field.TypeString, value)
		_node.RoutineID = value
	}
	if value, ok := _c.mutation.RoutineRunID(); ok {
		_spec.SetField(scheduleditem.FieldRoutineRunID, field.TypeString, value)
		_node.RoutineRunID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduleditem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledItem.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledItemUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledItemCreate) OnConflict(opts ...sql.ConflictOption) *ScheduledItemUpsertOne {
	_c.conflict = opts
	return &ScheduledItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledItemCreate) OnConflictColumns(columns ...string) *ScheduledItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledItemUpsertOne{
		create: _c,
	}
}

type (
	// ScheduledItemUpsertOne is the builder for "upsert"-ing
	//  one ScheduledItem node.
	ScheduledItemUpsertOne struct {
		create *ScheduledItemCreate
	}

	// ScheduledItemUpsert is the "OnConflict" setter.
	ScheduledItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *ScheduledItemUpsert) SetAgentID(v string) *ScheduledItemUpsert {
	u.Set(scheduleditem.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *ScheduledItemUpsert) UpdateAgentID() *ScheduledItemUpsert {
	u.SetExcluded(scheduleditem.FieldAgentID)
	return u
}

// SetSessionKey sets the "session_key" field.
func (u *ScheduledItemUpsert) SetSessionKey(v string) *ScheduledItemUpsert {
	u.Set(scheduleditem.FieldSessionKey, v)
	return u
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *ScheduledItemUpsert) UpdateSessionKey() *ScheduledItemUpsert {
	u.SetExcluded(scheduleditem.FieldSessionKey)
	return u
}

// ClearSessionKey clears the value of the "session_key" field.
func (u *ScheduledItemUpsert) ClearSessionKey() *ScheduledItemUpsert {
	u.SetNull(scheduleditem.FieldSessionKey)
	return u
}

// SetType sets the "type" field.
func (u *ScheduledItemUpsert) SetType(v scheduleditem.Type) *ScheduledItemUpsert {
	u.Set(scheduleditem.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ScheduledItemUpsert) UpdateType() *ScheduledItemUpsert {
	u.SetExcluded(scheduleditem.FieldType)
	return u
}

// SetPayload sets the "payload" field.
func (u *ScheduledItemUpsert) SetPayload(v map[string]interface{}) *ScheduledItemUpsert {
	u.Set(scheduleditem.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ScheduledItemUpsert) UpdatePayload() *ScheduledItemUpsert {
	u.SetExcluded(scheduleditem.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *ScheduledItemUpsert) ClearPayload() *ScheduledItemUpsert {
	u.SetNull(scheduleditem.FieldPayload)
	return u
}

// SetRunAt sets the "run_at" field.
func (u *ScheduledItemUpsert) SetRunAt(v time.Time) *ScheduledItemUpsert {
	u.Set(scheduleditem.FieldRunAt, v)
	return u
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *ScheduledItemUpsert) UpdateRunAt() *ScheduledItemUpsert {
	u.SetExcluded(scheduleditem.FieldRunAt)
	return u
}

// SetRecurrence sets the "recurrence" field.
func (u *ScheduledItemUpsert) SetRecurrence(v string) *ScheduledItemUpsert {
	u.Set(scheduleditem.FieldRecurrence, v)
	return u
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *ScheduledItemUpsert) UpdateRecurrence() *ScheduledItemUpsert {
	u.SetExcluded(scheduleditem.FieldRecurrence)
	return u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *ScheduledItemUpsert) ClearRecurrence() *ScheduledItemUpsert {
	u.SetNull(scheduleditem.FieldRecurrence)
	return u
}

// SetStatus sets the "status" field.
func (u *ScheduledItemUpsert) SetStatus(v scheduleditem.Status) *ScheduledItemUpsert {
	u.Set(scheduleditem.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduledItemUpsert) UpdateStatus() *ScheduledItemUpsert {
	u.SetExcluded(scheduleditem.FieldStatus)
	return u
}

// SetRoutineID sets the "routine_id" field.
func (u *ScheduledItemUpsert) SetRoutineID(v string) *ScheduledItemUpsert {
	u.Set(scheduleditem.FieldRoutineID, v)
	return u
}

// UpdateRoutineID sets the "routine_id" field to the value that was provided on create.
func (u *ScheduledItemUpsert) UpdateRoutineID() *ScheduledItemUpsert {
	u.SetExcluded(scheduleditem.FieldRoutineID)
	return u
}

// ClearRoutineID clears the value of the "routine_id" field.
func (u *ScheduledItemUpsert) ClearRoutineID() *ScheduledItemUpsert {
	u.SetNull(scheduleditem.FieldRoutineID)
	return u
}

// SetRoutineRunID sets the "routine_run_id" field.
func (u *ScheduledItemUpsert) SetRoutineRunID(v string) *ScheduledItemUpsert {
	u.Set(scheduleditem.FieldRoutineRunID, v)
	return u
}

// UpdateRoutineRunID sets the "routine_run_id" field to the value that was provided on create.
func (u *ScheduledItemUpsert) UpdateRoutineRunID() *ScheduledItemUpsert {
	u.SetExcluded(scheduleditem.FieldRoutineRunID)
	return u
}

// ClearRoutineRunID clears the value of the "routine_run_id" field.
func (u *ScheduledItemUpsert) ClearRoutineRunID() *ScheduledItemUpsert {
	u.SetNull(scheduleditem.FieldRoutineRunID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScheduledItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduleditem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledItemUpsertOne) UpdateNewValues() *ScheduledItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scheduleditem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scheduleditem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduledItemUpsertOne) Ignore() *ScheduledItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledItemUpsertOne) DoNothing() *ScheduledItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledItemCreate.OnConflict
// documentation for more info.
func (u *ScheduledItemUpsertOne) Update(set func(*ScheduledItemUpsert)) *ScheduledItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *ScheduledItemUpsertOne) SetAgentID(v string) *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *ScheduledItemUpsertOne) UpdateAgentID() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateAgentID()
	})
}

// SetSessionKey sets the "session_key" field.
func (u *ScheduledItemUpsertOne) SetSessionKey(v string) *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetSessionKey(v)
	})
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *ScheduledItemUpsertOne) UpdateSessionKey() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateSessionKey()
	})
}

// ClearSessionKey clears the value of the "session_key" field.
func (u *ScheduledItemUpsertOne) ClearSessionKey() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearSessionKey()
	})
}

// SetType sets the "type" field.
func (u *ScheduledItemUpsertOne) SetType(v scheduleditem.Type) *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ScheduledItemUpsertOne) UpdateType() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateType()
	})
}

// SetPayload sets the "payload" field.
func (u *ScheduledItemUpsertOne) SetPayload(v map[string]interface{}) *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ScheduledItemUpsertOne) UpdatePayload() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *ScheduledItemUpsertOne) ClearPayload() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearPayload()
	})
}

// SetRunAt sets the "run_at" field.
func (u *ScheduledItemUpsertOne) SetRunAt(v time.Time) *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *ScheduledItemUpsertOne) UpdateRunAt() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateRunAt()
	})
}

// SetRecurrence sets the "recurrence" field.
func (u *ScheduledItemUpsertOne) SetRecurrence(v string) *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetRecurrence(v)
	})
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *ScheduledItemUpsertOne) UpdateRecurrence() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateRecurrence()
	})
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *ScheduledItemUpsertOne) ClearRecurrence() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearRecurrence()
	})
}

// SetStatus sets the "status" field.
func (u *ScheduledItemUpsertOne) SetStatus(v scheduleditem.Status) *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduledItemUpsertOne) UpdateStatus() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateStatus()
	})
}

// SetRoutineID sets the "routine_id" field.
func (u *ScheduledItemUpsertOne) SetRoutineID(v string) *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetRoutineID(v)
	})
}

// UpdateRoutineID sets the "routine_id" field to the value that was provided on create.
func (u *ScheduledItemUpsertOne) UpdateRoutineID() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateRoutineID()
	})
}

// ClearRoutineID clears the value of the "routine_id" field.
func (u *ScheduledItemUpsertOne) ClearRoutineID() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearRoutineID()
	})
}

// SetRoutineRunID sets the "routine_run_id" field.
func (u *ScheduledItemUpsertOne) SetRoutineRunID(v string) *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetRoutineRunID(v)
	})
}

// UpdateRoutineRunID sets the "routine_run_id" field to the value that was provided on create.
func (u *ScheduledItemUpsertOne) UpdateRoutineRunID() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateRoutineRunID()
	})
}

// ClearRoutineRunID clears the value of the "routine_run_id" field.
func (u *ScheduledItemUpsertOne) ClearRoutineRunID() *ScheduledItemUpsertOne {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearRoutineRunID()
	})
}

// Exec executes the query.
func (u *ScheduledItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduledItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScheduledItemUpsertOne.ID is not supported by MySQL driver. Use ScheduledItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduledItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduledItemCreateBulk is the builder for creating many ScheduledItem entities in bulk.
type ScheduledItemCreateBulk struct {
	config
	err      error
	builders []*ScheduledItemCreate
	conflict []sql.ConflictOption
}

// Save creates the ScheduledItem entities in the database.
func (_c *ScheduledItemCreateBulk) Save(ctx context.Context) ([]*ScheduledItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledItemMutation)
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
func (_c *ScheduledItemCreateBulk) SaveX(ctx context.Context) []*ScheduledItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledItemUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduledItemUpsertBulk {
	_c.conflict = opts
	return &ScheduledItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledItemCreateBulk) OnConflictColumns(columns ...string) *ScheduledItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledItemUpsertBulk{
		create: _c,
	}
}

// ScheduledItemUpsertBulk is the builder for "upsert"-ing
// a bulk of ScheduledItem nodes.
type ScheduledItemUpsertBulk struct {
	create *ScheduledItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScheduledItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduleditem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledItemUpsertBulk) UpdateNewValues() *ScheduledItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scheduleditem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scheduleditem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduledItemUpsertBulk) Ignore() *ScheduledItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledItemUpsertBulk) DoNothing() *ScheduledItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledItemCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduledItemUpsertBulk) Update(set func(*ScheduledItemUpsert)) *ScheduledItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *ScheduledItemUpsertBulk) SetAgentID(v string) *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *ScheduledItemUpsertBulk) UpdateAgentID() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateAgentID()
	})
}

// SetSessionKey sets the "session_key" field.
func (u *ScheduledItemUpsertBulk) SetSessionKey(v string) *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetSessionKey(v)
	})
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *ScheduledItemUpsertBulk) UpdateSessionKey() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateSessionKey()
	})
}

// ClearSessionKey clears the value of the "session_key" field.
func (u *ScheduledItemUpsertBulk) ClearSessionKey() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearSessionKey()
	})
}

// SetType sets the "type" field.
func (u *ScheduledItemUpsertBulk) SetType(v scheduleditem.Type) *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ScheduledItemUpsertBulk) UpdateType() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateType()
	})
}

// SetPayload sets the "payload" field.
func (u *ScheduledItemUpsertBulk) SetPayload(v map[string]interface{}) *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ScheduledItemUpsertBulk) UpdatePayload() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *ScheduledItemUpsertBulk) ClearPayload() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearPayload()
	})
}

// SetRunAt sets the "run_at" field.
func (u *ScheduledItemUpsertBulk) SetRunAt(v time.Time) *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *ScheduledItemUpsertBulk) UpdateRunAt() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateRunAt()
	})
}

// SetRecurrence sets the "recurrence" field.
func (u *ScheduledItemUpsertBulk) SetRecurrence(v string) *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetRecurrence(v)
	})
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *ScheduledItemUpsertBulk) UpdateRecurrence() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateRecurrence()
	})
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *ScheduledItemUpsertBulk) ClearRecurrence() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearRecurrence()
	})
}

// SetStatus sets the "status" field.
func (u *ScheduledItemUpsertBulk) SetStatus(v scheduleditem.Status) *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduledItemUpsertBulk) UpdateStatus() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateStatus()
	})
}

// SetRoutineID sets the "routine_id" field.
func (u *ScheduledItemUpsertBulk) SetRoutineID(v string) *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetRoutineID(v)
	})
}

// UpdateRoutineID sets the "routine_id" field to the value that was provided on create.
func (u *ScheduledItemUpsertBulk) UpdateRoutineID() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateRoutineID()
	})
}

// ClearRoutineID clears the value of the "routine_id" field.
func (u *ScheduledItemUpsertBulk) ClearRoutineID() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearRoutineID()
	})
}

// SetRoutineRunID sets the "routine_run_id" field.
func (u *ScheduledItemUpsertBulk) SetRoutineRunID(v string) *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.SetRoutineRunID(v)
	})
}

// UpdateRoutineRunID sets the "routine_run_id" field to the value that was provided on create.
func (u *ScheduledItemUpsertBulk) UpdateRoutineRunID() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.UpdateRoutineRunID()
	})
}

// ClearRoutineRunID clears the value of the "routine_run_id" field.
func (u *ScheduledItemUpsertBulk) ClearRoutineRunID() *ScheduledItemUpsertBulk {
	return u.Update(func(s *ScheduledItemUpsert) {
		s.ClearRoutineRunID()
	})
}

// Exec executes the query.
func (u *ScheduledItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScheduledItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
