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
	"github.com/hooklinehq/hookline/ent/queuelane"
)

// QueueLaneCreate is the builder for creating a QueueLane entity.
type QueueLaneCreate struct {
	config
	mutation *QueueLaneMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionKey sets the "session_key" field.
func (_c *QueueLaneCreate) SetSessionKey(v string) *QueueLaneCreate {
	_c.mutation.SetSessionKey(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *QueueLaneCreate) SetAgentID(v string) *QueueLaneCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *QueueLaneCreate) SetState(v queuelane.State) *QueueLaneCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *QueueLaneCreate) SetNillableState(v *queuelane.State) *QueueLaneCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *QueueLaneCreate) SetMode(v queuelane.Mode) *QueueLaneCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *QueueLaneCreate) SetNillableMode(v *queuelane.Mode) *QueueLaneCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetIsPaused sets the "is_paused" field.
func (_c *QueueLaneCreate) SetIsPaused(v bool) *QueueLaneCreate {
	_c.mutation.SetIsPaused(v)
	return _c
}

// SetNillableIsPaused sets the "is_paused" field if the given value is not nil.
func (_c *QueueLaneCreate) SetNillableIsPaused(v *bool) *QueueLaneCreate {
	if v != nil {
		_c.SetIsPaused(*v)
	}
	return _c
}

// SetDebounceUntil sets the "debounce_until" field.
func (_c *QueueLaneCreate) SetDebounceUntil(v time.Time) *QueueLaneCreate {
	_c.mutation.SetDebounceUntil(v)
	return _c
}

// SetNillableDebounceUntil sets the "debounce_until" field if the given value is not nil.
func (_c *QueueLaneCreate) SetNillableDebounceUntil(v *time.Time) *QueueLaneCreate {
	if v != nil {
		_c.SetDebounceUntil(*v)
	}
	return _c
}

// SetDebounceMs sets the "debounce_ms" field.
func (_c *QueueLaneCreate) SetDebounceMs(v int) *QueueLaneCreate {
	_c.mutation.SetDebounceMs(v)
	return _c
}

// SetNillableDebounceMs sets the "debounce_ms" field if the given value is not nil.
func (_c *QueueLaneCreate) SetNillableDebounceMs(v *int) *QueueLaneCreate {
	if v != nil {
		_c.SetDebounceMs(*v)
	}
	return _c
}

// SetMaxQueued sets the "max_queued" field.
func (_c *QueueLaneCreate) SetMaxQueued(v int) *QueueLaneCreate {
	_c.mutation.SetMaxQueued(v)
	return _c
}

// SetNillableMaxQueued sets the "max_queued" field if the given value is not nil.
func (_c *QueueLaneCreate) SetNillableMaxQueued(v *int) *QueueLaneCreate {
	if v != nil {
		_c.SetMaxQueued(*v)
	}
	return _c
}

// SetActiveDispatchID sets the "active_dispatch_id" field.
func (_c *QueueLaneCreate) SetActiveDispatchID(v string) *QueueLaneCreate {
	_c.mutation.SetActiveDispatchID(v)
	return _c
}

// SetNillableActiveDispatchID sets the "active_dispatch_id" field if the given value is not nil.
func (_c *QueueLaneCreate) SetNillableActiveDispatchID(v *string) *QueueLaneCreate {
	if v != nil {
		_c.SetActiveDispatchID(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueueLaneCreate) SetUpdatedAt(v time.Time) *QueueLaneCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueueLaneCreate) SetNillableUpdatedAt(v *time.Time) *QueueLaneCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueLaneCreate) SetID(v string) *QueueLaneCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueLaneMutation object of the builder.
func (_c *QueueLaneCreate) Mutation() *QueueLaneMutation {
	return _c.mutation
}

// Save creates the QueueLane in the database.
func (_c *QueueLaneCreate) Save(ctx context.Context) (*QueueLane, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueLaneCreate) SaveX(ctx context.Context) *QueueLane {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueLaneCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueLaneCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueLaneCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := queuelane.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := queuelane.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.IsPaused(); !ok {
		v := queuelane.DefaultIsPaused
		_c.mutation.SetIsPaused(v)
	}
	if _, ok := _c.mutation.DebounceMs(); !ok {
		v := queuelane.DefaultDebounceMs
		_c.mutation.SetDebounceMs(v)
	}
	if _, ok := _c.mutation.MaxQueued(); !ok {
		v := queuelane.DefaultMaxQueued
		_c.mutation.SetMaxQueued(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := queuelane.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueLaneCreate) check() error {
	if _, ok := _c.mutation.SessionKey(); !ok {
		return &ValidationError{Name: "session_key", err: errors.New(`ent: missing required field "QueueLane.session_key"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "QueueLane.agent_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "QueueLane.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := queuelane.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "QueueLane.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "QueueLane.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := queuelane.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "QueueLane.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPaused(); !ok {
		return &ValidationError{Name: "is_paused", err: errors.New(`ent: missing required field "QueueLane.is_paused"`)}
	}
	if _, ok := _c.mutation.DebounceMs(); !ok {
		return &ValidationError{Name: "debounce_ms", err: errors.New(`ent: missing required field "QueueLane.debounce_ms"`)}
	}
	if _, ok := _c.mutation.MaxQueued(); !ok {
		return &ValidationError{Name: "max_queued", err: errors.New(`ent: missing required field "QueueLane.max_queued"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueueLane.updated_at"`)}
	}
	return nil
}

func (_c *QueueLaneCreate) sqlSave(ctx context.Context) (*QueueLane, error) {
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
			return nil, fmt.Errorf("unexpected QueueLane.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueLaneCreate) createSpec() (*QueueLane, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueLane{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuelane.Table, sqlgraph.NewFieldSpec(queuelane.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionKey(); ok {
		_spec.SetField(queuelane.FieldSessionKey, field.TypeString, value)
		_node.SessionKey = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(queuelane.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(queuelane.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(queuelane.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.IsPaused(); ok {
		_spec.SetField(queuelane.FieldIsPaused, field.TypeBool, value)
		_node.IsPaused = value
	}
	if value, ok := _c.mutation.DebounceUntil(); ok {
		_spec.SetField(queuelane.FieldDebounceUntil, field.TypeTime, value)
		_node.DebounceUntil = &value
	}
	if value, ok := _c.mutation.DebounceMs(); ok {
		_spec.SetField(queuelane.FieldDebounceMs, field.TypeInt, value)
		_node.DebounceMs = value
	}
	if value, ok := _c.mutation.MaxQueued(); ok {
		_spec.SetField(queuelane.FieldMaxQueued, field.TypeInt, value)
		_node.MaxQueued = value
	}
	if value, ok := _c.mutation.ActiveDispatchID(); ok {
		_spec.SetField(queuelane.FieldActiveDispatchID, field.TypeString, value)
		_node.ActiveDispatchID = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(queuelane.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueLane.Create().
//		SetSessionKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueLaneUpsert) {
//			SetSessionKey(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueLaneCreate) OnConflict(opts ...sql.ConflictOption) *QueueLaneUpsertOne {
	_c.conflict = opts
	return &QueueLaneUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueLane.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueLaneCreate) OnConflictColumns(columns ...string) *QueueLaneUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueLaneUpsertOne{
		create: _c,
	}
}

type (
	// QueueLaneUpsertOne is the builder for "upsert"-ing
	//  one QueueLane node.
	QueueLaneUpsertOne struct {
		create *QueueLaneCreate
	}

	// QueueLaneUpsert is the "OnConflict" setter.
	QueueLaneUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionKey sets the "session_key" field.
func (u *QueueLaneUpsert) SetSessionKey(v string) *QueueLaneUpsert {
	u.Set(queuelane.FieldSessionKey, v)
	return u
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateSessionKey() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldSessionKey)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *QueueLaneUpsert) SetAgentID(v string) *QueueLaneUpsert {
	u.Set(queuelane.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateAgentID() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldAgentID)
	return u
}

// SetState sets the "state" field.
func (u *QueueLaneUpsert) SetState(v queuelane.State) *QueueLaneUpsert {
	u.Set(queuelane.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateState() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldState)
	return u
}

// SetMode sets the "mode" field.
func (u *QueueLaneUpsert) SetMode(v queuelane.Mode) *QueueLaneUpsert {
	u.Set(queuelane.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateMode() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldMode)
	return u
}

// SetIsPaused sets the "is_paused" field.
func (u *QueueLaneUpsert) SetIsPaused(v bool) *QueueLaneUpsert {
	u.Set(queuelane.FieldIsPaused, v)
	return u
}

// UpdateIsPaused sets the "is_paused" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateIsPaused() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldIsPaused)
	return u
}

// SetDebounceUntil sets the "debounce_until" field.
func (u *QueueLaneUpsert) SetDebounceUntil(v time.Time) *QueueLaneUpsert {
	u.Set(queuelane.FieldDebounceUntil, v)
	return u
}

// UpdateDebounceUntil sets the "debounce_until" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateDebounceUntil() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldDebounceUntil)
	return u
}

// ClearDebounceUntil clears the value of the "debounce_until" field.
func (u *QueueLaneUpsert) ClearDebounceUntil() *QueueLaneUpsert {
	u.SetNull(queuelane.FieldDebounceUntil)
	return u
}

// SetDebounceMs sets the "debounce_ms" field.
func (u *QueueLaneUpsert) SetDebounceMs(v int) *QueueLaneUpsert {
	u.Set(queuelane.FieldDebounceMs, v)
	return u
}

// UpdateDebounceMs sets the "debounce_ms" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateDebounceMs() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldDebounceMs)
	return u
}

// AddDebounceMs adds v to the "debounce_ms" field.
func (u *QueueLaneUpsert) AddDebounceMs(v int) *QueueLaneUpsert {
	u.Add(queuelane.FieldDebounceMs, v)
	return u
}

// SetMaxQueued sets the "max_queued" field.
func (u *QueueLaneUpsert) SetMaxQueued(v int) *QueueLaneUpsert {
	u.Set(queuelane.FieldMaxQueued, v)
	return u
}

// UpdateMaxQueued sets the "max_queued" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateMaxQueued() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldMaxQueued)
	return u
}

// AddMaxQueued adds v to the "max_queued" field.
func (u *QueueLaneUpsert) AddMaxQueued(v int) *QueueLaneUpsert {
	u.Add(queuelane.FieldMaxQueued, v)
	return u
}

// SetActiveDispatchID sets the "active_dispatch_id" field.
func (u *QueueLaneUpsert) SetActiveDispatchID(v string) *QueueLaneUpsert {
	u.Set(queuelane.FieldActiveDispatchID, v)
	return u
}

// UpdateActiveDispatchID sets the "active_dispatch_id" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateActiveDispatchID() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldActiveDispatchID)
	return u
}

// ClearActiveDispatchID clears the value of the "active_dispatch_id" field.
func (u *QueueLaneUpsert) ClearActiveDispatchID() *QueueLaneUpsert {
	u.SetNull(queuelane.FieldActiveDispatchID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QueueLaneUpsert) SetUpdatedAt(v time.Time) *QueueLaneUpsert {
	u.Set(queuelane.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QueueLaneUpsert) UpdateUpdatedAt() *QueueLaneUpsert {
	u.SetExcluded(queuelane.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueueLane.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuelane.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueLaneUpsertOne) UpdateNewValues() *QueueLaneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queuelane.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueLane.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueueLaneUpsertOne) Ignore() *QueueLaneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueLaneUpsertOne) DoNothing() *QueueLaneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueLaneCreate.OnConflict
// documentation for more info.
func (u *QueueLaneUpsertOne) Update(set func(*QueueLaneUpsert)) *QueueLaneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueLaneUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionKey sets the "session_key" field.
func (u *QueueLaneUpsertOne) SetSessionKey(v string) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetSessionKey(v)
	})
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateSessionKey() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateSessionKey()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *QueueLaneUpsertOne) SetAgentID(v string) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateAgentID() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateAgentID()
	})
}

// SetState sets the "state" field.
func (u *QueueLaneUpsertOne) SetState(v queuelane.State) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateState() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateState()
	})
}

// SetMode sets the "mode" field.
func (u *QueueLaneUpsertOne) SetMode(v queuelane.Mode) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateMode() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateMode()
	})
}

// SetIsPaused sets the "is_paused" field.
func (u *QueueLaneUpsertOne) SetIsPaused(v bool) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetIsPaused(v)
	})
}

// UpdateIsPaused sets the "is_paused" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateIsPaused() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateIsPaused()
	})
}

// SetDebounceUntil sets the "debounce_until" field.
func (u *QueueLaneUpsertOne) SetDebounceUntil(v time.Time) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetDebounceUntil(v)
	})
}

// UpdateDebounceUntil sets the "debounce_until" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateDebounceUntil() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateDebounceUntil()
	})
}

// ClearDebounceUntil clears the value of the "debounce_until" field.
func (u *QueueLaneUpsertOne) ClearDebounceUntil() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.ClearDebounceUntil()
	})
}

// SetDebounceMs sets the "debounce_ms" field.
func (u *QueueLaneUpsertOne) SetDebounceMs(v int) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetDebounceMs(v)
	})
}

// AddDebounceMs adds v to the "debounce_ms" field.
func (u *QueueLaneUpsertOne) AddDebounceMs(v int) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.AddDebounceMs(v)
	})
}

// UpdateDebounceMs sets the "debounce_ms" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateDebounceMs() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateDebounceMs()
	})
}

// SetMaxQueued sets the "max_queued" field.
func (u *QueueLaneUpsertOne) SetMaxQueued(v int) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetMaxQueued(v)
	})
}

// AddMaxQueued adds v to the "max_queued" field.
func (u *QueueLaneUpsertOne) AddMaxQueued(v int) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.AddMaxQueued(v)
	})
}

// UpdateMaxQueued sets the "max_queued" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateMaxQueued() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateMaxQueued()
	})
}

// SetActiveDispatchID sets the "active_dispatch_id" field.
func (u *QueueLaneUpsertOne) SetActiveDispatchID(v string) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetActiveDispatchID(v)
	})
}

// UpdateActiveDispatchID sets the "active_dispatch_id" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateActiveDispatchID() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateActiveDispatchID()
	})
}

// ClearActiveDispatchID clears the value of the "active_dispatch_id" field.
func (u *QueueLaneUpsertOne) ClearActiveDispatchID() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.ClearActiveDispatchID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QueueLaneUpsertOne) SetUpdatedAt(v time.Time) *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QueueLaneUpsertOne) UpdateUpdatedAt() *QueueLaneUpsertOne {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QueueLaneUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueLaneCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueLaneUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueueLaneUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueueLaneUpsertOne.ID is not supported by MySQL driver. Use QueueLaneUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueueLaneUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueueLaneCreateBulk is the builder for creating many QueueLane entities in bulk.
type QueueLaneCreateBulk struct {
	config
	err      error
	builders []*QueueLaneCreate
	conflict []sql.ConflictOption
}

// Save creates the QueueLane entities in the database.
func (_c *QueueLaneCreateBulk) Save(ctx context.Context) ([]*QueueLane, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueLane, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueLaneMutation)
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
func (_c *QueueLaneCreateBulk) SaveX(ctx context.Context) []*QueueLane {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueLaneCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueLaneCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueLane.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueLaneUpsert) {
//			SetSessionKey(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueLaneCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueueLaneUpsertBulk {
	_c.conflict = opts
	return &QueueLaneUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueLane.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueLaneCreateBulk) OnConflictColumns(columns ...string) *QueueLaneUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueLaneUpsertBulk{
		create: _c,
	}
}

// QueueLaneUpsertBulk is the builder for "upsert"-ing
// a bulk of QueueLane nodes.
type QueueLaneUpsertBulk struct {
	create *QueueLaneCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueueLane.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuelane.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueLaneUpsertBulk) UpdateNewValues() *QueueLaneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queuelane.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueLane.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueueLaneUpsertBulk) Ignore() *QueueLaneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueLaneUpsertBulk) DoNothing() *QueueLaneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueLaneCreateBulk.OnConflict
// documentation for more info.
func (u *QueueLaneUpsertBulk) Update(set func(*QueueLaneUpsert)) *QueueLaneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueLaneUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionKey sets the "session_key" field.
func (u *QueueLaneUpsertBulk) SetSessionKey(v string) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetSessionKey(v)
	})
}

// UpdateSessionKey sets the "session_key" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateSessionKey() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateSessionKey()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *QueueLaneUpsertBulk) SetAgentID(v string) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateAgentID() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateAgentID()
	})
}

// SetState sets the "state" field.
func (u *QueueLaneUpsertBulk) SetState(v queuelane.State) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateState() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateState()
	})
}

// SetMode sets the "mode" field.
func (u *QueueLaneUpsertBulk) SetMode(v queuelane.Mode) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateMode() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateMode()
	})
}

// SetIsPaused sets the "is_paused" field.
func (u *QueueLaneUpsertBulk) SetIsPaused(v bool) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetIsPaused(v)
	})
}

// UpdateIsPaused sets the "is_paused" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateIsPaused() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateIsPaused()
	})
}

// SetDebounceUntil sets the "debounce_until" field.
func (u *QueueLaneUpsertBulk) SetDebounceUntil(v time.Time) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetDebounceUntil(v)
	})
}

// UpdateDebounceUntil sets the "debounce_until" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateDebounceUntil() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateDebounceUntil()
	})
}

// ClearDebounceUntil clears the value of the "debounce_until" field.
func (u *QueueLaneUpsertBulk) ClearDebounceUntil() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.ClearDebounceUntil()
	})
}

// SetDebounceMs sets the "debounce_ms" field.
func (u *QueueLaneUpsertBulk) SetDebounceMs(v int) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetDebounceMs(v)
	})
}

// AddDebounceMs adds v to the "debounce_ms" field.
func (u *QueueLaneUpsertBulk) AddDebounceMs(v int) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.AddDebounceMs(v)
	})
}

// UpdateDebounceMs sets the "debounce_ms" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateDebounceMs() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateDebounceMs()
	})
}

// SetMaxQueued sets the "max_queued" field.
func (u *QueueLaneUpsertBulk) SetMaxQueued(v int) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetMaxQueued(v)
	})
}

// AddMaxQueued adds v to the "max_queued" field.
func (u *QueueLaneUpsertBulk) AddMaxQueued(v int) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.AddMaxQueued(v)
	})
}

// UpdateMaxQueued sets the "max_queued" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateMaxQueued() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateMaxQueued()
	})
}

// SetActiveDispatchID sets the "active_dispatch_id" field.
func (u *QueueLaneUpsertBulk) SetActiveDispatchID(v string) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetActiveDispatchID(v)
	})
}

// UpdateActiveDispatchID sets the "active_dispatch_id" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateActiveDispatchID() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateActiveDispatchID()
	})
}

// ClearActiveDispatchID clears the value of the "active_dispatch_id" field.
func (u *QueueLaneUpsertBulk) ClearActiveDispatchID() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.ClearActiveDispatchID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QueueLaneUpsertBulk) SetUpdatedAt(v time.Time) *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QueueLaneUpsertBulk) UpdateUpdatedAt() *QueueLaneUpsertBulk {
	return u.Update(func(s *QueueLaneUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QueueLaneUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueueLaneCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueLaneCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueLaneUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
