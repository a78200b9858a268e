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
	"github.com/hooklinehq/hookline/ent/queuemessage"
)

// QueueMessageCreate is the builder for creating a QueueMessage entity.
type QueueMessageCreate struct {
	config
	mutation *QueueMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueueKey sets the "queue_key" field.
func (_c *QueueMessageCreate) SetQueueKey(v string) *QueueMessageCreate {
	_c.mutation.SetQueueKey(v)
	return _c
}

// SetWorkItemID sets the "work_item_id" field.
func (_c *QueueMessageCreate) SetWorkItemID(v string) *QueueMessageCreate {
	_c.mutation.SetWorkItemID(v)
	return _c
}

// SetNillableWorkItemID sets the "work_item_id" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableWorkItemID(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetWorkItemID(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *QueueMessageCreate) SetText(v string) *QueueMessageCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetSenderName sets the "sender_name" field.
func (_c *QueueMessageCreate) SetSenderName(v string) *QueueMessageCreate {
	_c.mutation.SetSenderName(v)
	return _c
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableSenderName(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetSenderName(*v)
	}
	return _c
}

// SetArrivedAt sets the "arrived_at" field.
func (_c *QueueMessageCreate) SetArrivedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetArrivedAt(v)
	return _c
}

// SetNillableArrivedAt sets the "arrived_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableArrivedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetArrivedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueMessageCreate) SetStatus(v queuemessage.Status) *QueueMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableStatus(v *queuemessage.Status) *QueueMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDispatchID sets the "dispatch_id" field.
func (_c *QueueMessageCreate) SetDispatchID(v string) *QueueMessageCreate {
	_c.mutation.SetDispatchID(v)
	return _c
}

// SetNillableDispatchID sets the "dispatch_id" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableDispatchID(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetDispatchID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueMessageCreate) SetID(v string) *QueueMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_c *QueueMessageCreate) Mutation() *QueueMessageMutation {
	return _c.mutation
}

// Save creates the QueueMessage in the database.
func (_c *QueueMessageCreate) Save(ctx context.Context) (*QueueMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueMessageCreate) SaveX(ctx context.Context) *QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueMessageCreate) defaults() {
	if _, ok := _c.mutation.ArrivedAt(); !ok {
		v := queuemessage.DefaultArrivedAt()
		_c.mutation.SetArrivedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := queuemessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueMessageCreate) check() error {
	if _, ok := _c.mutation.QueueKey(); !ok {
		return &ValidationError{Name: "queue_key", err: errors.New(`ent: missing required field "QueueMessage.queue_key"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "QueueMessage.text"`)}
	}
	if _, ok := _c.mutation.ArrivedAt(); !ok {
		return &ValidationError{Name: "arrived_at", err: errors.New(`ent: missing required field "QueueMessage.arrived_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_c *QueueMessageCreate) sqlSave(ctx context.Context) (*QueueMessage, error) {
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
			return nil, fmt.Errorf("unexpected QueueMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueMessageCreate) createSpec() (*QueueMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuemessage.Table, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QueueKey(); ok {
		_spec.SetField(queuemessage.FieldQueueKey, field.TypeString, value)
		_node.QueueKey = value
	}
	if value, ok := _c.mutation.WorkItemID(); ok {
		_spec.SetField(queuemessage.FieldWorkItemID, field.TypeString, value)
		_node.WorkItemID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(queuemessage.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.SenderName(); ok {
		_spec.SetField(queuemessage.FieldSenderName, field.TypeString, value)
		_node.SenderName = value
	}
	if value, ok := _c.mutation.ArrivedAt(); ok {
		_spec.SetField(queuemessage.FieldArrivedAt, field.TypeTime, value)
		_node.ArrivedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DispatchID(); ok {
		_spec.SetField(queuemessage.FieldDispatchID, field.TypeString, value)
		_node.DispatchID = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueMessage.Create().
//		SetQueueKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueMessageUpsert) {
//			SetQueueKey(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueMessageCreate) OnConflict(opts ...sql.ConflictOption) *QueueMessageUpsertOne {
	_c.conflict = opts
	return &QueueMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueMessageCreate) OnConflictColumns(columns ...string) *QueueMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueMessageUpsertOne{
		create: _c,
	}
}

type (
	// QueueMessageUpsertOne is the builder for "upsert"-ing
	//  one QueueMessage node.
	QueueMessageUpsertOne struct {
		create *QueueMessageCreate
	}

	// QueueMessageUpsert is the "OnConflict" setter.
	QueueMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetQueueKey sets the "queue_key" field.
func (u *QueueMessageUpsert) SetQueueKey(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldQueueKey, v)
	return u
}

// UpdateQueueKey sets the "queue_key" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateQueueKey() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldQueueKey)
	return u
}

// SetWorkItemID sets the "work_item_id" field.
func (u *QueueMessageUpsert) SetWorkItemID(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldWorkItemID, v)
	return u
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateWorkItemID() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldWorkItemID)
	return u
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *QueueMessageUpsert) ClearWorkItemID() *QueueMessageUpsert {
	u.SetNull(queuemessage.FieldWorkItemID)
	return u
}

// SetText sets the "text" field.
func (u *QueueMessageUpsert) SetText(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateText() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldText)
	return u
}

// SetSenderName sets the "sender_name" field.
func (u *QueueMessageUpsert) SetSenderName(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldSenderName, v)
	return u
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateSenderName() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldSenderName)
	return u
}

// ClearSenderName clears the value of the "sender_name" field.
func (u *QueueMessageUpsert) ClearSenderName() *QueueMessageUpsert {
	u.SetNull(queuemessage.FieldSenderName)
	return u
}

// SetStatus sets the "status" field.
func (u *QueueMessageUpsert) SetStatus(v queuemessage.Status) *QueueMessageUpsert {
	u.Set(queuemessage.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateStatus() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldStatus)
	return u
}

// SetDispatchID sets the "dispatch_id" field.
func (u *QueueMessageUpsert) SetDispatchID(v string) *QueueMessageUpsert {
	u.Set(queuemessage.FieldDispatchID, v)
	return u
}

// UpdateDispatchID sets the "dispatch_id" field to the value that was provided on create.
func (u *QueueMessageUpsert) UpdateDispatchID() *QueueMessageUpsert {
	u.SetExcluded(queuemessage.FieldDispatchID)
	return u
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (u *QueueMessageUpsert) ClearDispatchID() *QueueMessageUpsert {
	u.SetNull(queuemessage.FieldDispatchID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuemessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueMessageUpsertOne) UpdateNewValues() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queuemessage.FieldID)
		}
		if _, exists := u.create.mutation.ArrivedAt(); exists {
			s.SetIgnore(queuemessage.FieldArrivedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueueMessageUpsertOne) Ignore() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueMessageUpsertOne) DoNothing() *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueMessageCreate.OnConflict
// documentation for more info.
func (u *QueueMessageUpsertOne) Update(set func(*QueueMessageUpsert)) *QueueMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueueKey sets the "queue_key" field.
func (u *QueueMessageUpsertOne) SetQueueKey(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetQueueKey(v)
	})
}

// UpdateQueueKey sets the "queue_key" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateQueueKey() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateQueueKey()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *QueueMessageUpsertOne) SetWorkItemID(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateWorkItemID() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *QueueMessageUpsertOne) ClearWorkItemID() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearWorkItemID()
	})
}

// SetText sets the "text" field.
func (u *QueueMessageUpsertOne) SetText(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateText() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateText()
	})
}

// SetSenderName sets the "sender_name" field.
func (u *QueueMessageUpsertOne) SetSenderName(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetSenderName(v)
	})
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateSenderName() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateSenderName()
	})
}

// ClearSenderName clears the value of the "sender_name" field.
func (u *QueueMessageUpsertOne) ClearSenderName() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearSenderName()
	})
}

// SetStatus sets the "status" field.
func (u *QueueMessageUpsertOne) SetStatus(v queuemessage.Status) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateStatus() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetDispatchID sets the "dispatch_id" field.
func (u *QueueMessageUpsertOne) SetDispatchID(v string) *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetDispatchID(v)
	})
}

// UpdateDispatchID sets the "dispatch_id" field to the value that was provided on create.
func (u *QueueMessageUpsertOne) UpdateDispatchID() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateDispatchID()
	})
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (u *QueueMessageUpsertOne) ClearDispatchID() *QueueMessageUpsertOne {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearDispatchID()
	})
}

// Exec executes the query.
func (u *QueueMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueueMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueueMessageUpsertOne.ID is not supported by MySQL driver. Use QueueMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueueMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueueMessageCreateBulk is the builder for creating many QueueMessage entities in bulk.
type QueueMessageCreateBulk struct {
	config
	err      error
	builders []*QueueMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the QueueMessage entities in the database.
func (_c *QueueMessageCreateBulk) Save(ctx context.Context) ([]*QueueMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueMessageMutation)
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
func (_c *QueueMessageCreateBulk) SaveX(ctx context.Context) []*QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueMessageUpsert) {
//			SetQueueKey(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueueMessageUpsertBulk {
	_c.conflict = opts
	return &QueueMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueMessageCreateBulk) OnConflictColumns(columns ...string) *QueueMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueMessageUpsertBulk{
		create: _c,
	}
}

// QueueMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of QueueMessage nodes.
type QueueMessageUpsertBulk struct {
	create *QueueMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuemessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueMessageUpsertBulk) UpdateNewValues() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queuemessage.FieldID)
			}
			if _, exists := b.mutation.ArrivedAt(); exists {
				s.SetIgnore(queuemessage.FieldArrivedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueueMessageUpsertBulk) Ignore() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueMessageUpsertBulk) DoNothing() *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueMessageCreateBulk.OnConflict
// documentation for more info.
func (u *QueueMessageUpsertBulk) Update(set func(*QueueMessageUpsert)) *QueueMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueueKey sets the "queue_key" field.
func (u *QueueMessageUpsertBulk) SetQueueKey(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetQueueKey(v)
	})
}

// UpdateQueueKey sets the "queue_key" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateQueueKey() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateQueueKey()
	})
}

// SetWorkItemID sets the "work_item_id" field.
func (u *QueueMessageUpsertBulk) SetWorkItemID(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetWorkItemID(v)
	})
}

// UpdateWorkItemID sets the "work_item_id" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateWorkItemID() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateWorkItemID()
	})
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (u *QueueMessageUpsertBulk) ClearWorkItemID() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearWorkItemID()
	})
}

// SetText sets the "text" field.
func (u *QueueMessageUpsertBulk) SetText(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateText() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateText()
	})
}

// SetSenderName sets the "sender_name" field.
func (u *QueueMessageUpsertBulk) SetSenderName(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetSenderName(v)
	})
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateSenderName() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateSenderName()
	})
}

// ClearSenderName clears the value of the "sender_name" field.
func (u *QueueMessageUpsertBulk) ClearSenderName() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearSenderName()
	})
}

// SetStatus sets the "status" field.
func (u *QueueMessageUpsertBulk) SetStatus(v queuemessage.Status) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateStatus() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetDispatchID sets the "dispatch_id" field.
func (u *QueueMessageUpsertBulk) SetDispatchID(v string) *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.SetDispatchID(v)
	})
}

// UpdateDispatchID sets the "dispatch_id" field to the value that was provided on create.
func (u *QueueMessageUpsertBulk) UpdateDispatchID() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.UpdateDispatchID()
	})
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (u *QueueMessageUpsertBulk) ClearDispatchID() *QueueMessageUpsertBulk {
	return u.Update(func(s *QueueMessageUpsert) {
		s.ClearDispatchID()
	})
}

// Exec executes the query.
func (u *QueueMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueueMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
