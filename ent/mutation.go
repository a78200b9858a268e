// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/idempotencykey"
	"github.com/hooklinehq/hookline/ent/outboxentry"
	"github.com/hooklinehq/hookline/ent/pluginevent"
	"github.com/hooklinehq/hookline/ent/plugininstance"
	"github.com/hooklinehq/hookline/ent/predicate"
	"github.com/hooklinehq/hookline/ent/queuelane"
	"github.com/hooklinehq/hookline/ent/queuemessage"
	"github.com/hooklinehq/hookline/ent/routine"
	"github.com/hooklinehq/hookline/ent/routineevent"
	"github.com/hooklinehq/hookline/ent/routinerun"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/ent/runtimecontrol"
	"github.com/hooklinehq/hookline/ent/scheduleditem"
	"github.com/hooklinehq/hookline/ent/workitem"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIdempotencyKey = "IdempotencyKey"
	TypeOutboxEntry    = "OutboxEntry"
	TypePluginEvent    = "PluginEvent"
	TypePluginInstance = "PluginInstance"
	TypeQueueLane      = "QueueLane"
	TypeQueueMessage   = "QueueMessage"
	TypeRoutine        = "Routine"
	TypeRoutineEvent   = "RoutineEvent"
	TypeRoutineRun     = "RoutineRun"
	TypeRunDispatch    = "RunDispatch"
	TypeRuntimeControl = "RuntimeControl"
	TypeScheduledItem  = "ScheduledItem"
	TypeWorkItem       = "WorkItem"
)

// IdempotencyKeyMutation represents an operation that mutates the IdempotencyKey nodes in the graph.
type IdempotencyKeyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	key           *string
	work_item_id  *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IdempotencyKey, error)
	predicates    []predicate.IdempotencyKey
}

var _ ent.Mutation = (*IdempotencyKeyMutation)(nil)

// idempotencykeyOption allows management of the mutation configuration using functional options.
type idempotencykeyOption func(*IdempotencyKeyMutation)

// newIdempotencyKeyMutation creates new mutation for the IdempotencyKey entity.
func newIdempotencyKeyMutation(c config, op Op, opts ...idempotencykeyOption) *IdempotencyKeyMutation {
	m := &IdempotencyKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeIdempotencyKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdempotencyKeyID sets the ID field of the mutation.
func withIdempotencyKeyID(id string) idempotencykeyOption {
	return func(m *IdempotencyKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *IdempotencyKey
		)
		m.oldValue = func(ctx context.Context) (*IdempotencyKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IdempotencyKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdempotencyKey sets the old IdempotencyKey of the mutation.
func withIdempotencyKey(node *IdempotencyKey) idempotencykeyOption {
	return func(m *IdempotencyKeyMutation) {
		m.oldValue = func(context.Context) (*IdempotencyKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdempotencyKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdempotencyKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IdempotencyKey entities.
func (m *IdempotencyKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdempotencyKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdempotencyKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IdempotencyKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *IdempotencyKeyMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *IdempotencyKeyMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *IdempotencyKeyMutation) ResetKey() {
	m.key = nil
}

// SetWorkItemID sets the "work_item_id" field.
func (m *IdempotencyKeyMutation) SetWorkItemID(s string) {
	m.work_item_id = &s
}

// WorkItemID returns the value of the "work_item_id" field in the mutation.
func (m *IdempotencyKeyMutation) WorkItemID() (r string, exists bool) {
	v := m.work_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkItemID returns the old "work_item_id" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldWorkItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkItemID: %w", err)
	}
	return oldValue.WorkItemID, nil
}

// ResetWorkItemID resets all changes to the "work_item_id" field.
func (m *IdempotencyKeyMutation) ResetWorkItemID() {
	m.work_item_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IdempotencyKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdempotencyKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IdempotencyKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IdempotencyKeyMutation builder.
func (m *IdempotencyKeyMutation) Where(ps ...predicate.IdempotencyKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdempotencyKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdempotencyKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IdempotencyKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdempotencyKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdempotencyKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IdempotencyKey).
func (m *IdempotencyKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdempotencyKeyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, idempotencykey.FieldKey)
	}
	if m.work_item_id != nil {
		fields = append(fields, idempotencykey.FieldWorkItemID)
	}
	if m.created_at != nil {
		fields = append(fields, idempotencykey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdempotencyKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case idempotencykey.FieldKey:
		return m.Key()
	case idempotencykey.FieldWorkItemID:
		return m.WorkItemID()
	case idempotencykey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdempotencyKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case idempotencykey.FieldKey:
		return m.OldKey(ctx)
	case idempotencykey.FieldWorkItemID:
		return m.OldWorkItemID(ctx)
	case idempotencykey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IdempotencyKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case idempotencykey.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case idempotencykey.FieldWorkItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkItemID(v)
		return nil
	case idempotencykey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IdempotencyKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdempotencyKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdempotencyKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IdempotencyKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdempotencyKeyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdempotencyKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdempotencyKeyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IdempotencyKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdempotencyKeyMutation) ResetField(name string) error {
	switch name {
	case idempotencykey.FieldKey:
		m.ResetKey()
		return nil
	case idempotencykey.FieldWorkItemID:
		m.ResetWorkItemID()
		return nil
	case idempotencykey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IdempotencyKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdempotencyKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdempotencyKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdempotencyKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdempotencyKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdempotencyKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdempotencyKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdempotencyKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdempotencyKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyKey edge %s", name)
}

// OutboxEntryMutation represents an operation that mutates the OutboxEntry nodes in the graph.
type OutboxEntryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	effect_key         *string
	dispatch_id        *string
	plugin_instance_id *string
	channel            *string
	kind               *string
	payload            *map[string]interface{}
	status             *outboxentry.Status
	retryable          *bool
	attempt_count      *int
	addattempt_count   *int
	next_attempt_at    *time.Time
	claimed_by         *string
	lease_expires_at   *time.Time
	claimed_epoch      *int64
	addclaimed_epoch   *int64
	provider_ref       *string
	last_error         *string
	unknown_reason     *string
	sent_at            *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*OutboxEntry, error)
	predicates         []predicate.OutboxEntry
}

var _ ent.Mutation = (*OutboxEntryMutation)(nil)

// outboxentryOption allows management of the mutation configuration using functional options.
type outboxentryOption func(*OutboxEntryMutation)

// newOutboxEntryMutation creates new mutation for the OutboxEntry entity.
func newOutboxEntryMutation(c config, op Op, opts ...outboxentryOption) *OutboxEntryMutation {
	m := &OutboxEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboxEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboxEntryID sets the ID field of the mutation.
func withOutboxEntryID(id string) outboxentryOption {
	return func(m *OutboxEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboxEntry
		)
		m.oldValue = func(ctx context.Context) (*OutboxEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboxEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboxEntry sets the old OutboxEntry of the mutation.
func withOutboxEntry(node *OutboxEntry) outboxentryOption {
	return func(m *OutboxEntryMutation) {
		m.oldValue = func(context.Context) (*OutboxEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboxEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboxEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutboxEntry entities.
func (m *OutboxEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboxEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboxEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboxEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEffectKey sets the "effect_key" field.
func (m *OutboxEntryMutation) SetEffectKey(s string) {
	m.effect_key = &s
}

// EffectKey returns the value of the "effect_key" field in the mutation.
func (m *OutboxEntryMutation) EffectKey() (r string, exists bool) {
	v := m.effect_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectKey returns the old "effect_key" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldEffectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectKey: %w", err)
	}
	return oldValue.EffectKey, nil
}

// ResetEffectKey resets all changes to the "effect_key" field.
func (m *OutboxEntryMutation) ResetEffectKey() {
	m.effect_key = nil
}

// SetDispatchID sets the "dispatch_id" field.
func (m *OutboxEntryMutation) SetDispatchID(s string) {
	m.dispatch_id = &s
}

// DispatchID returns the value of the "dispatch_id" field in the mutation.
func (m *OutboxEntryMutation) DispatchID() (r string, exists bool) {
	v := m.dispatch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchID returns the old "dispatch_id" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldDispatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchID: %w", err)
	}
	return oldValue.DispatchID, nil
}

// ResetDispatchID resets all changes to the "dispatch_id" field.
func (m *OutboxEntryMutation) ResetDispatchID() {
	m.dispatch_id = nil
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (m *OutboxEntryMutation) SetPluginInstanceID(s string) {
	m.plugin_instance_id = &s
}

// PluginInstanceID returns the value of the "plugin_instance_id" field in the mutation.
func (m *OutboxEntryMutation) PluginInstanceID() (r string, exists bool) {
	v := m.plugin_instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPluginInstanceID returns the old "plugin_instance_id" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldPluginInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPluginInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPluginInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPluginInstanceID: %w", err)
	}
	return oldValue.PluginInstanceID, nil
}

// ResetPluginInstanceID resets all changes to the "plugin_instance_id" field.
func (m *OutboxEntryMutation) ResetPluginInstanceID() {
	m.plugin_instance_id = nil
}

// SetChannel sets the "channel" field.
func (m *OutboxEntryMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *OutboxEntryMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *OutboxEntryMutation) ResetChannel() {
	m.channel = nil
}

// SetKind sets the "kind" field.
func (m *OutboxEntryMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OutboxEntryMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OutboxEntryMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *OutboxEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *OutboxEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *OutboxEntryMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[outboxentry.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *OutboxEntryMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *OutboxEntryMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, outboxentry.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *OutboxEntryMutation) SetStatus(o outboxentry.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OutboxEntryMutation) Status() (r outboxentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldStatus(ctx context.Context) (v outboxentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OutboxEntryMutation) ResetStatus() {
	m.status = nil
}

// SetRetryable sets the "retryable" field.
func (m *OutboxEntryMutation) SetRetryable(b bool) {
	m.retryable = &b
}

// Retryable returns the value of the "retryable" field in the mutation.
func (m *OutboxEntryMutation) Retryable() (r bool, exists bool) {
	v := m.retryable
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryable returns the old "retryable" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldRetryable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryable: %w", err)
	}
	return oldValue.Retryable, nil
}

// ResetRetryable resets all changes to the "retryable" field.
func (m *OutboxEntryMutation) ResetRetryable() {
	m.retryable = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *OutboxEntryMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *OutboxEntryMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *OutboxEntryMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *OutboxEntryMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *OutboxEntryMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *OutboxEntryMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *OutboxEntryMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *OutboxEntryMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *OutboxEntryMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *OutboxEntryMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *OutboxEntryMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[outboxentry.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *OutboxEntryMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *OutboxEntryMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, outboxentry.FieldClaimedBy)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *OutboxEntryMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *OutboxEntryMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *OutboxEntryMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[outboxentry.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *OutboxEntryMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *OutboxEntryMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, outboxentry.FieldLeaseExpiresAt)
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (m *OutboxEntryMutation) SetClaimedEpoch(i int64) {
	m.claimed_epoch = &i
	m.addclaimed_epoch = nil
}

// ClaimedEpoch returns the value of the "claimed_epoch" field in the mutation.
func (m *OutboxEntryMutation) ClaimedEpoch() (r int64, exists bool) {
	v := m.claimed_epoch
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedEpoch returns the old "claimed_epoch" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldClaimedEpoch(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedEpoch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedEpoch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedEpoch: %w", err)
	}
	return oldValue.ClaimedEpoch, nil
}

// AddClaimedEpoch adds i to the "claimed_epoch" field.
func (m *OutboxEntryMutation) AddClaimedEpoch(i int64) {
	if m.addclaimed_epoch != nil {
		*m.addclaimed_epoch += i
	} else {
		m.addclaimed_epoch = &i
	}
}

// AddedClaimedEpoch returns the value that was added to the "claimed_epoch" field in this mutation.
func (m *OutboxEntryMutation) AddedClaimedEpoch() (r int64, exists bool) {
	v := m.addclaimed_epoch
	if v == nil {
		return
	}
	return *v, true
}

// ResetClaimedEpoch resets all changes to the "claimed_epoch" field.
func (m *OutboxEntryMutation) ResetClaimedEpoch() {
	m.claimed_epoch = nil
	m.addclaimed_epoch = nil
}

// SetProviderRef sets the "provider_ref" field.
func (m *OutboxEntryMutation) SetProviderRef(s string) {
	m.provider_ref = &s
}

// ProviderRef returns the value of the "provider_ref" field in the mutation.
func (m *OutboxEntryMutation) ProviderRef() (r string, exists bool) {
	v := m.provider_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderRef returns the old "provider_ref" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldProviderRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderRef: %w", err)
	}
	return oldValue.ProviderRef, nil
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (m *OutboxEntryMutation) ClearProviderRef() {
	m.provider_ref = nil
	m.clearedFields[outboxentry.FieldProviderRef] = struct{}{}
}

// ProviderRefCleared returns if the "provider_ref" field was cleared in this mutation.
func (m *OutboxEntryMutation) ProviderRefCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldProviderRef]
	return ok
}

// ResetProviderRef resets all changes to the "provider_ref" field.
func (m *OutboxEntryMutation) ResetProviderRef() {
	m.provider_ref = nil
	delete(m.clearedFields, outboxentry.FieldProviderRef)
}

// SetLastError sets the "last_error" field.
func (m *OutboxEntryMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *OutboxEntryMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *OutboxEntryMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[outboxentry.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *OutboxEntryMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *OutboxEntryMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, outboxentry.FieldLastError)
}

// SetUnknownReason sets the "unknown_reason" field.
func (m *OutboxEntryMutation) SetUnknownReason(s string) {
	m.unknown_reason = &s
}

// UnknownReason returns the value of the "unknown_reason" field in the mutation.
func (m *OutboxEntryMutation) UnknownReason() (r string, exists bool) {
	v := m.unknown_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldUnknownReason returns the old "unknown_reason" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldUnknownReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnknownReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnknownReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnknownReason: %w", err)
	}
	return oldValue.UnknownReason, nil
}

// ClearUnknownReason clears the value of the "unknown_reason" field.
func (m *OutboxEntryMutation) ClearUnknownReason() {
	m.unknown_reason = nil
	m.clearedFields[outboxentry.FieldUnknownReason] = struct{}{}
}

// UnknownReasonCleared returns if the "unknown_reason" field was cleared in this mutation.
func (m *OutboxEntryMutation) UnknownReasonCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldUnknownReason]
	return ok
}

// ResetUnknownReason resets all changes to the "unknown_reason" field.
func (m *OutboxEntryMutation) ResetUnknownReason() {
	m.unknown_reason = nil
	delete(m.clearedFields, outboxentry.FieldUnknownReason)
}

// SetSentAt sets the "sent_at" field.
func (m *OutboxEntryMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *OutboxEntryMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *OutboxEntryMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[outboxentry.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *OutboxEntryMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[outboxentry.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *OutboxEntryMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, outboxentry.FieldSentAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *OutboxEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutboxEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutboxEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OutboxEntryMutation builder.
func (m *OutboxEntryMutation) Where(ps ...predicate.OutboxEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboxEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboxEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboxEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboxEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboxEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboxEntry).
func (m *OutboxEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboxEntryMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.effect_key != nil {
		fields = append(fields, outboxentry.FieldEffectKey)
	}
	if m.dispatch_id != nil {
		fields = append(fields, outboxentry.FieldDispatchID)
	}
	if m.plugin_instance_id != nil {
		fields = append(fields, outboxentry.FieldPluginInstanceID)
	}
	if m.channel != nil {
		fields = append(fields, outboxentry.FieldChannel)
	}
	if m.kind != nil {
		fields = append(fields, outboxentry.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, outboxentry.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, outboxentry.FieldStatus)
	}
	if m.retryable != nil {
		fields = append(fields, outboxentry.FieldRetryable)
	}
	if m.attempt_count != nil {
		fields = append(fields, outboxentry.FieldAttemptCount)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, outboxentry.FieldNextAttemptAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, outboxentry.FieldClaimedBy)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, outboxentry.FieldLeaseExpiresAt)
	}
	if m.claimed_epoch != nil {
		fields = append(fields, outboxentry.FieldClaimedEpoch)
	}
	if m.provider_ref != nil {
		fields = append(fields, outboxentry.FieldProviderRef)
	}
	if m.last_error != nil {
		fields = append(fields, outboxentry.FieldLastError)
	}
	if m.unknown_reason != nil {
		fields = append(fields, outboxentry.FieldUnknownReason)
	}
	if m.sent_at != nil {
		fields = append(fields, outboxentry.FieldSentAt)
	}
	if m.created_at != nil {
		fields = append(fields, outboxentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboxEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboxentry.FieldEffectKey:
		return m.EffectKey()
	case outboxentry.FieldDispatchID:
		return m.DispatchID()
	case outboxentry.FieldPluginInstanceID:
		return m.PluginInstanceID()
	case outboxentry.FieldChannel:
		return m.Channel()
	case outboxentry.FieldKind:
		return m.Kind()
	case outboxentry.FieldPayload:
		return m.Payload()
	case outboxentry.FieldStatus:
		return m.Status()
	case outboxentry.FieldRetryable:
		return m.Retryable()
	case outboxentry.FieldAttemptCount:
		return m.AttemptCount()
	case outboxentry.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case outboxentry.FieldClaimedBy:
		return m.ClaimedBy()
	case outboxentry.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case outboxentry.FieldClaimedEpoch:
		return m.ClaimedEpoch()
	case outboxentry.FieldProviderRef:
		return m.ProviderRef()
	case outboxentry.FieldLastError:
		return m.LastError()
	case outboxentry.FieldUnknownReason:
		return m.UnknownReason()
	case outboxentry.FieldSentAt:
		return m.SentAt()
	case outboxentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboxEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboxentry.FieldEffectKey:
		return m.OldEffectKey(ctx)
	case outboxentry.FieldDispatchID:
		return m.OldDispatchID(ctx)
	case outboxentry.FieldPluginInstanceID:
		return m.OldPluginInstanceID(ctx)
	case outboxentry.FieldChannel:
		return m.OldChannel(ctx)
	case outboxentry.FieldKind:
		return m.OldKind(ctx)
	case outboxentry.FieldPayload:
		return m.OldPayload(ctx)
	case outboxentry.FieldStatus:
		return m.OldStatus(ctx)
	case outboxentry.FieldRetryable:
		return m.OldRetryable(ctx)
	case outboxentry.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case outboxentry.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case outboxentry.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case outboxentry.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case outboxentry.FieldClaimedEpoch:
		return m.OldClaimedEpoch(ctx)
	case outboxentry.FieldProviderRef:
		return m.OldProviderRef(ctx)
	case outboxentry.FieldLastError:
		return m.OldLastError(ctx)
	case outboxentry.FieldUnknownReason:
		return m.OldUnknownReason(ctx)
	case outboxentry.FieldSentAt:
		return m.OldSentAt(ctx)
	case outboxentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboxEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboxentry.FieldEffectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectKey(v)
		return nil
	case outboxentry.FieldDispatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchID(v)
		return nil
	case outboxentry.FieldPluginInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPluginInstanceID(v)
		return nil
	case outboxentry.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case outboxentry.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case outboxentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case outboxentry.FieldStatus:
		v, ok := value.(outboxentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case outboxentry.FieldRetryable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryable(v)
		return nil
	case outboxentry.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case outboxentry.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case outboxentry.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case outboxentry.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case outboxentry.FieldClaimedEpoch:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedEpoch(v)
		return nil
	case outboxentry.FieldProviderRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderRef(v)
		return nil
	case outboxentry.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case outboxentry.FieldUnknownReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnknownReason(v)
		return nil
	case outboxentry.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case outboxentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboxEntryMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, outboxentry.FieldAttemptCount)
	}
	if m.addclaimed_epoch != nil {
		fields = append(fields, outboxentry.FieldClaimedEpoch)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboxEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outboxentry.FieldAttemptCount:
		return m.AddedAttemptCount()
	case outboxentry.FieldClaimedEpoch:
		return m.AddedClaimedEpoch()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outboxentry.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	case outboxentry.FieldClaimedEpoch:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClaimedEpoch(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboxEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outboxentry.FieldPayload) {
		fields = append(fields, outboxentry.FieldPayload)
	}
	if m.FieldCleared(outboxentry.FieldClaimedBy) {
		fields = append(fields, outboxentry.FieldClaimedBy)
	}
	if m.FieldCleared(outboxentry.FieldLeaseExpiresAt) {
		fields = append(fields, outboxentry.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(outboxentry.FieldProviderRef) {
		fields = append(fields, outboxentry.FieldProviderRef)
	}
	if m.FieldCleared(outboxentry.FieldLastError) {
		fields = append(fields, outboxentry.FieldLastError)
	}
	if m.FieldCleared(outboxentry.FieldUnknownReason) {
		fields = append(fields, outboxentry.FieldUnknownReason)
	}
	if m.FieldCleared(outboxentry.FieldSentAt) {
		fields = append(fields, outboxentry.FieldSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboxEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboxEntryMutation) ClearField(name string) error {
	switch name {
	case outboxentry.FieldPayload:
		m.ClearPayload()
		return nil
	case outboxentry.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case outboxentry.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case outboxentry.FieldProviderRef:
		m.ClearProviderRef()
		return nil
	case outboxentry.FieldLastError:
		m.ClearLastError()
		return nil
	case outboxentry.FieldUnknownReason:
		m.ClearUnknownReason()
		return nil
	case outboxentry.FieldSentAt:
		m.ClearSentAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboxEntryMutation) ResetField(name string) error {
	switch name {
	case outboxentry.FieldEffectKey:
		m.ResetEffectKey()
		return nil
	case outboxentry.FieldDispatchID:
		m.ResetDispatchID()
		return nil
	case outboxentry.FieldPluginInstanceID:
		m.ResetPluginInstanceID()
		return nil
	case outboxentry.FieldChannel:
		m.ResetChannel()
		return nil
	case outboxentry.FieldKind:
		m.ResetKind()
		return nil
	case outboxentry.FieldPayload:
		m.ResetPayload()
		return nil
	case outboxentry.FieldStatus:
		m.ResetStatus()
		return nil
	case outboxentry.FieldRetryable:
		m.ResetRetryable()
		return nil
	case outboxentry.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case outboxentry.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case outboxentry.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case outboxentry.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case outboxentry.FieldClaimedEpoch:
		m.ResetClaimedEpoch()
		return nil
	case outboxentry.FieldProviderRef:
		m.ResetProviderRef()
		return nil
	case outboxentry.FieldLastError:
		m.ResetLastError()
		return nil
	case outboxentry.FieldUnknownReason:
		m.ResetUnknownReason()
		return nil
	case outboxentry.FieldSentAt:
		m.ResetSentAt()
		return nil
	case outboxentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboxEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboxEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboxEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboxEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboxEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboxEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboxEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OutboxEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboxEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OutboxEntry edge %s", name)
}

// PluginEventMutation represents an operation that mutates the PluginEvent nodes in the graph.
type PluginEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	plugin_id      *string
	plugin_version *string
	kind           *pluginevent.Kind
	status         *string
	work_item_id   *string
	detail         *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PluginEvent, error)
	predicates     []predicate.PluginEvent
}

var _ ent.Mutation = (*PluginEventMutation)(nil)

// plugineventOption allows management of the mutation configuration using functional options.
type plugineventOption func(*PluginEventMutation)

// newPluginEventMutation creates new mutation for the PluginEvent entity.
func newPluginEventMutation(c config, op Op, opts ...plugineventOption) *PluginEventMutation {
	m := &PluginEventMutation{
		config:        c,
		op:            op,
		typ:           TypePluginEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPluginEventID sets the ID field of the mutation.
func withPluginEventID(id string) plugineventOption {
	return func(m *PluginEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PluginEvent
		)
		m.oldValue = func(ctx context.Context) (*PluginEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PluginEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPluginEvent sets the old PluginEvent of the mutation.
func withPluginEvent(node *PluginEvent) plugineventOption {
	return func(m *PluginEventMutation) {
		m.oldValue = func(context.Context) (*PluginEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PluginEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PluginEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PluginEvent entities.
func (m *PluginEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PluginEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PluginEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PluginEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPluginID sets the "plugin_id" field.
func (m *PluginEventMutation) SetPluginID(s string) {
	m.plugin_id = &s
}

// PluginID returns the value of the "plugin_id" field in the mutation.
func (m *PluginEventMutation) PluginID() (r string, exists bool) {
	v := m.plugin_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPluginID returns the old "plugin_id" field's value of the PluginEvent entity.
// If the PluginEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginEventMutation) OldPluginID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPluginID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPluginID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPluginID: %w", err)
	}
	return oldValue.PluginID, nil
}

// ResetPluginID resets all changes to the "plugin_id" field.
func (m *PluginEventMutation) ResetPluginID() {
	m.plugin_id = nil
}

// SetPluginVersion sets the "plugin_version" field.
func (m *PluginEventMutation) SetPluginVersion(s string) {
	m.plugin_version = &s
}

// PluginVersion returns the value of the "plugin_version" field in the mutation.
func (m *PluginEventMutation) PluginVersion() (r string, exists bool) {
	v := m.plugin_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPluginVersion returns the old "plugin_version" field's value of the PluginEvent entity.
// If the PluginEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginEventMutation) OldPluginVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPluginVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPluginVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPluginVersion: %w", err)
	}
	return oldValue.PluginVersion, nil
}

// ClearPluginVersion clears the value of the "plugin_version" field.
func (m *PluginEventMutation) ClearPluginVersion() {
	m.plugin_version = nil
	m.clearedFields[pluginevent.FieldPluginVersion] = struct{}{}
}

// PluginVersionCleared returns if the "plugin_version" field was cleared in this mutation.
func (m *PluginEventMutation) PluginVersionCleared() bool {
	_, ok := m.clearedFields[pluginevent.FieldPluginVersion]
	return ok
}

// ResetPluginVersion resets all changes to the "plugin_version" field.
func (m *PluginEventMutation) ResetPluginVersion() {
	m.plugin_version = nil
	delete(m.clearedFields, pluginevent.FieldPluginVersion)
}

// SetKind sets the "kind" field.
func (m *PluginEventMutation) SetKind(pl pluginevent.Kind) {
	m.kind = &pl
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PluginEventMutation) Kind() (r pluginevent.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PluginEvent entity.
// If the PluginEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginEventMutation) OldKind(ctx context.Context) (v pluginevent.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PluginEventMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *PluginEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PluginEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PluginEvent entity.
// If the PluginEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginEventMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PluginEventMutation) ResetStatus() {
	m.status = nil
}

// SetWorkItemID sets the "work_item_id" field.
func (m *PluginEventMutation) SetWorkItemID(s string) {
	m.work_item_id = &s
}

// WorkItemID returns the value of the "work_item_id" field in the mutation.
func (m *PluginEventMutation) WorkItemID() (r string, exists bool) {
	v := m.work_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkItemID returns the old "work_item_id" field's value of the PluginEvent entity.
// If the PluginEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginEventMutation) OldWorkItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkItemID: %w", err)
	}
	return oldValue.WorkItemID, nil
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (m *PluginEventMutation) ClearWorkItemID() {
	m.work_item_id = nil
	m.clearedFields[pluginevent.FieldWorkItemID] = struct{}{}
}

// WorkItemIDCleared returns if the "work_item_id" field was cleared in this mutation.
func (m *PluginEventMutation) WorkItemIDCleared() bool {
	_, ok := m.clearedFields[pluginevent.FieldWorkItemID]
	return ok
}

// ResetWorkItemID resets all changes to the "work_item_id" field.
func (m *PluginEventMutation) ResetWorkItemID() {
	m.work_item_id = nil
	delete(m.clearedFields, pluginevent.FieldWorkItemID)
}

// SetDetail sets the "detail" field.
func (m *PluginEventMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *PluginEventMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the PluginEvent entity.
// If the PluginEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginEventMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *PluginEventMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[pluginevent.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *PluginEventMutation) DetailCleared() bool {
	_, ok := m.clearedFields[pluginevent.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *PluginEventMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, pluginevent.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *PluginEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PluginEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PluginEvent entity.
// If the PluginEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PluginEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PluginEventMutation builder.
func (m *PluginEventMutation) Where(ps ...predicate.PluginEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PluginEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PluginEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PluginEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PluginEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PluginEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PluginEvent).
func (m *PluginEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PluginEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.plugin_id != nil {
		fields = append(fields, pluginevent.FieldPluginID)
	}
	if m.plugin_version != nil {
		fields = append(fields, pluginevent.FieldPluginVersion)
	}
	if m.kind != nil {
		fields = append(fields, pluginevent.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, pluginevent.FieldStatus)
	}
	if m.work_item_id != nil {
		fields = append(fields, pluginevent.FieldWorkItemID)
	}
	if m.detail != nil {
		fields = append(fields, pluginevent.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, pluginevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PluginEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pluginevent.FieldPluginID:
		return m.PluginID()
	case pluginevent.FieldPluginVersion:
		return m.PluginVersion()
	case pluginevent.FieldKind:
		return m.Kind()
	case pluginevent.FieldStatus:
		return m.Status()
	case pluginevent.FieldWorkItemID:
		return m.WorkItemID()
	case pluginevent.FieldDetail:
		return m.Detail()
	case pluginevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PluginEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pluginevent.FieldPluginID:
		return m.OldPluginID(ctx)
	case pluginevent.FieldPluginVersion:
		return m.OldPluginVersion(ctx)
	case pluginevent.FieldKind:
		return m.OldKind(ctx)
	case pluginevent.FieldStatus:
		return m.OldStatus(ctx)
	case pluginevent.FieldWorkItemID:
		return m.OldWorkItemID(ctx)
	case pluginevent.FieldDetail:
		return m.OldDetail(ctx)
	case pluginevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PluginEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PluginEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pluginevent.FieldPluginID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPluginID(v)
		return nil
	case pluginevent.FieldPluginVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPluginVersion(v)
		return nil
	case pluginevent.FieldKind:
		v, ok := value.(pluginevent.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case pluginevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pluginevent.FieldWorkItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkItemID(v)
		return nil
	case pluginevent.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case pluginevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PluginEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PluginEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PluginEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PluginEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PluginEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PluginEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pluginevent.FieldPluginVersion) {
		fields = append(fields, pluginevent.FieldPluginVersion)
	}
	if m.FieldCleared(pluginevent.FieldWorkItemID) {
		fields = append(fields, pluginevent.FieldWorkItemID)
	}
	if m.FieldCleared(pluginevent.FieldDetail) {
		fields = append(fields, pluginevent.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PluginEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PluginEventMutation) ClearField(name string) error {
	switch name {
	case pluginevent.FieldPluginVersion:
		m.ClearPluginVersion()
		return nil
	case pluginevent.FieldWorkItemID:
		m.ClearWorkItemID()
		return nil
	case pluginevent.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown PluginEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PluginEventMutation) ResetField(name string) error {
	switch name {
	case pluginevent.FieldPluginID:
		m.ResetPluginID()
		return nil
	case pluginevent.FieldPluginVersion:
		m.ResetPluginVersion()
		return nil
	case pluginevent.FieldKind:
		m.ResetKind()
		return nil
	case pluginevent.FieldStatus:
		m.ResetStatus()
		return nil
	case pluginevent.FieldWorkItemID:
		m.ResetWorkItemID()
		return nil
	case pluginevent.FieldDetail:
		m.ResetDetail()
		return nil
	case pluginevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PluginEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PluginEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PluginEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PluginEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PluginEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PluginEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PluginEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PluginEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PluginEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PluginEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PluginEvent edge %s", name)
}

// PluginInstanceMutation represents an operation that mutates the PluginInstance nodes in the graph.
type PluginInstanceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	_type         *string
	name          *string
	_config       *map[string]interface{}
	enabled       *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PluginInstance, error)
	predicates    []predicate.PluginInstance
}

var _ ent.Mutation = (*PluginInstanceMutation)(nil)

// plugininstanceOption allows management of the mutation configuration using functional options.
type plugininstanceOption func(*PluginInstanceMutation)

// newPluginInstanceMutation creates new mutation for the PluginInstance entity.
func newPluginInstanceMutation(c config, op Op, opts ...plugininstanceOption) *PluginInstanceMutation {
	m := &PluginInstanceMutation{
		config:        c,
		op:            op,
		typ:           TypePluginInstance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPluginInstanceID sets the ID field of the mutation.
func withPluginInstanceID(id string) plugininstanceOption {
	return func(m *PluginInstanceMutation) {
		var (
			err   error
			once  sync.Once
			value *PluginInstance
		)
		m.oldValue = func(ctx context.Context) (*PluginInstance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PluginInstance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPluginInstance sets the old PluginInstance of the mutation.
func withPluginInstance(node *PluginInstance) plugininstanceOption {
	return func(m *PluginInstanceMutation) {
		m.oldValue = func(context.Context) (*PluginInstance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PluginInstanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PluginInstanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PluginInstance entities.
func (m *PluginInstanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PluginInstanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PluginInstanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PluginInstance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *PluginInstanceMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *PluginInstanceMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the PluginInstance entity.
// If the PluginInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginInstanceMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *PluginInstanceMutation) ResetType() {
	m._type = nil
}

// SetName sets the "name" field.
func (m *PluginInstanceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PluginInstanceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PluginInstance entity.
// If the PluginInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginInstanceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PluginInstanceMutation) ResetName() {
	m.name = nil
}

// SetConfig sets the "config" field.
func (m *PluginInstanceMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *PluginInstanceMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the PluginInstance entity.
// If the PluginInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginInstanceMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *PluginInstanceMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[plugininstance.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *PluginInstanceMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[plugininstance.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *PluginInstanceMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, plugininstance.FieldConfig)
}

// SetEnabled sets the "enabled" field.
func (m *PluginInstanceMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *PluginInstanceMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the PluginInstance entity.
// If the PluginInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginInstanceMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *PluginInstanceMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PluginInstanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PluginInstanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PluginInstance entity.
// If the PluginInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginInstanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PluginInstanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PluginInstanceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PluginInstanceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PluginInstance entity.
// If the PluginInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginInstanceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PluginInstanceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PluginInstanceMutation builder.
func (m *PluginInstanceMutation) Where(ps ...predicate.PluginInstance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PluginInstanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PluginInstanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PluginInstance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PluginInstanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PluginInstanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PluginInstance).
func (m *PluginInstanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PluginInstanceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m._type != nil {
		fields = append(fields, plugininstance.FieldType)
	}
	if m.name != nil {
		fields = append(fields, plugininstance.FieldName)
	}
	if m._config != nil {
		fields = append(fields, plugininstance.FieldConfig)
	}
	if m.enabled != nil {
		fields = append(fields, plugininstance.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, plugininstance.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, plugininstance.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PluginInstanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plugininstance.FieldType:
		return m.GetType()
	case plugininstance.FieldName:
		return m.Name()
	case plugininstance.FieldConfig:
		return m.Config()
	case plugininstance.FieldEnabled:
		return m.Enabled()
	case plugininstance.FieldCreatedAt:
		return m.CreatedAt()
	case plugininstance.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PluginInstanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plugininstance.FieldType:
		return m.OldType(ctx)
	case plugininstance.FieldName:
		return m.OldName(ctx)
	case plugininstance.FieldConfig:
		return m.OldConfig(ctx)
	case plugininstance.FieldEnabled:
		return m.OldEnabled(ctx)
	case plugininstance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plugininstance.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PluginInstance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PluginInstanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plugininstance.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case plugininstance.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case plugininstance.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case plugininstance.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case plugininstance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plugininstance.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PluginInstance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PluginInstanceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PluginInstanceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PluginInstanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PluginInstance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PluginInstanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plugininstance.FieldConfig) {
		fields = append(fields, plugininstance.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PluginInstanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PluginInstanceMutation) ClearField(name string) error {
	switch name {
	case plugininstance.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown PluginInstance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PluginInstanceMutation) ResetField(name string) error {
	switch name {
	case plugininstance.FieldType:
		m.ResetType()
		return nil
	case plugininstance.FieldName:
		m.ResetName()
		return nil
	case plugininstance.FieldConfig:
		m.ResetConfig()
		return nil
	case plugininstance.FieldEnabled:
		m.ResetEnabled()
		return nil
	case plugininstance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plugininstance.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PluginInstance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PluginInstanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PluginInstanceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PluginInstanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PluginInstanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PluginInstanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PluginInstanceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PluginInstanceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PluginInstance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PluginInstanceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PluginInstance edge %s", name)
}

// QueueLaneMutation represents an operation that mutates the QueueLane nodes in the graph.
type QueueLaneMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	session_key        *string
	agent_id           *string
	state              *queuelane.State
	mode               *queuelane.Mode
	is_paused          *bool
	debounce_until     *time.Time
	debounce_ms        *int
	adddebounce_ms     *int
	max_queued         *int
	addmax_queued      *int
	active_dispatch_id *string
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*QueueLane, error)
	predicates         []predicate.QueueLane
}

var _ ent.Mutation = (*QueueLaneMutation)(nil)

// queuelaneOption allows management of the mutation configuration using functional options.
type queuelaneOption func(*QueueLaneMutation)

// newQueueLaneMutation creates new mutation for the QueueLane entity.
func newQueueLaneMutation(c config, op Op, opts ...queuelaneOption) *QueueLaneMutation {
	m := &QueueLaneMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueLane,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueLaneID sets the ID field of the mutation.
func withQueueLaneID(id string) queuelaneOption {
	return func(m *QueueLaneMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueLane
		)
		m.oldValue = func(ctx context.Context) (*QueueLane, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueLane.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueLane sets the old QueueLane of the mutation.
func withQueueLane(node *QueueLane) queuelaneOption {
	return func(m *QueueLaneMutation) {
		m.oldValue = func(context.Context) (*QueueLane, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueLaneMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueLaneMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueLane entities.
func (m *QueueLaneMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueLaneMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueLaneMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueLane.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionKey sets the "session_key" field.
func (m *QueueLaneMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *QueueLaneMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *QueueLaneMutation) ResetSessionKey() {
	m.session_key = nil
}

// SetAgentID sets the "agent_id" field.
func (m *QueueLaneMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *QueueLaneMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *QueueLaneMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetState sets the "state" field.
func (m *QueueLaneMutation) SetState(q queuelane.State) {
	m.state = &q
}

// State returns the value of the "state" field in the mutation.
func (m *QueueLaneMutation) State() (r queuelane.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldState(ctx context.Context) (v queuelane.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *QueueLaneMutation) ResetState() {
	m.state = nil
}

// SetMode sets the "mode" field.
func (m *QueueLaneMutation) SetMode(q queuelane.Mode) {
	m.mode = &q
}

// Mode returns the value of the "mode" field in the mutation.
func (m *QueueLaneMutation) Mode() (r queuelane.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldMode(ctx context.Context) (v queuelane.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *QueueLaneMutation) ResetMode() {
	m.mode = nil
}

// SetIsPaused sets the "is_paused" field.
func (m *QueueLaneMutation) SetIsPaused(b bool) {
	m.is_paused = &b
}

// IsPaused returns the value of the "is_paused" field in the mutation.
func (m *QueueLaneMutation) IsPaused() (r bool, exists bool) {
	v := m.is_paused
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPaused returns the old "is_paused" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldIsPaused(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPaused is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPaused requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPaused: %w", err)
	}
	return oldValue.IsPaused, nil
}

// ResetIsPaused resets all changes to the "is_paused" field.
func (m *QueueLaneMutation) ResetIsPaused() {
	m.is_paused = nil
}

// SetDebounceUntil sets the "debounce_until" field.
func (m *QueueLaneMutation) SetDebounceUntil(t time.Time) {
	m.debounce_until = &t
}

// DebounceUntil returns the value of the "debounce_until" field in the mutation.
func (m *QueueLaneMutation) DebounceUntil() (r time.Time, exists bool) {
	v := m.debounce_until
	if v == nil {
		return
	}
	return *v, true
}

// OldDebounceUntil returns the old "debounce_until" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldDebounceUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebounceUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebounceUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebounceUntil: %w", err)
	}
	return oldValue.DebounceUntil, nil
}

// ClearDebounceUntil clears the value of the "debounce_until" field.
func (m *QueueLaneMutation) ClearDebounceUntil() {
	m.debounce_until = nil
	m.clearedFields[queuelane.FieldDebounceUntil] = struct{}{}
}

// DebounceUntilCleared returns if the "debounce_until" field was cleared in this mutation.
func (m *QueueLaneMutation) DebounceUntilCleared() bool {
	_, ok := m.clearedFields[queuelane.FieldDebounceUntil]
	return ok
}

// ResetDebounceUntil resets all changes to the "debounce_until" field.
func (m *QueueLaneMutation) ResetDebounceUntil() {
	m.debounce_until = nil
	delete(m.clearedFields, queuelane.FieldDebounceUntil)
}

// SetDebounceMs sets the "debounce_ms" field.
func (m *QueueLaneMutation) SetDebounceMs(i int) {
	m.debounce_ms = &i
	m.adddebounce_ms = nil
}

// DebounceMs returns the value of the "debounce_ms" field in the mutation.
func (m *QueueLaneMutation) DebounceMs() (r int, exists bool) {
	v := m.debounce_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDebounceMs returns the old "debounce_ms" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldDebounceMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebounceMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebounceMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebounceMs: %w", err)
	}
	return oldValue.DebounceMs, nil
}

// AddDebounceMs adds i to the "debounce_ms" field.
func (m *QueueLaneMutation) AddDebounceMs(i int) {
	if m.adddebounce_ms != nil {
		*m.adddebounce_ms += i
	} else {
		m.adddebounce_ms = &i
	}
}

// AddedDebounceMs returns the value that was added to the "debounce_ms" field in this mutation.
func (m *QueueLaneMutation) AddedDebounceMs() (r int, exists bool) {
	v := m.adddebounce_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDebounceMs resets all changes to the "debounce_ms" field.
func (m *QueueLaneMutation) ResetDebounceMs() {
	m.debounce_ms = nil
	m.adddebounce_ms = nil
}

// SetMaxQueued sets the "max_queued" field.
func (m *QueueLaneMutation) SetMaxQueued(i int) {
	m.max_queued = &i
	m.addmax_queued = nil
}

// MaxQueued returns the value of the "max_queued" field in the mutation.
func (m *QueueLaneMutation) MaxQueued() (r int, exists bool) {
	v := m.max_queued
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxQueued returns the old "max_queued" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldMaxQueued(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxQueued is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxQueued requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxQueued: %w", err)
	}
	return oldValue.MaxQueued, nil
}

// AddMaxQueued adds i to the "max_queued" field.
func (m *QueueLaneMutation) AddMaxQueued(i int) {
	if m.addmax_queued != nil {
		*m.addmax_queued += i
	} else {
		m.addmax_queued = &i
	}
}

// AddedMaxQueued returns the value that was added to the "max_queued" field in this mutation.
func (m *QueueLaneMutation) AddedMaxQueued() (r int, exists bool) {
	v := m.addmax_queued
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxQueued resets all changes to the "max_queued" field.
func (m *QueueLaneMutation) ResetMaxQueued() {
	m.max_queued = nil
	m.addmax_queued = nil
}

// SetActiveDispatchID sets the "active_dispatch_id" field.
func (m *QueueLaneMutation) SetActiveDispatchID(s string) {
	m.active_dispatch_id = &s
}

// ActiveDispatchID returns the value of the "active_dispatch_id" field in the mutation.
func (m *QueueLaneMutation) ActiveDispatchID() (r string, exists bool) {
	v := m.active_dispatch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveDispatchID returns the old "active_dispatch_id" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldActiveDispatchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveDispatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveDispatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveDispatchID: %w", err)
	}
	return oldValue.ActiveDispatchID, nil
}

// ClearActiveDispatchID clears the value of the "active_dispatch_id" field.
func (m *QueueLaneMutation) ClearActiveDispatchID() {
	m.active_dispatch_id = nil
	m.clearedFields[queuelane.FieldActiveDispatchID] = struct{}{}
}

// ActiveDispatchIDCleared returns if the "active_dispatch_id" field was cleared in this mutation.
func (m *QueueLaneMutation) ActiveDispatchIDCleared() bool {
	_, ok := m.clearedFields[queuelane.FieldActiveDispatchID]
	return ok
}

// ResetActiveDispatchID resets all changes to the "active_dispatch_id" field.
func (m *QueueLaneMutation) ResetActiveDispatchID() {
	m.active_dispatch_id = nil
	delete(m.clearedFields, queuelane.FieldActiveDispatchID)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QueueLaneMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QueueLaneMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QueueLane entity.
// If the QueueLane object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLaneMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QueueLaneMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QueueLaneMutation builder.
func (m *QueueLaneMutation) Where(ps ...predicate.QueueLane) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueLaneMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueLaneMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueLane, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueLaneMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueLaneMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueLane).
func (m *QueueLaneMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueLaneMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session_key != nil {
		fields = append(fields, queuelane.FieldSessionKey)
	}
	if m.agent_id != nil {
		fields = append(fields, queuelane.FieldAgentID)
	}
	if m.state != nil {
		fields = append(fields, queuelane.FieldState)
	}
	if m.mode != nil {
		fields = append(fields, queuelane.FieldMode)
	}
	if m.is_paused != nil {
		fields = append(fields, queuelane.FieldIsPaused)
	}
	if m.debounce_until != nil {
		fields = append(fields, queuelane.FieldDebounceUntil)
	}
	if m.debounce_ms != nil {
		fields = append(fields, queuelane.FieldDebounceMs)
	}
	if m.max_queued != nil {
		fields = append(fields, queuelane.FieldMaxQueued)
	}
	if m.active_dispatch_id != nil {
		fields = append(fields, queuelane.FieldActiveDispatchID)
	}
	if m.updated_at != nil {
		fields = append(fields, queuelane.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueLaneMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuelane.FieldSessionKey:
		return m.SessionKey()
	case queuelane.FieldAgentID:
		return m.AgentID()
	case queuelane.FieldState:
		return m.State()
	case queuelane.FieldMode:
		return m.Mode()
	case queuelane.FieldIsPaused:
		return m.IsPaused()
	case queuelane.FieldDebounceUntil:
		return m.DebounceUntil()
	case queuelane.FieldDebounceMs:
		return m.DebounceMs()
	case queuelane.FieldMaxQueued:
		return m.MaxQueued()
	case queuelane.FieldActiveDispatchID:
		return m.ActiveDispatchID()
	case queuelane.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueLaneMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuelane.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case queuelane.FieldAgentID:
		return m.OldAgentID(ctx)
	case queuelane.FieldState:
		return m.OldState(ctx)
	case queuelane.FieldMode:
		return m.OldMode(ctx)
	case queuelane.FieldIsPaused:
		return m.OldIsPaused(ctx)
	case queuelane.FieldDebounceUntil:
		return m.OldDebounceUntil(ctx)
	case queuelane.FieldDebounceMs:
		return m.OldDebounceMs(ctx)
	case queuelane.FieldMaxQueued:
		return m.OldMaxQueued(ctx)
	case queuelane.FieldActiveDispatchID:
		return m.OldActiveDispatchID(ctx)
	case queuelane.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueLane field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueLaneMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuelane.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case queuelane.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case queuelane.FieldState:
		v, ok := value.(queuelane.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case queuelane.FieldMode:
		v, ok := value.(queuelane.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case queuelane.FieldIsPaused:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPaused(v)
		return nil
	case queuelane.FieldDebounceUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebounceUntil(v)
		return nil
	case queuelane.FieldDebounceMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebounceMs(v)
		return nil
	case queuelane.FieldMaxQueued:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxQueued(v)
		return nil
	case queuelane.FieldActiveDispatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveDispatchID(v)
		return nil
	case queuelane.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueLane field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueLaneMutation) AddedFields() []string {
	var fields []string
	if m.adddebounce_ms != nil {
		fields = append(fields, queuelane.FieldDebounceMs)
	}
	if m.addmax_queued != nil {
		fields = append(fields, queuelane.FieldMaxQueued)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueLaneMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuelane.FieldDebounceMs:
		return m.AddedDebounceMs()
	case queuelane.FieldMaxQueued:
		return m.AddedMaxQueued()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueLaneMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuelane.FieldDebounceMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDebounceMs(v)
		return nil
	case queuelane.FieldMaxQueued:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxQueued(v)
		return nil
	}
	return fmt.Errorf("unknown QueueLane numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueLaneMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuelane.FieldDebounceUntil) {
		fields = append(fields, queuelane.FieldDebounceUntil)
	}
	if m.FieldCleared(queuelane.FieldActiveDispatchID) {
		fields = append(fields, queuelane.FieldActiveDispatchID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueLaneMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueLaneMutation) ClearField(name string) error {
	switch name {
	case queuelane.FieldDebounceUntil:
		m.ClearDebounceUntil()
		return nil
	case queuelane.FieldActiveDispatchID:
		m.ClearActiveDispatchID()
		return nil
	}
	return fmt.Errorf("unknown QueueLane nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueLaneMutation) ResetField(name string) error {
	switch name {
	case queuelane.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case queuelane.FieldAgentID:
		m.ResetAgentID()
		return nil
	case queuelane.FieldState:
		m.ResetState()
		return nil
	case queuelane.FieldMode:
		m.ResetMode()
		return nil
	case queuelane.FieldIsPaused:
		m.ResetIsPaused()
		return nil
	case queuelane.FieldDebounceUntil:
		m.ResetDebounceUntil()
		return nil
	case queuelane.FieldDebounceMs:
		m.ResetDebounceMs()
		return nil
	case queuelane.FieldMaxQueued:
		m.ResetMaxQueued()
		return nil
	case queuelane.FieldActiveDispatchID:
		m.ResetActiveDispatchID()
		return nil
	case queuelane.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueLane field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueLaneMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueLaneMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueLaneMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueLaneMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueLaneMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueLaneMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueLaneMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueLane unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueLaneMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueLane edge %s", name)
}

// QueueMessageMutation represents an operation that mutates the QueueMessage nodes in the graph.
type QueueMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	queue_key     *string
	work_item_id  *string
	text          *string
	sender_name   *string
	arrived_at    *time.Time
	status        *queuemessage.Status
	dispatch_id   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QueueMessage, error)
	predicates    []predicate.QueueMessage
}

var _ ent.Mutation = (*QueueMessageMutation)(nil)

// queuemessageOption allows management of the mutation configuration using functional options.
type queuemessageOption func(*QueueMessageMutation)

// newQueueMessageMutation creates new mutation for the QueueMessage entity.
func newQueueMessageMutation(c config, op Op, opts ...queuemessageOption) *QueueMessageMutation {
	m := &QueueMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueMessageID sets the ID field of the mutation.
func withQueueMessageID(id string) queuemessageOption {
	return func(m *QueueMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueMessage
		)
		m.oldValue = func(ctx context.Context) (*QueueMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueMessage sets the old QueueMessage of the mutation.
func withQueueMessage(node *QueueMessage) queuemessageOption {
	return func(m *QueueMessageMutation) {
		m.oldValue = func(context.Context) (*QueueMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueMessage entities.
func (m *QueueMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueueKey sets the "queue_key" field.
func (m *QueueMessageMutation) SetQueueKey(s string) {
	m.queue_key = &s
}

// QueueKey returns the value of the "queue_key" field in the mutation.
func (m *QueueMessageMutation) QueueKey() (r string, exists bool) {
	v := m.queue_key
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueKey returns the old "queue_key" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldQueueKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueKey: %w", err)
	}
	return oldValue.QueueKey, nil
}

// ResetQueueKey resets all changes to the "queue_key" field.
func (m *QueueMessageMutation) ResetQueueKey() {
	m.queue_key = nil
}

// SetWorkItemID sets the "work_item_id" field.
func (m *QueueMessageMutation) SetWorkItemID(s string) {
	m.work_item_id = &s
}

// WorkItemID returns the value of the "work_item_id" field in the mutation.
func (m *QueueMessageMutation) WorkItemID() (r string, exists bool) {
	v := m.work_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkItemID returns the old "work_item_id" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldWorkItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkItemID: %w", err)
	}
	return oldValue.WorkItemID, nil
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (m *QueueMessageMutation) ClearWorkItemID() {
	m.work_item_id = nil
	m.clearedFields[queuemessage.FieldWorkItemID] = struct{}{}
}

// WorkItemIDCleared returns if the "work_item_id" field was cleared in this mutation.
func (m *QueueMessageMutation) WorkItemIDCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldWorkItemID]
	return ok
}

// ResetWorkItemID resets all changes to the "work_item_id" field.
func (m *QueueMessageMutation) ResetWorkItemID() {
	m.work_item_id = nil
	delete(m.clearedFields, queuemessage.FieldWorkItemID)
}

// SetText sets the "text" field.
func (m *QueueMessageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QueueMessageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QueueMessageMutation) ResetText() {
	m.text = nil
}

// SetSenderName sets the "sender_name" field.
func (m *QueueMessageMutation) SetSenderName(s string) {
	m.sender_name = &s
}

// SenderName returns the value of the "sender_name" field in the mutation.
func (m *QueueMessageMutation) SenderName() (r string, exists bool) {
	v := m.sender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderName returns the old "sender_name" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldSenderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderName: %w", err)
	}
	return oldValue.SenderName, nil
}

// ClearSenderName clears the value of the "sender_name" field.
func (m *QueueMessageMutation) ClearSenderName() {
	m.sender_name = nil
	m.clearedFields[queuemessage.FieldSenderName] = struct{}{}
}

// SenderNameCleared returns if the "sender_name" field was cleared in this mutation.
func (m *QueueMessageMutation) SenderNameCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldSenderName]
	return ok
}

// ResetSenderName resets all changes to the "sender_name" field.
func (m *QueueMessageMutation) ResetSenderName() {
	m.sender_name = nil
	delete(m.clearedFields, queuemessage.FieldSenderName)
}

// SetArrivedAt sets the "arrived_at" field.
func (m *QueueMessageMutation) SetArrivedAt(t time.Time) {
	m.arrived_at = &t
}

// ArrivedAt returns the value of the "arrived_at" field in the mutation.
func (m *QueueMessageMutation) ArrivedAt() (r time.Time, exists bool) {
	v := m.arrived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArrivedAt returns the old "arrived_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldArrivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArrivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArrivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArrivedAt: %w", err)
	}
	return oldValue.ArrivedAt, nil
}

// ResetArrivedAt resets all changes to the "arrived_at" field.
func (m *QueueMessageMutation) ResetArrivedAt() {
	m.arrived_at = nil
}

// SetStatus sets the "status" field.
func (m *QueueMessageMutation) SetStatus(q queuemessage.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueueMessageMutation) Status() (r queuemessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldStatus(ctx context.Context) (v queuemessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueueMessageMutation) ResetStatus() {
	m.status = nil
}

// SetDispatchID sets the "dispatch_id" field.
func (m *QueueMessageMutation) SetDispatchID(s string) {
	m.dispatch_id = &s
}

// DispatchID returns the value of the "dispatch_id" field in the mutation.
func (m *QueueMessageMutation) DispatchID() (r string, exists bool) {
	v := m.dispatch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchID returns the old "dispatch_id" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldDispatchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchID: %w", err)
	}
	return oldValue.DispatchID, nil
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (m *QueueMessageMutation) ClearDispatchID() {
	m.dispatch_id = nil
	m.clearedFields[queuemessage.FieldDispatchID] = struct{}{}
}

// DispatchIDCleared returns if the "dispatch_id" field was cleared in this mutation.
func (m *QueueMessageMutation) DispatchIDCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldDispatchID]
	return ok
}

// ResetDispatchID resets all changes to the "dispatch_id" field.
func (m *QueueMessageMutation) ResetDispatchID() {
	m.dispatch_id = nil
	delete(m.clearedFields, queuemessage.FieldDispatchID)
}

// Where appends a list predicates to the QueueMessageMutation builder.
func (m *QueueMessageMutation) Where(ps ...predicate.QueueMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueMessage).
func (m *QueueMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.queue_key != nil {
		fields = append(fields, queuemessage.FieldQueueKey)
	}
	if m.work_item_id != nil {
		fields = append(fields, queuemessage.FieldWorkItemID)
	}
	if m.text != nil {
		fields = append(fields, queuemessage.FieldText)
	}
	if m.sender_name != nil {
		fields = append(fields, queuemessage.FieldSenderName)
	}
	if m.arrived_at != nil {
		fields = append(fields, queuemessage.FieldArrivedAt)
	}
	if m.status != nil {
		fields = append(fields, queuemessage.FieldStatus)
	}
	if m.dispatch_id != nil {
		fields = append(fields, queuemessage.FieldDispatchID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldQueueKey:
		return m.QueueKey()
	case queuemessage.FieldWorkItemID:
		return m.WorkItemID()
	case queuemessage.FieldText:
		return m.Text()
	case queuemessage.FieldSenderName:
		return m.SenderName()
	case queuemessage.FieldArrivedAt:
		return m.ArrivedAt()
	case queuemessage.FieldStatus:
		return m.Status()
	case queuemessage.FieldDispatchID:
		return m.DispatchID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuemessage.FieldQueueKey:
		return m.OldQueueKey(ctx)
	case queuemessage.FieldWorkItemID:
		return m.OldWorkItemID(ctx)
	case queuemessage.FieldText:
		return m.OldText(ctx)
	case queuemessage.FieldSenderName:
		return m.OldSenderName(ctx)
	case queuemessage.FieldArrivedAt:
		return m.OldArrivedAt(ctx)
	case queuemessage.FieldStatus:
		return m.OldStatus(ctx)
	case queuemessage.FieldDispatchID:
		return m.OldDispatchID(ctx)
	}
	return nil, fmt.Errorf("unknown QueueMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldQueueKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueKey(v)
		return nil
	case queuemessage.FieldWorkItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkItemID(v)
		return nil
	case queuemessage.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case queuemessage.FieldSenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderName(v)
		return nil
	case queuemessage.FieldArrivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArrivedAt(v)
		return nil
	case queuemessage.FieldStatus:
		v, ok := value.(queuemessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queuemessage.FieldDispatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchID(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QueueMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuemessage.FieldWorkItemID) {
		fields = append(fields, queuemessage.FieldWorkItemID)
	}
	if m.FieldCleared(queuemessage.FieldSenderName) {
		fields = append(fields, queuemessage.FieldSenderName)
	}
	if m.FieldCleared(queuemessage.FieldDispatchID) {
		fields = append(fields, queuemessage.FieldDispatchID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueMessageMutation) ClearField(name string) error {
	switch name {
	case queuemessage.FieldWorkItemID:
		m.ClearWorkItemID()
		return nil
	case queuemessage.FieldSenderName:
		m.ClearSenderName()
		return nil
	case queuemessage.FieldDispatchID:
		m.ClearDispatchID()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueMessageMutation) ResetField(name string) error {
	switch name {
	case queuemessage.FieldQueueKey:
		m.ResetQueueKey()
		return nil
	case queuemessage.FieldWorkItemID:
		m.ResetWorkItemID()
		return nil
	case queuemessage.FieldText:
		m.ResetText()
		return nil
	case queuemessage.FieldSenderName:
		m.ResetSenderName()
		return nil
	case queuemessage.FieldArrivedAt:
		m.ResetArrivedAt()
		return nil
	case queuemessage.FieldStatus:
		m.ResetStatus()
		return nil
	case queuemessage.FieldDispatchID:
		m.ResetDispatchID()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage edge %s", name)
}

// RoutineMutation represents an operation that mutates the Routine nodes in the graph.
type RoutineMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	agent_id                  *string
	name                      *string
	trigger_kind              *routine.TriggerKind
	cron_expr                 *string
	timezone                  *string
	rule_json                 *string
	condition_probe           *string
	condition_config          *map[string]interface{}
	target_plugin_instance_id *string
	target_session_key        *string
	action_prompt             *string
	enabled                   *bool
	min_interval_ms           *int64
	addmin_interval_ms        *int64
	next_run_at               *time.Time
	last_fired_at             *time.Time
	last_status               *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Routine, error)
	predicates                []predicate.Routine
}

var _ ent.Mutation = (*RoutineMutation)(nil)

// routineOption allows management of the mutation configuration using functional options.
type routineOption func(*RoutineMutation)

// newRoutineMutation creates new mutation for the Routine entity.
func newRoutineMutation(c config, op Op, opts ...routineOption) *RoutineMutation {
	m := &RoutineMutation{
		config:        c,
		op:            op,
		typ:           TypeRoutine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoutineID sets the ID field of the mutation.
func withRoutineID(id string) routineOption {
	return func(m *RoutineMutation) {
		var (
			err   error
			once  sync.Once
			value *Routine
		)
		m.oldValue = func(ctx context.Context) (*Routine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Routine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoutine sets the old Routine of the mutation.
func withRoutine(node *Routine) routineOption {
	return func(m *RoutineMutation) {
		m.oldValue = func(context.Context) (*Routine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoutineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoutineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Routine entities.
func (m *RoutineMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoutineMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoutineMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Routine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *RoutineMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *RoutineMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *RoutineMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetName sets the "name" field.
func (m *RoutineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoutineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *RoutineMutation) ClearName() {
	m.name = nil
	m.clearedFields[routine.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *RoutineMutation) NameCleared() bool {
	_, ok := m.clearedFields[routine.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *RoutineMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, routine.FieldName)
}

// SetTriggerKind sets the "trigger_kind" field.
func (m *RoutineMutation) SetTriggerKind(rk routine.TriggerKind) {
	m.trigger_kind = &rk
}

// TriggerKind returns the value of the "trigger_kind" field in the mutation.
func (m *RoutineMutation) TriggerKind() (r routine.TriggerKind, exists bool) {
	v := m.trigger_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerKind returns the old "trigger_kind" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldTriggerKind(ctx context.Context) (v routine.TriggerKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerKind: %w", err)
	}
	return oldValue.TriggerKind, nil
}

// ResetTriggerKind resets all changes to the "trigger_kind" field.
func (m *RoutineMutation) ResetTriggerKind() {
	m.trigger_kind = nil
}

// SetCronExpr sets the "cron_expr" field.
func (m *RoutineMutation) SetCronExpr(s string) {
	m.cron_expr = &s
}

// CronExpr returns the value of the "cron_expr" field in the mutation.
func (m *RoutineMutation) CronExpr() (r string, exists bool) {
	v := m.cron_expr
	if v == nil {
		return
	}
	return *v, true
}

// OldCronExpr returns the old "cron_expr" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldCronExpr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronExpr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronExpr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronExpr: %w", err)
	}
	return oldValue.CronExpr, nil
}

// ClearCronExpr clears the value of the "cron_expr" field.
func (m *RoutineMutation) ClearCronExpr() {
	m.cron_expr = nil
	m.clearedFields[routine.FieldCronExpr] = struct{}{}
}

// CronExprCleared returns if the "cron_expr" field was cleared in this mutation.
func (m *RoutineMutation) CronExprCleared() bool {
	_, ok := m.clearedFields[routine.FieldCronExpr]
	return ok
}

// ResetCronExpr resets all changes to the "cron_expr" field.
func (m *RoutineMutation) ResetCronExpr() {
	m.cron_expr = nil
	delete(m.clearedFields, routine.FieldCronExpr)
}

// SetTimezone sets the "timezone" field.
func (m *RoutineMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *RoutineMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ClearTimezone clears the value of the "timezone" field.
func (m *RoutineMutation) ClearTimezone() {
	m.timezone = nil
	m.clearedFields[routine.FieldTimezone] = struct{}{}
}

// TimezoneCleared returns if the "timezone" field was cleared in this mutation.
func (m *RoutineMutation) TimezoneCleared() bool {
	_, ok := m.clearedFields[routine.FieldTimezone]
	return ok
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *RoutineMutation) ResetTimezone() {
	m.timezone = nil
	delete(m.clearedFields, routine.FieldTimezone)
}

// SetRuleJSON sets the "rule_json" field.
func (m *RoutineMutation) SetRuleJSON(s string) {
	m.rule_json = &s
}

// RuleJSON returns the value of the "rule_json" field in the mutation.
func (m *RoutineMutation) RuleJSON() (r string, exists bool) {
	v := m.rule_json
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleJSON returns the old "rule_json" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldRuleJSON(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleJSON: %w", err)
	}
	return oldValue.RuleJSON, nil
}

// ClearRuleJSON clears the value of the "rule_json" field.
func (m *RoutineMutation) ClearRuleJSON() {
	m.rule_json = nil
	m.clearedFields[routine.FieldRuleJSON] = struct{}{}
}

// RuleJSONCleared returns if the "rule_json" field was cleared in this mutation.
func (m *RoutineMutation) RuleJSONCleared() bool {
	_, ok := m.clearedFields[routine.FieldRuleJSON]
	return ok
}

// ResetRuleJSON resets all changes to the "rule_json" field.
func (m *RoutineMutation) ResetRuleJSON() {
	m.rule_json = nil
	delete(m.clearedFields, routine.FieldRuleJSON)
}

// SetConditionProbe sets the "condition_probe" field.
func (m *RoutineMutation) SetConditionProbe(s string) {
	m.condition_probe = &s
}

// ConditionProbe returns the value of the "condition_probe" field in the mutation.
func (m *RoutineMutation) ConditionProbe() (r string, exists bool) {
	v := m.condition_probe
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionProbe returns the old "condition_probe" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldConditionProbe(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionProbe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionProbe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionProbe: %w", err)
	}
	return oldValue.ConditionProbe, nil
}

// ClearConditionProbe clears the value of the "condition_probe" field.
func (m *RoutineMutation) ClearConditionProbe() {
	m.condition_probe = nil
	m.clearedFields[routine.FieldConditionProbe] = struct{}{}
}

// ConditionProbeCleared returns if the "condition_probe" field was cleared in this mutation.
func (m *RoutineMutation) ConditionProbeCleared() bool {
	_, ok := m.clearedFields[routine.FieldConditionProbe]
	return ok
}

// ResetConditionProbe resets all changes to the "condition_probe" field.
func (m *RoutineMutation) ResetConditionProbe() {
	m.condition_probe = nil
	delete(m.clearedFields, routine.FieldConditionProbe)
}

// SetConditionConfig sets the "condition_config" field.
func (m *RoutineMutation) SetConditionConfig(value map[string]interface{}) {
	m.condition_config = &value
}

// ConditionConfig returns the value of the "condition_config" field in the mutation.
func (m *RoutineMutation) ConditionConfig() (r map[string]interface{}, exists bool) {
	v := m.condition_config
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionConfig returns the old "condition_config" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldConditionConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionConfig: %w", err)
	}
	return oldValue.ConditionConfig, nil
}

// ClearConditionConfig clears the value of the "condition_config" field.
func (m *RoutineMutation) ClearConditionConfig() {
	m.condition_config = nil
	m.clearedFields[routine.FieldConditionConfig] = struct{}{}
}

// ConditionConfigCleared returns if the "condition_config" field was cleared in this mutation.
func (m *RoutineMutation) ConditionConfigCleared() bool {
	_, ok := m.clearedFields[routine.FieldConditionConfig]
	return ok
}

// ResetConditionConfig resets all changes to the "condition_config" field.
func (m *RoutineMutation) ResetConditionConfig() {
	m.condition_config = nil
	delete(m.clearedFields, routine.FieldConditionConfig)
}

// SetTargetPluginInstanceID sets the "target_plugin_instance_id" field.
func (m *RoutineMutation) SetTargetPluginInstanceID(s string) {
	m.target_plugin_instance_id = &s
}

// TargetPluginInstanceID returns the value of the "target_plugin_instance_id" field in the mutation.
func (m *RoutineMutation) TargetPluginInstanceID() (r string, exists bool) {
	v := m.target_plugin_instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetPluginInstanceID returns the old "target_plugin_instance_id" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldTargetPluginInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetPluginInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetPluginInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetPluginInstanceID: %w", err)
	}
	return oldValue.TargetPluginInstanceID, nil
}

// ClearTargetPluginInstanceID clears the value of the "target_plugin_instance_id" field.
func (m *RoutineMutation) ClearTargetPluginInstanceID() {
	m.target_plugin_instance_id = nil
	m.clearedFields[routine.FieldTargetPluginInstanceID] = struct{}{}
}

// TargetPluginInstanceIDCleared returns if the "target_plugin_instance_id" field was cleared in this mutation.
func (m *RoutineMutation) TargetPluginInstanceIDCleared() bool {
	_, ok := m.clearedFields[routine.FieldTargetPluginInstanceID]
	return ok
}

// ResetTargetPluginInstanceID resets all changes to the "target_plugin_instance_id" field.
func (m *RoutineMutation) ResetTargetPluginInstanceID() {
	m.target_plugin_instance_id = nil
	delete(m.clearedFields, routine.FieldTargetPluginInstanceID)
}

// SetTargetSessionKey sets the "target_session_key" field.
func (m *RoutineMutation) SetTargetSessionKey(s string) {
	m.target_session_key = &s
}

// TargetSessionKey returns the value of the "target_session_key" field in the mutation.
func (m *RoutineMutation) TargetSessionKey() (r string, exists bool) {
	v := m.target_session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetSessionKey returns the old "target_session_key" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldTargetSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetSessionKey: %w", err)
	}
	return oldValue.TargetSessionKey, nil
}

// ClearTargetSessionKey clears the value of the "target_session_key" field.
func (m *RoutineMutation) ClearTargetSessionKey() {
	m.target_session_key = nil
	m.clearedFields[routine.FieldTargetSessionKey] = struct{}{}
}

// TargetSessionKeyCleared returns if the "target_session_key" field was cleared in this mutation.
func (m *RoutineMutation) TargetSessionKeyCleared() bool {
	_, ok := m.clearedFields[routine.FieldTargetSessionKey]
	return ok
}

// ResetTargetSessionKey resets all changes to the "target_session_key" field.
func (m *RoutineMutation) ResetTargetSessionKey() {
	m.target_session_key = nil
	delete(m.clearedFields, routine.FieldTargetSessionKey)
}

// SetActionPrompt sets the "action_prompt" field.
func (m *RoutineMutation) SetActionPrompt(s string) {
	m.action_prompt = &s
}

// ActionPrompt returns the value of the "action_prompt" field in the mutation.
func (m *RoutineMutation) ActionPrompt() (r string, exists bool) {
	v := m.action_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldActionPrompt returns the old "action_prompt" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldActionPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionPrompt: %w", err)
	}
	return oldValue.ActionPrompt, nil
}

// ResetActionPrompt resets all changes to the "action_prompt" field.
func (m *RoutineMutation) ResetActionPrompt() {
	m.action_prompt = nil
}

// SetEnabled sets the "enabled" field.
func (m *RoutineMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *RoutineMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *RoutineMutation) ResetEnabled() {
	m.enabled = nil
}

// SetMinIntervalMs sets the "min_interval_ms" field.
func (m *RoutineMutation) SetMinIntervalMs(i int64) {
	m.min_interval_ms = &i
	m.addmin_interval_ms = nil
}

// MinIntervalMs returns the value of the "min_interval_ms" field in the mutation.
func (m *RoutineMutation) MinIntervalMs() (r int64, exists bool) {
	v := m.min_interval_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldMinIntervalMs returns the old "min_interval_ms" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldMinIntervalMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinIntervalMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinIntervalMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinIntervalMs: %w", err)
	}
	return oldValue.MinIntervalMs, nil
}

// AddMinIntervalMs adds i to the "min_interval_ms" field.
func (m *RoutineMutation) AddMinIntervalMs(i int64) {
	if m.addmin_interval_ms != nil {
		*m.addmin_interval_ms += i
	} else {
		m.addmin_interval_ms = &i
	}
}

// AddedMinIntervalMs returns the value that was added to the "min_interval_ms" field in this mutation.
func (m *RoutineMutation) AddedMinIntervalMs() (r int64, exists bool) {
	v := m.addmin_interval_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinIntervalMs resets all changes to the "min_interval_ms" field.
func (m *RoutineMutation) ResetMinIntervalMs() {
	m.min_interval_ms = nil
	m.addmin_interval_ms = nil
}

// SetNextRunAt sets the "next_run_at" field.
func (m *RoutineMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *RoutineMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldNextRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *RoutineMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.clearedFields[routine.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *RoutineMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[routine.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *RoutineMutation) ResetNextRunAt() {
	m.next_run_at = nil
	delete(m.clearedFields, routine.FieldNextRunAt)
}

// SetLastFiredAt sets the "last_fired_at" field.
func (m *RoutineMutation) SetLastFiredAt(t time.Time) {
	m.last_fired_at = &t
}

// LastFiredAt returns the value of the "last_fired_at" field in the mutation.
func (m *RoutineMutation) LastFiredAt() (r time.Time, exists bool) {
	v := m.last_fired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFiredAt returns the old "last_fired_at" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldLastFiredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFiredAt: %w", err)
	}
	return oldValue.LastFiredAt, nil
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (m *RoutineMutation) ClearLastFiredAt() {
	m.last_fired_at = nil
	m.clearedFields[routine.FieldLastFiredAt] = struct{}{}
}

// LastFiredAtCleared returns if the "last_fired_at" field was cleared in this mutation.
func (m *RoutineMutation) LastFiredAtCleared() bool {
	_, ok := m.clearedFields[routine.FieldLastFiredAt]
	return ok
}

// ResetLastFiredAt resets all changes to the "last_fired_at" field.
func (m *RoutineMutation) ResetLastFiredAt() {
	m.last_fired_at = nil
	delete(m.clearedFields, routine.FieldLastFiredAt)
}

// SetLastStatus sets the "last_status" field.
func (m *RoutineMutation) SetLastStatus(s string) {
	m.last_status = &s
}

// LastStatus returns the value of the "last_status" field in the mutation.
func (m *RoutineMutation) LastStatus() (r string, exists bool) {
	v := m.last_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStatus returns the old "last_status" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldLastStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStatus: %w", err)
	}
	return oldValue.LastStatus, nil
}

// ClearLastStatus clears the value of the "last_status" field.
func (m *RoutineMutation) ClearLastStatus() {
	m.last_status = nil
	m.clearedFields[routine.FieldLastStatus] = struct{}{}
}

// LastStatusCleared returns if the "last_status" field was cleared in this mutation.
func (m *RoutineMutation) LastStatusCleared() bool {
	_, ok := m.clearedFields[routine.FieldLastStatus]
	return ok
}

// ResetLastStatus resets all changes to the "last_status" field.
func (m *RoutineMutation) ResetLastStatus() {
	m.last_status = nil
	delete(m.clearedFields, routine.FieldLastStatus)
}

// SetCreatedAt sets the "created_at" field.
func (m *RoutineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoutineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoutineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoutineMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoutineMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RoutineMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RoutineMutation builder.
func (m *RoutineMutation) Where(ps ...predicate.Routine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoutineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoutineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Routine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoutineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoutineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Routine).
func (m *RoutineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoutineMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.agent_id != nil {
		fields = append(fields, routine.FieldAgentID)
	}
	if m.name != nil {
		fields = append(fields, routine.FieldName)
	}
	if m.trigger_kind != nil {
		fields = append(fields, routine.FieldTriggerKind)
	}
	if m.cron_expr != nil {
		fields = append(fields, routine.FieldCronExpr)
	}
	if m.timezone != nil {
		fields = append(fields, routine.FieldTimezone)
	}
	if m.rule_json != nil {
		fields = append(fields, routine.FieldRuleJSON)
	}
	if m.condition_probe != nil {
		fields = append(fields, routine.FieldConditionProbe)
	}
	if m.condition_config != nil {
		fields = append(fields, routine.FieldConditionConfig)
	}
	if m.target_plugin_instance_id != nil {
		fields = append(fields, routine.FieldTargetPluginInstanceID)
	}
	if m.target_session_key != nil {
		fields = append(fields, routine.FieldTargetSessionKey)
	}
	if m.action_prompt != nil {
		fields = append(fields, routine.FieldActionPrompt)
	}
	if m.enabled != nil {
		fields = append(fields, routine.FieldEnabled)
	}
	if m.min_interval_ms != nil {
		fields = append(fields, routine.FieldMinIntervalMs)
	}
	if m.next_run_at != nil {
		fields = append(fields, routine.FieldNextRunAt)
	}
	if m.last_fired_at != nil {
		fields = append(fields, routine.FieldLastFiredAt)
	}
	if m.last_status != nil {
		fields = append(fields, routine.FieldLastStatus)
	}
	if m.created_at != nil {
		fields = append(fields, routine.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, routine.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoutineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case routine.FieldAgentID:
		return m.AgentID()
	case routine.FieldName:
		return m.Name()
	case routine.FieldTriggerKind:
		return m.TriggerKind()
	case routine.FieldCronExpr:
		return m.CronExpr()
	case routine.FieldTimezone:
		return m.Timezone()
	case routine.FieldRuleJSON:
		return m.RuleJSON()
	case routine.FieldConditionProbe:
		return m.ConditionProbe()
	case routine.FieldConditionConfig:
		return m.ConditionConfig()
	case routine.FieldTargetPluginInstanceID:
		return m.TargetPluginInstanceID()
	case routine.FieldTargetSessionKey:
		return m.TargetSessionKey()
	case routine.FieldActionPrompt:
		return m.ActionPrompt()
	case routine.FieldEnabled:
		return m.Enabled()
	case routine.FieldMinIntervalMs:
		return m.MinIntervalMs()
	case routine.FieldNextRunAt:
		return m.NextRunAt()
	case routine.FieldLastFiredAt:
		return m.LastFiredAt()
	case routine.FieldLastStatus:
		return m.LastStatus()
	case routine.FieldCreatedAt:
		return m.CreatedAt()
	case routine.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoutineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case routine.FieldAgentID:
		return m.OldAgentID(ctx)
	case routine.FieldName:
		return m.OldName(ctx)
	case routine.FieldTriggerKind:
		return m.OldTriggerKind(ctx)
	case routine.FieldCronExpr:
		return m.OldCronExpr(ctx)
	case routine.FieldTimezone:
		return m.OldTimezone(ctx)
	case routine.FieldRuleJSON:
		return m.OldRuleJSON(ctx)
	case routine.FieldConditionProbe:
		return m.OldConditionProbe(ctx)
	case routine.FieldConditionConfig:
		return m.OldConditionConfig(ctx)
	case routine.FieldTargetPluginInstanceID:
		return m.OldTargetPluginInstanceID(ctx)
	case routine.FieldTargetSessionKey:
		return m.OldTargetSessionKey(ctx)
	case routine.FieldActionPrompt:
		return m.OldActionPrompt(ctx)
	case routine.FieldEnabled:
		return m.OldEnabled(ctx)
	case routine.FieldMinIntervalMs:
		return m.OldMinIntervalMs(ctx)
	case routine.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case routine.FieldLastFiredAt:
		return m.OldLastFiredAt(ctx)
	case routine.FieldLastStatus:
		return m.OldLastStatus(ctx)
	case routine.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case routine.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Routine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case routine.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case routine.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case routine.FieldTriggerKind:
		v, ok := value.(routine.TriggerKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerKind(v)
		return nil
	case routine.FieldCronExpr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronExpr(v)
		return nil
	case routine.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case routine.FieldRuleJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleJSON(v)
		return nil
	case routine.FieldConditionProbe:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionProbe(v)
		return nil
	case routine.FieldConditionConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionConfig(v)
		return nil
	case routine.FieldTargetPluginInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetPluginInstanceID(v)
		return nil
	case routine.FieldTargetSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetSessionKey(v)
		return nil
	case routine.FieldActionPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionPrompt(v)
		return nil
	case routine.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case routine.FieldMinIntervalMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinIntervalMs(v)
		return nil
	case routine.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case routine.FieldLastFiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFiredAt(v)
		return nil
	case routine.FieldLastStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStatus(v)
		return nil
	case routine.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case routine.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Routine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoutineMutation) AddedFields() []string {
	var fields []string
	if m.addmin_interval_ms != nil {
		fields = append(fields, routine.FieldMinIntervalMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoutineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case routine.FieldMinIntervalMs:
		return m.AddedMinIntervalMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case routine.FieldMinIntervalMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinIntervalMs(v)
		return nil
	}
	return fmt.Errorf("unknown Routine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoutineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(routine.FieldName) {
		fields = append(fields, routine.FieldName)
	}
	if m.FieldCleared(routine.FieldCronExpr) {
		fields = append(fields, routine.FieldCronExpr)
	}
	if m.FieldCleared(routine.FieldTimezone) {
		fields = append(fields, routine.FieldTimezone)
	}
	if m.FieldCleared(routine.FieldRuleJSON) {
		fields = append(fields, routine.FieldRuleJSON)
	}
	if m.FieldCleared(routine.FieldConditionProbe) {
		fields = append(fields, routine.FieldConditionProbe)
	}
	if m.FieldCleared(routine.FieldConditionConfig) {
		fields = append(fields, routine.FieldConditionConfig)
	}
	if m.FieldCleared(routine.FieldTargetPluginInstanceID) {
		fields = append(fields, routine.FieldTargetPluginInstanceID)
	}
	if m.FieldCleared(routine.FieldTargetSessionKey) {
		fields = append(fields, routine.FieldTargetSessionKey)
	}
	if m.FieldCleared(routine.FieldNextRunAt) {
		fields = append(fields, routine.FieldNextRunAt)
	}
	if m.FieldCleared(routine.FieldLastFiredAt) {
		fields = append(fields, routine.FieldLastFiredAt)
	}
	if m.FieldCleared(routine.FieldLastStatus) {
		fields = append(fields, routine.FieldLastStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoutineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoutineMutation) ClearField(name string) error {
	switch name {
	case routine.FieldName:
		m.ClearName()
		return nil
	case routine.FieldCronExpr:
		m.ClearCronExpr()
		return nil
	case routine.FieldTimezone:
		m.ClearTimezone()
		return nil
	case routine.FieldRuleJSON:
		m.ClearRuleJSON()
		return nil
	case routine.FieldConditionProbe:
		m.ClearConditionProbe()
		return nil
	case routine.FieldConditionConfig:
		m.ClearConditionConfig()
		return nil
	case routine.FieldTargetPluginInstanceID:
		m.ClearTargetPluginInstanceID()
		return nil
	case routine.FieldTargetSessionKey:
		m.ClearTargetSessionKey()
		return nil
	case routine.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	case routine.FieldLastFiredAt:
		m.ClearLastFiredAt()
		return nil
	case routine.FieldLastStatus:
		m.ClearLastStatus()
		return nil
	}
	return fmt.Errorf("unknown Routine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoutineMutation) ResetField(name string) error {
	switch name {
	case routine.FieldAgentID:
		m.ResetAgentID()
		return nil
	case routine.FieldName:
		m.ResetName()
		return nil
	case routine.FieldTriggerKind:
		m.ResetTriggerKind()
		return nil
	case routine.FieldCronExpr:
		m.ResetCronExpr()
		return nil
	case routine.FieldTimezone:
		m.ResetTimezone()
		return nil
	case routine.FieldRuleJSON:
		m.ResetRuleJSON()
		return nil
	case routine.FieldConditionProbe:
		m.ResetConditionProbe()
		return nil
	case routine.FieldConditionConfig:
		m.ResetConditionConfig()
		return nil
	case routine.FieldTargetPluginInstanceID:
		m.ResetTargetPluginInstanceID()
		return nil
	case routine.FieldTargetSessionKey:
		m.ResetTargetSessionKey()
		return nil
	case routine.FieldActionPrompt:
		m.ResetActionPrompt()
		return nil
	case routine.FieldEnabled:
		m.ResetEnabled()
		return nil
	case routine.FieldMinIntervalMs:
		m.ResetMinIntervalMs()
		return nil
	case routine.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case routine.FieldLastFiredAt:
		m.ResetLastFiredAt()
		return nil
	case routine.FieldLastStatus:
		m.ResetLastStatus()
		return nil
	case routine.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case routine.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Routine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoutineMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoutineMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoutineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoutineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoutineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoutineMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoutineMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Routine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoutineMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Routine edge %s", name)
}

// RoutineEventMutation represents an operation that mutates the RoutineEvent nodes in the graph.
type RoutineEventMutation struct {
	config
	op               Op
	typ              string
	id               *string
	work_item_id     *string
	envelope         *map[string]interface{}
	status           *routineevent.Status
	claimed_by       *string
	lease_expires_at *time.Time
	attempt_count    *int
	addattempt_count *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*RoutineEvent, error)
	predicates       []predicate.RoutineEvent
}

var _ ent.Mutation = (*RoutineEventMutation)(nil)

// routineeventOption allows management of the mutation configuration using functional options.
type routineeventOption func(*RoutineEventMutation)

// newRoutineEventMutation creates new mutation for the RoutineEvent entity.
func newRoutineEventMutation(c config, op Op, opts ...routineeventOption) *RoutineEventMutation {
	m := &RoutineEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRoutineEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoutineEventID sets the ID field of the mutation.
func withRoutineEventID(id string) routineeventOption {
	return func(m *RoutineEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RoutineEvent
		)
		m.oldValue = func(ctx context.Context) (*RoutineEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoutineEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoutineEvent sets the old RoutineEvent of the mutation.
func withRoutineEvent(node *RoutineEvent) routineeventOption {
	return func(m *RoutineEventMutation) {
		m.oldValue = func(context.Context) (*RoutineEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoutineEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoutineEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoutineEvent entities.
func (m *RoutineEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoutineEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoutineEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoutineEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkItemID sets the "work_item_id" field.
func (m *RoutineEventMutation) SetWorkItemID(s string) {
	m.work_item_id = &s
}

// WorkItemID returns the value of the "work_item_id" field in the mutation.
func (m *RoutineEventMutation) WorkItemID() (r string, exists bool) {
	v := m.work_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkItemID returns the old "work_item_id" field's value of the RoutineEvent entity.
// If the RoutineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineEventMutation) OldWorkItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkItemID: %w", err)
	}
	return oldValue.WorkItemID, nil
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (m *RoutineEventMutation) ClearWorkItemID() {
	m.work_item_id = nil
	m.clearedFields[routineevent.FieldWorkItemID] = struct{}{}
}

// WorkItemIDCleared returns if the "work_item_id" field was cleared in this mutation.
func (m *RoutineEventMutation) WorkItemIDCleared() bool {
	_, ok := m.clearedFields[routineevent.FieldWorkItemID]
	return ok
}

// ResetWorkItemID resets all changes to the "work_item_id" field.
func (m *RoutineEventMutation) ResetWorkItemID() {
	m.work_item_id = nil
	delete(m.clearedFields, routineevent.FieldWorkItemID)
}

// SetEnvelope sets the "envelope" field.
func (m *RoutineEventMutation) SetEnvelope(value map[string]interface{}) {
	m.envelope = &value
}

// Envelope returns the value of the "envelope" field in the mutation.
func (m *RoutineEventMutation) Envelope() (r map[string]interface{}, exists bool) {
	v := m.envelope
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvelope returns the old "envelope" field's value of the RoutineEvent entity.
// If the RoutineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineEventMutation) OldEnvelope(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvelope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvelope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvelope: %w", err)
	}
	return oldValue.Envelope, nil
}

// ResetEnvelope resets all changes to the "envelope" field.
func (m *RoutineEventMutation) ResetEnvelope() {
	m.envelope = nil
}

// SetStatus sets the "status" field.
func (m *RoutineEventMutation) SetStatus(r routineevent.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RoutineEventMutation) Status() (r routineevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RoutineEvent entity.
// If the RoutineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineEventMutation) OldStatus(ctx context.Context) (v routineevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RoutineEventMutation) ResetStatus() {
	m.status = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *RoutineEventMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *RoutineEventMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the RoutineEvent entity.
// If the RoutineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineEventMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *RoutineEventMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[routineevent.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *RoutineEventMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[routineevent.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *RoutineEventMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, routineevent.FieldClaimedBy)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *RoutineEventMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *RoutineEventMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the RoutineEvent entity.
// If the RoutineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineEventMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *RoutineEventMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[routineevent.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *RoutineEventMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[routineevent.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *RoutineEventMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, routineevent.FieldLeaseExpiresAt)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *RoutineEventMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *RoutineEventMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the RoutineEvent entity.
// If the RoutineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineEventMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *RoutineEventMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *RoutineEventMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *RoutineEventMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoutineEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoutineEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoutineEvent entity.
// If the RoutineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoutineEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RoutineEventMutation builder.
func (m *RoutineEventMutation) Where(ps ...predicate.RoutineEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoutineEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoutineEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoutineEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoutineEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoutineEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoutineEvent).
func (m *RoutineEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoutineEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.work_item_id != nil {
		fields = append(fields, routineevent.FieldWorkItemID)
	}
	if m.envelope != nil {
		fields = append(fields, routineevent.FieldEnvelope)
	}
	if m.status != nil {
		fields = append(fields, routineevent.FieldStatus)
	}
	if m.claimed_by != nil {
		fields = append(fields, routineevent.FieldClaimedBy)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, routineevent.FieldLeaseExpiresAt)
	}
	if m.attempt_count != nil {
		fields = append(fields, routineevent.FieldAttemptCount)
	}
	if m.created_at != nil {
		fields = append(fields, routineevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoutineEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case routineevent.FieldWorkItemID:
		return m.WorkItemID()
	case routineevent.FieldEnvelope:
		return m.Envelope()
	case routineevent.FieldStatus:
		return m.Status()
	case routineevent.FieldClaimedBy:
		return m.ClaimedBy()
	case routineevent.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case routineevent.FieldAttemptCount:
		return m.AttemptCount()
	case routineevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoutineEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case routineevent.FieldWorkItemID:
		return m.OldWorkItemID(ctx)
	case routineevent.FieldEnvelope:
		return m.OldEnvelope(ctx)
	case routineevent.FieldStatus:
		return m.OldStatus(ctx)
	case routineevent.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case routineevent.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case routineevent.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case routineevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoutineEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutineEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case routineevent.FieldWorkItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkItemID(v)
		return nil
	case routineevent.FieldEnvelope:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvelope(v)
		return nil
	case routineevent.FieldStatus:
		v, ok := value.(routineevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case routineevent.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case routineevent.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case routineevent.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case routineevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoutineEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoutineEventMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, routineevent.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoutineEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case routineevent.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutineEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case routineevent.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown RoutineEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoutineEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(routineevent.FieldWorkItemID) {
		fields = append(fields, routineevent.FieldWorkItemID)
	}
	if m.FieldCleared(routineevent.FieldClaimedBy) {
		fields = append(fields, routineevent.FieldClaimedBy)
	}
	if m.FieldCleared(routineevent.FieldLeaseExpiresAt) {
		fields = append(fields, routineevent.FieldLeaseExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoutineEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoutineEventMutation) ClearField(name string) error {
	switch name {
	case routineevent.FieldWorkItemID:
		m.ClearWorkItemID()
		return nil
	case routineevent.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case routineevent.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown RoutineEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoutineEventMutation) ResetField(name string) error {
	switch name {
	case routineevent.FieldWorkItemID:
		m.ResetWorkItemID()
		return nil
	case routineevent.FieldEnvelope:
		m.ResetEnvelope()
		return nil
	case routineevent.FieldStatus:
		m.ResetStatus()
		return nil
	case routineevent.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case routineevent.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case routineevent.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case routineevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RoutineEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoutineEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoutineEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoutineEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoutineEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoutineEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoutineEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoutineEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RoutineEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoutineEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RoutineEvent edge %s", name)
}

// RoutineRunMutation represents an operation that mutates the RoutineRun nodes in the graph.
type RoutineRunMutation struct {
	config
	op                Op
	typ               string
	id                *string
	routine_id        *string
	decision          *routinerun.Decision
	decision_reason   *string
	envelope          *map[string]interface{}
	scheduled_item_id *string
	work_item_id      *string
	dispatch_id       *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*RoutineRun, error)
	predicates        []predicate.RoutineRun
}

var _ ent.Mutation = (*RoutineRunMutation)(nil)

// routinerunOption allows management of the mutation configuration using functional options.
type routinerunOption func(*RoutineRunMutation)

// newRoutineRunMutation creates new mutation for the RoutineRun entity.
func newRoutineRunMutation(c config, op Op, opts ...routinerunOption) *RoutineRunMutation {
	m := &RoutineRunMutation{
		config:        c,
		op:            op,
		typ:           TypeRoutineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoutineRunID sets the ID field of the mutation.
func withRoutineRunID(id string) routinerunOption {
	return func(m *RoutineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *RoutineRun
		)
		m.oldValue = func(ctx context.Context) (*RoutineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoutineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoutineRun sets the old RoutineRun of the mutation.
func withRoutineRun(node *RoutineRun) routinerunOption {
	return func(m *RoutineRunMutation) {
		m.oldValue = func(context.Context) (*RoutineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoutineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoutineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoutineRun entities.
func (m *RoutineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoutineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoutineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoutineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoutineID sets the "routine_id" field.
func (m *RoutineRunMutation) SetRoutineID(s string) {
	m.routine_id = &s
}

// RoutineID returns the value of the "routine_id" field in the mutation.
func (m *RoutineRunMutation) RoutineID() (r string, exists bool) {
	v := m.routine_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutineID returns the old "routine_id" field's value of the RoutineRun entity.
// If the RoutineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineRunMutation) OldRoutineID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutineID: %w", err)
	}
	return oldValue.RoutineID, nil
}

// ResetRoutineID resets all changes to the "routine_id" field.
func (m *RoutineRunMutation) ResetRoutineID() {
	m.routine_id = nil
}

// SetDecision sets the "decision" field.
func (m *RoutineRunMutation) SetDecision(r routinerun.Decision) {
	m.decision = &r
}

// Decision returns the value of the "decision" field in the mutation.
func (m *RoutineRunMutation) Decision() (r routinerun.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the RoutineRun entity.
// If the RoutineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineRunMutation) OldDecision(ctx context.Context) (v routinerun.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *RoutineRunMutation) ResetDecision() {
	m.decision = nil
}

// SetDecisionReason sets the "decision_reason" field.
func (m *RoutineRunMutation) SetDecisionReason(s string) {
	m.decision_reason = &s
}

// DecisionReason returns the value of the "decision_reason" field in the mutation.
func (m *RoutineRunMutation) DecisionReason() (r string, exists bool) {
	v := m.decision_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionReason returns the old "decision_reason" field's value of the RoutineRun entity.
// If the RoutineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineRunMutation) OldDecisionReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionReason: %w", err)
	}
	return oldValue.DecisionReason, nil
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (m *RoutineRunMutation) ClearDecisionReason() {
	m.decision_reason = nil
	m.clearedFields[routinerun.FieldDecisionReason] = struct{}{}
}

// DecisionReasonCleared returns if the "decision_reason" field was cleared in this mutation.
func (m *RoutineRunMutation) DecisionReasonCleared() bool {
	_, ok := m.clearedFields[routinerun.FieldDecisionReason]
	return ok
}

// ResetDecisionReason resets all changes to the "decision_reason" field.
func (m *RoutineRunMutation) ResetDecisionReason() {
	m.decision_reason = nil
	delete(m.clearedFields, routinerun.FieldDecisionReason)
}

// SetEnvelope sets the "envelope" field.
func (m *RoutineRunMutation) SetEnvelope(value map[string]interface{}) {
	m.envelope = &value
}

// Envelope returns the value of the "envelope" field in the mutation.
func (m *RoutineRunMutation) Envelope() (r map[string]interface{}, exists bool) {
	v := m.envelope
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvelope returns the old "envelope" field's value of the RoutineRun entity.
// If the RoutineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineRunMutation) OldEnvelope(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvelope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvelope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvelope: %w", err)
	}
	return oldValue.Envelope, nil
}

// ClearEnvelope clears the value of the "envelope" field.
func (m *RoutineRunMutation) ClearEnvelope() {
	m.envelope = nil
	m.clearedFields[routinerun.FieldEnvelope] = struct{}{}
}

// EnvelopeCleared returns if the "envelope" field was cleared in this mutation.
func (m *RoutineRunMutation) EnvelopeCleared() bool {
	_, ok := m.clearedFields[routinerun.FieldEnvelope]
	return ok
}

// ResetEnvelope resets all changes to the "envelope" field.
func (m *RoutineRunMutation) ResetEnvelope() {
	m.envelope = nil
	delete(m.clearedFields, routinerun.FieldEnvelope)
}

// SetScheduledItemID sets the "scheduled_item_id" field.
func (m *RoutineRunMutation) SetScheduledItemID(s string) {
	m.scheduled_item_id = &s
}

// ScheduledItemID returns the value of the "scheduled_item_id" field in the mutation.
func (m *RoutineRunMutation) ScheduledItemID() (r string, exists bool) {
	v := m.scheduled_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledItemID returns the old "scheduled_item_id" field's value of the RoutineRun entity.
// If the RoutineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineRunMutation) OldScheduledItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledItemID: %w", err)
	}
	return oldValue.ScheduledItemID, nil
}

// ClearScheduledItemID clears the value of the "scheduled_item_id" field.
func (m *RoutineRunMutation) ClearScheduledItemID() {
	m.scheduled_item_id = nil
	m.clearedFields[routinerun.FieldScheduledItemID] = struct{}{}
}

// ScheduledItemIDCleared returns if the "scheduled_item_id" field was cleared in this mutation.
func (m *RoutineRunMutation) ScheduledItemIDCleared() bool {
	_, ok := m.clearedFields[routinerun.FieldScheduledItemID]
	return ok
}

// ResetScheduledItemID resets all changes to the "scheduled_item_id" field.
func (m *RoutineRunMutation) ResetScheduledItemID() {
	m.scheduled_item_id = nil
	delete(m.clearedFields, routinerun.FieldScheduledItemID)
}

// SetWorkItemID sets the "work_item_id" field.
func (m *RoutineRunMutation) SetWorkItemID(s string) {
	m.work_item_id = &s
}

// WorkItemID returns the value of the "work_item_id" field in the mutation.
func (m *RoutineRunMutation) WorkItemID() (r string, exists bool) {
	v := m.work_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkItemID returns the old "work_item_id" field's value of the RoutineRun entity.
// If the RoutineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineRunMutation) OldWorkItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkItemID: %w", err)
	}
	return oldValue.WorkItemID, nil
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (m *RoutineRunMutation) ClearWorkItemID() {
	m.work_item_id = nil
	m.clearedFields[routinerun.FieldWorkItemID] = struct{}{}
}

// WorkItemIDCleared returns if the "work_item_id" field was cleared in this mutation.
func (m *RoutineRunMutation) WorkItemIDCleared() bool {
	_, ok := m.clearedFields[routinerun.FieldWorkItemID]
	return ok
}

// ResetWorkItemID resets all changes to the "work_item_id" field.
func (m *RoutineRunMutation) ResetWorkItemID() {
	m.work_item_id = nil
	delete(m.clearedFields, routinerun.FieldWorkItemID)
}

// SetDispatchID sets the "dispatch_id" field.
func (m *RoutineRunMutation) SetDispatchID(s string) {
	m.dispatch_id = &s
}

// DispatchID returns the value of the "dispatch_id" field in the mutation.
func (m *RoutineRunMutation) DispatchID() (r string, exists bool) {
	v := m.dispatch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchID returns the old "dispatch_id" field's value of the RoutineRun entity.
// If the RoutineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineRunMutation) OldDispatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchID: %w", err)
	}
	return oldValue.DispatchID, nil
}

// ClearDispatchID clears the value of the "dispatch_id" field.
func (m *RoutineRunMutation) ClearDispatchID() {
	m.dispatch_id = nil
	m.clearedFields[routinerun.FieldDispatchID] = struct{}{}
}

// DispatchIDCleared returns if the "dispatch_id" field was cleared in this mutation.
func (m *RoutineRunMutation) DispatchIDCleared() bool {
	_, ok := m.clearedFields[routinerun.FieldDispatchID]
	return ok
}

// ResetDispatchID resets all changes to the "dispatch_id" field.
func (m *RoutineRunMutation) ResetDispatchID() {
	m.dispatch_id = nil
	delete(m.clearedFields, routinerun.FieldDispatchID)
}

// SetCreatedAt sets the "created_at" field.
func (m *RoutineRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoutineRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoutineRun entity.
// If the RoutineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoutineRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RoutineRunMutation builder.
func (m *RoutineRunMutation) Where(ps ...predicate.RoutineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoutineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoutineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoutineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoutineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoutineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoutineRun).
func (m *RoutineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoutineRunMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.routine_id != nil {
		fields = append(fields, routinerun.FieldRoutineID)
	}
	if m.decision != nil {
		fields = append(fields, routinerun.FieldDecision)
	}
	if m.decision_reason != nil {
		fields = append(fields, routinerun.FieldDecisionReason)
	}
	if m.envelope != nil {
		fields = append(fields, routinerun.FieldEnvelope)
	}
	if m.scheduled_item_id != nil {
		fields = append(fields, routinerun.FieldScheduledItemID)
	}
	if m.work_item_id != nil {
		fields = append(fields, routinerun.FieldWorkItemID)
	}
	if m.dispatch_id != nil {
		fields = append(fields, routinerun.FieldDispatchID)
	}
	if m.created_at != nil {
		fields = append(fields, routinerun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoutineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case routinerun.FieldRoutineID:
		return m.RoutineID()
	case routinerun.FieldDecision:
		return m.Decision()
	case routinerun.FieldDecisionReason:
		return m.DecisionReason()
	case routinerun.FieldEnvelope:
		return m.Envelope()
	case routinerun.FieldScheduledItemID:
		return m.ScheduledItemID()
	case routinerun.FieldWorkItemID:
		return m.WorkItemID()
	case routinerun.FieldDispatchID:
		return m.DispatchID()
	case routinerun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoutineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case routinerun.FieldRoutineID:
		return m.OldRoutineID(ctx)
	case routinerun.FieldDecision:
		return m.OldDecision(ctx)
	case routinerun.FieldDecisionReason:
		return m.OldDecisionReason(ctx)
	case routinerun.FieldEnvelope:
		return m.OldEnvelope(ctx)
	case routinerun.FieldScheduledItemID:
		return m.OldScheduledItemID(ctx)
	case routinerun.FieldWorkItemID:
		return m.OldWorkItemID(ctx)
	case routinerun.FieldDispatchID:
		return m.OldDispatchID(ctx)
	case routinerun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoutineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case routinerun.FieldRoutineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutineID(v)
		return nil
	case routinerun.FieldDecision:
		v, ok := value.(routinerun.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case routinerun.FieldDecisionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionReason(v)
		return nil
	case routinerun.FieldEnvelope:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvelope(v)
		return nil
	case routinerun.FieldScheduledItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledItemID(v)
		return nil
	case routinerun.FieldWorkItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkItemID(v)
		return nil
	case routinerun.FieldDispatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchID(v)
		return nil
	case routinerun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoutineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoutineRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoutineRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RoutineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoutineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(routinerun.FieldDecisionReason) {
		fields = append(fields, routinerun.FieldDecisionReason)
	}
	if m.FieldCleared(routinerun.FieldEnvelope) {
		fields = append(fields, routinerun.FieldEnvelope)
	}
	if m.FieldCleared(routinerun.FieldScheduledItemID) {
		fields = append(fields, routinerun.FieldScheduledItemID)
	}
	if m.FieldCleared(routinerun.FieldWorkItemID) {
		fields = append(fields, routinerun.FieldWorkItemID)
	}
	if m.FieldCleared(routinerun.FieldDispatchID) {
		fields = append(fields, routinerun.FieldDispatchID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoutineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoutineRunMutation) ClearField(name string) error {
	switch name {
	case routinerun.FieldDecisionReason:
		m.ClearDecisionReason()
		return nil
	case routinerun.FieldEnvelope:
		m.ClearEnvelope()
		return nil
	case routinerun.FieldScheduledItemID:
		m.ClearScheduledItemID()
		return nil
	case routinerun.FieldWorkItemID:
		m.ClearWorkItemID()
		return nil
	case routinerun.FieldDispatchID:
		m.ClearDispatchID()
		return nil
	}
	return fmt.Errorf("unknown RoutineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoutineRunMutation) ResetField(name string) error {
	switch name {
	case routinerun.FieldRoutineID:
		m.ResetRoutineID()
		return nil
	case routinerun.FieldDecision:
		m.ResetDecision()
		return nil
	case routinerun.FieldDecisionReason:
		m.ResetDecisionReason()
		return nil
	case routinerun.FieldEnvelope:
		m.ResetEnvelope()
		return nil
	case routinerun.FieldScheduledItemID:
		m.ResetScheduledItemID()
		return nil
	case routinerun.FieldWorkItemID:
		m.ResetWorkItemID()
		return nil
	case routinerun.FieldDispatchID:
		m.ResetDispatchID()
		return nil
	case routinerun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RoutineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoutineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoutineRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoutineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoutineRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoutineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoutineRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoutineRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RoutineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoutineRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RoutineRun edge %s", name)
}

// RunDispatchMutation represents an operation that mutates the RunDispatch nodes in the graph.
type RunDispatchMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	run_key                 *string
	queue_key               *string
	work_item_id            *string
	agent_id                *string
	session_key             *string
	status                  *rundispatch.Status
	control_state           *rundispatch.ControlState
	input_text              *string
	coalesced_text          *string
	response_context        *map[string]interface{}
	output_text             *string
	attempt_count           *int
	addattempt_count        *int
	claimed_by              *string
	lease_expires_at        *time.Time
	claimed_epoch           *int64
	addclaimed_epoch        *int64
	replay_of_dispatch_id   *string
	merged_into_dispatch_id *string
	last_error              *string
	scheduled_at            *time.Time
	started_at              *time.Time
	finished_at             *time.Time
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*RunDispatch, error)
	predicates              []predicate.RunDispatch
}

var _ ent.Mutation = (*RunDispatchMutation)(nil)

// rundispatchOption allows management of the mutation configuration using functional options.
type rundispatchOption func(*RunDispatchMutation)

// newRunDispatchMutation creates new mutation for the RunDispatch entity.
func newRunDispatchMutation(c config, op Op, opts ...rundispatchOption) *RunDispatchMutation {
	m := &RunDispatchMutation{
		config:        c,
		op:            op,
		typ:           TypeRunDispatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunDispatchID sets the ID field of the mutation.
func withRunDispatchID(id string) rundispatchOption {
	return func(m *RunDispatchMutation) {
		var (
			err   error
			once  sync.Once
			value *RunDispatch
		)
		m.oldValue = func(ctx context.Context) (*RunDispatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunDispatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunDispatch sets the old RunDispatch of the mutation.
func withRunDispatch(node *RunDispatch) rundispatchOption {
	return func(m *RunDispatchMutation) {
		m.oldValue = func(context.Context) (*RunDispatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunDispatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunDispatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunDispatch entities.
func (m *RunDispatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunDispatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunDispatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunDispatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunKey sets the "run_key" field.
func (m *RunDispatchMutation) SetRunKey(s string) {
	m.run_key = &s
}

// RunKey returns the value of the "run_key" field in the mutation.
func (m *RunDispatchMutation) RunKey() (r string, exists bool) {
	v := m.run_key
	if v == nil {
		return
	}
	return *v, true
}

// OldRunKey returns the old "run_key" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldRunKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunKey: %w", err)
	}
	return oldValue.RunKey, nil
}

// ClearRunKey clears the value of the "run_key" field.
func (m *RunDispatchMutation) ClearRunKey() {
	m.run_key = nil
	m.clearedFields[rundispatch.FieldRunKey] = struct{}{}
}

// RunKeyCleared returns if the "run_key" field was cleared in this mutation.
func (m *RunDispatchMutation) RunKeyCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldRunKey]
	return ok
}

// ResetRunKey resets all changes to the "run_key" field.
func (m *RunDispatchMutation) ResetRunKey() {
	m.run_key = nil
	delete(m.clearedFields, rundispatch.FieldRunKey)
}

// SetQueueKey sets the "queue_key" field.
func (m *RunDispatchMutation) SetQueueKey(s string) {
	m.queue_key = &s
}

// QueueKey returns the value of the "queue_key" field in the mutation.
func (m *RunDispatchMutation) QueueKey() (r string, exists bool) {
	v := m.queue_key
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueKey returns the old "queue_key" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldQueueKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueKey: %w", err)
	}
	return oldValue.QueueKey, nil
}

// ResetQueueKey resets all changes to the "queue_key" field.
func (m *RunDispatchMutation) ResetQueueKey() {
	m.queue_key = nil
}

// SetWorkItemID sets the "work_item_id" field.
func (m *RunDispatchMutation) SetWorkItemID(s string) {
	m.work_item_id = &s
}

// WorkItemID returns the value of the "work_item_id" field in the mutation.
func (m *RunDispatchMutation) WorkItemID() (r string, exists bool) {
	v := m.work_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkItemID returns the old "work_item_id" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldWorkItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkItemID: %w", err)
	}
	return oldValue.WorkItemID, nil
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (m *RunDispatchMutation) ClearWorkItemID() {
	m.work_item_id = nil
	m.clearedFields[rundispatch.FieldWorkItemID] = struct{}{}
}

// WorkItemIDCleared returns if the "work_item_id" field was cleared in this mutation.
func (m *RunDispatchMutation) WorkItemIDCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldWorkItemID]
	return ok
}

// ResetWorkItemID resets all changes to the "work_item_id" field.
func (m *RunDispatchMutation) ResetWorkItemID() {
	m.work_item_id = nil
	delete(m.clearedFields, rundispatch.FieldWorkItemID)
}

// SetAgentID sets the "agent_id" field.
func (m *RunDispatchMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *RunDispatchMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *RunDispatchMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetSessionKey sets the "session_key" field.
func (m *RunDispatchMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *RunDispatchMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *RunDispatchMutation) ResetSessionKey() {
	m.session_key = nil
}

// SetStatus sets the "status" field.
func (m *RunDispatchMutation) SetStatus(r rundispatch.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunDispatchMutation) Status() (r rundispatch.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldStatus(ctx context.Context) (v rundispatch.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunDispatchMutation) ResetStatus() {
	m.status = nil
}

// SetControlState sets the "control_state" field.
func (m *RunDispatchMutation) SetControlState(rs rundispatch.ControlState) {
	m.control_state = &rs
}

// ControlState returns the value of the "control_state" field in the mutation.
func (m *RunDispatchMutation) ControlState() (r rundispatch.ControlState, exists bool) {
	v := m.control_state
	if v == nil {
		return
	}
	return *v, true
}

// OldControlState returns the old "control_state" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldControlState(ctx context.Context) (v rundispatch.ControlState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldControlState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldControlState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldControlState: %w", err)
	}
	return oldValue.ControlState, nil
}

// ResetControlState resets all changes to the "control_state" field.
func (m *RunDispatchMutation) ResetControlState() {
	m.control_state = nil
}

// SetInputText sets the "input_text" field.
func (m *RunDispatchMutation) SetInputText(s string) {
	m.input_text = &s
}

// InputText returns the value of the "input_text" field in the mutation.
func (m *RunDispatchMutation) InputText() (r string, exists bool) {
	v := m.input_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInputText returns the old "input_text" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldInputText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputText: %w", err)
	}
	return oldValue.InputText, nil
}

// ClearInputText clears the value of the "input_text" field.
func (m *RunDispatchMutation) ClearInputText() {
	m.input_text = nil
	m.clearedFields[rundispatch.FieldInputText] = struct{}{}
}

// InputTextCleared returns if the "input_text" field was cleared in this mutation.
func (m *RunDispatchMutation) InputTextCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldInputText]
	return ok
}

// ResetInputText resets all changes to the "input_text" field.
func (m *RunDispatchMutation) ResetInputText() {
	m.input_text = nil
	delete(m.clearedFields, rundispatch.FieldInputText)
}

// SetCoalescedText sets the "coalesced_text" field.
func (m *RunDispatchMutation) SetCoalescedText(s string) {
	m.coalesced_text = &s
}

// CoalescedText returns the value of the "coalesced_text" field in the mutation.
func (m *RunDispatchMutation) CoalescedText() (r string, exists bool) {
	v := m.coalesced_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCoalescedText returns the old "coalesced_text" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldCoalescedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoalescedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoalescedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoalescedText: %w", err)
	}
	return oldValue.CoalescedText, nil
}

// ClearCoalescedText clears the value of the "coalesced_text" field.
func (m *RunDispatchMutation) ClearCoalescedText() {
	m.coalesced_text = nil
	m.clearedFields[rundispatch.FieldCoalescedText] = struct{}{}
}

// CoalescedTextCleared returns if the "coalesced_text" field was cleared in this mutation.
func (m *RunDispatchMutation) CoalescedTextCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldCoalescedText]
	return ok
}

// ResetCoalescedText resets all changes to the "coalesced_text" field.
func (m *RunDispatchMutation) ResetCoalescedText() {
	m.coalesced_text = nil
	delete(m.clearedFields, rundispatch.FieldCoalescedText)
}

// SetResponseContext sets the "response_context" field.
func (m *RunDispatchMutation) SetResponseContext(value map[string]interface{}) {
	m.response_context = &value
}

// ResponseContext returns the value of the "response_context" field in the mutation.
func (m *RunDispatchMutation) ResponseContext() (r map[string]interface{}, exists bool) {
	v := m.response_context
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseContext returns the old "response_context" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldResponseContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseContext: %w", err)
	}
	return oldValue.ResponseContext, nil
}

// ClearResponseContext clears the value of the "response_context" field.
func (m *RunDispatchMutation) ClearResponseContext() {
	m.response_context = nil
	m.clearedFields[rundispatch.FieldResponseContext] = struct{}{}
}

// ResponseContextCleared returns if the "response_context" field was cleared in this mutation.
func (m *RunDispatchMutation) ResponseContextCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldResponseContext]
	return ok
}

// ResetResponseContext resets all changes to the "response_context" field.
func (m *RunDispatchMutation) ResetResponseContext() {
	m.response_context = nil
	delete(m.clearedFields, rundispatch.FieldResponseContext)
}

// SetOutputText sets the "output_text" field.
func (m *RunDispatchMutation) SetOutputText(s string) {
	m.output_text = &s
}

// OutputText returns the value of the "output_text" field in the mutation.
func (m *RunDispatchMutation) OutputText() (r string, exists bool) {
	v := m.output_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputText returns the old "output_text" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldOutputText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputText: %w", err)
	}
	return oldValue.OutputText, nil
}

// ClearOutputText clears the value of the "output_text" field.
func (m *RunDispatchMutation) ClearOutputText() {
	m.output_text = nil
	m.clearedFields[rundispatch.FieldOutputText] = struct{}{}
}

// OutputTextCleared returns if the "output_text" field was cleared in this mutation.
func (m *RunDispatchMutation) OutputTextCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldOutputText]
	return ok
}

// ResetOutputText resets all changes to the "output_text" field.
func (m *RunDispatchMutation) ResetOutputText() {
	m.output_text = nil
	delete(m.clearedFields, rundispatch.FieldOutputText)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *RunDispatchMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *RunDispatchMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *RunDispatchMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *RunDispatchMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *RunDispatchMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *RunDispatchMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *RunDispatchMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *RunDispatchMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[rundispatch.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *RunDispatchMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *RunDispatchMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, rundispatch.FieldClaimedBy)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *RunDispatchMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *RunDispatchMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *RunDispatchMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[rundispatch.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *RunDispatchMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *RunDispatchMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, rundispatch.FieldLeaseExpiresAt)
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (m *RunDispatchMutation) SetClaimedEpoch(i int64) {
	m.claimed_epoch = &i
	m.addclaimed_epoch = nil
}

// ClaimedEpoch returns the value of the "claimed_epoch" field in the mutation.
func (m *RunDispatchMutation) ClaimedEpoch() (r int64, exists bool) {
	v := m.claimed_epoch
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedEpoch returns the old "claimed_epoch" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldClaimedEpoch(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedEpoch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedEpoch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedEpoch: %w", err)
	}
	return oldValue.ClaimedEpoch, nil
}

// AddClaimedEpoch adds i to the "claimed_epoch" field.
func (m *RunDispatchMutation) AddClaimedEpoch(i int64) {
	if m.addclaimed_epoch != nil {
		*m.addclaimed_epoch += i
	} else {
		m.addclaimed_epoch = &i
	}
}

// AddedClaimedEpoch returns the value that was added to the "claimed_epoch" field in this mutation.
func (m *RunDispatchMutation) AddedClaimedEpoch() (r int64, exists bool) {
	v := m.addclaimed_epoch
	if v == nil {
		return
	}
	return *v, true
}

// ResetClaimedEpoch resets all changes to the "claimed_epoch" field.
func (m *RunDispatchMutation) ResetClaimedEpoch() {
	m.claimed_epoch = nil
	m.addclaimed_epoch = nil
}

// SetReplayOfDispatchID sets the "replay_of_dispatch_id" field.
func (m *RunDispatchMutation) SetReplayOfDispatchID(s string) {
	m.replay_of_dispatch_id = &s
}

// ReplayOfDispatchID returns the value of the "replay_of_dispatch_id" field in the mutation.
func (m *RunDispatchMutation) ReplayOfDispatchID() (r string, exists bool) {
	v := m.replay_of_dispatch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReplayOfDispatchID returns the old "replay_of_dispatch_id" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldReplayOfDispatchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplayOfDispatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplayOfDispatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplayOfDispatchID: %w", err)
	}
	return oldValue.ReplayOfDispatchID, nil
}

// ClearReplayOfDispatchID clears the value of the "replay_of_dispatch_id" field.
func (m *RunDispatchMutation) ClearReplayOfDispatchID() {
	m.replay_of_dispatch_id = nil
	m.clearedFields[rundispatch.FieldReplayOfDispatchID] = struct{}{}
}

// ReplayOfDispatchIDCleared returns if the "replay_of_dispatch_id" field was cleared in this mutation.
func (m *RunDispatchMutation) ReplayOfDispatchIDCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldReplayOfDispatchID]
	return ok
}

// ResetReplayOfDispatchID resets all changes to the "replay_of_dispatch_id" field.
func (m *RunDispatchMutation) ResetReplayOfDispatchID() {
	m.replay_of_dispatch_id = nil
	delete(m.clearedFields, rundispatch.FieldReplayOfDispatchID)
}

// SetMergedIntoDispatchID sets the "merged_into_dispatch_id" field.
func (m *RunDispatchMutation) SetMergedIntoDispatchID(s string) {
	m.merged_into_dispatch_id = &s
}

// MergedIntoDispatchID returns the value of the "merged_into_dispatch_id" field in the mutation.
func (m *RunDispatchMutation) MergedIntoDispatchID() (r string, exists bool) {
	v := m.merged_into_dispatch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMergedIntoDispatchID returns the old "merged_into_dispatch_id" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldMergedIntoDispatchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergedIntoDispatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergedIntoDispatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergedIntoDispatchID: %w", err)
	}
	return oldValue.MergedIntoDispatchID, nil
}

// ClearMergedIntoDispatchID clears the value of the "merged_into_dispatch_id" field.
func (m *RunDispatchMutation) ClearMergedIntoDispatchID() {
	m.merged_into_dispatch_id = nil
	m.clearedFields[rundispatch.FieldMergedIntoDispatchID] = struct{}{}
}

// MergedIntoDispatchIDCleared returns if the "merged_into_dispatch_id" field was cleared in this mutation.
func (m *RunDispatchMutation) MergedIntoDispatchIDCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldMergedIntoDispatchID]
	return ok
}

// ResetMergedIntoDispatchID resets all changes to the "merged_into_dispatch_id" field.
func (m *RunDispatchMutation) ResetMergedIntoDispatchID() {
	m.merged_into_dispatch_id = nil
	delete(m.clearedFields, rundispatch.FieldMergedIntoDispatchID)
}

// SetLastError sets the "last_error" field.
func (m *RunDispatchMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *RunDispatchMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *RunDispatchMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[rundispatch.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *RunDispatchMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *RunDispatchMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, rundispatch.FieldLastError)
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *RunDispatchMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *RunDispatchMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *RunDispatchMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunDispatchMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunDispatchMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunDispatchMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[rundispatch.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunDispatchMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunDispatchMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, rundispatch.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *RunDispatchMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *RunDispatchMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *RunDispatchMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[rundispatch.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *RunDispatchMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[rundispatch.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *RunDispatchMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, rundispatch.FieldFinishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunDispatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunDispatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunDispatch entity.
// If the RunDispatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunDispatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunDispatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RunDispatchMutation builder.
func (m *RunDispatchMutation) Where(ps ...predicate.RunDispatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunDispatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunDispatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunDispatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunDispatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunDispatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunDispatch).
func (m *RunDispatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunDispatchMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.run_key != nil {
		fields = append(fields, rundispatch.FieldRunKey)
	}
	if m.queue_key != nil {
		fields = append(fields, rundispatch.FieldQueueKey)
	}
	if m.work_item_id != nil {
		fields = append(fields, rundispatch.FieldWorkItemID)
	}
	if m.agent_id != nil {
		fields = append(fields, rundispatch.FieldAgentID)
	}
	if m.session_key != nil {
		fields = append(fields, rundispatch.FieldSessionKey)
	}
	if m.status != nil {
		fields = append(fields, rundispatch.FieldStatus)
	}
	if m.control_state != nil {
		fields = append(fields, rundispatch.FieldControlState)
	}
	if m.input_text != nil {
		fields = append(fields, rundispatch.FieldInputText)
	}
	if m.coalesced_text != nil {
		fields = append(fields, rundispatch.FieldCoalescedText)
	}
	if m.response_context != nil {
		fields = append(fields, rundispatch.FieldResponseContext)
	}
	if m.output_text != nil {
		fields = append(fields, rundispatch.FieldOutputText)
	}
	if m.attempt_count != nil {
		fields = append(fields, rundispatch.FieldAttemptCount)
	}
	if m.claimed_by != nil {
		fields = append(fields, rundispatch.FieldClaimedBy)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, rundispatch.FieldLeaseExpiresAt)
	}
	if m.claimed_epoch != nil {
		fields = append(fields, rundispatch.FieldClaimedEpoch)
	}
	if m.replay_of_dispatch_id != nil {
		fields = append(fields, rundispatch.FieldReplayOfDispatchID)
	}
	if m.merged_into_dispatch_id != nil {
		fields = append(fields, rundispatch.FieldMergedIntoDispatchID)
	}
	if m.last_error != nil {
		fields = append(fields, rundispatch.FieldLastError)
	}
	if m.scheduled_at != nil {
		fields = append(fields, rundispatch.FieldScheduledAt)
	}
	if m.started_at != nil {
		fields = append(fields, rundispatch.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, rundispatch.FieldFinishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, rundispatch.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunDispatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rundispatch.FieldRunKey:
		return m.RunKey()
	case rundispatch.FieldQueueKey:
		return m.QueueKey()
	case rundispatch.FieldWorkItemID:
		return m.WorkItemID()
	case rundispatch.FieldAgentID:
		return m.AgentID()
	case rundispatch.FieldSessionKey:
		return m.SessionKey()
	case rundispatch.FieldStatus:
		return m.Status()
	case rundispatch.FieldControlState:
		return m.ControlState()
	case rundispatch.FieldInputText:
		return m.InputText()
	case rundispatch.FieldCoalescedText:
		return m.CoalescedText()
	case rundispatch.FieldResponseContext:
		return m.ResponseContext()
	case rundispatch.FieldOutputText:
		return m.OutputText()
	case rundispatch.FieldAttemptCount:
		return m.AttemptCount()
	case rundispatch.FieldClaimedBy:
		return m.ClaimedBy()
	case rundispatch.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case rundispatch.FieldClaimedEpoch:
		return m.ClaimedEpoch()
	case rundispatch.FieldReplayOfDispatchID:
		return m.ReplayOfDispatchID()
	case rundispatch.FieldMergedIntoDispatchID:
		return m.MergedIntoDispatchID()
	case rundispatch.FieldLastError:
		return m.LastError()
	case rundispatch.FieldScheduledAt:
		return m.ScheduledAt()
	case rundispatch.FieldStartedAt:
		return m.StartedAt()
	case rundispatch.FieldFinishedAt:
		return m.FinishedAt()
	case rundispatch.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunDispatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rundispatch.FieldRunKey:
		return m.OldRunKey(ctx)
	case rundispatch.FieldQueueKey:
		return m.OldQueueKey(ctx)
	case rundispatch.FieldWorkItemID:
		return m.OldWorkItemID(ctx)
	case rundispatch.FieldAgentID:
		return m.OldAgentID(ctx)
	case rundispatch.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case rundispatch.FieldStatus:
		return m.OldStatus(ctx)
	case rundispatch.FieldControlState:
		return m.OldControlState(ctx)
	case rundispatch.FieldInputText:
		return m.OldInputText(ctx)
	case rundispatch.FieldCoalescedText:
		return m.OldCoalescedText(ctx)
	case rundispatch.FieldResponseContext:
		return m.OldResponseContext(ctx)
	case rundispatch.FieldOutputText:
		return m.OldOutputText(ctx)
	case rundispatch.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case rundispatch.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case rundispatch.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case rundispatch.FieldClaimedEpoch:
		return m.OldClaimedEpoch(ctx)
	case rundispatch.FieldReplayOfDispatchID:
		return m.OldReplayOfDispatchID(ctx)
	case rundispatch.FieldMergedIntoDispatchID:
		return m.OldMergedIntoDispatchID(ctx)
	case rundispatch.FieldLastError:
		return m.OldLastError(ctx)
	case rundispatch.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case rundispatch.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case rundispatch.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case rundispatch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunDispatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunDispatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rundispatch.FieldRunKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunKey(v)
		return nil
	case rundispatch.FieldQueueKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueKey(v)
		return nil
	case rundispatch.FieldWorkItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkItemID(v)
		return nil
	case rundispatch.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case rundispatch.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case rundispatch.FieldStatus:
		v, ok := value.(rundispatch.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case rundispatch.FieldControlState:
		v, ok := value.(rundispatch.ControlState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetControlState(v)
		return nil
	case rundispatch.FieldInputText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputText(v)
		return nil
	case rundispatch.FieldCoalescedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoalescedText(v)
		return nil
	case rundispatch.FieldResponseContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseContext(v)
		return nil
	case rundispatch.FieldOutputText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputText(v)
		return nil
	case rundispatch.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case rundispatch.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case rundispatch.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case rundispatch.FieldClaimedEpoch:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedEpoch(v)
		return nil
	case rundispatch.FieldReplayOfDispatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplayOfDispatchID(v)
		return nil
	case rundispatch.FieldMergedIntoDispatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergedIntoDispatchID(v)
		return nil
	case rundispatch.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case rundispatch.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case rundispatch.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case rundispatch.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case rundispatch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunDispatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunDispatchMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, rundispatch.FieldAttemptCount)
	}
	if m.addclaimed_epoch != nil {
		fields = append(fields, rundispatch.FieldClaimedEpoch)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunDispatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rundispatch.FieldAttemptCount:
		return m.AddedAttemptCount()
	case rundispatch.FieldClaimedEpoch:
		return m.AddedClaimedEpoch()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunDispatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rundispatch.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	case rundispatch.FieldClaimedEpoch:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClaimedEpoch(v)
		return nil
	}
	return fmt.Errorf("unknown RunDispatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunDispatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rundispatch.FieldRunKey) {
		fields = append(fields, rundispatch.FieldRunKey)
	}
	if m.FieldCleared(rundispatch.FieldWorkItemID) {
		fields = append(fields, rundispatch.FieldWorkItemID)
	}
	if m.FieldCleared(rundispatch.FieldInputText) {
		fields = append(fields, rundispatch.FieldInputText)
	}
	if m.FieldCleared(rundispatch.FieldCoalescedText) {
		fields = append(fields, rundispatch.FieldCoalescedText)
	}
	if m.FieldCleared(rundispatch.FieldResponseContext) {
		fields = append(fields, rundispatch.FieldResponseContext)
	}
	if m.FieldCleared(rundispatch.FieldOutputText) {
		fields = append(fields, rundispatch.FieldOutputText)
	}
	if m.FieldCleared(rundispatch.FieldClaimedBy) {
		fields = append(fields, rundispatch.FieldClaimedBy)
	}
	if m.FieldCleared(rundispatch.FieldLeaseExpiresAt) {
		fields = append(fields, rundispatch.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(rundispatch.FieldReplayOfDispatchID) {
		fields = append(fields, rundispatch.FieldReplayOfDispatchID)
	}
	if m.FieldCleared(rundispatch.FieldMergedIntoDispatchID) {
		fields = append(fields, rundispatch.FieldMergedIntoDispatchID)
	}
	if m.FieldCleared(rundispatch.FieldLastError) {
		fields = append(fields, rundispatch.FieldLastError)
	}
	if m.FieldCleared(rundispatch.FieldStartedAt) {
		fields = append(fields, rundispatch.FieldStartedAt)
	}
	if m.FieldCleared(rundispatch.FieldFinishedAt) {
		fields = append(fields, rundispatch.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunDispatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunDispatchMutation) ClearField(name string) error {
	switch name {
	case rundispatch.FieldRunKey:
		m.ClearRunKey()
		return nil
	case rundispatch.FieldWorkItemID:
		m.ClearWorkItemID()
		return nil
	case rundispatch.FieldInputText:
		m.ClearInputText()
		return nil
	case rundispatch.FieldCoalescedText:
		m.ClearCoalescedText()
		return nil
	case rundispatch.FieldResponseContext:
		m.ClearResponseContext()
		return nil
	case rundispatch.FieldOutputText:
		m.ClearOutputText()
		return nil
	case rundispatch.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case rundispatch.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case rundispatch.FieldReplayOfDispatchID:
		m.ClearReplayOfDispatchID()
		return nil
	case rundispatch.FieldMergedIntoDispatchID:
		m.ClearMergedIntoDispatchID()
		return nil
	case rundispatch.FieldLastError:
		m.ClearLastError()
		return nil
	case rundispatch.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case rundispatch.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown RunDispatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunDispatchMutation) ResetField(name string) error {
	switch name {
	case rundispatch.FieldRunKey:
		m.ResetRunKey()
		return nil
	case rundispatch.FieldQueueKey:
		m.ResetQueueKey()
		return nil
	case rundispatch.FieldWorkItemID:
		m.ResetWorkItemID()
		return nil
	case rundispatch.FieldAgentID:
		m.ResetAgentID()
		return nil
	case rundispatch.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case rundispatch.FieldStatus:
		m.ResetStatus()
		return nil
	case rundispatch.FieldControlState:
		m.ResetControlState()
		return nil
	case rundispatch.FieldInputText:
		m.ResetInputText()
		return nil
	case rundispatch.FieldCoalescedText:
		m.ResetCoalescedText()
		return nil
	case rundispatch.FieldResponseContext:
		m.ResetResponseContext()
		return nil
	case rundispatch.FieldOutputText:
		m.ResetOutputText()
		return nil
	case rundispatch.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case rundispatch.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case rundispatch.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case rundispatch.FieldClaimedEpoch:
		m.ResetClaimedEpoch()
		return nil
	case rundispatch.FieldReplayOfDispatchID:
		m.ResetReplayOfDispatchID()
		return nil
	case rundispatch.FieldMergedIntoDispatchID:
		m.ResetMergedIntoDispatchID()
		return nil
	case rundispatch.FieldLastError:
		m.ResetLastError()
		return nil
	case rundispatch.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case rundispatch.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case rundispatch.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case rundispatch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunDispatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunDispatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunDispatchMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunDispatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunDispatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunDispatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunDispatchMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunDispatchMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RunDispatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunDispatchMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RunDispatch edge %s", name)
}

// RuntimeControlMutation represents an operation that mutates the RuntimeControl nodes in the graph.
type RuntimeControlMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	processing_enabled           *bool
	pause_mode                   *runtimecontrol.PauseMode
	pause_reason                 *string
	control_epoch                *int64
	addcontrol_epoch             *int64
	max_concurrent_dispatches    *int
	addmax_concurrent_dispatches *int
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*RuntimeControl, error)
	predicates                   []predicate.RuntimeControl
}

var _ ent.Mutation = (*RuntimeControlMutation)(nil)

// runtimecontrolOption allows management of the mutation configuration using functional options.
type runtimecontrolOption func(*RuntimeControlMutation)

// newRuntimeControlMutation creates new mutation for the RuntimeControl entity.
func newRuntimeControlMutation(c config, op Op, opts ...runtimecontrolOption) *RuntimeControlMutation {
	m := &RuntimeControlMutation{
		config:        c,
		op:            op,
		typ:           TypeRuntimeControl,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuntimeControlID sets the ID field of the mutation.
func withRuntimeControlID(id string) runtimecontrolOption {
	return func(m *RuntimeControlMutation) {
		var (
			err   error
			once  sync.Once
			value *RuntimeControl
		)
		m.oldValue = func(ctx context.Context) (*RuntimeControl, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RuntimeControl.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRuntimeControl sets the old RuntimeControl of the mutation.
func withRuntimeControl(node *RuntimeControl) runtimecontrolOption {
	return func(m *RuntimeControlMutation) {
		m.oldValue = func(context.Context) (*RuntimeControl, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuntimeControlMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuntimeControlMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RuntimeControl entities.
func (m *RuntimeControlMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuntimeControlMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuntimeControlMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RuntimeControl.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessingEnabled sets the "processing_enabled" field.
func (m *RuntimeControlMutation) SetProcessingEnabled(b bool) {
	m.processing_enabled = &b
}

// ProcessingEnabled returns the value of the "processing_enabled" field in the mutation.
func (m *RuntimeControlMutation) ProcessingEnabled() (r bool, exists bool) {
	v := m.processing_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingEnabled returns the old "processing_enabled" field's value of the RuntimeControl entity.
// If the RuntimeControl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuntimeControlMutation) OldProcessingEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingEnabled: %w", err)
	}
	return oldValue.ProcessingEnabled, nil
}

// ResetProcessingEnabled resets all changes to the "processing_enabled" field.
func (m *RuntimeControlMutation) ResetProcessingEnabled() {
	m.processing_enabled = nil
}

// SetPauseMode sets the "pause_mode" field.
func (m *RuntimeControlMutation) SetPauseMode(rm runtimecontrol.PauseMode) {
	m.pause_mode = &rm
}

// PauseMode returns the value of the "pause_mode" field in the mutation.
func (m *RuntimeControlMutation) PauseMode() (r runtimecontrol.PauseMode, exists bool) {
	v := m.pause_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseMode returns the old "pause_mode" field's value of the RuntimeControl entity.
// If the RuntimeControl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuntimeControlMutation) OldPauseMode(ctx context.Context) (v runtimecontrol.PauseMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseMode: %w", err)
	}
	return oldValue.PauseMode, nil
}

// ResetPauseMode resets all changes to the "pause_mode" field.
func (m *RuntimeControlMutation) ResetPauseMode() {
	m.pause_mode = nil
}

// SetPauseReason sets the "pause_reason" field.
func (m *RuntimeControlMutation) SetPauseReason(s string) {
	m.pause_reason = &s
}

// PauseReason returns the value of the "pause_reason" field in the mutation.
func (m *RuntimeControlMutation) PauseReason() (r string, exists bool) {
	v := m.pause_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseReason returns the old "pause_reason" field's value of the RuntimeControl entity.
// If the RuntimeControl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuntimeControlMutation) OldPauseReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseReason: %w", err)
	}
	return oldValue.PauseReason, nil
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (m *RuntimeControlMutation) ClearPauseReason() {
	m.pause_reason = nil
	m.clearedFields[runtimecontrol.FieldPauseReason] = struct{}{}
}

// PauseReasonCleared returns if the "pause_reason" field was cleared in this mutation.
func (m *RuntimeControlMutation) PauseReasonCleared() bool {
	_, ok := m.clearedFields[runtimecontrol.FieldPauseReason]
	return ok
}

// ResetPauseReason resets all changes to the "pause_reason" field.
func (m *RuntimeControlMutation) ResetPauseReason() {
	m.pause_reason = nil
	delete(m.clearedFields, runtimecontrol.FieldPauseReason)
}

// SetControlEpoch sets the "control_epoch" field.
func (m *RuntimeControlMutation) SetControlEpoch(i int64) {
	m.control_epoch = &i
	m.addcontrol_epoch = nil
}

// ControlEpoch returns the value of the "control_epoch" field in the mutation.
func (m *RuntimeControlMutation) ControlEpoch() (r int64, exists bool) {
	v := m.control_epoch
	if v == nil {
		return
	}
	return *v, true
}

// OldControlEpoch returns the old "control_epoch" field's value of the RuntimeControl entity.
// If the RuntimeControl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuntimeControlMutation) OldControlEpoch(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldControlEpoch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldControlEpoch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldControlEpoch: %w", err)
	}
	return oldValue.ControlEpoch, nil
}

// AddControlEpoch adds i to the "control_epoch" field.
func (m *RuntimeControlMutation) AddControlEpoch(i int64) {
	if m.addcontrol_epoch != nil {
		*m.addcontrol_epoch += i
	} else {
		m.addcontrol_epoch = &i
	}
}

// AddedControlEpoch returns the value that was added to the "control_epoch" field in this mutation.
func (m *RuntimeControlMutation) AddedControlEpoch() (r int64, exists bool) {
	v := m.addcontrol_epoch
	if v == nil {
		return
	}
	return *v, true
}

// ResetControlEpoch resets all changes to the "control_epoch" field.
func (m *RuntimeControlMutation) ResetControlEpoch() {
	m.control_epoch = nil
	m.addcontrol_epoch = nil
}

// SetMaxConcurrentDispatches sets the "max_concurrent_dispatches" field.
func (m *RuntimeControlMutation) SetMaxConcurrentDispatches(i int) {
	m.max_concurrent_dispatches = &i
	m.addmax_concurrent_dispatches = nil
}

// MaxConcurrentDispatches returns the value of the "max_concurrent_dispatches" field in the mutation.
func (m *RuntimeControlMutation) MaxConcurrentDispatches() (r int, exists bool) {
	v := m.max_concurrent_dispatches
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxConcurrentDispatches returns the old "max_concurrent_dispatches" field's value of the RuntimeControl entity.
// If the RuntimeControl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuntimeControlMutation) OldMaxConcurrentDispatches(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxConcurrentDispatches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxConcurrentDispatches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxConcurrentDispatches: %w", err)
	}
	return oldValue.MaxConcurrentDispatches, nil
}

// AddMaxConcurrentDispatches adds i to the "max_concurrent_dispatches" field.
func (m *RuntimeControlMutation) AddMaxConcurrentDispatches(i int) {
	if m.addmax_concurrent_dispatches != nil {
		*m.addmax_concurrent_dispatches += i
	} else {
		m.addmax_concurrent_dispatches = &i
	}
}

// AddedMaxConcurrentDispatches returns the value that was added to the "max_concurrent_dispatches" field in this mutation.
func (m *RuntimeControlMutation) AddedMaxConcurrentDispatches() (r int, exists bool) {
	v := m.addmax_concurrent_dispatches
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxConcurrentDispatches resets all changes to the "max_concurrent_dispatches" field.
func (m *RuntimeControlMutation) ResetMaxConcurrentDispatches() {
	m.max_concurrent_dispatches = nil
	m.addmax_concurrent_dispatches = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RuntimeControlMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RuntimeControlMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RuntimeControl entity.
// If the RuntimeControl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuntimeControlMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RuntimeControlMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RuntimeControlMutation builder.
func (m *RuntimeControlMutation) Where(ps ...predicate.RuntimeControl) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuntimeControlMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuntimeControlMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RuntimeControl, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuntimeControlMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuntimeControlMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RuntimeControl).
func (m *RuntimeControlMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuntimeControlMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.processing_enabled != nil {
		fields = append(fields, runtimecontrol.FieldProcessingEnabled)
	}
	if m.pause_mode != nil {
		fields = append(fields, runtimecontrol.FieldPauseMode)
	}
	if m.pause_reason != nil {
		fields = append(fields, runtimecontrol.FieldPauseReason)
	}
	if m.control_epoch != nil {
		fields = append(fields, runtimecontrol.FieldControlEpoch)
	}
	if m.max_concurrent_dispatches != nil {
		fields = append(fields, runtimecontrol.FieldMaxConcurrentDispatches)
	}
	if m.updated_at != nil {
		fields = append(fields, runtimecontrol.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuntimeControlMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runtimecontrol.FieldProcessingEnabled:
		return m.ProcessingEnabled()
	case runtimecontrol.FieldPauseMode:
		return m.PauseMode()
	case runtimecontrol.FieldPauseReason:
		return m.PauseReason()
	case runtimecontrol.FieldControlEpoch:
		return m.ControlEpoch()
	case runtimecontrol.FieldMaxConcurrentDispatches:
		return m.MaxConcurrentDispatches()
	case runtimecontrol.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuntimeControlMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runtimecontrol.FieldProcessingEnabled:
		return m.OldProcessingEnabled(ctx)
	case runtimecontrol.FieldPauseMode:
		return m.OldPauseMode(ctx)
	case runtimecontrol.FieldPauseReason:
		return m.OldPauseReason(ctx)
	case runtimecontrol.FieldControlEpoch:
		return m.OldControlEpoch(ctx)
	case runtimecontrol.FieldMaxConcurrentDispatches:
		return m.OldMaxConcurrentDispatches(ctx)
	case runtimecontrol.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RuntimeControl field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuntimeControlMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runtimecontrol.FieldProcessingEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingEnabled(v)
		return nil
	case runtimecontrol.FieldPauseMode:
		v, ok := value.(runtimecontrol.PauseMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseMode(v)
		return nil
	case runtimecontrol.FieldPauseReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseReason(v)
		return nil
	case runtimecontrol.FieldControlEpoch:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetControlEpoch(v)
		return nil
	case runtimecontrol.FieldMaxConcurrentDispatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxConcurrentDispatches(v)
		return nil
	case runtimecontrol.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RuntimeControl field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuntimeControlMutation) AddedFields() []string {
	var fields []string
	if m.addcontrol_epoch != nil {
		fields = append(fields, runtimecontrol.FieldControlEpoch)
	}
	if m.addmax_concurrent_dispatches != nil {
		fields = append(fields, runtimecontrol.FieldMaxConcurrentDispatches)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuntimeControlMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runtimecontrol.FieldControlEpoch:
		return m.AddedControlEpoch()
	case runtimecontrol.FieldMaxConcurrentDispatches:
		return m.AddedMaxConcurrentDispatches()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuntimeControlMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runtimecontrol.FieldControlEpoch:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddControlEpoch(v)
		return nil
	case runtimecontrol.FieldMaxConcurrentDispatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxConcurrentDispatches(v)
		return nil
	}
	return fmt.Errorf("unknown RuntimeControl numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuntimeControlMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runtimecontrol.FieldPauseReason) {
		fields = append(fields, runtimecontrol.FieldPauseReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuntimeControlMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuntimeControlMutation) ClearField(name string) error {
	switch name {
	case runtimecontrol.FieldPauseReason:
		m.ClearPauseReason()
		return nil
	}
	return fmt.Errorf("unknown RuntimeControl nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuntimeControlMutation) ResetField(name string) error {
	switch name {
	case runtimecontrol.FieldProcessingEnabled:
		m.ResetProcessingEnabled()
		return nil
	case runtimecontrol.FieldPauseMode:
		m.ResetPauseMode()
		return nil
	case runtimecontrol.FieldPauseReason:
		m.ResetPauseReason()
		return nil
	case runtimecontrol.FieldControlEpoch:
		m.ResetControlEpoch()
		return nil
	case runtimecontrol.FieldMaxConcurrentDispatches:
		m.ResetMaxConcurrentDispatches()
		return nil
	case runtimecontrol.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RuntimeControl field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuntimeControlMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuntimeControlMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuntimeControlMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuntimeControlMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuntimeControlMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuntimeControlMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuntimeControlMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RuntimeControl unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuntimeControlMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RuntimeControl edge %s", name)
}

// ScheduledItemMutation represents an operation that mutates the ScheduledItem nodes in the graph.
type ScheduledItemMutation struct {
	config
	op             Op
	typ            string
	id             *string
	agent_id       *string
	session_key    *string
	_type          *scheduleditem.Type
	payload        *map[string]interface{}
	run_at         *time.Time
	recurrence     *string
	status         *scheduleditem.Status
	routine_id     *string
	routine_run_id *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ScheduledItem, error)
	predicates     []predicate.ScheduledItem
}

var _ ent.Mutation = (*ScheduledItemMutation)(nil)

// scheduleditemOption allows management of the mutation configuration using functional options.
type scheduleditemOption func(*ScheduledItemMutation)

// newScheduledItemMutation creates new mutation for the ScheduledItem entity.
func newScheduledItemMutation(c config, op Op, opts ...scheduleditemOption) *ScheduledItemMutation {
	m := &ScheduledItemMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledItemID sets the ID field of the mutation.
func withScheduledItemID(id string) scheduleditemOption {
	return func(m *ScheduledItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledItem
		)
		m.oldValue = func(ctx context.Context) (*ScheduledItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledItem sets the old ScheduledItem of the mutation.
func withScheduledItem(node *ScheduledItem) scheduleditemOption {
	return func(m *ScheduledItemMutation) {
		m.oldValue = func(context.Context) (*ScheduledItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledItem entities.
func (m *ScheduledItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ScheduledItemMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ScheduledItemMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ScheduledItemMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetSessionKey sets the "session_key" field.
func (m *ScheduledItemMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *ScheduledItemMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ClearSessionKey clears the value of the "session_key" field.
func (m *ScheduledItemMutation) ClearSessionKey() {
	m.session_key = nil
	m.clearedFields[scheduleditem.FieldSessionKey] = struct{}{}
}

// SessionKeyCleared returns if the "session_key" field was cleared in this mutation.
func (m *ScheduledItemMutation) SessionKeyCleared() bool {
	_, ok := m.clearedFields[scheduleditem.FieldSessionKey]
	return ok
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *ScheduledItemMutation) ResetSessionKey() {
	m.session_key = nil
	delete(m.clearedFields, scheduleditem.FieldSessionKey)
}

// SetType sets the "type" field.
func (m *ScheduledItemMutation) SetType(s scheduleditem.Type) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ScheduledItemMutation) GetType() (r scheduleditem.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldType(ctx context.Context) (v scheduleditem.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ScheduledItemMutation) ResetType() {
	m._type = nil
}

// SetPayload sets the "payload" field.
func (m *ScheduledItemMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ScheduledItemMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *ScheduledItemMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[scheduleditem.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *ScheduledItemMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[scheduleditem.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *ScheduledItemMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, scheduleditem.FieldPayload)
}

// SetRunAt sets the "run_at" field.
func (m *ScheduledItemMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *ScheduledItemMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *ScheduledItemMutation) ResetRunAt() {
	m.run_at = nil
}

// SetRecurrence sets the "recurrence" field.
func (m *ScheduledItemMutation) SetRecurrence(s string) {
	m.recurrence = &s
}

// Recurrence returns the value of the "recurrence" field in the mutation.
func (m *ScheduledItemMutation) Recurrence() (r string, exists bool) {
	v := m.recurrence
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrence returns the old "recurrence" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldRecurrence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrence: %w", err)
	}
	return oldValue.Recurrence, nil
}

// ClearRecurrence clears the value of the "recurrence" field.
func (m *ScheduledItemMutation) ClearRecurrence() {
	m.recurrence = nil
	m.clearedFields[scheduleditem.FieldRecurrence] = struct{}{}
}

// RecurrenceCleared returns if the "recurrence" field was cleared in this mutation.
func (m *ScheduledItemMutation) RecurrenceCleared() bool {
	_, ok := m.clearedFields[scheduleditem.FieldRecurrence]
	return ok
}

// ResetRecurrence resets all changes to the "recurrence" field.
func (m *ScheduledItemMutation) ResetRecurrence() {
	m.recurrence = nil
	delete(m.clearedFields, scheduleditem.FieldRecurrence)
}

// SetStatus sets the "status" field.
func (m *ScheduledItemMutation) SetStatus(s scheduleditem.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledItemMutation) Status() (r scheduleditem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldStatus(ctx context.Context) (v scheduleditem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledItemMutation) ResetStatus() {
	m.status = nil
}

// SetRoutineID sets the "routine_id" field.
func (m *ScheduledItemMutation) SetRoutineID(s string) {
	m.routine_id = &s
}

// RoutineID returns the value of the "routine_id" field in the mutation.
func (m *ScheduledItemMutation) RoutineID() (r string, exists bool) {
	v := m.routine_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutineID returns the old "routine_id" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldRoutineID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutineID: %w", err)
	}
	return oldValue.RoutineID, nil
}

// ClearRoutineID clears the value of the "routine_id" field.
func (m *ScheduledItemMutation) ClearRoutineID() {
	m.routine_id = nil
	m.clearedFields[scheduleditem.FieldRoutineID] = struct{}{}
}

// RoutineIDCleared returns if the "routine_id" field was cleared in this mutation.
func (m *ScheduledItemMutation) RoutineIDCleared() bool {
	_, ok := m.clearedFields[scheduleditem.FieldRoutineID]
	return ok
}

// ResetRoutineID resets all changes to the "routine_id" field.
func (m *ScheduledItemMutation) ResetRoutineID() {
	m.routine_id = nil
	delete(m.clearedFields, scheduleditem.FieldRoutineID)
}

// SetRoutineRunID sets the "routine_run_id" field.
func (m *ScheduledItemMutation) SetRoutineRunID(s string) {
	m.routine_run_id = &s
}

// RoutineRunID returns the value of the "routine_run_id" field in the mutation.
func (m *ScheduledItemMutation) RoutineRunID() (r string, exists bool) {
	v := m.routine_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutineRunID returns the old "routine_run_id" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldRoutineRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutineRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutineRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutineRunID: %w", err)
	}
	return oldValue.RoutineRunID, nil
}

// ClearRoutineRunID clears the value of the "routine_run_id" field.
func (m *ScheduledItemMutation) ClearRoutineRunID() {
	m.routine_run_id = nil
	m.clearedFields[scheduleditem.FieldRoutineRunID] = struct{}{}
}

// RoutineRunIDCleared returns if the "routine_run_id" field was cleared in this mutation.
func (m *ScheduledItemMutation) RoutineRunIDCleared() bool {
	_, ok := m.clearedFields[scheduleditem.FieldRoutineRunID]
	return ok
}

// ResetRoutineRunID resets all changes to the "routine_run_id" field.
func (m *ScheduledItemMutation) ResetRoutineRunID() {
	m.routine_run_id = nil
	delete(m.clearedFields, scheduleditem.FieldRoutineRunID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledItem entity.
// If the ScheduledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ScheduledItemMutation builder.
func (m *ScheduledItemMutation) Where(ps ...predicate.ScheduledItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledItem).
func (m *ScheduledItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledItemMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.agent_id != nil {
		fields = append(fields, scheduleditem.FieldAgentID)
	}
	if m.session_key != nil {
		fields = append(fields, scheduleditem.FieldSessionKey)
	}
	if m._type != nil {
		fields = append(fields, scheduleditem.FieldType)
	}
	if m.payload != nil {
		fields = append(fields, scheduleditem.FieldPayload)
	}
	if m.run_at != nil {
		fields = append(fields, scheduleditem.FieldRunAt)
	}
	if m.recurrence != nil {
		fields = append(fields, scheduleditem.FieldRecurrence)
	}
	if m.status != nil {
		fields = append(fields, scheduleditem.FieldStatus)
	}
	if m.routine_id != nil {
		fields = append(fields, scheduleditem.FieldRoutineID)
	}
	if m.routine_run_id != nil {
		fields = append(fields, scheduleditem.FieldRoutineRunID)
	}
	if m.created_at != nil {
		fields = append(fields, scheduleditem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduleditem.FieldAgentID:
		return m.AgentID()
	case scheduleditem.FieldSessionKey:
		return m.SessionKey()
	case scheduleditem.FieldType:
		return m.GetType()
	case scheduleditem.FieldPayload:
		return m.Payload()
	case scheduleditem.FieldRunAt:
		return m.RunAt()
	case scheduleditem.FieldRecurrence:
		return m.Recurrence()
	case scheduleditem.FieldStatus:
		return m.Status()
	case scheduleditem.FieldRoutineID:
		return m.RoutineID()
	case scheduleditem.FieldRoutineRunID:
		return m.RoutineRunID()
	case scheduleditem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduleditem.FieldAgentID:
		return m.OldAgentID(ctx)
	case scheduleditem.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case scheduleditem.FieldType:
		return m.OldType(ctx)
	case scheduleditem.FieldPayload:
		return m.OldPayload(ctx)
	case scheduleditem.FieldRunAt:
		return m.OldRunAt(ctx)
	case scheduleditem.FieldRecurrence:
		return m.OldRecurrence(ctx)
	case scheduleditem.FieldStatus:
		return m.OldStatus(ctx)
	case scheduleditem.FieldRoutineID:
		return m.OldRoutineID(ctx)
	case scheduleditem.FieldRoutineRunID:
		return m.OldRoutineRunID(ctx)
	case scheduleditem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduleditem.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case scheduleditem.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case scheduleditem.FieldType:
		v, ok := value.(scheduleditem.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case scheduleditem.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case scheduleditem.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	case scheduleditem.FieldRecurrence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrence(v)
		return nil
	case scheduleditem.FieldStatus:
		v, ok := value.(scheduleditem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduleditem.FieldRoutineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutineID(v)
		return nil
	case scheduleditem.FieldRoutineRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutineRunID(v)
		return nil
	case scheduleditem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduledItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduleditem.FieldSessionKey) {
		fields = append(fields, scheduleditem.FieldSessionKey)
	}
	if m.FieldCleared(scheduleditem.FieldPayload) {
		fields = append(fields, scheduleditem.FieldPayload)
	}
	if m.FieldCleared(scheduleditem.FieldRecurrence) {
		fields = append(fields, scheduleditem.FieldRecurrence)
	}
	if m.FieldCleared(scheduleditem.FieldRoutineID) {
		fields = append(fields, scheduleditem.FieldRoutineID)
	}
	if m.FieldCleared(scheduleditem.FieldRoutineRunID) {
		fields = append(fields, scheduleditem.FieldRoutineRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledItemMutation) ClearField(name string) error {
	switch name {
	case scheduleditem.FieldSessionKey:
		m.ClearSessionKey()
		return nil
	case scheduleditem.FieldPayload:
		m.ClearPayload()
		return nil
	case scheduleditem.FieldRecurrence:
		m.ClearRecurrence()
		return nil
	case scheduleditem.FieldRoutineID:
		m.ClearRoutineID()
		return nil
	case scheduleditem.FieldRoutineRunID:
		m.ClearRoutineRunID()
		return nil
	}
	return fmt.Errorf("unknown ScheduledItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledItemMutation) ResetField(name string) error {
	switch name {
	case scheduleditem.FieldAgentID:
		m.ResetAgentID()
		return nil
	case scheduleditem.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case scheduleditem.FieldType:
		m.ResetType()
		return nil
	case scheduleditem.FieldPayload:
		m.ResetPayload()
		return nil
	case scheduleditem.FieldRunAt:
		m.ResetRunAt()
		return nil
	case scheduleditem.FieldRecurrence:
		m.ResetRecurrence()
		return nil
	case scheduleditem.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduleditem.FieldRoutineID:
		m.ResetRoutineID()
		return nil
	case scheduleditem.FieldRoutineRunID:
		m.ResetRoutineRunID()
		return nil
	case scheduleditem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduledItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduledItem edge %s", name)
}

// WorkItemMutation represents an operation that mutates the WorkItem nodes in the graph.
type WorkItemMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	plugin_instance_id *string
	session_key        *string
	source             *string
	source_ref         *string
	status             *workitem.Status
	title              *string
	payload            *map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*WorkItem, error)
	predicates         []predicate.WorkItem
}

var _ ent.Mutation = (*WorkItemMutation)(nil)

// workitemOption allows management of the mutation configuration using functional options.
type workitemOption func(*WorkItemMutation)

// newWorkItemMutation creates new mutation for the WorkItem entity.
func newWorkItemMutation(c config, op Op, opts ...workitemOption) *WorkItemMutation {
	m := &WorkItemMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkItemID sets the ID field of the mutation.
func withWorkItemID(id string) workitemOption {
	return func(m *WorkItemMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkItem
		)
		m.oldValue = func(ctx context.Context) (*WorkItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkItem sets the old WorkItem of the mutation.
func withWorkItem(node *WorkItem) workitemOption {
	return func(m *WorkItemMutation) {
		m.oldValue = func(context.Context) (*WorkItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkItem entities.
func (m *WorkItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (m *WorkItemMutation) SetPluginInstanceID(s string) {
	m.plugin_instance_id = &s
}

// PluginInstanceID returns the value of the "plugin_instance_id" field in the mutation.
func (m *WorkItemMutation) PluginInstanceID() (r string, exists bool) {
	v := m.plugin_instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPluginInstanceID returns the old "plugin_instance_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldPluginInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPluginInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPluginInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPluginInstanceID: %w", err)
	}
	return oldValue.PluginInstanceID, nil
}

// ResetPluginInstanceID resets all changes to the "plugin_instance_id" field.
func (m *WorkItemMutation) ResetPluginInstanceID() {
	m.plugin_instance_id = nil
}

// SetSessionKey sets the "session_key" field.
func (m *WorkItemMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *WorkItemMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ClearSessionKey clears the value of the "session_key" field.
func (m *WorkItemMutation) ClearSessionKey() {
	m.session_key = nil
	m.clearedFields[workitem.FieldSessionKey] = struct{}{}
}

// SessionKeyCleared returns if the "session_key" field was cleared in this mutation.
func (m *WorkItemMutation) SessionKeyCleared() bool {
	_, ok := m.clearedFields[workitem.FieldSessionKey]
	return ok
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *WorkItemMutation) ResetSessionKey() {
	m.session_key = nil
	delete(m.clearedFields, workitem.FieldSessionKey)
}

// SetSource sets the "source" field.
func (m *WorkItemMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *WorkItemMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *WorkItemMutation) ResetSource() {
	m.source = nil
}

// SetSourceRef sets the "source_ref" field.
func (m *WorkItemMutation) SetSourceRef(s string) {
	m.source_ref = &s
}

// SourceRef returns the value of the "source_ref" field in the mutation.
func (m *WorkItemMutation) SourceRef() (r string, exists bool) {
	v := m.source_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceRef returns the old "source_ref" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldSourceRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceRef: %w", err)
	}
	return oldValue.SourceRef, nil
}

// ClearSourceRef clears the value of the "source_ref" field.
func (m *WorkItemMutation) ClearSourceRef() {
	m.source_ref = nil
	m.clearedFields[workitem.FieldSourceRef] = struct{}{}
}

// SourceRefCleared returns if the "source_ref" field was cleared in this mutation.
func (m *WorkItemMutation) SourceRefCleared() bool {
	_, ok := m.clearedFields[workitem.FieldSourceRef]
	return ok
}

// ResetSourceRef resets all changes to the "source_ref" field.
func (m *WorkItemMutation) ResetSourceRef() {
	m.source_ref = nil
	delete(m.clearedFields, workitem.FieldSourceRef)
}

// SetStatus sets the "status" field.
func (m *WorkItemMutation) SetStatus(w workitem.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkItemMutation) Status() (r workitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldStatus(ctx context.Context) (v workitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkItemMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *WorkItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *WorkItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *WorkItemMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[workitem.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *WorkItemMutation) TitleCleared() bool {
	_, ok := m.clearedFields[workitem.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *WorkItemMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, workitem.FieldTitle)
}

// SetPayload sets the "payload" field.
func (m *WorkItemMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WorkItemMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *WorkItemMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[workitem.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *WorkItemMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[workitem.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *WorkItemMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, workitem.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkItemMutation builder.
func (m *WorkItemMutation) Where(ps ...predicate.WorkItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkItem).
func (m *WorkItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.plugin_instance_id != nil {
		fields = append(fields, workitem.FieldPluginInstanceID)
	}
	if m.session_key != nil {
		fields = append(fields, workitem.FieldSessionKey)
	}
	if m.source != nil {
		fields = append(fields, workitem.FieldSource)
	}
	if m.source_ref != nil {
		fields = append(fields, workitem.FieldSourceRef)
	}
	if m.status != nil {
		fields = append(fields, workitem.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, workitem.FieldTitle)
	}
	if m.payload != nil {
		fields = append(fields, workitem.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, workitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workitem.FieldPluginInstanceID:
		return m.PluginInstanceID()
	case workitem.FieldSessionKey:
		return m.SessionKey()
	case workitem.FieldSource:
		return m.Source()
	case workitem.FieldSourceRef:
		return m.SourceRef()
	case workitem.FieldStatus:
		return m.Status()
	case workitem.FieldTitle:
		return m.Title()
	case workitem.FieldPayload:
		return m.Payload()
	case workitem.FieldCreatedAt:
		return m.CreatedAt()
	case workitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workitem.FieldPluginInstanceID:
		return m.OldPluginInstanceID(ctx)
	case workitem.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case workitem.FieldSource:
		return m.OldSource(ctx)
	case workitem.FieldSourceRef:
		return m.OldSourceRef(ctx)
	case workitem.FieldStatus:
		return m.OldStatus(ctx)
	case workitem.FieldTitle:
		return m.OldTitle(ctx)
	case workitem.FieldPayload:
		return m.OldPayload(ctx)
	case workitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workitem.FieldPluginInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPluginInstanceID(v)
		return nil
	case workitem.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case workitem.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case workitem.FieldSourceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceRef(v)
		return nil
	case workitem.FieldStatus:
		v, ok := value.(workitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case workitem.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case workitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workitem.FieldSessionKey) {
		fields = append(fields, workitem.FieldSessionKey)
	}
	if m.FieldCleared(workitem.FieldSourceRef) {
		fields = append(fields, workitem.FieldSourceRef)
	}
	if m.FieldCleared(workitem.FieldTitle) {
		fields = append(fields, workitem.FieldTitle)
	}
	if m.FieldCleared(workitem.FieldPayload) {
		fields = append(fields, workitem.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkItemMutation) ClearField(name string) error {
	switch name {
	case workitem.FieldSessionKey:
		m.ClearSessionKey()
		return nil
	case workitem.FieldSourceRef:
		m.ClearSourceRef()
		return nil
	case workitem.FieldTitle:
		m.ClearTitle()
		return nil
	case workitem.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown WorkItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkItemMutation) ResetField(name string) error {
	switch name {
	case workitem.FieldPluginInstanceID:
		m.ResetPluginInstanceID()
		return nil
	case workitem.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case workitem.FieldSource:
		m.ResetSource()
		return nil
	case workitem.FieldSourceRef:
		m.ResetSourceRef()
		return nil
	case workitem.FieldStatus:
		m.ResetStatus()
		return nil
	case workitem.FieldTitle:
		m.ResetTitle()
		return nil
	case workitem.FieldPayload:
		m.ResetPayload()
		return nil
	case workitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkItem edge %s", name)
}
