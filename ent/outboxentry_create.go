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
	"github.com/hooklinehq/hookline/ent/outboxentry"
)

// OutboxEntryCreate is the builder for creating a OutboxEntry entity.
type OutboxEntryCreate struct {
	config
	mutation *OutboxEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEffectKey sets the "effect_key" field.
func (_c *OutboxEntryCreate) SetEffectKey(v string) *OutboxEntryCreate {
	_c.mutation.SetEffectKey(v)
	return _c
}

// SetDispatchID sets the "dispatch_id" field.
func (_c *OutboxEntryCreate) SetDispatchID(v string) *OutboxEntryCreate {
	_c.mutation.SetDispatchID(v)
	return _c
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (_c *OutboxEntryCreate) SetPluginInstanceID(v string) *OutboxEntryCreate {
	_c.mutation.SetPluginInstanceID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *OutboxEntryCreate) SetChannel(v string) *OutboxEntryCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *OutboxEntryCreate) SetKind(v string) *OutboxEntryCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *OutboxEntryCreate) SetPayload(v map[string]interface{}) *OutboxEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OutboxEntryCreate) SetStatus(v outboxentry.Status) *OutboxEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableStatus(v *outboxentry.Status) *OutboxEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryable sets the "retryable" field.
func (_c *OutboxEntryCreate) SetRetryable(v bool) *OutboxEntryCreate {
	_c.mutation.SetRetryable(v)
	return _c
}

// SetNillableRetryable sets the "retryable" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableRetryable(v *bool) *OutboxEntryCreate {
	if v != nil {
		_c.SetRetryable(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *OutboxEntryCreate) SetAttemptCount(v int) *OutboxEntryCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableAttemptCount(v *int) *OutboxEntryCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *OutboxEntryCreate) SetNextAttemptAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableNextAttemptAt(v *time.Time) *OutboxEntryCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *OutboxEntryCreate) SetClaimedBy(v string) *OutboxEntryCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableClaimedBy(v *string) *OutboxEntryCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *OutboxEntryCreate) SetLeaseExpiresAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableLeaseExpiresAt(v *time.Time) *OutboxEntryCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (_c *OutboxEntryCreate) SetClaimedEpoch(v int64) *OutboxEntryCreate {
	_c.mutation.SetClaimedEpoch(v)
	return _c
}

// SetNillableClaimedEpoch sets the "claimed_epoch" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableClaimedEpoch(v *int64) *OutboxEntryCreate {
	if v != nil {
		_c.SetClaimedEpoch(*v)
	}
	return _c
}

// SetProviderRef sets the "provider_ref" field.
func (_c *OutboxEntryCreate) SetProviderRef(v string) *OutboxEntryCreate {
	_c.mutation.SetProviderRef(v)
	return _c
}

// SetNillableProviderRef sets the "provider_ref" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableProviderRef(v *string) *OutboxEntryCreate {
	if v != nil {
		_c.SetProviderRef(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *OutboxEntryCreate) SetLastError(v string) *OutboxEntryCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableLastError(v *string) *OutboxEntryCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetUnknownReason sets the "unknown_reason" field.
func (_c *OutboxEntryCreate) SetUnknownReason(v string) *OutboxEntryCreate {
	_c.mutation.SetUnknownReason(v)
	return _c
}

// SetNillableUnknownReason sets the "unknown_reason" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableUnknownReason(v *string) *OutboxEntryCreate {
	if v != nil {
		_c.SetUnknownReason(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *OutboxEntryCreate) SetSentAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableSentAt(v *time.Time) *OutboxEntryCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutboxEntryCreate) SetCreatedAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableCreatedAt(v *time.Time) *OutboxEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OutboxEntryCreate) SetID(v string) *OutboxEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_c *OutboxEntryCreate) Mutation() *OutboxEntryMutation {
	return _c.mutation
}

// Save creates the OutboxEntry in the database.
func (_c *OutboxEntryCreate) Save(ctx context.Context) (*OutboxEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutboxEntryCreate) SaveX(ctx context.Context) *OutboxEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutboxEntryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := outboxentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Retryable(); !ok {
		v := outboxentry.DefaultRetryable
		_c.mutation.SetRetryable(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := outboxentry.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		v := outboxentry.DefaultNextAttemptAt()
		_c.mutation.SetNextAttemptAt(v)
	}
	if _, ok := _c.mutation.ClaimedEpoch(); !ok {
		v := outboxentry.DefaultClaimedEpoch
		_c.mutation.SetClaimedEpoch(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outboxentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutboxEntryCreate) check() error {
	if _, ok := _c.mutation.EffectKey(); !ok {
		return &ValidationError{Name: "effect_key", err: errors.New(`ent: missing required field "OutboxEntry.effect_key"`)}
	}
	if _, ok := _c.mutation.DispatchID(); !ok {
		return &ValidationError{Name: "dispatch_id", err: errors.New(`ent: missing required field "OutboxEntry.dispatch_id"`)}
	}
	if _, ok := _c.mutation.PluginInstanceID(); !ok {
		return &ValidationError{Name: "plugin_instance_id", err: errors.New(`ent: missing required field "OutboxEntry.plugin_instance_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "OutboxEntry.channel"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "OutboxEntry.kind"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OutboxEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := outboxentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Retryable(); !ok {
		return &ValidationError{Name: "retryable", err: errors.New(`ent: missing required field "OutboxEntry.retryable"`)}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "OutboxEntry.attempt_count"`)}
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		return &ValidationError{Name: "next_attempt_at", err: errors.New(`ent: missing required field "OutboxEntry.next_attempt_at"`)}
	}
	if _, ok := _c.mutation.ClaimedEpoch(); !ok {
		return &ValidationError{Name: "claimed_epoch", err: errors.New(`ent: missing required field "OutboxEntry.claimed_epoch"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OutboxEntry.created_at"`)}
	}
	return nil
}

func (_c *OutboxEntryCreate) sqlSave(ctx context.Context) (*OutboxEntry, error) {
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
			return nil, fmt.Errorf("unexpected OutboxEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutboxEntryCreate) createSpec() (*OutboxEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &OutboxEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outboxentry.Table, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EffectKey(); ok {
		_spec.SetField(outboxentry.FieldEffectKey, field.TypeString, value)
		_node.EffectKey = value
	}
	if value, ok := _c.mutation.DispatchID(); ok {
		_spec.SetField(outboxentry.FieldDispatchID, field.TypeString, value)
		_node.DispatchID = value
	}
	if value, ok := _c.mutation.PluginInstanceID(); ok {
		_spec.SetField(outboxentry.FieldPluginInstanceID, field.TypeString, value)
		_node.PluginInstanceID = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(outboxentry.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(outboxentry.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(outboxentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(outboxentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Retryable(); ok {
		_spec.SetField(outboxentry.FieldRetryable, field.TypeBool, value)
		_node.Retryable = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(outboxentry.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(outboxentry.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(outboxentry.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(outboxentry.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.ClaimedEpoch(); ok {
		_spec.SetField(outboxentry.FieldClaimedEpoch, field.TypeInt64, value)
		_node.ClaimedEpoch = value
	}
	if value, ok := _c.mutation.ProviderRef(); ok {
		_spec.SetField(outboxentry.FieldProviderRef, field.TypeString, value)
		_node.ProviderRef = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(outboxentry.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.UnknownReason(); ok {
		_spec.SetField(outboxentry.FieldUnknownReason, field.TypeString, value)
		_node.UnknownReason = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(outboxentry.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outboxentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboxEntry.Create().
//		SetEffectKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboxEntryUpsert) {
//			SetEffectKey(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboxEntryCreate) OnConflict(opts ...sql.ConflictOption) *OutboxEntryUpsertOne {
	_c.conflict = opts
	return &OutboxEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboxEntryCreate) OnConflictColumns(columns ...string) *OutboxEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboxEntryUpsertOne{
		create: _c,
	}
}

type (
	// OutboxEntryUpsertOne is the builder for "upsert"-ing
	//  one OutboxEntry node.
	OutboxEntryUpsertOne struct {
		create *OutboxEntryCreate
	}

	// OutboxEntryUpsert is the "OnConflict" setter.
	OutboxEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetDispatchID sets the "dispatch_id" field.
func (u *OutboxEntryUpsert) SetDispatchID(v string) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldDispatchID, v)
	return u
}

// UpdateDispatchID sets the "dispatch_id" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateDispatchID() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldDispatchID)
	return u
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (u *OutboxEntryUpsert) SetPluginInstanceID(v string) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldPluginInstanceID, v)
	return u
}

// UpdatePluginInstanceID sets the "plugin_instance_id" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdatePluginInstanceID() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldPluginInstanceID)
	return u
}

// SetChannel sets the "channel" field.
func (u *OutboxEntryUpsert) SetChannel(v string) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateChannel() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldChannel)
	return u
}

// SetKind sets the "kind" field.
func (u *OutboxEntryUpsert) SetKind(v string) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateKind() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldKind)
	return u
}

// SetPayload sets the "payload" field.
func (u *OutboxEntryUpsert) SetPayload(v map[string]interface{}) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdatePayload() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *OutboxEntryUpsert) ClearPayload() *OutboxEntryUpsert {
	u.SetNull(outboxentry.FieldPayload)
	return u
}

// SetStatus sets the "status" field.
func (u *OutboxEntryUpsert) SetStatus(v outboxentry.Status) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateStatus() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldStatus)
	return u
}

// SetRetryable sets the "retryable" field.
func (u *OutboxEntryUpsert) SetRetryable(v bool) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldRetryable, v)
	return u
}

// UpdateRetryable sets the "retryable" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateRetryable() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldRetryable)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *OutboxEntryUpsert) SetAttemptCount(v int) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateAttemptCount() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *OutboxEntryUpsert) AddAttemptCount(v int) *OutboxEntryUpsert {
	u.Add(outboxentry.FieldAttemptCount, v)
	return u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *OutboxEntryUpsert) SetNextAttemptAt(v time.Time) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldNextAttemptAt, v)
	return u
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateNextAttemptAt() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldNextAttemptAt)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *OutboxEntryUpsert) SetClaimedBy(v string) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateClaimedBy() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *OutboxEntryUpsert) ClearClaimedBy() *OutboxEntryUpsert {
	u.SetNull(outboxentry.FieldClaimedBy)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *OutboxEntryUpsert) SetLeaseExpiresAt(v time.Time) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateLeaseExpiresAt() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *OutboxEntryUpsert) ClearLeaseExpiresAt() *OutboxEntryUpsert {
	u.SetNull(outboxentry.FieldLeaseExpiresAt)
	return u
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (u *OutboxEntryUpsert) SetClaimedEpoch(v int64) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldClaimedEpoch, v)
	return u
}

// UpdateClaimedEpoch sets the "claimed_epoch" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateClaimedEpoch() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldClaimedEpoch)
	return u
}

// AddClaimedEpoch adds v to the "claimed_epoch" field.
func (u *OutboxEntryUpsert) AddClaimedEpoch(v int64) *OutboxEntryUpsert {
	u.Add(outboxentry.FieldClaimedEpoch, v)
	return u
}

// SetProviderRef sets the "provider_ref" field.
func (u *OutboxEntryUpsert) SetProviderRef(v string) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldProviderRef, v)
	return u
}

// UpdateProviderRef sets the "provider_ref" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateProviderRef() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldProviderRef)
	return u
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (u *OutboxEntryUpsert) ClearProviderRef() *OutboxEntryUpsert {
	u.SetNull(outboxentry.FieldProviderRef)
	return u
}

// SetLastError sets the "last_error" field.
func (u *OutboxEntryUpsert) SetLastError(v string) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateLastError() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *OutboxEntryUpsert) ClearLastError() *OutboxEntryUpsert {
	u.SetNull(outboxentry.FieldLastError)
	return u
}

// SetUnknownReason sets the "unknown_reason" field.
func (u *OutboxEntryUpsert) SetUnknownReason(v string) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldUnknownReason, v)
	return u
}

// UpdateUnknownReason sets the "unknown_reason" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateUnknownReason() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldUnknownReason)
	return u
}

// ClearUnknownReason clears the value of the "unknown_reason" field.
func (u *OutboxEntryUpsert) ClearUnknownReason() *OutboxEntryUpsert {
	u.SetNull(outboxentry.FieldUnknownReason)
	return u
}

// SetSentAt sets the "sent_at" field.
func (u *OutboxEntryUpsert) SetSentAt(v time.Time) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldSentAt, v)
	return u
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateSentAt() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldSentAt)
	return u
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *OutboxEntryUpsert) ClearSentAt() *OutboxEntryUpsert {
	u.SetNull(outboxentry.FieldSentAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outboxentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutboxEntryUpsertOne) UpdateNewValues() *OutboxEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(outboxentry.FieldID)
		}
		if _, exists := u.create.mutation.EffectKey(); exists {
			s.SetIgnore(outboxentry.FieldEffectKey)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(outboxentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OutboxEntryUpsertOne) Ignore() *OutboxEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboxEntryUpsertOne) DoNothing() *OutboxEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboxEntryCreate.OnConflict
// documentation for more info.
func (u *OutboxEntryUpsertOne) Update(set func(*OutboxEntryUpsert)) *OutboxEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboxEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetDispatchID sets the "dispatch_id" field.
func (u *OutboxEntryUpsertOne) SetDispatchID(v string) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetDispatchID(v)
	})
}

// UpdateDispatchID sets the "dispatch_id" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateDispatchID() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateDispatchID()
	})
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (u *OutboxEntryUpsertOne) SetPluginInstanceID(v string) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetPluginInstanceID(v)
	})
}

// UpdatePluginInstanceID sets the "plugin_instance_id" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdatePluginInstanceID() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdatePluginInstanceID()
	})
}

// SetChannel sets the "channel" field.
func (u *OutboxEntryUpsertOne) SetChannel(v string) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateChannel() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateChannel()
	})
}

// SetKind sets the "kind" field.
func (u *OutboxEntryUpsertOne) SetKind(v string) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateKind() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *OutboxEntryUpsertOne) SetPayload(v map[string]interface{}) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdatePayload() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *OutboxEntryUpsertOne) ClearPayload() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *OutboxEntryUpsertOne) SetStatus(v outboxentry.Status) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateStatus() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryable sets the "retryable" field.
func (u *OutboxEntryUpsertOne) SetRetryable(v bool) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetRetryable(v)
	})
}

// UpdateRetryable sets the "retryable" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateRetryable() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateRetryable()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *OutboxEntryUpsertOne) SetAttemptCount(v int) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *OutboxEntryUpsertOne) AddAttemptCount(v int) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateAttemptCount() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *OutboxEntryUpsertOne) SetNextAttemptAt(v time.Time) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateNextAttemptAt() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *OutboxEntryUpsertOne) SetClaimedBy(v string) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateClaimedBy() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *OutboxEntryUpsertOne) ClearClaimedBy() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *OutboxEntryUpsertOne) SetLeaseExpiresAt(v time.Time) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateLeaseExpiresAt() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *OutboxEntryUpsertOne) ClearLeaseExpiresAt() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (u *OutboxEntryUpsertOne) SetClaimedEpoch(v int64) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetClaimedEpoch(v)
	})
}

// AddClaimedEpoch adds v to the "claimed_epoch" field.
func (u *OutboxEntryUpsertOne) AddClaimedEpoch(v int64) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.AddClaimedEpoch(v)
	})
}

// UpdateClaimedEpoch sets the "claimed_epoch" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateClaimedEpoch() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateClaimedEpoch()
	})
}

// SetProviderRef sets the "provider_ref" field.
func (u *OutboxEntryUpsertOne) SetProviderRef(v string) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetProviderRef(v)
	})
}

// UpdateProviderRef sets the "provider_ref" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateProviderRef() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateProviderRef()
	})
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (u *OutboxEntryUpsertOne) ClearProviderRef() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearProviderRef()
	})
}

// SetLastError sets the "last_error" field.
func (u *OutboxEntryUpsertOne) SetLastError(v string) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateLastError() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *OutboxEntryUpsertOne) ClearLastError() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearLastError()
	})
}

// SetUnknownReason sets the "unknown_reason" field.
func (u *OutboxEntryUpsertOne) SetUnknownReason(v string) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetUnknownReason(v)
	})
}

// UpdateUnknownReason sets the "unknown_reason" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateUnknownReason() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateUnknownReason()
	})
}

// ClearUnknownReason clears the value of the "unknown_reason" field.
func (u *OutboxEntryUpsertOne) ClearUnknownReason() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearUnknownReason()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *OutboxEntryUpsertOne) SetSentAt(v time.Time) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateSentAt() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *OutboxEntryUpsertOne) ClearSentAt() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *OutboxEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboxEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboxEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OutboxEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OutboxEntryUpsertOne.ID is not supported by MySQL driver. Use OutboxEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OutboxEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OutboxEntryCreateBulk is the builder for creating many OutboxEntry entities in bulk.
type OutboxEntryCreateBulk struct {
	config
	err      error
	builders []*OutboxEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the OutboxEntry entities in the database.
func (_c *OutboxEntryCreateBulk) Save(ctx context.Context) ([]*OutboxEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutboxEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutboxEntryMutation)
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
func (_c *OutboxEntryCreateBulk) SaveX(ctx context.Context) []*OutboxEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboxEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboxEntryUpsert) {
//			SetEffectKey(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboxEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *OutboxEntryUpsertBulk {
	_c.conflict = opts
	return &OutboxEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboxEntryCreateBulk) OnConflictColumns(columns ...string) *OutboxEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboxEntryUpsertBulk{
		create: _c,
	}
}

// OutboxEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of OutboxEntry nodes.
type OutboxEntryUpsertBulk struct {
	create *OutboxEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outboxentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutboxEntryUpsertBulk) UpdateNewValues() *OutboxEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(outboxentry.FieldID)
			}
			if _, exists := b.mutation.EffectKey(); exists {
				s.SetIgnore(outboxentry.FieldEffectKey)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(outboxentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OutboxEntryUpsertBulk) Ignore() *OutboxEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboxEntryUpsertBulk) DoNothing() *OutboxEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboxEntryCreateBulk.OnConflict
// documentation for more info.
func (u *OutboxEntryUpsertBulk) Update(set func(*OutboxEntryUpsert)) *OutboxEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboxEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetDispatchID sets the "dispatch_id" field.
func (u *OutboxEntryUpsertBulk) SetDispatchID(v string) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetDispatchID(v)
	})
}

// UpdateDispatchID sets the "dispatch_id" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateDispatchID() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateDispatchID()
	})
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (u *OutboxEntryUpsertBulk) SetPluginInstanceID(v string) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetPluginInstanceID(v)
	})
}

// UpdatePluginInstanceID sets the "plugin_instance_id" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdatePluginInstanceID() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdatePluginInstanceID()
	})
}

// SetChannel sets the "channel" field.
func (u *OutboxEntryUpsertBulk) SetChannel(v string) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateChannel() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateChannel()
	})
}

// SetKind sets the "kind" field.
func (u *OutboxEntryUpsertBulk) SetKind(v string) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateKind() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *OutboxEntryUpsertBulk) SetPayload(v map[string]interface{}) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdatePayload() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *OutboxEntryUpsertBulk) ClearPayload() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *OutboxEntryUpsertBulk) SetStatus(v outboxentry.Status) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateStatus() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryable sets the "retryable" field.
func (u *OutboxEntryUpsertBulk) SetRetryable(v bool) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetRetryable(v)
	})
}

// UpdateRetryable sets the "retryable" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateRetryable() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateRetryable()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *OutboxEntryUpsertBulk) SetAttemptCount(v int) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *OutboxEntryUpsertBulk) AddAttemptCount(v int) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateAttemptCount() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *OutboxEntryUpsertBulk) SetNextAttemptAt(v time.Time) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateNextAttemptAt() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *OutboxEntryUpsertBulk) SetClaimedBy(v string) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateClaimedBy() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *OutboxEntryUpsertBulk) ClearClaimedBy() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *OutboxEntryUpsertBulk) SetLeaseExpiresAt(v time.Time) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateLeaseExpiresAt() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *OutboxEntryUpsertBulk) ClearLeaseExpiresAt() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (u *OutboxEntryUpsertBulk) SetClaimedEpoch(v int64) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetClaimedEpoch(v)
	})
}

// AddClaimedEpoch adds v to the "claimed_epoch" field.
func (u *OutboxEntryUpsertBulk) AddClaimedEpoch(v int64) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.AddClaimedEpoch(v)
	})
}

// UpdateClaimedEpoch sets the "claimed_epoch" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateClaimedEpoch() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateClaimedEpoch()
	})
}

// SetProviderRef sets the "provider_ref" field.
func (u *OutboxEntryUpsertBulk) SetProviderRef(v string) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetProviderRef(v)
	})
}

// UpdateProviderRef sets the "provider_ref" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateProviderRef() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateProviderRef()
	})
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (u *OutboxEntryUpsertBulk) ClearProviderRef() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearProviderRef()
	})
}

// SetLastError sets the "last_error" field.
func (u *OutboxEntryUpsertBulk) SetLastError(v string) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateLastError() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *OutboxEntryUpsertBulk) ClearLastError() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearLastError()
	})
}

// SetUnknownReason sets the "unknown_reason" field.
func (u *OutboxEntryUpsertBulk) SetUnknownReason(v string) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetUnknownReason(v)
	})
}

// UpdateUnknownReason sets the "unknown_reason" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateUnknownReason() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateUnknownReason()
	})
}

// ClearUnknownReason clears the value of the "unknown_reason" field.
func (u *OutboxEntryUpsertBulk) ClearUnknownReason() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearUnknownReason()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *OutboxEntryUpsertBulk) SetSentAt(v time.Time) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateSentAt() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *OutboxEntryUpsertBulk) ClearSentAt() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *OutboxEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OutboxEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboxEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboxEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
