// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hooklinehq/hookline/ent/outboxentry"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// OutboxEntryUpdate is the builder for updating OutboxEntry entities.
type OutboxEntryUpdate struct {
	config
	hooks    []Hook
	mutation *OutboxEntryMutation
}

// Where appends a list predicates to the OutboxEntryUpdate builder.
func (_u *OutboxEntryUpdate) Where(ps ...predicate.OutboxEntry) *OutboxEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDispatchID sets the "dispatch_id" field.
func (_u *OutboxEntryUpdate) SetDispatchID(v string) *OutboxEntryUpdate {
	_u.mutation.SetDispatchID(v)
	return _u
}

// SetNillableDispatchID sets the "dispatch_id" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableDispatchID(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetDispatchID(*v)
	}
	return _u
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (_u *OutboxEntryUpdate) SetPluginInstanceID(v string) *OutboxEntryUpdate {
	_u.mutation.SetPluginInstanceID(v)
	return _u
}

// SetNillablePluginInstanceID sets the "plugin_instance_id" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillablePluginInstanceID(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetPluginInstanceID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *OutboxEntryUpdate) SetChannel(v string) *OutboxEntryUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableChannel(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *OutboxEntryUpdate) SetKind(v string) *OutboxEntryUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableKind(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxEntryUpdate) SetPayload(v map[string]interface{}) *OutboxEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *OutboxEntryUpdate) ClearPayload() *OutboxEntryUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutboxEntryUpdate) SetStatus(v outboxentry.Status) *OutboxEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableStatus(v *outboxentry.Status) *OutboxEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryable sets the "retryable" field.
func (_u *OutboxEntryUpdate) SetRetryable(v bool) *OutboxEntryUpdate {
	_u.mutation.SetRetryable(v)
	return _u
}

// SetNillableRetryable sets the "retryable" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableRetryable(v *bool) *OutboxEntryUpdate {
	if v != nil {
		_u.SetRetryable(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *OutboxEntryUpdate) SetAttemptCount(v int) *OutboxEntryUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableAttemptCount(v *int) *OutboxEntryUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *OutboxEntryUpdate) AddAttemptCount(v int) *OutboxEntryUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *OutboxEntryUpdate) SetNextAttemptAt(v time.Time) *OutboxEntryUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableNextAttemptAt(v *time.Time) *OutboxEntryUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *OutboxEntryUpdate) SetClaimedBy(v string) *OutboxEntryUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableClaimedBy(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *OutboxEntryUpdate) ClearClaimedBy() *OutboxEntryUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *OutboxEntryUpdate) SetLeaseExpiresAt(v time.Time) *OutboxEntryUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableLeaseExpiresAt(v *time.Time) *OutboxEntryUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *OutboxEntryUpdate) ClearLeaseExpiresAt() *OutboxEntryUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (_u *OutboxEntryUpdate) SetClaimedEpoch(v int64) *OutboxEntryUpdate {
	_u.mutation.ResetClaimedEpoch()
	_u.mutation.SetClaimedEpoch(v)
	return _u
}

// SetNillableClaimedEpoch sets the "claimed_epoch" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableClaimedEpoch(v *int64) *OutboxEntryUpdate {
	if v != nil {
		_u.SetClaimedEpoch(*v)
	}
	return _u
}

// AddClaimedEpoch adds value to the "claimed_epoch" field.
func (_u *OutboxEntryUpdate) AddClaimedEpoch(v int64) *OutboxEntryUpdate {
	_u.mutation.AddClaimedEpoch(v)
	return _u
}

// SetProviderRef sets the "provider_ref" field.
func (_u *OutboxEntryUpdate) SetProviderRef(v string) *OutboxEntryUpdate {
	_u.mutation.SetProviderRef(v)
	return _u
}

// SetNillableProviderRef sets the "provider_ref" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableProviderRef(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetProviderRef(*v)
	}
	return _u
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (_u *OutboxEntryUpdate) ClearProviderRef() *OutboxEntryUpdate {
	_u.mutation.ClearProviderRef()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutboxEntryUpdate) SetLastError(v string) *OutboxEntryUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableLastError(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutboxEntryUpdate) ClearLastError() *OutboxEntryUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUnknownReason sets the "unknown_reason" field.
func (_u *OutboxEntryUpdate) SetUnknownReason(v string) *OutboxEntryUpdate {
	_u.mutation.SetUnknownReason(v)
	return _u
}

// SetNillableUnknownReason sets the "unknown_reason" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableUnknownReason(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetUnknownReason(*v)
	}
	return _u
}

// ClearUnknownReason clears the value of the "unknown_reason" field.
func (_u *OutboxEntryUpdate) ClearUnknownReason() *OutboxEntryUpdate {
	_u.mutation.ClearUnknownReason()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *OutboxEntryUpdate) SetSentAt(v time.Time) *OutboxEntryUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableSentAt(v *time.Time) *OutboxEntryUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *OutboxEntryUpdate) ClearSentAt() *OutboxEntryUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_u *OutboxEntryUpdate) Mutation() *OutboxEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutboxEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutboxEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxEntryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := outboxentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *OutboxEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxentry.Table, outboxentry.Columns, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DispatchID(); ok {
		_spec.SetField(outboxentry.FieldDispatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PluginInstanceID(); ok {
		_spec.SetField(outboxentry.FieldPluginInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(outboxentry.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(outboxentry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxentry.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(outboxentry.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outboxentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Retryable(); ok {
		_spec.SetField(outboxentry.FieldRetryable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(outboxentry.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(outboxentry.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(outboxentry.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(outboxentry.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(outboxentry.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(outboxentry.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(outboxentry.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedEpoch(); ok {
		_spec.SetField(outboxentry.FieldClaimedEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClaimedEpoch(); ok {
		_spec.AddField(outboxentry.FieldClaimedEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProviderRef(); ok {
		_spec.SetField(outboxentry.FieldProviderRef, field.TypeString, value)
	}
	if _u.mutation.ProviderRefCleared() {
		_spec.ClearField(outboxentry.FieldProviderRef, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outboxentry.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outboxentry.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UnknownReason(); ok {
		_spec.SetField(outboxentry.FieldUnknownReason, field.TypeString, value)
	}
	if _u.mutation.UnknownReasonCleared() {
		_spec.ClearField(outboxentry.FieldUnknownReason, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(outboxentry.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(outboxentry.FieldSentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutboxEntryUpdateOne is the builder for updating a single OutboxEntry entity.
type OutboxEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutboxEntryMutation
}

// SetDispatchID sets the "dispatch_id" field.
func (_u *OutboxEntryUpdateOne) SetDispatchID(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetDispatchID(v)
	return _u
}

// SetNillableDispatchID sets the "dispatch_id" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableDispatchID(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetDispatchID(*v)
	}
	return _u
}

// SetPluginInstanceID sets the "plugin_instance_id" field.
func (_u *OutboxEntryUpdateOne) SetPluginInstanceID(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetPluginInstanceID(v)
	return _u
}

// SetNillablePluginInstanceID sets the "plugin_instance_id" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillablePluginInstanceID(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetPluginInstanceID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *OutboxEntryUpdateOne) SetChannel(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableChannel(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *OutboxEntryUpdateOne) SetKind(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableKind(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxEntryUpdateOne) SetPayload(v map[string]interface{}) *OutboxEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *OutboxEntryUpdateOne) ClearPayload() *OutboxEntryUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutboxEntryUpdateOne) SetStatus(v outboxentry.Status) *OutboxEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableStatus(v *outboxentry.Status) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryable sets the "retryable" field.
func (_u *OutboxEntryUpdateOne) SetRetryable(v bool) *OutboxEntryUpdateOne {
	_u.mutation.SetRetryable(v)
	return _u
}

// SetNillableRetryable sets the "retryable" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableRetryable(v *bool) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetRetryable(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *OutboxEntryUpdateOne) SetAttemptCount(v int) *OutboxEntryUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableAttemptCount(v *int) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *OutboxEntryUpdateOne) AddAttemptCount(v int) *OutboxEntryUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *OutboxEntryUpdateOne) SetNextAttemptAt(v time.Time) *OutboxEntryUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableNextAttemptAt(v *time.Time) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *OutboxEntryUpdateOne) SetClaimedBy(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableClaimedBy(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *OutboxEntryUpdateOne) ClearClaimedBy() *OutboxEntryUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *OutboxEntryUpdateOne) SetLeaseExpiresAt(v time.Time) *OutboxEntryUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *OutboxEntryUpdateOne) ClearLeaseExpiresAt() *OutboxEntryUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetClaimedEpoch sets the "claimed_epoch" field.
func (_u *OutboxEntryUpdateOne) SetClaimedEpoch(v int64) *OutboxEntryUpdateOne {
	_u.mutation.ResetClaimedEpoch()
	_u.mutation.SetClaimedEpoch(v)
	return _u
}

// SetNillableClaimedEpoch sets the "claimed_epoch" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableClaimedEpoch(v *int64) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetClaimedEpoch(*v)
	}
	return _u
}

// AddClaimedEpoch adds value to the "claimed_epoch" field.
func (_u *OutboxEntryUpdateOne) AddClaimedEpoch(v int64) *OutboxEntryUpdateOne {
	_u.mutation.AddClaimedEpoch(v)
	return _u
}

// SetProviderRef sets the "provider_ref" field.
func (_u *OutboxEntryUpdateOne) SetProviderRef(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetProviderRef(v)
	return _u
}

// SetNillableProviderRef sets the "provider_ref" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableProviderRef(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetProviderRef(*v)
	}
	return _u
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (_u *OutboxEntryUpdateOne) ClearProviderRef() *OutboxEntryUpdateOne {
	_u.mutation.ClearProviderRef()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutboxEntryUpdateOne) SetLastError(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableLastError(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutboxEntryUpdateOne) ClearLastError() *OutboxEntryUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUnknownReason sets the "unknown_reason" field.
func (_u *OutboxEntryUpdateOne) SetUnknownReason(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetUnknownReason(v)
	return _u
}

// SetNillableUnknownReason sets the "unknown_reason" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableUnknownReason(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetUnknownReason(*v)
	}
	return _u
}

// ClearUnknownReason clears the value of the "unknown_reason" field.
func (_u *OutboxEntryUpdateOne) ClearUnknownReason() *OutboxEntryUpdateOne {
	_u.mutation.ClearUnknownReason()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *OutboxEntryUpdateOne) SetSentAt(v time.Time) *OutboxEntryUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableSentAt(v *time.Time) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *OutboxEntryUpdateOne) ClearSentAt() *OutboxEntryUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_u *OutboxEntryUpdateOne) Mutation() *OutboxEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutboxEntryUpdate builder.
func (_u *OutboxEntryUpdateOne) Where(ps ...predicate.OutboxEntry) *OutboxEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutboxEntryUpdateOne) Select(field string, fields ...string) *OutboxEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutboxEntry entity.
func (_u *OutboxEntryUpdateOne) Save(ctx context.Context) (*OutboxEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxEntryUpdateOne) SaveX(ctx context.Context) *OutboxEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutboxEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := outboxentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *OutboxEntryUpdateOne) sqlSave(ctx context.Context) (_node *OutboxEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxentry.Table, outboxentry.Columns, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutboxEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outboxentry.FieldID)
		for _, f := range fields {
			if !outboxentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outboxentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DispatchID(); ok {
		_spec.SetField(outboxentry.FieldDispatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PluginInstanceID(); ok {
		_spec.SetField(outboxentry.FieldPluginInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(outboxentry.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(outboxentry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxentry.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(outboxentry.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outboxentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Retryable(); ok {
		_spec.SetField(outboxentry.FieldRetryable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(outboxentry.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(outboxentry.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(outboxentry.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(outboxentry.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(outboxentry.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(outboxentry.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(outboxentry.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedEpoch(); ok {
		_spec.SetField(outboxentry.FieldClaimedEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClaimedEpoch(); ok {
		_spec.AddField(outboxentry.FieldClaimedEpoch, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProviderRef(); ok {
		_spec.SetField(outboxentry.FieldProviderRef, field.TypeString, value)
	}
	if _u.mutation.ProviderRefCleared() {
		_spec.ClearField(outboxentry.FieldProviderRef, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outboxentry.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outboxentry.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UnknownReason(); ok {
		_spec.SetField(outboxentry.FieldUnknownReason, field.TypeString, value)
	}
	if _u.mutation.UnknownReasonCleared() {
		_spec.ClearField(outboxentry.FieldUnknownReason, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(outboxentry.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(outboxentry.FieldSentAt, field.TypeTime)
	}
	_node = &OutboxEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
