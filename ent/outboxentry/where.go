// Code generated by ent, DO NOT EDIT.

package outboxentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldID, id))
}

// EffectKey applies equality check predicate on the "effect_key" field. It's identical to EffectKeyEQ.
func EffectKey(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldEffectKey, v))
}

// DispatchID applies equality check predicate on the "dispatch_id" field. It's identical to DispatchIDEQ.
func DispatchID(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldDispatchID, v))
}

// PluginInstanceID applies equality check predicate on the "plugin_instance_id" field. It's identical to PluginInstanceIDEQ.
func PluginInstanceID(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldPluginInstanceID, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldChannel, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldKind, v))
}

// Retryable applies equality check predicate on the "retryable" field. It's identical to RetryableEQ.
func Retryable(v bool) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldRetryable, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldAttemptCount, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldNextAttemptAt, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldClaimedBy, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// ClaimedEpoch applies equality check predicate on the "claimed_epoch" field. It's identical to ClaimedEpochEQ.
func ClaimedEpoch(v int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldClaimedEpoch, v))
}

// ProviderRef applies equality check predicate on the "provider_ref" field. It's identical to ProviderRefEQ.
func ProviderRef(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldProviderRef, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldLastError, v))
}

// UnknownReason applies equality check predicate on the "unknown_reason" field. It's identical to UnknownReasonEQ.
func UnknownReason(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldUnknownReason, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldSentAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// EffectKeyEQ applies the EQ predicate on the "effect_key" field.
func EffectKeyEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldEffectKey, v))
}

// EffectKeyNEQ applies the NEQ predicate on the "effect_key" field.
func EffectKeyNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldEffectKey, v))
}

// EffectKeyIn applies the In predicate on the "effect_key" field.
func EffectKeyIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldEffectKey, vs...))
}

// EffectKeyNotIn applies the NotIn predicate on the "effect_key" field.
func EffectKeyNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldEffectKey, vs...))
}

// EffectKeyGT applies the GT predicate on the "effect_key" field.
func EffectKeyGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldEffectKey, v))
}

// EffectKeyGTE applies the GTE predicate on the "effect_key" field.
func EffectKeyGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldEffectKey, v))
}

// EffectKeyLT applies the LT predicate on the "effect_key" field.
func EffectKeyLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldEffectKey, v))
}

// EffectKeyLTE applies the LTE predicate on the "effect_key" field.
func EffectKeyLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldEffectKey, v))
}

// EffectKeyContains applies the Contains predicate on the "effect_key" field.
func EffectKeyContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldEffectKey, v))
}

// EffectKeyHasPrefix applies the HasPrefix predicate on the "effect_key" field.
func EffectKeyHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldEffectKey, v))
}

// EffectKeyHasSuffix applies the HasSuffix predicate on the "effect_key" field.
func EffectKeyHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldEffectKey, v))
}

// EffectKeyEqualFold applies the EqualFold predicate on the "effect_key" field.
func EffectKeyEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldEffectKey, v))
}

// EffectKeyContainsFold applies the ContainsFold predicate on the "effect_key" field.
func EffectKeyContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldEffectKey, v))
}

// DispatchIDEQ applies the EQ predicate on the "dispatch_id" field.
func DispatchIDEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldDispatchID, v))
}

// DispatchIDNEQ applies the NEQ predicate on the "dispatch_id" field.
func DispatchIDNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldDispatchID, v))
}

// DispatchIDIn applies the In predicate on the "dispatch_id" field.
func DispatchIDIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldDispatchID, vs...))
}

// DispatchIDNotIn applies the NotIn predicate on the "dispatch_id" field.
func DispatchIDNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldDispatchID, vs...))
}

// DispatchIDGT applies the GT predicate on the "dispatch_id" field.
func DispatchIDGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldDispatchID, v))
}

// DispatchIDGTE applies the GTE predicate on the "dispatch_id" field.
func DispatchIDGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldDispatchID, v))
}

// DispatchIDLT applies the LT predicate on the "dispatch_id" field.
func DispatchIDLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldDispatchID, v))
}

// DispatchIDLTE applies the LTE predicate on the "dispatch_id" field.
func DispatchIDLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldDispatchID, v))
}

// DispatchIDContains applies the Contains predicate on the "dispatch_id" field.
func DispatchIDContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldDispatchID, v))
}

// DispatchIDHasPrefix applies the HasPrefix predicate on the "dispatch_id" field.
func DispatchIDHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldDispatchID, v))
}

// DispatchIDHasSuffix applies the HasSuffix predicate on the "dispatch_id" field.
func DispatchIDHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldDispatchID, v))
}

// DispatchIDEqualFold applies the EqualFold predicate on the "dispatch_id" field.
func DispatchIDEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldDispatchID, v))
}

// DispatchIDContainsFold applies the ContainsFold predicate on the "dispatch_id" field.
func DispatchIDContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldDispatchID, v))
}

// PluginInstanceIDEQ applies the EQ predicate on the "plugin_instance_id" field.
func PluginInstanceIDEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldPluginInstanceID, v))
}

// PluginInstanceIDNEQ applies the NEQ predicate on the "plugin_instance_id" field.
func PluginInstanceIDNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldPluginInstanceID, v))
}

// PluginInstanceIDIn applies the In predicate on the "plugin_instance_id" field.
func PluginInstanceIDIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldPluginInstanceID, vs...))
}

// PluginInstanceIDNotIn applies the NotIn predicate on the "plugin_instance_id" field.
func PluginInstanceIDNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldPluginInstanceID, vs...))
}

// PluginInstanceIDGT applies the GT predicate on the "plugin_instance_id" field.
func PluginInstanceIDGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldPluginInstanceID, v))
}

// PluginInstanceIDGTE applies the GTE predicate on the "plugin_instance_id" field.
func PluginInstanceIDGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldPluginInstanceID, v))
}

// PluginInstanceIDLT applies the LT predicate on the "plugin_instance_id" field.
func PluginInstanceIDLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldPluginInstanceID, v))
}

// PluginInstanceIDLTE applies the LTE predicate on the "plugin_instance_id" field.
func PluginInstanceIDLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldPluginInstanceID, v))
}

// PluginInstanceIDContains applies the Contains predicate on the "plugin_instance_id" field.
func PluginInstanceIDContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldPluginInstanceID, v))
}

// PluginInstanceIDHasPrefix applies the HasPrefix predicate on the "plugin_instance_id" field.
func PluginInstanceIDHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldPluginInstanceID, v))
}

// PluginInstanceIDHasSuffix applies the HasSuffix predicate on the "plugin_instance_id" field.
func PluginInstanceIDHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldPluginInstanceID, v))
}

// PluginInstanceIDEqualFold applies the EqualFold predicate on the "plugin_instance_id" field.
func PluginInstanceIDEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldPluginInstanceID, v))
}

// PluginInstanceIDContainsFold applies the ContainsFold predicate on the "plugin_instance_id" field.
func PluginInstanceIDContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldPluginInstanceID, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldChannel, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldKind, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldPayload))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// RetryableEQ applies the EQ predicate on the "retryable" field.
func RetryableEQ(v bool) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldRetryable, v))
}

// RetryableNEQ applies the NEQ predicate on the "retryable" field.
func RetryableNEQ(v bool) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldRetryable, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldAttemptCount, v))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldNextAttemptAt, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldClaimedBy, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// ClaimedEpochEQ applies the EQ predicate on the "claimed_epoch" field.
func ClaimedEpochEQ(v int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldClaimedEpoch, v))
}

// ClaimedEpochNEQ applies the NEQ predicate on the "claimed_epoch" field.
func ClaimedEpochNEQ(v int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldClaimedEpoch, v))
}

// ClaimedEpochIn applies the In predicate on the "claimed_epoch" field.
func ClaimedEpochIn(vs ...int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldClaimedEpoch, vs...))
}

// ClaimedEpochNotIn applies the NotIn predicate on the "claimed_epoch" field.
func ClaimedEpochNotIn(vs ...int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldClaimedEpoch, vs...))
}

// ClaimedEpochGT applies the GT predicate on the "claimed_epoch" field.
func ClaimedEpochGT(v int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldClaimedEpoch, v))
}

// ClaimedEpochGTE applies the GTE predicate on the "claimed_epoch" field.
func ClaimedEpochGTE(v int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldClaimedEpoch, v))
}

// ClaimedEpochLT applies the LT predicate on the "claimed_epoch" field.
func ClaimedEpochLT(v int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldClaimedEpoch, v))
}

// ClaimedEpochLTE applies the LTE predicate on the "claimed_epoch" field.
func ClaimedEpochLTE(v int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldClaimedEpoch, v))
}

// ProviderRefEQ applies the EQ predicate on the "provider_ref" field.
func ProviderRefEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldProviderRef, v))
}

// ProviderRefNEQ applies the NEQ predicate on the "provider_ref" field.
func ProviderRefNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldProviderRef, v))
}

// ProviderRefIn applies the In predicate on the "provider_ref" field.
func ProviderRefIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldProviderRef, vs...))
}

// ProviderRefNotIn applies the NotIn predicate on the "provider_ref" field.
func ProviderRefNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldProviderRef, vs...))
}

// ProviderRefGT applies the GT predicate on the "provider_ref" field.
func ProviderRefGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldProviderRef, v))
}

// ProviderRefGTE applies the GTE predicate on the "provider_ref" field.
func ProviderRefGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldProviderRef, v))
}

// ProviderRefLT applies the LT predicate on the "provider_ref" field.
func ProviderRefLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldProviderRef, v))
}

// ProviderRefLTE applies the LTE predicate on the "provider_ref" field.
func ProviderRefLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldProviderRef, v))
}

// ProviderRefContains applies the Contains predicate on the "provider_ref" field.
func ProviderRefContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldProviderRef, v))
}

// ProviderRefHasPrefix applies the HasPrefix predicate on the "provider_ref" field.
func ProviderRefHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldProviderRef, v))
}

// ProviderRefHasSuffix applies the HasSuffix predicate on the "provider_ref" field.
func ProviderRefHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldProviderRef, v))
}

// ProviderRefIsNil applies the IsNil predicate on the "provider_ref" field.
func ProviderRefIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldProviderRef))
}

// ProviderRefNotNil applies the NotNil predicate on the "provider_ref" field.
func ProviderRefNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldProviderRef))
}

// ProviderRefEqualFold applies the EqualFold predicate on the "provider_ref" field.
func ProviderRefEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldProviderRef, v))
}

// ProviderRefContainsFold applies the ContainsFold predicate on the "provider_ref" field.
func ProviderRefContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldProviderRef, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldLastError, v))
}

// UnknownReasonEQ applies the EQ predicate on the "unknown_reason" field.
func UnknownReasonEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldUnknownReason, v))
}

// UnknownReasonNEQ applies the NEQ predicate on the "unknown_reason" field.
func UnknownReasonNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldUnknownReason, v))
}

// UnknownReasonIn applies the In predicate on the "unknown_reason" field.
func UnknownReasonIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldUnknownReason, vs...))
}

// UnknownReasonNotIn applies the NotIn predicate on the "unknown_reason" field.
func UnknownReasonNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldUnknownReason, vs...))
}

// UnknownReasonGT applies the GT predicate on the "unknown_reason" field.
func UnknownReasonGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldUnknownReason, v))
}

// UnknownReasonGTE applies the GTE predicate on the "unknown_reason" field.
func UnknownReasonGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldUnknownReason, v))
}

// UnknownReasonLT applies the LT predicate on the "unknown_reason" field.
func UnknownReasonLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldUnknownReason, v))
}

// UnknownReasonLTE applies the LTE predicate on the "unknown_reason" field.
func UnknownReasonLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldUnknownReason, v))
}

// UnknownReasonContains applies the Contains predicate on the "unknown_reason" field.
func UnknownReasonContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldUnknownReason, v))
}

// UnknownReasonHasPrefix applies the HasPrefix predicate on the "unknown_reason" field.
func UnknownReasonHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldUnknownReason, v))
}

// UnknownReasonHasSuffix applies the HasSuffix predicate on the "unknown_reason" field.
func UnknownReasonHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldUnknownReason, v))
}

// UnknownReasonIsNil applies the IsNil predicate on the "unknown_reason" field.
func UnknownReasonIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldUnknownReason))
}

// UnknownReasonNotNil applies the NotNil predicate on the "unknown_reason" field.
func UnknownReasonNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldUnknownReason))
}

// UnknownReasonEqualFold applies the EqualFold predicate on the "unknown_reason" field.
func UnknownReasonEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldUnknownReason, v))
}

// UnknownReasonContainsFold applies the ContainsFold predicate on the "unknown_reason" field.
func UnknownReasonContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldUnknownReason, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldSentAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.NotPredicates(p))
}
