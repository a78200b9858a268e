// Code generated by ent, DO NOT EDIT.

package outboxentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the outboxentry type in the database.
	Label = "outbox_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "outbox_entry_id"
	// FieldEffectKey holds the string denoting the effect_key field in the database.
	FieldEffectKey = "effect_key"
	// FieldDispatchID holds the string denoting the dispatch_id field in the database.
	FieldDispatchID = "dispatch_id"
	// FieldPluginInstanceID holds the string denoting the plugin_instance_id field in the database.
	FieldPluginInstanceID = "plugin_instance_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRetryable holds the string denoting the retryable field in the database.
	FieldRetryable = "retryable"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldNextAttemptAt holds the string denoting the next_attempt_at field in the database.
	FieldNextAttemptAt = "next_attempt_at"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldLeaseExpiresAt holds the string denoting the lease_expires_at field in the database.
	FieldLeaseExpiresAt = "lease_expires_at"
	// FieldClaimedEpoch holds the string denoting the claimed_epoch field in the database.
	FieldClaimedEpoch = "claimed_epoch"
	// FieldProviderRef holds the string denoting the provider_ref field in the database.
	FieldProviderRef = "provider_ref"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldUnknownReason holds the string denoting the unknown_reason field in the database.
	FieldUnknownReason = "unknown_reason"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the outboxentry in the database.
	Table = "effect_outbox"
)

// Columns holds all SQL columns for outboxentry fields.
var Columns = []string{
	FieldID,
	FieldEffectKey,
	FieldDispatchID,
	FieldPluginInstanceID,
	FieldChannel,
	FieldKind,
	FieldPayload,
	FieldStatus,
	FieldRetryable,
	FieldAttemptCount,
	FieldNextAttemptAt,
	FieldClaimedBy,
	FieldLeaseExpiresAt,
	FieldClaimedEpoch,
	FieldProviderRef,
	FieldLastError,
	FieldUnknownReason,
	FieldSentAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRetryable holds the default value on creation for the "retryable" field.
	DefaultRetryable bool
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultNextAttemptAt holds the default value on creation for the "next_attempt_at" field.
	DefaultNextAttemptAt func() time.Time
	// DefaultClaimedEpoch holds the default value on creation for the "claimed_epoch" field.
	DefaultClaimedEpoch int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusSending   Status = "sending"
	StatusSent      Status = "sent"
	StatusFailed    Status = "failed"
	StatusUnknown   Status = "unknown"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusSending, StatusSent, StatusFailed, StatusUnknown, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("outboxentry: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the OutboxEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEffectKey orders the results by the effect_key field.
func ByEffectKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectKey, opts...).ToFunc()
}

// ByDispatchID orders the results by the dispatch_id field.
func ByDispatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDispatchID, opts...).ToFunc()
}

// ByPluginInstanceID orders the results by the plugin_instance_id field.
func ByPluginInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPluginInstanceID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRetryable orders the results by the retryable field.
func ByRetryable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryable, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByNextAttemptAt orders the results by the next_attempt_at field.
func ByNextAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextAttemptAt, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByLeaseExpiresAt orders the results by the lease_expires_at field.
func ByLeaseExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpiresAt, opts...).ToFunc()
}

// ByClaimedEpoch orders the results by the claimed_epoch field.
func ByClaimedEpoch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedEpoch, opts...).ToFunc()
}

// ByProviderRef orders the results by the provider_ref field.
func ByProviderRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderRef, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByUnknownReason orders the results by the unknown_reason field.
func ByUnknownReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnknownReason, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
