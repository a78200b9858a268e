// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/outboxentry"
)

// OutboxEntry is the model entity for the OutboxEntry schema.
type OutboxEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EffectKey holds the value of the "effect_key" field.
	EffectKey string `json:"effect_key,omitempty"`
	// DispatchID holds the value of the "dispatch_id" field.
	DispatchID string `json:"dispatch_id,omitempty"`
	// PluginInstanceID holds the value of the "plugin_instance_id" field.
	PluginInstanceID string `json:"plugin_instance_id,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel string `json:"channel,omitempty"`
	// Effect kind, e.g. 'message', 'media_post', 'api_call'
	Kind string `json:"kind,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Status holds the value of the "status" field.
	Status outboxentry.Status `json:"status,omitempty"`
	// Retryable holds the value of the "retryable" field.
	Retryable bool `json:"retryable,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// NextAttemptAt holds the value of the "next_attempt_at" field.
	NextAttemptAt time.Time `json:"next_attempt_at,omitempty"`
	// ClaimedBy holds the value of the "claimed_by" field.
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// LeaseExpiresAt holds the value of the "lease_expires_at" field.
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	// ClaimedEpoch holds the value of the "claimed_epoch" field.
	ClaimedEpoch int64 `json:"claimed_epoch,omitempty"`
	// Provider-side id of the delivered effect; exactly one per sent row
	ProviderRef *string `json:"provider_ref,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// Why the delivery outcome is unknown (send attempted, ack lost)
	UnknownReason *string `json:"unknown_reason,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt *time.Time `json:"sent_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutboxEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outboxentry.FieldPayload:
			values[i] = new([]byte)
		case outboxentry.FieldRetryable:
			values[i] = new(sql.NullBool)
		case outboxentry.FieldAttemptCount, outboxentry.FieldClaimedEpoch:
			values[i] = new(sql.NullInt64)
		case outboxentry.FieldID, outboxentry.FieldEffectKey, outboxentry.FieldDispatchID, outboxentry.FieldPluginInstanceID, outboxentry.FieldChannel, outboxentry.FieldKind, outboxentry.FieldStatus, outboxentry.FieldClaimedBy, outboxentry.FieldProviderRef, outboxentry.FieldLastError, outboxentry.FieldUnknownReason:
			values[i] = new(sql.NullString)
		case outboxentry.FieldNextAttemptAt, outboxentry.FieldLeaseExpiresAt, outboxentry.FieldSentAt, outboxentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutboxEntry fields.
func (_m *OutboxEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outboxentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case outboxentry.FieldEffectKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field effect_key", values[i])
			} else if value.Valid {
				_m.EffectKey = value.String
			}
		case outboxentry.FieldDispatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dispatch_id", values[i])
			} else if value.Valid {
				_m.DispatchID = value.String
			}
		case outboxentry.FieldPluginInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plugin_instance_id", values[i])
			} else if value.Valid {
				_m.PluginInstanceID = value.String
			}
		case outboxentry.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case outboxentry.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case outboxentry.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case outboxentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = outboxentry.Status(value.String)
			}
		case outboxentry.FieldRetryable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field retryable", values[i])
			} else if value.Valid {
				_m.Retryable = value.Bool
			}
		case outboxentry.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case outboxentry.FieldNextAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_attempt_at", values[i])
			} else if value.Valid {
				_m.NextAttemptAt = value.Time
			}
		case outboxentry.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case outboxentry.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = new(time.Time)
				*_m.LeaseExpiresAt = value.Time
			}
		case outboxentry.FieldClaimedEpoch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_epoch", values[i])
			} else if value.Valid {
				_m.ClaimedEpoch = value.Int64
			}
		case outboxentry.FieldProviderRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_ref", values[i])
			} else if value.Valid {
				_m.ProviderRef = new(string)
				*_m.ProviderRef = value.String
			}
		case outboxentry.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case outboxentry.FieldUnknownReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unknown_reason", values[i])
			} else if value.Valid {
				_m.UnknownReason = new(string)
				*_m.UnknownReason = value.String
			}
		case outboxentry.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case outboxentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OutboxEntry.
// This includes values selected through modifiers, order, etc.
func (_m *OutboxEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OutboxEntry.
// Note that you need to call OutboxEntry.Unwrap() before calling this method if this OutboxEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OutboxEntry) Update() *OutboxEntryUpdateOne {
	return NewOutboxEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OutboxEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OutboxEntry) Unwrap() *OutboxEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutboxEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OutboxEntry) String() string {
	var builder strings.Builder
	builder.WriteString("OutboxEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("effect_key=")
	builder.WriteString(_m.EffectKey)
	builder.WriteString(", ")
	builder.WriteString("dispatch_id=")
	builder.WriteString(_m.DispatchID)
	builder.WriteString(", ")
	builder.WriteString("plugin_instance_id=")
	builder.WriteString(_m.PluginInstanceID)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("retryable=")
	builder.WriteString(fmt.Sprintf("%v", _m.Retryable))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("next_attempt_at=")
	builder.WriteString(_m.NextAttemptAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeaseExpiresAt; v != nil {
		builder.WriteString("lease_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("claimed_epoch=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClaimedEpoch))
	builder.WriteString(", ")
	if v := _m.ProviderRef; v != nil {
		builder.WriteString("provider_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UnknownReason; v != nil {
		builder.WriteString("unknown_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OutboxEntries is a parsable slice of OutboxEntry.
type OutboxEntries []*OutboxEntry
