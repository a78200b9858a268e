// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/routineevent"
)

// RoutineEvent is the model entity for the RoutineEvent schema.
type RoutineEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkItemID holds the value of the "work_item_id" field.
	WorkItemID string `json:"work_item_id,omitempty"`
	// Envelope holds the value of the "envelope" field.
	Envelope map[string]interface{} `json:"envelope,omitempty"`
	// Status holds the value of the "status" field.
	Status routineevent.Status `json:"status,omitempty"`
	// ClaimedBy holds the value of the "claimed_by" field.
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// LeaseExpiresAt holds the value of the "lease_expires_at" field.
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoutineEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case routineevent.FieldEnvelope:
			values[i] = new([]byte)
		case routineevent.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case routineevent.FieldID, routineevent.FieldWorkItemID, routineevent.FieldStatus, routineevent.FieldClaimedBy:
			values[i] = new(sql.NullString)
		case routineevent.FieldLeaseExpiresAt, routineevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoutineEvent fields.
func (_m *RoutineEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case routineevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case routineevent.FieldWorkItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_item_id", values[i])
			} else if value.Valid {
				_m.WorkItemID = value.String
			}
		case routineevent.FieldEnvelope:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field envelope", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Envelope); err != nil {
					return fmt.Errorf("unmarshal field envelope: %w", err)
				}
			}
		case routineevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = routineevent.Status(value.String)
			}
		case routineevent.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case routineevent.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = new(time.Time)
				*_m.LeaseExpiresAt = value.Time
			}
		case routineevent.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case routineevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RoutineEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RoutineEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RoutineEvent.
// Note that you need to call RoutineEvent.Unwrap() before calling this method if this RoutineEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoutineEvent) Update() *RoutineEventUpdateOne {
	return NewRoutineEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoutineEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoutineEvent) Unwrap() *RoutineEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoutineEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoutineEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RoutineEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("work_item_id=")
	builder.WriteString(_m.WorkItemID)
	builder.WriteString(", ")
	builder.WriteString("envelope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Envelope))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
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
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoutineEvents is a parsable slice of RoutineEvent.
type RoutineEvents []*RoutineEvent
