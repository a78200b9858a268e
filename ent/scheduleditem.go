// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/scheduleditem"
)

// ScheduledItem is the model entity for the ScheduledItem schema.
type ScheduledItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// SessionKey holds the value of the "session_key" field.
	SessionKey string `json:"session_key,omitempty"`
	// Type holds the value of the "type" field.
	Type scheduleditem.Type `json:"type,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// RunAt holds the value of the "run_at" field.
	RunAt time.Time `json:"run_at,omitempty"`
	// Cron expression for recurring items; empty for one-shots
	Recurrence string `json:"recurrence,omitempty"`
	// Status holds the value of the "status" field.
	Status scheduleditem.Status `json:"status,omitempty"`
	// RoutineID holds the value of the "routine_id" field.
	RoutineID string `json:"routine_id,omitempty"`
	// RoutineRunID holds the value of the "routine_run_id" field.
	RoutineRunID string `json:"routine_run_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduleditem.FieldPayload:
			values[i] = new([]byte)
		case scheduleditem.FieldID, scheduleditem.FieldAgentID, scheduleditem.FieldSessionKey, scheduleditem.FieldType, scheduleditem.FieldRecurrence, scheduleditem.FieldStatus, scheduleditem.FieldRoutineID, scheduleditem.FieldRoutineRunID:
			values[i] = new(sql.NullString)
		case scheduleditem.FieldRunAt, scheduleditem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledItem fields.
func (_m *ScheduledItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduleditem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scheduleditem.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case scheduleditem.FieldSessionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_key", values[i])
			} else if value.Valid {
				_m.SessionKey = value.String
			}
		case scheduleditem.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = scheduleditem.Type(value.String)
			}
		case scheduleditem.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case scheduleditem.FieldRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field run_at", values[i])
			} else if value.Valid {
				_m.RunAt = value.Time
			}
		case scheduleditem.FieldRecurrence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence", values[i])
			} else if value.Valid {
				_m.Recurrence = value.String
			}
		case scheduleditem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scheduleditem.Status(value.String)
			}
		case scheduleditem.FieldRoutineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field routine_id", values[i])
			} else if value.Valid {
				_m.RoutineID = value.String
			}
		case scheduleditem.FieldRoutineRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field routine_run_id", values[i])
			} else if value.Valid {
				_m.RoutineRunID = value.String
			}
		case scheduleditem.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledItem.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduledItem.
// Note that you need to call ScheduledItem.Unwrap() before calling this method if this ScheduledItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledItem) Update() *ScheduledItemUpdateOne {
	return NewScheduledItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledItem) Unwrap() *ScheduledItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledItem) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("session_key=")
	builder.WriteString(_m.SessionKey)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("run_at=")
	builder.WriteString(_m.RunAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("recurrence=")
	builder.WriteString(_m.Recurrence)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("routine_id=")
	builder.WriteString(_m.RoutineID)
	builder.WriteString(", ")
	builder.WriteString("routine_run_id=")
	builder.WriteString(_m.RoutineRunID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledItems is a parsable slice of ScheduledItem.
type ScheduledItems []*ScheduledItem
