// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/queuelane"
)

// QueueLane is the model entity for the QueueLane schema.
type QueueLane struct {
	config `json:"-"`
	// ID of the ent.
	// session_key + ':' + agent_id
	ID string `json:"id,omitempty"`
	// SessionKey holds the value of the "session_key" field.
	SessionKey string `json:"session_key,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// 'queued' covers the in-memory debouncing state
	State queuelane.State `json:"state,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode queuelane.Mode `json:"mode,omitempty"`
	// IsPaused holds the value of the "is_paused" field.
	IsPaused bool `json:"is_paused,omitempty"`
	// DebounceUntil holds the value of the "debounce_until" field.
	DebounceUntil *time.Time `json:"debounce_until,omitempty"`
	// DebounceMs holds the value of the "debounce_ms" field.
	DebounceMs int `json:"debounce_ms,omitempty"`
	// MaxQueued holds the value of the "max_queued" field.
	MaxQueued int `json:"max_queued,omitempty"`
	// Non-nil only while a matching dispatch is running
	ActiveDispatchID *string `json:"active_dispatch_id,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueueLane) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queuelane.FieldIsPaused:
			values[i] = new(sql.NullBool)
		case queuelane.FieldDebounceMs, queuelane.FieldMaxQueued:
			values[i] = new(sql.NullInt64)
		case queuelane.FieldID, queuelane.FieldSessionKey, queuelane.FieldAgentID, queuelane.FieldState, queuelane.FieldMode, queuelane.FieldActiveDispatchID:
			values[i] = new(sql.NullString)
		case queuelane.FieldDebounceUntil, queuelane.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueueLane fields.
func (_m *QueueLane) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queuelane.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case queuelane.FieldSessionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_key", values[i])
			} else if value.Valid {
				_m.SessionKey = value.String
			}
		case queuelane.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case queuelane.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = queuelane.State(value.String)
			}
		case queuelane.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = queuelane.Mode(value.String)
			}
		case queuelane.FieldIsPaused:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_paused", values[i])
			} else if value.Valid {
				_m.IsPaused = value.Bool
			}
		case queuelane.FieldDebounceUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field debounce_until", values[i])
			} else if value.Valid {
				_m.DebounceUntil = new(time.Time)
				*_m.DebounceUntil = value.Time
			}
		case queuelane.FieldDebounceMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field debounce_ms", values[i])
			} else if value.Valid {
				_m.DebounceMs = int(value.Int64)
			}
		case queuelane.FieldMaxQueued:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_queued", values[i])
			} else if value.Valid {
				_m.MaxQueued = int(value.Int64)
			}
		case queuelane.FieldActiveDispatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_dispatch_id", values[i])
			} else if value.Valid {
				_m.ActiveDispatchID = new(string)
				*_m.ActiveDispatchID = value.String
			}
		case queuelane.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueueLane.
// This includes values selected through modifiers, order, etc.
func (_m *QueueLane) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueueLane.
// Note that you need to call QueueLane.Unwrap() before calling this method if this QueueLane
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueueLane) Update() *QueueLaneUpdateOne {
	return NewQueueLaneClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueueLane entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueueLane) Unwrap() *QueueLane {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueueLane is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueueLane) String() string {
	var builder strings.Builder
	builder.WriteString("QueueLane(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_key=")
	builder.WriteString(_m.SessionKey)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("is_paused=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPaused))
	builder.WriteString(", ")
	if v := _m.DebounceUntil; v != nil {
		builder.WriteString("debounce_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("debounce_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DebounceMs))
	builder.WriteString(", ")
	builder.WriteString("max_queued=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxQueued))
	builder.WriteString(", ")
	if v := _m.ActiveDispatchID; v != nil {
		builder.WriteString("active_dispatch_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QueueLanes is a parsable slice of QueueLane.
type QueueLanes []*QueueLane
