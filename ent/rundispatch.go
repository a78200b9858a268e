// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/rundispatch"
)

// RunDispatch is the model entity for the RunDispatch schema.
type RunDispatch struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunKey holds the value of the "run_key" field.
	RunKey string `json:"run_key,omitempty"`
	// QueueKey holds the value of the "queue_key" field.
	QueueKey string `json:"queue_key,omitempty"`
	// WorkItemID holds the value of the "work_item_id" field.
	WorkItemID string `json:"work_item_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// SessionKey holds the value of the "session_key" field.
	SessionKey string `json:"session_key,omitempty"`
	// Status holds the value of the "status" field.
	Status rundispatch.Status `json:"status,omitempty"`
	// ControlState holds the value of the "control_state" field.
	ControlState rundispatch.ControlState `json:"control_state,omitempty"`
	// InputText holds the value of the "input_text" field.
	InputText string `json:"input_text,omitempty"`
	// CoalescedText holds the value of the "coalesced_text" field.
	CoalescedText string `json:"coalesced_text,omitempty"`
	// ResponseContext holds the value of the "response_context" field.
	ResponseContext map[string]interface{} `json:"response_context,omitempty"`
	// OutputText holds the value of the "output_text" field.
	OutputText string `json:"output_text,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// worker id of the current lease holder
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// LeaseExpiresAt holds the value of the "lease_expires_at" field.
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	// Control epoch at claim time; never decreases within a row
	ClaimedEpoch int64 `json:"claimed_epoch,omitempty"`
	// Follow-up lineage: the active dispatch this row may merge into
	ReplayOfDispatchID *string `json:"replay_of_dispatch_id,omitempty"`
	// MergedIntoDispatchID holds the value of the "merged_into_dispatch_id" field.
	MergedIntoDispatchID *string `json:"merged_into_dispatch_id,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// ScheduledAt holds the value of the "scheduled_at" field.
	ScheduledAt time.Time `json:"scheduled_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunDispatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rundispatch.FieldResponseContext:
			values[i] = new([]byte)
		case rundispatch.FieldAttemptCount, rundispatch.FieldClaimedEpoch:
			values[i] = new(sql.NullInt64)
		case rundispatch.FieldID, rundispatch.FieldRunKey, rundispatch.FieldQueueKey, rundispatch.FieldWorkItemID, rundispatch.FieldAgentID, rundispatch.FieldSessionKey, rundispatch.FieldStatus, rundispatch.FieldControlState, rundispatch.FieldInputText, rundispatch.FieldCoalescedText, rundispatch.FieldOutputText, rundispatch.FieldClaimedBy, rundispatch.FieldReplayOfDispatchID, rundispatch.FieldMergedIntoDispatchID, rundispatch.FieldLastError:
			values[i] = new(sql.NullString)
		case rundispatch.FieldLeaseExpiresAt, rundispatch.FieldScheduledAt, rundispatch.FieldStartedAt, rundispatch.FieldFinishedAt, rundispatch.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunDispatch fields.
func (_m *RunDispatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rundispatch.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rundispatch.FieldRunKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_key", values[i])
			} else if value.Valid {
				_m.RunKey = value.String
			}
		case rundispatch.FieldQueueKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue_key", values[i])
			} else if value.Valid {
				_m.QueueKey = value.String
			}
		case rundispatch.FieldWorkItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_item_id", values[i])
			} else if value.Valid {
				_m.WorkItemID = value.String
			}
		case rundispatch.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case rundispatch.FieldSessionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_key", values[i])
			} else if value.Valid {
				_m.SessionKey = value.String
			}
		case rundispatch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = rundispatch.Status(value.String)
			}
		case rundispatch.FieldControlState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field control_state", values[i])
			} else if value.Valid {
				_m.ControlState = rundispatch.ControlState(value.String)
			}
		case rundispatch.FieldInputText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_text", values[i])
			} else if value.Valid {
				_m.InputText = value.String
			}
		case rundispatch.FieldCoalescedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field coalesced_text", values[i])
			} else if value.Valid {
				_m.CoalescedText = value.String
			}
		case rundispatch.FieldResponseContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseContext); err != nil {
					return fmt.Errorf("unmarshal field response_context: %w", err)
				}
			}
		case rundispatch.FieldOutputText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_text", values[i])
			} else if value.Valid {
				_m.OutputText = value.String
			}
		case rundispatch.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case rundispatch.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case rundispatch.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = new(time.Time)
				*_m.LeaseExpiresAt = value.Time
			}
		case rundispatch.FieldClaimedEpoch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_epoch", values[i])
			} else if value.Valid {
				_m.ClaimedEpoch = value.Int64
			}
		case rundispatch.FieldReplayOfDispatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field replay_of_dispatch_id", values[i])
			} else if value.Valid {
				_m.ReplayOfDispatchID = new(string)
				*_m.ReplayOfDispatchID = value.String
			}
		case rundispatch.FieldMergedIntoDispatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merged_into_dispatch_id", values[i])
			} else if value.Valid {
				_m.MergedIntoDispatchID = new(string)
				*_m.MergedIntoDispatchID = value.String
			}
		case rundispatch.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case rundispatch.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = value.Time
			}
		case rundispatch.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case rundispatch.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case rundispatch.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RunDispatch.
// This includes values selected through modifiers, order, etc.
func (_m *RunDispatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RunDispatch.
// Note that you need to call RunDispatch.Unwrap() before calling this method if this RunDispatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunDispatch) Update() *RunDispatchUpdateOne {
	return NewRunDispatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunDispatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunDispatch) Unwrap() *RunDispatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunDispatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunDispatch) String() string {
	var builder strings.Builder
	builder.WriteString("RunDispatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_key=")
	builder.WriteString(_m.RunKey)
	builder.WriteString(", ")
	builder.WriteString("queue_key=")
	builder.WriteString(_m.QueueKey)
	builder.WriteString(", ")
	builder.WriteString("work_item_id=")
	builder.WriteString(_m.WorkItemID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("session_key=")
	builder.WriteString(_m.SessionKey)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("control_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.ControlState))
	builder.WriteString(", ")
	builder.WriteString("input_text=")
	builder.WriteString(_m.InputText)
	builder.WriteString(", ")
	builder.WriteString("coalesced_text=")
	builder.WriteString(_m.CoalescedText)
	builder.WriteString(", ")
	builder.WriteString("response_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseContext))
	builder.WriteString(", ")
	builder.WriteString("output_text=")
	builder.WriteString(_m.OutputText)
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
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
	if v := _m.ReplayOfDispatchID; v != nil {
		builder.WriteString("replay_of_dispatch_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MergedIntoDispatchID; v != nil {
		builder.WriteString("merged_into_dispatch_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("scheduled_at=")
	builder.WriteString(_m.ScheduledAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RunDispatches is a parsable slice of RunDispatch.
type RunDispatches []*RunDispatch
