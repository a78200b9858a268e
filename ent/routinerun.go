// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/routinerun"
)

// RoutineRun is the model entity for the RoutineRun schema.
type RoutineRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RoutineID holds the value of the "routine_id" field.
	RoutineID string `json:"routine_id,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision routinerun.Decision `json:"decision,omitempty"`
	// DecisionReason holds the value of the "decision_reason" field.
	DecisionReason string `json:"decision_reason,omitempty"`
	// Envelope holds the value of the "envelope" field.
	Envelope map[string]interface{} `json:"envelope,omitempty"`
	// ScheduledItemID holds the value of the "scheduled_item_id" field.
	ScheduledItemID string `json:"scheduled_item_id,omitempty"`
	// WorkItemID holds the value of the "work_item_id" field.
	WorkItemID string `json:"work_item_id,omitempty"`
	// DispatchID holds the value of the "dispatch_id" field.
	DispatchID string `json:"dispatch_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoutineRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case routinerun.FieldEnvelope:
			values[i] = new([]byte)
		case routinerun.FieldID, routinerun.FieldRoutineID, routinerun.FieldDecision, routinerun.FieldDecisionReason, routinerun.FieldScheduledItemID, routinerun.FieldWorkItemID, routinerun.FieldDispatchID:
			values[i] = new(sql.NullString)
		case routinerun.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoutineRun fields.
func (_m *RoutineRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case routinerun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case routinerun.FieldRoutineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field routine_id", values[i])
			} else if value.Valid {
				_m.RoutineID = value.String
			}
		case routinerun.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = routinerun.Decision(value.String)
			}
		case routinerun.FieldDecisionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_reason", values[i])
			} else if value.Valid {
				_m.DecisionReason = value.String
			}
		case routinerun.FieldEnvelope:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field envelope", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Envelope); err != nil {
					return fmt.Errorf("unmarshal field envelope: %w", err)
				}
			}
		case routinerun.FieldScheduledItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_item_id", values[i])
			} else if value.Valid {
				_m.ScheduledItemID = value.String
			}
		case routinerun.FieldWorkItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_item_id", values[i])
			} else if value.Valid {
				_m.WorkItemID = value.String
			}
		case routinerun.FieldDispatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dispatch_id", values[i])
			} else if value.Valid {
				_m.DispatchID = value.String
			}
		case routinerun.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RoutineRun.
// This includes values selected through modifiers, order, etc.
func (_m *RoutineRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RoutineRun.
// Note that you need to call RoutineRun.Unwrap() before calling this method if this RoutineRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoutineRun) Update() *RoutineRunUpdateOne {
	return NewRoutineRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoutineRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoutineRun) Unwrap() *RoutineRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoutineRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoutineRun) String() string {
	var builder strings.Builder
	builder.WriteString("RoutineRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("routine_id=")
	builder.WriteString(_m.RoutineID)
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("decision_reason=")
	builder.WriteString(_m.DecisionReason)
	builder.WriteString(", ")
	builder.WriteString("envelope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Envelope))
	builder.WriteString(", ")
	builder.WriteString("scheduled_item_id=")
	builder.WriteString(_m.ScheduledItemID)
	builder.WriteString(", ")
	builder.WriteString("work_item_id=")
	builder.WriteString(_m.WorkItemID)
	builder.WriteString(", ")
	builder.WriteString("dispatch_id=")
	builder.WriteString(_m.DispatchID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoutineRuns is a parsable slice of RoutineRun.
type RoutineRuns []*RoutineRun
