// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/runtimecontrol"
)

// RuntimeControl is the model entity for the RuntimeControl schema.
type RuntimeControl struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProcessingEnabled holds the value of the "processing_enabled" field.
	ProcessingEnabled bool `json:"processing_enabled,omitempty"`
	// PauseMode holds the value of the "pause_mode" field.
	PauseMode runtimecontrol.PauseMode `json:"pause_mode,omitempty"`
	// PauseReason holds the value of the "pause_reason" field.
	PauseReason string `json:"pause_reason,omitempty"`
	// ControlEpoch holds the value of the "control_epoch" field.
	ControlEpoch int64 `json:"control_epoch,omitempty"`
	// MaxConcurrentDispatches holds the value of the "max_concurrent_dispatches" field.
	MaxConcurrentDispatches int `json:"max_concurrent_dispatches,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RuntimeControl) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runtimecontrol.FieldProcessingEnabled:
			values[i] = new(sql.NullBool)
		case runtimecontrol.FieldControlEpoch, runtimecontrol.FieldMaxConcurrentDispatches:
			values[i] = new(sql.NullInt64)
		case runtimecontrol.FieldID, runtimecontrol.FieldPauseMode, runtimecontrol.FieldPauseReason:
			values[i] = new(sql.NullString)
		case runtimecontrol.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RuntimeControl fields.
func (_m *RuntimeControl) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runtimecontrol.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case runtimecontrol.FieldProcessingEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field processing_enabled", values[i])
			} else if value.Valid {
				_m.ProcessingEnabled = value.Bool
			}
		case runtimecontrol.FieldPauseMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pause_mode", values[i])
			} else if value.Valid {
				_m.PauseMode = runtimecontrol.PauseMode(value.String)
			}
		case runtimecontrol.FieldPauseReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pause_reason", values[i])
			} else if value.Valid {
				_m.PauseReason = value.String
			}
		case runtimecontrol.FieldControlEpoch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field control_epoch", values[i])
			} else if value.Valid {
				_m.ControlEpoch = value.Int64
			}
		case runtimecontrol.FieldMaxConcurrentDispatches:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_concurrent_dispatches", values[i])
			} else if value.Valid {
				_m.MaxConcurrentDispatches = int(value.Int64)
			}
		case runtimecontrol.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RuntimeControl.
// This includes values selected through modifiers, order, etc.
func (_m *RuntimeControl) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RuntimeControl.
// Note that you need to call RuntimeControl.Unwrap() before calling this method if this RuntimeControl
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RuntimeControl) Update() *RuntimeControlUpdateOne {
	return NewRuntimeControlClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RuntimeControl entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RuntimeControl) Unwrap() *RuntimeControl {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RuntimeControl is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RuntimeControl) String() string {
	var builder strings.Builder
	builder.WriteString("RuntimeControl(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("processing_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingEnabled))
	builder.WriteString(", ")
	builder.WriteString("pause_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.PauseMode))
	builder.WriteString(", ")
	builder.WriteString("pause_reason=")
	builder.WriteString(_m.PauseReason)
	builder.WriteString(", ")
	builder.WriteString("control_epoch=")
	builder.WriteString(fmt.Sprintf("%v", _m.ControlEpoch))
	builder.WriteString(", ")
	builder.WriteString("max_concurrent_dispatches=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxConcurrentDispatches))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RuntimeControls is a parsable slice of RuntimeControl.
type RuntimeControls []*RuntimeControl
