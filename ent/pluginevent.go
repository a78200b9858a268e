// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/pluginevent"
)

// PluginEvent is the model entity for the PluginEvent schema.
type PluginEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PluginID holds the value of the "plugin_id" field.
	PluginID string `json:"plugin_id,omitempty"`
	// PluginVersion holds the value of the "plugin_version" field.
	PluginVersion string `json:"plugin_version,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind pluginevent.Kind `json:"kind,omitempty"`
	// Outcome code, e.g. 'accepted', 'duplicate', 'timeout'
	Status string `json:"status,omitempty"`
	// WorkItemID holds the value of the "work_item_id" field.
	WorkItemID string `json:"work_item_id,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail map[string]interface{} `json:"detail,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PluginEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pluginevent.FieldDetail:
			values[i] = new([]byte)
		case pluginevent.FieldID, pluginevent.FieldPluginID, pluginevent.FieldPluginVersion, pluginevent.FieldKind, pluginevent.FieldStatus, pluginevent.FieldWorkItemID:
			values[i] = new(sql.NullString)
		case pluginevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PluginEvent fields.
func (_m *PluginEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pluginevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pluginevent.FieldPluginID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plugin_id", values[i])
			} else if value.Valid {
				_m.PluginID = value.String
			}
		case pluginevent.FieldPluginVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plugin_version", values[i])
			} else if value.Valid {
				_m.PluginVersion = value.String
			}
		case pluginevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = pluginevent.Kind(value.String)
			}
		case pluginevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case pluginevent.FieldWorkItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_item_id", values[i])
			} else if value.Valid {
				_m.WorkItemID = value.String
			}
		case pluginevent.FieldDetail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Detail); err != nil {
					return fmt.Errorf("unmarshal field detail: %w", err)
				}
			}
		case pluginevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PluginEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PluginEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PluginEvent.
// Note that you need to call PluginEvent.Unwrap() before calling this method if this PluginEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PluginEvent) Update() *PluginEventUpdateOne {
	return NewPluginEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PluginEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PluginEvent) Unwrap() *PluginEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PluginEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PluginEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PluginEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plugin_id=")
	builder.WriteString(_m.PluginID)
	builder.WriteString(", ")
	builder.WriteString("plugin_version=")
	builder.WriteString(_m.PluginVersion)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("work_item_id=")
	builder.WriteString(_m.WorkItemID)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(fmt.Sprintf("%v", _m.Detail))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PluginEvents is a parsable slice of PluginEvent.
type PluginEvents []*PluginEvent
