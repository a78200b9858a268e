// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/queuemessage"
)

// QueueMessage is the model entity for the QueueMessage schema.
type QueueMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// QueueKey holds the value of the "queue_key" field.
	QueueKey string `json:"queue_key,omitempty"`
	// WorkItemID holds the value of the "work_item_id" field.
	WorkItemID string `json:"work_item_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// SenderName holds the value of the "sender_name" field.
	SenderName string `json:"sender_name,omitempty"`
	// ArrivedAt holds the value of the "arrived_at" field.
	ArrivedAt time.Time `json:"arrived_at,omitempty"`
	// Status holds the value of the "status" field.
	Status queuemessage.Status `json:"status,omitempty"`
	// Set once the message is coalesced into a dispatch
	DispatchID   *string `json:"dispatch_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueueMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queuemessage.FieldID, queuemessage.FieldQueueKey, queuemessage.FieldWorkItemID, queuemessage.FieldText, queuemessage.FieldSenderName, queuemessage.FieldStatus, queuemessage.FieldDispatchID:
			values[i] = new(sql.NullString)
		case queuemessage.FieldArrivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueueMessage fields.
func (_m *QueueMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queuemessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case queuemessage.FieldQueueKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue_key", values[i])
			} else if value.Valid {
				_m.QueueKey = value.String
			}
		case queuemessage.FieldWorkItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_item_id", values[i])
			} else if value.Valid {
				_m.WorkItemID = value.String
			}
		case queuemessage.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case queuemessage.FieldSenderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_name", values[i])
			} else if value.Valid {
				_m.SenderName = value.String
			}
		case queuemessage.FieldArrivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field arrived_at", values[i])
			} else if value.Valid {
				_m.ArrivedAt = value.Time
			}
		case queuemessage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = queuemessage.Status(value.String)
			}
		case queuemessage.FieldDispatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dispatch_id", values[i])
			} else if value.Valid {
				_m.DispatchID = new(string)
				*_m.DispatchID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueueMessage.
// This includes values selected through modifiers, order, etc.
func (_m *QueueMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueueMessage.
// Note that you need to call QueueMessage.Unwrap() before calling this method if this QueueMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueueMessage) Update() *QueueMessageUpdateOne {
	return NewQueueMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueueMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueueMessage) Unwrap() *QueueMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueueMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueueMessage) String() string {
	var builder strings.Builder
	builder.WriteString("QueueMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("queue_key=")
	builder.WriteString(_m.QueueKey)
	builder.WriteString(", ")
	builder.WriteString("work_item_id=")
	builder.WriteString(_m.WorkItemID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("sender_name=")
	builder.WriteString(_m.SenderName)
	builder.WriteString(", ")
	builder.WriteString("arrived_at=")
	builder.WriteString(_m.ArrivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.DispatchID; v != nil {
		builder.WriteString("dispatch_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// QueueMessages is a parsable slice of QueueMessage.
type QueueMessages []*QueueMessage
