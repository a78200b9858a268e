// Code generated by ent, DO NOT EDIT.

package queuemessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queuemessage type in the database.
	Label = "queue_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "queue_message_id"
	// FieldQueueKey holds the string denoting the queue_key field in the database.
	FieldQueueKey = "queue_key"
	// FieldWorkItemID holds the string denoting the work_item_id field in the database.
	FieldWorkItemID = "work_item_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldSenderName holds the string denoting the sender_name field in the database.
	FieldSenderName = "sender_name"
	// FieldArrivedAt holds the string denoting the arrived_at field in the database.
	FieldArrivedAt = "arrived_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDispatchID holds the string denoting the dispatch_id field in the database.
	FieldDispatchID = "dispatch_id"
	// Table holds the table name of the queuemessage in the database.
	Table = "queue_messages"
)

// Columns holds all SQL columns for queuemessage fields.
var Columns = []string{
	FieldID,
	FieldQueueKey,
	FieldWorkItemID,
	FieldText,
	FieldSenderName,
	FieldArrivedAt,
	FieldStatus,
	FieldDispatchID,
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
	// DefaultArrivedAt holds the default value on creation for the "arrived_at" field.
	DefaultArrivedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusIncluded  Status = "included"
	StatusDropped   Status = "dropped"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusIncluded, StatusDropped, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("queuemessage: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the QueueMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQueueKey orders the results by the queue_key field.
func ByQueueKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueKey, opts...).ToFunc()
}

// ByWorkItemID orders the results by the work_item_id field.
func ByWorkItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkItemID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// BySenderName orders the results by the sender_name field.
func BySenderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderName, opts...).ToFunc()
}

// ByArrivedAt orders the results by the arrived_at field.
func ByArrivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArrivedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDispatchID orders the results by the dispatch_id field.
func ByDispatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDispatchID, opts...).ToFunc()
}
