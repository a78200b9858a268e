// Code generated by ent, DO NOT EDIT.

package scheduleditem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scheduleditem type in the database.
	Label = "scheduled_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "scheduled_item_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldSessionKey holds the string denoting the session_key field in the database.
	FieldSessionKey = "session_key"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldRunAt holds the string denoting the run_at field in the database.
	FieldRunAt = "run_at"
	// FieldRecurrence holds the string denoting the recurrence field in the database.
	FieldRecurrence = "recurrence"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRoutineID holds the string denoting the routine_id field in the database.
	FieldRoutineID = "routine_id"
	// FieldRoutineRunID holds the string denoting the routine_run_id field in the database.
	FieldRoutineRunID = "routine_run_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the scheduleditem in the database.
	Table = "scheduled_items"
)

// Columns holds all SQL columns for scheduleditem fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldSessionKey,
	FieldType,
	FieldPayload,
	FieldRunAt,
	FieldRecurrence,
	FieldStatus,
	FieldRoutineID,
	FieldRoutineRunID,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeDeferred  Type = "deferred"
	TypeHeartbeat Type = "heartbeat"
	TypeCron      Type = "cron"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeDeferred, TypeHeartbeat, TypeCron:
		return nil
	default:
		return fmt.Errorf("scheduleditem: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusFiring    Status = "firing"
	StatusFired     Status = "fired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusFiring, StatusFired, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("scheduleditem: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScheduledItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// BySessionKey orders the results by the session_key field.
func BySessionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionKey, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByRunAt orders the results by the run_at field.
func ByRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunAt, opts...).ToFunc()
}

// ByRecurrence orders the results by the recurrence field.
func ByRecurrence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrence, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRoutineID orders the results by the routine_id field.
func ByRoutineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoutineID, opts...).ToFunc()
}

// ByRoutineRunID orders the results by the routine_run_id field.
func ByRoutineRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoutineRunID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
