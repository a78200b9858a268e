// Code generated by ent, DO NOT EDIT.

package routinerun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the routinerun type in the database.
	Label = "routine_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "routine_run_id"
	// FieldRoutineID holds the string denoting the routine_id field in the database.
	FieldRoutineID = "routine_id"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldDecisionReason holds the string denoting the decision_reason field in the database.
	FieldDecisionReason = "decision_reason"
	// FieldEnvelope holds the string denoting the envelope field in the database.
	FieldEnvelope = "envelope_json"
	// FieldScheduledItemID holds the string denoting the scheduled_item_id field in the database.
	FieldScheduledItemID = "scheduled_item_id"
	// FieldWorkItemID holds the string denoting the work_item_id field in the database.
	FieldWorkItemID = "work_item_id"
	// FieldDispatchID holds the string denoting the dispatch_id field in the database.
	FieldDispatchID = "dispatch_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the routinerun in the database.
	Table = "routine_runs"
)

// Columns holds all SQL columns for routinerun fields.
var Columns = []string{
	FieldID,
	FieldRoutineID,
	FieldDecision,
	FieldDecisionReason,
	FieldEnvelope,
	FieldScheduledItemID,
	FieldWorkItemID,
	FieldDispatchID,
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

// Decision defines the type for the "decision" enum field.
type Decision string

// Decision values.
const (
	DecisionEnqueued  Decision = "enqueued"
	DecisionSkipped   Decision = "skipped"
	DecisionThrottled Decision = "throttled"
	DecisionError     Decision = "error"
)

func (d Decision) String() string {
	return string(d)
}

// DecisionValidator is a validator for the "decision" field enum values. It is called by the builders before save.
func DecisionValidator(d Decision) error {
	switch d {
	case DecisionEnqueued, DecisionSkipped, DecisionThrottled, DecisionError:
		return nil
	default:
		return fmt.Errorf("routinerun: invalid enum value for decision field: %q", d)
	}
}

// OrderOption defines the ordering options for the RoutineRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRoutineID orders the results by the routine_id field.
func ByRoutineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoutineID, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByDecisionReason orders the results by the decision_reason field.
func ByDecisionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionReason, opts...).ToFunc()
}

// ByScheduledItemID orders the results by the scheduled_item_id field.
func ByScheduledItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledItemID, opts...).ToFunc()
}

// ByWorkItemID orders the results by the work_item_id field.
func ByWorkItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkItemID, opts...).ToFunc()
}

// ByDispatchID orders the results by the dispatch_id field.
func ByDispatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDispatchID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
