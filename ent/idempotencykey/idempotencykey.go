// Code generated by ent, DO NOT EDIT.

package idempotencykey

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the idempotencykey type in the database.
	Label = "idempotency_key"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "idempotency_key_id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldWorkItemID holds the string denoting the work_item_id field in the database.
	FieldWorkItemID = "work_item_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the idempotencykey in the database.
	Table = "idempotency_keys"
)

// Columns holds all SQL columns for idempotencykey fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldWorkItemID,
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

// OrderOption defines the ordering options for the IdempotencyKey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByWorkItemID orders the results by the work_item_id field.
func ByWorkItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkItemID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
