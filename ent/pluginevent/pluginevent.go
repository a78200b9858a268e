// Code generated by ent, DO NOT EDIT.

package pluginevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pluginevent type in the database.
	Label = "plugin_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "plugin_event_id"
	// FieldPluginID holds the string denoting the plugin_id field in the database.
	FieldPluginID = "plugin_id"
	// FieldPluginVersion holds the string denoting the plugin_version field in the database.
	FieldPluginVersion = "plugin_version"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldWorkItemID holds the string denoting the work_item_id field in the database.
	FieldWorkItemID = "work_item_id"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail_json"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the pluginevent in the database.
	Table = "plugin_events"
)

// Columns holds all SQL columns for pluginevent fields.
var Columns = []string{
	FieldID,
	FieldPluginID,
	FieldPluginVersion,
	FieldKind,
	FieldStatus,
	FieldWorkItemID,
	FieldDetail,
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

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindWebhookIngress Kind = "webhook_ingress"
	KindHook           Kind = "hook"
	KindLoad           Kind = "load"
	KindUnload         Kind = "unload"
	KindAutoDisable    Kind = "auto_disable"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindWebhookIngress, KindHook, KindLoad, KindUnload, KindAutoDisable:
		return nil
	default:
		return fmt.Errorf("pluginevent: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the PluginEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPluginID orders the results by the plugin_id field.
func ByPluginID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPluginID, opts...).ToFunc()
}

// ByPluginVersion orders the results by the plugin_version field.
func ByPluginVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPluginVersion, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByWorkItemID orders the results by the work_item_id field.
func ByWorkItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkItemID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
