// Code generated by ent, DO NOT EDIT.

package runtimecontrol

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the runtimecontrol type in the database.
	Label = "runtime_control"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "control_id"
	// FieldProcessingEnabled holds the string denoting the processing_enabled field in the database.
	FieldProcessingEnabled = "processing_enabled"
	// FieldPauseMode holds the string denoting the pause_mode field in the database.
	FieldPauseMode = "pause_mode"
	// FieldPauseReason holds the string denoting the pause_reason field in the database.
	FieldPauseReason = "pause_reason"
	// FieldControlEpoch holds the string denoting the control_epoch field in the database.
	FieldControlEpoch = "control_epoch"
	// FieldMaxConcurrentDispatches holds the string denoting the max_concurrent_dispatches field in the database.
	FieldMaxConcurrentDispatches = "max_concurrent_dispatches"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the runtimecontrol in the database.
	Table = "runtime_control"
)

// Columns holds all SQL columns for runtimecontrol fields.
var Columns = []string{
	FieldID,
	FieldProcessingEnabled,
	FieldPauseMode,
	FieldPauseReason,
	FieldControlEpoch,
	FieldMaxConcurrentDispatches,
	FieldUpdatedAt,
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
	// DefaultProcessingEnabled holds the default value on creation for the "processing_enabled" field.
	DefaultProcessingEnabled bool
	// DefaultControlEpoch holds the default value on creation for the "control_epoch" field.
	DefaultControlEpoch int64
	// DefaultMaxConcurrentDispatches holds the default value on creation for the "max_concurrent_dispatches" field.
	DefaultMaxConcurrentDispatches int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// PauseMode defines the type for the "pause_mode" enum field.
type PauseMode string

// PauseModeSoft is the default value of the PauseMode enum.
const DefaultPauseMode = PauseModeSoft

// PauseMode values.
const (
	PauseModeSoft PauseMode = "soft"
	PauseModeHard PauseMode = "hard"
)

func (pm PauseMode) String() string {
	return string(pm)
}

// PauseModeValidator is a validator for the "pause_mode" field enum values. It is called by the builders before save.
func PauseModeValidator(pm PauseMode) error {
	switch pm {
	case PauseModeSoft, PauseModeHard:
		return nil
	default:
		return fmt.Errorf("runtimecontrol: invalid enum value for pause_mode field: %q", pm)
	}
}

// OrderOption defines the ordering options for the RuntimeControl queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessingEnabled orders the results by the processing_enabled field.
func ByProcessingEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingEnabled, opts...).ToFunc()
}

// ByPauseMode orders the results by the pause_mode field.
func ByPauseMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauseMode, opts...).ToFunc()
}

// ByPauseReason orders the results by the pause_reason field.
func ByPauseReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauseReason, opts...).ToFunc()
}

// ByControlEpoch orders the results by the control_epoch field.
func ByControlEpoch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldControlEpoch, opts...).ToFunc()
}

// ByMaxConcurrentDispatches orders the results by the max_concurrent_dispatches field.
func ByMaxConcurrentDispatches(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxConcurrentDispatches, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
