// Code generated by ent, DO NOT EDIT.

package queuelane

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queuelane type in the database.
	Label = "queue_lane"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "queue_key"
	// FieldSessionKey holds the string denoting the session_key field in the database.
	FieldSessionKey = "session_key"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldIsPaused holds the string denoting the is_paused field in the database.
	FieldIsPaused = "is_paused"
	// FieldDebounceUntil holds the string denoting the debounce_until field in the database.
	FieldDebounceUntil = "debounce_until"
	// FieldDebounceMs holds the string denoting the debounce_ms field in the database.
	FieldDebounceMs = "debounce_ms"
	// FieldMaxQueued holds the string denoting the max_queued field in the database.
	FieldMaxQueued = "max_queued"
	// FieldActiveDispatchID holds the string denoting the active_dispatch_id field in the database.
	FieldActiveDispatchID = "active_dispatch_id"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the queuelane in the database.
	Table = "queue_lanes"
)

// Columns holds all SQL columns for queuelane fields.
var Columns = []string{
	FieldID,
	FieldSessionKey,
	FieldAgentID,
	FieldState,
	FieldMode,
	FieldIsPaused,
	FieldDebounceUntil,
	FieldDebounceMs,
	FieldMaxQueued,
	FieldActiveDispatchID,
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
	// DefaultIsPaused holds the default value on creation for the "is_paused" field.
	DefaultIsPaused bool
	// DefaultDebounceMs holds the default value on creation for the "debounce_ms" field.
	DefaultDebounceMs int
	// DefaultMaxQueued holds the default value on creation for the "max_queued" field.
	DefaultMaxQueued int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateIdle is the default value of the State enum.
const DefaultState = StateIdle

// State values.
const (
	StateIdle    State = "idle"
	StateQueued  State = "queued"
	StateRunning State = "running"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateIdle, StateQueued, StateRunning:
		return nil
	default:
		return fmt.Errorf("queuelane: invalid enum value for state field: %q", s)
	}
}

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeCollect is the default value of the Mode enum.
const DefaultMode = ModeCollect

// Mode values.
const (
	ModeCollect  Mode = "collect"
	ModeFollowup Mode = "followup"
	ModeSteer    Mode = "steer"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeCollect, ModeFollowup, ModeSteer:
		return nil
	default:
		return fmt.Errorf("queuelane: invalid enum value for mode field: %q", m)
	}
}

// OrderOption defines the ordering options for the QueueLane queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionKey orders the results by the session_key field.
func BySessionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionKey, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByIsPaused orders the results by the is_paused field.
func ByIsPaused(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPaused, opts...).ToFunc()
}

// ByDebounceUntil orders the results by the debounce_until field.
func ByDebounceUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebounceUntil, opts...).ToFunc()
}

// ByDebounceMs orders the results by the debounce_ms field.
func ByDebounceMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebounceMs, opts...).ToFunc()
}

// ByMaxQueued orders the results by the max_queued field.
func ByMaxQueued(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxQueued, opts...).ToFunc()
}

// ByActiveDispatchID orders the results by the active_dispatch_id field.
func ByActiveDispatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveDispatchID, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
