// Code generated by ent, DO NOT EDIT.

package rundispatch

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rundispatch type in the database.
	Label = "run_dispatch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dispatch_id"
	// FieldRunKey holds the string denoting the run_key field in the database.
	FieldRunKey = "run_key"
	// FieldQueueKey holds the string denoting the queue_key field in the database.
	FieldQueueKey = "queue_key"
	// FieldWorkItemID holds the string denoting the work_item_id field in the database.
	FieldWorkItemID = "work_item_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldSessionKey holds the string denoting the session_key field in the database.
	FieldSessionKey = "session_key"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldControlState holds the string denoting the control_state field in the database.
	FieldControlState = "control_state"
	// FieldInputText holds the string denoting the input_text field in the database.
	FieldInputText = "input_text"
	// FieldCoalescedText holds the string denoting the coalesced_text field in the database.
	FieldCoalescedText = "coalesced_text"
	// FieldResponseContext holds the string denoting the response_context field in the database.
	FieldResponseContext = "response_context"
	// FieldOutputText holds the string denoting the output_text field in the database.
	FieldOutputText = "output_text"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldLeaseExpiresAt holds the string denoting the lease_expires_at field in the database.
	FieldLeaseExpiresAt = "lease_expires_at"
	// FieldClaimedEpoch holds the string denoting the claimed_epoch field in the database.
	FieldClaimedEpoch = "claimed_epoch"
	// FieldReplayOfDispatchID holds the string denoting the replay_of_dispatch_id field in the database.
	FieldReplayOfDispatchID = "replay_of_dispatch_id"
	// FieldMergedIntoDispatchID holds the string denoting the merged_into_dispatch_id field in the database.
	FieldMergedIntoDispatchID = "merged_into_dispatch_id"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the rundispatch in the database.
	Table = "run_dispatches"
)

// Columns holds all SQL columns for rundispatch fields.
var Columns = []string{
	FieldID,
	FieldRunKey,
	FieldQueueKey,
	FieldWorkItemID,
	FieldAgentID,
	FieldSessionKey,
	FieldStatus,
	FieldControlState,
	FieldInputText,
	FieldCoalescedText,
	FieldResponseContext,
	FieldOutputText,
	FieldAttemptCount,
	FieldClaimedBy,
	FieldLeaseExpiresAt,
	FieldClaimedEpoch,
	FieldReplayOfDispatchID,
	FieldMergedIntoDispatchID,
	FieldLastError,
	FieldScheduledAt,
	FieldStartedAt,
	FieldFinishedAt,
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
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultClaimedEpoch holds the default value on creation for the "claimed_epoch" field.
	DefaultClaimedEpoch int64
	// DefaultScheduledAt holds the default value on creation for the "scheduled_at" field.
	DefaultScheduledAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusAbandoned Status = "abandoned"
	StatusCancelled Status = "cancelled"
	StatusMerged    Status = "merged"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusPaused, StatusCompleted, StatusFailed, StatusAbandoned, StatusCancelled, StatusMerged:
		return nil
	default:
		return fmt.Errorf("rundispatch: invalid enum value for status field: %q", s)
	}
}

// ControlState defines the type for the "control_state" enum field.
type ControlState string

// ControlStateNormal is the default value of the ControlState enum.
const DefaultControlState = ControlStateNormal

// ControlState values.
const (
	ControlStateNormal          ControlState = "normal"
	ControlStatePauseRequested  ControlState = "pause_requested"
	ControlStatePaused          ControlState = "paused"
	ControlStateCancelRequested ControlState = "cancel_requested"
	ControlStateCancelled       ControlState = "cancelled"
)

func (cs ControlState) String() string {
	return string(cs)
}

// ControlStateValidator is a validator for the "control_state" field enum values. It is called by the builders before save.
func ControlStateValidator(cs ControlState) error {
	switch cs {
	case ControlStateNormal, ControlStatePauseRequested, ControlStatePaused, ControlStateCancelRequested, ControlStateCancelled:
		return nil
	default:
		return fmt.Errorf("rundispatch: invalid enum value for control_state field: %q", cs)
	}
}

// OrderOption defines the ordering options for the RunDispatch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunKey orders the results by the run_key field.
func ByRunKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunKey, opts...).ToFunc()
}

// ByQueueKey orders the results by the queue_key field.
func ByQueueKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueKey, opts...).ToFunc()
}

// ByWorkItemID orders the results by the work_item_id field.
func ByWorkItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkItemID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// BySessionKey orders the results by the session_key field.
func BySessionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByControlState orders the results by the control_state field.
func ByControlState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldControlState, opts...).ToFunc()
}

// ByInputText orders the results by the input_text field.
func ByInputText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputText, opts...).ToFunc()
}

// ByCoalescedText orders the results by the coalesced_text field.
func ByCoalescedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoalescedText, opts...).ToFunc()
}

// ByOutputText orders the results by the output_text field.
func ByOutputText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputText, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByLeaseExpiresAt orders the results by the lease_expires_at field.
func ByLeaseExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpiresAt, opts...).ToFunc()
}

// ByClaimedEpoch orders the results by the claimed_epoch field.
func ByClaimedEpoch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedEpoch, opts...).ToFunc()
}

// ByReplayOfDispatchID orders the results by the replay_of_dispatch_id field.
func ByReplayOfDispatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplayOfDispatchID, opts...).ToFunc()
}

// ByMergedIntoDispatchID orders the results by the merged_into_dispatch_id field.
func ByMergedIntoDispatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedIntoDispatchID, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
