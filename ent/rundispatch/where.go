// Code generated by ent, DO NOT EDIT.

package rundispatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldID, id))
}

// RunKey applies equality check predicate on the "run_key" field. It's identical to RunKeyEQ.
func RunKey(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldRunKey, v))
}

// QueueKey applies equality check predicate on the "queue_key" field. It's identical to QueueKeyEQ.
func QueueKey(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldQueueKey, v))
}

// WorkItemID applies equality check predicate on the "work_item_id" field. It's identical to WorkItemIDEQ.
func WorkItemID(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldWorkItemID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldAgentID, v))
}

// SessionKey applies equality check predicate on the "session_key" field. It's identical to SessionKeyEQ.
func SessionKey(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldSessionKey, v))
}

// InputText applies equality check predicate on the "input_text" field. It's identical to InputTextEQ.
func InputText(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldInputText, v))
}

// CoalescedText applies equality check predicate on the "coalesced_text" field. It's identical to CoalescedTextEQ.
func CoalescedText(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldCoalescedText, v))
}

// OutputText applies equality check predicate on the "output_text" field. It's identical to OutputTextEQ.
func OutputText(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldOutputText, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldAttemptCount, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldClaimedBy, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// ClaimedEpoch applies equality check predicate on the "claimed_epoch" field. It's identical to ClaimedEpochEQ.
func ClaimedEpoch(v int64) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldClaimedEpoch, v))
}

// ReplayOfDispatchID applies equality check predicate on the "replay_of_dispatch_id" field. It's identical to ReplayOfDispatchIDEQ.
func ReplayOfDispatchID(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldReplayOfDispatchID, v))
}

// MergedIntoDispatchID applies equality check predicate on the "merged_into_dispatch_id" field. It's identical to MergedIntoDispatchIDEQ.
func MergedIntoDispatchID(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldMergedIntoDispatchID, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldLastError, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldScheduledAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldFinishedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldCreatedAt, v))
}

// RunKeyEQ applies the EQ predicate on the "run_key" field.
func RunKeyEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldRunKey, v))
}

// RunKeyNEQ applies the NEQ predicate on the "run_key" field.
func RunKeyNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldRunKey, v))
}

// RunKeyIn applies the In predicate on the "run_key" field.
func RunKeyIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldRunKey, vs...))
}

// RunKeyNotIn applies the NotIn predicate on the "run_key" field.
func RunKeyNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldRunKey, vs...))
}

// RunKeyGT applies the GT predicate on the "run_key" field.
func RunKeyGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldRunKey, v))
}

// RunKeyGTE applies the GTE predicate on the "run_key" field.
func RunKeyGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldRunKey, v))
}

// RunKeyLT applies the LT predicate on the "run_key" field.
func RunKeyLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldRunKey, v))
}

// RunKeyLTE applies the LTE predicate on the "run_key" field.
func RunKeyLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldRunKey, v))
}

// RunKeyContains applies the Contains predicate on the "run_key" field.
func RunKeyContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldRunKey, v))
}

// RunKeyHasPrefix applies the HasPrefix predicate on the "run_key" field.
func RunKeyHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldRunKey, v))
}

// RunKeyHasSuffix applies the HasSuffix predicate on the "run_key" field.
func RunKeyHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldRunKey, v))
}

// RunKeyIsNil applies the IsNil predicate on the "run_key" field.
func RunKeyIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldRunKey))
}

// RunKeyNotNil applies the NotNil predicate on the "run_key" field.
func RunKeyNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldRunKey))
}

// RunKeyEqualFold applies the EqualFold predicate on the "run_key" field.
func RunKeyEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldRunKey, v))
}

// RunKeyContainsFold applies the ContainsFold predicate on the "run_key" field.
func RunKeyContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldRunKey, v))
}

// QueueKeyEQ applies the EQ predicate on the "queue_key" field.
func QueueKeyEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldQueueKey, v))
}

// QueueKeyNEQ applies the NEQ predicate on the "queue_key" field.
func QueueKeyNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldQueueKey, v))
}

// QueueKeyIn applies the In predicate on the "queue_key" field.
func QueueKeyIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldQueueKey, vs...))
}

// QueueKeyNotIn applies the NotIn predicate on the "queue_key" field.
func QueueKeyNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldQueueKey, vs...))
}

// QueueKeyGT applies the GT predicate on the "queue_key" field.
func QueueKeyGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldQueueKey, v))
}

// QueueKeyGTE applies the GTE predicate on the "queue_key" field.
func QueueKeyGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldQueueKey, v))
}

// QueueKeyLT applies the LT predicate on the "queue_key" field.
func QueueKeyLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldQueueKey, v))
}

// QueueKeyLTE applies the LTE predicate on the "queue_key" field.
func QueueKeyLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldQueueKey, v))
}

// QueueKeyContains applies the Contains predicate on the "queue_key" field.
func QueueKeyContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldQueueKey, v))
}

// QueueKeyHasPrefix applies the HasPrefix predicate on the "queue_key" field.
func QueueKeyHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldQueueKey, v))
}

// QueueKeyHasSuffix applies the HasSuffix predicate on the "queue_key" field.
func QueueKeyHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldQueueKey, v))
}

// QueueKeyEqualFold applies the EqualFold predicate on the "queue_key" field.
func QueueKeyEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldQueueKey, v))
}

// QueueKeyContainsFold applies the ContainsFold predicate on the "queue_key" field.
func QueueKeyContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldQueueKey, v))
}

// WorkItemIDEQ applies the EQ predicate on the "work_item_id" field.
func WorkItemIDEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldWorkItemID, v))
}

// WorkItemIDNEQ applies the NEQ predicate on the "work_item_id" field.
func WorkItemIDNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldWorkItemID, v))
}

// WorkItemIDIn applies the In predicate on the "work_item_id" field.
func WorkItemIDIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldWorkItemID, vs...))
}

// WorkItemIDNotIn applies the NotIn predicate on the "work_item_id" field.
func WorkItemIDNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldWorkItemID, vs...))
}

// WorkItemIDGT applies the GT predicate on the "work_item_id" field.
func WorkItemIDGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldWorkItemID, v))
}

// WorkItemIDGTE applies the GTE predicate on the "work_item_id" field.
func WorkItemIDGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldWorkItemID, v))
}

// WorkItemIDLT applies the LT predicate on the "work_item_id" field.
func WorkItemIDLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldWorkItemID, v))
}

// WorkItemIDLTE applies the LTE predicate on the "work_item_id" field.
func WorkItemIDLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldWorkItemID, v))
}

// WorkItemIDContains applies the Contains predicate on the "work_item_id" field.
func WorkItemIDContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldWorkItemID, v))
}

// WorkItemIDHasPrefix applies the HasPrefix predicate on the "work_item_id" field.
func WorkItemIDHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldWorkItemID, v))
}

// WorkItemIDHasSuffix applies the HasSuffix predicate on the "work_item_id" field.
func WorkItemIDHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldWorkItemID, v))
}

// WorkItemIDIsNil applies the IsNil predicate on the "work_item_id" field.
func WorkItemIDIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldWorkItemID))
}

// WorkItemIDNotNil applies the NotNil predicate on the "work_item_id" field.
func WorkItemIDNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldWorkItemID))
}

// WorkItemIDEqualFold applies the EqualFold predicate on the "work_item_id" field.
func WorkItemIDEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldWorkItemID, v))
}

// WorkItemIDContainsFold applies the ContainsFold predicate on the "work_item_id" field.
func WorkItemIDContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldWorkItemID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldAgentID, v))
}

// SessionKeyEQ applies the EQ predicate on the "session_key" field.
func SessionKeyEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldSessionKey, v))
}

// SessionKeyNEQ applies the NEQ predicate on the "session_key" field.
func SessionKeyNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldSessionKey, v))
}

// SessionKeyIn applies the In predicate on the "session_key" field.
func SessionKeyIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldSessionKey, vs...))
}

// SessionKeyNotIn applies the NotIn predicate on the "session_key" field.
func SessionKeyNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldSessionKey, vs...))
}

// SessionKeyGT applies the GT predicate on the "session_key" field.
func SessionKeyGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldSessionKey, v))
}

// SessionKeyGTE applies the GTE predicate on the "session_key" field.
func SessionKeyGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldSessionKey, v))
}

// SessionKeyLT applies the LT predicate on the "session_key" field.
func SessionKeyLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldSessionKey, v))
}

// SessionKeyLTE applies the LTE predicate on the "session_key" field.
func SessionKeyLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldSessionKey, v))
}

// SessionKeyContains applies the Contains predicate on the "session_key" field.
func SessionKeyContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldSessionKey, v))
}

// SessionKeyHasPrefix applies the HasPrefix predicate on the "session_key" field.
func SessionKeyHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldSessionKey, v))
}

// SessionKeyHasSuffix applies the HasSuffix predicate on the "session_key" field.
func SessionKeyHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldSessionKey, v))
}

// SessionKeyEqualFold applies the EqualFold predicate on the "session_key" field.
func SessionKeyEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldSessionKey, v))
}

// SessionKeyContainsFold applies the ContainsFold predicate on the "session_key" field.
func SessionKeyContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldSessionKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldStatus, vs...))
}

// ControlStateEQ applies the EQ predicate on the "control_state" field.
func ControlStateEQ(v ControlState) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldControlState, v))
}

// ControlStateNEQ applies the NEQ predicate on the "control_state" field.
func ControlStateNEQ(v ControlState) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldControlState, v))
}

// ControlStateIn applies the In predicate on the "control_state" field.
func ControlStateIn(vs ...ControlState) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldControlState, vs...))
}

// ControlStateNotIn applies the NotIn predicate on the "control_state" field.
func ControlStateNotIn(vs ...ControlState) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldControlState, vs...))
}

// InputTextEQ applies the EQ predicate on the "input_text" field.
func InputTextEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldInputText, v))
}

// InputTextNEQ applies the NEQ predicate on the "input_text" field.
func InputTextNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldInputText, v))
}

// InputTextIn applies the In predicate on the "input_text" field.
func InputTextIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldInputText, vs...))
}

// InputTextNotIn applies the NotIn predicate on the "input_text" field.
func InputTextNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldInputText, vs...))
}

// InputTextGT applies the GT predicate on the "input_text" field.
func InputTextGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldInputText, v))
}

// InputTextGTE applies the GTE predicate on the "input_text" field.
func InputTextGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldInputText, v))
}

// InputTextLT applies the LT predicate on the "input_text" field.
func InputTextLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldInputText, v))
}

// InputTextLTE applies the LTE predicate on the "input_text" field.
func InputTextLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldInputText, v))
}

// InputTextContains applies the Contains predicate on the "input_text" field.
func InputTextContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldInputText, v))
}

// InputTextHasPrefix applies the HasPrefix predicate on the "input_text" field.
func InputTextHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldInputText, v))
}

// InputTextHasSuffix applies the HasSuffix predicate on the "input_text" field.
func InputTextHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldInputText, v))
}

// InputTextIsNil applies the IsNil predicate on the "input_text" field.
func InputTextIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldInputText))
}

// InputTextNotNil applies the NotNil predicate on the "input_text" field.
func InputTextNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldInputText))
}

// InputTextEqualFold applies the EqualFold predicate on the "input_text" field.
func InputTextEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldInputText, v))
}

// InputTextContainsFold applies the ContainsFold predicate on the "input_text" field.
func InputTextContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldInputText, v))
}

// CoalescedTextEQ applies the EQ predicate on the "coalesced_text" field.
func CoalescedTextEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldCoalescedText, v))
}

// CoalescedTextNEQ applies the NEQ predicate on the "coalesced_text" field.
func CoalescedTextNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldCoalescedText, v))
}

// CoalescedTextIn applies the In predicate on the "coalesced_text" field.
func CoalescedTextIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldCoalescedText, vs...))
}

// CoalescedTextNotIn applies the NotIn predicate on the "coalesced_text" field.
func CoalescedTextNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldCoalescedText, vs...))
}

// CoalescedTextGT applies the GT predicate on the "coalesced_text" field.
func CoalescedTextGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldCoalescedText, v))
}

// CoalescedTextGTE applies the GTE predicate on the "coalesced_text" field.
func CoalescedTextGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldCoalescedText, v))
}

// CoalescedTextLT applies the LT predicate on the "coalesced_text" field.
func CoalescedTextLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldCoalescedText, v))
}

// CoalescedTextLTE applies the LTE predicate on the "coalesced_text" field.
func CoalescedTextLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldCoalescedText, v))
}

// CoalescedTextContains applies the Contains predicate on the "coalesced_text" field.
func CoalescedTextContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldCoalescedText, v))
}

// CoalescedTextHasPrefix applies the HasPrefix predicate on the "coalesced_text" field.
func CoalescedTextHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldCoalescedText, v))
}

// CoalescedTextHasSuffix applies the HasSuffix predicate on the "coalesced_text" field.
func CoalescedTextHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldCoalescedText, v))
}

// CoalescedTextIsNil applies the IsNil predicate on the "coalesced_text" field.
func CoalescedTextIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldCoalescedText))
}

// CoalescedTextNotNil applies the NotNil predicate on the "coalesced_text" field.
func CoalescedTextNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldCoalescedText))
}

// CoalescedTextEqualFold applies the EqualFold predicate on the "coalesced_text" field.
func CoalescedTextEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldCoalescedText, v))
}

// CoalescedTextContainsFold applies the ContainsFold predicate on the "coalesced_text" field.
func CoalescedTextContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldCoalescedText, v))
}

// ResponseContextIsNil applies the IsNil predicate on the "response_context" field.
func ResponseContextIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldResponseContext))
}

// ResponseContextNotNil applies the NotNil predicate on the "response_context" field.
func ResponseContextNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldResponseContext))
}

// OutputTextEQ applies the EQ predicate on the "output_text" field.
func OutputTextEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldOutputText, v))
}

// OutputTextNEQ applies the NEQ predicate on the "output_text" field.
func OutputTextNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldOutputText, v))
}

// OutputTextIn applies the In predicate on the "output_text" field.
func OutputTextIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldOutputText, vs...))
}

// OutputTextNotIn applies the NotIn predicate on the "output_text" field.
func OutputTextNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldOutputText, vs...))
}

// OutputTextGT applies the GT predicate on the "output_text" field.
func OutputTextGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldOutputText, v))
}

// OutputTextGTE applies the GTE predicate on the "output_text" field.
func OutputTextGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldOutputText, v))
}

// OutputTextLT applies the LT predicate on the "output_text" field.
func OutputTextLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldOutputText, v))
}

// OutputTextLTE applies the LTE predicate on the "output_text" field.
func OutputTextLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldOutputText, v))
}

// OutputTextContains applies the Contains predicate on the "output_text" field.
func OutputTextContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldOutputText, v))
}

// OutputTextHasPrefix applies the HasPrefix predicate on the "output_text" field.
func OutputTextHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldOutputText, v))
}

// OutputTextHasSuffix applies the HasSuffix predicate on the "output_text" field.
func OutputTextHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldOutputText, v))
}

// OutputTextIsNil applies the IsNil predicate on the "output_text" field.
func OutputTextIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldOutputText))
}

// OutputTextNotNil applies the NotNil predicate on the "output_text" field.
func OutputTextNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldOutputText))
}

// OutputTextEqualFold applies the EqualFold predicate on the "output_text" field.
func OutputTextEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldOutputText, v))
}

// OutputTextContainsFold applies the ContainsFold predicate on the "output_text" field.
func OutputTextContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldOutputText, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldAttemptCount, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldClaimedBy, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// ClaimedEpochEQ applies the EQ predicate on the "claimed_epoch" field.
func ClaimedEpochEQ(v int64) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldClaimedEpoch, v))
}

// ClaimedEpochNEQ applies the NEQ predicate on the "claimed_epoch" field.
func ClaimedEpochNEQ(v int64) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldClaimedEpoch, v))
}

// ClaimedEpochIn applies the In predicate on the "claimed_epoch" field.
func ClaimedEpochIn(vs ...int64) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldClaimedEpoch, vs...))
}

// ClaimedEpochNotIn applies the NotIn predicate on the "claimed_epoch" field.
func ClaimedEpochNotIn(vs ...int64) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldClaimedEpoch, vs...))
}

// ClaimedEpochGT applies the GT predicate on the "claimed_epoch" field.
func ClaimedEpochGT(v int64) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldClaimedEpoch, v))
}

// ClaimedEpochGTE applies the GTE predicate on the "claimed_epoch" field.
func ClaimedEpochGTE(v int64) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldClaimedEpoch, v))
}

// ClaimedEpochLT applies the LT predicate on the "claimed_epoch" field.
func ClaimedEpochLT(v int64) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldClaimedEpoch, v))
}

// ClaimedEpochLTE applies the LTE predicate on the "claimed_epoch" field.
func ClaimedEpochLTE(v int64) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldClaimedEpoch, v))
}

// ReplayOfDispatchIDEQ applies the EQ predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDNEQ applies the NEQ predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDIn applies the In predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldReplayOfDispatchID, vs...))
}

// ReplayOfDispatchIDNotIn applies the NotIn predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldReplayOfDispatchID, vs...))
}

// ReplayOfDispatchIDGT applies the GT predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDGTE applies the GTE predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDLT applies the LT predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDLTE applies the LTE predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDContains applies the Contains predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDHasPrefix applies the HasPrefix predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDHasSuffix applies the HasSuffix predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDIsNil applies the IsNil predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldReplayOfDispatchID))
}

// ReplayOfDispatchIDNotNil applies the NotNil predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldReplayOfDispatchID))
}

// ReplayOfDispatchIDEqualFold applies the EqualFold predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldReplayOfDispatchID, v))
}

// ReplayOfDispatchIDContainsFold applies the ContainsFold predicate on the "replay_of_dispatch_id" field.
func ReplayOfDispatchIDContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldReplayOfDispatchID, v))
}

// MergedIntoDispatchIDEQ applies the EQ predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDNEQ applies the NEQ predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDIn applies the In predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldMergedIntoDispatchID, vs...))
}

// MergedIntoDispatchIDNotIn applies the NotIn predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldMergedIntoDispatchID, vs...))
}

// MergedIntoDispatchIDGT applies the GT predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDGTE applies the GTE predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDLT applies the LT predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDLTE applies the LTE predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDContains applies the Contains predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDHasPrefix applies the HasPrefix predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDHasSuffix applies the HasSuffix predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDIsNil applies the IsNil predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldMergedIntoDispatchID))
}

// MergedIntoDispatchIDNotNil applies the NotNil predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldMergedIntoDispatchID))
}

// MergedIntoDispatchIDEqualFold applies the EqualFold predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldMergedIntoDispatchID, v))
}

// MergedIntoDispatchIDContainsFold applies the ContainsFold predicate on the "merged_into_dispatch_id" field.
func MergedIntoDispatchIDContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldMergedIntoDispatchID, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldContainsFold(FieldLastError, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldScheduledAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotNull(FieldFinishedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RunDispatch {
	return predicate.RunDispatch(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunDispatch) predicate.RunDispatch {
	return predicate.RunDispatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunDispatch) predicate.RunDispatch {
	return predicate.RunDispatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunDispatch) predicate.RunDispatch {
	return predicate.RunDispatch(sql.NotPredicates(p))
}
