// Code generated by ent, DO NOT EDIT.

package scheduleditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldAgentID, v))
}

// SessionKey applies equality check predicate on the "session_key" field. It's identical to SessionKeyEQ.
func SessionKey(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldSessionKey, v))
}

// RunAt applies equality check predicate on the "run_at" field. It's identical to RunAtEQ.
func RunAt(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldRunAt, v))
}

// Recurrence applies equality check predicate on the "recurrence" field. It's identical to RecurrenceEQ.
func Recurrence(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldRecurrence, v))
}

// RoutineID applies equality check predicate on the "routine_id" field. It's identical to RoutineIDEQ.
func RoutineID(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldRoutineID, v))
}

// RoutineRunID applies equality check predicate on the "routine_run_id" field. It's identical to RoutineRunIDEQ.
func RoutineRunID(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldRoutineRunID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContainsFold(FieldAgentID, v))
}

// SessionKeyEQ applies the EQ predicate on the "session_key" field.
func SessionKeyEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldSessionKey, v))
}

// SessionKeyNEQ applies the NEQ predicate on the "session_key" field.
func SessionKeyNEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldSessionKey, v))
}

// SessionKeyIn applies the In predicate on the "session_key" field.
func SessionKeyIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldSessionKey, vs...))
}

// SessionKeyNotIn applies the NotIn predicate on the "session_key" field.
func SessionKeyNotIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldSessionKey, vs...))
}

// SessionKeyGT applies the GT predicate on the "session_key" field.
func SessionKeyGT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGT(FieldSessionKey, v))
}

// SessionKeyGTE applies the GTE predicate on the "session_key" field.
func SessionKeyGTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGTE(FieldSessionKey, v))
}

// SessionKeyLT applies the LT predicate on the "session_key" field.
func SessionKeyLT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLT(FieldSessionKey, v))
}

// SessionKeyLTE applies the LTE predicate on the "session_key" field.
func SessionKeyLTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLTE(FieldSessionKey, v))
}

// SessionKeyContains applies the Contains predicate on the "session_key" field.
func SessionKeyContains(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContains(FieldSessionKey, v))
}

// SessionKeyHasPrefix applies the HasPrefix predicate on the "session_key" field.
func SessionKeyHasPrefix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasPrefix(FieldSessionKey, v))
}

// SessionKeyHasSuffix applies the HasSuffix predicate on the "session_key" field.
func SessionKeyHasSuffix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasSuffix(FieldSessionKey, v))
}

// SessionKeyIsNil applies the IsNil predicate on the "session_key" field.
func SessionKeyIsNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIsNull(FieldSessionKey))
}

// SessionKeyNotNil applies the NotNil predicate on the "session_key" field.
func SessionKeyNotNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotNull(FieldSessionKey))
}

// SessionKeyEqualFold applies the EqualFold predicate on the "session_key" field.
func SessionKeyEqualFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEqualFold(FieldSessionKey, v))
}

// SessionKeyContainsFold applies the ContainsFold predicate on the "session_key" field.
func SessionKeyContainsFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContainsFold(FieldSessionKey, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldType, vs...))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotNull(FieldPayload))
}

// RunAtEQ applies the EQ predicate on the "run_at" field.
func RunAtEQ(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldRunAt, v))
}

// RunAtNEQ applies the NEQ predicate on the "run_at" field.
func RunAtNEQ(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldRunAt, v))
}

// RunAtIn applies the In predicate on the "run_at" field.
func RunAtIn(vs ...time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldRunAt, vs...))
}

// RunAtNotIn applies the NotIn predicate on the "run_at" field.
func RunAtNotIn(vs ...time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldRunAt, vs...))
}

// RunAtGT applies the GT predicate on the "run_at" field.
func RunAtGT(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGT(FieldRunAt, v))
}

// RunAtGTE applies the GTE predicate on the "run_at" field.
func RunAtGTE(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGTE(FieldRunAt, v))
}

// RunAtLT applies the LT predicate on the "run_at" field.
func RunAtLT(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLT(FieldRunAt, v))
}

// RunAtLTE applies the LTE predicate on the "run_at" field.
func RunAtLTE(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLTE(FieldRunAt, v))
}

// RecurrenceEQ applies the EQ predicate on the "recurrence" field.
func RecurrenceEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldRecurrence, v))
}

// RecurrenceNEQ applies the NEQ predicate on the "recurrence" field.
func RecurrenceNEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldRecurrence, v))
}

// RecurrenceIn applies the In predicate on the "recurrence" field.
func RecurrenceIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldRecurrence, vs...))
}

// RecurrenceNotIn applies the NotIn predicate on the "recurrence" field.
func RecurrenceNotIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldRecurrence, vs...))
}

// RecurrenceGT applies the GT predicate on the "recurrence" field.
func RecurrenceGT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGT(FieldRecurrence, v))
}

// RecurrenceGTE applies the GTE predicate on the "recurrence" field.
func RecurrenceGTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGTE(FieldRecurrence, v))
}

// RecurrenceLT applies the LT predicate on the "recurrence" field.
func RecurrenceLT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLT(FieldRecurrence, v))
}

// RecurrenceLTE applies the LTE predicate on the "recurrence" field.
func RecurrenceLTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLTE(FieldRecurrence, v))
}

// RecurrenceContains applies the Contains predicate on the "recurrence" field.
func RecurrenceContains(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContains(FieldRecurrence, v))
}

// RecurrenceHasPrefix applies the HasPrefix predicate on the "recurrence" field.
func RecurrenceHasPrefix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasPrefix(FieldRecurrence, v))
}

// RecurrenceHasSuffix applies the HasSuffix predicate on the "recurrence" field.
func RecurrenceHasSuffix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasSuffix(FieldRecurrence, v))
}

// RecurrenceIsNil applies the IsNil predicate on the "recurrence" field.
func RecurrenceIsNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIsNull(FieldRecurrence))
}

// RecurrenceNotNil applies the NotNil predicate on the "recurrence" field.
func RecurrenceNotNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotNull(FieldRecurrence))
}

// RecurrenceEqualFold applies the EqualFold predicate on the "recurrence" field.
func RecurrenceEqualFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEqualFold(FieldRecurrence, v))
}

// RecurrenceContainsFold applies the ContainsFold predicate on the "recurrence" field.
func RecurrenceContainsFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContainsFold(FieldRecurrence, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldStatus, vs...))
}

// RoutineIDEQ applies the EQ predicate on the "routine_id" field.
func RoutineIDEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldRoutineID, v))
}

// RoutineIDNEQ applies the NEQ predicate on the "routine_id" field.
func RoutineIDNEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldRoutineID, v))
}

// RoutineIDIn applies the In predicate on the "routine_id" field.
func RoutineIDIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldRoutineID, vs...))
}

// RoutineIDNotIn applies the NotIn predicate on the "routine_id" field.
func RoutineIDNotIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldRoutineID, vs...))
}

// RoutineIDGT applies the GT predicate on the "routine_id" field.
func RoutineIDGT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGT(FieldRoutineID, v))
}

// RoutineIDGTE applies the GTE predicate on the "routine_id" field.
func RoutineIDGTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGTE(FieldRoutineID, v))
}

// RoutineIDLT applies the LT predicate on the "routine_id" field.
func RoutineIDLT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLT(FieldRoutineID, v))
}

// RoutineIDLTE applies the LTE predicate on the "routine_id" field.
func RoutineIDLTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLTE(FieldRoutineID, v))
}

// RoutineIDContains applies the Contains predicate on the "routine_id" field.
func RoutineIDContains(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContains(FieldRoutineID, v))
}

// RoutineIDHasPrefix applies the HasPrefix predicate on the "routine_id" field.
func RoutineIDHasPrefix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasPrefix(FieldRoutineID, v))
}

// RoutineIDHasSuffix applies the HasSuffix predicate on the "routine_id" field.
func RoutineIDHasSuffix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasSuffix(FieldRoutineID, v))
}

// RoutineIDIsNil applies the IsNil predicate on the "routine_id" field.
func RoutineIDIsNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIsNull(FieldRoutineID))
}

// RoutineIDNotNil applies the NotNil predicate on the "routine_id" field.
func RoutineIDNotNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotNull(FieldRoutineID))
}

// RoutineIDEqualFold applies the EqualFold predicate on the "routine_id" field.
func RoutineIDEqualFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEqualFold(FieldRoutineID, v))
}

// RoutineIDContainsFold applies the ContainsFold predicate on the "routine_id" field.
func RoutineIDContainsFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContainsFold(FieldRoutineID, v))
}

// RoutineRunIDEQ applies the EQ predicate on the "routine_run_id" field.
func RoutineRunIDEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldRoutineRunID, v))
}

// RoutineRunIDNEQ applies the NEQ predicate on the "routine_run_id" field.
func RoutineRunIDNEQ(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldRoutineRunID, v))
}

// RoutineRunIDIn applies the In predicate on the "routine_run_id" field.
func RoutineRunIDIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldRoutineRunID, vs...))
}

// RoutineRunIDNotIn applies the NotIn predicate on the "routine_run_id" field.
func RoutineRunIDNotIn(vs ...string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldRoutineRunID, vs...))
}

// RoutineRunIDGT applies the GT predicate on the "routine_run_id" field.
func RoutineRunIDGT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGT(FieldRoutineRunID, v))
}

// RoutineRunIDGTE applies the GTE predicate on the "routine_run_id" field.
func RoutineRunIDGTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGTE(FieldRoutineRunID, v))
}

// RoutineRunIDLT applies the LT predicate on the "routine_run_id" field.
func RoutineRunIDLT(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLT(FieldRoutineRunID, v))
}

// RoutineRunIDLTE applies the LTE predicate on the "routine_run_id" field.
func RoutineRunIDLTE(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLTE(FieldRoutineRunID, v))
}

// RoutineRunIDContains applies the Contains predicate on the "routine_run_id" field.
func RoutineRunIDContains(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContains(FieldRoutineRunID, v))
}

// RoutineRunIDHasPrefix applies the HasPrefix predicate on the "routine_run_id" field.
func RoutineRunIDHasPrefix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasPrefix(FieldRoutineRunID, v))
}

// RoutineRunIDHasSuffix applies the HasSuffix predicate on the "routine_run_id" field.
func RoutineRunIDHasSuffix(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldHasSuffix(FieldRoutineRunID, v))
}

// RoutineRunIDIsNil applies the IsNil predicate on the "routine_run_id" field.
func RoutineRunIDIsNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIsNull(FieldRoutineRunID))
}

// RoutineRunIDNotNil applies the NotNil predicate on the "routine_run_id" field.
func RoutineRunIDNotNil() predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotNull(FieldRoutineRunID))
}

// RoutineRunIDEqualFold applies the EqualFold predicate on the "routine_run_id" field.
func RoutineRunIDEqualFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEqualFold(FieldRoutineRunID, v))
}

// RoutineRunIDContainsFold applies the ContainsFold predicate on the "routine_run_id" field.
func RoutineRunIDContainsFold(v string) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldContainsFold(FieldRoutineRunID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledItem) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledItem) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledItem) predicate.ScheduledItem {
	return predicate.ScheduledItem(sql.NotPredicates(p))
}
