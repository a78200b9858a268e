// Code generated by ent, DO NOT EDIT.

package queuelane

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldContainsFold(FieldID, id))
}

// SessionKey applies equality check predicate on the "session_key" field. It's identical to SessionKeyEQ.
func SessionKey(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldSessionKey, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldAgentID, v))
}

// IsPaused applies equality check predicate on the "is_paused" field. It's identical to IsPausedEQ.
func IsPaused(v bool) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldIsPaused, v))
}

// DebounceUntil applies equality check predicate on the "debounce_until" field. It's identical to DebounceUntilEQ.
func DebounceUntil(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldDebounceUntil, v))
}

// DebounceMs applies equality check predicate on the "debounce_ms" field. It's identical to DebounceMsEQ.
func DebounceMs(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldDebounceMs, v))
}

// MaxQueued applies equality check predicate on the "max_queued" field. It's identical to MaxQueuedEQ.
func MaxQueued(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldMaxQueued, v))
}

// ActiveDispatchID applies equality check predicate on the "active_dispatch_id" field. It's identical to ActiveDispatchIDEQ.
func ActiveDispatchID(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldActiveDispatchID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionKeyEQ applies the EQ predicate on the "session_key" field.
func SessionKeyEQ(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldSessionKey, v))
}

// SessionKeyNEQ applies the NEQ predicate on the "session_key" field.
func SessionKeyNEQ(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldSessionKey, v))
}

// SessionKeyIn applies the In predicate on the "session_key" field.
func SessionKeyIn(vs ...string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldSessionKey, vs...))
}

// SessionKeyNotIn applies the NotIn predicate on the "session_key" field.
func SessionKeyNotIn(vs ...string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldSessionKey, vs...))
}

// SessionKeyGT applies the GT predicate on the "session_key" field.
func SessionKeyGT(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGT(FieldSessionKey, v))
}

// SessionKeyGTE applies the GTE predicate on the "session_key" field.
func SessionKeyGTE(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGTE(FieldSessionKey, v))
}

// SessionKeyLT applies the LT predicate on the "session_key" field.
func SessionKeyLT(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLT(FieldSessionKey, v))
}

// SessionKeyLTE applies the LTE predicate on the "session_key" field.
func SessionKeyLTE(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLTE(FieldSessionKey, v))
}

// SessionKeyContains applies the Contains predicate on the "session_key" field.
func SessionKeyContains(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldContains(FieldSessionKey, v))
}

// SessionKeyHasPrefix applies the HasPrefix predicate on the "session_key" field.
func SessionKeyHasPrefix(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldHasPrefix(FieldSessionKey, v))
}

// SessionKeyHasSuffix applies the HasSuffix predicate on the "session_key" field.
func SessionKeyHasSuffix(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldHasSuffix(FieldSessionKey, v))
}

// SessionKeyEqualFold applies the EqualFold predicate on the "session_key" field.
func SessionKeyEqualFold(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEqualFold(FieldSessionKey, v))
}

// SessionKeyContainsFold applies the ContainsFold predicate on the "session_key" field.
func SessionKeyContainsFold(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldContainsFold(FieldSessionKey, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldContainsFold(FieldAgentID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldState, vs...))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldMode, vs...))
}

// IsPausedEQ applies the EQ predicate on the "is_paused" field.
func IsPausedEQ(v bool) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldIsPaused, v))
}

// IsPausedNEQ applies the NEQ predicate on the "is_paused" field.
func IsPausedNEQ(v bool) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldIsPaused, v))
}

// DebounceUntilEQ applies the EQ predicate on the "debounce_until" field.
func DebounceUntilEQ(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldDebounceUntil, v))
}

// DebounceUntilNEQ applies the NEQ predicate on the "debounce_until" field.
func DebounceUntilNEQ(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldDebounceUntil, v))
}

// DebounceUntilIn applies the In predicate on the "debounce_until" field.
func DebounceUntilIn(vs ...time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldDebounceUntil, vs...))
}

// DebounceUntilNotIn applies the NotIn predicate on the "debounce_until" field.
func DebounceUntilNotIn(vs ...time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldDebounceUntil, vs...))
}

// DebounceUntilGT applies the GT predicate on the "debounce_until" field.
func DebounceUntilGT(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGT(FieldDebounceUntil, v))
}

// DebounceUntilGTE applies the GTE predicate on the "debounce_until" field.
func DebounceUntilGTE(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGTE(FieldDebounceUntil, v))
}

// DebounceUntilLT applies the LT predicate on the "debounce_until" field.
func DebounceUntilLT(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLT(FieldDebounceUntil, v))
}

// DebounceUntilLTE applies the LTE predicate on the "debounce_until" field.
func DebounceUntilLTE(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLTE(FieldDebounceUntil, v))
}

// DebounceUntilIsNil applies the IsNil predicate on the "debounce_until" field.
func DebounceUntilIsNil() predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIsNull(FieldDebounceUntil))
}

// DebounceUntilNotNil applies the NotNil predicate on the "debounce_until" field.
func DebounceUntilNotNil() predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotNull(FieldDebounceUntil))
}

// DebounceMsEQ applies the EQ predicate on the "debounce_ms" field.
func DebounceMsEQ(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldDebounceMs, v))
}

// DebounceMsNEQ applies the NEQ predicate on the "debounce_ms" field.
func DebounceMsNEQ(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldDebounceMs, v))
}

// DebounceMsIn applies the In predicate on the "debounce_ms" field.
func DebounceMsIn(vs ...int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldDebounceMs, vs...))
}

// DebounceMsNotIn applies the NotIn predicate on the "debounce_ms" field.
func DebounceMsNotIn(vs ...int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldDebounceMs, vs...))
}

// DebounceMsGT applies the GT predicate on the "debounce_ms" field.
func DebounceMsGT(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGT(FieldDebounceMs, v))
}

// DebounceMsGTE applies the GTE predicate on the "debounce_ms" field.
func DebounceMsGTE(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGTE(FieldDebounceMs, v))
}

// DebounceMsLT applies the LT predicate on the "debounce_ms" field.
func DebounceMsLT(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLT(FieldDebounceMs, v))
}

// DebounceMsLTE applies the LTE predicate on the "debounce_ms" field.
func DebounceMsLTE(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLTE(FieldDebounceMs, v))
}

// MaxQueuedEQ applies the EQ predicate on the "max_queued" field.
func MaxQueuedEQ(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldMaxQueued, v))
}

// MaxQueuedNEQ applies the NEQ predicate on the "max_queued" field.
func MaxQueuedNEQ(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldMaxQueued, v))
}

// MaxQueuedIn applies the In predicate on the "max_queued" field.
func MaxQueuedIn(vs ...int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldMaxQueued, vs...))
}

// MaxQueuedNotIn applies the NotIn predicate on the "max_queued" field.
func MaxQueuedNotIn(vs ...int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldMaxQueued, vs...))
}

// MaxQueuedGT applies the GT predicate on the "max_queued" field.
func MaxQueuedGT(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGT(FieldMaxQueued, v))
}

// MaxQueuedGTE applies the GTE predicate on the "max_queued" field.
func MaxQueuedGTE(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGTE(FieldMaxQueued, v))
}

// MaxQueuedLT applies the LT predicate on the "max_queued" field.
func MaxQueuedLT(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLT(FieldMaxQueued, v))
}

// MaxQueuedLTE applies the LTE predicate on the "max_queued" field.
func MaxQueuedLTE(v int) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLTE(FieldMaxQueued, v))
}

// ActiveDispatchIDEQ applies the EQ predicate on the "active_dispatch_id" field.
func ActiveDispatchIDEQ(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldActiveDispatchID, v))
}

// ActiveDispatchIDNEQ applies the NEQ predicate on the "active_dispatch_id" field.
func ActiveDispatchIDNEQ(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldActiveDispatchID, v))
}

// ActiveDispatchIDIn applies the In predicate on the "active_dispatch_id" field.
func ActiveDispatchIDIn(vs ...string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldActiveDispatchID, vs...))
}

// ActiveDispatchIDNotIn applies the NotIn predicate on the "active_dispatch_id" field.
func ActiveDispatchIDNotIn(vs ...string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldActiveDispatchID, vs...))
}

// ActiveDispatchIDGT applies the GT predicate on the "active_dispatch_id" field.
func ActiveDispatchIDGT(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGT(FieldActiveDispatchID, v))
}

// ActiveDispatchIDGTE applies the GTE predicate on the "active_dispatch_id" field.
func ActiveDispatchIDGTE(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGTE(FieldActiveDispatchID, v))
}

// ActiveDispatchIDLT applies the LT predicate on the "active_dispatch_id" field.
func ActiveDispatchIDLT(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLT(FieldActiveDispatchID, v))
}

// ActiveDispatchIDLTE applies the LTE predicate on the "active_dispatch_id" field.
func ActiveDispatchIDLTE(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLTE(FieldActiveDispatchID, v))
}

// ActiveDispatchIDContains applies the Contains predicate on the "active_dispatch_id" field.
func ActiveDispatchIDContains(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldContains(FieldActiveDispatchID, v))
}

// ActiveDispatchIDHasPrefix applies the HasPrefix predicate on the "active_dispatch_id" field.
func ActiveDispatchIDHasPrefix(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldHasPrefix(FieldActiveDispatchID, v))
}

// ActiveDispatchIDHasSuffix applies the HasSuffix predicate on the "active_dispatch_id" field.
func ActiveDispatchIDHasSuffix(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldHasSuffix(FieldActiveDispatchID, v))
}

// ActiveDispatchIDIsNil applies the IsNil predicate on the "active_dispatch_id" field.
func ActiveDispatchIDIsNil() predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIsNull(FieldActiveDispatchID))
}

// ActiveDispatchIDNotNil applies the NotNil predicate on the "active_dispatch_id" field.
func ActiveDispatchIDNotNil() predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotNull(FieldActiveDispatchID))
}

// ActiveDispatchIDEqualFold applies the EqualFold predicate on the "active_dispatch_id" field.
func ActiveDispatchIDEqualFold(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEqualFold(FieldActiveDispatchID, v))
}

// ActiveDispatchIDContainsFold applies the ContainsFold predicate on the "active_dispatch_id" field.
func ActiveDispatchIDContainsFold(v string) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldContainsFold(FieldActiveDispatchID, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QueueLane {
	return predicate.QueueLane(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueueLane) predicate.QueueLane {
	return predicate.QueueLane(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueueLane) predicate.QueueLane {
	return predicate.QueueLane(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueueLane) predicate.QueueLane {
	return predicate.QueueLane(sql.NotPredicates(p))
}
