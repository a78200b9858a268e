// Code generated by ent, DO NOT EDIT.

package routinerun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContainsFold(FieldID, id))
}

// RoutineID applies equality check predicate on the "routine_id" field. It's identical to RoutineIDEQ.
func RoutineID(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldRoutineID, v))
}

// DecisionReason applies equality check predicate on the "decision_reason" field. It's identical to DecisionReasonEQ.
func DecisionReason(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldDecisionReason, v))
}

// ScheduledItemID applies equality check predicate on the "scheduled_item_id" field. It's identical to ScheduledItemIDEQ.
func ScheduledItemID(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldScheduledItemID, v))
}

// WorkItemID applies equality check predicate on the "work_item_id" field. It's identical to WorkItemIDEQ.
func WorkItemID(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldWorkItemID, v))
}

// DispatchID applies equality check predicate on the "dispatch_id" field. It's identical to DispatchIDEQ.
func DispatchID(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldDispatchID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// RoutineIDEQ applies the EQ predicate on the "routine_id" field.
func RoutineIDEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldRoutineID, v))
}

// RoutineIDNEQ applies the NEQ predicate on the "routine_id" field.
func RoutineIDNEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNEQ(FieldRoutineID, v))
}

// RoutineIDIn applies the In predicate on the "routine_id" field.
func RoutineIDIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIn(FieldRoutineID, vs...))
}

// RoutineIDNotIn applies the NotIn predicate on the "routine_id" field.
func RoutineIDNotIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotIn(FieldRoutineID, vs...))
}

// RoutineIDGT applies the GT predicate on the "routine_id" field.
func RoutineIDGT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGT(FieldRoutineID, v))
}

// RoutineIDGTE applies the GTE predicate on the "routine_id" field.
func RoutineIDGTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGTE(FieldRoutineID, v))
}

// RoutineIDLT applies the LT predicate on the "routine_id" field.
func RoutineIDLT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLT(FieldRoutineID, v))
}

// RoutineIDLTE applies the LTE predicate on the "routine_id" field.
func RoutineIDLTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLTE(FieldRoutineID, v))
}

// RoutineIDContains applies the Contains predicate on the "routine_id" field.
func RoutineIDContains(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContains(FieldRoutineID, v))
}

// RoutineIDHasPrefix applies the HasPrefix predicate on the "routine_id" field.
func RoutineIDHasPrefix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasPrefix(FieldRoutineID, v))
}

// RoutineIDHasSuffix applies the HasSuffix predicate on the "routine_id" field.
func RoutineIDHasSuffix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasSuffix(FieldRoutineID, v))
}

// RoutineIDEqualFold applies the EqualFold predicate on the "routine_id" field.
func RoutineIDEqualFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEqualFold(FieldRoutineID, v))
}

// RoutineIDContainsFold applies the ContainsFold predicate on the "routine_id" field.
func RoutineIDContainsFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContainsFold(FieldRoutineID, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionReasonEQ applies the EQ predicate on the "decision_reason" field.
func DecisionReasonEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldDecisionReason, v))
}

// DecisionReasonNEQ applies the NEQ predicate on the "decision_reason" field.
func DecisionReasonNEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNEQ(FieldDecisionReason, v))
}

// DecisionReasonIn applies the In predicate on the "decision_reason" field.
func DecisionReasonIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIn(FieldDecisionReason, vs...))
}

// DecisionReasonNotIn applies the NotIn predicate on the "decision_reason" field.
func DecisionReasonNotIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotIn(FieldDecisionReason, vs...))
}

// DecisionReasonGT applies the GT predicate on the "decision_reason" field.
func DecisionReasonGT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGT(FieldDecisionReason, v))
}

// DecisionReasonGTE applies the GTE predicate on the "decision_reason" field.
func DecisionReasonGTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGTE(FieldDecisionReason, v))
}

// DecisionReasonLT applies the LT predicate on the "decision_reason" field.
func DecisionReasonLT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLT(FieldDecisionReason, v))
}

// DecisionReasonLTE applies the LTE predicate on the "decision_reason" field.
func DecisionReasonLTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLTE(FieldDecisionReason, v))
}

// DecisionReasonContains applies the Contains predicate on the "decision_reason" field.
func DecisionReasonContains(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContains(FieldDecisionReason, v))
}

// DecisionReasonHasPrefix applies the HasPrefix predicate on the "decision_reason" field.
func DecisionReasonHasPrefix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasPrefix(FieldDecisionReason, v))
}

// DecisionReasonHasSuffix applies the HasSuffix predicate on the "decision_reason" field.
func DecisionReasonHasSuffix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasSuffix(FieldDecisionReason, v))
}

// DecisionReasonIsNil applies the IsNil predicate on the "decision_reason" field.
func DecisionReasonIsNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIsNull(FieldDecisionReason))
}

// DecisionReasonNotNil applies the NotNil predicate on the "decision_reason" field.
func DecisionReasonNotNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotNull(FieldDecisionReason))
}

// DecisionReasonEqualFold applies the EqualFold predicate on the "decision_reason" field.
func DecisionReasonEqualFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEqualFold(FieldDecisionReason, v))
}

// DecisionReasonContainsFold applies the ContainsFold predicate on the "decision_reason" field.
func DecisionReasonContainsFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContainsFold(FieldDecisionReason, v))
}

// EnvelopeIsNil applies the IsNil predicate on the "envelope" field.
func EnvelopeIsNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIsNull(FieldEnvelope))
}

// EnvelopeNotNil applies the NotNil predicate on the "envelope" field.
func EnvelopeNotNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotNull(FieldEnvelope))
}

// ScheduledItemIDEQ applies the EQ predicate on the "scheduled_item_id" field.
func ScheduledItemIDEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldScheduledItemID, v))
}

// ScheduledItemIDNEQ applies the NEQ predicate on the "scheduled_item_id" field.
func ScheduledItemIDNEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNEQ(FieldScheduledItemID, v))
}

// ScheduledItemIDIn applies the In predicate on the "scheduled_item_id" field.
func ScheduledItemIDIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIn(FieldScheduledItemID, vs...))
}

// ScheduledItemIDNotIn applies the NotIn predicate on the "scheduled_item_id" field.
func ScheduledItemIDNotIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotIn(FieldScheduledItemID, vs...))
}

// ScheduledItemIDGT applies the GT predicate on the "scheduled_item_id" field.
func ScheduledItemIDGT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGT(FieldScheduledItemID, v))
}

// ScheduledItemIDGTE applies the GTE predicate on the "scheduled_item_id" field.
func ScheduledItemIDGTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGTE(FieldScheduledItemID, v))
}

// ScheduledItemIDLT applies the LT predicate on the "scheduled_item_id" field.
func ScheduledItemIDLT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLT(FieldScheduledItemID, v))
}

// ScheduledItemIDLTE applies the LTE predicate on the "scheduled_item_id" field.
func ScheduledItemIDLTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLTE(FieldScheduledItemID, v))
}

// ScheduledItemIDContains applies the Contains predicate on the "scheduled_item_id" field.
func ScheduledItemIDContains(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContains(FieldScheduledItemID, v))
}

// ScheduledItemIDHasPrefix applies the HasPrefix predicate on the "scheduled_item_id" field.
func ScheduledItemIDHasPrefix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasPrefix(FieldScheduledItemID, v))
}

// ScheduledItemIDHasSuffix applies the HasSuffix predicate on the "scheduled_item_id" field.
func ScheduledItemIDHasSuffix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasSuffix(FieldScheduledItemID, v))
}

// ScheduledItemIDIsNil applies the IsNil predicate on the "scheduled_item_id" field.
func ScheduledItemIDIsNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIsNull(FieldScheduledItemID))
}

// ScheduledItemIDNotNil applies the NotNil predicate on the "scheduled_item_id" field.
func ScheduledItemIDNotNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotNull(FieldScheduledItemID))
}

// ScheduledItemIDEqualFold applies the EqualFold predicate on the "scheduled_item_id" field.
func ScheduledItemIDEqualFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEqualFold(FieldScheduledItemID, v))
}

// ScheduledItemIDContainsFold applies the ContainsFold predicate on the "scheduled_item_id" field.
func ScheduledItemIDContainsFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContainsFold(FieldScheduledItemID, v))
}

// WorkItemIDEQ applies the EQ predicate on the "work_item_id" field.
func WorkItemIDEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldWorkItemID, v))
}

// WorkItemIDNEQ applies the NEQ predicate on the "work_item_id" field.
func WorkItemIDNEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNEQ(FieldWorkItemID, v))
}

// WorkItemIDIn applies the In predicate on the "work_item_id" field.
func WorkItemIDIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIn(FieldWorkItemID, vs...))
}

// WorkItemIDNotIn applies the NotIn predicate on the "work_item_id" field.
func WorkItemIDNotIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotIn(FieldWorkItemID, vs...))
}

// WorkItemIDGT applies the GT predicate on the "work_item_id" field.
func WorkItemIDGT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGT(FieldWorkItemID, v))
}

// WorkItemIDGTE applies the GTE predicate on the "work_item_id" field.
func WorkItemIDGTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGTE(FieldWorkItemID, v))
}

// WorkItemIDLT applies the LT predicate on the "work_item_id" field.
func WorkItemIDLT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLT(FieldWorkItemID, v))
}

// WorkItemIDLTE applies the LTE predicate on the "work_item_id" field.
func WorkItemIDLTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLTE(FieldWorkItemID, v))
}

// WorkItemIDContains applies the Contains predicate on the "work_item_id" field.
func WorkItemIDContains(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContains(FieldWorkItemID, v))
}

// WorkItemIDHasPrefix applies the HasPrefix predicate on the "work_item_id" field.
func WorkItemIDHasPrefix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasPrefix(FieldWorkItemID, v))
}

// WorkItemIDHasSuffix applies the HasSuffix predicate on the "work_item_id" field.
func WorkItemIDHasSuffix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasSuffix(FieldWorkItemID, v))
}

// WorkItemIDIsNil applies the IsNil predicate on the "work_item_id" field.
func WorkItemIDIsNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIsNull(FieldWorkItemID))
}

// WorkItemIDNotNil applies the NotNil predicate on the "work_item_id" field.
func WorkItemIDNotNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotNull(FieldWorkItemID))
}

// WorkItemIDEqualFold applies the EqualFold predicate on the "work_item_id" field.
func WorkItemIDEqualFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEqualFold(FieldWorkItemID, v))
}

// WorkItemIDContainsFold applies the ContainsFold predicate on the "work_item_id" field.
func WorkItemIDContainsFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContainsFold(FieldWorkItemID, v))
}

// DispatchIDEQ applies the EQ predicate on the "dispatch_id" field.
func DispatchIDEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldDispatchID, v))
}

// DispatchIDNEQ applies the NEQ predicate on the "dispatch_id" field.
func DispatchIDNEQ(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNEQ(FieldDispatchID, v))
}

// DispatchIDIn applies the In predicate on the "dispatch_id" field.
func DispatchIDIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIn(FieldDispatchID, vs...))
}

// DispatchIDNotIn applies the NotIn predicate on the "dispatch_id" field.
func DispatchIDNotIn(vs ...string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotIn(FieldDispatchID, vs...))
}

// DispatchIDGT applies the GT predicate on the "dispatch_id" field.
func DispatchIDGT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGT(FieldDispatchID, v))
}

// DispatchIDGTE applies the GTE predicate on the "dispatch_id" field.
func DispatchIDGTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGTE(FieldDispatchID, v))
}

// DispatchIDLT applies the LT predicate on the "dispatch_id" field.
func DispatchIDLT(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLT(FieldDispatchID, v))
}

// DispatchIDLTE applies the LTE predicate on the "dispatch_id" field.
func DispatchIDLTE(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLTE(FieldDispatchID, v))
}

// DispatchIDContains applies the Contains predicate on the "dispatch_id" field.
func DispatchIDContains(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContains(FieldDispatchID, v))
}

// DispatchIDHasPrefix applies the HasPrefix predicate on the "dispatch_id" field.
func DispatchIDHasPrefix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasPrefix(FieldDispatchID, v))
}

// DispatchIDHasSuffix applies the HasSuffix predicate on the "dispatch_id" field.
func DispatchIDHasSuffix(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldHasSuffix(FieldDispatchID, v))
}

// DispatchIDIsNil applies the IsNil predicate on the "dispatch_id" field.
func DispatchIDIsNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIsNull(FieldDispatchID))
}

// DispatchIDNotNil applies the NotNil predicate on the "dispatch_id" field.
func DispatchIDNotNil() predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotNull(FieldDispatchID))
}

// DispatchIDEqualFold applies the EqualFold predicate on the "dispatch_id" field.
func DispatchIDEqualFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEqualFold(FieldDispatchID, v))
}

// DispatchIDContainsFold applies the ContainsFold predicate on the "dispatch_id" field.
func DispatchIDContainsFold(v string) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldContainsFold(FieldDispatchID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoutineRun {
	return predicate.RoutineRun(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoutineRun) predicate.RoutineRun {
	return predicate.RoutineRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoutineRun) predicate.RoutineRun {
	return predicate.RoutineRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoutineRun) predicate.RoutineRun {
	return predicate.RoutineRun(sql.NotPredicates(p))
}
