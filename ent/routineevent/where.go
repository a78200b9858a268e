// Code generated by ent, DO NOT EDIT.

package routineevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldContainsFold(FieldID, id))
}

// WorkItemID applies equality check predicate on the "work_item_id" field. It's identical to WorkItemIDEQ.
func WorkItemID(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldWorkItemID, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldClaimedBy, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldAttemptCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkItemIDEQ applies the EQ predicate on the "work_item_id" field.
func WorkItemIDEQ(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldWorkItemID, v))
}

// WorkItemIDNEQ applies the NEQ predicate on the "work_item_id" field.
func WorkItemIDNEQ(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNEQ(FieldWorkItemID, v))
}

// WorkItemIDIn applies the In predicate on the "work_item_id" field.
func WorkItemIDIn(vs ...string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIn(FieldWorkItemID, vs...))
}

// WorkItemIDNotIn applies the NotIn predicate on the "work_item_id" field.
func WorkItemIDNotIn(vs ...string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotIn(FieldWorkItemID, vs...))
}

// WorkItemIDGT applies the GT predicate on the "work_item_id" field.
func WorkItemIDGT(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGT(FieldWorkItemID, v))
}

// WorkItemIDGTE applies the GTE predicate on the "work_item_id" field.
func WorkItemIDGTE(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGTE(FieldWorkItemID, v))
}

// WorkItemIDLT applies the LT predicate on the "work_item_id" field.
func WorkItemIDLT(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLT(FieldWorkItemID, v))
}

// WorkItemIDLTE applies the LTE predicate on the "work_item_id" field.
func WorkItemIDLTE(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLTE(FieldWorkItemID, v))
}

// WorkItemIDContains applies the Contains predicate on the "work_item_id" field.
func WorkItemIDContains(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldContains(FieldWorkItemID, v))
}

// WorkItemIDHasPrefix applies the HasPrefix predicate on the "work_item_id" field.
func WorkItemIDHasPrefix(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldHasPrefix(FieldWorkItemID, v))
}

// WorkItemIDHasSuffix applies the HasSuffix predicate on the "work_item_id" field.
func WorkItemIDHasSuffix(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldHasSuffix(FieldWorkItemID, v))
}

// WorkItemIDIsNil applies the IsNil predicate on the "work_item_id" field.
func WorkItemIDIsNil() predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIsNull(FieldWorkItemID))
}

// WorkItemIDNotNil applies the NotNil predicate on the "work_item_id" field.
func WorkItemIDNotNil() predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotNull(FieldWorkItemID))
}

// WorkItemIDEqualFold applies the EqualFold predicate on the "work_item_id" field.
func WorkItemIDEqualFold(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEqualFold(FieldWorkItemID, v))
}

// WorkItemIDContainsFold applies the ContainsFold predicate on the "work_item_id" field.
func WorkItemIDContainsFold(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldContainsFold(FieldWorkItemID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldContainsFold(FieldClaimedBy, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLTE(FieldAttemptCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoutineEvent) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoutineEvent) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoutineEvent) predicate.RoutineEvent {
	return predicate.RoutineEvent(sql.NotPredicates(p))
}
