// Code generated by ent, DO NOT EDIT.

package idempotencykey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldContainsFold(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldKey, v))
}

// WorkItemID applies equality check predicate on the "work_item_id" field. It's identical to WorkItemIDEQ.
func WorkItemID(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldWorkItemID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldCreatedAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldContainsFold(FieldKey, v))
}

// WorkItemIDEQ applies the EQ predicate on the "work_item_id" field.
func WorkItemIDEQ(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldWorkItemID, v))
}

// WorkItemIDNEQ applies the NEQ predicate on the "work_item_id" field.
func WorkItemIDNEQ(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldWorkItemID, v))
}

// WorkItemIDIn applies the In predicate on the "work_item_id" field.
func WorkItemIDIn(vs ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldWorkItemID, vs...))
}

// WorkItemIDNotIn applies the NotIn predicate on the "work_item_id" field.
func WorkItemIDNotIn(vs ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldWorkItemID, vs...))
}

// WorkItemIDGT applies the GT predicate on the "work_item_id" field.
func WorkItemIDGT(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldWorkItemID, v))
}

// WorkItemIDGTE applies the GTE predicate on the "work_item_id" field.
func WorkItemIDGTE(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldWorkItemID, v))
}

// WorkItemIDLT applies the LT predicate on the "work_item_id" field.
func WorkItemIDLT(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldWorkItemID, v))
}

// WorkItemIDLTE applies the LTE predicate on the "work_item_id" field.
func WorkItemIDLTE(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldWorkItemID, v))
}

// WorkItemIDContains applies the Contains predicate on the "work_item_id" field.
func WorkItemIDContains(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldContains(FieldWorkItemID, v))
}

// WorkItemIDHasPrefix applies the HasPrefix predicate on the "work_item_id" field.
func WorkItemIDHasPrefix(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldHasPrefix(FieldWorkItemID, v))
}

// WorkItemIDHasSuffix applies the HasSuffix predicate on the "work_item_id" field.
func WorkItemIDHasSuffix(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldHasSuffix(FieldWorkItemID, v))
}

// WorkItemIDEqualFold applies the EqualFold predicate on the "work_item_id" field.
func WorkItemIDEqualFold(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEqualFold(FieldWorkItemID, v))
}

// WorkItemIDContainsFold applies the ContainsFold predicate on the "work_item_id" field.
func WorkItemIDContainsFold(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldContainsFold(FieldWorkItemID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IdempotencyKey) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IdempotencyKey) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IdempotencyKey) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.NotPredicates(p))
}
