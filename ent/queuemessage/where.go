// Code generated by ent, DO NOT EDIT.

package queuemessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldID, id))
}

// QueueKey applies equality check predicate on the "queue_key" field. It's identical to QueueKeyEQ.
func QueueKey(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldQueueKey, v))
}

// WorkItemID applies equality check predicate on the "work_item_id" field. It's identical to WorkItemIDEQ.
func WorkItemID(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldWorkItemID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldText, v))
}

// SenderName applies equality check predicate on the "sender_name" field. It's identical to SenderNameEQ.
func SenderName(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldSenderName, v))
}

// ArrivedAt applies equality check predicate on the "arrived_at" field. It's identical to ArrivedAtEQ.
func ArrivedAt(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldArrivedAt, v))
}

// DispatchID applies equality check predicate on the "dispatch_id" field. It's identical to DispatchIDEQ.
func DispatchID(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldDispatchID, v))
}

// QueueKeyEQ applies the EQ predicate on the "queue_key" field.
func QueueKeyEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldQueueKey, v))
}

// QueueKeyNEQ applies the NEQ predicate on the "queue_key" field.
func QueueKeyNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldQueueKey, v))
}

// QueueKeyIn applies the In predicate on the "queue_key" field.
func QueueKeyIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldQueueKey, vs...))
}

// QueueKeyNotIn applies the NotIn predicate on the "queue_key" field.
func QueueKeyNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldQueueKey, vs...))
}

// QueueKeyGT applies the GT predicate on the "queue_key" field.
func QueueKeyGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldQueueKey, v))
}

// QueueKeyGTE applies the GTE predicate on the "queue_key" field.
func QueueKeyGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldQueueKey, v))
}

// QueueKeyLT applies the LT predicate on the "queue_key" field.
func QueueKeyLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldQueueKey, v))
}

// QueueKeyLTE applies the LTE predicate on the "queue_key" field.
func QueueKeyLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldQueueKey, v))
}

// QueueKeyContains applies the Contains predicate on the "queue_key" field.
func QueueKeyContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldQueueKey, v))
}

// QueueKeyHasPrefix applies the HasPrefix predicate on the "queue_key" field.
func QueueKeyHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldQueueKey, v))
}

// QueueKeyHasSuffix applies the HasSuffix predicate on the "queue_key" field.
func QueueKeyHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldQueueKey, v))
}

// QueueKeyEqualFold applies the EqualFold predicate on the "queue_key" field.
func QueueKeyEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldQueueKey, v))
}

// QueueKeyContainsFold applies the ContainsFold predicate on the "queue_key" field.
func QueueKeyContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldQueueKey, v))
}

// WorkItemIDEQ applies the EQ predicate on the "work_item_id" field.
func WorkItemIDEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldWorkItemID, v))
}

// WorkItemIDNEQ applies the NEQ predicate on the "work_item_id" field.
func WorkItemIDNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldWorkItemID, v))
}

// WorkItemIDIn applies the In predicate on the "work_item_id" field.
func WorkItemIDIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldWorkItemID, vs...))
}

// WorkItemIDNotIn applies the NotIn predicate on the "work_item_id" field.
func WorkItemIDNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldWorkItemID, vs...))
}

// WorkItemIDGT applies the GT predicate on the "work_item_id" field.
func WorkItemIDGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldWorkItemID, v))
}

// WorkItemIDGTE applies the GTE predicate on the "work_item_id" field.
func WorkItemIDGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldWorkItemID, v))
}

// WorkItemIDLT applies the LT predicate on the "work_item_id" field.
func WorkItemIDLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldWorkItemID, v))
}

// WorkItemIDLTE applies the LTE predicate on the "work_item_id" field.
func WorkItemIDLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldWorkItemID, v))
}

// WorkItemIDContains applies the Contains predicate on the "work_item_id" field.
func WorkItemIDContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldWorkItemID, v))
}

// WorkItemIDHasPrefix applies the HasPrefix predicate on the "work_item_id" field.
func WorkItemIDHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldWorkItemID, v))
}

// WorkItemIDHasSuffix applies the HasSuffix predicate on the "work_item_id" field.
func WorkItemIDHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldWorkItemID, v))
}

// WorkItemIDIsNil applies the IsNil predicate on the "work_item_id" field.
func WorkItemIDIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldWorkItemID))
}

// WorkItemIDNotNil applies the NotNil predicate on the "work_item_id" field.
func WorkItemIDNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldWorkItemID))
}

// WorkItemIDEqualFold applies the EqualFold predicate on the "work_item_id" field.
func WorkItemIDEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldWorkItemID, v))
}

// WorkItemIDContainsFold applies the ContainsFold predicate on the "work_item_id" field.
func WorkItemIDContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldWorkItemID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldText, v))
}

// SenderNameEQ applies the EQ predicate on the "sender_name" field.
func SenderNameEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldSenderName, v))
}

// SenderNameNEQ applies the NEQ predicate on the "sender_name" field.
func SenderNameNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldSenderName, v))
}

// SenderNameIn applies the In predicate on the "sender_name" field.
func SenderNameIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldSenderName, vs...))
}

// SenderNameNotIn applies the NotIn predicate on the "sender_name" field.
func SenderNameNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldSenderName, vs...))
}

// SenderNameGT applies the GT predicate on the "sender_name" field.
func SenderNameGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldSenderName, v))
}

// SenderNameGTE applies the GTE predicate on the "sender_name" field.
func SenderNameGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldSenderName, v))
}

// SenderNameLT applies the LT predicate on the "sender_name" field.
func SenderNameLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldSenderName, v))
}

// SenderNameLTE applies the LTE predicate on the "sender_name" field.
func SenderNameLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldSenderName, v))
}

// SenderNameContains applies the Contains predicate on the "sender_name" field.
func SenderNameContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldSenderName, v))
}

// SenderNameHasPrefix applies the HasPrefix predicate on the "sender_name" field.
func SenderNameHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldSenderName, v))
}

// SenderNameHasSuffix applies the HasSuffix predicate on the "sender_name" field.
func SenderNameHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldSenderName, v))
}

// SenderNameIsNil applies the IsNil predicate on the "sender_name" field.
func SenderNameIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldSenderName))
}

// SenderNameNotNil applies the NotNil predicate on the "sender_name" field.
func SenderNameNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldSenderName))
}

// SenderNameEqualFold applies the EqualFold predicate on the "sender_name" field.
func SenderNameEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldSenderName, v))
}

// SenderNameContainsFold applies the ContainsFold predicate on the "sender_name" field.
func SenderNameContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldSenderName, v))
}

// ArrivedAtEQ applies the EQ predicate on the "arrived_at" field.
func ArrivedAtEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldArrivedAt, v))
}

// ArrivedAtNEQ applies the NEQ predicate on the "arrived_at" field.
func ArrivedAtNEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldArrivedAt, v))
}

// ArrivedAtIn applies the In predicate on the "arrived_at" field.
func ArrivedAtIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldArrivedAt, vs...))
}

// ArrivedAtNotIn applies the NotIn predicate on the "arrived_at" field.
func ArrivedAtNotIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldArrivedAt, vs...))
}

// ArrivedAtGT applies the GT predicate on the "arrived_at" field.
func ArrivedAtGT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldArrivedAt, v))
}

// ArrivedAtGTE applies the GTE predicate on the "arrived_at" field.
func ArrivedAtGTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldArrivedAt, v))
}

// ArrivedAtLT applies the LT predicate on the "arrived_at" field.
func ArrivedAtLT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldArrivedAt, v))
}

// ArrivedAtLTE applies the LTE predicate on the "arrived_at" field.
func ArrivedAtLTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldArrivedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// DispatchIDEQ applies the EQ predicate on the "dispatch_id" field.
func DispatchIDEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldDispatchID, v))
}

// DispatchIDNEQ applies the NEQ predicate on the "dispatch_id" field.
func DispatchIDNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldDispatchID, v))
}

// DispatchIDIn applies the In predicate on the "dispatch_id" field.
func DispatchIDIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldDispatchID, vs...))
}

// DispatchIDNotIn applies the NotIn predicate on the "dispatch_id" field.
func DispatchIDNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldDispatchID, vs...))
}

// DispatchIDGT applies the GT predicate on the "dispatch_id" field.
func DispatchIDGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldDispatchID, v))
}

// DispatchIDGTE applies the GTE predicate on the "dispatch_id" field.
func DispatchIDGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldDispatchID, v))
}

// DispatchIDLT applies the LT predicate on the "dispatch_id" field.
func DispatchIDLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldDispatchID, v))
}

// DispatchIDLTE applies the LTE predicate on the "dispatch_id" field.
func DispatchIDLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldDispatchID, v))
}

// DispatchIDContains applies the Contains predicate on the "dispatch_id" field.
func DispatchIDContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldDispatchID, v))
}

// DispatchIDHasPrefix applies the HasPrefix predicate on the "dispatch_id" field.
func DispatchIDHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldDispatchID, v))
}

// DispatchIDHasSuffix applies the HasSuffix predicate on the "dispatch_id" field.
func DispatchIDHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldDispatchID, v))
}

// DispatchIDIsNil applies the IsNil predicate on the "dispatch_id" field.
func DispatchIDIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldDispatchID))
}

// DispatchIDNotNil applies the NotNil predicate on the "dispatch_id" field.
func DispatchIDNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldDispatchID))
}

// DispatchIDEqualFold applies the EqualFold predicate on the "dispatch_id" field.
func DispatchIDEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldDispatchID, v))
}

// DispatchIDContainsFold applies the ContainsFold predicate on the "dispatch_id" field.
func DispatchIDContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldDispatchID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueueMessage) predicate.QueueMessage {
	return predicate.QueueMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueueMessage) predicate.QueueMessage {
	return predicate.QueueMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueueMessage) predicate.QueueMessage {
	return predicate.QueueMessage(sql.NotPredicates(p))
}
