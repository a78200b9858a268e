// Code generated by ent, DO NOT EDIT.

package pluginevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldContainsFold(FieldID, id))
}

// PluginID applies equality check predicate on the "plugin_id" field. It's identical to PluginIDEQ.
func PluginID(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldPluginID, v))
}

// PluginVersion applies equality check predicate on the "plugin_version" field. It's identical to PluginVersionEQ.
func PluginVersion(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldPluginVersion, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldStatus, v))
}

// WorkItemID applies equality check predicate on the "work_item_id" field. It's identical to WorkItemIDEQ.
func WorkItemID(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldWorkItemID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// PluginIDEQ applies the EQ predicate on the "plugin_id" field.
func PluginIDEQ(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldPluginID, v))
}

// PluginIDNEQ applies the NEQ predicate on the "plugin_id" field.
func PluginIDNEQ(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNEQ(FieldPluginID, v))
}

// PluginIDIn applies the In predicate on the "plugin_id" field.
func PluginIDIn(vs ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIn(FieldPluginID, vs...))
}

// PluginIDNotIn applies the NotIn predicate on the "plugin_id" field.
func PluginIDNotIn(vs ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotIn(FieldPluginID, vs...))
}

// PluginIDGT applies the GT predicate on the "plugin_id" field.
func PluginIDGT(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGT(FieldPluginID, v))
}

// PluginIDGTE applies the GTE predicate on the "plugin_id" field.
func PluginIDGTE(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGTE(FieldPluginID, v))
}

// PluginIDLT applies the LT predicate on the "plugin_id" field.
func PluginIDLT(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLT(FieldPluginID, v))
}

// PluginIDLTE applies the LTE predicate on the "plugin_id" field.
func PluginIDLTE(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLTE(FieldPluginID, v))
}

// PluginIDContains applies the Contains predicate on the "plugin_id" field.
func PluginIDContains(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldContains(FieldPluginID, v))
}

// PluginIDHasPrefix applies the HasPrefix predicate on the "plugin_id" field.
func PluginIDHasPrefix(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldHasPrefix(FieldPluginID, v))
}

// PluginIDHasSuffix applies the HasSuffix predicate on the "plugin_id" field.
func PluginIDHasSuffix(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldHasSuffix(FieldPluginID, v))
}

// PluginIDEqualFold applies the EqualFold predicate on the "plugin_id" field.
func PluginIDEqualFold(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEqualFold(FieldPluginID, v))
}

// PluginIDContainsFold applies the ContainsFold predicate on the "plugin_id" field.
func PluginIDContainsFold(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldContainsFold(FieldPluginID, v))
}

// PluginVersionEQ applies the EQ predicate on the "plugin_version" field.
func PluginVersionEQ(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldPluginVersion, v))
}

// PluginVersionNEQ applies the NEQ predicate on the "plugin_version" field.
func PluginVersionNEQ(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNEQ(FieldPluginVersion, v))
}

// PluginVersionIn applies the In predicate on the "plugin_version" field.
func PluginVersionIn(vs ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIn(FieldPluginVersion, vs...))
}

// PluginVersionNotIn applies the NotIn predicate on the "plugin_version" field.
func PluginVersionNotIn(vs ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotIn(FieldPluginVersion, vs...))
}

// PluginVersionGT applies the GT predicate on the "plugin_version" field.
func PluginVersionGT(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGT(FieldPluginVersion, v))
}

// PluginVersionGTE applies the GTE predicate on the "plugin_version" field.
func PluginVersionGTE(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGTE(FieldPluginVersion, v))
}

// PluginVersionLT applies the LT predicate on the "plugin_version" field.
func PluginVersionLT(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLT(FieldPluginVersion, v))
}

// PluginVersionLTE applies the LTE predicate on the "plugin_version" field.
func PluginVersionLTE(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLTE(FieldPluginVersion, v))
}

// PluginVersionContains applies the Contains predicate on the "plugin_version" field.
func PluginVersionContains(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldContains(FieldPluginVersion, v))
}

// PluginVersionHasPrefix applies the HasPrefix predicate on the "plugin_version" field.
func PluginVersionHasPrefix(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldHasPrefix(FieldPluginVersion, v))
}

// PluginVersionHasSuffix applies the HasSuffix predicate on the "plugin_version" field.
func PluginVersionHasSuffix(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldHasSuffix(FieldPluginVersion, v))
}

// PluginVersionIsNil applies the IsNil predicate on the "plugin_version" field.
func PluginVersionIsNil() predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIsNull(FieldPluginVersion))
}

// PluginVersionNotNil applies the NotNil predicate on the "plugin_version" field.
func PluginVersionNotNil() predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotNull(FieldPluginVersion))
}

// PluginVersionEqualFold applies the EqualFold predicate on the "plugin_version" field.
func PluginVersionEqualFold(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEqualFold(FieldPluginVersion, v))
}

// PluginVersionContainsFold applies the ContainsFold predicate on the "plugin_version" field.
func PluginVersionContainsFold(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldContainsFold(FieldPluginVersion, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldContainsFold(FieldStatus, v))
}

// WorkItemIDEQ applies the EQ predicate on the "work_item_id" field.
func WorkItemIDEQ(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldWorkItemID, v))
}

// WorkItemIDNEQ applies the NEQ predicate on the "work_item_id" field.
func WorkItemIDNEQ(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNEQ(FieldWorkItemID, v))
}

// WorkItemIDIn applies the In predicate on the "work_item_id" field.
func WorkItemIDIn(vs ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIn(FieldWorkItemID, vs...))
}

// WorkItemIDNotIn applies the NotIn predicate on the "work_item_id" field.
func WorkItemIDNotIn(vs ...string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotIn(FieldWorkItemID, vs...))
}

// WorkItemIDGT applies the GT predicate on the "work_item_id" field.
func WorkItemIDGT(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGT(FieldWorkItemID, v))
}

// WorkItemIDGTE applies the GTE predicate on the "work_item_id" field.
func WorkItemIDGTE(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGTE(FieldWorkItemID, v))
}

// WorkItemIDLT applies the LT predicate on the "work_item_id" field.
func WorkItemIDLT(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLT(FieldWorkItemID, v))
}

// WorkItemIDLTE applies the LTE predicate on the "work_item_id" field.
func WorkItemIDLTE(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLTE(FieldWorkItemID, v))
}

// WorkItemIDContains applies the Contains predicate on the "work_item_id" field.
func WorkItemIDContains(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldContains(FieldWorkItemID, v))
}

// WorkItemIDHasPrefix applies the HasPrefix predicate on the "work_item_id" field.
func WorkItemIDHasPrefix(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldHasPrefix(FieldWorkItemID, v))
}

// WorkItemIDHasSuffix applies the HasSuffix predicate on the "work_item_id" field.
func WorkItemIDHasSuffix(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldHasSuffix(FieldWorkItemID, v))
}

// WorkItemIDIsNil applies the IsNil predicate on the "work_item_id" field.
func WorkItemIDIsNil() predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIsNull(FieldWorkItemID))
}

// WorkItemIDNotNil applies the NotNil predicate on the "work_item_id" field.
func WorkItemIDNotNil() predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotNull(FieldWorkItemID))
}

// WorkItemIDEqualFold applies the EqualFold predicate on the "work_item_id" field.
func WorkItemIDEqualFold(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEqualFold(FieldWorkItemID, v))
}

// WorkItemIDContainsFold applies the ContainsFold predicate on the "work_item_id" field.
func WorkItemIDContainsFold(v string) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldContainsFold(FieldWorkItemID, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotNull(FieldDetail))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PluginEvent {
	return predicate.PluginEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PluginEvent) predicate.PluginEvent {
	return predicate.PluginEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PluginEvent) predicate.PluginEvent {
	return predicate.PluginEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PluginEvent) predicate.PluginEvent {
	return predicate.PluginEvent(sql.NotPredicates(p))
}
