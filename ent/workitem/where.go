// Code generated by ent, DO NOT EDIT.

package workitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldID, id))
}

// PluginInstanceID applies equality check predicate on the "plugin_instance_id" field. It's identical to PluginInstanceIDEQ.
func PluginInstanceID(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPluginInstanceID, v))
}

// SessionKey applies equality check predicate on the "session_key" field. It's identical to SessionKeyEQ.
func SessionKey(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldSessionKey, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldSource, v))
}

// SourceRef applies equality check predicate on the "source_ref" field. It's identical to SourceRefEQ.
func SourceRef(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldSourceRef, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldTitle, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// PluginInstanceIDEQ applies the EQ predicate on the "plugin_instance_id" field.
func PluginInstanceIDEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPluginInstanceID, v))
}

// PluginInstanceIDNEQ applies the NEQ predicate on the "plugin_instance_id" field.
func PluginInstanceIDNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldPluginInstanceID, v))
}

// PluginInstanceIDIn applies the In predicate on the "plugin_instance_id" field.
func PluginInstanceIDIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldPluginInstanceID, vs...))
}

// PluginInstanceIDNotIn applies the NotIn predicate on the "plugin_instance_id" field.
func PluginInstanceIDNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldPluginInstanceID, vs...))
}

// PluginInstanceIDGT applies the GT predicate on the "plugin_instance_id" field.
func PluginInstanceIDGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldPluginInstanceID, v))
}

// PluginInstanceIDGTE applies the GTE predicate on the "plugin_instance_id" field.
func PluginInstanceIDGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldPluginInstanceID, v))
}

// PluginInstanceIDLT applies the LT predicate on the "plugin_instance_id" field.
func PluginInstanceIDLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldPluginInstanceID, v))
}

// PluginInstanceIDLTE applies the LTE predicate on the "plugin_instance_id" field.
func PluginInstanceIDLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldPluginInstanceID, v))
}

// PluginInstanceIDContains applies the Contains predicate on the "plugin_instance_id" field.
func PluginInstanceIDContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldPluginInstanceID, v))
}

// PluginInstanceIDHasPrefix applies the HasPrefix predicate on the "plugin_instance_id" field.
func PluginInstanceIDHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldPluginInstanceID, v))
}

// PluginInstanceIDHasSuffix applies the HasSuffix predicate on the "plugin_instance_id" field.
func PluginInstanceIDHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldPluginInstanceID, v))
}

// PluginInstanceIDEqualFold applies the EqualFold predicate on the "plugin_instance_id" field.
func PluginInstanceIDEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldPluginInstanceID, v))
}

// PluginInstanceIDContainsFold applies the ContainsFold predicate on the "plugin_instance_id" field.
func PluginInstanceIDContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldPluginInstanceID, v))
}

// SessionKeyEQ applies the EQ predicate on the "session_key" field.
func SessionKeyEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldSessionKey, v))
}

// SessionKeyNEQ applies the NEQ predicate on the "session_key" field.
func SessionKeyNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldSessionKey, v))
}

// SessionKeyIn applies the In predicate on the "session_key" field.
func SessionKeyIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldSessionKey, vs...))
}

// SessionKeyNotIn applies the NotIn predicate on the "session_key" field.
func SessionKeyNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldSessionKey, vs...))
}

// SessionKeyGT applies the GT predicate on the "session_key" field.
func SessionKeyGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldSessionKey, v))
}

// SessionKeyGTE applies the GTE predicate on the "session_key" field.
func SessionKeyGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldSessionKey, v))
}

// SessionKeyLT applies the LT predicate on the "session_key" field.
func SessionKeyLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldSessionKey, v))
}

// SessionKeyLTE applies the LTE predicate on the "session_key" field.
func SessionKeyLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldSessionKey, v))
}

// SessionKeyContains applies the Contains predicate on the "session_key" field.
func SessionKeyContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldSessionKey, v))
}

// SessionKeyHasPrefix applies the HasPrefix predicate on the "session_key" field.
func SessionKeyHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldSessionKey, v))
}

// SessionKeyHasSuffix applies the HasSuffix predicate on the "session_key" field.
func SessionKeyHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldSessionKey, v))
}

// SessionKeyIsNil applies the IsNil predicate on the "session_key" field.
func SessionKeyIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldSessionKey))
}

// SessionKeyNotNil applies the NotNil predicate on the "session_key" field.
func SessionKeyNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldSessionKey))
}

// SessionKeyEqualFold applies the EqualFold predicate on the "session_key" field.
func SessionKeyEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldSessionKey, v))
}

// SessionKeyContainsFold applies the ContainsFold predicate on the "session_key" field.
func SessionKeyContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldSessionKey, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldSource, v))
}

// SourceRefEQ applies the EQ predicate on the "source_ref" field.
func SourceRefEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldSourceRef, v))
}

// SourceRefNEQ applies the NEQ predicate on the "source_ref" field.
func SourceRefNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldSourceRef, v))
}

// SourceRefIn applies the In predicate on the "source_ref" field.
func SourceRefIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldSourceRef, vs...))
}

// SourceRefNotIn applies the NotIn predicate on the "source_ref" field.
func SourceRefNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldSourceRef, vs...))
}

// SourceRefGT applies the GT predicate on the "source_ref" field.
func SourceRefGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldSourceRef, v))
}

// SourceRefGTE applies the GTE predicate on the "source_ref" field.
func SourceRefGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldSourceRef, v))
}

// SourceRefLT applies the LT predicate on the "source_ref" field.
func SourceRefLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldSourceRef, v))
}

// SourceRefLTE applies the LTE predicate on the "source_ref" field.
func SourceRefLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldSourceRef, v))
}

// SourceRefContains applies the Contains predicate on the "source_ref" field.
func SourceRefContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldSourceRef, v))
}

// SourceRefHasPrefix applies the HasPrefix predicate on the "source_ref" field.
func SourceRefHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldSourceRef, v))
}

// SourceRefHasSuffix applies the HasSuffix predicate on the "source_ref" field.
func SourceRefHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldSourceRef, v))
}

// SourceRefIsNil applies the IsNil predicate on the "source_ref" field.
func SourceRefIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldSourceRef))
}

// SourceRefNotNil applies the NotNil predicate on the "source_ref" field.
func SourceRefNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldSourceRef))
}

// SourceRefEqualFold applies the EqualFold predicate on the "source_ref" field.
func SourceRefEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldSourceRef, v))
}

// SourceRefContainsFold applies the ContainsFold predicate on the "source_ref" field.
func SourceRefContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldSourceRef, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldStatus, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldTitle, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkItem) predicate.WorkItem {
	return predicate.WorkItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkItem) predicate.WorkItem {
	return predicate.WorkItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkItem) predicate.WorkItem {
	return predicate.WorkItem(sql.NotPredicates(p))
}
