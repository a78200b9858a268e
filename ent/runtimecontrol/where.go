// Code generated by ent, DO NOT EDIT.

package runtimecontrol

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldContainsFold(FieldID, id))
}

// ProcessingEnabled applies equality check predicate on the "processing_enabled" field. It's identical to ProcessingEnabledEQ.
func ProcessingEnabled(v bool) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldProcessingEnabled, v))
}

// PauseReason applies equality check predicate on the "pause_reason" field. It's identical to PauseReasonEQ.
func PauseReason(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldPauseReason, v))
}

// ControlEpoch applies equality check predicate on the "control_epoch" field. It's identical to ControlEpochEQ.
func ControlEpoch(v int64) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldControlEpoch, v))
}

// MaxConcurrentDispatches applies equality check predicate on the "max_concurrent_dispatches" field. It's identical to MaxConcurrentDispatchesEQ.
func MaxConcurrentDispatches(v int) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldMaxConcurrentDispatches, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProcessingEnabledEQ applies the EQ predicate on the "processing_enabled" field.
func ProcessingEnabledEQ(v bool) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldProcessingEnabled, v))
}

// ProcessingEnabledNEQ applies the NEQ predicate on the "processing_enabled" field.
func ProcessingEnabledNEQ(v bool) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNEQ(FieldProcessingEnabled, v))
}

// PauseModeEQ applies the EQ predicate on the "pause_mode" field.
func PauseModeEQ(v PauseMode) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldPauseMode, v))
}

// PauseModeNEQ applies the NEQ predicate on the "pause_mode" field.
func PauseModeNEQ(v PauseMode) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNEQ(FieldPauseMode, v))
}

// PauseModeIn applies the In predicate on the "pause_mode" field.
func PauseModeIn(vs ...PauseMode) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldIn(FieldPauseMode, vs...))
}

// PauseModeNotIn applies the NotIn predicate on the "pause_mode" field.
func PauseModeNotIn(vs ...PauseMode) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNotIn(FieldPauseMode, vs...))
}

// PauseReasonEQ applies the EQ predicate on the "pause_reason" field.
func PauseReasonEQ(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldPauseReason, v))
}

// PauseReasonNEQ applies the NEQ predicate on the "pause_reason" field.
func PauseReasonNEQ(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNEQ(FieldPauseReason, v))
}

// PauseReasonIn applies the In predicate on the "pause_reason" field.
func PauseReasonIn(vs ...string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldIn(FieldPauseReason, vs...))
}

// PauseReasonNotIn applies the NotIn predicate on the "pause_reason" field.
func PauseReasonNotIn(vs ...string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNotIn(FieldPauseReason, vs...))
}

// PauseReasonGT applies the GT predicate on the "pause_reason" field.
func PauseReasonGT(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGT(FieldPauseReason, v))
}

// PauseReasonGTE applies the GTE predicate on the "pause_reason" field.
func PauseReasonGTE(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGTE(FieldPauseReason, v))
}

// PauseReasonLT applies the LT predicate on the "pause_reason" field.
func PauseReasonLT(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLT(FieldPauseReason, v))
}

// PauseReasonLTE applies the LTE predicate on the "pause_reason" field.
func PauseReasonLTE(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLTE(FieldPauseReason, v))
}

// PauseReasonContains applies the Contains predicate on the "pause_reason" field.
func PauseReasonContains(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldContains(FieldPauseReason, v))
}

// PauseReasonHasPrefix applies the HasPrefix predicate on the "pause_reason" field.
func PauseReasonHasPrefix(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldHasPrefix(FieldPauseReason, v))
}

// PauseReasonHasSuffix applies the HasSuffix predicate on the "pause_reason" field.
func PauseReasonHasSuffix(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldHasSuffix(FieldPauseReason, v))
}

// PauseReasonIsNil applies the IsNil predicate on the "pause_reason" field.
func PauseReasonIsNil() predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldIsNull(FieldPauseReason))
}

// PauseReasonNotNil applies the NotNil predicate on the "pause_reason" field.
func PauseReasonNotNil() predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNotNull(FieldPauseReason))
}

// PauseReasonEqualFold applies the EqualFold predicate on the "pause_reason" field.
func PauseReasonEqualFold(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEqualFold(FieldPauseReason, v))
}

// PauseReasonContainsFold applies the ContainsFold predicate on the "pause_reason" field.
func PauseReasonContainsFold(v string) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldContainsFold(FieldPauseReason, v))
}

// ControlEpochEQ applies the EQ predicate on the "control_epoch" field.
func ControlEpochEQ(v int64) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldControlEpoch, v))
}

// ControlEpochNEQ applies the NEQ predicate on the "control_epoch" field.
func ControlEpochNEQ(v int64) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNEQ(FieldControlEpoch, v))
}

// ControlEpochIn applies the In predicate on the "control_epoch" field.
func ControlEpochIn(vs ...int64) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldIn(FieldControlEpoch, vs...))
}

// ControlEpochNotIn applies the NotIn predicate on the "control_epoch" field.
func ControlEpochNotIn(vs ...int64) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNotIn(FieldControlEpoch, vs...))
}

// ControlEpochGT applies the GT predicate on the "control_epoch" field.
func ControlEpochGT(v int64) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGT(FieldControlEpoch, v))
}

// ControlEpochGTE applies the GTE predicate on the "control_epoch" field.
func ControlEpochGTE(v int64) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGTE(FieldControlEpoch, v))
}

// ControlEpochLT applies the LT predicate on the "control_epoch" field.
func ControlEpochLT(v int64) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLT(FieldControlEpoch, v))
}

// ControlEpochLTE applies the LTE predicate on the "control_epoch" field.
func ControlEpochLTE(v int64) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLTE(FieldControlEpoch, v))
}

// MaxConcurrentDispatchesEQ applies the EQ predicate on the "max_concurrent_dispatches" field.
func MaxConcurrentDispatchesEQ(v int) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldMaxConcurrentDispatches, v))
}

// MaxConcurrentDispatchesNEQ applies the NEQ predicate on the "max_concurrent_dispatches" field.
func MaxConcurrentDispatchesNEQ(v int) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNEQ(FieldMaxConcurrentDispatches, v))
}

// MaxConcurrentDispatchesIn applies the In predicate on the "max_concurrent_dispatches" field.
func MaxConcurrentDispatchesIn(vs ...int) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldIn(FieldMaxConcurrentDispatches, vs...))
}

// MaxConcurrentDispatchesNotIn applies the NotIn predicate on the "max_concurrent_dispatches" field.
func MaxConcurrentDispatchesNotIn(vs ...int) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNotIn(FieldMaxConcurrentDispatches, vs...))
}

// MaxConcurrentDispatchesGT applies the GT predicate on the "max_concurrent_dispatches" field.
func MaxConcurrentDispatchesGT(v int) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGT(FieldMaxConcurrentDispatches, v))
}

// MaxConcurrentDispatchesGTE applies the GTE predicate on the "max_concurrent_dispatches" field.
func MaxConcurrentDispatchesGTE(v int) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGTE(FieldMaxConcurrentDispatches, v))
}

// MaxConcurrentDispatchesLT applies the LT predicate on the "max_concurrent_dispatches" field.
func MaxConcurrentDispatchesLT(v int) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLT(FieldMaxConcurrentDispatches, v))
}

// MaxConcurrentDispatchesLTE applies the LTE predicate on the "max_concurrent_dispatches" field.
func MaxConcurrentDispatchesLTE(v int) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLTE(FieldMaxConcurrentDispatches, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RuntimeControl) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RuntimeControl) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RuntimeControl) predicate.RuntimeControl {
	return predicate.RuntimeControl(sql.NotPredicates(p))
}
