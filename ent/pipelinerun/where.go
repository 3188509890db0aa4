// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldID, id))
}

// IncludeInstagram applies equality check predicate on the "include_instagram" field. It's identical to IncludeInstagramEQ.
func IncludeInstagram(v bool) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldIncludeInstagram, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCurrentStep, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCancelRequested, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldPodID, v))
}

// PipelineVersion applies equality check predicate on the "pipeline_version" field. It's identical to PipelineVersionEQ.
func PipelineVersion(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldPipelineVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStatus, vs...))
}

// IncludeInstagramEQ applies the EQ predicate on the "include_instagram" field.
func IncludeInstagramEQ(v bool) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldIncludeInstagram, v))
}

// IncludeInstagramNEQ applies the NEQ predicate on the "include_instagram" field.
func IncludeInstagramNEQ(v bool) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldIncludeInstagram, v))
}

// StepStatesIsNil applies the IsNil predicate on the "step_states" field.
func StepStatesIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldStepStates))
}

// StepStatesNotNil applies the NotNil predicate on the "step_states" field.
func StepStatesNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldStepStates))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepContains applies the Contains predicate on the "current_step" field.
func CurrentStepContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldCurrentStep, v))
}

// CurrentStepHasPrefix applies the HasPrefix predicate on the "current_step" field.
func CurrentStepHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldCurrentStep, v))
}

// CurrentStepHasSuffix applies the HasSuffix predicate on the "current_step" field.
func CurrentStepHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldCurrentStep))
}

// CurrentStepEqualFold applies the EqualFold predicate on the "current_step" field.
func CurrentStepEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldCurrentStep, v))
}

// CurrentStepContainsFold applies the ContainsFold predicate on the "current_step" field.
func CurrentStepContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldCurrentStep, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCancelRequested, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldPodID, v))
}

// PipelineVersionEQ applies the EQ predicate on the "pipeline_version" field.
func PipelineVersionEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldPipelineVersion, v))
}

// PipelineVersionNEQ applies the NEQ predicate on the "pipeline_version" field.
func PipelineVersionNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldPipelineVersion, v))
}

// PipelineVersionIn applies the In predicate on the "pipeline_version" field.
func PipelineVersionIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldPipelineVersion, vs...))
}

// PipelineVersionNotIn applies the NotIn predicate on the "pipeline_version" field.
func PipelineVersionNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldPipelineVersion, vs...))
}

// PipelineVersionGT applies the GT predicate on the "pipeline_version" field.
func PipelineVersionGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldPipelineVersion, v))
}

// PipelineVersionGTE applies the GTE predicate on the "pipeline_version" field.
func PipelineVersionGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldPipelineVersion, v))
}

// PipelineVersionLT applies the LT predicate on the "pipeline_version" field.
func PipelineVersionLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldPipelineVersion, v))
}

// PipelineVersionLTE applies the LTE predicate on the "pipeline_version" field.
func PipelineVersionLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldPipelineVersion, v))
}

// PipelineVersionContains applies the Contains predicate on the "pipeline_version" field.
func PipelineVersionContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldPipelineVersion, v))
}

// PipelineVersionHasPrefix applies the HasPrefix predicate on the "pipeline_version" field.
func PipelineVersionHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldPipelineVersion, v))
}

// PipelineVersionHasSuffix applies the HasSuffix predicate on the "pipeline_version" field.
func PipelineVersionHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldPipelineVersion, v))
}

// PipelineVersionIsNil applies the IsNil predicate on the "pipeline_version" field.
func PipelineVersionIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldPipelineVersion))
}

// PipelineVersionNotNil applies the NotNil predicate on the "pipeline_version" field.
func PipelineVersionNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldPipelineVersion))
}

// PipelineVersionEqualFold applies the EqualFold predicate on the "pipeline_version" field.
func PipelineVersionEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldPipelineVersion, v))
}

// PipelineVersionContainsFold applies the ContainsFold predicate on the "pipeline_version" field.
func PipelineVersionContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldPipelineVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.NotPredicates(p))
}
