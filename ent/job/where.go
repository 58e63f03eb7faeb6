// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/legacyuse/orchestrator/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSessionID, v))
}

// APIName applies equality check predicate on the "api_name" field. It's identical to APINameEQ.
func APIName(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAPIName, v))
}

// APIDefinitionVersionID applies equality check predicate on the "api_definition_version_id" field. It's identical to APIDefinitionVersionIDEQ.
func APIDefinitionVersionID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAPIDefinitionVersionID, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldError, v))
}

// ErrorDescription applies equality check predicate on the "error_description" field. It's identical to ErrorDescriptionEQ.
func ErrorDescription(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorDescription, v))
}

// TotalInputTokens applies equality check predicate on the "total_input_tokens" field. It's identical to TotalInputTokensEQ.
func TotalInputTokens(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalInputTokens, v))
}

// TotalOutputTokens applies equality check predicate on the "total_output_tokens" field. It's identical to TotalOutputTokensEQ.
func TotalOutputTokens(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalOutputTokens, v))
}

// LeaseOwner applies equality check predicate on the "lease_owner" field. It's identical to LeaseOwnerEQ.
func LeaseOwner(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCancelRequested, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDContains applies the Contains predicate on the "target_id" field.
func TargetIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTargetID, v))
}

// TargetIDHasPrefix applies the HasPrefix predicate on the "target_id" field.
func TargetIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTargetID, v))
}

// TargetIDHasSuffix applies the HasSuffix predicate on the "target_id" field.
func TargetIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTargetID, v))
}

// TargetIDEqualFold applies the EqualFold predicate on the "target_id" field.
func TargetIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTargetID, v))
}

// TargetIDContainsFold applies the ContainsFold predicate on the "target_id" field.
func TargetIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTargetID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSessionID, v))
}

// APINameEQ applies the EQ predicate on the "api_name" field.
func APINameEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAPIName, v))
}

// APINameNEQ applies the NEQ predicate on the "api_name" field.
func APINameNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAPIName, v))
}

// APINameIn applies the In predicate on the "api_name" field.
func APINameIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAPIName, vs...))
}

// APINameNotIn applies the NotIn predicate on the "api_name" field.
func APINameNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAPIName, vs...))
}

// APINameGT applies the GT predicate on the "api_name" field.
func APINameGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAPIName, v))
}

// APINameGTE applies the GTE predicate on the "api_name" field.
func APINameGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAPIName, v))
}

// APINameLT applies the LT predicate on the "api_name" field.
func APINameLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAPIName, v))
}

// APINameLTE applies the LTE predicate on the "api_name" field.
func APINameLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAPIName, v))
}

// APINameContains applies the Contains predicate on the "api_name" field.
func APINameContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldAPIName, v))
}

// APINameHasPrefix applies the HasPrefix predicate on the "api_name" field.
func APINameHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldAPIName, v))
}

// APINameHasSuffix applies the HasSuffix predicate on the "api_name" field.
func APINameHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldAPIName, v))
}

// APINameEqualFold applies the EqualFold predicate on the "api_name" field.
func APINameEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldAPIName, v))
}

// APINameContainsFold applies the ContainsFold predicate on the "api_name" field.
func APINameContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldAPIName, v))
}

// APIDefinitionVersionIDEQ applies the EQ predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDNEQ applies the NEQ predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDIn applies the In predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAPIDefinitionVersionID, vs...))
}

// APIDefinitionVersionIDNotIn applies the NotIn predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAPIDefinitionVersionID, vs...))
}

// APIDefinitionVersionIDGT applies the GT predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDGTE applies the GTE predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDLT applies the LT predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDLTE applies the LTE predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDContains applies the Contains predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDHasPrefix applies the HasPrefix predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDHasSuffix applies the HasSuffix predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDIsNil applies the IsNil predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldAPIDefinitionVersionID))
}

// APIDefinitionVersionIDNotNil applies the NotNil predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldAPIDefinitionVersionID))
}

// APIDefinitionVersionIDEqualFold applies the EqualFold predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldAPIDefinitionVersionID, v))
}

// APIDefinitionVersionIDContainsFold applies the ContainsFold predicate on the "api_definition_version_id" field.
func APIDefinitionVersionIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldAPIDefinitionVersionID, v))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldParameters))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldResult))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldError, v))
}

// ErrorDescriptionEQ applies the EQ predicate on the "error_description" field.
func ErrorDescriptionEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorDescription, v))
}

// ErrorDescriptionNEQ applies the NEQ predicate on the "error_description" field.
func ErrorDescriptionNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorDescription, v))
}

// ErrorDescriptionIn applies the In predicate on the "error_description" field.
func ErrorDescriptionIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorDescription, vs...))
}

// ErrorDescriptionNotIn applies the NotIn predicate on the "error_description" field.
func ErrorDescriptionNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorDescription, vs...))
}

// ErrorDescriptionGT applies the GT predicate on the "error_description" field.
func ErrorDescriptionGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorDescription, v))
}

// ErrorDescriptionGTE applies the GTE predicate on the "error_description" field.
func ErrorDescriptionGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorDescription, v))
}

// ErrorDescriptionLT applies the LT predicate on the "error_description" field.
func ErrorDescriptionLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorDescription, v))
}

// ErrorDescriptionLTE applies the LTE predicate on the "error_description" field.
func ErrorDescriptionLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorDescription, v))
}

// ErrorDescriptionContains applies the Contains predicate on the "error_description" field.
func ErrorDescriptionContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorDescription, v))
}

// ErrorDescriptionHasPrefix applies the HasPrefix predicate on the "error_description" field.
func ErrorDescriptionHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorDescription, v))
}

// ErrorDescriptionHasSuffix applies the HasSuffix predicate on the "error_description" field.
func ErrorDescriptionHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorDescription, v))
}

// ErrorDescriptionIsNil applies the IsNil predicate on the "error_description" field.
func ErrorDescriptionIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorDescription))
}

// ErrorDescriptionNotNil applies the NotNil predicate on the "error_description" field.
func ErrorDescriptionNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorDescription))
}

// ErrorDescriptionEqualFold applies the EqualFold predicate on the "error_description" field.
func ErrorDescriptionEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorDescription, v))
}

// ErrorDescriptionContainsFold applies the ContainsFold predicate on the "error_description" field.
func ErrorDescriptionContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorDescription, v))
}

// TotalInputTokensEQ applies the EQ predicate on the "total_input_tokens" field.
func TotalInputTokensEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalInputTokens, v))
}

// TotalInputTokensNEQ applies the NEQ predicate on the "total_input_tokens" field.
func TotalInputTokensNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTotalInputTokens, v))
}

// TotalInputTokensIn applies the In predicate on the "total_input_tokens" field.
func TotalInputTokensIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTotalInputTokens, vs...))
}

// TotalInputTokensNotIn applies the NotIn predicate on the "total_input_tokens" field.
func TotalInputTokensNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTotalInputTokens, vs...))
}

// TotalInputTokensGT applies the GT predicate on the "total_input_tokens" field.
func TotalInputTokensGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTotalInputTokens, v))
}

// TotalInputTokensGTE applies the GTE predicate on the "total_input_tokens" field.
func TotalInputTokensGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTotalInputTokens, v))
}

// TotalInputTokensLT applies the LT predicate on the "total_input_tokens" field.
func TotalInputTokensLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTotalInputTokens, v))
}

// TotalInputTokensLTE applies the LTE predicate on the "total_input_tokens" field.
func TotalInputTokensLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTotalInputTokens, v))
}

// TotalOutputTokensEQ applies the EQ predicate on the "total_output_tokens" field.
func TotalOutputTokensEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalOutputTokens, v))
}

// TotalOutputTokensNEQ applies the NEQ predicate on the "total_output_tokens" field.
func TotalOutputTokensNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTotalOutputTokens, v))
}

// TotalOutputTokensIn applies the In predicate on the "total_output_tokens" field.
func TotalOutputTokensIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTotalOutputTokens, vs...))
}

// TotalOutputTokensNotIn applies the NotIn predicate on the "total_output_tokens" field.
func TotalOutputTokensNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTotalOutputTokens, vs...))
}

// TotalOutputTokensGT applies the GT predicate on the "total_output_tokens" field.
func TotalOutputTokensGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTotalOutputTokens, v))
}

// TotalOutputTokensGTE applies the GTE predicate on the "total_output_tokens" field.
func TotalOutputTokensGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTotalOutputTokens, v))
}

// TotalOutputTokensLT applies the LT predicate on the "total_output_tokens" field.
func TotalOutputTokensLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTotalOutputTokens, v))
}

// TotalOutputTokensLTE applies the LTE predicate on the "total_output_tokens" field.
func TotalOutputTokensLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTotalOutputTokens, v))
}

// LeaseOwnerEQ applies the EQ predicate on the "lease_owner" field.
func LeaseOwnerEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseOwnerNEQ applies the NEQ predicate on the "lease_owner" field.
func LeaseOwnerNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLeaseOwner, v))
}

// LeaseOwnerIn applies the In predicate on the "lease_owner" field.
func LeaseOwnerIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerNotIn applies the NotIn predicate on the "lease_owner" field.
func LeaseOwnerNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerGT applies the GT predicate on the "lease_owner" field.
func LeaseOwnerGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLeaseOwner, v))
}

// LeaseOwnerGTE applies the GTE predicate on the "lease_owner" field.
func LeaseOwnerGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLeaseOwner, v))
}

// LeaseOwnerLT applies the LT predicate on the "lease_owner" field.
func LeaseOwnerLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLeaseOwner, v))
}

// LeaseOwnerLTE applies the LTE predicate on the "lease_owner" field.
func LeaseOwnerLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLeaseOwner, v))
}

// LeaseOwnerContains applies the Contains predicate on the "lease_owner" field.
func LeaseOwnerContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLeaseOwner, v))
}

// LeaseOwnerHasPrefix applies the HasPrefix predicate on the "lease_owner" field.
func LeaseOwnerHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLeaseOwner, v))
}

// LeaseOwnerHasSuffix applies the HasSuffix predicate on the "lease_owner" field.
func LeaseOwnerHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLeaseOwner, v))
}

// LeaseOwnerIsNil applies the IsNil predicate on the "lease_owner" field.
func LeaseOwnerIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLeaseOwner))
}

// LeaseOwnerNotNil applies the NotNil predicate on the "lease_owner" field.
func LeaseOwnerNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLeaseOwner))
}

// LeaseOwnerEqualFold applies the EqualFold predicate on the "lease_owner" field.
func LeaseOwnerEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLeaseOwner, v))
}

// LeaseOwnerContainsFold applies the ContainsFold predicate on the "lease_owner" field.
func LeaseOwnerContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLeaseOwner, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCancelRequested, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompletedAt))
}

// HasTarget applies the HasEdge predicate on the "target" edge.
func HasTarget() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TargetTable, TargetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTargetWith applies the HasEdge predicate on the "target" edge with a given conditions (other predicates).
func HasTargetWith(preds ...predicate.Target) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newTargetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.JobMessage) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogs applies the HasEdge predicate on the "logs" edge.
func HasLogs() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogsWith applies the HasEdge predicate on the "logs" edge with a given conditions (other predicates).
func HasLogsWith(preds ...predicate.JobLog) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
