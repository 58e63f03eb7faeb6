// Code generated by ent, DO NOT EDIT.

package apidefinitionversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/legacyuse/orchestrator/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldContainsFold(FieldID, id))
}

// APIDefinitionID applies equality check predicate on the "api_definition_id" field. It's identical to APIDefinitionIDEQ.
func APIDefinitionID(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldAPIDefinitionID, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v int) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldPrompt, v))
}

// PromptCleanup applies equality check predicate on the "prompt_cleanup" field. It's identical to PromptCleanupEQ.
func PromptCleanup(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldPromptCleanup, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// APIDefinitionIDEQ applies the EQ predicate on the "api_definition_id" field.
func APIDefinitionIDEQ(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldAPIDefinitionID, v))
}

// APIDefinitionIDNEQ applies the NEQ predicate on the "api_definition_id" field.
func APIDefinitionIDNEQ(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNEQ(FieldAPIDefinitionID, v))
}

// APIDefinitionIDIn applies the In predicate on the "api_definition_id" field.
func APIDefinitionIDIn(vs ...string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldIn(FieldAPIDefinitionID, vs...))
}

// APIDefinitionIDNotIn applies the NotIn predicate on the "api_definition_id" field.
func APIDefinitionIDNotIn(vs ...string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNotIn(FieldAPIDefinitionID, vs...))
}

// APIDefinitionIDGT applies the GT predicate on the "api_definition_id" field.
func APIDefinitionIDGT(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGT(FieldAPIDefinitionID, v))
}

// APIDefinitionIDGTE applies the GTE predicate on the "api_definition_id" field.
func APIDefinitionIDGTE(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGTE(FieldAPIDefinitionID, v))
}

// APIDefinitionIDLT applies the LT predicate on the "api_definition_id" field.
func APIDefinitionIDLT(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLT(FieldAPIDefinitionID, v))
}

// APIDefinitionIDLTE applies the LTE predicate on the "api_definition_id" field.
func APIDefinitionIDLTE(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLTE(FieldAPIDefinitionID, v))
}

// APIDefinitionIDContains applies the Contains predicate on the "api_definition_id" field.
func APIDefinitionIDContains(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldContains(FieldAPIDefinitionID, v))
}

// APIDefinitionIDHasPrefix applies the HasPrefix predicate on the "api_definition_id" field.
func APIDefinitionIDHasPrefix(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldHasPrefix(FieldAPIDefinitionID, v))
}

// APIDefinitionIDHasSuffix applies the HasSuffix predicate on the "api_definition_id" field.
func APIDefinitionIDHasSuffix(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldHasSuffix(FieldAPIDefinitionID, v))
}

// APIDefinitionIDEqualFold applies the EqualFold predicate on the "api_definition_id" field.
func APIDefinitionIDEqualFold(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEqualFold(FieldAPIDefinitionID, v))
}

// APIDefinitionIDContainsFold applies the ContainsFold predicate on the "api_definition_id" field.
func APIDefinitionIDContainsFold(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldContainsFold(FieldAPIDefinitionID, v))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v int) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v int) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...int) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...int) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v int) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v int) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v int) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v int) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLTE(FieldVersionNumber, v))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNotNull(FieldParameters))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldContainsFold(FieldPrompt, v))
}

// PromptCleanupEQ applies the EQ predicate on the "prompt_cleanup" field.
func PromptCleanupEQ(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldPromptCleanup, v))
}

// PromptCleanupNEQ applies the NEQ predicate on the "prompt_cleanup" field.
func PromptCleanupNEQ(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNEQ(FieldPromptCleanup, v))
}

// PromptCleanupIn applies the In predicate on the "prompt_cleanup" field.
func PromptCleanupIn(vs ...string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldIn(FieldPromptCleanup, vs...))
}

// PromptCleanupNotIn applies the NotIn predicate on the "prompt_cleanup" field.
func PromptCleanupNotIn(vs ...string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNotIn(FieldPromptCleanup, vs...))
}

// PromptCleanupGT applies the GT predicate on the "prompt_cleanup" field.
func PromptCleanupGT(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGT(FieldPromptCleanup, v))
}

// PromptCleanupGTE applies the GTE predicate on the "prompt_cleanup" field.
func PromptCleanupGTE(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGTE(FieldPromptCleanup, v))
}

// PromptCleanupLT applies the LT predicate on the "prompt_cleanup" field.
func PromptCleanupLT(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLT(FieldPromptCleanup, v))
}

// PromptCleanupLTE applies the LTE predicate on the "prompt_cleanup" field.
func PromptCleanupLTE(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLTE(FieldPromptCleanup, v))
}

// PromptCleanupContains applies the Contains predicate on the "prompt_cleanup" field.
func PromptCleanupContains(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldContains(FieldPromptCleanup, v))
}

// PromptCleanupHasPrefix applies the HasPrefix predicate on the "prompt_cleanup" field.
func PromptCleanupHasPrefix(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldHasPrefix(FieldPromptCleanup, v))
}

// PromptCleanupHasSuffix applies the HasSuffix predicate on the "prompt_cleanup" field.
func PromptCleanupHasSuffix(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldHasSuffix(FieldPromptCleanup, v))
}

// PromptCleanupIsNil applies the IsNil predicate on the "prompt_cleanup" field.
func PromptCleanupIsNil() predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldIsNull(FieldPromptCleanup))
}

// PromptCleanupNotNil applies the NotNil predicate on the "prompt_cleanup" field.
func PromptCleanupNotNil() predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNotNull(FieldPromptCleanup))
}

// PromptCleanupEqualFold applies the EqualFold predicate on the "prompt_cleanup" field.
func PromptCleanupEqualFold(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEqualFold(FieldPromptCleanup, v))
}

// PromptCleanupContainsFold applies the ContainsFold predicate on the "prompt_cleanup" field.
func PromptCleanupContainsFold(v string) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldContainsFold(FieldPromptCleanup, v))
}

// ResponseExampleIsNil applies the IsNil predicate on the "response_example" field.
func ResponseExampleIsNil() predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldIsNull(FieldResponseExample))
}

// ResponseExampleNotNil applies the NotNil predicate on the "response_example" field.
func ResponseExampleNotNil() predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNotNull(FieldResponseExample))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDefinition applies the HasEdge predicate on the "definition" edge.
func HasDefinition() predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefinitionWith applies the HasEdge predicate on the "definition" edge with a given conditions (other predicates).
func HasDefinitionWith(preds ...predicate.APIDefinition) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(func(s *sql.Selector) {
		step := newDefinitionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.APIDefinitionVersion) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.APIDefinitionVersion) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.APIDefinitionVersion) predicate.APIDefinitionVersion {
	return predicate.APIDefinitionVersion(sql.NotPredicates(p))
}
