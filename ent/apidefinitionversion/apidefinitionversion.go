// Code generated by ent, DO NOT EDIT.

package apidefinitionversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the apidefinitionversion type in the database.
	Label = "api_definition_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "version_id"
	// FieldAPIDefinitionID holds the string denoting the api_definition_id field in the database.
	FieldAPIDefinitionID = "api_definition_id"
	// FieldVersionNumber holds the string denoting the version_number field in the database.
	FieldVersionNumber = "version_number"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldPromptCleanup holds the string denoting the prompt_cleanup field in the database.
	FieldPromptCleanup = "prompt_cleanup"
	// FieldResponseExample holds the string denoting the response_example field in the database.
	FieldResponseExample = "response_example"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDefinition holds the string denoting the definition edge name in mutations.
	EdgeDefinition = "definition"
	// APIDefinitionFieldID holds the string denoting the ID field of the APIDefinition.
	APIDefinitionFieldID = "api_definition_id"
	// Table holds the table name of the apidefinitionversion in the database.
	Table = "api_definition_versions"
	// DefinitionTable is the table that holds the definition relation/edge.
	DefinitionTable = "api_definition_versions"
	// DefinitionInverseTable is the table name for the APIDefinition entity.
	// It exists in this package in order to avoid circular dependency with the "apidefinition" package.
	DefinitionInverseTable = "api_definitions"
	// DefinitionColumn is the table column denoting the definition relation/edge.
	DefinitionColumn = "api_definition_id"
)

// Columns holds all SQL columns for apidefinitionversion fields.
var Columns = []string{
	FieldID,
	FieldAPIDefinitionID,
	FieldVersionNumber,
	FieldParameters,
	FieldPrompt,
	FieldPromptCleanup,
	FieldResponseExample,
	FieldIsActive,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the APIDefinitionVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAPIDefinitionID orders the results by the api_definition_id field.
func ByAPIDefinitionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIDefinitionID, opts...).ToFunc()
}

// ByVersionNumber orders the results by the version_number field.
func ByVersionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionNumber, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByPromptCleanup orders the results by the prompt_cleanup field.
func ByPromptCleanup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptCleanup, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDefinitionField orders the results by definition field.
func ByDefinitionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefinitionStep(), sql.OrderByField(field, opts...))
	}
}
func newDefinitionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefinitionInverseTable, APIDefinitionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
	)
}
