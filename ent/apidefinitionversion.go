// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/legacyuse/orchestrator/ent/apidefinition"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
	"github.com/legacyuse/orchestrator/pkg/models"
)

// APIDefinitionVersion is the model entity for the APIDefinitionVersion schema.
type APIDefinitionVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// APIDefinitionID holds the value of the "api_definition_id" field.
	APIDefinitionID string `json:"api_definition_id,omitempty"`
	// Monotonic, >= 1
	VersionNumber int `json:"version_number,omitempty"`
	// Parameters holds the value of the "parameters" field.
	Parameters []models.APIParameter `json:"parameters,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// PromptCleanup holds the value of the "prompt_cleanup" field.
	PromptCleanup string `json:"prompt_cleanup,omitempty"`
	// ResponseExample holds the value of the "response_example" field.
	ResponseExample map[string]interface{} `json:"response_example,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the APIDefinitionVersionQuery when eager-loading is set.
	Edges        APIDefinitionVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// APIDefinitionVersionEdges holds the relations/edges for other nodes in the graph.
type APIDefinitionVersionEdges struct {
	// Definition holds the value of the definition edge.
	Definition *APIDefinition `json:"definition,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DefinitionOrErr returns the Definition value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e APIDefinitionVersionEdges) DefinitionOrErr() (*APIDefinition, error) {
	if e.Definition != nil {
		return e.Definition, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: apidefinition.Label}
	}
	return nil, &NotLoadedError{edge: "definition"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*APIDefinitionVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case apidefinitionversion.FieldParameters, apidefinitionversion.FieldResponseExample:
			values[i] = new([]byte)
		case apidefinitionversion.FieldIsActive:
			values[i] = new(sql.NullBool)
		case apidefinitionversion.FieldVersionNumber:
			values[i] = new(sql.NullInt64)
		case apidefinitionversion.FieldID, apidefinitionversion.FieldAPIDefinitionID, apidefinitionversion.FieldPrompt, apidefinitionversion.FieldPromptCleanup:
			values[i] = new(sql.NullString)
		case apidefinitionversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the APIDefinitionVersion fields.
func (_m *APIDefinitionVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case apidefinitionversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case apidefinitionversion.FieldAPIDefinitionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_definition_id", values[i])
			} else if value.Valid {
				_m.APIDefinitionID = value.String
			}
		case apidefinitionversion.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				_m.VersionNumber = int(value.Int64)
			}
		case apidefinitionversion.FieldParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parameters); err != nil {
					return fmt.Errorf("unmarshal field parameters: %w", err)
				}
			}
		case apidefinitionversion.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case apidefinitionversion.FieldPromptCleanup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_cleanup", values[i])
			} else if value.Valid {
				_m.PromptCleanup = value.String
			}
		case apidefinitionversion.FieldResponseExample:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_example", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseExample); err != nil {
					return fmt.Errorf("unmarshal field response_example: %w", err)
				}
			}
		case apidefinitionversion.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case apidefinitionversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the APIDefinitionVersion.
// This includes values selected through modifiers, order, etc.
func (_m *APIDefinitionVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDefinition queries the "definition" edge of the APIDefinitionVersion entity.
func (_m *APIDefinitionVersion) QueryDefinition() *APIDefinitionQuery {
	return NewAPIDefinitionVersionClient(_m.config).QueryDefinition(_m)
}

// Update returns a builder for updating this APIDefinitionVersion.
// Note that you need to call APIDefinitionVersion.Unwrap() before calling this method if this APIDefinitionVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *APIDefinitionVersion) Update() *APIDefinitionVersionUpdateOne {
	return NewAPIDefinitionVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the APIDefinitionVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *APIDefinitionVersion) Unwrap() *APIDefinitionVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: APIDefinitionVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *APIDefinitionVersion) String() string {
	var builder strings.Builder
	builder.WriteString("APIDefinitionVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("api_definition_id=")
	builder.WriteString(_m.APIDefinitionID)
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersionNumber))
	builder.WriteString(", ")
	builder.WriteString("parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameters))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("prompt_cleanup=")
	builder.WriteString(_m.PromptCleanup)
	builder.WriteString(", ")
	builder.WriteString("response_example=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseExample))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// APIDefinitionVersions is a parsable slice of APIDefinitionVersion.
type APIDefinitionVersions []*APIDefinitionVersion
