// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
	"github.com/legacyuse/orchestrator/ent/predicate"
	"github.com/legacyuse/orchestrator/pkg/models"
)

// APIDefinitionVersionUpdate is the builder for updating APIDefinitionVersion entities.
type APIDefinitionVersionUpdate struct {
	config
	hooks    []Hook
	mutation *APIDefinitionVersionMutation
}

// Where appends a list predicates to the APIDefinitionVersionUpdate builder.
func (_u *APIDefinitionVersionUpdate) Where(ps ...predicate.APIDefinitionVersion) *APIDefinitionVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *APIDefinitionVersionUpdate) SetParameters(v []models.APIParameter) *APIDefinitionVersionUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// AppendParameters appends value to the "parameters" field.
func (_u *APIDefinitionVersionUpdate) AppendParameters(v []models.APIParameter) *APIDefinitionVersionUpdate {
	_u.mutation.AppendParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *APIDefinitionVersionUpdate) ClearParameters() *APIDefinitionVersionUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *APIDefinitionVersionUpdate) SetPrompt(v string) *APIDefinitionVersionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *APIDefinitionVersionUpdate) SetNillablePrompt(v *string) *APIDefinitionVersionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetPromptCleanup sets the "prompt_cleanup" field.
func (_u *APIDefinitionVersionUpdate) SetPromptCleanup(v string) *APIDefinitionVersionUpdate {
	_u.mutation.SetPromptCleanup(v)
	return _u
}

// SetNillablePromptCleanup sets the "prompt_cleanup" field if the given value is not nil.
func (_u *APIDefinitionVersionUpdate) SetNillablePromptCleanup(v *string) *APIDefinitionVersionUpdate {
	if v != nil {
		_u.SetPromptCleanup(*v)
	}
	return _u
}

// ClearPromptCleanup clears the value of the "prompt_cleanup" field.
func (_u *APIDefinitionVersionUpdate) ClearPromptCleanup() *APIDefinitionVersionUpdate {
	_u.mutation.ClearPromptCleanup()
	return _u
}

// SetResponseExample sets the "response_example" field.
func (_u *APIDefinitionVersionUpdate) SetResponseExample(v map[string]interface{}) *APIDefinitionVersionUpdate {
	_u.mutation.SetResponseExample(v)
	return _u
}

// ClearResponseExample clears the value of the "response_example" field.
func (_u *APIDefinitionVersionUpdate) ClearResponseExample() *APIDefinitionVersionUpdate {
	_u.mutation.ClearResponseExample()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *APIDefinitionVersionUpdate) SetIsActive(v bool) *APIDefinitionVersionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *APIDefinitionVersionUpdate) SetNillableIsActive(v *bool) *APIDefinitionVersionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the APIDefinitionVersionMutation object of the builder.
func (_u *APIDefinitionVersionUpdate) Mutation() *APIDefinitionVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *APIDefinitionVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APIDefinitionVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *APIDefinitionVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APIDefinitionVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APIDefinitionVersionUpdate) check() error {
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "APIDefinitionVersion.definition"`)
	}
	return nil
}

func (_u *APIDefinitionVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apidefinitionversion.Table, apidefinitionversion.Columns, sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(apidefinitionversion.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, apidefinitionversion.FieldParameters, value)
		})
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(apidefinitionversion.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(apidefinitionversion.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptCleanup(); ok {
		_spec.SetField(apidefinitionversion.FieldPromptCleanup, field.TypeString, value)
	}
	if _u.mutation.PromptCleanupCleared() {
		_spec.ClearField(apidefinitionversion.FieldPromptCleanup, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseExample(); ok {
		_spec.SetField(apidefinitionversion.FieldResponseExample, field.TypeJSON, value)
	}
	if _u.mutation.ResponseExampleCleared() {
		_spec.ClearField(apidefinitionversion.FieldResponseExample, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(apidefinitionversion.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apidefinitionversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// APIDefinitionVersionUpdateOne is the builder for updating a single APIDefinitionVersion entity.
type APIDefinitionVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *APIDefinitionVersionMutation
}

// SetParameters sets the "parameters" field.
func (_u *APIDefinitionVersionUpdateOne) SetParameters(v []models.APIParameter) *APIDefinitionVersionUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// AppendParameters appends value to the "parameters" field.
func (_u *APIDefinitionVersionUpdateOne) AppendParameters(v []models.APIParameter) *APIDefinitionVersionUpdateOne {
	_u.mutation.AppendParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *APIDefinitionVersionUpdateOne) ClearParameters() *APIDefinitionVersionUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *APIDefinitionVersionUpdateOne) SetPrompt(v string) *APIDefinitionVersionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *APIDefinitionVersionUpdateOne) SetNillablePrompt(v *string) *APIDefinitionVersionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetPromptCleanup sets the "prompt_cleanup" field.
func (_u *APIDefinitionVersionUpdateOne) SetPromptCleanup(v string) *APIDefinitionVersionUpdateOne {
	_u.mutation.SetPromptCleanup(v)
	return _u
}

// SetNillablePromptCleanup sets the "prompt_cleanup" field if the given value is not nil.
func (_u *APIDefinitionVersionUpdateOne) SetNillablePromptCleanup(v *string) *APIDefinitionVersionUpdateOne {
	if v != nil {
		_u.SetPromptCleanup(*v)
	}
	return _u
}

// ClearPromptCleanup clears the value of the "prompt_cleanup" field.
func (_u *APIDefinitionVersionUpdateOne) ClearPromptCleanup() *APIDefinitionVersionUpdateOne {
	_u.mutation.ClearPromptCleanup()
	return _u
}

// SetResponseExample sets the "response_example" field.
func (_u *APIDefinitionVersionUpdateOne) SetResponseExample(v map[string]interface{}) *APIDefinitionVersionUpdateOne {
	_u.mutation.SetResponseExample(v)
	return _u
}

// ClearResponseExample clears the value of the "response_example" field.
func (_u *APIDefinitionVersionUpdateOne) ClearResponseExample() *APIDefinitionVersionUpdateOne {
	_u.mutation.ClearResponseExample()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *APIDefinitionVersionUpdateOne) SetIsActive(v bool) *APIDefinitionVersionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *APIDefinitionVersionUpdateOne) SetNillableIsActive(v *bool) *APIDefinitionVersionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the APIDefinitionVersionMutation object of the builder.
func (_u *APIDefinitionVersionUpdateOne) Mutation() *APIDefinitionVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the APIDefinitionVersionUpdate builder.
func (_u *APIDefinitionVersionUpdateOne) Where(ps ...predicate.APIDefinitionVersion) *APIDefinitionVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *APIDefinitionVersionUpdateOne) Select(field string, fields ...string) *APIDefinitionVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated APIDefinitionVersion entity.
func (_u *APIDefinitionVersionUpdateOne) Save(ctx context.Context) (*APIDefinitionVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APIDefinitionVersionUpdateOne) SaveX(ctx context.Context) *APIDefinitionVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *APIDefinitionVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APIDefinitionVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APIDefinitionVersionUpdateOne) check() error {
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "APIDefinitionVersion.definition"`)
	}
	return nil
}

func (_u *APIDefinitionVersionUpdateOne) sqlSave(ctx context.Context) (_node *APIDefinitionVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apidefinitionversion.Table, apidefinitionversion.Columns, sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "APIDefinitionVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apidefinitionversion.FieldID)
		for _, f := range fields {
			if !apidefinitionversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apidefinitionversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(apidefinitionversion.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, apidefinitionversion.FieldParameters, value)
		})
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(apidefinitionversion.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(apidefinitionversion.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptCleanup(); ok {
		_spec.SetField(apidefinitionversion.FieldPromptCleanup, field.TypeString, value)
	}
	if _u.mutation.PromptCleanupCleared() {
		_spec.ClearField(apidefinitionversion.FieldPromptCleanup, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseExample(); ok {
		_spec.SetField(apidefinitionversion.FieldResponseExample, field.TypeJSON, value)
	}
	if _u.mutation.ResponseExampleCleared() {
		_spec.ClearField(apidefinitionversion.FieldResponseExample, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(apidefinitionversion.FieldIsActive, field.TypeBool, value)
	}
	_node = &APIDefinitionVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apidefinitionversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
