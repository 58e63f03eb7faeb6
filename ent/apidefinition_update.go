// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/legacyuse/orchestrator/ent/apidefinition"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
	"github.com/legacyuse/orchestrator/ent/predicate"
)

// APIDefinitionUpdate is the builder for updating APIDefinition entities.
type APIDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *APIDefinitionMutation
}

// Where appends a list predicates to the APIDefinitionUpdate builder.
func (_u *APIDefinitionUpdate) Where(ps ...predicate.APIDefinition) *APIDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *APIDefinitionUpdate) SetName(v string) *APIDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *APIDefinitionUpdate) SetNillableName(v *string) *APIDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *APIDefinitionUpdate) SetDescription(v string) *APIDefinitionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *APIDefinitionUpdate) SetNillableDescription(v *string) *APIDefinitionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *APIDefinitionUpdate) ClearDescription() *APIDefinitionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *APIDefinitionUpdate) SetIsArchived(v bool) *APIDefinitionUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *APIDefinitionUpdate) SetNillableIsArchived(v *bool) *APIDefinitionUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// AddVersionIDs adds the "versions" edge to the APIDefinitionVersion entity by IDs.
func (_u *APIDefinitionUpdate) AddVersionIDs(ids ...string) *APIDefinitionUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the APIDefinitionVersion entity.
func (_u *APIDefinitionUpdate) AddVersions(v ...*APIDefinitionVersion) *APIDefinitionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the APIDefinitionMutation object of the builder.
func (_u *APIDefinitionUpdate) Mutation() *APIDefinitionMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the APIDefinitionVersion entity.
func (_u *APIDefinitionUpdate) ClearVersions() *APIDefinitionUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to APIDefinitionVersion entities by IDs.
func (_u *APIDefinitionUpdate) RemoveVersionIDs(ids ...string) *APIDefinitionUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to APIDefinitionVersion entities.
func (_u *APIDefinitionUpdate) RemoveVersions(v ...*APIDefinitionVersion) *APIDefinitionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *APIDefinitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APIDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *APIDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APIDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *APIDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(apidefinition.Table, apidefinition.Columns, sqlgraph.NewFieldSpec(apidefinition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(apidefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(apidefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(apidefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(apidefinition.FieldIsArchived, field.TypeBool, value)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   apidefinition.VersionsTable,
			Columns: []string{apidefinition.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   apidefinition.VersionsTable,
			Columns: []string{apidefinition.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   apidefinition.VersionsTable,
			Columns: []string{apidefinition.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apidefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// APIDefinitionUpdateOne is the builder for updating a single APIDefinition entity.
type APIDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *APIDefinitionMutation
}

// SetName sets the "name" field.
func (_u *APIDefinitionUpdateOne) SetName(v string) *APIDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *APIDefinitionUpdateOne) SetNillableName(v *string) *APIDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *APIDefinitionUpdateOne) SetDescription(v string) *APIDefinitionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *APIDefinitionUpdateOne) SetNillableDescription(v *string) *APIDefinitionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *APIDefinitionUpdateOne) ClearDescription() *APIDefinitionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *APIDefinitionUpdateOne) SetIsArchived(v bool) *APIDefinitionUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *APIDefinitionUpdateOne) SetNillableIsArchived(v *bool) *APIDefinitionUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// AddVersionIDs adds the "versions" edge to the APIDefinitionVersion entity by IDs.
func (_u *APIDefinitionUpdateOne) AddVersionIDs(ids ...string) *APIDefinitionUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the APIDefinitionVersion entity.
func (_u *APIDefinitionUpdateOne) AddVersions(v ...*APIDefinitionVersion) *APIDefinitionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the APIDefinitionMutation object of the builder.
func (_u *APIDefinitionUpdateOne) Mutation() *APIDefinitionMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the APIDefinitionVersion entity.
func (_u *APIDefinitionUpdateOne) ClearVersions() *APIDefinitionUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to APIDefinitionVersion entities by IDs.
func (_u *APIDefinitionUpdateOne) RemoveVersionIDs(ids ...string) *APIDefinitionUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to APIDefinitionVersion entities.
func (_u *APIDefinitionUpdateOne) RemoveVersions(v ...*APIDefinitionVersion) *APIDefinitionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Where appends a list predicates to the APIDefinitionUpdate builder.
func (_u *APIDefinitionUpdateOne) Where(ps ...predicate.APIDefinition) *APIDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *APIDefinitionUpdateOne) Select(field string, fields ...string) *APIDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated APIDefinition entity.
func (_u *APIDefinitionUpdateOne) Save(ctx context.Context) (*APIDefinition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APIDefinitionUpdateOne) SaveX(ctx context.Context) *APIDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *APIDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APIDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *APIDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *APIDefinition, err error) {
	_spec := sqlgraph.NewUpdateSpec(apidefinition.Table, apidefinition.Columns, sqlgraph.NewFieldSpec(apidefinition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "APIDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apidefinition.FieldID)
		for _, f := range fields {
			if !apidefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apidefinition.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(apidefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(apidefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(apidefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(apidefinition.FieldIsArchived, field.TypeBool, value)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   apidefinition.VersionsTable,
			Columns: []string{apidefinition.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   apidefinition.VersionsTable,
			Columns: []string{apidefinition.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   apidefinition.VersionsTable,
			Columns: []string{apidefinition.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &APIDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apidefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
