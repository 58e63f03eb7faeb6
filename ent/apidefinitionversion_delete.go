// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
	"github.com/legacyuse/orchestrator/ent/predicate"
)

// APIDefinitionVersionDelete is the builder for deleting a APIDefinitionVersion entity.
type APIDefinitionVersionDelete struct {
	config
	hooks    []Hook
	mutation *APIDefinitionVersionMutation
}

// Where appends a list predicates to the APIDefinitionVersionDelete builder.
func (_d *APIDefinitionVersionDelete) Where(ps ...predicate.APIDefinitionVersion) *APIDefinitionVersionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *APIDefinitionVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *APIDefinitionVersionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *APIDefinitionVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(apidefinitionversion.Table, sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// APIDefinitionVersionDeleteOne is the builder for deleting a single APIDefinitionVersion entity.
type APIDefinitionVersionDeleteOne struct {
	_d *APIDefinitionVersionDelete
}

// Where appends a list predicates to the APIDefinitionVersionDelete builder.
func (_d *APIDefinitionVersionDeleteOne) Where(ps ...predicate.APIDefinitionVersion) *APIDefinitionVersionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *APIDefinitionVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{apidefinitionversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *APIDefinitionVersionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
