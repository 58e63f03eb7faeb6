// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/legacyuse/orchestrator/ent/predicate"
	"github.com/legacyuse/orchestrator/ent/tenant"
)

// TenantUpdate is the builder for updating Tenant entities.
type TenantUpdate struct {
	config
	hooks    []Hook
	mutation *TenantMutation
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdate) Where(ps ...predicate.Tenant) *TenantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TenantUpdate) SetName(v string) *TenantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableName(v *string) *TenantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *TenantUpdate) SetHost(v string) *TenantUpdate {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableHost(v *string) *TenantUpdate {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetSchema sets the "schema" field.
func (_u *TenantUpdate) SetSchema(v string) *TenantUpdate {
	_u.mutation.SetSchema(v)
	return _u
}

// SetNillableSchema sets the "schema" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableSchema(v *string) *TenantUpdate {
	if v != nil {
		_u.SetSchema(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TenantUpdate) SetIsActive(v bool) *TenantUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableIsActive(v *bool) *TenantUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetClerkUserID sets the "clerk_user_id" field.
func (_u *TenantUpdate) SetClerkUserID(v string) *TenantUpdate {
	_u.mutation.SetClerkUserID(v)
	return _u
}

// SetNillableClerkUserID sets the "clerk_user_id" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableClerkUserID(v *string) *TenantUpdate {
	if v != nil {
		_u.SetClerkUserID(*v)
	}
	return _u
}

// ClearClerkUserID clears the value of the "clerk_user_id" field.
func (_u *TenantUpdate) ClearClerkUserID() *TenantUpdate {
	_u.mutation.ClearClerkUserID()
	return _u
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdate) Mutation() *TenantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TenantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(tenant.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(tenant.FieldSchema, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(tenant.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClerkUserID(); ok {
		_spec.SetField(tenant.FieldClerkUserID, field.TypeString, value)
	}
	if _u.mutation.ClerkUserIDCleared() {
		_spec.ClearField(tenant.FieldClerkUserID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantUpdateOne is the builder for updating a single Tenant entity.
type TenantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantMutation
}

// SetName sets the "name" field.
func (_u *TenantUpdateOne) SetName(v string) *TenantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableName(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *TenantUpdateOne) SetHost(v string) *TenantUpdateOne {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableHost(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetSchema sets the "schema" field.
func (_u *TenantUpdateOne) SetSchema(v string) *TenantUpdateOne {
	_u.mutation.SetSchema(v)
	return _u
}

// SetNillableSchema sets the "schema" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableSchema(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetSchema(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TenantUpdateOne) SetIsActive(v bool) *TenantUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableIsActive(v *bool) *TenantUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetClerkUserID sets the "clerk_user_id" field.
func (_u *TenantUpdateOne) SetClerkUserID(v string) *TenantUpdateOne {
	_u.mutation.SetClerkUserID(v)
	return _u
}

// SetNillableClerkUserID sets the "clerk_user_id" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableClerkUserID(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetClerkUserID(*v)
	}
	return _u
}

// ClearClerkUserID clears the value of the "clerk_user_id" field.
func (_u *TenantUpdateOne) ClearClerkUserID() *TenantUpdateOne {
	_u.mutation.ClearClerkUserID()
	return _u
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdateOne) Mutation() *TenantMutation {
	return _u.mutation
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdateOne) Where(ps ...predicate.Tenant) *TenantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantUpdateOne) Select(field string, fields ...string) *TenantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tenant entity.
func (_u *TenantUpdateOne) Save(ctx context.Context) (*Tenant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdateOne) SaveX(ctx context.Context) *Tenant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TenantUpdateOne) sqlSave(ctx context.Context) (_node *Tenant, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tenant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenant.FieldID)
		for _, f := range fields {
			if !tenant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenant.FieldID {
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
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(tenant.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(tenant.FieldSchema, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(tenant.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClerkUserID(); ok {
		_spec.SetField(tenant.FieldClerkUserID, field.TypeString, value)
	}
	if _u.mutation.ClerkUserIDCleared() {
		_spec.ClearField(tenant.FieldClerkUserID, field.TypeString)
	}
	_node = &Tenant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
