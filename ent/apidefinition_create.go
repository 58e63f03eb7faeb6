// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/legacyuse/orchestrator/ent/apidefinition"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
)

// APIDefinitionCreate is the builder for creating a APIDefinition entity.
type APIDefinitionCreate struct {
	config
	mutation *APIDefinitionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *APIDefinitionCreate) SetName(v string) *APIDefinitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *APIDefinitionCreate) SetDescription(v string) *APIDefinitionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *APIDefinitionCreate) SetNillableDescription(v *string) *APIDefinitionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *APIDefinitionCreate) SetIsArchived(v bool) *APIDefinitionCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *APIDefinitionCreate) SetNillableIsArchived(v *bool) *APIDefinitionCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *APIDefinitionCreate) SetCreatedAt(v time.Time) *APIDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *APIDefinitionCreate) SetNillableCreatedAt(v *time.Time) *APIDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *APIDefinitionCreate) SetID(v string) *APIDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddVersionIDs adds the "versions" edge to the APIDefinitionVersion entity by IDs.
func (_c *APIDefinitionCreate) AddVersionIDs(ids ...string) *APIDefinitionCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the APIDefinitionVersion entity.
func (_c *APIDefinitionCreate) AddVersions(v ...*APIDefinitionVersion) *APIDefinitionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// Mutation returns the APIDefinitionMutation object of the builder.
func (_c *APIDefinitionCreate) Mutation() *APIDefinitionMutation {
	return _c.mutation
}

// Save creates the APIDefinition in the database.
func (_c *APIDefinitionCreate) Save(ctx context.Context) (*APIDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *APIDefinitionCreate) SaveX(ctx context.Context) *APIDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APIDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APIDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *APIDefinitionCreate) defaults() {
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := apidefinition.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := apidefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *APIDefinitionCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "APIDefinition.name"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`ent: missing required field "APIDefinition.is_archived"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "APIDefinition.created_at"`)}
	}
	return nil
}

func (_c *APIDefinitionCreate) sqlSave(ctx context.Context) (*APIDefinition, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected APIDefinition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *APIDefinitionCreate) createSpec() (*APIDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &APIDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apidefinition.Table, sqlgraph.NewFieldSpec(apidefinition.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(apidefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(apidefinition.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(apidefinition.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(apidefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.APIDefinition.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.APIDefinitionUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *APIDefinitionCreate) OnConflict(opts ...sql.ConflictOption) *APIDefinitionUpsertOne {
	_c.conflict = opts
	return &APIDefinitionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.APIDefinition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *APIDefinitionCreate) OnConflictColumns(columns ...string) *APIDefinitionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &APIDefinitionUpsertOne{
		create: _c,
	}
}

type (
	// APIDefinitionUpsertOne is the builder for "upsert"-ing
	//  one APIDefinition node.
	APIDefinitionUpsertOne struct {
		create *APIDefinitionCreate
	}

	// APIDefinitionUpsert is the "OnConflict" setter.
	APIDefinitionUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *APIDefinitionUpsert) SetName(v string) *APIDefinitionUpsert {
	u.Set(apidefinition.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *APIDefinitionUpsert) UpdateName() *APIDefinitionUpsert {
	u.SetExcluded(apidefinition.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *APIDefinitionUpsert) SetDescription(v string) *APIDefinitionUpsert {
	u.Set(apidefinition.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *APIDefinitionUpsert) UpdateDescription() *APIDefinitionUpsert {
	u.SetExcluded(apidefinition.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *APIDefinitionUpsert) ClearDescription() *APIDefinitionUpsert {
	u.SetNull(apidefinition.FieldDescription)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *APIDefinitionUpsert) SetIsArchived(v bool) *APIDefinitionUpsert {
	u.Set(apidefinition.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *APIDefinitionUpsert) UpdateIsArchived() *APIDefinitionUpsert {
	u.SetExcluded(apidefinition.FieldIsArchived)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.APIDefinition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(apidefinition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *APIDefinitionUpsertOne) UpdateNewValues() *APIDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(apidefinition.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(apidefinition.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.APIDefinition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *APIDefinitionUpsertOne) Ignore() *APIDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *APIDefinitionUpsertOne) DoNothing() *APIDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the APIDefinitionCreate.OnConflict
// documentation for more info.
func (u *APIDefinitionUpsertOne) Update(set func(*APIDefinitionUpsert)) *APIDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&APIDefinitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *APIDefinitionUpsertOne) SetName(v string) *APIDefinitionUpsertOne {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *APIDefinitionUpsertOne) UpdateName() *APIDefinitionUpsertOne {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *APIDefinitionUpsertOne) SetDescription(v string) *APIDefinitionUpsertOne {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *APIDefinitionUpsertOne) UpdateDescription() *APIDefinitionUpsertOne {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *APIDefinitionUpsertOne) ClearDescription() *APIDefinitionUpsertOne {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.ClearDescription()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *APIDefinitionUpsertOne) SetIsArchived(v bool) *APIDefinitionUpsertOne {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *APIDefinitionUpsertOne) UpdateIsArchived() *APIDefinitionUpsertOne {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.UpdateIsArchived()
	})
}

// Exec executes the query.
func (u *APIDefinitionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for APIDefinitionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *APIDefinitionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *APIDefinitionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: APIDefinitionUpsertOne.ID is not supported by MySQL driver. Use APIDefinitionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *APIDefinitionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// APIDefinitionCreateBulk is the builder for creating many APIDefinition entities in bulk.
type APIDefinitionCreateBulk struct {
	config
	err      error
	builders []*APIDefinitionCreate
	conflict []sql.ConflictOption
}

// Save creates the APIDefinition entities in the database.
func (_c *APIDefinitionCreateBulk) Save(ctx context.Context) ([]*APIDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*APIDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*APIDefinitionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *APIDefinitionCreateBulk) SaveX(ctx context.Context) []*APIDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APIDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APIDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.APIDefinition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.APIDefinitionUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *APIDefinitionCreateBulk) OnConflict(opts ...sql.ConflictOption) *APIDefinitionUpsertBulk {
	_c.conflict = opts
	return &APIDefinitionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.APIDefinition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *APIDefinitionCreateBulk) OnConflictColumns(columns ...string) *APIDefinitionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &APIDefinitionUpsertBulk{
		create: _c,
	}
}

// APIDefinitionUpsertBulk is the builder for "upsert"-ing
// a bulk of APIDefinition nodes.
type APIDefinitionUpsertBulk struct {
	create *APIDefinitionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.APIDefinition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(apidefinition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *APIDefinitionUpsertBulk) UpdateNewValues() *APIDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(apidefinition.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(apidefinition.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.APIDefinition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *APIDefinitionUpsertBulk) Ignore() *APIDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *APIDefinitionUpsertBulk) DoNothing() *APIDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the APIDefinitionCreateBulk.OnConflict
// documentation for more info.
func (u *APIDefinitionUpsertBulk) Update(set func(*APIDefinitionUpsert)) *APIDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&APIDefinitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *APIDefinitionUpsertBulk) SetName(v string) *APIDefinitionUpsertBulk {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *APIDefinitionUpsertBulk) UpdateName() *APIDefinitionUpsertBulk {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *APIDefinitionUpsertBulk) SetDescription(v string) *APIDefinitionUpsertBulk {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *APIDefinitionUpsertBulk) UpdateDescription() *APIDefinitionUpsertBulk {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *APIDefinitionUpsertBulk) ClearDescription() *APIDefinitionUpsertBulk {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.ClearDescription()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *APIDefinitionUpsertBulk) SetIsArchived(v bool) *APIDefinitionUpsertBulk {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *APIDefinitionUpsertBulk) UpdateIsArchived() *APIDefinitionUpsertBulk {
	return u.Update(func(s *APIDefinitionUpsert) {
		s.UpdateIsArchived()
	})
}

// Exec executes the query.
func (u *APIDefinitionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the APIDefinitionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for APIDefinitionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *APIDefinitionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
