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
	"github.com/legacyuse/orchestrator/pkg/models"
)

// APIDefinitionVersionCreate is the builder for creating a APIDefinitionVersion entity.
type APIDefinitionVersionCreate struct {
	config
	mutation *APIDefinitionVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAPIDefinitionID sets the "api_definition_id" field.
func (_c *APIDefinitionVersionCreate) SetAPIDefinitionID(v string) *APIDefinitionVersionCreate {
	_c.mutation.SetAPIDefinitionID(v)
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *APIDefinitionVersionCreate) SetVersionNumber(v int) *APIDefinitionVersionCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *APIDefinitionVersionCreate) SetParameters(v []models.APIParameter) *APIDefinitionVersionCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *APIDefinitionVersionCreate) SetPrompt(v string) *APIDefinitionVersionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetPromptCleanup sets the "prompt_cleanup" field.
func (_c *APIDefinitionVersionCreate) SetPromptCleanup(v string) *APIDefinitionVersionCreate {
	_c.mutation.SetPromptCleanup(v)
	return _c
}

// SetNillablePromptCleanup sets the "prompt_cleanup" field if the given value is not nil.
func (_c *APIDefinitionVersionCreate) SetNillablePromptCleanup(v *string) *APIDefinitionVersionCreate {
	if v != nil {
		_c.SetPromptCleanup(*v)
	}
	return _c
}

// SetResponseExample sets the "response_example" field.
func (_c *APIDefinitionVersionCreate) SetResponseExample(v map[string]interface{}) *APIDefinitionVersionCreate {
	_c.mutation.SetResponseExample(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *APIDefinitionVersionCreate) SetIsActive(v bool) *APIDefinitionVersionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *APIDefinitionVersionCreate) SetNillableIsActive(v *bool) *APIDefinitionVersionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *APIDefinitionVersionCreate) SetCreatedAt(v time.Time) *APIDefinitionVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *APIDefinitionVersionCreate) SetNillableCreatedAt(v *time.Time) *APIDefinitionVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *APIDefinitionVersionCreate) SetID(v string) *APIDefinitionVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDefinitionID sets the "definition" edge to the APIDefinition entity by ID.
func (_c *APIDefinitionVersionCreate) SetDefinitionID(id string) *APIDefinitionVersionCreate {
	_c.mutation.SetDefinitionID(id)
	return _c
}

// SetDefinition sets the "definition" edge to the APIDefinition entity.
func (_c *APIDefinitionVersionCreate) SetDefinition(v *APIDefinition) *APIDefinitionVersionCreate {
	return _c.SetDefinitionID(v.ID)
}

// Mutation returns the APIDefinitionVersionMutation object of the builder.
func (_c *APIDefinitionVersionCreate) Mutation() *APIDefinitionVersionMutation {
	return _c.mutation
}

// Save creates the APIDefinitionVersion in the database.
func (_c *APIDefinitionVersionCreate) Save(ctx context.Context) (*APIDefinitionVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *APIDefinitionVersionCreate) SaveX(ctx context.Context) *APIDefinitionVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APIDefinitionVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APIDefinitionVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *APIDefinitionVersionCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := apidefinitionversion.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := apidefinitionversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *APIDefinitionVersionCreate) check() error {
	if _, ok := _c.mutation.APIDefinitionID(); !ok {
		return &ValidationError{Name: "api_definition_id", err: errors.New(`ent: missing required field "APIDefinitionVersion.api_definition_id"`)}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "APIDefinitionVersion.version_number"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "APIDefinitionVersion.prompt"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "APIDefinitionVersion.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "APIDefinitionVersion.created_at"`)}
	}
	if len(_c.mutation.DefinitionIDs()) == 0 {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required edge "APIDefinitionVersion.definition"`)}
	}
	return nil
}

func (_c *APIDefinitionVersionCreate) sqlSave(ctx context.Context) (*APIDefinitionVersion, error) {
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
			return nil, fmt.Errorf("unexpected APIDefinitionVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *APIDefinitionVersionCreate) createSpec() (*APIDefinitionVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &APIDefinitionVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apidefinitionversion.Table, sqlgraph.NewFieldSpec(apidefinitionversion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(apidefinitionversion.FieldVersionNumber, field.TypeInt, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(apidefinitionversion.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(apidefinitionversion.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.PromptCleanup(); ok {
		_spec.SetField(apidefinitionversion.FieldPromptCleanup, field.TypeString, value)
		_node.PromptCleanup = value
	}
	if value, ok := _c.mutation.ResponseExample(); ok {
		_spec.SetField(apidefinitionversion.FieldResponseExample, field.TypeJSON, value)
		_node.ResponseExample = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(apidefinitionversion.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(apidefinitionversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DefinitionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   apidefinitionversion.DefinitionTable,
			Columns: []string{apidefinitionversion.DefinitionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apidefinition.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.APIDefinitionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.APIDefinitionVersion.Create().
//		SetAPIDefinitionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.APIDefinitionVersionUpsert) {
//			SetAPIDefinitionID(v+v).
//		}).
//		Exec(ctx)
func (_c *APIDefinitionVersionCreate) OnConflict(opts ...sql.ConflictOption) *APIDefinitionVersionUpsertOne {
	_c.conflict = opts
	return &APIDefinitionVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.APIDefinitionVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *APIDefinitionVersionCreate) OnConflictColumns(columns ...string) *APIDefinitionVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &APIDefinitionVersionUpsertOne{
		create: _c,
	}
}

type (
	// APIDefinitionVersionUpsertOne is the builder for "upsert"-ing
	//  one APIDefinitionVersion node.
	APIDefinitionVersionUpsertOne struct {
		create *APIDefinitionVersionCreate
	}

	// APIDefinitionVersionUpsert is the "OnConflict" setter.
	APIDefinitionVersionUpsert struct {
		*sql.UpdateSet
	}
)

// SetParameters sets the "parameters" field.
func (u *APIDefinitionVersionUpsert) SetParameters(v []models.APIParameter) *APIDefinitionVersionUpsert {
	u.Set(apidefinitionversion.FieldParameters, v)
	return u
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsert) UpdateParameters() *APIDefinitionVersionUpsert {
	u.SetExcluded(apidefinitionversion.FieldParameters)
	return u
}

// ClearParameters clears the value of the "parameters" field.
func (u *APIDefinitionVersionUpsert) ClearParameters() *APIDefinitionVersionUpsert {
	u.SetNull(apidefinitionversion.FieldParameters)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *APIDefinitionVersionUpsert) SetPrompt(v string) *APIDefinitionVersionUpsert {
	u.Set(apidefinitionversion.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsert) UpdatePrompt() *APIDefinitionVersionUpsert {
	u.SetExcluded(apidefinitionversion.FieldPrompt)
	return u
}

// SetPromptCleanup sets the "prompt_cleanup" field.
func (u *APIDefinitionVersionUpsert) SetPromptCleanup(v string) *APIDefinitionVersionUpsert {
	u.Set(apidefinitionversion.FieldPromptCleanup, v)
	return u
}

// UpdatePromptCleanup sets the "prompt_cleanup" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsert) UpdatePromptCleanup() *APIDefinitionVersionUpsert {
	u.SetExcluded(apidefinitionversion.FieldPromptCleanup)
	return u
}

// ClearPromptCleanup clears the value of the "prompt_cleanup" field.
func (u *APIDefinitionVersionUpsert) ClearPromptCleanup() *APIDefinitionVersionUpsert {
	u.SetNull(apidefinitionversion.FieldPromptCleanup)
	return u
}

// SetResponseExample sets the "response_example" field.
func (u *APIDefinitionVersionUpsert) SetResponseExample(v map[string]interface{}) *APIDefinitionVersionUpsert {
	u.Set(apidefinitionversion.FieldResponseExample, v)
	return u
}

// UpdateResponseExample sets the "response_example" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsert) UpdateResponseExample() *APIDefinitionVersionUpsert {
	u.SetExcluded(apidefinitionversion.FieldResponseExample)
	return u
}

// ClearResponseExample clears the value of the "response_example" field.
func (u *APIDefinitionVersionUpsert) ClearResponseExample() *APIDefinitionVersionUpsert {
	u.SetNull(apidefinitionversion.FieldResponseExample)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *APIDefinitionVersionUpsert) SetIsActive(v bool) *APIDefinitionVersionUpsert {
	u.Set(apidefinitionversion.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsert) UpdateIsActive() *APIDefinitionVersionUpsert {
	u.SetExcluded(apidefinitionversion.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.APIDefinitionVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(apidefinitionversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *APIDefinitionVersionUpsertOne) UpdateNewValues() *APIDefinitionVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(apidefinitionversion.FieldID)
		}
		if _, exists := u.create.mutation.APIDefinitionID(); exists {
			s.SetIgnore(apidefinitionversion.FieldAPIDefinitionID)
		}
		if _, exists := u.create.mutation.VersionNumber(); exists {
			s.SetIgnore(apidefinitionversion.FieldVersionNumber)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(apidefinitionversion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.APIDefinitionVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *APIDefinitionVersionUpsertOne) Ignore() *APIDefinitionVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *APIDefinitionVersionUpsertOne) DoNothing() *APIDefinitionVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the APIDefinitionVersionCreate.OnConflict
// documentation for more info.
func (u *APIDefinitionVersionUpsertOne) Update(set func(*APIDefinitionVersionUpsert)) *APIDefinitionVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&APIDefinitionVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetParameters sets the "parameters" field.
func (u *APIDefinitionVersionUpsertOne) SetParameters(v []models.APIParameter) *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetParameters(v)
	})
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertOne) UpdateParameters() *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdateParameters()
	})
}

// ClearParameters clears the value of the "parameters" field.
func (u *APIDefinitionVersionUpsertOne) ClearParameters() *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.ClearParameters()
	})
}

// SetPrompt sets the "prompt" field.
func (u *APIDefinitionVersionUpsertOne) SetPrompt(v string) *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertOne) UpdatePrompt() *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdatePrompt()
	})
}

// SetPromptCleanup sets the "prompt_cleanup" field.
func (u *APIDefinitionVersionUpsertOne) SetPromptCleanup(v string) *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetPromptCleanup(v)
	})
}

// UpdatePromptCleanup sets the "prompt_cleanup" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertOne) UpdatePromptCleanup() *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdatePromptCleanup()
	})
}

// ClearPromptCleanup clears the value of the "prompt_cleanup" field.
func (u *APIDefinitionVersionUpsertOne) ClearPromptCleanup() *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.ClearPromptCleanup()
	})
}

// SetResponseExample sets the "response_example" field.
func (u *APIDefinitionVersionUpsertOne) SetResponseExample(v map[string]interface{}) *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetResponseExample(v)
	})
}

// UpdateResponseExample sets the "response_example" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertOne) UpdateResponseExample() *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdateResponseExample()
	})
}

// ClearResponseExample clears the value of the "response_example" field.
func (u *APIDefinitionVersionUpsertOne) ClearResponseExample() *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.ClearResponseExample()
	})
}

// SetIsActive sets the "is_active" field.
func (u *APIDefinitionVersionUpsertOne) SetIsActive(v bool) *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertOne) UpdateIsActive() *APIDefinitionVersionUpsertOne {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *APIDefinitionVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for APIDefinitionVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *APIDefinitionVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *APIDefinitionVersionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: APIDefinitionVersionUpsertOne.ID is not supported by MySQL driver. Use APIDefinitionVersionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *APIDefinitionVersionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// APIDefinitionVersionCreateBulk is the builder for creating many APIDefinitionVersion entities in bulk.
type APIDefinitionVersionCreateBulk struct {
	config
	err      error
	builders []*APIDefinitionVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the APIDefinitionVersion entities in the database.
func (_c *APIDefinitionVersionCreateBulk) Save(ctx context.Context) ([]*APIDefinitionVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*APIDefinitionVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*APIDefinitionVersionMutation)
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
func (_c *APIDefinitionVersionCreateBulk) SaveX(ctx context.Context) []*APIDefinitionVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APIDefinitionVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APIDefinitionVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.APIDefinitionVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.APIDefinitionVersionUpsert) {
//			SetAPIDefinitionID(v+v).
//		}).
//		Exec(ctx)
func (_c *APIDefinitionVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *APIDefinitionVersionUpsertBulk {
	_c.conflict = opts
	return &APIDefinitionVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.APIDefinitionVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *APIDefinitionVersionCreateBulk) OnConflictColumns(columns ...string) *APIDefinitionVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &APIDefinitionVersionUpsertBulk{
		create: _c,
	}
}

// APIDefinitionVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of APIDefinitionVersion nodes.
type APIDefinitionVersionUpsertBulk struct {
	create *APIDefinitionVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.APIDefinitionVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(apidefinitionversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *APIDefinitionVersionUpsertBulk) UpdateNewValues() *APIDefinitionVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(apidefinitionversion.FieldID)
			}
			if _, exists := b.mutation.APIDefinitionID(); exists {
				s.SetIgnore(apidefinitionversion.FieldAPIDefinitionID)
			}
			if _, exists := b.mutation.VersionNumber(); exists {
				s.SetIgnore(apidefinitionversion.FieldVersionNumber)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(apidefinitionversion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.APIDefinitionVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *APIDefinitionVersionUpsertBulk) Ignore() *APIDefinitionVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *APIDefinitionVersionUpsertBulk) DoNothing() *APIDefinitionVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the APIDefinitionVersionCreateBulk.OnConflict
// documentation for more info.
func (u *APIDefinitionVersionUpsertBulk) Update(set func(*APIDefinitionVersionUpsert)) *APIDefinitionVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&APIDefinitionVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetParameters sets the "parameters" field.
func (u *APIDefinitionVersionUpsertBulk) SetParameters(v []models.APIParameter) *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetParameters(v)
	})
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertBulk) UpdateParameters() *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdateParameters()
	})
}

// ClearParameters clears the value of the "parameters" field.
func (u *APIDefinitionVersionUpsertBulk) ClearParameters() *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.ClearParameters()
	})
}

// SetPrompt sets the "prompt" field.
func (u *APIDefinitionVersionUpsertBulk) SetPrompt(v string) *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertBulk) UpdatePrompt() *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdatePrompt()
	})
}

// SetPromptCleanup sets the "prompt_cleanup" field.
func (u *APIDefinitionVersionUpsertBulk) SetPromptCleanup(v string) *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetPromptCleanup(v)
	})
}

// UpdatePromptCleanup sets the "prompt_cleanup" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertBulk) UpdatePromptCleanup() *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdatePromptCleanup()
	})
}

// ClearPromptCleanup clears the value of the "prompt_cleanup" field.
func (u *APIDefinitionVersionUpsertBulk) ClearPromptCleanup() *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.ClearPromptCleanup()
	})
}

// SetResponseExample sets the "response_example" field.
func (u *APIDefinitionVersionUpsertBulk) SetResponseExample(v map[string]interface{}) *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetResponseExample(v)
	})
}

// UpdateResponseExample sets the "response_example" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertBulk) UpdateResponseExample() *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdateResponseExample()
	})
}

// ClearResponseExample clears the value of the "response_example" field.
func (u *APIDefinitionVersionUpsertBulk) ClearResponseExample() *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.ClearResponseExample()
	})
}

// SetIsActive sets the "is_active" field.
func (u *APIDefinitionVersionUpsertBulk) SetIsActive(v bool) *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *APIDefinitionVersionUpsertBulk) UpdateIsActive() *APIDefinitionVersionUpsertBulk {
	return u.Update(func(s *APIDefinitionVersionUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *APIDefinitionVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the APIDefinitionVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for APIDefinitionVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *APIDefinitionVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
