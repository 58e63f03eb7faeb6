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
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/jobmessage"
	"github.com/legacyuse/orchestrator/pkg/models"
)

// JobMessageCreate is the builder for creating a JobMessage entity.
type JobMessageCreate struct {
	config
	mutation *JobMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *JobMessageCreate) SetJobID(v string) *JobMessageCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *JobMessageCreate) SetSequence(v int) *JobMessageCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *JobMessageCreate) SetRole(v jobmessage.Role) *JobMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetMessageContent sets the "message_content" field.
func (_c *JobMessageCreate) SetMessageContent(v []models.ContentBlock) *JobMessageCreate {
	_c.mutation.SetMessageContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobMessageCreate) SetCreatedAt(v time.Time) *JobMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobMessageCreate) SetNillableCreatedAt(v *time.Time) *JobMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobMessageCreate) SetID(v string) *JobMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobMessageCreate) SetJob(v *Job) *JobMessageCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobMessageMutation object of the builder.
func (_c *JobMessageCreate) Mutation() *JobMessageMutation {
	return _c.mutation
}

// Save creates the JobMessage in the database.
func (_c *JobMessageCreate) Save(ctx context.Context) (*JobMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobMessageCreate) SaveX(ctx context.Context) *JobMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobMessageCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobMessage.job_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "JobMessage.sequence"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "JobMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := jobmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "JobMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageContent(); !ok {
		return &ValidationError{Name: "message_content", err: errors.New(`ent: missing required field "JobMessage.message_content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobMessage.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobMessage.job"`)}
	}
	return nil
}

func (_c *JobMessageCreate) sqlSave(ctx context.Context) (*JobMessage, error) {
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
			return nil, fmt.Errorf("unexpected JobMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobMessageCreate) createSpec() (*JobMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &JobMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobmessage.Table, sqlgraph.NewFieldSpec(jobmessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(jobmessage.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(jobmessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.MessageContent(); ok {
		_spec.SetField(jobmessage.FieldMessageContent, field.TypeJSON, value)
		_node.MessageContent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobmessage.JobTable,
			Columns: []string{jobmessage.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.JobMessage.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobMessageUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobMessageCreate) OnConflict(opts ...sql.ConflictOption) *JobMessageUpsertOne {
	_c.conflict = opts
	return &JobMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.JobMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobMessageCreate) OnConflictColumns(columns ...string) *JobMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobMessageUpsertOne{
		create: _c,
	}
}

type (
	// JobMessageUpsertOne is the builder for "upsert"-ing
	//  one JobMessage node.
	JobMessageUpsertOne struct {
		create *JobMessageCreate
	}

	// JobMessageUpsert is the "OnConflict" setter.
	JobMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetMessageContent sets the "message_content" field.
func (u *JobMessageUpsert) SetMessageContent(v []models.ContentBlock) *JobMessageUpsert {
	u.Set(jobmessage.FieldMessageContent, v)
	return u
}

// UpdateMessageContent sets the "message_content" field to the value that was provided on create.
func (u *JobMessageUpsert) UpdateMessageContent() *JobMessageUpsert {
	u.SetExcluded(jobmessage.FieldMessageContent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.JobMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(jobmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobMessageUpsertOne) UpdateNewValues() *JobMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(jobmessage.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(jobmessage.FieldJobID)
		}
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(jobmessage.FieldSequence)
		}
		if _, exists := u.create.mutation.Role(); exists {
			s.SetIgnore(jobmessage.FieldRole)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(jobmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.JobMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobMessageUpsertOne) Ignore() *JobMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobMessageUpsertOne) DoNothing() *JobMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobMessageCreate.OnConflict
// documentation for more info.
func (u *JobMessageUpsertOne) Update(set func(*JobMessageUpsert)) *JobMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageContent sets the "message_content" field.
func (u *JobMessageUpsertOne) SetMessageContent(v []models.ContentBlock) *JobMessageUpsertOne {
	return u.Update(func(s *JobMessageUpsert) {
		s.SetMessageContent(v)
	})
}

// UpdateMessageContent sets the "message_content" field to the value that was provided on create.
func (u *JobMessageUpsertOne) UpdateMessageContent() *JobMessageUpsertOne {
	return u.Update(func(s *JobMessageUpsert) {
		s.UpdateMessageContent()
	})
}

// Exec executes the query.
func (u *JobMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobMessageUpsertOne.ID is not supported by MySQL driver. Use JobMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobMessageCreateBulk is the builder for creating many JobMessage entities in bulk.
type JobMessageCreateBulk struct {
	config
	err      error
	builders []*JobMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the JobMessage entities in the database.
func (_c *JobMessageCreateBulk) Save(ctx context.Context) ([]*JobMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMessageMutation)
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
func (_c *JobMessageCreateBulk) SaveX(ctx context.Context) []*JobMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.JobMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobMessageUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobMessageUpsertBulk {
	_c.conflict = opts
	return &JobMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.JobMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobMessageCreateBulk) OnConflictColumns(columns ...string) *JobMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobMessageUpsertBulk{
		create: _c,
	}
}

// JobMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of JobMessage nodes.
type JobMessageUpsertBulk struct {
	create *JobMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.JobMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(jobmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobMessageUpsertBulk) UpdateNewValues() *JobMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(jobmessage.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(jobmessage.FieldJobID)
			}
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(jobmessage.FieldSequence)
			}
			if _, exists := b.mutation.Role(); exists {
				s.SetIgnore(jobmessage.FieldRole)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(jobmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.JobMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobMessageUpsertBulk) Ignore() *JobMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobMessageUpsertBulk) DoNothing() *JobMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobMessageCreateBulk.OnConflict
// documentation for more info.
func (u *JobMessageUpsertBulk) Update(set func(*JobMessageUpsert)) *JobMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageContent sets the "message_content" field.
func (u *JobMessageUpsertBulk) SetMessageContent(v []models.ContentBlock) *JobMessageUpsertBulk {
	return u.Update(func(s *JobMessageUpsert) {
		s.SetMessageContent(v)
	})
}

// UpdateMessageContent sets the "message_content" field to the value that was provided on create.
func (u *JobMessageUpsertBulk) UpdateMessageContent() *JobMessageUpsertBulk {
	return u.Update(func(s *JobMessageUpsert) {
		s.UpdateMessageContent()
	})
}

// Exec executes the query.
func (u *JobMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
