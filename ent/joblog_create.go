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
	"github.com/legacyuse/orchestrator/ent/joblog"
)

// JobLogCreate is the builder for creating a JobLog entity.
type JobLogCreate struct {
	config
	mutation *JobLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *JobLogCreate) SetJobID(v string) *JobLogCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *JobLogCreate) SetTimestamp(v time.Time) *JobLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *JobLogCreate) SetNillableTimestamp(v *time.Time) *JobLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLogType sets the "log_type" field.
func (_c *JobLogCreate) SetLogType(v joblog.LogType) *JobLogCreate {
	_c.mutation.SetLogType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *JobLogCreate) SetContent(v map[string]interface{}) *JobLogCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetContentTrimmed sets the "content_trimmed" field.
func (_c *JobLogCreate) SetContentTrimmed(v map[string]interface{}) *JobLogCreate {
	_c.mutation.SetContentTrimmed(v)
	return _c
}

// SetID sets the "id" field.
func (_c *JobLogCreate) SetID(v string) *JobLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobLogCreate) SetJob(v *Job) *JobLogCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobLogMutation object of the builder.
func (_c *JobLogCreate) Mutation() *JobLogMutation {
	return _c.mutation
}

// Save creates the JobLog in the database.
func (_c *JobLogCreate) Save(ctx context.Context) (*JobLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobLogCreate) SaveX(ctx context.Context) *JobLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := joblog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobLogCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobLog.job_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "JobLog.timestamp"`)}
	}
	if _, ok := _c.mutation.LogType(); !ok {
		return &ValidationError{Name: "log_type", err: errors.New(`ent: missing required field "JobLog.log_type"`)}
	}
	if v, ok := _c.mutation.LogType(); ok {
		if err := joblog.LogTypeValidator(v); err != nil {
			return &ValidationError{Name: "log_type", err: fmt.Errorf(`ent: validator failed for field "JobLog.log_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "JobLog.content"`)}
	}
	if _, ok := _c.mutation.ContentTrimmed(); !ok {
		return &ValidationError{Name: "content_trimmed", err: errors.New(`ent: missing required field "JobLog.content_trimmed"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobLog.job"`)}
	}
	return nil
}

func (_c *JobLogCreate) sqlSave(ctx context.Context) (*JobLog, error) {
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
			return nil, fmt.Errorf("unexpected JobLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobLogCreate) createSpec() (*JobLog, *sqlgraph.CreateSpec) {
	var (
		_node = &JobLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(joblog.Table, sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(joblog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LogType(); ok {
		_spec.SetField(joblog.FieldLogType, field.TypeEnum, value)
		_node.LogType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(joblog.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ContentTrimmed(); ok {
		_spec.SetField(joblog.FieldContentTrimmed, field.TypeJSON, value)
		_node.ContentTrimmed = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   joblog.JobTable,
			Columns: []string{joblog.JobColumn},
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
//	client.JobLog.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobLogUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobLogCreate) OnConflict(opts ...sql.ConflictOption) *JobLogUpsertOne {
	_c.conflict = opts
	return &JobLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.JobLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobLogCreate) OnConflictColumns(columns ...string) *JobLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobLogUpsertOne{
		create: _c,
	}
}

type (
	// JobLogUpsertOne is the builder for "upsert"-ing
	//  one JobLog node.
	JobLogUpsertOne struct {
		create *JobLogCreate
	}

	// JobLogUpsert is the "OnConflict" setter.
	JobLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetContent sets the "content" field.
func (u *JobLogUpsert) SetContent(v map[string]interface{}) *JobLogUpsert {
	u.Set(joblog.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *JobLogUpsert) UpdateContent() *JobLogUpsert {
	u.SetExcluded(joblog.FieldContent)
	return u
}

// SetContentTrimmed sets the "content_trimmed" field.
func (u *JobLogUpsert) SetContentTrimmed(v map[string]interface{}) *JobLogUpsert {
	u.Set(joblog.FieldContentTrimmed, v)
	return u
}

// UpdateContentTrimmed sets the "content_trimmed" field to the value that was provided on create.
func (u *JobLogUpsert) UpdateContentTrimmed() *JobLogUpsert {
	u.SetExcluded(joblog.FieldContentTrimmed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.JobLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(joblog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobLogUpsertOne) UpdateNewValues() *JobLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(joblog.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(joblog.FieldJobID)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(joblog.FieldTimestamp)
		}
		if _, exists := u.create.mutation.LogType(); exists {
			s.SetIgnore(joblog.FieldLogType)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.JobLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobLogUpsertOne) Ignore() *JobLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobLogUpsertOne) DoNothing() *JobLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobLogCreate.OnConflict
// documentation for more info.
func (u *JobLogUpsertOne) Update(set func(*JobLogUpsert)) *JobLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *JobLogUpsertOne) SetContent(v map[string]interface{}) *JobLogUpsertOne {
	return u.Update(func(s *JobLogUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *JobLogUpsertOne) UpdateContent() *JobLogUpsertOne {
	return u.Update(func(s *JobLogUpsert) {
		s.UpdateContent()
	})
}

// SetContentTrimmed sets the "content_trimmed" field.
func (u *JobLogUpsertOne) SetContentTrimmed(v map[string]interface{}) *JobLogUpsertOne {
	return u.Update(func(s *JobLogUpsert) {
		s.SetContentTrimmed(v)
	})
}

// UpdateContentTrimmed sets the "content_trimmed" field to the value that was provided on create.
func (u *JobLogUpsertOne) UpdateContentTrimmed() *JobLogUpsertOne {
	return u.Update(func(s *JobLogUpsert) {
		s.UpdateContentTrimmed()
	})
}

// Exec executes the query.
func (u *JobLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobLogUpsertOne.ID is not supported by MySQL driver. Use JobLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobLogCreateBulk is the builder for creating many JobLog entities in bulk.
type JobLogCreateBulk struct {
	config
	err      error
	builders []*JobLogCreate
	conflict []sql.ConflictOption
}

// Save creates the JobLog entities in the database.
func (_c *JobLogCreateBulk) Save(ctx context.Context) ([]*JobLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobLogMutation)
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
func (_c *JobLogCreateBulk) SaveX(ctx context.Context) []*JobLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.JobLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobLogUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobLogUpsertBulk {
	_c.conflict = opts
	return &JobLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.JobLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobLogCreateBulk) OnConflictColumns(columns ...string) *JobLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobLogUpsertBulk{
		create: _c,
	}
}

// JobLogUpsertBulk is the builder for "upsert"-ing
// a bulk of JobLog nodes.
type JobLogUpsertBulk struct {
	create *JobLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.JobLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(joblog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobLogUpsertBulk) UpdateNewValues() *JobLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(joblog.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(joblog.FieldJobID)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(joblog.FieldTimestamp)
			}
			if _, exists := b.mutation.LogType(); exists {
				s.SetIgnore(joblog.FieldLogType)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.JobLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobLogUpsertBulk) Ignore() *JobLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobLogUpsertBulk) DoNothing() *JobLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobLogCreateBulk.OnConflict
// documentation for more info.
func (u *JobLogUpsertBulk) Update(set func(*JobLogUpsert)) *JobLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *JobLogUpsertBulk) SetContent(v map[string]interface{}) *JobLogUpsertBulk {
	return u.Update(func(s *JobLogUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *JobLogUpsertBulk) UpdateContent() *JobLogUpsertBulk {
	return u.Update(func(s *JobLogUpsert) {
		s.UpdateContent()
	})
}

// SetContentTrimmed sets the "content_trimmed" field.
func (u *JobLogUpsertBulk) SetContentTrimmed(v map[string]interface{}) *JobLogUpsertBulk {
	return u.Update(func(s *JobLogUpsert) {
		s.SetContentTrimmed(v)
	})
}

// UpdateContentTrimmed sets the "content_trimmed" field to the value that was provided on create.
func (u *JobLogUpsertBulk) UpdateContentTrimmed() *JobLogUpsertBulk {
	return u.Update(func(s *JobLogUpsert) {
		s.UpdateContentTrimmed()
	})
}

// Exec executes the query.
func (u *JobLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
