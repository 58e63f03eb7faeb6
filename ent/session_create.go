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
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/ent/target"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTargetID sets the "target_id" field.
func (_c *SessionCreate) SetTargetID(v string) *SessionCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *SessionCreate) SetState(v session.State) *SessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *SessionCreate) SetNillableState(v *session.State) *SessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v string) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *string) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContainerID sets the "container_id" field.
func (_c *SessionCreate) SetContainerID(v string) *SessionCreate {
	_c.mutation.SetContainerID(v)
	return _c
}

// SetNillableContainerID sets the "container_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableContainerID(v *string) *SessionCreate {
	if v != nil {
		_c.SetContainerID(*v)
	}
	return _c
}

// SetContainerIP sets the "container_ip" field.
func (_c *SessionCreate) SetContainerIP(v string) *SessionCreate {
	_c.mutation.SetContainerIP(v)
	return _c
}

// SetNillableContainerIP sets the "container_ip" field if the given value is not nil.
func (_c *SessionCreate) SetNillableContainerIP(v *string) *SessionCreate {
	if v != nil {
		_c.SetContainerIP(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *SessionCreate) SetIsArchived(v bool) *SessionCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *SessionCreate) SetNillableIsArchived(v *bool) *SessionCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchiveReason sets the "archive_reason" field.
func (_c *SessionCreate) SetArchiveReason(v session.ArchiveReason) *SessionCreate {
	_c.mutation.SetArchiveReason(v)
	return _c
}

// SetNillableArchiveReason sets the "archive_reason" field if the given value is not nil.
func (_c *SessionCreate) SetNillableArchiveReason(v *session.ArchiveReason) *SessionCreate {
	if v != nil {
		_c.SetArchiveReason(*v)
	}
	return _c
}

// SetLastJobTime sets the "last_job_time" field.
func (_c *SessionCreate) SetLastJobTime(v time.Time) *SessionCreate {
	_c.mutation.SetLastJobTime(v)
	return _c
}

// SetNillableLastJobTime sets the "last_job_time" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastJobTime(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetLastJobTime(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTarget sets the "target" edge to the Target entity.
func (_c *SessionCreate) SetTarget(v *Target) *SessionCreate {
	return _c.SetTargetID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := session.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := session.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "Session.target_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Session.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := session.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Session.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`ent: missing required field "Session.is_archived"`)}
	}
	if v, ok := _c.mutation.ArchiveReason(); ok {
		if err := session.ArchiveReasonValidator(v); err != nil {
			return &ValidationError{Name: "archive_reason", err: fmt.Errorf(`ent: validator failed for field "Session.archive_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if len(_c.mutation.TargetIDs()) == 0 {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required edge "Session.target"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(session.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContainerID(); ok {
		_spec.SetField(session.FieldContainerID, field.TypeString, value)
		_node.ContainerID = &value
	}
	if value, ok := _c.mutation.ContainerIP(); ok {
		_spec.SetField(session.FieldContainerIP, field.TypeString, value)
		_node.ContainerIP = &value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(session.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchiveReason(); ok {
		_spec.SetField(session.FieldArchiveReason, field.TypeEnum, value)
		_node.ArchiveReason = &value
	}
	if value, ok := _c.mutation.LastJobTime(); ok {
		_spec.SetField(session.FieldLastJobTime, field.TypeTime, value)
		_node.LastJobTime = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TargetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.TargetTable,
			Columns: []string{session.TargetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(target.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TargetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetTargetID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetTargetID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *SessionUpsert) SetState(v session.State) *SessionUpsert {
	u.Set(session.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *SessionUpsert) UpdateState() *SessionUpsert {
	u.SetExcluded(session.FieldState)
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsert) SetStatus(v string) *SessionUpsert {
	u.Set(session.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStatus() *SessionUpsert {
	u.SetExcluded(session.FieldStatus)
	return u
}

// ClearStatus clears the value of the "status" field.
func (u *SessionUpsert) ClearStatus() *SessionUpsert {
	u.SetNull(session.FieldStatus)
	return u
}

// SetContainerID sets the "container_id" field.
func (u *SessionUpsert) SetContainerID(v string) *SessionUpsert {
	u.Set(session.FieldContainerID, v)
	return u
}

// UpdateContainerID sets the "container_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateContainerID() *SessionUpsert {
	u.SetExcluded(session.FieldContainerID)
	return u
}

// ClearContainerID clears the value of the "container_id" field.
func (u *SessionUpsert) ClearContainerID() *SessionUpsert {
	u.SetNull(session.FieldContainerID)
	return u
}

// SetContainerIP sets the "container_ip" field.
func (u *SessionUpsert) SetContainerIP(v string) *SessionUpsert {
	u.Set(session.FieldContainerIP, v)
	return u
}

// UpdateContainerIP sets the "container_ip" field to the value that was provided on create.
func (u *SessionUpsert) UpdateContainerIP() *SessionUpsert {
	u.SetExcluded(session.FieldContainerIP)
	return u
}

// ClearContainerIP clears the value of the "container_ip" field.
func (u *SessionUpsert) ClearContainerIP() *SessionUpsert {
	u.SetNull(session.FieldContainerIP)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *SessionUpsert) SetIsArchived(v bool) *SessionUpsert {
	u.Set(session.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *SessionUpsert) UpdateIsArchived() *SessionUpsert {
	u.SetExcluded(session.FieldIsArchived)
	return u
}

// SetArchiveReason sets the "archive_reason" field.
func (u *SessionUpsert) SetArchiveReason(v session.ArchiveReason) *SessionUpsert {
	u.Set(session.FieldArchiveReason, v)
	return u
}

// UpdateArchiveReason sets the "archive_reason" field to the value that was provided on create.
func (u *SessionUpsert) UpdateArchiveReason() *SessionUpsert {
	u.SetExcluded(session.FieldArchiveReason)
	return u
}

// ClearArchiveReason clears the value of the "archive_reason" field.
func (u *SessionUpsert) ClearArchiveReason() *SessionUpsert {
	u.SetNull(session.FieldArchiveReason)
	return u
}

// SetLastJobTime sets the "last_job_time" field.
func (u *SessionUpsert) SetLastJobTime(v time.Time) *SessionUpsert {
	u.Set(session.FieldLastJobTime, v)
	return u
}

// UpdateLastJobTime sets the "last_job_time" field to the value that was provided on create.
func (u *SessionUpsert) UpdateLastJobTime() *SessionUpsert {
	u.SetExcluded(session.FieldLastJobTime)
	return u
}

// ClearLastJobTime clears the value of the "last_job_time" field.
func (u *SessionUpsert) ClearLastJobTime() *SessionUpsert {
	u.SetNull(session.FieldLastJobTime)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsert) SetUpdatedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUpdatedAt() *SessionUpsert {
	u.SetExcluded(session.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
		if _, exists := u.create.mutation.TargetID(); exists {
			s.SetIgnore(session.FieldTargetID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(session.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *SessionUpsertOne) SetState(v session.State) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateState() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateState()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertOne) SetStatus(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *SessionUpsertOne) ClearStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearStatus()
	})
}

// SetContainerID sets the "container_id" field.
func (u *SessionUpsertOne) SetContainerID(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetContainerID(v)
	})
}

// UpdateContainerID sets the "container_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateContainerID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateContainerID()
	})
}

// ClearContainerID clears the value of the "container_id" field.
func (u *SessionUpsertOne) ClearContainerID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearContainerID()
	})
}

// SetContainerIP sets the "container_ip" field.
func (u *SessionUpsertOne) SetContainerIP(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetContainerIP(v)
	})
}

// UpdateContainerIP sets the "container_ip" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateContainerIP() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateContainerIP()
	})
}

// ClearContainerIP clears the value of the "container_ip" field.
func (u *SessionUpsertOne) ClearContainerIP() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearContainerIP()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *SessionUpsertOne) SetIsArchived(v bool) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateIsArchived() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchiveReason sets the "archive_reason" field.
func (u *SessionUpsertOne) SetArchiveReason(v session.ArchiveReason) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetArchiveReason(v)
	})
}

// UpdateArchiveReason sets the "archive_reason" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateArchiveReason() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateArchiveReason()
	})
}

// ClearArchiveReason clears the value of the "archive_reason" field.
func (u *SessionUpsertOne) ClearArchiveReason() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearArchiveReason()
	})
}

// SetLastJobTime sets the "last_job_time" field.
func (u *SessionUpsertOne) SetLastJobTime(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastJobTime(v)
	})
}

// UpdateLastJobTime sets the "last_job_time" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateLastJobTime() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastJobTime()
	})
}

// ClearLastJobTime clears the value of the "last_job_time" field.
func (u *SessionUpsertOne) ClearLastJobTime() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearLastJobTime()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertOne) SetUpdatedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUpdatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetTargetID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
			if _, exists := b.mutation.TargetID(); exists {
				s.SetIgnore(session.FieldTargetID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(session.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *SessionUpsertBulk) SetState(v session.State) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateState() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateState()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertBulk) SetStatus(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *SessionUpsertBulk) ClearStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearStatus()
	})
}

// SetContainerID sets the "container_id" field.
func (u *SessionUpsertBulk) SetContainerID(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetContainerID(v)
	})
}

// UpdateContainerID sets the "container_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateContainerID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateContainerID()
	})
}

// ClearContainerID clears the value of the "container_id" field.
func (u *SessionUpsertBulk) ClearContainerID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearContainerID()
	})
}

// SetContainerIP sets the "container_ip" field.
func (u *SessionUpsertBulk) SetContainerIP(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetContainerIP(v)
	})
}

// UpdateContainerIP sets the "container_ip" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateContainerIP() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateContainerIP()
	})
}

// ClearContainerIP clears the value of the "container_ip" field.
func (u *SessionUpsertBulk) ClearContainerIP() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearContainerIP()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *SessionUpsertBulk) SetIsArchived(v bool) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateIsArchived() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchiveReason sets the "archive_reason" field.
func (u *SessionUpsertBulk) SetArchiveReason(v session.ArchiveReason) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetArchiveReason(v)
	})
}

// UpdateArchiveReason sets the "archive_reason" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateArchiveReason() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateArchiveReason()
	})
}

// ClearArchiveReason clears the value of the "archive_reason" field.
func (u *SessionUpsertBulk) ClearArchiveReason() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearArchiveReason()
	})
}

// SetLastJobTime sets the "last_job_time" field.
func (u *SessionUpsertBulk) SetLastJobTime(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastJobTime(v)
	})
}

// UpdateLastJobTime sets the "last_job_time" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateLastJobTime() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastJobTime()
	})
}

// ClearLastJobTime clears the value of the "last_job_time" field.
func (u *SessionUpsertBulk) ClearLastJobTime() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearLastJobTime()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertBulk) SetUpdatedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUpdatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
