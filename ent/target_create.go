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
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/ent/target"
)

// TargetCreate is the builder for creating a Target entity.
type TargetCreate struct {
	config
	mutation *TargetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *TargetCreate) SetName(v string) *TargetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetType sets the "type" field.
func (_c *TargetCreate) SetType(v string) *TargetCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetHost sets the "host" field.
func (_c *TargetCreate) SetHost(v string) *TargetCreate {
	_c.mutation.SetHost(v)
	return _c
}

// SetPort sets the "port" field.
func (_c *TargetCreate) SetPort(v int) *TargetCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *TargetCreate) SetNillablePort(v *int) *TargetCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetUsername sets the "username" field.
func (_c *TargetCreate) SetUsername(v string) *TargetCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *TargetCreate) SetNillableUsername(v *string) *TargetCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetPassword sets the "password" field.
func (_c *TargetCreate) SetPassword(v string) *TargetCreate {
	_c.mutation.SetPassword(v)
	return _c
}

// SetVpnConfig sets the "vpn_config" field.
func (_c *TargetCreate) SetVpnConfig(v string) *TargetCreate {
	_c.mutation.SetVpnConfig(v)
	return _c
}

// SetNillableVpnConfig sets the "vpn_config" field if the given value is not nil.
func (_c *TargetCreate) SetNillableVpnConfig(v *string) *TargetCreate {
	if v != nil {
		_c.SetVpnConfig(*v)
	}
	return _c
}

// SetVpnUsername sets the "vpn_username" field.
func (_c *TargetCreate) SetVpnUsername(v string) *TargetCreate {
	_c.mutation.SetVpnUsername(v)
	return _c
}

// SetNillableVpnUsername sets the "vpn_username" field if the given value is not nil.
func (_c *TargetCreate) SetNillableVpnUsername(v *string) *TargetCreate {
	if v != nil {
		_c.SetVpnUsername(*v)
	}
	return _c
}

// SetVpnPassword sets the "vpn_password" field.
func (_c *TargetCreate) SetVpnPassword(v string) *TargetCreate {
	_c.mutation.SetVpnPassword(v)
	return _c
}

// SetNillableVpnPassword sets the "vpn_password" field if the given value is not nil.
func (_c *TargetCreate) SetNillableVpnPassword(v *string) *TargetCreate {
	if v != nil {
		_c.SetVpnPassword(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *TargetCreate) SetWidth(v int) *TargetCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_c *TargetCreate) SetNillableWidth(v *int) *TargetCreate {
	if v != nil {
		_c.SetWidth(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *TargetCreate) SetHeight(v int) *TargetCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *TargetCreate) SetNillableHeight(v *int) *TargetCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetRdpParams sets the "rdp_params" field.
func (_c *TargetCreate) SetRdpParams(v string) *TargetCreate {
	_c.mutation.SetRdpParams(v)
	return _c
}

// SetNillableRdpParams sets the "rdp_params" field if the given value is not nil.
func (_c *TargetCreate) SetNillableRdpParams(v *string) *TargetCreate {
	if v != nil {
		_c.SetRdpParams(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *TargetCreate) SetIsArchived(v bool) *TargetCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *TargetCreate) SetNillableIsArchived(v *bool) *TargetCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TargetCreate) SetCreatedAt(v time.Time) *TargetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TargetCreate) SetNillableCreatedAt(v *time.Time) *TargetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TargetCreate) SetID(v string) *TargetCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_c *TargetCreate) AddSessionIDs(ids ...string) *TargetCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_c *TargetCreate) AddSessions(v ...*Session) *TargetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_c *TargetCreate) AddJobIDs(ids ...string) *TargetCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_c *TargetCreate) AddJobs(v ...*Job) *TargetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the TargetMutation object of the builder.
func (_c *TargetCreate) Mutation() *TargetMutation {
	return _c.mutation
}

// Save creates the Target in the database.
func (_c *TargetCreate) Save(ctx context.Context) (*Target, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TargetCreate) SaveX(ctx context.Context) *Target {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TargetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TargetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TargetCreate) defaults() {
	if _, ok := _c.mutation.Width(); !ok {
		v := target.DefaultWidth
		_c.mutation.SetWidth(v)
	}
	if _, ok := _c.mutation.Height(); !ok {
		v := target.DefaultHeight
		_c.mutation.SetHeight(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := target.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := target.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TargetCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Target.name"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Target.type"`)}
	}
	if _, ok := _c.mutation.Host(); !ok {
		return &ValidationError{Name: "host", err: errors.New(`ent: missing required field "Target.host"`)}
	}
	if _, ok := _c.mutation.Password(); !ok {
		return &ValidationError{Name: "password", err: errors.New(`ent: missing required field "Target.password"`)}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "Target.width"`)}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "Target.height"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`ent: missing required field "Target.is_archived"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Target.created_at"`)}
	}
	return nil
}

func (_c *TargetCreate) sqlSave(ctx context.Context) (*Target, error) {
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
			return nil, fmt.Errorf("unexpected Target.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TargetCreate) createSpec() (*Target, *sqlgraph.CreateSpec) {
	var (
		_node = &Target{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(target.Table, sqlgraph.NewFieldSpec(target.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(target.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(target.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Host(); ok {
		_spec.SetField(target.FieldHost, field.TypeString, value)
		_node.Host = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(target.FieldPort, field.TypeInt, value)
		_node.Port = &value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(target.FieldUsername, field.TypeString, value)
		_node.Username = &value
	}
	if value, ok := _c.mutation.Password(); ok {
		_spec.SetField(target.FieldPassword, field.TypeString, value)
		_node.Password = value
	}
	if value, ok := _c.mutation.VpnConfig(); ok {
		_spec.SetField(target.FieldVpnConfig, field.TypeString, value)
		_node.VpnConfig = &value
	}
	if value, ok := _c.mutation.VpnUsername(); ok {
		_spec.SetField(target.FieldVpnUsername, field.TypeString, value)
		_node.VpnUsername = &value
	}
	if value, ok := _c.mutation.VpnPassword(); ok {
		_spec.SetField(target.FieldVpnPassword, field.TypeString, value)
		_node.VpnPassword = &value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(target.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(target.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.RdpParams(); ok {
		_spec.SetField(target.FieldRdpParams, field.TypeString, value)
		_node.RdpParams = &value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(target.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(target.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   target.SessionsTable,
			Columns: []string{target.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   target.JobsTable,
			Columns: []string{target.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
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
//	client.Target.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TargetUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *TargetCreate) OnConflict(opts ...sql.ConflictOption) *TargetUpsertOne {
	_c.conflict = opts
	return &TargetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Target.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TargetCreate) OnConflictColumns(columns ...string) *TargetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TargetUpsertOne{
		create: _c,
	}
}

type (
	// TargetUpsertOne is the builder for "upsert"-ing
	//  one Target node.
	TargetUpsertOne struct {
		create *TargetCreate
	}

	// TargetUpsert is the "OnConflict" setter.
	TargetUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *TargetUpsert) SetName(v string) *TargetUpsert {
	u.Set(target.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TargetUpsert) UpdateName() *TargetUpsert {
	u.SetExcluded(target.FieldName)
	return u
}

// SetType sets the "type" field.
func (u *TargetUpsert) SetType(v string) *TargetUpsert {
	u.Set(target.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *TargetUpsert) UpdateType() *TargetUpsert {
	u.SetExcluded(target.FieldType)
	return u
}

// SetHost sets the "host" field.
func (u *TargetUpsert) SetHost(v string) *TargetUpsert {
	u.Set(target.FieldHost, v)
	return u
}

// UpdateHost sets the "host" field to the value that was provided on create.
func (u *TargetUpsert) UpdateHost() *TargetUpsert {
	u.SetExcluded(target.FieldHost)
	return u
}

// SetPort sets the "port" field.
func (u *TargetUpsert) SetPort(v int) *TargetUpsert {
	u.Set(target.FieldPort, v)
	return u
}

// UpdatePort sets the "port" field to the value that was provided on create.
func (u *TargetUpsert) UpdatePort() *TargetUpsert {
	u.SetExcluded(target.FieldPort)
	return u
}

// AddPort adds v to the "port" field.
func (u *TargetUpsert) AddPort(v int) *TargetUpsert {
	u.Add(target.FieldPort, v)
	return u
}

// ClearPort clears the value of the "port" field.
func (u *TargetUpsert) ClearPort() *TargetUpsert {
	u.SetNull(target.FieldPort)
	return u
}

// SetUsername sets the "username" field.
func (u *TargetUpsert) SetUsername(v string) *TargetUpsert {
	u.Set(target.FieldUsername, v)
	return u
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *TargetUpsert) UpdateUsername() *TargetUpsert {
	u.SetExcluded(target.FieldUsername)
	return u
}

// ClearUsername clears the value of the "username" field.
func (u *TargetUpsert) ClearUsername() *TargetUpsert {
	u.SetNull(target.FieldUsername)
	return u
}

// SetPassword sets the "password" field.
func (u *TargetUpsert) SetPassword(v string) *TargetUpsert {
	u.Set(target.FieldPassword, v)
	return u
}

// UpdatePassword sets the "password" field to the value that was provided on create.
func (u *TargetUpsert) UpdatePassword() *TargetUpsert {
	u.SetExcluded(target.FieldPassword)
	return u
}

// SetVpnConfig sets the "vpn_config" field.
func (u *TargetUpsert) SetVpnConfig(v string) *TargetUpsert {
	u.Set(target.FieldVpnConfig, v)
	return u
}

// UpdateVpnConfig sets the "vpn_config" field to the value that was provided on create.
func (u *TargetUpsert) UpdateVpnConfig() *TargetUpsert {
	u.SetExcluded(target.FieldVpnConfig)
	return u
}

// ClearVpnConfig clears the value of the "vpn_config" field.
func (u *TargetUpsert) ClearVpnConfig() *TargetUpsert {
	u.SetNull(target.FieldVpnConfig)
	return u
}

// SetVpnUsername sets the "vpn_username" field.
func (u *TargetUpsert) SetVpnUsername(v string) *TargetUpsert {
	u.Set(target.FieldVpnUsername, v)
	return u
}

// UpdateVpnUsername sets the "vpn_username" field to the value that was provided on create.
func (u *TargetUpsert) UpdateVpnUsername() *TargetUpsert {
	u.SetExcluded(target.FieldVpnUsername)
	return u
}

// ClearVpnUsername clears the value of the "vpn_username" field.
func (u *TargetUpsert) ClearVpnUsername() *TargetUpsert {
	u.SetNull(target.FieldVpnUsername)
	return u
}

// SetVpnPassword sets the "vpn_password" field.
func (u *TargetUpsert) SetVpnPassword(v string) *TargetUpsert {
	u.Set(target.FieldVpnPassword, v)
	return u
}

// UpdateVpnPassword sets the "vpn_password" field to the value that was provided on create.
func (u *TargetUpsert) UpdateVpnPassword() *TargetUpsert {
	u.SetExcluded(target.FieldVpnPassword)
	return u
}

// ClearVpnPassword clears the value of the "vpn_password" field.
func (u *TargetUpsert) ClearVpnPassword() *TargetUpsert {
	u.SetNull(target.FieldVpnPassword)
	return u
}

// SetWidth sets the "width" field.
func (u *TargetUpsert) SetWidth(v int) *TargetUpsert {
	u.Set(target.FieldWidth, v)
	return u
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *TargetUpsert) UpdateWidth() *TargetUpsert {
	u.SetExcluded(target.FieldWidth)
	return u
}

// AddWidth adds v to the "width" field.
func (u *TargetUpsert) AddWidth(v int) *TargetUpsert {
	u.Add(target.FieldWidth, v)
	return u
}

// SetHeight sets the "height" field.
func (u *TargetUpsert) SetHeight(v int) *TargetUpsert {
	u.Set(target.FieldHeight, v)
	return u
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *TargetUpsert) UpdateHeight() *TargetUpsert {
	u.SetExcluded(target.FieldHeight)
	return u
}

// AddHeight adds v to the "height" field.
func (u *TargetUpsert) AddHeight(v int) *TargetUpsert {
	u.Add(target.FieldHeight, v)
	return u
}

// SetRdpParams sets the "rdp_params" field.
func (u *TargetUpsert) SetRdpParams(v string) *TargetUpsert {
	u.Set(target.FieldRdpParams, v)
	return u
}

// UpdateRdpParams sets the "rdp_params" field to the value that was provided on create.
func (u *TargetUpsert) UpdateRdpParams() *TargetUpsert {
	u.SetExcluded(target.FieldRdpParams)
	return u
}

// ClearRdpParams clears the value of the "rdp_params" field.
func (u *TargetUpsert) ClearRdpParams() *TargetUpsert {
	u.SetNull(target.FieldRdpParams)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *TargetUpsert) SetIsArchived(v bool) *TargetUpsert {
	u.Set(target.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *TargetUpsert) UpdateIsArchived() *TargetUpsert {
	u.SetExcluded(target.FieldIsArchived)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Target.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(target.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TargetUpsertOne) UpdateNewValues() *TargetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(target.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(target.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Target.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TargetUpsertOne) Ignore() *TargetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TargetUpsertOne) DoNothing() *TargetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TargetCreate.OnConflict
// documentation for more info.
func (u *TargetUpsertOne) Update(set func(*TargetUpsert)) *TargetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TargetUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TargetUpsertOne) SetName(v string) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateName() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateName()
	})
}

// SetType sets the "type" field.
func (u *TargetUpsertOne) SetType(v string) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateType() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateType()
	})
}

// SetHost sets the "host" field.
func (u *TargetUpsertOne) SetHost(v string) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetHost(v)
	})
}

// UpdateHost sets the "host" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateHost() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateHost()
	})
}

// SetPort sets the "port" field.
func (u *TargetUpsertOne) SetPort(v int) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetPort(v)
	})
}

// AddPort adds v to the "port" field.
func (u *TargetUpsertOne) AddPort(v int) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.AddPort(v)
	})
}

// UpdatePort sets the "port" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdatePort() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdatePort()
	})
}

// ClearPort clears the value of the "port" field.
func (u *TargetUpsertOne) ClearPort() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.ClearPort()
	})
}

// SetUsername sets the "username" field.
func (u *TargetUpsertOne) SetUsername(v string) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateUsername() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateUsername()
	})
}

// ClearUsername clears the value of the "username" field.
func (u *TargetUpsertOne) ClearUsername() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.ClearUsername()
	})
}

// SetPassword sets the "password" field.
func (u *TargetUpsertOne) SetPassword(v string) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetPassword(v)
	})
}

// UpdatePassword sets the "password" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdatePassword() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdatePassword()
	})
}

// SetVpnConfig sets the "vpn_config" field.
func (u *TargetUpsertOne) SetVpnConfig(v string) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetVpnConfig(v)
	})
}

// UpdateVpnConfig sets the "vpn_config" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateVpnConfig() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateVpnConfig()
	})
}

// ClearVpnConfig clears the value of the "vpn_config" field.
func (u *TargetUpsertOne) ClearVpnConfig() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.ClearVpnConfig()
	})
}

// SetVpnUsername sets the "vpn_username" field.
func (u *TargetUpsertOne) SetVpnUsername(v string) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetVpnUsername(v)
	})
}

// UpdateVpnUsername sets the "vpn_username" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateVpnUsername() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateVpnUsername()
	})
}

// ClearVpnUsername clears the value of the "vpn_username" field.
func (u *TargetUpsertOne) ClearVpnUsername() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.ClearVpnUsername()
	})
}

// SetVpnPassword sets the "vpn_password" field.
func (u *TargetUpsertOne) SetVpnPassword(v string) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetVpnPassword(v)
	})
}

// UpdateVpnPassword sets the "vpn_password" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateVpnPassword() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateVpnPassword()
	})
}

// ClearVpnPassword clears the value of the "vpn_password" field.
func (u *TargetUpsertOne) ClearVpnPassword() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.ClearVpnPassword()
	})
}

// SetWidth sets the "width" field.
func (u *TargetUpsertOne) SetWidth(v int) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *TargetUpsertOne) AddWidth(v int) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateWidth() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateWidth()
	})
}

// SetHeight sets the "height" field.
func (u *TargetUpsertOne) SetHeight(v int) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *TargetUpsertOne) AddHeight(v int) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateHeight() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateHeight()
	})
}

// SetRdpParams sets the "rdp_params" field.
func (u *TargetUpsertOne) SetRdpParams(v string) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetRdpParams(v)
	})
}

// UpdateRdpParams sets the "rdp_params" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateRdpParams() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateRdpParams()
	})
}

// ClearRdpParams clears the value of the "rdp_params" field.
func (u *TargetUpsertOne) ClearRdpParams() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.ClearRdpParams()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *TargetUpsertOne) SetIsArchived(v bool) *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *TargetUpsertOne) UpdateIsArchived() *TargetUpsertOne {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateIsArchived()
	})
}

// Exec executes the query.
func (u *TargetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TargetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TargetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TargetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TargetUpsertOne.ID is not supported by MySQL driver. Use TargetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TargetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TargetCreateBulk is the builder for creating many Target entities in bulk.
type TargetCreateBulk struct {
	config
	err      error
	builders []*TargetCreate
	conflict []sql.ConflictOption
}

// Save creates the Target entities in the database.
func (_c *TargetCreateBulk) Save(ctx context.Context) ([]*Target, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Target, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TargetMutation)
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
func (_c *TargetCreateBulk) SaveX(ctx context.Context) []*Target {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TargetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TargetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Target.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TargetUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *TargetCreateBulk) OnConflict(opts ...sql.ConflictOption) *TargetUpsertBulk {
	_c.conflict = opts
	return &TargetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Target.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TargetCreateBulk) OnConflictColumns(columns ...string) *TargetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TargetUpsertBulk{
		create: _c,
	}
}

// TargetUpsertBulk is the builder for "upsert"-ing
// a bulk of Target nodes.
type TargetUpsertBulk struct {
	create *TargetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Target.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(target.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TargetUpsertBulk) UpdateNewValues() *TargetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(target.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(target.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Target.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TargetUpsertBulk) Ignore() *TargetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TargetUpsertBulk) DoNothing() *TargetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TargetCreateBulk.OnConflict
// documentation for more info.
func (u *TargetUpsertBulk) Update(set func(*TargetUpsert)) *TargetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TargetUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TargetUpsertBulk) SetName(v string) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateName() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateName()
	})
}

// SetType sets the "type" field.
func (u *TargetUpsertBulk) SetType(v string) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateType() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateType()
	})
}

// SetHost sets the "host" field.
func (u *TargetUpsertBulk) SetHost(v string) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetHost(v)
	})
}

// UpdateHost sets the "host" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateHost() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateHost()
	})
}

// SetPort sets the "port" field.
func (u *TargetUpsertBulk) SetPort(v int) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetPort(v)
	})
}

// AddPort adds v to the "port" field.
func (u *TargetUpsertBulk) AddPort(v int) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.AddPort(v)
	})
}

// UpdatePort sets the "port" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdatePort() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdatePort()
	})
}

// ClearPort clears the value of the "port" field.
func (u *TargetUpsertBulk) ClearPort() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.ClearPort()
	})
}

// SetUsername sets the "username" field.
func (u *TargetUpsertBulk) SetUsername(v string) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateUsername() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateUsername()
	})
}

// ClearUsername clears the value of the "username" field.
func (u *TargetUpsertBulk) ClearUsername() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.ClearUsername()
	})
}

// SetPassword sets the "password" field.
func (u *TargetUpsertBulk) SetPassword(v string) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetPassword(v)
	})
}

// UpdatePassword sets the "password" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdatePassword() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdatePassword()
	})
}

// SetVpnConfig sets the "vpn_config" field.
func (u *TargetUpsertBulk) SetVpnConfig(v string) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetVpnConfig(v)
	})
}

// UpdateVpnConfig sets the "vpn_config" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateVpnConfig() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateVpnConfig()
	})
}

// ClearVpnConfig clears the value of the "vpn_config" field.
func (u *TargetUpsertBulk) ClearVpnConfig() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.ClearVpnConfig()
	})
}

// SetVpnUsername sets the "vpn_username" field.
func (u *TargetUpsertBulk) SetVpnUsername(v string) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetVpnUsername(v)
	})
}

// UpdateVpnUsername sets the "vpn_username" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateVpnUsername() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateVpnUsername()
	})
}

// ClearVpnUsername clears the value of the "vpn_username" field.
func (u *TargetUpsertBulk) ClearVpnUsername() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.ClearVpnUsername()
	})
}

// SetVpnPassword sets the "vpn_password" field.
func (u *TargetUpsertBulk) SetVpnPassword(v string) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetVpnPassword(v)
	})
}

// UpdateVpnPassword sets the "vpn_password" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateVpnPassword() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateVpnPassword()
	})
}

// ClearVpnPassword clears the value of the "vpn_password" field.
func (u *TargetUpsertBulk) ClearVpnPassword() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.ClearVpnPassword()
	})
}

// SetWidth sets the "width" field.
func (u *TargetUpsertBulk) SetWidth(v int) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *TargetUpsertBulk) AddWidth(v int) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateWidth() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateWidth()
	})
}

// SetHeight sets the "height" field.
func (u *TargetUpsertBulk) SetHeight(v int) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *TargetUpsertBulk) AddHeight(v int) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateHeight() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateHeight()
	})
}

// SetRdpParams sets the "rdp_params" field.
func (u *TargetUpsertBulk) SetRdpParams(v string) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetRdpParams(v)
	})
}

// UpdateRdpParams sets the "rdp_params" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateRdpParams() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateRdpParams()
	})
}

// ClearRdpParams clears the value of the "rdp_params" field.
func (u *TargetUpsertBulk) ClearRdpParams() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.ClearRdpParams()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *TargetUpsertBulk) SetIsArchived(v bool) *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *TargetUpsertBulk) UpdateIsArchived() *TargetUpsertBulk {
	return u.Update(func(s *TargetUpsert) {
		s.UpdateIsArchived()
	})
}

// Exec executes the query.
func (u *TargetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TargetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TargetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TargetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
