// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/predicate"
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/ent/target"
)

// TargetUpdate is the builder for updating Target entities.
type TargetUpdate struct {
	config
	hooks    []Hook
	mutation *TargetMutation
}

// Where appends a list predicates to the TargetUpdate builder.
func (_u *TargetUpdate) Where(ps ...predicate.Target) *TargetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TargetUpdate) SetName(v string) *TargetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableName(v *string) *TargetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TargetUpdate) SetType(v string) *TargetUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableType(v *string) *TargetUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *TargetUpdate) SetHost(v string) *TargetUpdate {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableHost(v *string) *TargetUpdate {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *TargetUpdate) SetPort(v int) *TargetUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *TargetUpdate) SetNillablePort(v *int) *TargetUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *TargetUpdate) AddPort(v int) *TargetUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *TargetUpdate) ClearPort() *TargetUpdate {
	_u.mutation.ClearPort()
	return _u
}

// SetUsername sets the "username" field.
func (_u *TargetUpdate) SetUsername(v string) *TargetUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableUsername(v *string) *TargetUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *TargetUpdate) ClearUsername() *TargetUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetPassword sets the "password" field.
func (_u *TargetUpdate) SetPassword(v string) *TargetUpdate {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *TargetUpdate) SetNillablePassword(v *string) *TargetUpdate {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// SetVpnConfig sets the "vpn_config" field.
func (_u *TargetUpdate) SetVpnConfig(v string) *TargetUpdate {
	_u.mutation.SetVpnConfig(v)
	return _u
}

// SetNillableVpnConfig sets the "vpn_config" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableVpnConfig(v *string) *TargetUpdate {
	if v != nil {
		_u.SetVpnConfig(*v)
	}
	return _u
}

// ClearVpnConfig clears the value of the "vpn_config" field.
func (_u *TargetUpdate) ClearVpnConfig() *TargetUpdate {
	_u.mutation.ClearVpnConfig()
	return _u
}

// SetVpnUsername sets the "vpn_username" field.
func (_u *TargetUpdate) SetVpnUsername(v string) *TargetUpdate {
	_u.mutation.SetVpnUsername(v)
	return _u
}

// SetNillableVpnUsername sets the "vpn_username" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableVpnUsername(v *string) *TargetUpdate {
	if v != nil {
		_u.SetVpnUsername(*v)
	}
	return _u
}

// ClearVpnUsername clears the value of the "vpn_username" field.
func (_u *TargetUpdate) ClearVpnUsername() *TargetUpdate {
	_u.mutation.ClearVpnUsername()
	return _u
}

// SetVpnPassword sets the "vpn_password" field.
func (_u *TargetUpdate) SetVpnPassword(v string) *TargetUpdate {
	_u.mutation.SetVpnPassword(v)
	return _u
}

// SetNillableVpnPassword sets the "vpn_password" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableVpnPassword(v *string) *TargetUpdate {
	if v != nil {
		_u.SetVpnPassword(*v)
	}
	return _u
}

// ClearVpnPassword clears the value of the "vpn_password" field.
func (_u *TargetUpdate) ClearVpnPassword() *TargetUpdate {
	_u.mutation.ClearVpnPassword()
	return _u
}

// SetWidth sets the "width" field.
func (_u *TargetUpdate) SetWidth(v int) *TargetUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableWidth(v *int) *TargetUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *TargetUpdate) AddWidth(v int) *TargetUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *TargetUpdate) SetHeight(v int) *TargetUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableHeight(v *int) *TargetUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *TargetUpdate) AddHeight(v int) *TargetUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetRdpParams sets the "rdp_params" field.
func (_u *TargetUpdate) SetRdpParams(v string) *TargetUpdate {
	_u.mutation.SetRdpParams(v)
	return _u
}

// SetNillableRdpParams sets the "rdp_params" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableRdpParams(v *string) *TargetUpdate {
	if v != nil {
		_u.SetRdpParams(*v)
	}
	return _u
}

// ClearRdpParams clears the value of the "rdp_params" field.
func (_u *TargetUpdate) ClearRdpParams() *TargetUpdate {
	_u.mutation.ClearRdpParams()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *TargetUpdate) SetIsArchived(v bool) *TargetUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *TargetUpdate) SetNillableIsArchived(v *bool) *TargetUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *TargetUpdate) AddSessionIDs(ids ...string) *TargetUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *TargetUpdate) AddSessions(v ...*Session) *TargetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *TargetUpdate) AddJobIDs(ids ...string) *TargetUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *TargetUpdate) AddJobs(v ...*Job) *TargetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the TargetMutation object of the builder.
func (_u *TargetUpdate) Mutation() *TargetMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *TargetUpdate) ClearSessions() *TargetUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *TargetUpdate) RemoveSessionIDs(ids ...string) *TargetUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *TargetUpdate) RemoveSessions(v ...*Session) *TargetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *TargetUpdate) ClearJobs() *TargetUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *TargetUpdate) RemoveJobIDs(ids ...string) *TargetUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *TargetUpdate) RemoveJobs(v ...*Job) *TargetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TargetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TargetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TargetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TargetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TargetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(target.Table, target.Columns, sqlgraph.NewFieldSpec(target.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(target.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(target.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(target.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(target.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(target.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(target.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(target.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(target.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(target.FieldPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.VpnConfig(); ok {
		_spec.SetField(target.FieldVpnConfig, field.TypeString, value)
	}
	if _u.mutation.VpnConfigCleared() {
		_spec.ClearField(target.FieldVpnConfig, field.TypeString)
	}
	if value, ok := _u.mutation.VpnUsername(); ok {
		_spec.SetField(target.FieldVpnUsername, field.TypeString, value)
	}
	if _u.mutation.VpnUsernameCleared() {
		_spec.ClearField(target.FieldVpnUsername, field.TypeString)
	}
	if value, ok := _u.mutation.VpnPassword(); ok {
		_spec.SetField(target.FieldVpnPassword, field.TypeString, value)
	}
	if _u.mutation.VpnPasswordCleared() {
		_spec.ClearField(target.FieldVpnPassword, field.TypeString)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(target.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(target.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(target.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(target.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RdpParams(); ok {
		_spec.SetField(target.FieldRdpParams, field.TypeString, value)
	}
	if _u.mutation.RdpParamsCleared() {
		_spec.ClearField(target.FieldRdpParams, field.TypeString)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(target.FieldIsArchived, field.TypeBool, value)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{target.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TargetUpdateOne is the builder for updating a single Target entity.
type TargetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TargetMutation
}

// SetName sets the "name" field.
func (_u *TargetUpdateOne) SetName(v string) *TargetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableName(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TargetUpdateOne) SetType(v string) *TargetUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableType(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *TargetUpdateOne) SetHost(v string) *TargetUpdateOne {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableHost(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *TargetUpdateOne) SetPort(v int) *TargetUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillablePort(v *int) *TargetUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *TargetUpdateOne) AddPort(v int) *TargetUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// ClearPort clears the value of the "port" field.
func (_u *TargetUpdateOne) ClearPort() *TargetUpdateOne {
	_u.mutation.ClearPort()
	return _u
}

// SetUsername sets the "username" field.
func (_u *TargetUpdateOne) SetUsername(v string) *TargetUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableUsername(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *TargetUpdateOne) ClearUsername() *TargetUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetPassword sets the "password" field.
func (_u *TargetUpdateOne) SetPassword(v string) *TargetUpdateOne {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillablePassword(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// SetVpnConfig sets the "vpn_config" field.
func (_u *TargetUpdateOne) SetVpnConfig(v string) *TargetUpdateOne {
	_u.mutation.SetVpnConfig(v)
	return _u
}

// SetNillableVpnConfig sets the "vpn_config" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableVpnConfig(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetVpnConfig(*v)
	}
	return _u
}

// ClearVpnConfig clears the value of the "vpn_config" field.
func (_u *TargetUpdateOne) ClearVpnConfig() *TargetUpdateOne {
	_u.mutation.ClearVpnConfig()
	return _u
}

// SetVpnUsername sets the "vpn_username" field.
func (_u *TargetUpdateOne) SetVpnUsername(v string) *TargetUpdateOne {
	_u.mutation.SetVpnUsername(v)
	return _u
}

// SetNillableVpnUsername sets the "vpn_username" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableVpnUsername(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetVpnUsername(*v)
	}
	return _u
}

// ClearVpnUsername clears the value of the "vpn_username" field.
func (_u *TargetUpdateOne) ClearVpnUsername() *TargetUpdateOne {
	_u.mutation.ClearVpnUsername()
	return _u
}

// SetVpnPassword sets the "vpn_password" field.
func (_u *TargetUpdateOne) SetVpnPassword(v string) *TargetUpdateOne {
	_u.mutation.SetVpnPassword(v)
	return _u
}

// SetNillableVpnPassword sets the "vpn_password" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableVpnPassword(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetVpnPassword(*v)
	}
	return _u
}

// ClearVpnPassword clears the value of the "vpn_password" field.
func (_u *TargetUpdateOne) ClearVpnPassword() *TargetUpdateOne {
	_u.mutation.ClearVpnPassword()
	return _u
}

// SetWidth sets the "width" field.
func (_u *TargetUpdateOne) SetWidth(v int) *TargetUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableWidth(v *int) *TargetUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *TargetUpdateOne) AddWidth(v int) *TargetUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *TargetUpdateOne) SetHeight(v int) *TargetUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableHeight(v *int) *TargetUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *TargetUpdateOne) AddHeight(v int) *TargetUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetRdpParams sets the "rdp_params" field.
func (_u *TargetUpdateOne) SetRdpParams(v string) *TargetUpdateOne {
	_u.mutation.SetRdpParams(v)
	return _u
}

// SetNillableRdpParams sets the "rdp_params" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableRdpParams(v *string) *TargetUpdateOne {
	if v != nil {
		_u.SetRdpParams(*v)
	}
	return _u
}

// ClearRdpParams clears the value of the "rdp_params" field.
func (_u *TargetUpdateOne) ClearRdpParams() *TargetUpdateOne {
	_u.mutation.ClearRdpParams()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *TargetUpdateOne) SetIsArchived(v bool) *TargetUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *TargetUpdateOne) SetNillableIsArchived(v *bool) *TargetUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *TargetUpdateOne) AddSessionIDs(ids ...string) *TargetUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *TargetUpdateOne) AddSessions(v ...*Session) *TargetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *TargetUpdateOne) AddJobIDs(ids ...string) *TargetUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *TargetUpdateOne) AddJobs(v ...*Job) *TargetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the TargetMutation object of the builder.
func (_u *TargetUpdateOne) Mutation() *TargetMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *TargetUpdateOne) ClearSessions() *TargetUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *TargetUpdateOne) RemoveSessionIDs(ids ...string) *TargetUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *TargetUpdateOne) RemoveSessions(v ...*Session) *TargetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *TargetUpdateOne) ClearJobs() *TargetUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *TargetUpdateOne) RemoveJobIDs(ids ...string) *TargetUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *TargetUpdateOne) RemoveJobs(v ...*Job) *TargetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the TargetUpdate builder.
func (_u *TargetUpdateOne) Where(ps ...predicate.Target) *TargetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TargetUpdateOne) Select(field string, fields ...string) *TargetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Target entity.
func (_u *TargetUpdateOne) Save(ctx context.Context) (*Target, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TargetUpdateOne) SaveX(ctx context.Context) *Target {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TargetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TargetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TargetUpdateOne) sqlSave(ctx context.Context) (_node *Target, err error) {
	_spec := sqlgraph.NewUpdateSpec(target.Table, target.Columns, sqlgraph.NewFieldSpec(target.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Target.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, target.FieldID)
		for _, f := range fields {
			if !target.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != target.FieldID {
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
		_spec.SetField(target.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(target.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(target.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(target.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(target.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.PortCleared() {
		_spec.ClearField(target.FieldPort, field.TypeInt)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(target.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(target.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(target.FieldPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.VpnConfig(); ok {
		_spec.SetField(target.FieldVpnConfig, field.TypeString, value)
	}
	if _u.mutation.VpnConfigCleared() {
		_spec.ClearField(target.FieldVpnConfig, field.TypeString)
	}
	if value, ok := _u.mutation.VpnUsername(); ok {
		_spec.SetField(target.FieldVpnUsername, field.TypeString, value)
	}
	if _u.mutation.VpnUsernameCleared() {
		_spec.ClearField(target.FieldVpnUsername, field.TypeString)
	}
	if value, ok := _u.mutation.VpnPassword(); ok {
		_spec.SetField(target.FieldVpnPassword, field.TypeString, value)
	}
	if _u.mutation.VpnPasswordCleared() {
		_spec.ClearField(target.FieldVpnPassword, field.TypeString)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(target.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(target.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(target.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(target.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RdpParams(); ok {
		_spec.SetField(target.FieldRdpParams, field.TypeString, value)
	}
	if _u.mutation.RdpParamsCleared() {
		_spec.ClearField(target.FieldRdpParams, field.TypeString)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(target.FieldIsArchived, field.TypeBool, value)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Target{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{target.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
