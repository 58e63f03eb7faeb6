// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/joblog"
	"github.com/legacyuse/orchestrator/ent/jobmessage"
	"github.com/legacyuse/orchestrator/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *JobUpdate) SetSessionID(v string) *JobUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSessionID(v *string) *JobUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobUpdate) ClearSessionID() *JobUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetAPIName sets the "api_name" field.
func (_u *JobUpdate) SetAPIName(v string) *JobUpdate {
	_u.mutation.SetAPIName(v)
	return _u
}

// SetNillableAPIName sets the "api_name" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAPIName(v *string) *JobUpdate {
	if v != nil {
		_u.SetAPIName(*v)
	}
	return _u
}

// SetAPIDefinitionVersionID sets the "api_definition_version_id" field.
func (_u *JobUpdate) SetAPIDefinitionVersionID(v string) *JobUpdate {
	_u.mutation.SetAPIDefinitionVersionID(v)
	return _u
}

// SetNillableAPIDefinitionVersionID sets the "api_definition_version_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAPIDefinitionVersionID(v *string) *JobUpdate {
	if v != nil {
		_u.SetAPIDefinitionVersionID(*v)
	}
	return _u
}

// ClearAPIDefinitionVersionID clears the value of the "api_definition_version_id" field.
func (_u *JobUpdate) ClearAPIDefinitionVersionID() *JobUpdate {
	_u.mutation.ClearAPIDefinitionVersionID()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *JobUpdate) SetParameters(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *JobUpdate) ClearParameters() *JobUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdate) SetResult(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdate) ClearResult() *JobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *JobUpdate) SetError(v string) *JobUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *JobUpdate) SetNillableError(v *string) *JobUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobUpdate) ClearError() *JobUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetErrorDescription sets the "error_description" field.
func (_u *JobUpdate) SetErrorDescription(v string) *JobUpdate {
	_u.mutation.SetErrorDescription(v)
	return _u
}

// SetNillableErrorDescription sets the "error_description" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorDescription(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorDescription(*v)
	}
	return _u
}

// ClearErrorDescription clears the value of the "error_description" field.
func (_u *JobUpdate) ClearErrorDescription() *JobUpdate {
	_u.mutation.ClearErrorDescription()
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *JobUpdate) SetTotalInputTokens(v int) *JobUpdate {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTotalInputTokens(v *int) *JobUpdate {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *JobUpdate) AddTotalInputTokens(v int) *JobUpdate {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *JobUpdate) SetTotalOutputTokens(v int) *JobUpdate {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTotalOutputTokens(v *int) *JobUpdate {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *JobUpdate) AddTotalOutputTokens(v int) *JobUpdate {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *JobUpdate) SetLeaseOwner(v string) *JobUpdate {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeaseOwner(v *string) *JobUpdate {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *JobUpdate) ClearLeaseOwner() *JobUpdate {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *JobUpdate) SetLeaseExpiresAt(v time.Time) *JobUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeaseExpiresAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *JobUpdate) ClearLeaseExpiresAt() *JobUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *JobUpdate) SetCancelRequested(v bool) *JobUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCancelRequested(v *bool) *JobUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the JobMessage entity by IDs.
func (_u *JobUpdate) AddMessageIDs(ids ...string) *JobUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the JobMessage entity.
func (_u *JobUpdate) AddMessages(v ...*JobMessage) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the JobLog entity by IDs.
func (_u *JobUpdate) AddLogIDs(ids ...string) *JobUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the JobLog entity.
func (_u *JobUpdate) AddLogs(v ...*JobLog) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the JobMessage entity.
func (_u *JobUpdate) ClearMessages() *JobUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to JobMessage entities by IDs.
func (_u *JobUpdate) RemoveMessageIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to JobMessage entities.
func (_u *JobUpdate) RemoveMessages(v ...*JobMessage) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearLogs clears all "logs" edges to the JobLog entity.
func (_u *JobUpdate) ClearLogs() *JobUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to JobLog entities by IDs.
func (_u *JobUpdate) RemoveLogIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to JobLog entities.
func (_u *JobUpdate) RemoveLogs(v ...*JobLog) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.target"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(job.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(job.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.APIName(); ok {
		_spec.SetField(job.FieldAPIName, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIDefinitionVersionID(); ok {
		_spec.SetField(job.FieldAPIDefinitionVersionID, field.TypeString, value)
	}
	if _u.mutation.APIDefinitionVersionIDCleared() {
		_spec.ClearField(job.FieldAPIDefinitionVersionID, field.TypeString)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(job.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(job.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(job.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDescription(); ok {
		_spec.SetField(job.FieldErrorDescription, field.TypeString, value)
	}
	if _u.mutation.ErrorDescriptionCleared() {
		_spec.ClearField(job.FieldErrorDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(job.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(job.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(job.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(job.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(job.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(job.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(job.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(job.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.MessagesTable,
			Columns: []string{job.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.MessagesTable,
			Columns: []string{job.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.MessagesTable,
			Columns: []string{job.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LogsTable,
			Columns: []string{job.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LogsTable,
			Columns: []string{job.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LogsTable,
			Columns: []string{job.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetSessionID sets the "session_id" field.
func (_u *JobUpdateOne) SetSessionID(v string) *JobUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSessionID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobUpdateOne) ClearSessionID() *JobUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetAPIName sets the "api_name" field.
func (_u *JobUpdateOne) SetAPIName(v string) *JobUpdateOne {
	_u.mutation.SetAPIName(v)
	return _u
}

// SetNillableAPIName sets the "api_name" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAPIName(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetAPIName(*v)
	}
	return _u
}

// SetAPIDefinitionVersionID sets the "api_definition_version_id" field.
func (_u *JobUpdateOne) SetAPIDefinitionVersionID(v string) *JobUpdateOne {
	_u.mutation.SetAPIDefinitionVersionID(v)
	return _u
}

// SetNillableAPIDefinitionVersionID sets the "api_definition_version_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAPIDefinitionVersionID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetAPIDefinitionVersionID(*v)
	}
	return _u
}

// ClearAPIDefinitionVersionID clears the value of the "api_definition_version_id" field.
func (_u *JobUpdateOne) ClearAPIDefinitionVersionID() *JobUpdateOne {
	_u.mutation.ClearAPIDefinitionVersionID()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *JobUpdateOne) SetParameters(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *JobUpdateOne) ClearParameters() *JobUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdateOne) SetResult(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdateOne) ClearResult() *JobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *JobUpdateOne) SetError(v string) *JobUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableError(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobUpdateOne) ClearError() *JobUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetErrorDescription sets the "error_description" field.
func (_u *JobUpdateOne) SetErrorDescription(v string) *JobUpdateOne {
	_u.mutation.SetErrorDescription(v)
	return _u
}

// SetNillableErrorDescription sets the "error_description" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorDescription(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorDescription(*v)
	}
	return _u
}

// ClearErrorDescription clears the value of the "error_description" field.
func (_u *JobUpdateOne) ClearErrorDescription() *JobUpdateOne {
	_u.mutation.ClearErrorDescription()
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *JobUpdateOne) SetTotalInputTokens(v int) *JobUpdateOne {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTotalInputTokens(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *JobUpdateOne) AddTotalInputTokens(v int) *JobUpdateOne {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *JobUpdateOne) SetTotalOutputTokens(v int) *JobUpdateOne {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTotalOutputTokens(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *JobUpdateOne) AddTotalOutputTokens(v int) *JobUpdateOne {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *JobUpdateOne) SetLeaseOwner(v string) *JobUpdateOne {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeaseOwner(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *JobUpdateOne) ClearLeaseOwner() *JobUpdateOne {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *JobUpdateOne) SetLeaseExpiresAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *JobUpdateOne) ClearLeaseExpiresAt() *JobUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *JobUpdateOne) SetCancelRequested(v bool) *JobUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCancelRequested(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the JobMessage entity by IDs.
func (_u *JobUpdateOne) AddMessageIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the JobMessage entity.
func (_u *JobUpdateOne) AddMessages(v ...*JobMessage) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the JobLog entity by IDs.
func (_u *JobUpdateOne) AddLogIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the JobLog entity.
func (_u *JobUpdateOne) AddLogs(v ...*JobLog) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the JobMessage entity.
func (_u *JobUpdateOne) ClearMessages() *JobUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to JobMessage entities by IDs.
func (_u *JobUpdateOne) RemoveMessageIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to JobMessage entities.
func (_u *JobUpdateOne) RemoveMessages(v ...*JobMessage) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearLogs clears all "logs" edges to the JobLog entity.
func (_u *JobUpdateOne) ClearLogs() *JobUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to JobLog entities by IDs.
func (_u *JobUpdateOne) RemoveLogIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to JobLog entities.
func (_u *JobUpdateOne) RemoveLogs(v ...*JobLog) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.target"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(job.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(job.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.APIName(); ok {
		_spec.SetField(job.FieldAPIName, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIDefinitionVersionID(); ok {
		_spec.SetField(job.FieldAPIDefinitionVersionID, field.TypeString, value)
	}
	if _u.mutation.APIDefinitionVersionIDCleared() {
		_spec.ClearField(job.FieldAPIDefinitionVersionID, field.TypeString)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(job.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(job.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(job.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDescription(); ok {
		_spec.SetField(job.FieldErrorDescription, field.TypeString, value)
	}
	if _u.mutation.ErrorDescriptionCleared() {
		_spec.ClearField(job.FieldErrorDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(job.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(job.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(job.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(job.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(job.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(job.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(job.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(job.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.MessagesTable,
			Columns: []string{job.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.MessagesTable,
			Columns: []string{job.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.MessagesTable,
			Columns: []string{job.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LogsTable,
			Columns: []string{job.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LogsTable,
			Columns: []string{job.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LogsTable,
			Columns: []string{job.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(joblog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
