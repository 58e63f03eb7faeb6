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
	"github.com/legacyuse/orchestrator/ent/jobmessage"
	"github.com/legacyuse/orchestrator/ent/target"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTargetID sets the "target_id" field.
func (_c *JobCreate) SetTargetID(v string) *JobCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *JobCreate) SetSessionID(v string) *JobCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableSessionID(v *string) *JobCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetAPIName sets the "api_name" field.
func (_c *JobCreate) SetAPIName(v string) *JobCreate {
	_c.mutation.SetAPIName(v)
	return _c
}

// SetAPIDefinitionVersionID sets the "api_definition_version_id" field.
func (_c *JobCreate) SetAPIDefinitionVersionID(v string) *JobCreate {
	_c.mutation.SetAPIDefinitionVersionID(v)
	return _c
}

// SetNillableAPIDefinitionVersionID sets the "api_definition_version_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableAPIDefinitionVersionID(v *string) *JobCreate {
	if v != nil {
		_c.SetAPIDefinitionVersionID(*v)
	}
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *JobCreate) SetParameters(v map[string]interface{}) *JobCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *JobCreate) SetResult(v map[string]interface{}) *JobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetError sets the "error" field.
func (_c *JobCreate) SetError(v string) *JobCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *JobCreate) SetNillableError(v *string) *JobCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetErrorDescription sets the "error_description" field.
func (_c *JobCreate) SetErrorDescription(v string) *JobCreate {
	_c.mutation.SetErrorDescription(v)
	return _c
}

// SetNillableErrorDescription sets the "error_description" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorDescription(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorDescription(*v)
	}
	return _c
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_c *JobCreate) SetTotalInputTokens(v int) *JobCreate {
	_c.mutation.SetTotalInputTokens(v)
	return _c
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_c *JobCreate) SetNillableTotalInputTokens(v *int) *JobCreate {
	if v != nil {
		_c.SetTotalInputTokens(*v)
	}
	return _c
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_c *JobCreate) SetTotalOutputTokens(v int) *JobCreate {
	_c.mutation.SetTotalOutputTokens(v)
	return _c
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_c *JobCreate) SetNillableTotalOutputTokens(v *int) *JobCreate {
	if v != nil {
		_c.SetTotalOutputTokens(*v)
	}
	return _c
}

// SetLeaseOwner sets the "lease_owner" field.
func (_c *JobCreate) SetLeaseOwner(v string) *JobCreate {
	_c.mutation.SetLeaseOwner(v)
	return _c
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_c *JobCreate) SetNillableLeaseOwner(v *string) *JobCreate {
	if v != nil {
		_c.SetLeaseOwner(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *JobCreate) SetLeaseExpiresAt(v time.Time) *JobCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLeaseExpiresAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *JobCreate) SetCancelRequested(v bool) *JobCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *JobCreate) SetNillableCancelRequested(v *bool) *JobCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTarget sets the "target" edge to the Target entity.
func (_c *JobCreate) SetTarget(v *Target) *JobCreate {
	return _c.SetTargetID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the JobMessage entity by IDs.
func (_c *JobCreate) AddMessageIDs(ids ...string) *JobCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the JobMessage entity.
func (_c *JobCreate) AddMessages(v ...*JobMessage) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddLogIDs adds the "logs" edge to the JobLog entity by IDs.
func (_c *JobCreate) AddLogIDs(ids ...string) *JobCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the JobLog entity.
func (_c *JobCreate) AddLogs(v ...*JobLog) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		v := job.DefaultTotalInputTokens
		_c.mutation.SetTotalInputTokens(v)
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		v := job.DefaultTotalOutputTokens
		_c.mutation.SetTotalOutputTokens(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := job.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "Job.target_id"`)}
	}
	if _, ok := _c.mutation.APIName(); !ok {
		return &ValidationError{Name: "api_name", err: errors.New(`ent: missing required field "Job.api_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		return &ValidationError{Name: "total_input_tokens", err: errors.New(`ent: missing required field "Job.total_input_tokens"`)}
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		return &ValidationError{Name: "total_output_tokens", err: errors.New(`ent: missing required field "Job.total_output_tokens"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Job.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	if len(_c.mutation.TargetIDs()) == 0 {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required edge "Job.target"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(job.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.APIName(); ok {
		_spec.SetField(job.FieldAPIName, field.TypeString, value)
		_node.APIName = value
	}
	if value, ok := _c.mutation.APIDefinitionVersionID(); ok {
		_spec.SetField(job.FieldAPIDefinitionVersionID, field.TypeString, value)
		_node.APIDefinitionVersionID = &value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(job.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.ErrorDescription(); ok {
		_spec.SetField(job.FieldErrorDescription, field.TypeString, value)
		_node.ErrorDescription = &value
	}
	if value, ok := _c.mutation.TotalInputTokens(); ok {
		_spec.SetField(job.FieldTotalInputTokens, field.TypeInt, value)
		_node.TotalInputTokens = value
	}
	if value, ok := _c.mutation.TotalOutputTokens(); ok {
		_spec.SetField(job.FieldTotalOutputTokens, field.TypeInt, value)
		_node.TotalOutputTokens = value
	}
	if value, ok := _c.mutation.LeaseOwner(); ok {
		_spec.SetField(job.FieldLeaseOwner, field.TypeString, value)
		_node.LeaseOwner = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(job.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TargetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.TargetTable,
			Columns: []string{job.TargetColumn},
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
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetTargetID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetTargetID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *JobUpsert) SetSessionID(v string) *JobUpsert {
	u.Set(job.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateSessionID() *JobUpsert {
	u.SetExcluded(job.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *JobUpsert) ClearSessionID() *JobUpsert {
	u.SetNull(job.FieldSessionID)
	return u
}

// SetAPIName sets the "api_name" field.
func (u *JobUpsert) SetAPIName(v string) *JobUpsert {
	u.Set(job.FieldAPIName, v)
	return u
}

// UpdateAPIName sets the "api_name" field to the value that was provided on create.
func (u *JobUpsert) UpdateAPIName() *JobUpsert {
	u.SetExcluded(job.FieldAPIName)
	return u
}

// SetAPIDefinitionVersionID sets the "api_definition_version_id" field.
func (u *JobUpsert) SetAPIDefinitionVersionID(v string) *JobUpsert {
	u.Set(job.FieldAPIDefinitionVersionID, v)
	return u
}

// UpdateAPIDefinitionVersionID sets the "api_definition_version_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateAPIDefinitionVersionID() *JobUpsert {
	u.SetExcluded(job.FieldAPIDefinitionVersionID)
	return u
}

// ClearAPIDefinitionVersionID clears the value of the "api_definition_version_id" field.
func (u *JobUpsert) ClearAPIDefinitionVersionID() *JobUpsert {
	u.SetNull(job.FieldAPIDefinitionVersionID)
	return u
}

// SetParameters sets the "parameters" field.
func (u *JobUpsert) SetParameters(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldParameters, v)
	return u
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *JobUpsert) UpdateParameters() *JobUpsert {
	u.SetExcluded(job.FieldParameters)
	return u
}

// ClearParameters clears the value of the "parameters" field.
func (u *JobUpsert) ClearParameters() *JobUpsert {
	u.SetNull(job.FieldParameters)
	return u
}

// SetStatus sets the "status" field.
func (u *JobUpsert) SetStatus(v job.Status) *JobUpsert {
	u.Set(job.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsert) UpdateStatus() *JobUpsert {
	u.SetExcluded(job.FieldStatus)
	return u
}

// SetResult sets the "result" field.
func (u *JobUpsert) SetResult(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsert) UpdateResult() *JobUpsert {
	u.SetExcluded(job.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsert) ClearResult() *JobUpsert {
	u.SetNull(job.FieldResult)
	return u
}

// SetError sets the "error" field.
func (u *JobUpsert) SetError(v string) *JobUpsert {
	u.Set(job.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *JobUpsert) UpdateError() *JobUpsert {
	u.SetExcluded(job.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *JobUpsert) ClearError() *JobUpsert {
	u.SetNull(job.FieldError)
	return u
}

// SetErrorDescription sets the "error_description" field.
func (u *JobUpsert) SetErrorDescription(v string) *JobUpsert {
	u.Set(job.FieldErrorDescription, v)
	return u
}

// UpdateErrorDescription sets the "error_description" field to the value that was provided on create.
func (u *JobUpsert) UpdateErrorDescription() *JobUpsert {
	u.SetExcluded(job.FieldErrorDescription)
	return u
}

// ClearErrorDescription clears the value of the "error_description" field.
func (u *JobUpsert) ClearErrorDescription() *JobUpsert {
	u.SetNull(job.FieldErrorDescription)
	return u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (u *JobUpsert) SetTotalInputTokens(v int) *JobUpsert {
	u.Set(job.FieldTotalInputTokens, v)
	return u
}

// UpdateTotalInputTokens sets the "total_input_tokens" field to the value that was provided on create.
func (u *JobUpsert) UpdateTotalInputTokens() *JobUpsert {
	u.SetExcluded(job.FieldTotalInputTokens)
	return u
}

// AddTotalInputTokens adds v to the "total_input_tokens" field.
func (u *JobUpsert) AddTotalInputTokens(v int) *JobUpsert {
	u.Add(job.FieldTotalInputTokens, v)
	return u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (u *JobUpsert) SetTotalOutputTokens(v int) *JobUpsert {
	u.Set(job.FieldTotalOutputTokens, v)
	return u
}

// UpdateTotalOutputTokens sets the "total_output_tokens" field to the value that was provided on create.
func (u *JobUpsert) UpdateTotalOutputTokens() *JobUpsert {
	u.SetExcluded(job.FieldTotalOutputTokens)
	return u
}

// AddTotalOutputTokens adds v to the "total_output_tokens" field.
func (u *JobUpsert) AddTotalOutputTokens(v int) *JobUpsert {
	u.Add(job.FieldTotalOutputTokens, v)
	return u
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *JobUpsert) SetLeaseOwner(v string) *JobUpsert {
	u.Set(job.FieldLeaseOwner, v)
	return u
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *JobUpsert) UpdateLeaseOwner() *JobUpsert {
	u.SetExcluded(job.FieldLeaseOwner)
	return u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *JobUpsert) ClearLeaseOwner() *JobUpsert {
	u.SetNull(job.FieldLeaseOwner)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *JobUpsert) SetLeaseExpiresAt(v time.Time) *JobUpsert {
	u.Set(job.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateLeaseExpiresAt() *JobUpsert {
	u.SetExcluded(job.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *JobUpsert) ClearLeaseExpiresAt() *JobUpsert {
	u.SetNull(job.FieldLeaseExpiresAt)
	return u
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *JobUpsert) SetCancelRequested(v bool) *JobUpsert {
	u.Set(job.FieldCancelRequested, v)
	return u
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *JobUpsert) UpdateCancelRequested() *JobUpsert {
	u.SetExcluded(job.FieldCancelRequested)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsert) SetUpdatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateUpdatedAt() *JobUpsert {
	u.SetExcluded(job.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsert) SetCompletedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateCompletedAt() *JobUpsert {
	u.SetExcluded(job.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsert) ClearCompletedAt() *JobUpsert {
	u.SetNull(job.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.TargetID(); exists {
			s.SetIgnore(job.FieldTargetID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(job.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *JobUpsertOne) SetSessionID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSessionID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *JobUpsertOne) ClearSessionID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearSessionID()
	})
}

// SetAPIName sets the "api_name" field.
func (u *JobUpsertOne) SetAPIName(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetAPIName(v)
	})
}

// UpdateAPIName sets the "api_name" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateAPIName() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAPIName()
	})
}

// SetAPIDefinitionVersionID sets the "api_definition_version_id" field.
func (u *JobUpsertOne) SetAPIDefinitionVersionID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetAPIDefinitionVersionID(v)
	})
}

// UpdateAPIDefinitionVersionID sets the "api_definition_version_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateAPIDefinitionVersionID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAPIDefinitionVersionID()
	})
}

// ClearAPIDefinitionVersionID clears the value of the "api_definition_version_id" field.
func (u *JobUpsertOne) ClearAPIDefinitionVersionID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearAPIDefinitionVersionID()
	})
}

// SetParameters sets the "parameters" field.
func (u *JobUpsertOne) SetParameters(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetParameters(v)
	})
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateParameters() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateParameters()
	})
}

// ClearParameters clears the value of the "parameters" field.
func (u *JobUpsertOne) ClearParameters() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearParameters()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertOne) SetStatus(v job.Status) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStatus() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetResult sets the "result" field.
func (u *JobUpsertOne) SetResult(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateResult() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsertOne) ClearResult() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearResult()
	})
}

// SetError sets the "error" field.
func (u *JobUpsertOne) SetError(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateError() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *JobUpsertOne) ClearError() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearError()
	})
}

// SetErrorDescription sets the "error_description" field.
func (u *JobUpsertOne) SetErrorDescription(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetErrorDescription(v)
	})
}

// UpdateErrorDescription sets the "error_description" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateErrorDescription() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateErrorDescription()
	})
}

// ClearErrorDescription clears the value of the "error_description" field.
func (u *JobUpsertOne) ClearErrorDescription() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearErrorDescription()
	})
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (u *JobUpsertOne) SetTotalInputTokens(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTotalInputTokens(v)
	})
}

// AddTotalInputTokens adds v to the "total_input_tokens" field.
func (u *JobUpsertOne) AddTotalInputTokens(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddTotalInputTokens(v)
	})
}

// UpdateTotalInputTokens sets the "total_input_tokens" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTotalInputTokens() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTotalInputTokens()
	})
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (u *JobUpsertOne) SetTotalOutputTokens(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTotalOutputTokens(v)
	})
}

// AddTotalOutputTokens adds v to the "total_output_tokens" field.
func (u *JobUpsertOne) AddTotalOutputTokens(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddTotalOutputTokens(v)
	})
}

// UpdateTotalOutputTokens sets the "total_output_tokens" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTotalOutputTokens() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTotalOutputTokens()
	})
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *JobUpsertOne) SetLeaseOwner(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLeaseOwner() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *JobUpsertOne) ClearLeaseOwner() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *JobUpsertOne) SetLeaseExpiresAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLeaseExpiresAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *JobUpsertOne) ClearLeaseExpiresAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *JobUpsertOne) SetCancelRequested(v bool) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCancelRequested() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertOne) SetUpdatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateUpdatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsertOne) SetCompletedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCompletedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsertOne) ClearCompletedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetTargetID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.TargetID(); exists {
				s.SetIgnore(job.FieldTargetID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(job.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *JobUpsertBulk) SetSessionID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSessionID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *JobUpsertBulk) ClearSessionID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearSessionID()
	})
}

// SetAPIName sets the "api_name" field.
func (u *JobUpsertBulk) SetAPIName(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetAPIName(v)
	})
}

// UpdateAPIName sets the "api_name" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateAPIName() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAPIName()
	})
}

// SetAPIDefinitionVersionID sets the "api_definition_version_id" field.
func (u *JobUpsertBulk) SetAPIDefinitionVersionID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetAPIDefinitionVersionID(v)
	})
}

// UpdateAPIDefinitionVersionID sets the "api_definition_version_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateAPIDefinitionVersionID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAPIDefinitionVersionID()
	})
}

// ClearAPIDefinitionVersionID clears the value of the "api_definition_version_id" field.
func (u *JobUpsertBulk) ClearAPIDefinitionVersionID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearAPIDefinitionVersionID()
	})
}

// SetParameters sets the "parameters" field.
func (u *JobUpsertBulk) SetParameters(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetParameters(v)
	})
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateParameters() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateParameters()
	})
}

// ClearParameters clears the value of the "parameters" field.
func (u *JobUpsertBulk) ClearParameters() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearParameters()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertBulk) SetStatus(v job.Status) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStatus() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetResult sets the "result" field.
func (u *JobUpsertBulk) SetResult(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateResult() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsertBulk) ClearResult() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearResult()
	})
}

// SetError sets the "error" field.
func (u *JobUpsertBulk) SetError(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateError() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *JobUpsertBulk) ClearError() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearError()
	})
}

// SetErrorDescription sets the "error_description" field.
func (u *JobUpsertBulk) SetErrorDescription(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetErrorDescription(v)
	})
}

// UpdateErrorDescription sets the "error_description" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateErrorDescription() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateErrorDescription()
	})
}

// ClearErrorDescription clears the value of the "error_description" field.
func (u *JobUpsertBulk) ClearErrorDescription() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearErrorDescription()
	})
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (u *JobUpsertBulk) SetTotalInputTokens(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTotalInputTokens(v)
	})
}

// AddTotalInputTokens adds v to the "total_input_tokens" field.
func (u *JobUpsertBulk) AddTotalInputTokens(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddTotalInputTokens(v)
	})
}

// UpdateTotalInputTokens sets the "total_input_tokens" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTotalInputTokens() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTotalInputTokens()
	})
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (u *JobUpsertBulk) SetTotalOutputTokens(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTotalOutputTokens(v)
	})
}

// AddTotalOutputTokens adds v to the "total_output_tokens" field.
func (u *JobUpsertBulk) AddTotalOutputTokens(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddTotalOutputTokens(v)
	})
}

// UpdateTotalOutputTokens sets the "total_output_tokens" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTotalOutputTokens() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTotalOutputTokens()
	})
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *JobUpsertBulk) SetLeaseOwner(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLeaseOwner() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *JobUpsertBulk) ClearLeaseOwner() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *JobUpsertBulk) SetLeaseExpiresAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLeaseExpiresAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *JobUpsertBulk) ClearLeaseExpiresAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *JobUpsertBulk) SetCancelRequested(v bool) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCancelRequested() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertBulk) SetUpdatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateUpdatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsertBulk) SetCompletedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCompletedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsertBulk) ClearCompletedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
