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
	"github.com/legacyuse/orchestrator/ent/predicate"
	"github.com/legacyuse/orchestrator/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *SessionUpdate) SetState(v session.State) *SessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableState(v *session.State) *SessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v string) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *string) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *SessionUpdate) ClearStatus() *SessionUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetContainerID sets the "container_id" field.
func (_u *SessionUpdate) SetContainerID(v string) *SessionUpdate {
	_u.mutation.SetContainerID(v)
	return _u
}

// SetNillableContainerID sets the "container_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableContainerID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetContainerID(*v)
	}
	return _u
}

// ClearContainerID clears the value of the "container_id" field.
func (_u *SessionUpdate) ClearContainerID() *SessionUpdate {
	_u.mutation.ClearContainerID()
	return _u
}

// SetContainerIP sets the "container_ip" field.
func (_u *SessionUpdate) SetContainerIP(v string) *SessionUpdate {
	_u.mutation.SetContainerIP(v)
	return _u
}

// SetNillableContainerIP sets the "container_ip" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableContainerIP(v *string) *SessionUpdate {
	if v != nil {
		_u.SetContainerIP(*v)
	}
	return _u
}

// ClearContainerIP clears the value of the "container_ip" field.
func (_u *SessionUpdate) ClearContainerIP() *SessionUpdate {
	_u.mutation.ClearContainerIP()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *SessionUpdate) SetIsArchived(v bool) *SessionUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableIsArchived(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchiveReason sets the "archive_reason" field.
func (_u *SessionUpdate) SetArchiveReason(v session.ArchiveReason) *SessionUpdate {
	_u.mutation.SetArchiveReason(v)
	return _u
}

// SetNillableArchiveReason sets the "archive_reason" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableArchiveReason(v *session.ArchiveReason) *SessionUpdate {
	if v != nil {
		_u.SetArchiveReason(*v)
	}
	return _u
}

// ClearArchiveReason clears the value of the "archive_reason" field.
func (_u *SessionUpdate) ClearArchiveReason() *SessionUpdate {
	_u.mutation.ClearArchiveReason()
	return _u
}

// SetLastJobTime sets the "last_job_time" field.
func (_u *SessionUpdate) SetLastJobTime(v time.Time) *SessionUpdate {
	_u.mutation.SetLastJobTime(v)
	return _u
}

// SetNillableLastJobTime sets the "last_job_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastJobTime(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetLastJobTime(*v)
	}
	return _u
}

// ClearLastJobTime clears the value of the "last_job_time" field.
func (_u *SessionUpdate) ClearLastJobTime() *SessionUpdate {
	_u.mutation.ClearLastJobTime()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := session.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Session.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchiveReason(); ok {
		if err := session.ArchiveReasonValidator(v); err != nil {
			return &ValidationError{Name: "archive_reason", err: fmt.Errorf(`ent: validator failed for field "Session.archive_reason": %w`, err)}
		}
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.target"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(session.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(session.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ContainerID(); ok {
		_spec.SetField(session.FieldContainerID, field.TypeString, value)
	}
	if _u.mutation.ContainerIDCleared() {
		_spec.ClearField(session.FieldContainerID, field.TypeString)
	}
	if value, ok := _u.mutation.ContainerIP(); ok {
		_spec.SetField(session.FieldContainerIP, field.TypeString, value)
	}
	if _u.mutation.ContainerIPCleared() {
		_spec.ClearField(session.FieldContainerIP, field.TypeString)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(session.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchiveReason(); ok {
		_spec.SetField(session.FieldArchiveReason, field.TypeEnum, value)
	}
	if _u.mutation.ArchiveReasonCleared() {
		_spec.ClearField(session.FieldArchiveReason, field.TypeEnum)
	}
	if value, ok := _u.mutation.LastJobTime(); ok {
		_spec.SetField(session.FieldLastJobTime, field.TypeTime, value)
	}
	if _u.mutation.LastJobTimeCleared() {
		_spec.ClearField(session.FieldLastJobTime, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetState sets the "state" field.
func (_u *SessionUpdateOne) SetState(v session.State) *SessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableState(v *session.State) *SessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v string) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *SessionUpdateOne) ClearStatus() *SessionUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetContainerID sets the "container_id" field.
func (_u *SessionUpdateOne) SetContainerID(v string) *SessionUpdateOne {
	_u.mutation.SetContainerID(v)
	return _u
}

// SetNillableContainerID sets the "container_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableContainerID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetContainerID(*v)
	}
	return _u
}

// ClearContainerID clears the value of the "container_id" field.
func (_u *SessionUpdateOne) ClearContainerID() *SessionUpdateOne {
	_u.mutation.ClearContainerID()
	return _u
}

// SetContainerIP sets the "container_ip" field.
func (_u *SessionUpdateOne) SetContainerIP(v string) *SessionUpdateOne {
	_u.mutation.SetContainerIP(v)
	return _u
}

// SetNillableContainerIP sets the "container_ip" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableContainerIP(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetContainerIP(*v)
	}
	return _u
}

// ClearContainerIP clears the value of the "container_ip" field.
func (_u *SessionUpdateOne) ClearContainerIP() *SessionUpdateOne {
	_u.mutation.ClearContainerIP()
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *SessionUpdateOne) SetIsArchived(v bool) *SessionUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableIsArchived(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchiveReason sets the "archive_reason" field.
func (_u *SessionUpdateOne) SetArchiveReason(v session.ArchiveReason) *SessionUpdateOne {
	_u.mutation.SetArchiveReason(v)
	return _u
}

// SetNillableArchiveReason sets the "archive_reason" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableArchiveReason(v *session.ArchiveReason) *SessionUpdateOne {
	if v != nil {
		_u.SetArchiveReason(*v)
	}
	return _u
}

// ClearArchiveReason clears the value of the "archive_reason" field.
func (_u *SessionUpdateOne) ClearArchiveReason() *SessionUpdateOne {
	_u.mutation.ClearArchiveReason()
	return _u
}

// SetLastJobTime sets the "last_job_time" field.
func (_u *SessionUpdateOne) SetLastJobTime(v time.Time) *SessionUpdateOne {
	_u.mutation.SetLastJobTime(v)
	return _u
}

// SetNillableLastJobTime sets the "last_job_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastJobTime(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetLastJobTime(*v)
	}
	return _u
}

// ClearLastJobTime clears the value of the "last_job_time" field.
func (_u *SessionUpdateOne) ClearLastJobTime() *SessionUpdateOne {
	_u.mutation.ClearLastJobTime()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := session.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Session.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchiveReason(); ok {
		if err := session.ArchiveReasonValidator(v); err != nil {
			return &ValidationError{Name: "archive_reason", err: fmt.Errorf(`ent: validator failed for field "Session.archive_reason": %w`, err)}
		}
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.target"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(session.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(session.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ContainerID(); ok {
		_spec.SetField(session.FieldContainerID, field.TypeString, value)
	}
	if _u.mutation.ContainerIDCleared() {
		_spec.ClearField(session.FieldContainerID, field.TypeString)
	}
	if value, ok := _u.mutation.ContainerIP(); ok {
		_spec.SetField(session.FieldContainerIP, field.TypeString, value)
	}
	if _u.mutation.ContainerIPCleared() {
		_spec.ClearField(session.FieldContainerIP, field.TypeString)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(session.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchiveReason(); ok {
		_spec.SetField(session.FieldArchiveReason, field.TypeEnum, value)
	}
	if _u.mutation.ArchiveReasonCleared() {
		_spec.ClearField(session.FieldArchiveReason, field.TypeEnum)
	}
	if value, ok := _u.mutation.LastJobTime(); ok {
		_spec.SetField(session.FieldLastJobTime, field.TypeTime, value)
	}
	if _u.mutation.LastJobTimeCleared() {
		_spec.ClearField(session.FieldLastJobTime, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
