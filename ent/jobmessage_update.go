// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/legacyuse/orchestrator/ent/jobmessage"
	"github.com/legacyuse/orchestrator/ent/predicate"
	"github.com/legacyuse/orchestrator/pkg/models"
)

// JobMessageUpdate is the builder for updating JobMessage entities.
type JobMessageUpdate struct {
	config
	hooks    []Hook
	mutation *JobMessageMutation
}

// Where appends a list predicates to the JobMessageUpdate builder.
func (_u *JobMessageUpdate) Where(ps ...predicate.JobMessage) *JobMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageContent sets the "message_content" field.
func (_u *JobMessageUpdate) SetMessageContent(v []models.ContentBlock) *JobMessageUpdate {
	_u.mutation.SetMessageContent(v)
	return _u
}

// AppendMessageContent appends value to the "message_content" field.
func (_u *JobMessageUpdate) AppendMessageContent(v []models.ContentBlock) *JobMessageUpdate {
	_u.mutation.AppendMessageContent(v)
	return _u
}

// Mutation returns the JobMessageMutation object of the builder.
func (_u *JobMessageUpdate) Mutation() *JobMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobMessageUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobMessage.job"`)
	}
	return nil
}

func (_u *JobMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobmessage.Table, jobmessage.Columns, sqlgraph.NewFieldSpec(jobmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageContent(); ok {
		_spec.SetField(jobmessage.FieldMessageContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessageContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobmessage.FieldMessageContent, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobMessageUpdateOne is the builder for updating a single JobMessage entity.
type JobMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMessageMutation
}

// SetMessageContent sets the "message_content" field.
func (_u *JobMessageUpdateOne) SetMessageContent(v []models.ContentBlock) *JobMessageUpdateOne {
	_u.mutation.SetMessageContent(v)
	return _u
}

// AppendMessageContent appends value to the "message_content" field.
func (_u *JobMessageUpdateOne) AppendMessageContent(v []models.ContentBlock) *JobMessageUpdateOne {
	_u.mutation.AppendMessageContent(v)
	return _u
}

// Mutation returns the JobMessageMutation object of the builder.
func (_u *JobMessageUpdateOne) Mutation() *JobMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobMessageUpdate builder.
func (_u *JobMessageUpdateOne) Where(ps ...predicate.JobMessage) *JobMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobMessageUpdateOne) Select(field string, fields ...string) *JobMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobMessage entity.
func (_u *JobMessageUpdateOne) Save(ctx context.Context) (*JobMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobMessageUpdateOne) SaveX(ctx context.Context) *JobMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobMessageUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobMessage.job"`)
	}
	return nil
}

func (_u *JobMessageUpdateOne) sqlSave(ctx context.Context) (_node *JobMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobmessage.Table, jobmessage.Columns, sqlgraph.NewFieldSpec(jobmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobmessage.FieldID)
		for _, f := range fields {
			if !jobmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobmessage.FieldID {
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
	if value, ok := _u.mutation.MessageContent(); ok {
		_spec.SetField(jobmessage.FieldMessageContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessageContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobmessage.FieldMessageContent, value)
		})
	}
	_node = &JobMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
