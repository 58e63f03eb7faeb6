// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/jobmessage"
	"github.com/legacyuse/orchestrator/pkg/models"
)

// JobMessage is the model entity for the JobMessage schema.
type JobMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// 1-based, dense per job
	Sequence int `json:"sequence,omitempty"`
	// Role holds the value of the "role" field.
	Role jobmessage.Role `json:"role,omitempty"`
	// MessageContent holds the value of the "message_content" field.
	MessageContent []models.ContentBlock `json:"message_content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobMessageQuery when eager-loading is set.
	Edges        JobMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobMessageEdges holds the relations/edges for other nodes in the graph.
type JobMessageEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobMessageEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobmessage.FieldMessageContent:
			values[i] = new([]byte)
		case jobmessage.FieldSequence:
			values[i] = new(sql.NullInt64)
		case jobmessage.FieldID, jobmessage.FieldJobID, jobmessage.FieldRole:
			values[i] = new(sql.NullString)
		case jobmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobMessage fields.
func (_m *JobMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case jobmessage.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case jobmessage.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case jobmessage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = jobmessage.Role(value.String)
			}
		case jobmessage.FieldMessageContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field message_content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MessageContent); err != nil {
					return fmt.Errorf("unmarshal field message_content: %w", err)
				}
			}
		case jobmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobMessage.
// This includes values selected through modifiers, order, etc.
func (_m *JobMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobMessage entity.
func (_m *JobMessage) QueryJob() *JobQuery {
	return NewJobMessageClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobMessage.
// Note that you need to call JobMessage.Unwrap() before calling this method if this JobMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobMessage) Update() *JobMessageUpdateOne {
	return NewJobMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobMessage) Unwrap() *JobMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobMessage) String() string {
	var builder strings.Builder
	builder.WriteString("JobMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("message_content=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageContent))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobMessages is a parsable slice of JobMessage.
type JobMessages []*JobMessage
