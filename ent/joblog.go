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
	"github.com/legacyuse/orchestrator/ent/joblog"
)

// JobLog is the model entity for the JobLog schema.
type JobLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LogType holds the value of the "log_type" field.
	LogType joblog.LogType `json:"log_type,omitempty"`
	// Content holds the value of the "content" field.
	Content map[string]interface{} `json:"content,omitempty"`
	// ContentTrimmed holds the value of the "content_trimmed" field.
	ContentTrimmed map[string]interface{} `json:"content_trimmed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobLogQuery when eager-loading is set.
	Edges        JobLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobLogEdges holds the relations/edges for other nodes in the graph.
type JobLogEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobLogEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case joblog.FieldContent, joblog.FieldContentTrimmed:
			values[i] = new([]byte)
		case joblog.FieldID, joblog.FieldJobID, joblog.FieldLogType:
			values[i] = new(sql.NullString)
		case joblog.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobLog fields.
func (_m *JobLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case joblog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case joblog.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case joblog.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case joblog.FieldLogType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field log_type", values[i])
			} else if value.Valid {
				_m.LogType = joblog.LogType(value.String)
			}
		case joblog.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case joblog.FieldContentTrimmed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_trimmed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContentTrimmed); err != nil {
					return fmt.Errorf("unmarshal field content_trimmed: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobLog.
// This includes values selected through modifiers, order, etc.
func (_m *JobLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobLog entity.
func (_m *JobLog) QueryJob() *JobQuery {
	return NewJobLogClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobLog.
// Note that you need to call JobLog.Unwrap() before calling this method if this JobLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobLog) Update() *JobLogUpdateOne {
	return NewJobLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobLog) Unwrap() *JobLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobLog) String() string {
	var builder strings.Builder
	builder.WriteString("JobLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("log_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("content_trimmed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentTrimmed))
	builder.WriteByte(')')
	return builder.String()
}

// JobLogs is a parsable slice of JobLog.
type JobLogs []*JobLog
