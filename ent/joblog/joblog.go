// Code generated by ent, DO NOT EDIT.

package joblog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the joblog type in the database.
	Label = "job_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "log_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLogType holds the string denoting the log_type field in the database.
	FieldLogType = "log_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldContentTrimmed holds the string denoting the content_trimmed field in the database.
	FieldContentTrimmed = "content_trimmed"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// Table holds the table name of the joblog in the database.
	Table = "job_logs"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_logs"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for joblog fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldTimestamp,
	FieldLogType,
	FieldContent,
	FieldContentTrimmed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// LogType defines the type for the "log_type" enum field.
type LogType string

// LogType values.
const (
	LogTypeSystem       LogType = "system"
	LogTypeHTTPExchange LogType = "http_exchange"
	LogTypeToolUse      LogType = "tool_use"
	LogTypeMessage      LogType = "message"
	LogTypeResult       LogType = "result"
	LogTypeError        LogType = "error"
)

func (lt LogType) String() string {
	return string(lt)
}

// LogTypeValidator is a validator for the "log_type" field enum values. It is called by the builders before save.
func LogTypeValidator(lt LogType) error {
	switch lt {
	case LogTypeSystem, LogTypeHTTPExchange, LogTypeToolUse, LogTypeMessage, LogTypeResult, LogTypeError:
		return nil
	default:
		return fmt.Errorf("joblog: invalid enum value for log_type field: %q", lt)
	}
}

// OrderOption defines the ordering options for the JobLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLogType orders the results by the log_type field.
func ByLogType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogType, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
