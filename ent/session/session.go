// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldTargetID holds the string denoting the target_id field in the database.
	FieldTargetID = "target_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldContainerID holds the string denoting the container_id field in the database.
	FieldContainerID = "container_id"
	// FieldContainerIP holds the string denoting the container_ip field in the database.
	FieldContainerIP = "container_ip"
	// FieldIsArchived holds the string denoting the is_archived field in the database.
	FieldIsArchived = "is_archived"
	// FieldArchiveReason holds the string denoting the archive_reason field in the database.
	FieldArchiveReason = "archive_reason"
	// FieldLastJobTime holds the string denoting the last_job_time field in the database.
	FieldLastJobTime = "last_job_time"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTarget holds the string denoting the target edge name in mutations.
	EdgeTarget = "target"
	// TargetFieldID holds the string denoting the ID field of the Target.
	TargetFieldID = "target_id"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// TargetTable is the table that holds the target relation/edge.
	TargetTable = "sessions"
	// TargetInverseTable is the table name for the Target entity.
	// It exists in this package in order to avoid circular dependency with the "target" package.
	TargetInverseTable = "targets"
	// TargetColumn is the table column denoting the target relation/edge.
	TargetColumn = "target_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldTargetID,
	FieldState,
	FieldStatus,
	FieldContainerID,
	FieldContainerIP,
	FieldIsArchived,
	FieldArchiveReason,
	FieldLastJobTime,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultIsArchived holds the default value on creation for the "is_archived" field.
	DefaultIsArchived bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateInitializing is the default value of the State enum.
const DefaultState = StateInitializing

// State values.
const (
	StateInitializing   State = "initializing"
	StateAuthenticating State = "authenticating"
	StateReady          State = "ready"
	StateDestroying     State = "destroying"
	StateDestroyed      State = "destroyed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateInitializing, StateAuthenticating, StateReady, StateDestroying, StateDestroyed:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for state field: %q", s)
	}
}

// ArchiveReason defines the type for the "archive_reason" enum field.
type ArchiveReason string

// ArchiveReason values.
const (
	ArchiveReasonUserInitiated ArchiveReason = "user_initiated"
	ArchiveReasonAutoCleanup   ArchiveReason = "auto_cleanup"
)

func (ar ArchiveReason) String() string {
	return string(ar)
}

// ArchiveReasonValidator is a validator for the "archive_reason" field enum values. It is called by the builders before save.
func ArchiveReasonValidator(ar ArchiveReason) error {
	switch ar {
	case ArchiveReasonUserInitiated, ArchiveReasonAutoCleanup:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for archive_reason field: %q", ar)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTargetID orders the results by the target_id field.
func ByTargetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByContainerID orders the results by the container_id field.
func ByContainerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainerID, opts...).ToFunc()
}

// ByContainerIP orders the results by the container_ip field.
func ByContainerIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainerIP, opts...).ToFunc()
}

// ByIsArchived orders the results by the is_archived field.
func ByIsArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsArchived, opts...).ToFunc()
}

// ByArchiveReason orders the results by the archive_reason field.
func ByArchiveReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchiveReason, opts...).ToFunc()
}

// ByLastJobTime orders the results by the last_job_time field.
func ByLastJobTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastJobTime, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTargetField orders the results by target field.
func ByTargetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTargetStep(), sql.OrderByField(field, opts...))
	}
}
func newTargetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TargetInverseTable, TargetFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TargetTable, TargetColumn),
	)
}
