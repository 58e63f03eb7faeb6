// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/legacyuse/orchestrator/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTargetID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// ContainerID applies equality check predicate on the "container_id" field. It's identical to ContainerIDEQ.
func ContainerID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldContainerID, v))
}

// ContainerIP applies equality check predicate on the "container_ip" field. It's identical to ContainerIPEQ.
func ContainerIP(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldContainerIP, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIsArchived, v))
}

// LastJobTime applies equality check predicate on the "last_job_time" field. It's identical to LastJobTimeEQ.
func LastJobTime(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastJobTime, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDContains applies the Contains predicate on the "target_id" field.
func TargetIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTargetID, v))
}

// TargetIDHasPrefix applies the HasPrefix predicate on the "target_id" field.
func TargetIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTargetID, v))
}

// TargetIDHasSuffix applies the HasSuffix predicate on the "target_id" field.
func TargetIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTargetID, v))
}

// TargetIDEqualFold applies the EqualFold predicate on the "target_id" field.
func TargetIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTargetID, v))
}

// TargetIDContainsFold applies the ContainsFold predicate on the "target_id" field.
func TargetIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTargetID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldState, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldStatus, v))
}

// ContainerIDEQ applies the EQ predicate on the "container_id" field.
func ContainerIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldContainerID, v))
}

// ContainerIDNEQ applies the NEQ predicate on the "container_id" field.
func ContainerIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldContainerID, v))
}

// ContainerIDIn applies the In predicate on the "container_id" field.
func ContainerIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldContainerID, vs...))
}

// ContainerIDNotIn applies the NotIn predicate on the "container_id" field.
func ContainerIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldContainerID, vs...))
}

// ContainerIDGT applies the GT predicate on the "container_id" field.
func ContainerIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldContainerID, v))
}

// ContainerIDGTE applies the GTE predicate on the "container_id" field.
func ContainerIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldContainerID, v))
}

// ContainerIDLT applies the LT predicate on the "container_id" field.
func ContainerIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldContainerID, v))
}

// ContainerIDLTE applies the LTE predicate on the "container_id" field.
func ContainerIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldContainerID, v))
}

// ContainerIDContains applies the Contains predicate on the "container_id" field.
func ContainerIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldContainerID, v))
}

// ContainerIDHasPrefix applies the HasPrefix predicate on the "container_id" field.
func ContainerIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldContainerID, v))
}

// ContainerIDHasSuffix applies the HasSuffix predicate on the "container_id" field.
func ContainerIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldContainerID, v))
}

// ContainerIDIsNil applies the IsNil predicate on the "container_id" field.
func ContainerIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldContainerID))
}

// ContainerIDNotNil applies the NotNil predicate on the "container_id" field.
func ContainerIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldContainerID))
}

// ContainerIDEqualFold applies the EqualFold predicate on the "container_id" field.
func ContainerIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldContainerID, v))
}

// ContainerIDContainsFold applies the ContainsFold predicate on the "container_id" field.
func ContainerIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldContainerID, v))
}

// ContainerIPEQ applies the EQ predicate on the "container_ip" field.
func ContainerIPEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldContainerIP, v))
}

// ContainerIPNEQ applies the NEQ predicate on the "container_ip" field.
func ContainerIPNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldContainerIP, v))
}

// ContainerIPIn applies the In predicate on the "container_ip" field.
func ContainerIPIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldContainerIP, vs...))
}

// ContainerIPNotIn applies the NotIn predicate on the "container_ip" field.
func ContainerIPNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldContainerIP, vs...))
}

// ContainerIPGT applies the GT predicate on the "container_ip" field.
func ContainerIPGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldContainerIP, v))
}

// ContainerIPGTE applies the GTE predicate on the "container_ip" field.
func ContainerIPGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldContainerIP, v))
}

// ContainerIPLT applies the LT predicate on the "container_ip" field.
func ContainerIPLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldContainerIP, v))
}

// ContainerIPLTE applies the LTE predicate on the "container_ip" field.
func ContainerIPLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldContainerIP, v))
}

// ContainerIPContains applies the Contains predicate on the "container_ip" field.
func ContainerIPContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldContainerIP, v))
}

// ContainerIPHasPrefix applies the HasPrefix predicate on the "container_ip" field.
func ContainerIPHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldContainerIP, v))
}

// ContainerIPHasSuffix applies the HasSuffix predicate on the "container_ip" field.
func ContainerIPHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldContainerIP, v))
}

// ContainerIPIsNil applies the IsNil predicate on the "container_ip" field.
func ContainerIPIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldContainerIP))
}

// ContainerIPNotNil applies the NotNil predicate on the "container_ip" field.
func ContainerIPNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldContainerIP))
}

// ContainerIPEqualFold applies the EqualFold predicate on the "container_ip" field.
func ContainerIPEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldContainerIP, v))
}

// ContainerIPContainsFold applies the ContainsFold predicate on the "container_ip" field.
func ContainerIPContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldContainerIP, v))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldIsArchived, v))
}

// ArchiveReasonEQ applies the EQ predicate on the "archive_reason" field.
func ArchiveReasonEQ(v ArchiveReason) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldArchiveReason, v))
}

// ArchiveReasonNEQ applies the NEQ predicate on the "archive_reason" field.
func ArchiveReasonNEQ(v ArchiveReason) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldArchiveReason, v))
}

// ArchiveReasonIn applies the In predicate on the "archive_reason" field.
func ArchiveReasonIn(vs ...ArchiveReason) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldArchiveReason, vs...))
}

// ArchiveReasonNotIn applies the NotIn predicate on the "archive_reason" field.
func ArchiveReasonNotIn(vs ...ArchiveReason) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldArchiveReason, vs...))
}

// ArchiveReasonIsNil applies the IsNil predicate on the "archive_reason" field.
func ArchiveReasonIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldArchiveReason))
}

// ArchiveReasonNotNil applies the NotNil predicate on the "archive_reason" field.
func ArchiveReasonNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldArchiveReason))
}

// LastJobTimeEQ applies the EQ predicate on the "last_job_time" field.
func LastJobTimeEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastJobTime, v))
}

// LastJobTimeNEQ applies the NEQ predicate on the "last_job_time" field.
func LastJobTimeNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLastJobTime, v))
}

// LastJobTimeIn applies the In predicate on the "last_job_time" field.
func LastJobTimeIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLastJobTime, vs...))
}

// LastJobTimeNotIn applies the NotIn predicate on the "last_job_time" field.
func LastJobTimeNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLastJobTime, vs...))
}

// LastJobTimeGT applies the GT predicate on the "last_job_time" field.
func LastJobTimeGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLastJobTime, v))
}

// LastJobTimeGTE applies the GTE predicate on the "last_job_time" field.
func LastJobTimeGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLastJobTime, v))
}

// LastJobTimeLT applies the LT predicate on the "last_job_time" field.
func LastJobTimeLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLastJobTime, v))
}

// LastJobTimeLTE applies the LTE predicate on the "last_job_time" field.
func LastJobTimeLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLastJobTime, v))
}

// LastJobTimeIsNil applies the IsNil predicate on the "last_job_time" field.
func LastJobTimeIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldLastJobTime))
}

// LastJobTimeNotNil applies the NotNil predicate on the "last_job_time" field.
func LastJobTimeNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldLastJobTime))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTarget applies the HasEdge predicate on the "target" edge.
func HasTarget() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TargetTable, TargetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTargetWith applies the HasEdge predicate on the "target" edge with a given conditions (other predicates).
func HasTargetWith(preds ...predicate.Target) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newTargetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
