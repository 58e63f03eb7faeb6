// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/legacyuse/orchestrator/ent/apidefinition"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/joblog"
	"github.com/legacyuse/orchestrator/ent/jobmessage"
	"github.com/legacyuse/orchestrator/ent/predicate"
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/ent/target"
	"github.com/legacyuse/orchestrator/ent/tenant"
	"github.com/legacyuse/orchestrator/ent/tenantsetting"
	"github.com/legacyuse/orchestrator/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPIDefinition        = "APIDefinition"
	TypeAPIDefinitionVersion = "APIDefinitionVersion"
	TypeJob                  = "Job"
	TypeJobLog               = "JobLog"
	TypeJobMessage           = "JobMessage"
	TypeSession              = "Session"
	TypeTarget               = "Target"
	TypeTenant               = "Tenant"
	TypeTenantSetting        = "TenantSetting"
)

// APIDefinitionMutation represents an operation that mutates the APIDefinition nodes in the graph.
type APIDefinitionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	description     *string
	is_archived     *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	versions        map[string]struct{}
	removedversions map[string]struct{}
	clearedversions bool
	done            bool
	oldValue        func(context.Context) (*APIDefinition, error)
	predicates      []predicate.APIDefinition
}

var _ ent.Mutation = (*APIDefinitionMutation)(nil)

// apidefinitionOption allows management of the mutation configuration using functional options.
type apidefinitionOption func(*APIDefinitionMutation)

// newAPIDefinitionMutation creates new mutation for the APIDefinition entity.
func newAPIDefinitionMutation(c config, op Op, opts ...apidefinitionOption) *APIDefinitionMutation {
	m := &APIDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIDefinitionID sets the ID field of the mutation.
func withAPIDefinitionID(id string) apidefinitionOption {
	return func(m *APIDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *APIDefinition
		)
		m.oldValue = func(ctx context.Context) (*APIDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIDefinition sets the old APIDefinition of the mutation.
func withAPIDefinition(node *APIDefinition) apidefinitionOption {
	return func(m *APIDefinitionMutation) {
		m.oldValue = func(context.Context) (*APIDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIDefinition entities.
func (m *APIDefinitionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIDefinitionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIDefinitionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *APIDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *APIDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the APIDefinition entity.
// If the APIDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *APIDefinitionMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *APIDefinitionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *APIDefinitionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the APIDefinition entity.
// If the APIDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *APIDefinitionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[apidefinition.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *APIDefinitionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[apidefinition.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *APIDefinitionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, apidefinition.FieldDescription)
}

// SetIsArchived sets the "is_archived" field.
func (m *APIDefinitionMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *APIDefinitionMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the APIDefinition entity.
// If the APIDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *APIDefinitionMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *APIDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIDefinition entity.
// If the APIDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *APIDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddVersionIDs adds the "versions" edge to the APIDefinitionVersion entity by ids.
func (m *APIDefinitionMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the APIDefinitionVersion entity.
func (m *APIDefinitionMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the APIDefinitionVersion entity was cleared.
func (m *APIDefinitionMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the APIDefinitionVersion entity by IDs.
func (m *APIDefinitionMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the APIDefinitionVersion entity.
func (m *APIDefinitionMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *APIDefinitionMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *APIDefinitionMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the APIDefinitionMutation builder.
func (m *APIDefinitionMutation) Where(ps ...predicate.APIDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIDefinition).
func (m *APIDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, apidefinition.FieldName)
	}
	if m.description != nil {
		fields = append(fields, apidefinition.FieldDescription)
	}
	if m.is_archived != nil {
		fields = append(fields, apidefinition.FieldIsArchived)
	}
	if m.created_at != nil {
		fields = append(fields, apidefinition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apidefinition.FieldName:
		return m.Name()
	case apidefinition.FieldDescription:
		return m.Description()
	case apidefinition.FieldIsArchived:
		return m.IsArchived()
	case apidefinition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apidefinition.FieldName:
		return m.OldName(ctx)
	case apidefinition.FieldDescription:
		return m.OldDescription(ctx)
	case apidefinition.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case apidefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apidefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case apidefinition.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case apidefinition.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case apidefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIDefinitionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown APIDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apidefinition.FieldDescription) {
		fields = append(fields, apidefinition.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIDefinitionMutation) ClearField(name string) error {
	switch name {
	case apidefinition.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown APIDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIDefinitionMutation) ResetField(name string) error {
	switch name {
	case apidefinition.FieldName:
		m.ResetName()
		return nil
	case apidefinition.FieldDescription:
		m.ResetDescription()
		return nil
	case apidefinition.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case apidefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown APIDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.versions != nil {
		edges = append(edges, apidefinition.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIDefinitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case apidefinition.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedversions != nil {
		edges = append(edges, apidefinition.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIDefinitionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case apidefinition.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedversions {
		edges = append(edges, apidefinition.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIDefinitionMutation) EdgeCleared(name string) bool {
	switch name {
	case apidefinition.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIDefinitionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown APIDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIDefinitionMutation) ResetEdge(name string) error {
	switch name {
	case apidefinition.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown APIDefinition edge %s", name)
}

// APIDefinitionVersionMutation represents an operation that mutates the APIDefinitionVersion nodes in the graph.
type APIDefinitionVersionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	version_number    *int
	addversion_number *int
	parameters        *[]models.APIParameter
	appendparameters  []models.APIParameter
	prompt            *string
	prompt_cleanup    *string
	response_example  *map[string]interface{}
	is_active         *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	definition        *string
	cleareddefinition bool
	done              bool
	oldValue          func(context.Context) (*APIDefinitionVersion, error)
	predicates        []predicate.APIDefinitionVersion
}

var _ ent.Mutation = (*APIDefinitionVersionMutation)(nil)

// apidefinitionversionOption allows management of the mutation configuration using functional options.
type apidefinitionversionOption func(*APIDefinitionVersionMutation)

// newAPIDefinitionVersionMutation creates new mutation for the APIDefinitionVersion entity.
func newAPIDefinitionVersionMutation(c config, op Op, opts ...apidefinitionversionOption) *APIDefinitionVersionMutation {
	m := &APIDefinitionVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIDefinitionVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIDefinitionVersionID sets the ID field of the mutation.
func withAPIDefinitionVersionID(id string) apidefinitionversionOption {
	return func(m *APIDefinitionVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *APIDefinitionVersion
		)
		m.oldValue = func(ctx context.Context) (*APIDefinitionVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIDefinitionVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIDefinitionVersion sets the old APIDefinitionVersion of the mutation.
func withAPIDefinitionVersion(node *APIDefinitionVersion) apidefinitionversionOption {
	return func(m *APIDefinitionVersionMutation) {
		m.oldValue = func(context.Context) (*APIDefinitionVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIDefinitionVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIDefinitionVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIDefinitionVersion entities.
func (m *APIDefinitionVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIDefinitionVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIDefinitionVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIDefinitionVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAPIDefinitionID sets the "api_definition_id" field.
func (m *APIDefinitionVersionMutation) SetAPIDefinitionID(s string) {
	m.definition = &s
}

// APIDefinitionID returns the value of the "api_definition_id" field in the mutation.
func (m *APIDefinitionVersionMutation) APIDefinitionID() (r string, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIDefinitionID returns the old "api_definition_id" field's value of the APIDefinitionVersion entity.
// If the APIDefinitionVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionVersionMutation) OldAPIDefinitionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIDefinitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIDefinitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIDefinitionID: %w", err)
	}
	return oldValue.APIDefinitionID, nil
}

// ResetAPIDefinitionID resets all changes to the "api_definition_id" field.
func (m *APIDefinitionVersionMutation) ResetAPIDefinitionID() {
	m.definition = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *APIDefinitionVersionMutation) SetVersionNumber(i int) {
	m.version_number = &i
	m.addversion_number = nil
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *APIDefinitionVersionMutation) VersionNumber() (r int, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the APIDefinitionVersion entity.
// If the APIDefinitionVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionVersionMutation) OldVersionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// AddVersionNumber adds i to the "version_number" field.
func (m *APIDefinitionVersionMutation) AddVersionNumber(i int) {
	if m.addversion_number != nil {
		*m.addversion_number += i
	} else {
		m.addversion_number = &i
	}
}

// AddedVersionNumber returns the value that was added to the "version_number" field in this mutation.
func (m *APIDefinitionVersionMutation) AddedVersionNumber() (r int, exists bool) {
	v := m.addversion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *APIDefinitionVersionMutation) ResetVersionNumber() {
	m.version_number = nil
	m.addversion_number = nil
}

// SetParameters sets the "parameters" field.
func (m *APIDefinitionVersionMutation) SetParameters(mp []models.APIParameter) {
	m.parameters = &mp
	m.appendparameters = nil
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *APIDefinitionVersionMutation) Parameters() (r []models.APIParameter, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the APIDefinitionVersion entity.
// If the APIDefinitionVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionVersionMutation) OldParameters(ctx context.Context) (v []models.APIParameter, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// AppendParameters adds mp to the "parameters" field.
func (m *APIDefinitionVersionMutation) AppendParameters(mp []models.APIParameter) {
	m.appendparameters = append(m.appendparameters, mp...)
}

// AppendedParameters returns the list of values that were appended to the "parameters" field in this mutation.
func (m *APIDefinitionVersionMutation) AppendedParameters() ([]models.APIParameter, bool) {
	if len(m.appendparameters) == 0 {
		return nil, false
	}
	return m.appendparameters, true
}

// ClearParameters clears the value of the "parameters" field.
func (m *APIDefinitionVersionMutation) ClearParameters() {
	m.parameters = nil
	m.appendparameters = nil
	m.clearedFields[apidefinitionversion.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *APIDefinitionVersionMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[apidefinitionversion.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *APIDefinitionVersionMutation) ResetParameters() {
	m.parameters = nil
	m.appendparameters = nil
	delete(m.clearedFields, apidefinitionversion.FieldParameters)
}

// SetPrompt sets the "prompt" field.
func (m *APIDefinitionVersionMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *APIDefinitionVersionMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the APIDefinitionVersion entity.
// If the APIDefinitionVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionVersionMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *APIDefinitionVersionMutation) ResetPrompt() {
	m.prompt = nil
}

// SetPromptCleanup sets the "prompt_cleanup" field.
func (m *APIDefinitionVersionMutation) SetPromptCleanup(s string) {
	m.prompt_cleanup = &s
}

// PromptCleanup returns the value of the "prompt_cleanup" field in the mutation.
func (m *APIDefinitionVersionMutation) PromptCleanup() (r string, exists bool) {
	v := m.prompt_cleanup
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptCleanup returns the old "prompt_cleanup" field's value of the APIDefinitionVersion entity.
// If the APIDefinitionVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionVersionMutation) OldPromptCleanup(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptCleanup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptCleanup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptCleanup: %w", err)
	}
	return oldValue.PromptCleanup, nil
}

// ClearPromptCleanup clears the value of the "prompt_cleanup" field.
func (m *APIDefinitionVersionMutation) ClearPromptCleanup() {
	m.prompt_cleanup = nil
	m.clearedFields[apidefinitionversion.FieldPromptCleanup] = struct{}{}
}

// PromptCleanupCleared returns if the "prompt_cleanup" field was cleared in this mutation.
func (m *APIDefinitionVersionMutation) PromptCleanupCleared() bool {
	_, ok := m.clearedFields[apidefinitionversion.FieldPromptCleanup]
	return ok
}

// ResetPromptCleanup resets all changes to the "prompt_cleanup" field.
func (m *APIDefinitionVersionMutation) ResetPromptCleanup() {
	m.prompt_cleanup = nil
	delete(m.clearedFields, apidefinitionversion.FieldPromptCleanup)
}

// SetResponseExample sets the "response_example" field.
func (m *APIDefinitionVersionMutation) SetResponseExample(value map[string]interface{}) {
	m.response_example = &value
}

// ResponseExample returns the value of the "response_example" field in the mutation.
func (m *APIDefinitionVersionMutation) ResponseExample() (r map[string]interface{}, exists bool) {
	v := m.response_example
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseExample returns the old "response_example" field's value of the APIDefinitionVersion entity.
// If the APIDefinitionVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionVersionMutation) OldResponseExample(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseExample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseExample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseExample: %w", err)
	}
	return oldValue.ResponseExample, nil
}

// ClearResponseExample clears the value of the "response_example" field.
func (m *APIDefinitionVersionMutation) ClearResponseExample() {
	m.response_example = nil
	m.clearedFields[apidefinitionversion.FieldResponseExample] = struct{}{}
}

// ResponseExampleCleared returns if the "response_example" field was cleared in this mutation.
func (m *APIDefinitionVersionMutation) ResponseExampleCleared() bool {
	_, ok := m.clearedFields[apidefinitionversion.FieldResponseExample]
	return ok
}

// ResetResponseExample resets all changes to the "response_example" field.
func (m *APIDefinitionVersionMutation) ResetResponseExample() {
	m.response_example = nil
	delete(m.clearedFields, apidefinitionversion.FieldResponseExample)
}

// SetIsActive sets the "is_active" field.
func (m *APIDefinitionVersionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *APIDefinitionVersionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the APIDefinitionVersion entity.
// If the APIDefinitionVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionVersionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *APIDefinitionVersionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *APIDefinitionVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIDefinitionVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIDefinitionVersion entity.
// If the APIDefinitionVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIDefinitionVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *APIDefinitionVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDefinitionID sets the "definition" edge to the APIDefinition entity by id.
func (m *APIDefinitionVersionMutation) SetDefinitionID(id string) {
	m.definition = &id
}

// ClearDefinition clears the "definition" edge to the APIDefinition entity.
func (m *APIDefinitionVersionMutation) ClearDefinition() {
	m.cleareddefinition = true
	m.clearedFields[apidefinitionversion.FieldAPIDefinitionID] = struct{}{}
}

// DefinitionCleared reports if the "definition" edge to the APIDefinition entity was cleared.
func (m *APIDefinitionVersionMutation) DefinitionCleared() bool {
	return m.cleareddefinition
}

// DefinitionID returns the "definition" edge ID in the mutation.
func (m *APIDefinitionVersionMutation) DefinitionID() (id string, exists bool) {
	if m.definition != nil {
		return *m.definition, true
	}
	return
}

// DefinitionIDs returns the "definition" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DefinitionID instead. It exists only for internal usage by the builders.
func (m *APIDefinitionVersionMutation) DefinitionIDs() (ids []string) {
	if id := m.definition; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDefinition resets all changes to the "definition" edge.
func (m *APIDefinitionVersionMutation) ResetDefinition() {
	m.definition = nil
	m.cleareddefinition = false
}

// Where appends a list predicates to the APIDefinitionVersionMutation builder.
func (m *APIDefinitionVersionMutation) Where(ps ...predicate.APIDefinitionVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIDefinitionVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIDefinitionVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIDefinitionVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIDefinitionVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIDefinitionVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIDefinitionVersion).
func (m *APIDefinitionVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIDefinitionVersionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.definition != nil {
		fields = append(fields, apidefinitionversion.FieldAPIDefinitionID)
	}
	if m.version_number != nil {
		fields = append(fields, apidefinitionversion.FieldVersionNumber)
	}
	if m.parameters != nil {
		fields = append(fields, apidefinitionversion.FieldParameters)
	}
	if m.prompt != nil {
		fields = append(fields, apidefinitionversion.FieldPrompt)
	}
	if m.prompt_cleanup != nil {
		fields = append(fields, apidefinitionversion.FieldPromptCleanup)
	}
	if m.response_example != nil {
		fields = append(fields, apidefinitionversion.FieldResponseExample)
	}
	if m.is_active != nil {
		fields = append(fields, apidefinitionversion.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, apidefinitionversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIDefinitionVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apidefinitionversion.FieldAPIDefinitionID:
		return m.APIDefinitionID()
	case apidefinitionversion.FieldVersionNumber:
		return m.VersionNumber()
	case apidefinitionversion.FieldParameters:
		return m.Parameters()
	case apidefinitionversion.FieldPrompt:
		return m.Prompt()
	case apidefinitionversion.FieldPromptCleanup:
		return m.PromptCleanup()
	case apidefinitionversion.FieldResponseExample:
		return m.ResponseExample()
	case apidefinitionversion.FieldIsActive:
		return m.IsActive()
	case apidefinitionversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIDefinitionVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apidefinitionversion.FieldAPIDefinitionID:
		return m.OldAPIDefinitionID(ctx)
	case apidefinitionversion.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case apidefinitionversion.FieldParameters:
		return m.OldParameters(ctx)
	case apidefinitionversion.FieldPrompt:
		return m.OldPrompt(ctx)
	case apidefinitionversion.FieldPromptCleanup:
		return m.OldPromptCleanup(ctx)
	case apidefinitionversion.FieldResponseExample:
		return m.OldResponseExample(ctx)
	case apidefinitionversion.FieldIsActive:
		return m.OldIsActive(ctx)
	case apidefinitionversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIDefinitionVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIDefinitionVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apidefinitionversion.FieldAPIDefinitionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIDefinitionID(v)
		return nil
	case apidefinitionversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case apidefinitionversion.FieldParameters:
		v, ok := value.([]models.APIParameter)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case apidefinitionversion.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case apidefinitionversion.FieldPromptCleanup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptCleanup(v)
		return nil
	case apidefinitionversion.FieldResponseExample:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseExample(v)
		return nil
	case apidefinitionversion.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case apidefinitionversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIDefinitionVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIDefinitionVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion_number != nil {
		fields = append(fields, apidefinitionversion.FieldVersionNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIDefinitionVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apidefinitionversion.FieldVersionNumber:
		return m.AddedVersionNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIDefinitionVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apidefinitionversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNumber(v)
		return nil
	}
	return fmt.Errorf("unknown APIDefinitionVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIDefinitionVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apidefinitionversion.FieldParameters) {
		fields = append(fields, apidefinitionversion.FieldParameters)
	}
	if m.FieldCleared(apidefinitionversion.FieldPromptCleanup) {
		fields = append(fields, apidefinitionversion.FieldPromptCleanup)
	}
	if m.FieldCleared(apidefinitionversion.FieldResponseExample) {
		fields = append(fields, apidefinitionversion.FieldResponseExample)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIDefinitionVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIDefinitionVersionMutation) ClearField(name string) error {
	switch name {
	case apidefinitionversion.FieldParameters:
		m.ClearParameters()
		return nil
	case apidefinitionversion.FieldPromptCleanup:
		m.ClearPromptCleanup()
		return nil
	case apidefinitionversion.FieldResponseExample:
		m.ClearResponseExample()
		return nil
	}
	return fmt.Errorf("unknown APIDefinitionVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIDefinitionVersionMutation) ResetField(name string) error {
	switch name {
	case apidefinitionversion.FieldAPIDefinitionID:
		m.ResetAPIDefinitionID()
		return nil
	case apidefinitionversion.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case apidefinitionversion.FieldParameters:
		m.ResetParameters()
		return nil
	case apidefinitionversion.FieldPrompt:
		m.ResetPrompt()
		return nil
	case apidefinitionversion.FieldPromptCleanup:
		m.ResetPromptCleanup()
		return nil
	case apidefinitionversion.FieldResponseExample:
		m.ResetResponseExample()
		return nil
	case apidefinitionversion.FieldIsActive:
		m.ResetIsActive()
		return nil
	case apidefinitionversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown APIDefinitionVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIDefinitionVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.definition != nil {
		edges = append(edges, apidefinitionversion.EdgeDefinition)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIDefinitionVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case apidefinitionversion.EdgeDefinition:
		if id := m.definition; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIDefinitionVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIDefinitionVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIDefinitionVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddefinition {
		edges = append(edges, apidefinitionversion.EdgeDefinition)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIDefinitionVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case apidefinitionversion.EdgeDefinition:
		return m.cleareddefinition
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIDefinitionVersionMutation) ClearEdge(name string) error {
	switch name {
	case apidefinitionversion.EdgeDefinition:
		m.ClearDefinition()
		return nil
	}
	return fmt.Errorf("unknown APIDefinitionVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIDefinitionVersionMutation) ResetEdge(name string) error {
	switch name {
	case apidefinitionversion.EdgeDefinition:
		m.ResetDefinition()
		return nil
	}
	return fmt.Errorf("unknown APIDefinitionVersion edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	session_id                *string
	api_name                  *string
	api_definition_version_id *string
	parameters                *map[string]interface{}
	status                    *job.Status
	result                    *map[string]interface{}
	error                     *string
	error_description         *string
	total_input_tokens        *int
	addtotal_input_tokens     *int
	total_output_tokens       *int
	addtotal_output_tokens    *int
	lease_owner               *string
	lease_expires_at          *time.Time
	cancel_requested          *bool
	created_at                *time.Time
	updated_at                *time.Time
	completed_at              *time.Time
	clearedFields             map[string]struct{}
	target                    *string
	clearedtarget             bool
	messages                  map[string]struct{}
	removedmessages           map[string]struct{}
	clearedmessages           bool
	logs                      map[string]struct{}
	removedlogs               map[string]struct{}
	clearedlogs               bool
	done                      bool
	oldValue                  func(context.Context) (*Job, error)
	predicates                []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTargetID sets the "target_id" field.
func (m *JobMutation) SetTargetID(s string) {
	m.target = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *JobMutation) TargetID() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *JobMutation) ResetTargetID() {
	m.target = nil
}

// SetSessionID sets the "session_id" field.
func (m *JobMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *JobMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *JobMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[job.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *JobMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[job.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *JobMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, job.FieldSessionID)
}

// SetAPIName sets the "api_name" field.
func (m *JobMutation) SetAPIName(s string) {
	m.api_name = &s
}

// APIName returns the value of the "api_name" field in the mutation.
func (m *JobMutation) APIName() (r string, exists bool) {
	v := m.api_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIName returns the old "api_name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAPIName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIName: %w", err)
	}
	return oldValue.APIName, nil
}

// ResetAPIName resets all changes to the "api_name" field.
func (m *JobMutation) ResetAPIName() {
	m.api_name = nil
}

// SetAPIDefinitionVersionID sets the "api_definition_version_id" field.
func (m *JobMutation) SetAPIDefinitionVersionID(s string) {
	m.api_definition_version_id = &s
}

// APIDefinitionVersionID returns the value of the "api_definition_version_id" field in the mutation.
func (m *JobMutation) APIDefinitionVersionID() (r string, exists bool) {
	v := m.api_definition_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIDefinitionVersionID returns the old "api_definition_version_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAPIDefinitionVersionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIDefinitionVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIDefinitionVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIDefinitionVersionID: %w", err)
	}
	return oldValue.APIDefinitionVersionID, nil
}

// ClearAPIDefinitionVersionID clears the value of the "api_definition_version_id" field.
func (m *JobMutation) ClearAPIDefinitionVersionID() {
	m.api_definition_version_id = nil
	m.clearedFields[job.FieldAPIDefinitionVersionID] = struct{}{}
}

// APIDefinitionVersionIDCleared returns if the "api_definition_version_id" field was cleared in this mutation.
func (m *JobMutation) APIDefinitionVersionIDCleared() bool {
	_, ok := m.clearedFields[job.FieldAPIDefinitionVersionID]
	return ok
}

// ResetAPIDefinitionVersionID resets all changes to the "api_definition_version_id" field.
func (m *JobMutation) ResetAPIDefinitionVersionID() {
	m.api_definition_version_id = nil
	delete(m.clearedFields, job.FieldAPIDefinitionVersionID)
}

// SetParameters sets the "parameters" field.
func (m *JobMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *JobMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *JobMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[job.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *JobMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[job.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *JobMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, job.FieldParameters)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetError sets the "error" field.
func (m *JobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *JobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *JobMutation) ClearError() {
	m.error = nil
	m.clearedFields[job.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *JobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *JobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, job.FieldError)
}

// SetErrorDescription sets the "error_description" field.
func (m *JobMutation) SetErrorDescription(s string) {
	m.error_description = &s
}

// ErrorDescription returns the value of the "error_description" field in the mutation.
func (m *JobMutation) ErrorDescription() (r string, exists bool) {
	v := m.error_description
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDescription returns the old "error_description" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDescription: %w", err)
	}
	return oldValue.ErrorDescription, nil
}

// ClearErrorDescription clears the value of the "error_description" field.
func (m *JobMutation) ClearErrorDescription() {
	m.error_description = nil
	m.clearedFields[job.FieldErrorDescription] = struct{}{}
}

// ErrorDescriptionCleared returns if the "error_description" field was cleared in this mutation.
func (m *JobMutation) ErrorDescriptionCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorDescription]
	return ok
}

// ResetErrorDescription resets all changes to the "error_description" field.
func (m *JobMutation) ResetErrorDescription() {
	m.error_description = nil
	delete(m.clearedFields, job.FieldErrorDescription)
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (m *JobMutation) SetTotalInputTokens(i int) {
	m.total_input_tokens = &i
	m.addtotal_input_tokens = nil
}

// TotalInputTokens returns the value of the "total_input_tokens" field in the mutation.
func (m *JobMutation) TotalInputTokens() (r int, exists bool) {
	v := m.total_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalInputTokens returns the old "total_input_tokens" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTotalInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalInputTokens: %w", err)
	}
	return oldValue.TotalInputTokens, nil
}

// AddTotalInputTokens adds i to the "total_input_tokens" field.
func (m *JobMutation) AddTotalInputTokens(i int) {
	if m.addtotal_input_tokens != nil {
		*m.addtotal_input_tokens += i
	} else {
		m.addtotal_input_tokens = &i
	}
}

// AddedTotalInputTokens returns the value that was added to the "total_input_tokens" field in this mutation.
func (m *JobMutation) AddedTotalInputTokens() (r int, exists bool) {
	v := m.addtotal_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalInputTokens resets all changes to the "total_input_tokens" field.
func (m *JobMutation) ResetTotalInputTokens() {
	m.total_input_tokens = nil
	m.addtotal_input_tokens = nil
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (m *JobMutation) SetTotalOutputTokens(i int) {
	m.total_output_tokens = &i
	m.addtotal_output_tokens = nil
}

// TotalOutputTokens returns the value of the "total_output_tokens" field in the mutation.
func (m *JobMutation) TotalOutputTokens() (r int, exists bool) {
	v := m.total_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOutputTokens returns the old "total_output_tokens" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTotalOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOutputTokens: %w", err)
	}
	return oldValue.TotalOutputTokens, nil
}

// AddTotalOutputTokens adds i to the "total_output_tokens" field.
func (m *JobMutation) AddTotalOutputTokens(i int) {
	if m.addtotal_output_tokens != nil {
		*m.addtotal_output_tokens += i
	} else {
		m.addtotal_output_tokens = &i
	}
}

// AddedTotalOutputTokens returns the value that was added to the "total_output_tokens" field in this mutation.
func (m *JobMutation) AddedTotalOutputTokens() (r int, exists bool) {
	v := m.addtotal_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalOutputTokens resets all changes to the "total_output_tokens" field.
func (m *JobMutation) ResetTotalOutputTokens() {
	m.total_output_tokens = nil
	m.addtotal_output_tokens = nil
}

// SetLeaseOwner sets the "lease_owner" field.
func (m *JobMutation) SetLeaseOwner(s string) {
	m.lease_owner = &s
}

// LeaseOwner returns the value of the "lease_owner" field in the mutation.
func (m *JobMutation) LeaseOwner() (r string, exists bool) {
	v := m.lease_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseOwner returns the old "lease_owner" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseOwner: %w", err)
	}
	return oldValue.LeaseOwner, nil
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (m *JobMutation) ClearLeaseOwner() {
	m.lease_owner = nil
	m.clearedFields[job.FieldLeaseOwner] = struct{}{}
}

// LeaseOwnerCleared returns if the "lease_owner" field was cleared in this mutation.
func (m *JobMutation) LeaseOwnerCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseOwner]
	return ok
}

// ResetLeaseOwner resets all changes to the "lease_owner" field.
func (m *JobMutation) ResetLeaseOwner() {
	m.lease_owner = nil
	delete(m.clearedFields, job.FieldLeaseOwner)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *JobMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *JobMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *JobMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[job.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *JobMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *JobMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, job.FieldLeaseExpiresAt)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *JobMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *JobMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *JobMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// ClearTarget clears the "target" edge to the Target entity.
func (m *JobMutation) ClearTarget() {
	m.clearedtarget = true
	m.clearedFields[job.FieldTargetID] = struct{}{}
}

// TargetCleared reports if the "target" edge to the Target entity was cleared.
func (m *JobMutation) TargetCleared() bool {
	return m.clearedtarget
}

// TargetIDs returns the "target" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TargetID instead. It exists only for internal usage by the builders.
func (m *JobMutation) TargetIDs() (ids []string) {
	if id := m.target; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTarget resets all changes to the "target" edge.
func (m *JobMutation) ResetTarget() {
	m.target = nil
	m.clearedtarget = false
}

// AddMessageIDs adds the "messages" edge to the JobMessage entity by ids.
func (m *JobMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the JobMessage entity.
func (m *JobMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the JobMessage entity was cleared.
func (m *JobMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the JobMessage entity by IDs.
func (m *JobMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the JobMessage entity.
func (m *JobMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *JobMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *JobMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddLogIDs adds the "logs" edge to the JobLog entity by ids.
func (m *JobMutation) AddLogIDs(ids ...string) {
	if m.logs == nil {
		m.logs = make(map[string]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the JobLog entity.
func (m *JobMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the JobLog entity was cleared.
func (m *JobMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the JobLog entity by IDs.
func (m *JobMutation) RemoveLogIDs(ids ...string) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the JobLog entity.
func (m *JobMutation) RemovedLogsIDs() (ids []string) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *JobMutation) LogsIDs() (ids []string) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *JobMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.target != nil {
		fields = append(fields, job.FieldTargetID)
	}
	if m.session_id != nil {
		fields = append(fields, job.FieldSessionID)
	}
	if m.api_name != nil {
		fields = append(fields, job.FieldAPIName)
	}
	if m.api_definition_version_id != nil {
		fields = append(fields, job.FieldAPIDefinitionVersionID)
	}
	if m.parameters != nil {
		fields = append(fields, job.FieldParameters)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, job.FieldError)
	}
	if m.error_description != nil {
		fields = append(fields, job.FieldErrorDescription)
	}
	if m.total_input_tokens != nil {
		fields = append(fields, job.FieldTotalInputTokens)
	}
	if m.total_output_tokens != nil {
		fields = append(fields, job.FieldTotalOutputTokens)
	}
	if m.lease_owner != nil {
		fields = append(fields, job.FieldLeaseOwner)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.cancel_requested != nil {
		fields = append(fields, job.FieldCancelRequested)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTargetID:
		return m.TargetID()
	case job.FieldSessionID:
		return m.SessionID()
	case job.FieldAPIName:
		return m.APIName()
	case job.FieldAPIDefinitionVersionID:
		return m.APIDefinitionVersionID()
	case job.FieldParameters:
		return m.Parameters()
	case job.FieldStatus:
		return m.Status()
	case job.FieldResult:
		return m.Result()
	case job.FieldError:
		return m.Error()
	case job.FieldErrorDescription:
		return m.ErrorDescription()
	case job.FieldTotalInputTokens:
		return m.TotalInputTokens()
	case job.FieldTotalOutputTokens:
		return m.TotalOutputTokens()
	case job.FieldLeaseOwner:
		return m.LeaseOwner()
	case job.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case job.FieldCancelRequested:
		return m.CancelRequested()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldTargetID:
		return m.OldTargetID(ctx)
	case job.FieldSessionID:
		return m.OldSessionID(ctx)
	case job.FieldAPIName:
		return m.OldAPIName(ctx)
	case job.FieldAPIDefinitionVersionID:
		return m.OldAPIDefinitionVersionID(ctx)
	case job.FieldParameters:
		return m.OldParameters(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldError:
		return m.OldError(ctx)
	case job.FieldErrorDescription:
		return m.OldErrorDescription(ctx)
	case job.FieldTotalInputTokens:
		return m.OldTotalInputTokens(ctx)
	case job.FieldTotalOutputTokens:
		return m.OldTotalOutputTokens(ctx)
	case job.FieldLeaseOwner:
		return m.OldLeaseOwner(ctx)
	case job.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case job.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case job.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case job.FieldAPIName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIName(v)
		return nil
	case job.FieldAPIDefinitionVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIDefinitionVersionID(v)
		return nil
	case job.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case job.FieldErrorDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDescription(v)
		return nil
	case job.FieldTotalInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalInputTokens(v)
		return nil
	case job.FieldTotalOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOutputTokens(v)
		return nil
	case job.FieldLeaseOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseOwner(v)
		return nil
	case job.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case job.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_input_tokens != nil {
		fields = append(fields, job.FieldTotalInputTokens)
	}
	if m.addtotal_output_tokens != nil {
		fields = append(fields, job.FieldTotalOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTotalInputTokens:
		return m.AddedTotalInputTokens()
	case job.FieldTotalOutputTokens:
		return m.AddedTotalOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldTotalInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalInputTokens(v)
		return nil
	case job.FieldTotalOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldSessionID) {
		fields = append(fields, job.FieldSessionID)
	}
	if m.FieldCleared(job.FieldAPIDefinitionVersionID) {
		fields = append(fields, job.FieldAPIDefinitionVersionID)
	}
	if m.FieldCleared(job.FieldParameters) {
		fields = append(fields, job.FieldParameters)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldError) {
		fields = append(fields, job.FieldError)
	}
	if m.FieldCleared(job.FieldErrorDescription) {
		fields = append(fields, job.FieldErrorDescription)
	}
	if m.FieldCleared(job.FieldLeaseOwner) {
		fields = append(fields, job.FieldLeaseOwner)
	}
	if m.FieldCleared(job.FieldLeaseExpiresAt) {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldSessionID:
		m.ClearSessionID()
		return nil
	case job.FieldAPIDefinitionVersionID:
		m.ClearAPIDefinitionVersionID()
		return nil
	case job.FieldParameters:
		m.ClearParameters()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldError:
		m.ClearError()
		return nil
	case job.FieldErrorDescription:
		m.ClearErrorDescription()
		return nil
	case job.FieldLeaseOwner:
		m.ClearLeaseOwner()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldTargetID:
		m.ResetTargetID()
		return nil
	case job.FieldSessionID:
		m.ResetSessionID()
		return nil
	case job.FieldAPIName:
		m.ResetAPIName()
		return nil
	case job.FieldAPIDefinitionVersionID:
		m.ResetAPIDefinitionVersionID()
		return nil
	case job.FieldParameters:
		m.ResetParameters()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldError:
		m.ResetError()
		return nil
	case job.FieldErrorDescription:
		m.ResetErrorDescription()
		return nil
	case job.FieldTotalInputTokens:
		m.ResetTotalInputTokens()
		return nil
	case job.FieldTotalOutputTokens:
		m.ResetTotalOutputTokens()
		return nil
	case job.FieldLeaseOwner:
		m.ResetLeaseOwner()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case job.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.target != nil {
		edges = append(edges, job.EdgeTarget)
	}
	if m.messages != nil {
		edges = append(edges, job.EdgeMessages)
	}
	if m.logs != nil {
		edges = append(edges, job.EdgeLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeTarget:
		if id := m.target; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, job.EdgeMessages)
	}
	if m.removedlogs != nil {
		edges = append(edges, job.EdgeLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtarget {
		edges = append(edges, job.EdgeTarget)
	}
	if m.clearedmessages {
		edges = append(edges, job.EdgeMessages)
	}
	if m.clearedlogs {
		edges = append(edges, job.EdgeLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeTarget:
		return m.clearedtarget
	case job.EdgeMessages:
		return m.clearedmessages
	case job.EdgeLogs:
		return m.clearedlogs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeTarget:
		m.ClearTarget()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeTarget:
		m.ResetTarget()
		return nil
	case job.EdgeMessages:
		m.ResetMessages()
		return nil
	case job.EdgeLogs:
		m.ResetLogs()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobLogMutation represents an operation that mutates the JobLog nodes in the graph.
type JobLogMutation struct {
	config
	op              Op
	typ             string
	id              *string
	timestamp       *time.Time
	log_type        *joblog.LogType
	content         *map[string]interface{}
	content_trimmed *map[string]interface{}
	clearedFields   map[string]struct{}
	job             *string
	clearedjob      bool
	done            bool
	oldValue        func(context.Context) (*JobLog, error)
	predicates      []predicate.JobLog
}

var _ ent.Mutation = (*JobLogMutation)(nil)

// joblogOption allows management of the mutation configuration using functional options.
type joblogOption func(*JobLogMutation)

// newJobLogMutation creates new mutation for the JobLog entity.
func newJobLogMutation(c config, op Op, opts ...joblogOption) *JobLogMutation {
	m := &JobLogMutation{
		config:        c,
		op:            op,
		typ:           TypeJobLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobLogID sets the ID field of the mutation.
func withJobLogID(id string) joblogOption {
	return func(m *JobLogMutation) {
		var (
			err   error
			once  sync.Once
			value *JobLog
		)
		m.oldValue = func(ctx context.Context) (*JobLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobLog sets the old JobLog of the mutation.
func withJobLog(node *JobLog) joblogOption {
	return func(m *JobLogMutation) {
		m.oldValue = func(context.Context) (*JobLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobLog entities.
func (m *JobLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobLogMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobLogMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobLogMutation) ResetJobID() {
	m.job = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *JobLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *JobLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *JobLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLogType sets the "log_type" field.
func (m *JobLogMutation) SetLogType(jt joblog.LogType) {
	m.log_type = &jt
}

// LogType returns the value of the "log_type" field in the mutation.
func (m *JobLogMutation) LogType() (r joblog.LogType, exists bool) {
	v := m.log_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLogType returns the old "log_type" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldLogType(ctx context.Context) (v joblog.LogType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogType: %w", err)
	}
	return oldValue.LogType, nil
}

// ResetLogType resets all changes to the "log_type" field.
func (m *JobLogMutation) ResetLogType() {
	m.log_type = nil
}

// SetContent sets the "content" field.
func (m *JobLogMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *JobLogMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *JobLogMutation) ResetContent() {
	m.content = nil
}

// SetContentTrimmed sets the "content_trimmed" field.
func (m *JobLogMutation) SetContentTrimmed(value map[string]interface{}) {
	m.content_trimmed = &value
}

// ContentTrimmed returns the value of the "content_trimmed" field in the mutation.
func (m *JobLogMutation) ContentTrimmed() (r map[string]interface{}, exists bool) {
	v := m.content_trimmed
	if v == nil {
		return
	}
	return *v, true
}

// OldContentTrimmed returns the old "content_trimmed" field's value of the JobLog entity.
// If the JobLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLogMutation) OldContentTrimmed(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentTrimmed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentTrimmed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentTrimmed: %w", err)
	}
	return oldValue.ContentTrimmed, nil
}

// ResetContentTrimmed resets all changes to the "content_trimmed" field.
func (m *JobLogMutation) ResetContentTrimmed() {
	m.content_trimmed = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobLogMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[joblog.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobLogMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobLogMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobLogMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobLogMutation builder.
func (m *JobLogMutation) Where(ps ...predicate.JobLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobLog).
func (m *JobLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, joblog.FieldJobID)
	}
	if m.timestamp != nil {
		fields = append(fields, joblog.FieldTimestamp)
	}
	if m.log_type != nil {
		fields = append(fields, joblog.FieldLogType)
	}
	if m.content != nil {
		fields = append(fields, joblog.FieldContent)
	}
	if m.content_trimmed != nil {
		fields = append(fields, joblog.FieldContentTrimmed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case joblog.FieldJobID:
		return m.JobID()
	case joblog.FieldTimestamp:
		return m.Timestamp()
	case joblog.FieldLogType:
		return m.LogType()
	case joblog.FieldContent:
		return m.Content()
	case joblog.FieldContentTrimmed:
		return m.ContentTrimmed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case joblog.FieldJobID:
		return m.OldJobID(ctx)
	case joblog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case joblog.FieldLogType:
		return m.OldLogType(ctx)
	case joblog.FieldContent:
		return m.OldContent(ctx)
	case joblog.FieldContentTrimmed:
		return m.OldContentTrimmed(ctx)
	}
	return nil, fmt.Errorf("unknown JobLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case joblog.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case joblog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case joblog.FieldLogType:
		v, ok := value.(joblog.LogType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogType(v)
		return nil
	case joblog.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case joblog.FieldContentTrimmed:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentTrimmed(v)
		return nil
	}
	return fmt.Errorf("unknown JobLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobLogMutation) ResetField(name string) error {
	switch name {
	case joblog.FieldJobID:
		m.ResetJobID()
		return nil
	case joblog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case joblog.FieldLogType:
		m.ResetLogType()
		return nil
	case joblog.FieldContent:
		m.ResetContent()
		return nil
	case joblog.FieldContentTrimmed:
		m.ResetContentTrimmed()
		return nil
	}
	return fmt.Errorf("unknown JobLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, joblog.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case joblog.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, joblog.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobLogMutation) EdgeCleared(name string) bool {
	switch name {
	case joblog.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobLogMutation) ClearEdge(name string) error {
	switch name {
	case joblog.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobLogMutation) ResetEdge(name string) error {
	switch name {
	case joblog.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobLog edge %s", name)
}

// JobMessageMutation represents an operation that mutates the JobMessage nodes in the graph.
type JobMessageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	sequence              *int
	addsequence           *int
	role                  *jobmessage.Role
	message_content       *[]models.ContentBlock
	appendmessage_content []models.ContentBlock
	created_at            *time.Time
	clearedFields         map[string]struct{}
	job                   *string
	clearedjob            bool
	done                  bool
	oldValue              func(context.Context) (*JobMessage, error)
	predicates            []predicate.JobMessage
}

var _ ent.Mutation = (*JobMessageMutation)(nil)

// jobmessageOption allows management of the mutation configuration using functional options.
type jobmessageOption func(*JobMessageMutation)

// newJobMessageMutation creates new mutation for the JobMessage entity.
func newJobMessageMutation(c config, op Op, opts ...jobmessageOption) *JobMessageMutation {
	m := &JobMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeJobMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobMessageID sets the ID field of the mutation.
func withJobMessageID(id string) jobmessageOption {
	return func(m *JobMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *JobMessage
		)
		m.oldValue = func(ctx context.Context) (*JobMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobMessage sets the old JobMessage of the mutation.
func withJobMessage(node *JobMessage) jobmessageOption {
	return func(m *JobMessageMutation) {
		m.oldValue = func(context.Context) (*JobMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobMessage entities.
func (m *JobMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobMessageMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobMessageMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobMessage entity.
// If the JobMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMessageMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobMessageMutation) ResetJobID() {
	m.job = nil
}

// SetSequence sets the "sequence" field.
func (m *JobMessageMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *JobMessageMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the JobMessage entity.
// If the JobMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMessageMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *JobMessageMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *JobMessageMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *JobMessageMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetRole sets the "role" field.
func (m *JobMessageMutation) SetRole(j jobmessage.Role) {
	m.role = &j
}

// Role returns the value of the "role" field in the mutation.
func (m *JobMessageMutation) Role() (r jobmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the JobMessage entity.
// If the JobMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMessageMutation) OldRole(ctx context.Context) (v jobmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *JobMessageMutation) ResetRole() {
	m.role = nil
}

// SetMessageContent sets the "message_content" field.
func (m *JobMessageMutation) SetMessageContent(mb []models.ContentBlock) {
	m.message_content = &mb
	m.appendmessage_content = nil
}

// MessageContent returns the value of the "message_content" field in the mutation.
func (m *JobMessageMutation) MessageContent() (r []models.ContentBlock, exists bool) {
	v := m.message_content
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageContent returns the old "message_content" field's value of the JobMessage entity.
// If the JobMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMessageMutation) OldMessageContent(ctx context.Context) (v []models.ContentBlock, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageContent: %w", err)
	}
	return oldValue.MessageContent, nil
}

// AppendMessageContent adds mb to the "message_content" field.
func (m *JobMessageMutation) AppendMessageContent(mb []models.ContentBlock) {
	m.appendmessage_content = append(m.appendmessage_content, mb...)
}

// AppendedMessageContent returns the list of values that were appended to the "message_content" field in this mutation.
func (m *JobMessageMutation) AppendedMessageContent() ([]models.ContentBlock, bool) {
	if len(m.appendmessage_content) == 0 {
		return nil, false
	}
	return m.appendmessage_content, true
}

// ResetMessageContent resets all changes to the "message_content" field.
func (m *JobMessageMutation) ResetMessageContent() {
	m.message_content = nil
	m.appendmessage_content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobMessage entity.
// If the JobMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobMessageMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobmessage.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobMessageMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobMessageMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobMessageMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobMessageMutation builder.
func (m *JobMessageMutation) Where(ps ...predicate.JobMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobMessage).
func (m *JobMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, jobmessage.FieldJobID)
	}
	if m.sequence != nil {
		fields = append(fields, jobmessage.FieldSequence)
	}
	if m.role != nil {
		fields = append(fields, jobmessage.FieldRole)
	}
	if m.message_content != nil {
		fields = append(fields, jobmessage.FieldMessageContent)
	}
	if m.created_at != nil {
		fields = append(fields, jobmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobmessage.FieldJobID:
		return m.JobID()
	case jobmessage.FieldSequence:
		return m.Sequence()
	case jobmessage.FieldRole:
		return m.Role()
	case jobmessage.FieldMessageContent:
		return m.MessageContent()
	case jobmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobmessage.FieldJobID:
		return m.OldJobID(ctx)
	case jobmessage.FieldSequence:
		return m.OldSequence(ctx)
	case jobmessage.FieldRole:
		return m.OldRole(ctx)
	case jobmessage.FieldMessageContent:
		return m.OldMessageContent(ctx)
	case jobmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobmessage.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case jobmessage.FieldRole:
		v, ok := value.(jobmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case jobmessage.FieldMessageContent:
		v, ok := value.([]models.ContentBlock)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageContent(v)
		return nil
	case jobmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, jobmessage.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobmessage.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown JobMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMessageMutation) ResetField(name string) error {
	switch name {
	case jobmessage.FieldJobID:
		m.ResetJobID()
		return nil
	case jobmessage.FieldSequence:
		m.ResetSequence()
		return nil
	case jobmessage.FieldRole:
		m.ResetRole()
		return nil
	case jobmessage.FieldMessageContent:
		m.ResetMessageContent()
		return nil
	case jobmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobmessage.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobmessage.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobmessage.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case jobmessage.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMessageMutation) ClearEdge(name string) error {
	switch name {
	case jobmessage.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMessageMutation) ResetEdge(name string) error {
	switch name {
	case jobmessage.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobMessage edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	state          *session.State
	status         *string
	container_id   *string
	container_ip   *string
	is_archived    *bool
	archive_reason *session.ArchiveReason
	last_job_time  *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	target         *string
	clearedtarget  bool
	done           bool
	oldValue       func(context.Context) (*Session, error)
	predicates     []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTargetID sets the "target_id" field.
func (m *SessionMutation) SetTargetID(s string) {
	m.target = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *SessionMutation) TargetID() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *SessionMutation) ResetTargetID() {
	m.target = nil
}

// SetState sets the "state" field.
func (m *SessionMutation) SetState(s session.State) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *SessionMutation) State() (r session.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldState(ctx context.Context) (v session.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *SessionMutation) ResetState() {
	m.state = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *SessionMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[session.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *SessionMutation) StatusCleared() bool {
	_, ok := m.clearedFields[session.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, session.FieldStatus)
}

// SetContainerID sets the "container_id" field.
func (m *SessionMutation) SetContainerID(s string) {
	m.container_id = &s
}

// ContainerID returns the value of the "container_id" field in the mutation.
func (m *SessionMutation) ContainerID() (r string, exists bool) {
	v := m.container_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContainerID returns the old "container_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldContainerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainerID: %w", err)
	}
	return oldValue.ContainerID, nil
}

// ClearContainerID clears the value of the "container_id" field.
func (m *SessionMutation) ClearContainerID() {
	m.container_id = nil
	m.clearedFields[session.FieldContainerID] = struct{}{}
}

// ContainerIDCleared returns if the "container_id" field was cleared in this mutation.
func (m *SessionMutation) ContainerIDCleared() bool {
	_, ok := m.clearedFields[session.FieldContainerID]
	return ok
}

// ResetContainerID resets all changes to the "container_id" field.
func (m *SessionMutation) ResetContainerID() {
	m.container_id = nil
	delete(m.clearedFields, session.FieldContainerID)
}

// SetContainerIP sets the "container_ip" field.
func (m *SessionMutation) SetContainerIP(s string) {
	m.container_ip = &s
}

// ContainerIP returns the value of the "container_ip" field in the mutation.
func (m *SessionMutation) ContainerIP() (r string, exists bool) {
	v := m.container_ip
	if v == nil {
		return
	}
	return *v, true
}

// OldContainerIP returns the old "container_ip" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldContainerIP(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainerIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainerIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainerIP: %w", err)
	}
	return oldValue.ContainerIP, nil
}

// ClearContainerIP clears the value of the "container_ip" field.
func (m *SessionMutation) ClearContainerIP() {
	m.container_ip = nil
	m.clearedFields[session.FieldContainerIP] = struct{}{}
}

// ContainerIPCleared returns if the "container_ip" field was cleared in this mutation.
func (m *SessionMutation) ContainerIPCleared() bool {
	_, ok := m.clearedFields[session.FieldContainerIP]
	return ok
}

// ResetContainerIP resets all changes to the "container_ip" field.
func (m *SessionMutation) ResetContainerIP() {
	m.container_ip = nil
	delete(m.clearedFields, session.FieldContainerIP)
}

// SetIsArchived sets the "is_archived" field.
func (m *SessionMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *SessionMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *SessionMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchiveReason sets the "archive_reason" field.
func (m *SessionMutation) SetArchiveReason(sr session.ArchiveReason) {
	m.archive_reason = &sr
}

// ArchiveReason returns the value of the "archive_reason" field in the mutation.
func (m *SessionMutation) ArchiveReason() (r session.ArchiveReason, exists bool) {
	v := m.archive_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldArchiveReason returns the old "archive_reason" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldArchiveReason(ctx context.Context) (v *session.ArchiveReason, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchiveReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchiveReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchiveReason: %w", err)
	}
	return oldValue.ArchiveReason, nil
}

// ClearArchiveReason clears the value of the "archive_reason" field.
func (m *SessionMutation) ClearArchiveReason() {
	m.archive_reason = nil
	m.clearedFields[session.FieldArchiveReason] = struct{}{}
}

// ArchiveReasonCleared returns if the "archive_reason" field was cleared in this mutation.
func (m *SessionMutation) ArchiveReasonCleared() bool {
	_, ok := m.clearedFields[session.FieldArchiveReason]
	return ok
}

// ResetArchiveReason resets all changes to the "archive_reason" field.
func (m *SessionMutation) ResetArchiveReason() {
	m.archive_reason = nil
	delete(m.clearedFields, session.FieldArchiveReason)
}

// SetLastJobTime sets the "last_job_time" field.
func (m *SessionMutation) SetLastJobTime(t time.Time) {
	m.last_job_time = &t
}

// LastJobTime returns the value of the "last_job_time" field in the mutation.
func (m *SessionMutation) LastJobTime() (r time.Time, exists bool) {
	v := m.last_job_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastJobTime returns the old "last_job_time" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastJobTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastJobTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastJobTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastJobTime: %w", err)
	}
	return oldValue.LastJobTime, nil
}

// ClearLastJobTime clears the value of the "last_job_time" field.
func (m *SessionMutation) ClearLastJobTime() {
	m.last_job_time = nil
	m.clearedFields[session.FieldLastJobTime] = struct{}{}
}

// LastJobTimeCleared returns if the "last_job_time" field was cleared in this mutation.
func (m *SessionMutation) LastJobTimeCleared() bool {
	_, ok := m.clearedFields[session.FieldLastJobTime]
	return ok
}

// ResetLastJobTime resets all changes to the "last_job_time" field.
func (m *SessionMutation) ResetLastJobTime() {
	m.last_job_time = nil
	delete(m.clearedFields, session.FieldLastJobTime)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTarget clears the "target" edge to the Target entity.
func (m *SessionMutation) ClearTarget() {
	m.clearedtarget = true
	m.clearedFields[session.FieldTargetID] = struct{}{}
}

// TargetCleared reports if the "target" edge to the Target entity was cleared.
func (m *SessionMutation) TargetCleared() bool {
	return m.clearedtarget
}

// TargetIDs returns the "target" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TargetID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) TargetIDs() (ids []string) {
	if id := m.target; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTarget resets all changes to the "target" edge.
func (m *SessionMutation) ResetTarget() {
	m.target = nil
	m.clearedtarget = false
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.target != nil {
		fields = append(fields, session.FieldTargetID)
	}
	if m.state != nil {
		fields = append(fields, session.FieldState)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.container_id != nil {
		fields = append(fields, session.FieldContainerID)
	}
	if m.container_ip != nil {
		fields = append(fields, session.FieldContainerIP)
	}
	if m.is_archived != nil {
		fields = append(fields, session.FieldIsArchived)
	}
	if m.archive_reason != nil {
		fields = append(fields, session.FieldArchiveReason)
	}
	if m.last_job_time != nil {
		fields = append(fields, session.FieldLastJobTime)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldTargetID:
		return m.TargetID()
	case session.FieldState:
		return m.State()
	case session.FieldStatus:
		return m.Status()
	case session.FieldContainerID:
		return m.ContainerID()
	case session.FieldContainerIP:
		return m.ContainerIP()
	case session.FieldIsArchived:
		return m.IsArchived()
	case session.FieldArchiveReason:
		return m.ArchiveReason()
	case session.FieldLastJobTime:
		return m.LastJobTime()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldTargetID:
		return m.OldTargetID(ctx)
	case session.FieldState:
		return m.OldState(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldContainerID:
		return m.OldContainerID(ctx)
	case session.FieldContainerIP:
		return m.OldContainerIP(ctx)
	case session.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case session.FieldArchiveReason:
		return m.OldArchiveReason(ctx)
	case session.FieldLastJobTime:
		return m.OldLastJobTime(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case session.FieldState:
		v, ok := value.(session.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldContainerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainerID(v)
		return nil
	case session.FieldContainerIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainerIP(v)
		return nil
	case session.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case session.FieldArchiveReason:
		v, ok := value.(session.ArchiveReason)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchiveReason(v)
		return nil
	case session.FieldLastJobTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastJobTime(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldStatus) {
		fields = append(fields, session.FieldStatus)
	}
	if m.FieldCleared(session.FieldContainerID) {
		fields = append(fields, session.FieldContainerID)
	}
	if m.FieldCleared(session.FieldContainerIP) {
		fields = append(fields, session.FieldContainerIP)
	}
	if m.FieldCleared(session.FieldArchiveReason) {
		fields = append(fields, session.FieldArchiveReason)
	}
	if m.FieldCleared(session.FieldLastJobTime) {
		fields = append(fields, session.FieldLastJobTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldStatus:
		m.ClearStatus()
		return nil
	case session.FieldContainerID:
		m.ClearContainerID()
		return nil
	case session.FieldContainerIP:
		m.ClearContainerIP()
		return nil
	case session.FieldArchiveReason:
		m.ClearArchiveReason()
		return nil
	case session.FieldLastJobTime:
		m.ClearLastJobTime()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldTargetID:
		m.ResetTargetID()
		return nil
	case session.FieldState:
		m.ResetState()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldContainerID:
		m.ResetContainerID()
		return nil
	case session.FieldContainerIP:
		m.ResetContainerIP()
		return nil
	case session.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case session.FieldArchiveReason:
		m.ResetArchiveReason()
		return nil
	case session.FieldLastJobTime:
		m.ResetLastJobTime()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.target != nil {
		edges = append(edges, session.EdgeTarget)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeTarget:
		if id := m.target; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtarget {
		edges = append(edges, session.EdgeTarget)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeTarget:
		return m.clearedtarget
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeTarget:
		m.ClearTarget()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeTarget:
		m.ResetTarget()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// TargetMutation represents an operation that mutates the Target nodes in the graph.
type TargetMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	_type           *string
	host            *string
	port            *int
	addport         *int
	username        *string
	password        *string
	vpn_config      *string
	vpn_username    *string
	vpn_password    *string
	width           *int
	addwidth        *int
	height          *int
	addheight       *int
	rdp_params      *string
	is_archived     *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	sessions        map[string]struct{}
	removedsessions map[string]struct{}
	clearedsessions bool
	jobs            map[string]struct{}
	removedjobs     map[string]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Target, error)
	predicates      []predicate.Target
}

var _ ent.Mutation = (*TargetMutation)(nil)

// targetOption allows management of the mutation configuration using functional options.
type targetOption func(*TargetMutation)

// newTargetMutation creates new mutation for the Target entity.
func newTargetMutation(c config, op Op, opts ...targetOption) *TargetMutation {
	m := &TargetMutation{
		config:        c,
		op:            op,
		typ:           TypeTarget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTargetID sets the ID field of the mutation.
func withTargetID(id string) targetOption {
	return func(m *TargetMutation) {
		var (
			err   error
			once  sync.Once
			value *Target
		)
		m.oldValue = func(ctx context.Context) (*Target, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Target.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTarget sets the old Target of the mutation.
func withTarget(node *Target) targetOption {
	return func(m *TargetMutation) {
		m.oldValue = func(context.Context) (*Target, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TargetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TargetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Target entities.
func (m *TargetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TargetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TargetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Target.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TargetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TargetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TargetMutation) ResetName() {
	m.name = nil
}

// SetType sets the "type" field.
func (m *TargetMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *TargetMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *TargetMutation) ResetType() {
	m._type = nil
}

// SetHost sets the "host" field.
func (m *TargetMutation) SetHost(s string) {
	m.host = &s
}

// Host returns the value of the "host" field in the mutation.
func (m *TargetMutation) Host() (r string, exists bool) {
	v := m.host
	if v == nil {
		return
	}
	return *v, true
}

// OldHost returns the old "host" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldHost(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHost: %w", err)
	}
	return oldValue.Host, nil
}

// ResetHost resets all changes to the "host" field.
func (m *TargetMutation) ResetHost() {
	m.host = nil
}

// SetPort sets the "port" field.
func (m *TargetMutation) SetPort(i int) {
	m.port = &i
	m.addport = nil
}

// Port returns the value of the "port" field in the mutation.
func (m *TargetMutation) Port() (r int, exists bool) {
	v := m.port
	if v == nil {
		return
	}
	return *v, true
}

// OldPort returns the old "port" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldPort(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPort: %w", err)
	}
	return oldValue.Port, nil
}

// AddPort adds i to the "port" field.
func (m *TargetMutation) AddPort(i int) {
	if m.addport != nil {
		*m.addport += i
	} else {
		m.addport = &i
	}
}

// AddedPort returns the value that was added to the "port" field in this mutation.
func (m *TargetMutation) AddedPort() (r int, exists bool) {
	v := m.addport
	if v == nil {
		return
	}
	return *v, true
}

// ClearPort clears the value of the "port" field.
func (m *TargetMutation) ClearPort() {
	m.port = nil
	m.addport = nil
	m.clearedFields[target.FieldPort] = struct{}{}
}

// PortCleared returns if the "port" field was cleared in this mutation.
func (m *TargetMutation) PortCleared() bool {
	_, ok := m.clearedFields[target.FieldPort]
	return ok
}

// ResetPort resets all changes to the "port" field.
func (m *TargetMutation) ResetPort() {
	m.port = nil
	m.addport = nil
	delete(m.clearedFields, target.FieldPort)
}

// SetUsername sets the "username" field.
func (m *TargetMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *TargetMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldUsername(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *TargetMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[target.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *TargetMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[target.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *TargetMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, target.FieldUsername)
}

// SetPassword sets the "password" field.
func (m *TargetMutation) SetPassword(s string) {
	m.password = &s
}

// Password returns the value of the "password" field in the mutation.
func (m *TargetMutation) Password() (r string, exists bool) {
	v := m.password
	if v == nil {
		return
	}
	return *v, true
}

// OldPassword returns the old "password" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldPassword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassword: %w", err)
	}
	return oldValue.Password, nil
}

// ResetPassword resets all changes to the "password" field.
func (m *TargetMutation) ResetPassword() {
	m.password = nil
}

// SetVpnConfig sets the "vpn_config" field.
func (m *TargetMutation) SetVpnConfig(s string) {
	m.vpn_config = &s
}

// VpnConfig returns the value of the "vpn_config" field in the mutation.
func (m *TargetMutation) VpnConfig() (r string, exists bool) {
	v := m.vpn_config
	if v == nil {
		return
	}
	return *v, true
}

// OldVpnConfig returns the old "vpn_config" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldVpnConfig(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVpnConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVpnConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVpnConfig: %w", err)
	}
	return oldValue.VpnConfig, nil
}

// ClearVpnConfig clears the value of the "vpn_config" field.
func (m *TargetMutation) ClearVpnConfig() {
	m.vpn_config = nil
	m.clearedFields[target.FieldVpnConfig] = struct{}{}
}

// VpnConfigCleared returns if the "vpn_config" field was cleared in this mutation.
func (m *TargetMutation) VpnConfigCleared() bool {
	_, ok := m.clearedFields[target.FieldVpnConfig]
	return ok
}

// ResetVpnConfig resets all changes to the "vpn_config" field.
func (m *TargetMutation) ResetVpnConfig() {
	m.vpn_config = nil
	delete(m.clearedFields, target.FieldVpnConfig)
}

// SetVpnUsername sets the "vpn_username" field.
func (m *TargetMutation) SetVpnUsername(s string) {
	m.vpn_username = &s
}

// VpnUsername returns the value of the "vpn_username" field in the mutation.
func (m *TargetMutation) VpnUsername() (r string, exists bool) {
	v := m.vpn_username
	if v == nil {
		return
	}
	return *v, true
}

// OldVpnUsername returns the old "vpn_username" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldVpnUsername(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVpnUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVpnUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVpnUsername: %w", err)
	}
	return oldValue.VpnUsername, nil
}

// ClearVpnUsername clears the value of the "vpn_username" field.
func (m *TargetMutation) ClearVpnUsername() {
	m.vpn_username = nil
	m.clearedFields[target.FieldVpnUsername] = struct{}{}
}

// VpnUsernameCleared returns if the "vpn_username" field was cleared in this mutation.
func (m *TargetMutation) VpnUsernameCleared() bool {
	_, ok := m.clearedFields[target.FieldVpnUsername]
	return ok
}

// ResetVpnUsername resets all changes to the "vpn_username" field.
func (m *TargetMutation) ResetVpnUsername() {
	m.vpn_username = nil
	delete(m.clearedFields, target.FieldVpnUsername)
}

// SetVpnPassword sets the "vpn_password" field.
func (m *TargetMutation) SetVpnPassword(s string) {
	m.vpn_password = &s
}

// VpnPassword returns the value of the "vpn_password" field in the mutation.
func (m *TargetMutation) VpnPassword() (r string, exists bool) {
	v := m.vpn_password
	if v == nil {
		return
	}
	return *v, true
}

// OldVpnPassword returns the old "vpn_password" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldVpnPassword(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVpnPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVpnPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVpnPassword: %w", err)
	}
	return oldValue.VpnPassword, nil
}

// ClearVpnPassword clears the value of the "vpn_password" field.
func (m *TargetMutation) ClearVpnPassword() {
	m.vpn_password = nil
	m.clearedFields[target.FieldVpnPassword] = struct{}{}
}

// VpnPasswordCleared returns if the "vpn_password" field was cleared in this mutation.
func (m *TargetMutation) VpnPasswordCleared() bool {
	_, ok := m.clearedFields[target.FieldVpnPassword]
	return ok
}

// ResetVpnPassword resets all changes to the "vpn_password" field.
func (m *TargetMutation) ResetVpnPassword() {
	m.vpn_password = nil
	delete(m.clearedFields, target.FieldVpnPassword)
}

// SetWidth sets the "width" field.
func (m *TargetMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *TargetMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *TargetMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *TargetMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ResetWidth resets all changes to the "width" field.
func (m *TargetMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
}

// SetHeight sets the "height" field.
func (m *TargetMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *TargetMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *TargetMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *TargetMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeight resets all changes to the "height" field.
func (m *TargetMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
}

// SetRdpParams sets the "rdp_params" field.
func (m *TargetMutation) SetRdpParams(s string) {
	m.rdp_params = &s
}

// RdpParams returns the value of the "rdp_params" field in the mutation.
func (m *TargetMutation) RdpParams() (r string, exists bool) {
	v := m.rdp_params
	if v == nil {
		return
	}
	return *v, true
}

// OldRdpParams returns the old "rdp_params" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldRdpParams(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRdpParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRdpParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRdpParams: %w", err)
	}
	return oldValue.RdpParams, nil
}

// ClearRdpParams clears the value of the "rdp_params" field.
func (m *TargetMutation) ClearRdpParams() {
	m.rdp_params = nil
	m.clearedFields[target.FieldRdpParams] = struct{}{}
}

// RdpParamsCleared returns if the "rdp_params" field was cleared in this mutation.
func (m *TargetMutation) RdpParamsCleared() bool {
	_, ok := m.clearedFields[target.FieldRdpParams]
	return ok
}

// ResetRdpParams resets all changes to the "rdp_params" field.
func (m *TargetMutation) ResetRdpParams() {
	m.rdp_params = nil
	delete(m.clearedFields, target.FieldRdpParams)
}

// SetIsArchived sets the "is_archived" field.
func (m *TargetMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *TargetMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *TargetMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TargetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TargetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Target entity.
// If the Target object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TargetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *TargetMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *TargetMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *TargetMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *TargetMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *TargetMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *TargetMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *TargetMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *TargetMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *TargetMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *TargetMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *TargetMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *TargetMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *TargetMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *TargetMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the TargetMutation builder.
func (m *TargetMutation) Where(ps ...predicate.Target) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TargetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TargetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Target, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TargetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TargetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Target).
func (m *TargetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TargetMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, target.FieldName)
	}
	if m._type != nil {
		fields = append(fields, target.FieldType)
	}
	if m.host != nil {
		fields = append(fields, target.FieldHost)
	}
	if m.port != nil {
		fields = append(fields, target.FieldPort)
	}
	if m.username != nil {
		fields = append(fields, target.FieldUsername)
	}
	if m.password != nil {
		fields = append(fields, target.FieldPassword)
	}
	if m.vpn_config != nil {
		fields = append(fields, target.FieldVpnConfig)
	}
	if m.vpn_username != nil {
		fields = append(fields, target.FieldVpnUsername)
	}
	if m.vpn_password != nil {
		fields = append(fields, target.FieldVpnPassword)
	}
	if m.width != nil {
		fields = append(fields, target.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, target.FieldHeight)
	}
	if m.rdp_params != nil {
		fields = append(fields, target.FieldRdpParams)
	}
	if m.is_archived != nil {
		fields = append(fields, target.FieldIsArchived)
	}
	if m.created_at != nil {
		fields = append(fields, target.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TargetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case target.FieldName:
		return m.Name()
	case target.FieldType:
		return m.GetType()
	case target.FieldHost:
		return m.Host()
	case target.FieldPort:
		return m.Port()
	case target.FieldUsername:
		return m.Username()
	case target.FieldPassword:
		return m.Password()
	case target.FieldVpnConfig:
		return m.VpnConfig()
	case target.FieldVpnUsername:
		return m.VpnUsername()
	case target.FieldVpnPassword:
		return m.VpnPassword()
	case target.FieldWidth:
		return m.Width()
	case target.FieldHeight:
		return m.Height()
	case target.FieldRdpParams:
		return m.RdpParams()
	case target.FieldIsArchived:
		return m.IsArchived()
	case target.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TargetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case target.FieldName:
		return m.OldName(ctx)
	case target.FieldType:
		return m.OldType(ctx)
	case target.FieldHost:
		return m.OldHost(ctx)
	case target.FieldPort:
		return m.OldPort(ctx)
	case target.FieldUsername:
		return m.OldUsername(ctx)
	case target.FieldPassword:
		return m.OldPassword(ctx)
	case target.FieldVpnConfig:
		return m.OldVpnConfig(ctx)
	case target.FieldVpnUsername:
		return m.OldVpnUsername(ctx)
	case target.FieldVpnPassword:
		return m.OldVpnPassword(ctx)
	case target.FieldWidth:
		return m.OldWidth(ctx)
	case target.FieldHeight:
		return m.OldHeight(ctx)
	case target.FieldRdpParams:
		return m.OldRdpParams(ctx)
	case target.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case target.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Target field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TargetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case target.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case target.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case target.FieldHost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHost(v)
		return nil
	case target.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPort(v)
		return nil
	case target.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case target.FieldPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassword(v)
		return nil
	case target.FieldVpnConfig:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVpnConfig(v)
		return nil
	case target.FieldVpnUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVpnUsername(v)
		return nil
	case target.FieldVpnPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVpnPassword(v)
		return nil
	case target.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case target.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case target.FieldRdpParams:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRdpParams(v)
		return nil
	case target.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case target.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Target field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TargetMutation) AddedFields() []string {
	var fields []string
	if m.addport != nil {
		fields = append(fields, target.FieldPort)
	}
	if m.addwidth != nil {
		fields = append(fields, target.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, target.FieldHeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TargetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case target.FieldPort:
		return m.AddedPort()
	case target.FieldWidth:
		return m.AddedWidth()
	case target.FieldHeight:
		return m.AddedHeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TargetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case target.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPort(v)
		return nil
	case target.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case target.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	}
	return fmt.Errorf("unknown Target numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TargetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(target.FieldPort) {
		fields = append(fields, target.FieldPort)
	}
	if m.FieldCleared(target.FieldUsername) {
		fields = append(fields, target.FieldUsername)
	}
	if m.FieldCleared(target.FieldVpnConfig) {
		fields = append(fields, target.FieldVpnConfig)
	}
	if m.FieldCleared(target.FieldVpnUsername) {
		fields = append(fields, target.FieldVpnUsername)
	}
	if m.FieldCleared(target.FieldVpnPassword) {
		fields = append(fields, target.FieldVpnPassword)
	}
	if m.FieldCleared(target.FieldRdpParams) {
		fields = append(fields, target.FieldRdpParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TargetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TargetMutation) ClearField(name string) error {
	switch name {
	case target.FieldPort:
		m.ClearPort()
		return nil
	case target.FieldUsername:
		m.ClearUsername()
		return nil
	case target.FieldVpnConfig:
		m.ClearVpnConfig()
		return nil
	case target.FieldVpnUsername:
		m.ClearVpnUsername()
		return nil
	case target.FieldVpnPassword:
		m.ClearVpnPassword()
		return nil
	case target.FieldRdpParams:
		m.ClearRdpParams()
		return nil
	}
	return fmt.Errorf("unknown Target nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TargetMutation) ResetField(name string) error {
	switch name {
	case target.FieldName:
		m.ResetName()
		return nil
	case target.FieldType:
		m.ResetType()
		return nil
	case target.FieldHost:
		m.ResetHost()
		return nil
	case target.FieldPort:
		m.ResetPort()
		return nil
	case target.FieldUsername:
		m.ResetUsername()
		return nil
	case target.FieldPassword:
		m.ResetPassword()
		return nil
	case target.FieldVpnConfig:
		m.ResetVpnConfig()
		return nil
	case target.FieldVpnUsername:
		m.ResetVpnUsername()
		return nil
	case target.FieldVpnPassword:
		m.ResetVpnPassword()
		return nil
	case target.FieldWidth:
		m.ResetWidth()
		return nil
	case target.FieldHeight:
		m.ResetHeight()
		return nil
	case target.FieldRdpParams:
		m.ResetRdpParams()
		return nil
	case target.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case target.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Target field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TargetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sessions != nil {
		edges = append(edges, target.EdgeSessions)
	}
	if m.jobs != nil {
		edges = append(edges, target.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TargetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case target.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case target.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TargetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsessions != nil {
		edges = append(edges, target.EdgeSessions)
	}
	if m.removedjobs != nil {
		edges = append(edges, target.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TargetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case target.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case target.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TargetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsessions {
		edges = append(edges, target.EdgeSessions)
	}
	if m.clearedjobs {
		edges = append(edges, target.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TargetMutation) EdgeCleared(name string) bool {
	switch name {
	case target.EdgeSessions:
		return m.clearedsessions
	case target.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TargetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Target unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TargetMutation) ResetEdge(name string) error {
	switch name {
	case target.EdgeSessions:
		m.ResetSessions()
		return nil
	case target.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Target edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	host          *string
	schema        *string
	is_active     *bool
	clerk_user_id *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Tenant, error)
	predicates    []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetHost sets the "host" field.
func (m *TenantMutation) SetHost(s string) {
	m.host = &s
}

// Host returns the value of the "host" field in the mutation.
func (m *TenantMutation) Host() (r string, exists bool) {
	v := m.host
	if v == nil {
		return
	}
	return *v, true
}

// OldHost returns the old "host" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldHost(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHost: %w", err)
	}
	return oldValue.Host, nil
}

// ResetHost resets all changes to the "host" field.
func (m *TenantMutation) ResetHost() {
	m.host = nil
}

// SetSchema sets the "schema" field.
func (m *TenantMutation) SetSchema(s string) {
	m.schema = &s
}

// Schema returns the value of the "schema" field in the mutation.
func (m *TenantMutation) Schema() (r string, exists bool) {
	v := m.schema
	if v == nil {
		return
	}
	return *v, true
}

// OldSchema returns the old "schema" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldSchema(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchema: %w", err)
	}
	return oldValue.Schema, nil
}

// ResetSchema resets all changes to the "schema" field.
func (m *TenantMutation) ResetSchema() {
	m.schema = nil
}

// SetIsActive sets the "is_active" field.
func (m *TenantMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TenantMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *TenantMutation) ResetIsActive() {
	m.is_active = nil
}

// SetClerkUserID sets the "clerk_user_id" field.
func (m *TenantMutation) SetClerkUserID(s string) {
	m.clerk_user_id = &s
}

// ClerkUserID returns the value of the "clerk_user_id" field in the mutation.
func (m *TenantMutation) ClerkUserID() (r string, exists bool) {
	v := m.clerk_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClerkUserID returns the old "clerk_user_id" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldClerkUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClerkUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClerkUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClerkUserID: %w", err)
	}
	return oldValue.ClerkUserID, nil
}

// ClearClerkUserID clears the value of the "clerk_user_id" field.
func (m *TenantMutation) ClearClerkUserID() {
	m.clerk_user_id = nil
	m.clearedFields[tenant.FieldClerkUserID] = struct{}{}
}

// ClerkUserIDCleared returns if the "clerk_user_id" field was cleared in this mutation.
func (m *TenantMutation) ClerkUserIDCleared() bool {
	_, ok := m.clearedFields[tenant.FieldClerkUserID]
	return ok
}

// ResetClerkUserID resets all changes to the "clerk_user_id" field.
func (m *TenantMutation) ResetClerkUserID() {
	m.clerk_user_id = nil
	delete(m.clearedFields, tenant.FieldClerkUserID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.host != nil {
		fields = append(fields, tenant.FieldHost)
	}
	if m.schema != nil {
		fields = append(fields, tenant.FieldSchema)
	}
	if m.is_active != nil {
		fields = append(fields, tenant.FieldIsActive)
	}
	if m.clerk_user_id != nil {
		fields = append(fields, tenant.FieldClerkUserID)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldHost:
		return m.Host()
	case tenant.FieldSchema:
		return m.Schema()
	case tenant.FieldIsActive:
		return m.IsActive()
	case tenant.FieldClerkUserID:
		return m.ClerkUserID()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldHost:
		return m.OldHost(ctx)
	case tenant.FieldSchema:
		return m.OldSchema(ctx)
	case tenant.FieldIsActive:
		return m.OldIsActive(ctx)
	case tenant.FieldClerkUserID:
		return m.OldClerkUserID(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldHost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHost(v)
		return nil
	case tenant.FieldSchema:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchema(v)
		return nil
	case tenant.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case tenant.FieldClerkUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClerkUserID(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenant.FieldClerkUserID) {
		fields = append(fields, tenant.FieldClerkUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	switch name {
	case tenant.FieldClerkUserID:
		m.ClearClerkUserID()
		return nil
	}
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldHost:
		m.ResetHost()
		return nil
	case tenant.FieldSchema:
		m.ResetSchema()
		return nil
	case tenant.FieldIsActive:
		m.ResetIsActive()
		return nil
	case tenant.FieldClerkUserID:
		m.ResetClerkUserID()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Tenant edge %s", name)
}

// TenantSettingMutation represents an operation that mutates the TenantSetting nodes in the graph.
type TenantSettingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TenantSetting, error)
	predicates    []predicate.TenantSetting
}

var _ ent.Mutation = (*TenantSettingMutation)(nil)

// tenantsettingOption allows management of the mutation configuration using functional options.
type tenantsettingOption func(*TenantSettingMutation)

// newTenantSettingMutation creates new mutation for the TenantSetting entity.
func newTenantSettingMutation(c config, op Op, opts ...tenantsettingOption) *TenantSettingMutation {
	m := &TenantSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeTenantSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantSettingID sets the ID field of the mutation.
func withTenantSettingID(id string) tenantsettingOption {
	return func(m *TenantSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *TenantSetting
		)
		m.oldValue = func(ctx context.Context) (*TenantSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TenantSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenantSetting sets the old TenantSetting of the mutation.
func withTenantSetting(node *TenantSetting) tenantsettingOption {
	return func(m *TenantSettingMutation) {
		m.oldValue = func(context.Context) (*TenantSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TenantSetting entities.
func (m *TenantSettingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantSettingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantSettingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TenantSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValue sets the "value" field.
func (m *TenantSettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *TenantSettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the TenantSetting entity.
// If the TenantSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *TenantSettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TenantSetting entity.
// If the TenantSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TenantSettingMutation builder.
func (m *TenantSettingMutation) Where(ps ...predicate.TenantSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TenantSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TenantSetting).
func (m *TenantSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantSettingMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.value != nil {
		fields = append(fields, tenantsetting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, tenantsetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenantsetting.FieldValue:
		return m.Value()
	case tenantsetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenantsetting.FieldValue:
		return m.OldValue(ctx)
	case tenantsetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TenantSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenantsetting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case tenantsetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TenantSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TenantSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TenantSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantSettingMutation) ResetField(name string) error {
	switch name {
	case tenantsetting.FieldValue:
		m.ResetValue()
		return nil
	case tenantsetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TenantSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TenantSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TenantSetting edge %s", name)
}
