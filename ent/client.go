// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/legacyuse/orchestrator/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/legacyuse/orchestrator/ent/apidefinition"
	"github.com/legacyuse/orchestrator/ent/apidefinitionversion"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/joblog"
	"github.com/legacyuse/orchestrator/ent/jobmessage"
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/ent/target"
	"github.com/legacyuse/orchestrator/ent/tenant"
	"github.com/legacyuse/orchestrator/ent/tenantsetting"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// APIDefinition is the client for interacting with the APIDefinition builders.
	APIDefinition *APIDefinitionClient
	// APIDefinitionVersion is the client for interacting with the APIDefinitionVersion builders.
	APIDefinitionVersion *APIDefinitionVersionClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// JobLog is the client for interacting with the JobLog builders.
	JobLog *JobLogClient
	// JobMessage is the client for interacting with the JobMessage builders.
	JobMessage *JobMessageClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// Target is the client for interacting with the Target builders.
	Target *TargetClient
	// Tenant is the client for interacting with the Tenant builders.
	Tenant *TenantClient
	// TenantSetting is the client for interacting with the TenantSetting builders.
	TenantSetting *TenantSettingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.APIDefinition = NewAPIDefinitionClient(c.config)
	c.APIDefinitionVersion = NewAPIDefinitionVersionClient(c.config)
	c.Job = NewJobClient(c.config)
	c.JobLog = NewJobLogClient(c.config)
	c.JobMessage = NewJobMessageClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.Target = NewTargetClient(c.config)
	c.Tenant = NewTenantClient(c.config)
	c.TenantSetting = NewTenantSettingClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		APIDefinition:        NewAPIDefinitionClient(cfg),
		APIDefinitionVersion: NewAPIDefinitionVersionClient(cfg),
		Job:                  NewJobClient(cfg),
		JobLog:               NewJobLogClient(cfg),
		JobMessage:           NewJobMessageClient(cfg),
		Session:              NewSessionClient(cfg),
		Target:               NewTargetClient(cfg),
		Tenant:               NewTenantClient(cfg),
		TenantSetting:        NewTenantSettingClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		APIDefinition:        NewAPIDefinitionClient(cfg),
		APIDefinitionVersion: NewAPIDefinitionVersionClient(cfg),
		Job:                  NewJobClient(cfg),
		JobLog:               NewJobLogClient(cfg),
		JobMessage:           NewJobMessageClient(cfg),
		Session:              NewSessionClient(cfg),
		Target:               NewTargetClient(cfg),
		Tenant:               NewTenantClient(cfg),
		TenantSetting:        NewTenantSettingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		APIDefinition.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.APIDefinition, c.APIDefinitionVersion, c.Job, c.JobLog, c.JobMessage,
		c.Session, c.Target, c.Tenant, c.TenantSetting,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.APIDefinition, c.APIDefinitionVersion, c.Job, c.JobLog, c.JobMessage,
		c.Session, c.Target, c.Tenant, c.TenantSetting,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *APIDefinitionMutation:
		return c.APIDefinition.mutate(ctx, m)
	case *APIDefinitionVersionMutation:
		return c.APIDefinitionVersion.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *JobLogMutation:
		return c.JobLog.mutate(ctx, m)
	case *JobMessageMutation:
		return c.JobMessage.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *TargetMutation:
		return c.Target.mutate(ctx, m)
	case *TenantMutation:
		return c.Tenant.mutate(ctx, m)
	case *TenantSettingMutation:
		return c.TenantSetting.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// APIDefinitionClient is a client for the APIDefinition schema.
type APIDefinitionClient struct {
	config
}

// NewAPIDefinitionClient returns a client for the APIDefinition from the given config.
func NewAPIDefinitionClient(c config) *APIDefinitionClient {
	return &APIDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apidefinition.Hooks(f(g(h())))`.
func (c *APIDefinitionClient) Use(hooks ...Hook) {
	c.hooks.APIDefinition = append(c.hooks.APIDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apidefinition.Intercept(f(g(h())))`.
func (c *APIDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.APIDefinition = append(c.inters.APIDefinition, interceptors...)
}

// Create returns a builder for creating a APIDefinition entity.
func (c *APIDefinitionClient) Create() *APIDefinitionCreate {
	mutation := newAPIDefinitionMutation(c.config, OpCreate)
	return &APIDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APIDefinition entities.
func (c *APIDefinitionClient) CreateBulk(builders ...*APIDefinitionCreate) *APIDefinitionCreateBulk {
	return &APIDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APIDefinitionClient) MapCreateBulk(slice any, setFunc func(*APIDefinitionCreate, int)) *APIDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APIDefinitionCreateBulk{err: fmt.Errorf("calling to APIDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APIDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APIDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APIDefinition.
func (c *APIDefinitionClient) Update() *APIDefinitionUpdate {
	mutation := newAPIDefinitionMutation(c.config, OpUpdate)
	return &APIDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APIDefinitionClient) UpdateOne(_m *APIDefinition) *APIDefinitionUpdateOne {
	mutation := newAPIDefinitionMutation(c.config, OpUpdateOne, withAPIDefinition(_m))
	return &APIDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APIDefinitionClient) UpdateOneID(id string) *APIDefinitionUpdateOne {
	mutation := newAPIDefinitionMutation(c.config, OpUpdateOne, withAPIDefinitionID(id))
	return &APIDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APIDefinition.
func (c *APIDefinitionClient) Delete() *APIDefinitionDelete {
	mutation := newAPIDefinitionMutation(c.config, OpDelete)
	return &APIDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APIDefinitionClient) DeleteOne(_m *APIDefinition) *APIDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APIDefinitionClient) DeleteOneID(id string) *APIDefinitionDeleteOne {
	builder := c.Delete().Where(apidefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APIDefinitionDeleteOne{builder}
}

// Query returns a query builder for APIDefinition.
func (c *APIDefinitionClient) Query() *APIDefinitionQuery {
	return &APIDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPIDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a APIDefinition entity by its id.
func (c *APIDefinitionClient) Get(ctx context.Context, id string) (*APIDefinition, error) {
	return c.Query().Where(apidefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APIDefinitionClient) GetX(ctx context.Context, id string) *APIDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVersions queries the versions edge of a APIDefinition.
func (c *APIDefinitionClient) QueryVersions(_m *APIDefinition) *APIDefinitionVersionQuery {
	query := (&APIDefinitionVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(apidefinition.Table, apidefinition.FieldID, id),
			sqlgraph.To(apidefinitionversion.Table, apidefinitionversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, apidefinition.VersionsTable, apidefinition.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *APIDefinitionClient) Hooks() []Hook {
	return c.hooks.APIDefinition
}

// Interceptors returns the client interceptors.
func (c *APIDefinitionClient) Interceptors() []Interceptor {
	return c.inters.APIDefinition
}

func (c *APIDefinitionClient) mutate(ctx context.Context, m *APIDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APIDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APIDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APIDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APIDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APIDefinition mutation op: %q", m.Op())
	}
}

// APIDefinitionVersionClient is a client for the APIDefinitionVersion schema.
type APIDefinitionVersionClient struct {
	config
}

// NewAPIDefinitionVersionClient returns a client for the APIDefinitionVersion from the given config.
func NewAPIDefinitionVersionClient(c config) *APIDefinitionVersionClient {
	return &APIDefinitionVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apidefinitionversion.Hooks(f(g(h())))`.
func (c *APIDefinitionVersionClient) Use(hooks ...Hook) {
	c.hooks.APIDefinitionVersion = append(c.hooks.APIDefinitionVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apidefinitionversion.Intercept(f(g(h())))`.
func (c *APIDefinitionVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.APIDefinitionVersion = append(c.inters.APIDefinitionVersion, interceptors...)
}

// Create returns a builder for creating a APIDefinitionVersion entity.
func (c *APIDefinitionVersionClient) Create() *APIDefinitionVersionCreate {
	mutation := newAPIDefinitionVersionMutation(c.config, OpCreate)
	return &APIDefinitionVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APIDefinitionVersion entities.
func (c *APIDefinitionVersionClient) CreateBulk(builders ...*APIDefinitionVersionCreate) *APIDefinitionVersionCreateBulk {
	return &APIDefinitionVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APIDefinitionVersionClient) MapCreateBulk(slice any, setFunc func(*APIDefinitionVersionCreate, int)) *APIDefinitionVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APIDefinitionVersionCreateBulk{err: fmt.Errorf("calling to APIDefinitionVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APIDefinitionVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APIDefinitionVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APIDefinitionVersion.
func (c *APIDefinitionVersionClient) Update() *APIDefinitionVersionUpdate {
	mutation := newAPIDefinitionVersionMutation(c.config, OpUpdate)
	return &APIDefinitionVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APIDefinitionVersionClient) UpdateOne(_m *APIDefinitionVersion) *APIDefinitionVersionUpdateOne {
	mutation := newAPIDefinitionVersionMutation(c.config, OpUpdateOne, withAPIDefinitionVersion(_m))
	return &APIDefinitionVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APIDefinitionVersionClient) UpdateOneID(id string) *APIDefinitionVersionUpdateOne {
	mutation := newAPIDefinitionVersionMutation(c.config, OpUpdateOne, withAPIDefinitionVersionID(id))
	return &APIDefinitionVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APIDefinitionVersion.
func (c *APIDefinitionVersionClient) Delete() *APIDefinitionVersionDelete {
	mutation := newAPIDefinitionVersionMutation(c.config, OpDelete)
	return &APIDefinitionVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APIDefinitionVersionClient) DeleteOne(_m *APIDefinitionVersion) *APIDefinitionVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APIDefinitionVersionClient) DeleteOneID(id string) *APIDefinitionVersionDeleteOne {
	builder := c.Delete().Where(apidefinitionversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APIDefinitionVersionDeleteOne{builder}
}

// Query returns a query builder for APIDefinitionVersion.
func (c *APIDefinitionVersionClient) Query() *APIDefinitionVersionQuery {
	return &APIDefinitionVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPIDefinitionVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a APIDefinitionVersion entity by its id.
func (c *APIDefinitionVersionClient) Get(ctx context.Context, id string) (*APIDefinitionVersion, error) {
	return c.Query().Where(apidefinitionversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APIDefinitionVersionClient) GetX(ctx context.Context, id string) *APIDefinitionVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDefinition queries the definition edge of a APIDefinitionVersion.
func (c *APIDefinitionVersionClient) QueryDefinition(_m *APIDefinitionVersion) *APIDefinitionQuery {
	query := (&APIDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(apidefinitionversion.Table, apidefinitionversion.FieldID, id),
			sqlgraph.To(apidefinition.Table, apidefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, apidefinitionversion.DefinitionTable, apidefinitionversion.DefinitionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *APIDefinitionVersionClient) Hooks() []Hook {
	return c.hooks.APIDefinitionVersion
}

// Interceptors returns the client interceptors.
func (c *APIDefinitionVersionClient) Interceptors() []Interceptor {
	return c.inters.APIDefinitionVersion
}

func (c *APIDefinitionVersionClient) mutate(ctx context.Context, m *APIDefinitionVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APIDefinitionVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APIDefinitionVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APIDefinitionVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APIDefinitionVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APIDefinitionVersion mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTarget queries the target edge of a Job.
func (c *JobClient) QueryTarget(_m *Job) *TargetQuery {
	query := (&TargetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(target.Table, target.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, job.TargetTable, job.TargetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Job.
func (c *JobClient) QueryMessages(_m *Job) *JobMessageQuery {
	query := (&JobMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobmessage.Table, jobmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.MessagesTable, job.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogs queries the logs edge of a Job.
func (c *JobClient) QueryLogs(_m *Job) *JobLogQuery {
	query := (&JobLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(joblog.Table, joblog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.LogsTable, job.LogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// JobLogClient is a client for the JobLog schema.
type JobLogClient struct {
	config
}

// NewJobLogClient returns a client for the JobLog from the given config.
func NewJobLogClient(c config) *JobLogClient {
	return &JobLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `joblog.Hooks(f(g(h())))`.
func (c *JobLogClient) Use(hooks ...Hook) {
	c.hooks.JobLog = append(c.hooks.JobLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `joblog.Intercept(f(g(h())))`.
func (c *JobLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobLog = append(c.inters.JobLog, interceptors...)
}

// Create returns a builder for creating a JobLog entity.
func (c *JobLogClient) Create() *JobLogCreate {
	mutation := newJobLogMutation(c.config, OpCreate)
	return &JobLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobLog entities.
func (c *JobLogClient) CreateBulk(builders ...*JobLogCreate) *JobLogCreateBulk {
	return &JobLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobLogClient) MapCreateBulk(slice any, setFunc func(*JobLogCreate, int)) *JobLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobLogCreateBulk{err: fmt.Errorf("calling to JobLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobLog.
func (c *JobLogClient) Update() *JobLogUpdate {
	mutation := newJobLogMutation(c.config, OpUpdate)
	return &JobLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobLogClient) UpdateOne(_m *JobLog) *JobLogUpdateOne {
	mutation := newJobLogMutation(c.config, OpUpdateOne, withJobLog(_m))
	return &JobLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobLogClient) UpdateOneID(id string) *JobLogUpdateOne {
	mutation := newJobLogMutation(c.config, OpUpdateOne, withJobLogID(id))
	return &JobLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobLog.
func (c *JobLogClient) Delete() *JobLogDelete {
	mutation := newJobLogMutation(c.config, OpDelete)
	return &JobLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobLogClient) DeleteOne(_m *JobLog) *JobLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobLogClient) DeleteOneID(id string) *JobLogDeleteOne {
	builder := c.Delete().Where(joblog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobLogDeleteOne{builder}
}

// Query returns a query builder for JobLog.
func (c *JobLogClient) Query() *JobLogQuery {
	return &JobLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobLog},
		inters: c.Interceptors(),
	}
}

// Get returns a JobLog entity by its id.
func (c *JobLogClient) Get(ctx context.Context, id string) (*JobLog, error) {
	return c.Query().Where(joblog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobLogClient) GetX(ctx context.Context, id string) *JobLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobLog.
func (c *JobLogClient) QueryJob(_m *JobLog) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(joblog.Table, joblog.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, joblog.JobTable, joblog.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobLogClient) Hooks() []Hook {
	return c.hooks.JobLog
}

// Interceptors returns the client interceptors.
func (c *JobLogClient) Interceptors() []Interceptor {
	return c.inters.JobLog
}

func (c *JobLogClient) mutate(ctx context.Context, m *JobLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobLog mutation op: %q", m.Op())
	}
}

// JobMessageClient is a client for the JobMessage schema.
type JobMessageClient struct {
	config
}

// NewJobMessageClient returns a client for the JobMessage from the given config.
func NewJobMessageClient(c config) *JobMessageClient {
	return &JobMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobmessage.Hooks(f(g(h())))`.
func (c *JobMessageClient) Use(hooks ...Hook) {
	c.hooks.JobMessage = append(c.hooks.JobMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobmessage.Intercept(f(g(h())))`.
func (c *JobMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobMessage = append(c.inters.JobMessage, interceptors...)
}

// Create returns a builder for creating a JobMessage entity.
func (c *JobMessageClient) Create() *JobMessageCreate {
	mutation := newJobMessageMutation(c.config, OpCreate)
	return &JobMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobMessage entities.
func (c *JobMessageClient) CreateBulk(builders ...*JobMessageCreate) *JobMessageCreateBulk {
	return &JobMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobMessageClient) MapCreateBulk(slice any, setFunc func(*JobMessageCreate, int)) *JobMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobMessageCreateBulk{err: fmt.Errorf("calling to JobMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobMessage.
func (c *JobMessageClient) Update() *JobMessageUpdate {
	mutation := newJobMessageMutation(c.config, OpUpdate)
	return &JobMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobMessageClient) UpdateOne(_m *JobMessage) *JobMessageUpdateOne {
	mutation := newJobMessageMutation(c.config, OpUpdateOne, withJobMessage(_m))
	return &JobMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobMessageClient) UpdateOneID(id string) *JobMessageUpdateOne {
	mutation := newJobMessageMutation(c.config, OpUpdateOne, withJobMessageID(id))
	return &JobMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobMessage.
func (c *JobMessageClient) Delete() *JobMessageDelete {
	mutation := newJobMessageMutation(c.config, OpDelete)
	return &JobMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobMessageClient) DeleteOne(_m *JobMessage) *JobMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobMessageClient) DeleteOneID(id string) *JobMessageDeleteOne {
	builder := c.Delete().Where(jobmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobMessageDeleteOne{builder}
}

// Query returns a query builder for JobMessage.
func (c *JobMessageClient) Query() *JobMessageQuery {
	return &JobMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a JobMessage entity by its id.
func (c *JobMessageClient) Get(ctx context.Context, id string) (*JobMessage, error) {
	return c.Query().Where(jobmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobMessageClient) GetX(ctx context.Context, id string) *JobMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobMessage.
func (c *JobMessageClient) QueryJob(_m *JobMessage) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobmessage.Table, jobmessage.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobmessage.JobTable, jobmessage.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobMessageClient) Hooks() []Hook {
	return c.hooks.JobMessage
}

// Interceptors returns the client interceptors.
func (c *JobMessageClient) Interceptors() []Interceptor {
	return c.inters.JobMessage
}

func (c *JobMessageClient) mutate(ctx context.Context, m *JobMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobMessage mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTarget queries the target edge of a Session.
func (c *SessionClient) QueryTarget(_m *Session) *TargetQuery {
	query := (&TargetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(target.Table, target.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, session.TargetTable, session.TargetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// TargetClient is a client for the Target schema.
type TargetClient struct {
	config
}

// NewTargetClient returns a client for the Target from the given config.
func NewTargetClient(c config) *TargetClient {
	return &TargetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `target.Hooks(f(g(h())))`.
func (c *TargetClient) Use(hooks ...Hook) {
	c.hooks.Target = append(c.hooks.Target, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `target.Intercept(f(g(h())))`.
func (c *TargetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Target = append(c.inters.Target, interceptors...)
}

// Create returns a builder for creating a Target entity.
func (c *TargetClient) Create() *TargetCreate {
	mutation := newTargetMutation(c.config, OpCreate)
	return &TargetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Target entities.
func (c *TargetClient) CreateBulk(builders ...*TargetCreate) *TargetCreateBulk {
	return &TargetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TargetClient) MapCreateBulk(slice any, setFunc func(*TargetCreate, int)) *TargetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TargetCreateBulk{err: fmt.Errorf("calling to TargetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TargetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TargetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Target.
func (c *TargetClient) Update() *TargetUpdate {
	mutation := newTargetMutation(c.config, OpUpdate)
	return &TargetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TargetClient) UpdateOne(_m *Target) *TargetUpdateOne {
	mutation := newTargetMutation(c.config, OpUpdateOne, withTarget(_m))
	return &TargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TargetClient) UpdateOneID(id string) *TargetUpdateOne {
	mutation := newTargetMutation(c.config, OpUpdateOne, withTargetID(id))
	return &TargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Target.
func (c *TargetClient) Delete() *TargetDelete {
	mutation := newTargetMutation(c.config, OpDelete)
	return &TargetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TargetClient) DeleteOne(_m *Target) *TargetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TargetClient) DeleteOneID(id string) *TargetDeleteOne {
	builder := c.Delete().Where(target.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TargetDeleteOne{builder}
}

// Query returns a query builder for Target.
func (c *TargetClient) Query() *TargetQuery {
	return &TargetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTarget},
		inters: c.Interceptors(),
	}
}

// Get returns a Target entity by its id.
func (c *TargetClient) Get(ctx context.Context, id string) (*Target, error) {
	return c.Query().Where(target.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TargetClient) GetX(ctx context.Context, id string) *Target {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a Target.
func (c *TargetClient) QuerySessions(_m *Target) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(target.Table, target.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, target.SessionsTable, target.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Target.
func (c *TargetClient) QueryJobs(_m *Target) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(target.Table, target.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, target.JobsTable, target.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TargetClient) Hooks() []Hook {
	return c.hooks.Target
}

// Interceptors returns the client interceptors.
func (c *TargetClient) Interceptors() []Interceptor {
	return c.inters.Target
}

func (c *TargetClient) mutate(ctx context.Context, m *TargetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TargetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TargetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TargetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Target mutation op: %q", m.Op())
	}
}

// TenantClient is a client for the Tenant schema.
type TenantClient struct {
	config
}

// NewTenantClient returns a client for the Tenant from the given config.
func NewTenantClient(c config) *TenantClient {
	return &TenantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenant.Hooks(f(g(h())))`.
func (c *TenantClient) Use(hooks ...Hook) {
	c.hooks.Tenant = append(c.hooks.Tenant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenant.Intercept(f(g(h())))`.
func (c *TenantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tenant = append(c.inters.Tenant, interceptors...)
}

// Create returns a builder for creating a Tenant entity.
func (c *TenantClient) Create() *TenantCreate {
	mutation := newTenantMutation(c.config, OpCreate)
	return &TenantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tenant entities.
func (c *TenantClient) CreateBulk(builders ...*TenantCreate) *TenantCreateBulk {
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantClient) MapCreateBulk(slice any, setFunc func(*TenantCreate, int)) *TenantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantCreateBulk{err: fmt.Errorf("calling to TenantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tenant.
func (c *TenantClient) Update() *TenantUpdate {
	mutation := newTenantMutation(c.config, OpUpdate)
	return &TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantClient) UpdateOne(_m *Tenant) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenant(_m))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantClient) UpdateOneID(id string) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenantID(id))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tenant.
func (c *TenantClient) Delete() *TenantDelete {
	mutation := newTenantMutation(c.config, OpDelete)
	return &TenantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantClient) DeleteOne(_m *Tenant) *TenantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantClient) DeleteOneID(id string) *TenantDeleteOne {
	builder := c.Delete().Where(tenant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantDeleteOne{builder}
}

// Query returns a query builder for Tenant.
func (c *TenantClient) Query() *TenantQuery {
	return &TenantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenant},
		inters: c.Interceptors(),
	}
}

// Get returns a Tenant entity by its id.
func (c *TenantClient) Get(ctx context.Context, id string) (*Tenant, error) {
	return c.Query().Where(tenant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantClient) GetX(ctx context.Context, id string) *Tenant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantClient) Hooks() []Hook {
	return c.hooks.Tenant
}

// Interceptors returns the client interceptors.
func (c *TenantClient) Interceptors() []Interceptor {
	return c.inters.Tenant
}

func (c *TenantClient) mutate(ctx context.Context, m *TenantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tenant mutation op: %q", m.Op())
	}
}

// TenantSettingClient is a client for the TenantSetting schema.
type TenantSettingClient struct {
	config
}

// NewTenantSettingClient returns a client for the TenantSetting from the given config.
func NewTenantSettingClient(c config) *TenantSettingClient {
	return &TenantSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenantsetting.Hooks(f(g(h())))`.
func (c *TenantSettingClient) Use(hooks ...Hook) {
	c.hooks.TenantSetting = append(c.hooks.TenantSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenantsetting.Intercept(f(g(h())))`.
func (c *TenantSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.TenantSetting = append(c.inters.TenantSetting, interceptors...)
}

// Create returns a builder for creating a TenantSetting entity.
func (c *TenantSettingClient) Create() *TenantSettingCreate {
	mutation := newTenantSettingMutation(c.config, OpCreate)
	return &TenantSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TenantSetting entities.
func (c *TenantSettingClient) CreateBulk(builders ...*TenantSettingCreate) *TenantSettingCreateBulk {
	return &TenantSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantSettingClient) MapCreateBulk(slice any, setFunc func(*TenantSettingCreate, int)) *TenantSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantSettingCreateBulk{err: fmt.Errorf("calling to TenantSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TenantSetting.
func (c *TenantSettingClient) Update() *TenantSettingUpdate {
	mutation := newTenantSettingMutation(c.config, OpUpdate)
	return &TenantSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantSettingClient) UpdateOne(_m *TenantSetting) *TenantSettingUpdateOne {
	mutation := newTenantSettingMutation(c.config, OpUpdateOne, withTenantSetting(_m))
	return &TenantSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantSettingClient) UpdateOneID(id string) *TenantSettingUpdateOne {
	mutation := newTenantSettingMutation(c.config, OpUpdateOne, withTenantSettingID(id))
	return &TenantSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TenantSetting.
func (c *TenantSettingClient) Delete() *TenantSettingDelete {
	mutation := newTenantSettingMutation(c.config, OpDelete)
	return &TenantSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantSettingClient) DeleteOne(_m *TenantSetting) *TenantSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantSettingClient) DeleteOneID(id string) *TenantSettingDeleteOne {
	builder := c.Delete().Where(tenantsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantSettingDeleteOne{builder}
}

// Query returns a query builder for TenantSetting.
func (c *TenantSettingClient) Query() *TenantSettingQuery {
	return &TenantSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenantSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a TenantSetting entity by its id.
func (c *TenantSettingClient) Get(ctx context.Context, id string) (*TenantSetting, error) {
	return c.Query().Where(tenantsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantSettingClient) GetX(ctx context.Context, id string) *TenantSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantSettingClient) Hooks() []Hook {
	return c.hooks.TenantSetting
}

// Interceptors returns the client interceptors.
func (c *TenantSettingClient) Interceptors() []Interceptor {
	return c.inters.TenantSetting
}

func (c *TenantSettingClient) mutate(ctx context.Context, m *TenantSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TenantSetting mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		APIDefinition, APIDefinitionVersion, Job, JobLog, JobMessage, Session, Target,
		Tenant, TenantSetting []ent.Hook
	}
	inters struct {
		APIDefinition, APIDefinitionVersion, Job, JobLog, JobMessage, Session, Target,
		Tenant, TenantSetting []ent.Interceptor
	}
)
