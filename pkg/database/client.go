// Package database provides the PostgreSQL client, embedded migrations, and
// advisory-lock helpers the scheduler and maintenance leader build on.
//
// Two migration sets are embedded: control/ holds the shared tenants table,
// tenant/ holds the per-tenant tables. Control migrations run once on startup;
// tenant migrations run against each tenant schema when it is created (and on
// startup for existing schemas).
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"fmt"
	"regexp"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver for database/sql

	"github.com/legacyuse/orchestrator/ent"
)

//go:embed migrations/control migrations/tenant
var migrationsFS embed.FS

// schemaNamePattern restricts tenant schema names to safe SQL identifiers;
// schema names are interpolated into DDL and search_path settings.
var schemaNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// ValidSchemaName reports whether name is acceptable as a tenant schema.
func ValidSchemaName(name string) bool {
	return schemaNamePattern.MatchString(name)
}

// Client wraps the Ent client and exposes the underlying pool for health
// checks, raw claim SQL, and advisory locks.
type Client struct {
	*ent.Client
	db     *stdsql.DB
	schema string
}

// DB returns the underlying connection pool.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Schema returns the Postgres schema this client is pinned to. Empty for the
// control client.
func (c *Client) Schema() string {
	return c.schema
}

// Close releases the Ent client and the connection pool.
func (c *Client) Close() error {
	err := c.Client.Close()
	if dbErr := c.db.Close(); err == nil {
		err = dbErr
	}
	return err
}

// NewClientFromEnt wraps an existing Ent client (used by tests).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewControlClient connects to the control schema and applies the control
// migration set (the tenants table).
func NewControlClient(ctx context.Context, cfg Config) (*Client, error) {
	client, err := open(ctx, cfg, "")
	if err != nil {
		return nil, err
	}
	if err := applyMigrations(client.db, "migrations/control", "schema_migrations_control"); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("applying control migrations: %w", err)
	}
	return client, nil
}

// NewTenantClient connects with search_path pinned to the tenant schema,
// creating the schema and applying the tenant migration set if needed.
func NewTenantClient(ctx context.Context, cfg Config, schema string) (*Client, error) {
	if !ValidSchemaName(schema) {
		return nil, fmt.Errorf("invalid tenant schema name %q", schema)
	}

	client, err := open(ctx, cfg, schema)
	if err != nil {
		return nil, err
	}
	if _, err := client.db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("creating schema %s: %w", schema, err)
	}
	if err := applyMigrations(client.db, "migrations/tenant", "schema_migrations"); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("applying tenant migrations for %s: %w", schema, err)
	}
	return client, nil
}

func open(ctx context.Context, cfg Config, schema string) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN(schema))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	return &Client{
		Client: ent.NewClient(ent.Driver(drv)),
		db:     db,
		schema: schema,
	}, nil
}

// applyMigrations applies an embedded migration set through golang-migrate.
// migrationsTable separates version bookkeeping for the control and tenant
// sets; the search_path of the pool decides which schema the DDL lands in.
func applyMigrations(db *stdsql.DB, dir, migrationsTable string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return fmt.Errorf("creating postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("creating migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("applying migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the database
	// driver, which closes the shared *sql.DB and breaks the Ent client.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("closing migration source: %w", err)
	}

	return nil
}
