// Package tenancy resolves request hosts to tenants and manages the pool of
// per-tenant database clients. Tenants live in the shared control schema;
// each active tenant gets a lazily opened client pinned to its own Postgres
// schema.
package tenancy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/tenant"
	"github.com/legacyuse/orchestrator/pkg/database"
)

// ErrUnknownTenant is returned when no tenant matches the request host.
var ErrUnknownTenant = errors.New("unknown tenant host")

// ErrTenantInactive is returned when the matching tenant is deactivated.
var ErrTenantInactive = errors.New("tenant is inactive")

// Registry resolves hosts to tenants and hands out their database clients.
// Host lookups are cached briefly; client pools are kept for the process
// lifetime since tenant schemas never move.
type Registry struct {
	control *database.Client
	dbCfg   database.Config
	hosts   *gocache.Cache
	logger  *slog.Logger

	mu      sync.Mutex
	clients map[string]*database.Client
}

// NewRegistry creates a registry backed by the control schema client.
func NewRegistry(control *database.Client, dbCfg database.Config) *Registry {
	return &Registry{
		control: control,
		dbCfg:   dbCfg,
		hosts:   gocache.New(time.Minute, 5*time.Minute),
		logger:  slog.With("component", "tenancy"),
		clients: make(map[string]*database.Client),
	}
}

// ListActive returns all active tenants.
func (r *Registry) ListActive(ctx context.Context) ([]*ent.Tenant, error) {
	tenants, err := r.control.Tenant.Query().
		Where(tenant.IsActive(true)).
		Order(ent.Asc(tenant.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}
	return tenants, nil
}

// ResolveHost maps a request Host header to its tenant. The port, if any, is
// ignored; matching is case-insensitive.
func (r *Registry) ResolveHost(ctx context.Context, host string) (*ent.Tenant, error) {
	host = NormalizeHost(host)
	if host == "" {
		return nil, ErrUnknownTenant
	}

	if cached, ok := r.hosts.Get(host); ok {
		return r.checkActive(cached.(*ent.Tenant))
	}

	t, err := r.control.Tenant.Query().
		Where(tenant.HostEQ(host)).
		Only(ctx)
	switch {
	case err == nil:
		r.hosts.SetDefault(host, t)
		return r.checkActive(t)
	case ent.IsNotFound(err):
		return nil, ErrUnknownTenant
	default:
		return nil, fmt.Errorf("resolving tenant host %q: %w", host, err)
	}
}

func (r *Registry) checkActive(t *ent.Tenant) (*ent.Tenant, error) {
	if !t.IsActive {
		return nil, ErrTenantInactive
	}
	return t, nil
}

// ClientFor returns the tenant schema's database client, opening it (and
// applying pending tenant migrations) on first use.
func (r *Registry) ClientFor(ctx context.Context, schema string) (*database.Client, error) {
	r.mu.Lock()
	if client, ok := r.clients[schema]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	// opened outside the lock; migrations can take a while
	client, err := database.NewTenantClient(ctx, r.dbCfg, schema)
	if err != nil {
		return nil, fmt.Errorf("opening tenant client for %s: %w", schema, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.clients[schema]; ok {
		_ = client.Close()
		return existing, nil
	}
	r.clients[schema] = client
	r.logger.Info("Opened tenant database client", "schema", schema)
	return client, nil
}

// Close closes every tenant client. The control client is owned by the
// caller and stays open.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for schema, client := range r.clients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing tenant client for %s: %w", schema, err)
		}
		delete(r.clients, schema)
	}
	return firstErr
}

// NormalizeHost lowercases a Host header and strips any port.
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
