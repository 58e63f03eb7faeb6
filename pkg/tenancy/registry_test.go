package tenancy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacyuse/orchestrator/pkg/database"
	"github.com/legacyuse/orchestrator/pkg/tenancy"
	"github.com/legacyuse/orchestrator/test/util"
)

func newRegistry(t *testing.T) (*tenancy.Registry, *database.Client) {
	db := util.SetupTestDatabase(t)
	return tenancy.NewRegistry(db, database.Config{}), db
}

func seedTenant(t *testing.T, db *database.Client, id, host, schema string, active bool) {
	err := db.Tenant.Create().
		SetID(id).
		SetName(id).
		SetHost(host).
		SetSchema(schema).
		SetIsActive(active).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestResolveHostMatchesIgnoringPortAndCase(t *testing.T) {
	registry, db := newRegistry(t)
	seedTenant(t, db, "acme", "acme.example.com", "tenant_acme", true)

	for _, host := range []string{
		"acme.example.com",
		"acme.example.com:8080",
		"ACME.Example.COM",
	} {
		resolved, err := registry.ResolveHost(context.Background(), host)
		require.NoError(t, err, "host %q", host)
		assert.Equal(t, "acme", resolved.ID)
	}
}

func TestResolveHostUnknown(t *testing.T) {
	registry, _ := newRegistry(t)

	_, err := registry.ResolveHost(context.Background(), "nobody.example.com")
	assert.ErrorIs(t, err, tenancy.ErrUnknownTenant)

	_, err = registry.ResolveHost(context.Background(), "")
	assert.ErrorIs(t, err, tenancy.ErrUnknownTenant)
}

func TestResolveHostInactiveTenant(t *testing.T) {
	registry, db := newRegistry(t)
	seedTenant(t, db, "dormant", "dormant.example.com", "tenant_dormant", false)

	_, err := registry.ResolveHost(context.Background(), "dormant.example.com")
	assert.ErrorIs(t, err, tenancy.ErrTenantInactive)
}

func TestListActiveSkipsInactive(t *testing.T) {
	registry, db := newRegistry(t)
	seedTenant(t, db, "acme", "acme.example.com", "tenant_acme", true)
	seedTenant(t, db, "dormant", "dormant.example.com", "tenant_dormant", false)

	tenants, err := registry.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "acme", tenants[0].ID)
}

func TestNormalizeHost(t *testing.T) {
	cases := map[string]string{
		"Example.com":     "example.com",
		"example.com:443": "example.com",
		" example.com ":   "example.com",
		"[::1]:8080":      "::1",
		"localhost":       "localhost",
	}
	for in, want := range cases {
		assert.Equal(t, want, tenancy.NormalizeHost(in), "input %q", in)
	}
}
