package maintenance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/legacyuse/orchestrator/pkg/config"
)

type fakeReaper struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeReaper) ExpireStaleLeases(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return 1, nil
}

func (f *fakeReaper) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePruner struct {
	mu   sync.Mutex
	days []int
}

func (f *fakePruner) PruneOlderThan(_ context.Context, retentionDays int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.days = append(f.days, retentionDays)
	return 7, nil
}

type fakeSweeper struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeSweeper) Sweep(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

func (f *fakeSweeper) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testLeader(tenants ...Tenant) *Leader {
	cfg := config.Default()
	cfg.Queue.StaleLeaseInterval = 5 * time.Millisecond
	cfg.Sessions.SweepInterval = 5 * time.Millisecond
	return NewLeader(cfg, nil, tenants)
}

func TestLeadDrivesTenantLoops(t *testing.T) {
	reaper := &fakeReaper{}
	provisioner := &fakeSweeper{}
	monitor := &fakeSweeper{}
	leader := testLeader(Tenant{
		Schema:      "tenant_a",
		Jobs:        reaper,
		Logs:        &fakePruner{},
		Provisioner: provisioner,
		Sessions:    monitor,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	_ = leader.lead(ctx, nil)

	assert.Greater(t, reaper.count(), 0, "reaper runs on its cadence")
	assert.Greater(t, provisioner.count(), 0, "provisioner sweeps on its cadence")
	assert.Greater(t, monitor.count(), 0, "monitor sweeps on its cadence")
}

func TestPruneAllUsesConfiguredRetention(t *testing.T) {
	prunerA := &fakePruner{}
	prunerB := &fakePruner{}
	leader := testLeader(
		Tenant{Schema: "tenant_a", Jobs: &fakeReaper{}, Logs: prunerA, Provisioner: &fakeSweeper{}, Sessions: &fakeSweeper{}},
		Tenant{Schema: "tenant_b", Jobs: &fakeReaper{}, Logs: prunerB, Provisioner: &fakeSweeper{}, Sessions: &fakeSweeper{}},
	)
	leader.cfg.Retention.LogRetentionDays = 14

	leader.pruneAll(context.Background())

	assert.Equal(t, []int{14}, prunerA.days)
	assert.Equal(t, []int{14}, prunerB.days)
}

func TestNextPruneTime(t *testing.T) {
	base := time.Date(2026, time.August, 24, 10, 30, 0, 0, time.UTC)

	t.Run("later today", func(t *testing.T) {
		next := nextPruneTime(base, 23)
		assert.Equal(t, time.Date(2026, time.August, 24, 23, 0, 0, 0, time.UTC), next)
	})

	t.Run("hour already passed rolls to tomorrow", func(t *testing.T) {
		next := nextPruneTime(base, 0)
		assert.Equal(t, time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("exactly at the hour waits a full day", func(t *testing.T) {
		at := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
		next := nextPruneTime(at, 0)
		assert.Equal(t, time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC), next)
	})
}
