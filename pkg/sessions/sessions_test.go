package sessions

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/pkg/config"
	"github.com/legacyuse/orchestrator/pkg/sandbox"
)

type fakeManager struct {
	mu        sync.Mutex
	launched  []sandbox.LaunchSpec
	stopped   []string
	removed   []string
	running   bool
	launchErr error
}

func (f *fakeManager) Launch(_ context.Context, spec sandbox.LaunchSpec) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launchErr != nil {
		return "", f.launchErr
	}
	f.launched = append(f.launched, spec)
	return fmt.Sprintf("container-%d", len(f.launched)), nil
}

func (f *fakeManager) Inspect(context.Context, string) (*sandbox.ContainerStatus, error) {
	return &sandbox.ContainerStatus{Running: f.running}, nil
}

func (f *fakeManager) GetIP(context.Context, string) (string, error) { return "10.0.0.9", nil }

func (f *fakeManager) Exec(context.Context, string, []string) (string, error) { return "", nil }

func (f *fakeManager) Stop(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = append(f.stopped, id)
	return nil
}

func (f *fakeManager) Remove(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
	return nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	created  []string
	bound    map[string]string
	failed   []string
	states   map[string]session.State
	archived map[string]session.ArchiveReason
	active   []*ent.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		bound:    make(map[string]string),
		states:   make(map[string]session.State),
		archived: make(map[string]session.ArchiveReason),
	}
}

func (f *fakeSessionStore) Create(_ context.Context, targetID string) (*ent.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("sess-%d", len(f.created)+1)
	f.created = append(f.created, targetID)
	return &ent.Session{ID: id, TargetID: targetID, State: session.StateInitializing}, nil
}

func (f *fakeSessionStore) BindContainer(_ context.Context, id, containerID, ip string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bound[id] = containerID + "@" + ip
	return nil
}

func (f *fakeSessionStore) MarkProvisioningFailed(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed = append(f.failed, id)
	return nil
}

func (f *fakeSessionStore) ListActive(context.Context) ([]*ent.Session, error) {
	return f.active, nil
}

func (f *fakeSessionStore) SetState(_ context.Context, id string, state session.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[id] = state
	return nil
}

func (f *fakeSessionStore) Archive(_ context.Context, id string, reason session.ArchiveReason) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.archived[id] = reason
	return nil
}

type fakeTargetReader struct{ t *ent.Target }

func (f *fakeTargetReader) Get(context.Context, string) (*ent.Target, error) { return f.t, nil }

type fakePendingSource struct{ ids []string }

func (f *fakePendingSource) TargetsNeedingSessions(context.Context) ([]string, error) {
	return f.ids, nil
}

type fakeProber struct {
	healthy bool
}

func (f *fakeProber) Healthy(context.Context) (bool, string) {
	if f.healthy {
		return true, ""
	}
	return false, "not yet"
}

func rdpTarget() *ent.Target {
	return &ent.Target{
		ID:       "tgt-1",
		Type:     "rdp+openvpn",
		Host:     "192.168.7.20",
		Port:     lo.ToPtr(3389),
		Username: lo.ToPtr("automation"),
		Password: "secret",
		Width:    1024,
		Height:   768,
	}
}

func TestLaunchSpecFor(t *testing.T) {
	spec := LaunchSpecFor(config.DefaultSandboxConfig(), rdpTarget(), "0b7a9c1d-ffff")

	assert.Equal(t, "legacyuse-session-0b7a9c1d", spec.Name)
	assert.True(t, spec.UseVPNDevices, "openvpn targets need the tun device")
	assert.Equal(t, "rdp", spec.Env["REMOTE_CLIENT_TYPE"])
	assert.Equal(t, "openvpn", spec.Env["REMOTE_VPN_TYPE"])
	assert.Equal(t, "192.168.7.20", spec.Env["HOST_IP"])
	assert.Equal(t, "3389", spec.Env["HOST_PORT"])
	assert.Equal(t, "automation", spec.Env["REMOTE_USERNAME"])
	assert.Equal(t, "secret", spec.Env["REMOTE_PASSWORD"])
	assert.Equal(t, "1024", spec.Env["WIDTH"])

	plain := LaunchSpecFor(config.DefaultSandboxConfig(),
		&ent.Target{Type: "vnc", Host: "h", Password: "p", Width: 800, Height: 600}, "abc")
	assert.False(t, plain.UseVPNDevices)
	assert.Equal(t, "vnc", plain.Env["REMOTE_CLIENT_TYPE"])
	assert.Equal(t, "", plain.Env["REMOTE_VPN_TYPE"])
	assert.NotContains(t, plain.Env, "HOST_PORT")
}

func TestProvisionCreatesAndBinds(t *testing.T) {
	store := newFakeSessionStore()
	manager := &fakeManager{}
	p := NewProvisioner(config.DefaultSandboxConfig(), manager, store,
		&fakeTargetReader{t: rdpTarget()}, &fakePendingSource{})

	require.NoError(t, p.Provision(context.Background(), "tgt-1"))

	assert.Equal(t, []string{"tgt-1"}, store.created)
	assert.Equal(t, "container-1@10.0.0.9", store.bound["sess-1"])
	assert.Empty(t, store.failed)
}

func TestProvisionLaunchFailureMarksSession(t *testing.T) {
	store := newFakeSessionStore()
	manager := &fakeManager{launchErr: fmt.Errorf("no such image")}
	p := NewProvisioner(config.DefaultSandboxConfig(), manager, store,
		&fakeTargetReader{t: rdpTarget()}, &fakePendingSource{})

	err := p.Provision(context.Background(), "tgt-1")
	require.Error(t, err)
	assert.Equal(t, []string{"sess-1"}, store.failed)
	assert.Empty(t, store.bound)
}

func TestProvisionDedupesConcurrentTargets(t *testing.T) {
	store := newFakeSessionStore()
	manager := &fakeManager{}
	p := NewProvisioner(config.DefaultSandboxConfig(), manager, store,
		&fakeTargetReader{t: rdpTarget()}, &fakePendingSource{})

	// simulate an in-flight provision holding the pending slot
	require.True(t, p.claim("tgt-1"))
	require.NoError(t, p.Provision(context.Background(), "tgt-1"))
	assert.Empty(t, store.created, "a pending target is not provisioned twice")

	p.release("tgt-1")
	require.NoError(t, p.Provision(context.Background(), "tgt-1"))
	assert.Len(t, store.created, 1)
}

func TestSweepProvisionsAllPendingTargets(t *testing.T) {
	store := newFakeSessionStore()
	manager := &fakeManager{}
	p := NewProvisioner(config.DefaultSandboxConfig(), manager, store,
		&fakeTargetReader{t: rdpTarget()}, &fakePendingSource{ids: []string{"tgt-1", "tgt-2"}})

	require.NoError(t, p.Sweep(context.Background()))
	assert.Len(t, store.created, 2)
}

func monitorFixture(active []*ent.Session, running, healthy bool) (*Monitor, *fakeSessionStore, *fakeManager) {
	store := newFakeSessionStore()
	store.active = active
	manager := &fakeManager{running: running}
	cfg := config.DefaultSessionsConfig()
	m := NewMonitor(cfg, store, manager, func(string) HealthProber {
		return &fakeProber{healthy: healthy}
	})
	return m, store, manager
}

func TestMonitorPromotesHealthyInitializing(t *testing.T) {
	sess := &ent.Session{
		ID:          "sess-1",
		TargetID:    "tgt-1",
		State:       session.StateInitializing,
		ContainerID: lo.ToPtr("container-1"),
		ContainerIP: lo.ToPtr("10.0.0.9"),
	}
	m, store, _ := monitorFixture([]*ent.Session{sess}, true, true)

	require.NoError(t, m.Sweep(context.Background()))
	assert.Equal(t, session.StateReady, store.states["sess-1"])
}

func TestMonitorLeavesUnhealthyInitializing(t *testing.T) {
	sess := &ent.Session{
		ID:          "sess-1",
		TargetID:    "tgt-1",
		State:       session.StateInitializing,
		ContainerID: lo.ToPtr("container-1"),
		ContainerIP: lo.ToPtr("10.0.0.9"),
	}
	m, store, _ := monitorFixture([]*ent.Session{sess}, true, false)

	require.NoError(t, m.Sweep(context.Background()))
	assert.Empty(t, store.states)
	assert.Empty(t, store.archived)
}

func TestMonitorArchivesDeadContainer(t *testing.T) {
	sess := &ent.Session{
		ID:          "sess-1",
		TargetID:    "tgt-1",
		State:       session.StateReady,
		ContainerID: lo.ToPtr("container-1"),
	}
	m, store, _ := monitorFixture([]*ent.Session{sess}, false, true)

	require.NoError(t, m.Sweep(context.Background()))
	assert.Equal(t, session.ArchiveReasonAutoCleanup, store.archived["sess-1"])
}

func TestMonitorArchivesIdleReadySession(t *testing.T) {
	sess := &ent.Session{
		ID:          "sess-1",
		TargetID:    "tgt-1",
		State:       session.StateReady,
		ContainerID: lo.ToPtr("container-1"),
		ContainerIP: lo.ToPtr("10.0.0.9"),
		CreatedAt:   time.Now().Add(-3 * time.Hour),
		LastJobTime: lo.ToPtr(time.Now().Add(-2 * time.Hour)),
	}
	m, store, manager := monitorFixture([]*ent.Session{sess}, true, true)

	require.NoError(t, m.Sweep(context.Background()))
	assert.Equal(t, session.ArchiveReasonAutoCleanup, store.archived["sess-1"])
	assert.Equal(t, []string{"container-1"}, manager.stopped)
	assert.Equal(t, []string{"container-1"}, manager.removed)
}

func TestMonitorKeepsBusyReadySession(t *testing.T) {
	sess := &ent.Session{
		ID:          "sess-1",
		TargetID:    "tgt-1",
		State:       session.StateReady,
		ContainerID: lo.ToPtr("container-1"),
		LastJobTime: lo.ToPtr(time.Now().Add(-time.Minute)),
	}
	m, store, _ := monitorFixture([]*ent.Session{sess}, true, true)

	require.NoError(t, m.Sweep(context.Background()))
	assert.Empty(t, store.archived)
}

func TestMonitorAdaptiveCadence(t *testing.T) {
	sess := &ent.Session{
		ID:          "sess-1",
		TargetID:    "tgt-1",
		State:       session.StateInitializing,
		ContainerID: lo.ToPtr("container-1"),
		ContainerIP: lo.ToPtr("10.0.0.9"),
	}
	m, store, _ := monitorFixture([]*ent.Session{sess}, true, false)

	require.NoError(t, m.Sweep(context.Background()))
	// a second sweep inside the cadence window skips the session entirely
	store.active = []*ent.Session{sess}
	require.NoError(t, m.Sweep(context.Background()))

	assert.False(t, m.due(sess, time.Now()), "session checked moments ago is not due")
	assert.True(t, m.due(sess, time.Now().Add(time.Minute)), "session becomes due after the interval")
}

func TestMonitorSkipsSessionsWithoutContainer(t *testing.T) {
	sess := &ent.Session{ID: "sess-1", TargetID: "tgt-1", State: session.StateInitializing}
	m, store, _ := monitorFixture([]*ent.Session{sess}, false, false)

	require.NoError(t, m.Sweep(context.Background()))
	assert.Empty(t, store.archived)
	assert.Empty(t, store.states)
}
