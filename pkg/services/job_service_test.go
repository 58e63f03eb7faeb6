package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/pkg/database"
	"github.com/legacyuse/orchestrator/pkg/services"
	"github.com/legacyuse/orchestrator/test/util"
)

type jobFixture struct {
	db       *database.Client
	jobs     *services.JobService
	targets  *services.TargetService
	sessions *services.SessionService
	targetID string
}

// newJobFixture builds a tenant schema with one target and, when withSession
// is set, one ready session so its queue is claimable.
func newJobFixture(t *testing.T, withSession bool) *jobFixture {
	db := util.SetupTestDatabase(t)
	logs := services.NewLogService(db)
	f := &jobFixture{
		db:       db,
		jobs:     services.NewJobService(db, logs),
		targets:  services.NewTargetService(db),
		sessions: services.NewSessionService(db),
	}

	ctx := context.Background()
	target, err := f.targets.Create(ctx, services.CreateTargetRequest{
		Name:     "ledger",
		Type:     "rdp",
		Host:     "192.168.7.20",
		Password: "secret",
	})
	require.NoError(t, err)
	f.targetID = target.ID

	if withSession {
		sess, err := f.sessions.Create(ctx, target.ID)
		require.NoError(t, err)
		require.NoError(t, f.sessions.BindContainer(ctx, sess.ID, "container-1", "10.0.0.9"))
		require.NoError(t, f.sessions.SetState(ctx, sess.ID, session.StateReady))
	}
	return f
}

func TestClaimNextReturnsOldestQueuedJob(t *testing.T) {
	f := newJobFixture(t, true)
	ctx := context.Background()

	first, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	_, err = f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)

	claimed, err := f.jobs.ClaimNext(ctx, "worker-1", 30)
	require.NoError(t, err)

	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, job.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.LeaseOwner)
	assert.Equal(t, "worker-1", *claimed.LeaseOwner)
	require.NotNil(t, claimed.LeaseExpiresAt)
	assert.True(t, claimed.LeaseExpiresAt.After(time.Now()))
	require.NotNil(t, claimed.SessionID, "claim binds the target's ready session")
}

func TestClaimNextEnforcesTargetExclusivity(t *testing.T) {
	f := newJobFixture(t, true)
	ctx := context.Background()

	_, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	_, err = f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)

	_, err = f.jobs.ClaimNext(ctx, "worker-1", 30)
	require.NoError(t, err)

	// the second job stays queued while the first runs on the same target
	_, err = f.jobs.ClaimNext(ctx, "worker-2", 30)
	assert.ErrorIs(t, err, services.ErrNoJobsAvailable)
}

func TestClaimNextRequiresReadySession(t *testing.T) {
	f := newJobFixture(t, false)
	ctx := context.Background()

	_, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)

	_, err = f.jobs.ClaimNext(ctx, "worker-1", 30)
	assert.ErrorIs(t, err, services.ErrNoJobsAvailable)
}

func TestClaimNextBlockedByPausedJob(t *testing.T) {
	f := newJobFixture(t, true)
	ctx := context.Background()

	blocker, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	require.NoError(t, f.db.Job.UpdateOneID(blocker.ID).SetStatus(job.StatusPaused).Exec(ctx))

	_, err = f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)

	_, err = f.jobs.ClaimNext(ctx, "worker-1", 30)
	assert.ErrorIs(t, err, services.ErrNoJobsAvailable)
}

func TestRenewLeaseChecksOwnership(t *testing.T) {
	f := newJobFixture(t, true)
	ctx := context.Background()

	_, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	claimed, err := f.jobs.ClaimNext(ctx, "worker-1", 30)
	require.NoError(t, err)

	renewed, err := f.jobs.RenewLease(ctx, claimed.ID, "worker-1", 30)
	require.NoError(t, err)
	assert.True(t, renewed)

	renewed, err = f.jobs.RenewLease(ctx, claimed.ID, "worker-2", 30)
	require.NoError(t, err)
	assert.False(t, renewed, "a stranger never renews someone else's lease")
}

func TestExpireStaleLeasesReapsExpiredRuns(t *testing.T) {
	f := newJobFixture(t, true)
	ctx := context.Background()

	_, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	claimed, err := f.jobs.ClaimNext(ctx, "worker-1", 30)
	require.NoError(t, err)

	// backdate the lease
	require.NoError(t, f.db.Job.UpdateOneID(claimed.ID).
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	reaped, err := f.jobs.ExpireStaleLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)

	got, err := f.jobs.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusError, got.Status)
	require.NotNil(t, got.Error)
	assert.Equal(t, services.ErrorLeaseExpired, *got.Error)
	assert.Nil(t, got.LeaseOwner)
	assert.NotNil(t, got.CompletedAt)
}

func TestResumeRequeuesBlockedJob(t *testing.T) {
	f := newJobFixture(t, true)
	ctx := context.Background()

	j, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	require.NoError(t, f.db.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusError).
		SetError("Target Health Check Failed").
		SetCompletedAt(time.Now()).
		Exec(ctx))

	resumed, err := f.jobs.Resume(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, resumed.Status)
	assert.Nil(t, resumed.Error)
	assert.Nil(t, resumed.CompletedAt)
	assert.False(t, resumed.CancelRequested)
}

func TestResumeRejectsTerminalJob(t *testing.T) {
	f := newJobFixture(t, true)
	ctx := context.Background()

	j, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	require.NoError(t, f.db.Job.UpdateOneID(j.ID).SetStatus(job.StatusSuccess).Exec(ctx))

	_, err = f.jobs.Resume(ctx, j.ID)
	assert.ErrorIs(t, err, services.ErrNotResumable)
}

func TestCancelOnlyBeforeExecution(t *testing.T) {
	f := newJobFixture(t, true)
	ctx := context.Background()

	queued, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	canceled, err := f.jobs.Cancel(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCanceled, canceled.Status)

	running, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	require.NoError(t, f.db.Job.UpdateOneID(running.ID).SetStatus(job.StatusRunning).Exec(ctx))
	_, err = f.jobs.Cancel(ctx, running.ID)
	assert.ErrorIs(t, err, services.ErrNotCancelable)
}

func TestResolveUnblocksQueue(t *testing.T) {
	f := newJobFixture(t, true)
	ctx := context.Background()

	j, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)
	require.NoError(t, f.db.Job.UpdateOneID(j.ID).SetStatus(job.StatusPaused).Exec(ctx))

	resolved, err := f.jobs.Resolve(ctx, j.ID, map[string]any{"balance": "42.50"})
	require.NoError(t, err)
	assert.Equal(t, job.StatusSuccess, resolved.Status)
	assert.Equal(t, map[string]any{"balance": "42.50"}, resolved.Result)

	paused, err := f.jobs.IsTargetQueuePaused(ctx, f.targetID)
	require.NoError(t, err)
	assert.False(t, paused)
}

func TestTargetsNeedingSessions(t *testing.T) {
	f := newJobFixture(t, false)
	ctx := context.Background()

	_, err := f.jobs.Enqueue(ctx, services.CreateJobRequest{TargetID: f.targetID, APIName: "read_balance"})
	require.NoError(t, err)

	needing, err := f.jobs.TargetsNeedingSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{f.targetID}, needing)

	// an initializing session in flight removes the target from the list
	_, err = f.sessions.Create(ctx, f.targetID)
	require.NoError(t, err)
	needing, err = f.jobs.TargetsNeedingSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, needing)
}
