package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/pkg/config"
	"github.com/legacyuse/orchestrator/pkg/services"
)

type fakeClaimer struct {
	mu      sync.Mutex
	pending []string
	renews  int
	renewOK bool
}

func (f *fakeClaimer) ClaimNext(_ context.Context, _ string, _ int) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pending) == 0 {
		return nil, services.ErrNoJobsAvailable
	}
	id := f.pending[0]
	f.pending = f.pending[1:]
	return &ent.Job{ID: id, TargetID: "tgt-1"}, nil
}

func (f *fakeClaimer) RenewLease(_ context.Context, _, _ string, _ int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renews++
	return f.renewOK, nil
}

func (f *fakeClaimer) QueueDepth(context.Context) (int, error) { return 0, nil }

type recordingRunner struct {
	mu    sync.Mutex
	ran   []string
	block time.Duration
	done  chan struct{}
	want  int
}

func (r *recordingRunner) Run(ctx context.Context, jobID string) error {
	if r.block > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.block):
		}
	}
	r.mu.Lock()
	r.ran = append(r.ran, jobID)
	finished := len(r.ran) == r.want
	r.mu.Unlock()
	if finished && r.done != nil {
		close(r.done)
	}
	return nil
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 5 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.LeaseRenewInterval = 10 * time.Millisecond
	return cfg
}

func TestWorkerPoolRunsClaimedJobs(t *testing.T) {
	claimer := &fakeClaimer{pending: []string{"job-1", "job-2", "job-3"}, renewOK: true}
	runner := &recordingRunner{want: 3, done: make(chan struct{})}
	pool := NewWorkerPool(testQueueConfig(), "tenant_a", claimer, runner)

	ctx, cancel := context.WithCancel(context.Background())
	poolDone := make(chan struct{})
	go func() {
		_ = pool.Run(ctx)
		close(poolDone)
	}()

	select {
	case <-runner.done:
	case <-time.After(2 * time.Second):
		t.Fatal("jobs were not run in time")
	}
	cancel()
	<-poolDone

	runner.mu.Lock()
	defer runner.mu.Unlock()
	assert.ElementsMatch(t, []string{"job-1", "job-2", "job-3"}, runner.ran)
}

func TestWorkerPoolHeartbeatRenewsLease(t *testing.T) {
	claimer := &fakeClaimer{pending: []string{"job-1"}, renewOK: true}
	runner := &recordingRunner{want: 1, done: make(chan struct{}), block: 50 * time.Millisecond}
	pool := NewWorkerPool(testQueueConfig(), "tenant_a", claimer, runner)

	ctx, cancel := context.WithCancel(context.Background())
	poolDone := make(chan struct{})
	go func() {
		_ = pool.Run(ctx)
		close(poolDone)
	}()

	select {
	case <-runner.done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not finish")
	}
	cancel()
	<-poolDone

	claimer.mu.Lock()
	defer claimer.mu.Unlock()
	assert.Greater(t, claimer.renews, 0, "a long run renews its lease at least once")
}

func TestWorkerPoolLostLeaseCancelsRun(t *testing.T) {
	claimer := &fakeClaimer{pending: []string{"job-1"}, renewOK: false}
	runner := &recordingRunner{block: 5 * time.Second}
	pool := NewWorkerPool(testQueueConfig(), "tenant_a", claimer, runner)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	done := make(chan struct{})
	go func() {
		_ = pool.Run(ctx)
		close(done)
	}()
	<-done

	// the run was aborted by the lost lease, well before its 5s block and
	// without waiting for the outer timeout to expire it mid-flight
	require.Less(t, time.Since(start), 3*time.Second)
	runner.mu.Lock()
	defer runner.mu.Unlock()
	assert.Empty(t, runner.ran, "an aborted run never completes")
}

func TestWorkerPoolOwnerIsStable(t *testing.T) {
	pool := NewWorkerPool(testQueueConfig(), "tenant_a", &fakeClaimer{}, &recordingRunner{})
	assert.NotEmpty(t, pool.Owner())
	assert.Equal(t, pool.Owner(), pool.Owner())
}
