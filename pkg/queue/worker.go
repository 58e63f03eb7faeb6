// Package queue runs the per-tenant job processors: a small pool of workers
// that claim queued jobs through the database, hold their lease with a
// heartbeat, and hand each claim to the sampling loop.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/pkg/config"
	"github.com/legacyuse/orchestrator/pkg/services"
)

// Claimer is the claim/lease surface of services.JobService.
type Claimer interface {
	ClaimNext(ctx context.Context, leaseOwner string, leaseSeconds int) (*ent.Job, error)
	RenewLease(ctx context.Context, jobID, owner string, extraSeconds int) (bool, error)
	QueueDepth(ctx context.Context) (int, error)
}

// Runner executes one claimed job to completion. Implemented by agent.Loop.
type Runner interface {
	Run(ctx context.Context, jobID string) error
}

// WorkerPool processes one tenant's queue.
type WorkerPool struct {
	cfg    *config.QueueConfig
	tenant string
	jobs   Claimer
	runner Runner
	owner  string
	logger *slog.Logger
}

// NewWorkerPool creates a pool for one tenant schema. The lease owner
// identity is unique per pool so replicas never renew each other's leases.
func NewWorkerPool(cfg *config.QueueConfig, tenant string, jobs Claimer, runner Runner) *WorkerPool {
	hostname, _ := os.Hostname()
	owner := fmt.Sprintf("%s-%s", hostname, uuid.NewString()[:8])
	return &WorkerPool{
		cfg:    cfg,
		tenant: tenant,
		jobs:   jobs,
		runner: runner,
		owner:  owner,
		logger: slog.With("tenant", tenant, "lease_owner", owner),
	}
}

// Owner returns the pool's lease owner identity.
func (p *WorkerPool) Owner() string { return p.owner }

// Run starts the workers and blocks until ctx is canceled and all running
// jobs have returned.
func (p *WorkerPool) Run(ctx context.Context) error {
	p.logger.Info("Starting worker pool", "workers", p.cfg.WorkerCount)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < p.cfg.WorkerCount; i++ {
		worker := i
		g.Go(func() error {
			p.workerLoop(ctx, worker)
			return nil
		})
	}
	err := g.Wait()
	p.logger.Info("Worker pool stopped")
	return err
}

// workerLoop claims and runs jobs until the context ends.
func (p *WorkerPool) workerLoop(ctx context.Context, worker int) {
	for {
		if ctx.Err() != nil {
			return
		}

		j, err := p.jobs.ClaimNext(ctx, p.owner, p.cfg.LeaseSeconds)
		switch {
		case errors.Is(err, services.ErrNoJobsAvailable):
			p.sampleDepth(ctx)
			p.sleep(ctx)
			continue
		case err != nil:
			if ctx.Err() == nil {
				p.logger.Warn("Claim failed", "worker", worker, "error", err)
			}
			p.sleep(ctx)
			continue
		}

		claimsTotal.WithLabelValues(p.tenant).Inc()
		p.logger.Info("Claimed job", "worker", worker, "job_id", j.ID, "target_id", j.TargetID)
		p.runJob(ctx, j.ID)
	}
}

// runJob executes one claim under a lease heartbeat. Losing the lease cancels
// the run; the reaper then owns the job's fate.
func (p *WorkerPool) runJob(ctx context.Context, jobID string) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	heartbeatDone := make(chan struct{})
	go func() {
		defer close(heartbeatDone)
		p.heartbeat(runCtx, jobID, cancel)
	}()

	start := time.Now()
	err := p.runner.Run(runCtx, jobID)
	cancel()
	<-heartbeatDone

	jobDuration.WithLabelValues(p.tenant).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
		if ctx.Err() == nil {
			p.logger.Error("Job run failed", "job_id", jobID, "error", err)
		}
	}
	jobsRunTotal.WithLabelValues(p.tenant, outcome).Inc()
}

// heartbeat renews the lease until the run ends, canceling it when ownership
// is lost.
func (p *WorkerPool) heartbeat(ctx context.Context, jobID string, cancel context.CancelFunc) {
	ticker := time.NewTicker(p.cfg.LeaseRenewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			renewed, err := p.jobs.RenewLease(ctx, jobID, p.owner, p.cfg.LeaseSeconds)
			if err != nil {
				if ctx.Err() == nil {
					leaseRenewalFailures.WithLabelValues(p.tenant).Inc()
					p.logger.Warn("Lease renewal failed", "job_id", jobID, "error", err)
				}
				continue
			}
			if !renewed {
				leaseRenewalFailures.WithLabelValues(p.tenant).Inc()
				p.logger.Warn("Lease ownership lost, aborting run", "job_id", jobID)
				cancel()
				return
			}
		}
	}
}

func (p *WorkerPool) sampleDepth(ctx context.Context) {
	if depth, err := p.jobs.QueueDepth(ctx); err == nil {
		queueDepth.WithLabelValues(p.tenant).Set(float64(depth))
	}
}

// sleep waits one poll interval with jitter, returning early on cancel.
func (p *WorkerPool) sleep(ctx context.Context) {
	interval := p.cfg.PollInterval
	if j := p.cfg.PollIntervalJitter; j > 0 {
		interval += time.Duration(rand.Int63n(int64(2*j))) - j
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
