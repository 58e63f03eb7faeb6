package services

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/pkg/database"
)

// Error strings stamped on jobs at terminal transitions. Dashboards match on
// these verbatim, so they are constants rather than formatted inline.
const (
	ErrorLeaseExpired      = "Lease expired; worker likely terminated"
	ErrorInterruptedByUser = "Job was interrupted by user"
	ErrorTokenLimit        = "exceeded token limit"
	ErrorNoExtraction      = "Model ended its turn without providing any extractions"
	ErrorUIMismatch        = "UI Mismatch Detected"
	ErrorHealthCheck       = "Target Health Check Failed"
)

// JobService manages the job lifecycle: queueing, lease-based claiming, and
// terminal transitions. Claims go through raw SQL because they combine
// FOR UPDATE SKIP LOCKED with per-(schema, target) advisory locks.
type JobService struct {
	db   *database.Client
	logs *LogService
}

// NewJobService creates a new JobService.
func NewJobService(db *database.Client, logs *LogService) *JobService {
	return &JobService{db: db, logs: logs}
}

// CreateJobRequest contains fields for creating a job.
type CreateJobRequest struct {
	TargetID               string
	APIName                string
	APIDefinitionVersionID string
	Parameters             map[string]any
}

// Enqueue creates a job in queued status and writes the enqueue system log.
func (s *JobService) Enqueue(ctx context.Context, req CreateJobRequest) (*ent.Job, error) {
	if req.TargetID == "" {
		return nil, NewValidationError("target_id", "required")
	}
	if req.APIName == "" {
		return nil, NewValidationError("api_name", "required")
	}

	builder := s.db.Job.Create().
		SetID(uuid.New().String()).
		SetTargetID(req.TargetID).
		SetAPIName(req.APIName).
		SetStatus(job.StatusQueued)
	if req.APIDefinitionVersionID != "" {
		builder.SetAPIDefinitionVersionID(req.APIDefinitionVersionID)
	}
	if req.Parameters != nil {
		builder.SetParameters(req.Parameters)
	}

	j, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("target %s: %w", req.TargetID, ErrNotFound)
		}
		return nil, fmt.Errorf("creating job: %w", err)
	}

	s.logs.System(ctx, j.ID, "Job added to queue")
	return j, nil
}

// Get loads a job by ID.
func (s *JobService) Get(ctx context.Context, id string) (*ent.Job, error) {
	j, err := s.db.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return j, nil
}

// claimSQL selects the oldest claimable queued job. A job is claimable when
// its target has no running job, no blocking (paused or error) job, and at
// least one ready, non-archived session. FOR UPDATE SKIP LOCKED keeps
// concurrent claimers from waiting on each other.
const claimSQL = `
SELECT j.job_id, j.target_id
FROM jobs j
WHERE j.status = 'queued'
  AND NOT EXISTS (
      SELECT 1 FROM jobs b
      WHERE b.target_id = j.target_id
        AND b.status IN ('running', 'paused', 'error')
  )
  AND EXISTS (
      SELECT 1 FROM sessions s
      WHERE s.target_id = j.target_id
        AND s.state = 'ready'
        AND NOT s.is_archived
  )
ORDER BY j.created_at, j.job_id
LIMIT 1
FOR UPDATE OF j SKIP LOCKED`

// ClaimNext atomically claims the next runnable job for this tenant. On
// success the job is running with a lease stamped for leaseSeconds and its
// session_id set to the target's ready session. Returns ErrNoJobsAvailable
// when nothing is claimable.
func (s *JobService) ClaimNext(ctx context.Context, leaseOwner string, leaseSeconds int) (*ent.Job, error) {
	tx, err := s.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var jobID, targetID string
	err = tx.QueryRowContext(ctx, claimSQL).Scan(&jobID, &targetID)
	if errors.Is(err, stdsql.ErrNoRows) {
		return nil, ErrNoJobsAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("selecting claimable job: %w", err)
	}

	// Serialize per (tenant schema, target) across the cluster. Losing the
	// race means another process is claiming for this target right now.
	acquired, err := database.TryAdvisoryXactLock(ctx, tx, database.TargetClaimKey(s.db.Schema(), targetID))
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrNoJobsAvailable
	}

	// Re-check target exclusivity under the advisory lock: a job claimed by
	// another process just before our lock would not show in the first
	// snapshot.
	var running int
	err = tx.QueryRowContext(ctx,
		"SELECT count(*) FROM jobs WHERE target_id = $1 AND status = 'running'",
		targetID,
	).Scan(&running)
	if err != nil {
		return nil, fmt.Errorf("re-checking target exclusivity: %w", err)
	}
	if running > 0 {
		return nil, ErrNoJobsAvailable
	}

	res, err := tx.ExecContext(ctx, `
UPDATE jobs
SET status = 'running',
    lease_owner = $2,
    lease_expires_at = now() + make_interval(secs => $3),
    session_id = (
        SELECT s.session_id FROM sessions s
        WHERE s.target_id = jobs.target_id
          AND s.state = 'ready'
          AND NOT s.is_archived
        ORDER BY s.created_at DESC
        LIMIT 1
    ),
    updated_at = now()
WHERE job_id = $1 AND status = 'queued'`,
		jobID, leaseOwner, leaseSeconds,
	)
	if err != nil {
		return nil, fmt.Errorf("claiming job %s: %w", jobID, err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		return nil, ErrNoJobsAvailable
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}

	return s.Get(ctx, jobID)
}

// RenewLease extends the lease iff the job is still running and owned by
// owner. Returns false without error when ownership was lost.
func (s *JobService) RenewLease(ctx context.Context, jobID, owner string, extraSeconds int) (bool, error) {
	n, err := s.db.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusRunning),
			job.LeaseOwnerEQ(owner),
		).
		SetLeaseExpiresAt(time.Now().Add(time.Duration(extraSeconds) * time.Second)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("renewing lease for job %s: %w", jobID, err)
	}
	return n == 1, nil
}

// ExpireStaleLeases reaps running jobs whose lease has expired (or was never
// stamped), finalizing them as error. Returns the number of jobs reaped.
func (s *JobService) ExpireStaleLeases(ctx context.Context) (int, error) {
	now := time.Now()
	stale, err := s.db.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.Or(
				job.LeaseExpiresAtLTE(now),
				job.LeaseExpiresAtIsNil(),
			),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("querying stale leases: %w", err)
	}

	reaped := 0
	for _, j := range stale {
		err := s.db.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusError).
			SetError(ErrorLeaseExpired).
			ClearLeaseOwner().
			ClearLeaseExpiresAt().
			SetCompletedAt(now).
			Exec(ctx)
		if err != nil {
			return reaped, fmt.Errorf("reaping job %s: %w", j.ID, err)
		}
		s.logs.System(ctx, j.ID, ErrorLeaseExpired)
		reaped++
	}
	return reaped, nil
}

// RequestCancel flags a job for cancellation. The running worker observes the
// flag at the next loop boundary. Fails on terminal jobs.
func (s *JobService) RequestCancel(ctx context.Context, jobID string) error {
	j, err := s.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if isTerminal(j.Status) {
		return ErrTerminal
	}
	return s.db.Job.UpdateOneID(jobID).
		SetCancelRequested(true).
		Exec(ctx)
}

// Cancel transitions a job that has not started (pending or queued) directly
// to canceled.
func (s *JobService) Cancel(ctx context.Context, jobID string) (*ent.Job, error) {
	n, err := s.db.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusIn(job.StatusPending, job.StatusQueued),
		).
		SetStatus(job.StatusCanceled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("canceling job %s: %w", jobID, err)
	}
	if n == 0 {
		if _, getErr := s.Get(ctx, jobID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrNotCancelable
	}
	s.logs.System(ctx, jobID, "Job canceled before execution")
	return s.Get(ctx, jobID)
}

// Resume re-queues a paused or errored job.
func (s *JobService) Resume(ctx context.Context, jobID string) (*ent.Job, error) {
	n, err := s.db.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusIn(job.StatusPaused, job.StatusError),
		).
		SetStatus(job.StatusQueued).
		ClearError().
		ClearErrorDescription().
		ClearCompletedAt().
		SetCancelRequested(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("resuming job %s: %w", jobID, err)
	}
	if n == 0 {
		if _, getErr := s.Get(ctx, jobID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrNotResumable
	}
	s.logs.System(ctx, jobID, "Job resumed and re-queued")
	return s.Get(ctx, jobID)
}

// Resolve marks a paused or errored job as success with an operator-supplied
// result, unblocking the target's queue.
func (s *JobService) Resolve(ctx context.Context, jobID string, result map[string]any) (*ent.Job, error) {
	n, err := s.db.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusIn(job.StatusPaused, job.StatusError),
		).
		SetStatus(job.StatusSuccess).
		SetResult(result).
		ClearError().
		ClearErrorDescription().
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving job %s: %w", jobID, err)
	}
	if n == 0 {
		if _, getErr := s.Get(ctx, jobID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrNotResumable
	}
	s.logs.System(ctx, jobID, "Job resolved by operator")
	return s.Get(ctx, jobID)
}

// TerminalUpdate carries the outcome of a sampling loop run.
type TerminalUpdate struct {
	Status           job.Status
	Result           map[string]any
	Error            string
	ErrorDescription string
	InputTokens      int
	OutputTokens     int
}

// Finish writes a terminal (or paused) outcome: status, result, error,
// completed_at, token totals, and lease cleanup in one update.
func (s *JobService) Finish(ctx context.Context, jobID string, upd TerminalUpdate) error {
	builder := s.db.Job.UpdateOneID(jobID).
		SetStatus(upd.Status).
		SetCompletedAt(time.Now()).
		ClearLeaseOwner().
		ClearLeaseExpiresAt().
		AddTotalInputTokens(upd.InputTokens).
		AddTotalOutputTokens(upd.OutputTokens)
	if upd.Result != nil {
		builder.SetResult(upd.Result)
	}
	if upd.Error != "" {
		builder.SetError(upd.Error)
	}
	if upd.ErrorDescription != "" {
		builder.SetErrorDescription(upd.ErrorDescription)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("finishing job %s: %w", jobID, err)
	}
	s.logs.System(ctx, jobID, fmt.Sprintf("Job finished with status %s", upd.Status))
	return nil
}

// AddUsage accumulates token totals on a running job.
func (s *JobService) AddUsage(ctx context.Context, jobID string, inputTokens, outputTokens int) error {
	return s.db.Job.UpdateOneID(jobID).
		AddTotalInputTokens(inputTokens).
		AddTotalOutputTokens(outputTokens).
		Exec(ctx)
}

// BlockingJobs returns the paused or errored jobs for a target; their
// presence pauses the target's queue. This is the sole source of truth for
// the UI "paused" indicator.
func (s *JobService) BlockingJobs(ctx context.Context, targetID string) ([]*ent.Job, error) {
	jobs, err := s.db.Job.Query().
		Where(
			job.TargetIDEQ(targetID),
			job.StatusIn(job.StatusPaused, job.StatusError),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying blocking jobs: %w", err)
	}
	return jobs, nil
}

// IsTargetQueuePaused reports whether the target has any blocking job.
func (s *JobService) IsTargetQueuePaused(ctx context.Context, targetID string) (bool, error) {
	blocking, err := s.BlockingJobs(ctx, targetID)
	if err != nil {
		return false, err
	}
	return len(blocking) > 0, nil
}

// CancelRequested reads the cancel flag of a job.
func (s *JobService) CancelRequested(ctx context.Context, jobID string) (bool, error) {
	j, err := s.Get(ctx, jobID)
	if err != nil {
		return false, err
	}
	return j.CancelRequested, nil
}

// QueueSnapshot is the diagnostics view of a tenant's queue.
type QueueSnapshot struct {
	Queued  []*ent.Job `json:"queued"`
	Running []*ent.Job `json:"running"`
	Blocked []*ent.Job `json:"blocked"`
}

// Snapshot returns queued, running, and blocking jobs for diagnostics.
func (s *JobService) Snapshot(ctx context.Context) (*QueueSnapshot, error) {
	queued, err := s.db.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying queued jobs: %w", err)
	}
	running, err := s.db.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying running jobs: %w", err)
	}
	blocked, err := s.db.Job.Query().
		Where(job.StatusIn(job.StatusPaused, job.StatusError)).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying blocked jobs: %w", err)
	}
	return &QueueSnapshot{Queued: queued, Running: running, Blocked: blocked}, nil
}

// QueueDepth returns the number of queued jobs.
func (s *JobService) QueueDepth(ctx context.Context) (int, error) {
	return s.db.Job.Query().Where(job.StatusEQ(job.StatusQueued)).Count(ctx)
}

// TargetsNeedingSessions lists targets that have a claimable queued job but
// neither a ready nor an initializing session; the provisioner creates
// sessions for these.
func (s *JobService) TargetsNeedingSessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.DB().QueryContext(ctx, `
SELECT DISTINCT j.target_id
FROM jobs j
WHERE j.status = 'queued'
  AND NOT EXISTS (
      SELECT 1 FROM jobs b
      WHERE b.target_id = j.target_id
        AND b.status IN ('running', 'paused', 'error')
  )
  AND NOT EXISTS (
      SELECT 1 FROM sessions s
      WHERE s.target_id = j.target_id
        AND s.state IN ('initializing', 'authenticating', 'ready')
        AND NOT s.is_archived
  )`)
	if err != nil {
		return nil, fmt.Errorf("querying targets needing sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var targets []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning target id: %w", err)
		}
		targets = append(targets, id)
	}
	return targets, rows.Err()
}

func isTerminal(status job.Status) bool {
	switch status {
	case job.StatusSuccess, job.StatusError, job.StatusCanceled:
		return true
	}
	return false
}
