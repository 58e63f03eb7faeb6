// Package maintenance runs the singleton background tasks: stale lease
// expiry, session lifecycle sweeps, and daily log retention pruning. A
// session-level database advisory lock elects one leader across replicas;
// non-leaders hold no lock and start no background work.
package maintenance

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/legacyuse/orchestrator/pkg/config"
	"github.com/legacyuse/orchestrator/pkg/database"
)

// leaderRetryInterval is how often a non-leader retries the advisory lock.
const leaderRetryInterval = 15 * time.Second

// lockPingInterval is how often the leader verifies its lock connection.
const lockPingInterval = 30 * time.Second

var leaderGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "orchestrator_maintenance_leader",
	Help: "1 while this process holds the maintenance leader lock.",
})

// LeaseReaper expires stale job leases. Implemented by services.JobService.
type LeaseReaper interface {
	ExpireStaleLeases(ctx context.Context) (int, error)
}

// LogPruner deletes job logs older than the retention window. Implemented by
// services.LogService.
type LogPruner interface {
	PruneOlderThan(ctx context.Context, retentionDays int) (int, error)
}

// Sweeper performs one sweep pass. Implemented by sessions.Provisioner and
// sessions.Monitor.
type Sweeper interface {
	Sweep(ctx context.Context) error
}

// Tenant bundles one tenant schema's maintenance surfaces.
type Tenant struct {
	Schema      string
	Jobs        LeaseReaper
	Logs        LogPruner
	Provisioner Sweeper
	Sessions    Sweeper
}

// Leader competes for the maintenance lock on the control database and,
// while holding it, drives the per-tenant maintenance loops. The lock is
// session-scoped: it lives exactly as long as the dedicated connection, so a
// crashed leader frees it without cleanup.
type Leader struct {
	cfg     *config.Config
	db      *stdsql.DB
	tenants []Tenant
	logger  *slog.Logger
	now     func() time.Time
}

// NewLeader creates a leader candidate. db must be the control database; the
// tenants carry their own schema-scoped services.
func NewLeader(cfg *config.Config, db *stdsql.DB, tenants []Tenant) *Leader {
	return &Leader{
		cfg:     cfg,
		db:      db,
		tenants: tenants,
		logger:  slog.With("component", "maintenance"),
		now:     time.Now,
	}
}

// Run blocks until ctx ends, re-entering the election whenever leadership is
// not held or has been lost.
func (l *Leader) Run(ctx context.Context) error {
	for {
		if err := l.campaign(ctx); err != nil && ctx.Err() == nil {
			l.logger.Warn("Leader campaign ended", "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(leaderRetryInterval):
		}
	}
}

// campaign attempts the lock once and, on success, leads until ctx ends or
// the lock connection dies.
func (l *Leader) campaign(ctx context.Context) error {
	conn, err := l.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("opening lock connection: %w", err)
	}
	defer conn.Close()

	acquired, err := database.TryAdvisorySessionLock(ctx, conn, database.MaintenanceLockKey)
	if err != nil {
		return err
	}
	if !acquired {
		l.logger.Debug("Maintenance lock held by another process")
		return nil
	}

	l.logger.Info("Acquired maintenance leadership")
	leaderGauge.Set(1)
	defer leaderGauge.Set(0)
	defer l.resign(conn)

	return l.lead(ctx, conn)
}

// resign releases the lock on clean shutdown so the next candidate does not
// wait for the server to notice the connection reset.
func (l *Leader) resign(conn *stdsql.Conn) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := database.ReleaseAdvisorySessionLock(ctx, conn, database.MaintenanceLockKey); err != nil {
		l.logger.Warn("Releasing maintenance lock failed", "error", err)
	}
	l.logger.Info("Released maintenance leadership")
}

// lead runs the maintenance loops until ctx ends or the watchdog reports the
// lock connection dead. conn may be nil in tests; the watchdog is skipped
// then.
func (l *Leader) lead(ctx context.Context, conn *stdsql.Conn) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.reapLoop(ctx) })
	g.Go(func() error { return l.sessionLoop(ctx) })
	g.Go(func() error { return l.pruneLoop(ctx) })
	if conn != nil {
		g.Go(func() error { return l.watchdog(ctx, conn) })
	}
	return g.Wait()
}

// watchdog pings the lock connection. A dead connection drops the advisory
// lock server-side, so leadership must be surrendered the moment it fails.
func (l *Leader) watchdog(ctx context.Context, conn *stdsql.Conn) error {
	ticker := time.NewTicker(lockPingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := conn.PingContext(ctx); err != nil {
				return fmt.Errorf("maintenance lock connection lost: %w", err)
			}
		}
	}
}

// reapLoop returns expired leases to the queue on a fixed cadence.
func (l *Leader) reapLoop(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.Queue.StaleLeaseInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.reapAll(ctx)
		}
	}
}

func (l *Leader) reapAll(ctx context.Context) {
	for _, t := range l.tenants {
		n, err := t.Jobs.ExpireStaleLeases(ctx)
		if err != nil {
			if ctx.Err() == nil {
				l.logger.Error("Expiring stale leases failed", "tenant", t.Schema, "error", err)
			}
			continue
		}
		if n > 0 {
			l.logger.Info("Expired stale leases", "tenant", t.Schema, "count", n)
		}
	}
}

// sessionLoop drives provisioning and session monitoring. Provisioning runs
// first so a session created this tick is probed on the next.
func (l *Leader) sessionLoop(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.Sessions.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.sweepAll(ctx)
		}
	}
}

func (l *Leader) sweepAll(ctx context.Context) {
	for _, t := range l.tenants {
		if err := t.Provisioner.Sweep(ctx); err != nil && ctx.Err() == nil {
			l.logger.Error("Provisioning sweep failed", "tenant", t.Schema, "error", err)
		}
		if err := t.Sessions.Sweep(ctx); err != nil && ctx.Err() == nil {
			l.logger.Error("Session sweep failed", "tenant", t.Schema, "error", err)
		}
	}
}

// pruneLoop fires once a day at the configured UTC hour.
func (l *Leader) pruneLoop(ctx context.Context) error {
	for {
		timer := time.NewTimer(time.Until(nextPruneTime(l.now(), l.cfg.Retention.PruneHourUTC)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			l.pruneAll(ctx)
		}
	}
}

func (l *Leader) pruneAll(ctx context.Context) {
	days := l.cfg.Retention.LogRetentionDays
	for _, t := range l.tenants {
		n, err := t.Logs.PruneOlderThan(ctx, days)
		if err != nil {
			if ctx.Err() == nil {
				l.logger.Error("Pruning job logs failed", "tenant", t.Schema, "error", err)
			}
			continue
		}
		l.logger.Info("Pruned job logs", "tenant", t.Schema, "deleted", n, "retention_days", days)
	}
}

// nextPruneTime returns the next occurrence of hourUTC strictly after now.
func nextPruneTime(now time.Time, hourUTC int) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), hourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
