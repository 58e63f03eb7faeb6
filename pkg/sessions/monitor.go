package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/pkg/config"
	"github.com/legacyuse/orchestrator/pkg/sandbox"
)

// sweepConcurrency bounds parallel container inspections per sweep.
const sweepConcurrency = 4

// SessionLister is the persistence surface the monitor needs. Implemented by
// services.SessionService.
type SessionLister interface {
	ListActive(ctx context.Context) ([]*ent.Session, error)
	SetState(ctx context.Context, id string, state session.State) error
	Archive(ctx context.Context, id string, reason session.ArchiveReason) error
}

// HealthProber probes a session's sandbox facade. Implemented by
// sandbox.FacadeClient.
type HealthProber interface {
	Healthy(ctx context.Context) (bool, string)
}

// ProberFactory builds a prober for a container IP.
type ProberFactory func(containerIP string) HealthProber

// Monitor walks non-archived sessions on an adaptive cadence: initializing
// sessions are probed frequently until ready, ready sessions only often
// enough to catch dead containers and idle timeouts. Runs under the
// maintenance leader lock so only one process sweeps at a time.
type Monitor struct {
	cfg       *config.SessionsConfig
	sessions  SessionLister
	manager   sandbox.Manager
	newProber ProberFactory
	logger    *slog.Logger

	mu        sync.Mutex
	lastCheck map[string]time.Time
}

// NewMonitor creates a session monitor.
func NewMonitor(cfg *config.SessionsConfig, sessions SessionLister, manager sandbox.Manager, newProber ProberFactory) *Monitor {
	return &Monitor{
		cfg:       cfg,
		sessions:  sessions,
		manager:   manager,
		newProber: newProber,
		logger:    slog.With("component", "session-monitor"),
		lastCheck: make(map[string]time.Time),
	}
}

// Run sweeps until the context ends.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := m.Sweep(ctx); err != nil && ctx.Err() == nil {
				m.logger.Error("Session sweep failed", "error", err)
			}
		}
	}
}

// Sweep checks every due session once.
func (m *Monitor) Sweep(ctx context.Context) error {
	sessions, err := m.sessions.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	now := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepConcurrency)
	seen := make(map[string]bool, len(sessions))

	for _, sess := range sessions {
		seen[sess.ID] = true
		if !m.due(sess, now) {
			continue
		}
		sess := sess
		g.Go(func() error {
			m.check(ctx, sess)
			return nil
		})
	}
	err = g.Wait()

	// forget sessions that left the active set
	m.mu.Lock()
	for id := range m.lastCheck {
		if !seen[id] {
			delete(m.lastCheck, id)
		}
	}
	m.mu.Unlock()

	return err
}

// due applies the adaptive cadence.
func (m *Monitor) due(sess *ent.Session, now time.Time) bool {
	interval := m.cfg.ReadyInterval
	if sess.State == session.StateInitializing || sess.State == session.StateAuthenticating {
		interval = m.cfg.InitializingInterval
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	last, ok := m.lastCheck[sess.ID]
	if ok && now.Sub(last) < interval {
		return false
	}
	m.lastCheck[sess.ID] = now
	return true
}

// check inspects one session's container and applies the lifecycle rules.
func (m *Monitor) check(ctx context.Context, sess *ent.Session) {
	if sess.ContainerID == nil || *sess.ContainerID == "" {
		return
	}
	logger := m.logger.With("session_id", sess.ID, "target_id", sess.TargetID)

	status, err := m.manager.Inspect(ctx, *sess.ContainerID)
	if err != nil {
		logger.Warn("Container inspect failed", "error", err)
		return
	}

	if !status.Running {
		if sess.State != session.StateDestroying && sess.State != session.StateDestroyed {
			logger.Info("Container died, archiving session", "exit_code", status.ExitCode)
			if err := m.sessions.Archive(ctx, sess.ID, session.ArchiveReasonAutoCleanup); err != nil {
				logger.Error("Archiving dead session failed", "error", err)
			}
		}
		return
	}

	switch sess.State {
	case session.StateInitializing, session.StateAuthenticating:
		m.promoteIfHealthy(ctx, sess, logger)
	case session.StateReady:
		m.archiveIfIdle(ctx, sess, logger)
	}
}

// promoteIfHealthy moves an initializing session to ready once its facade
// answers the health probe.
func (m *Monitor) promoteIfHealthy(ctx context.Context, sess *ent.Session, logger *slog.Logger) {
	if sess.ContainerIP == nil || *sess.ContainerIP == "" {
		return
	}
	healthy, reason := m.newProber(*sess.ContainerIP).Healthy(ctx)
	if !healthy {
		logger.Debug("Session not ready yet", "reason", reason)
		return
	}
	if err := m.sessions.SetState(ctx, sess.ID, session.StateReady); err != nil {
		logger.Error("Promoting session failed", "error", err)
		return
	}
	logger.Info("Session ready")
}

// archiveIfIdle stops and archives a ready session whose last job is older
// than the idle timeout. Sessions that never ran a job age from creation.
func (m *Monitor) archiveIfIdle(ctx context.Context, sess *ent.Session, logger *slog.Logger) {
	idleSince := sess.CreatedAt
	if sess.LastJobTime != nil {
		idleSince = *sess.LastJobTime
	}
	if time.Since(idleSince) < m.cfg.IdleTimeout {
		return
	}

	logger.Info("Archiving idle session", "idle_since", idleSince)
	if err := m.sessions.Archive(ctx, sess.ID, session.ArchiveReasonAutoCleanup); err != nil {
		logger.Error("Archiving idle session failed", "error", err)
		return
	}
	if err := m.manager.Stop(ctx, *sess.ContainerID); err != nil {
		logger.Warn("Stopping idle container failed", "error", err)
	}
	if err := m.manager.Remove(ctx, *sess.ContainerID); err != nil {
		logger.Warn("Removing idle container failed", "error", err)
	}
}
