// Package sessions owns the sandbox session lifecycle: provisioning
// containers for targets with claimable jobs and monitoring running sessions
// until they are ready, idle, or dead.
package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/pkg/config"
	"github.com/legacyuse/orchestrator/pkg/sandbox"
	"github.com/legacyuse/orchestrator/pkg/services"
)

// SessionWriter is the persistence surface the provisioner needs.
// Implemented by services.SessionService.
type SessionWriter interface {
	Create(ctx context.Context, targetID string) (*ent.Session, error)
	BindContainer(ctx context.Context, id, containerID, containerIP string) error
	MarkProvisioningFailed(ctx context.Context, id string) error
}

// TargetReader loads targets. Implemented by services.TargetService.
type TargetReader interface {
	Get(ctx context.Context, id string) (*ent.Target, error)
}

// PendingTargetSource lists targets that need a session before their queued
// jobs become claimable. Implemented by services.JobService.
type PendingTargetSource interface {
	TargetsNeedingSessions(ctx context.Context) ([]string, error)
}

// Provisioner creates sessions and their containers for targets with queued
// jobs. A process-wide pending set dedupes concurrent provisioning of the
// same target.
type Provisioner struct {
	cfg      *config.SandboxConfig
	manager  sandbox.Manager
	sessions SessionWriter
	targets  TargetReader
	jobs     PendingTargetSource
	logger   *slog.Logger

	mu      sync.Mutex
	pending map[string]bool
}

// NewProvisioner creates a provisioner.
func NewProvisioner(cfg *config.SandboxConfig, manager sandbox.Manager, sessions SessionWriter, targets TargetReader, jobs PendingTargetSource) *Provisioner {
	return &Provisioner{
		cfg:      cfg,
		manager:  manager,
		sessions: sessions,
		targets:  targets,
		jobs:     jobs,
		logger:   slog.With("component", "provisioner"),
		pending:  make(map[string]bool),
	}
}

// Sweep provisions sessions for every target that currently blocks its queue
// on a missing session. Targets already being provisioned are skipped.
func (p *Provisioner) Sweep(ctx context.Context) error {
	targetIDs, err := p.jobs.TargetsNeedingSessions(ctx)
	if err != nil {
		return fmt.Errorf("listing targets needing sessions: %w", err)
	}
	for _, targetID := range targetIDs {
		if err := p.Provision(ctx, targetID); err != nil {
			p.logger.Error("Provisioning failed", "target_id", targetID, "error", err)
		}
	}
	return nil
}

// Provision creates one session for a target: row in initializing, container
// launch, then container binding. A concurrent provision for the same target
// is a no-op.
func (p *Provisioner) Provision(ctx context.Context, targetID string) error {
	if !p.claim(targetID) {
		return nil
	}
	defer p.release(targetID)

	target, err := p.targets.Get(ctx, targetID)
	if err != nil {
		return fmt.Errorf("loading target: %w", err)
	}

	sess, err := p.sessions.Create(ctx, targetID)
	if err != nil {
		return fmt.Errorf("creating session row: %w", err)
	}
	p.logger.Info("Provisioning session", "target_id", targetID, "session_id", sess.ID)

	containerID, err := p.manager.Launch(ctx, LaunchSpecFor(p.cfg, target, sess.ID))
	if err != nil {
		_ = p.sessions.MarkProvisioningFailed(ctx, sess.ID)
		return fmt.Errorf("launching container: %w", err)
	}

	ip, err := p.manager.GetIP(ctx, containerID)
	if err != nil {
		_ = p.manager.Remove(ctx, containerID)
		_ = p.sessions.MarkProvisioningFailed(ctx, sess.ID)
		return fmt.Errorf("resolving container address: %w", err)
	}

	if err := p.sessions.BindContainer(ctx, sess.ID, containerID, ip); err != nil {
		return fmt.Errorf("binding container: %w", err)
	}
	return nil
}

func (p *Provisioner) claim(targetID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending[targetID] {
		return false
	}
	p.pending[targetID] = true
	return true
}

func (p *Provisioner) release(targetID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.pending, targetID)
}

// LaunchSpecFor derives the container launch parameters from a target. The
// type splits into client and VPN halves; OpenVPN targets additionally get
// the TUN device and net capabilities.
func LaunchSpecFor(cfg *config.SandboxConfig, target *ent.Target, sessionID string) sandbox.LaunchSpec {
	clientType, vpnType := services.SplitType(target.Type)

	env := map[string]string{
		"REMOTE_CLIENT_TYPE": clientType,
		"REMOTE_VPN_TYPE":    vpnType,
		"HOST_IP":            target.Host,
		"REMOTE_PASSWORD":    target.Password,
		"WIDTH":              strconv.Itoa(target.Width),
		"HEIGHT":             strconv.Itoa(target.Height),
	}
	if target.Port != nil {
		env["HOST_PORT"] = strconv.Itoa(*target.Port)
	}
	if target.Username != nil {
		env["REMOTE_USERNAME"] = *target.Username
	}
	if target.VpnConfig != nil {
		env["VPN_CONFIG"] = *target.VpnConfig
	}
	if target.VpnUsername != nil {
		env["VPN_USERNAME"] = *target.VpnUsername
	}
	if target.VpnPassword != nil {
		env["VPN_PASSWORD"] = *target.VpnPassword
	}
	if target.RdpParams != nil {
		env["RDP_PARAMS"] = *target.RdpParams
	}

	name := "legacyuse-session-" + sessionID
	if len(sessionID) >= 8 {
		name = "legacyuse-session-" + sessionID[:8]
	}

	return sandbox.LaunchSpec{
		Name:          name,
		Env:           env,
		UseVPNDevices: vpnType == "openvpn",
	}
}
