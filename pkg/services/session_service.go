package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/session"
	"github.com/legacyuse/orchestrator/pkg/database"
)

// SessionService manages sandbox session rows. Container lifecycle is owned
// by pkg/sessions; this service only persists state transitions.
type SessionService struct {
	db *database.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *database.Client) *SessionService {
	return &SessionService{db: db}
}

// Create inserts a session in initializing state for a target.
func (s *SessionService) Create(ctx context.Context, targetID string) (*ent.Session, error) {
	if targetID == "" {
		return nil, NewValidationError("target_id", "required")
	}
	sess, err := s.db.Session.Create().
		SetID(uuid.New().String()).
		SetTargetID(targetID).
		SetState(session.StateInitializing).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("target %s: %w", targetID, ErrNotFound)
		}
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sess, nil
}

// Get loads a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (*ent.Session, error) {
	sess, err := s.db.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return sess, nil
}

// ListActive returns all non-archived sessions; the lifecycle monitor
// iterates this set.
func (s *SessionService) ListActive(ctx context.Context) ([]*ent.Session, error) {
	sessions, err := s.db.Session.Query().
		Where(session.IsArchived(false)).
		Order(ent.Asc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active sessions: %w", err)
	}
	return sessions, nil
}

// ReadyForTarget returns the most recent ready session for a target, or
// ErrNotFound.
func (s *SessionService) ReadyForTarget(ctx context.Context, targetID string) (*ent.Session, error) {
	sess, err := s.db.Session.Query().
		Where(
			session.TargetIDEQ(targetID),
			session.StateEQ(session.StateReady),
			session.IsArchived(false),
		).
		Order(ent.Desc(session.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying ready session: %w", err)
	}
	return sess, nil
}

// BindContainer records the launched container on a session and marks the
// provisioning status running.
func (s *SessionService) BindContainer(ctx context.Context, id, containerID, containerIP string) error {
	err := s.db.Session.UpdateOneID(id).
		SetContainerID(containerID).
		SetContainerIP(containerIP).
		SetStatus("running").
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SetState transitions a session's lifecycle state.
func (s *SessionService) SetState(ctx context.Context, id string, state session.State) error {
	err := s.db.Session.UpdateOneID(id).
		SetState(state).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// MarkProvisioningFailed records a failed provisioning attempt.
func (s *SessionService) MarkProvisioningFailed(ctx context.Context, id string) error {
	err := s.db.Session.UpdateOneID(id).
		SetStatus("error").
		SetState(session.StateDestroyed).
		SetIsArchived(true).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// Archive transitions a session to destroyed and flips is_archived with the
// given reason.
func (s *SessionService) Archive(ctx context.Context, id string, reason session.ArchiveReason) error {
	err := s.db.Session.UpdateOneID(id).
		SetState(session.StateDestroyed).
		SetIsArchived(true).
		SetArchiveReason(reason).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// TouchLastJobTime stamps the idle-cleanup clock on a session.
func (s *SessionService) TouchLastJobTime(ctx context.Context, id string) error {
	err := s.db.Session.UpdateOneID(id).
		SetLastJobTime(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}
