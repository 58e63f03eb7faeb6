package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/jobmessage"
	"github.com/legacyuse/orchestrator/pkg/database"
	"github.com/legacyuse/orchestrator/pkg/models"
)

// MessageService manages the canonical conversation history of jobs.
// Sequences are 1-based and dense per job; assignment happens inside a
// transaction so concurrent appends cannot produce gaps or duplicates.
type MessageService struct {
	db *database.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(db *database.Client) *MessageService {
	return &MessageService{db: db}
}

// Append persists a message with the next sequence number for the job.
func (s *MessageService) Append(ctx context.Context, jobID, role string, content []models.ContentBlock) (*ent.JobMessage, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if role != models.RoleUser && role != models.RoleAssistant {
		return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	last, err := tx.JobMessage.Query().
		Where(jobmessage.JobIDEQ(jobID)).
		Order(ent.Desc(jobmessage.FieldSequence)).
		First(ctx)
	switch {
	case err == nil:
		next = last.Sequence + 1
	case ent.IsNotFound(err):
		next = 1
	default:
		return nil, fmt.Errorf("querying last sequence: %w", err)
	}

	msg, err := tx.JobMessage.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetSequence(next).
		SetRole(jobmessage.Role(role)).
		SetMessageContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing message: %w", err)
	}
	return msg, nil
}

// History returns the full conversation of a job ordered by sequence.
func (s *MessageService) History(ctx context.Context, jobID string) ([]models.Message, error) {
	rows, err := s.db.JobMessage.Query().
		Where(jobmessage.JobIDEQ(jobID)).
		Order(ent.Asc(jobmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying message history: %w", err)
	}

	history := make([]models.Message, len(rows))
	for i, row := range rows {
		history[i] = models.Message{
			Role:    string(row.Role),
			Content: row.MessageContent,
		}
	}
	return history, nil
}

// Count returns the number of persisted messages for a job.
func (s *MessageService) Count(ctx context.Context, jobID string) (int, error) {
	return s.db.JobMessage.Query().
		Where(jobmessage.JobIDEQ(jobID)).
		Count(ctx)
}
