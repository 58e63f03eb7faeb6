package api

import (
	"time"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/pkg/database"
)

// JobResponse is the job read model, job row plus computed metrics.
type JobResponse struct {
	ID                     string         `json:"id"`
	TargetID               string         `json:"target_id"`
	SessionID              *string        `json:"session_id,omitempty"`
	APIName                string         `json:"api_name"`
	APIDefinitionVersionID *string        `json:"api_definition_version_id,omitempty"`
	Status                 job.Status     `json:"status"`
	Parameters             map[string]any `json:"parameters,omitempty"`
	Result                 map[string]any `json:"result,omitempty"`
	Error                  *string        `json:"error,omitempty"`
	ErrorDescription       *string        `json:"error_description,omitempty"`
	CancelRequested        bool           `json:"cancel_requested"`
	CreatedAt              time.Time      `json:"created_at"`
	CompletedAt            *time.Time     `json:"completed_at,omitempty"`
	DurationSeconds        *float64       `json:"duration_seconds,omitempty"`
	TokenUsage             TokenUsage     `json:"token_usage"`
}

// TokenUsage carries the accumulated token totals of a job.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// newJobResponse computes duration and token metrics from the persisted row.
// Running jobs report elapsed time so far; queued jobs have no duration yet.
func newJobResponse(j *ent.Job) *JobResponse {
	resp := &JobResponse{
		ID:                     j.ID,
		TargetID:               j.TargetID,
		SessionID:              j.SessionID,
		APIName:                j.APIName,
		APIDefinitionVersionID: j.APIDefinitionVersionID,
		Status:                 j.Status,
		Parameters:             j.Parameters,
		Result:                 j.Result,
		Error:                  j.Error,
		ErrorDescription:       j.ErrorDescription,
		CancelRequested:        j.CancelRequested,
		CreatedAt:              j.CreatedAt,
		CompletedAt:            j.CompletedAt,
		TokenUsage: TokenUsage{
			InputTokens:  j.TotalInputTokens,
			OutputTokens: j.TotalOutputTokens,
			TotalTokens:  j.TotalInputTokens + j.TotalOutputTokens,
		},
	}

	switch {
	case j.CompletedAt != nil:
		d := j.CompletedAt.Sub(j.CreatedAt).Seconds()
		resp.DurationSeconds = &d
	case j.Status == job.StatusRunning:
		d := time.Since(j.CreatedAt).Seconds()
		resp.DurationSeconds = &d
	}
	return resp
}

// TargetResponse decorates a target with its queue indicator.
type TargetResponse struct {
	*ent.Target
	QueuePaused bool `json:"queue_paused"`
}

// JobLogResponse is one log line, trimmed content only.
type JobLogResponse struct {
	ID        string         `json:"id"`
	LogType   string         `json:"log_type"`
	Timestamp time.Time      `json:"timestamp"`
	Content   map[string]any `json:"content"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
}
