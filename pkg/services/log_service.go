package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/joblog"
	"github.com/legacyuse/orchestrator/pkg/database"
)

// imageSentinel replaces base64 image payloads in trimmed log content.
const imageSentinel = "<base64 image omitted>"

// base64TrimThreshold is the minimum string length considered an inline
// payload worth trimming. Short strings are never image data.
const base64TrimThreshold = 1024

// LogService appends job logs. Every write stores two copies of the content:
// the full payload and a trimmed one with base64 images replaced by a
// sentinel, which is what dashboards read.
//
// Log writes are best-effort: a failed insert is logged and swallowed so the
// narrative never takes down the job it narrates.
type LogService struct {
	db *database.Client
}

// NewLogService creates a new LogService.
func NewLogService(db *database.Client) *LogService {
	return &LogService{db: db}
}

// Append writes one log row of the given type.
func (s *LogService) Append(ctx context.Context, jobID string, logType joblog.LogType, content map[string]any) {
	_, err := s.db.JobLog.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetLogType(logType).
		SetContent(content).
		SetContentTrimmed(trimContent(content)).
		Save(ctx)
	if err != nil {
		slog.Warn("Failed to append job log",
			"job_id", jobID, "log_type", logType, "error", err)
	}
}

// System writes a system log with a single message line.
func (s *LogService) System(ctx context.Context, jobID, message string) {
	s.Append(ctx, jobID, joblog.LogTypeSystem, map[string]any{"message": message})
}

// Error writes an error log with a single message line.
func (s *LogService) Error(ctx context.Context, jobID, message string) {
	s.Append(ctx, jobID, joblog.LogTypeError, map[string]any{"message": message})
}

// ForJob returns a job's logs ordered by timestamp, trimmed content only.
func (s *LogService) ForJob(ctx context.Context, jobID string) ([]*ent.JobLog, error) {
	logs, err := s.db.JobLog.Query().
		Where(joblog.JobIDEQ(jobID)).
		Order(ent.Asc(joblog.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying job logs: %w", err)
	}
	return logs, nil
}

// PruneOlderThan deletes logs older than the retention window. Returns the
// number of rows removed.
func (s *LogService) PruneOlderThan(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	n, err := s.db.JobLog.Delete().
		Where(joblog.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("pruning job logs: %w", err)
	}
	return n, nil
}

// trimContent walks a JSON-shaped value and replaces long base64 strings
// under image-bearing keys with the sentinel. The original map is not
// modified.
func trimContent(content map[string]any) map[string]any {
	trimmed, _ := trimValue(content).(map[string]any)
	return trimmed
}

func trimValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if isImageKey(k) {
				if s, ok := inner.(string); ok && len(s) >= base64TrimThreshold {
					out[k] = imageSentinel
					continue
				}
			}
			out[k] = trimValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = trimValue(inner)
		}
		return out
	default:
		return v
	}
}

func isImageKey(key string) bool {
	switch key {
	case "base64_image", "data", "image", "screenshot":
		return true
	}
	return false
}
