package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobLog holds the schema definition for the JobLog entity: the human-readable
// narrative of a job run. content_trimmed mirrors content with base64 image
// payloads replaced by a sentinel; dashboards read the trimmed column.
type JobLog struct {
	ent.Schema
}

// Fields of the JobLog.
func (JobLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.Enum("log_type").
			Values("system", "http_exchange", "tool_use", "message", "result", "error").
			Immutable(),
		field.JSON("content", map[string]any{}),
		field.JSON("content_trimmed", map[string]any{}),
	}
}

// Edges of the JobLog.
func (JobLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("logs").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobLog.
func (JobLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "timestamp"),
		index.Fields("log_type"),
		index.Fields("timestamp"),
	}
}
