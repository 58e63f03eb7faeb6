package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/legacyuse/orchestrator/pkg/models"
)

// JobMessage holds the schema definition for the JobMessage entity: the
// canonical conversation history of a job. Sequences are 1-based and dense;
// this table is the source of truth when the sampling loop resumes a job.
type JobMessage struct {
	ent.Schema
}

// Fields of the JobMessage.
func (JobMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("1-based, dense per job"),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.JSON("message_content", []models.ContentBlock{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the JobMessage.
func (JobMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("messages").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobMessage.
func (JobMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "sequence").
			Unique(),
	}
}
