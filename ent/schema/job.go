package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity: one execution of a
// named API against a target. Terminal states are success, error, canceled.
// lease_owner and lease_expires_at are set iff status=running.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("target_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable(),
		field.String("api_name"),
		field.String("api_definition_version_id").
			Optional().
			Nillable(),
		field.JSON("parameters", map[string]any{}).
			Optional(),
		field.Enum("status").
			Values("pending", "queued", "running", "paused", "success", "error", "canceled").
			Default("queued"),
		field.JSON("result", map[string]any{}).
			Optional(),
		field.Text("error").
			Optional().
			Nillable(),
		field.Text("error_description").
			Optional().
			Nillable().
			Comment("Human-readable detail for blocking errors (health probe body, tool reasoning)"),
		field.Int("total_input_tokens").
			Default(0),
		field.Int("total_output_tokens").
			Default(0),
		field.String("lease_owner").
			Optional().
			Nillable(),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.Bool("cancel_requested").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("target", Target.Type).
			Ref("jobs").
			Field("target_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", JobMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("logs", JobLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("target_id", "status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "lease_expires_at"),
	}
}
