package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity: a live sandbox
// container bound to one target. Only state=ready permits job execution.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("target_id").
			Immutable(),
		field.Enum("state").
			Values("initializing", "authenticating", "ready", "destroying", "destroyed").
			Default("initializing"),
		field.String("status").
			Optional().
			Comment("Provisioning outcome: running or error"),
		field.String("container_id").
			Optional().
			Nillable(),
		field.String("container_ip").
			Optional().
			Nillable(),
		field.Bool("is_archived").
			Default(false),
		field.Enum("archive_reason").
			Values("user_initiated", "auto_cleanup").
			Optional().
			Nillable(),
		field.Time("last_job_time").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("target", Target.Type).
			Ref("sessions").
			Field("target_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_id", "state"),
		index.Fields("is_archived", "state"),
	}
}
