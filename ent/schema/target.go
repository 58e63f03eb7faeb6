package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Target holds the schema definition for the Target entity: the immutable
// identity of a remote system to automate. The type field determines the
// sandbox image parameters (client protocol, optional VPN overlay).
type Target struct {
	ent.Schema
}

// Fields of the Target.
func (Target) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("target_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("type").
			Comment("Client type, optionally with VPN overlay: vnc, rdp, teamviewer, vnc+tailscale, rdp+openvpn, ..."),
		field.String("host"),
		field.Int("port").
			Optional().
			Nillable(),
		field.String("username").
			Optional().
			Nillable(),
		field.String("password").
			Sensitive(),
		field.Text("vpn_config").
			Optional().
			Nillable(),
		field.String("vpn_username").
			Optional().
			Nillable(),
		field.String("vpn_password").
			Optional().
			Nillable().
			Sensitive(),
		field.Int("width").
			Default(1024),
		field.Int("height").
			Default(768),
		field.String("rdp_params").
			Optional().
			Nillable(),
		field.Bool("is_archived").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Target.
func (Target) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("jobs", Job.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Target.
func (Target) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_archived"),
	}
}
