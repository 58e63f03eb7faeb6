package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIDefinition holds the schema definition for the APIDefinition entity: a
// named, parameterized natural-language workflow. Versioned via
// APIDefinitionVersion; at most one version is active at a time.
type APIDefinition struct {
	ent.Schema
}

// Fields of the APIDefinition.
func (APIDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("api_definition_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Text("description").
			Optional(),
		field.Bool("is_archived").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the APIDefinition.
func (APIDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", APIDefinitionVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the APIDefinition.
func (APIDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_archived"),
	}
}
