package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/legacyuse/orchestrator/pkg/models"
)

// APIDefinitionVersion holds the schema definition for one immutable revision
// of an API definition. version_number is monotonic per definition.
type APIDefinitionVersion struct {
	ent.Schema
}

// Fields of the APIDefinitionVersion.
func (APIDefinitionVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable(),
		field.String("api_definition_id").
			Immutable(),
		field.Int("version_number").
			Immutable().
			Comment("Monotonic, >= 1"),
		field.JSON("parameters", []models.APIParameter{}).
			Optional(),
		field.Text("prompt"),
		field.Text("prompt_cleanup").
			Optional(),
		field.JSON("response_example", map[string]any{}).
			Optional(),
		field.Bool("is_active").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the APIDefinitionVersion.
func (APIDefinitionVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("definition", APIDefinition.Type).
			Ref("versions").
			Field("api_definition_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the APIDefinitionVersion.
func (APIDefinitionVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("api_definition_id", "version_number").
			Unique(),
		index.Fields("api_definition_id", "is_active"),
	}
}
