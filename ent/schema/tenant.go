package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tenant holds the schema definition for the Tenant entity. Tenants live in
// the shared control schema; every other entity lives inside exactly one
// tenant's Postgres schema.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tenant_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("host").
			Unique().
			Comment("Request Host header that resolves to this tenant"),
		field.String("schema").
			Unique().
			Comment("Postgres schema holding the tenant's rows"),
		field.Bool("is_active").
			Default(true),
		field.String("clerk_user_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Tenant.
func (Tenant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
