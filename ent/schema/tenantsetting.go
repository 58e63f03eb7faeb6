package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TenantSetting holds the schema definition for the TenantSetting entity:
// per-tenant key/value configuration over a closed key set (provider
// credentials, API keys). Missing keys fall through to hard-coded defaults.
type TenantSetting struct {
	ent.Schema
}

// Fields of the TenantSetting.
func (TenantSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			Unique().
			Immutable(),
		field.Text("value").
			Sensitive(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
