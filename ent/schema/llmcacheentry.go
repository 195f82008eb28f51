package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LLMCacheEntry holds the schema definition for the LLMCacheEntry entity.
// Best-effort cache of model outputs keyed by a cryptographic hash of
// (operation_type, model, canonical prompt, task scoping salt).
type LLMCacheEntry struct {
	ent.Schema
}

// Fields of the LLMCacheEntry.
func (LLMCacheEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cache_key").
			Unique().
			Immutable(),
		field.String("operation_type").
			Immutable(),
		field.String("model").
			Immutable(),
		field.Text("output").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
