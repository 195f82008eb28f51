package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionRecord holds the schema definition for the DecisionRecord
// entity, the immutable hash-sealed governance ledger. Rows are never
// updated after insert except the status flip when a sign-off attaches.
type DecisionRecord struct {
	ent.Schema
}

// Fields of the DecisionRecord.
func (DecisionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.Enum("decision_type").
			Values("NAVIGATION", "COMPARE", "HEALTH", "POLICY").
			Immutable(),
		field.String("seed").
			Immutable().
			Comment("Deterministic replay seed"),
		field.JSON("inputs", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("outputs", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("rules_triggered", []string{}).
			Optional().
			Immutable(),
		field.Enum("final_verdict").
			Values("ALLOW", "WARN", "REQUIRE_SIGNOFF", "BLOCK").
			Immutable(),
		field.Float("confidence").
			Default(1.0).
			Immutable().
			Comment("0..1"),
		field.Enum("status").
			Values("RECORDED", "SIGNED").
			Default("RECORDED"),
		field.String("record_hash").
			Immutable().
			Comment("SHA-256 over canonical JSON of the sealed field set"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DecisionRecord.
func (DecisionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("decision_type", "created_at"),
		index.Fields("final_verdict"),
	}
}
