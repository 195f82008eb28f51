package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionSignoff holds the schema definition for the DecisionSignoff
// entity. Sign-offs are separate append-only rows so the sealed decision
// record itself is never rewritten.
type DecisionSignoff struct {
	ent.Schema
}

// Fields of the DecisionSignoff.
func (DecisionSignoff) Fields() []ent.Field {
	return []ent.Field{
		field.String("decision_id").
			Immutable(),
		field.String("signer").
			Immutable(),
		field.String("note").
			Optional().
			Immutable(),
		field.Time("signed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DecisionSignoff.
func (DecisionSignoff) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("decision_id"),
	}
}
