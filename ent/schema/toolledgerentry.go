package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolLedgerEntry holds the schema definition for the ToolLedgerEntry
// entity. A subsequent identical tool call in the same task scope replays
// the stored result instead of re-executing.
type ToolLedgerEntry struct {
	ent.Schema
}

// Fields of the ToolLedgerEntry.
func (ToolLedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.String("fingerprint").
			Immutable().
			Comment("Hash of (tool, endpoint, canonical args)"),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Int("exit_code").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ToolLedgerEntry.
func (ToolLedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "fingerprint").
			Unique(),
	}
}
