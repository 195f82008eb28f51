package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LineageEntry holds the schema definition for the LineageEntry entity.
// The causal trail: what produced what, per task.
type LineageEntry struct {
	ent.Schema
}

// Fields of the LineageEntry.
func (LineageEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.Enum("kind").
			Values(
				"pipeline",
				"runner_spawn",
				"runner_exit",
				"pause_checkpoint",
				"execution_request",
				"artifact",
				"commit",
				"gate_result",
			).
			Immutable(),
		field.String("ref_id").
			Immutable().
			Comment("Identifier of the produced thing (artifact path, commit sha, run id)"),
		field.String("phase").
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LineageEntry.
func (LineageEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("lineage_entries").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LineageEntry.
func (LineageEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
		index.Fields("kind"),
	}
}
