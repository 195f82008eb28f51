package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// A committed checkpoint is durable; only checkpoints whose evidence
// still verifies are resumable.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("sequence_number").
			Immutable().
			Comment("Dense, monotonically increasing per task"),
		field.String("checkpoint_type").
			Immutable().
			Comment("planning_complete | work_item_complete | iteration_start | ..."),
		field.JSON("snapshot", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("evidence", map[string]interface{}{}).
			Optional().
			Comment("Serialized models.EvidencePack; set at commit"),
		field.String("work_item_id").
			Optional().
			Nillable().
			Immutable(),
		field.Bool("committed").
			Default(false),
		field.Time("verified_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("checkpoints").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "sequence_number").
			Unique(),
		index.Fields("task_id", "checkpoint_type"),
	}
}
