package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity, one unit of work
// driven by the runner through the lifecycle state machine.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Enum("status").
			Values(
				"created",
				"intent_processing",
				"planning",
				"awaiting_approval",
				"executing",
				"verifying",
				"succeeded",
				"failed",
				"canceled",
				"blocked",
			).
			Default("created"),
		field.Enum("run_mode").
			Values("interactive", "assisted", "autonomous").
			Default("interactive"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Typed views live in pkg/models (pause state, timeout, route plan, work items)"),
		field.String("exit_reason").
			Optional().
			Nillable().
			Comment("Backfilled once; done|blocked|user_cancelled|timeout|fatal_error|max_iterations"),
		field.String("runner_id").
			Optional().
			Nillable().
			Comment("Worker that claimed the task; for single-runner enforcement"),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("audit_entries", AuditEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("lineage_entries", LineageEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_calls", ToolCall.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "heartbeat_at"),
	}
}
