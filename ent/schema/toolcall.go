package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolCall holds the schema definition for the ToolCall entity, the
// audit projection of every adapter invocation. Every persisted call
// carries an error category (on failure) and a normalized endpoint.
// Result text is full-text searchable via an FTS5 table maintained by
// triggers (see pkg/database migrations).
type ToolCall struct {
	ent.Schema
}

// Fields of the ToolCall.
func (ToolCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_run_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("tool").
			Immutable(),
		field.Enum("status").
			Values("success", "partial_success", "failed", "timeout").
			Immutable(),
		field.String("error_category").
			Optional().
			Immutable().
			Comment("config|auth|network|model|schema|runtime; mandatory on failure"),
		field.String("endpoint").
			Optional().
			Immutable().
			Comment("Normalized to scheme://host[:port], no path or query"),
		field.String("output_kind").
			Optional().
			Immutable(),
		field.String("model_id").
			Optional().
			Immutable(),
		field.Enum("provider").
			Values("cloud", "local").
			Optional().
			Immutable(),
		field.Bool("mock_used").
			Default(false).
			Immutable(),
		field.Text("output_text").
			Optional().
			Immutable().
			Comment("Diff or analysis text (full-text searchable)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToolCall.
func (ToolCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("tool_calls").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolCall.
func (ToolCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
		index.Fields("status"),
	}
}
