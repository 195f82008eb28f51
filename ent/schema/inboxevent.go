package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InboxEvent holds the schema definition for the InboxEvent entity,
// the supervisor's persistent inbox. The UNIQUE constraint on event_id
// is the sole deduplication mechanism: a duplicate-key error on insert
// means "already seen".
type InboxEvent struct {
	ent.Schema
}

// Fields of the InboxEvent.
func (InboxEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.Enum("source").
			Values("eventbus", "polling").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the InboxEvent.
func (InboxEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "received_at"),
		index.Fields("task_id", "received_at"),
	}
}
