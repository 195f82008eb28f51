package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lease holds the schema definition for the Lease entity. A work item
// has at most one active lease; acquisition is compare-and-set and the
// second acquirer fails.
type Lease struct {
	ent.Schema
}

// Fields of the Lease.
func (Lease) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("work_item_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("worker_id"),
		field.Time("acquired_at").
			Default(time.Now),
		field.Time("expires_at"),
		field.Time("heartbeat_at").
			Default(time.Now),
		field.Time("released_at").
			Optional().
			Nillable(),
		field.Bool("success").
			Optional().
			Nillable().
			Comment("Final outcome written at release"),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("Work item output or error detail written at release"),
	}
}

// Indexes of the Lease.
func (Lease) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("worker_id", "expires_at"),
	}
}
