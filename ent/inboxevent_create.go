// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
)

// InboxEventCreate is the builder for creating a InboxEvent entity.
type InboxEventCreate struct {
	config
	mutation *InboxEventMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *InboxEventCreate) SetEventID(v string) *InboxEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *InboxEventCreate) SetTaskID(v string) *InboxEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *InboxEventCreate) SetEventType(v string) *InboxEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *InboxEventCreate) SetSource(v inboxevent.Source) *InboxEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *InboxEventCreate) SetPayload(v map[string]interface{}) *InboxEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *InboxEventCreate) SetReceivedAt(v time.Time) *InboxEventCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *InboxEventCreate) SetNillableReceivedAt(v *time.Time) *InboxEventCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InboxEventCreate) SetStatus(v inboxevent.Status) *InboxEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InboxEventCreate) SetNillableStatus(v *inboxevent.Status) *InboxEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *InboxEventCreate) SetProcessedAt(v time.Time) *InboxEventCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *InboxEventCreate) SetNillableProcessedAt(v *time.Time) *InboxEventCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// Mutation returns the InboxEventMutation object of the builder.
func (_c *InboxEventCreate) Mutation() *InboxEventMutation {
	return _c.mutation
}

// Save creates the InboxEvent in the database.
func (_c *InboxEventCreate) Save(ctx context.Context) (*InboxEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InboxEventCreate) SaveX(ctx context.Context) *InboxEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InboxEventCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := inboxevent.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := inboxevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InboxEventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "InboxEvent.event_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "InboxEvent.task_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "InboxEvent.event_type"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "InboxEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := inboxevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "InboxEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "InboxEvent.received_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InboxEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := inboxevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InboxEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_c *InboxEventCreate) sqlSave(ctx context.Context) (*InboxEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InboxEventCreate) createSpec() (*InboxEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InboxEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inboxevent.Table, sqlgraph.NewFieldSpec(inboxevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(inboxevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(inboxevent.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(inboxevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(inboxevent.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(inboxevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(inboxevent.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(inboxevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(inboxevent.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	return _node, _spec
}

// InboxEventCreateBulk is the builder for creating many InboxEvent entities in bulk.
type InboxEventCreateBulk struct {
	config
	err      error
	builders []*InboxEventCreate
}

// Save creates the InboxEvent entities in the database.
func (_c *InboxEventCreateBulk) Save(ctx context.Context) ([]*InboxEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InboxEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InboxEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InboxEventCreateBulk) SaveX(ctx context.Context) []*InboxEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
