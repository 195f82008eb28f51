// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/lineageentry"
	"github.com/codeready-toolchain/warden/ent/task"
)

// LineageEntryCreate is the builder for creating a LineageEntry entity.
type LineageEntryCreate struct {
	config
	mutation *LineageEntryMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *LineageEntryCreate) SetTaskID(v string) *LineageEntryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *LineageEntryCreate) SetKind(v lineageentry.Kind) *LineageEntryCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetRefID sets the "ref_id" field.
func (_c *LineageEntryCreate) SetRefID(v string) *LineageEntryCreate {
	_c.mutation.SetRefID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *LineageEntryCreate) SetPhase(v string) *LineageEntryCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *LineageEntryCreate) SetNillablePhase(v *string) *LineageEntryCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *LineageEntryCreate) SetMetadata(v map[string]interface{}) *LineageEntryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LineageEntryCreate) SetCreatedAt(v time.Time) *LineageEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LineageEntryCreate) SetNillableCreatedAt(v *time.Time) *LineageEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *LineageEntryCreate) SetTask(v *Task) *LineageEntryCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the LineageEntryMutation object of the builder.
func (_c *LineageEntryCreate) Mutation() *LineageEntryMutation {
	return _c.mutation
}

// Save creates the LineageEntry in the database.
func (_c *LineageEntryCreate) Save(ctx context.Context) (*LineageEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LineageEntryCreate) SaveX(ctx context.Context) *LineageEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LineageEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LineageEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LineageEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lineageentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LineageEntryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "LineageEntry.task_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "LineageEntry.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := lineageentry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LineageEntry.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RefID(); !ok {
		return &ValidationError{Name: "ref_id", err: errors.New(`ent: missing required field "LineageEntry.ref_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LineageEntry.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "LineageEntry.task"`)}
	}
	return nil
}

func (_c *LineageEntryCreate) sqlSave(ctx context.Context) (*LineageEntry, error) {
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

func (_c *LineageEntryCreate) createSpec() (*LineageEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LineageEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lineageentry.Table, sqlgraph.NewFieldSpec(lineageentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(lineageentry.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.RefID(); ok {
		_spec.SetField(lineageentry.FieldRefID, field.TypeString, value)
		_node.RefID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(lineageentry.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(lineageentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lineageentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineageentry.TaskTable,
			Columns: []string{lineageentry.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LineageEntryCreateBulk is the builder for creating many LineageEntry entities in bulk.
type LineageEntryCreateBulk struct {
	config
	err      error
	builders []*LineageEntryCreate
}

// Save creates the LineageEntry entities in the database.
func (_c *LineageEntryCreateBulk) Save(ctx context.Context) ([]*LineageEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LineageEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LineageEntryMutation)
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
func (_c *LineageEntryCreateBulk) SaveX(ctx context.Context) []*LineageEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LineageEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LineageEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
