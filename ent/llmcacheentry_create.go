// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/llmcacheentry"
)

// LLMCacheEntryCreate is the builder for creating a LLMCacheEntry entity.
type LLMCacheEntryCreate struct {
	config
	mutation *LLMCacheEntryMutation
	hooks    []Hook
}

// SetOperationType sets the "operation_type" field.
func (_c *LLMCacheEntryCreate) SetOperationType(v string) *LLMCacheEntryCreate {
	_c.mutation.SetOperationType(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMCacheEntryCreate) SetModel(v string) *LLMCacheEntryCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *LLMCacheEntryCreate) SetOutput(v string) *LLMCacheEntryCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMCacheEntryCreate) SetCreatedAt(v time.Time) *LLMCacheEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMCacheEntryCreate) SetNillableCreatedAt(v *time.Time) *LLMCacheEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMCacheEntryCreate) SetID(v string) *LLMCacheEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LLMCacheEntryMutation object of the builder.
func (_c *LLMCacheEntryCreate) Mutation() *LLMCacheEntryMutation {
	return _c.mutation
}

// Save creates the LLMCacheEntry in the database.
func (_c *LLMCacheEntryCreate) Save(ctx context.Context) (*LLMCacheEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMCacheEntryCreate) SaveX(ctx context.Context) *LLMCacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCacheEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCacheEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMCacheEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmcacheentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMCacheEntryCreate) check() error {
	if _, ok := _c.mutation.OperationType(); !ok {
		return &ValidationError{Name: "operation_type", err: errors.New(`ent: missing required field "LLMCacheEntry.operation_type"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMCacheEntry.model"`)}
	}
	if _, ok := _c.mutation.Output(); !ok {
		return &ValidationError{Name: "output", err: errors.New(`ent: missing required field "LLMCacheEntry.output"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMCacheEntry.created_at"`)}
	}
	return nil
}

func (_c *LLMCacheEntryCreate) sqlSave(ctx context.Context) (*LLMCacheEntry, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LLMCacheEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMCacheEntryCreate) createSpec() (*LLMCacheEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMCacheEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmcacheentry.Table, sqlgraph.NewFieldSpec(llmcacheentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OperationType(); ok {
		_spec.SetField(llmcacheentry.FieldOperationType, field.TypeString, value)
		_node.OperationType = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmcacheentry.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(llmcacheentry.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmcacheentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LLMCacheEntryCreateBulk is the builder for creating many LLMCacheEntry entities in bulk.
type LLMCacheEntryCreateBulk struct {
	config
	err      error
	builders []*LLMCacheEntryCreate
}

// Save creates the LLMCacheEntry entities in the database.
func (_c *LLMCacheEntryCreateBulk) Save(ctx context.Context) ([]*LLMCacheEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMCacheEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMCacheEntryMutation)
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
func (_c *LLMCacheEntryCreateBulk) SaveX(ctx context.Context) []*LLMCacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCacheEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCacheEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
