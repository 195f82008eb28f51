// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/toolledgerentry"
)

// ToolLedgerEntryCreate is the builder for creating a ToolLedgerEntry entity.
type ToolLedgerEntryCreate struct {
	config
	mutation *ToolLedgerEntryMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ToolLedgerEntryCreate) SetTaskID(v string) *ToolLedgerEntryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *ToolLedgerEntryCreate) SetFingerprint(v string) *ToolLedgerEntryCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ToolLedgerEntryCreate) SetResult(v map[string]interface{}) *ToolLedgerEntryCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *ToolLedgerEntryCreate) SetExitCode(v int) *ToolLedgerEntryCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_c *ToolLedgerEntryCreate) SetNillableExitCode(v *int) *ToolLedgerEntryCreate {
	if v != nil {
		_c.SetExitCode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolLedgerEntryCreate) SetCreatedAt(v time.Time) *ToolLedgerEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolLedgerEntryCreate) SetNillableCreatedAt(v *time.Time) *ToolLedgerEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ToolLedgerEntryMutation object of the builder.
func (_c *ToolLedgerEntryCreate) Mutation() *ToolLedgerEntryMutation {
	return _c.mutation
}

// Save creates the ToolLedgerEntry in the database.
func (_c *ToolLedgerEntryCreate) Save(ctx context.Context) (*ToolLedgerEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolLedgerEntryCreate) SaveX(ctx context.Context) *ToolLedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolLedgerEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolLedgerEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolLedgerEntryCreate) defaults() {
	if _, ok := _c.mutation.ExitCode(); !ok {
		v := toolledgerentry.DefaultExitCode
		_c.mutation.SetExitCode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolledgerentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolLedgerEntryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ToolLedgerEntry.task_id"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "ToolLedgerEntry.fingerprint"`)}
	}
	if _, ok := _c.mutation.ExitCode(); !ok {
		return &ValidationError{Name: "exit_code", err: errors.New(`ent: missing required field "ToolLedgerEntry.exit_code"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolLedgerEntry.created_at"`)}
	}
	return nil
}

func (_c *ToolLedgerEntryCreate) sqlSave(ctx context.Context) (*ToolLedgerEntry, error) {
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

func (_c *ToolLedgerEntryCreate) createSpec() (*ToolLedgerEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolLedgerEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolledgerentry.Table, sqlgraph.NewFieldSpec(toolledgerentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(toolledgerentry.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(toolledgerentry.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(toolledgerentry.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(toolledgerentry.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolledgerentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ToolLedgerEntryCreateBulk is the builder for creating many ToolLedgerEntry entities in bulk.
type ToolLedgerEntryCreateBulk struct {
	config
	err      error
	builders []*ToolLedgerEntryCreate
}

// Save creates the ToolLedgerEntry entities in the database.
func (_c *ToolLedgerEntryCreateBulk) Save(ctx context.Context) ([]*ToolLedgerEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolLedgerEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolLedgerEntryMutation)
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
func (_c *ToolLedgerEntryCreateBulk) SaveX(ctx context.Context) []*ToolLedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolLedgerEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolLedgerEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
