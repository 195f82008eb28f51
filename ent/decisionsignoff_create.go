// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/decisionsignoff"
)

// DecisionSignoffCreate is the builder for creating a DecisionSignoff entity.
type DecisionSignoffCreate struct {
	config
	mutation *DecisionSignoffMutation
	hooks    []Hook
}

// SetDecisionID sets the "decision_id" field.
func (_c *DecisionSignoffCreate) SetDecisionID(v string) *DecisionSignoffCreate {
	_c.mutation.SetDecisionID(v)
	return _c
}

// SetSigner sets the "signer" field.
func (_c *DecisionSignoffCreate) SetSigner(v string) *DecisionSignoffCreate {
	_c.mutation.SetSigner(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *DecisionSignoffCreate) SetNote(v string) *DecisionSignoffCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *DecisionSignoffCreate) SetNillableNote(v *string) *DecisionSignoffCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetSignedAt sets the "signed_at" field.
func (_c *DecisionSignoffCreate) SetSignedAt(v time.Time) *DecisionSignoffCreate {
	_c.mutation.SetSignedAt(v)
	return _c
}

// SetNillableSignedAt sets the "signed_at" field if the given value is not nil.
func (_c *DecisionSignoffCreate) SetNillableSignedAt(v *time.Time) *DecisionSignoffCreate {
	if v != nil {
		_c.SetSignedAt(*v)
	}
	return _c
}

// Mutation returns the DecisionSignoffMutation object of the builder.
func (_c *DecisionSignoffCreate) Mutation() *DecisionSignoffMutation {
	return _c.mutation
}

// Save creates the DecisionSignoff in the database.
func (_c *DecisionSignoffCreate) Save(ctx context.Context) (*DecisionSignoff, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionSignoffCreate) SaveX(ctx context.Context) *DecisionSignoff {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionSignoffCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionSignoffCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionSignoffCreate) defaults() {
	if _, ok := _c.mutation.SignedAt(); !ok {
		v := decisionsignoff.DefaultSignedAt()
		_c.mutation.SetSignedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionSignoffCreate) check() error {
	if _, ok := _c.mutation.DecisionID(); !ok {
		return &ValidationError{Name: "decision_id", err: errors.New(`ent: missing required field "DecisionSignoff.decision_id"`)}
	}
	if _, ok := _c.mutation.Signer(); !ok {
		return &ValidationError{Name: "signer", err: errors.New(`ent: missing required field "DecisionSignoff.signer"`)}
	}
	if _, ok := _c.mutation.SignedAt(); !ok {
		return &ValidationError{Name: "signed_at", err: errors.New(`ent: missing required field "DecisionSignoff.signed_at"`)}
	}
	return nil
}

func (_c *DecisionSignoffCreate) sqlSave(ctx context.Context) (*DecisionSignoff, error) {
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

func (_c *DecisionSignoffCreate) createSpec() (*DecisionSignoff, *sqlgraph.CreateSpec) {
	var (
		_node = &DecisionSignoff{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decisionsignoff.Table, sqlgraph.NewFieldSpec(decisionsignoff.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DecisionID(); ok {
		_spec.SetField(decisionsignoff.FieldDecisionID, field.TypeString, value)
		_node.DecisionID = value
	}
	if value, ok := _c.mutation.Signer(); ok {
		_spec.SetField(decisionsignoff.FieldSigner, field.TypeString, value)
		_node.Signer = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(decisionsignoff.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.SignedAt(); ok {
		_spec.SetField(decisionsignoff.FieldSignedAt, field.TypeTime, value)
		_node.SignedAt = value
	}
	return _node, _spec
}

// DecisionSignoffCreateBulk is the builder for creating many DecisionSignoff entities in bulk.
type DecisionSignoffCreateBulk struct {
	config
	err      error
	builders []*DecisionSignoffCreate
}

// Save creates the DecisionSignoff entities in the database.
func (_c *DecisionSignoffCreateBulk) Save(ctx context.Context) ([]*DecisionSignoff, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DecisionSignoff, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionSignoffMutation)
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
func (_c *DecisionSignoffCreateBulk) SaveX(ctx context.Context) []*DecisionSignoff {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionSignoffCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionSignoffCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
