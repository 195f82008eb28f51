// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/decisionsignoff"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// DecisionSignoffDelete is the builder for deleting a DecisionSignoff entity.
type DecisionSignoffDelete struct {
	config
	hooks    []Hook
	mutation *DecisionSignoffMutation
}

// Where appends a list predicates to the DecisionSignoffDelete builder.
func (_d *DecisionSignoffDelete) Where(ps ...predicate.DecisionSignoff) *DecisionSignoffDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DecisionSignoffDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DecisionSignoffDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DecisionSignoffDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(decisionsignoff.Table, sqlgraph.NewFieldSpec(decisionsignoff.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DecisionSignoffDeleteOne is the builder for deleting a single DecisionSignoff entity.
type DecisionSignoffDeleteOne struct {
	_d *DecisionSignoffDelete
}

// Where appends a list predicates to the DecisionSignoffDelete builder.
func (_d *DecisionSignoffDeleteOne) Where(ps ...predicate.DecisionSignoff) *DecisionSignoffDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DecisionSignoffDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{decisionsignoff.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DecisionSignoffDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
