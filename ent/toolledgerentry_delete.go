// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/toolledgerentry"
)

// ToolLedgerEntryDelete is the builder for deleting a ToolLedgerEntry entity.
type ToolLedgerEntryDelete struct {
	config
	hooks    []Hook
	mutation *ToolLedgerEntryMutation
}

// Where appends a list predicates to the ToolLedgerEntryDelete builder.
func (_d *ToolLedgerEntryDelete) Where(ps ...predicate.ToolLedgerEntry) *ToolLedgerEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ToolLedgerEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ToolLedgerEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ToolLedgerEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(toolledgerentry.Table, sqlgraph.NewFieldSpec(toolledgerentry.FieldID, field.TypeInt))
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

// ToolLedgerEntryDeleteOne is the builder for deleting a single ToolLedgerEntry entity.
type ToolLedgerEntryDeleteOne struct {
	_d *ToolLedgerEntryDelete
}

// Where appends a list predicates to the ToolLedgerEntryDelete builder.
func (_d *ToolLedgerEntryDeleteOne) Where(ps ...predicate.ToolLedgerEntry) *ToolLedgerEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ToolLedgerEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{toolledgerentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ToolLedgerEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
