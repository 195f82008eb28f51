// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/llmcacheentry"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// LLMCacheEntryDelete is the builder for deleting a LLMCacheEntry entity.
type LLMCacheEntryDelete struct {
	config
	hooks    []Hook
	mutation *LLMCacheEntryMutation
}

// Where appends a list predicates to the LLMCacheEntryDelete builder.
func (_d *LLMCacheEntryDelete) Where(ps ...predicate.LLMCacheEntry) *LLMCacheEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LLMCacheEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMCacheEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LLMCacheEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(llmcacheentry.Table, sqlgraph.NewFieldSpec(llmcacheentry.FieldID, field.TypeString))
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

// LLMCacheEntryDeleteOne is the builder for deleting a single LLMCacheEntry entity.
type LLMCacheEntryDeleteOne struct {
	_d *LLMCacheEntryDelete
}

// Where appends a list predicates to the LLMCacheEntryDelete builder.
func (_d *LLMCacheEntryDeleteOne) Where(ps ...predicate.LLMCacheEntry) *LLMCacheEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LLMCacheEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{llmcacheentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMCacheEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
