// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/llmcacheentry"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// LLMCacheEntryUpdate is the builder for updating LLMCacheEntry entities.
type LLMCacheEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LLMCacheEntryMutation
}

// Where appends a list predicates to the LLMCacheEntryUpdate builder.
func (_u *LLMCacheEntryUpdate) Where(ps ...predicate.LLMCacheEntry) *LLMCacheEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the LLMCacheEntryMutation object of the builder.
func (_u *LLMCacheEntryUpdate) Mutation() *LLMCacheEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMCacheEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMCacheEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMCacheEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMCacheEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMCacheEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmcacheentry.Table, llmcacheentry.Columns, sqlgraph.NewFieldSpec(llmcacheentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMCacheEntryUpdateOne is the builder for updating a single LLMCacheEntry entity.
type LLMCacheEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMCacheEntryMutation
}

// Mutation returns the LLMCacheEntryMutation object of the builder.
func (_u *LLMCacheEntryUpdateOne) Mutation() *LLMCacheEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMCacheEntryUpdate builder.
func (_u *LLMCacheEntryUpdateOne) Where(ps ...predicate.LLMCacheEntry) *LLMCacheEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMCacheEntryUpdateOne) Select(field string, fields ...string) *LLMCacheEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMCacheEntry entity.
func (_u *LLMCacheEntryUpdateOne) Save(ctx context.Context) (*LLMCacheEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMCacheEntryUpdateOne) SaveX(ctx context.Context) *LLMCacheEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMCacheEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMCacheEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMCacheEntryUpdateOne) sqlSave(ctx context.Context) (_node *LLMCacheEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmcacheentry.Table, llmcacheentry.Columns, sqlgraph.NewFieldSpec(llmcacheentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMCacheEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmcacheentry.FieldID)
		for _, f := range fields {
			if !llmcacheentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmcacheentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &LLMCacheEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
