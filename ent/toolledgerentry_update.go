// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/toolledgerentry"
)

// ToolLedgerEntryUpdate is the builder for updating ToolLedgerEntry entities.
type ToolLedgerEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ToolLedgerEntryMutation
}

// Where appends a list predicates to the ToolLedgerEntryUpdate builder.
func (_u *ToolLedgerEntryUpdate) Where(ps ...predicate.ToolLedgerEntry) *ToolLedgerEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ToolLedgerEntryMutation object of the builder.
func (_u *ToolLedgerEntryUpdate) Mutation() *ToolLedgerEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolLedgerEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolLedgerEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolLedgerEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolLedgerEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ToolLedgerEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolledgerentry.Table, toolledgerentry.Columns, sqlgraph.NewFieldSpec(toolledgerentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolledgerentry.FieldResult, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolLedgerEntryUpdateOne is the builder for updating a single ToolLedgerEntry entity.
type ToolLedgerEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolLedgerEntryMutation
}

// Mutation returns the ToolLedgerEntryMutation object of the builder.
func (_u *ToolLedgerEntryUpdateOne) Mutation() *ToolLedgerEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolLedgerEntryUpdate builder.
func (_u *ToolLedgerEntryUpdateOne) Where(ps ...predicate.ToolLedgerEntry) *ToolLedgerEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolLedgerEntryUpdateOne) Select(field string, fields ...string) *ToolLedgerEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolLedgerEntry entity.
func (_u *ToolLedgerEntryUpdateOne) Save(ctx context.Context) (*ToolLedgerEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolLedgerEntryUpdateOne) SaveX(ctx context.Context) *ToolLedgerEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolLedgerEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolLedgerEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ToolLedgerEntryUpdateOne) sqlSave(ctx context.Context) (_node *ToolLedgerEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolledgerentry.Table, toolledgerentry.Columns, sqlgraph.NewFieldSpec(toolledgerentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolLedgerEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolledgerentry.FieldID)
		for _, f := range fields {
			if !toolledgerentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolledgerentry.FieldID {
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
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolledgerentry.FieldResult, field.TypeJSON)
	}
	_node = &ToolLedgerEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
