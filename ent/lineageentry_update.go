// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/lineageentry"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// LineageEntryUpdate is the builder for updating LineageEntry entities.
type LineageEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LineageEntryMutation
}

// Where appends a list predicates to the LineageEntryUpdate builder.
func (_u *LineageEntryUpdate) Where(ps ...predicate.LineageEntry) *LineageEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the LineageEntryMutation object of the builder.
func (_u *LineageEntryUpdate) Mutation() *LineageEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LineageEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LineageEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LineageEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LineageEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LineageEntryUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LineageEntry.task"`)
	}
	return nil
}

func (_u *LineageEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineageentry.Table, lineageentry.Columns, sqlgraph.NewFieldSpec(lineageentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(lineageentry.FieldPhase, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(lineageentry.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineageentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LineageEntryUpdateOne is the builder for updating a single LineageEntry entity.
type LineageEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LineageEntryMutation
}

// Mutation returns the LineageEntryMutation object of the builder.
func (_u *LineageEntryUpdateOne) Mutation() *LineageEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the LineageEntryUpdate builder.
func (_u *LineageEntryUpdateOne) Where(ps ...predicate.LineageEntry) *LineageEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LineageEntryUpdateOne) Select(field string, fields ...string) *LineageEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LineageEntry entity.
func (_u *LineageEntryUpdateOne) Save(ctx context.Context) (*LineageEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LineageEntryUpdateOne) SaveX(ctx context.Context) *LineageEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LineageEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LineageEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LineageEntryUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LineageEntry.task"`)
	}
	return nil
}

func (_u *LineageEntryUpdateOne) sqlSave(ctx context.Context) (_node *LineageEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineageentry.Table, lineageentry.Columns, sqlgraph.NewFieldSpec(lineageentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LineageEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lineageentry.FieldID)
		for _, f := range fields {
			if !lineageentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lineageentry.FieldID {
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
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(lineageentry.FieldPhase, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(lineageentry.FieldMetadata, field.TypeJSON)
	}
	_node = &LineageEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineageentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
