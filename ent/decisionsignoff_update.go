// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/decisionsignoff"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// DecisionSignoffUpdate is the builder for updating DecisionSignoff entities.
type DecisionSignoffUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionSignoffMutation
}

// Where appends a list predicates to the DecisionSignoffUpdate builder.
func (_u *DecisionSignoffUpdate) Where(ps ...predicate.DecisionSignoff) *DecisionSignoffUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the DecisionSignoffMutation object of the builder.
func (_u *DecisionSignoffUpdate) Mutation() *DecisionSignoffMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionSignoffUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionSignoffUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionSignoffUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionSignoffUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DecisionSignoffUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(decisionsignoff.Table, decisionsignoff.Columns, sqlgraph.NewFieldSpec(decisionsignoff.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(decisionsignoff.FieldNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionsignoff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionSignoffUpdateOne is the builder for updating a single DecisionSignoff entity.
type DecisionSignoffUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionSignoffMutation
}

// Mutation returns the DecisionSignoffMutation object of the builder.
func (_u *DecisionSignoffUpdateOne) Mutation() *DecisionSignoffMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionSignoffUpdate builder.
func (_u *DecisionSignoffUpdateOne) Where(ps ...predicate.DecisionSignoff) *DecisionSignoffUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionSignoffUpdateOne) Select(field string, fields ...string) *DecisionSignoffUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionSignoff entity.
func (_u *DecisionSignoffUpdateOne) Save(ctx context.Context) (*DecisionSignoff, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionSignoffUpdateOne) SaveX(ctx context.Context) *DecisionSignoff {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionSignoffUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionSignoffUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DecisionSignoffUpdateOne) sqlSave(ctx context.Context) (_node *DecisionSignoff, err error) {
	_spec := sqlgraph.NewUpdateSpec(decisionsignoff.Table, decisionsignoff.Columns, sqlgraph.NewFieldSpec(decisionsignoff.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionSignoff.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionsignoff.FieldID)
		for _, f := range fields {
			if !decisionsignoff.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionsignoff.FieldID {
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
	if _u.mutation.NoteCleared() {
		_spec.ClearField(decisionsignoff.FieldNote, field.TypeString)
	}
	_node = &DecisionSignoff{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionsignoff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
