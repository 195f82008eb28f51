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
	"github.com/codeready-toolchain/warden/ent/toolcall"
)

// ToolCallUpdate is the builder for updating ToolCall entities.
type ToolCallUpdate struct {
	config
	hooks    []Hook
	mutation *ToolCallMutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdate) Where(ps ...predicate.ToolCall) *ToolCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdate) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.task"`)
	}
	return nil
}

func (_u *ToolCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(toolcall.FieldErrorCategory, field.TypeString)
	}
	if _u.mutation.EndpointCleared() {
		_spec.ClearField(toolcall.FieldEndpoint, field.TypeString)
	}
	if _u.mutation.OutputKindCleared() {
		_spec.ClearField(toolcall.FieldOutputKind, field.TypeString)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(toolcall.FieldModelID, field.TypeString)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(toolcall.FieldProvider, field.TypeEnum)
	}
	if _u.mutation.OutputTextCleared() {
		_spec.ClearField(toolcall.FieldOutputText, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolCallUpdateOne is the builder for updating a single ToolCall entity.
type ToolCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolCallMutation
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdateOne) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdateOne) Where(ps ...predicate.ToolCall) *ToolCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolCallUpdateOne) Select(field string, fields ...string) *ToolCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolCall entity.
func (_u *ToolCallUpdateOne) Save(ctx context.Context) (*ToolCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdateOne) SaveX(ctx context.Context) *ToolCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.task"`)
	}
	return nil
}

func (_u *ToolCallUpdateOne) sqlSave(ctx context.Context) (_node *ToolCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolcall.FieldID)
		for _, f := range fields {
			if !toolcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolcall.FieldID {
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
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(toolcall.FieldErrorCategory, field.TypeString)
	}
	if _u.mutation.EndpointCleared() {
		_spec.ClearField(toolcall.FieldEndpoint, field.TypeString)
	}
	if _u.mutation.OutputKindCleared() {
		_spec.ClearField(toolcall.FieldOutputKind, field.TypeString)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(toolcall.FieldModelID, field.TypeString)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(toolcall.FieldProvider, field.TypeEnum)
	}
	if _u.mutation.OutputTextCleared() {
		_spec.ClearField(toolcall.FieldOutputText, field.TypeString)
	}
	_node = &ToolCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
