// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/decisionrecord"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// DecisionRecordUpdate is the builder for updating DecisionRecord entities.
type DecisionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionRecordMutation
}

// Where appends a list predicates to the DecisionRecordUpdate builder.
func (_u *DecisionRecordUpdate) Where(ps ...predicate.DecisionRecord) *DecisionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DecisionRecordUpdate) SetStatus(v decisionrecord.Status) *DecisionRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DecisionRecordUpdate) SetNillableStatus(v *decisionrecord.Status) *DecisionRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the DecisionRecordMutation object of the builder.
func (_u *DecisionRecordUpdate) Mutation() *DecisionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := decisionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DecisionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionrecord.Table, decisionrecord.Columns, sqlgraph.NewFieldSpec(decisionrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(decisionrecord.FieldInputs, field.TypeJSON)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(decisionrecord.FieldOutputs, field.TypeJSON)
	}
	if _u.mutation.RulesTriggeredCleared() {
		_spec.ClearField(decisionrecord.FieldRulesTriggered, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(decisionrecord.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionRecordUpdateOne is the builder for updating a single DecisionRecord entity.
type DecisionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionRecordMutation
}

// SetStatus sets the "status" field.
func (_u *DecisionRecordUpdateOne) SetStatus(v decisionrecord.Status) *DecisionRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DecisionRecordUpdateOne) SetNillableStatus(v *decisionrecord.Status) *DecisionRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the DecisionRecordMutation object of the builder.
func (_u *DecisionRecordUpdateOne) Mutation() *DecisionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionRecordUpdate builder.
func (_u *DecisionRecordUpdateOne) Where(ps ...predicate.DecisionRecord) *DecisionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionRecordUpdateOne) Select(field string, fields ...string) *DecisionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionRecord entity.
func (_u *DecisionRecordUpdateOne) Save(ctx context.Context) (*DecisionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionRecordUpdateOne) SaveX(ctx context.Context) *DecisionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := decisionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DecisionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionRecordUpdateOne) sqlSave(ctx context.Context) (_node *DecisionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionrecord.Table, decisionrecord.Columns, sqlgraph.NewFieldSpec(decisionrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionrecord.FieldID)
		for _, f := range fields {
			if !decisionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionrecord.FieldID {
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
	if _u.mutation.InputsCleared() {
		_spec.ClearField(decisionrecord.FieldInputs, field.TypeJSON)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(decisionrecord.FieldOutputs, field.TypeJSON)
	}
	if _u.mutation.RulesTriggeredCleared() {
		_spec.ClearField(decisionrecord.FieldRulesTriggered, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(decisionrecord.FieldStatus, field.TypeEnum, value)
	}
	_node = &DecisionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
