// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/checkpoint"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *CheckpointUpdate) SetEvidence(v map[string]interface{}) *CheckpointUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *CheckpointUpdate) ClearEvidence() *CheckpointUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetCommitted sets the "committed" field.
func (_u *CheckpointUpdate) SetCommitted(v bool) *CheckpointUpdate {
	_u.mutation.SetCommitted(v)
	return _u
}

// SetNillableCommitted sets the "committed" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableCommitted(v *bool) *CheckpointUpdate {
	if v != nil {
		_u.SetCommitted(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *CheckpointUpdate) SetVerifiedAt(v time.Time) *CheckpointUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableVerifiedAt(v *time.Time) *CheckpointUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *CheckpointUpdate) ClearVerifiedAt() *CheckpointUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.task"`)
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SnapshotCleared() {
		_spec.ClearField(checkpoint.FieldSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(checkpoint.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(checkpoint.FieldEvidence, field.TypeJSON)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(checkpoint.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Committed(); ok {
		_spec.SetField(checkpoint.FieldCommitted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(checkpoint.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(checkpoint.FieldVerifiedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetEvidence sets the "evidence" field.
func (_u *CheckpointUpdateOne) SetEvidence(v map[string]interface{}) *CheckpointUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *CheckpointUpdateOne) ClearEvidence() *CheckpointUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetCommitted sets the "committed" field.
func (_u *CheckpointUpdateOne) SetCommitted(v bool) *CheckpointUpdateOne {
	_u.mutation.SetCommitted(v)
	return _u
}

// SetNillableCommitted sets the "committed" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableCommitted(v *bool) *CheckpointUpdateOne {
	if v != nil {
		_u.SetCommitted(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *CheckpointUpdateOne) SetVerifiedAt(v time.Time) *CheckpointUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableVerifiedAt(v *time.Time) *CheckpointUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *CheckpointUpdateOne) ClearVerifiedAt() *CheckpointUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.task"`)
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
	if _u.mutation.SnapshotCleared() {
		_spec.ClearField(checkpoint.FieldSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(checkpoint.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(checkpoint.FieldEvidence, field.TypeJSON)
	}
	if _u.mutation.WorkItemIDCleared() {
		_spec.ClearField(checkpoint.FieldWorkItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Committed(); ok {
		_spec.SetField(checkpoint.FieldCommitted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(checkpoint.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(checkpoint.FieldVerifiedAt, field.TypeTime)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
