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
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// InboxEventUpdate is the builder for updating InboxEvent entities.
type InboxEventUpdate struct {
	config
	hooks    []Hook
	mutation *InboxEventMutation
}

// Where appends a list predicates to the InboxEventUpdate builder.
func (_u *InboxEventUpdate) Where(ps ...predicate.InboxEvent) *InboxEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InboxEventUpdate) SetStatus(v inboxevent.Status) *InboxEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboxEventUpdate) SetNillableStatus(v *inboxevent.Status) *InboxEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *InboxEventUpdate) SetProcessedAt(v time.Time) *InboxEventUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *InboxEventUpdate) SetNillableProcessedAt(v *time.Time) *InboxEventUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *InboxEventUpdate) ClearProcessedAt() *InboxEventUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the InboxEventMutation object of the builder.
func (_u *InboxEventUpdate) Mutation() *InboxEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InboxEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InboxEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboxEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := inboxevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InboxEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InboxEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboxevent.Table, inboxevent.Columns, sqlgraph.NewFieldSpec(inboxevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(inboxevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboxevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(inboxevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(inboxevent.FieldProcessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InboxEventUpdateOne is the builder for updating a single InboxEvent entity.
type InboxEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InboxEventMutation
}

// SetStatus sets the "status" field.
func (_u *InboxEventUpdateOne) SetStatus(v inboxevent.Status) *InboxEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboxEventUpdateOne) SetNillableStatus(v *inboxevent.Status) *InboxEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *InboxEventUpdateOne) SetProcessedAt(v time.Time) *InboxEventUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *InboxEventUpdateOne) SetNillableProcessedAt(v *time.Time) *InboxEventUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *InboxEventUpdateOne) ClearProcessedAt() *InboxEventUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the InboxEventMutation object of the builder.
func (_u *InboxEventUpdateOne) Mutation() *InboxEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InboxEventUpdate builder.
func (_u *InboxEventUpdateOne) Where(ps ...predicate.InboxEvent) *InboxEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InboxEventUpdateOne) Select(field string, fields ...string) *InboxEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InboxEvent entity.
func (_u *InboxEventUpdateOne) Save(ctx context.Context) (*InboxEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxEventUpdateOne) SaveX(ctx context.Context) *InboxEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InboxEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboxEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := inboxevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InboxEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InboxEventUpdateOne) sqlSave(ctx context.Context) (_node *InboxEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboxevent.Table, inboxevent.Columns, sqlgraph.NewFieldSpec(inboxevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InboxEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inboxevent.FieldID)
		for _, f := range fields {
			if !inboxevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inboxevent.FieldID {
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
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(inboxevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboxevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(inboxevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(inboxevent.FieldProcessedAt, field.TypeTime)
	}
	_node = &InboxEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
