// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/lease"
)

// LeaseCreate is the builder for creating a Lease entity.
type LeaseCreate struct {
	config
	mutation *LeaseMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *LeaseCreate) SetTaskID(v string) *LeaseCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *LeaseCreate) SetWorkerID(v string) *LeaseCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *LeaseCreate) SetAcquiredAt(v time.Time) *LeaseCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableAcquiredAt(v *time.Time) *LeaseCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *LeaseCreate) SetExpiresAt(v time.Time) *LeaseCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *LeaseCreate) SetHeartbeatAt(v time.Time) *LeaseCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableHeartbeatAt(v *time.Time) *LeaseCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *LeaseCreate) SetReleasedAt(v time.Time) *LeaseCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableReleasedAt(v *time.Time) *LeaseCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *LeaseCreate) SetSuccess(v bool) *LeaseCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableSuccess(v *bool) *LeaseCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *LeaseCreate) SetOutput(v map[string]interface{}) *LeaseCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LeaseCreate) SetID(v string) *LeaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LeaseMutation object of the builder.
func (_c *LeaseCreate) Mutation() *LeaseMutation {
	return _c.mutation
}

// Save creates the Lease in the database.
func (_c *LeaseCreate) Save(ctx context.Context) (*Lease, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeaseCreate) SaveX(ctx context.Context) *Lease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeaseCreate) defaults() {
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := lease.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		v := lease.DefaultHeartbeatAt()
		_c.mutation.SetHeartbeatAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeaseCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Lease.task_id"`)}
	}
	if _, ok := _c.mutation.WorkerID(); !ok {
		return &ValidationError{Name: "worker_id", err: errors.New(`ent: missing required field "Lease.worker_id"`)}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "Lease.acquired_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Lease.expires_at"`)}
	}
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		return &ValidationError{Name: "heartbeat_at", err: errors.New(`ent: missing required field "Lease.heartbeat_at"`)}
	}
	return nil
}

func (_c *LeaseCreate) sqlSave(ctx context.Context) (*Lease, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Lease.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeaseCreate) createSpec() (*Lease, *sqlgraph.CreateSpec) {
	var (
		_node = &Lease{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lease.Table, sqlgraph.NewFieldSpec(lease.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(lease.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(lease.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(lease.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(lease.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(lease.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(lease.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(lease.FieldSuccess, field.TypeBool, value)
		_node.Success = &value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(lease.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	return _node, _spec
}

// LeaseCreateBulk is the builder for creating many Lease entities in bulk.
type LeaseCreateBulk struct {
	config
	err      error
	builders []*LeaseCreate
}

// Save creates the Lease entities in the database.
func (_c *LeaseCreateBulk) Save(ctx context.Context) ([]*Lease, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lease, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeaseMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LeaseCreateBulk) SaveX(ctx context.Context) []*Lease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
