// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/ent/toolcall"
)

// ToolCallCreate is the builder for creating a ToolCall entity.
type ToolCallCreate struct {
	config
	mutation *ToolCallMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ToolCallCreate) SetTaskID(v string) *ToolCallCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetTool sets the "tool" field.
func (_c *ToolCallCreate) SetTool(v string) *ToolCallCreate {
	_c.mutation.SetTool(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolCallCreate) SetStatus(v toolcall.Status) *ToolCallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorCategory sets the "error_category" field.
func (_c *ToolCallCreate) SetErrorCategory(v string) *ToolCallCreate {
	_c.mutation.SetErrorCategory(v)
	return _c
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableErrorCategory(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetErrorCategory(*v)
	}
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *ToolCallCreate) SetEndpoint(v string) *ToolCallCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableEndpoint(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetEndpoint(*v)
	}
	return _c
}

// SetOutputKind sets the "output_kind" field.
func (_c *ToolCallCreate) SetOutputKind(v string) *ToolCallCreate {
	_c.mutation.SetOutputKind(v)
	return _c
}

// SetNillableOutputKind sets the "output_kind" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableOutputKind(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetOutputKind(*v)
	}
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *ToolCallCreate) SetModelID(v string) *ToolCallCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableModelID(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetModelID(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ToolCallCreate) SetProvider(v toolcall.Provider) *ToolCallCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableProvider(v *toolcall.Provider) *ToolCallCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetMockUsed sets the "mock_used" field.
func (_c *ToolCallCreate) SetMockUsed(v bool) *ToolCallCreate {
	_c.mutation.SetMockUsed(v)
	return _c
}

// SetNillableMockUsed sets the "mock_used" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableMockUsed(v *bool) *ToolCallCreate {
	if v != nil {
		_c.SetMockUsed(*v)
	}
	return _c
}

// SetOutputText sets the "output_text" field.
func (_c *ToolCallCreate) SetOutputText(v string) *ToolCallCreate {
	_c.mutation.SetOutputText(v)
	return _c
}

// SetNillableOutputText sets the "output_text" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableOutputText(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetOutputText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolCallCreate) SetCreatedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableCreatedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolCallCreate) SetID(v string) *ToolCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *ToolCallCreate) SetTask(v *Task) *ToolCallCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the ToolCallMutation object of the builder.
func (_c *ToolCallCreate) Mutation() *ToolCallMutation {
	return _c.mutation
}

// Save creates the ToolCall in the database.
func (_c *ToolCallCreate) Save(ctx context.Context) (*ToolCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolCallCreate) SaveX(ctx context.Context) *ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolCallCreate) defaults() {
	if _, ok := _c.mutation.MockUsed(); !ok {
		v := toolcall.DefaultMockUsed
		_c.mutation.SetMockUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolcall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolCallCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ToolCall.task_id"`)}
	}
	if _, ok := _c.mutation.Tool(); !ok {
		return &ValidationError{Name: "tool", err: errors.New(`ent: missing required field "ToolCall.tool"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolCall.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := toolcall.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ToolCall.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MockUsed(); !ok {
		return &ValidationError{Name: "mock_used", err: errors.New(`ent: missing required field "ToolCall.mock_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolCall.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "ToolCall.task"`)}
	}
	return nil
}

func (_c *ToolCallCreate) sqlSave(ctx context.Context) (*ToolCall, error) {
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
			return nil, fmt.Errorf("unexpected ToolCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolCallCreate) createSpec() (*ToolCall, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolcall.Table, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tool(); ok {
		_spec.SetField(toolcall.FieldTool, field.TypeString, value)
		_node.Tool = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCategory(); ok {
		_spec.SetField(toolcall.FieldErrorCategory, field.TypeString, value)
		_node.ErrorCategory = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(toolcall.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.OutputKind(); ok {
		_spec.SetField(toolcall.FieldOutputKind, field.TypeString, value)
		_node.OutputKind = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(toolcall.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(toolcall.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.MockUsed(); ok {
		_spec.SetField(toolcall.FieldMockUsed, field.TypeBool, value)
		_node.MockUsed = value
	}
	if value, ok := _c.mutation.OutputText(); ok {
		_spec.SetField(toolcall.FieldOutputText, field.TypeString, value)
		_node.OutputText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolcall.TaskTable,
			Columns: []string{toolcall.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ToolCallCreateBulk is the builder for creating many ToolCall entities in bulk.
type ToolCallCreateBulk struct {
	config
	err      error
	builders []*ToolCallCreate
}

// Save creates the ToolCall entities in the database.
func (_c *ToolCallCreateBulk) Save(ctx context.Context) ([]*ToolCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolCallMutation)
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
func (_c *ToolCallCreateBulk) SaveX(ctx context.Context) []*ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
