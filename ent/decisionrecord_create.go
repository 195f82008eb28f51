// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/decisionrecord"
)

// DecisionRecordCreate is the builder for creating a DecisionRecord entity.
type DecisionRecordCreate struct {
	config
	mutation *DecisionRecordMutation
	hooks    []Hook
}

// SetDecisionType sets the "decision_type" field.
func (_c *DecisionRecordCreate) SetDecisionType(v decisionrecord.DecisionType) *DecisionRecordCreate {
	_c.mutation.SetDecisionType(v)
	return _c
}

// SetSeed sets the "seed" field.
func (_c *DecisionRecordCreate) SetSeed(v string) *DecisionRecordCreate {
	_c.mutation.SetSeed(v)
	return _c
}

// SetInputs sets the "inputs" field.
func (_c *DecisionRecordCreate) SetInputs(v map[string]interface{}) *DecisionRecordCreate {
	_c.mutation.SetInputs(v)
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *DecisionRecordCreate) SetOutputs(v map[string]interface{}) *DecisionRecordCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetRulesTriggered sets the "rules_triggered" field.
func (_c *DecisionRecordCreate) SetRulesTriggered(v []string) *DecisionRecordCreate {
	_c.mutation.SetRulesTriggered(v)
	return _c
}

// SetFinalVerdict sets the "final_verdict" field.
func (_c *DecisionRecordCreate) SetFinalVerdict(v decisionrecord.FinalVerdict) *DecisionRecordCreate {
	_c.mutation.SetFinalVerdict(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DecisionRecordCreate) SetConfidence(v float64) *DecisionRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DecisionRecordCreate) SetNillableConfidence(v *float64) *DecisionRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DecisionRecordCreate) SetStatus(v decisionrecord.Status) *DecisionRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DecisionRecordCreate) SetNillableStatus(v *decisionrecord.Status) *DecisionRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRecordHash sets the "record_hash" field.
func (_c *DecisionRecordCreate) SetRecordHash(v string) *DecisionRecordCreate {
	_c.mutation.SetRecordHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DecisionRecordCreate) SetCreatedAt(v time.Time) *DecisionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DecisionRecordCreate) SetNillableCreatedAt(v *time.Time) *DecisionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DecisionRecordCreate) SetID(v string) *DecisionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DecisionRecordMutation object of the builder.
func (_c *DecisionRecordCreate) Mutation() *DecisionRecordMutation {
	return _c.mutation
}

// Save creates the DecisionRecord in the database.
func (_c *DecisionRecordCreate) Save(ctx context.Context) (*DecisionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionRecordCreate) SaveX(ctx context.Context) *DecisionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionRecordCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := decisionrecord.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := decisionrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := decisionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionRecordCreate) check() error {
	if _, ok := _c.mutation.DecisionType(); !ok {
		return &ValidationError{Name: "decision_type", err: errors.New(`ent: missing required field "DecisionRecord.decision_type"`)}
	}
	if v, ok := _c.mutation.DecisionType(); ok {
		if err := decisionrecord.DecisionTypeValidator(v); err != nil {
			return &ValidationError{Name: "decision_type", err: fmt.Errorf(`ent: validator failed for field "DecisionRecord.decision_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "DecisionRecord.seed"`)}
	}
	if _, ok := _c.mutation.FinalVerdict(); !ok {
		return &ValidationError{Name: "final_verdict", err: errors.New(`ent: missing required field "DecisionRecord.final_verdict"`)}
	}
	if v, ok := _c.mutation.FinalVerdict(); ok {
		if err := decisionrecord.FinalVerdictValidator(v); err != nil {
			return &ValidationError{Name: "final_verdict", err: fmt.Errorf(`ent: validator failed for field "DecisionRecord.final_verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DecisionRecord.confidence"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DecisionRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := decisionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DecisionRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordHash(); !ok {
		return &ValidationError{Name: "record_hash", err: errors.New(`ent: missing required field "DecisionRecord.record_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DecisionRecord.created_at"`)}
	}
	return nil
}

func (_c *DecisionRecordCreate) sqlSave(ctx context.Context) (*DecisionRecord, error) {
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
			return nil, fmt.Errorf("unexpected DecisionRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DecisionRecordCreate) createSpec() (*DecisionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &DecisionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decisionrecord.Table, sqlgraph.NewFieldSpec(decisionrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DecisionType(); ok {
		_spec.SetField(decisionrecord.FieldDecisionType, field.TypeEnum, value)
		_node.DecisionType = value
	}
	if value, ok := _c.mutation.Seed(); ok {
		_spec.SetField(decisionrecord.FieldSeed, field.TypeString, value)
		_node.Seed = value
	}
	if value, ok := _c.mutation.Inputs(); ok {
		_spec.SetField(decisionrecord.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(decisionrecord.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.RulesTriggered(); ok {
		_spec.SetField(decisionrecord.FieldRulesTriggered, field.TypeJSON, value)
		_node.RulesTriggered = value
	}
	if value, ok := _c.mutation.FinalVerdict(); ok {
		_spec.SetField(decisionrecord.FieldFinalVerdict, field.TypeEnum, value)
		_node.FinalVerdict = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(decisionrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(decisionrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RecordHash(); ok {
		_spec.SetField(decisionrecord.FieldRecordHash, field.TypeString, value)
		_node.RecordHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(decisionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DecisionRecordCreateBulk is the builder for creating many DecisionRecord entities in bulk.
type DecisionRecordCreateBulk struct {
	config
	err      error
	builders []*DecisionRecordCreate
}

// Save creates the DecisionRecord entities in the database.
func (_c *DecisionRecordCreateBulk) Save(ctx context.Context) ([]*DecisionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DecisionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionRecordMutation)
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
func (_c *DecisionRecordCreateBulk) SaveX(ctx context.Context) []*DecisionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
