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
	"github.com/codeready-toolchain/warden/ent/auditentry"
	"github.com/codeready-toolchain/warden/ent/checkpoint"
	"github.com/codeready-toolchain/warden/ent/lineageentry"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/ent/toolcall"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRunMode sets the "run_mode" field.
func (_u *TaskUpdate) SetRunMode(v task.RunMode) *TaskUpdate {
	_u.mutation.SetRunMode(v)
	return _u
}

// SetNillableRunMode sets the "run_mode" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRunMode(v *task.RunMode) *TaskUpdate {
	if v != nil {
		_u.SetRunMode(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TaskUpdate) SetMetadata(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TaskUpdate) ClearMetadata() *TaskUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetExitReason sets the "exit_reason" field.
func (_u *TaskUpdate) SetExitReason(v string) *TaskUpdate {
	_u.mutation.SetExitReason(v)
	return _u
}

// SetNillableExitReason sets the "exit_reason" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableExitReason(v *string) *TaskUpdate {
	if v != nil {
		_u.SetExitReason(*v)
	}
	return _u
}

// ClearExitReason clears the value of the "exit_reason" field.
func (_u *TaskUpdate) ClearExitReason() *TaskUpdate {
	_u.mutation.ClearExitReason()
	return _u
}

// SetRunnerID sets the "runner_id" field.
func (_u *TaskUpdate) SetRunnerID(v string) *TaskUpdate {
	_u.mutation.SetRunnerID(v)
	return _u
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRunnerID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRunnerID(*v)
	}
	return _u
}

// ClearRunnerID clears the value of the "runner_id" field.
func (_u *TaskUpdate) ClearRunnerID() *TaskUpdate {
	_u.mutation.ClearRunnerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *TaskUpdate) SetHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *TaskUpdate) ClearHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by IDs.
func (_u *TaskUpdate) AddAuditEntryIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the AuditEntry entity.
func (_u *TaskUpdate) AddAuditEntries(v ...*AuditEntry) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// AddLineageEntryIDs adds the "lineage_entries" edge to the LineageEntry entity by IDs.
func (_u *TaskUpdate) AddLineageEntryIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddLineageEntryIDs(ids...)
	return _u
}

// AddLineageEntries adds the "lineage_entries" edges to the LineageEntry entity.
func (_u *TaskUpdate) AddLineageEntries(v ...*LineageEntry) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineageEntryIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *TaskUpdate) AddCheckpointIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdate) AddCheckpoints(v ...*Checkpoint) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_u *TaskUpdate) AddToolCallIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_u *TaskUpdate) AddToolCalls(v ...*ToolCall) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearAuditEntries clears all "audit_entries" edges to the AuditEntry entity.
func (_u *TaskUpdate) ClearAuditEntries() *TaskUpdate {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to AuditEntry entities by IDs.
func (_u *TaskUpdate) RemoveAuditEntryIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to AuditEntry entities.
func (_u *TaskUpdate) RemoveAuditEntries(v ...*AuditEntry) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
}

// ClearLineageEntries clears all "lineage_entries" edges to the LineageEntry entity.
func (_u *TaskUpdate) ClearLineageEntries() *TaskUpdate {
	_u.mutation.ClearLineageEntries()
	return _u
}

// RemoveLineageEntryIDs removes the "lineage_entries" edge to LineageEntry entities by IDs.
func (_u *TaskUpdate) RemoveLineageEntryIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveLineageEntryIDs(ids...)
	return _u
}

// RemoveLineageEntries removes "lineage_entries" edges to LineageEntry entities.
func (_u *TaskUpdate) RemoveLineageEntries(v ...*LineageEntry) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineageEntryIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdate) ClearCheckpoints() *TaskUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *TaskUpdate) RemoveCheckpointIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *TaskUpdate) RemoveCheckpoints(v ...*Checkpoint) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearToolCalls clears all "tool_calls" edges to the ToolCall entity.
func (_u *TaskUpdate) ClearToolCalls() *TaskUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to ToolCall entities by IDs.
func (_u *TaskUpdate) RemoveToolCallIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to ToolCall entities.
func (_u *TaskUpdate) RemoveToolCalls(v ...*ToolCall) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RunMode(); ok {
		if err := task.RunModeValidator(v); err != nil {
			return &ValidationError{Name: "run_mode", err: fmt.Errorf(`ent: validator failed for field "Task.run_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RunMode(); ok {
		_spec.SetField(task.FieldRunMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(task.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(task.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExitReason(); ok {
		_spec.SetField(task.FieldExitReason, field.TypeString, value)
	}
	if _u.mutation.ExitReasonCleared() {
		_spec.ClearField(task.FieldExitReason, field.TypeString)
	}
	if value, ok := _u.mutation.RunnerID(); ok {
		_spec.SetField(task.FieldRunnerID, field.TypeString, value)
	}
	if _u.mutation.RunnerIDCleared() {
		_spec.ClearField(task.FieldRunnerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(task.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(task.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AuditEntriesTable,
			Columns: []string{task.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AuditEntriesTable,
			Columns: []string{task.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AuditEntriesTable,
			Columns: []string{task.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LineageEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LineageEntriesTable,
			Columns: []string{task.LineageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineageentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineageEntriesIDs(); len(nodes) > 0 && !_u.mutation.LineageEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LineageEntriesTable,
			Columns: []string{task.LineageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineageentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineageEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LineageEntriesTable,
			Columns: []string{task.LineageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineageentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CheckpointsTable,
			Columns: []string{task.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CheckpointsTable,
			Columns: []string{task.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CheckpointsTable,
			Columns: []string{task.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ToolCallsTable,
			Columns: []string{task.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ToolCallsTable,
			Columns: []string{task.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ToolCallsTable,
			Columns: []string{task.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRunMode sets the "run_mode" field.
func (_u *TaskUpdateOne) SetRunMode(v task.RunMode) *TaskUpdateOne {
	_u.mutation.SetRunMode(v)
	return _u
}

// SetNillableRunMode sets the "run_mode" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRunMode(v *task.RunMode) *TaskUpdateOne {
	if v != nil {
		_u.SetRunMode(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TaskUpdateOne) SetMetadata(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TaskUpdateOne) ClearMetadata() *TaskUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetExitReason sets the "exit_reason" field.
func (_u *TaskUpdateOne) SetExitReason(v string) *TaskUpdateOne {
	_u.mutation.SetExitReason(v)
	return _u
}

// SetNillableExitReason sets the "exit_reason" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableExitReason(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetExitReason(*v)
	}
	return _u
}

// ClearExitReason clears the value of the "exit_reason" field.
func (_u *TaskUpdateOne) ClearExitReason() *TaskUpdateOne {
	_u.mutation.ClearExitReason()
	return _u
}

// SetRunnerID sets the "runner_id" field.
func (_u *TaskUpdateOne) SetRunnerID(v string) *TaskUpdateOne {
	_u.mutation.SetRunnerID(v)
	return _u
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRunnerID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRunnerID(*v)
	}
	return _u
}

// ClearRunnerID clears the value of the "runner_id" field.
func (_u *TaskUpdateOne) ClearRunnerID() *TaskUpdateOne {
	_u.mutation.ClearRunnerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *TaskUpdateOne) SetHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *TaskUpdateOne) ClearHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by IDs.
func (_u *TaskUpdateOne) AddAuditEntryIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the AuditEntry entity.
func (_u *TaskUpdateOne) AddAuditEntries(v ...*AuditEntry) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// AddLineageEntryIDs adds the "lineage_entries" edge to the LineageEntry entity by IDs.
func (_u *TaskUpdateOne) AddLineageEntryIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddLineageEntryIDs(ids...)
	return _u
}

// AddLineageEntries adds the "lineage_entries" edges to the LineageEntry entity.
func (_u *TaskUpdateOne) AddLineageEntries(v ...*LineageEntry) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineageEntryIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *TaskUpdateOne) AddCheckpointIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdateOne) AddCheckpoints(v ...*Checkpoint) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_u *TaskUpdateOne) AddToolCallIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_u *TaskUpdateOne) AddToolCalls(v ...*ToolCall) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearAuditEntries clears all "audit_entries" edges to the AuditEntry entity.
func (_u *TaskUpdateOne) ClearAuditEntries() *TaskUpdateOne {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to AuditEntry entities by IDs.
func (_u *TaskUpdateOne) RemoveAuditEntryIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to AuditEntry entities.
func (_u *TaskUpdateOne) RemoveAuditEntries(v ...*AuditEntry) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
}

// ClearLineageEntries clears all "lineage_entries" edges to the LineageEntry entity.
func (_u *TaskUpdateOne) ClearLineageEntries() *TaskUpdateOne {
	_u.mutation.ClearLineageEntries()
	return _u
}

// RemoveLineageEntryIDs removes the "lineage_entries" edge to LineageEntry entities by IDs.
func (_u *TaskUpdateOne) RemoveLineageEntryIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveLineageEntryIDs(ids...)
	return _u
}

// RemoveLineageEntries removes "lineage_entries" edges to LineageEntry entities.
func (_u *TaskUpdateOne) RemoveLineageEntries(v ...*LineageEntry) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineageEntryIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdateOne) ClearCheckpoints() *TaskUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *TaskUpdateOne) RemoveCheckpointIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *TaskUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearToolCalls clears all "tool_calls" edges to the ToolCall entity.
func (_u *TaskUpdateOne) ClearToolCalls() *TaskUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to ToolCall entities by IDs.
func (_u *TaskUpdateOne) RemoveToolCallIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to ToolCall entities.
func (_u *TaskUpdateOne) RemoveToolCalls(v ...*ToolCall) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RunMode(); ok {
		if err := task.RunModeValidator(v); err != nil {
			return &ValidationError{Name: "run_mode", err: fmt.Errorf(`ent: validator failed for field "Task.run_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RunMode(); ok {
		_spec.SetField(task.FieldRunMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(task.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(task.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExitReason(); ok {
		_spec.SetField(task.FieldExitReason, field.TypeString, value)
	}
	if _u.mutation.ExitReasonCleared() {
		_spec.ClearField(task.FieldExitReason, field.TypeString)
	}
	if value, ok := _u.mutation.RunnerID(); ok {
		_spec.SetField(task.FieldRunnerID, field.TypeString, value)
	}
	if _u.mutation.RunnerIDCleared() {
		_spec.ClearField(task.FieldRunnerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(task.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(task.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AuditEntriesTable,
			Columns: []string{task.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AuditEntriesTable,
			Columns: []string{task.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AuditEntriesTable,
			Columns: []string{task.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LineageEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LineageEntriesTable,
			Columns: []string{task.LineageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineageentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineageEntriesIDs(); len(nodes) > 0 && !_u.mutation.LineageEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LineageEntriesTable,
			Columns: []string{task.LineageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineageentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineageEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LineageEntriesTable,
			Columns: []string{task.LineageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineageentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CheckpointsTable,
			Columns: []string{task.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CheckpointsTable,
			Columns: []string{task.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CheckpointsTable,
			Columns: []string{task.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ToolCallsTable,
			Columns: []string{task.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ToolCallsTable,
			Columns: []string{task.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ToolCallsTable,
			Columns: []string{task.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
