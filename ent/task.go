// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// RunMode holds the value of the "run_mode" field.
	RunMode task.RunMode `json:"run_mode,omitempty"`
	// Typed views live in pkg/models (pause state, timeout, route plan, work items)
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Backfilled once; done|blocked|user_cancelled|timeout|fatal_error|max_iterations
	ExitReason *string `json:"exit_reason,omitempty"`
	// Worker that claimed the task; for single-runner enforcement
	RunnerID *string `json:"runner_id,omitempty"`
	// For orphan detection
	HeartbeatAt *time.Time `json:"heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// AuditEntries holds the value of the audit_entries edge.
	AuditEntries []*AuditEntry `json:"audit_entries,omitempty"`
	// LineageEntries holds the value of the lineage_entries edge.
	LineageEntries []*LineageEntry `json:"lineage_entries,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// ToolCalls holds the value of the tool_calls edge.
	ToolCalls []*ToolCall `json:"tool_calls,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AuditEntriesOrErr returns the AuditEntries value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) AuditEntriesOrErr() ([]*AuditEntry, error) {
	if e.loadedTypes[0] {
		return e.AuditEntries, nil
	}
	return nil, &NotLoadedError{edge: "audit_entries"}
}

// LineageEntriesOrErr returns the LineageEntries value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) LineageEntriesOrErr() ([]*LineageEntry, error) {
	if e.loadedTypes[1] {
		return e.LineageEntries, nil
	}
	return nil, &NotLoadedError{edge: "lineage_entries"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[2] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// ToolCallsOrErr returns the ToolCalls value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ToolCallsOrErr() ([]*ToolCall, error) {
	if e.loadedTypes[3] {
		return e.ToolCalls, nil
	}
	return nil, &NotLoadedError{edge: "tool_calls"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldMetadata:
			values[i] = new([]byte)
		case task.FieldID, task.FieldTitle, task.FieldStatus, task.FieldRunMode, task.FieldExitReason, task.FieldRunnerID:
			values[i] = new(sql.NullString)
		case task.FieldHeartbeatAt, task.FieldCreatedAt, task.FieldStartedAt, task.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldRunMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_mode", values[i])
			} else if value.Valid {
				_m.RunMode = task.RunMode(value.String)
			}
		case task.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case task.FieldExitReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exit_reason", values[i])
			} else if value.Valid {
				_m.ExitReason = new(string)
				*_m.ExitReason = value.String
			}
		case task.FieldRunnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field runner_id", values[i])
			} else if value.Valid {
				_m.RunnerID = new(string)
				*_m.RunnerID = value.String
			}
		case task.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = new(time.Time)
				*_m.HeartbeatAt = value.Time
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuditEntries queries the "audit_entries" edge of the Task entity.
func (_m *Task) QueryAuditEntries() *AuditEntryQuery {
	return NewTaskClient(_m.config).QueryAuditEntries(_m)
}

// QueryLineageEntries queries the "lineage_entries" edge of the Task entity.
func (_m *Task) QueryLineageEntries() *LineageEntryQuery {
	return NewTaskClient(_m.config).QueryLineageEntries(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Task entity.
func (_m *Task) QueryCheckpoints() *CheckpointQuery {
	return NewTaskClient(_m.config).QueryCheckpoints(_m)
}

// QueryToolCalls queries the "tool_calls" edge of the Task entity.
func (_m *Task) QueryToolCalls() *ToolCallQuery {
	return NewTaskClient(_m.config).QueryToolCalls(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("run_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunMode))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.ExitReason; v != nil {
		builder.WriteString("exit_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RunnerID; v != nil {
		builder.WriteString("runner_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HeartbeatAt; v != nil {
		builder.WriteString("heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
