// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/ent/toolcall"
)

// ToolCall is the model entity for the ToolCall schema.
type ToolCall struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Tool holds the value of the "tool" field.
	Tool string `json:"tool,omitempty"`
	// Status holds the value of the "status" field.
	Status toolcall.Status `json:"status,omitempty"`
	// config|auth|network|model|schema|runtime; mandatory on failure
	ErrorCategory string `json:"error_category,omitempty"`
	// Normalized to scheme://host[:port], no path or query
	Endpoint string `json:"endpoint,omitempty"`
	// OutputKind holds the value of the "output_kind" field.
	OutputKind string `json:"output_kind,omitempty"`
	// ModelID holds the value of the "model_id" field.
	ModelID string `json:"model_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider toolcall.Provider `json:"provider,omitempty"`
	// MockUsed holds the value of the "mock_used" field.
	MockUsed bool `json:"mock_used,omitempty"`
	// Diff or analysis text (full-text searchable)
	OutputText string `json:"output_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ToolCallQuery when eager-loading is set.
	Edges        ToolCallEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ToolCallEdges holds the relations/edges for other nodes in the graph.
type ToolCallEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ToolCallEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolCall) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toolcall.FieldMockUsed:
			values[i] = new(sql.NullBool)
		case toolcall.FieldID, toolcall.FieldTaskID, toolcall.FieldTool, toolcall.FieldStatus, toolcall.FieldErrorCategory, toolcall.FieldEndpoint, toolcall.FieldOutputKind, toolcall.FieldModelID, toolcall.FieldProvider, toolcall.FieldOutputText:
			values[i] = new(sql.NullString)
		case toolcall.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolCall fields.
func (_m *ToolCall) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toolcall.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case toolcall.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case toolcall.FieldTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool", values[i])
			} else if value.Valid {
				_m.Tool = value.String
			}
		case toolcall.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = toolcall.Status(value.String)
			}
		case toolcall.FieldErrorCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_category", values[i])
			} else if value.Valid {
				_m.ErrorCategory = value.String
			}
		case toolcall.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case toolcall.FieldOutputKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_kind", values[i])
			} else if value.Valid {
				_m.OutputKind = value.String
			}
		case toolcall.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = value.String
			}
		case toolcall.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = toolcall.Provider(value.String)
			}
		case toolcall.FieldMockUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mock_used", values[i])
			} else if value.Valid {
				_m.MockUsed = value.Bool
			}
		case toolcall.FieldOutputText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_text", values[i])
			} else if value.Valid {
				_m.OutputText = value.String
			}
		case toolcall.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ToolCall.
// This includes values selected through modifiers, order, etc.
func (_m *ToolCall) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the ToolCall entity.
func (_m *ToolCall) QueryTask() *TaskQuery {
	return NewToolCallClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this ToolCall.
// Note that you need to call ToolCall.Unwrap() before calling this method if this ToolCall
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolCall) Update() *ToolCallUpdateOne {
	return NewToolCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolCall entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolCall) Unwrap() *ToolCall {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolCall is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolCall) String() string {
	var builder strings.Builder
	builder.WriteString("ToolCall(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("tool=")
	builder.WriteString(_m.Tool)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_category=")
	builder.WriteString(_m.ErrorCategory)
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("output_kind=")
	builder.WriteString(_m.OutputKind)
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(_m.ModelID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("mock_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.MockUsed))
	builder.WriteString(", ")
	builder.WriteString("output_text=")
	builder.WriteString(_m.OutputText)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ToolCalls is a parsable slice of ToolCall.
type ToolCalls []*ToolCall
