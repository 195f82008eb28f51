// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRunMode holds the string denoting the run_mode field in the database.
	FieldRunMode = "run_mode"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldExitReason holds the string denoting the exit_reason field in the database.
	FieldExitReason = "exit_reason"
	// FieldRunnerID holds the string denoting the runner_id field in the database.
	FieldRunnerID = "runner_id"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeAuditEntries holds the string denoting the audit_entries edge name in mutations.
	EdgeAuditEntries = "audit_entries"
	// EdgeLineageEntries holds the string denoting the lineage_entries edge name in mutations.
	EdgeLineageEntries = "lineage_entries"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeToolCalls holds the string denoting the tool_calls edge name in mutations.
	EdgeToolCalls = "tool_calls"
	// AuditEntryFieldID holds the string denoting the ID field of the AuditEntry.
	AuditEntryFieldID = "id"
	// LineageEntryFieldID holds the string denoting the ID field of the LineageEntry.
	LineageEntryFieldID = "id"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "checkpoint_id"
	// ToolCallFieldID holds the string denoting the ID field of the ToolCall.
	ToolCallFieldID = "tool_run_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// AuditEntriesTable is the table that holds the audit_entries relation/edge.
	AuditEntriesTable = "audit_entries"
	// AuditEntriesInverseTable is the table name for the AuditEntry entity.
	// It exists in this package in order to avoid circular dependency with the "auditentry" package.
	AuditEntriesInverseTable = "audit_entries"
	// AuditEntriesColumn is the table column denoting the audit_entries relation/edge.
	AuditEntriesColumn = "task_id"
	// LineageEntriesTable is the table that holds the lineage_entries relation/edge.
	LineageEntriesTable = "lineage_entries"
	// LineageEntriesInverseTable is the table name for the LineageEntry entity.
	// It exists in this package in order to avoid circular dependency with the "lineageentry" package.
	LineageEntriesInverseTable = "lineage_entries"
	// LineageEntriesColumn is the table column denoting the lineage_entries relation/edge.
	LineageEntriesColumn = "task_id"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "task_id"
	// ToolCallsTable is the table that holds the tool_calls relation/edge.
	ToolCallsTable = "tool_calls"
	// ToolCallsInverseTable is the table name for the ToolCall entity.
	// It exists in this package in order to avoid circular dependency with the "toolcall" package.
	ToolCallsInverseTable = "tool_calls"
	// ToolCallsColumn is the table column denoting the tool_calls relation/edge.
	ToolCallsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldStatus,
	FieldRunMode,
	FieldMetadata,
	FieldExitReason,
	FieldRunnerID,
	FieldHeartbeatAt,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated          Status = "created"
	StatusIntentProcessing Status = "intent_processing"
	StatusPlanning         Status = "planning"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusExecuting        Status = "executing"
	StatusVerifying        Status = "verifying"
	StatusSucceeded        Status = "succeeded"
	StatusFailed           Status = "failed"
	StatusCanceled         Status = "canceled"
	StatusBlocked          Status = "blocked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusIntentProcessing, StatusPlanning, StatusAwaitingApproval, StatusExecuting, StatusVerifying, StatusSucceeded, StatusFailed, StatusCanceled, StatusBlocked:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// RunMode defines the type for the "run_mode" enum field.
type RunMode string

// RunModeInteractive is the default value of the RunMode enum.
const DefaultRunMode = RunModeInteractive

// RunMode values.
const (
	RunModeInteractive RunMode = "interactive"
	RunModeAssisted    RunMode = "assisted"
	RunModeAutonomous  RunMode = "autonomous"
)

func (rm RunMode) String() string {
	return string(rm)
}

// RunModeValidator is a validator for the "run_mode" field enum values. It is called by the builders before save.
func RunModeValidator(rm RunMode) error {
	switch rm {
	case RunModeInteractive, RunModeAssisted, RunModeAutonomous:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for run_mode field: %q", rm)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRunMode orders the results by the run_mode field.
func ByRunMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunMode, opts...).ToFunc()
}

// ByExitReason orders the results by the exit_reason field.
func ByExitReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExitReason, opts...).ToFunc()
}

// ByRunnerID orders the results by the runner_id field.
func ByRunnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunnerID, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByAuditEntriesCount orders the results by audit_entries count.
func ByAuditEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditEntriesStep(), opts...)
	}
}

// ByAuditEntries orders the results by audit_entries terms.
func ByAuditEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLineageEntriesCount orders the results by lineage_entries count.
func ByLineageEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLineageEntriesStep(), opts...)
	}
}

// ByLineageEntries orders the results by lineage_entries terms.
func ByLineageEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLineageEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByToolCallsCount orders the results by tool_calls count.
func ByToolCallsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToolCallsStep(), opts...)
	}
}

// ByToolCalls orders the results by tool_calls terms.
func ByToolCalls(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolCallsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAuditEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditEntriesInverseTable, AuditEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditEntriesTable, AuditEntriesColumn),
	)
}
func newLineageEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LineageEntriesInverseTable, LineageEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LineageEntriesTable, LineageEntriesColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newToolCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolCallsInverseTable, ToolCallFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolCallsTable, ToolCallsColumn),
	)
}
