// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"info", "warn", "error"}, Default: "info"},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_entries_tasks_audit_entries",
				Columns:    []*schema.Column{AuditEntriesColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[5], AuditEntriesColumns[4]},
			},
			{
				Name:    "auditentry_event_type",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[2]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "checkpoint_type", Type: field.TypeString},
		{Name: "snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "work_item_id", Type: field.TypeString, Nullable: true},
		{Name: "committed", Type: field.TypeBool, Default: false},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_tasks_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[9]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_task_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[9], CheckpointsColumns[1]},
			},
			{
				Name:    "checkpoint_task_id_checkpoint_type",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[9], CheckpointsColumns[2]},
			},
		},
	}
	// DecisionRecordsColumns holds the columns for the "decision_records" table.
	DecisionRecordsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "decision_type", Type: field.TypeEnum, Enums: []string{"NAVIGATION", "COMPARE", "HEALTH", "POLICY"}},
		{Name: "seed", Type: field.TypeString},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "rules_triggered", Type: field.TypeJSON, Nullable: true},
		{Name: "final_verdict", Type: field.TypeEnum, Enums: []string{"ALLOW", "WARN", "REQUIRE_SIGNOFF", "BLOCK"}},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"RECORDED", "SIGNED"}, Default: "RECORDED"},
		{Name: "record_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DecisionRecordsTable holds the schema information for the "decision_records" table.
	DecisionRecordsTable = &schema.Table{
		Name:       "decision_records",
		Columns:    DecisionRecordsColumns,
		PrimaryKey: []*schema.Column{DecisionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionrecord_decision_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{DecisionRecordsColumns[1], DecisionRecordsColumns[10]},
			},
			{
				Name:    "decisionrecord_final_verdict",
				Unique:  false,
				Columns: []*schema.Column{DecisionRecordsColumns[6]},
			},
		},
	}
	// DecisionSignoffsColumns holds the columns for the "decision_signoffs" table.
	DecisionSignoffsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "decision_id", Type: field.TypeString},
		{Name: "signer", Type: field.TypeString},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "signed_at", Type: field.TypeTime},
	}
	// DecisionSignoffsTable holds the schema information for the "decision_signoffs" table.
	DecisionSignoffsTable = &schema.Table{
		Name:       "decision_signoffs",
		Columns:    DecisionSignoffsColumns,
		PrimaryKey: []*schema.Column{DecisionSignoffsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionsignoff_decision_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionSignoffsColumns[1]},
			},
		},
	}
	// InboxEventsColumns holds the columns for the "inbox_events" table.
	InboxEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"eventbus", "polling"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// InboxEventsTable holds the schema information for the "inbox_events" table.
	InboxEventsTable = &schema.Table{
		Name:       "inbox_events",
		Columns:    InboxEventsColumns,
		PrimaryKey: []*schema.Column{InboxEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inboxevent_status_received_at",
				Unique:  false,
				Columns: []*schema.Column{InboxEventsColumns[7], InboxEventsColumns[6]},
			},
			{
				Name:    "inboxevent_task_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{InboxEventsColumns[2], InboxEventsColumns[6]},
			},
		},
	}
	// LlmCacheEntriesColumns holds the columns for the "llm_cache_entries" table.
	LlmCacheEntriesColumns = []*schema.Column{
		{Name: "cache_key", Type: field.TypeString, Unique: true},
		{Name: "operation_type", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "output", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmCacheEntriesTable holds the schema information for the "llm_cache_entries" table.
	LlmCacheEntriesTable = &schema.Table{
		Name:       "llm_cache_entries",
		Columns:    LlmCacheEntriesColumns,
		PrimaryKey: []*schema.Column{LlmCacheEntriesColumns[0]},
	}
	// LeasesColumns holds the columns for the "leases" table.
	LeasesColumns = []*schema.Column{
		{Name: "work_item_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "worker_id", Type: field.TypeString},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "heartbeat_at", Type: field.TypeTime},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "success", Type: field.TypeBool, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
	}
	// LeasesTable holds the schema information for the "leases" table.
	LeasesTable = &schema.Table{
		Name:       "leases",
		Columns:    LeasesColumns,
		PrimaryKey: []*schema.Column{LeasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lease_task_id",
				Unique:  false,
				Columns: []*schema.Column{LeasesColumns[1]},
			},
			{
				Name:    "lease_worker_id_expires_at",
				Unique:  false,
				Columns: []*schema.Column{LeasesColumns[2], LeasesColumns[4]},
			},
		},
	}
	// LineageEntriesColumns holds the columns for the "lineage_entries" table.
	LineageEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"pipeline", "runner_spawn", "runner_exit", "pause_checkpoint", "execution_request", "artifact", "commit", "gate_result"}},
		{Name: "ref_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// LineageEntriesTable holds the schema information for the "lineage_entries" table.
	LineageEntriesTable = &schema.Table{
		Name:       "lineage_entries",
		Columns:    LineageEntriesColumns,
		PrimaryKey: []*schema.Column{LineageEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lineage_entries_tasks_lineage_entries",
				Columns:    []*schema.Column{LineageEntriesColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lineageentry_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LineageEntriesColumns[6], LineageEntriesColumns[5]},
			},
			{
				Name:    "lineageentry_kind",
				Unique:  false,
				Columns: []*schema.Column{LineageEntriesColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "intent_processing", "planning", "awaiting_approval", "executing", "verifying", "succeeded", "failed", "canceled", "blocked"}, Default: "created"},
		{Name: "run_mode", Type: field.TypeEnum, Enums: []string{"interactive", "assisted", "autonomous"}, Default: "interactive"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "exit_reason", Type: field.TypeString, Nullable: true},
		{Name: "runner_id", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[8]},
			},
			{
				Name:    "task_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[7]},
			},
		},
	}
	// ToolCallsColumns holds the columns for the "tool_calls" table.
	ToolCallsColumns = []*schema.Column{
		{Name: "tool_run_id", Type: field.TypeString, Unique: true},
		{Name: "tool", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "partial_success", "failed", "timeout"}},
		{Name: "error_category", Type: field.TypeString, Nullable: true},
		{Name: "endpoint", Type: field.TypeString, Nullable: true},
		{Name: "output_kind", Type: field.TypeString, Nullable: true},
		{Name: "model_id", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeEnum, Nullable: true, Enums: []string{"cloud", "local"}},
		{Name: "mock_used", Type: field.TypeBool, Default: false},
		{Name: "output_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// ToolCallsTable holds the schema information for the "tool_calls" table.
	ToolCallsTable = &schema.Table{
		Name:       "tool_calls",
		Columns:    ToolCallsColumns,
		PrimaryKey: []*schema.Column{ToolCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_calls_tasks_tool_calls",
				Columns:    []*schema.Column{ToolCallsColumns[11]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolcall_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[11], ToolCallsColumns[10]},
			},
			{
				Name:    "toolcall_status",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[2]},
			},
		},
	}
	// ToolLedgerEntriesColumns holds the columns for the "tool_ledger_entries" table.
	ToolLedgerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "exit_code", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ToolLedgerEntriesTable holds the schema information for the "tool_ledger_entries" table.
	ToolLedgerEntriesTable = &schema.Table{
		Name:       "tool_ledger_entries",
		Columns:    ToolLedgerEntriesColumns,
		PrimaryKey: []*schema.Column{ToolLedgerEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolledgerentry_task_id_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{ToolLedgerEntriesColumns[1], ToolLedgerEntriesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEntriesTable,
		CheckpointsTable,
		DecisionRecordsTable,
		DecisionSignoffsTable,
		InboxEventsTable,
		LlmCacheEntriesTable,
		LeasesTable,
		LineageEntriesTable,
		TasksTable,
		ToolCallsTable,
		ToolLedgerEntriesTable,
	}
)

func init() {
	AuditEntriesTable.ForeignKeys[0].RefTable = TasksTable
	CheckpointsTable.ForeignKeys[0].RefTable = TasksTable
	LineageEntriesTable.ForeignKeys[0].RefTable = TasksTable
	ToolCallsTable.ForeignKeys[0].RefTable = TasksTable
}
