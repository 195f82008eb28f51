// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// DecisionRecord is the predicate function for decisionrecord builders.
type DecisionRecord func(*sql.Selector)

// DecisionSignoff is the predicate function for decisionsignoff builders.
type DecisionSignoff func(*sql.Selector)

// InboxEvent is the predicate function for inboxevent builders.
type InboxEvent func(*sql.Selector)

// LLMCacheEntry is the predicate function for llmcacheentry builders.
type LLMCacheEntry func(*sql.Selector)

// Lease is the predicate function for lease builders.
type Lease func(*sql.Selector)

// LineageEntry is the predicate function for lineageentry builders.
type LineageEntry func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// ToolCall is the predicate function for toolcall builders.
type ToolCall func(*sql.Selector)

// ToolLedgerEntry is the predicate function for toolledgerentry builders.
type ToolLedgerEntry func(*sql.Selector)
