// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/warden/ent/auditentry"
	"github.com/codeready-toolchain/warden/ent/checkpoint"
	"github.com/codeready-toolchain/warden/ent/decisionrecord"
	"github.com/codeready-toolchain/warden/ent/decisionsignoff"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/ent/lease"
	"github.com/codeready-toolchain/warden/ent/lineageentry"
	"github.com/codeready-toolchain/warden/ent/llmcacheentry"
	"github.com/codeready-toolchain/warden/ent/schema"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/ent/toolcall"
	"github.com/codeready-toolchain/warden/ent/toolledgerentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[4].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCommitted is the schema descriptor for committed field.
	checkpointDescCommitted := checkpointFields[7].Descriptor()
	// checkpoint.DefaultCommitted holds the default value on creation for the committed field.
	checkpoint.DefaultCommitted = checkpointDescCommitted.Default.(bool)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[9].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	decisionrecordFields := schema.DecisionRecord{}.Fields()
	_ = decisionrecordFields
	// decisionrecordDescConfidence is the schema descriptor for confidence field.
	decisionrecordDescConfidence := decisionrecordFields[7].Descriptor()
	// decisionrecord.DefaultConfidence holds the default value on creation for the confidence field.
	decisionrecord.DefaultConfidence = decisionrecordDescConfidence.Default.(float64)
	// decisionrecordDescCreatedAt is the schema descriptor for created_at field.
	decisionrecordDescCreatedAt := decisionrecordFields[10].Descriptor()
	// decisionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	decisionrecord.DefaultCreatedAt = decisionrecordDescCreatedAt.Default.(func() time.Time)
	decisionsignoffFields := schema.DecisionSignoff{}.Fields()
	_ = decisionsignoffFields
	// decisionsignoffDescSignedAt is the schema descriptor for signed_at field.
	decisionsignoffDescSignedAt := decisionsignoffFields[3].Descriptor()
	// decisionsignoff.DefaultSignedAt holds the default value on creation for the signed_at field.
	decisionsignoff.DefaultSignedAt = decisionsignoffDescSignedAt.Default.(func() time.Time)
	inboxeventFields := schema.InboxEvent{}.Fields()
	_ = inboxeventFields
	// inboxeventDescReceivedAt is the schema descriptor for received_at field.
	inboxeventDescReceivedAt := inboxeventFields[5].Descriptor()
	// inboxevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	inboxevent.DefaultReceivedAt = inboxeventDescReceivedAt.Default.(func() time.Time)
	llmcacheentryFields := schema.LLMCacheEntry{}.Fields()
	_ = llmcacheentryFields
	// llmcacheentryDescCreatedAt is the schema descriptor for created_at field.
	llmcacheentryDescCreatedAt := llmcacheentryFields[4].Descriptor()
	// llmcacheentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcacheentry.DefaultCreatedAt = llmcacheentryDescCreatedAt.Default.(func() time.Time)
	leaseFields := schema.Lease{}.Fields()
	_ = leaseFields
	// leaseDescAcquiredAt is the schema descriptor for acquired_at field.
	leaseDescAcquiredAt := leaseFields[3].Descriptor()
	// lease.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	lease.DefaultAcquiredAt = leaseDescAcquiredAt.Default.(func() time.Time)
	// leaseDescHeartbeatAt is the schema descriptor for heartbeat_at field.
	leaseDescHeartbeatAt := leaseFields[5].Descriptor()
	// lease.DefaultHeartbeatAt holds the default value on creation for the heartbeat_at field.
	lease.DefaultHeartbeatAt = leaseDescHeartbeatAt.Default.(func() time.Time)
	lineageentryFields := schema.LineageEntry{}.Fields()
	_ = lineageentryFields
	// lineageentryDescCreatedAt is the schema descriptor for created_at field.
	lineageentryDescCreatedAt := lineageentryFields[5].Descriptor()
	// lineageentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	lineageentry.DefaultCreatedAt = lineageentryDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[8].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	toolcallFields := schema.ToolCall{}.Fields()
	_ = toolcallFields
	// toolcallDescMockUsed is the schema descriptor for mock_used field.
	toolcallDescMockUsed := toolcallFields[9].Descriptor()
	// toolcall.DefaultMockUsed holds the default value on creation for the mock_used field.
	toolcall.DefaultMockUsed = toolcallDescMockUsed.Default.(bool)
	// toolcallDescCreatedAt is the schema descriptor for created_at field.
	toolcallDescCreatedAt := toolcallFields[11].Descriptor()
	// toolcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolcall.DefaultCreatedAt = toolcallDescCreatedAt.Default.(func() time.Time)
	toolledgerentryFields := schema.ToolLedgerEntry{}.Fields()
	_ = toolledgerentryFields
	// toolledgerentryDescExitCode is the schema descriptor for exit_code field.
	toolledgerentryDescExitCode := toolledgerentryFields[3].Descriptor()
	// toolledgerentry.DefaultExitCode holds the default value on creation for the exit_code field.
	toolledgerentry.DefaultExitCode = toolledgerentryDescExitCode.Default.(int)
	// toolledgerentryDescCreatedAt is the schema descriptor for created_at field.
	toolledgerentryDescCreatedAt := toolledgerentryFields[4].Descriptor()
	// toolledgerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolledgerentry.DefaultCreatedAt = toolledgerentryDescCreatedAt.Default.(func() time.Time)
}
