package models

import "time"

// EventSource identifies who emitted a bus event.
type EventSource string

// Event sources.
const (
	EventSourceCore  EventSource = "core"
	EventSourceWebUI EventSource = "webui"
)

// Event types use a dotted namespace. The supervisor's prefix router
// matches on these (e.g. "task.*").
const (
	EventTypeTaskCreated     = "task.created"
	EventTypeTaskProgress    = "task.progress"
	EventTypeTaskRerouted    = "task.rerouted"
	EventTypeTaskFailed      = "task.failed"
	EventTypeTaskSucceeded   = "task.succeeded"
	EventTypeTaskCancelled   = "task.cancelled"
	EventTypeStepCompleted   = "step.completed"
	EventTypeModeViolation   = "mode.violation"
	EventTypeToolExecuted    = "tool.executed"
	EventTypeRecoveryResumed = "recovery.resumed"
)

// EntityRef identifies the entity an event is about.
type EntityRef struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// Event is the in-process bus event shape. TS is UTC ISO-8601.
type Event struct {
	Type    string         `json:"type"`
	TS      string         `json:"ts"`
	Source  EventSource    `json:"source"`
	Entity  EntityRef      `json:"entity"`
	Payload map[string]any `json:"payload,omitempty"`
}

// NewTaskEvent builds a core-sourced event about a task, stamped now.
func NewTaskEvent(eventType, taskID string, payload map[string]any) Event {
	return Event{
		Type:    eventType,
		TS:      time.Now().UTC().Format(time.RFC3339Nano),
		Source:  EventSourceCore,
		Entity:  EntityRef{Kind: "task", ID: taskID},
		Payload: payload,
	}
}

// AuditLevel is the severity of an audit entry.
type AuditLevel string

// Audit levels.
const (
	AuditInfo  AuditLevel = "info"
	AuditWarn  AuditLevel = "warn"
	AuditError AuditLevel = "error"
)

// LineageKind classifies what a lineage entry links a task to.
type LineageKind string

// Lineage kinds.
const (
	LineagePipeline         LineageKind = "pipeline"
	LineageRunnerSpawn      LineageKind = "runner_spawn"
	LineageRunnerExit       LineageKind = "runner_exit"
	LineagePauseCheckpoint  LineageKind = "pause_checkpoint"
	LineageExecutionRequest LineageKind = "execution_request"
	LineageArtifact         LineageKind = "artifact"
	LineageCommit           LineageKind = "commit"
	LineageGateResult       LineageKind = "gate_result"
)
