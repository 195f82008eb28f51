package models

// WorkItemStatus is the lifecycle state of a single work item.
type WorkItemStatus string

// Work item statuses.
const (
	WorkItemPending   WorkItemStatus = "pending"
	WorkItemRunning   WorkItemStatus = "running"
	WorkItemCompleted WorkItemStatus = "completed"
	WorkItemFailed    WorkItemStatus = "failed"
)

// WorkItem is a sub-task within a task. Items execute serially in
// declaration order; a completed item's Output is immutable.
type WorkItem struct {
	ItemID       string          `json:"item_id"`
	Title        string          `json:"title"`
	Dependencies []string        `json:"dependencies,omitempty"`
	Status       WorkItemStatus  `json:"status"`
	Output       *WorkItemOutput `json:"output,omitempty"`
	RoleHint     string          `json:"role_hint,omitempty"`
}

// WorkItemOutput is the result block of one executed work item.
// ReplacementOf supports a future retry policy: a retried item gets a
// fresh output pointing at the original, which is never mutated.
type WorkItemOutput struct {
	FilesChanged  []string `json:"files_changed,omitempty"`
	CommandsRun   []string `json:"commands_run,omitempty"`
	TestsRun      []string `json:"tests_run,omitempty"`
	Evidence      string   `json:"evidence,omitempty"`
	HandoffNotes  string   `json:"handoff_notes,omitempty"`
	Error         string   `json:"error,omitempty"`
	ReplacementOf string   `json:"replacement_of,omitempty"`
}
