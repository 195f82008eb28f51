// Package artifacts persists per-task output files under
// artifacts/<task_id>/. Everything written here is a plain file an
// operator can inspect without the database.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/codeready-toolchain/warden/pkg/models"
)

// Well-known artifact file names.
const (
	FileOpenPlan         = "open_plan.json"
	FileWorkItemsSummary = "work_items_summary.json"
	FileGateResults      = "gate_results.json"
	FileDispatchCommand  = "dispatch_command.sh"
)

// OpenPlan is the machine-readable planning artifact.
type OpenPlan struct {
	TaskID          string      `json:"task_id"`
	GeneratedAt     time.Time   `json:"generated_at"`
	PipelineStatus  string      `json:"pipeline_status"`
	PipelineSummary string      `json:"pipeline_summary,omitempty"`
	Stages          []PlanStage `json:"stages"`
}

// PlanStage is one stage of the open plan.
type PlanStage struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	WorkItemIDs []string `json:"work_item_ids,omitempty"`
}

// WorkItemsSummary aggregates item outcomes for a task.
type WorkItemsSummary struct {
	TaskID      string            `json:"task_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Total       int               `json:"total"`
	Completed   int               `json:"completed"`
	Failed      int               `json:"failed"`
	Items       []models.WorkItem `json:"items"`
}

// Writer writes task artifacts under a root directory.
type Writer struct {
	root string
}

// NewWriter creates a writer rooted at dir (usually "artifacts").
func NewWriter(dir string) *Writer {
	return &Writer{root: dir}
}

// TaskDir returns (and creates) the directory for one task.
func (w *Writer) TaskDir(taskID string) (string, error) {
	dir := filepath.Join(w.root, taskID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir for %s: %w", taskID, err)
	}
	return dir, nil
}

// WriteJSON marshals v with indentation into the task's directory.
func (w *Writer) WriteJSON(taskID, name string, v any) (string, error) {
	dir, err := w.TaskDir(taskID)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal artifact %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", name, err)
	}
	return path, nil
}

// WriteOpenPlan writes open_plan.json.
func (w *Writer) WriteOpenPlan(plan OpenPlan) (string, error) {
	return w.WriteJSON(plan.TaskID, FileOpenPlan, plan)
}

// WriteWorkItem writes work_item_<ID>.json for one item.
func (w *Writer) WriteWorkItem(taskID string, item models.WorkItem) (string, error) {
	return w.WriteJSON(taskID, fmt.Sprintf("work_item_%s.json", item.ItemID), item)
}

// WriteWorkItemsSummary writes work_items_summary.json.
func (w *Writer) WriteWorkItemsSummary(summary WorkItemsSummary) (string, error) {
	return w.WriteJSON(summary.TaskID, FileWorkItemsSummary, summary)
}

// WriteDispatchCommand writes an executable dispatch_command.sh for
// out-of-band tool dispatch.
func (w *Writer) WriteDispatchCommand(taskID, script string) (string, error) {
	dir, err := w.TaskDir(taskID)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileDispatchCommand)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		return "", fmt.Errorf("write dispatch command: %w", err)
	}
	return path, nil
}
