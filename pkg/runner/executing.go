package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/artifacts"
	"github.com/codeready-toolchain/warden/pkg/checkpoint"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/tools"
)

// execute runs the task's work items serially, fail-fast. Each item is
// guarded by a lease and sealed by a checkpoint; tool calls go through
// the ledger so a crashed item replays instead of re-executing.
func (r *Runner) execute(ctx context.Context, t *ent.Task) error {
	meta := models.TaskMetadataFrom(t.Metadata)
	items, err := meta.WorkItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		// A plan with no breakdown falls back to a single coordinator
		// run over the whole task.
		items = []models.WorkItem{{
			ItemID: "coordinator",
			Title:  t.Title,
			Status: models.WorkItemPending,
		}}
		if err := r.persistItems(ctx, items); err != nil {
			return err
		}
	}

	route, err := meta.RoutePlan()
	if err != nil || route == nil {
		return fmt.Errorf("no route plan for task %s", r.taskID)
	}

	for i := range items {
		switch items[i].Status {
		case models.WorkItemCompleted:
			continue
		case models.WorkItemFailed:
			return fmt.Errorf("work item %s already failed", items[i].ItemID)
		}
		if err := r.runWorkItem(ctx, t, route, items, i); err != nil {
			return err
		}
	}

	summary := artifacts.WorkItemsSummary{
		TaskID:      r.taskID,
		GeneratedAt: time.Now().UTC(),
		Total:       len(items),
		Items:       items,
	}
	for _, item := range items {
		switch item.Status {
		case models.WorkItemCompleted:
			summary.Completed++
		case models.WorkItemFailed:
			summary.Failed++
		}
	}
	if _, err := r.Artifacts.WriteWorkItemsSummary(summary); err != nil {
		return err
	}

	if _, err := r.Tasks.Transition(ctx, r.taskID, task.StatusVerifying, map[string]any{
		"items_completed": summary.Completed,
	}); err != nil {
		return err
	}
	r.emit(models.EventTypeTaskProgress, map[string]any{
		"status": string(task.StatusVerifying),
	})
	return nil
}

// runWorkItem executes one item under lease and checkpoint. items[i] is
// mutated in place and persisted on both success and failure.
func (r *Runner) runWorkItem(ctx context.Context, t *ent.Task, route *models.RoutePlan, items []models.WorkItem, i int) error {
	item := &items[i]
	leaseID := r.taskID + "/" + item.ItemID

	if _, err := r.Leases.Acquire(ctx, leaseID, r.taskID, r.workerID, r.Cfg.LeaseTTL); err != nil {
		if errors.Is(err, checkpoint.ErrLeaseHeld) {
			// Another worker still owns it; back off and let the next
			// iteration retry after the lease expires.
			return nil
		}
		return err
	}

	cp, err := r.Checkpoints.BeginStep(ctx, r.taskID, checkpoint.TypeWorkItemComplete, map[string]any{
		"item_id":   item.ItemID,
		"iteration": models.TaskMetadataFrom(t.Metadata).Iteration(),
	}, item.ItemID)
	if err != nil {
		return err
	}

	item.Status = models.WorkItemRunning
	if err := r.persistItems(ctx, items); err != nil {
		return err
	}

	prompt := fmt.Sprintf("Produce a diff for work item %s: %s", item.ItemID, item.Title)
	fingerprint, err := checkpoint.Fingerprint(route.Primary, "", map[string]any{
		"task_id": r.taskID,
		"item_id": item.ItemID,
		"prompt":  prompt,
	})
	if err != nil {
		return err
	}

	output, _, replayed, err := r.Ledger.ExecuteOrReplay(ctx, r.taskID, fingerprint,
		func(execCtx context.Context) (map[string]any, int, error) {
			res, err := r.Runtime.Execute(execCtx, route.Primary, tools.Request{
				TaskID:     r.taskID,
				Prompt:     prompt,
				OutputKind: tools.OutputDiff,
				WorkingDir: r.workingDir(t),
			}, true)
			if err != nil {
				return nil, -1, err
			}
			exitCode := 0
			if res.Failed() {
				exitCode = 1
			}
			return map[string]any{
				"status":         string(res.Status),
				"tool_run_id":    res.ToolRunID,
				"diff":           res.Diff,
				"files_touched":  res.FilesTouched,
				"error_message":  res.ErrorMessage,
				"error_category": string(res.ErrorCategory),
			}, exitCode, nil
		})
	if err != nil {
		r.failWorkItem(ctx, items, i, leaseID, err.Error())
		return fmt.Errorf("work item %s: %w", item.ItemID, err)
	}

	toolRunID, _ := output["tool_run_id"].(string)
	if status, _ := output["status"].(string); status != string(tools.StatusSuccess) {
		msg, _ := output["error_message"].(string)
		r.failWorkItem(ctx, items, i, leaseID, msg)
		return fmt.Errorf("work item %s failed: %s", item.ItemID, msg)
	}

	r.recordLineage(ctx, models.LineageExecutionRequest, toolRunID, "executing", map[string]any{
		"item_id":  item.ItemID,
		"replayed": replayed,
	})

	item.Status = models.WorkItemCompleted
	item.Output = &models.WorkItemOutput{
		FilesChanged: stringSlice(output["files_touched"]),
		Evidence:     toolRunID,
	}
	if err := r.persistItems(ctx, items); err != nil {
		return err
	}

	itemPath, err := r.Artifacts.WriteWorkItem(r.taskID, *item)
	if err != nil {
		return err
	}

	if err := r.Leases.Release(ctx, leaseID, true, map[string]any{
		"tool_run_id": toolRunID,
	}); err != nil {
		return err
	}

	if err := r.Checkpoints.CommitStep(ctx, cp.ID, models.EvidencePack{
		Items: []models.Evidence{
			{Kind: models.EvidenceArtifactExists, Path: itemPath, ArtifactType: "work_item"},
			{Kind: models.EvidenceDBRow, Table: "tool_calls", Where: map[string]any{"tool_run_id": toolRunID}},
		},
		MinVerified: 1,
	}); err != nil {
		return err
	}

	r.emit(models.EventTypeStepCompleted, map[string]any{
		"item_id":     item.ItemID,
		"tool_run_id": toolRunID,
	})
	return nil
}

// failWorkItem records the failed outcome; the caller still fails the
// task (fail-fast), so errors here only get logged via the lease layer.
func (r *Runner) failWorkItem(ctx context.Context, items []models.WorkItem, i int, leaseID, message string) {
	items[i].Status = models.WorkItemFailed
	items[i].Output = &models.WorkItemOutput{Error: message}
	if err := r.persistItems(ctx, items); err == nil {
		_ = r.Leases.Release(ctx, leaseID, false, map[string]any{"error": message})
	}
}

func (r *Runner) persistItems(ctx context.Context, items []models.WorkItem) error {
	_, err := r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
		m.SetWorkItems(items)
		return nil
	})
	return err
}

// workingDir resolves the project working directory override, if any.
func (r *Runner) workingDir(t *ent.Task) string {
	meta := models.TaskMetadataFrom(t.Metadata)
	if p, ok := r.Projects[meta.ProjectID()]; ok && p.WorkingDir != "" {
		return p.WorkingDir
	}
	return ""
}

func stringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}
