package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/checkpoint"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// recover restores progress from the latest committed checkpoint before
// the iteration loop starts. A checkpoint that fails verification is
// ignored and the runner starts from the persisted task state alone.
func (r *Runner) recover(ctx context.Context) error {
	cp, err := r.Checkpoints.Latest(ctx, r.taskID)
	if err != nil {
		return err
	}
	if cp == nil {
		return nil
	}

	ok, err := r.Checkpoints.Verify(ctx, cp.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("checkpoint %s failed evidence verification", cp.ID)
	}

	// Planning and work-item snapshots both carry the iteration counter;
	// restore it so resumed work is charged against the right budget.
	if n := snapshotIteration(cp.Snapshot); n > 0 {
		if _, err := r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
			if n > m.Iteration() {
				m.SetIteration(n)
			}
			return nil
		}); err != nil {
			return err
		}
	}

	switch cp.CheckpointType {
	case checkpoint.TypeWorkItemComplete:
		// Make sure the item the checkpoint covers is marked done so
		// the execution loop skips it.
		if cp.WorkItemID != nil {
			itemID := *cp.WorkItemID
			if _, err := r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
				items, err := m.WorkItems()
				if err != nil {
					return err
				}
				for i := range items {
					if items[i].ItemID == itemID {
						items[i].Status = models.WorkItemCompleted
					}
				}
				m.SetWorkItems(items)
				return nil
			}); err != nil {
				return err
			}
		}

	case checkpoint.TypePlanningComplete:
		// The plan and its work items were persisted before this
		// checkpoint committed. A task still in planning skips the
		// planning pipeline and goes straight to the pause decision.
		t, err := r.Tasks.GetTask(ctx, r.taskID)
		if err != nil {
			return err
		}
		if t.Status == task.StatusPlanning {
			if err := r.decidePause(ctx, t, models.TaskMetadataFrom(t.Metadata)); err != nil {
				return err
			}
		}
	}

	slog.Info("Resumed from checkpoint",
		"task_id", r.taskID,
		"checkpoint_id", cp.ID,
		"type", cp.CheckpointType,
		"sequence", cp.SequenceNumber)
	r.emit(models.EventTypeRecoveryResumed, map[string]any{
		"checkpoint_id": cp.ID,
		"type":          cp.CheckpointType,
		"sequence":      cp.SequenceNumber,
	})
	if err := r.Audit.Info(ctx, r.taskID, "recovery.resumed", map[string]any{
		"checkpoint_id": cp.ID,
		"type":          cp.CheckpointType,
	}); err != nil {
		return err
	}
	return nil
}

func snapshotIteration(snap map[string]any) int {
	switch v := snap["iteration"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
