package runner

import (
	"context"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/artifacts"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// verify runs the DONE gates. A clean pass is the only path to
// succeeded; a failure feeds its context into the next planning
// iteration instead of terminating the task.
func (r *Runner) verify(ctx context.Context, t *ent.Task) error {
	meta := models.TaskMetadataFrom(t.Metadata)
	gateNames := meta.Gates()
	if len(gateNames) == 0 {
		gateNames = r.Cfg.DefaultGates
	}

	results, err := r.Gates.Run(ctx, r.taskID, gateNames)
	if err != nil {
		return err
	}
	r.recordLineage(ctx, models.LineageGateResult, artifacts.FileGateResults, "verifying", map[string]any{
		"overall": results.OverallStatus,
		"gates":   len(results.GatesExecuted),
	})

	if results.Passed() {
		if _, err := r.Tasks.Transition(ctx, r.taskID, task.StatusSucceeded, map[string]any{
			"gates": gateNames,
		}); err != nil {
			return err
		}
		if err := r.Tasks.SetExitReason(ctx, r.taskID, models.ExitReasonDone); err != nil {
			return err
		}
		r.emit(models.EventTypeTaskSucceeded, map[string]any{
			"gates": len(results.GatesExecuted),
		})
		return nil
	}

	failure := results.FirstFailure()
	attempt := 1
	if prev, err := meta.GateFailureContext(); err == nil && prev != nil {
		attempt = prev.Attempt + 1
	}
	if _, err := r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
		m.SetGateFailureContext(models.GateFailureContext{
			GateName:   failure.GateName,
			ExitCode:   failure.ExitCode,
			Stdout:     failure.Stdout,
			Stderr:     failure.Stderr,
			Attempt:    attempt,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
		return nil
	}); err != nil {
		return err
	}

	if err := r.Audit.Warn(ctx, r.taskID, "gate.failed", map[string]any{
		"gate":      failure.GateName,
		"exit_code": failure.ExitCode,
		"attempt":   attempt,
	}); err != nil {
		return err
	}

	if _, err := r.Tasks.Transition(ctx, r.taskID, task.StatusPlanning, map[string]any{
		"gate":    failure.GateName,
		"attempt": attempt,
	}); err != nil {
		return err
	}
	r.emit(models.EventTypeTaskProgress, map[string]any{
		"status": string(task.StatusPlanning),
		"gate":   failure.GateName,
	})
	return nil
}
