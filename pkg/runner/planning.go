package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/checkpoint"
	"github.com/codeready-toolchain/warden/pkg/gates"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// plan runs one planning pass: re-verify the route, produce the open
// plan through the planning pipeline, checkpoint it, then decide
// between pausing for approval and going straight to execution.
func (r *Runner) plan(ctx context.Context, t *ent.Task) error {
	meta := models.TaskMetadataFrom(t.Metadata)

	route, err := meta.RoutePlan()
	if err != nil {
		return err
	}
	if r.Cfg.RoutePlanning {
		next, changed, err := r.Router.Reroute(ctx, route)
		if err != nil {
			return fmt.Errorf("route verification: %w", err)
		}
		if changed {
			oldPrimary := ""
			if route != nil {
				oldPrimary = route.Primary
			}
			route = next
			if _, err := r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
				m.SetRoutePlan(*next)
				return nil
			}); err != nil {
				return err
			}
			r.emit(models.EventTypeTaskRerouted, map[string]any{
				"from":     oldPrimary,
				"to":       next.Primary,
				"reason":   next.Reason,
				"fallback": next.FallbackChain,
			})
			if err := r.Audit.Warn(ctx, r.taskID, "route.changed", map[string]any{
				"from": oldPrimary, "to": next.Primary, "reason": next.Reason,
			}); err != nil {
				return err
			}
		}
	}
	if route == nil {
		return fmt.Errorf("no route plan for task %s", r.taskID)
	}

	gateFailure, err := meta.GateFailureContext()
	if err != nil {
		return err
	}

	cp, err := r.Checkpoints.BeginStep(ctx, r.taskID, checkpoint.TypePlanningComplete, map[string]any{
		"iteration": meta.Iteration(),
		"primary":   route.Primary,
	}, "")
	if err != nil {
		return err
	}

	result, err := r.Plan(ctx, t, route, gateFailure)
	if err != nil {
		return fmt.Errorf("planning pipeline: %w", err)
	}

	planPath, err := r.Artifacts.WriteOpenPlan(result.Plan)
	if err != nil {
		return err
	}
	r.recordLineage(ctx, models.LineageArtifact, planPath, "planning", map[string]any{
		"artifact": "open_plan",
	})

	if _, err := r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
		m.SetWorkItems(result.Items)
		m.ClearGateFailureContext()
		return nil
	}); err != nil {
		return err
	}

	if err := r.Checkpoints.CommitStep(ctx, cp.ID, models.EvidencePack{
		Items: []models.Evidence{
			{Kind: models.EvidenceArtifactExists, Path: planPath, ArtifactType: "open_plan"},
		},
		RequireAll: true,
	}); err != nil {
		return err
	}

	return r.decidePause(ctx, t, meta)
}

// decidePause applies the pause gate after planning. Interactive and
// assisted tasks stop at the open plan for approval; autonomous tasks
// continue, and a pause directive on one hits the autonomous-blocked
// red line.
func (r *Runner) decidePause(ctx context.Context, t *ent.Task, meta *models.Metadata) error {
	mode := models.RunMode(t.RunMode)
	directive, hasDirective := meta.Get(models.MetaKeyPauseReason)

	canPause, err := gates.CanPauseAt(gates.CheckpointOpenPlan, mode)
	if err != nil {
		return err
	}

	if canPause {
		reason := "awaiting plan approval"
		if hasDirective {
			reason = fmt.Sprint(directive)
		}
		if _, err := r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
			m.SetPauseState(models.PauseState{
				Checkpoint: gates.CheckpointOpenPlan,
				Reason:     reason,
				PausedAt:   time.Now().UTC(),
			})
			return nil
		}); err != nil {
			return err
		}
		r.recordLineage(ctx, models.LineagePauseCheckpoint, gates.CheckpointOpenPlan, "planning", map[string]any{
			"reason": reason,
		})
		if _, err := r.Tasks.Transition(ctx, r.taskID, task.StatusAwaitingApproval, map[string]any{
			"checkpoint": gates.CheckpointOpenPlan,
			"reason":     reason,
		}); err != nil {
			return err
		}
		r.emit(models.EventTypeTaskProgress, map[string]any{
			"status": string(task.StatusAwaitingApproval),
		})
		return nil
	}

	if mode == models.RunModeAutonomous && hasDirective {
		r.emit(models.EventTypeModeViolation, map[string]any{
			"severity":  "error",
			"mode":      string(mode),
			"directive": fmt.Sprint(directive),
		})
		if err := r.Audit.Error(ctx, r.taskID, "mode.violation", map[string]any{
			"mode":      string(mode),
			"directive": fmt.Sprint(directive),
		}); err != nil {
			return err
		}
		if _, err := r.Tasks.Transition(ctx, r.taskID, task.StatusBlocked, map[string]any{
			"reason": "pause directive on autonomous task",
		}); err != nil {
			return err
		}
		if err := r.Tasks.SetExitReason(ctx, r.taskID, models.ExitReasonBlocked); err != nil {
			return err
		}
		return nil
	}

	_, err = r.Tasks.Transition(ctx, r.taskID, task.StatusExecuting, nil)
	return err
}
