// Package runner owns task execution: one runner drives one task
// through the lifecycle state machine, checkpointing progress, leasing
// work items, and honoring the pause and timeout contracts. A bounded
// pool claims created tasks; orphan sweeps reap dead runners.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/artifacts"
	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/checkpoint"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/gates"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
	"github.com/codeready-toolchain/warden/pkg/tools"
)

// Deps bundles everything a runner needs. One Deps value is shared by
// the whole pool.
type Deps struct {
	Tasks       *services.TaskService
	Audit       *services.AuditService
	Lineage     *services.LineageService
	Checkpoints *checkpoint.Manager
	Leases      *checkpoint.LeaseManager
	Runtime     *tools.Runtime
	Artifacts   *artifacts.Writer
	Gates       *gates.DoneGateRunner
	Router      *RoutePlanner
	Ledger      *checkpoint.Ledger
	Bus         *bus.Bus
	Cfg         config.RunnerConfig
	Projects    map[string]config.ProjectSettings
	Plan        PlanFn
}

// Runner drives one claimed task to a terminal state.
type Runner struct {
	Deps
	taskID   string
	workerID string
}

// New creates a runner for a claimed task.
func New(deps Deps, taskID, workerID string) *Runner {
	return &Runner{Deps: deps, taskID: taskID, workerID: workerID}
}

// Run executes the per-iteration contract until the task is terminal
// or the context is canceled: terminal check, timeout, cancel signal,
// heartbeat, state dispatch, bounded sleep.
func (r *Runner) Run(ctx context.Context) error {
	r.recordLineage(ctx, models.LineageRunnerSpawn, r.workerID, "spawn", nil)

	if err := r.recover(ctx); err != nil {
		slog.Warn("Checkpoint recovery failed, starting from scratch",
			"task_id", r.taskID, "error", err)
	}

	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.Tasks.ReleaseRunner(cleanupCtx, r.taskID); err != nil {
			slog.Error("Failed to release runner claim", "task_id", r.taskID, "error", err)
		}
		r.recordLineage(cleanupCtx, models.LineageRunnerExit, r.workerID, "exit", nil)
	}()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		t, err := r.Tasks.GetTask(ctx, r.taskID)
		if err != nil {
			return fmt.Errorf("failed to load task %s: %w", r.taskID, err)
		}
		if services.IsTerminal(t.Status) {
			return nil
		}

		meta := models.TaskMetadataFrom(t.Metadata)

		if done, err := r.checkTimeout(ctx, t, meta); err != nil {
			return err
		} else if done {
			return nil
		}

		if meta.CancelRequested() {
			return r.cancelTask(ctx)
		}

		if err := r.Tasks.Heartbeat(ctx, r.taskID); err != nil {
			slog.Warn("Heartbeat failed", "task_id", r.taskID, "error", err)
		}

		// Idling for approval does not consume iteration budget.
		if t.Status != task.StatusAwaitingApproval {
			iteration := meta.Iteration() + 1
			if r.Cfg.MaxIterations > 0 && iteration > r.Cfg.MaxIterations {
				return r.fail(ctx, models.ExitReasonMaxIterations,
					fmt.Sprintf("iteration cap %d reached", r.Cfg.MaxIterations))
			}
			if _, err := r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
				m.SetIteration(iteration)
				return nil
			}); err != nil {
				return err
			}
		}

		if err := r.dispatch(ctx, t); err != nil {
			return r.fail(ctx, models.ExitReasonFatalError, err.Error())
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.Cfg.IterationSleep):
		}
	}
}

// dispatch runs one state handler. awaiting_approval has no handler:
// the runner idles until the ops API approves or cancels.
func (r *Runner) dispatch(ctx context.Context, t *ent.Task) error {
	switch t.Status {
	case task.StatusCreated:
		_, err := r.Tasks.Transition(ctx, r.taskID, task.StatusIntentProcessing, nil)
		return err
	case task.StatusIntentProcessing:
		return r.processIntent(ctx, t)
	case task.StatusPlanning:
		return r.plan(ctx, t)
	case task.StatusAwaitingApproval:
		return nil
	case task.StatusExecuting:
		return r.execute(ctx, t)
	case task.StatusVerifying:
		return r.verify(ctx, t)
	default:
		return fmt.Errorf("no handler for status %s", t.Status)
	}
}

// processIntent resolves gates, project settings, and the initial route
// plan, then advances to planning.
func (r *Runner) processIntent(ctx context.Context, t *ent.Task) error {
	route, err := r.Router.Plan(ctx)
	if err != nil {
		return fmt.Errorf("route planning: %w", err)
	}

	_, err = r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
		m.SetRoutePlan(*route)
		if len(m.Gates()) == 0 && len(r.Cfg.DefaultGates) > 0 {
			m.SetGates(r.Cfg.DefaultGates)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := r.Audit.Info(ctx, r.taskID, "intent.processed", map[string]any{
		"primary":  route.Primary,
		"fallback": route.FallbackChain,
	}); err != nil {
		return err
	}
	_, err = r.Tasks.Transition(ctx, r.taskID, task.StatusPlanning, nil)
	return err
}

// checkTimeout enforces the per-task budget: one audit warning at the
// soft limit, failure with exit_reason=timeout at the hard limit.
func (r *Runner) checkTimeout(ctx context.Context, t *ent.Task, meta *models.Metadata) (bool, error) {
	cfg, err := meta.TimeoutConfig()
	if err != nil || cfg == nil {
		return false, nil
	}
	started := t.CreatedAt
	if t.StartedAt != nil {
		started = *t.StartedAt
	}
	elapsed := time.Since(started)

	if cfg.HardLimit > 0 && elapsed > cfg.HardLimit.Std() {
		if err := r.fail(ctx, models.ExitReasonTimeout,
			fmt.Sprintf("hard timeout after %s", elapsed.Round(time.Second))); err != nil {
			return false, err
		}
		return true, nil
	}

	if cfg.WarningAfter > 0 && elapsed > cfg.WarningAfter.Std() {
		state, _ := meta.TimeoutState()
		if state == nil || state.WarnedAt.IsZero() {
			if err := r.Audit.Warn(ctx, r.taskID, "timeout.warning", map[string]any{
				"elapsed": elapsed.String(),
				"limit":   cfg.HardLimit.Std().String(),
			}); err != nil {
				return false, err
			}
			_, err := r.Tasks.UpdateMetadata(ctx, r.taskID, func(m *models.Metadata) error {
				m.SetTimeoutState(models.TimeoutState{
					StartedAt:   started,
					WarnedAt:    time.Now(),
					LastChecked: time.Now(),
				})
				return nil
			})
			if err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

// cancelTask honors the cooperative cancel signal.
func (r *Runner) cancelTask(ctx context.Context) error {
	if _, err := r.Tasks.Transition(ctx, r.taskID, task.StatusCanceled, map[string]any{
		"requested_by": "user",
	}); err != nil {
		return err
	}
	if err := r.Tasks.SetExitReason(ctx, r.taskID, models.ExitReasonUserCancelled); err != nil {
		slog.Warn("Failed to set exit reason", "task_id", r.taskID, "error", err)
	}
	r.emit(models.EventTypeTaskCancelled, nil)
	return nil
}

// fail terminates the task. Transition errors are swallowed so a fail
// on an already-terminal task stays idempotent.
func (r *Runner) fail(ctx context.Context, reason models.ExitReason, message string) error {
	if _, err := r.Tasks.Transition(ctx, r.taskID, task.StatusFailed, map[string]any{
		"error": message,
	}); err != nil {
		slog.Warn("Fail transition rejected", "task_id", r.taskID, "error", err)
		return nil
	}
	if err := r.Tasks.SetExitReason(ctx, r.taskID, reason); err != nil {
		slog.Warn("Failed to set exit reason", "task_id", r.taskID, "error", err)
	}
	r.emit(models.EventTypeTaskFailed, map[string]any{
		"error":       message,
		"exit_reason": string(reason),
	})
	return nil
}

func (r *Runner) emit(eventType string, payload map[string]any) {
	if r.Bus != nil {
		r.Bus.Emit(models.NewTaskEvent(eventType, r.taskID, payload))
	}
}

func (r *Runner) recordLineage(ctx context.Context, kind models.LineageKind, refID, phase string, metadata map[string]any) {
	if err := r.Lineage.Record(ctx, r.taskID, kind, refID, phase, metadata); err != nil {
		slog.Warn("Failed to record lineage", "task_id", r.taskID, "kind", kind, "error", err)
	}
}
