package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// legalTransitions enumerates every edge of the task state machine.
// Nothing else is legal; terminal statuses have no outgoing edges.
var legalTransitions = map[task.Status][]task.Status{
	task.StatusCreated:          {task.StatusIntentProcessing, task.StatusFailed, task.StatusCanceled, task.StatusBlocked},
	task.StatusIntentProcessing: {task.StatusPlanning, task.StatusFailed, task.StatusCanceled, task.StatusBlocked},
	task.StatusPlanning:         {task.StatusAwaitingApproval, task.StatusExecuting, task.StatusFailed, task.StatusCanceled, task.StatusBlocked},
	task.StatusAwaitingApproval: {task.StatusExecuting, task.StatusFailed, task.StatusCanceled, task.StatusBlocked},
	task.StatusExecuting:        {task.StatusVerifying, task.StatusFailed, task.StatusCanceled, task.StatusBlocked},
	task.StatusVerifying:        {task.StatusSucceeded, task.StatusPlanning, task.StatusFailed, task.StatusCanceled, task.StatusBlocked},
}

// IsTerminal reports whether a status has no outgoing edges.
func IsTerminal(s task.Status) bool {
	switch s {
	case task.StatusSucceeded, task.StatusFailed, task.StatusCanceled, task.StatusBlocked:
		return true
	default:
		return false
	}
}

// TransitionLegal checks one edge against the state machine.
func TransitionLegal(from, to task.Status) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ActiveStatuses are the non-terminal statuses a runner may hold.
var ActiveStatuses = []task.Status{
	task.StatusIntentProcessing,
	task.StatusPlanning,
	task.StatusAwaitingApproval,
	task.StatusExecuting,
	task.StatusVerifying,
}

// CreateTaskRequest carries the fields needed to create a task.
type CreateTaskRequest struct {
	TaskID    string
	Title     string
	RunMode   models.RunMode
	Gates     []string
	ProjectID string
	NLRequest string
	Metadata  map[string]any
}

// TaskService manages task lifecycle: creation, status transitions with
// legality enforcement, terminal immutability, claims, and heartbeats.
type TaskService struct {
	client *ent.Client
	bus    *bus.Bus
}

// NewTaskService creates a new TaskService. eventBus may be nil.
func NewTaskService(client *ent.Client, eventBus *bus.Bus) *TaskService {
	return &TaskService{client: client, bus: eventBus}
}

// CreateTask creates a task in status created, writes the creation
// audit row, and emits task.created.
func (s *TaskService) CreateTask(httpCtx context.Context, req CreateTaskRequest) (*ent.Task, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.RunMode != "" && !req.RunMode.IsValid() {
		return nil, NewValidationError("run_mode", fmt.Sprintf("unknown mode %q", req.RunMode))
	}
	if req.TaskID == "" {
		req.TaskID = uuid.New().String()
	}
	if req.RunMode == "" {
		req.RunMode = models.RunModeInteractive
	}

	meta := models.TaskMetadataFrom(req.Metadata)
	if len(req.Gates) > 0 {
		meta.SetGates(req.Gates)
	}
	if req.ProjectID != "" {
		meta.Set(models.MetaKeyProjectID, req.ProjectID)
	}
	if req.NLRequest != "" {
		meta.Set(models.MetaKeyNLRequest, req.NLRequest)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Create().
		SetID(req.TaskID).
		SetTitle(req.Title).
		SetStatus(task.StatusCreated).
		SetRunMode(task.RunMode(req.RunMode)).
		SetMetadata(meta.ToMap()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	_, err = tx.AuditEntry.Create().
		SetTaskID(t.ID).
		SetEventType(models.EventTypeTaskCreated).
		SetPayload(map[string]any{"title": t.Title, "run_mode": string(t.RunMode)}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to write creation audit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.bus != nil {
		s.bus.Emit(models.NewTaskEvent(models.EventTypeTaskCreated, t.ID, map[string]any{
			"title":    t.Title,
			"run_mode": string(t.RunMode),
		}))
	}
	return t, nil
}

// conn resolves the entity client, honoring a transaction bound to the
// context so callers can group service writes into one atomic unit.
func (s *TaskService) conn(ctx context.Context) *ent.Client {
	if tx := ent.TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return s.client
}

// txFor returns the transaction bound to the context when one is
// present; the boolean reports whether the caller owns commit and
// rollback, which is only the case for a freshly opened transaction.
func (s *TaskService) txFor(ctx context.Context) (*ent.Tx, bool, error) {
	if ambient := ent.TxFromContext(ctx); ambient != nil {
		return ambient, false, nil
	}
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	return tx, true, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.conn(ctx).Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	return t, nil
}

// Transition moves a task along one state machine edge and writes the
// transition to the audit stream atomically. Terminal tasks are
// immutable.
func (s *TaskService) Transition(ctx context.Context, taskID string, to task.Status, payload map[string]any) (*ent.Task, error) {
	tx, own, err := s.txFor(ctx)
	if err != nil {
		return nil, err
	}
	if own {
		defer tx.Rollback()
	}

	t, err := tx.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task %s: %w", taskID, err)
	}

	from := t.Status
	if IsTerminal(from) {
		return nil, fmt.Errorf("%w: %s is %s", ErrTerminalTask, taskID, from)
	}
	if !TransitionLegal(from, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}

	update := t.Update().SetStatus(to)
	if from == task.StatusCreated {
		update.SetStartedAt(time.Now())
	}
	if IsTerminal(to) {
		update.SetCompletedAt(time.Now())
	}
	t, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	auditPayload := map[string]any{"from": string(from), "to": string(to)}
	for k, v := range payload {
		auditPayload[k] = v
	}

	_, err = tx.AuditEntry.Create().
		SetTaskID(taskID).
		SetEventType("status.transition").
		SetPayload(auditPayload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to write transition audit: %w", err)
	}

	if own {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}
	return t, nil
}

// SetExitReason backfills the terminal explanation exactly once.
func (s *TaskService) SetExitReason(ctx context.Context, taskID string, reason models.ExitReason) error {
	if !reason.IsValid() {
		return NewValidationError("exit_reason", fmt.Sprintf("unknown reason %q", reason))
	}

	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if !IsTerminal(t.Status) {
		return fmt.Errorf("%w: exit_reason only applies to terminal tasks", ErrInvalidInput)
	}
	if t.ExitReason != nil {
		return fmt.Errorf("%w: exit_reason already set to %s", ErrInvalidInput, *t.ExitReason)
	}

	_, err = t.Update().SetExitReason(string(reason)).Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set exit reason: %w", err)
	}
	return nil
}

// UpdateMetadata applies a mutation to the task's metadata map. Not
// allowed on terminal tasks.
func (s *TaskService) UpdateMetadata(ctx context.Context, taskID string, mutate func(*models.Metadata) error) (*ent.Task, error) {
	tx, own, err := s.txFor(ctx)
	if err != nil {
		return nil, err
	}
	if own {
		defer tx.Rollback()
	}

	t, err := tx.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task %s: %w", taskID, err)
	}
	if IsTerminal(t.Status) {
		return nil, fmt.Errorf("%w: %s", ErrTerminalTask, taskID)
	}

	meta := models.TaskMetadataFrom(t.Metadata)
	if err := mutate(meta); err != nil {
		return nil, err
	}

	t, err = t.Update().SetMetadata(meta.ToMap()).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}
	if own {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}
	return t, nil
}

// RequestCancel sets the cooperative cancel flag; the runner honors it
// at its next iteration.
func (s *TaskService) RequestCancel(ctx context.Context, taskID string) error {
	_, err := s.UpdateMetadata(ctx, taskID, func(m *models.Metadata) error {
		m.SetCancelRequested(true)
		return nil
	})
	return err
}

// claimableStatuses are the statuses ClaimNext picks up: fresh tasks
// plus unclaimed mid-lifecycle ones left behind by a runner shutdown.
// Paused tasks are excluded; approval flips them to executing, which
// is claimable again.
var claimableStatuses = []task.Status{
	task.StatusCreated,
	task.StatusIntentProcessing,
	task.StatusPlanning,
	task.StatusExecuting,
	task.StatusVerifying,
}

// ClaimNext atomically claims the oldest unclaimed claimable task for a
// worker. The compare-and-set update (runner_id still NULL) resolves
// races between workers; the loser moves to the next candidate.
func (s *TaskService) ClaimNext(ctx context.Context, runnerID string) (*ent.Task, error) {
	candidates, err := s.client.Task.Query().
		Where(task.StatusIn(claimableStatuses...), task.RunnerIDIsNil()).
		Order(ent.Asc(task.FieldCreatedAt)).
		Limit(5).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query claimable tasks: %w", err)
	}

	for _, candidate := range candidates {
		n, err := s.client.Task.Update().
			Where(task.IDEQ(candidate.ID), task.RunnerIDIsNil()).
			SetRunnerID(runnerID).
			SetHeartbeatAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim task %s: %w", candidate.ID, err)
		}
		if n == 0 {
			continue // lost the race
		}
		return s.GetTask(ctx, candidate.ID)
	}
	return nil, ErrNoClaimableTask
}

// Heartbeat refreshes the claim timestamp.
func (s *TaskService) Heartbeat(ctx context.Context, taskID string) error {
	_, err := s.client.Task.Update().
		Where(task.IDEQ(taskID)).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat task %s: %w", taskID, err)
	}
	return nil
}

// ReleaseRunner clears the claim on runner exit.
func (s *TaskService) ReleaseRunner(ctx context.Context, taskID string) error {
	_, err := s.client.Task.Update().
		Where(task.IDEQ(taskID)).
		ClearRunnerID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release runner on task %s: %w", taskID, err)
	}
	return nil
}

// FindOrphans returns active claimed tasks whose heartbeat is older
// than the threshold.
func (s *TaskService) FindOrphans(ctx context.Context, threshold time.Duration) ([]*ent.Task, error) {
	cutoff := time.Now().Add(-threshold)
	orphans, err := s.client.Task.Query().
		Where(
			task.StatusIn(ActiveStatuses...),
			task.RunnerIDNotNil(),
			task.HeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphans: %w", err)
	}
	return orphans, nil
}

// ListByStatus returns tasks in a status, oldest first.
func (s *TaskService) ListByStatus(ctx context.Context, status task.Status, limit int) ([]*ent.Task, error) {
	q := s.client.Task.Query().
		Where(task.StatusEQ(status)).
		Order(ent.Asc(task.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	tasks, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by status: %w", err)
	}
	return tasks, nil
}
