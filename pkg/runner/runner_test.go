package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	entcheckpoint "github.com/codeready-toolchain/warden/ent/checkpoint"
	"github.com/codeready-toolchain/warden/ent/lease"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/artifacts"
	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/checkpoint"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/gates"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
	"github.com/codeready-toolchain/warden/pkg/tools"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

const testDiff = "--- a/pkg/app.go\n+++ b/pkg/app.go\n@@ -0,0 +1 @@\n+package app\n"

// stubAdapter answers plan prompts with text and diff prompts with a
// valid in-allowlist diff.
type stubAdapter struct {
	name    string
	health  tools.HealthReport
	failRun bool
}

func (s *stubAdapter) Name() string                      { return s.name }
func (s *stubAdapter) Supports() config.ToolCapabilities { return config.ToolCapabilities{} }

func (s *stubAdapter) HealthCheck(context.Context) tools.HealthReport { return s.health }

func (s *stubAdapter) Run(_ context.Context, req tools.Request, _ bool) (*tools.Result, error) {
	if s.failRun {
		return &tools.Result{
			Status:        tools.StatusFailed,
			OutputKind:    req.OutputKind,
			ErrorCategory: tools.CategoryRuntime,
			ErrorMessage:  "adapter exploded",
		}, nil
	}
	if req.OutputKind == tools.OutputDiff {
		return &tools.Result{Status: tools.StatusSuccess, OutputKind: tools.OutputDiff, Diff: testDiff}, nil
	}
	return &tools.Result{
		Status:     tools.StatusSuccess,
		OutputKind: req.OutputKind,
		Stdout:     "implement the request\ndetails follow",
	}, nil
}

type runnerFixture struct {
	client *ent.Client
	bus    *bus.Bus
	tasks  *services.TaskService
	audit  *services.AuditService
	deps   Deps
	dir    string
}

func newRunnerFixture(t *testing.T, stub *stubAdapter, gateCommand []string) *runnerFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	eventBus := bus.New()
	tasks := services.NewTaskService(client, eventBus)
	audit := services.NewAuditService(client)

	dir := t.TempDir()
	writer := artifacts.NewWriter(filepath.Join(dir, "artifacts"))
	registry := config.NewAdapterRegistry(map[string]config.ToolAdapterConfig{
		stub.name: {
			Kind:          config.AdapterKindCLI,
			ExecutionMode: config.ExecutionModeCloud,
			Capabilities:  config.ToolCapabilities{DiffQuality: config.DiffQualityHigh},
			AllowedPaths:  []string{"pkg/"},
		},
	})
	runtime := tools.NewRuntime(registry, nil, eventBus)
	runtime.Register(stub)

	deps := Deps{
		Tasks:       tasks,
		Audit:       audit,
		Lineage:     services.NewLineageService(client),
		Checkpoints: checkpoint.NewManager(client, nil, dir),
		Leases:      checkpoint.NewLeaseManager(client),
		Runtime:     runtime,
		Artifacts:   writer,
		Gates: gates.NewDoneGateRunner(map[string]config.GateConfig{
			"doctor": {Command: gateCommand},
		}, writer, ""),
		Router: NewRoutePlanner(registry, runtime),
		Ledger: checkpoint.NewLedger(client),
		Bus:    eventBus,
		Cfg: config.RunnerConfig{
			WorkerCount:             1,
			MaxIterations:           20,
			IterationSleep:          5 * time.Millisecond,
			HeartbeatInterval:       time.Second,
			LeaseTTL:                time.Minute,
			GracefulShutdownTimeout: 2 * time.Second,
			DefaultGates:            []string{"doctor"},
			RoutePlanning:           true,
		},
		Plan: NewDefaultPlanner(runtime, checkpoint.NewCache(client)).Plan,
	}
	return &runnerFixture{client: client, bus: eventBus, tasks: tasks, audit: audit, deps: deps, dir: dir}
}

func (f *runnerFixture) createTask(t *testing.T, mode models.RunMode, metadata map[string]any) *ent.Task {
	t.Helper()
	created, err := f.tasks.CreateTask(context.Background(), services.CreateTaskRequest{
		Title:    "build the widget",
		RunMode:  mode,
		Metadata: metadata,
	})
	require.NoError(t, err)
	return created
}

func TestRunnerAutonomousHappyPath(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeAutonomous, nil)
	require.NoError(t, New(f.deps, created.ID, "w-1").Run(ctx))

	done, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, done.Status)
	require.NotNil(t, done.ExitReason)
	assert.Equal(t, string(models.ExitReasonDone), *done.ExitReason)
	assert.Nil(t, done.RunnerID, "claim released on exit")

	// Artifacts on disk.
	artifactDir := filepath.Join(f.dir, "artifacts", created.ID)
	for _, name := range []string{artifacts.FileOpenPlan, artifacts.FileWorkItemsSummary, artifacts.FileGateResults} {
		_, err := os.Stat(filepath.Join(artifactDir, name))
		assert.NoError(t, err, "artifact %s", name)
	}

	// Committed planning and work item checkpoints.
	n, err := f.client.Checkpoint.Query().
		Where(entcheckpoint.TaskIDEQ(created.ID), entcheckpoint.Committed(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 2)

	// Work item lease released successfully.
	ls, err := f.client.Lease.Query().Where(lease.TaskIDEQ(created.ID)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, ls.ReleasedAt)
	require.NotNil(t, ls.Success)
	assert.True(t, *ls.Success)

	items, err := models.TaskMetadataFrom(done.Metadata).WorkItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.WorkItemCompleted, items[0].Status)
}

func TestRunnerInteractivePausesForApproval(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeInteractive, nil)

	runDone := make(chan error, 1)
	go func() { runDone <- New(f.deps, created.ID, "w-1").Run(ctx) }()

	require.Eventually(t, func() bool {
		cur, err := f.tasks.GetTask(ctx, created.ID)
		return err == nil && cur.Status == task.StatusAwaitingApproval
	}, 10*time.Second, 10*time.Millisecond)

	paused, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	ps, err := models.TaskMetadataFrom(paused.Metadata).PauseState()
	require.NoError(t, err)
	require.NotNil(t, ps)
	assert.Equal(t, gates.CheckpointOpenPlan, ps.Checkpoint)

	// Approve: clear the pause and resume execution.
	_, err = f.tasks.UpdateMetadata(ctx, created.ID, func(m *models.Metadata) error {
		m.Delete(models.MetaKeyPauseState)
		return nil
	})
	require.NoError(t, err)
	_, err = f.tasks.Transition(ctx, created.ID, task.StatusExecuting, map[string]any{"approved_by": "tester"})
	require.NoError(t, err)

	require.NoError(t, <-runDone)
	done, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, done.Status)
}

func TestRunnerAssistedPausesForApproval(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeAssisted, nil)

	runDone := make(chan error, 1)
	go func() { runDone <- New(f.deps, created.ID, "w-1").Run(ctx) }()

	// Assisted tasks stop at the open plan even without a supervisor
	// directive, same as interactive ones.
	require.Eventually(t, func() bool {
		cur, err := f.tasks.GetTask(ctx, created.ID)
		return err == nil && cur.Status == task.StatusAwaitingApproval
	}, 10*time.Second, 10*time.Millisecond)

	paused, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	ps, err := models.TaskMetadataFrom(paused.Metadata).PauseState()
	require.NoError(t, err)
	require.NotNil(t, ps)
	assert.Equal(t, gates.CheckpointOpenPlan, ps.Checkpoint)

	_, err = f.tasks.UpdateMetadata(ctx, created.ID, func(m *models.Metadata) error {
		m.Delete(models.MetaKeyPauseState)
		return nil
	})
	require.NoError(t, err)
	_, err = f.tasks.Transition(ctx, created.ID, task.StatusExecuting, map[string]any{"approved_by": "tester"})
	require.NoError(t, err)

	require.NoError(t, <-runDone)
	done, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, done.Status)
}

func TestRunnerAutonomousDirectiveBlocks(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var violations []models.Event
	f.bus.Subscribe(models.EventTypeModeViolation, func(e models.Event) { violations = append(violations, e) })

	created := f.createTask(t, models.RunModeAutonomous, map[string]any{
		models.MetaKeyPauseReason: "supervisor flagged risk",
	})
	require.NoError(t, New(f.deps, created.ID, "w-1").Run(ctx))

	blocked, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusBlocked, blocked.Status)
	require.NotNil(t, blocked.ExitReason)
	assert.Equal(t, string(models.ExitReasonBlocked), *blocked.ExitReason)
	require.Len(t, violations, 1)
	assert.Equal(t, created.ID, violations[0].Entity.ID)
}

func TestRunnerHonorsCancelRequest(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeAutonomous, nil)
	require.NoError(t, f.tasks.RequestCancel(ctx, created.ID))

	require.NoError(t, New(f.deps, created.ID, "w-1").Run(ctx))

	canceled, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCanceled, canceled.Status)
	require.NotNil(t, canceled.ExitReason)
	assert.Equal(t, string(models.ExitReasonUserCancelled), *canceled.ExitReason)
}

func TestRunnerGateFailureFeedsReplanning(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"sh", "-c", "echo broken >&2; exit 3"})
	f.deps.Cfg.MaxIterations = 8
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeAutonomous, nil)
	require.NoError(t, New(f.deps, created.ID, "w-1").Run(ctx))

	failed, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, failed.Status)
	require.NotNil(t, failed.ExitReason)
	assert.Equal(t, string(models.ExitReasonMaxIterations), *failed.ExitReason)

	// The last gate failure is preserved for inspection.
	gfc, err := models.TaskMetadataFrom(failed.Metadata).GateFailureContext()
	require.NoError(t, err)
	require.NotNil(t, gfc)
	assert.Equal(t, "doctor", gfc.GateName)
	assert.Equal(t, 3, gfc.ExitCode)
	assert.Contains(t, gfc.Stderr, "broken")
	assert.GreaterOrEqual(t, gfc.Attempt, 1)
}

func TestRunnerFailFastOnWorkItemFailure(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeAutonomous, nil)

	// Custom plan pipeline: planning succeeds without the adapter, then
	// the adapter fails every diff call.
	f.deps.Plan = func(_ context.Context, tk *ent.Task, _ *models.RoutePlan, _ *models.GateFailureContext) (*PlanResult, error) {
		stub.failRun = true
		return &PlanResult{
			Plan: artifacts.OpenPlan{
				TaskID:         tk.ID,
				GeneratedAt:    time.Now().UTC(),
				PipelineStatus: "planned",
				Stages:         []artifacts.PlanStage{{Name: "implementation", WorkItemIDs: []string{"wi-1"}}},
			},
			Items: []models.WorkItem{{ItemID: "wi-1", Title: "doomed item", Status: models.WorkItemPending}},
		}, nil
	}

	require.NoError(t, New(f.deps, created.ID, "w-1").Run(ctx))

	failed, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, failed.Status)
	require.NotNil(t, failed.ExitReason)
	assert.Equal(t, string(models.ExitReasonFatalError), *failed.ExitReason)

	items, err := models.TaskMetadataFrom(failed.Metadata).WorkItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.WorkItemFailed, items[0].Status)
	require.NotNil(t, items[0].Output)
	assert.Contains(t, items[0].Output.Error, "exploded")
}

func TestRunnerTimeoutHardLimit(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeAutonomous, map[string]any{
		models.MetaKeyTimeout: models.TimeoutConfig{HardLimit: models.Duration(time.Nanosecond)},
	})
	require.NoError(t, New(f.deps, created.ID, "w-1").Run(ctx))

	failed, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, failed.Status)
	require.NotNil(t, failed.ExitReason)
	assert.Equal(t, string(models.ExitReasonTimeout), *failed.ExitReason)
}

func TestPoolRunsClaimedTasks(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeAutonomous, nil)

	pool := NewPool(f.deps)
	pool.Start(ctx)
	defer pool.Stop()

	require.Eventually(t, func() bool {
		cur, err := f.tasks.GetTask(ctx, created.ID)
		return err == nil && cur.Status == task.StatusSucceeded
	}, 10*time.Second, 10*time.Millisecond)
}

func TestRecoveryMarksCheckpointedItemDone(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx := context.Background()

	created := f.createTask(t, models.RunModeAutonomous, nil)
	_, err := f.tasks.UpdateMetadata(ctx, created.ID, func(m *models.Metadata) error {
		m.SetWorkItems([]models.WorkItem{
			{ItemID: "wi-1", Title: "first", Status: models.WorkItemPending},
			{ItemID: "wi-2", Title: "second", Status: models.WorkItemPending},
		})
		return nil
	})
	require.NoError(t, err)

	// Simulate a crash after wi-1 completed: committed checkpoint with
	// verifiable evidence, but metadata still says pending.
	evidencePath := filepath.Join(f.dir, "wi-1.done")
	require.NoError(t, os.WriteFile(evidencePath, []byte("ok"), 0o644))
	cp, err := f.deps.Checkpoints.BeginStep(ctx, created.ID, checkpoint.TypeWorkItemComplete, nil, "wi-1")
	require.NoError(t, err)
	require.NoError(t, f.deps.Checkpoints.CommitStep(ctx, cp.ID, models.EvidencePack{
		Items:      []models.Evidence{{Kind: models.EvidenceArtifactExists, Path: evidencePath}},
		RequireAll: true,
	}))

	var resumed []models.Event
	f.bus.Subscribe(models.EventTypeRecoveryResumed, func(e models.Event) { resumed = append(resumed, e) })

	r := New(f.deps, created.ID, "w-2")
	require.NoError(t, r.recover(ctx))

	reloaded, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	items, err := models.TaskMetadataFrom(reloaded.Metadata).WorkItems()
	require.NoError(t, err)
	assert.Equal(t, models.WorkItemCompleted, items[0].Status)
	assert.Equal(t, models.WorkItemPending, items[1].Status)
	require.Len(t, resumed, 1)
	assert.Equal(t, cp.ID, resumed[0].Payload["checkpoint_id"])
}

func TestRunnerRestartResumesReleasedTask(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeAutonomous, nil)

	// First worker claims, advances one state, then shuts down cleanly
	// and releases its claim.
	claimed, err := f.tasks.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	require.Equal(t, created.ID, claimed.ID)
	_, err = f.tasks.Transition(ctx, created.ID, task.StatusIntentProcessing, nil)
	require.NoError(t, err)
	require.NoError(t, f.tasks.ReleaseRunner(ctx, created.ID))

	// A worker from the restarted process picks the task back up.
	reclaimed, err := f.tasks.ClaimNext(ctx, "w-2")
	require.NoError(t, err)
	require.Equal(t, created.ID, reclaimed.ID)
	assert.Equal(t, task.StatusIntentProcessing, reclaimed.Status)

	require.NoError(t, New(f.deps, created.ID, "w-2").Run(ctx))
	done, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, done.Status)
}

func TestRecoveryResumesCommittedPlan(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx := context.Background()

	// Simulate a crash after planning committed its checkpoint but
	// before the status transition: plan artifact and work items are
	// persisted, the task is still in planning.
	setup := func(t *testing.T, mode models.RunMode) *ent.Task {
		created := f.createTask(t, mode, nil)
		for _, next := range []task.Status{task.StatusIntentProcessing, task.StatusPlanning} {
			_, err := f.tasks.Transition(ctx, created.ID, next, nil)
			require.NoError(t, err)
		}
		_, err := f.tasks.UpdateMetadata(ctx, created.ID, func(m *models.Metadata) error {
			m.SetWorkItems([]models.WorkItem{{ItemID: "wi-1", Title: "planned item", Status: models.WorkItemPending}})
			return nil
		})
		require.NoError(t, err)

		planPath := filepath.Join(f.dir, created.ID+"-plan.json")
		require.NoError(t, os.WriteFile(planPath, []byte("{}"), 0o644))
		cp, err := f.deps.Checkpoints.BeginStep(ctx, created.ID, checkpoint.TypePlanningComplete, map[string]any{
			"iteration": 3,
			"primary":   "coder",
		}, "")
		require.NoError(t, err)
		require.NoError(t, f.deps.Checkpoints.CommitStep(ctx, cp.ID, models.EvidencePack{
			Items:      []models.Evidence{{Kind: models.EvidenceArtifactExists, Path: planPath}},
			RequireAll: true,
		}))
		return created
	}

	t.Run("autonomous advances to executing", func(t *testing.T) {
		created := setup(t, models.RunModeAutonomous)
		require.NoError(t, New(f.deps, created.ID, "w-2").recover(ctx))

		resumed, err := f.tasks.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusExecuting, resumed.Status, "replanning skipped")
		assert.Equal(t, 3, models.TaskMetadataFrom(resumed.Metadata).Iteration(), "iteration restored from the snapshot")
	})

	t.Run("interactive pauses at the open plan", func(t *testing.T) {
		created := setup(t, models.RunModeInteractive)
		require.NoError(t, New(f.deps, created.ID, "w-2").recover(ctx))

		resumed, err := f.tasks.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusAwaitingApproval, resumed.Status)
	})
}

func TestRunnerCoordinatorFallbackWithoutWorkItems(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created := f.createTask(t, models.RunModeAutonomous, nil)

	// Planning pipeline that yields a plan with no work item breakdown.
	f.deps.Plan = func(_ context.Context, tk *ent.Task, _ *models.RoutePlan, _ *models.GateFailureContext) (*PlanResult, error) {
		return &PlanResult{
			Plan: artifacts.OpenPlan{
				TaskID:         tk.ID,
				GeneratedAt:    time.Now().UTC(),
				PipelineStatus: "planned",
			},
		}, nil
	}

	require.NoError(t, New(f.deps, created.ID, "w-1").Run(ctx))

	done, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, done.Status)

	items, err := models.TaskMetadataFrom(done.Metadata).WorkItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "coordinator", items[0].ItemID)
	assert.Equal(t, models.WorkItemCompleted, items[0].Status)
}

func TestRerouteEventCarriesReasonAndFallback(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx := context.Background()

	created := f.createTask(t, models.RunModeAutonomous, nil)
	for _, next := range []task.Status{task.StatusIntentProcessing, task.StatusPlanning} {
		_, err := f.tasks.Transition(ctx, created.ID, next, nil)
		require.NoError(t, err)
	}
	_, err := f.tasks.UpdateMetadata(ctx, created.ID, func(m *models.Metadata) error {
		m.SetRoutePlan(models.RoutePlan{Primary: "ghost", FallbackChain: []string{"coder"}})
		return nil
	})
	require.NoError(t, err)

	var rerouted []models.Event
	f.bus.Subscribe(models.EventTypeTaskRerouted, func(e models.Event) { rerouted = append(rerouted, e) })

	loaded, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	require.NoError(t, New(f.deps, created.ID, "w-1").plan(ctx, loaded))

	require.Len(t, rerouted, 1)
	payload := rerouted[0].Payload
	assert.Equal(t, "ghost", payload["from"])
	assert.Equal(t, "coder", payload["to"])
	assert.Equal(t, "primary unhealthy, promoted fallback", payload["reason"])
	assert.Equal(t, []string{"ghost"}, payload["fallback"])
}

func TestOrphanReapsDeadRunners(t *testing.T) {
	stub := &stubAdapter{name: "coder", health: tools.HealthReport{Status: tools.HealthConnected}}
	f := newRunnerFixture(t, stub, []string{"true"})
	ctx := context.Background()

	created := f.createTask(t, models.RunModeAutonomous, nil)
	claimed, err := f.tasks.ClaimNext(ctx, "w-dead")
	require.NoError(t, err)
	require.Equal(t, created.ID, claimed.ID)
	_, err = f.tasks.Transition(ctx, created.ID, task.StatusIntentProcessing, nil)
	require.NoError(t, err)

	// Age the heartbeat past the threshold.
	stale := time.Now().Add(-time.Hour)
	err = f.client.Task.UpdateOneID(created.ID).SetHeartbeatAt(stale).Exec(ctx)
	require.NoError(t, err)

	monitor := NewOrphan(f.tasks, f.audit, f.deps.Leases, f.bus, 5*time.Minute, time.Hour)
	monitor.runOnce(ctx)

	reaped, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, reaped.Status)
	require.NotNil(t, reaped.ExitReason)
	assert.Equal(t, string(models.ExitReasonFatalError), *reaped.ExitReason)
	assert.Nil(t, reaped.RunnerID)
}
