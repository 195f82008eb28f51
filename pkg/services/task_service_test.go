package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent/auditentry"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/models"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	b := bus.New()
	service := NewTaskService(client, b)
	ctx := context.Background()

	t.Run("creates task with audit row and event", func(t *testing.T) {
		var events []models.Event
		unsub := b.Subscribe(models.EventTypeTaskCreated, func(e models.Event) { events = append(events, e) })
		defer unsub()

		created, err := service.CreateTask(ctx, CreateTaskRequest{
			TaskID:  "t-create-1",
			Title:   "fix the flaky test",
			RunMode: models.RunModeAssisted,
			Gates:   []string{"doctor", "unit"},
		})
		require.NoError(t, err)
		assert.Equal(t, "t-create-1", created.ID)
		assert.Equal(t, task.StatusCreated, created.Status)
		assert.Equal(t, task.RunModeAssisted, created.RunMode)

		meta := models.TaskMetadataFrom(created.Metadata)
		assert.Equal(t, []string{"doctor", "unit"}, meta.Gates())

		entries, err := client.AuditEntry.Query().
			Where(auditentry.TaskIDEQ("t-create-1")).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.EventTypeTaskCreated, entries[0].EventType)

		require.Len(t, events, 1)
		assert.Equal(t, "t-create-1", events[0].Entity.ID)
	})

	t.Run("generates task id when omitted", func(t *testing.T) {
		created, err := service.CreateTask(ctx, CreateTaskRequest{Title: "auto id"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, task.RunModeInteractive, created.RunMode, "interactive is the default mode")
	})

	t.Run("rejects duplicate task id", func(t *testing.T) {
		_, err := service.CreateTask(ctx, CreateTaskRequest{TaskID: "t-create-1", Title: "again"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateTask(ctx, CreateTaskRequest{Title: ""})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateTask(ctx, CreateTaskRequest{Title: "x", RunMode: "yolo"})
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_Transition(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client, nil)
	ctx := context.Background()

	mkTask := func(id string) {
		_, err := service.CreateTask(ctx, CreateTaskRequest{TaskID: id, Title: id})
		require.NoError(t, err)
	}

	t.Run("walks the happy path", func(t *testing.T) {
		mkTask("t-happy")
		path := []task.Status{
			task.StatusIntentProcessing,
			task.StatusPlanning,
			task.StatusExecuting,
			task.StatusVerifying,
			task.StatusSucceeded,
		}
		for _, next := range path {
			updated, err := service.Transition(ctx, "t-happy", next, nil)
			require.NoError(t, err, "transition to %s", next)
			assert.Equal(t, next, updated.Status)
		}

		final, err := service.GetTask(ctx, "t-happy")
		require.NoError(t, err)
		assert.NotNil(t, final.StartedAt)
		assert.NotNil(t, final.CompletedAt)

		entries, err := client.AuditEntry.Query().
			Where(auditentry.TaskIDEQ("t-happy"), auditentry.EventTypeEQ("status.transition")).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, len(path), "one audit row per edge")
		assert.Equal(t, "created", entries[0].Payload["from"])
		assert.Equal(t, "intent_processing", entries[0].Payload["to"])
	})

	t.Run("verifying may loop back to planning", func(t *testing.T) {
		mkTask("t-loop")
		for _, next := range []task.Status{
			task.StatusIntentProcessing, task.StatusPlanning,
			task.StatusExecuting, task.StatusVerifying,
		} {
			_, err := service.Transition(ctx, "t-loop", next, nil)
			require.NoError(t, err)
		}
		updated, err := service.Transition(ctx, "t-loop", task.StatusPlanning, map[string]any{"gate": "unit"})
		require.NoError(t, err)
		assert.Equal(t, task.StatusPlanning, updated.Status)
	})

	t.Run("rejects illegal edges", func(t *testing.T) {
		mkTask("t-illegal")
		_, err := service.Transition(ctx, "t-illegal", task.StatusSucceeded, nil)
		assert.ErrorIs(t, err, ErrIllegalTransition)

		_, err = service.Transition(ctx, "t-illegal", task.StatusVerifying, nil)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("terminal tasks are immutable", func(t *testing.T) {
		mkTask("t-term")
		_, err := service.Transition(ctx, "t-term", task.StatusFailed, nil)
		require.NoError(t, err)

		_, err = service.Transition(ctx, "t-term", task.StatusIntentProcessing, nil)
		assert.ErrorIs(t, err, ErrTerminalTask)

		_, err = service.UpdateMetadata(ctx, "t-term", func(m *models.Metadata) error {
			m.Set("k", "v")
			return nil
		})
		assert.ErrorIs(t, err, ErrTerminalTask)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := service.Transition(ctx, "nope", task.StatusIntentProcessing, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_SetExitReason(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client, nil)
	ctx := context.Background()

	_, err := service.CreateTask(ctx, CreateTaskRequest{TaskID: "t-exit", Title: "t"})
	require.NoError(t, err)

	t.Run("rejected on non-terminal task", func(t *testing.T) {
		err := service.SetExitReason(ctx, "t-exit", models.ExitReasonDone)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("backfills once", func(t *testing.T) {
		_, err := service.Transition(ctx, "t-exit", task.StatusFailed, nil)
		require.NoError(t, err)

		require.NoError(t, service.SetExitReason(ctx, "t-exit", models.ExitReasonFatalError))

		loaded, err := service.GetTask(ctx, "t-exit")
		require.NoError(t, err)
		require.NotNil(t, loaded.ExitReason)
		assert.Equal(t, "fatal_error", *loaded.ExitReason)

		err = service.SetExitReason(ctx, "t-exit", models.ExitReasonDone)
		assert.ErrorIs(t, err, ErrInvalidInput, "exit_reason is write-once")
	})

	t.Run("rejects unknown reasons", func(t *testing.T) {
		err := service.SetExitReason(ctx, "t-exit", "gave_up")
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_ClaimAndHeartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client, nil)
	ctx := context.Background()

	_, err := service.CreateTask(ctx, CreateTaskRequest{TaskID: "t-claim", Title: "t"})
	require.NoError(t, err)

	claimed, err := service.ClaimNext(ctx, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, "t-claim", claimed.ID)
	require.NotNil(t, claimed.RunnerID)
	assert.Equal(t, "worker-1", *claimed.RunnerID)
	assert.NotNil(t, claimed.HeartbeatAt)

	_, err = service.ClaimNext(ctx, "worker-2")
	assert.ErrorIs(t, err, ErrNoClaimableTask, "claimed tasks are invisible to other workers")

	require.NoError(t, service.Heartbeat(ctx, "t-claim"))

	require.NoError(t, service.ReleaseRunner(ctx, "t-claim"))
	released, err := service.GetTask(ctx, "t-claim")
	require.NoError(t, err)
	assert.Nil(t, released.RunnerID)
}

func TestTaskService_ClaimNextResumesReleasedTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client, nil)
	ctx := context.Background()

	_, err := service.CreateTask(ctx, CreateTaskRequest{TaskID: "t-resume", Title: "t"})
	require.NoError(t, err)
	_, err = service.ClaimNext(ctx, "worker-1")
	require.NoError(t, err)
	for _, next := range []task.Status{task.StatusIntentProcessing, task.StatusPlanning} {
		_, err = service.Transition(ctx, "t-resume", next, nil)
		require.NoError(t, err)
	}
	require.NoError(t, service.ReleaseRunner(ctx, "t-resume"))

	reclaimed, err := service.ClaimNext(ctx, "worker-2")
	require.NoError(t, err, "mid-lifecycle tasks without a runner are claimable")
	assert.Equal(t, "t-resume", reclaimed.ID)
	assert.Equal(t, task.StatusPlanning, reclaimed.Status)
	require.NotNil(t, reclaimed.RunnerID)
	assert.Equal(t, "worker-2", *reclaimed.RunnerID)

	t.Run("paused tasks are not claimable", func(t *testing.T) {
		_, err := service.Transition(ctx, "t-resume", task.StatusAwaitingApproval, nil)
		require.NoError(t, err)
		require.NoError(t, service.ReleaseRunner(ctx, "t-resume"))

		_, err = service.ClaimNext(ctx, "worker-3")
		assert.ErrorIs(t, err, ErrNoClaimableTask)
	})
}

func TestTaskService_FindOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client, nil)
	ctx := context.Background()

	_, err := service.CreateTask(ctx, CreateTaskRequest{TaskID: "t-orphan", Title: "t"})
	require.NoError(t, err)
	_, err = service.ClaimNext(ctx, "worker-1")
	require.NoError(t, err)
	_, err = service.Transition(ctx, "t-orphan", task.StatusIntentProcessing, nil)
	require.NoError(t, err)

	// Fresh heartbeat: not an orphan.
	orphans, err := service.FindOrphans(ctx, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// Age the heartbeat past the threshold.
	_, err = client.Task.Update().
		Where(task.IDEQ("t-orphan")).
		SetHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	orphans, err = service.FindOrphans(ctx, time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "t-orphan", orphans[0].ID)
}

func TestTaskService_RequestCancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client, nil)
	ctx := context.Background()

	_, err := service.CreateTask(ctx, CreateTaskRequest{TaskID: "t-cancel", Title: "t"})
	require.NoError(t, err)

	require.NoError(t, service.RequestCancel(ctx, "t-cancel"))

	loaded, err := service.GetTask(ctx, "t-cancel")
	require.NoError(t, err)
	assert.True(t, models.TaskMetadataFrom(loaded.Metadata).CancelRequested())
}
