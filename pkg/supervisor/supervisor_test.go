package supervisor

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/decision"
	"github.com/codeready-toolchain/warden/pkg/gates"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

type supervisorFixture struct {
	client *ent.Client
	bus    *bus.Bus
	tasks  *services.TaskService
	audit  *services.AuditService
	sup    *Supervisor
}

func newSupervisorFixture(t *testing.T) *supervisorFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	eventBus := bus.New()
	tasks := services.NewTaskService(client, eventBus)
	audit := services.NewAuditService(client)
	warnings := services.NewSystemWarningsService()
	recorder := decision.NewRecorder(client)
	redlines, err := gates.NewRedlineValidator()
	require.NoError(t, err)

	cfg := config.SupervisorConfig{
		PollInterval:      50 * time.Millisecond,
		BacklogSlowdownAt: 500,
		Retention:         time.Hour,
		RiskErrorRate:     0.25,
		RiskResourceUsage: 0.90,
		RiskSecurityScore: 0.50,
	}
	router := DefaultRouter(tasks, warnings, redlines, cfg, 3)
	metrics := NewMetrics(prometheus.NewRegistry())

	sup := New(client, cfg, eventBus, tasks, audit, recorder, router, metrics)
	return &supervisorFixture{client: client, bus: eventBus, tasks: tasks, audit: audit, sup: sup}
}

func (f *supervisorFixture) waitCompleted(t *testing.T, eventID string) {
	t.Helper()
	require.Eventually(t, func() bool {
		ev, err := f.client.InboxEvent.Query().
			Where(inboxevent.EventIDEQ(eventID)).
			Only(context.Background())
		return err == nil && ev.Status == inboxevent.StatusCompleted
	}, 3*time.Second, 10*time.Millisecond, "event %s never completed", eventID)
}

func TestSupervisorBlocksRedlineViolation(t *testing.T) {
	f := newSupervisorFixture(t)
	ctx := context.Background()

	f.sup.Start(ctx)
	defer f.sup.Stop()

	created, err := f.tasks.CreateTask(ctx, services.CreateTaskRequest{Title: "violating task"})
	require.NoError(t, err)

	// Re-announce creation with a violating role spec attached. The
	// explicit event_id keeps it distinct from the creation event.
	f.bus.Emit(models.NewTaskEvent(models.EventTypeTaskCreated, created.ID, map[string]any{
		"event_id": "e-violation",
		"role_spec": map[string]any{
			"id":       "deployer",
			"category": "ops",
			"titles":   []any{"Release Manager"},
			"exec":     "./deploy.sh",
		},
	}))

	f.waitCompleted(t, "e-violation")

	blocked, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusBlocked, blocked.Status)
	require.NotNil(t, blocked.ExitReason)
	assert.Equal(t, "blocked", *blocked.ExitReason)

	entries, err := f.audit.ListForTask(ctx, created.ID, 0)
	require.NoError(t, err)
	var decisionSeen bool
	for _, e := range entries {
		if e.EventType == "supervisor.decision" {
			decisionSeen = true
			assert.NotEmpty(t, e.Payload["decision_id"], "audit links the decision record")
		}
	}
	assert.True(t, decisionSeen)
}

func TestSupervisorPauseDirective(t *testing.T) {
	f := newSupervisorFixture(t)
	ctx := context.Background()

	f.sup.Start(ctx)
	defer f.sup.Stop()

	created, err := f.tasks.CreateTask(ctx, services.CreateTaskRequest{Title: "risky task"})
	require.NoError(t, err)

	f.bus.Emit(models.NewTaskEvent(models.EventTypeTaskCreated, created.ID, map[string]any{
		"event_id": "e-risk",
		"risk":     map[string]any{"security_score": 0.30},
	}))

	f.waitCompleted(t, "e-risk")

	paused, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	meta := models.TaskMetadataFrom(paused.Metadata)
	reason, ok := meta.Get(models.MetaKeyPauseReason)
	require.True(t, ok, "pause directive lands in metadata")
	assert.Contains(t, reason, "risk")
}

func TestSupervisorRetryChargesBudget(t *testing.T) {
	f := newSupervisorFixture(t)
	ctx := context.Background()

	f.sup.Start(ctx)
	defer f.sup.Stop()

	created, err := f.tasks.CreateTask(ctx, services.CreateTaskRequest{Title: "flaky task"})
	require.NoError(t, err)

	f.bus.Emit(models.NewTaskEvent(models.EventTypeTaskFailed, created.ID, map[string]any{
		"event_id": "e-flaky",
		"error":    "adapter timeout after 120s",
	}))

	f.waitCompleted(t, "e-flaky")

	reloaded, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, models.TaskMetadataFrom(reloaded.Metadata).RetryCount())
}

// brokenPolicy decides an action the supervisor cannot apply.
type brokenPolicy struct{}

func (p *brokenPolicy) Name() string { return "broken" }
func (p *brokenPolicy) Evaluate(context.Context, *ent.InboxEvent) (*Decision, error) {
	return decide("explode", "unsupported", nil), nil
}

func TestDrainCommitsDecisionWithInboxUpdate(t *testing.T) {
	f := newSupervisorFixture(t)
	ctx := context.Background()

	created, err := f.tasks.CreateTask(ctx, services.CreateTaskRequest{Title: "governed task"})
	require.NoError(t, err)
	_, err = f.sup.inbox.Insert(ctx, "e-atomic", created.ID, models.EventTypeTaskCreated, inboxevent.SourceEventbus, nil)
	require.NoError(t, err)

	f.sup.drain(ctx)

	ev, err := f.client.InboxEvent.Query().
		Where(inboxevent.EventIDEQ("e-atomic")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, inboxevent.StatusCompleted, ev.Status)

	n, err := f.client.DecisionRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "exactly one policy evaluation per event")
}

func TestDrainRollsBackFailedPolicyUnit(t *testing.T) {
	f := newSupervisorFixture(t)
	ctx := context.Background()

	f.sup.router.Register("synthetic.check", &brokenPolicy{})

	created, err := f.tasks.CreateTask(ctx, services.CreateTaskRequest{Title: "doomed event"})
	require.NoError(t, err)
	_, err = f.sup.inbox.Insert(ctx, "e-broken", created.ID, "synthetic.check", inboxevent.SourceEventbus, nil)
	require.NoError(t, err)

	f.sup.drain(ctx)

	// The decision sealed before the apply failure rolls back with the
	// rest of the unit; only the failed marker survives.
	n, err := f.client.DecisionRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "no decision record from the rolled-back unit")

	ev, err := f.client.InboxEvent.Query().
		Where(inboxevent.EventIDEQ("e-broken")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, inboxevent.StatusFailed, ev.Status)
}

func TestPollerRecoversMissedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	inbox := NewInbox(client)
	poller := NewPoller(client, inbox, time.Hour)
	tasks := services.NewTaskService(client, nil) // nil bus: events are "lost"
	ctx := context.Background()

	_, err := tasks.CreateTask(ctx, services.CreateTaskRequest{TaskID: "t-missed", Title: "t"})
	require.NoError(t, err)

	added, err := poller.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	ev, err := inbox.ClaimNext(ctx)
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, models.EventTypeTaskCreated, ev.EventType)
	assert.Equal(t, inboxevent.SourcePolling, ev.Source)

	// Re-sync is idempotent.
	added, err = poller.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestSupervisorStartStopLifecycle(t *testing.T) {
	f := newSupervisorFixture(t)
	ctx := context.Background()

	f.sup.Start(ctx)
	f.sup.Start(ctx) // second start is a no-op
	f.sup.Stop()
	f.sup.Stop() // second stop is a no-op

	// Restart works.
	f.sup.Start(ctx)
	f.sup.Stop()
}
