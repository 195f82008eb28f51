package supervisor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/pkg/models"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

func TestInboxDedupe(t *testing.T) {
	client := testdb.NewTestClient(t)
	inbox := NewInbox(client)
	ctx := context.Background()

	inserted, err := inbox.Insert(ctx, "e-1", "t-1", models.EventTypeTaskCreated, inboxevent.SourceEventbus, nil)
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same event from the poller is benign.
	inserted, err = inbox.Insert(ctx, "e-1", "t-1", models.EventTypeTaskCreated, inboxevent.SourcePolling, nil)
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate event_id means already seen")
}

func TestInboxClaimOrderAndFinish(t *testing.T) {
	client := testdb.NewTestClient(t)
	inbox := NewInbox(client)
	ctx := context.Background()

	for _, id := range []string{"e-1", "e-2", "e-3"} {
		_, err := inbox.Insert(ctx, id, "t-1", models.EventTypeStepCompleted, inboxevent.SourceEventbus, nil)
		require.NoError(t, err)
	}

	first, err := inbox.ClaimNext(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "e-1", first.EventID, "oldest first")

	require.NoError(t, inbox.Complete(ctx, first.ID))

	second, err := inbox.ClaimNext(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "e-2", second.EventID)
	require.NoError(t, inbox.Fail(ctx, second.ID))

	backlog, err := inbox.Backlog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, backlog.Pending)
	assert.Equal(t, 1, backlog.Completed)
	assert.Equal(t, 1, backlog.Failed)
	assert.Greater(t, backlog.OldestPendingAgeSeconds, 0.0)

	third, err := inbox.ClaimNext(ctx)
	require.NoError(t, err)
	require.NoError(t, inbox.Complete(ctx, third.ID))

	drained, err := inbox.ClaimNext(ctx)
	require.NoError(t, err)
	assert.Nil(t, drained)
}

func TestInboxPurgeCompleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	inbox := NewInbox(client)
	ctx := context.Background()

	_, err := inbox.Insert(ctx, "e-old", "t-1", models.EventTypeTaskSucceeded, inboxevent.SourceEventbus, nil)
	require.NoError(t, err)
	_, err = inbox.Insert(ctx, "e-new", "t-1", models.EventTypeStepCompleted, inboxevent.SourceEventbus, nil)
	require.NoError(t, err)

	for range 2 {
		ev, err := inbox.ClaimNext(ctx)
		require.NoError(t, err)
		require.NoError(t, inbox.Complete(ctx, ev.ID))
	}

	// Age one row beyond retention.
	_, err = client.InboxEvent.Update().
		Where(inboxevent.EventIDEQ("e-old")).
		SetProcessedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	n, err := inbox.PurgeCompleted(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Idempotent: nothing left to purge.
	n, err = inbox.PurgeCompleted(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEventID(t *testing.T) {
	t.Run("payload event_id wins", func(t *testing.T) {
		ev := models.NewTaskEvent(models.EventTypeStepCompleted, "t-1", map[string]any{"event_id": "explicit"})
		assert.Equal(t, "explicit", EventID(ev))
	})

	t.Run("lifecycle events key on type and task", func(t *testing.T) {
		a := models.NewTaskEvent(models.EventTypeTaskFailed, "t-1", nil)
		time.Sleep(time.Millisecond)
		b := models.NewTaskEvent(models.EventTypeTaskFailed, "t-1", nil)
		assert.Equal(t, EventID(a), EventID(b), "same dedupe key regardless of emission time")
	})

	t.Run("repeatable events include the timestamp", func(t *testing.T) {
		a := models.NewTaskEvent(models.EventTypeStepCompleted, "t-1", nil)
		time.Sleep(time.Millisecond)
		b := models.NewTaskEvent(models.EventTypeStepCompleted, "t-1", nil)
		assert.NotEqual(t, EventID(a), EventID(b))
	})
}

func TestRouter(t *testing.T) {
	router := NewRouter()
	exact := &OnModeViolation{}
	prefix := &OnStepCompleted{}
	fallback := &OnTaskCreated{}

	router.Register(models.EventTypeModeViolation, exact)
	router.Register("task.*", prefix)
	router.Register("*", fallback)

	assert.Same(t, Policy(exact), router.Route(models.EventTypeModeViolation))
	assert.Same(t, Policy(prefix), router.Route(models.EventTypeTaskFailed))
	assert.Same(t, Policy(fallback), router.Route("tool.executed"))

	t.Run("longest prefix wins", func(t *testing.T) {
		longer := &OnTaskFailed{}
		router.Register("task.fail*", longer)
		assert.Same(t, Policy(longer), router.Route(models.EventTypeTaskFailed))
		assert.Same(t, Policy(prefix), router.Route(models.EventTypeTaskCreated))
	})

	t.Run("no match without default", func(t *testing.T) {
		assert.Nil(t, NewRouter().Route("anything"))
	})
}
