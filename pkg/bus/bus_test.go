package bus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/models"
)

func TestEmitSyncOrdering(t *testing.T) {
	b := New()
	var got []int
	b.Subscribe(models.EventTypeTaskCreated, func(models.Event) { got = append(got, 1) })
	b.Subscribe(models.EventTypeTaskCreated, func(models.Event) { got = append(got, 2) })
	b.Subscribe(models.EventTypeTaskCreated, func(models.Event) { got = append(got, 3) })

	b.Emit(models.NewTaskEvent(models.EventTypeTaskCreated, "t-1", nil))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestEmitIsolatesPanics(t *testing.T) {
	b := New()
	var reached bool
	b.Subscribe(models.EventTypeTaskFailed, func(models.Event) { panic("boom") })
	b.Subscribe(models.EventTypeTaskFailed, func(models.Event) { reached = true })

	require.NotPanics(t, func() {
		b.Emit(models.NewTaskEvent(models.EventTypeTaskFailed, "t-1", nil))
	})
	assert.True(t, reached, "panic in one subscriber must not skip the next")
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	var count int
	unsub := b.Subscribe(models.EventTypeStepCompleted, func(models.Event) { count++ })
	require.Equal(t, 1, b.SubscriberCount(models.EventTypeStepCompleted))

	b.Emit(models.NewTaskEvent(models.EventTypeStepCompleted, "t-1", nil))
	unsub()
	b.Emit(models.NewTaskEvent(models.EventTypeStepCompleted, "t-1", nil))

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, b.SubscriberCount(models.EventTypeStepCompleted))
}

func TestSubscribeAsync(t *testing.T) {
	b := New()
	var mu sync.Mutex
	var got []string
	done := make(chan struct{})
	b.SubscribeAsync(models.EventTypeToolExecuted, func(e models.Event) {
		mu.Lock()
		got = append(got, e.Entity.ID)
		mu.Unlock()
		close(done)
	})

	b.Emit(models.NewTaskEvent(models.EventTypeToolExecuted, "t-9", nil))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async subscriber never ran")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"t-9"}, got)
}

func TestEmitAsyncDoesNotBlockEmitter(t *testing.T) {
	b := New()
	release := make(chan struct{})
	ran := make(chan struct{})
	b.Subscribe(models.EventTypeTaskProgress, func(models.Event) {
		<-release
		close(ran)
	})

	start := time.Now()
	b.EmitAsync(models.NewTaskEvent(models.EventTypeTaskProgress, "t-1", nil))
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	close(release)
	<-ran
	b.Drain()
}

func TestEmitWithNoSubscribers(t *testing.T) {
	b := New()
	require.NotPanics(t, func() {
		b.Emit(models.NewTaskEvent(models.EventTypeModeViolation, "t-1", map[string]any{"k": "v"}))
	})
}
