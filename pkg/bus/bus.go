// Package bus provides the in-process event bus connecting the runner,
// supervisor, and ops surfaces. Delivery is fire-and-forget: a slow or
// panicking subscriber never blocks or fails the emitter.
package bus

import (
	"log/slog"
	"sync"

	"github.com/codeready-toolchain/warden/pkg/models"
)

// Handler consumes one event. Handlers must not retain the event's
// payload map past the call.
type Handler func(event models.Event)

type subscriber struct {
	id      int
	handler Handler
	async   bool
}

// Bus is a topic-keyed publish/subscribe hub. The zero value is not
// usable; call New.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]subscriber
	nextID      int
	wg          sync.WaitGroup
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subscribers: make(map[string][]subscriber)}
}

// Subscribe registers a synchronous handler for an event type. Handlers
// for one Emit call run in registration order on the emitter's
// goroutine. Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType string, h Handler) func() {
	return b.subscribe(eventType, h, false)
}

// SubscribeAsync registers a handler that runs on its own goroutine per
// event. Ordering across events is not guaranteed.
func (b *Bus) SubscribeAsync(eventType string, h Handler) func() {
	return b.subscribe(eventType, h, true)
}

func (b *Bus) subscribe(eventType string, h Handler, async bool) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subscribers[eventType] = append(b.subscribers[eventType], subscriber{id: id, handler: h, async: async})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subscribers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.subscribers[eventType] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers an event to all subscribers of its type. Synchronous
// subscribers run in order on the calling goroutine; async subscribers
// are spawned. Emit never returns an error and never panics.
func (b *Bus) Emit(event models.Event) {
	b.mu.RLock()
	subs := b.subscribers[event.Type]
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	b.mu.RUnlock()

	for _, s := range snapshot {
		if s.async {
			b.wg.Add(1)
			go func(s subscriber) {
				defer b.wg.Done()
				b.dispatch(s, event)
			}(s)
			continue
		}
		b.dispatch(s, event)
	}
}

// EmitAsync delivers the event from a fresh goroutine so the emitter
// never waits on any subscriber, synchronous ones included.
func (b *Bus) EmitAsync(event models.Event) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.Emit(event)
	}()
}

func (b *Bus) dispatch(s subscriber, event models.Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event subscriber panicked",
				"event_type", event.Type,
				"panic", r)
		}
	}()
	s.handler(event)
}

// SubscriberCount returns the number of handlers registered for a type.
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[eventType])
}

// Drain waits for in-flight async deliveries to finish. Used during
// shutdown.
func (b *Bus) Drain() {
	b.wg.Wait()
}
