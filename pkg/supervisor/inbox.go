// Package supervisor consumes the persistent event inbox and routes
// every event to a governance policy. The bus is only a wake-up; the
// poller guarantees no event is ever lost.
package supervisor

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// singletonEvents happen at most once per task, so (type, task_id) is a
// natural dedupe key shared by the fast path and the poller.
var singletonEvents = map[string]bool{
	models.EventTypeTaskCreated:   true,
	models.EventTypeTaskSucceeded: true,
	models.EventTypeTaskFailed:    true,
	models.EventTypeTaskCancelled: true,
}

// EventID derives the inbox dedupe key for a bus event. An explicit
// event_id in the payload always wins; singleton lifecycle events key
// on (type, task); everything else includes the emission timestamp.
func EventID(ev models.Event) string {
	if id, ok := ev.Payload["event_id"].(string); ok && id != "" {
		return id
	}
	if singletonEvents[ev.Type] {
		return fmt.Sprintf("%s:%s", ev.Type, ev.Entity.ID)
	}
	return fmt.Sprintf("%s:%s:%s", ev.Type, ev.Entity.ID, ev.TS)
}

// BacklogMetrics is the operator view of inbox health.
type BacklogMetrics struct {
	Pending                 int     `json:"pending"`
	Processing              int     `json:"processing"`
	Failed                  int     `json:"failed"`
	Completed               int     `json:"completed"`
	OldestPendingAgeSeconds float64 `json:"oldest_pending_age_seconds"`
}

// Inbox is the supervisor's durable event queue.
type Inbox struct {
	client *ent.Client
}

// NewInbox creates an inbox over the store.
func NewInbox(client *ent.Client) *Inbox {
	return &Inbox{client: client}
}

// conn resolves the entity client, honoring a transaction bound to the
// context so the claim and completion of an event can share one unit
// with the policy writes.
func (i *Inbox) conn(ctx context.Context) *ent.Client {
	if tx := ent.TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return i.client
}

// Insert stores an event, deduplicating on event_id. Returns false when
// the event was already seen; the constraint violation is benign.
func (i *Inbox) Insert(ctx context.Context, eventID, taskID, eventType string, source inboxevent.Source, payload map[string]any) (bool, error) {
	create := i.conn(ctx).InboxEvent.Create().
		SetEventID(eventID).
		SetTaskID(taskID).
		SetEventType(eventType).
		SetSource(source)
	if payload != nil {
		create.SetPayload(payload)
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert inbox event: %w", err)
	}
	return true, nil
}

// ClaimNext moves the oldest pending event to processing and returns
// it; nil when the inbox is drained.
func (i *Inbox) ClaimNext(ctx context.Context) (*ent.InboxEvent, error) {
	conn := i.conn(ctx)
	next, err := conn.InboxEvent.Query().
		Where(inboxevent.StatusEQ(inboxevent.StatusPending)).
		Order(ent.Asc(inboxevent.FieldReceivedAt), ent.Asc(inboxevent.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending events: %w", err)
	}

	n, err := conn.InboxEvent.Update().
		Where(inboxevent.IDEQ(next.ID), inboxevent.StatusEQ(inboxevent.StatusPending)).
		SetStatus(inboxevent.StatusProcessing).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim inbox event: %w", err)
	}
	if n == 0 {
		return nil, nil // another consumer got it
	}
	return next, nil
}

// Complete marks a processed event done.
func (i *Inbox) Complete(ctx context.Context, id int) error {
	return i.finish(ctx, id, inboxevent.StatusCompleted)
}

// Fail marks an event whose policy errored.
func (i *Inbox) Fail(ctx context.Context, id int) error {
	return i.finish(ctx, id, inboxevent.StatusFailed)
}

func (i *Inbox) finish(ctx context.Context, id int, status inboxevent.Status) error {
	_, err := i.conn(ctx).InboxEvent.Update().
		Where(inboxevent.IDEQ(id)).
		SetStatus(status).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish inbox event %d: %w", id, err)
	}
	return nil
}

// Backlog computes the queue metrics an operator watches.
func (i *Inbox) Backlog(ctx context.Context) (BacklogMetrics, error) {
	var m BacklogMetrics
	for status, target := range map[inboxevent.Status]*int{
		inboxevent.StatusPending:    &m.Pending,
		inboxevent.StatusProcessing: &m.Processing,
		inboxevent.StatusFailed:     &m.Failed,
		inboxevent.StatusCompleted:  &m.Completed,
	} {
		n, err := i.client.InboxEvent.Query().
			Where(inboxevent.StatusEQ(status)).
			Count(ctx)
		if err != nil {
			return m, fmt.Errorf("failed to count %s events: %w", status, err)
		}
		*target = n
	}

	oldest, err := i.client.InboxEvent.Query().
		Where(inboxevent.StatusEQ(inboxevent.StatusPending)).
		Order(ent.Asc(inboxevent.FieldReceivedAt)).
		First(ctx)
	if err == nil {
		m.OldestPendingAgeSeconds = time.Since(oldest.ReceivedAt).Seconds()
	} else if !ent.IsNotFound(err) {
		return m, fmt.Errorf("failed to find oldest pending event: %w", err)
	}
	return m, nil
}

// PurgeCompleted deletes completed rows older than the retention window
// and returns how many it removed. Safe to run from multiple replicas:
// deletion is idempotent.
func (i *Inbox) PurgeCompleted(ctx context.Context, retention time.Duration) (int, error) {
	n, err := i.client.InboxEvent.Delete().
		Where(
			inboxevent.StatusEQ(inboxevent.StatusCompleted),
			inboxevent.ProcessedAtLT(time.Now().Add(-retention)),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge completed events: %w", err)
	}
	return n, nil
}
