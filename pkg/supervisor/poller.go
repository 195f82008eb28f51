package supervisor

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// statusEvents maps task statuses the poller reports to the event type
// the fast path would have delivered.
var statusEvents = map[task.Status]string{
	task.StatusCreated:   models.EventTypeTaskCreated,
	task.StatusSucceeded: models.EventTypeTaskSucceeded,
	task.StatusFailed:    models.EventTypeTaskFailed,
	task.StatusCanceled:  models.EventTypeTaskCancelled,
}

// Poller is the slow path: it scans the task table and inserts any
// lifecycle events the bus delivery missed. Dedupe against the fast
// path rides on the shared singleton event ids.
type Poller struct {
	client *ent.Client
	inbox  *Inbox
	window time.Duration
}

// NewPoller creates a poller that looks back one retention window.
func NewPoller(client *ent.Client, inbox *Inbox, window time.Duration) *Poller {
	return &Poller{client: client, inbox: inbox, window: window}
}

// Sync inserts missed lifecycle events and returns how many it added.
func (p *Poller) Sync(ctx context.Context) (int, error) {
	statuses := make([]task.Status, 0, len(statusEvents))
	for s := range statusEvents {
		statuses = append(statuses, s)
	}

	tasks, err := p.client.Task.Query().
		Where(
			task.StatusIn(statuses...),
			task.CreatedAtGT(time.Now().Add(-p.window)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan tasks: %w", err)
	}

	added := 0
	for _, t := range tasks {
		eventType := statusEvents[t.Status]
		eventID := fmt.Sprintf("%s:%s", eventType, t.ID)
		inserted, err := p.inbox.Insert(ctx, eventID, t.ID, eventType, inboxevent.SourcePolling, map[string]any{
			"status": string(t.Status),
		})
		if err != nil {
			return added, err
		}
		if inserted {
			added++
		}
	}
	return added, nil
}
