package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/decision"
	"github.com/codeready-toolchain/warden/pkg/gates"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
)

// watchedEvents are the bus types the fast path persists.
var watchedEvents = []string{
	models.EventTypeTaskCreated,
	models.EventTypeTaskFailed,
	models.EventTypeTaskSucceeded,
	models.EventTypeTaskCancelled,
	models.EventTypeStepCompleted,
	models.EventTypeModeViolation,
}

// Supervisor consumes the inbox and applies one policy decision per
// event, atomically with the inbox status update.
type Supervisor struct {
	cfg      config.SupervisorConfig
	client   *ent.Client
	inbox    *Inbox
	poller   *Poller
	router   *Router
	recorder *decision.Recorder
	tasks    *services.TaskService
	audit    *services.AuditService
	metrics  *Metrics
	bus      *bus.Bus

	wake        chan struct{}
	cancel      context.CancelFunc
	done        chan struct{}
	unsubscribe []func()
	slowedDown  bool
}

// New creates a supervisor with the shipped policies registered.
func New(client *ent.Client, cfg config.SupervisorConfig, eventBus *bus.Bus, tasks *services.TaskService, audit *services.AuditService, recorder *decision.Recorder, router *Router, metrics *Metrics) *Supervisor {
	inbox := NewInbox(client)
	return &Supervisor{
		cfg:      cfg,
		client:   client,
		inbox:    inbox,
		poller:   NewPoller(client, inbox, cfg.Retention),
		router:   router,
		recorder: recorder,
		tasks:    tasks,
		audit:    audit,
		metrics:  metrics,
		bus:      eventBus,
		wake:     make(chan struct{}, 1),
	}
}

// Inbox exposes the underlying inbox for the ops API.
func (s *Supervisor) Inbox() *Inbox { return s.inbox }

// Start subscribes the fast path and launches the main loop. No-op if
// already running.
func (s *Supervisor) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	for _, eventType := range watchedEvents {
		unsub := s.bus.Subscribe(eventType, func(ev models.Event) {
			s.ingest(loopCtx, ev)
		})
		s.unsubscribe = append(s.unsubscribe, unsub)
	}

	go s.loop(loopCtx)
	slog.Info("Supervisor started", "poll_interval", s.cfg.PollInterval)
}

// Stop unsubscribes, halts the loop, and waits for it to exit.
func (s *Supervisor) Stop() {
	if s.cancel == nil {
		return
	}
	for _, unsub := range s.unsubscribe {
		unsub()
	}
	s.unsubscribe = nil
	s.cancel()
	<-s.done
	s.cancel = nil
	slog.Info("Supervisor stopped")
}

// ingest is the fast path: persist, then wake the loop. The insert is
// the durability point; the wake is best-effort.
func (s *Supervisor) ingest(ctx context.Context, ev models.Event) {
	_, err := s.inbox.Insert(ctx, EventID(ev), ev.Entity.ID, ev.Type, inboxevent.SourceEventbus, ev.Payload)
	if err != nil {
		slog.Error("Failed to persist inbox event", "type", ev.Type, "task_id", ev.Entity.ID, "error", err)
		return
	}
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Supervisor) loop(ctx context.Context) {
	defer close(s.done)

	interval := s.cfg.PollInterval
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		s.drain(ctx)

		backlog, err := s.inbox.Backlog(ctx)
		if err != nil {
			slog.Error("Failed to compute backlog", "error", err)
		} else {
			if s.metrics != nil {
				s.metrics.Observe(backlog)
			}
			interval = s.nextInterval(backlog)
		}

		timer.Reset(interval)
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		case <-timer.C:
			if added, err := s.poller.Sync(ctx); err != nil {
				slog.Error("Poller sync failed", "error", err)
			} else if added > 0 {
				slog.Info("Poller recovered missed events", "count", added)
			}
		}
	}
}

// nextInterval applies backpressure: a deep backlog slows polling so
// the consumer can catch up. Logs only on transitions.
func (s *Supervisor) nextInterval(backlog BacklogMetrics) time.Duration {
	if s.cfg.BacklogSlowdownAt > 0 && backlog.Pending > s.cfg.BacklogSlowdownAt {
		if !s.slowedDown {
			slog.Warn("Inbox backlog above threshold, slowing polling",
				"pending", backlog.Pending,
				"threshold", s.cfg.BacklogSlowdownAt)
			s.slowedDown = true
		}
		return s.cfg.PollInterval * 2
	}
	if s.slowedDown {
		slog.Info("Inbox backlog recovered", "pending", backlog.Pending)
		s.slowedDown = false
	}
	return s.cfg.PollInterval
}

// drain processes pending events until the inbox is empty.
func (s *Supervisor) drain(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		more, err := s.drainOne(ctx)
		if err != nil {
			slog.Error("Failed to drain inbox event", "error", err)
			return
		}
		if !more {
			return
		}
	}
}

// drainOne claims, evaluates, and completes one event inside a single
// transaction: the policy decision and its effects land atomically
// with the inbox status flip, so a crash before commit leaves the
// event pending and no partial decision behind. A policy error rolls
// the unit back and marks the event failed outside the transaction.
func (s *Supervisor) drainOne(ctx context.Context) (bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	txCtx := ent.NewTxContext(ctx, tx)

	ev, err := s.inbox.ClaimNext(txCtx)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if ev == nil {
		_ = tx.Rollback()
		return false, nil
	}

	if procErr := s.process(txCtx, ev); procErr != nil {
		slog.Error("Policy evaluation failed",
			"event_id", ev.EventID,
			"event_type", ev.EventType,
			"error", procErr)
		if err := tx.Rollback(); err != nil {
			return false, fmt.Errorf("failed to roll back: %w", err)
		}
		if failErr := s.inbox.Fail(ctx, ev.ID); failErr != nil {
			slog.Error("Failed to mark inbox event failed", "error", failErr)
		}
		return true, nil
	}

	if err := s.inbox.Complete(txCtx, ev.ID); err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// process routes, evaluates, applies, and records one event.
func (s *Supervisor) process(ctx context.Context, ev *ent.InboxEvent) error {
	policy := s.router.Route(ev.EventType)
	if policy == nil {
		slog.Debug("No policy for event type", "event_type", ev.EventType)
		return nil
	}

	dec, err := policy.Evaluate(ctx, ev)
	if err != nil {
		return fmt.Errorf("policy %s: %w", policy.Name(), err)
	}

	dec.Inputs["policy"] = policy.Name()
	dec.Inputs["event_type"] = ev.EventType
	record, err := s.recorder.RecordPolicy(ctx, ev.EventID, dec.Inputs, map[string]any{
		"action": string(dec.Action),
		"reason": dec.Reason,
	})
	if err != nil {
		return fmt.Errorf("failed to record decision: %w", err)
	}

	if err := s.apply(ctx, ev, dec, record.ID); err != nil {
		return fmt.Errorf("failed to apply %s: %w", dec.Action, err)
	}

	if s.metrics != nil {
		s.metrics.EventsProcessed.WithLabelValues(policy.Name(), string(dec.Action)).Inc()
	}
	return nil
}

// apply executes the decided action against the task and links the
// decision into the audit stream.
func (s *Supervisor) apply(ctx context.Context, ev *ent.InboxEvent, dec *Decision, decisionID string) error {
	auditPayload := map[string]any{
		"decision_id": decisionID,
		"action":      string(dec.Action),
		"reason":      dec.Reason,
	}

	switch dec.Action {
	case models.ActionAllow:
		return s.audit.Info(ctx, ev.TaskID, "supervisor.decision", auditPayload)

	case models.ActionRetry:
		// Advisory: the lifecycle performs the retry; we charge the budget.
		_, err := s.tasks.UpdateMetadata(ctx, ev.TaskID, func(m *models.Metadata) error {
			m.SetRetryCount(m.RetryCount() + 1)
			return nil
		})
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			// Terminal tasks cannot be mutated; the retry advisory still
			// lands in the audit stream.
			slog.Debug("Retry budget charge skipped", "task_id", ev.TaskID, "error", err)
		}
		return s.audit.Warn(ctx, ev.TaskID, "supervisor.decision", auditPayload)

	case models.ActionPause:
		_, err := s.tasks.UpdateMetadata(ctx, ev.TaskID, func(m *models.Metadata) error {
			m.Set(models.MetaKeyPauseReason, dec.Reason)
			return nil
		})
		if err != nil {
			return err
		}
		return s.audit.Warn(ctx, ev.TaskID, "supervisor.decision", auditPayload)

	case models.ActionRequireReview:
		_, err := s.tasks.Transition(ctx, ev.TaskID, task.StatusVerifying, map[string]any{
			"decision_id": decisionID,
			"guardian":    "supervisor",
		})
		if err != nil {
			// The task may not be in a state with a verifying edge; the
			// escalation still lands in audit.
			slog.Warn("Guardian review transition rejected", "task_id", ev.TaskID, "error", err)
		}
		return s.audit.Error(ctx, ev.TaskID, "supervisor.decision", auditPayload)

	case models.ActionBlock:
		_, err := s.tasks.Transition(ctx, ev.TaskID, task.StatusBlocked, map[string]any{
			"decision_id": decisionID,
		})
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return err
			}
			// Already terminal: the block decision is still auditable.
			slog.Warn("Block transition rejected", "task_id", ev.TaskID, "error", err)
		} else if reasonErr := s.tasks.SetExitReason(ctx, ev.TaskID, models.ExitReasonBlocked); reasonErr != nil {
			slog.Warn("Failed to set exit reason", "task_id", ev.TaskID, "error", reasonErr)
		}
		return s.audit.Error(ctx, ev.TaskID, "supervisor.decision", auditPayload)

	default:
		return fmt.Errorf("unknown policy action %q", dec.Action)
	}
}

// DefaultRouter wires the shipped policies.
func DefaultRouter(tasks *services.TaskService, warnings *services.SystemWarningsService, redlines *gates.RedlineValidator, cfg config.SupervisorConfig, maxRetries int) *Router {
	router := NewRouter()
	router.Register(models.EventTypeTaskCreated, &OnTaskCreated{Redlines: redlines, Cfg: cfg})
	router.Register(models.EventTypeStepCompleted, &OnStepCompleted{Warnings: warnings, Cfg: cfg})
	router.Register(models.EventTypeTaskFailed, &OnTaskFailed{Tasks: tasks, MaxRetries: maxRetries})
	router.Register(models.EventTypeModeViolation, &OnModeViolation{})
	return router
}
