package runner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/checkpoint"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
)

// Orphan reaps tasks whose runner died without releasing its claim:
// stale heartbeat past the threshold. Reaped tasks fail with
// exit_reason=fatal_error and their leases are released.
type Orphan struct {
	tasks  *services.TaskService
	audit  *services.AuditService
	leases *checkpoint.LeaseManager
	bus    *bus.Bus

	threshold time.Duration
	interval  time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewOrphan creates the orphan monitor.
func NewOrphan(tasks *services.TaskService, audit *services.AuditService, leases *checkpoint.LeaseManager, bus *bus.Bus, threshold, interval time.Duration) *Orphan {
	return &Orphan{
		tasks:     tasks,
		audit:     audit,
		leases:    leases,
		bus:       bus,
		threshold: threshold,
		interval:  interval,
	}
}

// Start begins periodic orphan scans. No-op if already running.
func (o *Orphan) Start(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running {
		return
	}
	o.running = true

	scanCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.done = make(chan struct{})

	go func() {
		defer close(o.done)
		ticker := time.NewTicker(o.interval)
		defer ticker.Stop()
		for {
			select {
			case <-scanCtx.Done():
				return
			case <-ticker.C:
				o.runOnce(scanCtx)
			}
		}
	}()
	slog.Info("Orphan monitor started", "threshold", o.threshold, "interval", o.interval)
}

// Stop halts the scans. No-op if not running.
func (o *Orphan) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.running {
		return
	}
	o.running = false
	o.cancel()
	<-o.done
	slog.Info("Orphan monitor stopped")
}

// Sweep runs one scan immediately. Called once at startup to reap
// tasks orphaned by the previous process before workers claim new work.
func (o *Orphan) Sweep(ctx context.Context) {
	o.runOnce(ctx)
}

func (o *Orphan) runOnce(ctx context.Context) {
	orphans, err := o.tasks.FindOrphans(ctx, o.threshold)
	if err != nil {
		slog.Error("Orphan scan failed", "error", err)
		return
	}

	for _, t := range orphans {
		o.reap(ctx, t.ID)
	}

	if _, err := o.leases.ReleaseStale(ctx); err != nil {
		slog.Error("Stale lease release failed", "error", err)
	}
}

func (o *Orphan) reap(ctx context.Context, taskID string) {
	slog.Warn("Reaping orphaned task", "task_id", taskID)

	if _, err := o.tasks.Transition(ctx, taskID, task.StatusFailed, map[string]any{
		"error": "runner heartbeat lost",
	}); err != nil {
		slog.Error("Orphan transition failed", "task_id", taskID, "error", err)
		return
	}
	if err := o.tasks.SetExitReason(ctx, taskID, models.ExitReasonFatalError); err != nil {
		slog.Warn("Failed to set exit reason on orphan", "task_id", taskID, "error", err)
	}
	if err := o.tasks.ReleaseRunner(ctx, taskID); err != nil {
		slog.Warn("Failed to release orphan claim", "task_id", taskID, "error", err)
	}
	if err := o.audit.Error(ctx, taskID, "runner.orphaned", map[string]any{
		"threshold": o.threshold.String(),
	}); err != nil {
		slog.Warn("Failed to audit orphan reap", "task_id", taskID, "error", err)
	}
	if o.bus != nil {
		o.bus.Emit(models.NewTaskEvent(models.EventTypeTaskFailed, taskID, map[string]any{
			"error":       "runner heartbeat lost",
			"exit_reason": string(models.ExitReasonFatalError),
		}))
	}
}
