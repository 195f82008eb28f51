package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/warden/pkg/services"
)

// claimIdleSleep is how long an idle worker waits before re-polling the
// queue for claimable tasks.
const claimIdleSleep = time.Second

// Pool runs a bounded set of workers, each claiming one created task at
// a time and driving it to a terminal state.
type Pool struct {
	deps Deps

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewPool creates a worker pool over shared runner dependencies.
func NewPool(deps Deps) *Pool {
	return &Pool{
		deps:    deps,
		cancels: make(map[string]context.CancelFunc),
	}
}

// Start launches the workers. No-op if already running.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true

	poolCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	workers := p.deps.Cfg.WorkerCount
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		workerID := fmt.Sprintf("worker-%d-%s", i, uuid.NewString()[:8])
		p.wg.Add(1)
		go p.worker(poolCtx, workerID)
	}
	slog.Info("Runner pool started", "workers", workers)
}

// Stop signals the workers and waits up to the graceful shutdown
// timeout for in-flight tasks to reach a safe point. No-op if not
// running.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel := p.cancel
	p.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Runner pool stopped")
	case <-time.After(p.deps.Cfg.GracefulShutdownTimeout):
		slog.Warn("Runner pool shutdown timed out",
			"timeout", p.deps.Cfg.GracefulShutdownTimeout)
	}
}

// CancelTask interrupts the runner currently driving a task, if any.
// The persisted cancel flag is what makes the cancellation stick; this
// only shortens the wait.
func (p *Pool) CancelTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cancel, ok := p.cancels[taskID]; ok {
		cancel()
	}
}

// ActiveTasks returns the IDs of tasks currently held by a worker.
func (p *Pool) ActiveTasks() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.cancels))
	for id := range p.cancels {
		ids = append(ids, id)
	}
	return ids
}

func (p *Pool) worker(ctx context.Context, workerID string) {
	defer p.wg.Done()

	for {
		if ctx.Err() != nil {
			return
		}

		t, err := p.deps.Tasks.ClaimNext(ctx, workerID)
		if err != nil {
			if !errors.Is(err, services.ErrNoClaimableTask) && ctx.Err() == nil {
				slog.Error("Task claim failed", "worker_id", workerID, "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(claimIdleSleep):
			}
			continue
		}

		p.runTask(ctx, workerID, t.ID)
	}
}

func (p *Pool) runTask(ctx context.Context, workerID, taskID string) {
	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.mu.Lock()
	p.cancels[taskID] = cancel
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.cancels, taskID)
		p.mu.Unlock()
	}()

	slog.Info("Task claimed", "worker_id", workerID, "task_id", taskID)
	r := New(p.deps, taskID, workerID)
	if err := r.Run(taskCtx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Runner exited with error",
			"worker_id", workerID, "task_id", taskID, "error", err)
	}
}
