package supervisor

import (
	"context"
	"log/slog"
	"time"
)

// Cleanup periodically purges completed inbox rows past retention.
// Deletion is idempotent, so running one instance per replica is safe.
type Cleanup struct {
	inbox     *Inbox
	retention time.Duration
	interval  time.Duration
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewCleanup creates a retention cleanup monitor.
func NewCleanup(inbox *Inbox, retention, interval time.Duration) *Cleanup {
	return &Cleanup{inbox: inbox, retention: retention, interval: interval}
}

// Start launches the cleanup loop. No-op if already running.
func (c *Cleanup) Start(ctx context.Context) {
	if c.cancel != nil {
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				c.runOnce(loopCtx)
			}
		}
	}()
	slog.Info("Inbox cleanup started", "retention", c.retention, "interval", c.interval)
}

// Stop halts the loop and waits for it to exit.
func (c *Cleanup) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	slog.Info("Inbox cleanup stopped")
}

func (c *Cleanup) runOnce(ctx context.Context) {
	n, err := c.inbox.PurgeCompleted(ctx, c.retention)
	if err != nil {
		slog.Error("Inbox purge failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Purged completed inbox events", "count", n)
	}
}
