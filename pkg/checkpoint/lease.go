package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/lease"
)

// ErrLeaseHeld is returned when another worker holds an unexpired lease.
var ErrLeaseHeld = errors.New("lease held by another worker")

// LeaseManager hands out at most one active lease per work item.
// Acquisition is compare-and-set: the row either does not exist, is
// expired, or was released; anything else means another worker owns it.
type LeaseManager struct {
	client *ent.Client
}

// NewLeaseManager creates a lease manager.
func NewLeaseManager(client *ent.Client) *LeaseManager {
	return &LeaseManager{client: client}
}

// Acquire claims a work item for a worker. Returns ErrLeaseHeld when an
// unexpired, unreleased lease exists for another worker.
func (l *LeaseManager) Acquire(ctx context.Context, workItemID, taskID, workerID string, ttl time.Duration) (*ent.Lease, error) {
	now := time.Now()
	created, err := l.client.Lease.Create().
		SetID(workItemID).
		SetTaskID(taskID).
		SetWorkerID(workerID).
		SetAcquiredAt(now).
		SetHeartbeatAt(now).
		SetExpiresAt(now.Add(ttl)).
		Save(ctx)
	if err == nil {
		return created, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create lease for %s: %w", workItemID, err)
	}

	// Row exists: take over only if expired or released.
	n, err := l.client.Lease.Update().
		Where(
			lease.IDEQ(workItemID),
			lease.Or(lease.ExpiresAtLT(now), lease.ReleasedAtNotNil()),
		).
		SetWorkerID(workerID).
		SetAcquiredAt(now).
		SetHeartbeatAt(now).
		SetExpiresAt(now.Add(ttl)).
		ClearReleasedAt().
		ClearSuccess().
		ClearOutput().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to take over lease for %s: %w", workItemID, err)
	}
	if n == 0 {
		return nil, ErrLeaseHeld
	}
	slog.Info("Lease takeover", "work_item_id", workItemID, "worker_id", workerID)
	return l.client.Lease.Get(ctx, workItemID)
}

// Heartbeat extends a live lease. Fails when the caller no longer owns
// it (released, or taken over after expiry).
func (l *LeaseManager) Heartbeat(ctx context.Context, workItemID, workerID string, ttl time.Duration) error {
	now := time.Now()
	n, err := l.client.Lease.Update().
		Where(
			lease.IDEQ(workItemID),
			lease.WorkerIDEQ(workerID),
			lease.ReleasedAtIsNil(),
		).
		SetHeartbeatAt(now).
		SetExpiresAt(now.Add(ttl)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat lease %s: %w", workItemID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: heartbeat rejected for %s", ErrLeaseHeld, workItemID)
	}
	return nil
}

// Release writes the final outcome of a work item.
func (l *LeaseManager) Release(ctx context.Context, workItemID string, success bool, output map[string]any) error {
	update := l.client.Lease.Update().
		Where(lease.IDEQ(workItemID), lease.ReleasedAtIsNil()).
		SetReleasedAt(time.Now()).
		SetSuccess(success)
	if output != nil {
		update.SetOutput(output)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release lease %s: %w", workItemID, err)
	}
	if n == 0 {
		return fmt.Errorf("lease %s already released or missing", workItemID)
	}
	return nil
}

// ReleaseStale releases abandoned leases (expired, never released) and
// returns how many it reaped.
func (l *LeaseManager) ReleaseStale(ctx context.Context) (int, error) {
	n, err := l.client.Lease.Update().
		Where(lease.ExpiresAtLT(time.Now()), lease.ReleasedAtIsNil()).
		SetReleasedAt(time.Now()).
		SetSuccess(false).
		SetOutput(map[string]any{"error": "lease abandoned: heartbeat stale"}).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to release stale leases: %w", err)
	}
	if n > 0 {
		slog.Warn("Released stale leases", "count", n)
	}
	return n, nil
}

// Get returns a lease by work item id, or nil when absent.
func (l *LeaseManager) Get(ctx context.Context, workItemID string) (*ent.Lease, error) {
	ls, err := l.client.Lease.Get(ctx, workItemID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lease %s: %w", workItemID, err)
	}
	return ls, nil
}
