package checkpoint

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent/lease"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

func TestLeaseAcquireIsExclusive(t *testing.T) {
	client := testdb.NewTestClient(t)
	lm := NewLeaseManager(client)
	ctx := context.Background()

	got, err := lm.Acquire(ctx, "item-1", "t-1", "worker-a", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "worker-a", got.WorkerID)

	_, err = lm.Acquire(ctx, "item-1", "t-1", "worker-b", time.Minute)
	assert.ErrorIs(t, err, ErrLeaseHeld, "second acquirer fails")
}

func TestLeaseTakeoverOfExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	lm := NewLeaseManager(client)
	ctx := context.Background()

	_, err := lm.Acquire(ctx, "item-1", "t-1", "worker-a", time.Minute)
	require.NoError(t, err)

	// Age the lease past its TTL.
	_, err = client.Lease.Update().
		Where(lease.IDEQ("item-1")).
		SetExpiresAt(time.Now().Add(-time.Second)).
		Save(ctx)
	require.NoError(t, err)

	taken, err := lm.Acquire(ctx, "item-1", "t-1", "worker-b", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "worker-b", taken.WorkerID)
	assert.Nil(t, taken.ReleasedAt)

	// The evicted worker's heartbeat is rejected.
	err = lm.Heartbeat(ctx, "item-1", "worker-a", time.Minute)
	assert.ErrorIs(t, err, ErrLeaseHeld)
}

func TestLeaseHeartbeatAndRelease(t *testing.T) {
	client := testdb.NewTestClient(t)
	lm := NewLeaseManager(client)
	ctx := context.Background()

	acquired, err := lm.Acquire(ctx, "item-1", "t-1", "worker-a", time.Minute)
	require.NoError(t, err)

	require.NoError(t, lm.Heartbeat(ctx, "item-1", "worker-a", 2*time.Minute))
	extended, err := lm.Get(ctx, "item-1")
	require.NoError(t, err)
	assert.True(t, extended.ExpiresAt.After(acquired.ExpiresAt))

	require.NoError(t, lm.Release(ctx, "item-1", true, map[string]any{"files_changed": []string{"a.go"}}))
	released, err := lm.Get(ctx, "item-1")
	require.NoError(t, err)
	require.NotNil(t, released.ReleasedAt)
	require.NotNil(t, released.Success)
	assert.True(t, *released.Success)

	err = lm.Release(ctx, "item-1", false, nil)
	assert.Error(t, err, "double release fails")

	// A released item can be re-acquired for a retry.
	again, err := lm.Acquire(ctx, "item-1", "t-1", "worker-b", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "worker-b", again.WorkerID)
	assert.Nil(t, again.ReleasedAt)
}

func TestReleaseStale(t *testing.T) {
	client := testdb.NewTestClient(t)
	lm := NewLeaseManager(client)
	ctx := context.Background()

	_, err := lm.Acquire(ctx, "item-live", "t-1", "worker-a", time.Hour)
	require.NoError(t, err)
	_, err = lm.Acquire(ctx, "item-stale", "t-1", "worker-b", time.Hour)
	require.NoError(t, err)
	_, err = client.Lease.Update().
		Where(lease.IDEQ("item-stale")).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	n, err := lm.ReleaseStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stale, err := lm.Get(ctx, "item-stale")
	require.NoError(t, err)
	require.NotNil(t, stale.Success)
	assert.False(t, *stale.Success)

	live, err := lm.Get(ctx, "item-live")
	require.NoError(t, err)
	assert.Nil(t, live.ReleasedAt)
}
