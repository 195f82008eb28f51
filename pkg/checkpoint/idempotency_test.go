package checkpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/codeready-toolchain/warden/test/database"
)

func TestCacheGetOrGenerate(t *testing.T) {
	client := testdb.NewTestClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	calls := 0
	gen := func(context.Context) (string, error) {
		calls++
		return "generated output", nil
	}

	out, hit, err := cache.GetOrGenerate(ctx, "planning", "sonnet", "plan the fix", "t-1", gen)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "generated output", out)
	assert.Equal(t, 1, calls)

	out, hit, err = cache.GetOrGenerate(ctx, "planning", "sonnet", "plan the fix", "t-1", gen)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "generated output", out)
	assert.Equal(t, 1, calls, "second call replays the cache")

	// Different task scope misses.
	_, hit, err = cache.GetOrGenerate(ctx, "planning", "sonnet", "plan the fix", "t-2", gen)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, calls)
}

func TestCacheGenerationErrorsPropagate(t *testing.T) {
	client := testdb.NewTestClient(t)
	cache := NewCache(client)

	boom := errors.New("model unavailable")
	_, _, err := cache.GetOrGenerate(context.Background(), "planning", "sonnet", "p", "t-1",
		func(context.Context) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
}

func TestCacheKeyIsUnambiguous(t *testing.T) {
	// Length-prefixed parts: ("ab","c") must not collide with ("a","bc").
	assert.NotEqual(t,
		CacheKey("ab", "c", "p", "t"),
		CacheKey("a", "bc", "p", "t"))
}

func TestLedgerExecuteOrReplay(t *testing.T) {
	client := testdb.NewTestClient(t)
	ledger := NewLedger(client)
	ctx := context.Background()

	fp, err := Fingerprint("coder", "https://llm.local:8080", map[string]any{"prompt": "fix it", "kind": "diff"})
	require.NoError(t, err)

	calls := 0
	fn := func(context.Context) (map[string]any, int, error) {
		calls++
		return map[string]any{"diff": "..."}, 0, nil
	}

	result, exitCode, replayed, err := ledger.ExecuteOrReplay(ctx, "t-1", fp, fn)
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "...", result["diff"])

	_, _, replayed, err = ledger.ExecuteOrReplay(ctx, "t-1", fp, fn)
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, 1, calls, "identical fingerprint replays")

	// Same fingerprint in another task scope executes.
	_, _, replayed, err = ledger.ExecuteOrReplay(ctx, "t-2", fp, fn)
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, 2, calls)
}

func TestLedgerExecutionErrorsAreNotStored(t *testing.T) {
	client := testdb.NewTestClient(t)
	ledger := NewLedger(client)
	ctx := context.Background()

	fp, err := Fingerprint("coder", "", map[string]any{"prompt": "x"})
	require.NoError(t, err)

	boom := errors.New("transport down")
	_, _, _, err = ledger.ExecuteOrReplay(ctx, "t-1", fp,
		func(context.Context) (map[string]any, int, error) { return nil, 0, boom })
	assert.ErrorIs(t, err, boom)

	// The failure was not recorded; the next call executes.
	_, _, replayed, err := ledger.ExecuteOrReplay(ctx, "t-1", fp,
		func(context.Context) (map[string]any, int, error) { return map[string]any{"ok": true}, 0, nil })
	require.NoError(t, err)
	assert.False(t, replayed)
}

func TestFingerprintStability(t *testing.T) {
	a, err := Fingerprint("coder", "e", map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)
	b, err := Fingerprint("coder", "e", map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, a, b, "key order does not change the fingerprint")

	c, err := Fingerprint("coder", "e", map[string]any{"a": 1, "b": 3})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
