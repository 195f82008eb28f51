package gates

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/artifacts"
	"github.com/codeready-toolchain/warden/pkg/config"
)

func TestDoneGateRunnerAllPass(t *testing.T) {
	dir := t.TempDir()
	r := NewDoneGateRunner(map[string]config.GateConfig{
		"doctor": {Command: []string{"sh", "-c", "echo healthy"}},
		"tests":  {Command: []string{"true"}},
	}, artifacts.NewWriter(dir), "")

	res, err := r.Run(context.Background(), "t-1", []string{"doctor", "tests"})
	require.NoError(t, err)

	assert.True(t, res.Passed())
	require.Len(t, res.GatesExecuted, 2)
	assert.Equal(t, GateStatusPassed, res.GatesExecuted[0].Status)
	assert.Contains(t, res.GatesExecuted[0].Stdout, "healthy")
	assert.Nil(t, res.FirstFailure())

	// Artifact written.
	data, err := os.ReadFile(filepath.Join(dir, "t-1", artifacts.FileGateResults))
	require.NoError(t, err)
	var persisted GateResults
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, GateStatusPassed, persisted.OverallStatus)
}

func TestDoneGateRunnerFailFast(t *testing.T) {
	r := NewDoneGateRunner(map[string]config.GateConfig{
		"doctor": {Command: []string{"sh", "-c", "echo broken >&2; exit 3"}},
		"tests":  {Command: []string{"true"}},
	}, artifacts.NewWriter(t.TempDir()), "")

	res, err := r.Run(context.Background(), "t-2", []string{"doctor", "tests"})
	require.NoError(t, err)

	assert.False(t, res.Passed())
	require.Len(t, res.GatesExecuted, 1, "second gate must not run after a failure")

	fail := res.FirstFailure()
	require.NotNil(t, fail)
	assert.Equal(t, "doctor", fail.GateName)
	assert.Equal(t, 3, fail.ExitCode)
	assert.Contains(t, fail.Stderr, "broken")
}

func TestDoneGateRunnerUnknownGate(t *testing.T) {
	r := NewDoneGateRunner(map[string]config.GateConfig{}, artifacts.NewWriter(t.TempDir()), "")

	res, err := r.Run(context.Background(), "t-3", []string{"nonexistent"})
	require.NoError(t, err)
	assert.False(t, res.Passed())
	require.Len(t, res.GatesExecuted, 1)
	assert.Contains(t, res.GatesExecuted[0].ErrorMessage, "nonexistent")
}

func TestDoneGateRunnerTimeout(t *testing.T) {
	r := NewDoneGateRunner(map[string]config.GateConfig{
		"slow": {Command: []string{"sleep", "10"}, Timeout: 100 * time.Millisecond},
	}, artifacts.NewWriter(t.TempDir()), "")

	start := time.Now()
	res, err := r.Run(context.Background(), "t-4", []string{"slow"})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.False(t, res.Passed())
	assert.Contains(t, res.GatesExecuted[0].ErrorMessage, "timed out")
}
