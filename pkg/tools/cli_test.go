package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/config"
)

func TestCLIAdapterRun(t *testing.T) {
	a := NewCLIAdapter("shell", &config.ToolAdapterConfig{
		Kind:          config.AdapterKindCLI,
		ExecutionMode: config.ExecutionModeLocal,
		Command:       []string{"cat"},
	})

	res, err := a.Run(context.Background(), Request{
		TaskID: "t-1", Prompt: "hello tool", OutputKind: OutputAnalysis,
	}, false)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "hello tool", res.Stdout)
}

func TestCLIAdapterTimeout(t *testing.T) {
	a := NewCLIAdapter("slow", &config.ToolAdapterConfig{
		Kind:      config.AdapterKindCLI,
		Command:   []string{"sleep", "10"},
		TimeoutMS: 100,
	})

	start := time.Now()
	res, err := a.Run(context.Background(), Request{TaskID: "t-1", OutputKind: OutputPlan}, false)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 8*time.Second)
	assert.Equal(t, StatusTimeout, res.Status)
	assert.Contains(t, res.ErrorMessage, "timed out")
}

func TestCLIAdapterTimeoutMockInGateMode(t *testing.T) {
	a := NewCLIAdapter("slow", &config.ToolAdapterConfig{
		Kind:      config.AdapterKindCLI,
		Command:   []string{"sleep", "10"},
		TimeoutMS: 100,
	})

	// The adapter trusts its allowMock argument; the runtime owns the
	// env-var half of the gate.
	res, err := a.Run(context.Background(), Request{TaskID: "t-1", OutputKind: OutputPlan}, true)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.True(t, res.MockUsed)
	assert.NotEmpty(t, res.MockReason)
}

func TestCLIAdapterCommandFailure(t *testing.T) {
	a := NewCLIAdapter("fail", &config.ToolAdapterConfig{
		Kind:    config.AdapterKindCLI,
		Command: []string{"sh", "-c", "echo oops >&2; exit 2"},
	})

	res, err := a.Run(context.Background(), Request{TaskID: "t-1", OutputKind: OutputPlan}, false)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, CategoryRuntime, res.ErrorCategory)
	assert.Contains(t, res.Stderr, "oops")
}

func TestCLIAdapterHealthCheck(t *testing.T) {
	ok := NewCLIAdapter("ok", &config.ToolAdapterConfig{Command: []string{"sh"}})
	assert.Equal(t, HealthConnected, ok.HealthCheck(context.Background()).Status)

	missing := NewCLIAdapter("missing", &config.ToolAdapterConfig{Command: []string{"definitely-not-a-binary-xyz"}})
	hc := missing.HealthCheck(context.Background())
	assert.Equal(t, HealthNotConfigured, hc.Status)
	assert.Equal(t, CategoryConfig, hc.ErrorCategory)
}
