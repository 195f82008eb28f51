package tools

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// stubAdapter returns canned results and records mock permission.
type stubAdapter struct {
	name      string
	caps      config.ToolCapabilities
	health    HealthReport
	result    *Result
	runErr    error
	mockSeen  bool
	runCalled bool
}

func (s *stubAdapter) Name() string                                { return s.name }
func (s *stubAdapter) Supports() config.ToolCapabilities           { return s.caps }
func (s *stubAdapter) HealthCheck(context.Context) HealthReport    { return s.health }
func (s *stubAdapter) Run(_ context.Context, _ Request, allowMock bool) (*Result, error) {
	s.runCalled = true
	s.mockSeen = allowMock
	if s.runErr != nil {
		return nil, s.runErr
	}
	cp := *s.result
	return &cp, nil
}

type memRecorder struct {
	mu    sync.Mutex
	calls []*Result
}

func (r *memRecorder) RecordToolCall(_ context.Context, _ string, res *Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, res)
	return nil
}

func newTestRuntime(t *testing.T, adapterCfg config.ToolAdapterConfig, stub *stubAdapter) (*Runtime, *memRecorder, *bus.Bus) {
	t.Helper()
	rec := &memRecorder{}
	b := bus.New()
	rt := NewRuntime(config.NewAdapterRegistry(map[string]config.ToolAdapterConfig{
		stub.name: adapterCfg,
	}), rec, b)
	rt.Register(stub)
	return rt, rec, b
}

func TestExecuteDiffInvariant(t *testing.T) {
	t.Run("valid diff passes", func(t *testing.T) {
		stub := &stubAdapter{
			name:   "coder",
			health: HealthReport{Status: HealthConnected},
			result: &Result{Status: StatusSuccess, OutputKind: OutputDiff, Diff: sampleDiff},
		}
		rt, rec, _ := newTestRuntime(t, config.ToolAdapterConfig{
			Kind: config.AdapterKindCLI, ExecutionMode: config.ExecutionModeCloud,
			AllowedPaths: []string{"pkg/"},
		}, stub)

		res, err := rt.Execute(context.Background(), "coder", Request{TaskID: "t-1", OutputKind: OutputDiff}, false)
		require.NoError(t, err)
		assert.Equal(t, StatusSuccess, res.Status)
		require.NotNil(t, res.DiffValidation)
		assert.True(t, res.DiffValidation.OK())
		assert.Equal(t, 2, len(res.FilesTouched))
		assert.NotEmpty(t, res.ToolRunID)
		require.Len(t, rec.calls, 1)
	})

	t.Run("empty diff fails with schema category", func(t *testing.T) {
		stub := &stubAdapter{
			name:   "coder",
			health: HealthReport{Status: HealthConnected},
			result: &Result{Status: StatusSuccess, OutputKind: OutputDiff, Diff: ""},
		}
		rt, _, _ := newTestRuntime(t, config.ToolAdapterConfig{Kind: config.AdapterKindCLI}, stub)

		res, err := rt.Execute(context.Background(), "coder", Request{TaskID: "t-1", OutputKind: OutputDiff}, false)
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, res.Status)
		assert.Equal(t, CategorySchema, res.ErrorCategory)
	})

	t.Run("out-of-allowlist diff fails", func(t *testing.T) {
		stub := &stubAdapter{
			name:   "coder",
			health: HealthReport{Status: HealthConnected},
			result: &Result{Status: StatusSuccess, OutputKind: OutputDiff, Diff: sampleDiff},
		}
		rt, _, _ := newTestRuntime(t, config.ToolAdapterConfig{
			Kind: config.AdapterKindCLI, AllowedPaths: []string{"docs/"},
		}, stub)

		res, err := rt.Execute(context.Background(), "coder", Request{TaskID: "t-1", OutputKind: OutputDiff}, false)
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, res.Status)
		assert.Contains(t, res.ErrorMessage, "allow-list")
	})
}

func TestExecuteNoWriteRedLine(t *testing.T) {
	stub := &stubAdapter{
		name:   "rogue",
		health: HealthReport{Status: HealthConnected},
		result: &Result{Status: StatusSuccess, OutputKind: OutputAnalysis, WroteFiles: true},
	}
	rt, rec, _ := newTestRuntime(t, config.ToolAdapterConfig{Kind: config.AdapterKindCLI}, stub)

	res, err := rt.Execute(context.Background(), "rogue", Request{TaskID: "t-1", OutputKind: OutputAnalysis}, false)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, CategoryRuntime, res.ErrorCategory)
	assert.False(t, res.WroteFiles)
	assert.False(t, res.Committed)
	require.Len(t, rec.calls, 1, "red-line failures are still recorded")
}

func TestExecuteH2CategoryFromHealth(t *testing.T) {
	stub := &stubAdapter{
		name:   "flaky",
		health: HealthReport{Status: HealthInvalidToken},
		result: &Result{Status: StatusFailed, OutputKind: OutputPlan, ErrorMessage: "boom"},
	}
	rt, _, _ := newTestRuntime(t, config.ToolAdapterConfig{
		Kind: config.AdapterKindHTTP, Endpoint: "https://llm.local:8080/v1/chat?key=s3cret",
	}, stub)

	res, err := rt.Execute(context.Background(), "flaky", Request{TaskID: "t-1", OutputKind: OutputPlan}, false)
	require.NoError(t, err)
	assert.Equal(t, CategoryAuth, res.ErrorCategory, "category derived from health status")
	assert.Equal(t, "https://llm.local:8080", res.Endpoint, "endpoint normalized, no path or query")
}

func TestExecuteMockDualGate(t *testing.T) {
	mk := func() *stubAdapter {
		return &stubAdapter{
			name:   "coder",
			health: HealthReport{Status: HealthConnected},
			result: &Result{Status: StatusSuccess, OutputKind: OutputPlan, Stdout: "plan"},
		}
	}

	t.Run("caller allows but gate mode off", func(t *testing.T) {
		stub := mk()
		rt, _, _ := newTestRuntime(t, config.ToolAdapterConfig{Kind: config.AdapterKindCLI}, stub)
		_, err := rt.Execute(context.Background(), "coder", Request{TaskID: "t-1", OutputKind: OutputPlan}, true)
		require.NoError(t, err)
		assert.False(t, stub.mockSeen)
	})

	t.Run("gate mode on but caller forbids", func(t *testing.T) {
		t.Setenv(GateModeVar, "true")
		stub := mk()
		rt, _, _ := newTestRuntime(t, config.ToolAdapterConfig{Kind: config.AdapterKindCLI}, stub)
		_, err := rt.Execute(context.Background(), "coder", Request{TaskID: "t-1", OutputKind: OutputPlan}, false)
		require.NoError(t, err)
		assert.False(t, stub.mockSeen)
	})

	t.Run("both on", func(t *testing.T) {
		t.Setenv(GateModeVar, "1")
		stub := mk()
		rt, _, _ := newTestRuntime(t, config.ToolAdapterConfig{Kind: config.AdapterKindCLI}, stub)
		_, err := rt.Execute(context.Background(), "coder", Request{TaskID: "t-1", OutputKind: OutputPlan}, true)
		require.NoError(t, err)
		assert.True(t, stub.mockSeen)
	})
}

func TestExecuteEmitsToolEvent(t *testing.T) {
	stub := &stubAdapter{
		name:   "coder",
		health: HealthReport{Status: HealthConnected},
		result: &Result{Status: StatusSuccess, OutputKind: OutputPlan, Stdout: "plan"},
	}
	rt, _, b := newTestRuntime(t, config.ToolAdapterConfig{Kind: config.AdapterKindCLI}, stub)

	var events []models.Event
	b.Subscribe(models.EventTypeToolExecuted, func(e models.Event) { events = append(events, e) })

	_, err := rt.Execute(context.Background(), "coder", Request{TaskID: "t-9", OutputKind: OutputPlan}, false)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "t-9", events[0].Entity.ID)
	assert.Equal(t, "coder", events[0].Payload["tool"])
}

func TestMockResultDiffIsValid(t *testing.T) {
	cfg := &config.ToolAdapterConfig{AllowedPaths: []string{"pkg/"}}
	res := MockResult("coder", cfg, Request{TaskID: "t-1", OutputKind: OutputDiff}, "timeout")
	assert.True(t, res.MockUsed)
	assert.Equal(t, "timeout", res.MockReason)
	v := ValidateDiff(res.Diff, cfg.AllowedPaths)
	assert.True(t, v.OK(), "mock diffs must survive the diff-only check")
}
