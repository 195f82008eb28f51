package tools

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// GateModeVar is the process-wide flag enabling the mock fallback.
const GateModeVar = "WARDEN_GATE_MODE"

// GateModeEnabled reports whether the mock escape hatch is on.
func GateModeEnabled() bool {
	switch strings.ToLower(os.Getenv(GateModeVar)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Recorder persists tool call evidence. Implemented by the services
// layer; nil disables persistence (tests).
type Recorder interface {
	RecordToolCall(ctx context.Context, taskID string, res *Result) error
}

// Runtime wraps adapters with the invariants no adapter is trusted to
// uphold on its own: endpoint normalization, mandatory error category
// (H2), the diff-only check (H3), the no-write red line, mock gating,
// and evidence capture.
type Runtime struct {
	registry *config.AdapterRegistry
	adapters map[string]Adapter
	recorder Recorder
	bus      *bus.Bus
	logger   *slog.Logger
}

// NewRuntime creates a runtime over the configured adapters.
func NewRuntime(registry *config.AdapterRegistry, recorder Recorder, eventBus *bus.Bus) *Runtime {
	return &Runtime{
		registry: registry,
		adapters: make(map[string]Adapter),
		recorder: recorder,
		bus:      eventBus,
		logger:   slog.Default(),
	}
}

// Register makes an adapter callable by name.
func (rt *Runtime) Register(a Adapter) {
	rt.adapters[a.Name()] = a
}

// Adapter returns a registered adapter.
func (rt *Runtime) Adapter(name string) (Adapter, error) {
	a, ok := rt.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", config.ErrAdapterNotFound, name)
	}
	return a, nil
}

// HealthCheck probes one adapter.
func (rt *Runtime) HealthCheck(ctx context.Context, name string) (HealthReport, error) {
	a, err := rt.Adapter(name)
	if err != nil {
		return HealthReport{}, err
	}
	return a.HealthCheck(ctx), nil
}

// Execute runs one adapter call under the runtime invariants. The mock
// fallback reaches the adapter only when the caller allows it AND gate
// mode is on. Every call, pass or fail, produces a ToolCall record and
// a tool.executed event.
func (rt *Runtime) Execute(ctx context.Context, name string, req Request, allowMock bool) (*Result, error) {
	adapter, err := rt.Adapter(name)
	if err != nil {
		return nil, err
	}
	cfg, err := rt.registry.Get(name)
	if err != nil {
		return nil, err
	}

	mockPermitted := allowMock && GateModeEnabled()

	res, err := adapter.Run(ctx, req, mockPermitted)
	if err != nil {
		res = &Result{
			Status:       StatusFailed,
			OutputKind:   req.OutputKind,
			ErrorMessage: err.Error(),
		}
	}

	rt.finalize(ctx, adapter, cfg, req, res)

	rt.record(ctx, req.TaskID, res)
	return res, nil
}

// finalize applies the runtime invariants to an adapter result in
// place.
func (rt *Runtime) finalize(ctx context.Context, adapter Adapter, cfg *config.ToolAdapterConfig, req Request, res *Result) {
	if res.Tool == "" {
		res.Tool = adapter.Name()
	}
	if res.ToolRunID == "" {
		res.ToolRunID = uuid.NewString()
	}
	if res.OutputKind == "" {
		res.OutputKind = req.OutputKind
	}
	if res.Provider == "" {
		res.Provider = cfg.ExecutionMode
	}
	if res.ModelID == "" {
		res.ModelID = cfg.Model
	}
	res.Endpoint = NormalizeEndpoint(res.Endpoint, cfg.Endpoint)

	// Red line: adapters never write or commit.
	if res.WroteFiles || res.Committed {
		res.Status = StatusFailed
		res.ErrorCategory = CategoryRuntime
		res.ErrorMessage = "adapter declared wrote_files/committed; tools may only produce diffs"
		res.WroteFiles = false
		res.Committed = false
	}

	// H3: a diff result must carry a non-empty parseable diff inside
	// the allow-list.
	if res.OutputKind == OutputDiff && res.Status == StatusSuccess {
		v := ValidateDiff(res.Diff, cfg.AllowedPaths)
		res.DiffValidation = &v
		if !v.OK() {
			res.Status = StatusFailed
			res.ErrorCategory = CategorySchema
			res.ErrorMessage = "diff validation failed: " + strings.Join(v.Errors, "; ")
		} else {
			res.FilesTouched = v.FilesTouched
			res.LineCount = v.LineCount
		}
	}

	// H2: every failure carries a category, derived from health when
	// the adapter did not classify itself.
	if res.Failed() && res.ErrorCategory == "" {
		hc := adapter.HealthCheck(ctx)
		if hc.Status.Healthy() {
			res.ErrorCategory = CategoryRuntime
		} else {
			res.ErrorCategory = CategoryForHealth(hc.Status)
		}
	}
}

func (rt *Runtime) record(ctx context.Context, taskID string, res *Result) {
	if rt.recorder != nil {
		if err := rt.recorder.RecordToolCall(ctx, taskID, res); err != nil {
			rt.logger.Warn("Failed to persist tool call",
				"task_id", taskID, "tool", res.Tool, "error", err)
		}
	}
	if rt.bus != nil {
		rt.bus.Emit(models.NewTaskEvent(models.EventTypeToolExecuted, taskID, map[string]any{
			"tool":           res.Tool,
			"tool_run_id":    res.ToolRunID,
			"status":         string(res.Status),
			"output_kind":    string(res.OutputKind),
			"endpoint":       res.Endpoint,
			"error_category": string(res.ErrorCategory),
			"mock_used":      res.MockUsed,
		}))
	}
}

// NormalizeEndpoint reduces an endpoint to scheme://host[:port],
// dropping path, query, and credentials. Falls back to the configured
// endpoint when the adapter reported none.
func NormalizeEndpoint(reported, configured string) string {
	endpoint := reported
	if endpoint == "" {
		endpoint = configured
	}
	if endpoint == "" {
		return ""
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		// Not a URL (e.g. a bare host:port gRPC target); keep as-is.
		return endpoint
	}
	return u.Scheme + "://" + u.Host
}

// MockResult builds the gated fallback result. Diff-kind mocks carry a
// minimal valid diff so downstream validation still exercises the real
// path.
func MockResult(adapterName string, cfg *config.ToolAdapterConfig, req Request, reason string) *Result {
	res := &Result{
		Tool:       adapterName,
		Status:     StatusSuccess,
		ToolRunID:  uuid.NewString(),
		ModelID:    cfg.Model,
		Provider:   cfg.ExecutionMode,
		OutputKind: req.OutputKind,
		Endpoint:   cfg.Endpoint,
		MockUsed:   true,
		MockReason: reason,
	}
	if req.OutputKind == OutputDiff {
		path := "mock_output.txt"
		if len(cfg.AllowedPaths) > 0 {
			path = strings.TrimSuffix(cfg.AllowedPaths[0], "/") + "/mock_output.txt"
		}
		res.Diff = fmt.Sprintf("--- a/%s\n+++ b/%s\n@@ -0,0 +1 @@\n+mock output\n", path, path)
	} else {
		res.Stdout = "mock output"
	}
	return res
}
