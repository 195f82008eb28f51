package tools

import (
	"context"
	"errors"

	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/mcp"
)

// MCPAdapter bridges a single named MCP tool into the adapter contract.
type MCPAdapter struct {
	name   string
	cfg    *config.ToolAdapterConfig
	client *mcp.Client
}

// NewMCPAdapter wraps cfg.MCPServer's cfg.MCPTool behind the shared
// MCP client.
func NewMCPAdapter(name string, cfg *config.ToolAdapterConfig, client *mcp.Client) *MCPAdapter {
	return &MCPAdapter{name: name, cfg: cfg, client: client}
}

func (a *MCPAdapter) Name() string { return a.name }

func (a *MCPAdapter) Supports() config.ToolCapabilities { return a.cfg.Capabilities }

// HealthCheck verifies the session is up and the tool is exposed.
func (a *MCPAdapter) HealthCheck(ctx context.Context) HealthReport {
	if !a.client.HasSession(a.cfg.MCPServer) {
		return HealthReport{
			Status:        HealthUnreachable,
			Details:       "no session to server " + a.cfg.MCPServer,
			ErrorCategory: CategoryNetwork,
		}
	}
	tools, err := a.client.ListTools(ctx, a.cfg.MCPServer)
	if err != nil {
		return HealthReport{Status: HealthUnreachable, Details: err.Error(), ErrorCategory: CategoryNetwork}
	}
	for _, t := range tools {
		if t.Name == a.cfg.MCPTool {
			return HealthReport{Status: HealthConnected}
		}
	}
	return HealthReport{
		Status:        HealthModelMissing,
		Details:       "tool " + a.cfg.MCPTool + " not exposed by " + a.cfg.MCPServer,
		ErrorCategory: CategoryModel,
	}
}

// Run invokes the MCP tool with the request as arguments.
func (a *MCPAdapter) Run(ctx context.Context, req Request, allowMock bool) (*Result, error) {
	callRes, err := a.client.CallTool(ctx, a.cfg.MCPServer, a.cfg.MCPTool, map[string]any{
		"task_id":     req.TaskID,
		"prompt":      req.Prompt,
		"output_kind": string(req.OutputKind),
	})
	if err != nil {
		var toErr *mcp.TimeoutError
		if errors.As(err, &toErr) {
			if allowMock {
				return MockResult(a.name, a.cfg, req, "mcp timeout in gate mode"), nil
			}
			return &Result{
				Status:        StatusTimeout,
				OutputKind:    req.OutputKind,
				ErrorCategory: CategoryNetwork,
				ErrorMessage:  err.Error(),
			}, nil
		}
		var protoErr *mcp.ProtocolError
		category := CategoryNetwork
		if errors.As(err, &protoErr) {
			category = CategorySchema
		}
		return &Result{
			Status:        StatusFailed,
			OutputKind:    req.OutputKind,
			ErrorCategory: category,
			ErrorMessage:  err.Error(),
		}, nil
	}

	text := callRes.Text()
	if callRes.IsError {
		return &Result{
			Status:        StatusFailed,
			OutputKind:    req.OutputKind,
			ErrorCategory: CategoryRuntime,
			ErrorMessage:  text,
		}, nil
	}

	res := &Result{
		Status:     StatusSuccess,
		OutputKind: req.OutputKind,
		Stdout:     text,
	}
	if req.OutputKind == OutputDiff {
		res.Diff = text
	}
	return res, nil
}
