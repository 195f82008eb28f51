package tools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/codeready-toolchain/warden/pkg/config"
	llmv1 "github.com/codeready-toolchain/warden/proto"
)

// GRPCAdapter talks to the local LLM sidecar over gRPC.
type GRPCAdapter struct {
	name   string
	cfg    *config.ToolAdapterConfig
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCAdapter dials the sidecar. grpc.NewClient connects lazily, so
// this does not fail on an unreachable endpoint; HealthCheck does.
func NewGRPCAdapter(name string, cfg *config.ToolAdapterConfig) (*GRPCAdapter, error) {
	conn, err := grpc.NewClient(cfg.Endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM sidecar client for %s: %w", cfg.Endpoint, err)
	}
	return &GRPCAdapter{
		name:   name,
		cfg:    cfg,
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

func (a *GRPCAdapter) Name() string { return a.name }

func (a *GRPCAdapter) Supports() config.ToolCapabilities { return a.cfg.Capabilities }

// Close releases the gRPC connection.
func (a *GRPCAdapter) Close() error { return a.conn.Close() }

// HealthCheck calls the sidecar's Health RPC.
func (a *GRPCAdapter) HealthCheck(ctx context.Context) HealthReport {
	hcCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := a.client.Health(hcCtx, &llmv1.HealthRequest{})
	if err != nil {
		return HealthReport{Status: HealthUnreachable, Details: err.Error(), ErrorCategory: CategoryNetwork}
	}
	switch resp.Status {
	case "serving":
		return HealthReport{Status: HealthConnected, Details: resp.Model}
	case "model_missing":
		return HealthReport{Status: HealthModelMissing, Details: resp.Detail, ErrorCategory: CategoryModel}
	default:
		return HealthReport{Status: HealthUnreachable, Details: resp.Detail, ErrorCategory: CategoryNetwork}
	}
}

// Run streams a generation and accumulates the text chunks.
func (a *GRPCAdapter) Run(ctx context.Context, req Request, allowMock bool) (*Result, error) {
	runCtx, cancel := context.WithTimeout(ctx, time.Duration(a.cfg.Timeout())*time.Millisecond)
	defer cancel()

	stream, err := a.client.Generate(runCtx, &llmv1.GenerateRequest{
		TaskId:     req.TaskID,
		Model:      a.cfg.Model,
		Prompt:     req.Prompt,
		OutputKind: string(req.OutputKind),
	})
	if err != nil {
		return a.failure(req, err, allowMock), nil
	}

	var sb strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return a.failure(req, err, allowMock), nil
		}
		switch c := resp.Content.(type) {
		case *llmv1.GenerateResponse_Text:
			sb.WriteString(c.Text.Content)
		case *llmv1.GenerateResponse_Error:
			return &Result{
				Status:        StatusFailed,
				OutputKind:    req.OutputKind,
				ErrorCategory: CategoryModel,
				ErrorMessage:  c.Error.Message,
			}, nil
		}
	}

	content := sb.String()
	res := &Result{
		Status:     StatusSuccess,
		OutputKind: req.OutputKind,
		Stdout:     content,
	}
	if req.OutputKind == OutputDiff {
		res.Diff = content
	}
	return res, nil
}

func (a *GRPCAdapter) failure(req Request, err error, allowMock bool) *Result {
	if st, ok := status.FromError(err); ok && st.Code() == codes.DeadlineExceeded {
		if allowMock {
			return MockResult(a.name, a.cfg, req, "grpc timeout in gate mode")
		}
		return &Result{
			Status:        StatusTimeout,
			OutputKind:    req.OutputKind,
			ErrorCategory: CategoryNetwork,
			ErrorMessage:  err.Error(),
		}
	}
	return &Result{
		Status:        StatusFailed,
		OutputKind:    req.OutputKind,
		ErrorCategory: CategoryNetwork,
		ErrorMessage:  err.Error(),
	}
}
