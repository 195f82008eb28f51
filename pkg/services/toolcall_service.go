package services

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/toolcall"
	"github.com/codeready-toolchain/warden/pkg/database"
	"github.com/codeready-toolchain/warden/pkg/tools"
)

// ToolCallService persists the audit projection of adapter invocations.
// It implements tools.Recorder so the adapter runtime can record every
// call without depending on the persistence layer.
type ToolCallService struct {
	client *ent.Client
	db     *stdsql.DB
}

// NewToolCallService creates a new ToolCallService. db may be nil when
// full-text search is not needed (tests).
func NewToolCallService(client *ent.Client, db *stdsql.DB) *ToolCallService {
	return &ToolCallService{client: client, db: db}
}

var _ tools.Recorder = (*ToolCallService)(nil)

// RecordToolCall persists one adapter result. The stored output text is
// the diff when present, the stdout otherwise; the FTS triggers index it.
func (s *ToolCallService) RecordToolCall(ctx context.Context, taskID string, res *tools.Result) error {
	if res.ToolRunID == "" {
		return NewValidationError("tool_run_id", "required")
	}
	if res.Failed() && res.ErrorCategory == "" {
		return NewValidationError("error_category", "required on failed calls")
	}

	outputText := res.Diff
	if outputText == "" {
		outputText = res.Stdout
	}

	create := s.client.ToolCall.Create().
		SetID(res.ToolRunID).
		SetTaskID(taskID).
		SetTool(res.Tool).
		SetStatus(toolcall.Status(res.Status)).
		SetMockUsed(res.MockUsed)
	if res.ErrorCategory != "" {
		create.SetErrorCategory(string(res.ErrorCategory))
	}
	if res.Endpoint != "" {
		create.SetEndpoint(res.Endpoint)
	}
	if res.OutputKind != "" {
		create.SetOutputKind(string(res.OutputKind))
	}
	if res.ModelID != "" {
		create.SetModelID(res.ModelID)
	}
	if res.Provider != "" {
		create.SetProvider(toolcall.Provider(res.Provider))
	}
	if outputText != "" {
		create.SetOutputText(outputText)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: tool run %s", ErrAlreadyExists, res.ToolRunID)
		}
		return fmt.Errorf("failed to record tool call: %w", err)
	}
	return nil
}

// ListForTask returns a task's tool calls in insertion order.
func (s *ToolCallService) ListForTask(ctx context.Context, taskID string) ([]*ent.ToolCall, error) {
	calls, err := s.client.ToolCall.Query().
		Where(toolcall.TaskIDEQ(taskID)).
		Order(ent.Asc(toolcall.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool calls for task %s: %w", taskID, err)
	}
	return calls, nil
}

// Get returns a single tool call by run id.
func (s *ToolCallService) Get(ctx context.Context, toolRunID string) (*ent.ToolCall, error) {
	tc, err := s.client.ToolCall.Get(ctx, toolRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tool call %s: %w", toolRunID, err)
	}
	return tc, nil
}

// Search runs a full-text query over tool call output and returns the
// matching run ids, newest first.
func (s *ToolCallService) Search(ctx context.Context, query string, limit int) ([]*ent.ToolCall, error) {
	if s.db == nil {
		return nil, fmt.Errorf("%w: full-text search is not configured", ErrInvalidInput)
	}
	ids, err := database.SearchToolCalls(s.db, query, limit)
	if err != nil {
		return nil, fmt.Errorf("tool call search failed: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	calls, err := s.client.ToolCall.Query().
		Where(toolcall.IDIn(ids...)).
		Order(ent.Desc(toolcall.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load searched tool calls: %w", err)
	}
	return calls, nil
}
