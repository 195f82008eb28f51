package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent/toolcall"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/tools"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

func TestToolCallService_RecordToolCall(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskSvc := NewTaskService(client, nil)
	svc := NewToolCallService(client, nil)
	ctx := context.Background()

	_, err := taskSvc.CreateTask(ctx, CreateTaskRequest{TaskID: "t-tc", Title: "t"})
	require.NoError(t, err)

	t.Run("persists a successful diff call", func(t *testing.T) {
		err := svc.RecordToolCall(ctx, "t-tc", &tools.Result{
			Tool:       "coder",
			ToolRunID:  "run-1",
			Status:     tools.StatusSuccess,
			OutputKind: tools.OutputDiff,
			Diff:       "--- a/x.go\n+++ b/x.go\n@@ -1 +1 @@\n-old\n+new\n",
			ModelID:    "sonnet",
			Provider:   config.ExecutionModeCloud,
			Endpoint:   "https://llm.local:8080",
		})
		require.NoError(t, err)

		tc, err := svc.Get(ctx, "run-1")
		require.NoError(t, err)
		assert.Equal(t, toolcall.StatusSuccess, tc.Status)
		assert.Equal(t, "diff", tc.OutputKind)
		assert.Equal(t, toolcall.ProviderCloud, tc.Provider)
		assert.Contains(t, tc.OutputText, "+new", "diff is stored as the searchable text")
	})

	t.Run("persists a failure with category and endpoint", func(t *testing.T) {
		err := svc.RecordToolCall(ctx, "t-tc", &tools.Result{
			Tool:          "coder",
			ToolRunID:     "run-2",
			Status:        tools.StatusFailed,
			OutputKind:    tools.OutputPlan,
			ErrorCategory: tools.CategoryNetwork,
			Endpoint:      "https://llm.local:8080",
			ErrorMessage:  "connection refused",
		})
		require.NoError(t, err)

		tc, err := svc.Get(ctx, "run-2")
		require.NoError(t, err)
		assert.Equal(t, "network", tc.ErrorCategory)
		assert.Equal(t, "https://llm.local:8080", tc.Endpoint)
	})

	t.Run("rejects failures without a category", func(t *testing.T) {
		err := svc.RecordToolCall(ctx, "t-tc", &tools.Result{
			Tool: "coder", ToolRunID: "run-3", Status: tools.StatusFailed,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate run ids", func(t *testing.T) {
		err := svc.RecordToolCall(ctx, "t-tc", &tools.Result{
			Tool: "coder", ToolRunID: "run-1", Status: tools.StatusSuccess,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("lists in insertion order", func(t *testing.T) {
		calls, err := svc.ListForTask(ctx, "t-tc")
		require.NoError(t, err)
		require.Len(t, calls, 2)
		assert.Equal(t, "run-1", calls[0].ID)
	})

	t.Run("search requires the raw handle", func(t *testing.T) {
		_, err := svc.Search(ctx, "new", 10)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
