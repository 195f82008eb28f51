package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent/auditentry"
	"github.com/codeready-toolchain/warden/pkg/models"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

func TestAuditService(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client, nil)
	audit := NewAuditService(client)
	ctx := context.Background()

	_, err := tasks.CreateTask(ctx, CreateTaskRequest{TaskID: "t-audit", Title: "t"})
	require.NoError(t, err)

	require.NoError(t, audit.Info(ctx, "t-audit", "planning.started", map[string]any{"iteration": 1}))
	require.NoError(t, audit.Warn(ctx, "t-audit", "timeout.warning", nil))
	require.NoError(t, audit.Error(ctx, "t-audit", "gate.failed", map[string]any{"gate": "unit"}))

	entries, err := audit.ListForTask(ctx, "t-audit", 0)
	require.NoError(t, err)
	require.Len(t, entries, 4, "creation entry plus three recorded")

	assert.Equal(t, "planning.started", entries[1].EventType)
	assert.Equal(t, auditentry.LevelInfo, entries[1].Level)
	assert.Equal(t, auditentry.LevelWarn, entries[2].Level)
	assert.Equal(t, auditentry.LevelError, entries[3].Level)
	assert.Equal(t, "unit", entries[3].Payload["gate"])

	t.Run("limit", func(t *testing.T) {
		limited, err := audit.ListForTask(ctx, "t-audit", 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("unknown task", func(t *testing.T) {
		err := audit.Record(ctx, "nope", "x", models.AuditInfo, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLineageService(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client, nil)
	lineage := NewLineageService(client)
	ctx := context.Background()

	_, err := tasks.CreateTask(ctx, CreateTaskRequest{TaskID: "t-lineage", Title: "t"})
	require.NoError(t, err)

	require.NoError(t, lineage.Record(ctx, "t-lineage", models.LineageRunnerSpawn, "worker-1", "created", nil))
	require.NoError(t, lineage.Record(ctx, "t-lineage", models.LineageArtifact, "artifacts/t-lineage/open_plan.json", "planning",
		map[string]any{"kind": "open_plan"}))

	entries, err := lineage.ListForTask(ctx, "t-lineage")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "worker-1", entries[0].RefID)
	assert.Equal(t, "planning", entries[1].Phase)
	assert.Equal(t, "open_plan", entries[1].Metadata["kind"])

	t.Run("validates ref id", func(t *testing.T) {
		err := lineage.Record(ctx, "t-lineage", models.LineageCommit, "", "", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestSystemWarningsService(t *testing.T) {
	s := NewSystemWarningsService()

	first := s.Add(WarningCategoryMCP, "server unhealthy", "3 consecutive failures", "git-tools")
	assert.Equal(t, 1, s.Count())

	// Same category and source replaces, not appends.
	second := s.Add(WarningCategoryMCP, "server still unhealthy", "5 consecutive failures", "git-tools")
	assert.Equal(t, 1, s.Count())
	assert.NotEqual(t, first, second)
	assert.Equal(t, "server still unhealthy", s.List()[0].Message)

	s.Add(WarningCategoryAdapter, "adapter unreachable", "", "claude-cli")
	assert.Equal(t, 2, s.Count())

	s.Resolve(WarningCategoryMCP, "git-tools")
	warnings := s.List()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCategoryAdapter, warnings[0].Category)
}
