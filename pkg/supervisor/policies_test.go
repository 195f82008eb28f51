package supervisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/gates"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

func testSupervisorConfig() config.SupervisorConfig {
	return config.SupervisorConfig{
		RiskErrorRate:     0.25,
		RiskResourceUsage: 0.90,
		RiskSecurityScore: 0.50,
	}
}

func inboxEvent(taskID, eventType string, payload map[string]any) *ent.InboxEvent {
	return &ent.InboxEvent{
		EventID:   eventType + ":" + taskID,
		TaskID:    taskID,
		EventType: eventType,
		Source:    inboxevent.SourceEventbus,
		Payload:   payload,
	}
}

func TestOnTaskCreated(t *testing.T) {
	redlines, err := gates.NewRedlineValidator()
	require.NoError(t, err)
	policy := &OnTaskCreated{Redlines: redlines, Cfg: testSupervisorConfig()}
	ctx := context.Background()

	t.Run("clean creation allows", func(t *testing.T) {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-1", models.EventTypeTaskCreated, nil))
		require.NoError(t, err)
		assert.Equal(t, models.ActionAllow, dec.Action)
	})

	t.Run("role with executable field blocks", func(t *testing.T) {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-1", models.EventTypeTaskCreated, map[string]any{
			"role_spec": map[string]any{
				"id":       "reviewer",
				"category": "engineering",
				"titles":   []any{"Code Reviewer"},
				"command":  "rm -rf /",
			},
		}))
		require.NoError(t, err)
		assert.Equal(t, models.ActionBlock, dec.Action)
		assert.Contains(t, dec.Reason, "redline")
	})

	t.Run("high risk blocks", func(t *testing.T) {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-1", models.EventTypeTaskCreated, map[string]any{
			"risk": map[string]any{"error_rate": 0.30},
		}))
		require.NoError(t, err)
		assert.Equal(t, models.ActionBlock, dec.Action)
	})

	t.Run("medium risk pauses", func(t *testing.T) {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-1", models.EventTypeTaskCreated, map[string]any{
			"risk": map[string]any{"error_rate": 0.15},
		}))
		require.NoError(t, err)
		assert.Equal(t, models.ActionPause, dec.Action)
	})
}

func TestOnStepCompleted(t *testing.T) {
	policy := &OnStepCompleted{
		Warnings: services.NewSystemWarningsService(),
		Cfg:      testSupervisorConfig(),
	}
	ctx := context.Background()

	t.Run("within thresholds allows", func(t *testing.T) {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-1", models.EventTypeStepCompleted, map[string]any{
			"error_rate": 0.05, "resource_usage": 0.40,
		}))
		require.NoError(t, err)
		assert.Equal(t, models.ActionAllow, dec.Action)
	})

	t.Run("high risk pauses", func(t *testing.T) {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-1", models.EventTypeStepCompleted, map[string]any{
			"resource_usage": 0.95,
		}))
		require.NoError(t, err)
		assert.Equal(t, models.ActionPause, dec.Action)
	})
}

func TestOnTaskFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client, nil)
	policy := &OnTaskFailed{Tasks: tasks, MaxRetries: 3}
	ctx := context.Background()

	_, err := tasks.CreateTask(ctx, services.CreateTaskRequest{TaskID: "t-fail", Title: "t"})
	require.NoError(t, err)

	t.Run("non-retryable blocks", func(t *testing.T) {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-fail", models.EventTypeTaskFailed, map[string]any{
			"error": "redline violation in role spec",
		}))
		require.NoError(t, err)
		assert.Equal(t, models.ActionBlock, dec.Action)
	})

	t.Run("retryable within budget retries", func(t *testing.T) {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-fail", models.EventTypeTaskFailed, map[string]any{
			"error": "connection refused: upstream unreachable",
		}))
		require.NoError(t, err)
		assert.Equal(t, models.ActionRetry, dec.Action)
	})

	t.Run("heuristic keywords count as retryable", func(t *testing.T) {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-fail", models.EventTypeTaskFailed, map[string]any{
			"error": "server busy, please try again later",
		}))
		require.NoError(t, err)
		assert.Equal(t, models.ActionRetry, dec.Action)
	})

	t.Run("exhausted budget blocks", func(t *testing.T) {
		_, err := tasks.UpdateMetadata(ctx, "t-fail", func(m *models.Metadata) error {
			m.SetRetryCount(3)
			return nil
		})
		require.NoError(t, err)

		dec, err := policy.Evaluate(ctx, inboxEvent("t-fail", models.EventTypeTaskFailed, map[string]any{
			"error": "timeout waiting for adapter",
		}))
		require.NoError(t, err)
		assert.Equal(t, models.ActionBlock, dec.Action)
		assert.Contains(t, dec.Reason, "budget")
	})
}

func TestOnModeViolation(t *testing.T) {
	policy := &OnModeViolation{}
	ctx := context.Background()

	for severity, want := range map[string]models.PolicyAction{
		"info":     models.ActionAllow,
		"warning":  models.ActionAllow,
		"error":    models.ActionRequireReview,
		"critical": models.ActionRequireReview,
	} {
		dec, err := policy.Evaluate(ctx, inboxEvent("t-1", models.EventTypeModeViolation, map[string]any{
			"severity": severity,
		}))
		require.NoError(t, err)
		assert.Equal(t, want, dec.Action, "severity %s", severity)
	}
}

func TestClassifyError(t *testing.T) {
	assert.Equal(t, "non_retryable", classifyError("PAUSE GATE violation at review"))
	assert.Equal(t, "retryable", classifyError("dial tcp: network is down"))
	assert.Equal(t, "retryable", classifyError("something entirely novel"))
}
