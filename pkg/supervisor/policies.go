package supervisor

import (
	"context"
	"strings"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/gates"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
)

// Error classes for OnTaskFailed. Explicit lists win over the keyword
// heuristic.
var (
	nonRetryableErrors = []string{
		"redline",
		"pause gate",
		"validation",
		"illegal status transition",
		"diff validation",
		"auth",
		"invalid_token",
	}
	retryableErrors = []string{
		"timeout",
		"timed out",
		"network",
		"connection",
		"unreachable",
		"rate limit",
		"rate_limit",
	}
	retryableKeywords = []string{"temporar", "try again", "retry"}
)

// riskLevel grades a metric against its threshold: high at or above,
// medium at or above half, low below.
func riskLevel(value, threshold float64) string {
	switch {
	case threshold > 0 && value >= threshold:
		return "high"
	case threshold > 0 && value >= threshold/2:
		return "medium"
	default:
		return "low"
	}
}

func floatAt(payload map[string]any, key string) (float64, bool) {
	switch v := payload[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func specAt(payload map[string]any, key string) (map[string]any, bool) {
	m, ok := payload[key].(map[string]any)
	return m, ok
}

// OnTaskCreated validates declared specs against the redlines and
// grades attached risk. High or critical findings block the task;
// medium findings pause it at open_plan.
type OnTaskCreated struct {
	Redlines *gates.RedlineValidator
	Cfg      config.SupervisorConfig
}

func (p *OnTaskCreated) Name() string { return "on_task_created" }

func (p *OnTaskCreated) Evaluate(_ context.Context, ev *ent.InboxEvent) (*Decision, error) {
	inputs := map[string]any{"task_id": ev.TaskID}

	for key, validate := range map[string]func(map[string]any) error{
		"role_spec":    p.Redlines.ValidateRole,
		"command_spec": p.Redlines.ValidateCommand,
		"rule_spec":    p.Redlines.ValidateRule,
	} {
		spec, ok := specAt(ev.Payload, key)
		if !ok {
			continue
		}
		if err := validate(spec); err != nil {
			inputs["violation"] = err.Error()
			return decide(models.ActionBlock, "redline violation: "+err.Error(), inputs), nil
		}
	}

	worst := "low"
	if risk, ok := specAt(ev.Payload, "risk"); ok {
		for key, threshold := range map[string]float64{
			"error_rate":     p.Cfg.RiskErrorRate,
			"resource_usage": p.Cfg.RiskResourceUsage,
			"security_score": p.Cfg.RiskSecurityScore,
		} {
			value, ok := floatAt(risk, key)
			if !ok {
				continue
			}
			level := riskLevel(value, threshold)
			inputs["risk_"+key] = level
			switch level {
			case "high":
				worst = "high"
			case "medium":
				if worst != "high" {
					worst = "medium"
				}
			}
		}
	}

	switch worst {
	case "high":
		return decide(models.ActionBlock, "high risk at creation", inputs), nil
	case "medium":
		return decide(models.ActionPause, "medium risk, pausing at open_plan", inputs), nil
	}
	return allow("no findings", inputs), nil
}

// OnStepCompleted re-grades risk after every step and consults the
// system warnings.
type OnStepCompleted struct {
	Warnings *services.SystemWarningsService
	Cfg      config.SupervisorConfig
}

func (p *OnStepCompleted) Name() string { return "on_step_completed" }

func (p *OnStepCompleted) Evaluate(_ context.Context, ev *ent.InboxEvent) (*Decision, error) {
	inputs := map[string]any{
		"task_id":         ev.TaskID,
		"active_warnings": p.Warnings.Count(),
	}

	high := false
	for key, threshold := range map[string]float64{
		"error_rate":     p.Cfg.RiskErrorRate,
		"resource_usage": p.Cfg.RiskResourceUsage,
		"security_score": p.Cfg.RiskSecurityScore,
	} {
		value, ok := floatAt(ev.Payload, key)
		if !ok {
			continue
		}
		level := riskLevel(value, threshold)
		inputs["risk_"+key] = level
		if level == "high" {
			high = true
		}
	}

	if high {
		return decide(models.ActionPause, "high risk after step", inputs), nil
	}
	return allow("risk within thresholds", inputs), nil
}

// OnTaskFailed classifies the failure and either grants a retry within
// budget or blocks the task. The lifecycle performs the actual retry.
type OnTaskFailed struct {
	Tasks      *services.TaskService
	MaxRetries int
}

func (p *OnTaskFailed) Name() string { return "on_task_failed" }

func (p *OnTaskFailed) Evaluate(ctx context.Context, ev *ent.InboxEvent) (*Decision, error) {
	errText, _ := ev.Payload["error"].(string)
	class := classifyError(errText)
	inputs := map[string]any{
		"task_id":     ev.TaskID,
		"error":       errText,
		"error_class": class,
	}

	if class == "non_retryable" {
		return decide(models.ActionBlock, "non-retryable failure", inputs), nil
	}

	task, err := p.Tasks.GetTask(ctx, ev.TaskID)
	if err != nil {
		return nil, err
	}
	meta := models.TaskMetadataFrom(task.Metadata)
	retryCount := meta.RetryCount()
	maxRetries := meta.MaxRetries(p.MaxRetries)
	inputs["retry_count"] = retryCount
	inputs["max_retries"] = maxRetries

	if retryCount >= maxRetries {
		return decide(models.ActionBlock, "retry budget exhausted", inputs), nil
	}
	return decide(models.ActionRetry, "retryable failure within budget", inputs), nil
}

func classifyError(errText string) string {
	lower := strings.ToLower(errText)
	for _, marker := range nonRetryableErrors {
		if strings.Contains(lower, marker) {
			return "non_retryable"
		}
	}
	for _, marker := range retryableErrors {
		if strings.Contains(lower, marker) {
			return "retryable"
		}
	}
	for _, marker := range retryableKeywords {
		if strings.Contains(lower, marker) {
			return "retryable"
		}
	}
	// Unknown failures get one shot at a retry before the budget runs out.
	return "retryable"
}

// OnModeViolation audits low-severity violations and escalates
// error/critical ones to guardian review.
type OnModeViolation struct{}

func (p *OnModeViolation) Name() string { return "on_mode_violation" }

func (p *OnModeViolation) Evaluate(_ context.Context, ev *ent.InboxEvent) (*Decision, error) {
	severity, _ := ev.Payload["severity"].(string)
	inputs := map[string]any{"task_id": ev.TaskID, "severity": severity}

	switch severity {
	case "error", "critical":
		return decide(models.ActionRequireReview, "mode violation escalated to guardian review", inputs), nil
	default:
		return allow("mode violation audited", inputs), nil
	}
}
