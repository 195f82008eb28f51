package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/pkg/artifacts"
	"github.com/codeready-toolchain/warden/pkg/checkpoint"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/tools"
)

// PlanResult is what one planning pass produces: the open plan artifact
// content and the work items to execute.
type PlanResult struct {
	Plan  artifacts.OpenPlan
	Items []models.WorkItem
}

// PlanFn is the planning pipeline. gateFailure carries the last DONE
// gate failure into a re-plan; nil on the first pass.
type PlanFn func(ctx context.Context, task *ent.Task, route *models.RoutePlan, gateFailure *models.GateFailureContext) (*PlanResult, error)

// DefaultPlanner asks the routed adapter for a plan, caching the model
// output per task so an interrupted planning pass replays for free.
type DefaultPlanner struct {
	runtime *tools.Runtime
	cache   *checkpoint.Cache
}

// NewDefaultPlanner creates the default planning pipeline.
func NewDefaultPlanner(runtime *tools.Runtime, cache *checkpoint.Cache) *DefaultPlanner {
	return &DefaultPlanner{runtime: runtime, cache: cache}
}

// Plan implements PlanFn.
func (p *DefaultPlanner) Plan(ctx context.Context, task *ent.Task, route *models.RoutePlan, gateFailure *models.GateFailureContext) (*PlanResult, error) {
	meta := models.TaskMetadataFrom(task.Metadata)
	prompt := buildPlanningPrompt(task.Title, meta.NLRequest(), gateFailure)

	summary, _, err := p.cache.GetOrGenerate(ctx, "planning", route.Primary, prompt, task.ID,
		func(genCtx context.Context) (string, error) {
			res, err := p.runtime.Execute(genCtx, route.Primary, tools.Request{
				TaskID:     task.ID,
				Prompt:     prompt,
				OutputKind: tools.OutputPlan,
			}, true)
			if err != nil {
				return "", err
			}
			if res.Failed() {
				return "", fmt.Errorf("planning call failed: %s (%s)", res.ErrorMessage, res.ErrorCategory)
			}
			return res.Stdout, nil
		})
	if err != nil {
		return nil, err
	}

	items := []models.WorkItem{
		{
			ItemID: "wi-1",
			Title:  "Implement: " + task.Title,
			Status: models.WorkItemPending,
		},
	}
	if gateFailure != nil {
		items[0].Title = fmt.Sprintf("Fix %s gate failure and re-implement: %s", gateFailure.GateName, task.Title)
	}

	plan := artifacts.OpenPlan{
		TaskID:          task.ID,
		GeneratedAt:     time.Now().UTC(),
		PipelineStatus:  "planned",
		PipelineSummary: summary,
		Stages: []artifacts.PlanStage{
			{
				Name:        "implementation",
				Description: firstLine(summary),
				WorkItemIDs: []string{"wi-1"},
			},
		},
	}
	return &PlanResult{Plan: plan, Items: items}, nil
}

func buildPlanningPrompt(title, nlRequest string, gateFailure *models.GateFailureContext) string {
	var b strings.Builder
	b.WriteString("Plan the work for task: ")
	b.WriteString(title)
	if nlRequest != "" {
		b.WriteString("\n\nRequest:\n")
		b.WriteString(nlRequest)
	}
	if gateFailure != nil {
		fmt.Fprintf(&b, "\n\nPrevious attempt failed gate %q (exit %d, attempt %d).\nStderr:\n%s",
			gateFailure.GateName, gateFailure.ExitCode, gateFailure.Attempt, gateFailure.Stderr)
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
