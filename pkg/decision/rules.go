// Package decision is the content-addressed governance ledger: every
// recorded decision is sealed with a hash over a canonical JSON field
// set, sign-offs attach as separate rows, and tampering is detectable.
package decision

import (
	"github.com/codeready-toolchain/warden/pkg/models"
)

// Rule is one governance check evaluated against a decision's inputs.
// A triggered rule contributes its verdict; most-restrictive wins.
type Rule struct {
	ID       string
	Evaluate func(inputs map[string]any) (bool, models.Verdict)
}

// numAt reads a numeric input, tolerating int and float64.
func numAt(inputs map[string]any, key string) (float64, bool) {
	switch v := inputs[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func boolAt(inputs map[string]any, key string) bool {
	b, _ := inputs[key].(bool)
	return b
}

func stringAt(inputs map[string]any, key string) string {
	s, _ := inputs[key].(string)
	return s
}

// DefaultRules returns the shipped rule sets per decision type.
func DefaultRules() map[models.DecisionType][]Rule {
	return map[models.DecisionType][]Rule{
		models.DecisionNavigation: {
			{
				ID: "nav-unknown-target",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					return boolAt(in, "target_unknown"), models.VerdictBlock
				},
			},
			{
				ID: "nav-reroute",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					return boolAt(in, "rerouted"), models.VerdictWarn
				},
			},
		},
		models.DecisionCompare: {
			{
				ID: "cmp-no-candidates",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					n, ok := numAt(in, "candidate_count")
					return ok && n == 0, models.VerdictBlock
				},
			},
			{
				ID: "cmp-low-confidence",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					c, ok := numAt(in, "confidence")
					return ok && c < 0.5, models.VerdictWarn
				},
			},
		},
		models.DecisionHealth: {
			{
				ID: "health-unhealthy",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					return stringAt(in, "status") == "unhealthy", models.VerdictBlock
				},
			},
			{
				ID: "health-degraded",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					return stringAt(in, "status") == "degraded", models.VerdictWarn
				},
			},
		},
		models.DecisionPolicy: {
			{
				ID: "policy-block",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					return stringAt(in, "action") == string(models.ActionBlock), models.VerdictBlock
				},
			},
			{
				ID: "policy-pause",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					return stringAt(in, "action") == string(models.ActionPause), models.VerdictRequireSignoff
				},
			},
			{
				ID: "policy-require-review",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					return stringAt(in, "action") == string(models.ActionRequireReview), models.VerdictRequireSignoff
				},
			},
			{
				ID: "policy-retry",
				Evaluate: func(in map[string]any) (bool, models.Verdict) {
					return stringAt(in, "action") == string(models.ActionRetry), models.VerdictWarn
				},
			},
		},
	}
}

// evaluate runs a rule set and returns the triggered rule ids and the
// merged verdict (ALLOW when nothing triggers).
func evaluate(rules []Rule, inputs map[string]any) ([]string, models.Verdict) {
	triggered := []string{}
	verdict := models.VerdictAllow
	for _, rule := range rules {
		hit, v := rule.Evaluate(inputs)
		if !hit {
			continue
		}
		triggered = append(triggered, rule.ID)
		verdict = models.MoreRestrictive(verdict, v)
	}
	return triggered, verdict
}
