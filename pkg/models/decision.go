package models

// DecisionType classifies what a decision record governs.
type DecisionType string

// Decision types.
const (
	DecisionNavigation DecisionType = "NAVIGATION"
	DecisionCompare    DecisionType = "COMPARE"
	DecisionHealth     DecisionType = "HEALTH"
	DecisionPolicy     DecisionType = "POLICY"
)

// Verdict is the final outcome of a governance evaluation, ordered from
// least to most restrictive. Most-restrictive wins when rules disagree.
type Verdict string

// Verdicts.
const (
	VerdictAllow          Verdict = "ALLOW"
	VerdictWarn           Verdict = "WARN"
	VerdictRequireSignoff Verdict = "REQUIRE_SIGNOFF"
	VerdictBlock          Verdict = "BLOCK"
)

// restrictiveness orders verdicts for most-restrictive-wins merging.
var restrictiveness = map[Verdict]int{
	VerdictAllow:          0,
	VerdictWarn:           1,
	VerdictRequireSignoff: 2,
	VerdictBlock:          3,
}

// MoreRestrictive returns the stricter of two verdicts.
func MoreRestrictive(a, b Verdict) Verdict {
	if restrictiveness[b] > restrictiveness[a] {
		return b
	}
	return a
}

// PolicyAction is what a supervisor policy tells the lifecycle to do.
// RETRY is advisory: the task lifecycle performs the actual retry.
type PolicyAction string

// Policy actions.
const (
	ActionAllow         PolicyAction = "allow"
	ActionPause         PolicyAction = "pause"
	ActionBlock         PolicyAction = "block"
	ActionRetry         PolicyAction = "retry"
	ActionRequireReview PolicyAction = "require_review"
)
