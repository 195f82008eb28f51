package runner

import (
	"context"
	"errors"
	"time"

	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/tools"
)

// ErrNoHealthyAdapter is returned when routing finds nothing usable.
var ErrNoHealthyAdapter = errors.New("no healthy adapter available")

// diffQualityRank orders adapters for diff-producing work.
var diffQualityRank = map[config.DiffQuality]int{
	config.DiffQualityHigh:   3,
	config.DiffQualityMedium: 2,
	config.DiffQualityLow:    1,
}

// RoutePlanner picks the primary adapter and a fallback chain from the
// configured registry, preferring healthy adapters with the best diff
// quality.
type RoutePlanner struct {
	registry *config.AdapterRegistry
	runtime  *tools.Runtime
}

// NewRoutePlanner creates a route planner.
func NewRoutePlanner(registry *config.AdapterRegistry, runtime *tools.Runtime) *RoutePlanner {
	return &RoutePlanner{registry: registry, runtime: runtime}
}

// Plan returns the route decision for a task. Healthy adapters beat
// unhealthy ones; diff quality breaks ties; config order breaks the
// rest.
func (rp *RoutePlanner) Plan(ctx context.Context) (*models.RoutePlan, error) {
	type candidate struct {
		name    string
		healthy bool
		rank    int
	}

	var candidates []candidate
	for _, name := range rp.registry.Names() {
		cfg, err := rp.registry.Get(name)
		if err != nil {
			continue
		}
		report, err := rp.runtime.HealthCheck(ctx, name)
		healthy := err == nil && report.Status.Healthy()
		candidates = append(candidates, candidate{
			name:    name,
			healthy: healthy,
			rank:    diffQualityRank[cfg.Capabilities.DiffQuality],
		})
	}
	if len(candidates) == 0 {
		return nil, ErrNoHealthyAdapter
	}

	// Stable selection: pick the best candidate, keep the rest in
	// config order as the fallback chain.
	best := -1
	for i, c := range candidates {
		if best == -1 {
			best = i
			continue
		}
		b := candidates[best]
		if (c.healthy && !b.healthy) || (c.healthy == b.healthy && c.rank > b.rank) {
			best = i
		}
	}
	if !candidates[best].healthy {
		return nil, ErrNoHealthyAdapter
	}

	plan := &models.RoutePlan{
		Primary:   candidates[best].name,
		Reason:    "healthiest adapter with best diff quality",
		DecidedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for i, c := range candidates {
		if i != best {
			plan.FallbackChain = append(plan.FallbackChain, c.name)
		}
	}
	return plan, nil
}

// Reroute verifies the current plan against adapter health. When the
// primary is unhealthy it promotes the first healthy fallback; the
// boolean reports whether the plan changed.
func (rp *RoutePlanner) Reroute(ctx context.Context, plan *models.RoutePlan) (*models.RoutePlan, bool, error) {
	if plan == nil {
		fresh, err := rp.Plan(ctx)
		return fresh, fresh != nil, err
	}

	report, err := rp.runtime.HealthCheck(ctx, plan.Primary)
	if err == nil && report.Status.Healthy() {
		return plan, false, nil
	}

	for i, name := range plan.FallbackChain {
		report, err := rp.runtime.HealthCheck(ctx, name)
		if err != nil || !report.Status.Healthy() {
			continue
		}
		next := &models.RoutePlan{
			Primary:   name,
			Reason:    "primary unhealthy, promoted fallback",
			DecidedAt: time.Now().UTC().Format(time.RFC3339),
		}
		next.FallbackChain = append(next.FallbackChain, plan.Primary)
		next.FallbackChain = append(next.FallbackChain, plan.FallbackChain[:i]...)
		next.FallbackChain = append(next.FallbackChain, plan.FallbackChain[i+1:]...)
		return next, true, nil
	}
	return nil, false, ErrNoHealthyAdapter
}
