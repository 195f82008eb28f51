package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/tools"
)

func newRoutingFixture(t *testing.T, stubs ...*stubAdapter) *RoutePlanner {
	t.Helper()
	cfgs := make(map[string]config.ToolAdapterConfig, len(stubs))
	for _, s := range stubs {
		quality := config.DiffQualityMedium
		if s.name == "premium" {
			quality = config.DiffQualityHigh
		}
		cfgs[s.name] = config.ToolAdapterConfig{
			Kind:         config.AdapterKindCLI,
			Capabilities: config.ToolCapabilities{DiffQuality: quality},
		}
	}
	registry := config.NewAdapterRegistry(cfgs)
	runtime := tools.NewRuntime(registry, nil, bus.New())
	for _, s := range stubs {
		runtime.Register(s)
	}
	return NewRoutePlanner(registry, runtime)
}

func TestRoutePlanPrefersHealthyHighQuality(t *testing.T) {
	rp := newRoutingFixture(t,
		&stubAdapter{name: "premium", health: tools.HealthReport{Status: tools.HealthConnected}},
		&stubAdapter{name: "budget", health: tools.HealthReport{Status: tools.HealthConnected}},
	)

	plan, err := rp.Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "premium", plan.Primary)
	assert.Equal(t, []string{"budget"}, plan.FallbackChain)
}

func TestRoutePlanSkipsUnhealthyPrimary(t *testing.T) {
	rp := newRoutingFixture(t,
		&stubAdapter{name: "premium", health: tools.HealthReport{Status: tools.HealthUnreachable}},
		&stubAdapter{name: "budget", health: tools.HealthReport{Status: tools.HealthConnected}},
	)

	plan, err := rp.Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "budget", plan.Primary)
}

func TestRoutePlanNoHealthyAdapters(t *testing.T) {
	rp := newRoutingFixture(t,
		&stubAdapter{name: "premium", health: tools.HealthReport{Status: tools.HealthInvalidToken}},
	)

	_, err := rp.Plan(context.Background())
	assert.ErrorIs(t, err, ErrNoHealthyAdapter)
}

func TestReroutePromotesFallback(t *testing.T) {
	premium := &stubAdapter{name: "premium", health: tools.HealthReport{Status: tools.HealthConnected}}
	budget := &stubAdapter{name: "budget", health: tools.HealthReport{Status: tools.HealthConnected}}
	rp := newRoutingFixture(t, premium, budget)

	plan, err := rp.Plan(context.Background())
	require.NoError(t, err)

	// Healthy primary: plan unchanged.
	same, changed, err := rp.Reroute(context.Background(), plan)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, plan, same)

	// Primary goes down: fallback promoted, old primary queued behind.
	premium.health = tools.HealthReport{Status: tools.HealthUnreachable}
	next, changed, err := rp.Reroute(context.Background(), plan)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "budget", next.Primary)
	assert.Contains(t, next.FallbackChain, "premium")
}

func TestRerouteNilPlanFallsBackToPlan(t *testing.T) {
	rp := newRoutingFixture(t,
		&stubAdapter{name: "budget", health: tools.HealthReport{Status: tools.HealthConnected}},
	)

	var empty *models.RoutePlan
	next, changed, err := rp.Reroute(context.Background(), empty)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "budget", next.Primary)
}
