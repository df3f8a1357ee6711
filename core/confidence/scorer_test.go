package confidence

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudcost/core/catalog"
	"cloudcost/core/types"
)

func fullScenarios(providers int) *types.CostScenarios {
	out := &types.CostScenarios{
		Scenarios: make(map[types.ScenarioName]map[types.Provider]*types.CostResult),
	}
	all := types.AllProviders()[:providers]
	for _, level := range types.AllUsageLevels() {
		results := make(map[types.Provider]*types.CostResult, providers)
		for _, provider := range all {
			results[provider] = &types.CostResult{
				Provider:    provider,
				MonthlyCost: decimal.NewFromInt(100),
			}
		}
		out.Scenarios[level.Scenario()] = results
	}
	return out
}

func knownArchitecture() types.Architecture {
	return types.Architecture{
		Pattern: types.PatternWebApplication,
		Services: []types.ServiceBinding{
			{Class: "compute_container", Deployable: true},
			{Class: "relational_database", Deployable: true},
		},
	}
}

func fullUsage() *types.UsageProfile {
	return &types.UsageProfile{
		MonthlyUsers:   types.NewUsageValue(1000),
		StorageGB:      types.NewUsageValue(50),
		DataTransferGB: types.NewUsageValue(100),
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := NewScorer(catalog.Default())

	best := scorer.Score(knownArchitecture(), fullScenarios(3), fullUsage(), 3)
	assert.Greater(t, best.Score, 0.0)
	assert.LessOrEqual(t, best.Score, 0.95)

	worst := scorer.Score(types.Architecture{}, nil, nil, 3)
	assert.GreaterOrEqual(t, worst.Score, 0.0)
	assert.LessOrEqual(t, worst.Score, 0.95)
}

func TestScoreFullInputs(t *testing.T) {
	scorer := NewScorer(catalog.Default())

	// 0.25 + 0.45 + 0.20 = 0.90, below the cap.
	got := scorer.Score(knownArchitecture(), fullScenarios(3), fullUsage(), 3)
	assert.InDelta(t, 0.90, got.Score, 1e-9)
	assert.InDelta(t, 90.0, got.Percentage, 1e-9)
}

func TestScoreMonotonicInUsage(t *testing.T) {
	scorer := NewScorer(catalog.Default())
	arch := knownArchitecture()
	scenarios := fullScenarios(3)

	none := scorer.Score(arch, scenarios, nil, 3)
	some := scorer.Score(arch, scenarios, &types.UsageProfile{MonthlyUsers: types.NewUsageValue(10)}, 3)
	all := scorer.Score(arch, scenarios, fullUsage(), 3)

	assert.LessOrEqual(t, none.Score, some.Score)
	assert.LessOrEqual(t, some.Score, all.Score)
}

func TestScoreUnknownServicesLowerScore(t *testing.T) {
	scorer := NewScorer(catalog.Default())
	scenarios := fullScenarios(3)

	known := scorer.Score(knownArchitecture(), scenarios, nil, 3)

	mixed := types.Architecture{
		Pattern: types.PatternWebApplication,
		Services: []types.ServiceBinding{
			{Class: "compute_container", Deployable: true},
			{Class: "quantum_annealer", Deployable: true},
		},
	}
	partial := scorer.Score(mixed, scenarios, nil, 3)
	assert.Less(t, partial.Score, known.Score)
}

func TestScorePartialScenariosLowerScore(t *testing.T) {
	scorer := NewScorer(catalog.Default())
	arch := knownArchitecture()

	full := scorer.Score(arch, fullScenarios(3), nil, 3)

	partial := fullScenarios(3)
	delete(partial.Scenarios[types.ScenarioStandard], types.ProviderGCP)
	got := scorer.Score(arch, partial, nil, 3)
	assert.Less(t, got.Score, full.Score)
}

func TestScoreAlwaysExplainsHeuristicBasis(t *testing.T) {
	scorer := NewScorer(catalog.Default())

	got := scorer.Score(knownArchitecture(), fullScenarios(3), fullUsage(), 3)
	require.NotEmpty(t, got.Explanation)
	assert.Contains(t, got.Explanation[len(got.Explanation)-1], "heuristic")
}
