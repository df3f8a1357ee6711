// Package confidence scores how much an estimate should be trusted.
// The score is additive, deterministic, and explainable; it is
// hard-capped below full certainty because the inputs are estimates.
package confidence

import (
	"fmt"
	"math"

	"cloudcost/core/catalog"
	"cloudcost/core/types"
)

// Score weights. The three parts sum to 0.90; the cap leaves headroom
// below certainty regardless.
const (
	serviceCompletenessMax  = 0.25
	scenarioCompletenessMax = 0.45
	perScenarioWeight       = 0.15
	scenarioCountCap        = 3

	usageAllFieldsScore  = 0.20
	usageSomeFieldsScore = 0.10

	hardCap = 0.95
)

const heuristicNote = "estimate derived from heuristic usage modeling, not billed invoices"

// Scorer computes confidence scores against a catalog
type Scorer struct {
	catalog *catalog.Catalog
}

// NewScorer creates a scorer
func NewScorer(cat *catalog.Catalog) *Scorer {
	return &Scorer{catalog: cat}
}

// Score computes the confidence of an assembled estimate. The declared
// usage profile must be the caller's original (pre-default) profile so
// defaulted fields do not count as declared.
func (s *Scorer) Score(arch types.Architecture, scenarios *types.CostScenarios,
	declared *types.UsageProfile, expectedProviders int) types.ConfidenceScore {

	var score float64
	var explanation []string

	// Service completeness: how much of the architecture the catalog
	// actually recognizes.
	if len(arch.Services) > 0 {
		known := 0
		for _, binding := range arch.Services {
			if s.catalog.Has(binding.Class) {
				known++
			}
		}
		part := serviceCompletenessMax * float64(known) / float64(len(arch.Services))
		score += part
		explanation = append(explanation,
			fmt.Sprintf("%d of %d services recognized in catalog (+%.2f)", known, len(arch.Services), part))
	}

	// Scenario completeness: fully populated scenarios, up to three.
	populated := 0
	if scenarios != nil {
		for _, results := range scenarios.Scenarios {
			if expectedProviders > 0 && len(results) == expectedProviders {
				populated++
			}
		}
	}
	if populated > scenarioCountCap {
		populated = scenarioCountCap
	}
	part := perScenarioWeight * float64(populated)
	score += part
	explanation = append(explanation,
		fmt.Sprintf("%d of %d scenarios fully populated (+%.2f)", populated, scenarioCountCap, part))

	// Usage completeness: the three canonical fields.
	usagePart := usageScore(declared)
	score += usagePart
	explanation = append(explanation,
		fmt.Sprintf("usage profile completeness (+%.2f)", usagePart))

	explanation = append(explanation, heuristicNote)

	score = math.Min(score, hardCap)
	return types.ConfidenceScore{
		Score:       score,
		Percentage:  math.Round(score*10000) / 100,
		Explanation: explanation,
	}
}

// usageScore rates the three canonical usage fields: monthly_users,
// storage_gb and data_transfer_gb
func usageScore(declared *types.UsageProfile) float64 {
	if declared == nil {
		return 0
	}
	present := 0
	if declared.MonthlyUsers != nil {
		present++
	}
	if declared.StorageGB != nil {
		present++
	}
	if declared.DataTransferGB != nil {
		present++
	}
	switch {
	case present == 3:
		return usageAllFieldsScore
	case present > 0:
		return usageSomeFieldsScore
	default:
		return 0
	}
}
