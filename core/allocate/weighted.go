// Package allocate redistributes an aggregate monthly cost across the
// deployable services of an estimate using usage-derived weights.
// Shares always sum exactly to the input total.
package allocate

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"cloudcost/core/types"
	"cloudcost/core/usage"
)

// weightDimension names the usage dimension driving a weight
type weightDimension int

const (
	dimNone weightDimension = iota
	dimRequests
	dimStorage
	dimTransfer
)

// weightSpec controls how one service class is weighted
type weightSpec struct {
	base      float64
	dimension weightDimension
	reference float64
}

// weightTable is read-only and shared across concurrent runs.
// A class without an entry falls back to a neutral weight.
var weightTable = map[types.ServiceClass]weightSpec{
	"compute_container":   {base: 2.0, dimension: dimRequests, reference: 1e6},
	"compute_vm":          {base: 1.8, dimension: dimRequests, reference: 1e6},
	"serverless_function": {base: 1.2, dimension: dimRequests, reference: 1e6},
	"relational_database": {base: 2.2, dimension: dimStorage, reference: 50},
	"nosql_database":      {base: 1.5, dimension: dimStorage, reference: 50},
	"cache":               {base: 1.2, dimension: dimRequests, reference: 1e6},
	"object_storage":      {base: 0.8, dimension: dimStorage, reference: 100},
	"cdn":                 {base: 0.9, dimension: dimTransfer, reference: 100},
	"dns":                 {base: 0.2, dimension: dimNone},
	"load_balancer":       {base: 1.0, dimension: dimRequests, reference: 1e6},
	"api_gateway":         {base: 1.1, dimension: dimRequests, reference: 1e6},
	"message_queue":       {base: 0.9, dimension: dimRequests, reference: 1e6},
	"search_engine":       {base: 1.6, dimension: dimStorage, reference: 50},
	"monitoring":          {base: 0.5, dimension: dimNone},
}

// patternEmphasis nudges weights toward the categories an architecture
// pattern is built around. Multiplicative, so monotonicity in usage is
// preserved.
var patternEmphasis = map[types.PatternName]map[types.ServiceCategory]float64{
	types.PatternStaticHosting: {types.CategoryStorage: 1.2, types.CategoryNetwork: 1.2},
	types.PatternServerlessAPI: {types.CategoryServerless: 1.3},
	types.PatternDataPipeline:  {types.CategoryIntegration: 1.3, types.CategoryAnalytics: 1.3},
}

// usageFactor grows monotonically with the usage volume and is bounded
// to [1, 4] so no single dimension can dominate unboundedly
func usageFactor(value, reference float64) float64 {
	if reference <= 0 || value <= 0 {
		return 1
	}
	return 1 + math.Min(math.Log10(1+value/reference), 3)
}

// Allocate splits total across services by usage-derived weights,
// renormalized over exactly the present services. Services without a
// weight-table entry get a neutral weight, so allocation degrades to
// uniform rather than dividing by zero.
func Allocate(total decimal.Decimal, services []types.ServiceDefinition,
	resolved usage.Resolved, pattern types.PatternName) []types.ServiceCost {

	if len(services) == 0 {
		return nil
	}

	weights := make([]float64, len(services))
	reasons := make([]string, len(services))
	var sum float64
	for i, svc := range services {
		weights[i], reasons[i] = weightFor(svc, resolved, pattern)
		sum += weights[i]
	}
	if sum <= 0 {
		for i := range weights {
			weights[i] = 1
			reasons[i] = "uniform share"
		}
		sum = float64(len(weights))
	}

	out := make([]types.ServiceCost, len(services))
	allocated := decimal.Zero
	pctAllocated := 0.0
	for i, svc := range services {
		var share decimal.Decimal
		var pct float64
		if i == len(services)-1 {
			// Fold rounding remainder into the last share so the sum
			// is exact.
			share = total.Sub(allocated)
			pct = roundPct(100 - pctAllocated)
		} else {
			fraction := weights[i] / sum
			share = total.Mul(decimal.NewFromFloat(fraction)).Round(2)
			pct = roundPct(fraction * 100)
		}
		allocated = allocated.Add(share)
		pctAllocated += pct

		out[i] = types.ServiceCost{
			ServiceClass: svc.Class,
			Cost:         share,
			Percentage:   pct,
			Reason:       reasons[i],
		}
	}
	return out
}

func weightFor(svc types.ServiceDefinition, resolved usage.Resolved, pattern types.PatternName) (float64, string) {
	spec, ok := weightTable[svc.Class]
	if !ok {
		return 1, "uniform share (no weight entry)"
	}

	weight := spec.base
	reason := fmt.Sprintf("base weight %.1f", spec.base)
	switch spec.dimension {
	case dimRequests:
		factor := usageFactor(resolved.MonthlyRequests, spec.reference)
		weight *= factor
		reason = fmt.Sprintf("weighted by monthly_requests (%.2fx)", factor)
	case dimStorage:
		factor := usageFactor(resolved.StorageGB, spec.reference)
		weight *= factor
		reason = fmt.Sprintf("weighted by storage_gb (%.2fx)", factor)
	case dimTransfer:
		factor := usageFactor(resolved.TransferGB, spec.reference)
		weight *= factor
		reason = fmt.Sprintf("weighted by data_transfer_gb (%.2fx)", factor)
	}

	if emphasis, ok := patternEmphasis[pattern][svc.Category]; ok {
		weight *= emphasis
	}
	return weight, reason
}

func roundPct(pct float64) float64 {
	return math.Round(pct*100) / 100
}
