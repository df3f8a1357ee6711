// Package heuristic is the always-available formula-based cost
// approximation used when the authoritative engine cannot price.
// Pure and total: no I/O, no external dependency, never fails.
package heuristic

import (
	"github.com/shopspring/decimal"

	"cloudcost/core/types"
)

// Formula multipliers. Tables are read-only and shared.
var (
	tierMultipliers = map[types.SizingTier]decimal.Decimal{
		types.TierSmall:  decimal.RequireFromString("0.5"),
		types.TierMedium: decimal.RequireFromString("1.0"),
		types.TierLarge:  decimal.RequireFromString("2.5"),
	}

	highPerformanceMultiplier = decimal.RequireFromString("1.4")

	providerAdjustments = map[types.Provider]decimal.Decimal{
		types.ProviderAWS:   decimal.RequireFromString("1.0"),
		types.ProviderAzure: decimal.RequireFromString("0.97"),
		types.ProviderGCP:   decimal.RequireFromString("0.94"),
	}
)

// Estimate is one heuristic pricing outcome
type Estimate struct {
	// Provider is the estimated cloud provider
	Provider types.Provider

	// Total is the aggregate monthly cost
	Total decimal.Decimal

	// ByService is the per-service formula cost
	ByService map[types.ServiceClass]decimal.Decimal
}

// Compute prices every service with the heuristic formula:
//
//	cost = base x tierMultiplier x profileMultiplier
//	            x providerAdjustment x perfMultiplier(service, profile)
func Compute(provider types.Provider, services []types.ServiceDefinition,
	tier types.SizingTier, profile types.CostProfile) *Estimate {

	tierMult, ok := tierMultipliers[tier]
	if !ok {
		tierMult = tierMultipliers[types.TierMedium]
	}
	profileMult := decimal.NewFromInt(1)
	if profile == types.ProfileHighPerformance {
		profileMult = highPerformanceMultiplier
	}
	providerAdj, ok := providerAdjustments[provider]
	if !ok {
		providerAdj = decimal.NewFromInt(1)
	}

	out := &Estimate{
		Provider:  provider,
		ByService: make(map[types.ServiceClass]decimal.Decimal, len(services)),
	}
	for _, svc := range services {
		cost := svc.BaseMonthlyCost.
			Mul(tierMult).
			Mul(profileMult).
			Mul(providerAdj)
		if profile == types.ProfileHighPerformance && svc.PerfMultiplier > 0 {
			cost = cost.Mul(decimal.NewFromFloat(svc.PerfMultiplier))
		}
		cost = cost.Round(2)

		out.ByService[svc.Class] = cost
		out.Total = out.Total.Add(cost)
	}
	return out
}
