// Package types - Cost result types
package types

import "github.com/shopspring/decimal"

// ServiceCost is one service's share of a provider estimate
type ServiceCost struct {
	// ServiceClass is the canonical service identifier
	ServiceClass ServiceClass `json:"service_class"`

	// Cost is the monthly cost share, USD
	Cost decimal.Decimal `json:"cost"`

	// Percentage is the share of the provider total, 0-100
	Percentage float64 `json:"percentage"`

	// Reason explains how the share was derived
	Reason string `json:"reason,omitempty"`
}

// CostDriver is a usage quantity that materially shaped an estimate
type CostDriver struct {
	// Name is the usage dimension (e.g. monthly_requests)
	Name string `json:"name"`

	// Value is the usage quantity
	Value float64 `json:"value"`

	// Impact classifies the driver's influence (high, medium, low)
	Impact string `json:"impact"`

	// CostContribution is the monthly cost attributed to this driver
	CostContribution decimal.Decimal `json:"cost_contribution"`
}

// CostResult is one provider's estimate for one scenario.
// Immutable once constructed.
//
// Invariants: sum(Services.Cost) equals MonthlyCost within rounding
// tolerance, and sum(Services.Percentage) is approximately 100.
type CostResult struct {
	// Provider is the estimated cloud provider
	Provider Provider `json:"provider"`

	// MonthlyCost is the total monthly cost, USD
	MonthlyCost decimal.Decimal `json:"monthly_cost"`

	// EstimateType records whether the authoritative engine priced this
	EstimateType EstimateType `json:"estimate_type"`

	// IsMock is true when the cost came from the heuristic formula engine
	IsMock bool `json:"is_mock"`

	// Mode is the pricing strategy the workload classified into
	Mode CostMode `json:"cost_mode"`

	// Tier is the sizing tier priced
	Tier SizingTier `json:"tier"`

	// Profile is the cost profile priced
	Profile CostProfile `json:"profile"`

	// Services is the per-service cost breakdown
	Services []ServiceCost `json:"services"`

	// Drivers are the usage quantities behind the estimate
	Drivers []CostDriver `json:"drivers,omitempty"`
}

// ServiceClasses returns the service classes referenced by the breakdown
func (r *CostResult) ServiceClasses() []ServiceClass {
	classes := make([]ServiceClass, 0, len(r.Services))
	for _, s := range r.Services {
		classes = append(classes, s.ServiceClass)
	}
	return classes
}

// CostRange bounds every scenario leaf of an estimate
type CostRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// ConfidenceScore is the deterministic, explainable confidence of an
// estimate, hard-capped below full certainty
type ConfidenceScore struct {
	// Score is the confidence in [0, 0.95]
	Score float64 `json:"score"`

	// Percentage is Score expressed as 0-100
	Percentage float64 `json:"percentage"`

	// Explanation itemizes how the score was assembled
	Explanation []string `json:"explanation"`
}

// CostScenarios is the final estimate returned to the caller.
// Immutable once constructed.
type CostScenarios struct {
	// Scenarios maps scenario name to per-provider results
	Scenarios map[ScenarioName]map[Provider]*CostResult `json:"scenarios"`

	// CostRange bounds all scenario results
	CostRange CostRange `json:"cost_range"`

	// Recommended is the minimum-cost provider/scenario result
	Recommended *CostResult `json:"recommended"`

	// Confidence scores the estimate
	Confidence ConfidenceScore `json:"confidence"`
}
