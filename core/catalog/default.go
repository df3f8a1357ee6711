// Package catalog - Built-in default catalog
package catalog

import (
	"github.com/shopspring/decimal"

	"cloudcost/core/types"
)

// Default returns the compiled-in service catalog.
// Base monthly costs are medium-tier heuristic anchors in USD.
func Default() *Catalog {
	return New([]types.ServiceDefinition{
		{Class: "compute_container", Category: types.CategoryCompute, Deployable: true, BaseMonthlyCost: usd("85"), PerfMultiplier: 1.15},
		{Class: "compute_vm", Category: types.CategoryCompute, Deployable: true, BaseMonthlyCost: usd("70"), PerfMultiplier: 1.15},
		{Class: "serverless_function", Category: types.CategoryServerless, Deployable: true, BaseMonthlyCost: usd("25"), PerfMultiplier: 1.10},
		{Class: "relational_database", Category: types.CategoryDatabase, Deployable: true, BaseMonthlyCost: usd("120"), PerfMultiplier: 1.25},
		{Class: "nosql_database", Category: types.CategoryDatabase, Deployable: true, BaseMonthlyCost: usd("60"), PerfMultiplier: 1.15},
		{Class: "cache", Category: types.CategoryDatabase, Deployable: true, BaseMonthlyCost: usd("45"), PerfMultiplier: 1.20},
		{Class: "object_storage", Category: types.CategoryStorage, Deployable: true, BaseMonthlyCost: usd("15"), PerfMultiplier: 1.0},
		{Class: "cdn", Category: types.CategoryNetwork, Deployable: true, BaseMonthlyCost: usd("20"), PerfMultiplier: 1.0},
		{Class: "dns", Category: types.CategoryNetwork, Deployable: true, BaseMonthlyCost: usd("2"), PerfMultiplier: 1.0},
		{Class: "load_balancer", Category: types.CategoryNetwork, Deployable: true, BaseMonthlyCost: usd("22"), PerfMultiplier: 1.10},
		{Class: "api_gateway", Category: types.CategoryNetwork, Deployable: true, BaseMonthlyCost: usd("30"), PerfMultiplier: 1.05},
		{Class: "message_queue", Category: types.CategoryIntegration, Deployable: true, BaseMonthlyCost: usd("18"), PerfMultiplier: 1.0},
		{Class: "search_engine", Category: types.CategoryAnalytics, Deployable: true, BaseMonthlyCost: usd("90"), PerfMultiplier: 1.20},
		{Class: "monitoring", Category: types.CategoryAnalytics, Deployable: true, BaseMonthlyCost: usd("12"), PerfMultiplier: 1.0},

		// Logical services carry no billable resource
		{Class: "business_logic", Category: types.CategoryLogical, Deployable: false, BaseMonthlyCost: decimal.Zero, PerfMultiplier: 1.0},
		{Class: "user_management", Category: types.CategoryLogical, Deployable: false, BaseMonthlyCost: decimal.Zero, PerfMultiplier: 1.0},
		{Class: "analytics_dashboard", Category: types.CategoryLogical, Deployable: false, BaseMonthlyCost: decimal.Zero, PerfMultiplier: 1.0},
	})
}

func usd(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
