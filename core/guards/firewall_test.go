// Package guards - Integrity firewall tests
// These tests INTENTIONALLY feed contaminated breakdowns to ensure
// enforcement works.
package guards

import (
	"testing"

	"github.com/shopspring/decimal"

	"cloudcost/core/catalog"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

func deployableSet() DeployableSet {
	return NewDeployableSet(catalog.Default().Deployable())
}

func cleanResult() *types.CostResult {
	return &types.CostResult{
		Provider:    types.ProviderAWS,
		MonthlyCost: decimal.NewFromInt(100),
		Services: []types.ServiceCost{
			{ServiceClass: "compute_container", Cost: decimal.NewFromInt(60)},
			{ServiceClass: "object_storage", Cost: decimal.NewFromInt(40)},
		},
	}
}

func TestValidateCleanResult(t *testing.T) {
	if err := Validate(cleanResult(), deployableSet()); err != nil {
		t.Fatalf("clean result rejected: %v", err)
	}
}

func TestValidateNonDeployableServiceIsFatal(t *testing.T) {
	result := cleanResult()
	result.Services = append(result.Services, types.ServiceCost{
		ServiceClass: "business_logic",
		Cost:         decimal.NewFromInt(10),
	})

	err := Validate(result, deployableSet())
	if err == nil {
		t.Fatal("contaminated result was not rejected")
	}
	if !errors.IsType(err, errors.TypeIntegrity) {
		t.Fatalf("expected integrity error, got: %v", err)
	}
}

func TestValidateUnknownServiceIsFatal(t *testing.T) {
	result := cleanResult()
	result.Services = append(result.Services, types.ServiceCost{
		ServiceClass: "quantum_annealer",
		Cost:         decimal.NewFromInt(10),
	})

	if err := Validate(result, deployableSet()); err == nil {
		t.Fatal("unknown service class was not rejected")
	}
}

func TestValidateAllFindsDeepViolation(t *testing.T) {
	contaminated := cleanResult()
	contaminated.Services[1].ServiceClass = "analytics_dashboard"

	scenarios := &types.CostScenarios{
		Scenarios: map[types.ScenarioName]map[types.Provider]*types.CostResult{
			types.ScenarioCostEffective: {types.ProviderAWS: cleanResult()},
			types.ScenarioStandard:      {types.ProviderGCP: contaminated},
		},
	}

	err := ValidateAll(scenarios, deployableSet())
	if err == nil {
		t.Fatal("contaminated scenario set was not rejected")
	}
	if !errors.IsType(err, errors.TypeIntegrity) {
		t.Fatalf("expected integrity error, got: %v", err)
	}
}

func TestValidateAllCleanSet(t *testing.T) {
	scenarios := &types.CostScenarios{
		Scenarios: map[types.ScenarioName]map[types.Provider]*types.CostResult{
			types.ScenarioCostEffective: {types.ProviderAWS: cleanResult()},
			types.ScenarioStandard:      {types.ProviderAzure: cleanResult()},
		},
	}
	if err := ValidateAll(scenarios, deployableSet()); err != nil {
		t.Fatalf("clean scenario set rejected: %v", err)
	}
}
