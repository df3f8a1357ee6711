// Package guards - Pricing integrity firewall
// A non-deployable service appearing in a cost breakdown is an
// internal contract breach. The violation is always surfaced and
// aborts the estimate; it is never corrected in place.
package guards

import (
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// DeployableSet is the set of services allowed to appear priced
type DeployableSet map[types.ServiceClass]bool

// NewDeployableSet builds the allowed set from deployable definitions
func NewDeployableSet(services []types.ServiceDefinition) DeployableSet {
	set := make(DeployableSet, len(services))
	for _, svc := range services {
		set[svc.Class] = true
	}
	return set
}

// Validate asserts that every service referenced by a cost result is a
// member of the deployable set. Returns a fatal integrity error on the
// first violation, nil otherwise.
func Validate(result *types.CostResult, deployable DeployableSet) error {
	for _, svc := range result.Services {
		if !deployable[svc.ServiceClass] {
			return errors.Newf(errors.TypeIntegrity,
				"non-deployable service %q appears priced in %s breakdown",
				svc.ServiceClass, result.Provider).
				WithContext("provider", result.Provider.String()).
				WithContext("service_class", svc.ServiceClass.String())
		}
	}
	return nil
}

// ValidateAll validates every result of a scenario set
func ValidateAll(scenarios *types.CostScenarios, deployable DeployableSet) error {
	for _, results := range scenarios.Scenarios {
		for _, result := range results {
			if err := Validate(result, deployable); err != nil {
				return err
			}
		}
	}
	return nil
}
