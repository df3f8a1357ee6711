// Package scenario - Per-provider estimate state machine
package scenario

// EstimatePhase tracks one provider pipeline through an estimate.
// Phases only move forward. Failed is terminal and follows a policy
// violation; pricing-engine failures are not failures of the pipeline,
// they degrade it to the heuristic path instead.
type EstimatePhase int

const (
	PhaseRequested EstimatePhase = iota
	PhaseDescriptorBuilt
	PhasePricedExact
	PhasePricedHeuristic
	PhaseValidated
	PhaseReturned
	PhaseFailed
)

// String returns the phase name
func (p EstimatePhase) String() string {
	names := []string{
		"requested", "descriptor_built", "priced_exact",
		"priced_heuristic", "validated", "returned", "failed",
	}
	if int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}
