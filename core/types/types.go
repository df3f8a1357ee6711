// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Provider represents a cloud provider
type Provider string

const (
	ProviderAWS     Provider = "aws"
	ProviderAzure   Provider = "azure"
	ProviderGCP     Provider = "gcp"
	ProviderUnknown Provider = "unknown"
)

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the provider is a known provider
func (p Provider) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderAzure, ProviderGCP:
		return true
	default:
		return false
	}
}

// AllProviders returns every supported provider in stable order
func AllProviders() []Provider {
	return []Provider{ProviderAWS, ProviderAzure, ProviderGCP}
}

// ParseProvider converts a string into a Provider
func ParseProvider(s string) Provider {
	switch Provider(s) {
	case ProviderAWS, ProviderAzure, ProviderGCP:
		return Provider(s)
	default:
		return ProviderUnknown
	}
}

// ResourceAddress uniquely identifies a priced resource in a descriptor
// Format: resource_type.service_class (e.g. aws_s3_bucket.object_storage)
type ResourceAddress string

// String returns the string representation
func (r ResourceAddress) String() string {
	return string(r)
}

// EstimateType records the provenance of a cost estimate
type EstimateType string

const (
	// EstimateExact means the authoritative pricing engine produced the cost
	EstimateExact EstimateType = "exact"

	// EstimateHeuristic means the internal formula engine produced the cost
	EstimateHeuristic EstimateType = "heuristic"
)

// String returns the string representation
func (e EstimateType) String() string {
	return string(e)
}

// CostMode is the pricing strategy selected for a workload
type CostMode string

const (
	// ModeConsumption prices pay-per-use AI/inference workloads
	ModeConsumption CostMode = "consumption"

	// ModeStoragePolicy prices retention and lifecycle driven workloads
	ModeStoragePolicy CostMode = "storage_policy"

	// ModeInfrastructure prices provisioned infrastructure workloads
	ModeInfrastructure CostMode = "infrastructure"

	// ModeHybrid is the default mixed strategy
	ModeHybrid CostMode = "hybrid"
)

// String returns the string representation
func (m CostMode) String() string {
	return string(m)
}
