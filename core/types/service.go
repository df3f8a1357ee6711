// Package types - Service and architecture types
package types

import "github.com/shopspring/decimal"

// ServiceClass is the canonical identifier of a catalog service
// (e.g. "relational_database", "object_storage")
type ServiceClass string

// String returns the string representation
func (s ServiceClass) String() string {
	return string(s)
}

// ServiceCategory groups service classes by billing behavior
type ServiceCategory string

const (
	CategoryCompute     ServiceCategory = "compute"
	CategoryServerless  ServiceCategory = "serverless"
	CategoryDatabase    ServiceCategory = "database"
	CategoryStorage     ServiceCategory = "storage"
	CategoryNetwork     ServiceCategory = "network"
	CategoryIntegration ServiceCategory = "integration"
	CategoryAnalytics   ServiceCategory = "analytics"

	// CategoryLogical marks architectural concepts with no billable resource
	CategoryLogical ServiceCategory = "logical"
)

// String returns the string representation
func (c ServiceCategory) String() string {
	return string(c)
}

// ServiceDefinition is an immutable catalog entry for a service class
type ServiceDefinition struct {
	// Class is the canonical service identifier
	Class ServiceClass `json:"service_class" yaml:"service_class"`

	// Category groups the service by billing behavior
	Category ServiceCategory `json:"category" yaml:"category"`

	// Deployable indicates the service maps to a billable cloud resource
	Deployable bool `json:"deployable" yaml:"deployable"`

	// BaseMonthlyCost is the heuristic monthly cost at medium tier, USD
	BaseMonthlyCost decimal.Decimal `json:"base_monthly_cost" yaml:"base_monthly_cost"`

	// PerfMultiplier scales cost under the high-performance profile
	PerfMultiplier float64 `json:"perf_multiplier" yaml:"perf_multiplier"`
}

// PatternName identifies an architecture pattern
type PatternName string

const (
	PatternStaticHosting  PatternName = "static-hosting"
	PatternWebApplication PatternName = "web-application"
	PatternServerlessAPI  PatternName = "serverless-api"
	PatternMicroservices  PatternName = "microservices"
	PatternDataPipeline   PatternName = "data-pipeline"
)

// String returns the string representation
func (p PatternName) String() string {
	return string(p)
}

// ServiceBinding is one service selected by the upstream pattern resolver
type ServiceBinding struct {
	// Class is the canonical service identifier
	Class ServiceClass `json:"service_class"`

	// Deployable is the resolver's billability hint
	Deployable bool `json:"deployable"`
}

// Architecture is the resolved input to an estimate
type Architecture struct {
	// Pattern is the named architecture pattern
	Pattern PatternName `json:"pattern"`

	// Services are the resolved service bindings
	Services []ServiceBinding `json:"services"`
}

// Intent describes the declared workload
type Intent struct {
	// Description is the free-text workload intent
	Description string `json:"description"`

	// Scale is the declared scale (small, medium, large), may be empty
	Scale string `json:"scale,omitempty"`
}
