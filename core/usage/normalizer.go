// Package usage maps the abstract usage profile into resource-scoped
// usage entries. Usage is decoupled from resource definitions so the
// same profile can drive every provider's descriptor.
package usage

import (
	"cloudcost/core/descriptor"
	"cloudcost/core/types"
)

// Usage metric names, as the pricing engine's usage grammar spells them
const (
	MetricMonthlyRequests = "monthly_requests"
	MetricStorageGB       = "storage_gb"
	MetricTransferGB      = "monthly_gb_data_transfer"
)

// Days per month used when deriving monthly request volume
const daysPerMonth = 30

// Entry is the usage assigned to one resource address
type Entry struct {
	// Metric is the usage dimension
	Metric string

	// Value is the monthly quantity
	Value float64
}

// ResourceUsageMap holds at most one usage entry per resource address
type ResourceUsageMap map[types.ResourceAddress]Entry

// Resolved is the usage profile flattened at one usage level
type Resolved struct {
	// MonthlyUsers is the user count at the level
	MonthlyUsers float64

	// MonthlyRequests is users x requests_per_user x 30
	MonthlyRequests float64

	// StorageGB is the stored data volume
	StorageGB float64

	// TransferGB is the outbound transfer volume
	TransferGB float64
}

// Resolve flattens a defaulted usage profile at a usage level
func Resolve(profile *types.UsageProfile, level types.UsageLevel) Resolved {
	users := profile.MonthlyUsers.At(level)
	return Resolved{
		MonthlyUsers:    users,
		MonthlyRequests: users * profile.RequestsPerUser.At(level) * daysPerMonth,
		StorageGB:       profile.StorageGB.At(level),
		TransferGB:      profile.DataTransferGB.At(level),
	}
}

// Normalize produces the resource-scoped usage for a descriptor.
// Resources with no applicable usage dimension receive none - absence
// is not an error.
func Normalize(profile *types.UsageProfile, desc *descriptor.Descriptor, level types.UsageLevel) ResourceUsageMap {
	resolved := Resolve(profile, level)

	out := make(ResourceUsageMap, len(desc.Entries))
	for _, entry := range desc.Entries {
		metric, value, ok := dimensionFor(entry.ServiceClass, resolved)
		if !ok {
			continue
		}
		out[entry.Address] = Entry{Metric: metric, Value: value}
	}
	return out
}

// dimensionFor selects the one usage dimension relevant to a service
// class. The class-level cases override the broader category defaults.
func dimensionFor(class types.ServiceClass, resolved Resolved) (string, float64, bool) {
	switch class {
	case "cdn":
		return MetricTransferGB, resolved.TransferGB, true
	case "dns", "monitoring":
		return "", 0, false
	case "search_engine":
		return MetricStorageGB, resolved.StorageGB, true
	case "object_storage", "relational_database", "nosql_database", "cache":
		return MetricStorageGB, resolved.StorageGB, true
	case "compute_container", "compute_vm", "serverless_function",
		"api_gateway", "load_balancer", "message_queue":
		return MetricMonthlyRequests, resolved.MonthlyRequests, true
	default:
		return "", 0, false
	}
}
