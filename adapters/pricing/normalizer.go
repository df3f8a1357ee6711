// Package pricing - Engine result normalization
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cloudcost/core/descriptor"
	"cloudcost/core/types"
	"cloudcost/internal/logging"
)

// ServiceCosts is the engine breakdown normalized onto service classes
type ServiceCosts struct {
	// Provider is the priced cloud provider
	Provider types.Provider

	// Total is the engine's aggregate monthly cost
	Total decimal.Decimal

	// ByService is the mapped per-service cost
	ByService map[types.ServiceClass]decimal.Decimal

	// MappedCount is how many priced resources mapped to a class
	MappedCount int
}

// ResultNormalizer maps priced resource addresses onto service classes
// via the static resource-type index. Partial mapping is acceptable.
type ResultNormalizer struct {
	index map[string]types.ServiceClass
	log   *zap.Logger
}

// NewResultNormalizer creates a result normalizer
func NewResultNormalizer() *ResultNormalizer {
	return &ResultNormalizer{
		index: descriptor.ResourceTypeIndex(),
		log:   logging.Named("result-normalizer"),
	}
}

// Normalize maps a raw breakdown onto service-class-coded costs.
// Unmapped resource types are dropped with a warning, not an error.
// Returns ok=false only when zero resources map successfully.
func (n *ResultNormalizer) Normalize(raw *RawBreakdown, provider types.Provider) (*ServiceCosts, bool) {
	out := &ServiceCosts{
		Provider:  provider,
		ByService: make(map[types.ServiceClass]decimal.Decimal),
	}

	for _, project := range raw.Projects {
		for _, resource := range project.Breakdown.Resources {
			cost := resourceCost(resource)

			class, ok := n.classFor(resource.Name)
			if !ok {
				n.log.Warn("dropping unmapped resource from engine breakdown",
					zap.String("resource", resource.Name),
					zap.String("provider", provider.String()))
				continue
			}

			out.ByService[class] = out.ByService[class].Add(cost)
			out.Total = out.Total.Add(cost)
			out.MappedCount++
		}
	}

	if out.MappedCount == 0 {
		return nil, false
	}
	return out, true
}

// classFor resolves a priced resource address (resource_type.name)
// to a service class via the static index
func (n *ResultNormalizer) classFor(address string) (types.ServiceClass, bool) {
	resourceType, _, _ := strings.Cut(address, ".")
	class, ok := n.index[resourceType]
	return class, ok
}

// resourceCost sums a resource's monthly cost, falling back to its
// cost components when the aggregate field is absent
func resourceCost(resource RawResource) decimal.Decimal {
	if resource.MonthlyCost != nil {
		if cost, err := decimal.NewFromString(*resource.MonthlyCost); err == nil {
			return cost
		}
	}

	total := decimal.Zero
	for _, component := range resource.CostComponents {
		if component.MonthlyCost == nil {
			continue
		}
		if cost, err := decimal.NewFromString(*component.MonthlyCost); err == nil {
			total = total.Add(cost)
		}
	}
	for _, sub := range resource.SubResources {
		total = total.Add(resourceCost(sub))
	}
	return total
}
