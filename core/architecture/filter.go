// Package architecture extracts the priceable subset of a resolved
// architecture. The upstream pattern resolver decides which services
// belong to a pattern; this package only isolates what is billable.
package architecture

import (
	"fmt"

	"go.uber.org/zap"

	"cloudcost/core/catalog"
	"cloudcost/core/types"
	"cloudcost/internal/logging"
)

// EmptyDeployableSetError signals a broken upstream architecture
// resolution: nothing in the architecture is priceable. Fatal.
type EmptyDeployableSetError struct {
	Pattern types.PatternName
}

func (e *EmptyDeployableSetError) Error() string {
	return fmt.Sprintf("architecture %q resolved to zero deployable services", e.Pattern)
}

// Filter extracts deployable services from an architecture
type Filter struct {
	catalog    *catalog.Catalog
	exclusions map[types.ServiceClass]bool
	log        *zap.Logger
}

// NewFilter creates a filter. Excluded classes are never priced even
// when deployable.
func NewFilter(cat *catalog.Catalog, exclusions []types.ServiceClass) *Filter {
	excl := make(map[types.ServiceClass]bool, len(exclusions))
	for _, class := range exclusions {
		excl[class] = true
	}
	return &Filter{
		catalog:    cat,
		exclusions: excl,
		log:        logging.Named("filter"),
	}
}

// Extract returns the deployable services of an architecture in
// binding order. A service is deployable only when both the catalog
// and the resolver agree. Returns EmptyDeployableSetError when the
// result is empty.
func (f *Filter) Extract(arch types.Architecture) ([]types.ServiceDefinition, error) {
	var out []types.ServiceDefinition
	seen := make(map[types.ServiceClass]bool, len(arch.Services))

	for _, binding := range arch.Services {
		if seen[binding.Class] {
			continue
		}
		seen[binding.Class] = true

		def, ok := f.catalog.Get(binding.Class)
		if !ok {
			f.log.Warn("service class not in catalog, skipping",
				zap.String("service_class", binding.Class.String()),
				zap.String("pattern", arch.Pattern.String()))
			continue
		}
		if !def.Deployable || !binding.Deployable {
			continue
		}
		if f.exclusions[binding.Class] {
			continue
		}
		out = append(out, def)
	}

	if len(out) == 0 {
		return nil, &EmptyDeployableSetError{Pattern: arch.Pattern}
	}
	return out, nil
}
