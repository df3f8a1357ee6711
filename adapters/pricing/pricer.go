// Package pricing - Pipeline pricing port
package pricing

import (
	"context"

	"cloudcost/core/scenario"
	"cloudcost/core/types"
	"cloudcost/internal/config"
)

// Pricer chains the engine adapter and the result normalizer into the
// pipeline's pricing port
type Pricer struct {
	adapter    *Adapter
	normalizer *ResultNormalizer
}

var _ scenario.EnginePricer = (*Pricer)(nil)

// NewPricer creates a pricer backed by the configured engine
func NewPricer(cfg config.EngineConfig) *Pricer {
	return &Pricer{
		adapter:    NewAdapter(cfg),
		normalizer: NewResultNormalizer(),
	}
}

// Available reports whether the engine can be invoked
func (p *Pricer) Available() bool {
	return p.adapter.Available()
}

// Price invokes the engine against a run directory and normalizes the
// breakdown onto service classes. Every failure mode reports ok=false.
func (p *Pricer) Price(ctx context.Context, provider types.Provider, dir, usageFile string) (*scenario.PricedAggregate, bool) {
	raw, ok := p.adapter.Run(ctx, dir, usageFile)
	if !ok {
		return nil, false
	}

	costs, ok := p.normalizer.Normalize(raw, provider)
	if !ok {
		return nil, false
	}
	return &scenario.PricedAggregate{
		Total:          costs.Total,
		MappedServices: len(costs.ByService),
	}, true
}
