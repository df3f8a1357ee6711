// Package scenario - Single provider/level pricing pipeline
package scenario

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cloudcost/core/allocate"
	"cloudcost/core/descriptor"
	"cloudcost/core/guards"
	"cloudcost/core/heuristic"
	"cloudcost/core/types"
	"cloudcost/core/usage"
)

// PricedAggregate is the authoritative engine's outcome, normalized
// onto the catalog's service classes
type PricedAggregate struct {
	// Total is the engine's aggregate monthly cost
	Total decimal.Decimal

	// MappedServices counts the distinct service classes the engine
	// breakdown mapped onto
	MappedServices int
}

// EnginePricer abstracts the authoritative pricing engine. Price never
// returns an error: every engine failure mode reports ok=false and the
// pipeline degrades to the heuristic path.
type EnginePricer interface {
	// Available reports whether the engine can be invoked at all
	Available() bool

	// Price writes nothing; it prices the descriptor already present in
	// dir, keyed by the optional usage side-file
	Price(ctx context.Context, provider types.Provider, dir, usageFile string) (*PricedAggregate, bool)
}

// branchRequest carries the shared estimate inputs into one
// provider/level branch
type branchRequest struct {
	provider types.Provider
	level    types.UsageLevel
	pattern  types.PatternName
	mode     types.CostMode
	tier     types.SizingTier
	services []types.ServiceDefinition
	usage    *types.UsageProfile // defaulted
	runDir   string
}

// pipeline prices one provider at one usage level, walking the phase
// machine from requested through returned
type pipeline struct {
	generator  *descriptor.Generator
	pricer     EnginePricer
	deployable guards.DeployableSet
	log        *zap.Logger
}

// run executes the branch. Policy violations fail the branch; engine
// unavailability degrades it to the heuristic estimate instead.
func (p *pipeline) run(ctx context.Context, req branchRequest) (*types.CostResult, error) {
	phase := PhaseRequested
	p.logPhase(req, phase)
	profile := req.level.Profile()

	desc, err := p.generator.Generate(req.provider, req.services, req.tier, profile, req.pattern)
	if err != nil {
		p.logPhase(req, PhaseFailed)
		return nil, err
	}
	phase = PhaseDescriptorBuilt
	p.logPhase(req, phase)

	resolved := usage.Resolve(req.usage, req.level)

	total, estimateType, isMock := p.price(ctx, req, desc)
	if estimateType == types.EstimateExact {
		phase = PhasePricedExact
	} else {
		phase = PhasePricedHeuristic
	}
	p.logPhase(req, phase)

	result := &types.CostResult{
		Provider:     req.provider,
		MonthlyCost:  total,
		EstimateType: estimateType,
		IsMock:       isMock,
		Mode:         req.mode,
		Tier:         req.tier,
		Profile:      profile,
		Services:     allocate.Allocate(total, req.services, resolved, req.pattern),
		Drivers:      drivers(resolved, total),
	}

	if err := guards.Validate(result, p.deployable); err != nil {
		return nil, err
	}
	p.logPhase(req, PhaseValidated)
	p.logPhase(req, PhaseReturned)
	return result, nil
}

// price attempts the authoritative engine and falls back to the
// heuristic formula when it cannot deliver
func (p *pipeline) price(ctx context.Context, req branchRequest, desc *descriptor.Descriptor) (decimal.Decimal, types.EstimateType, bool) {
	if p.pricer != nil && p.pricer.Available() {
		if total, ok := p.priceExact(ctx, req, desc); ok {
			return total, types.EstimateExact, false
		}
	}

	est := heuristic.Compute(req.provider, req.services, req.tier, req.level.Profile())
	return est.Total, types.EstimateHeuristic, true
}

// priceExact serializes the descriptor and usage side-file into the
// branch run dir and invokes the engine
func (p *pipeline) priceExact(ctx context.Context, req branchRequest, desc *descriptor.Descriptor) (decimal.Decimal, bool) {
	if _, err := desc.WriteFile(req.runDir); err != nil {
		p.log.Warn("failed to serialize descriptor, degrading to heuristic",
			zap.String("provider", req.provider.String()),
			zap.Error(err))
		return decimal.Zero, false
	}

	usageFile := ""
	usageMap := usage.Normalize(req.usage, desc, req.level)
	if len(usageMap) > 0 {
		path, err := usageMap.WriteFile(req.runDir)
		if err != nil {
			p.log.Warn("failed to serialize usage file, degrading to heuristic",
				zap.String("provider", req.provider.String()),
				zap.Error(err))
			return decimal.Zero, false
		}
		usageFile = path
	}

	priced, ok := p.pricer.Price(ctx, req.provider, req.runDir, usageFile)
	if !ok {
		return decimal.Zero, false
	}
	p.log.Debug("authoritative engine priced branch",
		zap.String("provider", req.provider.String()),
		zap.String("level", string(req.level)),
		zap.Int("mapped_services", priced.MappedServices))
	return priced.Total, true
}

func (p *pipeline) logPhase(req branchRequest, phase EstimatePhase) {
	p.log.Debug("phase transition",
		zap.String("provider", req.provider.String()),
		zap.String("level", string(req.level)),
		zap.String("phase", phase.String()))
}

// Contribution split of the estimate total across the three usage
// dimensions reported as drivers
var driverShares = []struct {
	name  string
	share decimal.Decimal
	value func(usage.Resolved) float64
	high  float64
	low   float64
}{
	{"monthly_requests", decimal.RequireFromString("0.40"),
		func(r usage.Resolved) float64 { return r.MonthlyRequests }, 5e6, 5e5},
	{"storage_gb", decimal.RequireFromString("0.35"),
		func(r usage.Resolved) float64 { return r.StorageGB }, 500, 50},
	{"monthly_gb_data_transfer", decimal.RequireFromString("0.25"),
		func(r usage.Resolved) float64 { return r.TransferGB }, 1000, 100},
}

// drivers reports the usage quantities behind an estimate with a
// coarse impact rating
func drivers(resolved usage.Resolved, total decimal.Decimal) []types.CostDriver {
	out := make([]types.CostDriver, 0, len(driverShares))
	for _, spec := range driverShares {
		value := spec.value(resolved)
		impact := "low"
		switch {
		case value >= spec.high:
			impact = "high"
		case value >= spec.low:
			impact = "medium"
		}
		out = append(out, types.CostDriver{
			Name:             spec.name,
			Value:            value,
			Impact:           impact,
			CostContribution: total.Mul(spec.share).Round(2),
		})
	}
	return out
}
