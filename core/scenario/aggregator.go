// Package scenario - Scenario matrix assembly
package scenario

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cloudcost/core/architecture"
	"cloudcost/core/catalog"
	"cloudcost/core/classify"
	"cloudcost/core/confidence"
	"cloudcost/core/descriptor"
	"cloudcost/core/guards"
	"cloudcost/core/types"
	"cloudcost/internal/config"
	"cloudcost/internal/errors"
	"cloudcost/internal/logging"
)

// Aggregator runs the full estimation pipeline: filter, classify,
// price every usage level against every configured provider, validate
// and assemble the scenario matrix.
type Aggregator struct {
	catalog    *catalog.Catalog
	filter     *architecture.Filter
	generator  *descriptor.Generator
	scorer     *confidence.Scorer
	pricer     EnginePricer
	providers  []types.Provider
	scratchDir string
	log        *zap.Logger
}

// NewAggregator creates an aggregator. The pricer may be nil, in which
// case every branch prices heuristically.
func NewAggregator(cat *catalog.Catalog, cfg config.EstimationConfig, pricer EnginePricer) (*Aggregator, error) {
	gen, err := descriptor.NewGenerator(cat)
	if err != nil {
		return nil, err
	}

	providers := make([]types.Provider, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		provider := types.ParseProvider(name)
		if !provider.IsValid() {
			return nil, errors.Newf(errors.TypeConfig, "unknown provider in configuration: %q", name)
		}
		providers = append(providers, provider)
	}
	if len(providers) == 0 {
		return nil, errors.New(errors.TypeConfig, "no providers configured")
	}

	scratch := cfg.ScratchDir
	if scratch == "" {
		scratch = filepath.Join(os.TempDir(), "cloudcost")
	}

	return &Aggregator{
		catalog:    cat,
		filter:     architecture.NewFilter(cat, nil),
		generator:  gen,
		scorer:     confidence.NewScorer(cat),
		pricer:     pricer,
		providers:  providers,
		scratchDir: scratch,
		log:        logging.Named("aggregator"),
	}, nil
}

// branchOutcome is one provider/level branch result, written into a
// pre-indexed slot so the fan-out needs no mutex
type branchOutcome struct {
	level    types.UsageLevel
	provider types.Provider
	result   *types.CostResult
	err      error
}

// Build runs the full estimate. The declared usage profile may be nil;
// defaults apply per field. Branches run concurrently and share only
// immutable inputs. Policy and integrity violations abort the whole
// estimate; engine failures never do.
func (a *Aggregator) Build(ctx context.Context, arch types.Architecture,
	intent types.Intent, declared *types.UsageProfile) (*types.CostScenarios, error) {

	services, err := a.filter.Extract(arch)
	if err != nil {
		return nil, err
	}

	mode := classify.Classify(intent.Description, services)
	usage := declared.WithDefaults()
	tier := types.TierFromScale(intent.Scale, usage.MonthlyUsers.Expected)
	deployable := guards.NewDeployableSet(services)

	runID := uuid.NewString()
	baseDir := filepath.Join(a.scratchDir, runID)
	defer os.RemoveAll(baseDir)

	a.log.Info("starting estimate",
		zap.String("run_id", runID),
		zap.String("pattern", arch.Pattern.String()),
		zap.String("mode", mode.String()),
		zap.String("tier", tier.String()),
		zap.Int("services", len(services)))

	levels := types.AllUsageLevels()
	outcomes := make([]branchOutcome, len(levels)*len(a.providers))

	pipe := &pipeline{
		generator:  a.generator,
		pricer:     a.pricer,
		deployable: deployable,
		log:        a.log,
	}

	var wg sync.WaitGroup
	for i, level := range levels {
		for j, provider := range a.providers {
			wg.Add(1)
			go func(slot int, level types.UsageLevel, provider types.Provider) {
				defer wg.Done()
				result, err := pipe.run(ctx, branchRequest{
					provider: provider,
					level:    level,
					pattern:  arch.Pattern,
					mode:     mode,
					tier:     tier,
					services: services,
					usage:    usage,
					runDir:   filepath.Join(baseDir, string(level), provider.String()),
				})
				outcomes[slot] = branchOutcome{level: level, provider: provider, result: result, err: err}
			}(i*len(a.providers)+j, level, provider)
		}
	}
	wg.Wait()

	scenarios := &types.CostScenarios{
		Scenarios: make(map[types.ScenarioName]map[types.Provider]*types.CostResult, len(levels)),
	}
	for _, level := range levels {
		scenarios.Scenarios[level.Scenario()] = make(map[types.Provider]*types.CostResult, len(a.providers))
	}

	first := true
	for _, outcome := range outcomes {
		if outcome.err != nil {
			return nil, outcome.err
		}
		result := outcome.result
		scenarios.Scenarios[outcome.level.Scenario()][outcome.provider] = result

		if first || result.MonthlyCost.LessThan(scenarios.CostRange.Min) {
			scenarios.CostRange.Min = result.MonthlyCost
		}
		if first || result.MonthlyCost.GreaterThan(scenarios.CostRange.Max) {
			scenarios.CostRange.Max = result.MonthlyCost
		}
		if first || result.MonthlyCost.LessThan(scenarios.Recommended.MonthlyCost) {
			scenarios.Recommended = result
		}
		first = false
	}

	if err := guards.ValidateAll(scenarios, deployable); err != nil {
		return nil, err
	}

	scenarios.Confidence = a.scorer.Score(arch, scenarios, declared, len(a.providers))

	a.log.Info("estimate complete",
		zap.String("run_id", runID),
		zap.String("range_min", scenarios.CostRange.Min.String()),
		zap.String("range_max", scenarios.CostRange.Max.String()),
		zap.Float64("confidence", scenarios.Confidence.Score))
	return scenarios, nil
}
