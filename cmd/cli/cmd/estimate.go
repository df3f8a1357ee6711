// Package cmd - estimate command
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cloudcost/adapters/pricing"
	"cloudcost/core/architecture"
	"cloudcost/core/catalog"
	"cloudcost/core/descriptor"
	"cloudcost/core/heuristic"
	"cloudcost/core/scenario"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
	"cloudcost/internal/logging"
)

var (
	architectureFile string
	intentText       string
	scale            string
	usageFile        string
	outputFormat     string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate monthly costs for a resolved architecture",
	Long: `Price a resolved architecture across providers and usage scenarios.

The architecture file is JSON with a pattern name and service bindings.
The optional usage file is YAML; each field accepts either a scalar or
a min/expected/max range.

Examples:
  cloudcost estimate --architecture arch.json
  cloudcost estimate --architecture arch.json --intent "photo backup archive"
  cloudcost estimate --architecture arch.json --usage usage.yml --scale large`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&architectureFile, "architecture", "a", "", "resolved architecture file (JSON)")
	estimateCmd.Flags().StringVarP(&intentText, "intent", "i", "", "free-text workload intent")
	estimateCmd.Flags().StringVarP(&scale, "scale", "s", "", "declared scale (small, medium, large)")
	estimateCmd.Flags().StringVarP(&usageFile, "usage", "u", "", "usage profile file (YAML)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (json, table)")
	_ = estimateCmd.MarkFlagRequired("architecture")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()

	arch, err := loadArchitecture(architectureFile)
	if err != nil {
		return err
	}
	declared, err := loadUsage(usageFile)
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	intent := types.Intent{Description: intentText, Scale: scale}

	aggregator, err := scenario.NewAggregator(cat, cfg.Estimation, pricing.NewPricer(cfg.Engine))
	if err != nil {
		return err
	}

	result, err := aggregator.Build(ctx, arch, intent, declared)
	if err != nil {
		// Policy, input and integrity violations are contract failures
		// and must surface. Anything else gets the last-resort estimate
		// rather than leaving the caller with nothing.
		if isFatalEstimateError(err) {
			return err
		}
		logging.Warn("estimate pipeline failed, producing last-resort estimate")
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Falling back to a coarse heuristic estimate.")
		result = lastResortEstimate(cat, arch, intent)
	}

	if err := printScenarios(result); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nEstimation completed in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// isFatalEstimateError reports whether an estimate error must surface
// to the caller instead of degrading to the last-resort estimate
func isFatalEstimateError(err error) bool {
	var policyErr *descriptor.PolicyViolationError
	var emptyErr *architecture.EmptyDeployableSetError
	if stderrors.As(err, &policyErr) || stderrors.As(err, &emptyErr) {
		return true
	}
	return errors.IsType(err, errors.TypeInput) ||
		errors.IsType(err, errors.TypePolicy) ||
		errors.IsType(err, errors.TypeIntegrity)
}

func loadArchitecture(path string) (types.Architecture, error) {
	var arch types.Architecture
	data, err := os.ReadFile(path)
	if err != nil {
		return arch, fmt.Errorf("failed to read architecture file: %w", err)
	}
	if err := json.Unmarshal(data, &arch); err != nil {
		return arch, fmt.Errorf("failed to parse architecture file: %w", err)
	}
	if arch.Pattern == "" {
		return arch, fmt.Errorf("architecture file declares no pattern")
	}
	return arch, nil
}

func loadUsage(path string) (*types.UsageProfile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage file: %w", err)
	}
	var profile types.UsageProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse usage file: %w", err)
	}
	return &profile, nil
}

func loadCatalog() (*catalog.Catalog, error) {
	if cfg.Estimation.CatalogPath != "" {
		return catalog.Load(cfg.Estimation.CatalogPath)
	}
	return catalog.Default(), nil
}

// lastResortEstimate produces a single-scenario heuristic estimate
// directly from the architecture bindings. Used only when the full
// pipeline fails for reasons outside the caller's control.
func lastResortEstimate(cat *catalog.Catalog, arch types.Architecture, intent types.Intent) *types.CostScenarios {
	var services []types.ServiceDefinition
	for _, binding := range arch.Services {
		if def, ok := cat.Get(binding.Class); ok && def.Deployable && binding.Deployable {
			services = append(services, def)
		}
	}

	tier := types.TierFromScale(intent.Scale, types.DefaultMonthlyUsers)
	results := make(map[types.Provider]*types.CostResult, len(types.AllProviders()))
	out := &types.CostScenarios{
		Scenarios: map[types.ScenarioName]map[types.Provider]*types.CostResult{
			types.ScenarioStandard: results,
		},
	}

	for i, provider := range types.AllProviders() {
		est := heuristic.Compute(provider, services, tier, types.ProfileCostEffective)
		result := &types.CostResult{
			Provider:     provider,
			MonthlyCost:  est.Total,
			EstimateType: types.EstimateHeuristic,
			IsMock:       true,
			Mode:         types.ModeHybrid,
			Tier:         tier,
			Profile:      types.ProfileCostEffective,
		}
		for _, class := range sortedClasses(est) {
			result.Services = append(result.Services, types.ServiceCost{
				ServiceClass: class,
				Cost:         est.ByService[class],
				Reason:       "heuristic formula (last resort)",
			})
		}
		results[provider] = result

		if i == 0 || result.MonthlyCost.LessThan(out.CostRange.Min) {
			out.CostRange.Min = result.MonthlyCost
		}
		if i == 0 || result.MonthlyCost.GreaterThan(out.CostRange.Max) {
			out.CostRange.Max = result.MonthlyCost
		}
		if out.Recommended == nil || result.MonthlyCost.LessThan(out.Recommended.MonthlyCost) {
			out.Recommended = result
		}
	}

	out.Confidence = types.ConfidenceScore{
		Score:      0.10,
		Percentage: 10,
		Explanation: []string{
			"last-resort heuristic estimate, full pipeline unavailable",
		},
	}
	return out
}

func sortedClasses(est *heuristic.Estimate) []types.ServiceClass {
	classes := make([]types.ServiceClass, 0, len(est.ByService))
	for class := range est.ByService {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}

func printScenarios(result *types.CostScenarios) error {
	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}

	switch format {
	case "", "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case "table":
		printTable(result)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func printTable(result *types.CostScenarios) {
	scenarioOrder := []types.ScenarioName{
		types.ScenarioCostEffective, types.ScenarioStandard, types.ScenarioHighPerformance,
	}

	for _, name := range scenarioOrder {
		providers, ok := result.Scenarios[name]
		if !ok {
			continue
		}
		fmt.Printf("%s\n", name)
		for _, provider := range types.AllProviders() {
			res, ok := providers[provider]
			if !ok {
				continue
			}
			fmt.Printf("  %-8s $%s/month (%s)\n",
				provider, res.MonthlyCost.StringFixed(2), res.EstimateType)
			for _, svc := range res.Services {
				fmt.Printf("    %-24s $%s (%.1f%%)\n",
					svc.ServiceClass, svc.Cost.StringFixed(2), svc.Percentage)
			}
			if cfg.Output.ShowDrivers {
				for _, driver := range res.Drivers {
					fmt.Printf("    driver %-17s %.0f (%s impact)\n",
						driver.Name, driver.Value, driver.Impact)
				}
			}
		}
		fmt.Println()
	}

	fmt.Printf("Range: $%s - $%s/month\n",
		result.CostRange.Min.StringFixed(2), result.CostRange.Max.StringFixed(2))
	if result.Recommended != nil {
		fmt.Printf("Recommended: %s at $%s/month\n",
			result.Recommended.Provider, result.Recommended.MonthlyCost.StringFixed(2))
	}
	if cfg.Output.ShowConfidence {
		fmt.Printf("Confidence: %.0f%%\n", result.Confidence.Percentage)
		for _, line := range result.Confidence.Explanation {
			fmt.Printf("  - %s\n", line)
		}
	}
}
