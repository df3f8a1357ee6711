// Package types - Usage profile types
package types

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Documented defaults for missing usage fields
const (
	DefaultMonthlyUsers    = 1000
	DefaultRequestsPerUser = 50
	DefaultStorageGB       = 10
	DefaultDataTransferGB  = 50
)

// Spread applied when a field is given as a scalar rather than a range:
// low = 0.5x, high = 2.5x of the expected value.
const (
	scalarLowFactor  = 0.5
	scalarHighFactor = 2.5
)

// UsageValue is a usage quantity given either as a scalar or as a
// {min, expected, max} range
type UsageValue struct {
	Min      float64 `json:"min" yaml:"min"`
	Expected float64 `json:"expected" yaml:"expected"`
	Max      float64 `json:"max" yaml:"max"`
}

// NewUsageValue builds a range from a scalar with the documented spread
func NewUsageValue(scalar float64) *UsageValue {
	return &UsageValue{
		Min:      scalar * scalarLowFactor,
		Expected: scalar,
		Max:      scalar * scalarHighFactor,
	}
}

// At returns the quantity for a usage level
func (v *UsageValue) At(level UsageLevel) float64 {
	if v == nil {
		return 0
	}
	switch level {
	case UsageLow:
		return v.Min
	case UsageHigh:
		return v.Max
	default:
		return v.Expected
	}
}

// UnmarshalJSON accepts either a scalar or a {min, expected, max} object
func (v *UsageValue) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*v = *NewUsageValue(scalar)
		return nil
	}

	type rawRange UsageValue
	var r rawRange
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("usage value must be a number or a min/expected/max object: %w", err)
	}
	*v = UsageValue(r)
	return nil
}

// UnmarshalYAML accepts either a scalar or a {min, expected, max} mapping
func (v *UsageValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var scalar float64
		if err := node.Decode(&scalar); err != nil {
			return err
		}
		*v = *NewUsageValue(scalar)
		return nil
	}

	type rawRange UsageValue
	var r rawRange
	if err := node.Decode(&r); err != nil {
		return fmt.Errorf("usage value must be a number or a min/expected/max mapping: %w", err)
	}
	*v = UsageValue(r)
	return nil
}

// UsageProfile is the abstract usage declaration for an estimate.
// Nil fields fall back to the documented defaults.
type UsageProfile struct {
	MonthlyUsers    *UsageValue `json:"monthly_users,omitempty" yaml:"monthly_users,omitempty"`
	RequestsPerUser *UsageValue `json:"requests_per_user,omitempty" yaml:"requests_per_user,omitempty"`
	StorageGB       *UsageValue `json:"storage_gb,omitempty" yaml:"storage_gb,omitempty"`
	DataTransferGB  *UsageValue `json:"data_transfer_gb,omitempty" yaml:"data_transfer_gb,omitempty"`
}

// WithDefaults returns a copy with every missing field filled from the
// documented defaults. The receiver is not modified, so callers can keep
// it around to tell declared fields from defaulted ones.
func (p *UsageProfile) WithDefaults() *UsageProfile {
	out := &UsageProfile{}
	if p != nil {
		*out = *p
	}
	if out.MonthlyUsers == nil {
		out.MonthlyUsers = NewUsageValue(DefaultMonthlyUsers)
	}
	if out.RequestsPerUser == nil {
		out.RequestsPerUser = NewUsageValue(DefaultRequestsPerUser)
	}
	if out.StorageGB == nil {
		out.StorageGB = NewUsageValue(DefaultStorageGB)
	}
	if out.DataTransferGB == nil {
		out.DataTransferGB = NewUsageValue(DefaultDataTransferGB)
	}
	return out
}

// UsageLevel is one of the three estimated usage tiers
type UsageLevel string

const (
	UsageLow      UsageLevel = "low"
	UsageExpected UsageLevel = "expected"
	UsageHigh     UsageLevel = "high"
)

// AllUsageLevels returns the usage levels in stable order
func AllUsageLevels() []UsageLevel {
	return []UsageLevel{UsageLow, UsageExpected, UsageHigh}
}

// Scenario returns the scenario name a usage level reports under
func (l UsageLevel) Scenario() ScenarioName {
	switch l {
	case UsageLow:
		return ScenarioCostEffective
	case UsageHigh:
		return ScenarioHighPerformance
	default:
		return ScenarioStandard
	}
}

// Profile returns the cost profile paired with a usage level.
// Low and expected usage pair with cost-effective infrastructure,
// high usage pairs with high-performance.
func (l UsageLevel) Profile() CostProfile {
	if l == UsageHigh {
		return ProfileHighPerformance
	}
	return ProfileCostEffective
}

// ScenarioName identifies a scenario in the final result
type ScenarioName string

const (
	ScenarioCostEffective   ScenarioName = "cost_effective"
	ScenarioStandard        ScenarioName = "standard"
	ScenarioHighPerformance ScenarioName = "high_performance"
)

// String returns the string representation
func (s ScenarioName) String() string {
	return string(s)
}

// SizingTier is the discrete capacity class of an estimate
type SizingTier string

const (
	TierSmall  SizingTier = "small"
	TierMedium SizingTier = "medium"
	TierLarge  SizingTier = "large"
)

// String returns the string representation
func (t SizingTier) String() string {
	return string(t)
}

// User-count boundaries for inferred sizing tiers
const (
	smallTierMaxUsers  = 5000
	mediumTierMaxUsers = 50000
)

// TierFromScale derives the sizing tier from a declared scale string,
// falling back to inference from expected monthly users
func TierFromScale(scale string, expectedMonthlyUsers float64) SizingTier {
	switch scale {
	case "small":
		return TierSmall
	case "medium":
		return TierMedium
	case "large":
		return TierLarge
	}

	switch {
	case expectedMonthlyUsers <= smallTierMaxUsers:
		return TierSmall
	case expectedMonthlyUsers <= mediumTierMaxUsers:
		return TierMedium
	default:
		return TierLarge
	}
}

// CostProfile is the optimization stance of an estimate
type CostProfile string

const (
	ProfileCostEffective   CostProfile = "cost_effective"
	ProfileHighPerformance CostProfile = "high_performance"
)

// String returns the string representation
func (p CostProfile) String() string {
	return string(p)
}
