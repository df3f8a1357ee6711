// Package descriptor - Pattern resource policy
// The active pattern constrains which resource categories may ever be
// emitted. Violations are fatal: a forbidden resource must never be
// silently dropped or priced.
package descriptor

import (
	"fmt"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// PolicyViolationError signals that a descriptor would contain a
// resource class the active pattern forbids. Fatal, no fallback.
type PolicyViolationError struct {
	Pattern  types.PatternName
	Class    types.ServiceClass
	Category types.ServiceCategory
	Provider types.Provider
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("pattern %q forbids %s resources: service %q cannot be emitted for provider %s",
		e.Pattern, e.Category, e.Class, e.Provider)
}

// PatternPolicy is the resource policy of one architecture pattern
type PatternPolicy struct {
	// Pattern is the pattern this policy governs
	Pattern types.PatternName

	// ForbiddenCategories are categories that must never be emitted
	ForbiddenCategories map[types.ServiceCategory]bool
}

// Forbids reports whether the policy forbids a category
func (p PatternPolicy) Forbids(category types.ServiceCategory) bool {
	return p.ForbiddenCategories[category]
}

// patternPolicies is read-only and shared across concurrent runs.
var patternPolicies = map[types.PatternName]PatternPolicy{
	types.PatternStaticHosting: {
		Pattern: types.PatternStaticHosting,
		ForbiddenCategories: map[types.ServiceCategory]bool{
			types.CategoryCompute:    true,
			types.CategoryServerless: true,
			types.CategoryDatabase:   true,
		},
	},
	types.PatternServerlessAPI: {
		Pattern: types.PatternServerlessAPI,
		ForbiddenCategories: map[types.ServiceCategory]bool{
			types.CategoryCompute: true,
		},
	},
	types.PatternWebApplication: {Pattern: types.PatternWebApplication},
	types.PatternMicroservices:  {Pattern: types.PatternMicroservices},
	types.PatternDataPipeline:   {Pattern: types.PatternDataPipeline},
}

// PolicyFor returns the policy of a pattern. Unknown patterns are an
// input error, rejected before any pricing work begins.
func PolicyFor(pattern types.PatternName) (PatternPolicy, error) {
	policy, ok := patternPolicies[pattern]
	if !ok {
		return PatternPolicy{}, errors.Newf(errors.TypeInput, "unknown architecture pattern: %s", pattern)
	}
	return policy, nil
}
