// Package classify maps a declared workload onto a pricing strategy.
// Classification is a pure function of the intent text and the resolved
// services - no I/O, fully deterministic.
package classify

import (
	"strings"

	"cloudcost/core/types"
)

// Keyword tables are read-only and shared across invocations.
var (
	consumptionKeywords = []string{
		"ai", "llm", "machine learning", "inference", "model",
		"gpt", "embedding", "chatbot", "token",
	}

	storagePolicyKeywords = []string{
		"archive", "backup", "retention", "lifecycle",
		"cold storage", "compliance storage", "storage policy",
	}

	operationalKeywords = []string{
		"monitoring", "observability", "audit", "incident",
		"operations", "operational analysis",
	}
)

// Infrastructure-bearing categories: a deployable service in one of
// these pushes the workload toward infrastructure pricing.
var infrastructureCategories = map[types.ServiceCategory]bool{
	types.CategoryCompute:    true,
	types.CategoryServerless: true,
	types.CategoryDatabase:   true,
	types.CategoryNetwork:    true,
}

// Classify selects the cost mode for a workload.
//
// Priority order: AI/consumption keywords, then storage-policy
// keywords, then presence of infrastructure-bearing deployable
// services, then operational-analysis keywords, then hybrid.
func Classify(intentText string, services []types.ServiceDefinition) types.CostMode {
	text := strings.ToLower(intentText)
	words := tokenize(text)

	if matchesAny(text, words, consumptionKeywords) {
		return types.ModeConsumption
	}
	if matchesAny(text, words, storagePolicyKeywords) {
		return types.ModeStoragePolicy
	}
	for _, svc := range services {
		if svc.Deployable && infrastructureCategories[svc.Category] {
			return types.ModeInfrastructure
		}
	}
	if matchesAny(text, words, operationalKeywords) {
		return types.ModeInfrastructure
	}
	return types.ModeHybrid
}

// matchesAny matches multi-word keywords as substrings and single-word
// keywords as whole words, so "ai" does not fire on "maintain".
func matchesAny(text string, words map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(text, kw) {
				return true
			}
			continue
		}
		if words[kw] {
			return true
		}
	}
	return false
}

func tokenize(text string) map[string]bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[f] = true
	}
	return words
}
