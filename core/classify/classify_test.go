package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cloudcost/core/types"
)

func computeServices() []types.ServiceDefinition {
	return []types.ServiceDefinition{
		{Class: "compute_container", Category: types.CategoryCompute, Deployable: true},
		{Class: "object_storage", Category: types.CategoryStorage, Deployable: true},
	}
}

func storageOnlyServices() []types.ServiceDefinition {
	return []types.ServiceDefinition{
		{Class: "object_storage", Category: types.CategoryStorage, Deployable: true},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		intent   string
		services []types.ServiceDefinition
		want     types.CostMode
	}{
		{
			name:     "ai keyword selects consumption",
			intent:   "an AI chatbot for customer support",
			services: computeServices(),
			want:     types.ModeConsumption,
		},
		{
			name:     "llm inference selects consumption",
			intent:   "llm inference backend",
			services: nil,
			want:     types.ModeConsumption,
		},
		{
			name:     "archive selects storage policy",
			intent:   "photo backup and archive service",
			services: storageOnlyServices(),
			want:     types.ModeStoragePolicy,
		},
		{
			name:     "infrastructure services select infrastructure",
			intent:   "an ecommerce web shop",
			services: computeServices(),
			want:     types.ModeInfrastructure,
		},
		{
			name:     "operational keywords select infrastructure",
			intent:   "central observability and audit platform",
			services: storageOnlyServices(),
			want:     types.ModeInfrastructure,
		},
		{
			name:     "no signal falls back to hybrid",
			intent:   "a simple landing page",
			services: storageOnlyServices(),
			want:     types.ModeHybrid,
		},
		{
			name:     "consumption outranks infrastructure services",
			intent:   "machine learning model serving",
			services: computeServices(),
			want:     types.ModeConsumption,
		},
		{
			name:     "storage policy outranks infrastructure services",
			intent:   "document retention system",
			services: computeServices(),
			want:     types.ModeStoragePolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.intent, tt.services))
		})
	}
}

func TestClassifyWholeWordMatching(t *testing.T) {
	// "maintain" contains "ai" but must not trigger consumption.
	got := Classify("maintain a container platform", computeServices())
	assert.Equal(t, types.ModeInfrastructure, got)

	// "trail" contains "ai" too.
	got = Classify("trail map hosting", storageOnlyServices())
	assert.Equal(t, types.ModeHybrid, got)
}

func TestClassifyDeterministic(t *testing.T) {
	intent := "an AI archive with monitoring"
	first := Classify(intent, computeServices())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(intent, computeServices()))
	}
}
