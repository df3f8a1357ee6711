package architecture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudcost/core/catalog"
	"cloudcost/core/types"
)

func webArchitecture() types.Architecture {
	return types.Architecture{
		Pattern: types.PatternWebApplication,
		Services: []types.ServiceBinding{
			{Class: "compute_container", Deployable: true},
			{Class: "relational_database", Deployable: true},
			{Class: "business_logic", Deployable: true},
			{Class: "object_storage", Deployable: true},
		},
	}
}

func TestExtractDeployableOnly(t *testing.T) {
	filter := NewFilter(catalog.Default(), nil)

	services, err := filter.Extract(webArchitecture())
	require.NoError(t, err)

	classes := make([]types.ServiceClass, 0, len(services))
	for _, svc := range services {
		assert.True(t, svc.Deployable)
		classes = append(classes, svc.Class)
	}
	// business_logic is logical in the catalog and must not survive.
	assert.Equal(t, []types.ServiceClass{"compute_container", "relational_database", "object_storage"}, classes)
}

func TestExtractResolverHintWins(t *testing.T) {
	filter := NewFilter(catalog.Default(), nil)

	arch := types.Architecture{
		Pattern: types.PatternWebApplication,
		Services: []types.ServiceBinding{
			{Class: "compute_container", Deployable: false},
			{Class: "object_storage", Deployable: true},
		},
	}

	services, err := filter.Extract(arch)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, types.ServiceClass("object_storage"), services[0].Class)
}

func TestExtractUnknownClassSkipped(t *testing.T) {
	filter := NewFilter(catalog.Default(), nil)

	arch := types.Architecture{
		Pattern: types.PatternWebApplication,
		Services: []types.ServiceBinding{
			{Class: "quantum_annealer", Deployable: true},
			{Class: "cdn", Deployable: true},
		},
	}

	services, err := filter.Extract(arch)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, types.ServiceClass("cdn"), services[0].Class)
}

func TestExtractExclusions(t *testing.T) {
	filter := NewFilter(catalog.Default(), []types.ServiceClass{"relational_database"})

	services, err := filter.Extract(webArchitecture())
	require.NoError(t, err)
	for _, svc := range services {
		assert.NotEqual(t, types.ServiceClass("relational_database"), svc.Class)
	}
}

func TestExtractDeduplicates(t *testing.T) {
	filter := NewFilter(catalog.Default(), nil)

	arch := types.Architecture{
		Pattern: types.PatternWebApplication,
		Services: []types.ServiceBinding{
			{Class: "cdn", Deployable: true},
			{Class: "cdn", Deployable: true},
		},
	}

	services, err := filter.Extract(arch)
	require.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestExtractEmptySetFatal(t *testing.T) {
	filter := NewFilter(catalog.Default(), nil)

	arch := types.Architecture{
		Pattern: types.PatternWebApplication,
		Services: []types.ServiceBinding{
			{Class: "business_logic", Deployable: true},
		},
	}

	_, err := filter.Extract(arch)
	var emptyErr *EmptyDeployableSetError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, types.PatternWebApplication, emptyErr.Pattern)
}
