package usage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cloudcost/core/catalog"
	"cloudcost/core/descriptor"
	"cloudcost/core/types"
)

func buildDescriptor(t *testing.T, classes ...types.ServiceClass) *descriptor.Descriptor {
	t.Helper()
	cat := catalog.Default()
	gen, err := descriptor.NewGenerator(cat)
	require.NoError(t, err)

	var services []types.ServiceDefinition
	for _, class := range classes {
		def, ok := cat.Get(class)
		require.True(t, ok)
		services = append(services, def)
	}
	desc, err := gen.Generate(types.ProviderAWS, services, types.TierMedium,
		types.ProfileCostEffective, types.PatternWebApplication)
	require.NoError(t, err)
	return desc
}

func TestResolveDerivesMonthlyRequests(t *testing.T) {
	profile := (&types.UsageProfile{}).WithDefaults()

	resolved := Resolve(profile, types.UsageExpected)
	assert.Equal(t, float64(types.DefaultMonthlyUsers), resolved.MonthlyUsers)
	// users x requests_per_user x 30 days
	assert.Equal(t, float64(1000*50*30), resolved.MonthlyRequests)
	assert.Equal(t, float64(types.DefaultStorageGB), resolved.StorageGB)
	assert.Equal(t, float64(types.DefaultDataTransferGB), resolved.TransferGB)
}

func TestResolveLevels(t *testing.T) {
	profile := &types.UsageProfile{
		MonthlyUsers:    &types.UsageValue{Min: 100, Expected: 1000, Max: 10000},
		RequestsPerUser: types.NewUsageValue(10),
	}
	profile = profile.WithDefaults()

	low := Resolve(profile, types.UsageLow)
	high := Resolve(profile, types.UsageHigh)
	assert.Equal(t, 100.0, low.MonthlyUsers)
	assert.Equal(t, 10000.0, high.MonthlyUsers)
	assert.Less(t, low.MonthlyRequests, high.MonthlyRequests)
}

func TestNormalizeOneEntryPerResource(t *testing.T) {
	desc := buildDescriptor(t, "compute_container", "relational_database", "cdn")
	profile := (&types.UsageProfile{}).WithDefaults()

	usage := Normalize(profile, desc, types.UsageExpected)
	require.Len(t, usage, 3)

	for _, entry := range desc.Entries {
		got, ok := usage[entry.Address]
		require.True(t, ok, "no usage for %s", entry.Address)
		switch entry.ServiceClass {
		case "compute_container":
			assert.Equal(t, MetricMonthlyRequests, got.Metric)
		case "relational_database":
			assert.Equal(t, MetricStorageGB, got.Metric)
		case "cdn":
			assert.Equal(t, MetricTransferGB, got.Metric)
		}
	}
}

func TestNormalizeAbsenceIsNotAnError(t *testing.T) {
	// dns and monitoring have no usage dimension.
	desc := buildDescriptor(t, "dns", "monitoring")
	profile := (&types.UsageProfile{}).WithDefaults()

	usage := Normalize(profile, desc, types.UsageExpected)
	assert.Empty(t, usage)
}

func TestWriteFile(t *testing.T) {
	desc := buildDescriptor(t, "compute_container")
	profile := (&types.UsageProfile{}).WithDefaults()
	usage := Normalize(profile, desc, types.UsageExpected)

	dir := t.TempDir()
	path, err := usage.WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, UsageFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Version       string                        `yaml:"version"`
		ResourceUsage map[string]map[string]float64 `yaml:"resource_usage"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "0.1", decoded.Version)
	require.Len(t, decoded.ResourceUsage, 1)
	for _, metrics := range decoded.ResourceUsage {
		assert.Equal(t, float64(1000*50*30), metrics[MetricMonthlyRequests])
	}
}
