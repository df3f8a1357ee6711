package types

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUsageValueScalarSpread(t *testing.T) {
	v := NewUsageValue(1000)
	assert.Equal(t, 500.0, v.Min)
	assert.Equal(t, 1000.0, v.Expected)
	assert.Equal(t, 2500.0, v.Max)
}

func TestUsageValueUnmarshalJSON(t *testing.T) {
	var scalar UsageValue
	require.NoError(t, json.Unmarshal([]byte(`200`), &scalar))
	assert.Equal(t, UsageValue{Min: 100, Expected: 200, Max: 500}, scalar)

	var ranged UsageValue
	require.NoError(t, json.Unmarshal([]byte(`{"min":1,"expected":2,"max":3}`), &ranged))
	assert.Equal(t, UsageValue{Min: 1, Expected: 2, Max: 3}, ranged)

	var bad UsageValue
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &bad))
}

func TestUsageValueUnmarshalYAML(t *testing.T) {
	var profile UsageProfile
	doc := "monthly_users: 2000\nstorage_gb:\n  min: 5\n  expected: 20\n  max: 100\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &profile))

	require.NotNil(t, profile.MonthlyUsers)
	assert.Equal(t, UsageValue{Min: 1000, Expected: 2000, Max: 5000}, *profile.MonthlyUsers)
	require.NotNil(t, profile.StorageGB)
	assert.Equal(t, UsageValue{Min: 5, Expected: 20, Max: 100}, *profile.StorageGB)
	assert.Nil(t, profile.RequestsPerUser)
}

func TestWithDefaultsDoesNotMutate(t *testing.T) {
	declared := &UsageProfile{MonthlyUsers: NewUsageValue(100)}
	defaulted := declared.WithDefaults()

	assert.Nil(t, declared.StorageGB)
	assert.NotNil(t, defaulted.StorageGB)
	assert.Equal(t, 100.0, defaulted.MonthlyUsers.Expected)
	assert.Equal(t, float64(DefaultRequestsPerUser), defaulted.RequestsPerUser.Expected)
}

func TestWithDefaultsNilReceiver(t *testing.T) {
	var declared *UsageProfile
	defaulted := declared.WithDefaults()
	require.NotNil(t, defaulted)
	assert.Equal(t, float64(DefaultMonthlyUsers), defaulted.MonthlyUsers.Expected)
}

func TestUsageLevelPairing(t *testing.T) {
	assert.Equal(t, ScenarioCostEffective, UsageLow.Scenario())
	assert.Equal(t, ScenarioStandard, UsageExpected.Scenario())
	assert.Equal(t, ScenarioHighPerformance, UsageHigh.Scenario())

	assert.Equal(t, ProfileCostEffective, UsageLow.Profile())
	assert.Equal(t, ProfileCostEffective, UsageExpected.Profile())
	assert.Equal(t, ProfileHighPerformance, UsageHigh.Profile())
}

func TestTierFromScale(t *testing.T) {
	tests := []struct {
		name  string
		scale string
		users float64
		want  SizingTier
	}{
		{"explicit small", "small", 1e9, TierSmall},
		{"explicit large", "large", 1, TierLarge},
		{"inferred small at boundary", "", 5000, TierSmall},
		{"inferred medium", "", 5001, TierMedium},
		{"inferred medium at boundary", "", 50000, TierMedium},
		{"inferred large", "", 50001, TierLarge},
		{"unknown scale falls back to inference", "gigantic", 100, TierSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFromScale(tt.scale, tt.users))
		})
	}
}

func TestParseProvider(t *testing.T) {
	assert.Equal(t, ProviderAWS, ParseProvider("aws"))
	assert.Equal(t, ProviderUnknown, ParseProvider("digitalocean"))
	assert.False(t, ProviderUnknown.IsValid())
}
