package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudcost/core/types"
)

func strPtr(s string) *string { return &s }

func TestNormalizeMapsResourceTypes(t *testing.T) {
	raw := &RawBreakdown{
		Currency: "USD",
		Projects: []RawProject{{
			Breakdown: RawProjectBreakdown{
				Resources: []RawResource{
					{Name: "aws_s3_bucket.object_storage", MonthlyCost: strPtr("2.30")},
					{Name: "aws_cloudfront_distribution.cdn", MonthlyCost: strPtr("8.50")},
				},
			},
		}},
	}

	costs, ok := NewResultNormalizer().Normalize(raw, types.ProviderAWS)
	require.True(t, ok)
	assert.Equal(t, 2, costs.MappedCount)
	assert.True(t, costs.Total.Equal(decimal.RequireFromString("10.80")), "got %s", costs.Total)
	assert.True(t, costs.ByService["object_storage"].Equal(decimal.RequireFromString("2.30")))
	assert.True(t, costs.ByService["cdn"].Equal(decimal.RequireFromString("8.50")))
}

func TestNormalizeDropsUnmappedResources(t *testing.T) {
	raw := &RawBreakdown{
		Projects: []RawProject{{
			Breakdown: RawProjectBreakdown{
				Resources: []RawResource{
					{Name: "aws_s3_bucket.object_storage", MonthlyCost: strPtr("5.00")},
					{Name: "aws_kms_key.secrets", MonthlyCost: strPtr("1.00")},
				},
			},
		}},
	}

	costs, ok := NewResultNormalizer().Normalize(raw, types.ProviderAWS)
	require.True(t, ok)
	assert.Equal(t, 1, costs.MappedCount)
	assert.True(t, costs.Total.Equal(decimal.RequireFromString("5.00")))
}

func TestNormalizeZeroMappedIsFailure(t *testing.T) {
	raw := &RawBreakdown{
		Projects: []RawProject{{
			Breakdown: RawProjectBreakdown{
				Resources: []RawResource{
					{Name: "aws_kms_key.secrets", MonthlyCost: strPtr("1.00")},
				},
			},
		}},
	}

	costs, ok := NewResultNormalizer().Normalize(raw, types.ProviderAWS)
	assert.False(t, ok)
	assert.Nil(t, costs)
}

func TestNormalizeComponentFallback(t *testing.T) {
	raw := &RawBreakdown{
		Projects: []RawProject{{
			Breakdown: RawProjectBreakdown{
				Resources: []RawResource{{
					Name: "aws_db_instance.relational_database",
					CostComponents: []RawCostComponent{
						{Name: "Database instance", MonthlyCost: strPtr("24.00")},
						{Name: "Storage", MonthlyCost: strPtr("6.00")},
					},
					SubResources: []RawResource{
						{Name: "backup", MonthlyCost: strPtr("1.50")},
					},
				}},
			},
		}},
	}

	costs, ok := NewResultNormalizer().Normalize(raw, types.ProviderAWS)
	require.True(t, ok)
	assert.True(t, costs.Total.Equal(decimal.RequireFromString("31.50")), "got %s", costs.Total)
}

func TestNormalizeAggregatesSameClass(t *testing.T) {
	raw := &RawBreakdown{
		Projects: []RawProject{{
			Breakdown: RawProjectBreakdown{
				Resources: []RawResource{
					{Name: "aws_s3_bucket.assets", MonthlyCost: strPtr("2.00")},
					{Name: "aws_s3_bucket.logs", MonthlyCost: strPtr("3.00")},
				},
			},
		}},
	}

	costs, ok := NewResultNormalizer().Normalize(raw, types.ProviderAWS)
	require.True(t, ok)
	assert.True(t, costs.ByService["object_storage"].Equal(decimal.RequireFromString("5.00")))
}
