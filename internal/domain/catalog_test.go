package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetClasses(t *testing.T) {
	classes := AssetClasses()
	require.Len(t, classes, 4)

	testCases := []struct {
		id     string
		name   string
		ret    int64
		tier   RiskTier
		tierTx string
	}{
		{"stocks", "Stocks", 10, RiskTierMedium, "Medium"},
		{"crypto", "Cryptocurrency", 25, RiskTierHigh, "High"},
		{"realestate", "Real Estate", 8, RiskTierLow, "Low"},
		{"bonds", "Bonds", 5, RiskTierVeryLow, "Very Low"},
	}
	for i, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			ac := classes[i]
			assert.Equal(t, tc.id, ac.ID)
			assert.Equal(t, tc.name, ac.Name)
			assert.True(t, ac.AverageAnnualReturn.Equal(decimal.NewFromInt(tc.ret)))
			assert.Equal(t, tc.tier, ac.RiskTier)
			assert.Equal(t, tc.tierTx, ac.RiskTier.String())
		})
	}
}

func TestRiskProfiles(t *testing.T) {
	profiles := RiskProfiles()
	require.Len(t, profiles, 3)
	assert.Equal(t, []string{"conservative", "moderate", "aggressive"}, RiskProfileIDs())
	assert.Equal(t, "0.7", profiles[0].Multiplier.String())
	assert.Equal(t, "1", profiles[1].Multiplier.String())
	assert.Equal(t, "1.3", profiles[2].Multiplier.String())
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	classes := AssetClasses()
	classes[0].Name = "Mutated"
	classes[0].AverageAnnualReturn = decimal.NewFromInt(99)

	profiles := RiskProfiles()
	profiles[1].Multiplier = decimal.NewFromInt(42)

	ac, err := LookupAssetClass("stocks")
	require.NoError(t, err)
	assert.Equal(t, "Stocks", ac.Name)
	assert.True(t, ac.AverageAnnualReturn.Equal(decimal.NewFromInt(10)))

	rp, err := LookupRiskProfile("moderate")
	require.NoError(t, err)
	assert.True(t, rp.Multiplier.Equal(decimal.NewFromInt(1)))
}

func TestLookups(t *testing.T) {
	ac, err := LookupAssetClass("  RealEstate ")
	require.NoError(t, err)
	assert.Equal(t, "realestate", ac.ID)

	_, err = LookupAssetClass("gold")
	assert.True(t, errors.Is(err, ErrUnknownAssetClass))
	assert.Contains(t, err.Error(), `"gold"`)

	rp, err := LookupRiskProfile("AGGRESSIVE")
	require.NoError(t, err)
	assert.Equal(t, "aggressive", rp.ID)

	_, err = LookupRiskProfile("")
	assert.True(t, errors.Is(err, ErrUnknownRiskProfile))
}

func TestRiskTierJSON(t *testing.T) {
	b, err := json.Marshal(AssetClasses()[3])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"bonds","name":"Bonds","averageAnnualReturn":5,"riskTier":"Very Low"}`, string(b))
	assert.Equal(t, "RiskTier(9)", RiskTier(9).String())
}
