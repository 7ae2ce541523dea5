package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RiskTier classifies how volatile an asset class has historically been.
type RiskTier int

const (
	RiskTierVeryLow RiskTier = iota
	RiskTierLow
	RiskTierMedium
	RiskTierHigh
)

var riskTierNames = [...]string{
	RiskTierVeryLow: "Very Low",
	RiskTierLow:     "Low",
	RiskTierMedium:  "Medium",
	RiskTierHigh:    "High",
}

func (t RiskTier) String() string {
	if t < 0 || int(t) >= len(riskTierNames) {
		return fmt.Sprintf("RiskTier(%d)", int(t))
	}
	return riskTierNames[t]
}

// MarshalText renders the tier by its display name in JSON and YAML.
func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// AssetClass is a category of investment with its historical average annual return.
type AssetClass struct {
	ID                  string          `json:"id" yaml:"id"`
	Name                string          `json:"name" yaml:"name"`
	AverageAnnualReturn decimal.Decimal `json:"averageAnnualReturn" yaml:"average_annual_return"` // percent, 10 = 10%
	RiskTier            RiskTier        `json:"riskTier" yaml:"risk_tier"`
}

// RiskProfile scales an asset class return to model the investor's appetite for risk.
type RiskProfile struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Multiplier decimal.Decimal `json:"multiplier" yaml:"multiplier"`
}

// The reference tables are only reachable through copying accessors and lookups,
// so callers can never mutate the shared values.
var assetClasses = [...]AssetClass{
	{ID: "stocks", Name: "Stocks", AverageAnnualReturn: decimal.NewFromInt(10), RiskTier: RiskTierMedium},
	{ID: "crypto", Name: "Cryptocurrency", AverageAnnualReturn: decimal.NewFromInt(25), RiskTier: RiskTierHigh},
	{ID: "realestate", Name: "Real Estate", AverageAnnualReturn: decimal.NewFromInt(8), RiskTier: RiskTierLow},
	{ID: "bonds", Name: "Bonds", AverageAnnualReturn: decimal.NewFromInt(5), RiskTier: RiskTierVeryLow},
}

var riskProfiles = [...]RiskProfile{
	{ID: "conservative", Name: "Conservative", Multiplier: decimal.RequireFromString("0.7")},
	{ID: "moderate", Name: "Moderate", Multiplier: decimal.RequireFromString("1.0")},
	{ID: "aggressive", Name: "Aggressive", Multiplier: decimal.RequireFromString("1.3")},
}

// AssetClasses returns the asset class table in catalog order.
func AssetClasses() []AssetClass {
	out := make([]AssetClass, len(assetClasses))
	copy(out, assetClasses[:])
	return out
}

// RiskProfiles returns the risk profile table in catalog order.
func RiskProfiles() []RiskProfile {
	out := make([]RiskProfile, len(riskProfiles))
	copy(out, riskProfiles[:])
	return out
}

// LookupAssetClass resolves an asset class id. Ids are matched case-insensitively.
func LookupAssetClass(id string) (AssetClass, error) {
	key := normalizeID(id)
	for _, ac := range assetClasses {
		if ac.ID == key {
			return ac, nil
		}
	}
	return AssetClass{}, fmt.Errorf("%w: %q", ErrUnknownAssetClass, id)
}

// LookupRiskProfile resolves a risk profile id. Ids are matched case-insensitively.
func LookupRiskProfile(id string) (RiskProfile, error) {
	key := normalizeID(id)
	for _, rp := range riskProfiles {
		if rp.ID == key {
			return rp, nil
		}
	}
	return RiskProfile{}, fmt.Errorf("%w: %q", ErrUnknownRiskProfile, id)
}

// AssetClassIDs lists the known asset class ids in catalog order.
func AssetClassIDs() []string {
	ids := make([]string, 0, len(assetClasses))
	for _, ac := range assetClasses {
		ids = append(ids, ac.ID)
	}
	return ids
}

// RiskProfileIDs lists the known risk profile ids in catalog order.
func RiskProfileIDs() []string {
	ids := make([]string, 0, len(riskProfiles))
	for _, rp := range riskProfiles {
		ids = append(ids, rp.ID)
	}
	return ids
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
