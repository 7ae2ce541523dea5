package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Supported projection horizon for validated requests. The engine itself accepts any value.
const (
	MinYears = 1
	MaxYears = 30
)

// SimulationRequest carries the parameters of one What-If run.
type SimulationRequest struct {
	Principal     decimal.Decimal `json:"principal" yaml:"principal,omitempty"`
	Years         int             `json:"years" yaml:"years,omitempty"`
	AssetClassID  string          `json:"assetClass" yaml:"asset_class,omitempty"`
	RiskProfileID string          `json:"riskProfile" yaml:"risk_profile,omitempty"`
}

// Validate applies the input rules the presentation layer enforces before a run:
// positive principal, a horizon within [MinYears, MaxYears] and known catalog ids.
func (r SimulationRequest) Validate() error {
	if !r.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidRequest, r.Principal.String())
	}
	if r.Years < MinYears || r.Years > MaxYears {
		return fmt.Errorf("%w: years must be between %d and %d, got %d", ErrInvalidRequest, MinYears, MaxYears, r.Years)
	}
	if _, err := LookupAssetClass(r.AssetClassID); err != nil {
		return err
	}
	if _, err := LookupRiskProfile(r.RiskProfileID); err != nil {
		return err
	}
	return nil
}

// WithDefaults fills zero-valued fields from d.
func (r SimulationRequest) WithDefaults(d SimulationRequest) SimulationRequest {
	out := r
	if out.Principal.IsZero() {
		out.Principal = d.Principal
	}
	if out.Years == 0 {
		out.Years = d.Years
	}
	if out.AssetClassID == "" {
		out.AssetClassID = d.AssetClassID
	}
	if out.RiskProfileID == "" {
		out.RiskProfileID = d.RiskProfileID
	}
	return out
}
