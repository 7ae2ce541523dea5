package models

import (
	"github.com/shopspring/decimal"
	"github.com/whatif/growth-simulator/internal/domain"
)

// SimulateRequest is the body of POST /api/v1/simulate
type SimulateRequest struct {
	Principal   float64 `json:"principal" binding:"gt=0"`
	Years       int     `json:"years" binding:"min=1,max=30"`
	AssetClass  string  `json:"assetClass" binding:"required"`
	RiskProfile string  `json:"riskProfile" binding:"required"`
}

// ToDomain converts the wire request into an engine request.
func (r SimulateRequest) ToDomain() domain.SimulationRequest {
	return domain.SimulationRequest{
		Principal:     decimal.NewFromFloat(r.Principal),
		Years:         r.Years,
		AssetClassID:  r.AssetClass,
		RiskProfileID: r.RiskProfile,
	}
}

// NamedSimulateRequest is one scenario of a batch request
type NamedSimulateRequest struct {
	Name string `json:"name" binding:"required"`
	SimulateRequest
}

// BatchRequest is the body of POST /api/v1/simulate/batch
type BatchRequest struct {
	Scenarios []NamedSimulateRequest `json:"scenarios" binding:"required,min=1,dive"`
}

// ToDomain converts every scenario, keeping input order.
func (r BatchRequest) ToDomain() []domain.NamedRequest {
	out := make([]domain.NamedRequest, 0, len(r.Scenarios))
	for _, s := range r.Scenarios {
		out = append(out, domain.NamedRequest{Name: s.Name, Request: s.ToDomain()})
	}
	return out
}

// MatrixQuery holds the query parameters of GET /api/v1/matrix
type MatrixQuery struct {
	Principal float64 `form:"principal" binding:"gt=0"`
	Years     int     `form:"years" binding:"min=1,max=30"`
}
