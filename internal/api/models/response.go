package models

import "github.com/whatif/growth-simulator/internal/domain"

// SimulateResponse is a projection with its insights
type SimulateResponse struct {
	domain.SimulationResult
	Insights domain.Insights `json:"insights"`
}

// CatalogResponse lists the reference tables
type CatalogResponse struct {
	AssetClasses []domain.AssetClass  `json:"assetClasses"`
	RiskProfiles []domain.RiskProfile `json:"riskProfiles"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned by the API
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnknownAssetClass  = "UNKNOWN_ASSET_CLASS"
	CodeUnknownRiskProfile = "UNKNOWN_RISK_PROFILE"
	CodeInternalError      = "INTERNAL_ERROR"
)
