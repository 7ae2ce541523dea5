package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/whatif/growth-simulator/internal/api/models"
	"github.com/whatif/growth-simulator/internal/domain"
)

// respondError maps domain errors onto the API error envelope.
func respondError(c *gin.Context, err error, details map[string]interface{}) {
	status, code := http.StatusInternalServerError, models.CodeInternalError
	switch {
	case errors.Is(err, domain.ErrUnknownAssetClass):
		status, code = http.StatusBadRequest, models.CodeUnknownAssetClass
	case errors.Is(err, domain.ErrUnknownRiskProfile):
		status, code = http.StatusBadRequest, models.CodeUnknownRiskProfile
	case errors.Is(err, domain.ErrInvalidRequest):
		status, code = http.StatusBadRequest, models.CodeInvalidRequest
	}
	_ = c.Error(err)
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
			Details: details,
		},
	})
}

// respondBindError reports binding failures, listing the offending fields when
// the validator produced them.
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	var details map[string]interface{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Namespace())
		}
		details = map[string]interface{}{"fields": fields}
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    models.CodeInvalidRequest,
			Message: err.Error(),
			Details: details,
		},
	})
}

// catalogDetails names the unresolved catalog id behind err, if any.
func catalogDetails(err error, req domain.SimulationRequest) map[string]interface{} {
	switch {
	case errors.Is(err, domain.ErrUnknownAssetClass):
		return map[string]interface{}{"assetClass": req.AssetClassID}
	case errors.Is(err, domain.ErrUnknownRiskProfile):
		return map[string]interface{}{"riskProfile": req.RiskProfileID}
	}
	return nil
}
