package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whatif/growth-simulator/internal/api/models"
	"github.com/whatif/growth-simulator/internal/domain"
)

// ListCatalog handles GET /api/v1/catalog
func ListCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, models.CatalogResponse{
		AssetClasses: domain.AssetClasses(),
		RiskProfiles: domain.RiskProfiles(),
	})
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
