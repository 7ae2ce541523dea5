package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/whatif/growth-simulator/internal/api/models"
	"github.com/whatif/growth-simulator/internal/calculation"
	"github.com/whatif/growth-simulator/internal/domain"
)

// SimulationHandler handles projection requests
type SimulationHandler struct {
	engine *calculation.ProjectionEngine
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(engine *calculation.ProjectionEngine) *SimulationHandler {
	return &SimulationHandler{engine: engine}
}

// Simulate handles POST /api/v1/simulate
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request := req.ToDomain()
	run, err := h.engine.RunScenario(domain.NamedRequest{Request: request})
	if err != nil {
		respondError(c, err, catalogDetails(err, request))
		return
	}

	c.JSON(http.StatusOK, models.SimulateResponse{
		SimulationResult: run.Result,
		Insights:         run.Insights,
	})
}

// SimulateBatch handles POST /api/v1/simulate/batch
func (h *SimulationHandler) SimulateBatch(c *gin.Context) {
	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	requests := req.ToDomain()
	seen := make(map[string]int, len(requests))
	for i, nr := range requests {
		if prev, dup := seen[nr.Name]; dup {
			respondError(c, fmt.Errorf("%w: scenario %d: name %q already used by scenario %d", domain.ErrInvalidRequest, i, nr.Name, prev),
				map[string]interface{}{"scenario": i, "name": nr.Name})
			return
		}
		seen[nr.Name] = i

		if err := nr.Request.Validate(); err != nil {
			details := catalogDetails(err, nr.Request)
			if details == nil {
				details = map[string]interface{}{}
			}
			details["scenario"] = i
			details["name"] = nr.Name
			respondError(c, fmt.Errorf("scenario %d (%s): %w", i, nr.Name, err), details)
			return
		}
	}

	batch, err := h.engine.RunScenarios(c.Request.Context(), requests)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, batch)
}

// Matrix handles GET /api/v1/matrix
func (h *SimulationHandler) Matrix(c *gin.Context) {
	var q models.MatrixQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	m, err := h.engine.ProjectMatrix(decimal.NewFromFloat(q.Principal), q.Years)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, m)
}
