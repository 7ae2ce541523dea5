package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/whatif/growth-simulator/internal/api/models"
)

// ErrorHandler middleware recovers panics into the API error envelope.
// The panic value is logged, never returned to the client.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().
			Str("request_id", GetRequestID(c)).
			Str("panic", fmt.Sprint(recovered)).
			Msg("recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeInternalError,
				Message: "An unexpected error occurred",
			},
		})
	})
}
