package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/whatif/growth-simulator/internal/api/handlers"
	"github.com/whatif/growth-simulator/internal/api/middleware"
	"github.com/whatif/growth-simulator/internal/calculation"
	"github.com/whatif/growth-simulator/internal/config"
)

// Server is the HTTP front end of the projection engine.
type Server struct {
	router *gin.Engine
	server *http.Server
	log    zerolog.Logger
}

// NewRouter wires middleware and routes around the engine.
func NewRouter(engine *calculation.ProjectionEngine, settings *config.Settings, log zerolog.Logger) *gin.Engine {
	if settings.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS(settings.CORSOrigins))

	simulationHandler := handlers.NewSimulationHandler(engine)

	router.GET("/health", handlers.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/catalog", handlers.ListCatalog)
		api.POST("/simulate", simulationHandler.Simulate)
		api.POST("/simulate/batch", simulationHandler.SimulateBatch)
		api.GET("/matrix", simulationHandler.Matrix)
	}

	return router
}

// New creates a server listening on the configured port.
func New(engine *calculation.ProjectionEngine, settings *config.Settings, log zerolog.Logger) *Server {
	log = log.With().Str("component", "server").Logger()
	router := NewRouter(engine, settings, log)
	return &Server{
		router: router,
		log:    log,
		server: &http.Server{
			Addr:         settings.Addr(),
			Handler:      router,
			ReadTimeout:  settings.ReadTimeout,
			WriteTimeout: settings.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start blocks serving HTTP until the server is shut down.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
