package api

import (
	"github.com/gin-gonic/gin"

	"github.com/benloeffel/dns-compare/internal/api/handlers"
	"github.com/benloeffel/dns-compare/internal/api/middleware"
	"github.com/benloeffel/dns-compare/internal/config"
)

// RegisterRoutes wires the API endpoints. The health endpoint stays open;
// everything else sits behind the API key when one is configured.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	open := r.Group("/api/v1")
	open.GET("/health", h.Health)

	protected := r.Group("/api/v1")
	if cfg != nil && cfg.API.APIKey != "" {
		protected.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	protected.GET("/stats", h.Stats)
	protected.GET("/runs", h.ListRuns)
	protected.GET("/runs/:id", h.GetRun)
}
