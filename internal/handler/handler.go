package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagination/internal/service"
	"github.com/rs/zerolog"
)

// Register mounts all public routes on the given engine.
// baseURL is the externally visible list path used in navigation links.
func Register(r *gin.Engine, repo Pinger, itemSvc service.ItemService, baseURL string, logger zerolog.Logger) {
	h := NewHealthHandler(repo)

	r.Use(RequestLogger(logger))

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewItemHandler(itemSvc, baseURL).Register(api)
	}
}
