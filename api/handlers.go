// Package api exposes the HTTP serving layer: the search endpoint, corpus
// statistics, the embedded web UI, and the metrics scrape endpoint. It owns
// all user-facing formatting and status codes; ranking semantics live in the
// engine it wraps.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textsift/textsift/internal/metrics"
	"github.com/textsift/textsift/services"
)

// API holds dependencies for the HTTP handlers: the read-only index handle
// and the metrics collectors.
type API struct {
	accessor services.IndexAccessor
	metrics  *metrics.Metrics
}

// NewAPI creates a new API handler structure. metrics may be nil when the
// scrape endpoint is disabled.
func NewAPI(accessor services.IndexAccessor, m *metrics.Metrics) *API {
	return &API{
		accessor: accessor,
		metrics:  m,
	}
}

// SetupRoutes defines all HTTP routes for the search server.
func SetupRoutes(router *gin.Engine, accessor services.IndexAccessor, m *metrics.Metrics) {
	apiHandler := NewAPI(accessor, m)

	router.Use(CORSMiddleware())
	if m != nil {
		router.Use(MetricsMiddleware(m))
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/api/stats", apiHandler.StatsHandler)
	router.POST("/api/search", apiHandler.SearchHandler)

	registerStaticRoutes(router)
}

// HealthCheckHandler reports liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatsHandler reports corpus statistics for the loaded index.
func (api *API) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"document_count": api.accessor.DocumentCount(),
	})
}
