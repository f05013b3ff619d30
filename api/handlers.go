package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gcbaptista/go-boggle-engine/internal/analytics"
	"github.com/gcbaptista/go-boggle-engine/services"
)

// Engine is everything the HTTP layer needs from the solver.
type Engine interface {
	services.AsyncDictionaryManager
	services.JobManager
}

// API holds dependencies for API handlers.
type API struct {
	engine    Engine
	analytics *analytics.Service
	version   string
}

// NewAPI creates a new API handler structure.
func NewAPI(engine Engine, analyticsService *analytics.Service, version string) *API {
	return &API{
		engine:    engine,
		analytics: analyticsService,
		version:   version,
	}
}

// SetupRoutes defines all the API routes for the solver.
func SetupRoutes(router *gin.Engine, apiHandler *API) {
	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Job routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler)
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)
	}

	// Dictionary routes
	dictRoutes := router.Group("/dictionaries")
	{
		dictRoutes.POST("", apiHandler.CreateDictionaryHandler)
		dictRoutes.GET("", apiHandler.ListDictionariesHandler)
		dictRoutes.GET("/:name", apiHandler.GetDictionaryHandler)
		dictRoutes.DELETE("/:name", apiHandler.DeleteDictionaryHandler)
		dictRoutes.POST("/:name/rename", apiHandler.RenameDictionaryHandler)
		dictRoutes.GET("/:name/settings", apiHandler.GetSettingsHandler)
		dictRoutes.PATCH("/:name/settings", apiHandler.UpdateSettingsHandler)
		dictRoutes.PUT("/:name/words", apiHandler.AddWordsHandler)
		dictRoutes.GET("/:name/jobs", apiHandler.ListJobsHandler)

		dictRoutes.POST("/:name/_solve", apiHandler.SolveHandler)
		dictRoutes.POST("/:name/_score", apiHandler.ScoreHandler)
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"service":      "go-boggle-engine",
		"version":      api.version,
		"dictionaries": len(api.engine.ListDictionaries()),
		"timestamp":    time.Now().Unix(),
	})
}

// GetAnalyticsHandler returns the solve dashboard
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.analytics.GetDashboardData())
}
