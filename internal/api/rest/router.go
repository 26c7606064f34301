package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/palemoky/prosody-scorer/internal/api/middleware"
	"github.com/palemoky/prosody-scorer/internal/api/rest/handler"
	"github.com/palemoky/prosody-scorer/internal/config"
	"github.com/palemoky/prosody-scorer/internal/store"
)

// SetupRouter sets up the Gin router with all routes
func SetupRouter(cfg *config.Config, db *store.DB, repo *store.Repository) *gin.Engine {
	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(middleware.CORS())

	// Rate limiting middleware
	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(rateLimiter.Middleware())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.HealthHandler(db))
		v1.GET("/stats", handler.StatsHandler(repo))
		v1.POST("/score", handler.ScoreHandler())
	}

	return router
}
