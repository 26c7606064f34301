package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/palemoky/prosody-scorer/internal/errors"
	"github.com/palemoky/prosody-scorer/internal/store"
)

// HealthHandler handles health check requests
func HealthHandler(db *store.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB.DB()
		if err != nil {
			apiErr := apierrors.Internal("failed to get database connection")
			c.JSON(apiErr.HTTPStatus, gin.H{"status": "unhealthy", "error": apiErr})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			apiErr := apierrors.Internal("database connection failed")
			c.JSON(apiErr.HTTPStatus, gin.H{"status": "unhealthy", "error": apiErr})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	}
}

// StatsHandler reports how many scored poems are cached.
func StatsHandler(repo *store.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := repo.Count()
		if err != nil {
			apiErr := apierrors.Internal("failed to get statistics")
			c.JSON(apiErr.HTTPStatus, apiErr)
			return
		}

		c.JSON(http.StatusOK, gin.H{"cached_scores": n})
	}
}
