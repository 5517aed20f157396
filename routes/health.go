package routes

import (
	"net/http"
	"time"

	"taskflow/taskflow/config"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes sets up the liveness endpoint. It never touches
// storage and always answers 200.
func RegisterHealthRoutes(router *gin.Engine, cfg config.Config) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.AppEnv,
		})
	})
}
