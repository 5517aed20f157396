package routes

import (
	"log"
	"net/http"
	"time"

	"taskflow/taskflow/database"
	"taskflow/taskflow/services"

	"github.com/gin-gonic/gin"
)

// BackendVersion is reported by the stats endpoint and the startup log line.
const BackendVersion = "1.0.0"

var startTime = time.Now()

func RegisterStatsRoutes(group *gin.RouterGroup, db *database.Database, taskService services.TaskServiceInterface) {
	group.GET("/stats", func(c *gin.Context) { GetStats(c, db, taskService) })
}

func GetStats(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	count, err := taskService.CountTasks(db)
	if err != nil {
		log.Printf("Error counting tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	version, err := db.Version()
	if err != nil {
		log.Printf("Error fetching database version: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task_count":       count,
		"database_version": version,
		"backend_version":  BackendVersion,
		"uptime":           time.Since(startTime).Seconds(),
	})
}
