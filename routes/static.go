package routes

import (
	"net/http"

	"taskflow/taskflow/web"

	"github.com/gin-gonic/gin"
)

// RegisterStaticRoutes serves the embedded single-page client from the same
// process as the API.
func RegisterStaticRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		page, err := web.Assets.ReadFile("index.html")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
	router.GET("/app.js", func(c *gin.Context) {
		script, err := web.Assets.ReadFile("app.js")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.Data(http.StatusOK, "application/javascript; charset=utf-8", script)
	})
}

// RegisterNoRoute answers unmatched paths with the API's generic 404 body.
func RegisterNoRoute(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
