package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskflow/taskflow/config"
	"taskflow/taskflow/database"
	"taskflow/taskflow/middleware"
	"taskflow/taskflow/routes"
	"taskflow/taskflow/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	// Schema creation is part of Setup; a failure here aborts startup instead
	// of serving requests against an uninitialized database.
	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	routes.RegisterHealthRoutes(router, cfg)
	routes.RegisterStaticRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	routes.RegisterTaskRoutes(api, db, services.TaskServiceInstance)
	routes.RegisterStatsRoutes(api, db, services.TaskServiceInstance)

	routes.RegisterNoRoute(router)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Printf("TaskFlow backend %s running on port %s", routes.BackendVersion, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop accepting new work, drain in-flight requests, then release the pool.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	db.Close()
	log.Println("Database pool closed")
}
