package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ege-tracker/score-api/internal/api"
	"github.com/ege-tracker/score-api/internal/database"
	"github.com/ege-tracker/score-api/internal/logger"
	"github.com/ege-tracker/score-api/internal/middleware"
	"github.com/ege-tracker/score-api/pkg/config"
)

func main() {
	log := logger.New("server")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL, "migrations"); err != nil {
		log.Fatal("Failed to run migrations", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(logger.New("http")))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestGuardMiddleware(cfg.MaxRequestSize))
	r.Use(middleware.TimeoutMiddleware(cfg.RequestTimeout))
	r.Use(gin.Recovery())

	// Setup API routes
	if err := api.SetupRoutes(r, db, cfg); err != nil {
		log.Fatal("Failed to setup API routes", err)
	}

	log.Info("Server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", err)
	}
}
