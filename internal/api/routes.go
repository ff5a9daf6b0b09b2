package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ege-tracker/score-api/internal/database"
	"github.com/ege-tracker/score-api/internal/logger"
	"github.com/ege-tracker/score-api/internal/services"
	"github.com/ege-tracker/score-api/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config) error {
	// Create centralized services
	svcs := services.NewServices(db.DB, logger.New("service"))

	// Create handlers with service injection
	userHandler := NewUserHandler(svcs.Student)
	scoreHandler := NewScoreHandler(svcs.Student)
	healthHandler := NewHealthHandler(db)

	// Wire contract consumed by the chat-bot adapters
	r.POST("/users/", userHandler.RegisterUser)
	r.POST("/scores/", scoreHandler.SubmitScore)
	r.GET("/scores/:telegram_id", scoreHandler.GetScores)

	// Operational endpoints
	r.GET("/health", healthHandler.GetHealth)

	return nil
}
