package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ege-tracker/score-api/internal/models"
	"github.com/ege-tracker/score-api/internal/services"
)

// msgUserNotFound is the fixed message returned when a score is submitted
// for an unregistered telegram id. Bot adapters display it verbatim.
const msgUserNotFound = "User not found. Please register first."

// ScoreHandler handles score submission and listing requests
type ScoreHandler struct {
	studentService services.StudentService
}

// NewScoreHandler creates a new score handler with service injection
func NewScoreHandler(studentService services.StudentService) *ScoreHandler {
	return &ScoreHandler{
		studentService: studentService,
	}
}

// SubmitScore handles POST /scores/. Resubmitting a subject overwrites the
// stored score in place.
func (h *ScoreHandler) SubmitScore(c *gin.Context) {
	var req models.SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid score payload: " + err.Error()})
		return
	}

	entry, err := h.studentService.RecordScore(c.Request.Context(), req.TelegramID, req.Subject, *req.Score)
	if err != nil {
		if errors.Is(err, services.ErrNotRegistered) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save score"})
		return
	}

	c.JSON(http.StatusOK, entry.ToResponse())
}

// GetScores handles GET /scores/:telegram_id. Always responds 200 with a
// possibly empty array; an unknown telegram id is not an error here.
func (h *ScoreHandler) GetScores(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "telegram_id must be an integer"})
		return
	}

	entries, err := h.studentService.GetScores(c.Request.Context(), telegramID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list scores"})
		return
	}

	responses := make([]models.ScoreResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, entry.ToResponse())
	}

	c.JSON(http.StatusOK, responses)
}
