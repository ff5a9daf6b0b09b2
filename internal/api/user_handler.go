package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ege-tracker/score-api/internal/models"
	"github.com/ege-tracker/score-api/internal/services"
)

// UserHandler handles student registration requests
type UserHandler struct {
	studentService services.StudentService
}

// NewUserHandler creates a new user handler with service injection
func NewUserHandler(studentService services.StudentService) *UserHandler {
	return &UserHandler{
		studentService: studentService,
	}
}

// RegisterUser handles POST /users/. Registration is idempotent: an already
// registered telegram id returns the stored record unchanged.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration payload: " + err.Error()})
		return
	}

	student, err := h.studentService.Register(c.Request.Context(), req.TelegramID, req.FirstName, req.LastName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, student.ToResponse())
}
