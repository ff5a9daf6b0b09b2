package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ege-tracker/score-api/internal/logger"
	"github.com/ege-tracker/score-api/internal/models"
	"github.com/ege-tracker/score-api/internal/repository"
)

// ErrNotRegistered is the domain outcome of submitting a score for a
// telegram id that was never registered. It is not a system fault; callers
// branch on it with errors.Is and the API layer maps it to a 404.
var ErrNotRegistered = errors.New("student not registered")

// Services contains all application services
type Services struct {
	Student StudentService
}

// StudentService defines the interface for student and score business logic
type StudentService interface {
	// Register creates a student for telegramID, or returns the existing
	// record unchanged when the id is already registered. Registration is
	// idempotent; stored names are never updated.
	Register(ctx context.Context, telegramID int64, firstName, lastName string) (*models.Student, error)

	// RecordScore upserts the score for (student, subject): a new subject
	// creates an entry, a resubmitted subject overwrites the value in
	// place. Returns ErrNotRegistered when telegramID is unknown.
	RecordScore(ctx context.Context, telegramID int64, subject string, score int) (*models.ScoreEntry, error)

	// GetScores returns all score entries for telegramID in insertion
	// order. Unknown ids yield an empty slice.
	GetScores(ctx context.Context, telegramID int64) ([]models.ScoreEntry, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, log logger.Logger) *Services {
	repos := repository.NewRepositories(db)

	return &Services{
		Student: newStudentService(repos, log),
	}
}

// NewStudentService creates a standalone student service
func NewStudentService(repos *repository.Repositories, log logger.Logger) StudentService {
	return newStudentService(repos, log)
}
