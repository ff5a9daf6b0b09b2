package repository

import (
	"context"

	"github.com/ege-tracker/score-api/internal/models"
)

// StudentRepository defines the interface for student data access
type StudentRepository interface {
	// GetByTelegramID returns the student with the given telegram id, or
	// (nil, nil) when no such student exists. Absence is not an error.
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.Student, error)

	// Create inserts a new student and fills in the generated fields.
	// Returns a CONFLICT error when the telegram id is already taken.
	Create(ctx context.Context, student *models.Student) error
}

// ScoreRepository defines the interface for score data access
type ScoreRepository interface {
	// GetByStudentAndSubject returns the score entry for (student, subject),
	// or (nil, nil) when none exists. When called inside a transaction the
	// returned row is locked until the transaction ends.
	GetByStudentAndSubject(ctx context.Context, studentID int64, subject string) (*models.ScoreEntry, error)

	// Create inserts a new score entry and fills in the generated fields.
	// Returns a CONFLICT error when (student, subject) already exists.
	Create(ctx context.Context, entry *models.ScoreEntry) error

	// UpdateValue overwrites the score of an existing entry in place
	UpdateValue(ctx context.Context, entryID int64, score int) error

	// ListByTelegramID returns all score entries for the student with the
	// given telegram id, in insertion order. Unknown ids yield an empty
	// slice, not an error.
	ListByTelegramID(ctx context.Context, telegramID int64) ([]models.ScoreEntry, error)
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Student StudentRepository
	Score   ScoreRepository
	Tx      TransactionManager
}
