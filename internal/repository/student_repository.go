package repository

import (
	"context"
	"database/sql"
	"errors"

	apperrors "github.com/ege-tracker/score-api/internal/errors"
	"github.com/ege-tracker/score-api/internal/models"
)

// studentRepository implements StudentRepository
type studentRepository struct {
	db dbExecutor
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db dbExecutor) StudentRepository {
	return &studentRepository{db: db}
}

// GetByTelegramID retrieves a student by telegram id
func (r *studentRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.Student, error) {
	query := `
		SELECT id, telegram_id, first_name, last_name, created_at
		FROM users WHERE telegram_id = $1
	`

	student := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, telegramID).Scan(
		&student.ID, &student.TelegramID, &student.FirstName, &student.LastName,
		&student.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.DatabaseError("failed to get student", err).WithOperation("GetByTelegramID")
	}

	return student, nil
}

// Create inserts a new student
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO users (telegram_id, first_name, last_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		student.TelegramID, student.FirstName, student.LastName,
	).Scan(&student.ID, &student.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("telegram id already registered", err).WithOperation("CreateStudent")
		}
		return apperrors.DatabaseError("failed to create student", err).WithOperation("CreateStudent")
	}

	return nil
}
