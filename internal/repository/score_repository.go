package repository

import (
	"context"
	"database/sql"
	"errors"

	apperrors "github.com/ege-tracker/score-api/internal/errors"
	"github.com/ege-tracker/score-api/internal/models"
)

// scoreRepository implements ScoreRepository
type scoreRepository struct {
	db dbExecutor
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db dbExecutor) ScoreRepository {
	return &scoreRepository{db: db}
}

// GetByStudentAndSubject retrieves the score entry for (student, subject).
// FOR UPDATE makes the row lock last for the rest of the transaction when
// called through transaction-bound repositories.
func (r *scoreRepository) GetByStudentAndSubject(ctx context.Context, studentID int64, subject string) (*models.ScoreEntry, error) {
	query := `
		SELECT id, user_id, subject, score, created_at, updated_at
		FROM scores WHERE user_id = $1 AND subject = $2
		FOR UPDATE
	`

	entry := &models.ScoreEntry{}
	err := r.db.QueryRowContext(ctx, query, studentID, subject).Scan(
		&entry.ID, &entry.StudentID, &entry.Subject, &entry.Score,
		&entry.CreatedAt, &entry.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.DatabaseError("failed to get score", err).WithOperation("GetByStudentAndSubject")
	}

	return entry, nil
}

// Create inserts a new score entry
func (r *scoreRepository) Create(ctx context.Context, entry *models.ScoreEntry) error {
	query := `
		INSERT INTO scores (user_id, subject, score)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		entry.StudentID, entry.Subject, entry.Score,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("score for subject already exists", err).WithOperation("CreateScore")
		}
		return apperrors.DatabaseError("failed to create score", err).WithOperation("CreateScore")
	}

	return nil
}

// UpdateValue overwrites the score of an existing entry
func (r *scoreRepository) UpdateValue(ctx context.Context, entryID int64, score int) error {
	query := `
		UPDATE scores SET score = $2, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, entryID, score)
	if err != nil {
		return apperrors.DatabaseError("failed to update score", err).WithOperation("UpdateScore")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to get rows affected", err).WithOperation("UpdateScore")
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("score entry not found", nil).WithOperation("UpdateScore")
	}

	return nil
}

// ListByTelegramID returns all score entries for a telegram id in insertion
// order. Unknown ids produce an empty slice.
func (r *scoreRepository) ListByTelegramID(ctx context.Context, telegramID int64) ([]models.ScoreEntry, error) {
	query := `
		SELECT s.id, s.user_id, s.subject, s.score, s.created_at, s.updated_at
		FROM scores s
		JOIN users u ON u.id = s.user_id
		WHERE u.telegram_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.QueryContext(ctx, query, telegramID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list scores", err).WithOperation("ListByTelegramID")
	}
	defer rows.Close()

	entries := make([]models.ScoreEntry, 0)
	for rows.Next() {
		var entry models.ScoreEntry
		if err := rows.Scan(
			&entry.ID, &entry.StudentID, &entry.Subject, &entry.Score,
			&entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			return nil, apperrors.DatabaseError("failed to scan score row", err).WithOperation("ListByTelegramID")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.DatabaseError("failed to iterate score rows", err).WithOperation("ListByTelegramID")
	}

	return entries, nil
}
