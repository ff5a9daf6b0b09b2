package services

import (
	"context"
	"fmt"

	apperrors "github.com/ege-tracker/score-api/internal/errors"
	"github.com/ege-tracker/score-api/internal/logger"
	"github.com/ege-tracker/score-api/internal/models"
	"github.com/ege-tracker/score-api/internal/repository"
)

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	repos *repository.Repositories
	log   logger.Logger
}

// newStudentService creates a new student service implementation
func newStudentService(repos *repository.Repositories, log logger.Logger) StudentService {
	return &studentServiceImpl{
		repos: repos,
		log:   log,
	}
}

// Register registers a student, returning the existing record when the
// telegram id is already taken
func (s *studentServiceImpl) Register(ctx context.Context, telegramID int64, firstName, lastName string) (*models.Student, error) {
	existing, err := s.repos.Student.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}

	if existing != nil {
		s.log.Info("student already registered", "telegram_id", telegramID)
		return existing, nil
	}

	student := &models.Student{
		TelegramID: telegramID,
		FirstName:  firstName,
		LastName:   lastName,
	}

	if err := s.repos.Student.Create(ctx, student); err != nil {
		if apperrors.IsConflict(err) {
			// Lost a registration race; the winner's record is the answer
			winner, lookupErr := s.repos.Student.GetByTelegramID(ctx, telegramID)
			if lookupErr == nil && winner != nil {
				return winner, nil
			}
			return nil, fmt.Errorf("failed to resolve registration race: %w", err)
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.log.Info("registered new student", "telegram_id", telegramID, "id", student.ID)
	return student, nil
}

// RecordScore upserts the score for (student, subject). The check-then-act
// runs inside one transaction; when a concurrent first insert for the same
// subject wins the race, the transaction fails with a conflict and the whole
// upsert is retried exactly once, finding the winner's row and updating it.
func (s *studentServiceImpl) RecordScore(ctx context.Context, telegramID int64, subject string, score int) (*models.ScoreEntry, error) {
	student, err := s.repos.Student.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}

	if student == nil {
		s.log.Warn("score submitted for unregistered student", "telegram_id", telegramID)
		return nil, ErrNotRegistered
	}

	entry, err := s.upsertScore(ctx, student.ID, subject, score)
	if apperrors.IsConflict(err) {
		s.log.Warn("score insert raced, retrying as update", "telegram_id", telegramID, "subject", subject)
		entry, err = s.upsertScore(ctx, student.ID, subject, score)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record score: %w", err)
	}

	s.log.Info("recorded score", "telegram_id", telegramID, "subject", subject, "score", score)
	return entry, nil
}

// upsertScore performs one transactional insert-or-update attempt
func (s *studentServiceImpl) upsertScore(ctx context.Context, studentID int64, subject string, score int) (*models.ScoreEntry, error) {
	var entry *models.ScoreEntry

	err := s.repos.Tx.WithTransaction(ctx, func(repos *repository.Repositories) error {
		existing, err := repos.Score.GetByStudentAndSubject(ctx, studentID, subject)
		if err != nil {
			return err
		}

		if existing != nil {
			if err := repos.Score.UpdateValue(ctx, existing.ID, score); err != nil {
				return err
			}
			existing.Score = score
			entry = existing
			return nil
		}

		entry = &models.ScoreEntry{
			StudentID: studentID,
			Subject:   subject,
			Score:     score,
		}
		return repos.Score.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// GetScores returns all score entries for a telegram id
func (s *studentServiceImpl) GetScores(ctx context.Context, telegramID int64) ([]models.ScoreEntry, error) {
	entries, err := s.repos.Score.ListByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return entries, nil
}
