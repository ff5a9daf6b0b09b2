package models

import "time"

// ScoreEntry represents one exam score, unique per (student, subject).
// Resubmitting a subject overwrites the value in place; no history is kept.
type ScoreEntry struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"user_id" db:"user_id"`
	Subject   string    `json:"subject" db:"subject"`
	Score     int       `json:"score" db:"score"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// SubmitScoreRequest represents a score submission request. Score is a
// pointer so that a submitted zero survives the required check.
type SubmitScoreRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	Score      *int   `json:"score" binding:"required"`
}

// ScoreResponse is the wire representation of a score entry
type ScoreResponse struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
}

// ToResponse converts a score entry to its wire representation
func (e *ScoreEntry) ToResponse() ScoreResponse {
	return ScoreResponse{
		Subject: e.Subject,
		Score:   e.Score,
	}
}
