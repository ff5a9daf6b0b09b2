package models

import "time"

// Student represents a registered student, keyed by the chat-platform id
type Student struct {
	ID         int64     `json:"id" db:"id"`
	TelegramID int64     `json:"telegram_id" db:"telegram_id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	CreatedAt  time.Time `json:"-" db:"created_at"`
}

// RegisterRequest represents a student registration request
type RegisterRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
}

// StudentResponse is the wire representation of a registered student
type StudentResponse struct {
	ID         int64  `json:"id"`
	TelegramID int64  `json:"telegram_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// ToResponse converts a student to its wire representation
func (s *Student) ToResponse() StudentResponse {
	return StudentResponse{
		ID:         s.ID,
		TelegramID: s.TelegramID,
		FirstName:  s.FirstName,
		LastName:   s.LastName,
	}
}
