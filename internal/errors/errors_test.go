package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := DatabaseError("failed to get student", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DATABASE_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHasCodeSeesThroughWrapping(t *testing.T) {
	err := Conflict("telegram id already registered", nil)
	wrapped := fmt.Errorf("failed to create student: %w", err)

	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(errors.New("plain error")))
}

func TestWithOperationAndDetails(t *testing.T) {
	err := NotFound("score entry not found", nil).
		WithOperation("UpdateScore").
		WithDetails("entry id 42")

	assert.Equal(t, "UpdateScore", err.Operation)
	assert.Equal(t, "entry id 42", err.Details)
	assert.True(t, IsNotFound(err))
}
