package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"session expired", ErrSessionExpired, CodeSessionExpired},
		{"email not confirmed", ErrEmailNotConfirmed, CodeEmailNotConfirmed},
		{"insufficient credits", ErrInsufficientCredits, CodeInsufficientCredits},
		{"forbidden", ErrForbidden, CodeForbidden},
		{"prompt not found", ErrPromptNotFound, CodePromptNotFound},
		{"profile not found", ErrProfileNotFound, CodeProfileNotFound},
		{"action in flight", ErrActionInFlight, CodeActionInFlight},
		{"invalid cost", ErrInvalidCost, CodeInvalidCost},
		{"invalid media type", ErrInvalidMediaType, CodeInvalidMediaType},
		{"invalid request", ErrInvalidRequest, CodeInvalidRequest},
		{"empty title", ErrEmptyTitle, CodeInvalidRequest},
		{"ledger unknown", ErrLedgerUnknown, CodeLedgerUnknown},
		{"unclassified", errors.New("something else"), CodeInternalServer},
		{"wrapped sentinel", fmt.Errorf("context: %w", ErrUnauthorized), CodeUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError("user-1", "prompt-1", 25, 5)

	assert.True(t, errors.Is(err, ErrInsufficientCredits))
	assert.True(t, IsInsufficientCreditsError(err))
	assert.Equal(t, CodeInsufficientCredits, ErrorCode(err))
	assert.Contains(t, err.Error(), "required 25")
	assert.Contains(t, err.Error(), "available 5")

	var detailed *InsufficientCreditsError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, 25, detailed.Required)
	assert.Equal(t, 5, detailed.LogFields()["available"])
}

func TestLedgerError(t *testing.T) {
	err := NewLedgerError("spend", "prompt-1", "request timed out", ErrLedgerUnknown)

	assert.True(t, errors.Is(err, ErrLedgerUnknown))
	assert.Equal(t, CodeLedgerUnknown, ErrorCode(err))

	var detailed *LedgerError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, "spend", detailed.Operation)
	assert.Equal(t, CodeLedgerUnknown, detailed.LogFields()["error_code"])
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsUnauthorizedError(ErrUnauthorized))
	assert.True(t, IsUnauthorizedError(ErrSessionExpired))
	assert.False(t, IsUnauthorizedError(ErrForbidden))

	assert.True(t, IsNotFoundError(ErrPromptNotFound))
	assert.True(t, IsNotFoundError(ErrProfileNotFound))
	assert.False(t, IsNotFoundError(ErrUnauthorized))
}
