package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4001
	CodeInvalidCost         = 4002
	CodeInvalidMediaType    = 4003
	CodeUnauthorized        = 4010
	CodeSessionExpired      = 4011
	CodeEmailNotConfirmed   = 4012
	CodeInsufficientCredits = 4021
	CodeForbidden           = 4030
	CodePromptNotFound      = 4040
	CodeProfileNotFound     = 4041
	CodeActionInFlight      = 4290

	// 5xxx - Server/ambiguous errors
	CodeInternalServer = 5000
	CodeLedgerUnknown  = 5001
)

// Base error types
var (
	// ErrUnauthorized is returned when an action requires a signed-in user
	ErrUnauthorized = errors.New("no active session")

	// ErrSessionExpired is returned when a restored access token is past its expiry
	ErrSessionExpired = errors.New("session expired")

	// ErrEmailNotConfirmed is returned when sign-in is rejected pending email verification
	ErrEmailNotConfirmed = errors.New("email not confirmed")

	// ErrInsufficientCredits is returned when the ledger rejects a spend for lack of funds
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrLedgerUnknown is returned when a ledger call ends in an ambiguous state.
	// The caller must not assume the mutation happened or failed.
	ErrLedgerUnknown = errors.New("ledger outcome unknown")

	// ErrActionInFlight is returned when a spend or claim is invoked while one is outstanding
	ErrActionInFlight = errors.New("action already in flight")

	// ErrClaimNotReady is returned when a reward claim arrives before the countdown finished
	ErrClaimNotReady = errors.New("reward not claimable yet")

	// ErrAlreadyClaimed is returned when a reward for the current watch session was already claimed
	ErrAlreadyClaimed = errors.New("reward already claimed")

	// ErrForbidden is returned when a non-admin calls an admin-only operation
	ErrForbidden = errors.New("operation requires admin role")

	// ErrPromptNotFound is returned when the requested prompt doesn't exist
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrProfileNotFound is returned when no profile row exists for the user
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidPromptID is returned when a prompt ID is empty or malformed
	ErrInvalidPromptID = errors.New("prompt ID cannot be empty")

	// ErrInvalidUserID is returned when a user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidCost is returned when a prompt cost is zero or negative
	ErrInvalidCost = errors.New("cost must be positive")

	// ErrNegativeCredits is returned when a profile snapshot carries a negative balance
	ErrNegativeCredits = errors.New("credits cannot be negative")

	// ErrEmptyTitle is returned when a prompt is created without a title
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyPromptText is returned when a prompt is created without sellable text
	ErrEmptyPromptText = errors.New("prompt text cannot be empty")

	// ErrInvalidMediaType is returned when the media type is not image, video or text
	ErrInvalidMediaType = errors.New("invalid media type")

	// ErrClipboardUnavailable is returned when both the primary clipboard and
	// every fallback copier failed
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when the platform row store is unreachable
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrSessionExpired):
		return CodeSessionExpired
	case errors.Is(err, ErrEmailNotConfirmed):
		return CodeEmailNotConfirmed
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrPromptNotFound):
		return CodePromptNotFound
	case errors.Is(err, ErrProfileNotFound):
		return CodeProfileNotFound
	case errors.Is(err, ErrActionInFlight):
		return CodeActionInFlight
	case errors.Is(err, ErrInvalidCost):
		return CodeInvalidCost
	case errors.Is(err, ErrInvalidMediaType):
		return CodeInvalidMediaType
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidPromptID),
		errors.Is(err, ErrInvalidUserID), errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrEmptyPromptText):
		return CodeInvalidRequest
	case errors.Is(err, ErrLedgerUnknown):
		return CodeLedgerUnknown
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError carries the ledger's required/available figures so
// the recovery flow can tell the user exactly how short they are
type InsufficientCreditsError struct {
	UserID    string
	PromptID  string
	Required  int
	Available int
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %s on prompt %s: required %d, available %d",
		e.UserID, e.PromptID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"prompt_id":  e.PromptID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID, promptID string, required, available int) error {
	return &InsufficientCreditsError{
		UserID:    userID,
		PromptID:  promptID,
		Required:  required,
		Available: available,
	}
}

// LedgerError represents an ambiguous or failed remote ledger call. It wraps
// ErrLedgerUnknown so callers can match the whole class with errors.Is.
type LedgerError struct {
	Operation string
	PromptID  string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed (prompt: %s): %s - %v",
		e.Operation, e.PromptID, e.Message, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"operation":  e.Operation,
		"prompt_id":  e.PromptID,
		"message":    e.Message,
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(operation, promptID, message string, err error) error {
	return &LedgerError{
		Operation: operation,
		PromptID:  promptID,
		Message:   message,
		Err:       err,
	}
}

// IsInsufficientCreditsError checks if the error is related to insufficient credits
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsUnauthorizedError checks if the error means there is no usable session
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrSessionExpired)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrPromptNotFound) || errors.Is(err, ErrProfileNotFound)
}
