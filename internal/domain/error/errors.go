package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized handler responses
const (
	// 4xxx - Client errors
	CodeInvalidUsername     = 4001
	CodeInvalidPasscode     = 4002
	CodeInvalidAmount       = 4003
	CodeInvalidKind         = 4004
	CodeInvalidDate         = 4005
	CodeInvalidCategory     = 4006
	CodeInvalidDescription  = 4007
	CodeAmountTooLarge      = 4008
	CodeInvalidCredentials  = 4010
	CodeDuplicateUsername   = 4011
	CodeConstraintViolation = 4012
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodeSessionNotFound     = 4042
	CodeSessionExpired      = 4043

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidUsername is returned when a username fails length or alphabet checks
	ErrInvalidUsername = errors.New("username must be 3-32 characters of letters, digits, '_', '-' or '.'")

	// ErrInvalidPasscode is returned when a passcode is not exactly ten digits
	ErrInvalidPasscode = errors.New("passcode must be exactly 10 digits")

	// ErrInvalidAmount is returned when the amount format is invalid or not positive
	ErrInvalidAmount = errors.New("amount must be a positive number with at most two decimal places")

	// ErrAmountTooLarge is returned when the amount would overflow cents arithmetic
	ErrAmountTooLarge = errors.New("amount is too large")

	// ErrInvalidKind is returned when the entry kind is neither income nor expense
	ErrInvalidKind = errors.New("kind must be income or expense")

	// ErrInvalidDate is returned when a date is not a calendar date in YYYY-MM-DD form
	ErrInvalidDate = errors.New("date must be a calendar date in YYYY-MM-DD form")

	// ErrInvalidCategory is returned when a category is empty or too long
	ErrInvalidCategory = errors.New("category must be 1-40 characters")

	// ErrInvalidDescription is returned when a description exceeds the length limit
	ErrInvalidDescription = errors.New("description must be at most 200 characters")

	// ErrInvalidCredentials is returned when a username/passcode pair doesn't match.
	// Unknown usernames yield the same error so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid username or passcode")

	// ErrDuplicateUsername is returned when signing up with a taken username
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested entry doesn't exist
	// or belongs to another user
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSessionNotFound is returned when a session token resolves to nothing
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a session exists but its TTL has passed
	ErrSessionExpired = errors.New("session expired")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUsername):
		return CodeInvalidUsername
	case errors.Is(err, ErrInvalidPasscode):
		return CodeInvalidPasscode
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountTooLarge):
		return CodeAmountTooLarge
	case errors.Is(err, ErrInvalidKind):
		return CodeInvalidKind
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrInvalidDescription):
		return CodeInvalidDescription
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrDuplicateUsername):
		return CodeDuplicateUsername
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrSessionNotFound):
		return CodeSessionNotFound
	case errors.Is(err, ErrSessionExpired):
		return CodeSessionExpired
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// AuthError represents an error during signup, login or passcode change.
// It never carries the passcode itself.
type AuthError struct {
	Username string
	Op       string
	Err      error
}

// Error implements the error interface for AuthError
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s failed for %q: %v", e.Op, e.Username, e.Err)
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AuthError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "auth_error",
		"username":   e.Username,
		"op":         e.Op,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewAuthError creates a detailed auth error
func NewAuthError(op, username string, err error) error {
	return &AuthError{Username: username, Op: op, Err: err}
}

// LedgerError represents an error while recording or mutating ledger entries
type LedgerError struct {
	UserID        uint64
	TransactionID uint64
	Op            string
	Err           error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	if e.TransactionID != 0 {
		return fmt.Sprintf("ledger %s failed for user %d, transaction %d: %v",
			e.Op, e.UserID, e.TransactionID, e.Err)
	}
	return fmt.Sprintf("ledger %s failed for user %d: %v", e.Op, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "ledger_error",
		"user_id":    e.UserID,
		"op":         e.Op,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
	if e.TransactionID != 0 {
		fields["transaction_id"] = e.TransactionID
	}
	return fields
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(op string, userID, transactionID uint64, err error) error {
	return &LedgerError{UserID: userID, TransactionID: transactionID, Op: op, Err: err}
}

// IsValidationError checks if the error is any input-validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidUsername) ||
		errors.Is(err, ErrInvalidPasscode) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountTooLarge) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidDescription)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsAuthFailure checks if the error should bounce the browser to the login page
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrSessionExpired)
}
