package entity

import (
	"time"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// Username and passcode shape limits
const (
	UsernameMinLength = 3
	UsernameMaxLength = 32
	// PasscodeLength is fixed: a passcode is always exactly ten digits
	PasscodeLength = 10
)

// User represents an account holder. Only the digest of the passcode is
// ever held here; the plaintext stays inside the hasher.
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique login name, case sensitive
	PasscodeHash string    // One-way digest of the passcode
	CreatedAt    time.Time // When the user signed up
	UpdatedAt    time.Time // When the user was last updated (passcode changes)
}

// NewUser creates a user ready for insertion. The username must already be
// validated and the passcode already hashed.
func NewUser(username, passcodeHash string, timeProvider coreport.TimeProvider) *User {
	now := timeProvider.Now()
	return &User{
		Username:     username,
		PasscodeHash: passcodeHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SetPasscodeHash replaces the stored digest after a passcode change
func (u *User) SetPasscodeHash(hash string, timeProvider coreport.TimeProvider) {
	u.PasscodeHash = hash
	u.UpdatedAt = timeProvider.Now()
}

// ValidateUsername checks length and alphabet. Usernames are stored as
// given; no case folding happens anywhere.
func ValidateUsername(username string) error {
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return errs.ErrInvalidUsername
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return errs.ErrInvalidUsername
		}
	}
	return nil
}

// ValidatePasscode enforces the fixed passcode shape: exactly ten ASCII digits
func ValidatePasscode(passcode string) error {
	if len(passcode) != PasscodeLength {
		return errs.ErrInvalidPasscode
	}
	for _, r := range passcode {
		if r < '0' || r > '9' {
			return errs.ErrInvalidPasscode
		}
	}
	return nil
}
