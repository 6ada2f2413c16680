package persistence

import (
	"context"
	"time"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// SessionRepository defines essential methods to interact with sign-in
// sessions
type SessionRepository interface {
	// Create inserts a new session row
	//
	// Possible errors:
	// - ErrConstraintViolation: If the token collides or the user is gone
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, session *entity.Session) error

	// GetByToken resolves a cookie token to its session
	//
	// Possible errors:
	// - ErrSessionNotFound: If no such token exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByToken(ctx context.Context, token string) (*entity.Session, error)

	// Delete removes one session. Deleting an absent token is not an error
	// so sign-out stays idempotent.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	Delete(ctx context.Context, token string) error

	// DeleteByUser removes every session of a user except the given token
	// (pass an empty token to remove them all). Used when the passcode
	// changes.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	DeleteByUser(ctx context.Context, userID uint64, exceptToken string) (int64, error)

	// DeleteExpired removes sessions whose expiry is at or before now.
	// Run once at startup; expired sessions hit during authentication are
	// removed individually on sight.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
