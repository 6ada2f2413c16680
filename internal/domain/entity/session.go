package entity

import (
	"time"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// SessionTokenLength is the hex length of a session token (32 random bytes)
const SessionTokenLength = 64

// Session is one signed-in browser. Expiry is checked on every
// authenticated request and expired rows are deleted on sight.
type Session struct {
	Token     string    // Opaque token stored in the cookie
	UserID    uint64    // Owning user
	CreatedAt time.Time // When the user signed in
	ExpiresAt time.Time // Hard cutoff; never extended
}

// NewSession creates a session for the given user with the configured TTL
func NewSession(token string, userID uint64, ttl coreport.Duration, timeProvider coreport.TimeProvider) *Session {
	now := timeProvider.Now()
	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl.Std()),
	}
}

// ExpiredAt reports whether the session is no longer valid at the given moment
func (s *Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
