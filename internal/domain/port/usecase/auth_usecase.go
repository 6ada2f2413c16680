package usecase

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// AuthUseCase defines methods for signup, sign-in and session handling
type AuthUseCase interface {
	// SignUp validates the username and passcode, hashes the passcode and
	// creates the account. Returns ErrDuplicateUsername for taken names.
	SignUp(ctx context.Context, username, passcode string) (*entity.User, error)

	// SignIn verifies credentials and opens a session. Unknown usernames
	// and wrong passcodes both return ErrInvalidCredentials.
	SignIn(ctx context.Context, username, passcode string) (*entity.User, *entity.Session, error)

	// Authenticate resolves a session token to its user. Expired sessions
	// are deleted on sight and reported as ErrSessionExpired.
	Authenticate(ctx context.Context, token string) (*entity.User, *entity.Session, error)

	// SignOut closes the session. Unknown tokens are ignored.
	SignOut(ctx context.Context, token string) error

	// ChangePasscode verifies the current passcode, stores the hash of the
	// new one and revokes every other session of the user. The session
	// identified by keepToken survives.
	ChangePasscode(ctx context.Context, userID uint64, currentPasscode, newPasscode, keepToken string) error
}
