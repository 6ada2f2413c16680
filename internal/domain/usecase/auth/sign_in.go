package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

// SignIn verifies credentials and opens a session. Unknown usernames,
// malformed input and wrong passcodes all collapse into
// ErrInvalidCredentials so accounts cannot be enumerated.
func (a *AuthUseCase) SignIn(ctx context.Context, username, passcode string) (*entity.User, *entity.Session, error) {
	username = strings.TrimSpace(username)

	if entity.ValidateUsername(username) != nil || entity.ValidatePasscode(passcode) != nil {
		return nil, nil, errs.ErrInvalidCredentials
	}

	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, nil, errs.ErrInvalidCredentials
		}
		a.logger.Error("Failed to look up user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, nil, err
	}

	if !a.hasher.Compare(user.PasscodeHash, passcode) {
		a.logger.Warn("Sign-in rejected", map[string]any{"username": username})
		return nil, nil, errs.ErrInvalidCredentials
	}

	session, err := a.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Info("User signed in", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, session, nil
}
