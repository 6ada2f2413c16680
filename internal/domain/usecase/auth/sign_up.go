package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

// SignUp validates the username and passcode, hashes the passcode and
// creates the account
func (a *AuthUseCase) SignUp(ctx context.Context, username, passcode string) (*entity.User, error) {
	username = strings.TrimSpace(username)

	if err := entity.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := entity.ValidatePasscode(passcode); err != nil {
		return nil, err
	}

	// Friendly pre-check; under a race the unique index has the last word
	// and the repository reports the same ErrDuplicateUsername.
	if _, err := a.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, errs.NewAuthError("sign up", username, errs.ErrDuplicateUsername)
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := a.hasher.Hash(passcode)
	if err != nil {
		a.logger.Error("Failed to hash passcode", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user := entity.NewUser(username, hash, a.timeProvider)
	if err := a.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateUsername) {
			return nil, errs.NewAuthError("sign up", username, errs.ErrDuplicateUsername)
		}
		a.logger.Error("Failed to create user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	a.logger.Info("User signed up", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}
