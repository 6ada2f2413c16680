package auth

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

// ChangePasscode verifies the current passcode, stores the hash of the new
// one and revokes every other session of the user in the same database
// transaction. The session identified by keepToken stays alive so the
// browser doing the change is not logged out.
func (a *AuthUseCase) ChangePasscode(ctx context.Context, userID uint64, currentPasscode, newPasscode, keepToken string) error {
	if err := entity.ValidatePasscode(newPasscode); err != nil {
		return err
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !a.hasher.Compare(user.PasscodeHash, currentPasscode) {
		a.logger.Warn("Passcode change rejected", map[string]any{"user_id": userID})
		return errs.NewAuthError("passcode change", user.Username, errs.ErrInvalidCredentials)
	}

	hash, err := a.hasher.Hash(newPasscode)
	if err != nil {
		a.logger.Error("Failed to hash passcode", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return errs.ErrInternalServer
	}

	return a.unitOfWork.Execute(ctx, func(txCtx context.Context) error {
		user.SetPasscodeHash(hash, a.timeProvider)
		if err := a.unitOfWork.Users(txCtx).Update(txCtx, user); err != nil {
			return err
		}

		revoked, err := a.unitOfWork.Sessions(txCtx).DeleteByUser(txCtx, userID, keepToken)
		if err != nil {
			return err
		}

		a.logger.Info("Passcode changed", map[string]any{
			"user_id":          userID,
			"revoked_sessions": revoked,
		})
		return nil
	})
}
