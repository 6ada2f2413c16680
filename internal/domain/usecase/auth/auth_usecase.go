package auth

import (
	"context"
	"errors"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/persistence"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
)

// AuthUseCase handles signup, sign-in, sessions and passcode changes
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	sessionRepo  persistence.SessionRepository
	unitOfWork   persistence.UnitOfWork
	hasher       coreport.PasscodeHasher
	tokens       coreport.TokenGenerator
	sessionTTL   coreport.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	sessionRepo persistence.SessionRepository,
	unitOfWork persistence.UnitOfWork,
	hasher coreport.PasscodeHasher,
	tokens coreport.TokenGenerator,
	sessionTTL coreport.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		unitOfWork:   unitOfWork,
		hasher:       hasher,
		tokens:       tokens,
		sessionTTL:   sessionTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Authenticate resolves a session token to its user and session
func (a *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, *entity.Session, error) {
	if token == "" {
		return nil, nil, errs.ErrSessionNotFound
	}

	session, err := a.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	if session.ExpiredAt(a.timeProvider.Now()) {
		if err := a.sessionRepo.Delete(ctx, token); err != nil {
			a.logger.Warn("Failed to remove expired session", map[string]any{
				"user_id": session.UserID,
				"error":   err.Error(),
			})
		}
		return nil, nil, errs.ErrSessionExpired
	}

	user, err := a.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		// A session pointing at a deleted user is as good as no session
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, nil, errs.ErrSessionNotFound
		}
		return nil, nil, err
	}

	return user, session, nil
}

// SignOut closes the session. Unknown tokens are ignored so the operation
// stays idempotent.
func (a *AuthUseCase) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := a.sessionRepo.Delete(ctx, token); err != nil {
		a.logger.Error("Failed to delete session", map[string]any{"error": err.Error()})
		return err
	}

	a.logger.Info("User signed out", nil)
	return nil
}

// openSession creates and stores a fresh session for the user
func (a *AuthUseCase) openSession(ctx context.Context, userID uint64) (*entity.Session, error) {
	token, err := a.tokens.Generate()
	if err != nil {
		a.logger.Error("Failed to generate session token", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	session := entity.NewSession(token, userID, a.sessionTTL, a.timeProvider)
	if err := a.sessionRepo.Create(ctx, session); err != nil {
		a.logger.Error("Failed to store session", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return session, nil
}
