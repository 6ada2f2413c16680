package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/model"
)

// SessionRepository implements the session persistence port using GORM
type SessionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(db *gorm.DB, logger coreport.Logger) *SessionRepository {
	return &SessionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *SessionRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrSessionNotFound
	}

	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a new session row
func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionModel := &model.Session{
		Token:     session.Token,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}

	result := r.db.WithContext(ctx).Create(sessionModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating session", result.Error)
	}
	return nil
}

// GetByToken resolves a cookie token to its session
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	var sessionModel model.Session
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&sessionModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting session", result.Error)
	}

	return &entity.Session{
		Token:     sessionModel.Token,
		UserID:    sessionModel.UserID,
		CreatedAt: sessionModel.CreatedAt,
		ExpiresAt: sessionModel.ExpiresAt,
	}, nil
}

// Delete removes one session. Deleting an absent token is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting session", result.Error)
	}
	return nil
}

// DeleteByUser removes every session of a user except the given token.
// An empty exceptToken removes them all.
func (r *SessionRepository) DeleteByUser(ctx context.Context, userID uint64, exceptToken string) (int64, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if exceptToken != "" {
		query = query.Where("token <> ?", exceptToken)
	}

	result := query.Delete(&model.Session{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("revoking sessions", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Debug("Sessions revoked", map[string]any{
			"user_id": userID,
			"count":   result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}

// DeleteExpired removes sessions whose expiry is at or before now
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.Session{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("pruning expired sessions", result.Error)
	}
	return result.RowsAffected, nil
}
