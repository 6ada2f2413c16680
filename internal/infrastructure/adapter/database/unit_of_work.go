package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/persistence"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions.
// The transaction rides in the context, so repositories handed out by
// Users/Sessions inside Execute all share it.
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
	}
}

// Execute runs fn inside a single database transaction. Returning an error
// rolls everything back; a panic does too before re-raising.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, tx))
	})
	if err != nil {
		u.logger.Debug("Transaction rolled back", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// Users returns a user repository bound to the transaction in ctx,
// or to the base connection when ctx carries none
func (u *UnitOfWork) Users(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// Sessions returns a session repository bound to the transaction in ctx,
// or to the base connection when ctx carries none
func (u *UnitOfWork) Sessions(ctx context.Context) persistence.SessionRepository {
	return repository.NewSessionRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
