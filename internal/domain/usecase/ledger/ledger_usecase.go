package ledger

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/persistence"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
)

// LedgerUseCase handles recording and browsing of ledger entries
type LedgerUseCase struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewLedgerUseCase creates a new ledger use case instance
func NewLedgerUseCase(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.LedgerUseCase {
	return &LedgerUseCase{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// List returns the user's entries, oldest first, narrowed by the filter
func (l *LedgerUseCase) List(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.Transaction, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := l.transactionRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		l.logger.Error("Failed to list entries", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return entries, nil
}

// Delete removes a single entry belonging to the user. Entries of other
// users are reported as not found, never as forbidden.
func (l *LedgerUseCase) Delete(ctx context.Context, userID, transactionID uint64) error {
	if err := l.transactionRepo.Delete(ctx, userID, transactionID); err != nil {
		if !errs.IsNotFoundError(err) {
			l.logger.Error("Failed to delete entry", map[string]any{
				"user_id":        userID,
				"transaction_id": transactionID,
				"error":          err.Error(),
			})
		}
		return errs.NewLedgerError("delete", userID, transactionID, err)
	}

	l.logger.Info("Entry deleted", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
	})
	return nil
}

// Clear removes every entry of the user and reports how many went.
// An already-empty ledger clears successfully with a zero count.
func (l *LedgerUseCase) Clear(ctx context.Context, userID uint64) (int64, error) {
	removed, err := l.transactionRepo.ClearByUser(ctx, userID)
	if err != nil {
		l.logger.Error("Failed to clear ledger", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return 0, errs.NewLedgerError("clear", userID, 0, err)
	}

	l.logger.Info("Ledger cleared", map[string]any{
		"user_id": userID,
		"removed": removed,
	})
	return removed, nil
}
