package ledger

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
)

// Record validates the raw form input and appends one entry to the user's
// ledger. Validation errors come back untouched so the form can show them
// inline.
func (l *LedgerUseCase) Record(ctx context.Context, userID uint64, input usecase.RecordInput) (*entity.Transaction, error) {
	transaction, err := entity.NewTransaction(
		userID,
		input.Kind,
		input.Amount,
		input.Category,
		input.Description,
		input.Date,
		l.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := l.transactionRepo.Create(ctx, transaction); err != nil {
		l.logger.Error("Failed to record entry", map[string]any{
			"user_id":  userID,
			"kind":     string(transaction.Kind),
			"category": transaction.Category,
			"error":    err.Error(),
		})
		return nil, errs.NewLedgerError("record", userID, 0, err)
	}

	l.logger.Info("Entry recorded", map[string]any{
		"user_id":        userID,
		"transaction_id": transaction.ID,
		"kind":           string(transaction.Kind),
		"amount":         transaction.Amount(),
		"category":       transaction.Category,
		"date":           transaction.Date,
	})
	return transaction, nil
}
