package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the ledger persistence port using GORM.
// All aggregate views run as GROUP BY queries in SQLite rather than in Go.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a ledger entry to its database model
func (r *TransactionRepository) entityToModel(tx *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:            tx.ID,
		UserID:        tx.UserID,
		Kind:          string(tx.Kind),
		AmountInCents: tx.AmountInCents,
		Category:      tx.Category,
		Description:   tx.Description,
		Date:          tx.Date,
		CreatedAt:     tx.CreatedAt,
	}
}

// modelToEntity converts a database model to a ledger entry
func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:            txModel.ID,
		UserID:        txModel.UserID,
		Kind:          entity.TransactionKind(txModel.Kind),
		AmountInCents: txModel.AmountInCents,
		Category:      txModel.Category,
		Description:   txModel.Description,
		Date:          txModel.Date,
		CreatedAt:     txModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if r.errorClassifier.IsConstraintError(err) {
		r.logger.Warn("Constraint violation on ledger", map[string]any{
			"user_id":   userID,
			"operation": operation,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// scopedByFilter narrows a query to one user plus whatever filter fields
// are set. Date bounds are inclusive text comparisons.
func scopedByFilter(query *gorm.DB, userID uint64, filter entity.ListFilter) *gorm.DB {
	query = query.Where("user_id = ?", userID)
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", string(filter.Kind))
	}
	return query
}

// Create saves a new entry and fills its ID
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txModel := r.entityToModel(tx)

	result := r.db.WithContext(ctx).Create(txModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating entry", result.Error, tx.UserID)
	}

	tx.ID = txModel.ID
	return nil
}

// ListByUser returns the user's entries ordered by date then ID
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.Transaction, error) {
	var txModels []model.Transaction
	query := scopedByFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), userID, filter)
	result := query.Order("date ASC, id ASC").Find(&txModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing entries", result.Error, userID)
	}

	entries := make([]entity.Transaction, 0, len(txModels))
	for i := range txModels {
		entries = append(entries, r.modelToEntity(&txModels[i]))
	}
	return entries, nil
}

// Delete removes one entry of the given user
func (r *TransactionRepository) Delete(ctx context.Context, userID, transactionID uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&model.Transaction{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting entry", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// ClearByUser removes every entry of one user and reports how many went
func (r *TransactionRepository) ClearByUser(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Transaction{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("clearing ledger", result.Error, userID)
	}
	return result.RowsAffected, nil
}

// SumByKind aggregates the filtered entries into income/expense totals
// plus per-kind row counts, all in one GROUP BY query
func (r *TransactionRepository) SumByKind(ctx context.Context, userID uint64, filter entity.ListFilter) (*entity.Summary, error) {
	var rows []struct {
		Kind  string
		Count int64
		Total int64
	}

	query := scopedByFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), userID, filter)
	result := query.
		Select("kind, COUNT(*) AS count, COALESCE(SUM(amount_in_cents), 0) AS total").
		Group("kind").
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("summing by kind", result.Error, userID)
	}

	summary := &entity.Summary{}
	for _, row := range rows {
		summary.TransactionCount += row.Count
		switch entity.TransactionKind(row.Kind) {
		case entity.KindIncome:
			summary.IncomeCount = row.Count
			summary.TotalIncomeCents = row.Total
		case entity.KindExpense:
			summary.ExpenseCount = row.Count
			summary.TotalExpenseCents = row.Total
		}
	}
	summary.NetCents = summary.TotalIncomeCents - summary.TotalExpenseCents
	return summary, nil
}

// SumByCategory aggregates filtered expense entries per category, largest
// first. Ties break alphabetically so the order is stable.
func (r *TransactionRepository) SumByCategory(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.CategoryTotal, error) {
	var rows []struct {
		Category string
		Total    int64
	}

	query := scopedByFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), userID, filter)
	result := query.
		Where("kind = ?", string(entity.KindExpense)).
		Select("category, COALESCE(SUM(amount_in_cents), 0) AS total").
		Group("category").
		Order("total DESC, category ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("summing by category", result.Error, userID)
	}

	totals := make([]entity.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, entity.CategoryTotal{
			Category:      row.Category,
			AmountInCents: row.Total,
		})
	}
	return totals, nil
}

// SumByMonth aggregates filtered entries per YYYY-MM month, ascending.
// The month key is a substring of the date text, which the composite
// index on (user_id, date) still serves.
func (r *TransactionRepository) SumByMonth(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.MonthlyTotal, error) {
	var rows []struct {
		Month   string
		Income  int64
		Expense int64
	}

	query := scopedByFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), userID, filter)
	result := query.
		Select(
			"substr(date, 1, 7) AS month, "+
				"COALESCE(SUM(CASE WHEN kind = ? THEN amount_in_cents ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN kind = ? THEN amount_in_cents ELSE 0 END), 0) AS expense",
			string(entity.KindIncome), string(entity.KindExpense),
		).
		Group("month").
		Order("month ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("summing by month", result.Error, userID)
	}

	months := make([]entity.MonthlyTotal, 0, len(rows))
	for _, row := range rows {
		months = append(months, entity.MonthlyTotal{
			Month:        row.Month,
			IncomeCents:  row.Income,
			ExpenseCents: row.Expense,
			NetCents:     row.Income - row.Expense,
		})
	}
	return months, nil
}
