package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/persistence"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
)

// ReportUseCase computes aggregate views over a user's ledger. All sums
// run in the database; percentages and averages are derived here with
// exact decimal arithmetic.
type ReportUseCase struct {
	transactionRepo persistence.TransactionRepository
	logger          coreport.Logger
}

// NewReportUseCase creates a new report use case instance
func NewReportUseCase(
	transactionRepo persistence.TransactionRepository,
	logger coreport.Logger,
) usecase.ReportUseCase {
	return &ReportUseCase{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Summarize returns income/expense totals and the row count
func (r *ReportUseCase) Summarize(ctx context.Context, userID uint64, filter entity.ListFilter) (*entity.Summary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	summary, err := r.transactionRepo.SumByKind(ctx, userID, filter)
	if err != nil {
		r.logger.Error("Failed to summarize ledger", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, errs.NewLedgerError("summarize", userID, 0, err)
	}

	return summary, nil
}

// ByCategory returns the expense breakdown per category, largest first.
// Each slice carries its share of the expense total as a percentage with
// one decimal place, so the slices of a non-empty breakdown sum to ~100.
func (r *ReportUseCase) ByCategory(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.CategoryTotal, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	totals, err := r.transactionRepo.SumByCategory(ctx, userID, filter)
	if err != nil {
		r.logger.Error("Failed to aggregate categories", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, errs.NewLedgerError("by_category", userID, 0, err)
	}

	fillPercentages(totals)
	return totals, nil
}

// ByMonth returns the per-month income/expense series, ascending
func (r *ReportUseCase) ByMonth(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.MonthlyTotal, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	months, err := r.transactionRepo.SumByMonth(ctx, userID, filter)
	if err != nil {
		r.logger.Error("Failed to aggregate months", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, errs.NewLedgerError("by_month", userID, 0, err)
	}

	return months, nil
}

// fillPercentages computes each category's share of the expense total.
// An empty or all-zero breakdown keeps zero percentages.
func fillPercentages(totals []entity.CategoryTotal) {
	var totalCents int64
	for i := range totals {
		totalCents += totals[i].AmountInCents
	}
	if totalCents == 0 {
		for i := range totals {
			totals[i].Percent = "0.0"
		}
		return
	}

	hundred := decimal.NewFromInt(100)
	total := decimal.NewFromInt(totalCents)
	for i := range totals {
		share := decimal.NewFromInt(totals[i].AmountInCents).Mul(hundred).Div(total)
		totals[i].Percent = share.StringFixed(1)
	}
}
