package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// Overview composes everything the dashboard needs in one call: the kind
// totals, the category breakdown, the monthly series, the mean expense
// entry and the largest expense category.
func (r *ReportUseCase) Overview(ctx context.Context, userID uint64, filter entity.ListFilter) (*entity.Overview, error) {
	summary, err := r.Summarize(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	byCategory, err := r.ByCategory(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	byMonth, err := r.ByMonth(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	overview := &entity.Overview{
		Summary:        *summary,
		AverageExpense: averageExpense(summary),
		ByCategory:     byCategory,
		ByMonth:        byMonth,
	}
	if len(byCategory) > 0 {
		overview.TopCategory = byCategory[0].Category
	}

	return overview, nil
}

// averageExpense divides the expense total by the expense entry count,
// rounded to two decimal places. No expenses means "0.00".
func averageExpense(summary *entity.Summary) string {
	if summary.ExpenseCount == 0 {
		return "0.00"
	}
	return decimal.NewFromInt(summary.TotalExpenseCents).
		Div(decimal.NewFromInt(summary.ExpenseCount)).
		Div(decimal.NewFromInt(100)).
		StringFixed(2)
}
