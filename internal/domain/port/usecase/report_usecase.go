package usecase

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// ReportUseCase defines the aggregate views over a user's ledger. All
// methods honor the same date bounds the ledger list uses; category and
// kind narrowing apply where they make sense.
type ReportUseCase interface {
	// Summarize returns income/expense totals and the row count
	Summarize(ctx context.Context, userID uint64, filter entity.ListFilter) (*entity.Summary, error)

	// ByCategory returns the expense breakdown per category, largest first,
	// with each slice's share of the expense total as a percentage
	ByCategory(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.CategoryTotal, error)

	// ByMonth returns the per-month income/expense series, ascending
	ByMonth(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.MonthlyTotal, error)

	// Overview composes everything the dashboard needs in one call
	Overview(ctx context.Context, userID uint64, filter entity.ListFilter) (*entity.Overview, error)
}
