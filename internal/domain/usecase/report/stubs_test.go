package report

import (
	"context"
	"sort"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// stubTransactionRepo serves the aggregate queries from an in-memory
// slice, mirroring the grouping the SQL side does
type stubTransactionRepo struct {
	entries []entity.Transaction
	sumErr  error
}

func (r *stubTransactionRepo) matches(tx *entity.Transaction, userID uint64, filter entity.ListFilter) bool {
	if tx.UserID != userID {
		return false
	}
	if filter.From != "" && tx.Date < filter.From {
		return false
	}
	if filter.To != "" && tx.Date > filter.To {
		return false
	}
	if filter.Category != "" && tx.Category != filter.Category {
		return false
	}
	if filter.Kind != "" && tx.Kind != filter.Kind {
		return false
	}
	return true
}

func (r *stubTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.entries = append(r.entries, *tx)
	return nil
}

func (r *stubTransactionRepo) ListByUser(_ context.Context, _ uint64, _ entity.ListFilter) ([]entity.Transaction, error) {
	return nil, nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, _, _ uint64) error { return nil }

func (r *stubTransactionRepo) ClearByUser(_ context.Context, _ uint64) (int64, error) { return 0, nil }

func (r *stubTransactionRepo) SumByKind(_ context.Context, userID uint64, filter entity.ListFilter) (*entity.Summary, error) {
	if r.sumErr != nil {
		return nil, r.sumErr
	}
	summary := &entity.Summary{}
	for _, tx := range r.entries {
		if !r.matches(&tx, userID, filter) {
			continue
		}
		summary.TransactionCount++
		if tx.Kind == entity.KindIncome {
			summary.IncomeCount++
			summary.TotalIncomeCents += tx.AmountInCents
		} else {
			summary.ExpenseCount++
			summary.TotalExpenseCents += tx.AmountInCents
		}
	}
	summary.NetCents = summary.TotalIncomeCents - summary.TotalExpenseCents
	return summary, nil
}

func (r *stubTransactionRepo) SumByCategory(_ context.Context, userID uint64, filter entity.ListFilter) ([]entity.CategoryTotal, error) {
	if r.sumErr != nil {
		return nil, r.sumErr
	}
	sums := map[string]int64{}
	for _, tx := range r.entries {
		if tx.Kind != entity.KindExpense || !r.matches(&tx, userID, filter) {
			continue
		}
		sums[tx.Category] += tx.AmountInCents
	}
	out := make([]entity.CategoryTotal, 0, len(sums))
	for category, cents := range sums {
		out = append(out, entity.CategoryTotal{Category: category, AmountInCents: cents})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AmountInCents != out[j].AmountInCents {
			return out[i].AmountInCents > out[j].AmountInCents
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (r *stubTransactionRepo) SumByMonth(_ context.Context, userID uint64, filter entity.ListFilter) ([]entity.MonthlyTotal, error) {
	if r.sumErr != nil {
		return nil, r.sumErr
	}
	byMonth := map[string]*entity.MonthlyTotal{}
	for _, tx := range r.entries {
		if !r.matches(&tx, userID, filter) {
			continue
		}
		month := tx.Date[:7]
		mt, ok := byMonth[month]
		if !ok {
			mt = &entity.MonthlyTotal{Month: month}
			byMonth[month] = mt
		}
		if tx.Kind == entity.KindIncome {
			mt.IncomeCents += tx.AmountInCents
		} else {
			mt.ExpenseCents += tx.AmountInCents
		}
	}
	out := make([]entity.MonthlyTotal, 0, len(byMonth))
	for _, mt := range byMonth {
		mt.NetCents = mt.IncomeCents - mt.ExpenseCents
		out = append(out, *mt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

type nopLogger struct{}

func (nopLogger) SetLevel(coreport.LogLevel) {}

func (nopLogger) Debug(string, map[string]any) {}

func (nopLogger) Info(string, map[string]any) {}

func (nopLogger) Warn(string, map[string]any) {}

func (nopLogger) Error(string, map[string]any) {}

func (nopLogger) Flush() error { return nil }

func entry(userID uint64, kind entity.TransactionKind, cents int64, category, date string) entity.Transaction {
	return entity.Transaction{
		UserID:        userID,
		Kind:          kind,
		AmountInCents: cents,
		Category:      category,
		Date:          date,
	}
}

func newTestReport(entries ...entity.Transaction) (*stubTransactionRepo, *ReportUseCase) {
	repo := &stubTransactionRepo{entries: entries}
	uc := NewReportUseCase(repo, nopLogger{})
	return repo, uc.(*ReportUseCase)
}
