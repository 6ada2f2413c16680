package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// stubTransactionRepo keeps entries in memory and mimics the SQL-side
// semantics of the real repository: filtering, ordering and aggregation
type stubTransactionRepo struct {
	entries   []entity.Transaction
	nextID    uint64
	createErr error
	listErr   error
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
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	tx.ID = r.nextID
	r.entries = append(r.entries, *tx)
	return nil
}

func (r *stubTransactionRepo) ListByUser(_ context.Context, userID uint64, filter entity.ListFilter) ([]entity.Transaction, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []entity.Transaction
	for _, tx := range r.entries {
		if r.matches(&tx, userID, filter) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, userID, transactionID uint64) error {
	for i, tx := range r.entries {
		if tx.ID == transactionID && tx.UserID == userID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return errs.ErrTransactionNotFound
}

func (r *stubTransactionRepo) ClearByUser(_ context.Context, userID uint64) (int64, error) {
	var kept []entity.Transaction
	var removed int64
	for _, tx := range r.entries {
		if tx.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	r.entries = kept
	return removed, nil
}

func (r *stubTransactionRepo) SumByKind(_ context.Context, userID uint64, filter entity.ListFilter) (*entity.Summary, error) {
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

func (p *fixedTimeProvider) Since(t time.Time) coreport.Duration {
	return coreport.Duration(p.now.Sub(t))
}

type nopLogger struct{}

func (nopLogger) SetLevel(coreport.LogLevel) {}

func (nopLogger) Debug(string, map[string]any) {}

func (nopLogger) Info(string, map[string]any) {}

func (nopLogger) Warn(string, map[string]any) {}

func (nopLogger) Error(string, map[string]any) {}

func (nopLogger) Flush() error { return nil }

func newTestLedger() (*stubTransactionRepo, *LedgerUseCase) {
	repo := &stubTransactionRepo{}
	clock := &fixedTimeProvider{now: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)}
	uc := NewLedgerUseCase(repo, clock, nopLogger{})
	return repo, uc.(*LedgerUseCase)
}
