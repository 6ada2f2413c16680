package persistence

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with ledger
// entries. Entries are immutable: there is no update operation.
type TransactionRepository interface {
	// Create saves a new entry and fills its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the owning user does not exist
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns the user's entries ordered by date then ID,
	// narrowed by whatever filter fields are set
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	ListByUser(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.Transaction, error)

	// Delete removes one entry. The entry must belong to the given user;
	// rows of other users are invisible here.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no such entry exists for this user
	// - ErrDatabaseConnection: If the database cannot be reached
	Delete(ctx context.Context, userID, transactionID uint64) error

	// ClearByUser removes every entry of one user and reports how many went
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	ClearByUser(ctx context.Context, userID uint64) (int64, error)

	// SumByKind aggregates the filtered entries into income/expense totals
	// plus the row count, all in one GROUP BY query
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	SumByKind(ctx context.Context, userID uint64, filter entity.ListFilter) (*entity.Summary, error)

	// SumByCategory aggregates filtered expense entries per category,
	// largest first. Percent is left for the caller to fill.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	SumByCategory(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.CategoryTotal, error)

	// SumByMonth aggregates filtered entries per YYYY-MM month, ascending
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	SumByMonth(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.MonthlyTotal, error)
}
