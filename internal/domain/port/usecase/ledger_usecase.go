package usecase

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// RecordInput is a raw entry as it arrives from the form, unparsed
type RecordInput struct {
	Kind        string
	Amount      string
	Category    string
	Description string
	Date        string
}

// CSVExport is a rendered export payload plus its download filename
type CSVExport struct {
	Filename string
	Data     []byte
}

// LedgerUseCase defines methods for recording and browsing ledger entries
type LedgerUseCase interface {
	// Record validates the input and appends one entry to the user's ledger
	Record(ctx context.Context, userID uint64, input RecordInput) (*entity.Transaction, error)

	// List returns the user's entries, oldest first, narrowed by the filter
	List(ctx context.Context, userID uint64, filter entity.ListFilter) ([]entity.Transaction, error)

	// Delete removes a single entry belonging to the user
	Delete(ctx context.Context, userID, transactionID uint64) error

	// Clear removes every entry of the user and reports how many went
	Clear(ctx context.Context, userID uint64) (int64, error)

	// ExportCSV renders the filtered ledger as a CSV download
	ExportCSV(ctx context.Context, userID uint64, username string, filter entity.ListFilter) (*CSVExport, error)
}
