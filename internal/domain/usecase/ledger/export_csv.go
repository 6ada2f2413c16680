package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
)

// csvHeader is the first row of every export
var csvHeader = []string{"date", "kind", "category", "amount", "description"}

// ExportCSV renders the filtered ledger as a CSV download. The filename
// carries the username so exports from different accounts stay apart.
func (l *LedgerUseCase) ExportCSV(ctx context.Context, userID uint64, username string, filter entity.ListFilter) (*usecase.CSVExport, error) {
	entries, err := l.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, errs.NewLedgerError("export", userID, 0, err)
	}
	for i := range entries {
		entry := &entries[i]
		row := []string{
			entry.Date,
			string(entry.Kind),
			entry.Category,
			entry.Amount(),
			entry.Description,
		}
		if err := writer.Write(row); err != nil {
			return nil, errs.NewLedgerError("export", userID, 0, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errs.NewLedgerError("export", userID, 0, err)
	}

	l.logger.Info("Ledger exported", map[string]any{
		"user_id": userID,
		"rows":    len(entries),
	})

	return &usecase.CSVExport{
		Filename: fmt.Sprintf("%s_finance_export.csv", username),
		Data:     buf.Bytes(),
	}, nil
}
