package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
)

// seedEntries loads a small two-user ledger through Record so every entry
// went through the same validation the handlers use
func seedEntries(t *testing.T, uc *LedgerUseCase) {
	t.Helper()
	ctx := context.Background()
	rows := []struct {
		userID uint64
		input  usecase.RecordInput
	}{
		{1, usecase.RecordInput{Kind: "income", Amount: "3000", Category: "Salary", Date: "2024-05-01"}},
		{1, usecase.RecordInput{Kind: "expense", Amount: "42.50", Category: "Food", Description: "market", Date: "2024-05-03"}},
		{1, usecase.RecordInput{Kind: "expense", Amount: "900", Category: "Rent", Date: "2024-06-01"}},
		{1, usecase.RecordInput{Kind: "expense", Amount: "18.20", Category: "Food", Date: "2024-06-02"}},
		{2, usecase.RecordInput{Kind: "expense", Amount: "77", Category: "Transport", Date: "2024-05-03"}},
	}
	for _, row := range rows {
		_, err := uc.Record(ctx, row.userID, row.input)
		require.NoError(t, err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("OldestFirst", func(t *testing.T) {
		_, uc := newTestLedger()
		seedEntries(t, uc)

		entries, err := uc.List(ctx, 1, entity.ListFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 4)
		dates := []string{entries[0].Date, entries[1].Date, entries[2].Date, entries[3].Date}
		assert.Equal(t, []string{"2024-05-01", "2024-05-03", "2024-06-01", "2024-06-02"}, dates)
	})

	t.Run("NeverLeaksOtherUsers", func(t *testing.T) {
		_, uc := newTestLedger()
		seedEntries(t, uc)

		entries, err := uc.List(ctx, 2, entity.ListFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Transport", entries[0].Category)
	})

	t.Run("FilterByDateRange", func(t *testing.T) {
		_, uc := newTestLedger()
		seedEntries(t, uc)

		entries, err := uc.List(ctx, 1, entity.ListFilter{From: "2024-06-01", To: "2024-06-30"})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Rent", entries[0].Category)
		assert.Equal(t, "Food", entries[1].Category)
	})

	t.Run("FilterByCategoryAndKind", func(t *testing.T) {
		_, uc := newTestLedger()
		seedEntries(t, uc)

		entries, err := uc.List(ctx, 1, entity.ListFilter{Category: "Food", Kind: entity.KindExpense})

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("EmptyLedgerIsEmptySlice", func(t *testing.T) {
		_, uc := newTestLedger()

		entries, err := uc.List(ctx, 9, entity.ListFilter{})

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("InvalidFilterDate", func(t *testing.T) {
		_, uc := newTestLedger()

		_, err := uc.List(ctx, 1, entity.ListFilter{From: "junk"})

		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		repo, uc := newTestLedger()
		repo.listErr = assert.AnError

		_, err := uc.List(ctx, 1, entity.ListFilter{})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesOwnEntry", func(t *testing.T) {
		repo, uc := newTestLedger()
		seedEntries(t, uc)

		err := uc.Delete(ctx, 1, repo.entries[0].ID)

		require.NoError(t, err)
		entries, err := uc.List(ctx, 1, entity.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("OtherUsersEntryIsNotFound", func(t *testing.T) {
		_, uc := newTestLedger()
		seedEntries(t, uc)

		var bobsID uint64
		entries, err := uc.List(ctx, 2, entity.ListFilter{})
		require.NoError(t, err)
		bobsID = entries[0].ID

		err = uc.Delete(ctx, 1, bobsID)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

		entries, err = uc.List(ctx, 2, entity.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("MissingEntry", func(t *testing.T) {
		_, uc := newTestLedger()

		err := uc.Delete(ctx, 1, 12345)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesOnlyThatUsersRows", func(t *testing.T) {
		_, uc := newTestLedger()
		seedEntries(t, uc)

		removed, err := uc.Clear(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(4), removed)

		mine, err := uc.List(ctx, 1, entity.ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, mine)

		others, err := uc.List(ctx, 2, entity.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, others, 1)
	})

	t.Run("EmptyLedgerClearsToZero", func(t *testing.T) {
		_, uc := newTestLedger()

		removed, err := uc.Clear(ctx, 9)

		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}
