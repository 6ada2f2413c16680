package entity

import (
	"strings"
	"time"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// DateLayout is the calendar-date form every entry carries. Dates are kept
// as text so that ordering and month grouping stay lexicographic.
const DateLayout = "2006-01-02"

// Field length limits
const (
	CategoryMaxLength    = 40
	DescriptionMaxLength = 200
)

// TransactionKind partitions entries into money coming in and going out
type TransactionKind string

const (
	// KindIncome marks money received
	KindIncome TransactionKind = "income"
	// KindExpense marks money spent
	KindExpense TransactionKind = "expense"
)

// ParseKind converts a raw form value into a TransactionKind
func ParseKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	default:
		return "", errs.ErrInvalidKind
	}
}

// DefaultCategories is the vocabulary the entry form offers. It is a UI
// affordance only; any non-empty category within the length limit is stored.
var DefaultCategories = []string{
	"Food", "Rent", "Transport", "Shopping", "Utilities",
	"Entertainment", "Health", "Salary", "Other",
}

// Transaction is one immutable ledger entry. The amount is always a
// positive number of cents; Kind decides its sign in every aggregate.
type Transaction struct {
	ID            uint64          // Unique identifier for the entry
	UserID        uint64          // Owning user
	Kind          TransactionKind // income or expense
	AmountInCents int64           // Always positive
	Category      string          // Free-form label, usually from DefaultCategories
	Description   string          // Optional note
	Date          string          // Day the money moved, DateLayout form
	CreatedAt     time.Time       // When the entry was recorded
}

// NewTransaction validates raw form input and builds an entry for insertion
func NewTransaction(userID uint64, kind, amount, category, description, date string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	parsedKind, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}

	amountInCents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}

	date = strings.TrimSpace(date)
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	return &Transaction{
		UserID:        userID,
		Kind:          parsedKind,
		AmountInCents: amountInCents,
		Category:      category,
		Description:   description,
		Date:          date,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// Amount returns the entry amount as a decimal string
func (t Transaction) Amount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// SignedCents returns the amount with the kind applied as a sign,
// negative for expenses
func (t Transaction) SignedCents() int64 {
	if t.Kind == KindExpense {
		return -t.AmountInCents
	}
	return t.AmountInCents
}

// ValidateDate accepts calendar dates in DateLayout form only.
// time.Parse already rejects out-of-range days like 2024-02-30.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errs.ErrInvalidDate
	}
	return nil
}

// ValidateCategory rejects empty or overlong categories
func ValidateCategory(category string) error {
	if category == "" || len(category) > CategoryMaxLength {
		return errs.ErrInvalidCategory
	}
	return nil
}

// ValidateDescription rejects overlong descriptions; empty is fine
func ValidateDescription(description string) error {
	if len(description) > DescriptionMaxLength {
		return errs.ErrInvalidDescription
	}
	return nil
}
