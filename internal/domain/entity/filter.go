package entity

import errs "github.com/fintrack-app/fintrack/internal/domain/error"

// ListFilter narrows ledger queries. Zero-value fields leave that axis
// unbounded; From and To are inclusive calendar dates.
type ListFilter struct {
	From     string
	To       string
	Category string
	Kind     TransactionKind
}

// Validate checks whichever bounds are set
func (f ListFilter) Validate() error {
	if f.From != "" {
		if err := ValidateDate(f.From); err != nil {
			return err
		}
	}
	if f.To != "" {
		if err := ValidateDate(f.To); err != nil {
			return err
		}
	}
	if f.Kind != "" {
		if _, err := ParseKind(string(f.Kind)); err != nil {
			return err
		}
	}
	if len(f.Category) > CategoryMaxLength {
		return errs.ErrInvalidCategory
	}
	return nil
}
