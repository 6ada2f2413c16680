package dto

import (
	"net/url"
	"strings"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
)

// SignUpForm carries the signup fields as posted
type SignUpForm struct {
	Username        string `form:"username"`
	Passcode        string `form:"passcode"`
	ConfirmPasscode string `form:"confirm_passcode"`
}

// LoginForm carries the login fields as posted
type LoginForm struct {
	Username string `form:"username"`
	Passcode string `form:"passcode"`
}

// ChangePasscodeForm carries the passcode change fields as posted
type ChangePasscodeForm struct {
	CurrentPasscode string `form:"current_passcode"`
	NewPasscode     string `form:"new_passcode"`
	ConfirmPasscode string `form:"confirm_passcode"`
}

// RecordForm carries a new ledger entry as posted. Everything stays a
// string here; parsing happens in the domain.
type RecordForm struct {
	Kind        string `form:"kind"`
	Amount      string `form:"amount"`
	Category    string `form:"category"`
	Description string `form:"description"`
	Date        string `form:"date"`
}

// ToInput converts the form to the use case input
func (f *RecordForm) ToInput() usecase.RecordInput {
	return usecase.RecordInput{
		Kind:        f.Kind,
		Amount:      f.Amount,
		Category:    f.Category,
		Description: f.Description,
		Date:        f.Date,
	}
}

// FilterForm carries the optional list narrowing fields from the query
// string. Empty fields leave that axis unbounded.
type FilterForm struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Category string `form:"category"`
	Kind     string `form:"kind"`
}

// ToFilter converts the form to a domain filter
func (f *FilterForm) ToFilter() entity.ListFilter {
	return entity.ListFilter{
		From:     strings.TrimSpace(f.From),
		To:       strings.TrimSpace(f.To),
		Category: strings.TrimSpace(f.Category),
		Kind:     entity.TransactionKind(strings.ToLower(strings.TrimSpace(f.Kind))),
	}
}

// HasValues reports whether any narrowing field is set, so templates can
// show the "filtered" state
func (f *FilterForm) HasValues() bool {
	return f.From != "" || f.To != "" || f.Category != "" || f.Kind != ""
}

// QueryString rebuilds the filter as a URL query suffix for links that
// must keep the current narrowing, like the CSV export
func (f *FilterForm) QueryString() string {
	values := url.Values{}
	if f.From != "" {
		values.Set("from", f.From)
	}
	if f.To != "" {
		values.Set("to", f.To)
	}
	if f.Category != "" {
		values.Set("category", f.Category)
	}
	if f.Kind != "" {
		values.Set("kind", f.Kind)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
