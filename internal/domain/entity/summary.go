package entity

// Summary holds the aggregate totals of one user's ledger, partitioned by
// kind. Everything is computed on demand from the raw rows.
type Summary struct {
	TotalIncomeCents  int64
	TotalExpenseCents int64
	NetCents          int64
	IncomeCount       int64
	ExpenseCount      int64
	TransactionCount  int64
}

// TotalIncome returns the income total as a decimal string
func (s Summary) TotalIncome() string {
	return AmountInCentsToString(s.TotalIncomeCents)
}

// TotalExpense returns the expense total as a decimal string
func (s Summary) TotalExpense() string {
	return AmountInCentsToString(s.TotalExpenseCents)
}

// Net returns income minus expenses as a decimal string
func (s Summary) Net() string {
	return AmountInCentsToString(s.NetCents)
}

// CategoryTotal is one slice of the per-category expense breakdown.
// Percent is the share of the expense total, one decimal place.
type CategoryTotal struct {
	Category      string
	AmountInCents int64
	Percent       string
}

// Amount returns the category total as a decimal string
func (c CategoryTotal) Amount() string {
	return AmountInCentsToString(c.AmountInCents)
}

// MonthlyTotal is one month of the income/expense series, keyed by the
// YYYY-MM prefix of the entry dates.
type MonthlyTotal struct {
	Month        string
	IncomeCents  int64
	ExpenseCents int64
	NetCents     int64
}

// Income returns the month's income as a decimal string
func (m MonthlyTotal) Income() string {
	return AmountInCentsToString(m.IncomeCents)
}

// Expense returns the month's expenses as a decimal string
func (m MonthlyTotal) Expense() string {
	return AmountInCentsToString(m.ExpenseCents)
}

// Net returns the month's net as a decimal string
func (m MonthlyTotal) Net() string {
	return AmountInCentsToString(m.NetCents)
}

// Overview is everything the dashboard shows at once
type Overview struct {
	Summary        Summary
	AverageExpense string // Mean expense entry, two decimal places
	TopCategory    string // Largest expense category, empty when no expenses
	ByCategory     []CategoryTotal
	ByMonth        []MonthlyTotal
}
