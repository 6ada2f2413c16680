package model

import (
	"time"
)

// Transaction represents the database model for ledger entries. Date is
// kept as a YYYY-MM-DD string so range filters and month grouping work
// on plain text comparison; the composite index serves both.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index:idx_transactions_user_date,priority:1"`
	Kind          string    `gorm:"not null;size:10"`
	AmountInCents int64     `gorm:"not null"`
	Category      string    `gorm:"not null;size:40"`
	Description   string    `gorm:"size:200"`
	Date          string    `gorm:"not null;size:10;index:idx_transactions_user_date,priority:2"`
	CreatedAt     time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
