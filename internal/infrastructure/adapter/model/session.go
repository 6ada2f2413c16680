package model

import (
	"time"
)

// Session represents the database model for signed-in browsers. The token
// itself is the primary key; lookups happen on every authenticated request.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    uint64    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}
