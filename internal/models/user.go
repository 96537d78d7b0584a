package models

import (
	"time"
)

// User is the persisted account record. The password hash never leaves the
// repository layer; handlers work with the user id resolved at login.
type User struct {
	UserID       string `gorm:"type:char(36);primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
