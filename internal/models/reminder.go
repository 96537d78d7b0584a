package models

import (
	"time"

	"gorm.io/datatypes"
)

// Valid reminder priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Reminder is a dated note owned by a user. Unlike jobs and contacts it has
// a generated surrogate key.
type Reminder struct {
	ReminderID string         `gorm:"type:char(36);primaryKey"`
	UserID     string         `gorm:"type:char(36);index;not null"`
	Title      string         `gorm:"size:255;not null"`
	Date       datatypes.Date `gorm:"not null"`
	Time       string         `gorm:"size:10;not null"`
	Notes      string         `gorm:"size:255;not null"`
	Priority   string         `gorm:"size:10;not null;default:low"`
	CreatedAt  time.Time
}

// TableName overrides the table name for Reminder
func (Reminder) TableName() string {
	return "reminders"
}
