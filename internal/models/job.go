package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobApplication is one tracked application. The natural key is the full
// (user, company, position, date) tuple; there is no surrogate id, and an
// edit is modeled as delete-then-recreate.
type JobApplication struct {
	UserID          string         `gorm:"type:char(36);primaryKey"`
	CompanyName     string         `gorm:"size:255;primaryKey"`
	AppliedPosition string         `gorm:"size:255;primaryKey"`
	DateApplied     datatypes.Date `gorm:"primaryKey"`
	CompanyAddress  *string        `gorm:"size:255"`
	CountryID       int16          `gorm:"not null"`
	CompanyWebsite  *string        `gorm:"size:255"`
	StatusID        int16          `gorm:"not null"`
	AdditionalNotes *string        `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Country *Country `gorm:"foreignKey:CountryID;references:CountryID"`
}

// TableName overrides the table name for JobApplication
func (JobApplication) TableName() string {
	return "job_applications"
}
