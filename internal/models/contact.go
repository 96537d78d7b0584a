package models

import (
	"time"
)

// RecruiterContact is keyed by (user, contact email); a user cannot hold two
// contacts with the same email address.
type RecruiterContact struct {
	UserID          string  `gorm:"type:char(36);primaryKey"`
	ContactEmail    string  `gorm:"size:255;primaryKey"`
	Name            string  `gorm:"size:255;not null"`
	CompanyName     string  `gorm:"size:255;not null"`
	RoleInCompany   string  `gorm:"size:255;not null"`
	PhoneNumber     string  `gorm:"size:255;not null"`
	LinkedinProfile *string `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the table name for RecruiterContact
func (RecruiterContact) TableName() string {
	return "recruiter_contacts"
}
