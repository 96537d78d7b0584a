package validation

import (
	"github.com/jobtrackd/jobtrackd/internal/types"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for reminder times.
const TimeLayout = "15:04"

// RegisterRequest is the contract for POST /register.
type RegisterRequest struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequest is the contract for POST /login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SubmitJobRequest is the contract for POST /jobs. Country and status may
// arrive as numeric strings from form posts; FlexInt coerces them.
type SubmitJobRequest struct {
	CompanyName     string         `json:"companyName" form:"companyName" validate:"required"`
	AppliedPosition string         `json:"appliedPosition" form:"appliedPosition" validate:"required"`
	CompanyAddress  *string        `json:"companyAddress" form:"companyAddress"`
	DateApplied     string         `json:"dateApplied" form:"dateApplied" validate:"required,datetime=2006-01-02"`
	Country         *types.FlexInt `json:"country" form:"country" validate:"required,min=1"`
	CompanyWebsite  *string        `json:"companyWebsite" form:"companyWebsite" validate:"omitempty,url"`
	Status          *types.FlexInt `json:"status" form:"status" validate:"required,min=0,max=6"`
	Notes           *string        `json:"notes" form:"notes"`
}

// Normalize maps blank optional fields to nil. Call after Check succeeds.
func (r *SubmitJobRequest) Normalize() {
	r.CompanyAddress = normalizeOptional(r.CompanyAddress)
	r.CompanyWebsite = normalizeOptional(r.CompanyWebsite)
	r.Notes = normalizeOptional(r.Notes)
}

// JobKeyRequest carries the full natural key of one job application. Used by
// DELETE /jobs and GET /jobs/detail.
type JobKeyRequest struct {
	CompanyName     string `json:"companyName" form:"companyName" validate:"required"`
	AppliedPosition string `json:"appliedPosition" form:"appliedPosition" validate:"required"`
	DateApplied     string `json:"dateApplied" form:"dateApplied" validate:"required,datetime=2006-01-02"`
}

// SubmitContactRequest is the contract for POST /contacts.
type SubmitContactRequest struct {
	Name            string  `json:"name" form:"name" validate:"required"`
	CompanyName     string  `json:"companyName" form:"companyName" validate:"required"`
	RoleInCompany   string  `json:"roleInCompany" form:"roleInCompany" validate:"required"`
	PhoneNumber     string  `json:"phoneNumber" form:"phoneNumber" validate:"required"`
	ContactEmail    string  `json:"contactEmail" form:"contactEmail" validate:"required,email"`
	LinkedinProfile *string `json:"linkedinProfile" form:"linkedinProfile" validate:"omitempty,url"`
}

// Normalize maps blank optional fields to nil. Call after Check succeeds.
func (r *SubmitContactRequest) Normalize() {
	r.LinkedinProfile = normalizeOptional(r.LinkedinProfile)
}

// DeleteContactRequest is the contract for DELETE /contacts.
type DeleteContactRequest struct {
	ContactEmail string `json:"contactEmail" form:"contactEmail" validate:"required,email"`
}

// PostReminderRequest is the contract for POST /reminders.
type PostReminderRequest struct {
	Title    string `json:"title" form:"title" validate:"required"`
	Date     string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" form:"time" validate:"required,datetime=15:04"`
	Notes    string `json:"notes" form:"notes" validate:"required"`
	Priority string `json:"priority" form:"priority" validate:"required,oneof=low medium high"`
}

// DeleteReminderRequest is the contract for DELETE /reminders.
type DeleteReminderRequest struct {
	ReminderID string `json:"reminderId" form:"reminderId" validate:"required,uuid"`
}
