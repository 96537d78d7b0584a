package repository

import (
	"github.com/jobtrackd/jobtrackd/internal/models"
	"gorm.io/gorm"
)

// Contacts persists recruiter contacts.
type Contacts struct {
	db *gorm.DB
}

// NewContacts creates a Contacts repository.
func NewContacts(db *gorm.DB) *Contacts {
	return &Contacts{db: db}
}

// ContactRecord is the listing shape for one recruiter contact.
type ContactRecord struct {
	Name            string  `json:"name"`
	CompanyName     string  `json:"companyName"`
	RoleInCompany   string  `json:"roleInCompany"`
	PhoneNumber     string  `json:"phoneNumber"`
	ContactEmail    string  `json:"contactEmail"`
	LinkedinProfile *string `json:"linkedinProfile"`
}

// Create inserts a new contact. Returns ErrConflict when the owner already
// has a contact with that email.
func (r *Contacts) Create(contact *models.RecruiterContact) error {
	return translate(r.db.Create(contact).Error)
}

// Delete removes the contact matching (owner, email). Zero rows affected is
// not an error.
func (r *Contacts) Delete(userID, contactEmail string) (int64, error) {
	res := r.db.Where("user_id = ? AND contact_email = ?", userID, contactEmail).
		Delete(&models.RecruiterContact{})
	return res.RowsAffected, translate(res.Error)
}

// ListByUser returns all contacts owned by userID.
func (r *Contacts) ListByUser(userID string) ([]ContactRecord, error) {
	var contacts []models.RecruiterContact
	err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}

	records := make([]ContactRecord, 0, len(contacts))
	for _, c := range contacts {
		records = append(records, ContactRecord{
			Name:            c.Name,
			CompanyName:     c.CompanyName,
			RoleInCompany:   c.RoleInCompany,
			PhoneNumber:     c.PhoneNumber,
			ContactEmail:    c.ContactEmail,
			LinkedinProfile: c.LinkedinProfile,
		})
	}
	return records, nil
}
