package services

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/models"
	"github.com/jobtrackd/jobtrackd/internal/repository"
	"github.com/jobtrackd/jobtrackd/internal/validation"
)

// ContactService implements the recruiter-contact use cases.
type ContactService struct {
	contacts *repository.Contacts
}

// NewContactService creates a ContactService.
func NewContactService(contacts *repository.Contacts) *ContactService {
	return &ContactService{contacts: contacts}
}

// Submit records a new contact for userID. The request must already be
// validated and normalized.
func (s *ContactService) Submit(userID string, req *validation.SubmitContactRequest) Result {
	contact := models.RecruiterContact{
		UserID:          userID,
		ContactEmail:    req.ContactEmail,
		Name:            req.Name,
		CompanyName:     req.CompanyName,
		RoleInCompany:   req.RoleInCompany,
		PhoneNumber:     req.PhoneNumber,
		LinkedinProfile: req.LinkedinProfile,
	}

	if err := s.contacts.Create(&contact); err != nil {
		log.Printf("submit contact: %v", err)
		return persistenceFailure(err,
			"Contact with that email already exists.",
			"Error submitting contact",
			"Error submitting contact")
	}

	return success("Contact submitted successfully", fiber.StatusCreated, nil)
}

// Delete removes the contact matching (owner, email). Idempotent.
func (s *ContactService) Delete(userID string, req *validation.DeleteContactRequest) Result {
	if _, err := s.contacts.Delete(userID, req.ContactEmail); err != nil {
		log.Printf("delete contact: %v", err)
		return failure("Server error deleting contact.", fiber.StatusInternalServerError)
	}
	return success("Contact deleted successfully", fiber.StatusOK, nil)
}

// List returns every contact owned by userID.
func (s *ContactService) List(userID string) Result {
	contacts, err := s.contacts.ListByUser(userID)
	if err != nil {
		log.Printf("list contacts: %v", err)
		return failure("Server error fetching contacts.", fiber.StatusInternalServerError)
	}
	return success("success", fiber.StatusOK, contacts)
}
