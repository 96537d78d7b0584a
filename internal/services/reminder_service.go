package services

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/repository"
	"github.com/jobtrackd/jobtrackd/internal/validation"
)

// ReminderService implements the reminder use cases.
type ReminderService struct {
	reminders *repository.Reminders
}

// NewReminderService creates a ReminderService.
func NewReminderService(reminders *repository.Reminders) *ReminderService {
	return &ReminderService{reminders: reminders}
}

// Post records a new reminder for userID.
func (s *ReminderService) Post(userID string, req *validation.PostReminderRequest) Result {
	date, err := time.Parse(validation.DateLayout, req.Date)
	if err != nil {
		return failure("Valid date is required.", fiber.StatusBadRequest)
	}

	reminderID, err := s.reminders.Create(userID, req.Title, date, req.Time, req.Notes, req.Priority)
	if err != nil {
		log.Printf("post reminder: %v", err)
		return failure("Server error posting reminder.", fiber.StatusInternalServerError)
	}

	return success("Reminder posted successfully", fiber.StatusCreated,
		map[string]string{"reminderId": reminderID})
}

// Delete removes the reminder matching (owner, id). Idempotent.
func (s *ReminderService) Delete(userID string, req *validation.DeleteReminderRequest) Result {
	if _, err := s.reminders.Delete(userID, req.ReminderID); err != nil {
		log.Printf("delete reminder: %v", err)
		return failure("Server error deleting reminder.", fiber.StatusInternalServerError)
	}
	return success("Reminder deleted successfully", fiber.StatusOK, nil)
}

// List returns every reminder owned by userID.
func (s *ReminderService) List(userID string) Result {
	reminders, err := s.reminders.ListByUser(userID)
	if err != nil {
		log.Printf("list reminders: %v", err)
		return failure("Server error fetching reminders.", fiber.StatusInternalServerError)
	}
	return success("success", fiber.StatusOK, reminders)
}
