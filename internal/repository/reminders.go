package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobtrackd/jobtrackd/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reminders persists reminders.
type Reminders struct {
	db *gorm.DB
}

// NewReminders creates a Reminders repository.
func NewReminders(db *gorm.DB) *Reminders {
	return &Reminders{db: db}
}

// ReminderRecord is the listing shape for one reminder.
type ReminderRecord struct {
	ReminderID string    `json:"reminderId"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Notes      string    `json:"notes"`
	Priority   string    `json:"priority"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Create inserts a new reminder and returns its generated id.
func (r *Reminders) Create(userID, title string, date time.Time, timeOfDay, notes, priority string) (string, error) {
	if priority == "" {
		priority = models.PriorityLow
	}
	reminder := models.Reminder{
		ReminderID: uuid.NewString(),
		UserID:     userID,
		Title:      title,
		Date:       datatypes.Date(date),
		Time:       timeOfDay,
		Notes:      notes,
		Priority:   priority,
	}
	if err := r.db.Create(&reminder).Error; err != nil {
		return "", translate(err)
	}
	return reminder.ReminderID, nil
}

// Delete removes the reminder matching (owner, id). Zero rows affected is
// not an error.
func (r *Reminders) Delete(userID, reminderID string) (int64, error) {
	res := r.db.Where("user_id = ? AND reminder_id = ?", userID, reminderID).
		Delete(&models.Reminder{})
	return res.RowsAffected, translate(res.Error)
}

// ListByUser returns all reminders owned by userID.
func (r *Reminders) ListByUser(userID string) ([]ReminderRecord, error) {
	var reminders []models.Reminder
	err := r.db.Where("user_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}

	records := make([]ReminderRecord, 0, len(reminders))
	for _, rem := range reminders {
		records = append(records, ReminderRecord{
			ReminderID: rem.ReminderID,
			Title:      rem.Title,
			Date:       time.Time(rem.Date).Format(dateLayout),
			Time:       rem.Time,
			Notes:      rem.Notes,
			Priority:   rem.Priority,
			CreatedAt:  rem.CreatedAt,
		})
	}
	return records, nil
}
