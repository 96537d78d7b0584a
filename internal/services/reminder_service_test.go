package services

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrackd/jobtrackd/internal/repository"
	"github.com/jobtrackd/jobtrackd/internal/validation"
)

func postReminderRequest() *validation.PostReminderRequest {
	return &validation.PostReminderRequest{
		Title:    "Follow up with recruiter",
		Date:     "2026-09-10",
		Time:     "14:30",
		Notes:    "Ask about timeline",
		Priority: "medium",
	}
}

func TestReminderPostReturnsGeneratedID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReminderService(repository.NewReminders(db))
	userID := registerTestUser(t, db, "u@example.com")

	res := svc.Post(userID, postReminderRequest())
	require.False(t, res.IsError)
	assert.Equal(t, fiber.StatusCreated, res.Status)

	data, ok := res.Data.(map[string]string)
	require.True(t, ok)
	assert.NotEmpty(t, data["reminderId"])
}

func TestReminderListReturnsOwnedReminders(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReminderService(repository.NewReminders(db))
	alice := registerTestUser(t, db, "alice@example.com")
	bob := registerTestUser(t, db, "bob@example.com")

	require.False(t, svc.Post(alice, postReminderRequest()).IsError)

	res := svc.List(alice)
	require.False(t, res.IsError)
	records, ok := res.Data.([]repository.ReminderRecord)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "Follow up with recruiter", records[0].Title)
	assert.Equal(t, "medium", records[0].Priority)
	assert.Equal(t, "2026-09-10", records[0].Date)

	res = svc.List(bob)
	require.False(t, res.IsError)
	assert.Empty(t, res.Data.([]repository.ReminderRecord))
}

func TestReminderDeleteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReminderService(repository.NewReminders(db))
	userID := registerTestUser(t, db, "u@example.com")

	res := svc.Post(userID, postReminderRequest())
	require.False(t, res.IsError)
	reminderID := res.Data.(map[string]string)["reminderId"]

	key := &validation.DeleteReminderRequest{ReminderID: reminderID}

	res = svc.Delete(userID, key)
	assert.False(t, res.IsError)
	assert.Equal(t, fiber.StatusOK, res.Status)

	res = svc.Delete(userID, key)
	assert.False(t, res.IsError)
	assert.Equal(t, fiber.StatusOK, res.Status)
}
