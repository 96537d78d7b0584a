package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jobtrackd/jobtrackd/internal/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.ApplicationStatus{},
		&models.JobApplication{},
		&models.RecruiterContact{},
		&models.Reminder{},
	))

	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func seedUser(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	users := NewUsers(db)
	user, err := users.Create(email, "$2a$12$fakehashfakehashfakehash")
	require.NoError(t, err)
	return user.UserID
}

func TestUsersCreateRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	users := NewUsers(db)

	_, err := users.Create("dup@example.com", "hash-one")
	require.NoError(t, err)

	_, err = users.Create("dup@example.com", "hash-two")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUsersFindByEmail(t *testing.T) {
	db := setupTestDB(t)
	users := NewUsers(db)

	created, err := users.Create("person@example.com", "stored-hash")
	require.NoError(t, err)

	creds, err := users.FindByEmail("person@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, creds.UserID)
	assert.Equal(t, "stored-hash", creds.PasswordHash)

	_, err = users.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func newJob(userID, company, position, date string, t *testing.T) *models.JobApplication {
	t.Helper()
	return &models.JobApplication{
		UserID:          userID,
		CompanyName:     company,
		AppliedPosition: position,
		DateApplied:     datatypes.Date(mustDate(t, date)),
		CountryID:       76,
		StatusID:        1,
	}
}

func TestJobsCreateRejectsDuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	jobs := NewJobs(db)
	userID := seedUser(t, db, "u@example.com")

	require.NoError(t, jobs.Create(newJob(userID, "Initech", "Engineer", "2026-08-15", t)))

	err := jobs.Create(newJob(userID, "Initech", "Engineer", "2026-08-15", t))
	assert.ErrorIs(t, err, ErrConflict)

	// Same tuple under another user is a distinct key
	other := seedUser(t, db, "v@example.com")
	assert.NoError(t, jobs.Create(newJob(other, "Initech", "Engineer", "2026-08-15", t)))
}

func TestJobsDeleteMatchesFullKeyOnly(t *testing.T) {
	db := setupTestDB(t)
	jobs := NewJobs(db)
	userID := seedUser(t, db, "u@example.com")

	require.NoError(t, jobs.Create(newJob(userID, "Initech", "Engineer", "2026-08-15", t)))
	require.NoError(t, jobs.Create(newJob(userID, "Initech", "Engineer", "2026-08-20", t)))

	// Wrong date removes nothing
	affected, err := jobs.Delete(userID, "Initech", "Engineer", mustDate(t, "2026-08-01"))
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = jobs.Delete(userID, "Initech", "Engineer", mustDate(t, "2026-08-15"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	records, err := jobs.ListByUser(userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-08-20", records[0].DateApplied)
}

func TestJobsListScopedByOwner(t *testing.T) {
	db := setupTestDB(t)
	jobs := NewJobs(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	require.NoError(t, jobs.Create(newJob(alice, "Initech", "Engineer", "2026-08-10", t)))
	require.NoError(t, jobs.Create(newJob(alice, "Globex", "Engineer", "2026-08-20", t)))
	require.NoError(t, jobs.Create(newJob(bob, "Hooli", "Engineer", "2026-08-15", t)))

	records, err := jobs.ListByUser(alice)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest application first
	assert.Equal(t, "Globex", records[0].CompanyName)
	assert.Equal(t, "Initech", records[1].CompanyName)
	assert.Equal(t, "Application sent", records[0].StatusText)
}

func TestJobsFindByKeyJoinsCountry(t *testing.T) {
	db := setupTestDB(t)
	jobs := NewJobs(db)
	userID := seedUser(t, db, "u@example.com")

	require.NoError(t, db.Create(&models.Country{CountryID: 76, CountryName: "Netherlands"}).Error)
	require.NoError(t, jobs.Create(newJob(userID, "Initech", "Engineer", "2026-08-15", t)))

	detail, err := jobs.FindByKey(userID, "Initech", "Engineer", mustDate(t, "2026-08-15"))
	require.NoError(t, err)
	require.NotNil(t, detail.CountryName)
	assert.Equal(t, "Netherlands", *detail.CountryName)
	assert.Equal(t, "2026-08-15", detail.DateApplied)

	_, err = jobs.FindByKey(userID, "Initech", "Engineer", mustDate(t, "2026-01-01"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactsCreateRejectsDuplicateEmailPerOwner(t *testing.T) {
	db := setupTestDB(t)
	contacts := NewContacts(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	contact := func(owner string) *models.RecruiterContact {
		return &models.RecruiterContact{
			UserID:        owner,
			ContactEmail:  "dana@initech.example",
			Name:          "Dana Smith",
			CompanyName:   "Initech",
			RoleInCompany: "Recruiter",
			PhoneNumber:   "+1-555-0100",
		}
	}

	require.NoError(t, contacts.Create(contact(alice)))
	assert.ErrorIs(t, contacts.Create(contact(alice)), ErrConflict)

	// Another owner may hold the same contact email
	assert.NoError(t, contacts.Create(contact(bob)))
}

func TestContactsDeleteAndListScopedByOwner(t *testing.T) {
	db := setupTestDB(t)
	contacts := NewContacts(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	for _, c := range []models.RecruiterContact{
		{UserID: alice, ContactEmail: "zoe@x.example", Name: "Zoe", CompanyName: "X", RoleInCompany: "Recruiter", PhoneNumber: "1"},
		{UserID: alice, ContactEmail: "amir@y.example", Name: "Amir", CompanyName: "Y", RoleInCompany: "Recruiter", PhoneNumber: "2"},
		{UserID: bob, ContactEmail: "zoe@x.example", Name: "Zoe", CompanyName: "X", RoleInCompany: "Recruiter", PhoneNumber: "3"},
	} {
		rec := c
		require.NoError(t, contacts.Create(&rec))
	}

	records, err := contacts.ListByUser(alice)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Sorted by name
	assert.Equal(t, "Amir", records[0].Name)
	assert.Equal(t, "Zoe", records[1].Name)

	// Alice deleting does not touch Bob's row
	affected, err := contacts.Delete(alice, "zoe@x.example")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	bobRecords, err := contacts.ListByUser(bob)
	require.NoError(t, err)
	assert.Len(t, bobRecords, 1)
}

func TestRemindersCreateDefaultsPriority(t *testing.T) {
	db := setupTestDB(t)
	reminders := NewReminders(db)
	userID := seedUser(t, db, "u@example.com")

	id, err := reminders.Create(userID, "Follow up", mustDate(t, "2026-09-10"), "14:30", "Ask about timeline", "")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	records, err := reminders.ListByUser(userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.PriorityLow, records[0].Priority)
	assert.Equal(t, id, records[0].ReminderID)
}

func TestRemindersListOrderedByDateThenTime(t *testing.T) {
	db := setupTestDB(t)
	reminders := NewReminders(db)
	userID := seedUser(t, db, "u@example.com")

	_, err := reminders.Create(userID, "Later that day", mustDate(t, "2026-09-10"), "16:00", "n", "high")
	require.NoError(t, err)
	_, err = reminders.Create(userID, "Earlier day", mustDate(t, "2026-09-05"), "09:00", "n", "low")
	require.NoError(t, err)
	_, err = reminders.Create(userID, "Morning", mustDate(t, "2026-09-10"), "08:00", "n", "medium")
	require.NoError(t, err)

	records, err := reminders.ListByUser(userID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Earlier day", records[0].Title)
	assert.Equal(t, "Morning", records[1].Title)
	assert.Equal(t, "Later that day", records[2].Title)
}

func TestRemindersDeleteScopedByOwner(t *testing.T) {
	db := setupTestDB(t)
	reminders := NewReminders(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	id, err := reminders.Create(alice, "Alice reminder", mustDate(t, "2026-09-10"), "10:00", "n", "low")
	require.NoError(t, err)

	// Bob cannot delete Alice's reminder
	affected, err := reminders.Delete(bob, id)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = reminders.Delete(alice, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	// Gone now; repeating the delete affects nothing
	affected, err = reminders.Delete(alice, id)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
