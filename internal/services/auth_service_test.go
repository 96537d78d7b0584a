package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jobtrackd/jobtrackd/internal/models"
	"github.com/jobtrackd/jobtrackd/internal/repository"
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

// fakeSession records state transitions without a transport underneath.
type fakeSession struct {
	userID       string
	establishErr error
	destroyErr   error
	destroyed    bool
}

func (s *fakeSession) UserID() (string, bool) {
	return s.userID, s.userID != ""
}

func (s *fakeSession) Establish(userID string) error {
	if s.establishErr != nil {
		return s.establishErr
	}
	s.userID = userID
	return nil
}

func (s *fakeSession) Destroy() error {
	if s.destroyErr != nil {
		return s.destroyErr
	}
	s.userID = ""
	s.destroyed = true
	return nil
}

func TestRegisterCreatesAccount(t *testing.T) {
	svc := NewAuthService(repository.NewUsers(setupTestDB(t)))

	res := svc.Register("new@example.com", "secret123", "secret123")
	assert.False(t, res.IsError)
	assert.Equal(t, fiber.StatusCreated, res.Status)
	assert.Equal(t, "Account registered successfully", res.Message)
}

func TestRegisterRejectsMismatchedPasswords(t *testing.T) {
	svc := NewAuthService(repository.NewUsers(setupTestDB(t)))

	res := svc.Register("new@example.com", "secret123", "secret124")
	assert.True(t, res.IsError)
	assert.Equal(t, fiber.StatusBadRequest, res.Status)
	assert.Equal(t, "Passwords do not match.", res.Message)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := NewAuthService(repository.NewUsers(setupTestDB(t)))

	res := svc.Register("dup@example.com", "secret123", "secret123")
	require.False(t, res.IsError)

	res = svc.Register("dup@example.com", "other456", "other456")
	assert.True(t, res.IsError)
	assert.Equal(t, fiber.StatusConflict, res.Status)
	assert.Equal(t, "Account with the following email already exists.", res.Message)
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUsers(db))

	require.False(t, svc.Register("user@example.com", "secret123", "secret123").IsError)

	sess := &fakeSession{}
	res := svc.Login("user@example.com", "secret123", sess)
	require.False(t, res.IsError)
	assert.Equal(t, fiber.StatusOK, res.Status)

	details, ok := res.Data.(UserDetails)
	require.True(t, ok)
	assert.NotEmpty(t, details.UserID)
	assert.Equal(t, details.UserID, sess.userID)
}

func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUsers(db))

	require.False(t, svc.Register("known@example.com", "secret123", "secret123").IsError)

	unknownEmail := svc.Login("unknown@example.com", "secret123", &fakeSession{})
	wrongPassword := svc.Login("known@example.com", "wrong-pass", &fakeSession{})

	// Identical outcome for either failure mode
	assert.Equal(t, unknownEmail, wrongPassword)
	assert.True(t, unknownEmail.IsError)
	assert.Equal(t, fiber.StatusUnauthorized, unknownEmail.Status)
	assert.Equal(t, "Incorrect credentials", unknownEmail.Message)
}

func TestLoginReportsSessionFailure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUsers(db))

	require.False(t, svc.Register("user@example.com", "secret123", "secret123").IsError)

	res := svc.Login("user@example.com", "secret123", &fakeSession{establishErr: assert.AnError})
	assert.True(t, res.IsError)
	assert.Equal(t, fiber.StatusInternalServerError, res.Status)
}

func TestLogoutDestroysActiveSession(t *testing.T) {
	svc := NewAuthService(repository.NewUsers(setupTestDB(t)))

	sess := &fakeSession{userID: "some-user"}
	res := svc.Logout(sess)
	assert.False(t, res.IsError)
	assert.Equal(t, fiber.StatusOK, res.Status)
	assert.True(t, sess.destroyed)
}

func TestLogoutWithoutSessionStillSucceeds(t *testing.T) {
	svc := NewAuthService(repository.NewUsers(setupTestDB(t)))

	res := svc.Logout(&fakeSession{})
	assert.False(t, res.IsError)
	assert.Equal(t, fiber.StatusOK, res.Status)
	assert.Equal(t, "No active session to log out from.", res.Message)
}
