package services

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/auth"
	"github.com/jobtrackd/jobtrackd/internal/repository"
)

// UserSession is the session capability the auth operations act on. The
// transport shell binds it to the caller's token; the service only ever
// signals state transitions.
type UserSession interface {
	UserID() (string, bool)
	Establish(userID string) error
	Destroy() error
}

// UserDetails is the login success payload.
type UserDetails struct {
	UserID string `json:"userId"`
}

// AuthService implements registration, login and logout.
type AuthService struct {
	users *repository.Users
}

// NewAuthService creates an AuthService.
func NewAuthService(users *repository.Users) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account. The hash is computed and confirmed before
// the insert is attempted; the outcome travels back along this call chain.
func (s *AuthService) Register(email, password, confirmPassword string) Result {
	if password != confirmPassword {
		return failure("Passwords do not match.", fiber.StatusBadRequest)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("register: hashing failed: %v", err)
		return failure("Error during registration attempt", fiber.StatusInternalServerError)
	}

	if _, err := s.users.Create(email, passwordHash); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return failure("Account with the following email already exists.", fiber.StatusConflict)
		}
		log.Printf("register: insert failed: %v", err)
		return failure("Error during registration attempt", fiber.StatusInternalServerError)
	}

	return success("Account registered successfully", fiber.StatusCreated, nil)
}

// Login verifies credentials and, on success, establishes the authenticated
// session state. An unknown email and a wrong password return the identical
// outcome so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string, sess UserSession) Result {
	creds, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return incorrectCredentials()
		}
		log.Printf("login: lookup failed: %v", err)
		return failure("Error during login", fiber.StatusInternalServerError)
	}

	if !auth.VerifyPassword(password, creds.PasswordHash) {
		return incorrectCredentials()
	}

	if err := sess.Establish(creds.UserID); err != nil {
		log.Printf("login: session establish failed: %v", err)
		return failure("Error during login", fiber.StatusInternalServerError)
	}

	return success("Login successful", fiber.StatusOK, UserDetails{UserID: creds.UserID})
}

// Logout destroys the caller's session. Logging out without one is not an
// error.
func (s *AuthService) Logout(sess UserSession) Result {
	if _, ok := sess.UserID(); !ok {
		return success("No active session to log out from.", fiber.StatusOK, nil)
	}

	if err := sess.Destroy(); err != nil {
		log.Printf("logout: session destroy failed: %v", err)
		return failure("Logout failed due to server error.", fiber.StatusInternalServerError)
	}

	return success("Logged out successfully.", fiber.StatusOK, nil)
}

func incorrectCredentials() Result {
	return failure("Incorrect credentials", fiber.StatusUnauthorized)
}
