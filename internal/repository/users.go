package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jobtrackd/jobtrackd/internal/models"
	"gorm.io/gorm"
)

// Users persists account records.
type Users struct {
	db *gorm.DB
}

// NewUsers creates a Users repository.
func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Credentials is the stored material needed to verify a login.
type Credentials struct {
	UserID       string
	PasswordHash string
}

// Create inserts a new account. Returns ErrConflict when the email is
// already registered.
func (r *Users) Create(email, passwordHash string) (*models.User, error) {
	user := models.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByEmail looks up stored credentials by email. Returns ErrNotFound when
// no such account exists.
func (r *Users) FindByEmail(email string) (*Credentials, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &Credentials{UserID: user.UserID, PasswordHash: user.PasswordHash}, nil
}
