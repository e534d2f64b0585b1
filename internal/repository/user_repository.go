package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/pomotrack/pomodoro-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when creating the user row fails inside the signup transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateSettings is returned when creating the default settings row fails inside the signup transaction.
	ErrCreateSettings = errors.New("user repository: create settings failed")
	// ErrDeleteSessions is returned when deleting a user's sessions fails inside the delete transaction.
	ErrDeleteSessions = errors.New("user repository: delete sessions failed")
	// ErrDeleteSettings is returned when deleting a user's settings fails inside the delete transaction.
	ErrDeleteSettings = errors.New("user repository: delete settings failed")
	// ErrDeleteUser is returned when deleting the user row fails inside the delete transaction.
	ErrDeleteUser = errors.New("user repository: delete user failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithDefaultSettings creates the user and their settings row atomically.
func (r *GormUserRepository) CreateWithDefaultSettings(user *models.User, settings *models.UserSettings) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		settings.UserID = user.ID

		if err := tx.Create(settings).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateSettings, err)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin stamps the user's last login time
func (r *GormUserRepository) UpdateLastLogin(id uint64, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login", at).Error
}

// Delete removes the user and cascades to their sessions and settings.
// The cascade is issued explicitly rather than left to the schema.
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrDeleteSessions, err)
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.UserSettings{}).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrDeleteSettings, err)
		}

		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrDeleteUser, err)
		}

		return nil
	})
}
