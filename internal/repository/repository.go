package repository

import (
	"time"

	"github.com/pomotrack/pomodoro-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateWithDefaultSettings creates a user and their default settings
	// row within a single transaction.
	CreateWithDefaultSettings(user *models.User, settings *models.UserSettings) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// UpdateLastLogin stamps the user's last login time
	UpdateLastLogin(id uint64, at time.Time) error

	// Delete removes the user together with their sessions and settings
	// in a single transaction.
	Delete(id uint64) error
}

// SessionFilter holds filtering options for listing sessions
type SessionFilter struct {
	UserID      uint64
	SessionType *models.SessionType
	Completed   *bool
	StartedFrom *time.Time
	StartedTo   *time.Time
	Page        int
	PageSize    int
}

// SessionRepository defines the interface for session ledger access
type SessionRepository interface {
	// Create appends a session row to the ledger
	Create(session *models.Session) error

	// List retrieves sessions with filtering and pagination,
	// newest started_at first
	List(filter SessionFilter) ([]models.Session, int64, error)

	// Recent returns the latest sessions of any type for a user
	Recent(userID uint64, limit int) ([]models.Session, error)

	// Last returns the most recently started session for a user,
	// or gorm.ErrRecordNotFound when the ledger is empty
	Last(userID uint64) (*models.Session, error)

	// CountCompletedWork counts completed work sessions whose started_at
	// falls within [from, to); nil bounds are open
	CountCompletedWork(userID uint64, from, to *time.Time) (int64, error)

	// TotalFocusMinutes sums the intended duration of completed work sessions
	TotalFocusMinutes(userID uint64) (int64, error)

	// CompletedWorkSinceLastLongBreak counts completed work sessions started
	// after the user's most recent completed long break (or all of them when
	// no long break exists)
	CompletedWorkSinceLastLongBreak(userID uint64) (int64, error)
}

// SettingsRepository defines the interface for user settings access
type SettingsRepository interface {
	// FindByUserID finds the settings row for a user
	FindByUserID(userID uint64) (*models.UserSettings, error)

	// Create inserts a settings row; the unique index on user_id rejects
	// a second row for the same user
	Create(settings *models.UserSettings) error

	// Save persists the full settings row
	Save(settings *models.UserSettings) error
}
