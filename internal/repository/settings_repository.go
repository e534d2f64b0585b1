package repository

import (
	"github.com/pomotrack/pomodoro-api/internal/models"
	"gorm.io/gorm"
)

// GormSettingsRepository is a GORM implementation of SettingsRepository
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &GormSettingsRepository{db: db}
}

// FindByUserID finds the settings row for a user
func (r *GormSettingsRepository) FindByUserID(userID uint64) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create inserts a settings row
func (r *GormSettingsRepository) Create(settings *models.UserSettings) error {
	return r.db.Create(settings).Error
}

// Save persists the full settings row
func (r *GormSettingsRepository) Save(settings *models.UserSettings) error {
	return r.db.Save(settings).Error
}
