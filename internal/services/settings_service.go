package services

import (
	"errors"
	"fmt"

	"github.com/pomotrack/pomodoro-api/internal/constants"
	"github.com/pomotrack/pomodoro-api/internal/models"
	"github.com/pomotrack/pomodoro-api/internal/repository"
	"gorm.io/gorm"
)

// SettingsService handles per-user timer configuration.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository, userRepo repository.UserRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
	}
}

// GetOrCreate returns the user's settings, creating the defaults row on first
// access. Creation races are resolved by the unique index on user_id: a
// losing insert falls back to reading the row the winner created.
func (s *SettingsService) GetOrCreate(userID uint64) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.FindByUserID(userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	defaults := models.DefaultSettings(userID)
	if err := s.settingsRepo.Create(defaults); err != nil {
		// Lost the race against a concurrent first access; the row exists now.
		if existing, findErr := s.settingsRepo.FindByUserID(userID); findErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}

	return defaults, nil
}

// UpdateSettingsInput carries the full set of editable settings fields.
type UpdateSettingsInput struct {
	WorkDuration         int
	ShortBreakDuration   int
	LongBreakDuration    int
	LongBreakInterval    int
	AutoStartBreaks      bool
	AutoStartPomodoros   bool
	NotificationsEnabled bool
	SoundEnabled         bool
	Theme                models.Theme
}

// Update validates every field against its domain and applies the input
// all-or-nothing: on any violation the stored settings are left untouched and
// the returned FieldError names the offending field.
func (s *SettingsService) Update(userID uint64, input UpdateSettingsInput) (*models.UserSettings, error) {
	if err := validateSettingsInput(input); err != nil {
		return nil, err
	}

	settings, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	settings.WorkDuration = input.WorkDuration
	settings.ShortBreakDuration = input.ShortBreakDuration
	settings.LongBreakDuration = input.LongBreakDuration
	settings.LongBreakInterval = input.LongBreakInterval
	settings.AutoStartBreaks = input.AutoStartBreaks
	settings.AutoStartPomodoros = input.AutoStartPomodoros
	settings.NotificationsEnabled = input.NotificationsEnabled
	settings.SoundEnabled = input.SoundEnabled
	settings.Theme = input.Theme

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}

func validateSettingsInput(input UpdateSettingsInput) error {
	if input.WorkDuration < constants.MinWorkDuration || input.WorkDuration > constants.MaxWorkDuration {
		return NewFieldError("work_duration", "must be between %d and %d minutes",
			constants.MinWorkDuration, constants.MaxWorkDuration)
	}
	if input.ShortBreakDuration < constants.MinShortBreak || input.ShortBreakDuration > constants.MaxShortBreak {
		return NewFieldError("short_break_duration", "must be between %d and %d minutes",
			constants.MinShortBreak, constants.MaxShortBreak)
	}
	if input.LongBreakDuration < constants.MinLongBreak || input.LongBreakDuration > constants.MaxLongBreak {
		return NewFieldError("long_break_duration", "must be between %d and %d minutes",
			constants.MinLongBreak, constants.MaxLongBreak)
	}
	if input.LongBreakInterval < constants.MinLongBreakInterval || input.LongBreakInterval > constants.MaxLongBreakInterval {
		return NewFieldError("long_break_interval", "must be between %d and %d",
			constants.MinLongBreakInterval, constants.MaxLongBreakInterval)
	}
	if input.Theme != models.ThemeLight && input.Theme != models.ThemeDark {
		return NewFieldError("theme", "must be one of: light, dark")
	}
	return nil
}
