package dto

import "github.com/pomotrack/pomodoro-api/internal/models"

// SettingsDTO represents a user's timer configuration in API responses
type SettingsDTO struct {
	WorkDuration         int          `json:"work_duration"`
	ShortBreakDuration   int          `json:"short_break_duration"`
	LongBreakDuration    int          `json:"long_break_duration"`
	LongBreakInterval    int          `json:"long_break_interval"`
	AutoStartBreaks      bool         `json:"auto_start_breaks"`
	AutoStartPomodoros   bool         `json:"auto_start_pomodoros"`
	NotificationsEnabled bool         `json:"notifications_enabled"`
	SoundEnabled         bool         `json:"sound_enabled"`
	Theme                models.Theme `json:"theme"`
}

// ToSettingsDTO converts a UserSettings model to SettingsDTO
func ToSettingsDTO(settings models.UserSettings) SettingsDTO {
	return SettingsDTO{
		WorkDuration:         settings.WorkDuration,
		ShortBreakDuration:   settings.ShortBreakDuration,
		LongBreakDuration:    settings.LongBreakDuration,
		LongBreakInterval:    settings.LongBreakInterval,
		AutoStartBreaks:      settings.AutoStartBreaks,
		AutoStartPomodoros:   settings.AutoStartPomodoros,
		NotificationsEnabled: settings.NotificationsEnabled,
		SoundEnabled:         settings.SoundEnabled,
		Theme:                settings.Theme,
	}
}
