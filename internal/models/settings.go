package models

import (
	"time"

	"github.com/pomotrack/pomodoro-api/internal/constants"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserSettings holds per-user timer configuration. Exactly one row exists per
// user, enforced by the unique index on UserID; the row is created lazily with
// defaults on first access.
type UserSettings struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"uniqueIndex;not null" json:"user_id"`

	// Timer durations (minutes)
	WorkDuration       int `gorm:"not null;default:25" json:"work_duration"`
	ShortBreakDuration int `gorm:"not null;default:5" json:"short_break_duration"`
	LongBreakDuration  int `gorm:"not null;default:15" json:"long_break_duration"`
	LongBreakInterval  int `gorm:"not null;default:4" json:"long_break_interval"`

	// Preferences
	AutoStartBreaks      bool `gorm:"not null;default:false" json:"auto_start_breaks"`
	AutoStartPomodoros   bool `gorm:"not null;default:false" json:"auto_start_pomodoros"`
	NotificationsEnabled bool `gorm:"not null;default:true" json:"notifications_enabled"`
	SoundEnabled         bool `gorm:"not null;default:true" json:"sound_enabled"`

	// Appearance
	Theme Theme `gorm:"type:varchar(20);not null;default:'light'" json:"theme"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// DefaultSettings returns a settings row populated with the documented
// defaults for the given user.
func DefaultSettings(userID uint64) *UserSettings {
	return &UserSettings{
		UserID:               userID,
		WorkDuration:         constants.DefaultWorkDuration,
		ShortBreakDuration:   constants.DefaultShortBreak,
		LongBreakDuration:    constants.DefaultLongBreak,
		LongBreakInterval:    constants.DefaultLongBreakInterval,
		AutoStartBreaks:      false,
		AutoStartPomodoros:   false,
		NotificationsEnabled: true,
		SoundEnabled:         true,
		Theme:                ThemeLight,
	}
}
