package models

import "time"

type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(128);not null" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`

	// Relations
	Sessions []Session     `gorm:"foreignKey:UserID" json:"-"`
	Settings *UserSettings `gorm:"foreignKey:UserID" json:"-"`
}
