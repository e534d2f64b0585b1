package models

import "time"

type SessionType string

const (
	SessionTypeWork       SessionType = "work"
	SessionTypeShortBreak SessionType = "short_break"
	SessionTypeLongBreak  SessionType = "long_break"
)

// ValidSessionType reports whether t is one of the three known session types.
func ValidSessionType(t SessionType) bool {
	switch t {
	case SessionTypeWork, SessionTypeShortBreak, SessionTypeLongBreak:
		return true
	}
	return false
}

// Session is one timed interval recorded by the client. Duration is the
// intended length in minutes, not the wall-clock elapsed time. A pending
// session has Completed=false and CompletedAt=nil; once completed the row is
// never modified again.
type Session struct {
	ID              uint64      `gorm:"primarykey" json:"id"`
	UserID          uint64      `gorm:"not null;index" json:"user_id"`
	SessionType     SessionType `gorm:"type:varchar(20);not null" json:"session_type"`
	Duration        int         `gorm:"not null" json:"duration"`
	Completed       bool        `gorm:"not null;default:false" json:"completed"`
	StartedAt       time.Time   `gorm:"not null;index" json:"started_at"`
	CompletedAt     *time.Time  `json:"completed_at"`
	TaskDescription string      `gorm:"type:varchar(200)" json:"task_description,omitempty"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
