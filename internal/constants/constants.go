package constants

// Session / context keys
const (
	SessionCookieName = "pomodoro_session"
	ContextKeyUserID  = "user_id"
)

// Authentication limits
const (
	MinPasswordLength = 6
	MinUsernameLength = 3
	MaxUsernameLength = 80
	MaxEmailLength    = 120
)

// Pagination
const (
	MinPageSize        = 1
	DefaultPageSize    = 20
	MaxPageSize        = 100
	HistoryPageSize    = 20
	RecentSessionLimit = 10
)

// Timer defaults (minutes)
const (
	DefaultWorkDuration      = 25
	DefaultShortBreak        = 5
	DefaultLongBreak         = 15
	DefaultLongBreakInterval = 4
)

// Settings validation ranges (inclusive)
const (
	MinWorkDuration      = 1
	MaxWorkDuration      = 60
	MinShortBreak        = 1
	MaxShortBreak        = 30
	MinLongBreak         = 1
	MaxLongBreak         = 60
	MinLongBreakInterval = 2
	MaxLongBreakInterval = 10
)

// MaxTaskDescriptionLength bounds the optional note attached to a session.
const MaxTaskDescriptionLength = 200
