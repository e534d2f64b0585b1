package services

import "github.com/pomotrack/pomodoro-api/internal/models"

// NextSessionType returns the session type that should follow the most recent
// completed work session, given how many work sessions the user has completed
// in the current cycle (i.e. since the last long break). Every
// LongBreakInterval-th work session earns a long break; any other work session
// is followed by a short break. With no completed work in the cycle the
// suggestion is to start working.
//
// The policy is advisory: the ledger accepts any session type the client
// submits, and this function never touches storage.
func NextSessionType(settings *models.UserSettings, completedWorkInCycle int) models.SessionType {
	if completedWorkInCycle <= 0 {
		return models.SessionTypeWork
	}

	interval := settings.LongBreakInterval
	if interval < 1 {
		interval = 1
	}

	if completedWorkInCycle%interval == 0 {
		return models.SessionTypeLongBreak
	}
	return models.SessionTypeShortBreak
}
