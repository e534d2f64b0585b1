package dto

import (
	"time"

	"github.com/pomotrack/pomodoro-api/internal/models"
)

// SessionDTO represents a ledger row in API responses
type SessionDTO struct {
	ID              uint64             `json:"id"`
	SessionType     models.SessionType `json:"session_type"`
	Duration        int                `json:"duration"`
	Completed       bool               `json:"completed"`
	StartedAt       time.Time          `json:"started_at"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
	TaskDescription string             `json:"task_description,omitempty"`
}

// StartSessionResponse is the reply to a session start call
type StartSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID uint64 `json:"session_id"`
}

// CompleteSessionResponse is the reply to a session complete call
type CompleteSessionResponse struct {
	Success       bool   `json:"success"`
	SessionID     uint64 `json:"session_id"`
	TotalSessions int64  `json:"total_sessions"`
}

// NextSessionResponse carries the cycle policy's suggestion
type NextSessionResponse struct {
	NextSessionType models.SessionType `json:"next_session_type"`
}

// HistoryResponse is a paginated list of sessions
type HistoryResponse struct {
	Sessions   []SessionDTO `json:"sessions"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalCount int64        `json:"total_count"`
	TotalPages int          `json:"total_pages"`
}

// DashboardResponse aggregates the dashboard payload
type DashboardResponse struct {
	TodaySessions  int64        `json:"today_sessions"`
	WeekSessions   int64        `json:"week_sessions"`
	TotalSessions  int64        `json:"total_sessions"`
	TotalHours     float64      `json:"total_hours"`
	WeeklyData     []int64      `json:"weekly_data"`
	RecentSessions []SessionDTO `json:"recent_sessions"`
}

// ToSessionDTO converts a Session model to SessionDTO
func ToSessionDTO(session models.Session) SessionDTO {
	return SessionDTO{
		ID:              session.ID,
		SessionType:     session.SessionType,
		Duration:        session.Duration,
		Completed:       session.Completed,
		StartedAt:       session.StartedAt,
		CompletedAt:     session.CompletedAt,
		TaskDescription: session.TaskDescription,
	}
}

// ToSessionDTOs converts a slice of sessions
func ToSessionDTOs(sessions []models.Session) []SessionDTO {
	items := make([]SessionDTO, len(sessions))
	for i, session := range sessions {
		items[i] = ToSessionDTO(session)
	}
	return items
}

// ToHistoryResponse converts a page of sessions to HistoryResponse
func ToHistoryResponse(sessions []models.Session, page, pageSize int, totalCount int64) HistoryResponse {
	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return HistoryResponse{
		Sessions:   ToSessionDTOs(sessions),
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
