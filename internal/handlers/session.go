package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pomotrack/pomodoro-api/internal/dto"
	apierrors "github.com/pomotrack/pomodoro-api/internal/errors"
	"github.com/pomotrack/pomodoro-api/internal/middleware"
	"github.com/pomotrack/pomodoro-api/internal/models"
	"github.com/pomotrack/pomodoro-api/internal/services"
)

// SessionHandler coordinates the session ledger HTTP handlers.
type SessionHandler struct {
	sessionService *services.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// sessionRequest is the shared payload for start and complete calls. Both
// fields are optional; omitted values fall back to a 25 minute work session.
type sessionRequest struct {
	Duration        int                `json:"duration" binding:"omitempty,min=1"`
	SessionType     models.SessionType `json:"session_type"`
	TaskDescription string             `json:"task_description" binding:"omitempty,max=200"`
}

// StartSession records a new pending session.
func (h *SessionHandler) StartSession(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.sessionService.Start(services.SessionInput{
		UserID:          userID,
		Duration:        req.Duration,
		SessionType:     req.SessionType,
		TaskDescription: req.TaskDescription,
	})
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StartSessionResponse{
		Success:   true,
		SessionID: session.ID,
	})
}

// CompleteSession records a session that finished client-side.
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	session, total, err := h.sessionService.Complete(services.SessionInput{
		UserID:          userID,
		Duration:        req.Duration,
		SessionType:     req.SessionType,
		TaskDescription: req.TaskDescription,
	})
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompleteSessionResponse{
		Success:       true,
		SessionID:     session.ID,
		TotalSessions: total,
	})
}

// NextSession returns the cycle policy's suggestion for what to run next.
func (h *SessionHandler) NextSession(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	next, err := h.sessionService.SuggestNext(userID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NextSessionResponse{
		NextSessionType: next,
	})
}

func respondSessionError(c *gin.Context, err error) {
	var fieldErr *services.FieldError

	switch {
	case errors.As(err, &fieldErr):
		apierrors.BadRequestWithDetails(c, fieldErr.Error(), gin.H{"field": fieldErr.Field})
	case errors.Is(err, services.ErrInvalidSessionType),
		errors.Is(err, services.ErrInvalidDuration):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
