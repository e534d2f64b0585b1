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

// SettingsHandler coordinates the settings HTTP handlers.
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings returns the user's settings, creating defaults on first access.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	settings, err := h.settingsService.GetOrCreate(userID)
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsDTO(*settings))
}

// UpdateSettings applies a full settings update, all fields at once.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateSettingsRequest struct {
		WorkDuration         int          `json:"work_duration" binding:"required"`
		ShortBreakDuration   int          `json:"short_break_duration" binding:"required"`
		LongBreakDuration    int          `json:"long_break_duration" binding:"required"`
		LongBreakInterval    int          `json:"long_break_interval" binding:"required"`
		AutoStartBreaks      bool         `json:"auto_start_breaks"`
		AutoStartPomodoros   bool         `json:"auto_start_pomodoros"`
		NotificationsEnabled bool         `json:"notifications_enabled"`
		SoundEnabled         bool         `json:"sound_enabled"`
		Theme                models.Theme `json:"theme" binding:"required"`
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Update(userID, services.UpdateSettingsInput{
		WorkDuration:         req.WorkDuration,
		ShortBreakDuration:   req.ShortBreakDuration,
		LongBreakDuration:    req.LongBreakDuration,
		LongBreakInterval:    req.LongBreakInterval,
		AutoStartBreaks:      req.AutoStartBreaks,
		AutoStartPomodoros:   req.AutoStartPomodoros,
		NotificationsEnabled: req.NotificationsEnabled,
		SoundEnabled:         req.SoundEnabled,
		Theme:                req.Theme,
	})
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsDTO(*settings))
}

func respondSettingsError(c *gin.Context, err error) {
	var fieldErr *services.FieldError

	switch {
	case errors.As(err, &fieldErr):
		apierrors.BadRequestWithDetails(c, fieldErr.Error(), gin.H{"field": fieldErr.Field})
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
