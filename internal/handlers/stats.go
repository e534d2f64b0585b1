package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pomotrack/pomodoro-api/internal/dto"
	apierrors "github.com/pomotrack/pomodoro-api/internal/errors"
	"github.com/pomotrack/pomodoro-api/internal/middleware"
	"github.com/pomotrack/pomodoro-api/internal/models"
	"github.com/pomotrack/pomodoro-api/internal/services"
	"github.com/pomotrack/pomodoro-api/internal/utils"
)

// StatsHandler serves the read-side endpoints: counters, dashboard, history.
type StatsHandler struct {
	statsService   *services.StatsService
	sessionService *services.SessionService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *services.StatsService, sessionService *services.SessionService) *StatsHandler {
	return &StatsHandler{
		statsService:   statsService,
		sessionService: sessionService,
	}
}

// GetStats returns today's and total completed work counts.
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	stats, err := h.statsService.GetStats(userID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetDashboard returns the aggregated dashboard payload.
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	data, err := h.statsService.GetDashboardData(userID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		TodaySessions:  data.TodaySessions,
		WeekSessions:   data.WeekSessions,
		TotalSessions:  data.TotalSessions,
		TotalHours:     data.TotalHours,
		WeeklyData:     data.WeeklyData,
		RecentSessions: dto.ToSessionDTOs(data.RecentSessions),
	})
}

// GetHistory returns the user's sessions, newest first, 20 per page.
// Optional query filters: session_type, completed.
func (h *StatsHandler) GetHistory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	filter := services.HistoryFilter{
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if typeStr := c.Query("session_type"); typeStr != "" {
		sessionType := models.SessionType(typeStr)
		filter.SessionType = &sessionType
	}
	if completedStr := c.Query("completed"); completedStr != "" {
		completed, err := strconv.ParseBool(completedStr)
		if err != nil {
			apierrors.BadRequest(c, "completed must be true or false")
			return
		}
		filter.Completed = &completed
	}

	sessions, total, err := h.sessionService.History(userID, filter)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(sessions, filter.Page, filter.PageSize, total))
}
