package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pomotrack/pomodoro-api/internal/constants"
	"github.com/pomotrack/pomodoro-api/internal/database"
	"github.com/pomotrack/pomodoro-api/internal/dto"
	"github.com/pomotrack/pomodoro-api/internal/models"
	"github.com/pomotrack/pomodoro-api/internal/repository"
	"github.com/pomotrack/pomodoro-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SessionHandlerTestSuite defines the test suite for SessionHandler
type SessionHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *SessionHandler
	stats   *StatsHandler
	router  *gin.Engine
	user    *models.User
}

// SetupTest runs before each test
func (suite *SessionHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.UserSettings{},
	)
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	userRepo := repository.NewUserRepository(suite.db)
	sessionRepo := repository.NewSessionRepository(suite.db)
	settingsRepo := repository.NewSettingsRepository(suite.db)

	sessionService := services.NewSessionService(sessionRepo, userRepo, settingsRepo)
	statsService := services.NewStatsService(sessionRepo, userRepo)

	suite.handler = NewSessionHandler(sessionService)
	suite.stats = NewStatsHandler(statsService, sessionService)

	suite.user = &models.User{
		Username:     "timeruser",
		Email:        "timer@example.com",
		PasswordHash: "hashedpassword",
	}
	suite.Require().NoError(suite.db.Create(suite.user).Error)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create router with the authenticated user injected into the context
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, suite.user.ID)
		c.Next()
	})
	suite.router.POST("/api/session/start", suite.handler.StartSession)
	suite.router.POST("/api/session/complete", suite.handler.CompleteSession)
	suite.router.GET("/api/session/next", suite.handler.NextSession)
	suite.router.GET("/api/stats", suite.stats.GetStats)
	suite.router.GET("/api/dashboard", suite.stats.GetDashboard)
	suite.router.GET("/api/history", suite.stats.GetHistory)
}

// TearDownTest runs after each test
func (suite *SessionHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *SessionHandlerTestSuite) postJSON(path string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SessionHandlerTestSuite) getJSON(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SessionHandlerTestSuite) TestStartSession_Defaults() {
	w := suite.postJSON("/api/session/start", gin.H{})

	suite.Equal(http.StatusOK, w.Code)

	var response dto.StartSessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.Success)

	var session models.Session
	suite.Require().NoError(suite.db.First(&session, response.SessionID).Error)
	suite.Equal(models.SessionTypeWork, session.SessionType)
	suite.Equal(25, session.Duration)
	suite.False(session.Completed)
	suite.Nil(session.CompletedAt)
}

func (suite *SessionHandlerTestSuite) TestStartSession_InvalidType() {
	w := suite.postJSON("/api/session/start", gin.H{"session_type": "nap"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "work, short_break, long_break")
}

func (suite *SessionHandlerTestSuite) TestCompleteSession() {
	w := suite.postJSON("/api/session/complete", gin.H{
		"duration":     25,
		"session_type": "work",
	})

	suite.Equal(http.StatusOK, w.Code)

	var response dto.CompleteSessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.Success)
	suite.Equal(int64(1), response.TotalSessions)

	var session models.Session
	suite.Require().NoError(suite.db.First(&session, response.SessionID).Error)
	suite.True(session.Completed)
	suite.Require().NotNil(session.CompletedAt)
	suite.False(session.CompletedAt.Before(session.StartedAt))
}

// A full UI cycle issues both calls and each inserts its own row: one pending
// from start, one completed from complete. This is the recorded behavior, not
// an accident, and the ledger must keep both.
func (suite *SessionHandlerTestSuite) TestStartThenComplete_TwoLedgerRows() {
	startW := suite.postJSON("/api/session/start", gin.H{
		"duration":     25,
		"session_type": "work",
	})
	suite.Equal(http.StatusOK, startW.Code)

	completeW := suite.postJSON("/api/session/complete", gin.H{
		"duration":     25,
		"session_type": "work",
	})
	suite.Equal(http.StatusOK, completeW.Code)

	var rows []models.Session
	suite.Require().NoError(suite.db.
		Where("user_id = ?", suite.user.ID).Order("id").Find(&rows).Error)
	suite.Len(rows, 2)
	suite.False(rows[0].Completed)
	suite.True(rows[1].Completed)
}

func (suite *SessionHandlerTestSuite) TestCompleteSession_BreaksExcludedFromTotal() {
	suite.postJSON("/api/session/complete", gin.H{"duration": 25, "session_type": "work"})

	w := suite.postJSON("/api/session/complete", gin.H{"duration": 5, "session_type": "short_break"})
	suite.Equal(http.StatusOK, w.Code)

	var response dto.CompleteSessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(int64(1), response.TotalSessions)
}

func (suite *SessionHandlerTestSuite) TestGetStats() {
	// Short durations keep the back-computed start times inside today even
	// when the test runs just after midnight UTC.
	suite.postJSON("/api/session/complete", gin.H{"duration": 1, "session_type": "work"})
	suite.postJSON("/api/session/complete", gin.H{"duration": 2, "session_type": "work"})
	suite.postJSON("/api/session/complete", gin.H{"duration": 1, "session_type": "short_break"})

	w := suite.getJSON("/api/stats")
	suite.Equal(http.StatusOK, w.Code)

	var stats services.Stats
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	suite.Equal(int64(2), stats.TodaySessions)
	suite.Equal(int64(2), stats.TotalSessions)
}

func (suite *SessionHandlerTestSuite) TestGetDashboard() {
	suite.postJSON("/api/session/complete", gin.H{"duration": 25, "session_type": "work"})
	suite.postJSON("/api/session/complete", gin.H{"duration": 35, "session_type": "work"})

	w := suite.getJSON("/api/dashboard")
	suite.Equal(http.StatusOK, w.Code)

	var response dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(int64(2), response.TotalSessions)
	suite.Equal(1.0, response.TotalHours)
	suite.Len(response.WeeklyData, 7)
	suite.Len(response.RecentSessions, 2)
}

func (suite *SessionHandlerTestSuite) TestGetHistory_Paginated() {
	for i := 0; i < 25; i++ {
		suite.postJSON("/api/session/complete", gin.H{"duration": 25, "session_type": "work"})
	}

	w := suite.getJSON("/api/history?page=2")
	suite.Equal(http.StatusOK, w.Code)

	var response dto.HistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(2, response.Page)
	suite.Equal(int64(25), response.TotalCount)
	suite.Equal(2, response.TotalPages)
	suite.Len(response.Sessions, 5)
}

func (suite *SessionHandlerTestSuite) TestNextSession() {
	w := suite.getJSON("/api/session/next")
	suite.Equal(http.StatusOK, w.Code)

	var response dto.NextSessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(models.SessionTypeWork, response.NextSessionType)

	suite.postJSON("/api/session/complete", gin.H{"duration": 25, "session_type": "work"})

	w = suite.getJSON("/api/session/next")
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(models.SessionTypeShortBreak, response.NextSessionType)
}

// Run the test suite
func TestSessionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}
