package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/pomotrack/pomodoro-api/internal/constants"
	"github.com/pomotrack/pomodoro-api/internal/models"
	"github.com/pomotrack/pomodoro-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidSessionType = errors.New("session_type must be one of: work, short_break, long_break")
	ErrInvalidDuration    = errors.New("duration must be a positive number of minutes")
)

// SessionService owns the session ledger: every timer run the client reports
// becomes a row here, and rows are never updated once completed.
type SessionService struct {
	sessionRepo  repository.SessionRepository
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, settingsRepo repository.SettingsRepository) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
	}
}

// SessionInput carries the client-supplied fields for starting or completing
// a session. Zero values fall back to the historical defaults: 25 minutes of
// work. Duration is taken as given and is not clamped against the user's
// configured settings.
type SessionInput struct {
	UserID          uint64
	Duration        int
	SessionType     models.SessionType
	TaskDescription string
}

func (s *SessionService) normalize(input *SessionInput) error {
	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if input.SessionType == "" {
		input.SessionType = models.SessionTypeWork
	}
	if !models.ValidSessionType(input.SessionType) {
		return ErrInvalidSessionType
	}

	if input.Duration == 0 {
		input.Duration = constants.DefaultWorkDuration
	}
	if input.Duration < 0 {
		return ErrInvalidDuration
	}

	return nil
}

// Start records a pending session beginning now. The server clock, not the
// client, supplies started_at.
func (s *SessionService) Start(input SessionInput) (*models.Session, error) {
	if err := s.normalize(&input); err != nil {
		return nil, err
	}

	session := &models.Session{
		UserID:          input.UserID,
		SessionType:     input.SessionType,
		Duration:        input.Duration,
		Completed:       false,
		StartedAt:       time.Now().UTC(),
		TaskDescription: input.TaskDescription,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Complete records an already-finished session in one call, the way the
// client reports a timer that reached zero. It inserts a fresh completed row
// with started_at back-computed from the duration; it never looks up a
// pending row, so a cycle driven through both Start and Complete leaves two
// rows in the ledger. Returns the session and the user's updated count of
// completed work sessions.
func (s *SessionService) Complete(input SessionInput) (*models.Session, int64, error) {
	if err := s.normalize(&input); err != nil {
		return nil, 0, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		UserID:          input.UserID,
		SessionType:     input.SessionType,
		Duration:        input.Duration,
		Completed:       true,
		StartedAt:       now.Add(-time.Duration(input.Duration) * time.Minute),
		CompletedAt:     &now,
		TaskDescription: input.TaskDescription,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, 0, fmt.Errorf("failed to create session: %w", err)
	}

	total, err := s.sessionRepo.CountCompletedWork(input.UserID, nil, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return session, total, nil
}

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	SessionType *models.SessionType
	Completed   *bool
	Page        int
	PageSize    int
}

// History lists the user's sessions, newest first.
func (s *SessionService) History(userID uint64, filter HistoryFilter) ([]models.Session, int64, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("failed to find user: %w", err)
	}

	if filter.SessionType != nil && !models.ValidSessionType(*filter.SessionType) {
		return nil, 0, ErrInvalidSessionType
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.HistoryPageSize
	}

	sessions, total, err := s.sessionRepo.List(repository.SessionFilter{
		UserID:      userID,
		SessionType: filter.SessionType,
		Completed:   filter.Completed,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, total, nil
}

// SuggestNext applies the cycle policy to the user's ledger: after a break or
// an empty ledger the suggestion is work; after a work session the suggestion
// depends on how many work sessions the current cycle holds. The ledger never
// enforces the suggestion.
func (s *SessionService) SuggestNext(userID uint64) (models.SessionType, error) {
	settings, err := s.loadSettings(userID)
	if err != nil {
		return "", err
	}

	last, err := s.sessionRepo.Last(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SessionTypeWork, nil
		}
		return "", fmt.Errorf("failed to load last session: %w", err)
	}

	if last.SessionType != models.SessionTypeWork {
		return models.SessionTypeWork, nil
	}

	inCycle, err := s.sessionRepo.CompletedWorkSinceLastLongBreak(userID)
	if err != nil {
		return "", fmt.Errorf("failed to count cycle sessions: %w", err)
	}

	return NextSessionType(settings, int(inCycle)), nil
}

func (s *SessionService) loadSettings(userID uint64) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.FindByUserID(userID)
	if err == nil {
		return settings, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if _, err := s.userRepo.FindByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		return models.DefaultSettings(userID), nil
	}
	return nil, fmt.Errorf("failed to load settings: %w", err)
}
