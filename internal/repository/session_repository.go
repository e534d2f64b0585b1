package repository

import (
	"errors"
	"time"

	"github.com/pomotrack/pomodoro-api/internal/database"
	"github.com/pomotrack/pomodoro-api/internal/models"
	"github.com/pomotrack/pomodoro-api/internal/utils"
	"gorm.io/gorm"
)

// GormSessionRepository is a GORM implementation of SessionRepository
type GormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &GormSessionRepository{db: db}
}

// Create appends a session row to the ledger
func (r *GormSessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// List retrieves sessions with filtering and pagination
func (r *GormSessionRepository) List(filter SessionFilter) ([]models.Session, int64, error) {
	var sessions []models.Session

	query := r.db.Model(&models.Session{}).Where("user_id = ?", filter.UserID)

	if filter.SessionType != nil {
		query = query.Where("session_type = ?", *filter.SessionType)
	}
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}
	if filter.StartedFrom != nil {
		query = query.Where("started_at >= ?", *filter.StartedFrom)
	}
	if filter.StartedTo != nil {
		query = query.Where("started_at < ?", *filter.StartedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("started_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	if err := listQuery.Find(&sessions).Error; err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// Recent returns the latest sessions of any type for a user
func (r *GormSessionRepository) Recent(userID uint64, limit int) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Last returns the most recently started session for a user
func (r *GormSessionRepository) Last(userID uint64) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("user_id = ?", userID).
		Order("started_at DESC").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// CountCompletedWork counts completed work sessions started within [from, to)
func (r *GormSessionRepository) CountCompletedWork(userID uint64, from, to *time.Time) (int64, error) {
	query := r.db.Model(&models.Session{}).
		Where("user_id = ?", userID).
		Where("session_type = ?", models.SessionTypeWork).
		Where("completed = ?", true)

	if from != nil {
		query = query.Where("started_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("started_at < ?", *to)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TotalFocusMinutes sums the intended duration of completed work sessions
func (r *GormSessionRepository) TotalFocusMinutes(userID uint64) (int64, error) {
	var total int64
	err := r.db.Model(&models.Session{}).
		Where("user_id = ?", userID).
		Where("session_type = ?", models.SessionTypeWork).
		Where("completed = ?", true).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CompletedWorkSinceLastLongBreak counts completed work sessions started after
// the most recent completed long break. With no long break on record the count
// covers the whole ledger.
func (r *GormSessionRepository) CompletedWorkSinceLastLongBreak(userID uint64) (int64, error) {
	var lastBreak models.Session
	err := r.db.Where("user_id = ?", userID).
		Where("session_type = ?", models.SessionTypeLongBreak).
		Where("completed = ?", true).
		Order("started_at DESC").
		First(&lastBreak).Error

	var from *time.Time
	switch {
	case err == nil:
		from = &lastBreak.StartedAt
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no long break yet; count the whole cycle
	default:
		return 0, err
	}

	return r.CountCompletedWork(userID, from, nil)
}
