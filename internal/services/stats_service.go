package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pomotrack/pomodoro-api/internal/constants"
	"github.com/pomotrack/pomodoro-api/internal/models"
	"github.com/pomotrack/pomodoro-api/internal/repository"
	"gorm.io/gorm"
)

// StatsService is the read side of the session ledger. Every method is a pure
// query scoped to completed work sessions (recent-session listings excepted)
// and always reflects the latest committed ledger state.
type StatsService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(sessionRepo repository.SessionRepository, userRepo repository.UserRepository) *StatsService {
	return &StatsService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

func (s *StatsService) ensureUser(userID uint64) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	return nil
}

// dayRange returns the half-open UTC range [00:00 of day, 00:00 of the next
// day). Ranging over started_at keeps the query portable across drivers,
// unlike dialect DATE() functions.
func dayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// CountOnDate counts completed work sessions started on the given UTC
// calendar date.
func (s *StatsService) CountOnDate(userID uint64, date time.Time) (int64, error) {
	if err := s.ensureUser(userID); err != nil {
		return 0, err
	}

	from, to := dayRange(date)
	return s.sessionRepo.CountCompletedWork(userID, &from, &to)
}

// CountSince counts completed work sessions started on or after the given
// UTC calendar date.
func (s *StatsService) CountSince(userID uint64, date time.Time) (int64, error) {
	if err := s.ensureUser(userID); err != nil {
		return 0, err
	}

	from, _ := dayRange(date)
	return s.sessionRepo.CountCompletedWork(userID, &from, nil)
}

// TotalCount counts all completed work sessions.
func (s *StatsService) TotalCount(userID uint64) (int64, error) {
	if err := s.ensureUser(userID); err != nil {
		return 0, err
	}

	return s.sessionRepo.CountCompletedWork(userID, nil, nil)
}

// TotalFocusMinutes sums the intended duration of completed work sessions.
func (s *StatsService) TotalFocusMinutes(userID uint64) (int64, error) {
	if err := s.ensureUser(userID); err != nil {
		return 0, err
	}

	return s.sessionRepo.TotalFocusMinutes(userID)
}

// RoundFocusHours converts focus minutes to hours rounded to one decimal
// place, half away from zero (60 min -> 1.0, 63 min -> 1.1).
func RoundFocusHours(minutes int64) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}

// TotalFocusHours returns the total focus time in hours, one decimal place.
func (s *StatsService) TotalFocusHours(userID uint64) (float64, error) {
	minutes, err := s.TotalFocusMinutes(userID)
	if err != nil {
		return 0, err
	}
	return RoundFocusHours(minutes), nil
}

// WeeklyHistogram returns per-day completed work counts for the 7 days ending
// at today, oldest day first. The slice always has exactly 7 entries.
func (s *StatsService) WeeklyHistogram(userID uint64, today time.Time) ([]int64, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	histogram := make([]int64, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		from, to := dayRange(day)
		count, err := s.sessionRepo.CountCompletedWork(userID, &from, &to)
		if err != nil {
			return nil, err
		}
		histogram[i] = count
	}

	return histogram, nil
}

// Stats is the compact counters payload for the timer page.
type Stats struct {
	TodaySessions int64 `json:"today_sessions"`
	TotalSessions int64 `json:"total_sessions"`
}

// GetStats returns today's and the all-time completed work counts.
func (s *StatsService) GetStats(userID uint64) (*Stats, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	from, to := dayRange(today)

	todayCount, err := s.sessionRepo.CountCompletedWork(userID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's sessions: %w", err)
	}

	total, err := s.sessionRepo.CountCompletedWork(userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	return &Stats{
		TodaySessions: todayCount,
		TotalSessions: total,
	}, nil
}

// DashboardData aggregates everything the dashboard renders.
type DashboardData struct {
	TodaySessions  int64
	WeekSessions   int64
	TotalSessions  int64
	TotalHours     float64
	WeeklyData     []int64
	RecentSessions []models.Session
}

// GetDashboardData assembles counts, focus hours, the 7-day histogram and the
// latest sessions in one call.
func (s *StatsService) GetDashboardData(userID uint64) (*DashboardData, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	todayFrom, todayTo := dayRange(today)
	// Matches the historical dashboard window: started_at date >= today-7.
	weekFrom, _ := dayRange(today.AddDate(0, 0, -7))

	todayCount, err := s.sessionRepo.CountCompletedWork(userID, &todayFrom, &todayTo)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's sessions: %w", err)
	}

	weekCount, err := s.sessionRepo.CountCompletedWork(userID, &weekFrom, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count week sessions: %w", err)
	}

	total, err := s.sessionRepo.CountCompletedWork(userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	minutes, err := s.sessionRepo.TotalFocusMinutes(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum focus minutes: %w", err)
	}

	weekly, err := s.WeeklyHistogram(userID, today)
	if err != nil {
		return nil, err
	}

	recent, err := s.sessionRepo.Recent(userID, constants.RecentSessionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent sessions: %w", err)
	}

	return &DashboardData{
		TodaySessions:  todayCount,
		WeekSessions:   weekCount,
		TotalSessions:  total,
		TotalHours:     RoundFocusHours(minutes),
		WeeklyData:     weekly,
		RecentSessions: recent,
	}, nil
}
