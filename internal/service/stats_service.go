package service

import (
	"fmt"
	"math"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
	"flashlearn/internal/repository"
)

// targetTimePerCard is the focus-score normalization target: one minute of
// study per attempt scores 100
const targetTimePerCard = 1

// StatsService recomputes a user's rollup metrics from their progress rows.
// The derived fields are a materialized view: they are never incremented in
// place, only recomputed from the full record set.
type StatsService struct {
	db *database.DB
}

// NewStatsService creates a new stats service
func NewStatsService(db *database.DB) *StatsService {
	return &StatsService{db: db}
}

// Recompute recalculates and persists the derived metrics in its own
// transaction. Read paths (GET stats, dashboard) use this directly.
func (s *StatsService) Recompute(userID int64) (*models.UserStats, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stats, err := s.RecomputeIn(tx, userID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stats recompute: %w", err)
	}

	return stats, nil
}

// RecomputeIn recalculates the derived metrics inside the caller's unit of
// work. The attempt-recording path runs this in the same transaction as the
// progress write so the two can never be observed out of step.
func (s *StatsService) RecomputeIn(db database.DBTX, userID int64) (*models.UserStats, error) {
	statsRepo := repository.NewStatsRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	stats, err := statsRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}
	if stats == nil {
		stats, err = statsRepo.Create(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to create user stats: %w", err)
		}
	}

	totals, err := progressRepo.GetUserTotals(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate progress: %w", err)
	}

	// Guard the division; a user with no attempts reports 0%, not an error
	divisor := totals.TotalAttempts
	if divisor == 0 {
		divisor = 1
	}

	mastery := round2(100 * float64(totals.TotalCorrect) / float64(divisor))

	focus := 0.0
	if totals.TotalAttempts > 0 {
		averageTimePerCard := float64(totals.TotalStudyTime) / float64(totals.TotalAttempts)
		focus = round2(100 * averageTimePerCard / targetTimePerCard)
	}

	stats.MasteryLevel = mastery
	stats.RetentionRate = mastery
	stats.FocusScore = focus
	stats.CardsMastered = totals.CardsMastered
	stats.Accuracy = mastery

	if err := statsRepo.Update(stats); err != nil {
		return nil, fmt.Errorf("failed to persist user stats: %w", err)
	}

	return stats, nil
}

// StatsUpdate is a partial-merge request: each non-nil field overwrites the
// stored value, absent fields are left untouched. Values are not bounds
// checked beyond type correctness.
type StatsUpdate struct {
	WeeklyGoal    *int     `json:"weekly_goal"`
	MasteryLevel  *float64 `json:"mastery_level"`
	StudyStreak   *int     `json:"study_streak"`
	FocusScore    *float64 `json:"focus_score"`
	RetentionRate *float64 `json:"retention_rate"`
	CardsMastered *int     `json:"cards_mastered"`
	MinutesPerDay *int     `json:"minutes_per_day"`
	Accuracy      *float64 `json:"accuracy"`
}

// Update applies a partial-merge update to a user's stats, creating the row
// if it does not exist yet
func (s *StatsService) Update(userID int64, update StatsUpdate) (*models.UserStats, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	statsRepo := repository.NewStatsRepository(tx)

	stats, err := statsRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}
	if stats == nil {
		stats, err = statsRepo.Create(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to create user stats: %w", err)
		}
	}

	if update.WeeklyGoal != nil {
		stats.WeeklyGoal = *update.WeeklyGoal
	}
	if update.MasteryLevel != nil {
		stats.MasteryLevel = *update.MasteryLevel
	}
	if update.StudyStreak != nil {
		stats.StudyStreak = *update.StudyStreak
	}
	if update.FocusScore != nil {
		stats.FocusScore = *update.FocusScore
	}
	if update.RetentionRate != nil {
		stats.RetentionRate = *update.RetentionRate
	}
	if update.CardsMastered != nil {
		stats.CardsMastered = *update.CardsMastered
	}
	if update.MinutesPerDay != nil {
		stats.MinutesPerDay = *update.MinutesPerDay
	}
	if update.Accuracy != nil {
		stats.Accuracy = *update.Accuracy
	}

	if err := statsRepo.Update(stats); err != nil {
		return nil, fmt.Errorf("failed to persist user stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stats update: %w", err)
	}

	return stats, nil
}

// round2 rounds to 2 decimal places
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
