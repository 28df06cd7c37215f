package repository

import (
	"database/sql"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
)

// StatsRepository handles user_stats database operations
type StatsRepository struct {
	db database.DBTX
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db database.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetByUserID retrieves a user's stats row, or nil if none exists yet
func (r *StatsRepository) GetByUserID(userID int64) (*models.UserStats, error) {
	query := `
		SELECT id, user_id, weekly_goal, mastery_level, study_streak,
			focus_score, retention_rate, cards_mastered, minutes_per_day, accuracy
		FROM user_stats
		WHERE user_id = ?
	`

	stats := &models.UserStats{}
	err := r.db.QueryRow(query, userID).Scan(
		&stats.ID,
		&stats.UserID,
		&stats.WeeklyGoal,
		&stats.MasteryLevel,
		&stats.StudyStreak,
		&stats.FocusScore,
		&stats.RetentionRate,
		&stats.CardsMastered,
		&stats.MinutesPerDay,
		&stats.Accuracy,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Create inserts a zero-valued stats row for a user
func (r *StatsRepository) Create(userID int64) (*models.UserStats, error) {
	query := `
		INSERT INTO user_stats (user_id)
		VALUES (?);
	`

	if _, err := r.db.ExecReturningID(query, userID); err != nil {
		return nil, err
	}

	return r.GetByUserID(userID)
}

// Update overwrites every metric of an existing stats row
func (r *StatsRepository) Update(stats *models.UserStats) error {
	query := `
		UPDATE user_stats
		SET weekly_goal = ?, mastery_level = ?, study_streak = ?,
			focus_score = ?, retention_rate = ?, cards_mastered = ?,
			minutes_per_day = ?, accuracy = ?
		WHERE user_id = ?
	`

	_, err := r.db.Exec(query,
		stats.WeeklyGoal, stats.MasteryLevel, stats.StudyStreak,
		stats.FocusScore, stats.RetentionRate, stats.CardsMastered,
		stats.MinutesPerDay, stats.Accuracy, stats.UserID)
	return err
}
