package models

// UserStats is a per-user rollup of study metrics. The derived fields
// (mastery, retention, focus, cards mastered, accuracy) are a materialized
// view over the user's progress rows and are recomputed after every attempt;
// weekly_goal, study_streak and minutes_per_day are caller-settable.
type UserStats struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	WeeklyGoal    int     `json:"weekly_goal"`
	MasteryLevel  float64 `json:"mastery_level"`
	StudyStreak   int     `json:"study_streak"`
	FocusScore    float64 `json:"focus_score"`
	RetentionRate float64 `json:"retention_rate"`
	CardsMastered int     `json:"cards_mastered"`
	MinutesPerDay int     `json:"minutes_per_day"`
	Accuracy      float64 `json:"accuracy"`
}
