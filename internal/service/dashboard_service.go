package service

import (
	"fmt"

	"flashlearn/internal/database"
	"flashlearn/internal/repository"
)

// DeckOverview is the per-deck slice of the dashboard
type DeckOverview struct {
	DeckID            int64  `json:"deck_id"`
	DeckTitle         string `json:"deck_title"`
	FlashcardsStudied int    `json:"flashcards_studied"`
}

// DashboardData is the read-only view assembled for a user
type DashboardData struct {
	Username               string         `json:"username"`
	TotalFlashcardsStudied int            `json:"total_flashcards_studied"`
	MostReviewedDeck       *string        `json:"most_reviewed_deck"`
	WeeklyGoal             int            `json:"weekly_goal"`
	MasteryLevel           float64        `json:"mastery_level"`
	StudyStreak            int            `json:"study_streak"`
	FocusScore             float64        `json:"focus_score"`
	RetentionRate          float64        `json:"retention_rate"`
	CardsMastered          int            `json:"cards_mastered"`
	MinutesPerDay          int            `json:"minutes_per_day"`
	Accuracy               float64        `json:"accuracy"`
	Decks                  []DeckOverview `json:"decks"`
}

// DashboardService assembles the read-side view combining deck, progress and
// stats data
type DashboardService struct {
	users    *repository.UserRepository
	progress *repository.ProgressRepository
	stats    *StatsService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *database.DB, stats *StatsService) *DashboardService {
	return &DashboardService{
		users:    repository.NewUserRepository(db),
		progress: repository.NewProgressRepository(db),
		stats:    stats,
	}
}

// Overview builds the dashboard for a user. Stats are recomputed on the way
// out, so the snapshot is always consistent with the progress rows.
func (s *DashboardService) Overview(userID int64) (*DashboardData, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	counts, err := s.progress.GetDeckStudyCounts(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate deck counts: %w", err)
	}

	data := &DashboardData{
		Username: user.Username,
		Decks:    make([]DeckOverview, 0, len(counts)),
	}

	// Counts arrive in deck insertion order, so a strict > keeps the first
	// deck on ties; a deck nobody has studied is never selected
	mostReviews := 0
	for _, c := range counts {
		data.TotalFlashcardsStudied += c.StudyCount
		if c.StudyCount > mostReviews {
			mostReviews = c.StudyCount
			title := c.DeckTitle
			data.MostReviewedDeck = &title
		}
		data.Decks = append(data.Decks, DeckOverview{
			DeckID:            c.DeckID,
			DeckTitle:         c.DeckTitle,
			FlashcardsStudied: c.StudyCount,
		})
	}

	stats, err := s.stats.Recompute(userID)
	if err != nil {
		return nil, err
	}

	data.WeeklyGoal = stats.WeeklyGoal
	data.MasteryLevel = stats.MasteryLevel
	data.StudyStreak = stats.StudyStreak
	data.FocusScore = stats.FocusScore
	data.RetentionRate = stats.RetentionRate
	data.CardsMastered = stats.CardsMastered
	data.MinutesPerDay = stats.MinutesPerDay
	data.Accuracy = stats.Accuracy

	return data, nil
}
