package models

import "time"

// ReviewStatus is the lifecycle stage of a flashcard's mastery
type ReviewStatus string

const (
	StatusNew       ReviewStatus = "new"
	StatusLearning  ReviewStatus = "learning"
	StatusReviewing ReviewStatus = "reviewing"
	StatusMastered  ReviewStatus = "mastered"
)

// Progress is the per-(user, flashcard) study history and scheduling state.
// One row exists per pair, created lazily on the first recorded attempt.
type Progress struct {
	ID                int64        `json:"id"`
	UserID            int64        `json:"user_id"`
	DeckID            int64        `json:"deck_id"`
	FlashcardID       int64        `json:"flashcard_id"`
	StudyCount        int          `json:"study_count"`
	CorrectAttempts   int          `json:"correct_attempts"`
	IncorrectAttempts int          `json:"incorrect_attempts"`
	TotalStudyTime    int          `json:"total_study_time"` // minutes
	LastStudiedAt     time.Time    `json:"last_studied_at"`
	NextReviewAt      time.Time    `json:"next_review_at"`
	ReviewStatus      ReviewStatus `json:"review_status"`
	IsLearned         bool         `json:"is_learned"`
}

// CountersConsistent reports whether the attempt counters add up.
// correct + incorrect must equal study_count after every update.
func (p *Progress) CountersConsistent() bool {
	return p.CorrectAttempts+p.IncorrectAttempts == p.StudyCount &&
		p.CorrectAttempts >= 0 && p.IncorrectAttempts >= 0
}

// IsDue reports whether the card should resurface for study at the given time
func (p *Progress) IsDue(now time.Time) bool {
	return !p.NextReviewAt.After(now)
}
