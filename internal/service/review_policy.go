package service

import (
	"time"

	"flashlearn/internal/models"
)

// ReviewPolicy holds the spaced-repetition thresholds and scheduling
// intervals. It is injected rather than hard-coded so deployments and tests
// can override the numbers.
type ReviewPolicy struct {
	MasteredThreshold  int // correct attempts required for mastered
	ReviewingThreshold int // correct attempts required for reviewing
	LearningThreshold  int // incorrect attempts that demote to learning

	MasteredInterval  time.Duration
	ReviewingInterval time.Duration
	LearningInterval  time.Duration
	NewInterval       time.Duration
}

// DefaultReviewPolicy returns the standard 5/3/3 policy
func DefaultReviewPolicy() ReviewPolicy {
	return ReviewPolicy{
		MasteredThreshold:  5,
		ReviewingThreshold: 3,
		LearningThreshold:  3,
		MasteredInterval:   7 * 24 * time.Hour,
		ReviewingInterval:  3 * 24 * time.Hour,
		LearningInterval:   12 * time.Hour,
		NewInterval:        24 * time.Hour,
	}
}

// Evaluate maps attempt counters to a review status and the next review
// time. Rules are checked in a fixed order and the first match wins:
// mastered, then reviewing, then learning, then new. A record that crosses
// both the reviewing and learning thresholds therefore resolves by rule
// order, not by which counter is larger.
func (p ReviewPolicy) Evaluate(correct, incorrect int, now time.Time) (models.ReviewStatus, time.Time) {
	switch {
	case correct >= p.MasteredThreshold:
		return models.StatusMastered, now.Add(p.MasteredInterval)
	case correct >= p.ReviewingThreshold:
		return models.StatusReviewing, now.Add(p.ReviewingInterval)
	case incorrect >= p.LearningThreshold:
		return models.StatusLearning, now.Add(p.LearningInterval)
	default:
		return models.StatusNew, now.Add(p.NewInterval)
	}
}
