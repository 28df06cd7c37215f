package service

import (
	"testing"
	"time"

	"flashlearn/internal/models"
)

func TestReviewPolicyEvaluate(t *testing.T) {
	policy := DefaultReviewPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		correct      int
		incorrect    int
		wantStatus   models.ReviewStatus
		wantInterval time.Duration
	}{
		{"no attempts", 0, 0, models.StatusNew, 24 * time.Hour},
		{"one correct", 1, 0, models.StatusNew, 24 * time.Hour},
		{"two correct", 2, 0, models.StatusNew, 24 * time.Hour},
		{"three correct", 3, 0, models.StatusReviewing, 3 * 24 * time.Hour},
		{"four correct", 4, 0, models.StatusReviewing, 3 * 24 * time.Hour},
		{"five correct", 5, 0, models.StatusMastered, 7 * 24 * time.Hour},
		{"well past mastered", 12, 1, models.StatusMastered, 7 * 24 * time.Hour},
		{"three incorrect", 0, 3, models.StatusLearning, 12 * time.Hour},
		{"many incorrect", 1, 9, models.StatusLearning, 12 * time.Hour},
		{"two incorrect stays new", 2, 2, models.StatusNew, 24 * time.Hour},
		// Both thresholds crossed: reviewing wins by rule order even though
		// incorrect outnumbers correct
		{"four correct four incorrect", 4, 4, models.StatusReviewing, 3 * 24 * time.Hour},
		{"three correct five incorrect", 3, 5, models.StatusReviewing, 3 * 24 * time.Hour},
		{"five correct ten incorrect", 5, 10, models.StatusMastered, 7 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, nextReview := policy.Evaluate(tt.correct, tt.incorrect, now)
			if status != tt.wantStatus {
				t.Errorf("status = %s, want %s", status, tt.wantStatus)
			}
			if want := now.Add(tt.wantInterval); !nextReview.Equal(want) {
				t.Errorf("nextReview = %v, want %v", nextReview, want)
			}
		})
	}
}

func TestReviewPolicyCustomThresholds(t *testing.T) {
	policy := ReviewPolicy{
		MasteredThreshold:  2,
		ReviewingThreshold: 1,
		LearningThreshold:  1,
		MasteredInterval:   48 * time.Hour,
		ReviewingInterval:  24 * time.Hour,
		LearningInterval:   6 * time.Hour,
		NewInterval:        12 * time.Hour,
	}
	now := time.Now().UTC()

	status, nextReview := policy.Evaluate(2, 0, now)
	if status != models.StatusMastered {
		t.Errorf("status = %s, want %s", status, models.StatusMastered)
	}
	if want := now.Add(48 * time.Hour); !nextReview.Equal(want) {
		t.Errorf("nextReview = %v, want %v", nextReview, want)
	}

	status, _ = policy.Evaluate(0, 1, now)
	if status != models.StatusLearning {
		t.Errorf("status = %s, want %s", status, models.StatusLearning)
	}
}
