package models

import (
	"testing"
	"time"
)

func TestDeckValidation(t *testing.T) {
	tests := []struct {
		name    string
		deck    Deck
		wantErr bool
	}{
		{
			name:    "valid deck",
			deck:    Deck{Title: "Spanish Basics", Difficulty: 3},
			wantErr: false,
		},
		{
			name:    "missing title",
			deck:    Deck{Difficulty: 3},
			wantErr: true,
		},
		{
			name:    "difficulty too low",
			deck:    Deck{Title: "Spanish Basics", Difficulty: 0},
			wantErr: true,
		},
		{
			name:    "difficulty too high",
			deck:    Deck{Title: "Spanish Basics", Difficulty: 6},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deck.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Deck.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFlashcardValidation(t *testing.T) {
	tests := []struct {
		name    string
		card    Flashcard
		wantErr bool
	}{
		{
			name:    "valid card",
			card:    Flashcard{FrontText: "hola", BackText: "hello"},
			wantErr: false,
		},
		{
			name:    "missing front",
			card:    Flashcard{BackText: "hello"},
			wantErr: true,
		},
		{
			name:    "missing back",
			card:    Flashcard{FrontText: "hola"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Flashcard.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProgressCountersConsistent(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		want     bool
	}{
		{
			name:     "fresh row",
			progress: Progress{},
			want:     true,
		},
		{
			name:     "counters add up",
			progress: Progress{StudyCount: 5, CorrectAttempts: 3, IncorrectAttempts: 2},
			want:     true,
		},
		{
			name:     "counters drifted",
			progress: Progress{StudyCount: 5, CorrectAttempts: 3, IncorrectAttempts: 1},
			want:     false,
		},
		{
			name:     "negative counter",
			progress: Progress{StudyCount: -1, CorrectAttempts: -1, IncorrectAttempts: 0},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.progress.CountersConsistent(); got != tt.want {
				t.Errorf("Progress.CountersConsistent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressIsDue(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		nextReview time.Time
		want       bool
	}{
		{
			name:       "due yesterday",
			nextReview: now.Add(-24 * time.Hour),
			want:       true,
		},
		{
			name:       "due exactly now",
			nextReview: now,
			want:       true,
		},
		{
			name:       "due tomorrow",
			nextReview: now.Add(24 * time.Hour),
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Progress{NextReviewAt: tt.nextReview}
			if got := p.IsDue(now); got != tt.want {
				t.Errorf("Progress.IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}
