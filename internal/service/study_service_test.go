package service

import (
	"errors"
	"sync"
	"testing"

	"flashlearn/internal/models"
)

func TestRecordAttemptValidation(t *testing.T) {
	db := newTestDB(t)
	study, _ := newTestStudyService(db)

	userID := seedUser(t, db, "val")
	deckID := seedDeck(t, db, userID, "Vocab")
	cardID := seedCard(t, db, deckID, "hola")

	tests := []struct {
		name                       string
		userID, deckID, flashcard  int64
		timeSpent                  int
		wantErr                    error
	}{
		{"zero user id", 0, deckID, cardID, 1, ErrInvalidInput},
		{"zero deck id", userID, 0, cardID, 1, ErrInvalidInput},
		{"zero flashcard id", userID, deckID, 0, 1, ErrInvalidInput},
		{"negative time", userID, deckID, cardID, -1, ErrInvalidInput},
		{"deck not owned", userID + 100, deckID, cardID, 1, ErrDeckNotFound},
		{"unknown deck", userID, deckID + 100, cardID, 1, ErrDeckNotFound},
		{"card not in deck", userID, deckID, cardID + 100, 1, ErrFlashcardNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := study.RecordAttempt(tt.userID, tt.deckID, tt.flashcard, true, tt.timeSpent)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecordAttemptCountersAndScheduling(t *testing.T) {
	db := newTestDB(t)
	study, _ := newTestStudyService(db)

	userID := seedUser(t, db, "counter")
	deckID := seedDeck(t, db, userID, "Vocab")
	cardID := seedCard(t, db, deckID, "gato")

	p, err := study.RecordAttempt(userID, deckID, cardID, true, 2)
	if err != nil {
		t.Fatalf("RecordAttempt failed: %v", err)
	}
	if p.StudyCount != 1 || p.CorrectAttempts != 1 || p.IncorrectAttempts != 0 {
		t.Errorf("counters = %d/%d/%d, want 1/1/0", p.StudyCount, p.CorrectAttempts, p.IncorrectAttempts)
	}
	if p.TotalStudyTime != 2 {
		t.Errorf("TotalStudyTime = %d, want 2", p.TotalStudyTime)
	}

	p, err = study.RecordAttempt(userID, deckID, cardID, false, 3)
	if err != nil {
		t.Fatalf("RecordAttempt failed: %v", err)
	}
	if !p.CountersConsistent() {
		t.Errorf("counters inconsistent: %d+%d != %d", p.CorrectAttempts, p.IncorrectAttempts, p.StudyCount)
	}
	if p.TotalStudyTime != 5 {
		t.Errorf("TotalStudyTime = %d, want 5", p.TotalStudyTime)
	}
	if p.NextReviewAt.Before(p.LastStudiedAt) {
		t.Errorf("NextReviewAt %v before LastStudiedAt %v", p.NextReviewAt, p.LastStudiedAt)
	}

	// The two attempts must live in a single row
	entries, err := study.ListProgress(userID, 0, cardID)
	if err != nil {
		t.Fatalf("ListProgress failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d progress rows, want 1", len(entries))
	}
}

func TestRecordAttemptStatusLadder(t *testing.T) {
	db := newTestDB(t)
	study, _ := newTestStudyService(db)

	userID := seedUser(t, db, "ladder")
	deckID := seedDeck(t, db, userID, "Vocab")
	cardID := seedCard(t, db, deckID, "perro")

	expected := []models.ReviewStatus{
		models.StatusNew,       // 1 correct
		models.StatusNew,       // 2 correct
		models.StatusReviewing, // 3 correct
		models.StatusReviewing, // 4 correct
		models.StatusMastered,  // 5 correct
		models.StatusMastered,  // 6 correct
	}

	for i, want := range expected {
		p, err := study.RecordAttempt(userID, deckID, cardID, true, 1)
		if err != nil {
			t.Fatalf("attempt %d failed: %v", i+1, err)
		}
		if p.ReviewStatus != want {
			t.Errorf("after %d correct: status = %s, want %s", i+1, p.ReviewStatus, want)
		}
		if gotLearned := p.ReviewStatus == models.StatusMastered; p.IsLearned != gotLearned {
			t.Errorf("after %d correct: IsLearned = %v with status %s", i+1, p.IsLearned, p.ReviewStatus)
		}
	}
}

func TestRecordAttemptDemotionToLearning(t *testing.T) {
	db := newTestDB(t)
	study, _ := newTestStudyService(db)

	userID := seedUser(t, db, "demote")
	deckID := seedDeck(t, db, userID, "Vocab")
	cardID := seedCard(t, db, deckID, "pez")

	var p *models.Progress
	var err error
	for i := 0; i < 3; i++ {
		p, err = study.RecordAttempt(userID, deckID, cardID, false, 1)
		if err != nil {
			t.Fatalf("attempt %d failed: %v", i+1, err)
		}
	}
	if p.ReviewStatus != models.StatusLearning {
		t.Errorf("after 3 incorrect: status = %s, want %s", p.ReviewStatus, models.StatusLearning)
	}
}

func TestRecordAttemptConcurrentSamePair(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping concurrency test in short mode")
	}

	db := newTestDB(t)
	study, _ := newTestStudyService(db)

	userID := seedUser(t, db, "race")
	deckID := seedDeck(t, db, userID, "Vocab")
	cardID := seedCard(t, db, deckID, "sol")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(correct bool) {
			defer wg.Done()
			if _, err := study.RecordAttempt(userID, deckID, cardID, correct, 1); err != nil {
				errs <- err
			}
		}(i%2 == 0)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent attempt failed: %v", err)
	}

	entries, err := study.ListProgress(userID, 0, cardID)
	if err != nil {
		t.Fatalf("ListProgress failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d progress rows, want 1", len(entries))
	}
	p := entries[0]
	if p.StudyCount != attempts {
		t.Errorf("StudyCount = %d, want %d", p.StudyCount, attempts)
	}
	if !p.CountersConsistent() {
		t.Errorf("counters inconsistent: %d+%d != %d", p.CorrectAttempts, p.IncorrectAttempts, p.StudyCount)
	}
}

func TestDeleteProgress(t *testing.T) {
	db := newTestDB(t)
	study, stats := newTestStudyService(db)

	userID := seedUser(t, db, "deleter")
	otherID := seedUser(t, db, "bystander")
	deckID := seedDeck(t, db, userID, "Vocab")
	cardID := seedCard(t, db, deckID, "luna")

	p, err := study.RecordAttempt(userID, deckID, cardID, true, 4)
	if err != nil {
		t.Fatalf("RecordAttempt failed: %v", err)
	}

	// Another user cannot delete the row
	if err := study.DeleteProgress(otherID, p.ID); !errors.Is(err, ErrProgressNotFound) {
		t.Errorf("cross-user delete err = %v, want %v", err, ErrProgressNotFound)
	}

	if err := study.DeleteProgress(userID, p.ID); err != nil {
		t.Fatalf("DeleteProgress failed: %v", err)
	}
	if err := study.DeleteProgress(userID, p.ID); !errors.Is(err, ErrProgressNotFound) {
		t.Errorf("second delete err = %v, want %v", err, ErrProgressNotFound)
	}

	// Stats recompute from the now-empty record set
	st, err := stats.Recompute(userID)
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	if st.MasteryLevel != 0 || st.CardsMastered != 0 {
		t.Errorf("stats after delete = %.2f/%d, want 0/0", st.MasteryLevel, st.CardsMastered)
	}
}
