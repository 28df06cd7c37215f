package service

import (
	"path/filepath"
	"testing"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
	"flashlearn/internal/repository"
)

// newTestDB opens a temporary SQLite database with the full schema applied
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *database.DB, username string) int64 {
	t.Helper()

	user, err := repository.NewUserRepository(db).Create(username, username+"@example.com")
	if err != nil {
		t.Fatalf("Failed to seed user %s: %v", username, err)
	}
	return user.ID
}

func seedDeck(t *testing.T, db *database.DB, userID int64, title string) int64 {
	t.Helper()

	deck, err := repository.NewDeckRepository(db).Create(&models.Deck{
		UserID:     userID,
		Title:      title,
		Subject:    "Spanish",
		Difficulty: 2,
	})
	if err != nil {
		t.Fatalf("Failed to seed deck %s: %v", title, err)
	}
	return deck.ID
}

func seedCard(t *testing.T, db *database.DB, deckID int64, front string) int64 {
	t.Helper()

	card, err := repository.NewFlashcardRepository(db).Create(&models.Flashcard{
		DeckID:    deckID,
		FrontText: front,
		BackText:  front + " (answer)",
	})
	if err != nil {
		t.Fatalf("Failed to seed flashcard %s: %v", front, err)
	}
	return card.ID
}

func newTestStudyService(db *database.DB) (*StudyService, *StatsService) {
	stats := NewStatsService(db)
	return NewStudyService(db, stats, DefaultReviewPolicy()), stats
}
