package service

import (
	"errors"
	"testing"

	"flashlearn/internal/models"
)

func TestDeckLifecycle(t *testing.T) {
	db := newTestDB(t)
	decks := NewDeckService(db)

	userID := seedUser(t, db, "deckowner")
	otherID := seedUser(t, db, "outsider")

	deckID := seedDeck(t, db, userID, "Spanish")

	// Owner sees it, outsider does not
	if _, err := decks.GetDeck(deckID, userID); err != nil {
		t.Fatalf("GetDeck failed: %v", err)
	}
	if _, err := decks.GetDeck(deckID, otherID); !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("cross-user get err = %v, want %v", err, ErrDeckNotFound)
	}

	// Partial update touches only the provided fields
	title := "Spanish 101"
	updated, err := decks.UpdateDeck(deckID, userID, DeckUpdate{Title: &title})
	if err != nil {
		t.Fatalf("UpdateDeck failed: %v", err)
	}
	if updated.Title != "Spanish 101" {
		t.Errorf("Title = %s, want Spanish 101", updated.Title)
	}
	if updated.Subject != "Spanish" {
		t.Errorf("Subject = %s, untouched field changed", updated.Subject)
	}

	// Updates are still validated
	badDifficulty := 9
	if _, err := decks.UpdateDeck(deckID, userID, DeckUpdate{Difficulty: &badDifficulty}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid update err = %v, want %v", err, ErrInvalidInput)
	}

	if err := decks.DeleteDeck(deckID, userID); err != nil {
		t.Fatalf("DeleteDeck failed: %v", err)
	}
	if _, err := decks.GetDeck(deckID, userID); !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("get after delete err = %v, want %v", err, ErrDeckNotFound)
	}
}

func TestDeckDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	study, _ := newTestStudyService(db)
	decks := NewDeckService(db)
	cards := NewFlashcardService(db)

	userID := seedUser(t, db, "cascade")
	deckID := seedDeck(t, db, userID, "Doomed")
	cardID := seedCard(t, db, deckID, "adios")

	if _, err := study.RecordAttempt(userID, deckID, cardID, true, 1); err != nil {
		t.Fatalf("RecordAttempt failed: %v", err)
	}

	if err := decks.DeleteDeck(deckID, userID); err != nil {
		t.Fatalf("DeleteDeck failed: %v", err)
	}

	remaining, err := cards.ListFlashcards(userID)
	if err != nil {
		t.Fatalf("ListFlashcards failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("flashcards after deck delete = %d, want 0", len(remaining))
	}

	entries, err := study.ListProgress(userID, 0, 0)
	if err != nil {
		t.Fatalf("ListProgress failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("progress rows after deck delete = %d, want 0", len(entries))
	}
}

func TestFlashcardOwnershipChecks(t *testing.T) {
	db := newTestDB(t)
	cards := NewFlashcardService(db)

	userID := seedUser(t, db, "cardowner")
	otherID := seedUser(t, db, "cardthief")
	deckID := seedDeck(t, db, userID, "Mine")
	cardID := seedCard(t, db, deckID, "secreto")

	front := "changed"
	if _, err := cards.UpdateFlashcard(cardID, otherID, FlashcardUpdate{FrontText: &front}); !errors.Is(err, ErrFlashcardNotFound) {
		t.Errorf("cross-user update err = %v, want %v", err, ErrFlashcardNotFound)
	}
	if err := cards.DeleteFlashcard(cardID, otherID); !errors.Is(err, ErrFlashcardNotFound) {
		t.Errorf("cross-user delete err = %v, want %v", err, ErrFlashcardNotFound)
	}

	// Creating a card in someone else's deck is rejected
	if _, err := cards.CreateFlashcard(otherID, &models.Flashcard{
		DeckID:    deckID,
		FrontText: "intruso",
		BackText:  "intruder",
	}); !errors.Is(err, ErrDeckNotFound) {
		t.Errorf("cross-user create err = %v, want %v", err, ErrDeckNotFound)
	}
}
