package service

import (
	"fmt"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
	"flashlearn/internal/repository"
)

// DeckService handles deck business logic and the ownership checks the
// study engine consumes
type DeckService struct {
	decks *repository.DeckRepository
}

// NewDeckService creates a new deck service
func NewDeckService(db *database.DB) *DeckService {
	return &DeckService{decks: repository.NewDeckRepository(db)}
}

// ListDecks retrieves all decks owned by a user
func (s *DeckService) ListDecks(userID int64) ([]models.Deck, error) {
	return s.decks.ListForUser(userID)
}

// GetDeck retrieves a single deck, owner-checked
func (s *DeckService) GetDeck(deckID, userID int64) (*models.Deck, error) {
	deck, err := s.decks.GetForUser(deckID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	if deck == nil {
		return nil, ErrDeckNotFound
	}
	return deck, nil
}

// CreateDeck validates and persists a new deck for a user
func (s *DeckService) CreateDeck(deck *models.Deck) (*models.Deck, error) {
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.decks.Create(deck)
}

// DeckUpdate is a partial update: only non-nil fields are applied
type DeckUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Subject     *string `json:"subject"`
	Category    *string `json:"category"`
	Difficulty  *int    `json:"difficulty"`
}

// UpdateDeck applies the provided fields to an owned deck
func (s *DeckService) UpdateDeck(deckID, userID int64, update DeckUpdate) (*models.Deck, error) {
	deck, err := s.GetDeck(deckID, userID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		deck.Title = *update.Title
	}
	if update.Description != nil {
		deck.Description = *update.Description
	}
	if update.Subject != nil {
		deck.Subject = *update.Subject
	}
	if update.Category != nil {
		deck.Category = *update.Category
	}
	if update.Difficulty != nil {
		deck.Difficulty = *update.Difficulty
	}

	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.decks.Update(deck); err != nil {
		return nil, fmt.Errorf("failed to update deck: %w", err)
	}

	return s.decks.GetByID(deckID)
}

// DeleteDeck removes an owned deck; flashcards and progress cascade
func (s *DeckService) DeleteDeck(deckID, userID int64) error {
	if _, err := s.GetDeck(deckID, userID); err != nil {
		return err
	}
	return s.decks.Delete(deckID)
}
