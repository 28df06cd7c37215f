package service

import (
	"fmt"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
	"flashlearn/internal/repository"
)

// FlashcardService handles flashcard business logic
type FlashcardService struct {
	cards *repository.FlashcardRepository
	decks *repository.DeckRepository
}

// NewFlashcardService creates a new flashcard service
func NewFlashcardService(db *database.DB) *FlashcardService {
	return &FlashcardService{
		cards: repository.NewFlashcardRepository(db),
		decks: repository.NewDeckRepository(db),
	}
}

// ListFlashcards retrieves all flashcards across a user's decks
func (s *FlashcardService) ListFlashcards(userID int64) ([]models.Flashcard, error) {
	return s.cards.ListForUser(userID)
}

// CreateFlashcard validates and persists a new flashcard; the target deck
// must belong to the user
func (s *FlashcardService) CreateFlashcard(userID int64, card *models.Flashcard) (*models.Flashcard, error) {
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	deck, err := s.decks.GetForUser(card.DeckID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check deck ownership: %w", err)
	}
	if deck == nil {
		return nil, ErrDeckNotFound
	}

	return s.cards.Create(card)
}

// FlashcardUpdate is a partial update: only non-nil fields are applied
type FlashcardUpdate struct {
	FrontText *string `json:"front_text"`
	BackText  *string `json:"back_text"`
}

// UpdateFlashcard applies the provided fields to a flashcard the user owns
// through its deck
func (s *FlashcardService) UpdateFlashcard(cardID, userID int64, update FlashcardUpdate) (*models.Flashcard, error) {
	card, err := s.cards.GetOwned(cardID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flashcard: %w", err)
	}
	if card == nil {
		return nil, ErrFlashcardNotFound
	}

	if update.FrontText != nil {
		card.FrontText = *update.FrontText
	}
	if update.BackText != nil {
		card.BackText = *update.BackText
	}

	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.cards.Update(card); err != nil {
		return nil, fmt.Errorf("failed to update flashcard: %w", err)
	}

	return s.cards.GetByID(cardID)
}

// DeleteFlashcard removes a flashcard the user owns; progress rows cascade
func (s *FlashcardService) DeleteFlashcard(cardID, userID int64) error {
	card, err := s.cards.GetOwned(cardID, userID)
	if err != nil {
		return fmt.Errorf("failed to load flashcard: %w", err)
	}
	if card == nil {
		return ErrFlashcardNotFound
	}
	return s.cards.Delete(cardID)
}
