package handlers

import (
	"net/http"
	"strconv"

	"flashlearn/internal/models"
	"flashlearn/internal/service"
)

// FlashcardHandler handles flashcard HTTP requests
type FlashcardHandler struct {
	cards *service.FlashcardService
}

// NewFlashcardHandler creates a new flashcard handler
func NewFlashcardHandler(cards *service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{cards: cards}
}

// ListFlashcards returns all cards across the caller's decks
func (h *FlashcardHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	cards, err := h.cards.ListFlashcards(userID)
	if err != nil {
		respondServiceError(w, "Error listing flashcards", err)
		return
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}
	respondJSON(w, http.StatusOK, cards)
}

// CreateFlashcard adds a card to one of the caller's decks
func (h *FlashcardHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var card models.Flashcard
	if !decodeJSON(w, r, &card) {
		return
	}

	created, err := h.cards.CreateFlashcard(userID, &card)
	if err != nil {
		respondServiceError(w, "Error creating flashcard", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateFlashcard applies a partial update to an owned card
func (h *FlashcardHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	cardID, err := strconv.ParseInt(r.PathValue("flashcardID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flashcard ID", "", nil)
		return
	}

	var update service.FlashcardUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	card, err := h.cards.UpdateFlashcard(cardID, userID, update)
	if err != nil {
		respondServiceError(w, "Error updating flashcard", err)
		return
	}
	respondJSON(w, http.StatusOK, card)
}

// DeleteFlashcard removes an owned card
func (h *FlashcardHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	cardID, err := strconv.ParseInt(r.PathValue("flashcardID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flashcard ID", "", nil)
		return
	}

	if err := h.cards.DeleteFlashcard(cardID, userID); err != nil {
		respondServiceError(w, "Error deleting flashcard", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Flashcard deleted"})
}
