package handlers

import (
	"net/http"
	"strconv"

	"flashlearn/internal/models"
	"flashlearn/internal/service"
)

// DeckHandler handles deck HTTP requests
type DeckHandler struct {
	decks *service.DeckService
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(decks *service.DeckService) *DeckHandler {
	return &DeckHandler{decks: decks}
}

// ListDecks returns all decks owned by the caller
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	decks, err := h.decks.ListDecks(userID)
	if err != nil {
		respondServiceError(w, "Error listing decks", err)
		return
	}
	if decks == nil {
		decks = []models.Deck{}
	}
	respondJSON(w, http.StatusOK, decks)
}

// GetDeck returns one owned deck
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	deckID, err := strconv.ParseInt(r.PathValue("deckID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid deck ID", "", nil)
		return
	}

	deck, err := h.decks.GetDeck(deckID, userID)
	if err != nil {
		respondServiceError(w, "Error fetching deck", err)
		return
	}
	respondJSON(w, http.StatusOK, deck)
}

// CreateDeck creates a deck for the caller
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var deck models.Deck
	if !decodeJSON(w, r, &deck) {
		return
	}
	deck.UserID = userID

	created, err := h.decks.CreateDeck(&deck)
	if err != nil {
		respondServiceError(w, "Error creating deck", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateDeck applies a partial update to an owned deck
func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	deckID, err := strconv.ParseInt(r.PathValue("deckID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid deck ID", "", nil)
		return
	}

	var update service.DeckUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	deck, err := h.decks.UpdateDeck(deckID, userID, update)
	if err != nil {
		respondServiceError(w, "Error updating deck", err)
		return
	}
	respondJSON(w, http.StatusOK, deck)
}

// DeleteDeck removes an owned deck and its cards
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	deckID, err := strconv.ParseInt(r.PathValue("deckID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid deck ID", "", nil)
		return
	}

	if err := h.decks.DeleteDeck(deckID, userID); err != nil {
		respondServiceError(w, "Error deleting deck", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Deck deleted"})
}
