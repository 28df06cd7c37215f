package handlers

import (
	"net/http"
	"strconv"

	"flashlearn/internal/models"
	"flashlearn/internal/service"
)

// ProgressHandler handles study attempt and progress HTTP requests
type ProgressHandler struct {
	study *service.StudyService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(study *service.StudyService) *ProgressHandler {
	return &ProgressHandler{study: study}
}

type recordAttemptRequest struct {
	DeckID      int64 `json:"deck_id"`
	FlashcardID int64 `json:"flashcard_id"`
	WasCorrect  bool  `json:"was_correct"`
	TimeSpent   int   `json:"time_spent"`
}

// RecordAttempt ingests one study attempt and returns the updated progress
func (h *ProgressHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var req recordAttemptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	progress, err := h.study.RecordAttempt(userID, req.DeckID, req.FlashcardID, req.WasCorrect, req.TimeSpent)
	if err != nil {
		respondServiceError(w, "Error recording attempt", err)
		return
	}
	respondJSON(w, http.StatusOK, progress)
}

// ListProgress returns all progress rows for the caller
func (h *ProgressHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	h.listFiltered(w, r, 0, 0)
}

// ListDeckProgress returns the caller's progress within one deck
func (h *ProgressHandler) ListDeckProgress(w http.ResponseWriter, r *http.Request) {
	deckID, err := strconv.ParseInt(r.PathValue("deckID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid deck ID", "", nil)
		return
	}
	h.listFiltered(w, r, deckID, 0)
}

// ListFlashcardProgress returns the caller's progress for one card
func (h *ProgressHandler) ListFlashcardProgress(w http.ResponseWriter, r *http.Request) {
	flashcardID, err := strconv.ParseInt(r.PathValue("flashcardID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flashcard ID", "", nil)
		return
	}
	h.listFiltered(w, r, 0, flashcardID)
}

func (h *ProgressHandler) listFiltered(w http.ResponseWriter, r *http.Request, deckID, flashcardID int64) {
	userID := UserIDFromContext(r.Context())

	entries, err := h.study.ListProgress(userID, deckID, flashcardID)
	if err != nil {
		respondServiceError(w, "Error listing progress", err)
		return
	}
	if entries == nil {
		entries = []models.Progress{}
	}
	respondJSON(w, http.StatusOK, entries)
}

// DeleteProgress removes one progress row and recomputes the caller's stats
func (h *ProgressHandler) DeleteProgress(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	progressID, err := strconv.ParseInt(r.PathValue("progressID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid progress ID", "", nil)
		return
	}

	if err := h.study.DeleteProgress(userID, progressID); err != nil {
		respondServiceError(w, "Error deleting progress", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Progress deleted"})
}
