package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"flashlearn/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: userMsg})
}

// respondServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500 with the detail kept in the log only.
func respondServiceError(w http.ResponseWriter, logMsg string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrDeckNotFound),
		errors.Is(err, service.ErrFlashcardNotFound),
		errors.Is(err, service.ErrProgressNotFound):
		respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
	case errors.Is(err, service.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", logMsg, err)
	}
}
