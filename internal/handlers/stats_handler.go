package handlers

import (
	"net/http"

	"flashlearn/internal/service"
)

// StatsHandler handles user stats HTTP requests
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetStats recomputes and returns the caller's stats row
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	stats, err := h.stats.Recompute(userID)
	if err != nil {
		respondServiceError(w, "Error computing stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// UpdateStats merges caller-provided fields into the stats row and
// recomputes the derived metrics
func (h *StatsHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var update service.StatsUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	stats, err := h.stats.Update(userID, update)
	if err != nil {
		respondServiceError(w, "Error updating stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
