package handlers

import (
	"net/http"

	"flashlearn/internal/service"
)

// DashboardHandler serves the aggregated dashboard view
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard returns the caller's dashboard overview
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	data, err := h.dashboard.Overview(userID)
	if err != nil {
		respondServiceError(w, "Error building dashboard", err)
		return
	}
	respondJSON(w, http.StatusOK, data)
}
