package handlers

import (
	"net/http"

	"github.com/soccermod/stats-api/internal/models"
)

// GetSummary returns server-wide aggregate statistics
// @Summary Stats Summary
// @Description Player counts and summed totals for both partitions
// @Tags Stats
// @Produce json
// @Success 200 {object} models.SummaryResponse "Summary"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.serverStats.Summary(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to get stats summary", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	h.jsonResponse(w, http.StatusOK, summary)
}

// GetPositions returns the network-wide position distribution
// @Summary Position Distribution
// @Description Summed session counts per field position across all players
// @Tags Stats
// @Produce json
// @Success 200 {object} models.PositionsResponse "Positions"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/positions [get]
func (h *Handler) GetPositions(w http.ResponseWriter, r *http.Request) {
	totals, err := h.serverStats.PositionTotals(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to get position distribution", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch positions")
		return
	}
	h.jsonResponse(w, http.StatusOK, models.PositionsResponse{Positions: *totals})
}
