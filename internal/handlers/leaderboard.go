package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soccermod/stats-api/internal/logic"
	"github.com/soccermod/stats-api/internal/models"
)

// GetMatchLeaderboard ranks the match partition
// @Summary Match Leaderboard
// @Description Players ranked by a match-partition stat; unknown sort fields fall back to points
// @Tags Leaderboards
// @Produce json
// @Param sort query string false "Sort field (points, goals, assists, saves, matches)" default(points)
// @Param limit query int false "Limit" default(50)
// @Success 200 {object} models.MatchLeaderboardResponse "Leaderboard"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /leaderboard/match [get]
func (h *Handler) GetMatchLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := logic.ClampLimit(queryInt(r, "limit", h.defaults.LeaderboardLimit), h.defaults.LeaderboardLimit)

	players, field, err := h.leaderboard.Match(r.Context(), r.URL.Query().Get("sort"), limit)
	if err != nil {
		h.logger.Errorw("Failed to get match leaderboard", "sort", field, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}
	h.jsonResponse(w, http.StatusOK, models.MatchLeaderboardResponse{
		Players: players,
		Sort:    string(field),
	})
}

// GetPublicLeaderboard ranks the public partition
// @Summary Public Leaderboard
// @Description Players ranked by a public-partition stat; unknown sort fields fall back to points
// @Tags Leaderboards
// @Produce json
// @Param sort query string false "Sort field (points, goals, assists, saves)" default(points)
// @Param limit query int false "Limit" default(50)
// @Success 200 {object} models.PublicLeaderboardResponse "Leaderboard"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /leaderboard/public [get]
func (h *Handler) GetPublicLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := logic.ClampLimit(queryInt(r, "limit", h.defaults.LeaderboardLimit), h.defaults.LeaderboardLimit)

	players, field, err := h.leaderboard.Public(r.Context(), r.URL.Query().Get("sort"), limit)
	if err != nil {
		h.logger.Errorw("Failed to get public leaderboard", "sort", field, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}
	h.jsonResponse(w, http.StatusOK, models.PublicLeaderboardResponse{
		Players: players,
		Sort:    string(field),
	})
}

// GetMetricLeaderboard ranks players by a metric combined across partitions
// @Summary Combined Metric Leaderboard
// @Description Per-player match/public/combined totals for goals, assists or saves
// @Tags Leaderboards
// @Produce json
// @Param metric path string true "Metric (goals, assists, saves)"
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} models.CombinedLeaderboardResponse "Leaderboard"
// @Failure 404 {object} map[string]string "Unknown Metric"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /leaderboard/{metric} [get]
func (h *Handler) GetMetricLeaderboard(w http.ResponseWriter, r *http.Request) {
	metric, ok := logic.ParseMetric(chi.URLParam(r, "metric"))
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Unknown leaderboard")
		return
	}
	limit := logic.ClampLimit(queryInt(r, "limit", h.defaults.MetricLimit), h.defaults.MetricLimit)

	players, err := h.leaderboard.TopMetric(r.Context(), metric, limit)
	if err != nil {
		h.logger.Errorw("Failed to get metric leaderboard", "metric", metric, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}
	h.jsonResponse(w, http.StatusOK, models.CombinedLeaderboardResponse{
		Metric:  string(metric),
		Players: players,
	})
}
