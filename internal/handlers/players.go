package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soccermod/stats-api/internal/logic"
	"github.com/soccermod/stats-api/internal/models"
)

// ListPlayers returns one page of the player collection
// @Summary List Players
// @Description Paginated player list ordered by last connection, newest first
// @Tags Players
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} models.PlayerListResponse "Players"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	page := logic.NewPageRequest(
		queryInt(r, "page", 1),
		queryInt(r, "limit", h.defaults.PageSize),
		h.defaults.PageSize,
	)

	resp, err := h.players.List(r.Context(), page)
	if err != nil {
		h.logger.Errorw("Failed to list players", "page", page.Page, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch players")
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// SearchPlayers finds players by any name they have ever used
// @Summary Search Players
// @Description Case-insensitive substring match on base name, current name, alias and name history
// @Tags Players
// @Produce json
// @Param q query string true "Search query, minimum 2 characters"
// @Success 200 {object} models.SearchResponse "Matches"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /players/search [get]
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	players, err := h.players.Search(r.Context(), q, h.defaults.SearchLimit)
	if err != nil {
		h.logger.Errorw("Failed to search players", "q", q, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to search players")
		return
	}
	h.jsonResponse(w, http.StatusOK, models.SearchResponse{Players: players})
}

// GetPlayer returns the full profile for one player
// @Summary Get Player
// @Description Identity, both stat partitions, position distribution and name history
// @Tags Players
// @Produce json
// @Param steamid path string true "Player SteamID"
// @Success 200 {object} models.PlayerProfile "Profile"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /players/{steamid} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	steamID := chi.URLParam(r, "steamid")

	profile, err := h.players.Get(r.Context(), steamID)
	if errors.Is(err, logic.ErrPlayerNotFound) {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to get player", "steamid", steamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch player")
		return
	}
	h.jsonResponse(w, http.StatusOK, profile)
}
