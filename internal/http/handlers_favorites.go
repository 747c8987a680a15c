package httpx

import (
	"errors"
	"net/http"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

// FavoriteHandlers provides HTTP handlers for saved meals.
type FavoriteHandlers struct {
	Svc *service.FavoriteService
}

// Mine lists the signed-in customer's favorite meals.
// GET /api/favorites.
func (h *FavoriteHandlers) Mine(w http.ResponseWriter, r *http.Request) {
	favorites, total, err := h.Svc.Mine(r.Context(), GetSessionFromContext(r.Context()), ParseListQuery(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteList(w, favorites, total)
}

// addFavoriteRequest names the meal to save.
type addFavoriteRequest struct {
	MealID string `json:"mealId"`
}

// Add saves a meal to the customer's favorites.
// POST /api/favorites.
func (h *FavoriteHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.MealID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: errors.New("meal id is required")})
		return
	}

	if err := h.Svc.Add(r.Context(), GetSessionFromContext(r.Context()), req.MealID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]bool{"saved": true})
}

// Remove deletes a favorite.
// DELETE /api/favorites/{id}.
func (h *FavoriteHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("favorite id is required")})
		return
	}

	if err := h.Svc.Remove(r.Context(), GetSessionFromContext(r.Context()), id); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
