package httpx

import (
	"errors"
	"net/http"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

// ReviewHandlers provides HTTP handlers for meal reviews.
type ReviewHandlers struct {
	Svc *service.ReviewService
}

// ForMeal lists reviews for a meal. Public.
// GET /api/meals/{id}/reviews.
func (h *ReviewHandlers) ForMeal(w http.ResponseWriter, r *http.Request) {
	mealID := r.PathValue("id")
	if mealID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("meal id is required")})
		return
	}

	reviews, err := h.Svc.ForMeal(r.Context(), GetSessionFromContext(r.Context()), mealID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteList(w, reviews, len(reviews))
}

// Mine lists the signed-in customer's reviews.
// GET /api/reviews/mine.
func (h *ReviewHandlers) Mine(w http.ResponseWriter, r *http.Request) {
	reviews, total, err := h.Svc.Mine(r.Context(), GetSessionFromContext(r.Context()), ParseListQuery(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteList(w, reviews, total)
}

// Create handles review submission.
// POST /api/reviews.
func (h *ReviewHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ReviewInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	review, err := h.Svc.Create(r.Context(), GetSessionFromContext(r.Context()), in)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, review)
}

// Update handles review edits.
// PATCH /api/reviews/{id}.
func (h *ReviewHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("review id is required")})
		return
	}

	var in model.ReviewInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	if err := h.Svc.Update(r.Context(), GetSessionFromContext(r.Context()), id, in); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Delete removes a review.
// DELETE /api/reviews/{id}.
func (h *ReviewHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("review id is required")})
		return
	}

	if err := h.Svc.Delete(r.Context(), GetSessionFromContext(r.Context()), id); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
