// Package httpx provides the HTTP surface of the chefbazaar browser gateway.
package httpx

import (
	"errors"
	"net"
	"net/http"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

// MealHandlers provides HTTP handlers for meal browsing and chef listings.
type MealHandlers struct {
	Svc *service.MealService
}

// List handles the public meal catalog endpoint.
// GET /api/meals?page=&limit=&sort=&search=.
//
// Requests carrying a search term go through the typing-burst debouncer so
// a keystroke storm from one client collapses into a single backend query.
// Plain listing requests hit the backend immediately.
func (h *MealHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := ParseListQuery(r)
	sess := GetSessionFromContext(r.Context())

	var (
		meals []model.Meal
		total int
		err   error
	)
	if q.Search != "" {
		meals, total, err = h.Svc.Search(r.Context(), sess, searchKeyForRequest(r), q)
	} else {
		meals, total, err = h.Svc.List(r.Context(), sess, q)
	}
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteList(w, meals, total)
}

// Get handles the meal detail endpoint.
// GET /api/meals/{id}.
func (h *MealHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("meal id is required")})
		return
	}

	meal, err := h.Svc.Get(r.Context(), GetSessionFromContext(r.Context()), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, meal)
}

// MyMeals lists the signed-in chef's own listings.
// GET /api/chef/meals.
func (h *MealHandlers) MyMeals(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	meals, total, err := h.Svc.MyMeals(r.Context(), sess, ParseListQuery(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteList(w, meals, total)
}

// Create handles new meal listings.
// POST /api/chef/meals.
func (h *MealHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in model.MealInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	meal, err := h.Svc.Create(r.Context(), GetSessionFromContext(r.Context()), in)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, meal)
}

// Update handles meal listing edits.
// PATCH /api/chef/meals/{id}.
func (h *MealHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("meal id is required")})
		return
	}

	var in model.MealInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	if err := h.Svc.Update(r.Context(), GetSessionFromContext(r.Context()), id, in); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Delete removes a meal listing.
// DELETE /api/chef/meals/{id}.
func (h *MealHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("meal id is required")})
		return
	}

	if err := h.Svc.Delete(r.Context(), GetSessionFromContext(r.Context()), id); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// searchKeyForRequest identifies the typing source for debounce purposes.
// Signed-in users debounce per session; anonymous visitors fall back to
// the client host so separate visitors never supersede each other.
func searchKeyForRequest(r *http.Request) string {
	if sess := GetSessionFromContext(r.Context()); sess != nil {
		return sess.ID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
