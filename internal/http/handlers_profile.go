package httpx

import (
	"net/http"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

// ProfileHandlers provides HTTP handlers for the signed-in user's own
// profile and navigation.
type ProfileHandlers struct {
	Users *service.UserAdminService
}

// Profile returns the signed-in user's backend profile.
// GET /api/profile.
func (h *ProfileHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Profile(r.Context(), GetSessionFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Menu returns the navigation entries for the session's role. Every role,
// including an unresolved one, gets a menu; an unknown role sees only the
// base entries.
// GET /api/menu.
func (h *ProfileHandlers) Menu(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{
		"role": sess.Role,
		"menu": MenuForRole(sess.Role),
	})
}
