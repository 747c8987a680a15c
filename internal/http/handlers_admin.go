package httpx

import (
	"errors"
	"net/http"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

// UserAdminHandlers provides HTTP handlers for the admin user directory.
type UserAdminHandlers struct {
	Svc *service.UserAdminService
}

// List pages through marketplace users.
// GET /api/admin/users.
func (h *UserAdminHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, total, err := h.Svc.List(r.Context(), GetSessionFromContext(r.Context()), ParseListQuery(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteList(w, users, total)
}

// MarkFraud flags a user account as fraudulent. Admin accounts and
// already-flagged accounts are rejected with a conflict.
// PATCH /api/admin/users/{email}/fraud.
func (h *UserAdminHandlers) MarkFraud(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if email == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("user email is required")})
		return
	}

	if err := h.Svc.MarkFraud(r.Context(), GetSessionFromContext(r.Context()), email); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"flagged": true})
}

// RoleRequestHandlers provides HTTP handlers for role upgrade requests.
type RoleRequestHandlers struct {
	Svc *service.RoleRequestService
}

// submitRequestBody names the requested role.
type submitRequestBody struct {
	RequestType string `json:"requestType"`
}

// Submit files a role upgrade request for the signed-in user.
// POST /api/requests.
func (h *RoleRequestHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitRequestBody
	if !DecodeJSON(w, r, &body) {
		return
	}

	reqType, err := model.ParseRequestType(body.RequestType)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_request_type", Err: err})
		return
	}

	if err := h.Svc.Submit(r.Context(), GetSessionFromContext(r.Context()), reqType); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]bool{"submitted": true})
}

// List pages through pending and settled role requests.
// GET /api/admin/requests.
func (h *RoleRequestHandlers) List(w http.ResponseWriter, r *http.Request) {
	requests, total, err := h.Svc.List(r.Context(), GetSessionFromContext(r.Context()), ParseListQuery(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteList(w, requests, total)
}

// decideRequestBody carries the admin's verdict on a role request.
type decideRequestBody struct {
	Action    string `json:"action"`
	UserEmail string `json:"userEmail"`
}

// Decide accepts or rejects a role request. Acceptance invalidates the
// requester's cached role so their next request sees the new dashboard.
// PATCH /api/admin/requests/{id}.
func (h *RoleRequestHandlers) Decide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("request id is required")})
		return
	}

	var body decideRequestBody
	if !DecodeJSON(w, r, &body) {
		return
	}

	action, err := model.ParseRequestAction(body.Action)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_action", Err: err})
		return
	}

	if err := h.Svc.Decide(r.Context(), GetSessionFromContext(r.Context()), id, action, body.UserEmail); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"decided": true})
}

// StatsHandlers provides HTTP handlers for the admin statistics page.
type StatsHandlers struct {
	Svc *service.StatsService
}

// Summary projects the backend statistics document into the dashboard
// summary shape.
// GET /api/admin/stats.
func (h *StatsHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.Summary(r.Context(), GetSessionFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}
