package httpx

import (
	"errors"
	"net/http"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

// OrderHandlers provides HTTP handlers for order placement and the
// order-status workflow.
type OrderHandlers struct {
	Svc *service.OrderService
}

// Place handles order placement.
// POST /api/orders.
func (h *OrderHandlers) Place(w http.ResponseWriter, r *http.Request) {
	var in model.OrderInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	order, err := h.Svc.Place(r.Context(), GetSessionFromContext(r.Context()), in)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, order)
}

// Mine lists the signed-in customer's orders.
// GET /api/orders/mine.
func (h *OrderHandlers) Mine(w http.ResponseWriter, r *http.Request) {
	orders, total, err := h.Svc.MyOrders(r.Context(), GetSessionFromContext(r.Context()), ParseListQuery(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteList(w, orders, total)
}

// ChefOrders lists orders placed against the signed-in chef's meals.
// GET /api/chef/orders.
func (h *OrderHandlers) ChefOrders(w http.ResponseWriter, r *http.Request) {
	orders, total, err := h.Svc.ChefOrders(r.Context(), GetSessionFromContext(r.Context()), ParseListQuery(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteList(w, orders, total)
}

// Get handles the order detail endpoint.
// GET /api/orders/{id}.
func (h *OrderHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")})
		return
	}

	order, err := h.Svc.Get(r.Context(), GetSessionFromContext(r.Context()), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, order)
}

// Cancel lets a customer withdraw an order that is still pending. The
// transition check rejects cancellation once a chef has accepted.
// POST /api/orders/{id}/cancel.
func (h *OrderHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")})
		return
	}

	order, err := h.Svc.UpdateStatus(r.Context(), GetSessionFromContext(r.Context()), id, model.OrderCancelled)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, order)
}

// updateStatusRequest carries the target state for a status change.
type updateStatusRequest struct {
	Status string `json:"orderStatus"`
}

// UpdateStatus moves an order through its lifecycle. Illegal jumps
// (pending straight to delivered, touching a terminal order) are rejected
// with a conflict before the backend is called.
// PATCH /api/orders/{id}/status.
func (h *OrderHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")})
		return
	}

	var req updateStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	to, err := model.ParseOrderStatus(req.Status)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_status", Err: err})
		return
	}

	order, err := h.Svc.UpdateStatus(r.Context(), GetSessionFromContext(r.Context()), id, to)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, order)
}
