package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	mockbackend "github.com/SowvikSuvo/chefbazaar-gateway/internal/mocks/backend"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

func chefContext(r *http.Request) *http.Request {
	sess := &domainauth.Session{ID: "sess-chef", UserID: "chef-1", Name: "Chef Rahima", Email: "rahima@example.com", Role: domainauth.RoleChef}
	return r.WithContext(SetSessionInContext(r.Context(), sess))
}

func TestOrderUpdateStatus_IllegalTransitionReturns409(t *testing.T) {
	provider, _, orders, _ := mockbackend.NewFakeProvider()
	orders.GetFunc = func(_ context.Context, id string) (model.Order, error) {
		return model.Order{ID: id, Status: model.OrderPending, ChefID: "chef-1"}, nil
	}
	h := &OrderHandlers{Svc: service.NewOrderService(service.OrderServiceOptions{Backends: provider})}

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/o1/status",
		strings.NewReader(`{"orderStatus":"delivered"}`))
	req.SetPathValue("id", "o1")
	req = chefContext(req)
	w := httptest.NewRecorder()

	h.UpdateStatus(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "conflict")
}

func TestOrderUpdateStatus_LegalTransition(t *testing.T) {
	provider, _, orders, _ := mockbackend.NewFakeProvider()
	orders.GetFunc = func(_ context.Context, id string) (model.Order, error) {
		return model.Order{ID: id, Status: model.OrderPending, ChefID: "chef-1"}, nil
	}
	orders.UpdateStatusFunc = func(_ context.Context, id string, status model.OrderStatus) error {
		assert.Equal(t, "o1", id)
		assert.Equal(t, model.OrderAccepted, status)
		return nil
	}
	h := &OrderHandlers{Svc: service.NewOrderService(service.OrderServiceOptions{Backends: provider})}

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/o1/status",
		strings.NewReader(`{"orderStatus":"accepted"}`))
	req.SetPathValue("id", "o1")
	req = chefContext(req)
	w := httptest.NewRecorder()

	h.UpdateStatus(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"orderStatus":"accepted"`)
}

func TestOrderUpdateStatus_UnknownStatusRejected(t *testing.T) {
	provider, _, _, _ := mockbackend.NewFakeProvider()
	h := &OrderHandlers{Svc: service.NewOrderService(service.OrderServiceOptions{Backends: provider})}

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/o1/status",
		strings.NewReader(`{"orderStatus":"shipped"}`))
	req.SetPathValue("id", "o1")
	req = chefContext(req)
	w := httptest.NewRecorder()

	h.UpdateStatus(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_status")
}

func TestOrderCancel_PendingOrder(t *testing.T) {
	provider, _, orders, _ := mockbackend.NewFakeProvider()
	orders.GetFunc = func(_ context.Context, id string) (model.Order, error) {
		return model.Order{ID: id, Status: model.OrderPending, UserEmail: "karim@example.com"}, nil
	}
	orders.UpdateStatusFunc = func(_ context.Context, id string, status model.OrderStatus) error {
		assert.Equal(t, model.OrderCancelled, status)
		return nil
	}
	h := &OrderHandlers{Svc: service.NewOrderService(service.OrderServiceOptions{Backends: provider})}

	req := httptest.NewRequest(http.MethodPost, "/api/orders/o1/cancel", nil)
	req.SetPathValue("id", "o1")
	sess := &domainauth.Session{ID: "s", UserID: "u", Email: "karim@example.com", Role: domainauth.RoleUser}
	req = req.WithContext(SetSessionInContext(req.Context(), sess))
	w := httptest.NewRecorder()

	h.Cancel(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"orderStatus":"cancelled"`)
}

func TestOrderCancel_AcceptedOrderConflicts(t *testing.T) {
	provider, _, orders, _ := mockbackend.NewFakeProvider()
	orders.GetFunc = func(_ context.Context, id string) (model.Order, error) {
		return model.Order{ID: id, Status: model.OrderAccepted, UserEmail: "karim@example.com"}, nil
	}
	h := &OrderHandlers{Svc: service.NewOrderService(service.OrderServiceOptions{Backends: provider})}

	req := httptest.NewRequest(http.MethodPost, "/api/orders/o1/cancel", nil)
	req.SetPathValue("id", "o1")
	sess := &domainauth.Session{ID: "s", UserID: "u", Email: "karim@example.com", Role: domainauth.RoleUser}
	req = req.WithContext(SetSessionInContext(req.Context(), sess))
	w := httptest.NewRecorder()

	h.Cancel(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderCancel_ForeignOrderNotFound(t *testing.T) {
	provider, _, orders, _ := mockbackend.NewFakeProvider()
	orders.GetFunc = func(_ context.Context, id string) (model.Order, error) {
		return model.Order{ID: id, Status: model.OrderPending, UserEmail: "someone.else@example.com"}, nil
	}
	h := &OrderHandlers{Svc: service.NewOrderService(service.OrderServiceOptions{Backends: provider})}

	req := httptest.NewRequest(http.MethodPost, "/api/orders/o1/cancel", nil)
	req.SetPathValue("id", "o1")
	sess := &domainauth.Session{ID: "s", UserID: "u", Email: "karim@example.com", Role: domainauth.RoleUser}
	req = req.WithContext(SetSessionInContext(req.Context(), sess))
	w := httptest.NewRecorder()

	h.Cancel(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderPlace_ValidationFailureReturns400(t *testing.T) {
	provider, _, _, _ := mockbackend.NewFakeProvider()
	h := &OrderHandlers{Svc: service.NewOrderService(service.OrderServiceOptions{Backends: provider})}

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"mealId":"m1"}`))
	sess := &domainauth.Session{ID: "s", UserID: "u", Email: "karim@example.com", Role: domainauth.RoleUser}
	req = req.WithContext(SetSessionInContext(req.Context(), sess))
	w := httptest.NewRecorder()

	h.Place(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderPlace_Success(t *testing.T) {
	provider, meals, orders, _ := mockbackend.NewFakeProvider()
	meals.GetFunc = func(_ context.Context, id string) (model.Meal, error) {
		return model.Meal{ID: id, Name: "Khichuri", Price: 120, ChefID: "chef-9"}, nil
	}
	orders.PlaceFunc = func(_ context.Context, o model.Order) (model.Order, error) {
		o.ID = "o1"
		return o, nil
	}
	h := &OrderHandlers{Svc: service.NewOrderService(service.OrderServiceOptions{Backends: provider})}

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"mealId":"m1","quantity":3,"userAddress":"House 7, Banani"}`))
	sess := &domainauth.Session{ID: "s", UserID: "u", Email: "karim@example.com", Role: domainauth.RoleUser}
	req = req.WithContext(SetSessionInContext(req.Context(), sess))
	w := httptest.NewRecorder()

	h.Place(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"_id":"o1"`)
	assert.Contains(t, body, `"price":360`)
	assert.Contains(t, body, `"userEmail":"karim@example.com"`)
}
