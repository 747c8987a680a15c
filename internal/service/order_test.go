package service

import (
	"context"
	"sync/atomic"
	"testing"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	mockbackend "github.com/SowvikSuvo/chefbazaar-gateway/internal/mocks/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerSession() *domainauth.Session {
	return &domainauth.Session{
		ID:     "sess-cust",
		UserID: "cust-1",
		Name:   "Karim",
		Email:  "karim@example.com",
		Role:   domainauth.RoleUser,
	}
}

func TestOrderService_PlaceStampsFromMealAndSession(t *testing.T) {
	provider, meals, orders, _ := mockbackend.NewFakeProvider()
	meals.GetFunc = func(_ context.Context, id string) (model.Meal, error) {
		require.Equal(t, "m1", id)
		return model.Meal{ID: "m1", Name: "Bhuna Khichuri", Price: 180, ChefID: "chef-9"}, nil
	}
	var placed model.Order
	orders.PlaceFunc = func(_ context.Context, o model.Order) (model.Order, error) {
		placed = o
		o.ID = "o1"
		return o, nil
	}
	svc := NewOrderService(OrderServiceOptions{Backends: provider})

	out, err := svc.Place(context.Background(), customerSession(), model.OrderInput{
		MealID: "m1", Quantity: 2, UserAddress: "House 7, Banani",
	})
	require.NoError(t, err)
	assert.Equal(t, "o1", out.ID)

	assert.Equal(t, "Bhuna Khichuri", placed.MealName)
	assert.Equal(t, float64(360), placed.Price, "price comes from the listing, not the client")
	assert.Equal(t, "karim@example.com", placed.UserEmail)
	assert.Equal(t, "chef-9", placed.ChefID)
	assert.Equal(t, model.OrderPending, placed.Status)
	assert.Equal(t, "unpaid", placed.PaymentStatus)
	assert.False(t, placed.OrderedAt.IsZero())
}

func TestOrderService_PlaceValidatesInput(t *testing.T) {
	provider, _, orders, _ := mockbackend.NewFakeProvider()
	var calls atomic.Int32
	orders.PlaceFunc = func(_ context.Context, o model.Order) (model.Order, error) {
		calls.Add(1)
		return o, nil
	}
	svc := NewOrderService(OrderServiceOptions{Backends: provider})

	_, err := svc.Place(context.Background(), customerSession(), model.OrderInput{MealID: "m1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, calls.Load())
}

func TestOrderService_UpdateStatusLegalTransitions(t *testing.T) {
	cases := []struct {
		from, to model.OrderStatus
		ok       bool
	}{
		{model.OrderPending, model.OrderAccepted, true},
		{model.OrderPending, model.OrderCancelled, true},
		{model.OrderAccepted, model.OrderDelivered, true},
		{model.OrderPending, model.OrderDelivered, false},
		{model.OrderAccepted, model.OrderCancelled, false},
		{model.OrderDelivered, model.OrderPending, false},
		{model.OrderCancelled, model.OrderAccepted, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			provider, _, orders, _ := mockbackend.NewFakeProvider()
			orders.GetFunc = func(_ context.Context, id string) (model.Order, error) {
				return model.Order{ID: id, Status: tc.from, ChefID: "chef-1"}, nil
			}
			var updates atomic.Int32
			orders.UpdateStatusFunc = func(_ context.Context, _ string, status model.OrderStatus) error {
				updates.Add(1)
				assert.Equal(t, tc.to, status)
				return nil
			}
			svc := NewOrderService(OrderServiceOptions{Backends: provider})

			out, err := svc.UpdateStatus(context.Background(), chefSession(), "o1", tc.to)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, out.Status)
				assert.Equal(t, int32(1), updates.Load())
			} else {
				require.Error(t, err)
				assert.True(t, apperrors.IsConflict(err))
				assert.Zero(t, updates.Load(), "illegal transition must not reach the backend")
			}
		})
	}
}

func TestOrderService_UpdateStatusRejectsForeignOrder(t *testing.T) {
	provider, _, orders, _ := mockbackend.NewFakeProvider()
	orders.GetFunc = func(_ context.Context, id string) (model.Order, error) {
		return model.Order{ID: id, Status: model.OrderPending, UserEmail: "someone.else@example.com", ChefID: "chef-9"}, nil
	}
	var updates atomic.Int32
	orders.UpdateStatusFunc = func(context.Context, string, model.OrderStatus) error {
		updates.Add(1)
		return nil
	}
	svc := NewOrderService(OrderServiceOptions{Backends: provider})

	_, err := svc.UpdateStatus(context.Background(), customerSession(), "o1", model.OrderCancelled)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err), "foreign orders are indistinguishable from missing ones")
	assert.Zero(t, updates.Load(), "no status change may reach the backend for a foreign order")
}

func TestOrderService_UpdateStatusAllowsBuyerAndChef(t *testing.T) {
	for _, tc := range []struct {
		name string
		sess *domainauth.Session
	}{
		{"buyer", customerSession()},
		{"chef", chefSession()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			provider, _, orders, _ := mockbackend.NewFakeProvider()
			orders.GetFunc = func(_ context.Context, id string) (model.Order, error) {
				return model.Order{ID: id, Status: model.OrderPending, UserEmail: "karim@example.com", ChefID: "chef-1"}, nil
			}
			svc := NewOrderService(OrderServiceOptions{Backends: provider})

			out, err := svc.UpdateStatus(context.Background(), tc.sess, "o1", model.OrderCancelled)
			require.NoError(t, err)
			assert.Equal(t, model.OrderCancelled, out.Status)
		})
	}
}

func TestOrderService_UpdateStatusMissingOrder(t *testing.T) {
	provider, _, orders, _ := mockbackend.NewFakeProvider()
	orders.GetFunc = func(context.Context, string) (model.Order, error) {
		return model.Order{}, apperrors.NotFound("order not found")
	}
	svc := NewOrderService(OrderServiceOptions{Backends: provider})

	_, err := svc.UpdateStatus(context.Background(), chefSession(), "nope", model.OrderAccepted)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
