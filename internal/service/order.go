package service

import (
	"context"
	"log/slog"
	"time"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Backends ports.BackendProvider
	Logger   *slog.Logger
}

// OrderService places orders for customers and drives the order status
// workflow for chefs. Illegal status transitions are rejected before
// the backend is called, so the UI never sees them succeed optimistically.
type OrderService struct {
	backends ports.BackendProvider
	logger   *slog.Logger
}

// NewOrderService constructs an OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{backends: opts.Backends, logger: logger}
}

// Place creates a pending order for the session's user. The meal is
// fetched first so price and chef come from the listing, not the client.
func (s *OrderService) Place(ctx context.Context, sess *domainauth.Session, in model.OrderInput) (model.Order, error) {
	if err := in.Validate(); err != nil {
		return model.Order{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}

	backend := s.backends.For(sess)
	meal, err := backend.Meals.Get(ctx, in.MealID)
	if err != nil {
		return model.Order{}, err
	}

	order := model.Order{
		MealID:        meal.ID,
		MealName:      meal.Name,
		Price:         meal.Price * float64(in.Quantity),
		Quantity:      in.Quantity,
		UserEmail:     sess.Email,
		UserAddress:   in.UserAddress,
		ChefID:        meal.ChefID,
		PaymentStatus: "unpaid",
		Status:        model.OrderPending,
		OrderedAt:     time.Now().UTC(),
	}
	return backend.Orders.Place(ctx, order)
}

// MyOrders lists the session user's own orders.
func (s *OrderService) MyOrders(ctx context.Context, sess *domainauth.Session, q model.ListQuery) ([]model.Order, int, error) {
	return s.backends.For(sess).Orders.MyOrders(ctx, q.Normalize())
}

// ChefOrders lists orders placed against the calling chef's meals.
func (s *OrderService) ChefOrders(ctx context.Context, sess *domainauth.Session, q model.ListQuery) ([]model.Order, int, error) {
	return s.backends.For(sess).Orders.ByChef(ctx, q.Normalize())
}

// Get fetches a single order.
func (s *OrderService) Get(ctx context.Context, sess *domainauth.Session, id string) (model.Order, error) {
	if id == "" {
		return model.Order{}, apperrors.ValidationField("id", "order id is required")
	}
	return s.backends.For(sess).Orders.Get(ctx, id)
}

// UpdateStatus moves an order to a new status. The current status is
// read first and the transition checked against the legal table:
// pending orders may be accepted or cancelled, accepted orders may be
// delivered, and terminal orders cannot change at all. Only the buyer
// or the meal's chef may move an order; the backend enforces the same
// rule, but the gateway already holds the order so it rejects up front.
func (s *OrderService) UpdateStatus(ctx context.Context, sess *domainauth.Session, id string, to model.OrderStatus) (model.Order, error) {
	if id == "" {
		return model.Order{}, apperrors.ValidationField("id", "order id is required")
	}

	backend := s.backends.For(sess)
	order, err := backend.Orders.Get(ctx, id)
	if err != nil {
		return model.Order{}, err
	}

	if sess == nil || (order.UserEmail != sess.Email && order.ChefID != sess.UserID) {
		return model.Order{}, apperrors.NotFoundf("order %s not found", id)
	}

	next, err := model.Transition(order.Status, to)
	if err != nil {
		return model.Order{}, apperrors.Wrapf(err, apperrors.ErrCodeConflict,
			"order %s cannot move from %s to %s", id, order.Status, to)
	}

	if updateErr := backend.Orders.UpdateStatus(ctx, id, next); updateErr != nil {
		return model.Order{}, updateErr
	}
	order.Status = next
	return order, nil
}
