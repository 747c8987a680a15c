package model

import (
	"errors"
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderCancelled OrderStatus = "cancelled"
	OrderDelivered OrderStatus = "delivered"
)

// ErrInvalidTransition is returned when an order status change is not in
// the legal transition table.
var ErrInvalidTransition = errors.New("invalid order status transition")

// legalTransitions is the authoritative transition table. The backend
// enforces the same rules; the gateway rejects illegal transitions up
// front so the UI never observes them succeeding optimistically.
var legalTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderAccepted, OrderCancelled},
	OrderAccepted: {OrderDelivered},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates from -> to and returns the new status.
func Transition(from, to OrderStatus) (OrderStatus, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return to, nil
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return len(legalTransitions[s]) == 0
}

// ParseOrderStatus maps a status string onto the closed status set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderAccepted, OrderCancelled, OrderDelivered:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// Order is a customer's order for a meal.
type Order struct {
	ID            string      `json:"_id"`
	MealID        string      `json:"mealId"`
	MealName      string      `json:"mealName"`
	Price         float64     `json:"price"`
	Quantity      int         `json:"quantity"`
	UserEmail     string      `json:"userEmail"`
	UserAddress   string      `json:"userAddress"`
	ChefID        string      `json:"chefId"`
	PaymentStatus string      `json:"paymentStatus,omitempty"`
	Status        OrderStatus `json:"orderStatus"`
	OrderedAt     time.Time   `json:"orderTime"`
}

// OrderInput carries the fields a customer supplies when placing an
// order. Identity fields are stamped from the session server-side.
type OrderInput struct {
	MealID      string `json:"mealId"`
	Quantity    int    `json:"quantity"`
	UserAddress string `json:"userAddress"`
}

// Validate reports the first problem with the input, or nil.
func (in OrderInput) Validate() error {
	switch {
	case in.MealID == "":
		return ValidationError{Field: "mealId", Reason: "meal id is required"}
	case in.Quantity <= 0:
		return ValidationError{Field: "quantity", Reason: "quantity must be positive"}
	case in.UserAddress == "":
		return ValidationError{Field: "userAddress", Reason: "delivery address is required"}
	default:
		return nil
	}
}
