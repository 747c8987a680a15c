package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderAccepted, true},
		{OrderPending, OrderCancelled, true},
		{OrderAccepted, OrderDelivered, true},
		{OrderPending, OrderDelivered, false},
		{OrderAccepted, OrderCancelled, false},
		{OrderAccepted, OrderPending, false},
		{OrderCancelled, OrderAccepted, false},
		{OrderDelivered, OrderPending, false},
		{OrderDelivered, OrderDelivered, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTransition(t *testing.T) {
	next, err := Transition(OrderPending, OrderAccepted)
	require.NoError(t, err)
	assert.Equal(t, OrderAccepted, next)

	next, err = Transition(OrderPending, OrderDelivered)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, OrderPending, next, "failed transition keeps the original status")
}

func TestTerminal(t *testing.T) {
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderAccepted.Terminal())
	assert.True(t, OrderCancelled.Terminal())
	assert.True(t, OrderDelivered.Terminal())
}

func TestParseOrderStatus(t *testing.T) {
	got, err := ParseOrderStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, OrderAccepted, got)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)
}

func TestOrderInputValidate(t *testing.T) {
	valid := OrderInput{MealID: "m1", Quantity: 2, UserAddress: "12 Lake Rd"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, OrderInput{Quantity: 1, UserAddress: "x"}.Validate())
	assert.Error(t, OrderInput{MealID: "m1", Quantity: 0, UserAddress: "x"}.Validate())
	assert.Error(t, OrderInput{MealID: "m1", Quantity: 1}.Validate())
}
