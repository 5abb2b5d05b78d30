package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range AllOrderStatuses() {
		assert.True(t, status.IsValid(), "status %s should be valid", status)
	}
	assert.False(t, OrderStatus("shipped-ish").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusComplete, false},
		{OrderStatusProcessing, OrderStatusComplete, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusComplete, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestPaymentStatusIsValid(t *testing.T) {
	assert.True(t, PaymentStatusPaid.IsValid())
	assert.True(t, PaymentStatusPartiallyRefunded.IsValid())
	assert.False(t, PaymentStatus("settled").IsValid())
}

func TestShippingStatusIsValid(t *testing.T) {
	assert.True(t, ShippingStatusNotRequired.IsValid())
	assert.True(t, ShippingStatusDelivered.IsValid())
	assert.False(t, ShippingStatus("lost").IsValid())
}
