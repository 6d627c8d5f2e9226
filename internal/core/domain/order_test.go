package domain_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to domain.OrderStatus }{
		{domain.OrderStatusPending, domain.OrderStatusProcessing},
		{domain.OrderStatusPending, domain.OrderStatusCancelled},
		{domain.OrderStatusPending, domain.OrderStatusDelivered},
		{domain.OrderStatusProcessing, domain.OrderStatusShipped},
		{domain.OrderStatusProcessing, domain.OrderStatusCancelled},
		{domain.OrderStatusProcessing, domain.OrderStatusDelivered},
		{domain.OrderStatusShipped, domain.OrderStatusDelivered},
		{domain.OrderStatusUnderReview, domain.OrderStatusProcessing},
		{domain.OrderStatusUnderReview, domain.OrderStatusCancelled},
	}
	for _, tr := range allowed {
		assert.True(t, domain.CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to domain.OrderStatus }{
		{domain.OrderStatusPending, domain.OrderStatusShipped},
		{domain.OrderStatusShipped, domain.OrderStatusCancelled},
		{domain.OrderStatusShipped, domain.OrderStatusProcessing},
		{domain.OrderStatusDelivered, domain.OrderStatusProcessing},
		{domain.OrderStatusDelivered, domain.OrderStatusCancelled},
		{domain.OrderStatusCancelled, domain.OrderStatusPending},
		{domain.OrderStatusCancelled, domain.OrderStatusProcessing},
		{domain.OrderStatusUnderReview, domain.OrderStatusShipped},
	}
	for _, tr := range denied {
		assert.False(t, domain.CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, domain.OrderStatusDelivered.Terminal())
	assert.True(t, domain.OrderStatusCancelled.Terminal())
	assert.False(t, domain.OrderStatusPending.Terminal())
	assert.False(t, domain.OrderStatusUnderReview.Terminal())
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, domain.ValidOrderStatus("Pending"))
	assert.True(t, domain.ValidOrderStatus("Under Review"))
	assert.False(t, domain.ValidOrderStatus("pending"))
	assert.False(t, domain.ValidOrderStatus("Refunded"))
	assert.False(t, domain.ValidOrderStatus(""))
}

func TestOrderItem_Subtotal(t *testing.T) {
	item := domain.OrderItem{
		UnitPrice: decimal.MustParse("1250.50"),
		Quantity:  3,
	}
	sub, err := item.Subtotal()
	require.NoError(t, err)
	assert.Zero(t, decimal.MustParse("3751.50").Cmp(sub))
}
