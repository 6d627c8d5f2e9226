package service_test

import (
	"context"
	"testing"

	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicScorer_Assess(t *testing.T) {
	scorer := service.NewHeuristicScorer()

	completeAddress := domain.ShippingAddress{
		Address: "Moi Avenue", City: "Nairobi", PostalCode: "00100", Country: "KE",
	}
	repeatCustomer := &domain.CustomerStats{OrderCount: 12}

	tests := []struct {
		name     string
		order    domain.Order
		stats    *domain.CustomerStats
		expLevel domain.RiskLevel
		expScore int
	}{
		{
			name: "small order from a repeat customer",
			order: domain.Order{
				TotalPrice:      decimal.MustParse("2500"),
				ShippingAddress: completeAddress,
				PaymentMethod:   domain.PaymentMobileMoney,
				Items:           []domain.OrderItem{{Quantity: 2}},
			},
			stats:    repeatCustomer,
			expLevel: domain.RiskLevelLow,
			expScore: 0,
		},
		{
			name: "first order with a thin address",
			order: domain.Order{
				TotalPrice:      decimal.MustParse("2500"),
				ShippingAddress: domain.ShippingAddress{Address: "x", City: "Nairobi"},
				PaymentMethod:   domain.PaymentMobileMoney,
				Items:           []domain.OrderItem{{Quantity: 1}},
			},
			stats:    &domain.CustomerStats{},
			expLevel: domain.RiskLevelLow,
			expScore: 25,
		},
		{
			name: "large total plus incomplete address is medium",
			order: domain.Order{
				TotalPrice:      decimal.MustParse("120000"),
				ShippingAddress: domain.ShippingAddress{Address: "x", City: "Nairobi"},
				PaymentMethod:   domain.PaymentMobileMoney,
				Items:           []domain.OrderItem{{Quantity: 1}},
			},
			stats:    repeatCustomer,
			expLevel: domain.RiskLevelMedium,
			expScore: 40,
		},
		{
			name: "large first order in bulk is high",
			order: domain.Order{
				TotalPrice:      decimal.MustParse("150000"),
				ShippingAddress: completeAddress,
				PaymentMethod:   domain.PaymentMobileMoney,
				Items:           []domain.OrderItem{{Quantity: 15}},
			},
			stats:    &domain.CustomerStats{},
			expLevel: domain.RiskLevelHigh,
			expScore: 65,
		},
		{
			name: "high value cash on delivery counts extra",
			order: domain.Order{
				TotalPrice:      decimal.MustParse("60000"),
				ShippingAddress: completeAddress,
				PaymentMethod:   domain.PaymentCashOnDelivery,
				Items:           []domain.OrderItem{{Quantity: 1}},
			},
			stats:    repeatCustomer,
			expLevel: domain.RiskLevelLow,
			expScore: 20,
		},
		{
			name: "repeated cancellations raise the score",
			order: domain.Order{
				TotalPrice:      decimal.MustParse("2500"),
				ShippingAddress: completeAddress,
				PaymentMethod:   domain.PaymentMobileMoney,
				Items:           []domain.OrderItem{{Quantity: 1}},
			},
			stats:    &domain.CustomerStats{OrderCount: 6, CancelledCount: 4},
			expLevel: domain.RiskLevelLow,
			expScore: 15,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := scorer.Assess(context.Background(), &test.order, test.stats)
			require.NoError(t, err)
			assert.Equal(t, test.expLevel, got.Level)
			assert.Equal(t, test.expScore, got.Score)
			if got.Level == domain.RiskLevelLow {
				assert.Empty(t, got.Recommendations)
			} else {
				assert.NotEmpty(t, got.Recommendations)
			}
		})
	}

	t.Run("deterministic for equal input", func(t *testing.T) {
		order := &domain.Order{
			TotalPrice:      decimal.MustParse("150000"),
			ShippingAddress: completeAddress,
			PaymentMethod:   domain.PaymentMobileMoney,
			Items:           []domain.OrderItem{{Quantity: 15}},
		}
		first, err := scorer.Assess(context.Background(), order, &domain.CustomerStats{})
		require.NoError(t, err)
		second, err := scorer.Assess(context.Background(), order, &domain.CustomerStats{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
