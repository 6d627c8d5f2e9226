package service

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
)

// Scoring thresholds. Amounts are KES.
var (
	largeOrderAmount = decimal.MustParse("100000")
	largeCODAmount   = decimal.MustParse("50000")
)

const (
	bulkQuantity      = 10
	manyDistinctItems = 8

	scoreLargeAmount    = 30
	scoreBulkQuantity   = 20
	scoreLargeCOD       = 20
	scoreFirstOrder     = 15
	scoreManyCancelled  = 15
	scoreBadAddress     = 10
	scoreManyItems      = 10

	mediumRiskScore = 30
	highRiskScore   = 60
)

// HeuristicScorer is the default risk scorer: a deterministic rule table
// over the order snapshot and the customer's order history. It holds no
// state and performs no I/O.
type HeuristicScorer struct{}

func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{}
}

func (hs *HeuristicScorer) Assess(_ context.Context, order *domain.Order, stats *domain.CustomerStats) (*domain.FraudAssessment, error) {
	score := 0
	var flags []string

	if order.TotalPrice.Cmp(largeOrderAmount) >= 0 {
		score += scoreLargeAmount
		flags = append(flags, "order total exceeds large-amount threshold")
	}

	for _, item := range order.Items {
		if item.Quantity >= bulkQuantity {
			score += scoreBulkQuantity
			flags = append(flags, "bulk quantity on a single line item")
			break
		}
	}

	if order.PaymentMethod == domain.PaymentCashOnDelivery &&
		order.TotalPrice.Cmp(largeCODAmount) >= 0 {
		score += scoreLargeCOD
		flags = append(flags, "high-value cash on delivery")
	}

	if stats != nil {
		if stats.OrderCount == 0 {
			score += scoreFirstOrder
			flags = append(flags, "first order for this customer")
		}
		if stats.CancelledCount > 2 {
			score += scoreManyCancelled
			flags = append(flags, "customer has repeated cancellations")
		}
	}

	if order.ShippingAddress.PostalCode == "" || order.ShippingAddress.Country == "" {
		score += scoreBadAddress
		flags = append(flags, "incomplete shipping address")
	}

	if len(order.Items) >= manyDistinctItems {
		score += scoreManyItems
		flags = append(flags, "unusually many distinct items")
	}

	level := domain.RiskLevelLow
	var recommendations []string
	switch {
	case score >= highRiskScore:
		level = domain.RiskLevelHigh
		recommendations = []string{
			"hold order for manual review",
			"verify customer identity by phone before fulfilment",
		}
	case score >= mediumRiskScore:
		level = domain.RiskLevelMedium
		recommendations = []string{"monitor payment confirmation before shipping"}
	}

	return &domain.FraudAssessment{
		Level:           level,
		Score:           score,
		Flags:           flags,
		Recommendations: recommendations,
	}, nil
}
