package port

import (
	"context"

	"github.com/sokonihq/sokoni/internal/core/domain"
)

// RiskScorer assesses an assembled order snapshot. It must be deterministic
// for the same inputs and fast enough to run inside the checkout request.
// Callers treat any error as an unknown-risk assessment; scoring failure
// never blocks checkout.
//
//go:generate mockgen -source=fraud.go -destination=mock/fraud.go -package=mock
type RiskScorer interface {
	Assess(ctx context.Context, order *domain.Order, stats *domain.CustomerStats) (*domain.FraudAssessment, error)
}
