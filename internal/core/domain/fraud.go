package domain

type RiskLevel string

const (
	RiskLevelLow     RiskLevel = "low"
	RiskLevelMedium  RiskLevel = "medium"
	RiskLevelHigh    RiskLevel = "high"
	RiskLevelUnknown RiskLevel = "unknown"
)

// FraudAssessment is attached once at order creation and re-evaluated only
// through an explicit admin review.
type FraudAssessment struct {
	Level           RiskLevel
	Score           int
	Flags           []string
	Recommendations []string
}

const (
	FraudReviewApproved = "approved"
	FraudReviewRejected = "rejected"
)

// CustomerStats is the order-history input to risk scoring.
type CustomerStats struct {
	OrderCount     int
	CancelledCount int
}
