package port

import (
	"context"

	"github.com/govalues/decimal"
)

type ChargeRequest struct {
	OrderID          string
	Phone            string
	Amount           decimal.Decimal
	AccountReference string
	Description      string
}

type ChargeResponse struct {
	MerchantRequestID   string
	CheckoutRequestID   string
	ResponseCode        string
	ResponseDescription string
	CustomerMessage     string
}

type PaymentStatus struct {
	CheckoutRequestID string
	ResultCode        string
	ResultDesc        string
}

// PaymentGateway initiates mobile-money charges. Confirmation never comes
// from here: only the asynchronous callback marks an order paid.
//
//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	InitiateCharge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)
	QueryStatus(ctx context.Context, checkoutRequestID string) (*PaymentStatus, error)
}
