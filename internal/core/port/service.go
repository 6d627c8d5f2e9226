package port

import (
	"context"

	"github.com/sokonihq/sokoni/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)

	CreateOrder(ctx context.Context, customerID uint64, input domain.CheckoutInput) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string, requester TokenPayload) (*domain.Order, error)
	ListMyOrders(ctx context.Context, customerID uint64) ([]*domain.Order, error)
	ListOrders(ctx context.Context, requester TokenPayload) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, to domain.OrderStatus, requester TokenPayload) (*domain.Order, error)
	MarkDelivered(ctx context.Context, orderID string, requester TokenPayload) (*domain.Order, error)
	ReviewOrder(ctx context.Context, orderID string, approve bool, notes string, requester TokenPayload) (*domain.Order, error)

	InitiateCharge(ctx context.Context, orderID string, phone string, expectedTotal string, requester TokenPayload) (*ChargeResponse, error)
	ApplyPaymentCallback(ctx context.Context, cb domain.PaymentCallback) (domain.CallbackOutcome, error)
	PaymentStatus(ctx context.Context, checkoutRequestID string, requester TokenPayload) (*PaymentStatus, error)

	QuoteShipping(address domain.ShippingAddress, items []domain.CheckoutItem, express bool) (*domain.ShippingQuote, error)
	Zones() []domain.ShippingZone
	PurchaseFlashSale(ctx context.Context, saleID string, qty uint32, userID uint64) (*domain.FlashSale, error)
}
