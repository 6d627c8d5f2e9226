package port

import (
	"context"

	"github.com/sokonihq/sokoni/internal/core/domain"
)

// Notifier sends customer emails on order events. Every call is best-effort:
// callers ignore the returned error beyond logging and never roll back order
// state because of a failed send.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, order *domain.Order, user *domain.User) error
	SendPaymentConfirmation(ctx context.Context, order *domain.Order, user *domain.User) error
	SendStatusUpdate(ctx context.Context, order *domain.Order, user *domain.User, status domain.OrderStatus) error
}
