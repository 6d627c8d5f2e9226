package port

import (
	"context"

	"github.com/sokonihq/sokoni/internal/core/domain"
)

// UpdateOrderFn mutates an order inside a repository transaction. Returning
// a non-nil transition appends it to the audit log in the same transaction.
type UpdateOrderFn func(*domain.Order) (*domain.StatusTransition, error)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uint64) (*domain.User, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ReadOrderByCheckoutRequest(ctx context.Context, checkoutRequestID string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID string, fn UpdateOrderFn) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersBySeller(ctx context.Context, sellerID uint64) ([]*domain.Order, error)
	OrderContainsSellerProduct(ctx context.Context, orderID string, sellerID uint64) (bool, error)
	CustomerOrderStats(ctx context.Context, customerID uint64) (*domain.CustomerStats, error)

	// Cart
	ReadCart(ctx context.Context, userID uint64) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID uint64) error

	// FlashSale
	ReadFlashSale(ctx context.Context, saleID string) (*domain.FlashSale, error)
	ListFlashSalesByStatus(ctx context.Context, status domain.FlashSaleStatus) ([]*domain.FlashSale, error)
	// PurchaseFlashSale performs the bounded sold-quantity increment
	// (soldQuantity + qty <= quantity) atomically.
	PurchaseFlashSale(ctx context.Context, saleID string, qty uint32) (*domain.FlashSale, error)
	UpdateFlashSaleStatus(ctx context.Context, saleID string, status domain.FlashSaleStatus) error
}

// CatalogStore is the product price/stock contract consumed by the order
// core. DecrementStock must be an atomic conditional decrement.
type CatalogStore interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	DecrementStock(ctx context.Context, productID string, qty uint32) error
	IncrementStock(ctx context.Context, productID string, qty uint32) error
	IncrementSoldCount(ctx context.Context, productID string, qty uint32) error
	DecrementSoldCount(ctx context.Context, productID string, qty uint32) error
}
