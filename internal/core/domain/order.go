package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "Pending"
	OrderStatusProcessing  OrderStatus = "Processing"
	OrderStatusShipped     OrderStatus = "Shipped"
	OrderStatusDelivered   OrderStatus = "Delivered"
	OrderStatusCancelled   OrderStatus = "Cancelled"
	OrderStatusUnderReview OrderStatus = "Under Review"
)

type PaymentMethod string

const (
	PaymentMobileMoney    PaymentMethod = "MobileMoney"
	PaymentCashOnDelivery PaymentMethod = "CashOnDelivery"
)

// OrderItem is a snapshot of a product at checkout time. Name, image and
// unit price are copied from the catalog and never track later changes.
type OrderItem struct {
	ProductID string
	Name      string
	ImageURL  string
	UnitPrice decimal.Decimal
	Quantity  uint32
}

func (i OrderItem) Subtotal() (decimal.Decimal, error) {
	qty, err := decimal.New(int64(i.Quantity), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return i.UnitPrice.Mul(qty)
}

type ShippingAddress struct {
	Address    string
	City       string
	PostalCode string
	Country    string
}

// PaymentResult is the gateway receipt, set only on confirmed payment.
type PaymentResult struct {
	ReceiptNumber   string
	Amount          decimal.Decimal
	Phone           string
	TransactionDate time.Time
}

type Order struct {
	ID         string
	CustomerID uint64

	Items           []OrderItem
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
	PaymentResult   *PaymentResult

	TaxPrice      decimal.Decimal
	ShippingPrice decimal.Decimal
	TotalPrice    decimal.Decimal

	IsPaid      bool
	PaidAt      *time.Time
	IsDelivered bool
	DeliveredAt *time.Time

	Status OrderStatus

	Fraud             FraudAssessment
	FraudReviewStatus string
	FraudReviewNotes  string

	// MpesaTransactionID holds the provider's CheckoutRequestID, the join
	// key for the asynchronous callback.
	MpesaTransactionID string
	MpesaReceiptNumber string

	// StockRestored guards against restoring reserved stock twice when an
	// order is cancelled through more than one path.
	StockRestored bool

	CreatedAt time.Time
}

// StatusTransition is one append-only audit record of a status change.
type StatusTransition struct {
	OrderID string
	From    OrderStatus
	To      OrderStatus
	Actor   string
	Note    string
	At      time.Time
}

var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:     {OrderStatusProcessing, OrderStatusCancelled, OrderStatusDelivered},
	OrderStatusProcessing:  {OrderStatusShipped, OrderStatusCancelled, OrderStatusDelivered},
	OrderStatusShipped:     {OrderStatusDelivered},
	OrderStatusUnderReview: {OrderStatusProcessing, OrderStatusCancelled},
}

// CanTransition reports whether moving from one status to another is legal.
// Delivered and Cancelled are terminal.
func CanTransition(from, to OrderStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusUnderReview:
		return true
	}
	return false
}
