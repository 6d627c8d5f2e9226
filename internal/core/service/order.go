package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"go.uber.org/zap"
)

// CreateOrder runs the checkout flow: validate input, reserve stock per
// item with atomic conditional decrements, price the order server-side,
// score fraud risk, persist and clear the cart. A request without line
// items checks out the customer's stored cart instead. Reservation is
// two-phase: if any line item fails, everything reserved so far is
// released before the error is returned.
func (s *Service) CreateOrder(ctx context.Context, customerID uint64, input domain.CheckoutInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		items, err := s.cartItems(ctx, customerID)
		if err != nil {
			return nil, err
		}
		input.Items = items
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if input.ShippingAddress.Address == "" || input.ShippingAddress.City == "" {
		return nil, domain.ErrBadRequest
	}
	if input.PaymentMethod != domain.PaymentMobileMoney && input.PaymentMethod != domain.PaymentCashOnDelivery {
		return nil, domain.ErrBadRequest
	}
	for _, ci := range input.Items {
		if ci.Quantity == 0 {
			return nil, domain.ErrBadRequest
		}
	}

	items, release, err := s.reserveItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, it := range items {
		sub, err := it.Subtotal()
		if err == nil {
			subtotal, err = subtotal.Add(sub)
		}
		if err != nil {
			release()
			s.logger.Error("Order subtotal", zap.Error(err))
			return nil, domain.ErrInternal
		}
	}

	quote, err := s.shipping.Quote(input.ShippingAddress, input.Items, input.Express)
	if err != nil {
		release()
		return nil, err
	}

	tax, err := subtotal.Mul(s.taxRate)
	if err != nil {
		release()
		return nil, domain.ErrInternal
	}
	total, err := subtotal.Add(tax)
	if err == nil {
		total, err = total.Add(quote.TotalCost)
	}
	if err != nil {
		release()
		return nil, domain.ErrInternal
	}

	order := &domain.Order{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		TaxPrice:        tax,
		ShippingPrice:   quote.TotalCost,
		TotalPrice:      total,
		Status:          domain.OrderStatusPending,
		CreatedAt:       s.clock(),
	}

	// Risk scoring is fail-open: checkout proceeds on scorer failure with
	// a synthetic unknown assessment. High risk gates the order behind
	// manual review; the stock reservation stands either way.
	order.Fraud = s.assessRisk(ctx, order)
	if order.Fraud.Level == domain.RiskLevelHigh {
		order.Status = domain.OrderStatusUnderReview
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		release()
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := s.repo.ClearCart(ctx, customerID); err != nil {
		s.logger.Warn("Clear cart after checkout",
			zap.Uint64("customer", customerID), zap.Error(err))
	}

	s.notifyUser(ctx, newOrder, s.notifier.SendOrderConfirmation)

	return newOrder, nil
}

// cartItems loads the customer's stored cart as checkout line items. A
// missing cart is simply empty.
func (s *Service) cartItems(ctx context.Context, customerID uint64) ([]domain.CheckoutItem, error) {
	cart, err := s.repo.ReadCart(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, nil
		}
		s.logger.Error("Read cart", zap.Uint64("customer", customerID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	items := make([]domain.CheckoutItem, 0, len(cart.Items))
	for _, ci := range cart.Items {
		items = append(items, domain.CheckoutItem{
			ProductID: ci.ProductID,
			Quantity:  ci.Quantity,
		})
	}
	return items, nil
}

// reserveItems validates and reserves every line item, returning the
// snapshotted order items and a release func that undoes the whole
// reservation. Sold counters move in lockstep with stock, best-effort.
func (s *Service) reserveItems(ctx context.Context, items []domain.CheckoutItem) ([]domain.OrderItem, func(), error) {
	snapshot := make([]domain.OrderItem, 0, len(items))
	reserved := make([]domain.CheckoutItem, 0, len(items))

	release := func() {
		for _, r := range reserved {
			if err := s.catalog.IncrementStock(ctx, r.ProductID, r.Quantity); err != nil {
				s.logger.Error("Release reserved stock",
					zap.String("product", r.ProductID), zap.Error(err))
			}
			if err := s.catalog.DecrementSoldCount(ctx, r.ProductID, r.Quantity); err != nil {
				s.logger.Error("Revert sold count",
					zap.String("product", r.ProductID), zap.Error(err))
			}
		}
	}

	for _, ci := range items {
		product, err := s.catalog.GetProduct(ctx, ci.ProductID)
		if err != nil {
			release()
			return nil, nil, err
		}
		if !product.IsActive {
			release()
			return nil, nil, domain.ErrProductInactive
		}
		if err := s.catalog.DecrementStock(ctx, ci.ProductID, ci.Quantity); err != nil {
			release()
			return nil, nil, err
		}
		reserved = append(reserved, ci)
		if err := s.catalog.IncrementSoldCount(ctx, ci.ProductID, ci.Quantity); err != nil {
			s.logger.Warn("Increment sold count",
				zap.String("product", ci.ProductID), zap.Error(err))
		}
		snapshot = append(snapshot, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			UnitPrice: product.Price,
			Quantity:  ci.Quantity,
		})
	}

	return snapshot, release, nil
}

func (s *Service) assessRisk(ctx context.Context, order *domain.Order) domain.FraudAssessment {
	stats, err := s.repo.CustomerOrderStats(ctx, order.CustomerID)
	if err != nil {
		s.logger.Warn("Customer stats for risk scoring",
			zap.Uint64("customer", order.CustomerID), zap.Error(err))
		stats = &domain.CustomerStats{}
	}

	assessment, err := s.scorer.Assess(ctx, order, stats)
	if err != nil || assessment == nil {
		s.logger.Warn("Risk scoring failed, order proceeds with unknown risk",
			zap.String("order", order.ID), zap.Error(err))
		return domain.FraudAssessment{
			Level: domain.RiskLevelUnknown,
			Flags: []string{"risk scoring unavailable"},
		}
	}

	return *assessment
}

func (s *Service) GetOrder(ctx context.Context, orderID string, requester port.TokenPayload) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Read order", zap.Error(err))
		}
		return nil, err
	}

	if requester.Role != domain.RoleAdmin && order.CustomerID != requester.UserID {
		return nil, domain.ErrForbidden
	}

	return order, nil
}

func (s *Service) ListMyOrders(ctx context.Context, customerID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("List orders for customer", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) ListOrders(ctx context.Context, requester port.TokenPayload) ([]*domain.Order, error) {
	switch requester.Role {
	case domain.RoleAdmin:
		return s.repo.ListOrders(ctx)
	case domain.RoleSeller:
		// Sellers see orders containing at least one of their products.
		// No products yet means an empty list, not an error.
		return s.repo.ListOrdersBySeller(ctx, requester.UserID)
	default:
		return nil, domain.ErrForbidden
	}
}
