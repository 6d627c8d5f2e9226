package service

import (
	"context"
	"fmt"

	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"go.uber.org/zap"
)

// sellerStatusTargets are the only transitions a seller may trigger.
// Delivery, cancellation and review are admin actions.
var sellerStatusTargets = map[domain.OrderStatus]bool{
	domain.OrderStatusProcessing: true,
	domain.OrderStatusShipped:    true,
}

func actorTag(requester port.TokenPayload) string {
	return fmt.Sprintf("%s:%d", requester.Role, requester.UserID)
}

// UpdateOrderStatus applies an admin or seller driven status change.
// Orders under fraud review are frozen: only ReviewOrder moves them.
// Transitioning to Cancelled restores the creation-time stock reservation
// exactly once, guarded by the order's StockRestored flag.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID string, to domain.OrderStatus, requester port.TokenPayload) (*domain.Order, error) {
	switch requester.Role {
	case domain.RoleAdmin:
	case domain.RoleSeller:
		if !sellerStatusTargets[to] {
			return nil, domain.ErrForbidden
		}
		member, err := s.repo.OrderContainsSellerProduct(ctx, orderID, requester.UserID)
		if err != nil {
			s.logger.Error("Seller membership check", zap.Error(err))
			return nil, err
		}
		if !member {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	var needRestore bool
	updated, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) (*domain.StatusTransition, error) {
		if o.Status == to {
			return nil, nil
		}
		if o.Status == domain.OrderStatusUnderReview {
			return nil, domain.ErrOrderUnderReview
		}
		if !domain.CanTransition(o.Status, to) {
			return nil, domain.ErrInvalidStatusTransition
		}

		tr := &domain.StatusTransition{
			OrderID: o.ID,
			From:    o.Status,
			To:      to,
			Actor:   actorTag(requester),
			At:      s.clock(),
		}
		o.Status = to

		switch to {
		case domain.OrderStatusDelivered:
			if !o.IsDelivered {
				now := s.clock()
				o.IsDelivered = true
				o.DeliveredAt = &now
			}
		case domain.OrderStatusCancelled:
			if !o.StockRestored {
				o.StockRestored = true
				needRestore = true
			}
		}

		return tr, nil
	})
	if err != nil {
		return nil, err
	}

	if needRestore {
		s.restoreStock(ctx, updated)
	}

	s.notifyUser(ctx, updated, func(ctx context.Context, o *domain.Order, u *domain.User) error {
		return s.notifier.SendStatusUpdate(ctx, o, u, to)
	})

	return updated, nil
}

// MarkDelivered is the admin delivery action.
func (s *Service) MarkDelivered(ctx context.Context, orderID string, requester port.TokenPayload) (*domain.Order, error) {
	if requester.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.UpdateOrderStatus(ctx, orderID, domain.OrderStatusDelivered, requester)
}

// ReviewOrder resolves an order held under fraud review. Approval releases
// it to Processing and clears the review flags; rejection cancels it and
// restores the reserved stock.
func (s *Service) ReviewOrder(ctx context.Context, orderID string, approve bool, notes string, requester port.TokenPayload) (*domain.Order, error) {
	if requester.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	to := domain.OrderStatusProcessing
	if !approve {
		to = domain.OrderStatusCancelled
	}

	var needRestore bool
	updated, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) (*domain.StatusTransition, error) {
		if o.Status != domain.OrderStatusUnderReview {
			return nil, domain.ErrOrderNotUnderReview
		}

		tr := &domain.StatusTransition{
			OrderID: o.ID,
			From:    o.Status,
			To:      to,
			Actor:   actorTag(requester),
			Note:    notes,
			At:      s.clock(),
		}
		o.Status = to
		o.FraudReviewNotes = notes

		if approve {
			o.FraudReviewStatus = domain.FraudReviewApproved
			o.Fraud.Flags = nil
		} else {
			o.FraudReviewStatus = domain.FraudReviewRejected
			if !o.StockRestored {
				o.StockRestored = true
				needRestore = true
			}
		}

		return tr, nil
	})
	if err != nil {
		return nil, err
	}

	if needRestore {
		s.restoreStock(ctx, updated)
	}

	s.notifyUser(ctx, updated, func(ctx context.Context, o *domain.Order, u *domain.User) error {
		return s.notifier.SendStatusUpdate(ctx, o, u, to)
	})

	return updated, nil
}

// restoreStock inverts the creation-time reservation. Failures are logged
// per item and the loop continues: a partial restore must be visible in the
// logs rather than silently dropped.
func (s *Service) restoreStock(ctx context.Context, order *domain.Order) {
	for _, item := range order.Items {
		if err := s.catalog.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error("Restore stock on cancellation",
				zap.String("order", order.ID),
				zap.String("product", item.ProductID), zap.Error(err))
		}
		if err := s.catalog.DecrementSoldCount(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error("Revert sold count on cancellation",
				zap.String("order", order.ID),
				zap.String("product", item.ProductID), zap.Error(err))
		}
	}
}
