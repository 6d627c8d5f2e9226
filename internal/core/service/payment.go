package service

import (
	"context"
	"errors"

	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"github.com/sokonihq/sokoni/internal/core/utils"
	"go.uber.org/zap"
)

// InitiateCharge submits an STK push for the order's stored total. The
// client never sets the charge amount; it may echo the total it showed
// the customer, and a disagreeing echo is rejected before the gateway is
// touched. The provider's CheckoutRequestID is stored on the order as
// the join key for the asynchronous callback; the order is not marked
// paid here under any circumstance.
func (s *Service) InitiateCharge(ctx context.Context, orderID string, phone string, expectedTotal string, requester port.TokenPayload) (*port.ChargeResponse, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != requester.UserID {
		return nil, domain.ErrForbidden
	}
	if order.PaymentMethod != domain.PaymentMobileMoney {
		return nil, domain.ErrNotMobileMoneyOrder
	}
	if order.IsPaid {
		return nil, domain.ErrOrderAlreadyPaid
	}
	if order.Status == domain.OrderStatusCancelled {
		return nil, domain.ErrOrderCancelled
	}

	if expectedTotal != "" {
		expected, err := decimal.Parse(expectedTotal)
		if err != nil {
			return nil, domain.ErrBadRequest
		}
		if expected.Cmp(order.TotalPrice) != 0 {
			return nil, domain.ErrAmountMismatch
		}
	}

	msisdn, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.InitiateCharge(ctx, port.ChargeRequest{
		OrderID:          order.ID,
		Phone:            msisdn,
		Amount:           order.TotalPrice,
		AccountReference: "Order-" + order.ID,
		Description:      "Sokoni order payment",
	})
	if err != nil {
		s.logger.Error("Initiate charge", zap.String("order", order.ID), zap.Error(err))
		return nil, domain.ErrGatewayUnavailable
	}

	_, err = s.repo.UpdateOrder(ctx, order.ID, func(o *domain.Order) (*domain.StatusTransition, error) {
		o.MpesaTransactionID = resp.CheckoutRequestID
		return nil, nil
	})
	if err != nil {
		s.logger.Error("Store checkout request id",
			zap.String("order", order.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return resp, nil
}

// ApplyPaymentCallback is the single writer for payment confirmation.
// It is idempotent against provider retries (an already-paid order is a
// no-op) and never resurrects a cancelled order.
func (s *Service) ApplyPaymentCallback(ctx context.Context, cb domain.PaymentCallback) (domain.CallbackOutcome, error) {
	if !cb.Success() {
		s.logger.Info("Payment callback reported failure",
			zap.String("checkoutRequestID", cb.CheckoutRequestID),
			zap.Int("resultCode", cb.ResultCode),
			zap.String("resultDesc", cb.ResultDesc))
		return domain.CallbackRejected, nil
	}

	order, err := s.repo.ReadOrderByCheckoutRequest(ctx, cb.CheckoutRequestID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			// Ack unknown correlation ids so the provider stops retrying.
			s.logger.Warn("Payment callback for unknown order",
				zap.String("checkoutRequestID", cb.CheckoutRequestID))
			return domain.CallbackOrphaned, nil
		}
		return "", err
	}

	outcome := domain.CallbackApplied
	updated, err := s.repo.UpdateOrder(ctx, order.ID, func(o *domain.Order) (*domain.StatusTransition, error) {
		if o.Status == domain.OrderStatusCancelled {
			outcome = domain.CallbackIgnored
			return nil, nil
		}
		if o.IsPaid {
			outcome = domain.CallbackDuplicate
			return nil, nil
		}

		if o.TotalPrice.Cmp(cb.Amount) != 0 {
			s.logger.Warn("Callback amount differs from order total",
				zap.String("order", o.ID),
				zap.String("orderTotal", o.TotalPrice.String()),
				zap.String("callbackAmount", cb.Amount.String()))
		}

		now := s.clock()
		o.IsPaid = true
		o.PaidAt = &now
		o.MpesaReceiptNumber = cb.ReceiptNumber
		o.PaymentResult = &domain.PaymentResult{
			ReceiptNumber:   cb.ReceiptNumber,
			Amount:          cb.Amount,
			Phone:           cb.Phone,
			TransactionDate: cb.TransactionDate,
		}

		// Fraud-held orders stay under review even once paid.
		if o.Status == domain.OrderStatusPending {
			tr := &domain.StatusTransition{
				OrderID: o.ID,
				From:    o.Status,
				To:      domain.OrderStatusProcessing,
				Actor:   "payment-callback",
				At:      now,
			}
			o.Status = domain.OrderStatusProcessing
			return tr, nil
		}
		return nil, nil
	})
	if err != nil {
		return "", err
	}

	if outcome == domain.CallbackApplied {
		s.notifyUser(ctx, updated, s.notifier.SendPaymentConfirmation)
	}

	return outcome, nil
}

// PaymentStatus is a read-only poll fallback for UIs that do not want to
// wait on the callback. It never mutates order state.
func (s *Service) PaymentStatus(ctx context.Context, checkoutRequestID string, requester port.TokenPayload) (*port.PaymentStatus, error) {
	order, err := s.repo.ReadOrderByCheckoutRequest(ctx, checkoutRequestID)
	if err != nil {
		return nil, err
	}
	if requester.Role != domain.RoleAdmin && order.CustomerID != requester.UserID {
		return nil, domain.ErrForbidden
	}

	status, err := s.gateway.QueryStatus(ctx, checkoutRequestID)
	if err != nil {
		s.logger.Error("Query payment status",
			zap.String("checkoutRequestID", checkoutRequestID), zap.Error(err))
		return nil, domain.ErrGatewayUnavailable
	}
	return status, nil
}
