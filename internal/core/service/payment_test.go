package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"github.com/sokonihq/sokoni/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkoutRequestID = "ws_CO_270820261231420707"

func mobileMoneyOrder() *domain.Order {
	return &domain.Order{
		ID:            "ord-1",
		CustomerID:    7,
		PaymentMethod: domain.PaymentMobileMoney,
		TotalPrice:    decimal.MustParse("3100"),
		Status:        domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{ProductID: "p-phone", UnitPrice: decimal.MustParse("1000"), Quantity: 2},
		},
	}
}

// updateOrderPassthrough makes the mocked UpdateOrder run the mutation
// closure against the given order, mirroring what the repository does
// inside its transaction.
func updateOrderPassthrough(order *domain.Order) func(context.Context, string, port.UpdateOrderFn) (*domain.Order, error) {
	return func(_ context.Context, _ string, fn port.UpdateOrderFn) (*domain.Order, error) {
		if _, err := fn(order); err != nil {
			return nil, err
		}
		return order, nil
	}
}

func TestService_InitiateCharge(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	owner := port.TokenPayload{UserID: 7, Role: domain.RoleCustomer}

	t.Run("submits the stored total and records the join key", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()

		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
		m.gateway.EXPECT().InitiateCharge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req port.ChargeRequest) (*port.ChargeResponse, error) {
				assert.Equal(t, "254712345678", req.Phone)
				assert.Zero(t, order.TotalPrice.Cmp(req.Amount))
				assert.Equal(t, "Order-"+order.ID, req.AccountReference)
				return &port.ChargeResponse{
					CheckoutRequestID: checkoutRequestID,
					MerchantRequestID: "mr-1",
					ResponseCode:      "0",
				}, nil
			})
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderPassthrough(order))

		resp, err := s.InitiateCharge(context.Background(), order.ID, "0712345678", "", owner)
		require.NoError(t, err)
		assert.Equal(t, checkoutRequestID, resp.CheckoutRequestID)
		assert.Equal(t, checkoutRequestID, order.MpesaTransactionID)
		assert.False(t, order.IsPaid)
	})

	t.Run("only the owner may pay", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := s.InitiateCharge(context.Background(), order.ID, "0712345678", "",
			port.TokenPayload{UserID: 9, Role: domain.RoleCustomer})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("cash on delivery cannot be charged", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		order.PaymentMethod = domain.PaymentCashOnDelivery
		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := s.InitiateCharge(context.Background(), order.ID, "0712345678", "", owner)
		assert.ErrorIs(t, err, domain.ErrNotMobileMoneyOrder)
	})

	t.Run("already paid orders are refused", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		order.IsPaid = true
		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := s.InitiateCharge(context.Background(), order.ID, "0712345678", "", owner)
		assert.ErrorIs(t, err, domain.ErrOrderAlreadyPaid)
	})

	t.Run("cancelled orders are refused", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		order.Status = domain.OrderStatusCancelled
		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := s.InitiateCharge(context.Background(), order.ID, "0712345678", "", owner)
		assert.ErrorIs(t, err, domain.ErrOrderCancelled)
	})

	t.Run("an agreeing client echo is accepted", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()

		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
		m.gateway.EXPECT().InitiateCharge(gomock.Any(), gomock.Any()).
			Return(&port.ChargeResponse{CheckoutRequestID: checkoutRequestID}, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderPassthrough(order))

		_, err := s.InitiateCharge(context.Background(), order.ID, "0712345678", "3100.00", owner)
		require.NoError(t, err)
	})

	t.Run("a stale client echo never reaches the gateway", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := s.InitiateCharge(context.Background(), order.ID, "0712345678", "2900", owner)
		assert.ErrorIs(t, err, domain.ErrAmountMismatch)
	})

	t.Run("an unparseable client echo is a validation error", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := s.InitiateCharge(context.Background(), order.ID, "0712345678", "KES 3100", owner)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("invalid phone never reaches the gateway", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := s.InitiateCharge(context.Background(), order.ID, "12345", "", owner)
		assert.ErrorIs(t, err, domain.ErrInvalidPhoneNumber)
	})

	t.Run("gateway failure maps to a retryable error", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
		m.gateway.EXPECT().InitiateCharge(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := s.InitiateCharge(context.Background(), order.ID, "0712345678", "", owner)
		assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	})
}

func TestService_ApplyPaymentCallback(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2026, 8, 27, 12, 31, 0, 0, time.UTC)

	successCallback := domain.PaymentCallback{
		CheckoutRequestID: checkoutRequestID,
		ResultCode:        0,
		Amount:            decimal.MustParse("3100"),
		ReceiptNumber:     "QHX12ABC34",
		Phone:             "254712345678",
		TransactionDate:   now,
	}

	t.Run("marks the order paid and moves it to processing", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl, service.WithClock(func() time.Time { return now }))
		order := mobileMoneyOrder()
		order.MpesaTransactionID = checkoutRequestID

		m.repo.EXPECT().ReadOrderByCheckoutRequest(gomock.Any(), checkoutRequestID).
			Return(order, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderPassthrough(order))
		m.repo.EXPECT().GetUserByID(gomock.Any(), order.CustomerID).
			Return(&domain.User{ID: order.CustomerID}, nil)
		m.notifier.EXPECT().SendPaymentConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		outcome, err := s.ApplyPaymentCallback(context.Background(), successCallback)
		require.NoError(t, err)
		assert.Equal(t, domain.CallbackApplied, outcome)
		assert.True(t, order.IsPaid)
		require.NotNil(t, order.PaidAt)
		assert.Equal(t, now, *order.PaidAt)
		assert.Equal(t, "QHX12ABC34", order.MpesaReceiptNumber)
		require.NotNil(t, order.PaymentResult)
		assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	})

	t.Run("a retried callback is a no-op", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		order.IsPaid = true
		order.Status = domain.OrderStatusProcessing

		m.repo.EXPECT().ReadOrderByCheckoutRequest(gomock.Any(), checkoutRequestID).
			Return(order, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderPassthrough(order))

		outcome, err := s.ApplyPaymentCallback(context.Background(), successCallback)
		require.NoError(t, err)
		assert.Equal(t, domain.CallbackDuplicate, outcome)
	})

	t.Run("a cancelled order is never resurrected", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)
		order := mobileMoneyOrder()
		order.Status = domain.OrderStatusCancelled

		m.repo.EXPECT().ReadOrderByCheckoutRequest(gomock.Any(), checkoutRequestID).
			Return(order, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderPassthrough(order))

		outcome, err := s.ApplyPaymentCallback(context.Background(), successCallback)
		require.NoError(t, err)
		assert.Equal(t, domain.CallbackIgnored, outcome)
		assert.False(t, order.IsPaid)
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
	})

	t.Run("an unknown correlation id is acknowledged", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)

		m.repo.EXPECT().ReadOrderByCheckoutRequest(gomock.Any(), checkoutRequestID).
			Return(nil, domain.ErrDataNotFound)

		outcome, err := s.ApplyPaymentCallback(context.Background(), successCallback)
		require.NoError(t, err)
		assert.Equal(t, domain.CallbackOrphaned, outcome)
	})

	t.Run("a failed charge never marks the order paid", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl)

		failed := successCallback
		failed.ResultCode = 1032
		failed.ResultDesc = "Request cancelled by user"

		outcome, err := s.ApplyPaymentCallback(context.Background(), failed)
		require.NoError(t, err)
		assert.Equal(t, domain.CallbackRejected, outcome)
	})

	t.Run("a paid order stays under review until resolved", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl, service.WithClock(func() time.Time { return now }))
		order := mobileMoneyOrder()
		order.Status = domain.OrderStatusUnderReview

		m.repo.EXPECT().ReadOrderByCheckoutRequest(gomock.Any(), checkoutRequestID).
			Return(order, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderPassthrough(order))
		m.repo.EXPECT().GetUserByID(gomock.Any(), order.CustomerID).
			Return(&domain.User{ID: order.CustomerID}, nil)
		m.notifier.EXPECT().SendPaymentConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		outcome, err := s.ApplyPaymentCallback(context.Background(), successCallback)
		require.NoError(t, err)
		assert.Equal(t, domain.CallbackApplied, outcome)
		assert.True(t, order.IsPaid)
		assert.Equal(t, domain.OrderStatusUnderReview, order.Status)
	})
}

func TestService_PaymentStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := mobileMoneyOrder()
	order.MpesaTransactionID = checkoutRequestID

	t.Run("polls the gateway read-only", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)

		m.repo.EXPECT().ReadOrderByCheckoutRequest(gomock.Any(), checkoutRequestID).
			Return(order, nil)
		m.gateway.EXPECT().QueryStatus(gomock.Any(), checkoutRequestID).
			Return(&port.PaymentStatus{CheckoutRequestID: checkoutRequestID, ResultCode: "0"}, nil)

		status, err := s.PaymentStatus(context.Background(), checkoutRequestID,
			port.TokenPayload{UserID: order.CustomerID, Role: domain.RoleCustomer})
		require.NoError(t, err)
		assert.Equal(t, "0", status.ResultCode)
		assert.False(t, order.IsPaid)
	})

	t.Run("strangers are refused", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl)

		m.repo.EXPECT().ReadOrderByCheckoutRequest(gomock.Any(), checkoutRequestID).
			Return(order, nil)

		_, err := s.PaymentStatus(context.Background(), checkoutRequestID,
			port.TokenPayload{UserID: 42, Role: domain.RoleCustomer})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
