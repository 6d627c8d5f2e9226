package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/sokonihq/sokoni/internal/adapter/auth"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"github.com/sokonihq/sokoni/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, svc port.Service, tokenService port.TokenService) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := zap.NewProduction()

	userHandler, err := NewUserHandler(svc, logger)
	require.NoError(t, err)
	orderHandler, err := NewOrderHandler(svc, logger)
	require.NoError(t, err)
	paymentHandler, err := NewPaymentHandler(svc, logger)
	require.NoError(t, err)
	shippingHandler, err := NewShippingHandler(svc, logger)
	require.NoError(t, err)
	flashSaleHandler, err := NewFlashSaleHandler(svc, logger)
	require.NoError(t, err)

	r, err := NewRouter(tokenService, logger,
		userHandler, orderHandler, paymentHandler, shippingHandler, flashSaleHandler)
	require.NoError(t, err)
	return r
}

func bearerFor(t *testing.T, tokenService port.TokenService, user *domain.User) string {
	t.Helper()
	token, err := tokenService.CreateToken(user)
	require.NoError(t, err)
	return authType + " " + token
}

func TestRouter_PaymentCallback(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tokenService, err := auth.New()
	require.NoError(t, err)

	body := `{
	  "Body": {
	    "stkCallback": {
	      "CheckoutRequestID": "ws_CO_1",
	      "ResultCode": 0,
	      "ResultDesc": "ok",
	      "CallbackMetadata": {"Item": [
	        {"Name": "Amount", "Value": 3100},
	        {"Name": "MpesaReceiptNumber", "Value": "QHX12ABC34"}
	      ]}
	    }
	  }
	}`

	t.Run("acknowledges every applied callback", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ApplyPaymentCallback(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, cb domain.PaymentCallback) (domain.CallbackOutcome, error) {
				assert.Equal(t, "ws_CO_1", cb.CheckoutRequestID)
				return domain.CallbackApplied, nil
			})
		r := newTestRouter(t, svc, tokenService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", bytes.NewBufferString(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var ack map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
		assert.EqualValues(t, 0, ack["ResultCode"])
	})

	t.Run("acknowledges duplicates the same way", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ApplyPaymentCallback(gomock.Any(), gomock.Any()).
			Return(domain.CallbackDuplicate, nil)
		r := newTestRouter(t, svc, tokenService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", bytes.NewBufferString(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("acknowledges a malformed envelope without touching the service", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		r := newTestRouter(t, svc, tokenService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", bytes.NewBufferString(`{"Body":{}}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var ack map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
		assert.EqualValues(t, 0, ack["ResultCode"])
	})

	t.Run("acknowledges even when applying the callback fails", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ApplyPaymentCallback(gomock.Any(), gomock.Any()).
			Return(domain.CallbackOutcome(""), errors.New("db connection reset"))
		r := newTestRouter(t, svc, tokenService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", bytes.NewBufferString(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var ack map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
		assert.EqualValues(t, 0, ack["ResultCode"])
	})
}

func TestRouter_Auth(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tokenService, err := auth.New()
	require.NoError(t, err)

	customer := &domain.User{ID: 7, Login: "wanjiku", Role: domain.RoleCustomer}

	t.Run("protected routes need a token", func(t *testing.T) {
		r := newTestRouter(t, mock.NewMockService(mockCtrl), tokenService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/orders/mine", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("customer may list own orders", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ListMyOrders(gomock.Any(), customer.ID).
			Return([]*domain.Order{{ID: "o1", CustomerID: customer.ID}}, nil)
		r := newTestRouter(t, svc, tokenService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/orders/mine", nil)
		req.Header.Set(authHeaderKey, bearerFor(t, tokenService, customer))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("customer may not drive the status machine", func(t *testing.T) {
		r := newTestRouter(t, mock.NewMockService(mockCtrl), tokenService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/orders/o1/status",
			bytes.NewBufferString(`{"status":"Processing"}`))
		req.Header.Set(authHeaderKey, bearerFor(t, tokenService, customer))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("checkout returns 201", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().CreateOrder(gomock.Any(), customer.ID, gomock.Any()).
			Return(&domain.Order{ID: "o-new", CustomerID: customer.ID,
				Status: domain.OrderStatusPending}, nil)
		r := newTestRouter(t, svc, tokenService)

		body := `{
		  "orderItems": [{"product": "p1", "quantity": 2}],
		  "shippingAddress": {"address": "Moi Avenue", "city": "Nairobi"},
		  "paymentMethod": "MobileMoney"
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		req.Header.Set(authHeaderKey, bearerFor(t, tokenService, customer))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "o-new")
	})

	t.Run("shipping quote is public", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().QuoteShipping(gomock.Any(), gomock.Any(), false).
			Return(&domain.ShippingQuote{Zone: "NBO", ZoneName: "Nairobi Metro", EstimatedDays: 1}, nil)
		r := newTestRouter(t, svc, tokenService)

		body := `{"shippingAddress":{"city":"Nairobi"},"orderItems":[{"product":"p1","quantity":1}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/shipping/calculate", bytes.NewBufferString(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "NBO")
	})
}
