package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sokonihq/sokoni/internal/adapter/client/mpesa"
	"github.com/sokonihq/sokoni/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// The optional amount is the total the client showed the customer; a
// stale figure fails the charge instead of surprising the payer.
type payRequest struct {
	Phone  string `json:"phone"`
	Amount string `json:"amount,omitempty"`
}

type payResponse struct {
	MerchantRequestID string `json:"merchantRequestId"`
	CheckoutRequestID string `json:"checkoutRequestId"`
	CustomerMessage   string `json:"customerMessage"`
}

func (ph *PaymentHandler) Pay(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := payRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	resp, err := ph.service.InitiateCharge(ctx, ctx.Param("id"), req.Phone, req.Amount, *payload)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, payResponse{
		MerchantRequestID: resp.MerchantRequestID,
		CheckoutRequestID: resp.CheckoutRequestID,
		CustomerMessage:   resp.CustomerMessage,
	})
}

// Callback receives the asynchronous gateway confirmation. The gateway
// retries on non-200 responses, so the endpoint acknowledges with 200 no
// matter what happened inside: malformed envelopes and internal failures
// are logged and counted, never surfaced to the provider.
func (ph *PaymentHandler) Callback(ctx *gin.Context) {
	defer ctx.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ph.logger.Warn("unreadable payment callback", zap.Error(err))
		paymentCallbacksTotal.WithLabelValues(callbackMalformed).Inc()
		return
	}

	cb, err := mpesa.ParseCallback(body)
	if err != nil {
		ph.logger.Warn("malformed payment callback", zap.Error(err))
		paymentCallbacksTotal.WithLabelValues(callbackMalformed).Inc()
		return
	}

	outcome, err := ph.service.ApplyPaymentCallback(ctx, cb)
	if err != nil {
		ph.logger.Error("payment callback application",
			zap.String("checkoutRequestId", cb.CheckoutRequestID), zap.Error(err))
		paymentCallbacksTotal.WithLabelValues(callbackFailed).Inc()
		return
	}

	paymentCallbacksTotal.WithLabelValues(string(outcome)).Inc()
}

func (ph *PaymentHandler) Status(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	status, err := ph.service.PaymentStatus(ctx, ctx.Param("requestID"), *payload)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, status)
}
