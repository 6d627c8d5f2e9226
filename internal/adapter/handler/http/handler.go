package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrEmptyOrder:          http.StatusBadRequest,
	domain.ErrInsufficientStock:   http.StatusBadRequest,
	domain.ErrProductInactive:     http.StatusBadRequest,
	domain.ErrNotMobileMoneyOrder: http.StatusBadRequest,
	domain.ErrAmountMismatch:      http.StatusBadRequest,
	domain.ErrInvalidPhoneNumber:  http.StatusBadRequest,

	domain.ErrInvalidStatusTransition: http.StatusConflict,
	domain.ErrOrderUnderReview:        http.StatusConflict,
	domain.ErrOrderNotUnderReview:     http.StatusConflict,
	domain.ErrOrderAlreadyPaid:        http.StatusConflict,
	domain.ErrOrderCancelled:          http.StatusConflict,
	domain.ErrFlashSaleSoldOut:        http.StatusConflict,
	domain.ErrFlashSaleNotStarted:     http.StatusBadRequest,
	domain.ErrFlashSaleExpired:        http.StatusGone,

	domain.ErrGatewayUnavailable: http.StatusBadGateway,
}

type errorResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Message: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Message: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.JSON(statusCode, errorResponse{Message: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
