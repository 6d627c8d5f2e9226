package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/port"
	"go.uber.org/zap"
)

type FlashSaleHandler struct {
	Handler
	service port.Service
}

func NewFlashSaleHandler(service port.Service, logger *zap.Logger) (*FlashSaleHandler, error) {
	return &FlashSaleHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type flashPurchaseRequest struct {
	Quantity uint32 `json:"quantity"`
}

type flashSaleResp struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	FlashPrice   decimal.Decimal `json:"flashPrice"`
	Quantity     uint32          `json:"quantity"`
	SoldQuantity uint32          `json:"soldQuantity"`
	StartTime    time.Time       `json:"startTime"`
	EndTime      time.Time       `json:"endTime"`
	Status       string          `json:"status"`
}

func (fh *FlashSaleHandler) Purchase(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	// body is optional, a bare POST buys a single unit
	req := flashPurchaseRequest{Quantity: 1}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
			fh.handleValidationError(ctx, err)
			return
		}
	}

	sale, err := fh.service.PurchaseFlashSale(ctx, ctx.Param("id"), req.Quantity, userID)
	if err != nil {
		fh.handleError(ctx, err)
		return
	}

	fh.handleSuccess(ctx, flashSaleResp{
		ID:           sale.ID,
		ProductID:    sale.ProductID,
		FlashPrice:   sale.FlashPrice,
		Quantity:     sale.Quantity,
		SoldQuantity: sale.SoldQuantity,
		StartTime:    sale.StartTime,
		EndTime:      sale.EndTime,
		Status:       string(sale.Status),
	})
}
