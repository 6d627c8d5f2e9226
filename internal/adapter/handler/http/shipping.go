package http

import (
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"go.uber.org/zap"
)

type ShippingHandler struct {
	Handler
	service port.Service
}

func NewShippingHandler(service port.Service, logger *zap.Logger) (*ShippingHandler, error) {
	return &ShippingHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type shippingQuoteRequest struct {
	ShippingAddress shippingAddressRequest `json:"shippingAddress"`
	OrderItems      []orderItemRequest     `json:"orderItems"`
	Express         bool                   `json:"express"`
}

type shippingBreakdownResp struct {
	BaseRate         decimal.Decimal `json:"baseRate"`
	ItemSurcharge    decimal.Decimal `json:"itemSurcharge"`
	ExpressSurcharge decimal.Decimal `json:"expressSurcharge"`
}

type shippingQuoteResp struct {
	TotalCost     decimal.Decimal       `json:"totalCost"`
	Zone          string                `json:"zone"`
	ZoneName      string                `json:"zoneName"`
	Breakdown     shippingBreakdownResp `json:"breakdown"`
	EstimatedDays int                   `json:"estimatedDays"`
}

// Quote prices a hypothetical shipment without touching any order. The
// same calculator runs inside checkout, so the preview always matches
// what the order would actually be charged.
func (sh *ShippingHandler) Quote(ctx *gin.Context) {
	req := shippingQuoteRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.CheckoutItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		items = append(items, domain.CheckoutItem{
			ProductID: item.Product,
			Quantity:  item.Quantity,
		})
	}

	quote, err := sh.service.QuoteShipping(domain.ShippingAddress{
		Address:    req.ShippingAddress.Address,
		City:       req.ShippingAddress.City,
		PostalCode: req.ShippingAddress.PostalCode,
		Country:    req.ShippingAddress.Country,
	}, items, req.Express)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccess(ctx, shippingQuoteResp{
		TotalCost: quote.TotalCost,
		Zone:      quote.Zone,
		ZoneName:  quote.ZoneName,
		Breakdown: shippingBreakdownResp{
			BaseRate:         quote.Breakdown.BaseRate,
			ItemSurcharge:    quote.Breakdown.ItemSurcharge,
			ExpressSurcharge: quote.Breakdown.ExpressSurcharge,
		},
		EstimatedDays: quote.EstimatedDays,
	})
}

type shippingZoneResp struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Cities        []string        `json:"cities"`
	BaseRate      decimal.Decimal `json:"baseRate"`
	PerItemRate   decimal.Decimal `json:"perItemRate"`
	EstimatedDays int             `json:"estimatedDays"`
}

func (sh *ShippingHandler) Zones(ctx *gin.Context) {
	zones := sh.service.Zones()

	result := make([]shippingZoneResp, 0, len(zones))
	for _, z := range zones {
		result = append(result, shippingZoneResp{
			Code:          z.Code,
			Name:          z.Name,
			Cities:        z.Cities,
			BaseRate:      z.BaseRate,
			PerItemRate:   z.PerItemRate,
			EstimatedDays: z.EstimatedDays,
		})
	}

	sh.handleSuccess(ctx, result)
}
