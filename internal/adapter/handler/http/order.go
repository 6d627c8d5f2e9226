package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	Product  string `json:"product"`
	Quantity uint32 `json:"quantity"`
}

type shippingAddressRequest struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type createOrderRequest struct {
	OrderItems      []orderItemRequest     `json:"orderItems"`
	ShippingAddress shippingAddressRequest `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	Express         bool                   `json:"express"`
}

type orderItemResp struct {
	Product   string          `json:"product"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  uint32          `json:"quantity"`
}

type fraudResp struct {
	RiskLevel       string   `json:"riskLevel"`
	Score           int      `json:"score"`
	Flags           []string `json:"flags"`
	Recommendations []string `json:"recommendations"`
}

type paymentResultResp struct {
	ReceiptNumber   string          `json:"receiptNumber"`
	Amount          decimal.Decimal `json:"amount"`
	Phone           string          `json:"phone"`
	TransactionDate time.Time       `json:"transactionDate"`
}

type orderResp struct {
	ID                 string                 `json:"id"`
	CustomerID         uint64                 `json:"customerId"`
	OrderItems         []orderItemResp        `json:"orderItems"`
	ShippingAddress    shippingAddressRequest `json:"shippingAddress"`
	PaymentMethod      string                 `json:"paymentMethod"`
	PaymentResult      *paymentResultResp     `json:"paymentResult,omitempty"`
	TaxPrice           decimal.Decimal        `json:"taxPrice"`
	ShippingPrice      decimal.Decimal        `json:"shippingPrice"`
	TotalPrice         decimal.Decimal        `json:"totalPrice"`
	IsPaid             bool                   `json:"isPaid"`
	PaidAt             *time.Time             `json:"paidAt,omitempty"`
	IsDelivered        bool                   `json:"isDelivered"`
	DeliveredAt        *time.Time             `json:"deliveredAt,omitempty"`
	Status             string                 `json:"status"`
	FraudAnalysis      fraudResp              `json:"fraudAnalysis"`
	FraudReviewStatus  string                 `json:"fraudReviewStatus,omitempty"`
	FraudReviewNotes   string                 `json:"fraudReviewNotes,omitempty"`
	MpesaTransactionID string                 `json:"mpesaTransactionId,omitempty"`
	MpesaReceiptNumber string                 `json:"mpesaReceiptNumber,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
}

func newOrderResp(o *domain.Order) orderResp {
	resp := orderResp{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		ShippingAddress: shippingAddressRequest{
			Address:    o.ShippingAddress.Address,
			City:       o.ShippingAddress.City,
			PostalCode: o.ShippingAddress.PostalCode,
			Country:    o.ShippingAddress.Country,
		},
		PaymentMethod: string(o.PaymentMethod),
		TaxPrice:      o.TaxPrice,
		ShippingPrice: o.ShippingPrice,
		TotalPrice:    o.TotalPrice,
		IsPaid:        o.IsPaid,
		PaidAt:        o.PaidAt,
		IsDelivered:   o.IsDelivered,
		DeliveredAt:   o.DeliveredAt,
		Status:        string(o.Status),
		FraudAnalysis: fraudResp{
			RiskLevel:       string(o.Fraud.Level),
			Score:           o.Fraud.Score,
			Flags:           o.Fraud.Flags,
			Recommendations: o.Fraud.Recommendations,
		},
		FraudReviewStatus:  o.FraudReviewStatus,
		FraudReviewNotes:   o.FraudReviewNotes,
		MpesaTransactionID: o.MpesaTransactionID,
		MpesaReceiptNumber: o.MpesaReceiptNumber,
		CreatedAt:          o.CreatedAt,
	}

	for _, item := range o.Items {
		resp.OrderItems = append(resp.OrderItems, orderItemResp{
			Product:   item.ProductID,
			Name:      item.Name,
			Image:     item.ImageURL,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	if o.PaymentResult != nil {
		resp.PaymentResult = &paymentResultResp{
			ReceiptNumber:   o.PaymentResult.ReceiptNumber,
			Amount:          o.PaymentResult.Amount,
			Phone:           o.PaymentResult.Phone,
			TransactionDate: o.PaymentResult.TransactionDate,
		}
	}

	return resp
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	input := domain.CheckoutInput{
		ShippingAddress: domain.ShippingAddress{
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Express:       req.Express,
	}
	for _, item := range req.OrderItems {
		input.Items = append(input.Items, domain.CheckoutItem{
			ProductID: item.Product,
			Quantity:  item.Quantity,
		})
	}

	order, err := oh.service.CreateOrder(ctx, userID, input)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	ordersCreatedTotal.Inc()
	oh.handleSuccessWithStatus(ctx, newOrderResp(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	order, err := oh.service.GetOrder(ctx, ctx.Param("id"), *payload)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) ListMyOrders(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := oh.service.ListMyOrders(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	list, err := oh.service.ListOrders(ctx, *payload)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (oh *OrderHandler) UpdateStatus(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := updateStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	if !domain.ValidOrderStatus(req.Status) {
		oh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, ctx.Param("id"),
		domain.OrderStatus(req.Status), *payload)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) Deliver(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	order, err := oh.service.MarkDelivered(ctx, ctx.Param("id"), *payload)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

type reviewRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes"`
}

func (oh *OrderHandler) Review(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := reviewRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	if req.Action != "approve" && req.Action != "reject" {
		oh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.ReviewOrder(ctx, ctx.Param("id"),
		req.Action == "approve", req.Notes, *payload)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}
