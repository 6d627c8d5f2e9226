package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	tokenService port.TokenService,
	logger *zap.Logger,
	userHandler *UserHandler,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	shippingHandler *ShippingHandler,
	flashSaleHandler *FlashSaleHandler) (*Router, error) {

	h := NewHandler(logger)

	router := gin.New()
	router.Use(gin.Recovery(), metricsMiddleware())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", metricsHandler())

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
		}

		orders := api.Group("/orders", authCheck(tokenService, h))
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/mine", orderHandler.ListMyOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/pay", paymentHandler.Pay)

			orders.GET("",
				roleCheck(h, domain.RoleSeller, domain.RoleAdmin),
				orderHandler.ListOrders)
			orders.PATCH("/:id/status",
				roleCheck(h, domain.RoleSeller, domain.RoleAdmin),
				orderHandler.UpdateStatus)
			orders.POST("/:id/deliver",
				roleCheck(h, domain.RoleAdmin), orderHandler.Deliver)
			orders.POST("/:id/review",
				roleCheck(h, domain.RoleAdmin), orderHandler.Review)
		}

		payments := api.Group("/payments")
		{
			// the gateway authenticates by shared callback URL, not by token
			payments.POST("/callback", paymentHandler.Callback)
			payments.GET("/:requestID", authCheck(tokenService, h), paymentHandler.Status)
		}

		shipping := api.Group("/shipping")
		{
			shipping.POST("/calculate", shippingHandler.Quote)
			shipping.GET("/zones", shippingHandler.Zones)
		}

		flash := api.Group("/flash-sales", authCheck(tokenService, h))
		{
			flash.POST("/:id/purchase", flashSaleHandler.Purchase)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
