package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ordersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sokoni",
		Name:      "orders_created_total",
		Help:      "Orders successfully created at checkout.",
	})

	// Outcome labels beyond the service's own: callbacks that never
	// reached the service still count.
	callbackMalformed = "malformed"
	callbackFailed    = "failed"

	paymentCallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sokoni",
		Name:      "payment_callbacks_total",
		Help:      "Payment callbacks received, by application outcome.",
	}, []string{"outcome"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sokoni",
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route and status.",
	}, []string{"method", "route", "status"})
)

func metricsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(
			ctx.Request.Method,
			route,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
	}
}

func metricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
