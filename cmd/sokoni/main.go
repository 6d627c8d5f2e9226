package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/adapter/auth"
	"github.com/sokonihq/sokoni/internal/adapter/cache"
	"github.com/sokonihq/sokoni/internal/adapter/client/mpesa"
	"github.com/sokonihq/sokoni/internal/adapter/config"
	"github.com/sokonihq/sokoni/internal/adapter/handler/http"
	"github.com/sokonihq/sokoni/internal/adapter/logger"
	"github.com/sokonihq/sokoni/internal/adapter/notifier"
	"github.com/sokonihq/sokoni/internal/adapter/storage"
	"github.com/sokonihq/sokoni/internal/adapter/storage/repository"
	"github.com/sokonihq/sokoni/internal/core/service"
	"go.uber.org/zap"
)

const flashSaleSweepInterval = time.Minute

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	if conf.App.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	catalog, err := repository.NewCatalogRepository(db)
	if err != nil {
		log.Error("catalog repository creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	tokens := cache.NewRedisCache(conf.Redis)
	gateway, err := mpesa.NewClient(conf.Mpesa, tokens, log.Named("Mpesa"))
	if err != nil {
		log.Error("mpesa client creating error", zap.Error(err))
		return
	}

	mailer, err := notifier.NewEmailNotifier(conf.SMTP, log.Named("Notifier"))
	if err != nil {
		log.Error("notifier creating error", zap.Error(err))
		return
	}

	shippingCalc, err := service.NewShippingCalculator()
	if err != nil {
		log.Error("shipping calculator creating error", zap.Error(err))
		return
	}

	taxRate, err := decimal.Parse(conf.App.TaxRate)
	if err != nil {
		log.Error("tax rate parsing error", zap.Error(err))
		return
	}

	svc, err := service.NewService(
		repo,
		catalog,
		gateway,
		service.NewHeuristicScorer(),
		mailer,
		tokenService,
		shippingCalc,
		log.Named("Service"),
		service.WithTaxRate(taxRate),
	)
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	svc.RunFlashSaleSweeper(ctx, flashSaleSweepInterval)

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	shippingHandler, err := http.NewShippingHandler(svc, log.Named("Shipping handler"))
	if err != nil {
		log.Error("shipping handler creating error", zap.Error(err))
		return
	}
	flashSaleHandler, err := http.NewFlashSaleHandler(svc, log.Named("FlashSale handler"))
	if err != nil {
		log.Error("flash sale handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(tokenService, log.Named("Router"),
		userHandler, orderHandler, paymentHandler, shippingHandler, flashSaleHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
