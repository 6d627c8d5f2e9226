package service_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sokonihq/sokoni/internal/adapter/auth"
	"github.com/sokonihq/sokoni/internal/adapter/config"
	"github.com/sokonihq/sokoni/internal/adapter/storage"
	"github.com/sokonihq/sokoni/internal/adapter/storage/repository"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"github.com/sokonihq/sokoni/internal/core/port/mock"
	"github.com/sokonihq/sokoni/internal/core/service"
	"github.com/sokonihq/sokoni/internal/e2etest/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var dbtest *testdb.TestDBInstance

func setup() {
	if os.Getenv(testdb.EnvDSN) == "" {
		return
	}
	var err error
	dbtest, err = testdb.NewTestDBInstance()
	if err != nil {
		log.Fatal(err)
	}
}

func shutdown() {
	if dbtest != nil {
		dbtest.Down()
	}
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	shutdown()
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if dbtest == nil {
		t.Skipf("%s is not set", testdb.EnvDSN)
	}
}

type deps struct {
	db      *storage.DB
	repo    *repository.Repository
	catalog *repository.CatalogRepository
	tokens  port.TokenService
}

func getDeps(t *testing.T) *deps {
	t.Helper()

	db, err := storage.NewDBStorage(context.Background(), &config.Database{DSN: dbtest.DSN})
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	repo, err := repository.NewRepository(db)
	require.NoError(t, err)
	catalog, err := repository.NewCatalogRepository(db)
	require.NoError(t, err)
	ts, err := auth.New()
	require.NoError(t, err)

	return &deps{db: db, repo: repo, catalog: catalog, tokens: ts}
}

func newDBService(t *testing.T, ctrl *gomock.Controller, d *deps) *service.Service {
	t.Helper()

	logger, _ := zap.NewProduction()
	shipping, err := service.NewShippingCalculator()
	require.NoError(t, err)

	s, err := service.NewService(
		d.repo,
		d.catalog,
		mock.NewMockPaymentGateway(ctrl),
		service.NewHeuristicScorer(),
		mock.NewMockNotifier(ctrl),
		d.tokens,
		shipping,
		logger,
	)
	require.NoError(t, err)
	return s
}

func seedSeller(t *testing.T, d *deps, login string) *domain.User {
	t.Helper()
	user, err := d.repo.CreateUser(context.Background(), &domain.User{
		Login:    login,
		Password: "irrelevant",
		Role:     domain.RoleSeller,
	})
	require.NoError(t, err)
	return user
}

func seedProduct(t *testing.T, d *deps, id string, sellerID uint64, stock uint32) {
	t.Helper()
	_, err := d.db.Exec(context.Background(),
		`INSERT INTO products (id, seller_id, name, price, stock, is_active)
		 VALUES ($1, $2, $3, 1000, $4, true)`,
		id, sellerID, "Product "+id, stock)
	require.NoError(t, err)
}

func seedFlashSale(t *testing.T, d *deps, id string, productID string, quantity uint32, sold uint32) {
	t.Helper()
	now := time.Now()
	_, err := d.db.Exec(context.Background(),
		`INSERT INTO flash_sales (id, product_id, flash_price, quantity, sold_quantity, start_time, end_time, status)
		 VALUES ($1, $2, 500, $3, $4, $5, $6, $7)`,
		id, productID, quantity, sold, now.Add(-time.Hour), now.Add(time.Hour), domain.FlashSaleActive)
	require.NoError(t, err)
}

func TestServiceDB_UserRegisterLogin(t *testing.T) {
	requireDB(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	d := getDeps(t)
	s := newDBService(t, mockCtrl, d)
	ctx := context.Background()

	user, err := s.RegisterUser(ctx, &domain.User{Login: "wanjiku", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)

	_, err = s.RegisterUser(ctx, &domain.User{Login: "wanjiku", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrConflictingData)

	token, err := s.LoginUser(ctx, "wanjiku", "hunter2")
	require.NoError(t, err)
	payload, err := d.tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)

	_, err = s.LoginUser(ctx, "wanjiku", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// The stock guard lives in a single conditional UPDATE: racing buyers must
// never drive stock below zero, and losers get the insufficient-stock error.
func TestServiceDB_ConcurrentStockReservation(t *testing.T) {
	requireDB(t)

	d := getDeps(t)
	seller := seedSeller(t, d, "stock-seller")
	seedProduct(t, d, "p-race", seller.ID, 5)
	ctx := context.Background()

	const buyers = 10
	errs := make(chan error, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- d.catalog.DecrementStock(ctx, "p-race", 1)
		}()
	}
	wg.Wait()
	close(errs)

	won, lost := 0, 0
	for err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			lost++
		}
	}
	assert.Equal(t, 5, won)
	assert.Equal(t, 5, lost)

	product, err := d.catalog.GetProduct(ctx, "p-race")
	require.NoError(t, err)
	assert.EqualValues(t, 0, product.Stock)
}

// One unit left, many concurrent buyers: the bounded increment must let
// exactly one through and never push sold_quantity past quantity.
func TestServiceDB_ConcurrentFlashSaleLastUnit(t *testing.T) {
	requireDB(t)

	d := getDeps(t)
	seller := seedSeller(t, d, "flash-seller")
	seedProduct(t, d, "p-flash", seller.ID, 100)
	seedFlashSale(t, d, "fs-last", "p-flash", 3, 2)
	ctx := context.Background()

	const buyers = 8
	type result struct {
		sale *domain.FlashSale
		err  error
	}
	results := make(chan result, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sale, err := d.repo.PurchaseFlashSale(ctx, "fs-last", 1)
			results <- result{sale: sale, err: err}
		}()
	}
	wg.Wait()
	close(results)

	won, lost := 0, 0
	for r := range results {
		if r.err == nil {
			won++
			assert.EqualValues(t, 3, r.sale.SoldQuantity)
		} else {
			assert.ErrorIs(t, r.err, domain.ErrFlashSaleSoldOut)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, buyers-1, lost)

	sale, err := d.repo.ReadFlashSale(ctx, "fs-last")
	require.NoError(t, err)
	assert.EqualValues(t, 3, sale.SoldQuantity)
}
