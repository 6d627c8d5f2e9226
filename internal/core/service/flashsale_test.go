package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_PurchaseFlashSale(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	fixedClock := service.WithClock(func() time.Time { return now })

	openSale := func() *domain.FlashSale {
		return &domain.FlashSale{
			ID:           "fs-1",
			ProductID:    "p-phone",
			FlashPrice:   decimal.MustParse("799"),
			Quantity:     100,
			SoldQuantity: 40,
			StartTime:    now.Add(-time.Hour),
			EndTime:      now.Add(time.Hour),
			Status:       domain.FlashSaleActive,
		}
	}

	t.Run("buys within the window", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl, fixedClock)
		sale := openSale()
		after := *sale
		after.SoldQuantity = 42

		m.repo.EXPECT().ReadFlashSale(gomock.Any(), sale.ID).Return(sale, nil)
		m.catalog.EXPECT().DecrementStock(gomock.Any(), sale.ProductID, uint32(2)).Return(nil)
		m.repo.EXPECT().PurchaseFlashSale(gomock.Any(), sale.ID, uint32(2)).Return(&after, nil)
		m.catalog.EXPECT().IncrementSoldCount(gomock.Any(), sale.ProductID, uint32(2)).Return(nil)

		got, err := s.PurchaseFlashSale(context.Background(), sale.ID, 2, 7)
		require.NoError(t, err)
		assert.Equal(t, uint32(42), got.SoldQuantity)
		assert.Equal(t, domain.FlashSaleActive, got.Status)
	})

	t.Run("last unit flips the sale to sold out", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl, fixedClock)
		sale := openSale()
		sale.SoldQuantity = 99
		after := *sale
		after.SoldQuantity = 100

		m.repo.EXPECT().ReadFlashSale(gomock.Any(), sale.ID).Return(sale, nil)
		m.catalog.EXPECT().DecrementStock(gomock.Any(), sale.ProductID, uint32(1)).Return(nil)
		m.repo.EXPECT().PurchaseFlashSale(gomock.Any(), sale.ID, uint32(1)).Return(&after, nil)
		m.catalog.EXPECT().IncrementSoldCount(gomock.Any(), sale.ProductID, uint32(1)).Return(nil)
		m.repo.EXPECT().UpdateFlashSaleStatus(gomock.Any(), sale.ID, domain.FlashSaleSoldOut).Return(nil)

		got, err := s.PurchaseFlashSale(context.Background(), sale.ID, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.FlashSaleSoldOut, got.Status)
	})

	t.Run("expiry is checked at purchase time, not sweep time", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl, fixedClock)
		sale := openSale()
		sale.EndTime = now.Add(-time.Minute)
		// persisted status is stale
		sale.Status = domain.FlashSaleActive

		m.repo.EXPECT().ReadFlashSale(gomock.Any(), sale.ID).Return(sale, nil)

		_, err := s.PurchaseFlashSale(context.Background(), sale.ID, 1, 7)
		assert.ErrorIs(t, err, domain.ErrFlashSaleExpired)
	})

	t.Run("not yet started", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl, fixedClock)
		sale := openSale()
		sale.StartTime = now.Add(time.Minute)

		m.repo.EXPECT().ReadFlashSale(gomock.Any(), sale.ID).Return(sale, nil)

		_, err := s.PurchaseFlashSale(context.Background(), sale.ID, 1, 7)
		assert.ErrorIs(t, err, domain.ErrFlashSaleNotStarted)
	})

	t.Run("sold out", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl, fixedClock)
		sale := openSale()
		sale.SoldQuantity = sale.Quantity

		m.repo.EXPECT().ReadFlashSale(gomock.Any(), sale.ID).Return(sale, nil)

		_, err := s.PurchaseFlashSale(context.Background(), sale.ID, 1, 7)
		assert.ErrorIs(t, err, domain.ErrFlashSaleSoldOut)
	})

	t.Run("losing the bounded increment releases the stock", func(t *testing.T) {
		s, m := newTestService(t, mockCtrl, fixedClock)
		sale := openSale()

		m.repo.EXPECT().ReadFlashSale(gomock.Any(), sale.ID).Return(sale, nil)
		m.catalog.EXPECT().DecrementStock(gomock.Any(), sale.ProductID, uint32(1)).Return(nil)
		m.repo.EXPECT().PurchaseFlashSale(gomock.Any(), sale.ID, uint32(1)).
			Return(nil, domain.ErrFlashSaleSoldOut)
		m.catalog.EXPECT().IncrementStock(gomock.Any(), sale.ProductID, uint32(1)).Return(nil)

		_, err := s.PurchaseFlashSale(context.Background(), sale.ID, 1, 7)
		assert.ErrorIs(t, err, domain.ErrFlashSaleSoldOut)
	})

	t.Run("zero quantity is invalid", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, fixedClock)

		_, err := s.PurchaseFlashSale(context.Background(), "fs-1", 0, 7)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestService_SweepFlashSales(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	s, m := newTestService(t, mockCtrl, service.WithClock(func() time.Time { return now }))

	stillActive := &domain.FlashSale{
		ID: "fs-live", Quantity: 10, SoldQuantity: 1,
		EndTime: now.Add(time.Hour), Status: domain.FlashSaleActive,
	}
	expired := &domain.FlashSale{
		ID: "fs-old", Quantity: 10, SoldQuantity: 1,
		EndTime: now.Add(-time.Hour), Status: domain.FlashSaleActive,
	}
	drained := &domain.FlashSale{
		ID: "fs-gone", Quantity: 10, SoldQuantity: 10,
		EndTime: now.Add(time.Hour), Status: domain.FlashSaleActive,
	}

	m.repo.EXPECT().ListFlashSalesByStatus(gomock.Any(), domain.FlashSaleActive).
		Return([]*domain.FlashSale{stillActive, expired, drained}, nil)
	m.repo.EXPECT().UpdateFlashSaleStatus(gomock.Any(), "fs-old", domain.FlashSaleExpired).Return(nil)
	m.repo.EXPECT().UpdateFlashSaleStatus(gomock.Any(), "fs-gone", domain.FlashSaleSoldOut).Return(nil)

	err := s.SweepFlashSales(context.Background())
	assert.NoError(t, err)
}
