package service

import (
	"context"
	"time"

	"github.com/sokonihq/sokoni/internal/core/domain"
	"go.uber.org/zap"
)

// PurchaseFlashSale buys qty units from a flash sale. Expiry and sold-out
// are re-derived at purchase time regardless of what the last sweep
// persisted, and the sold-quantity increment is atomically bounded in the
// repository so concurrent purchases cannot oversell.
func (s *Service) PurchaseFlashSale(ctx context.Context, saleID string, qty uint32, userID uint64) (*domain.FlashSale, error) {
	if qty == 0 {
		return nil, domain.ErrBadRequest
	}

	sale, err := s.repo.ReadFlashSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	if !sale.Started(now) {
		return nil, domain.ErrFlashSaleNotStarted
	}
	switch sale.DeriveStatus(now) {
	case domain.FlashSaleExpired:
		return nil, domain.ErrFlashSaleExpired
	case domain.FlashSaleSoldOut:
		return nil, domain.ErrFlashSaleSoldOut
	}

	// Flash-sale stock moves in lockstep with the product's main stock.
	if err := s.catalog.DecrementStock(ctx, sale.ProductID, qty); err != nil {
		return nil, err
	}

	updated, err := s.repo.PurchaseFlashSale(ctx, saleID, qty)
	if err != nil {
		if rbErr := s.catalog.IncrementStock(ctx, sale.ProductID, qty); rbErr != nil {
			s.logger.Error("Release stock after failed flash-sale purchase",
				zap.String("sale", saleID), zap.Error(rbErr))
		}
		return nil, err
	}

	if err := s.catalog.IncrementSoldCount(ctx, sale.ProductID, qty); err != nil {
		s.logger.Warn("Increment sold count for flash sale",
			zap.String("sale", saleID), zap.Error(err))
	}

	if updated.SoldQuantity >= updated.Quantity {
		if err := s.repo.UpdateFlashSaleStatus(ctx, saleID, domain.FlashSaleSoldOut); err != nil {
			s.logger.Warn("Mark flash sale sold out", zap.String("sale", saleID), zap.Error(err))
		}
		updated.Status = domain.FlashSaleSoldOut
	}

	return updated, nil
}

// SweepFlashSales flips sales whose logical status drifted from the
// persisted one. Reads between sweeps can observe a stale "active"; the
// purchase path re-validates, so the window is cosmetic.
func (s *Service) SweepFlashSales(ctx context.Context) error {
	sales, err := s.repo.ListFlashSalesByStatus(ctx, domain.FlashSaleActive)
	if err != nil {
		return err
	}

	now := s.clock()
	for _, sale := range sales {
		derived := sale.DeriveStatus(now)
		if derived == domain.FlashSaleActive {
			continue
		}
		if err := s.repo.UpdateFlashSaleStatus(ctx, sale.ID, derived); err != nil {
			s.logger.Error("Sweep flash sale",
				zap.String("sale", sale.ID),
				zap.String("to", string(derived)), zap.Error(err))
		}
	}

	return nil
}

// RunFlashSaleSweeper runs SweepFlashSales on a fixed interval until the
// context is cancelled.
func (s *Service) RunFlashSaleSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.SweepFlashSales(ctx); err != nil {
					s.logger.Error("Flash sale sweep", zap.Error(err))
				}
			case <-ctx.Done():
				s.logger.Debug("Flash sale sweeper stopped")
				return
			}
		}
	}()
}
