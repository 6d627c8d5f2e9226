package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type FlashSaleStatus string

const (
	FlashSaleActive  FlashSaleStatus = "active"
	FlashSaleExpired FlashSaleStatus = "expired"
	FlashSaleSoldOut FlashSaleStatus = "sold_out"
)

// FlashSale is a time-boxed, quantity-capped discount on one product.
// Status is swept periodically, so a read between sweeps can observe a
// stale "active"; purchase paths must re-derive status at purchase time.
type FlashSale struct {
	ID           string
	ProductID    string
	FlashPrice   decimal.Decimal
	Quantity     uint32
	SoldQuantity uint32
	StartTime    time.Time
	EndTime      time.Time
	Status       FlashSaleStatus
}

// DeriveStatus computes the logical status at the given instant, independent
// of the persisted (possibly stale) Status field.
func (fs *FlashSale) DeriveStatus(now time.Time) FlashSaleStatus {
	if fs.SoldQuantity >= fs.Quantity {
		return FlashSaleSoldOut
	}
	if now.After(fs.EndTime) {
		return FlashSaleExpired
	}
	return FlashSaleActive
}

// Started reports whether the sale window has opened.
func (fs *FlashSale) Started(now time.Time) bool {
	return !now.Before(fs.StartTime)
}
