package domain

import "github.com/govalues/decimal"

type CartItem struct {
	ProductID string
	Quantity  uint32
}

type Cart struct {
	UserID uint64
	Items  []CartItem
	Total  decimal.Decimal
}
