package domain

import "github.com/govalues/decimal"

// Product is the catalog view the order core consumes. Catalog management
// itself lives outside this service.
type Product struct {
	ID        string
	SellerID  uint64
	Name      string
	ImageURL  string
	Price     decimal.Decimal
	Stock     uint32
	SoldCount uint32
	IsActive  bool
}
