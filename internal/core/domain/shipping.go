package domain

import "github.com/govalues/decimal"

// ShippingZone is one row of the data-driven zone table.
type ShippingZone struct {
	Code          string
	Name          string
	Cities        []string
	BaseRate      decimal.Decimal
	PerItemRate   decimal.Decimal
	EstimatedDays int
}

type ShippingBreakdown struct {
	BaseRate         decimal.Decimal
	ItemSurcharge    decimal.Decimal
	ExpressSurcharge decimal.Decimal
}

type ShippingQuote struct {
	TotalCost     decimal.Decimal
	Zone          string
	ZoneName      string
	Breakdown     ShippingBreakdown
	EstimatedDays int
}
