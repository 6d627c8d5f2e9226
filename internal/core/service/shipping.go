package service

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
)

//go:embed zones.json
var defaultZoneTable []byte

type zoneTableFile struct {
	DefaultZone      string          `json:"defaultZone"`
	ExpressSurcharge string          `json:"expressSurcharge"`
	Zones            []zoneTableItem `json:"zones"`
}

type zoneTableItem struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Cities        []string `json:"cities"`
	BaseRate      string   `json:"baseRate"`
	PerItemRate   string   `json:"perItemRate"`
	EstimatedDays int      `json:"estimatedDays"`
}

// ShippingCalculator prices delivery from a data-driven zone table. It is a
// pure lookup component: the table is configuration, not logic.
type ShippingCalculator struct {
	zones            []domain.ShippingZone
	byCity           map[string]int
	defaultZone      int
	expressSurcharge decimal.Decimal
}

// NewShippingCalculator loads the embedded zone table.
func NewShippingCalculator() (*ShippingCalculator, error) {
	return NewShippingCalculatorFromJSON(defaultZoneTable)
}

// NewShippingCalculatorFromJSON builds a calculator from a custom table,
// used by deployments that override the embedded rates.
func NewShippingCalculatorFromJSON(data []byte) (*ShippingCalculator, error) {
	var file zoneTableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse zone table: %w", err)
	}
	if len(file.Zones) == 0 {
		return nil, fmt.Errorf("zone table is empty")
	}

	express, err := decimal.Parse(file.ExpressSurcharge)
	if err != nil {
		return nil, fmt.Errorf("parse express surcharge: %w", err)
	}

	calc := &ShippingCalculator{
		byCity:           make(map[string]int),
		defaultZone:      -1,
		expressSurcharge: express,
	}

	for i, z := range file.Zones {
		base, err := decimal.Parse(z.BaseRate)
		if err != nil {
			return nil, fmt.Errorf("zone %s base rate: %w", z.Code, err)
		}
		perItem, err := decimal.Parse(z.PerItemRate)
		if err != nil {
			return nil, fmt.Errorf("zone %s per-item rate: %w", z.Code, err)
		}
		calc.zones = append(calc.zones, domain.ShippingZone{
			Code:          z.Code,
			Name:          z.Name,
			Cities:        z.Cities,
			BaseRate:      base,
			PerItemRate:   perItem,
			EstimatedDays: z.EstimatedDays,
		})
		for _, city := range z.Cities {
			calc.byCity[strings.ToLower(city)] = i
		}
		if z.Code == file.DefaultZone {
			calc.defaultZone = i
		}
	}
	if calc.defaultZone < 0 {
		return nil, fmt.Errorf("default zone %q not present in table", file.DefaultZone)
	}

	return calc, nil
}

// Zones returns the full zone table for checkout-time display.
func (c *ShippingCalculator) Zones() []domain.ShippingZone {
	out := make([]domain.ShippingZone, len(c.zones))
	copy(out, c.zones)
	return out
}

// Quote prices delivery for the given destination and line items. The first
// unit rides on the zone base rate; each further unit adds the zone's
// per-item surcharge. Express adds a flat surcharge and shaves a day off
// the estimate.
func (c *ShippingCalculator) Quote(address domain.ShippingAddress, items []domain.CheckoutItem, express bool) (*domain.ShippingQuote, error) {
	var units uint32
	for _, it := range items {
		units += it.Quantity
	}
	if units == 0 {
		return nil, domain.ErrEmptyOrder
	}

	zoneIdx := c.defaultZone
	if i, ok := c.byCity[strings.ToLower(strings.TrimSpace(address.City))]; ok {
		zoneIdx = i
	}
	zone := c.zones[zoneIdx]

	extraUnits, err := decimal.New(int64(units)-1, 0)
	if err != nil {
		return nil, err
	}
	surcharge, err := zone.PerItemRate.Mul(extraUnits)
	if err != nil {
		return nil, err
	}

	total, err := zone.BaseRate.Add(surcharge)
	if err != nil {
		return nil, err
	}

	breakdown := domain.ShippingBreakdown{
		BaseRate:         zone.BaseRate,
		ItemSurcharge:    surcharge,
		ExpressSurcharge: decimal.Zero,
	}

	days := zone.EstimatedDays
	if express {
		total, err = total.Add(c.expressSurcharge)
		if err != nil {
			return nil, err
		}
		breakdown.ExpressSurcharge = c.expressSurcharge
		if days > 1 {
			days--
		}
	}

	return &domain.ShippingQuote{
		TotalCost:     total,
		Zone:          zone.Code,
		ZoneName:      zone.Name,
		Breakdown:     breakdown,
		EstimatedDays: days,
	}, nil
}

func (s *Service) QuoteShipping(address domain.ShippingAddress, items []domain.CheckoutItem, express bool) (*domain.ShippingQuote, error) {
	return s.shipping.Quote(address, items, express)
}

func (s *Service) Zones() []domain.ShippingZone {
	return s.shipping.Zones()
}
