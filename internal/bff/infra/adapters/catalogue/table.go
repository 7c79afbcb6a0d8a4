// Package catalogue holds the price tables read by the purchase flow.
package catalogue

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
	"github.com/jcmexdev/payments-bff/internal/bff/core/ports"
)

var (
	_ ports.PriceResolver = (*Table)(nil)
	_ ports.PriceResolver = (*RedisCatalogue)(nil)
)

// Price is one row of the catalogue. UnitAmount is in minor currency units.
type Price struct {
	ProductID  string
	Currency   string
	UnitAmount int64
}

type key struct {
	productID string
	currency  string
}

// Table is an in-memory price table. It is read-only once built.
type Table struct {
	prices map[key]int64
}

func NewTable(prices ...Price) (*Table, error) {
	t := &Table{prices: make(map[key]int64, len(prices))}
	for _, p := range prices {
		if p.ProductID == "" || p.Currency == "" {
			return nil, fmt.Errorf("catalogue: price entry needs a product and a currency: %+v", p)
		}
		if p.UnitAmount <= 0 {
			return nil, fmt.Errorf("catalogue: price of %s/%s must be positive, got %d", p.ProductID, p.Currency, p.UnitAmount)
		}
		k := key{productID: p.ProductID, currency: p.Currency}
		if _, dup := t.prices[k]; dup {
			return nil, fmt.Errorf("catalogue: duplicate price for %s/%s", p.ProductID, p.Currency)
		}
		t.prices[k] = p.UnitAmount
	}
	return t, nil
}

func (t *Table) Resolve(_ context.Context, productID, currency string) (int64, error) {
	price, ok := t.prices[key{productID: productID, currency: currency}]
	if !ok {
		return 0, fmt.Errorf("catalogue: %s/%s: %w", productID, currency, entity.ErrUnknownProduct)
	}
	return price, nil
}

func (t *Table) Len() int { return len(t.prices) }

// ParseUnitAmount parses a price written in minor units, such as "11" or
// "1999". Fractions of a minor unit and non-positive values are rejected.
func ParseUnitAmount(raw string) (int64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("catalogue: parse unit amount %q: %w", raw, err)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("catalogue: unit amount %q is not a whole number of minor units", raw)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("catalogue: unit amount %q must be positive", raw)
	}
	if !d.BigInt().IsInt64() {
		return 0, fmt.Errorf("catalogue: unit amount %q is out of range", raw)
	}
	return d.IntPart(), nil
}
