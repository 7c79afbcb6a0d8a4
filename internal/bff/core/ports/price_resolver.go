package ports

import "context"

// PriceResolver returns the unit price, in minor units, of a product in a
// currency. Missing pairs yield an error wrapping entity.ErrUnknownProduct.
type PriceResolver interface {
	Resolve(ctx context.Context, productID, currency string) (int64, error)
}
