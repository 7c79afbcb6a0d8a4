package catalogue

import (
	"context"
	"fmt"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
	"github.com/jcmexdev/payments-bff/internal/pkg/cache"
)

const priceOperation = "price"

// RedisCatalogue reads prices maintained by another system under
// "<namespace>:price:<productID>:<currency>".
type RedisCatalogue struct {
	cache cache.Cache
}

func NewRedisCatalogue(c cache.Cache) *RedisCatalogue {
	return &RedisCatalogue{cache: c}
}

func (r *RedisCatalogue) Resolve(ctx context.Context, productID, currency string) (int64, error) {
	k := r.cache.GenerateKey(priceOperation, productID+":"+currency)
	raw, err := r.cache.Get(ctx, k)
	if err != nil {
		return 0, fmt.Errorf("catalogue: read %s: %w", k, err)
	}
	if raw == "" {
		return 0, fmt.Errorf("catalogue: %s/%s: %w", productID, currency, entity.ErrUnknownProduct)
	}
	price, err := ParseUnitAmount(raw)
	if err != nil {
		return 0, fmt.Errorf("catalogue: corrupt entry %s: %w", k, err)
	}
	return price, nil
}
