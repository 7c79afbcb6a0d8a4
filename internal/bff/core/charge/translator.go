package charge

import (
	"fmt"
	"math"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
)

// Translate builds the charge for a purchase. unitPrice and the resulting
// amount are minor currency units. A total that does not fit in int64 is
// rejected with entity.ErrAmountOutOfRange instead of wrapping.
func Translate(req entity.PurchaseRequest, unitPrice int64) (entity.ChargeCommand, error) {
	if unitPrice <= 0 || req.Quantity <= 0 || req.Quantity > math.MaxInt64/unitPrice {
		return entity.ChargeCommand{}, fmt.Errorf("%w: %d x %d", entity.ErrAmountOutOfRange, req.Quantity, unitPrice)
	}
	return entity.ChargeCommand{
		CustomerID: req.CustomerID,
		Amount:     unitPrice * req.Quantity,
		Currency:   req.Currency,
	}, nil
}
