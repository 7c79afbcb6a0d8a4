package ports

import (
	"context"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
)

// PaymentGateway sends a charge to the upstream payment service.
// Implementations never return raw errors: every fault is classified into a
// failed entity.ChargeOutcome.
type PaymentGateway interface {
	Charge(ctx context.Context, cmd entity.ChargeCommand) entity.ChargeOutcome
	Name() string
}
