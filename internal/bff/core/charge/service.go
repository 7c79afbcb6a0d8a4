package charge

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
	"github.com/jcmexdev/payments-bff/internal/bff/core/ports"
)

// Service handles a purchase end to end: price lookup, charge translation,
// the upstream charge under the retry policy and the response mapping.
// It keeps no per-request state and is safe for concurrent use.
type Service struct {
	prices  ports.PriceResolver
	gateway ports.PaymentGateway
	retry   *RetryPolicy
}

func NewService(prices ports.PriceResolver, gateway ports.PaymentGateway, retry *RetryPolicy) *Service {
	if retry == nil {
		retry = NewRetryPolicy(DefaultMaxAttempts, 0)
	}
	return &Service{
		prices:  prices,
		gateway: gateway,
		retry:   retry,
	}
}

// Purchase always returns a status code and a body; it never fails.
func (s *Service) Purchase(ctx context.Context, req entity.PurchaseRequest) (int, entity.PaymentResult) {
	return MapOutcome(s.Charge(ctx, req))
}

// Charge returns the final outcome of the purchase before response mapping.
func (s *Service) Charge(ctx context.Context, req entity.PurchaseRequest) entity.ChargeOutcome {
	unitPrice, err := s.prices.Resolve(ctx, req.ProductID, req.Currency)
	if errors.Is(err, entity.ErrUnknownProduct) {
		slog.InfoContext(ctx, "purchase of unknown product",
			"product_id", req.ProductID,
			"currency", req.Currency,
		)
		return entity.Failure(entity.ErrorKindUnknownProduct, err.Error())
	}
	if err != nil {
		slog.ErrorContext(ctx, "price lookup failed", "product_id", req.ProductID, "error", err)
		return entity.Failure(entity.ErrorKindCatalogueFault, err.Error())
	}

	cmd, err := Translate(req, unitPrice)
	if err != nil {
		slog.InfoContext(ctx, "purchase total out of range",
			"product_id", req.ProductID,
			"quantity", req.Quantity,
			"unit_price", unitPrice,
		)
		return entity.Failure(entity.ErrorKindAmountOutOfRange, err.Error())
	}

	outcome := s.retry.Execute(ctx, func(ctx context.Context, n int) entity.ChargeOutcome {
		slog.DebugContext(ctx, "charging customer",
			"gateway", s.gateway.Name(),
			"attempt", n,
			"customer_id", cmd.CustomerID,
			"amount", cmd.Amount,
			"currency", cmd.Currency,
		)
		return s.gateway.Charge(ctx, cmd)
	})

	if !outcome.IsSuccess() {
		slog.WarnContext(ctx, "charge failed",
			"gateway", s.gateway.Name(),
			"customer_id", cmd.CustomerID,
			"kind", outcome.Kind().String(),
			"detail", outcome.Detail(),
		)
	}
	return outcome
}
