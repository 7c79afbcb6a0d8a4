package payment

import (
	"context"
	"fmt"

	"google.golang.org/grpc/status"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
	"github.com/jcmexdev/payments-bff/internal/bff/core/ports"
	paymentv1 "github.com/jcmexdev/payments-bff/internal/genproto/payment/v1"
)

var _ ports.PaymentGateway = (*GRPCGateway)(nil)

// GRPCGateway charges through the unary PaymentService.createCharge RPC.
// The reply carries no error field, so any reply is a success.
type GRPCGateway struct {
	client paymentv1.PaymentServiceClient
}

func NewGRPCGateway(client paymentv1.PaymentServiceClient) *GRPCGateway {
	return &GRPCGateway{client: client}
}

func (g *GRPCGateway) Name() string { return "grpc" }

func (g *GRPCGateway) Charge(ctx context.Context, cmd entity.ChargeCommand) entity.ChargeOutcome {
	res, err := g.client.CreateCharge(ctx, &paymentv1.ChargeRequest{
		CustomerId: cmd.CustomerID,
		Amount:     cmd.Amount,
		Currency:   cmd.Currency,
	})
	if err != nil {
		st := status.Convert(err)
		return entity.Failure(entity.ErrorKindTransportFault, fmt.Sprintf("grpc createCharge: %s: %s", st.Code(), st.Message()))
	}
	if res == nil {
		return entity.Failure(entity.ErrorKindTransportFault, "grpc createCharge: empty response")
	}
	return entity.Success(res.GetStatus())
}
