package paymentservice

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paymentv1 "github.com/jcmexdev/payments-bff/internal/genproto/payment/v1"
)

type paymentServer struct {
	paymentv1.UnimplementedPaymentServiceServer
	ledger *Ledger
}

func NewPaymentServer(ledger *Ledger) *paymentServer {
	return &paymentServer{ledger: ledger}
}

func (s *paymentServer) CreateCharge(ctx context.Context, req *paymentv1.ChargeRequest) (*paymentv1.ChargeResponse, error) {
	charge, err := s.ledger.Charge(ctx, req.GetCustomerId(), req.GetAmount(), req.GetCurrency())
	switch {
	case errors.Is(err, ErrInvalidCharge):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrDeclined):
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &paymentv1.ChargeResponse{
		Status:   "OK",
		ChargeId: charge.ID,
	}, nil
}
