package httpx

import (
	"context"
	"encoding/json"
	"math"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/jcmexdev/payments-bff/internal/bff/core/charge"
	"github.com/jcmexdev/payments-bff/internal/bff/core/ports"
	"github.com/jcmexdev/payments-bff/internal/bff/infra/adapters/catalogue"
	"github.com/jcmexdev/payments-bff/internal/bff/infra/adapters/payment"
	paymentv1 "github.com/jcmexdev/payments-bff/internal/genproto/payment/v1"
)

// The tests below run the whole BFF against stubbed upstream payment services.

func newBFF(t *testing.T, gateway ports.PaymentGateway) http.Handler {
	t.Helper()
	return newBFFWithPrice(t, gateway, 11)
}

func newBFFWithPrice(t *testing.T, gateway ports.PaymentGateway, unitAmount int64) http.Handler {
	t.Helper()
	prices, err := catalogue.NewTable(catalogue.Price{
		ProductID:  "12eb9101-6cd5-4378-8283-8924a64ddb05",
		Currency:   "GBP",
		UnitAmount: unitAmount,
	})
	require.NoError(t, err)
	router, _, _ := newTestRouter(t, charge.NewService(prices, gateway, charge.NewRetryPolicy(3, 0)))
	return router
}

func newUpstream(t *testing.T, handler http.HandlerFunc) ports.PaymentGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	gw, err := payment.NewHTTPGateway(server.URL, server.Client())
	require.NoError(t, err)
	return gw
}

func hijack(t *testing.T, w http.ResponseWriter, reset bool) {
	conn, _, err := w.(http.Hijacker).Hijack()
	require.NoError(t, err)
	if tcp, ok := conn.(*net.TCPConn); ok && reset {
		_ = tcp.SetLinger(0)
	}
	_ = conn.Close()
}

func TestBFF_SuccessfullyPayForProduct(t *testing.T) {
	var amount atomic.Int64
	gw := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Amount int64 `json:"amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		amount.Store(body.Amount)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","chargeId":"5b1e7a4c-9d3f-4e2a-8c6b-1f0e9d8c7b6a"}`))
	})

	rec, resp := postPayment(t, newBFF(t, gw), demoBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, int64(33), amount.Load())
}

func TestBFF_APIError(t *testing.T) {
	var hits atomic.Int32
	gw := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	rec, resp := postPayment(t, newBFF(t, gw), demoBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Payment service error", resp.Status)
	assert.Equal(t, int32(3), hits.Load())
}

func TestBFF_NetworkError(t *testing.T) {
	var hits atomic.Int32
	gw := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		hijack(t, w, true)
	})

	rec, resp := postPayment(t, newBFF(t, gw), demoBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Payment service fault", resp.Status)
	assert.Equal(t, int32(3), hits.Load())
}

func TestBFF_RetriesPaymentOnErrorAndFault(t *testing.T) {
	var hits atomic.Int32
	gw := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
		switch hits.Add(1) {
		case 1:
			w.WriteHeader(http.StatusBadGateway)
		case 2:
			hijack(t, w, false)
		default:
			_, _ = w.Write([]byte(`{"status":"OK","chargeId":"0d9c8b7a-6f5e-4d3c-2b1a-0f9e8d7c6b5a"}`))
		}
	})

	rec, resp := postPayment(t, newBFF(t, gw), demoBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, int32(3), hits.Load())
}

func TestBFF_UnknownProductNeverReachesUpstream(t *testing.T) {
	var hits atomic.Int32
	gw := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	})

	body := `{"customerId":"1234567890","productId":"12eb9101-6cd5-4378-8283-8924a64ddb05","quantity":3,"currency":"USD"}`
	rec, resp := postPayment(t, newBFF(t, gw), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unknown product", resp.Status)
	assert.Zero(t, hits.Load())
}

func TestBFF_OverflowingTotalNeverReachesUpstream(t *testing.T) {
	var hits atomic.Int32
	gw := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	})

	rec, resp := postPayment(t, newBFFWithPrice(t, gw, math.MaxInt64/2), demoBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request: amount out of range", resp.Status)
	assert.Zero(t, hits.Load())
}

type amountCheckingServer struct {
	paymentv1.UnimplementedPaymentServiceServer
	amount atomic.Int64
}

func (s *amountCheckingServer) CreateCharge(_ context.Context, req *paymentv1.ChargeRequest) (*paymentv1.ChargeResponse, error) {
	s.amount.Store(req.GetAmount())
	return &paymentv1.ChargeResponse{Status: "OK", ChargeId: "7c6b5a4f-3e2d-4c1b-a09f-8e7d6c5b4a39"}, nil
}

func TestBFF_GRPC_SuccessfullyPayForProduct(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	upstream := &amountCheckingServer{}
	server := grpc.NewServer()
	paymentv1.RegisterPaymentServiceServer(server, upstream)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	gw := payment.NewGRPCGateway(paymentv1.NewPaymentServiceClient(conn))
	rec, resp := postPayment(t, newBFF(t, gw), demoBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, int64(33), upstream.amount.Load())
}

func TestBFF_GRPC_UnavailableUpstream(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	_ = lis.Close()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	gw := payment.NewGRPCGateway(paymentv1.NewPaymentServiceClient(conn))
	rec, resp := postPayment(t, newBFF(t, gw), demoBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Payment service fault", resp.Status)
}
