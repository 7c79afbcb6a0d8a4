package paymentservice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paymentv1 "github.com/jcmexdev/payments-bff/internal/genproto/payment/v1"
)

func TestPaymentServer_CreateCharge(t *testing.T) {
	srv := NewPaymentServer(NewLedger(newMemoryCache(), 100))

	resp, err := srv.CreateCharge(t.Context(), &paymentv1.ChargeRequest{CustomerId: "c", Amount: 33, Currency: "GBP"})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.GetStatus())
	assert.NotEmpty(t, resp.GetChargeId())

	tests := []struct {
		name string
		req  *paymentv1.ChargeRequest
		code codes.Code
	}{
		{"invalid", &paymentv1.ChargeRequest{CustomerId: "c", Amount: -1, Currency: "GBP"}, codes.InvalidArgument},
		{"declined", &paymentv1.ChargeRequest{CustomerId: "c", Amount: 101, Currency: "GBP"}, codes.FailedPrecondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.CreateCharge(t.Context(), tt.req)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestHTTPHandler_Charges(t *testing.T) {
	handler := NewHTTPHandler(NewLedger(newMemoryCache(), 100))

	tests := []struct {
		name string
		body string
		code int
	}{
		{"accepted", `{"customerId":"c","amount":33,"currency":"GBP"}`, http.StatusCreated},
		{"malformed", `{"customerId":`, http.StatusBadRequest},
		{"invalid", `{"customerId":"c","amount":0,"currency":"GBP"}`, http.StatusBadRequest},
		{"declined", `{"customerId":"c","amount":101,"currency":"GBP"}`, http.StatusPaymentRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/charges", strings.NewReader(tt.body)))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHTTPHandler_LookupCharge(t *testing.T) {
	handler := NewHTTPHandler(NewLedger(newMemoryCache(), 0))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/charges",
		strings.NewReader(`{"customerId":"c","amount":33,"currency":"GBP"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created chargeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "OK", created.Status)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charges/"+created.ChargeID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var charge Charge
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &charge))
	assert.Equal(t, int64(33), charge.Amount)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charges/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
