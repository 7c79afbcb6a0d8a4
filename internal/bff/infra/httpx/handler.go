package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
	"github.com/jcmexdev/payments-bff/internal/pkg/telemetry"
)

const maxBodyBytes = 64 << 10

// PurchaseService runs a purchase and always produces a response.
type PurchaseService interface {
	Purchase(ctx context.Context, req entity.PurchaseRequest) (int, entity.PaymentResult)
}

// Handler serves the purchase endpoint of the BFF.
type Handler struct {
	purchases PurchaseService
	validator *RequestValidator
	metrics   *telemetry.Metrics // nil-safe
}

func NewHandler(purchases PurchaseService, validator *RequestValidator, metrics *telemetry.Metrics) *Handler {
	return &Handler{
		purchases: purchases,
		validator: validator,
		metrics:   metrics,
	}
}

// CreatePayment validates the purchase request and charges the customer.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respond(w, r, http.StatusRequestEntityTooLarge, "Invalid request: body too large")
			return
		}
		h.respond(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.validator.Validate(body); err != nil {
		slog.InfoContext(r.Context(), "rejected payment request", "error", err)
		h.respond(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var req CreatePaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respond(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	slog.InfoContext(r.Context(), "creating payment",
		"customer_id", req.CustomerID,
		"product_id", req.ProductID,
		"quantity", req.Quantity,
		"currency", req.Currency,
	)

	code, result := h.purchases.Purchase(r.Context(), entity.PurchaseRequest{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Currency:   req.Currency,
	})
	h.respond(w, r, code, result.Status)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PaymentResponse{Status: "OK"})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, code int, status string) {
	if h.metrics != nil {
		h.metrics.Purchases.WithLabelValues(strconv.Itoa(code)).Inc()
	}
	if code >= http.StatusInternalServerError {
		slog.WarnContext(r.Context(), "payment request failed", "status_code", code, "status", status)
	}
	writeJSON(w, code, PaymentResponse{Status: status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
