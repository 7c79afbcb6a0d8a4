package paymentservice

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/payments-bff/internal/pkg/interceptors"
)

type chargeRequest struct {
	CustomerID string `json:"customerId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}

type chargeResponse struct {
	Status   string `json:"status"`
	ChargeID string `json:"chargeId,omitempty"`
}

// NewHTTPHandler exposes the ledger over the REST contract used by the BFF.
func NewHTTPHandler(ledger *Ledger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/charges", func(w http.ResponseWriter, r *http.Request) {
		ctx := interceptors.WithRequestID(r.Context(), r.Header.Get(middleware.RequestIDHeader))

		var req chargeRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, chargeResponse{Status: "malformed charge"})
			return
		}

		charge, err := ledger.Charge(ctx, req.CustomerID, req.Amount, req.Currency)
		switch {
		case errors.Is(err, ErrInvalidCharge):
			writeJSON(w, http.StatusBadRequest, chargeResponse{Status: err.Error()})
		case errors.Is(err, ErrDeclined):
			writeJSON(w, http.StatusPaymentRequired, chargeResponse{Status: err.Error()})
		case err != nil:
			writeJSON(w, http.StatusInternalServerError, chargeResponse{Status: err.Error()})
		default:
			writeJSON(w, http.StatusCreated, chargeResponse{Status: "OK", ChargeID: charge.ID})
		}
	})

	r.Get("/charges/{id}", func(w http.ResponseWriter, r *http.Request) {
		charge, ok, err := ledger.Lookup(r.Context(), chi.URLParam(r, "id"))
		switch {
		case err != nil:
			writeJSON(w, http.StatusInternalServerError, chargeResponse{Status: err.Error()})
		case !ok:
			writeJSON(w, http.StatusNotFound, chargeResponse{Status: "charge not found"})
		default:
			writeJSON(w, http.StatusOK, charge)
		}
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
