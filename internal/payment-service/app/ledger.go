package paymentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/payments-bff/internal/pkg/cache"
	"github.com/jcmexdev/payments-bff/internal/pkg/interceptors"
)

const chargeTTL = 24 * time.Hour

var (
	ErrInvalidCharge = errors.New("invalid charge")
	ErrDeclined      = errors.New("charge declined")
)

// Charge is the record kept for every accepted charge.
type Charge struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}

// Ledger accepts charges and records them in the cache. Charges above the
// limit are declined; a zero limit accepts any amount.
type Ledger struct {
	cache cache.Cache
	limit int64
}

func NewLedger(c cache.Cache, limit int64) *Ledger {
	return &Ledger{cache: c, limit: limit}
}

func (l *Ledger) Charge(ctx context.Context, customerID string, amount int64, currency string) (Charge, error) {
	if customerID == "" || currency == "" || amount <= 0 {
		return Charge{}, fmt.Errorf("%w: customer %q amount %d currency %q", ErrInvalidCharge, customerID, amount, currency)
	}
	if l.limit > 0 && amount > l.limit {
		slog.InfoContext(ctx, "charge declined", "amount", amount, "limit", l.limit)
		return Charge{}, fmt.Errorf("%w: amount %d exceeds limit %d", ErrDeclined, amount, l.limit)
	}

	charge := Charge{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Amount:     amount,
		Currency:   currency,
	}
	record, err := json.Marshal(charge)
	if err != nil {
		return Charge{}, err
	}
	if err := l.cache.Set(ctx, l.cache.GenerateKey("charge", charge.ID), string(record), chargeTTL); err != nil {
		return Charge{}, fmt.Errorf("record charge: %w", err)
	}

	slog.InfoContext(ctx, "charge accepted",
		"charge_id", charge.ID,
		"amount", amount,
		"currency", currency,
		"request_id", interceptors.RequestIDFromContext(ctx),
	)
	return charge, nil
}

// Lookup returns a recorded charge, or false when it is unknown.
func (l *Ledger) Lookup(ctx context.Context, id string) (Charge, bool, error) {
	raw, err := l.cache.Get(ctx, l.cache.GenerateKey("charge", id))
	if err != nil {
		return Charge{}, false, err
	}
	if raw == "" {
		return Charge{}, false, nil
	}
	var charge Charge
	if err := json.Unmarshal([]byte(raw), &charge); err != nil {
		return Charge{}, false, fmt.Errorf("decode charge %s: %w", id, err)
	}
	return charge, true, nil
}
