package charge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
)

func TestTranslate(t *testing.T) {
	req := entity.PurchaseRequest{
		CustomerID: "1234567890",
		ProductID:  "12eb9101-6cd5-4378-8283-8924a64ddb05",
		Quantity:   3,
		Currency:   "GBP",
	}

	cmd, err := Translate(req, 11)

	require.NoError(t, err)
	assert.Equal(t, entity.ChargeCommand{CustomerID: "1234567890", Amount: 33, Currency: "GBP"}, cmd)
}

func TestTranslate_LargeQuantitiesAreExact(t *testing.T) {
	prices := []int64{1, 11, 199, 1999, 123456789}
	quantities := []int64{1, 7, 999, 1_000_000}
	for _, price := range prices {
		for _, qty := range quantities {
			cmd, err := Translate(entity.PurchaseRequest{Quantity: qty, Currency: "EUR"}, price)
			require.NoError(t, err)
			assert.Equal(t, price*qty, cmd.Amount, "price=%d qty=%d", price, qty)
			assert.Equal(t, cmd.Amount/qty, price)
		}
	}
}

func TestTranslate_RejectsAmountsOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int64
		unitPrice int64
	}{
		{"wraps past int64", 838488366986797801, 11},
		{"one past the limit", math.MaxInt64/2 + 1, 2},
		{"zero quantity", 0, 11},
		{"negative quantity", -3, 11},
		{"zero price", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Translate(entity.PurchaseRequest{Quantity: tt.quantity, Currency: "GBP"}, tt.unitPrice)
			assert.ErrorIs(t, err, entity.ErrAmountOutOfRange)
		})
	}

	cmd, err := Translate(entity.PurchaseRequest{Quantity: math.MaxInt64 / 2, Currency: "GBP"}, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), cmd.Amount)
}
