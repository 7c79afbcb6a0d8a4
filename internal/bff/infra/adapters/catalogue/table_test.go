package catalogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
)

const demoProduct = "12eb9101-6cd5-4378-8283-8924a64ddb05"

func TestTable_Resolve(t *testing.T) {
	table, err := NewTable(
		Price{ProductID: demoProduct, Currency: "GBP", UnitAmount: 11},
		Price{ProductID: demoProduct, Currency: "EUR", UnitAmount: 13},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	price, err := table.Resolve(context.Background(), demoProduct, "GBP")
	require.NoError(t, err)
	assert.Equal(t, int64(11), price)

	price, err = table.Resolve(context.Background(), demoProduct, "EUR")
	require.NoError(t, err)
	assert.Equal(t, int64(13), price)

	_, err = table.Resolve(context.Background(), demoProduct, "USD")
	assert.ErrorIs(t, err, entity.ErrUnknownProduct)

	_, err = table.Resolve(context.Background(), "other", "GBP")
	assert.ErrorIs(t, err, entity.ErrUnknownProduct)
}

func TestNewTable_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name   string
		prices []Price
		errMsg string
	}{
		{"missing product", []Price{{Currency: "GBP", UnitAmount: 1}}, "needs a product"},
		{"zero price", []Price{{ProductID: "p", Currency: "GBP"}}, "must be positive"},
		{"duplicate", []Price{
			{ProductID: "p", Currency: "GBP", UnitAmount: 1},
			{ProductID: "p", Currency: "GBP", UnitAmount: 2},
		}, "duplicate price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.prices...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseUnitAmount(t *testing.T) {
	got, err := ParseUnitAmount("11")
	require.NoError(t, err)
	assert.Equal(t, int64(11), got)

	got, err = ParseUnitAmount("1999.00")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), got)

	for _, raw := range []string{"", "abc", "10.5", "0", "-3", "99999999999999999999"} {
		_, err := ParseUnitAmount(raw)
		assert.Error(t, err, raw)
	}
}
