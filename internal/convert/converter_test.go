package convert

import (
	"context"
	"errors"
	"testing"

	"github.com/nileshk/paisa/internal/common"
	"github.com/nileshk/paisa/internal/model"
	"github.com/nileshk/paisa/internal/rates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) FetchRates(_ context.Context, _ model.Currency) (map[model.Currency]float64, error) {
	return nil, errors.New("offline")
}

// newTestConverter builds a converter over the bootstrap rate table.
func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	cache := rates.NewCache(context.Background(), failingSource{}, nil)
	return NewConverter(cache)
}

func TestConvert_IdentityIsExact(t *testing.T) {
	conv := newTestConverter(t)

	for _, amount := range []float64{0, 0.1, 99.99, 123456.789} {
		for _, cur := range model.Currencies() {
			got, err := conv.Convert(amount, cur, cur)
			require.NoError(t, err)
			assert.Equal(t, amount, got, "identity conversion must be exact for %s", cur)
		}
	}
}

func TestConvert_RoundTripWithinTolerance(t *testing.T) {
	conv := newTestConverter(t)

	const amount = 1234.56
	usd, err := conv.Convert(amount, model.CurrencyINR, model.CurrencyUSD)
	require.NoError(t, err)
	back, err := conv.Convert(usd, model.CurrencyUSD, model.CurrencyINR)
	require.NoError(t, err)

	assert.InDelta(t, amount, back, 1e-6)
}

func TestConvert_ThroughBase(t *testing.T) {
	conv := newTestConverter(t)

	// Bootstrap table: USD 0.012, JPY 1.78 per INR.
	got, err := conv.Convert(12, model.CurrencyUSD, model.CurrencyJPY)
	require.NoError(t, err)
	assert.InDelta(t, 12/0.012*1.78, got, 1e-9)
}

func TestConvert_UnsupportedCurrency(t *testing.T) {
	conv := newTestConverter(t)

	_, err := conv.Convert(10, model.Currency("XXX"), model.CurrencyINR)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedCurrency)

	_, err = conv.Convert(10, model.CurrencyINR, model.Currency("XXX"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedCurrency)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		currency model.Currency
		amount   float64
		want     string
	}{
		{name: "INR small", currency: model.CurrencyINR, amount: 500, want: "₹500.00"},
		{name: "INR thousands", currency: model.CurrencyINR, amount: 1234.5, want: "₹1,234.50"},
		{name: "INR lakhs", currency: model.CurrencyINR, amount: 123456.78, want: "₹1,23,456.78"},
		{name: "INR crores", currency: model.CurrencyINR, amount: 12345678.9, want: "₹1,23,45,678.90"},
		{name: "USD grouping", currency: model.CurrencyUSD, amount: 1234567.89, want: "$1,234,567.89"},
		{name: "EUR small", currency: model.CurrencyEUR, amount: 12.3, want: "€12.30"},
		{name: "CAD prefix", currency: model.CurrencyCAD, amount: 1000, want: "C$1,000.00"},
		{name: "negative", currency: model.CurrencyUSD, amount: -4500.25, want: "-$4,500.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.currency))
		})
	}
}
