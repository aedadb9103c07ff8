package rates

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nileshk/paisa/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "exchange_rates.json")
	store := NewFileStore(path)

	saved := map[model.Currency]float64{
		model.CurrencyINR: 1.0,
		model.CurrencyUSD: 0.0121,
	}
	when := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

	require.NoError(t, store.Save(saved, when))

	rates, lastUpdated, err := store.Load()
	require.NoError(t, err)
	assert.True(t, when.Equal(lastUpdated))
	assert.InDelta(t, 0.0121, rates[model.CurrencyUSD], 1e-9)
	assert.Equal(t, 1.0, rates[model.CurrencyINR])
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	rates, lastUpdated, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, rates)
	assert.True(t, lastUpdated.IsZero())
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exchange_rates.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewFileStore(path)
	_, _, err := store.Load()
	require.Error(t, err)
}

func TestFileStore_LoadIgnoresUnknownCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exchange_rates.json")
	doc := `{"rates": {"USD": 0.012, "DOGE": 5.0}, "last_update": "2026-08-28T09:30:00Z"}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	store := NewFileStore(path)
	rates, _, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, rates, 1)
	assert.InDelta(t, 0.012, rates[model.CurrencyUSD], 1e-9)
}
