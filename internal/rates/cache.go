// Package rates maintains the exchange-rate table: a cached mapping
// from currency code to units-per-base-currency, refreshed from an
// external source when stale.
package rates

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nileshk/paisa/internal/common"
	"github.com/nileshk/paisa/internal/model"
	"github.com/nileshk/paisa/internal/service"
)

// StalenessWindow is how long a fetched rate table is considered fresh.
const StalenessWindow = 12 * time.Hour

// bootstrapRates is the built-in table used before any successful fetch
// or cache load. Approximate but always resolvable for every supported
// currency.
func bootstrapRates() map[model.Currency]float64 {
	return map[model.Currency]float64{
		model.CurrencyINR: 1.0,
		model.CurrencyUSD: 0.012,
		model.CurrencyEUR: 0.011,
		model.CurrencyGBP: 0.0095,
		model.CurrencyJPY: 1.78,
		model.CurrencyCAD: 0.016,
		model.CurrencyAUD: 0.018,
		model.CurrencySGD: 0.016,
	}
}

// Cache holds the current rate table and its freshness timestamp. It is
// not safe for concurrent use; callers embedding it in a concurrent
// host must serialize Refresh against reads themselves.
type Cache struct {
	lastUpdated time.Time
	source      service.RateSource
	store       service.RateCacheStore
	rates       map[model.Currency]float64
	base        model.Currency
}

// NewCache builds a cache seeded from the persisted table when one
// exists. If the persisted table is absent or stale, a refresh is
// attempted; a failed refresh is non-fatal and leaves the bootstrap or
// cached table in place.
func NewCache(ctx context.Context, source service.RateSource, store service.RateCacheStore) *Cache {
	c := &Cache{
		source: source,
		store:  store,
		rates:  bootstrapRates(),
		base:   model.BaseCurrency,
	}

	if store != nil {
		rates, lastUpdated, err := store.Load()
		switch {
		case err != nil:
			slog.Warn("failed to load cached exchange rates", "error", err)
		case rates != nil:
			c.rates = rates
			c.lastUpdated = lastUpdated
		}
	}

	if c.Stale(time.Now()) {
		if err := c.Refresh(ctx); err != nil {
			slog.Warn("exchange rate refresh failed, using cached rates", "error", err)
		}
	}

	return c
}

// Rate returns the exchange rate for code relative to the base
// currency.
func (c *Cache) Rate(code model.Currency) (float64, error) {
	rate, ok := c.rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: %s", common.ErrUnsupportedCurrency, code)
	}
	return rate, nil
}

// Rates returns a copy of the current table.
func (c *Cache) Rates() map[model.Currency]float64 {
	out := make(map[model.Currency]float64, len(c.rates))
	for k, v := range c.rates {
		out[k] = v
	}
	return out
}

// LastUpdated returns when the table was last fetched. The zero time
// means no successful fetch or cache load has happened yet.
func (c *Cache) LastUpdated() time.Time {
	return c.lastUpdated
}

// Stale reports whether the table is older than the staleness window as
// of now. A table that was never fetched is always stale.
func (c *Cache) Stale(now time.Time) bool {
	if c.lastUpdated.IsZero() {
		return true
	}
	return now.Sub(c.lastUpdated) > StalenessWindow
}

// Refresh fetches a fresh table from the rate source, replacing the
// current one and persisting it on success. On failure the prior table
// stays in place and the error is returned; there is no retry loop.
func (c *Cache) Refresh(ctx context.Context) error {
	fetched, err := c.source.FetchRates(ctx, c.base)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRateSourceUnavailable, err)
	}

	// The base currency entry is the anchor for all conversions; a
	// table without it cannot be trusted.
	fetched[c.base] = 1.0

	c.rates = fetched
	c.lastUpdated = time.Now()

	if c.store != nil {
		if err := c.store.Save(c.rates, c.lastUpdated); err != nil {
			slog.Warn("failed to persist exchange rates", "error", err)
		}
	}

	slog.Info("exchange rates updated", "currencies", len(c.rates))
	return nil
}
