package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/nileshk/paisa/internal/budget"
	"github.com/nileshk/paisa/internal/cli"
	"github.com/nileshk/paisa/internal/common"
	"github.com/nileshk/paisa/internal/config"
	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/model"
	"github.com/nileshk/paisa/internal/rates"
	"github.com/nileshk/paisa/internal/service"
	"github.com/nileshk/paisa/internal/session"
	"github.com/nileshk/paisa/internal/storage"
)

// app bundles everything a command needs: the live session, the
// converter over the rate cache, and the store to save back into.
type app struct {
	session   *session.Session
	converter *convert.Converter
	cache     *rates.Cache
	store     service.Store
}

// openStore picks the persistence backend from configuration.
func openStore() (service.Store, error) {
	backend := viper.GetString("storage.backend")
	switch backend {
	case "json", "":
		return storage.NewSnapshotFile(config.ExpandPath(viper.GetString("storage.path"))), nil
	case "sqlite":
		return storage.NewSQLiteStore(config.ExpandPath(viper.GetString("storage.sqlite_path")))
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", common.ErrInvalidConfig, backend)
	}
}

// newRateCache builds the rate cache with its file-backed persistence
// and the configured (or default) HTTP source.
func newRateCache(ctx context.Context) *rates.Cache {
	source := rates.NewHTTPSource(viper.GetString("rates.url"))
	store := rates.NewFileStore(config.ExpandPath(viper.GetString("rates.cache_path")))
	return rates.NewCache(ctx, source, store)
}

// printAlert renders budget alerts in the terminal.
func printAlert(alert service.BudgetAlert) {
	fmt.Println(cli.WarningStyle.Render(fmt.Sprintf(
		"⚠ BUDGET ALERT: %s budget is %.1f%% used! Remaining: %s",
		alert.Category.Label(),
		alert.PercentUsed,
		convert.FormatAmount(alert.Remaining, alert.Currency))))
}

// loadApp restores the saved session, or starts a fresh one when
// nothing has been persisted yet.
func loadApp(ctx context.Context) (*app, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}

	cache := newRateCache(ctx)
	converter := convert.NewConverter(cache)
	sink := service.AlertFunc(printAlert)

	snapshot, err := store.Load(ctx)
	switch {
	case errors.Is(err, common.ErrNotFound):
		defaultCurrency, perr := model.ParseCurrency(viper.GetString("user.default_currency"))
		if perr != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, perr)
		}
		return &app{
			session:   session.New(viper.GetString("user.name"), defaultCurrency, converter, sink),
			converter: converter,
			cache:     cache,
			store:     store,
		}, nil
	case err != nil:
		return nil, common.NewUserError("failed to load saved data", err)
	}

	sess, err := session.Restore(snapshot, converter, sink)
	if err != nil {
		return nil, common.NewUserError("saved data is corrupted", err)
	}

	return &app{session: sess, converter: converter, cache: cache, store: store}, nil
}

// save persists the session; failures are reported but never fatal.
func (a *app) save(ctx context.Context) {
	if err := a.store.Save(ctx, a.session.Snapshot()); err != nil {
		common.LogError(err, "failed to save user data", nil)
	}
}

// close releases the store.
func (a *app) close() {
	if err := a.store.Close(); err != nil {
		common.LogError(err, "failed to close store", nil)
	}
}

// budgetTracker is a convenience accessor.
func (a *app) budgetTracker() *budget.Tracker {
	return a.session.Tracker
}

// parseDateFlag parses an optional YYYY-MM-DD flag value; empty means
// unset.
func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return &t, nil
}

// parseCurrencyFlag parses an optional currency flag, falling back to
// the session default.
func parseCurrencyFlag(value string, fallback model.Currency) (model.Currency, error) {
	if value == "" {
		return fallback, nil
	}
	return model.ParseCurrency(value)
}
