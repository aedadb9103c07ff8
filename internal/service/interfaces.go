// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/nileshk/paisa/internal/model"
)

// RateSource fetches a fresh exchange-rate table from an external
// provider. Rates are expressed as units of each currency per one unit
// of the base currency.
type RateSource interface {
	FetchRates(ctx context.Context, base model.Currency) (map[model.Currency]float64, error)
}

// RateCacheStore persists the exchange-rate table between runs so a
// fresh process can start without hitting the network.
type RateCacheStore interface {
	// Load returns the persisted table, or (nil, zero time, nil) when
	// no cache exists yet.
	Load() (map[model.Currency]float64, time.Time, error)
	Save(rates map[model.Currency]float64, lastUpdated time.Time) error
}

// Store defines the contract for the user-data persistence layer.
// Implementations load and save whole snapshots; the in-memory session
// is the source of truth while the process runs.
type Store interface {
	// Load returns the persisted snapshot, or common.ErrNotFound when
	// no user data has been saved yet.
	Load(ctx context.Context) (*UserSnapshot, error)
	Save(ctx context.Context, snapshot *UserSnapshot) error
	Close() error
}

// BudgetAlert is emitted the first time a budget crosses its alert
// threshold. It carries everything a sink needs to display the alert.
type BudgetAlert struct {
	Category    model.Category
	Currency    model.Currency
	PercentUsed float64
	Remaining   float64
}

// AlertSink receives budget alerts. The budget tracker never renders
// alerts itself; a CLI or log sink does.
type AlertSink interface {
	BudgetAlert(alert BudgetAlert)
}

// AlertFunc adapts a function to the AlertSink interface.
type AlertFunc func(alert BudgetAlert)

// BudgetAlert implements AlertSink.
func (f AlertFunc) BudgetAlert(alert BudgetAlert) { f(alert) }

// UserSnapshot is the persisted form of a user session. Enumerated
// fields are stored by code ("FOOD", "INR"), never by display label.
type UserSnapshot struct {
	Name            string                 `json:"name"`
	DefaultCurrency string                 `json:"default_currency"`
	Expenses        []ExpenseSnapshot      `json:"expenses"`
	Budgets         []BudgetSnapshot       `json:"budgets"`
	Tags            map[string]TagSnapshot `json:"tags"`
}

// ExpenseSnapshot is one persisted expense record.
type ExpenseSnapshot struct {
	Amount              float64  `json:"amount"`
	Description         string   `json:"description"`
	Date                string   `json:"date"`
	Category            string   `json:"category"`
	Currency            string   `json:"currency"`
	IsRecurring         bool     `json:"is_recurring"`
	RecurringPeriodDays int      `json:"recurring_period_days"`
	Tags                []string `json:"tags"`
	PaymentMethod       string   `json:"payment_method"`
}

// BudgetSnapshot is one persisted budget policy. Running spend is not
// persisted; a restored policy starts at zero with its alert unfired.
type BudgetSnapshot struct {
	Category       string  `json:"category"`
	MonthlyLimit   float64 `json:"monthly_limit"`
	Currency       string  `json:"currency"`
	AlertThreshold float64 `json:"alert_threshold"`
}

// TagSnapshot is one persisted tag definition, keyed by tag name in the
// snapshot's tags map.
type TagSnapshot struct {
	Category string `json:"category"`
}
