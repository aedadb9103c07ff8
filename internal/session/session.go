// Package session assembles the live objects for one user — ledger,
// tag registry, budget tracker — and maps them to and from the
// persisted snapshot shape.
package session

import (
	"fmt"
	"sort"
	"time"

	"github.com/nileshk/paisa/internal/budget"
	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/ledger"
	"github.com/nileshk/paisa/internal/model"
	"github.com/nileshk/paisa/internal/service"
)

// Session is one user's in-memory state. All mutating calls must be
// serialized by the caller; the session provides no locking.
type Session struct {
	Ledger   *ledger.Ledger
	Tracker  *budget.Tracker
	Registry *model.TagRegistry
}

// New creates a fresh session with the default tag registry and no
// expenses or budgets.
func New(name string, defaultCurrency model.Currency, converter *convert.Converter, alerts service.AlertSink) *Session {
	registry := model.DefaultTagRegistry()
	tracker := budget.NewTracker(converter, alerts)
	return &Session{
		Ledger:   ledger.New(name, defaultCurrency, registry, tracker),
		Tracker:  tracker,
		Registry: registry,
	}
}

// Restore rebuilds a session from a snapshot. Expenses are re-inserted
// with their stored categories, so no reclassification happens and — the
// budgets being installed afterwards — no alerts fire during restore.
// Snapshot tags carry no order, so they are registered name-sorted to
// keep description scanning deterministic across runs.
func Restore(snapshot *service.UserSnapshot, converter *convert.Converter, alerts service.AlertSink) (*Session, error) {
	defaultCurrency, err := model.ParseCurrency(snapshot.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	registry := model.NewTagRegistry()
	names := make([]string, 0, len(snapshot.Tags))
	for name := range snapshot.Tags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		category, err := model.ParseCategory(snapshot.Tags[name].Category)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot tag %q: %w", name, err)
		}
		registry.Add(name, category)
	}

	tracker := budget.NewTracker(converter, alerts)
	l := ledger.New(snapshot.Name, defaultCurrency, registry, tracker)

	for _, e := range snapshot.Expenses {
		category, err := model.ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot expense category: %w", err)
		}
		currency, err := model.ParseCurrency(e.Currency)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot expense currency: %w", err)
		}
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot expense date %q: %w", e.Date, err)
		}
		if _, err := l.Add(ledger.AddOptions{
			Date:                date,
			Description:         e.Description,
			PaymentMethod:       e.PaymentMethod,
			Tags:                e.Tags,
			Amount:              e.Amount,
			Currency:            currency,
			Category:            category,
			IsRecurring:         e.IsRecurring,
			RecurringPeriodDays: e.RecurringPeriodDays,
		}); err != nil {
			return nil, fmt.Errorf("failed to restore expense: %w", err)
		}
	}

	// Budgets come after the expense replay: restored policies start at
	// zero spend with their alerts unfired, matching the snapshot
	// schema, which persists no running totals.
	for _, b := range snapshot.Budgets {
		category, err := model.ParseCategory(b.Category)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot budget category: %w", err)
		}
		currency, err := model.ParseCurrency(b.Currency)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot budget currency: %w", err)
		}
		tracker.SetPolicy(category, b.MonthlyLimit, currency, b.AlertThreshold)
	}

	return &Session{Ledger: l, Tracker: tracker, Registry: registry}, nil
}

// Snapshot converts the session back into its persisted shape.
func (s *Session) Snapshot() *service.UserSnapshot {
	snapshot := &service.UserSnapshot{
		Name:            s.Ledger.UserName(),
		DefaultCurrency: string(s.Ledger.DefaultCurrency()),
		Tags:            make(map[string]service.TagSnapshot, s.Registry.Len()),
	}

	for _, e := range s.Ledger.Expenses() {
		snapshot.Expenses = append(snapshot.Expenses, service.ExpenseSnapshot{
			Amount:              e.Amount,
			Description:         e.Description,
			Date:                e.Date.Format("2006-01-02"),
			Category:            string(e.Category),
			Currency:            string(e.Currency),
			IsRecurring:         e.IsRecurring,
			RecurringPeriodDays: e.RecurringPeriodDays,
			Tags:                e.Tags,
			PaymentMethod:       e.PaymentMethod,
		})
	}

	for _, p := range s.Tracker.Policies() {
		snapshot.Budgets = append(snapshot.Budgets, service.BudgetSnapshot{
			Category:       string(p.Category),
			MonthlyLimit:   p.MonthlyLimit,
			Currency:       string(p.Currency),
			AlertThreshold: p.AlertThreshold,
		})
	}

	for _, tag := range s.Registry.Entries() {
		snapshot.Tags[tag.Name] = service.TagSnapshot{Category: string(tag.Category)}
	}

	return snapshot
}
