package ledger

import (
	"fmt"
	"time"

	"github.com/nileshk/paisa/internal/model"
)

// BudgetRecorder receives spending notifications for categories that
// have a budget policy. The budget tracker implements it; the ledger
// never does currency math itself.
type BudgetRecorder interface {
	HasPolicy(category model.Category) bool
	AddSpending(category model.Category, amount float64, currency model.Currency) error
}

// AddOptions carries the inputs for a new expense. Zero values select
// the documented defaults: today's date, the ledger's default currency,
// the default payment method, and automatic classification.
type AddOptions struct {
	Date                time.Time
	Description         string
	PaymentMethod       string
	Tags                []string
	Amount              float64
	Currency            model.Currency
	Category            model.Category
	IsRecurring         bool
	RecurringPeriodDays int
}

// Ledger is the ordered, in-memory expense collection for one user.
// Records are append-only and kept in insertion order; it is not safe
// for concurrent mutation.
type Ledger struct {
	registry        *model.TagRegistry
	budgets         BudgetRecorder
	expenses        []model.Expense
	userName        string
	defaultCurrency model.Currency
}

// New creates a ledger for the named user. budgets may be nil when no
// budget tracking is wanted.
func New(userName string, defaultCurrency model.Currency, registry *model.TagRegistry, budgets BudgetRecorder) *Ledger {
	if registry == nil {
		registry = model.NewTagRegistry()
	}
	return &Ledger{
		userName:        userName,
		defaultCurrency: defaultCurrency,
		registry:        registry,
		budgets:         budgets,
	}
}

// UserName returns the owning user's name.
func (l *Ledger) UserName() string { return l.userName }

// DefaultCurrency returns the currency applied when Add is given none.
func (l *Ledger) DefaultCurrency() model.Currency { return l.defaultCurrency }

// Registry returns the ledger's tag registry.
func (l *Ledger) Registry() *model.TagRegistry { return l.registry }

// Add classifies, stores, and returns a new expense record. When a
// budget policy exists for the resolved category the spend is recorded
// against it; a conversion failure there is returned alongside the
// already-stored record. Negative amounts are accepted as corrections,
// matching the persistence schema.
func (l *Ledger) Add(opts AddOptions) (model.Expense, error) {
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}
	if opts.Currency == "" {
		opts.Currency = l.defaultCurrency
	}
	if opts.PaymentMethod == "" {
		opts.PaymentMethod = model.DefaultPaymentMethod
	}

	category := Classify(opts.Category, opts.Tags, opts.Description, l.registry)

	tags := make([]string, len(opts.Tags))
	copy(tags, opts.Tags)

	expense := model.Expense{
		Date:                opts.Date,
		Description:         opts.Description,
		PaymentMethod:       opts.PaymentMethod,
		Tags:                tags,
		Amount:              opts.Amount,
		Currency:            opts.Currency,
		Category:            category,
		IsRecurring:         opts.IsRecurring,
		RecurringPeriodDays: opts.RecurringPeriodDays,
	}

	l.expenses = append(l.expenses, expense)

	if l.budgets != nil && l.budgets.HasPolicy(category) {
		if err := l.budgets.AddSpending(category, expense.Amount, expense.Currency); err != nil {
			return expense, fmt.Errorf("failed to record spending against %s budget: %w", category.Label(), err)
		}
	}

	return expense, nil
}

// Expenses returns all records in insertion order. The slice is a copy;
// the records themselves are never mutated after insertion.
func (l *Ledger) Expenses() []model.Expense {
	out := make([]model.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Len returns the number of stored expenses.
func (l *Ledger) Len() int { return len(l.expenses) }

// Recurring returns all expenses flagged as recurring, in insertion order.
func (l *Ledger) Recurring() []model.Expense {
	var out []model.Expense
	for _, e := range l.expenses {
		if e.IsRecurring {
			out = append(out, e)
		}
	}
	return out
}

// ByTag returns all expenses carrying the given tag, in insertion order.
func (l *Ledger) ByTag(name string) []model.Expense {
	var out []model.Expense
	for _, e := range l.expenses {
		if e.HasTag(name) {
			out = append(out, e)
		}
	}
	return out
}
