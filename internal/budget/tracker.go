// Package budget tracks per-category spending policies and fires a
// one-time alert when a policy first crosses its threshold.
package budget

import (
	"fmt"
	"log/slog"

	"github.com/nileshk/paisa/internal/convert"
	"github.com/nileshk/paisa/internal/model"
	"github.com/nileshk/paisa/internal/service"
)

// DefaultAlertThreshold is the percentage at which a policy alerts when
// no threshold is configured.
const DefaultAlertThreshold = 80.0

// Policy is one category's spending policy. Running spend is mutated
// only through Tracker.AddSpending; the alert flag never resets for a
// policy instance — replacing the policy starts a fresh one.
type Policy struct {
	Category       model.Category
	Currency       model.Currency
	MonthlyLimit   float64
	AlertThreshold float64

	spent      float64
	alertFired bool
}

// Spent returns the accumulated spend in the policy's currency.
func (p *Policy) Spent() float64 { return p.spent }

// AlertFired reports whether this policy instance has already alerted.
func (p *Policy) AlertFired() bool { return p.alertFired }

// PercentUsed returns spend as a percentage of the limit, 0 when the
// limit is 0.
func (p *Policy) PercentUsed() float64 {
	if p.MonthlyLimit == 0 {
		return 0
	}
	return p.spent / p.MonthlyLimit * 100
}

// Remaining returns the unspent part of the limit, floored at zero.
func (p *Policy) Remaining() float64 {
	if remaining := p.MonthlyLimit - p.spent; remaining > 0 {
		return remaining
	}
	return 0
}

// Tracker owns at most one policy per category and does the currency
// math for spending added against them. Not safe for concurrent use.
type Tracker struct {
	converter *convert.Converter
	sink      service.AlertSink
	policies  map[model.Category]*Policy
}

// NewTracker creates a tracker. sink may be nil, in which case alerts
// are logged.
func NewTracker(converter *convert.Converter, sink service.AlertSink) *Tracker {
	return &Tracker{
		converter: converter,
		sink:      sink,
		policies:  make(map[model.Category]*Policy),
	}
}

// SetPolicy installs or replaces the policy for a category. Replacing
// resets the running spend and the alert flag.
func (t *Tracker) SetPolicy(category model.Category, monthlyLimit float64, currency model.Currency, alertThreshold float64) *Policy {
	p := &Policy{
		Category:       category,
		Currency:       currency,
		MonthlyLimit:   monthlyLimit,
		AlertThreshold: alertThreshold,
	}
	t.policies[category] = p
	return p
}

// HasPolicy reports whether a policy exists for the category.
func (t *Tracker) HasPolicy(category model.Category) bool {
	_, ok := t.policies[category]
	return ok
}

// Policy returns the policy for a category, if set.
func (t *Tracker) Policy(category model.Category) (*Policy, bool) {
	p, ok := t.policies[category]
	return p, ok
}

// Policies returns all policies in the fixed category order.
func (t *Tracker) Policies() []*Policy {
	var out []*Policy
	for _, category := range model.Categories() {
		if p, ok := t.policies[category]; ok {
			out = append(out, p)
		}
	}
	return out
}

// AddSpending converts an amount into the policy's currency and adds it
// to the running spend. The first time usage meets or exceeds the alert
// threshold an alert is emitted; an already-alerted policy stays
// silent no matter how far spend climbs. Categories without a policy
// are ignored.
func (t *Tracker) AddSpending(category model.Category, amount float64, currency model.Currency) error {
	p, ok := t.policies[category]
	if !ok {
		return nil
	}

	converted, err := t.converter.Convert(amount, currency, p.Currency)
	if err != nil {
		return fmt.Errorf("failed to convert spending to %s: %w", p.Currency, err)
	}

	p.spent += converted

	if !p.alertFired && p.PercentUsed() >= p.AlertThreshold {
		p.alertFired = true
		t.emit(service.BudgetAlert{
			Category:    p.Category,
			Currency:    p.Currency,
			PercentUsed: p.PercentUsed(),
			Remaining:   p.Remaining(),
		})
	}

	return nil
}

func (t *Tracker) emit(alert service.BudgetAlert) {
	if t.sink != nil {
		t.sink.BudgetAlert(alert)
		return
	}
	slog.Warn("budget threshold crossed",
		"category", alert.Category.Label(),
		"percent_used", fmt.Sprintf("%.1f", alert.PercentUsed),
		"remaining", convert.FormatAmount(alert.Remaining, alert.Currency))
}
