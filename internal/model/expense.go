package model

import (
	"fmt"
	"strings"
	"time"
)

// Expense represents a single recorded expense. Records are immutable
// once stored in a ledger: corrections are modeled as delete + reinsert,
// never in-place edits.
type Expense struct {
	Date                time.Time
	Description         string
	PaymentMethod       string
	Tags                []string
	Amount              float64
	Currency            Currency
	Category            Category
	IsRecurring         bool
	RecurringPeriodDays int
}

// DefaultPaymentMethod is used when no payment method is supplied.
const DefaultPaymentMethod = "Cash"

// HasTag reports whether the expense carries the given tag name.
func (e *Expense) HasTag(name string) bool {
	for _, t := range e.Tags {
		if t == name {
			return true
		}
	}
	return false
}

// String renders a one-line summary of the expense.
func (e *Expense) String() string {
	tags := "No tags"
	if len(e.Tags) > 0 {
		tags = strings.Join(e.Tags, ", ")
	}
	return fmt.Sprintf("%s: %s%.2f - %s (%s) [Payment: %s, Tags: %s]",
		e.Date.Format("2006-01-02"),
		e.Currency.Symbol(),
		e.Amount,
		e.Description,
		e.Category.Label(),
		e.PaymentMethod,
		tags)
}
