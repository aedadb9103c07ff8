// Package convert provides currency conversion and display formatting
// layered on the exchange-rate cache.
package convert

import (
	"fmt"
	"strings"

	"github.com/nileshk/paisa/internal/model"
	"github.com/nileshk/paisa/internal/rates"
)

// Converter performs currency math against a rate cache. It is
// stateless beyond the cache reference and safe to copy.
type Converter struct {
	cache *rates.Cache
}

// NewConverter creates a converter backed by the given rate cache.
func NewConverter(cache *rates.Cache) *Converter {
	return &Converter{cache: cache}
}

// Convert translates amount from one currency to another through the
// base currency. Identical from/to returns the amount unchanged, with
// no floating round-trip. Either code missing from the current table
// yields common.ErrUnsupportedCurrency.
func (c *Converter) Convert(amount float64, from, to model.Currency) (float64, error) {
	if from == to {
		return amount, nil
	}

	fromRate, err := c.cache.Rate(from)
	if err != nil {
		return 0, err
	}
	toRate, err := c.cache.Rate(to)
	if err != nil {
		return 0, err
	}

	return amount / fromRate * toRate, nil
}

// Format renders an amount with the currency's symbol and grouped
// thousands. The INR base currency uses Indian digit grouping
// (₹12,34,567.89); every other currency uses Western grouping.
func (c *Converter) Format(amount float64, currency model.Currency) string {
	return FormatAmount(amount, currency)
}

// FormatAmount is the package-level formatting helper behind
// Converter.Format; it needs no rate table.
func FormatAmount(amount float64, currency model.Currency) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped string
	if currency == model.CurrencyINR {
		grouped = groupIndian(intPart)
	} else {
		grouped = groupWestern(intPart)
	}

	return sign + currency.Symbol() + grouped + "." + fracPart
}

// groupWestern inserts a comma every three digits: 1234567 -> 1,234,567.
func groupWestern(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian groups the last three digits, then pairs above them:
// 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	head := digits[:n-3]
	tail := digits[n-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
