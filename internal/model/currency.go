package model

import "fmt"

// Currency identifies one of the supported currency codes. The set is
// closed: rates, conversion, and persistence only ever deal with the
// codes enumerated below. Snapshots serialize the code itself, never
// the display symbol.
type Currency string

const (
	// CurrencyINR is the base currency; every rate table entry is
	// expressed as units per one INR.
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencySGD Currency = "SGD"
)

// BaseCurrency is the currency all exchange rates are relative to.
const BaseCurrency = CurrencyINR

// Currencies returns all supported currencies in a fixed, stable order.
func Currencies() []Currency {
	return []Currency{
		CurrencyINR,
		CurrencyUSD,
		CurrencyEUR,
		CurrencyGBP,
		CurrencyJPY,
		CurrencyCAD,
		CurrencyAUD,
		CurrencySGD,
	}
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyINR:
		return "₹"
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	case CurrencyJPY:
		return "¥"
	case CurrencyCAD:
		return "C$"
	case CurrencyAUD:
		return "A$"
	case CurrencySGD:
		return "S$"
	}
	return string(c)
}

// Valid reports whether the currency is one of the supported codes.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyINR, CurrencyUSD, CurrencyEUR, CurrencyGBP,
		CurrencyJPY, CurrencyCAD, CurrencyAUD, CurrencySGD:
		return true
	}
	return false
}

// ParseCurrency converts a code string (e.g. from config or a snapshot)
// into a Currency, rejecting anything outside the supported set.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if !c.Valid() {
		return "", fmt.Errorf("unknown currency code %q", code)
	}
	return c, nil
}
