package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency selects how prices are displayed.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// DefaultINRRate converts source (USD) prices to rupees for display.
var DefaultINRRate = decimal.NewFromInt(83)

// PriceFormatter renders source prices in the display currency.
type PriceFormatter struct {
	Currency Currency
	Rate     decimal.Decimal // multiplier applied for INR
}

// NewPriceFormatter returns a formatter for cur. A zero rate uses DefaultINRRate.
func NewPriceFormatter(cur Currency, rate decimal.Decimal) PriceFormatter {
	if rate.IsZero() {
		rate = DefaultINRRate
	}
	switch Currency(strings.ToUpper(string(cur))) {
	case CurrencyUSD:
		cur = CurrencyUSD
	default:
		cur = CurrencyINR
	}
	return PriceFormatter{Currency: cur, Rate: rate}
}

// Format renders price, e.g. "₹8,299.17" or "$99.99".
func (f PriceFormatter) Format(price decimal.Decimal) string {
	if f.Currency == CurrencyUSD {
		return "$" + groupDigits(price.StringFixed(2), westernGroups)
	}
	rate := f.Rate
	if rate.IsZero() {
		rate = DefaultINRRate
	}
	// Up to three fraction digits, trailing zeros dropped.
	return "₹" + groupDigits(price.Mul(rate).Round(3).String(), indianGroups)
}

type grouping func(intPart string) []string

// westernGroups splits into thousands: 1,234,567.
func westernGroups(s string) []string {
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return append([]string{s}, parts...)
}

// indianGroups keeps the last three digits together, then pairs: 12,34,567.
func indianGroups(s string) []string {
	if len(s) <= 3 {
		return []string{s}
	}
	last := s[len(s)-3:]
	s = s[:len(s)-3]
	var parts []string
	for len(s) > 2 {
		parts = append([]string{s[len(s)-2:]}, parts...)
		s = s[:len(s)-2]
	}
	parts = append([]string{s}, parts...)
	return append(parts, last)
}

func groupDigits(num string, group grouping) string {
	sign := ""
	if strings.HasPrefix(num, "-") {
		sign, num = "-", num[1:]
	}
	intPart, frac, hasFrac := strings.Cut(num, ".")
	out := sign + strings.Join(group(intPart), ",")
	if hasFrac {
		out += "." + frac
	}
	return out
}
