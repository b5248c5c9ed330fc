// Package money formats monetary values for display surfaces.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultPrefix = "$"

// Format renders a decimal with the currency prefix and two places.
func Format(d decimal.Decimal) string {
	return FormatWith(DefaultPrefix, d)
}

func FormatWith(prefix string, d decimal.Decimal) string {
	return prefix + d.StringFixed(2)
}

// FormatRaw renders a sourced price string. Parseable input gets the fixed
// two-place treatment; anything else is shown verbatim behind the prefix
// rather than erroring.
func FormatRaw(s string) string {
	return FormatRawWith(DefaultPrefix, s)
}

func FormatRawWith(prefix, s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return prefix + s
	}
	return prefix + d.StringFixed(2)
}

// Parse coerces a sourced price string for arithmetic; malformed input is
// zero, never an error.
func Parse(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
