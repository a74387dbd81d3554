// Package numfmt centralizes parsing and formatting of user-entered
// numeric values. Operators type amounts with a decimal comma; the sales
// API speaks decimal point.
package numfmt

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses a free-text amount. A decimal comma is accepted and
// converted before parsing. Blank or unparseable input yields zero, which
// matches how the checkout form treats untouched tender fields.
func ParseDecimal(s string) decimal.Decimal {
	d, _ := ParseDecimalStrict(s)
	return d
}

// ParseDecimalStrict parses like ParseDecimal but reports whether the input
// was actually a number. Form screens use it where a non-numeric value must
// block submission instead of silently becoming zero.
func ParseDecimalStrict(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	// Accept "1.234,56" as well as "1234,56" and "1234.56".
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseInt parses a whole quantity, defaulting to zero on bad input.
func ParseInt(s string) int {
	d, ok := ParseDecimalStrict(s)
	if !ok {
		return 0
	}
	return int(d.IntPart())
}

// FormatMoney renders an amount with two decimal places for the screens.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatInt renders a whole quantity for a form field.
func FormatInt(n int) string {
	return strconv.Itoa(n)
}

// DigitsOnly strips every non-digit rune. Postal codes arrive masked
// ("01310-100") and the lookup service wants bare digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPostalCode reports whether the input contains exactly 8 digits, the
// only shape the postal lookup accepts.
func IsPostalCode(s string) bool {
	return len(DigitsOnly(s)) == 8
}
