package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formats an amount as USD with two decimals and thousands
// separators, e.g. -7188 -> "-$7,188.00". Kept here so every formatter
// renders currency identically and it can be unit tested in isolation.
func FormatUSD(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}
