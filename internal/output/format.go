// Package output renders plan results for the CLI: a human-readable
// console report and a machine-readable JSON document.
package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount with Indian digit grouping: the last three
// digits form one group, every group above that has two digits
// (1234567.50 -> "₹12,34,567.50"). Fractional paise are shown only when
// non-zero.
func FormatINR(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	whole := amount.Floor()
	frac := amount.Sub(whole)

	digits := whole.StringFixed(0)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(digits))
	if !frac.IsZero() {
		b.WriteString(frac.StringFixed(2)[1:])
	}
	return b.String()
}

func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var parts []string
	head := digits[:n-3]
	parts = append(parts, digits[n-3:])
	for len(head) > 2 {
		parts = append(parts, head[len(head)-2:])
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append(parts, head)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ",")
}

// FormatPercent renders a fractional rate as a percentage with two
// decimal places (0.175 -> "17.50%").
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
