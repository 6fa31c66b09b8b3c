package models

import (
	"fmt"
	"strings"
)

// FormatINR renders an amount as rupees with thousands separators and no
// decimals, e.g. 1200000 -> "₹1,200,000".
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := fmt.Sprintf("%.0f", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-₹" + b.String()
	}
	return "₹" + b.String()
}
