package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD renders a monetary amount as "$1,234,567.89".
func FormatUSD(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	grouped := groupThousands(parts[0])

	out := "$" + grouped + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// FormatCompactUSD renders large amounts with a magnitude suffix, e.g.
// "$12.4B" or "$187.3M".
func FormatCompactUSD(amount decimal.Decimal) string {
	value := amount.InexactFloat64()
	switch {
	case value >= 1e9 || value <= -1e9:
		return fmt.Sprintf("$%.1fB", value/1e9)
	case value >= 1e6 || value <= -1e6:
		return fmt.Sprintf("$%.1fM", value/1e6)
	case value >= 1e3 || value <= -1e3:
		return fmt.Sprintf("$%.1fK", value/1e3)
	default:
		return fmt.Sprintf("$%.2f", value)
	}
}

// FormatPercent renders a ratio as a percentage with one decimal.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
