package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatVND renders an amount the way the dashboard displays Vietnamese
// dong: whole units, thousands separated by commas, suffixed with " VNĐ".
// Example: 25700000 returns "25,700,000 VNĐ".
func FormatVND(amount decimal.Decimal) string {
	return GroupThousands(amount.StringFixed(0)) + " VNĐ"
}

// GroupThousands inserts a comma every three digits from the right.
// A leading minus sign is preserved.
func GroupThousands(digits string) string {
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
