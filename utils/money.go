package utils

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice accepts any non-negative decimal string.
func ParsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("price must be a number")
	}
	if d.IsNegative() {
		return 0, errors.New("price must not be negative")
	}
	return d.InexactFloat64(), nil
}

// FormatMWK renders an amount as whole kwacha with thousands separators,
// e.g. 1234567.8 -> "1,234,568".
func FormatMWK(amount float64) string {
	s := decimal.NewFromFloat(amount).Round(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
