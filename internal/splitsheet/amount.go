package splitsheet

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// normalizeNumber rewrites "1.234,56", "1,234.56" and "12,5" to a plain
// dotted decimal. When both separators appear the last one is the decimal
// mark; a lone comma is a decimal comma.
func normalizeNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastDot > lastComma && lastComma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	}

	return s
}

// parseAmount converts a major-unit amount to minor units. scale is the
// number of minor-unit digits; finer fractions are rejected.
func parseAmount(s string, scale int) (int64, error) {
	d, err := decimal.NewFromString(normalizeNumber(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	minor := d.Shift(int32(scale))
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than %d decimal places", s, scale)
	}

	n := minor.IntPart()
	if !decimal.NewFromInt(n).Equal(minor) {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}

	return n, nil
}

func parsePercent(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(normalizeNumber(strings.TrimSuffix(strings.TrimSpace(s), "%")))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percentage %q", s)
	}

	return d, nil
}
