package profit

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrUnparsablePrice is returned when a price string holds no usable number.
var ErrUnparsablePrice = errors.New("unparsable price")

// ParsePrice extracts a decimal amount from a display string such as
// "12,50 €", "€1 234.00" or "EUR 9". Letters, currency symbols and
// whitespace (including NBSP) are ignored. When both separators appear the
// last one is the decimal point; a lone comma is a decimal separator.
func ParsePrice(s string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r), unicode.IsLetter(r), unicode.Is(unicode.Sc, r):
		default:
			return decimal.Zero, fmt.Errorf("%w: %q", ErrUnparsablePrice, s)
		}
	}

	raw := b.String()
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnparsablePrice, s)
	}

	lastDot := strings.LastIndex(raw, ".")
	lastComma := strings.LastIndex(raw, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			raw = strings.ReplaceAll(raw, ".", "")
			raw = strings.Replace(raw, ",", ".", 1)
		} else {
			raw = strings.ReplaceAll(raw, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(raw, ",") > 1 {
			raw = strings.ReplaceAll(raw, ",", "")
		} else {
			raw = strings.Replace(raw, ",", ".", 1)
		}
	case strings.Count(raw, ".") > 1:
		raw = strings.ReplaceAll(raw, ".", "")
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnparsablePrice, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative amount %q", ErrUnparsablePrice, s)
	}
	return d, nil
}
