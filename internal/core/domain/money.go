package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MinorUnits is the number of minor units per major unit (sen per rupiah).
const MinorUnits = 100

// Money is an amount in integer minor units. Sums never touch floating point.
type Money int64

// ParseMoney parses a decimal string such as "1500000" or "1500000.50".
// More than two fractional digits is rejected instead of rounded.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d)
}

// FromDecimal converts an exact decimal to minor units.
func FromDecimal(d decimal.Decimal) (Money, error) {
	minor := d.Mul(decimal.NewFromInt(MinorUnits))
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than two decimal places", d.String())
	}
	return Money(minor.IntPart()), nil
}

// Rupiah builds a Money value from whole rupiah.
func Rupiah(whole int64) Money {
	return Money(whole * MinorUnits)
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String renders the amount with two decimals, e.g. "1500000.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Format renders the amount for display as Indonesian Rupiah, e.g. "Rp 1.500.000".
// Sen are shown only when present.
func (m Money) Format() string {
	neg := m < 0
	v := int64(m)
	if neg {
		v = -v
	}
	whole, frac := v/MinorUnits, v%MinorUnits

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "Rp " + b.String()
	if frac != 0 {
		out += fmt.Sprintf(",%02d", frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// MarshalJSON encodes the amount as a decimal string to keep precision in transit.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts a decimal string or a JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*m = 0
		return nil
	}
	v, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
