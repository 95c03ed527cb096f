package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MaxAmountRappen is the ceiling the standard puts on the amount field,
// expressed in hundredths (999 999 999.99).
const MaxAmountRappen = 99_999_999_999

// ErrAmountRange reports an amount outside [0.00, 999999999.99].
var ErrAmountRange = errors.New("amount out of range")

// ErrAmountFormat reports an amount string that is not a decimal number
// with at most two fraction digits.
var ErrAmountFormat = errors.New("malformed amount")

// Amount is a non-negative decimal with exactly two fraction digits,
// stored as hundredths to keep encoding exact.
type Amount struct {
	rappen int64
}

// NewAmount builds an Amount from hundredths of the currency unit.
func NewAmount(rappen int64) (Amount, error) {
	if rappen < 0 || rappen > MaxAmountRappen {
		return Amount{}, fmt.Errorf("%w: %d/100", ErrAmountRange, rappen)
	}
	return Amount{rappen: rappen}, nil
}

// ParseAmount parses a decimal string such as "1949.75" or "500".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty", ErrAmountFormat)
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		return Amount{}, fmt.Errorf("%w: %q", ErrAmountFormat, s)
	}
	if hasFrac && (fracPart == "" || len(fracPart) > 2) {
		return Amount{}, fmt.Errorf("%w: %q", ErrAmountFormat, s)
	}
	var rappen int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return Amount{}, fmt.Errorf("%w: %q", ErrAmountFormat, s)
		}
		rappen = rappen*10 + int64(r-'0')
		if rappen > MaxAmountRappen {
			return Amount{}, fmt.Errorf("%w: %q", ErrAmountRange, s)
		}
	}
	rappen *= 100
	if hasFrac {
		frac := int64(0)
		for _, r := range fracPart {
			if r < '0' || r > '9' {
				return Amount{}, fmt.Errorf("%w: %q", ErrAmountFormat, s)
			}
			frac = frac*10 + int64(r-'0')
		}
		if len(fracPart) == 1 {
			frac *= 10
		}
		rappen += frac
	}
	return NewAmount(rappen)
}

// Rappen returns the amount in hundredths.
func (a Amount) Rappen() int64 { return a.rappen }

// String returns the payload form: no grouping, two fraction digits.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", a.rappen/100, a.rappen%100)
}

// Display returns the printed form, with thin-space thousands grouping as
// shown on the official slips ("1 949.75").
func (a Amount) Display() string {
	units := fmt.Sprintf("%d", a.rappen/100)
	var b strings.Builder
	for i, r := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s.%02d", b.String(), a.rappen%100)
}
