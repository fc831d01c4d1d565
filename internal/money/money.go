package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in hundredths of the currency unit.
// All arithmetic stays exact; rounding to two digits happens only
// when formatting for display.
type Cents int64

var ErrInvalidAmount = errors.New("invalid amount")

// Parse reads a decimal amount like "2.50", "2,50" or "15" into Cents.
// At most two fraction digits are accepted; anything finer would not be
// representable without rounding.
func Parse(s string) (Cents, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	// comma is the decimal separator on pt-BR keyboards
	t = strings.ReplaceAll(t, ",", ".")

	neg := false
	switch {
	case strings.HasPrefix(t, "-"):
		neg = true
		t = t[1:]
	case strings.HasPrefix(t, "+"):
		t = t[1:]
	}

	intPart := t
	fracPart := ""
	if i := strings.IndexByte(t, '.'); i >= 0 {
		intPart, fracPart = t[:i], t[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	// a sign is only valid in leading position; both parts must be bare
	// digits or strconv would quietly accept "2.-5"
	if !digitsOnly(intPart) || !digitsOnly(fracPart) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, s)
	}

	units := int64(0)
	if intPart != "" {
		v, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		units = v
	}

	frac := int64(0)
	if fracPart != "" {
		v, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		if len(fracPart) == 1 {
			v *= 10
		}
		frac = v
	}

	c := Cents(units*100 + frac)
	if neg {
		c = -c
	}
	return c, nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Mul scales the amount by an integer quantity.
func (c Cents) Mul(qty int) Cents { return c * Cents(qty) }

// String renders the amount with exactly two decimal places, e.g. "7.50".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
