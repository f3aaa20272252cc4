package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrDecimal is returned when a string cannot be parsed as a decimal value.
var ErrDecimal = errors.New("error parsing decimal value")

// A Decimal is a value with both a whole number part and a decimal part of no
// more than four digits. It is stored as an integer count of ten-thousandths.
type Decimal int64

// ParseDecimal converts a string into a Decimal. Decimals must carry a
// decimal point and between one and four fractional digits.
func ParseDecimal(s string) (Decimal, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: string too short", ErrDecimal)
	}
	i := 0

	negative := false
	if s[i] == '-' {
		negative = true
		i++
		if i == len(s) {
			return 0, fmt.Errorf("%w: string too short", ErrDecimal)
		}
	}

	c := rune(s[i])
	if !unicode.IsDigit(c) {
		return 0, fmt.Errorf("%w: unexpected character %s", ErrDecimal, strconv.QuoteRune(c))
	}
	integer := int64(c - '0')
	i++

	// Consume digits up to the decimal point.
	for ; ; i++ {
		if i == len(s) {
			return 0, fmt.Errorf("%w: string missing decimal point", ErrDecimal)
		}
		c = rune(s[i])
		if c == '.' {
			break
		}
		if !unicode.IsDigit(c) {
			return 0, fmt.Errorf("%w: unexpected character %s", ErrDecimal, strconv.QuoteRune(c))
		}
		integer = 10*integer + int64(c-'0')
		if integer > 922337203685477 {
			return 0, fmt.Errorf("%w: overflow", ErrDecimal)
		}
	}
	i++

	fraction := int64(0)
	fractionDigits := 0
	for ; i < len(s); i++ {
		c = rune(s[i])
		if !unicode.IsDigit(c) {
			return 0, fmt.Errorf("%w: unexpected character %s", ErrDecimal, strconv.QuoteRune(c))
		}
		fraction = 10*fraction + int64(c-'0')
		fractionDigits++
	}

	switch fractionDigits {
	case 0:
		return 0, fmt.Errorf("%w: missing digits after decimal point", ErrDecimal)
	case 1:
		fraction *= 1000
	case 2:
		fraction *= 100
	case 3:
		fraction *= 10
	case 4:
	default:
		return 0, fmt.Errorf("%w: too many digits after decimal point", ErrDecimal)
	}

	// Check for overflow before fixing up the signs.
	if integer > 922337203685477 || (integer == 922337203685477 && fraction > 5807) {
		return 0, fmt.Errorf("%w: overflow", ErrDecimal)
	}

	if negative {
		integer = -integer
		fraction = -fraction
	}

	return Decimal(integer*10000 + fraction), nil
}

// Equal returns true if the input represents the same Decimal.
func (d Decimal) Equal(bi Value) bool {
	b, ok := bi.(Decimal)
	return ok && d == b
}

// String produces a string representation of the Decimal, e.g. `12.34`. At
// least one fractional digit is always rendered.
func (d Decimal) String() string {
	integer := int64(d) / 10000
	fraction := int64(d) % 10000
	if fraction < 0 {
		fraction = -fraction
	}
	sign := ""
	if d < 0 && integer == 0 {
		sign = "-"
	}
	frac := strings.TrimRight(fmt.Sprintf("%04d", fraction), "0")
	if frac == "" {
		frac = "0"
	}
	return fmt.Sprintf("%s%d.%s", sign, integer, frac)
}

// MarshalCedar produces a valid MarshalCedar language representation of the Decimal, e.g. `decimal("12.34")`.
func (d Decimal) MarshalCedar() []byte {
	return []byte(`decimal("` + d.String() + `")`)
}

func (d Decimal) Hash() uint64 {
	return uint64(d)
}

// UnmarshalJSON parses a JSON-encoded Decimal, in either the implicit `"12.34"`
// form or the explicit `{"__extn":{"fn":"decimal","arg":"12.34"}}` form.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	arg, err := unmarshalExtensionArg(b, "decimal")
	if err != nil {
		return err
	}
	v, err := ParseDecimal(arg)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON marshals the Decimal into JSON using the explicit form.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return marshalExtensionValue("decimal", d.String())
}
