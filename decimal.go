package fixeddecimal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sign marks the explicit sign carried by a Decimal.
type Sign int8

const (
	// SignNone renders no sign prefix.
	SignNone Sign = iota
	// SignNegative renders the locale minus sign.
	SignNegative
	// SignPositive renders the locale plus sign.
	SignPositive
)

// maxDigits bounds the significant digits a Decimal may carry. Shift and pad
// operations that would exceed it fail with ErrOutOfRange.
const maxDigits = 512

// Decimal is a fixed-point decimal value: a run of significant digits, a
// fraction scale and an explicit sign. The zero value is 0.
type Decimal struct {
	sign   Sign
	digits string // decimal digits only; value = digits / 10^scale
	scale  int    // count of fraction digits at the tail of digits
}

// NewDecimal assembles a Decimal from already validated parts. The digits
// string must contain ASCII digits only and scale must be within it.
func NewDecimal(sign Sign, digits string, scale int) (Decimal, error) {
	if scale < 0 || scale > len(digits) {
		return Decimal{}, fmt.Errorf("%w: scale %d for %d digits", ErrInvalidSyntax, scale, len(digits))
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidSyntax, digits)
		}
	}
	d := Decimal{sign: sign, digits: digits, scale: scale}
	d.norm()
	return d, nil
}

// ParseDecimal parses a plain decimal literal such as "-12.345" or "+0.5".
// Exponent notation is rejected.
func ParseDecimal(s string) (Decimal, error) {
	raw := s
	sign := SignNone
	switch {
	case strings.HasPrefix(s, "-"):
		sign = SignNegative
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		sign = SignPositive
		s = s[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidSyntax, raw)
	}
	if hasDot && fracPart == "" {
		return Decimal{}, fmt.Errorf("%w: trailing separator in %q", ErrInvalidSyntax, raw)
	}
	if intPart == "" {
		intPart = "0"
	}

	d, err := NewDecimal(sign, intPart+fracPart, len(fracPart))
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidSyntax, raw)
	}
	if len(d.digits) > maxDigits {
		return Decimal{}, fmt.Errorf("%w: %d digits", ErrOutOfRange, len(d.digits))
	}
	return d, nil
}

// FromInt64 converts an integer without loss.
func FromInt64(v int64) Decimal {
	sign := SignNone
	digits := strconv.FormatInt(v, 10)
	if v < 0 {
		sign = SignNegative
		digits = digits[1:]
	}
	return Decimal{sign: sign, digits: digits}
}

// FromFloat64 converts a float rounded to fracDigits fraction digits.
// NaN and infinities are rejected.
func FromFloat64(v float64, fracDigits int) (Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Decimal{}, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	if fracDigits < 0 {
		fracDigits = 0
	}
	return ParseDecimal(strconv.FormatFloat(v, 'f', fracDigits, 64))
}

// Sign returns the explicit sign.
func (d Decimal) Sign() Sign { return d.sign }

// WithSign returns a copy carrying the given sign.
func (d Decimal) WithSign(sign Sign) Decimal {
	d.sign = sign
	return d
}

// MultiplyPow10 shifts the value by a power of ten: positive n multiplies,
// negative n divides. The digit string never loses significant digits.
func (d *Decimal) MultiplyPow10(n int) error {
	d.norm()
	switch {
	case n > 0:
		if d.scale >= n {
			d.scale -= n
			break
		}
		grow := n - d.scale
		if len(d.digits)+grow > maxDigits {
			return fmt.Errorf("%w: shift by %d", ErrOutOfRange, n)
		}
		d.digits += strings.Repeat("0", grow)
		d.scale = 0
	case n < 0:
		d.scale -= n
		if d.scale >= len(d.digits) {
			grow := d.scale - len(d.digits) + 1
			if len(d.digits)+grow > maxDigits {
				return fmt.Errorf("%w: shift by %d", ErrOutOfRange, n)
			}
			d.digits = strings.Repeat("0", grow) + d.digits
		}
	}
	d.trim()
	return nil
}

// PadStart left-pads the integer part with zeros up to width digits.
func (d *Decimal) PadStart(width int) error {
	d.norm()
	if width < 1 {
		return fmt.Errorf("%w: pad width %d", ErrOutOfRange, width)
	}
	have := d.intDigits()
	if have >= width {
		return nil
	}
	grow := width - have
	if len(d.digits)+grow > maxDigits {
		return fmt.Errorf("%w: pad width %d", ErrOutOfRange, width)
	}
	d.digits = strings.Repeat("0", grow) + d.digits
	return nil
}

// TruncStart drops high-order integer digits beyond width, keeping the low
// end of the number intact.
func (d *Decimal) TruncStart(width int) error {
	d.norm()
	if width < 1 {
		return fmt.Errorf("%w: trunc width %d", ErrOutOfRange, width)
	}
	have := d.intDigits()
	if have <= width {
		return nil
	}
	d.digits = d.digits[have-width:]
	d.trim()
	return nil
}

// String renders the canonical plain form, e.g. "-1234.50".
func (d Decimal) String() string {
	dd := d
	dd.norm()

	var b strings.Builder
	b.Grow(len(dd.digits) + 2)
	switch dd.sign {
	case SignNegative:
		b.WriteByte('-')
	case SignPositive:
		b.WriteByte('+')
	}
	split := len(dd.digits) - dd.scale
	b.WriteString(dd.digits[:split])
	if dd.scale > 0 {
		b.WriteByte('.')
		b.WriteString(dd.digits[split:])
	}
	return b.String()
}

func (d Decimal) intDigits() int { return len(d.digits) - d.scale }

// intPart and fracPart expose the digit runs to the formatter.
func (d Decimal) intPart() string  { return d.digits[:len(d.digits)-d.scale] }
func (d Decimal) fracPart() string { return d.digits[len(d.digits)-d.scale:] }

// norm guarantees at least one integer digit so the zero value prints "0".
func (d *Decimal) norm() {
	if d.digits == "" {
		d.digits = "0"
		d.scale = 0
		return
	}
	if d.scale >= len(d.digits) {
		d.digits = strings.Repeat("0", d.scale-len(d.digits)+1) + d.digits
	}
}

// trim strips redundant leading integer zeros down to one digit.
func (d *Decimal) trim() {
	for d.intDigits() > 1 && d.digits[0] == '0' {
		d.digits = d.digits[1:]
	}
}
