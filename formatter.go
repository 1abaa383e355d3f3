package fixeddecimal

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Formatter renders Decimal values using one locale's symbols. It is
// immutable after construction and safe for concurrent use.
type Formatter struct {
	tag      language.Tag
	symbols  Symbols
	grouping GroupingStrategy
}

// New builds a formatter for the locale. Construction fails with
// ErrLocaleUndefined when the tag cannot be parsed and with ErrDataMissing
// when neither the locale nor its fallback parents have a symbol bundle.
// Nothing is retained on failure.
func New(locale string, opts ...Option) (*Formatter, error) {
	cfg, err := newConfig(locale, opts...)
	if err != nil {
		return nil, err
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrLocaleUndefined, cfg.Locale)
	}

	symbols, ok := resolveSymbols(cfg.Provider, cfg.Locale)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDataMissing, cfg.Locale)
	}

	return &Formatter{
		tag:      tag,
		symbols:  symbols,
		grouping: cfg.Grouping,
	}, nil
}

// Locale returns the canonical tag the formatter was built for.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Symbols returns the resolved symbol bundle.
func (f *Formatter) Symbols() Symbols {
	return f.symbols
}

// Grouping returns the active grouping strategy.
func (f *Formatter) Grouping() GroupingStrategy {
	return f.grouping
}

// Format renders a Decimal with the locale's separators, signs and digits.
func (f *Formatter) Format(d Decimal) string {
	d.norm()

	var b strings.Builder
	switch d.Sign() {
	case SignNegative:
		b.WriteString(f.symbols.MinusSign)
	case SignPositive:
		b.WriteString(f.symbols.PlusSign)
	}

	b.WriteString(f.transliterate(f.group(d.intPart())))
	if frac := d.fracPart(); frac != "" {
		b.WriteString(f.symbols.Decimal)
		b.WriteString(f.transliterate(frac))
	}
	return b.String()
}

// FormatInt64 renders an integer.
func (f *Formatter) FormatInt64(v int64) string {
	return f.Format(FromInt64(v))
}

// FormatFloat64 renders a float rounded to fracDigits fraction digits.
func (f *Formatter) FormatFloat64(v float64, fracDigits int) (string, error) {
	d, err := FromFloat64(v, fracDigits)
	if err != nil {
		return "", err
	}
	return f.Format(d), nil
}

// FormatString parses a plain decimal literal and renders it.
func (f *Formatter) FormatString(s string) (string, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return "", err
	}
	return f.Format(d), nil
}

// group inserts separators into the integer digit run per the strategy.
func (f *Formatter) group(intPart string) string {
	sizes := f.symbols.Grouping
	if f.grouping == GroupingNever || f.symbols.Group == "" || sizes.Primary == 0 {
		return intPart
	}

	minDigits := int(sizes.MinDigits)
	switch f.grouping {
	case GroupingAlways:
		minDigits = 1
	case GroupingMin2:
		if minDigits < 2 {
			minDigits = 2
		}
	}

	primary := int(sizes.Primary)
	secondary := int(sizes.Secondary)
	if secondary == 0 {
		secondary = primary
	}

	// grouping kicks in once the leading group would hold minDigits digits
	if len(intPart) < primary+minDigits {
		return intPart
	}

	var b strings.Builder
	cut := len(intPart) - primary
	groups := []string{intPart[cut:]}
	for cut > secondary {
		groups = append(groups, intPart[cut-secondary:cut])
		cut -= secondary
	}
	groups = append(groups, intPart[:cut])

	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(f.symbols.Group)
		}
	}
	return b.String()
}

// transliterate swaps Latin digits for the locale's native numbering system.
// Non-digit bytes, such as grouped separators, pass through untouched.
func (f *Formatter) transliterate(s string) string {
	if len(f.symbols.Digits) != 10 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteRune(f.symbols.Digits[c-'0'])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
