package fixeddecimal

import (
	"fmt"
	"strings"
)

// GroupingStrategy selects how integer digits are grouped during formatting.
type GroupingStrategy int

const (
	// GroupingAuto honors the locale's minimum grouping digits.
	GroupingAuto GroupingStrategy = iota
	// GroupingNever suppresses group separators entirely.
	GroupingNever
	// GroupingAlways inserts separators regardless of the locale minimum.
	GroupingAlways
	// GroupingMin2 requires at least two digits in the leading group.
	GroupingMin2
)

func (g GroupingStrategy) String() string {
	switch g {
	case GroupingAuto:
		return "auto"
	case GroupingNever:
		return "never"
	case GroupingAlways:
		return "always"
	case GroupingMin2:
		return "min2"
	default:
		return fmt.Sprintf("grouping(%d)", int(g))
	}
}

// ParseGroupingStrategy maps the textual names used in config files and CLI
// flags back to strategies.
func ParseGroupingStrategy(s string) (GroupingStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return GroupingAuto, nil
	case "never":
		return GroupingNever, nil
	case "always":
		return GroupingAlways, nil
	case "min2":
		return GroupingMin2, nil
	default:
		return GroupingAuto, fmt.Errorf("%w: grouping %q", ErrUnsupported, s)
	}
}

// GroupingSizes carries the CLDR grouping parameters for a locale.
type GroupingSizes struct {
	// Primary is the size of the least significant group.
	Primary uint8
	// Secondary is the size of every group beyond the primary one.
	Secondary uint8
	// MinDigits is the smallest leading group that still triggers grouping.
	MinDigits uint8
}

// Symbols is one locale's decimal symbol bundle.
type Symbols struct {
	Locale    string
	Decimal   string
	Group     string
	MinusSign string
	PlusSign  string
	Grouping  GroupingSizes
	// Digits overrides the Latin digits 0-9 when the locale uses a native
	// numbering system. Empty means Latin.
	Digits []rune
}

func (s Symbols) validate() error {
	if s.Decimal == "" {
		return fmt.Errorf("%w: locale %q has no decimal separator", ErrDataMissing, s.Locale)
	}
	if s.Group != "" && s.Grouping.Primary == 0 {
		return fmt.Errorf("%w: locale %q has a group separator but no primary size", ErrDataMissing, s.Locale)
	}
	if n := len(s.Digits); n != 0 && n != 10 {
		return fmt.Errorf("%w: locale %q declares %d digits", ErrDataMissing, s.Locale, n)
	}
	return nil
}

// normalized fills the defaults a sparse bundle may omit.
func (s Symbols) normalized() Symbols {
	if s.MinusSign == "" {
		s.MinusSign = "-"
	}
	if s.PlusSign == "" {
		s.PlusSign = "+"
	}
	if s.Grouping.Secondary == 0 {
		s.Grouping.Secondary = s.Grouping.Primary
	}
	if s.Grouping.MinDigits == 0 {
		s.Grouping.MinDigits = 1
	}
	return s
}
