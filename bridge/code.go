package bridge

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-fixeddecimal"
)

// Code is the closed set of failure tags that may cross the boundary. It is
// a fixed-width integer so it fits the flat result layout on both sides.
type Code uint32

// Construction failure codes.
//
// The set is closed: the boundary adds no kinds of its own, it only carries
// the engine's taxonomy. Faults that match no known sentinel collapse into
// CodeUnknown rather than leaking across the boundary.
const (
	// CodeUnknown is the fallback for unclassified faults.
	CodeUnknown Code = iota

	// CodeDataMissing reports that no symbol bundle covers the locale.
	CodeDataMissing

	// CodeLocaleUndefined reports an unparseable locale tag.
	CodeLocaleUndefined

	// CodeInvalidSyntax reports a malformed decimal literal.
	CodeInvalidSyntax

	// CodeOutOfRange reports a decimal outside the supported digit range.
	CodeOutOfRange

	// CodeUnsupported reports an option outside the supported set.
	CodeUnsupported
)

func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeDataMissing:
		return "data_missing"
	case CodeLocaleUndefined:
		return "locale_undefined"
	case CodeInvalidSyntax:
		return "invalid_syntax"
	case CodeOutOfRange:
		return "out_of_range"
	case CodeUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("code(%d)", uint32(c))
	}
}

// CodeForError maps an engine fault to its boundary tag.
func CodeForError(err error) Code {
	switch {
	case errors.Is(err, fixeddecimal.ErrDataMissing):
		return CodeDataMissing
	case errors.Is(err, fixeddecimal.ErrLocaleUndefined):
		return CodeLocaleUndefined
	case errors.Is(err, fixeddecimal.ErrInvalidSyntax):
		return CodeInvalidSyntax
	case errors.Is(err, fixeddecimal.ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, fixeddecimal.ErrUnsupported):
		return CodeUnsupported
	default:
		return CodeUnknown
	}
}

// CodeError is the Go-native face of a failure tag, for callers that want
// errors instead of discriminant checks.
type CodeError struct {
	Code Code
}

func (e *CodeError) Error() string {
	return "bridge: construct failed: " + e.Code.String()
}
