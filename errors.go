package fixeddecimal

import "errors"

// ErrLocaleUndefined indicates the locale tag could not be parsed.
var ErrLocaleUndefined = errors.New("fixeddecimal: undefined locale")

// ErrDataMissing indicates no symbol bundle exists for the locale or any of
// its fallback parents.
var ErrDataMissing = errors.New("fixeddecimal: missing symbol data")

// ErrInvalidSyntax indicates a decimal literal that cannot be parsed.
var ErrInvalidSyntax = errors.New("fixeddecimal: invalid decimal syntax")

// ErrOutOfRange indicates a decimal operation that exceeds the supported
// digit range.
var ErrOutOfRange = errors.New("fixeddecimal: magnitude out of range")

// ErrUnsupported indicates a formatter option outside the supported set.
var ErrUnsupported = errors.New("fixeddecimal: unsupported option")
