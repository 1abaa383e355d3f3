package bridge

import (
	"github.com/goliatone/go-fixeddecimal"
)

// Decimal is re-exported so boundary callers need no second import.
type Decimal = fixeddecimal.Decimal

// Boundary owns the handle registry and the construction inputs shared by
// every CreateFormatter call. Methods are safe for concurrent use.
type Boundary struct {
	registry *Registry[*fixeddecimal.Formatter]
	base     []fixeddecimal.Option
}

// NewBoundary builds a boundary. Base options, typically WithProvider or
// WithSymbolFiles, apply to every construction before per-call options.
func NewBoundary(base ...fixeddecimal.Option) *Boundary {
	return &Boundary{
		registry: NewRegistry[*fixeddecimal.Formatter](),
		base:     append([]fixeddecimal.Option(nil), base...),
	}
}

// CreateFormatter is the boundary constructor. It returns a RawResult by
// value with the discriminant always set: on success the caller owns the
// handle and must pass it to DestroyFormatter exactly once; on failure the
// engine fault is carried as a Code and nothing is registered or retained.
func (b *Boundary) CreateFormatter(locale string, opts ...fixeddecimal.Option) RawResult {
	all := b.base
	if len(opts) > 0 {
		all = make([]fixeddecimal.Option, 0, len(b.base)+len(opts))
		all = append(all, b.base...)
		all = append(all, opts...)
	}

	engine, err := fixeddecimal.New(locale, all...)
	if err != nil {
		return RawErr(CodeForError(err))
	}
	return RawOk(b.registry.Put(engine))
}

// DestroyFormatter is the paired release. Releasing a handle twice, or one
// this boundary never issued, is a caller error; it is detected and reported
// as false rather than corrupting the registry.
func (b *Boundary) DestroyFormatter(h Handle) bool {
	return b.registry.Release(h)
}

// FormatDecimal renders a decimal through a live handle. A stale or released
// handle is a caller error; it is detected and surfaces as CodeUnknown.
func (b *Boundary) FormatDecimal(h Handle, d Decimal) Result[string] {
	engine, ok := b.registry.Get(h)
	if !ok {
		return Err[string](CodeUnknown)
	}
	return Ok(engine.Format(d))
}

// FormatString parses a plain decimal literal and renders it through a live
// handle, carrying parse faults as codes.
func (b *Boundary) FormatString(h Handle, s string) Result[string] {
	engine, ok := b.registry.Get(h)
	if !ok {
		return Err[string](CodeUnknown)
	}
	out, err := engine.FormatString(s)
	if err != nil {
		return Err[string](CodeForError(err))
	}
	return Ok(out)
}

// OwnFormatter is the Go-native face of CreateFormatter: the handle comes
// back wrapped in a scope guard and failures come back as errors.
func (b *Boundary) OwnFormatter(locale string, opts ...fixeddecimal.Option) (*Owned, error) {
	res := b.CreateFormatter(locale, opts...)
	if !res.IsOk() {
		return nil, &CodeError{Code: res.Code()}
	}
	return &Owned{boundary: b, handle: res.Handle()}, nil
}

// Live reports the number of outstanding handles.
func (b *Boundary) Live() int {
	return b.registry.Live()
}
