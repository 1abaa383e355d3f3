package bridge

// Result is the inner face of the boundary's tagged union: exactly one of
// the value or the code is meaningful, chosen by the discriminant at
// construction and never mutated afterwards.
//
// The zero value is a failure carrying CodeUnknown, so an uninitialized
// Result can never present itself as a success.
type Result[T any] struct {
	value T
	code  Code
	ok    bool
}

// Ok wraps a successful outcome.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err wraps a failure tag.
func Err[T any](code Code) Result[T] {
	return Result[T]{code: code}
}

// IsOk reports the discriminant. Callers must branch on it before touching
// either member.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Value returns the success member. Reading it on a failure is a caller
// defect and panics.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("bridge: Value read on a failure result")
	}
	return r.value
}

// Code returns the failure member. Reading it on a success is a caller
// defect and panics.
func (r Result[T]) Code() Code {
	if r.ok {
		panic("bridge: Code read on a success result")
	}
	return r.code
}

// Unpack flattens the result for callers that prefer the comma-ok idiom.
func (r Result[T]) Unpack() (T, Code, bool) {
	return r.value, r.code, r.ok
}

// Err converts a failure into a Go error and a success into nil.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &CodeError{Code: r.code}
}
