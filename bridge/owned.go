package bridge

import (
	"io"
	"sync"
)

// Owned scopes a successful construction so the release-exactly-once
// obligation lives in one place instead of being scattered through caller
// code. Close releases the handle on first call and is a no-op afterwards.
type Owned struct {
	boundary *Boundary
	handle   Handle
	once     sync.Once
}

var _ io.Closer = (*Owned)(nil)

// Handle exposes the raw token for boundary calls. The token stays owned by
// the wrapper; callers must not release it themselves.
func (o *Owned) Handle() Handle {
	if o == nil {
		return NilHandle
	}
	return o.handle
}

// Format renders a decimal through the owned handle.
func (o *Owned) Format(d Decimal) Result[string] {
	if o == nil {
		return Err[string](CodeUnknown)
	}
	return o.boundary.FormatDecimal(o.handle, d)
}

// Close implements io.Closer, releasing the handle exactly once.
func (o *Owned) Close() error {
	if o == nil {
		return nil
	}
	o.once.Do(func() {
		o.boundary.DestroyFormatter(o.handle)
	})
	return nil
}
