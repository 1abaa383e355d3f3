package bridge

import "sync"

// Handle is an opaque token identifying a registry-owned object. It packs a
// slot index in the low half and a generation in the high half, so a handle
// kept past its release no longer resolves. The zero Handle is never issued.
type Handle uint64

// NilHandle is the absent handle.
const NilHandle Handle = 0

func makeHandle(index, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index))
}

func (h Handle) index() uint32 { return uint32(h) }
func (h Handle) gen() uint32   { return uint32(h >> 32) }

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Registry is a generation-tagged slot table owning the objects that handles
// refer to. It is safe for concurrent use; each Put hands out a fresh,
// non-aliased handle.
type Registry[T any] struct {
	mu    sync.Mutex
	slots []slot[T]
	free  []uint32
	live  int
}

// NewRegistry builds an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Put stores a value and returns the handle that owns it.
func (r *Registry[T]) Put(value T) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot[T]{})
		index = uint32(len(r.slots) - 1)
	}

	s := &r.slots[index]
	// generations start at 1 so no live handle is ever NilHandle
	s.gen++
	s.live = true
	s.value = value
	r.live++
	return makeHandle(index, s.gen)
}

// Get resolves a handle. Stale, released and foreign handles report
// ok=false.
func (r *Registry[T]) Get(h Handle) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	s, ok := r.lookup(h)
	if !ok {
		return zero, false
	}
	return s.value, true
}

// Release frees the slot behind a handle exactly once. The second release of
// the same handle returns false, as does a handle this registry never
// issued.
func (r *Registry[T]) Release(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookup(h)
	if !ok {
		return false
	}

	var zero T
	s.value = zero
	s.live = false
	r.free = append(r.free, h.index())
	r.live--
	return true
}

// Live returns the number of outstanding handles. Leak harnesses assert it
// returns to zero.
func (r *Registry[T]) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

func (r *Registry[T]) lookup(h Handle) (*slot[T], bool) {
	index := h.index()
	if h == NilHandle || int(index) >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[index]
	if !s.live || s.gen != h.gen() {
		return nil, false
	}
	return s, true
}
