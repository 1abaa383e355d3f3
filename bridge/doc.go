// Package bridge exposes the fixeddecimal formatter across a flat,
// ABI-stable boundary: a fallible constructor returning a tagged result, an
// opaque handle standing in for the engine, and an explicit paired release.
//
// The contract mirrors a C-style FFI surface. CreateFormatter returns a
// RawResult by value with its discriminant always set and exactly one member
// initialized; on success the caller owns the returned Handle and must
// release it exactly once via DestroyFormatter. No fault propagates across
// the boundary in any other shape than an error Code.
//
// Handles are generation-tagged tokens into a registry-owned table rather
// than raw addresses, so stale or double releases are detectable instead of
// undefined. Each construction builds its engine from an immutable symbols
// snapshot, so concurrent callers share no mutable state and each receives a
// non-aliased handle.
package bridge
