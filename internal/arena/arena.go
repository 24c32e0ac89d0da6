// Package arena supplies the raw, growable byte region the allocator in
// internal/alloc runs against. It intentionally has **no dependency** on
// internal/alloc so that the boundary between "opaque heap provider" and
// "trusted in-band metadata" stays explicit, the same layering the teacher
// uses between internal/runtime and internal/wasm/internal/db.
package arena

import "errors"

// Provider is the heap-provider contract consumed by internal/alloc. It is
// deliberately the only capability spec.md's §6 grants the allocator over
// its backing store: grow, and report the current high-water mark. Memory
// is never returned to the provider.
type Provider interface {
	// RequestMore extends the arena by exactly n bytes, contiguous with
	// whatever was returned by the previous call, and returns the address
	// of the newly available region. On failure the arena is unchanged.
	RequestMore(n uint32) (base uint32, err error)

	// CurrentHighAddress reports the current one-past-end address.
	CurrentHighAddress() uint32
}

// ByteView is the supplementary, non-spec capability Go needs that C gets
// for free from pointer arithmetic into one address space: a way to read
// and mutate bytes already handed out by a prior RequestMore. Every
// concrete Provider in this package also implements ByteView.
type ByteView interface {
	// View returns a slice covering [0, CurrentHighAddress()). Callers must
	// re-fetch the view after any call that can grow the arena — the
	// backing array may have moved.
	View() []byte
}

// Memory is the combined capability internal/alloc requires from its
// backing store.
type Memory interface {
	Provider
	ByteView
}

// ErrExhausted is returned by a Provider when it cannot grow further.
var ErrExhausted = errors.New("arena: provider exhausted, cannot grow")
