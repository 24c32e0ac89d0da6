// Package heapalloc is the public surface over internal/alloc: a
// segregated-list, boundary-tag heap allocator backed by one growable
// arena.Memory.
//
// Construct an *Allocator directly (via New, or alloc.NewAllocator with a
// custom arena.Memory such as a WASM-backed one) for full control, or use
// the package-level Alloc/Free/Realloc convenience functions, which behave
// like C's malloc/free/realloc over a single once-initialized default heap:
// failures surface as a null (0) return rather than an error.
//
//	a, err := heapalloc.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := a.Alloc(128)
//	...
//	a.Free(p)
package heapalloc

import (
	"sync"

	"github.com/clockworklabs/heapalloc/internal/alloc"
	"github.com/clockworklabs/heapalloc/internal/arena"
)

// Allocator is the full allocator type; see internal/alloc for its
// semantics.
type Allocator = alloc.Allocator

// Serialized wraps an Allocator with a mutex for concurrent callers.
type Serialized = alloc.Serialized

// NewSerialized wraps an existing Allocator for concurrent use.
func NewSerialized(a *Allocator) *Serialized {
	return alloc.NewSerialized(a)
}

// AllocError and the package error sentinels are re-exported so callers
// using the full API don't need to import internal/alloc directly.
type AllocError = alloc.AllocError

var (
	ErrOutOfMemory = alloc.ErrOutOfMemory
	ErrInitFailed  = alloc.ErrInitFailed
)

// New constructs an Allocator over a fresh, append-only []byte arena and
// runs Init.
func New() (*Allocator, error) {
	a := alloc.NewAllocator(arena.NewSliceMemory(4096))
	if err := a.Init(); err != nil {
		return nil, err
	}
	return a, nil
}

var (
	once    sync.Once
	global  *Allocator
	initErr error
)

// Default returns the process-wide default allocator, created on first
// use.
func Default() (*Allocator, error) {
	once.Do(func() {
		global, initErr = New()
	})
	return global, initErr
}

// Alloc, Free, and Realloc operate on Default(). They panic only if the
// default allocator's one-time construction failed (a provider that
// refuses Init's 16-byte bootstrap region or its initial 256-byte chunk);
// ordinary allocation failure is reported
// the way C's malloc reports it, as a null (0) return.
func Alloc(n uint32) uint32 {
	a, err := Default()
	if err != nil {
		panic(err)
	}
	p, _ := a.Alloc(n)
	return p
}

func Free(p uint32) {
	a, err := Default()
	if err != nil {
		panic(err)
	}
	a.Free(p)
}

func Realloc(p, n uint32) uint32 {
	a, err := Default()
	if err != nil {
		panic(err)
	}
	q, _ := a.Realloc(p, n)
	return q
}
