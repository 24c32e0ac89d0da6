package alloc

import "sync"

// Serialized wraps an Allocator with a mutex for callers that need to
// share one heap across goroutines. The core Allocator stays lock-free and
// non-reentrant per spec.md §5; this is the "caller serializes externally"
// contract made concrete, in the style of the mutex-guarded fields on the
// teacher's CustomAllocator/PointerManager/MemoryManager.
type Serialized struct {
	mu sync.Mutex
	a  *Allocator
}

// NewSerialized wraps an already-constructed Allocator.
func NewSerialized(a *Allocator) *Serialized {
	return &Serialized{a: a}
}

func (s *Serialized) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Init()
}

func (s *Serialized) Alloc(n uint32) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(n)
}

func (s *Serialized) Free(p uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(p)
}

func (s *Serialized) Realloc(p, n uint32) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Realloc(p, n)
}

func (s *Serialized) Check() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Check()
}
