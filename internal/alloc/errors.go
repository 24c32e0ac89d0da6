package alloc

import (
	"errors"
	"fmt"
)

// AllocError carries the operation and size an allocator call failed on,
// in the style of the teacher's AllocatorError/PointerError. Unwrap exposes
// one of the package sentinels below for errors.Is.
type AllocError struct {
	Op      string
	Size    uint32
	Message string
	cause   error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("alloc: %s: %s (size=%d)", e.Op, e.Message, e.Size)
}

func (e *AllocError) Unwrap() error { return e.cause }

var (
	// ErrOutOfMemory is returned when the heap provider refuses to grow far
	// enough to satisfy a request.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrInitFailed is returned when the heap provider refuses the initial
	// bootstrap allocation Init needs before the allocator can do anything.
	ErrInitFailed = errors.New("heap provider refused initial allocation")
)

func outOfMemory(size uint32, cause error) *AllocError {
	return &AllocError{Op: "alloc", Size: size, Message: cause.Error(), cause: ErrOutOfMemory}
}

func initFailed(cause error) *AllocError {
	return &AllocError{Op: "init", Message: cause.Error(), cause: ErrInitFailed}
}
