package alloc

import (
	"github.com/clockworklabs/heapalloc/internal/arena"
)

// Allocator is a single boundary-tag, segregated-free-list heap over one
// arena.Memory. It is single-threaded and non-reentrant by design: every
// method mutates shared in-band metadata (tags, free-list links) without
// any locking, matching spec.md §5's "no locking required or provided."
// Callers sharing an Allocator across goroutines should wrap it in
// Serialized instead of adding locks here.
type Allocator struct {
	provider arena.Memory
	buckets  buckets
	prologue Block
}

// NewAllocator constructs an Allocator over the given backing store. Init
// must be called before the allocator is used.
func NewAllocator(provider arena.Memory) *Allocator {
	return &Allocator{provider: provider}
}

func (a *Allocator) mem() []byte { return a.provider.View() }

// Init lays down a fresh prologue/epilogue pair and an initial chunk of
// free space, discarding any prior allocator state. Calling Init again
// after a previous Init (or after allocations) is legal and resets all
// state: it lays a brand new bootstrap region at the arena's current high
// address and starts over, leaving whatever came before as unreachable
// bytes the arena (which only ever grows) never reclaims.
func (a *Allocator) Init() error {
	// 16 bytes: one alignment padding word, an 8-byte prologue (header +
	// footer, no payload, never freed), and an epilogue header word.
	base, err := a.provider.RequestMore(4 * wordSize)
	if err != nil {
		return initFailed(err)
	}
	mem := a.provider.View()

	prologueHeaderAddr := base + wordSize
	writeWord(mem, prologueHeaderAddr, packWord(doubleWordSize, true))
	writeWord(mem, prologueHeaderAddr+wordSize, packWord(doubleWordSize, true))
	writeWord(mem, prologueHeaderAddr+2*wordSize, packWord(0, true))

	a.buckets = buckets{}
	a.prologue = Block(prologueHeaderAddr + wordSize)

	if _, err := a.extend(chunkSize / wordSize); err != nil {
		return initFailed(err)
	}
	return nil
}

// Alloc returns the address of a payload of at least n bytes, or 0 (and a
// nil error) if n is 0. Finds a fit among existing free blocks first;
// extends the heap only when nothing fits.
func (a *Allocator) Alloc(n uint32) (uint32, error) {
	if n == 0 {
		return 0, nil
	}

	want := adjustedSize(n)
	mem := a.mem()

	if blk := findFit(mem, &a.buckets, want); blk != nullBlock {
		return uint32(place(mem, &a.buckets, blk, want)), nil
	}

	grow := want
	if grow < chunkSize {
		grow = chunkSize
	}
	blk, err := a.extend(grow / wordSize)
	if err != nil {
		return 0, outOfMemory(want, err)
	}

	mem = a.mem()
	return uint32(place(mem, &a.buckets, blk, want)), nil
}

// Free releases the block at p. A nil pointer (0) is a no-op.
func (a *Allocator) Free(p uint32) {
	if p == 0 {
		return
	}
	mem := a.mem()
	blk := Block(p)
	size := blk.Size(mem)
	blk.SetTags(mem, size, false)
	insertFree(mem, &a.buckets, blk)
	coalesce(mem, &a.buckets, blk)
}

// Realloc resizes the block at p to n bytes, per the five ordered cases in
// §4.2.4: n==0 frees and returns 0; p==0 behaves like Alloc; a shrink or
// same-size request is satisfied in place; a grow that fits by absorbing a
// free successor is satisfied in place; anything else falls back to
// alloc-copy-free.
func (a *Allocator) Realloc(p uint32, n uint32) (uint32, error) {
	if n == 0 {
		a.Free(p)
		return 0, nil
	}
	if p == 0 {
		return a.Alloc(n)
	}

	mem := a.mem()
	blk := Block(p)
	oldSize := blk.Size(mem)
	want := adjustedSize(n)

	next := blk.Next(mem)
	nextIsEpilogue := next.Size(mem) == 0

	// Shrink / same-size in place. The epilogue-adjacency check here is
	// carried over unchanged: shrinking never touches the next block, so
	// this exclusion has no effect on correctness, only on which blocks at
	// the very top of the heap are eligible for the fast path.
	if !nextIsEpilogue && (want == oldSize || want+minBlockSize <= oldSize) {
		return a.shrinkInPlace(mem, blk, oldSize, want), nil
	}

	// Extend into a free successor.
	if !nextIsEpilogue && !next.Allocated(mem) {
		combined := oldSize + next.Size(mem)
		if want == combined || want+minBlockSize <= combined {
			return a.extendInPlace(mem, blk, next, combined, want), nil
		}
	}

	newP, err := a.Alloc(n)
	if err != nil {
		return 0, err
	}
	mem = a.mem()

	copyLen := oldSize - doubleWordSize
	if n < copyLen {
		copyLen = n
	}
	copy(mem[newP:newP+copyLen], mem[p:p+copyLen])

	a.Free(p)
	return newP, nil
}

func (a *Allocator) shrinkInPlace(mem []byte, blk Block, oldSize, want uint32) uint32 {
	if want == oldSize {
		return uint32(blk)
	}
	blk.SetTags(mem, want, true)
	rem := Block(uint32(blk) + want)
	rem.SetTags(mem, oldSize-want, false)
	insertFree(mem, &a.buckets, rem)
	coalesce(mem, &a.buckets, rem)
	return uint32(blk)
}

func (a *Allocator) extendInPlace(mem []byte, blk, next Block, combined, want uint32) uint32 {
	removeFree(mem, &a.buckets, next)
	if combined-want >= minBlockSize {
		blk.SetTags(mem, want, true)
		rem := Block(uint32(blk) + want)
		rem.SetTags(mem, combined-want, false)
		insertFree(mem, &a.buckets, rem)
		coalesce(mem, &a.buckets, rem)
	} else {
		blk.SetTags(mem, combined, true)
	}
	return uint32(blk)
}
